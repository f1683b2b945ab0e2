package filterstore

import (
	"context"
	"sync"

	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
	"io.winapps.foodshare/internal/postfilter"
)

// MemoryStore is used when Redis is not configured. Values go through the same JSON
// encoding as RedisStore.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, role dashboardmodels.Role) (postfilter.FilterSpec, bool, error) {
	s.mu.RLock()
	data, ok := s.data[key(role)]
	s.mu.RUnlock()

	if !ok {
		return postfilter.DefaultSpec(), false, nil
	}
	spec, err := decode(data)
	if err != nil {
		return spec, false, err
	}
	return spec, true, nil
}

func (s *MemoryStore) Save(_ context.Context, role dashboardmodels.Role, spec postfilter.FilterSpec) error {
	data, err := encode(spec)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key(role)] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, role dashboardmodels.Role) error {
	s.mu.Lock()
	delete(s.data, key(role))
	s.mu.Unlock()
	return nil
}
