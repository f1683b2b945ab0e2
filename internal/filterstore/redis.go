package filterstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
	"io.winapps.foodshare/internal/postfilter"
)

// RedisStore keeps specs as JSON strings under dashboard_filters:<role>. A zero TTL
// keeps them until cleared.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, role dashboardmodels.Role) (postfilter.FilterSpec, bool, error) {
	data, err := s.client.Get(ctx, key(role)).Bytes()
	if errors.Is(err, redis.Nil) {
		return postfilter.DefaultSpec(), false, nil
	}
	if err != nil {
		return postfilter.DefaultSpec(), false, fmt.Errorf("failed to load filters for %s: %w", role, err)
	}

	spec, err := decode(data)
	if err != nil {
		return spec, false, err
	}
	return spec, true, nil
}

func (s *RedisStore) Save(ctx context.Context, role dashboardmodels.Role, spec postfilter.FilterSpec) error {
	data, err := encode(spec)
	if err != nil {
		return fmt.Errorf("failed to encode filters: %w", err)
	}
	if err := s.client.Set(ctx, key(role), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save filters for %s: %w", role, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, role dashboardmodels.Role) error {
	if err := s.client.Del(ctx, key(role)).Err(); err != nil {
		return fmt.Errorf("failed to clear filters for %s: %w", role, err)
	}
	return nil
}
