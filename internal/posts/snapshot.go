package posts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"io.winapps.foodshare/internal/metrics"
	postmodels "io.winapps.foodshare/internal/models/post"
)

const refreshTimeout = 30 * time.Second

// ErrNotLoaded is returned by Posts before the first successful refresh.
var ErrNotLoaded = errors.New("post snapshot not loaded")

// Snapshot holds the last post collection read from a Source. Readers get the same
// backing slice and must not modify it; each refresh installs a fresh slice.
type Snapshot struct {
	source Source
	logger *zap.SugaredLogger

	mu        sync.RWMutex
	posts     []postmodels.FoodPost
	loaded    bool
	refreshed time.Time
}

func NewSnapshot(source Source, logger *zap.SugaredLogger) *Snapshot {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Snapshot{source: source, logger: logger}
}

// Posts returns the current collection.
func (s *Snapshot) Posts() ([]postmodels.FoodPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return s.posts, nil
}

// RefreshedAt reports when the collection was last replaced.
func (s *Snapshot) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}

// Refresh reloads the collection. On failure the previous collection stays in place.
func (s *Snapshot) Refresh(ctx context.Context) error {
	posts, err := s.source.ListPosts(ctx)
	if err != nil {
		metrics.SnapshotRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to refresh post snapshot: %w", err)
	}

	s.mu.Lock()
	s.posts = clonePosts(posts)
	s.loaded = true
	s.refreshed = time.Now()
	s.mu.Unlock()

	metrics.SnapshotRefreshes.WithLabelValues("ok").Inc()
	metrics.SnapshotPosts.Set(float64(len(posts)))
	return nil
}

// StartRefresher schedules Refresh on a cron spec such as "@every 1m". The caller stops
// the returned cron on shutdown.
func (s *Snapshot) StartRefresher(schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := s.Refresh(ctx); err != nil {
			s.logger.Errorw("Snapshot refresh failed", "error", err)
			return
		}
		posts, _ := s.Posts()
		s.logger.Debugw("Snapshot refreshed", "posts", len(posts))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	c.Start()
	return c, nil
}
