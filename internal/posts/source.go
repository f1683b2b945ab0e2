// Package posts loads food posts from their backing store and keeps the snapshot the
// dashboards filter over.
package posts

import (
	"context"

	postmodels "io.winapps.foodshare/internal/models/post"
)

// Source supplies the full post collection.
type Source interface {
	ListPosts(ctx context.Context) ([]postmodels.FoodPost, error)
}
