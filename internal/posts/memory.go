package posts

import (
	"context"
	"sync"
	"time"

	postmodels "io.winapps.foodshare/internal/models/post"
)

// MemorySource serves a fixed post collection. It backs local runs without a database
// and the tests.
type MemorySource struct {
	mu    sync.RWMutex
	posts []postmodels.FoodPost
}

func NewMemorySource(posts []postmodels.FoodPost) *MemorySource {
	return &MemorySource{posts: clonePosts(posts)}
}

func (s *MemorySource) ListPosts(ctx context.Context) ([]postmodels.FoodPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts), nil
}

// Replace swaps the served collection.
func (s *MemorySource) Replace(posts []postmodels.FoodPost) {
	s.mu.Lock()
	s.posts = clonePosts(posts)
	s.mu.Unlock()
}

func clonePosts(posts []postmodels.FoodPost) []postmodels.FoodPost {
	out := make([]postmodels.FoodPost, len(posts))
	copy(out, posts)
	return out
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// SeedPosts returns the demo listings shown on both dashboards, timed relative to now.
func SeedPosts(now time.Time) []postmodels.FoodPost {
	return []postmodels.FoodPost{
		{
			ID:          "1",
			Title:       "Fresh Vegetable Curry",
			Description: "Delicious mixed vegetable curry prepared with fresh seasonal vegetables. Perfect for immediate consumption.",
			Category:    postmodels.CategoryPreparedFood,
			Urgency:     postmodels.UrgencyHigh,
			Status:      postmodels.StatusActive,
			Location:    "Mumbai Central",
			Quantity:    "15 servings",
			PostedAt:    now.Add(-2 * time.Hour),
			ExpiryTime:  now.Add(4 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400",
			MatchCount:  intPtr(3),
		},
		{
			ID:          "2",
			Title:       "Assorted Bakery Items",
			Description: "Fresh bread, pastries, and baked goods from our daily production. Includes whole wheat bread and croissants.",
			Category:    postmodels.CategoryBakery,
			Urgency:     postmodels.UrgencyMedium,
			Status:      postmodels.StatusMatched,
			Location:    "Bandra West",
			Quantity:    "25 items",
			PostedAt:    now.Add(-5 * time.Hour),
			ExpiryTime:  now.Add(12 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400",
			MatchCount:  intPtr(1),
			MatchScore:  intPtr(94),
			Recipient:   "Hope Foundation",
		},
		{
			ID:          "3",
			Title:       "Fresh Fruits & Vegetables",
			Description: "Seasonal fresh produce including apples, bananas, tomatoes, and leafy greens. All items are in good condition.",
			Category:    postmodels.CategoryFreshProduce,
			Urgency:     postmodels.UrgencyLow,
			Status:      postmodels.StatusActive,
			Location:    "Andheri East",
			Quantity:    "30 kg",
			PostedAt:    now.Add(-1 * time.Hour),
			ExpiryTime:  now.Add(24 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1542838132-92c53300491e?w=400",
			MatchCount:  intPtr(2),
		},
		{
			ID:          "4",
			Title:       "Packaged Rice & Lentils",
			Description: "Sealed packages of basmati rice and various lentils. Long shelf life and perfect for bulk distribution.",
			Category:    postmodels.CategoryPackagedGoods,
			Urgency:     postmodels.UrgencyLow,
			Status:      postmodels.StatusCollected,
			Location:    "Thane",
			Quantity:    "50 kg",
			PostedAt:    now.Add(-8 * time.Hour),
			ExpiryTime:  now.Add(72 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
			MatchCount:  intPtr(1),
			MatchScore:  intPtr(88),
			Recipient:   "Akshaya Patra",
		},
		{
			ID:            "5",
			Title:         "Fresh Vegetable Curry with Rice",
			Description:   "Freshly prepared vegetable curry with basmati rice, suitable for vegetarian diets.",
			Category:      postmodels.CategoryPreparedFood,
			Urgency:       postmodels.UrgencyHigh,
			Status:        postmodels.StatusActive,
			Location:      "MG Road, Bangalore",
			Quantity:      "25 portions",
			PostedAt:      now.Add(-30 * time.Minute),
			ExpiryTime:    now.Add(4 * time.Hour),
			DonorName:     "Green Garden Restaurant",
			ImageURL:      "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			Distance:      floatPtr(2.3),
			PriorityScore: intPtr(94),
		},
		{
			ID:            "6",
			Title:         "Mixed Fresh Fruits",
			Description:   "Assorted fresh fruits including apples, bananas, oranges, and seasonal fruits.",
			Category:      postmodels.CategoryFreshProduce,
			Urgency:       postmodels.UrgencyMedium,
			Status:        postmodels.StatusActive,
			Location:      "Koramangala, Bangalore",
			Quantity:      "15 kg",
			PostedAt:      now.Add(-1 * time.Hour),
			ExpiryTime:    now.Add(48 * time.Hour),
			DonorName:     "Fresh Mart Supermarket",
			ImageURL:      "https://images.pexels.com/photos/1132047/pexels-photo-1132047.jpeg",
			Distance:      floatPtr(5.7),
			PriorityScore: intPtr(87),
		},
		{
			ID:            "7",
			Title:         "Assorted Bread and Pastries",
			Description:   "Fresh bread loaves, dinner rolls, and pastries from today's batch.",
			Category:      postmodels.CategoryBakery,
			Urgency:       postmodels.UrgencyLow,
			Status:        postmodels.StatusActive,
			Location:      "Indiranagar, Bangalore",
			Quantity:      "40 pieces",
			PostedAt:      now.Add(-2 * time.Hour),
			ExpiryTime:    now.Add(24 * time.Hour),
			DonorName:     "Bread & Beyond Bakery",
			ImageURL:      "https://images.pexels.com/photos/1775043/pexels-photo-1775043.jpeg",
			Distance:      floatPtr(3.1),
			PriorityScore: intPtr(76),
		},
		{
			ID:            "8",
			Title:         "Chicken Biryani with Raita",
			Description:   "Aromatic chicken biryani with mint raita and pickles. Contains dairy and meat.",
			Category:      postmodels.CategoryPreparedFood,
			Urgency:       postmodels.UrgencyHigh,
			Status:        postmodels.StatusClaimed,
			Location:      "Whitefield, Bangalore",
			Quantity:      "35 portions",
			PostedAt:      now.Add(-15 * time.Minute),
			ExpiryTime:    now.Add(6 * time.Hour),
			DonorName:     "Spice Route Catering",
			ImageURL:      "https://images.pexels.com/photos/1893556/pexels-photo-1893556.jpeg",
			Distance:      floatPtr(4.2),
			PriorityScore: intPtr(82),
		},
	}
}
