package postfilter

import (
	"sort"

	postmodels "io.winapps.foodshare/internal/models/post"
)

// SortPosts returns a copy of items ordered by PostedAt. Ties keep their input order.
// SortNatural returns the copy untouched.
func SortPosts(items []postmodels.FoodPost, order SortOrder) []postmodels.FoodPost {
	sorted := make([]postmodels.FoodPost, len(items))
	copy(sorted, items)

	switch order {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PostedAt.After(sorted[j].PostedAt)
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PostedAt.Before(sorted[j].PostedAt)
		})
	}
	return sorted
}

// RecentPosts returns the newest limit posts, as shown in the recipient sidebar.
func RecentPosts(posts []postmodels.FoodPost, limit int) []postmodels.FoodPost {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	sorted := SortPosts(posts, SortNewest)
	if len(sorted) > limit {
		sorted = sorted[:limit:limit]
	}
	return sorted
}
