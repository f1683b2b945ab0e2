package models

import "io.winapps.foodshare/internal/postfilter"

type SearchPostsRequest struct {
	SearchQuery string      `json:"searchQuery,omitempty"`
	Filters     PostFilters `json:"filters,omitempty"`
	Page        int         `json:"page,omitempty"` // zero-based
}

type PostFilters struct {
	Category  string `json:"category,omitempty"`  // "all" (default) or a category id
	Urgency   string `json:"urgency,omitempty"`   // "all" (default), "high", "medium", "low"
	Status    string `json:"status,omitempty"`    // "all" (default) or a status id
	StartDate string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"endDate,omitempty"`   // YYYY-MM-DD
	DateRange string `json:"dateRange,omitempty"` // "all" (default), "today", "week", "month"
	SortRule  string `json:"sortRule,omitempty"`  // "newest", "oldest", or empty for source order
	View      string `json:"view,omitempty"`      // "grid" (default) or "list"
}

// Spec converts the request into a normalized filter spec.
func (r SearchPostsRequest) Spec() postfilter.FilterSpec {
	return postfilter.NormalizeSpec(postfilter.FilterSpec{
		Search:    r.SearchQuery,
		Category:  r.Filters.Category,
		Urgency:   r.Filters.Urgency,
		Status:    r.Filters.Status,
		StartDate: r.Filters.StartDate,
		EndDate:   r.Filters.EndDate,
		DateRange: postfilter.DateRange(r.Filters.DateRange),
		Sort:      postfilter.SortOrder(r.Filters.SortRule),
		View:      postfilter.View(r.Filters.View),
		Page:      r.Page,
	})
}
