package models

import (
	postmodels "io.winapps.foodshare/internal/models/post"
	"io.winapps.foodshare/internal/postfilter"
)

type ListPostsResponse struct {
	Posts            []postmodels.FoodPost       `json:"posts"`
	Pagination       Pagination                  `json:"pagination"`
	PageWindow       []postfilter.PageWindowItem `json:"pageWindow"`
	Filters          postfilter.FilterSpec       `json:"filters"`
	HasActiveFilters bool                        `json:"hasActiveFilters"`
}

// Pagination is zero-based; StartIndex and EndIndex are the 1-based "showing x to y" bounds.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	StartIndex  int  `json:"startIndex"`
	EndIndex    int  `json:"endIndex"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

func NewListPostsResponse(result postfilter.Result) ListPostsResponse {
	page := result.Page
	return ListPostsResponse{
		Posts: page.PageItems,
		Pagination: Pagination{
			Page:        page.CurrentPage,
			PageSize:    page.PageSize,
			Total:       page.TotalCount,
			TotalPages:  page.TotalPages,
			StartIndex:  page.StartIndex,
			EndIndex:    page.EndIndex,
			HasNext:     page.HasNext,
			HasPrevious: page.HasPrevious,
		},
		PageWindow:       result.PageWindow,
		Filters:          result.Filters,
		HasActiveFilters: result.Filters.HasActiveFilters(),
	}
}
