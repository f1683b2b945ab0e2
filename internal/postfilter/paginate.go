package postfilter

import postmodels "io.winapps.foodshare/internal/models/post"

// PageResult is one page of a filtered result. StartIndex and EndIndex are 1-based and
// inclusive; both are 0 when there is nothing to show.
type PageResult struct {
	PageItems   []postmodels.FoodPost `json:"pageItems"`
	CurrentPage int                   `json:"currentPage"`
	PageSize    int                   `json:"pageSize"`
	TotalPages  int                   `json:"totalPages"`
	TotalCount  int                   `json:"totalCount"`
	StartIndex  int                   `json:"startIndex"`
	EndIndex    int                   `json:"endIndex"`
	HasNext     bool                  `json:"hasNext"`
	HasPrevious bool                  `json:"hasPrevious"`
}

// Paginate slices items into the requested zero-based page, clamping out-of-range
// requests onto the nearest valid page. A non-positive pageSize uses DefaultPageSize.
// An empty input has zero pages.
func Paginate(items []postmodels.FoodPost, page, pageSize int) PageResult {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)

	result := PageResult{
		PageItems:   []postmodels.FoodPost{},
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalCount:  total,
	}
	if total == 0 {
		return result
	}

	start := page * pageSize
	end := min(start+pageSize, total)

	result.PageItems = items[start:end:end]
	result.StartIndex = start + 1
	result.EndIndex = end
	result.HasPrevious = page > 0
	result.HasNext = page < totalPages-1
	return result
}

// TotalPages is ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage forces page into [0, max(0, totalPages-1)].
func ClampPage(page, totalPages int) int {
	if page >= totalPages {
		page = totalPages - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}
