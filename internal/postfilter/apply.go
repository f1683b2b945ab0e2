package postfilter

import postmodels "io.winapps.foodshare/internal/models/post"

// Result is everything a dashboard needs to render one page of posts.
type Result struct {
	Filters    FilterSpec       `json:"filters"`
	Page       PageResult       `json:"page"`
	PageWindow []PageWindowItem `json:"pageWindow"`
}

// Apply normalizes spec, filters and sorts posts, and cuts the requested page. The
// returned Filters carry the page actually shown after clamping.
func (e *Engine) Apply(posts []postmodels.FoodPost, spec FilterSpec) Result {
	spec = NormalizeSpec(spec)

	filtered := e.FilterPosts(posts, spec)
	ordered := SortPosts(filtered.Items, spec.Sort)
	page := Paginate(ordered, spec.Page, e.pageSize())

	spec.Page = page.CurrentPage
	return Result{
		Filters:    spec,
		Page:       page,
		PageWindow: BuildPageWindow(page.CurrentPage, page.TotalPages),
	}
}

// Apply runs the default engine.
func Apply(posts []postmodels.FoodPost, spec FilterSpec) Result {
	return defaultEngine.Apply(posts, spec)
}
