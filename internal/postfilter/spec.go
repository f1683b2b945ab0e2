package postfilter

import (
	"strings"

	postmodels "io.winapps.foodshare/internal/models/post"
)

// All disables the category, urgency, status and date-range constraints.
const All = "all"

// DefaultPageSize matches the dashboards' grid of twelve cards.
const DefaultPageSize = 12

// DefaultRecentLimit is the number of posts shown in the recent-posts sidebar.
const DefaultRecentLimit = 5

type View string

const (
	ViewGrid View = "grid"
	ViewList View = "list"
)

type SortOrder string

const (
	SortNatural SortOrder = ""
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
)

// DateRange presets are relative to the engine clock.
type DateRange string

const (
	DateRangeAll   DateRange = All
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// FilterSpec is the full set of filter, sort and pagination parameters chosen on a
// dashboard. StartDate and EndDate are YYYY-MM-DD strings; anything unparseable is
// treated as unset.
type FilterSpec struct {
	Search    string    `json:"search" form:"search"`
	Category  string    `json:"category" form:"category"`
	Urgency   string    `json:"urgency" form:"urgency"`
	Status    string    `json:"status" form:"status"`
	StartDate string    `json:"startDate" form:"startDate"`
	EndDate   string    `json:"endDate" form:"endDate"`
	DateRange DateRange `json:"dateRange" form:"dateRange"`
	Sort      SortOrder `json:"sort" form:"sort"`
	View      View      `json:"view" form:"view"`
	Page      int       `json:"page" form:"page"`
}

// DefaultSpec returns a spec with every constraint disabled.
func DefaultSpec() FilterSpec {
	return FilterSpec{
		Category:  All,
		Urgency:   All,
		Status:    All,
		DateRange: DateRangeAll,
		Sort:      SortNatural,
		View:      ViewGrid,
	}
}

// NormalizeSpec maps unknown enum values onto their unconstrained defaults so the
// engine never sees untyped input.
func NormalizeSpec(spec FilterSpec) FilterSpec {
	out := spec
	out.Search = strings.TrimSpace(spec.Search)
	out.StartDate = strings.TrimSpace(spec.StartDate)
	out.EndDate = strings.TrimSpace(spec.EndDate)

	if !postmodels.Category(spec.Category).Valid() {
		out.Category = All
	}
	if !postmodels.Urgency(spec.Urgency).Valid() {
		out.Urgency = All
	}
	if !postmodels.Status(spec.Status).Valid() {
		out.Status = All
	}

	switch spec.DateRange {
	case DateRangeToday, DateRangeWeek, DateRangeMonth:
	default:
		out.DateRange = DateRangeAll
	}

	switch spec.Sort {
	case SortNewest, SortOldest:
	default:
		out.Sort = SortNatural
	}

	switch spec.View {
	case ViewList:
	default:
		out.View = ViewGrid
	}

	if out.Page < 0 {
		out.Page = 0
	}
	return out
}

// HasActiveFilters reports whether any constraint narrows the result set. View, sort
// and page are presentation choices and do not count.
func (s FilterSpec) HasActiveFilters() bool {
	n := NormalizeSpec(s)
	return n.Search != "" ||
		n.Category != All ||
		n.Urgency != All ||
		n.Status != All ||
		n.StartDate != "" ||
		n.EndDate != "" ||
		n.DateRange != DateRangeAll
}

// SameConstraints reports whether two specs select the same posts. A change that
// leaves constraints equal (view, sort, page) must not reset the current page.
func SameConstraints(a, b FilterSpec) bool {
	a, b = NormalizeSpec(a), NormalizeSpec(b)
	a.View, b.View = "", ""
	a.Sort, b.Sort = "", ""
	a.Page, b.Page = 0, 0
	return a == b
}
