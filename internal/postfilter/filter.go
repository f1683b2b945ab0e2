// Package postfilter computes the visible page of food posts for a dashboard.
//
// Everything here is pure: inputs are never mutated, nothing blocks, and no
// operation fails. Bad input degrades to "no constraint" or an empty result.
package postfilter

import (
	"strings"
	"time"

	postmodels "io.winapps.foodshare/internal/models/post"
)

const dateLayout = "2006-01-02"

// FilteredResult holds every post matching a spec, before pagination.
type FilteredResult struct {
	Items      []postmodels.FoodPost `json:"items"`
	TotalCount int                   `json:"totalCount"`
}

// Engine carries the location used to interpret calendar dates and the clock used by
// date-range presets. The zero value uses time.Local and time.Now.
type Engine struct {
	Location *time.Location
	Now      func() time.Time
	PageSize int
}

// NewEngine returns an engine bound to loc with a fixed page size.
func NewEngine(loc *time.Location, pageSize int) *Engine {
	return &Engine{Location: loc, Now: time.Now, PageSize: pageSize}
}

var defaultEngine = &Engine{}

// FilterPosts applies spec to posts using the local time zone.
func FilterPosts(posts []postmodels.FoodPost, spec FilterSpec) FilteredResult {
	return defaultEngine.FilterPosts(posts, spec)
}

func (e *Engine) location() *time.Location {
	if e == nil || e.Location == nil {
		return time.Local
	}
	return e.Location
}

func (e *Engine) now() time.Time {
	if e == nil || e.Now == nil {
		return time.Now().In(e.location())
	}
	return e.Now().In(e.location())
}

func (e *Engine) pageSize() int {
	if e == nil || e.PageSize <= 0 {
		return DefaultPageSize
	}
	return e.PageSize
}

// FilterPosts returns the posts passing every predicate of spec, in input order.
func (e *Engine) FilterPosts(posts []postmodels.FoodPost, spec FilterSpec) FilteredResult {
	p := e.compile(spec)

	items := make([]postmodels.FoodPost, 0, len(posts))
	for _, post := range posts {
		if p.match(post) {
			items = append(items, post)
		}
	}
	return FilteredResult{Items: items, TotalCount: len(items)}
}

// predicate is a spec resolved against a location and a clock.
type predicate struct {
	search   string
	category string
	urgency  string
	status   string

	from *time.Time
	to   *time.Time

	rangeKind DateRange
	now       time.Time
	loc       *time.Location
}

func (e *Engine) compile(spec FilterSpec) predicate {
	spec = NormalizeSpec(spec)
	loc := e.location()

	p := predicate{
		search:    strings.ToLower(spec.Search),
		category:  spec.Category,
		urgency:   spec.Urgency,
		status:    spec.Status,
		rangeKind: spec.DateRange,
		loc:       loc,
	}
	if p.rangeKind != DateRangeAll {
		p.now = e.now()
	}

	if start, ok := parseDate(spec.StartDate, loc); ok {
		p.from = &start
	}
	if end, ok := parseDate(spec.EndDate, loc); ok {
		eod := endOfDay(end)
		p.to = &eod
	}
	return p
}

func (p predicate) match(post postmodels.FoodPost) bool {
	if p.search != "" && !matchesSearch(post, p.search) {
		return false
	}
	if p.category != All && string(post.Category) != p.category {
		return false
	}
	if p.urgency != All && string(post.Urgency) != p.urgency {
		return false
	}
	if p.status != All && string(post.Status) != p.status {
		return false
	}
	if p.from != nil && post.PostedAt.Before(*p.from) {
		return false
	}
	if p.to != nil && post.PostedAt.After(*p.to) {
		return false
	}
	return p.matchRange(post.PostedAt)
}

func (p predicate) matchRange(postedAt time.Time) bool {
	switch p.rangeKind {
	case DateRangeToday:
		py, pm, pd := postedAt.In(p.loc).Date()
		ny, nm, nd := p.now.Date()
		return py == ny && pm == nm && pd == nd
	case DateRangeWeek:
		return !postedAt.Before(p.now.Add(-7 * 24 * time.Hour))
	case DateRangeMonth:
		return !postedAt.Before(p.now.Add(-30 * 24 * time.Hour))
	}
	return true
}

// matchesSearch expects needle already lower-cased.
func matchesSearch(post postmodels.FoodPost, needle string) bool {
	return strings.Contains(strings.ToLower(post.Title), needle) ||
		strings.Contains(strings.ToLower(post.Description), needle) ||
		strings.Contains(strings.ToLower(post.Location), needle)
}

// parseDate reads a calendar date at local midnight. Full RFC 3339 timestamps are
// accepted and truncated to their date in loc.
func parseDate(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

func endOfDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), day.Location())
}
