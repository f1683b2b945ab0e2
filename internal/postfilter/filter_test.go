package postfilter

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postmodels "io.winapps.foodshare/internal/models/post"
)

var testLoc = time.FixedZone("IST", 5*60*60+30*60)

func fixedEngine(now time.Time) *Engine {
	return &Engine{
		Location: testLoc,
		Now:      func() time.Time { return now },
		PageSize: DefaultPageSize,
	}
}

func samplePosts() []postmodels.FoodPost {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, testLoc)
	return []postmodels.FoodPost{
		{
			ID:          "1",
			Title:       "Fresh Vegetable Curry",
			Description: "Mild curry with seasonal vegetables, serves 40",
			Category:    postmodels.CategoryPreparedFood,
			Urgency:     postmodels.UrgencyHigh,
			Status:      postmodels.StatusActive,
			Location:    "Koramangala, Bangalore",
			Quantity:    "40 servings",
			PostedAt:    base,
			ExpiryTime:  base.Add(4 * time.Hour),
		},
		{
			ID:          "2",
			Title:       "Assorted Bread and Pastries",
			Description: "Day-old croissants and loaves",
			Category:    postmodels.CategoryBakery,
			Urgency:     postmodels.UrgencyMedium,
			Status:      postmodels.StatusMatched,
			Location:    "Indiranagar",
			Quantity:    "15 kg",
			PostedAt:    base.Add(-26 * time.Hour),
			ExpiryTime:  base.Add(20 * time.Hour),
		},
		{
			ID:          "3",
			Title:       "Fruit Basket",
			Description: "Apples, bananas and oranges",
			Category:    postmodels.CategoryFreshProduce,
			Urgency:     postmodels.UrgencyLow,
			Status:      postmodels.StatusActive,
			Location:    "Whitefield Curry House",
			Quantity:    "8 kg",
			PostedAt:    base.Add(-10 * 24 * time.Hour),
			ExpiryTime:  base.Add(48 * time.Hour),
		},
		{
			ID:          "4",
			Title:       "Milk Cartons",
			Description: "Sealed toned milk",
			Category:    postmodels.CategoryDairy,
			Urgency:     postmodels.UrgencyHigh,
			Status:      postmodels.StatusCollected,
			Location:    "HSR Layout",
			Quantity:    "30 litres",
			PostedAt:    base.Add(-40 * 24 * time.Hour),
			ExpiryTime:  base.Add(-30 * 24 * time.Hour),
		},
	}
}

func ids(posts []postmodels.FoodPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterPosts_DefaultSpecIsIdentity(t *testing.T) {
	posts := samplePosts()

	result := FilterPosts(posts, DefaultSpec())

	assert.Equal(t, posts, result.Items)
	assert.Equal(t, len(posts), result.TotalCount)
}

func TestFilterPosts_ZeroSpecIsIdentity(t *testing.T) {
	posts := samplePosts()

	result := FilterPosts(posts, FilterSpec{})

	assert.Equal(t, posts, result.Items)
}

func TestFilterPosts_SearchIsCaseInsensitive(t *testing.T) {
	posts := samplePosts()

	for _, term := range []string{"curry", "CURRY", "Curry", "  cUrRy "} {
		t.Run(term, func(t *testing.T) {
			spec := DefaultSpec()
			spec.Search = term

			result := FilterPosts(posts, spec)

			// post 3 matches on location only
			assert.Equal(t, []string{"1", "3"}, ids(result.Items))
		})
	}
}

func TestFilterPosts_SearchFields(t *testing.T) {
	posts := samplePosts()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "title", search: "pastries", want: []string{"2"}},
		{name: "description", search: "bananas", want: []string{"3"}},
		{name: "location", search: "hsr", want: []string{"4"}},
		{name: "no match", search: "sushi", want: []string{}},
		{name: "quantity is not searched", search: "litres", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultSpec()
			spec.Search = tt.search
			assert.Equal(t, tt.want, ids(FilterPosts(posts, spec).Items))
		})
	}
}

func TestFilterPosts_EnumPredicates(t *testing.T) {
	posts := samplePosts()

	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{name: "category", spec: FilterSpec{Category: "dairy"}, want: []string{"4"}},
		{name: "urgency", spec: FilterSpec{Urgency: "high"}, want: []string{"1", "4"}},
		{name: "status", spec: FilterSpec{Status: "active"}, want: []string{"1", "3"}},
		{name: "conjunction", spec: FilterSpec{Urgency: "high", Status: "active"}, want: []string{"1"}},
		{name: "unknown category behaves as all", spec: FilterSpec{Category: "seafood"}, want: []string{"1", "2", "3", "4"}},
		{name: "unknown status behaves as all", spec: FilterSpec{Status: "pending"}, want: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterPosts(posts, tt.spec).Items))
		})
	}
}

func TestFilterPosts_NoBakeryMatches(t *testing.T) {
	posts := samplePosts()[2:]

	result := FilterPosts(posts, FilterSpec{Category: string(postmodels.CategoryBakery)})

	assert.Equal(t, 0, result.TotalCount)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestFilterPosts_DateBoundsUseLocalDays(t *testing.T) {
	engine := fixedEngine(time.Date(2026, 3, 10, 18, 0, 0, 0, testLoc))
	posts := []postmodels.FoodPost{
		{ID: "yesterday-late", PostedAt: time.Date(2026, 3, 9, 23, 0, 0, 0, testLoc)},
		{ID: "today-morning", PostedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, testLoc)},
		{ID: "today-last-ms", PostedAt: time.Date(2026, 3, 10, 23, 59, 59, int(999*time.Millisecond), testLoc)},
		{ID: "tomorrow", PostedAt: time.Date(2026, 3, 11, 0, 0, 0, 0, testLoc)},
	}

	result := engine.FilterPosts(posts, FilterSpec{StartDate: "2026-03-10", EndDate: "2026-03-10"})

	assert.Equal(t, []string{"today-morning", "today-last-ms"}, ids(result.Items))
}

func TestFilterPosts_DateEdgeCases(t *testing.T) {
	engine := fixedEngine(time.Date(2026, 3, 10, 18, 0, 0, 0, testLoc))
	posts := samplePosts()

	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{name: "start only", spec: FilterSpec{StartDate: "2026-03-09"}, want: []string{"1", "2"}},
		{name: "end only", spec: FilterSpec{EndDate: "2026-03-01"}, want: []string{"3", "4"}},
		{name: "inverted range matches nothing", spec: FilterSpec{StartDate: "2026-03-10", EndDate: "2026-03-01"}, want: []string{}},
		{name: "malformed start ignored", spec: FilterSpec{StartDate: "10/03/2026"}, want: []string{"1", "2", "3", "4"}},
		{name: "malformed end ignored", spec: FilterSpec{EndDate: "yesterday"}, want: []string{"1", "2", "3", "4"}},
		{name: "rfc3339 truncated to date", spec: FilterSpec{StartDate: "2026-03-10T20:00:00+05:30"}, want: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(engine.FilterPosts(posts, tt.spec).Items))
		})
	}
}

func TestFilterPosts_DateRangePresets(t *testing.T) {
	engine := fixedEngine(time.Date(2026, 3, 10, 18, 0, 0, 0, testLoc))
	posts := samplePosts()

	tests := []struct {
		name string
		rng  DateRange
		want []string
	}{
		{name: "all", rng: DateRangeAll, want: []string{"1", "2", "3", "4"}},
		{name: "today", rng: DateRangeToday, want: []string{"1"}},
		{name: "week", rng: DateRangeWeek, want: []string{"1", "2"}},
		{name: "month", rng: DateRangeMonth, want: []string{"1", "2", "3"}},
		{name: "unknown", rng: "fortnight", want: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(engine.FilterPosts(posts, FilterSpec{DateRange: tt.rng}).Items))
		})
	}
}

func TestFilterPosts_SoundnessAndCompleteness(t *testing.T) {
	engine := fixedEngine(time.Date(2026, 3, 10, 18, 0, 0, 0, testLoc))
	posts := generatePosts(60)

	specs := []FilterSpec{
		{Search: "soup", Urgency: "high"},
		{Category: "bakery", Status: "matched"},
		{StartDate: "2026-02-20", EndDate: "2026-03-05", Urgency: "low"},
		{Search: "ward 3", Status: "matched"},
	}

	for i, spec := range specs {
		t.Run(fmt.Sprintf("spec-%d", i), func(t *testing.T) {
			result := engine.FilterPosts(posts, spec)
			require.NotEmpty(t, result.Items)

			included := map[string]bool{}
			for _, p := range result.Items {
				included[p.ID] = true
			}
			for _, post := range posts {
				assert.Equal(t, satisfiesEach(post, spec), included[post.ID], "post %s", post.ID)
			}
		})
	}
}

// satisfiesEach checks every predicate separately, without going through the engine.
func satisfiesEach(post postmodels.FoodPost, spec FilterSpec) bool {
	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(post.Title), needle) &&
			!strings.Contains(strings.ToLower(post.Description), needle) &&
			!strings.Contains(strings.ToLower(post.Location), needle) {
			return false
		}
	}
	if spec.Category != "" && string(post.Category) != spec.Category {
		return false
	}
	if spec.Urgency != "" && string(post.Urgency) != spec.Urgency {
		return false
	}
	if spec.Status != "" && string(post.Status) != spec.Status {
		return false
	}
	if spec.StartDate != "" {
		start, _ := time.ParseInLocation("2006-01-02", spec.StartDate, testLoc)
		if post.PostedAt.Before(start) {
			return false
		}
	}
	if spec.EndDate != "" {
		end, _ := time.ParseInLocation("2006-01-02", spec.EndDate, testLoc)
		if !post.PostedAt.Before(end.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

func TestFilterPosts_DeterministicAndNonMutating(t *testing.T) {
	posts := generatePosts(30)
	snapshot := make([]postmodels.FoodPost, len(posts))
	copy(snapshot, posts)
	spec := FilterSpec{Search: "rice", Sort: SortNewest}

	first := Apply(posts, spec)
	second := Apply(posts, spec)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, posts)
}

func TestNormalizeSpec(t *testing.T) {
	spec := NormalizeSpec(FilterSpec{
		Search:    "  bread ",
		Category:  "BAKERY",
		Urgency:   "medium",
		Status:    "picked_up",
		DateRange: "week",
		Sort:      "random",
		View:      "table",
		Page:      -3,
	})

	assert.Equal(t, "bread", spec.Search)
	assert.Equal(t, All, spec.Category)
	assert.Equal(t, "medium", spec.Urgency)
	assert.Equal(t, "picked_up", spec.Status)
	assert.Equal(t, DateRangeWeek, spec.DateRange)
	assert.Equal(t, SortNatural, spec.Sort)
	assert.Equal(t, ViewGrid, spec.View)
	assert.Equal(t, 0, spec.Page)
}

func TestFilterSpec_HasActiveFilters(t *testing.T) {
	assert.False(t, DefaultSpec().HasActiveFilters())
	assert.False(t, FilterSpec{View: ViewList, Sort: SortOldest, Page: 4}.HasActiveFilters())
	assert.True(t, FilterSpec{Search: "rice"}.HasActiveFilters())
	assert.True(t, FilterSpec{EndDate: "2026-01-01"}.HasActiveFilters())
	assert.True(t, FilterSpec{DateRange: DateRangeToday}.HasActiveFilters())
}

func TestSameConstraints(t *testing.T) {
	a := FilterSpec{Search: "rice", Category: "bakery", View: ViewGrid, Page: 2}
	b := FilterSpec{Search: " rice", Category: "bakery", View: ViewList, Sort: SortOldest}
	c := FilterSpec{Search: "rice", Category: "dairy"}

	assert.True(t, SameConstraints(a, b))
	assert.False(t, SameConstraints(a, c))
}

func generatePosts(n int) []postmodels.FoodPost {
	titles := []string{"Vegetable soup", "Fried rice", "Sourdough loaves", "Yogurt cups", "Orange juice"}
	urgencies := []postmodels.Urgency{postmodels.UrgencyHigh, postmodels.UrgencyMedium, postmodels.UrgencyLow}
	statuses := []postmodels.Status{postmodels.StatusActive, postmodels.StatusMatched, postmodels.StatusExpired}
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, testLoc)

	posts := make([]postmodels.FoodPost, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, postmodels.FoodPost{
			ID:          fmt.Sprintf("p-%02d", i),
			Title:       titles[i%len(titles)],
			Description: fmt.Sprintf("Batch %d", i),
			Category:    postmodels.Categories[i%len(postmodels.Categories)],
			Urgency:     urgencies[i%len(urgencies)],
			Status:      statuses[i%len(statuses)],
			Location:    fmt.Sprintf("Ward %d", i%7),
			PostedAt:    start.Add(-time.Duration(i*17) * time.Hour),
		})
	}
	return posts
}
