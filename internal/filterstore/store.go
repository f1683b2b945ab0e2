// Package filterstore keeps the last filter spec used on each dashboard.
package filterstore

import (
	"context"
	"encoding/json"
	"fmt"

	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
	"io.winapps.foodshare/internal/postfilter"
)

// Store persists one spec per role. Load reports found=false with the default spec when
// nothing has been saved. The page index is never stored.
type Store interface {
	Load(ctx context.Context, role dashboardmodels.Role) (spec postfilter.FilterSpec, found bool, err error)
	Save(ctx context.Context, role dashboardmodels.Role, spec postfilter.FilterSpec) error
	Clear(ctx context.Context, role dashboardmodels.Role) error
}

// storedSpec is the persisted shape of a FilterSpec.
type storedSpec struct {
	Search    string               `json:"search"`
	Category  string               `json:"category"`
	Urgency   string               `json:"urgency"`
	Status    string               `json:"status"`
	StartDate string               `json:"startDate"`
	EndDate   string               `json:"endDate"`
	DateRange postfilter.DateRange `json:"dateRange,omitempty"`
	Sort      postfilter.SortOrder `json:"sort,omitempty"`
	View      postfilter.View      `json:"view"`
}

func key(role dashboardmodels.Role) string {
	return fmt.Sprintf("dashboard_filters:%s", role)
}

func encode(spec postfilter.FilterSpec) ([]byte, error) {
	spec = postfilter.NormalizeSpec(spec)
	return json.Marshal(storedSpec{
		Search:    spec.Search,
		Category:  spec.Category,
		Urgency:   spec.Urgency,
		Status:    spec.Status,
		StartDate: spec.StartDate,
		EndDate:   spec.EndDate,
		DateRange: spec.DateRange,
		Sort:      spec.Sort,
		View:      spec.View,
	})
}

// decode overlays the saved fields on the defaults, so a snapshot written by an older
// version with fewer fields still hydrates cleanly.
func decode(data []byte) (postfilter.FilterSpec, error) {
	defaults := postfilter.DefaultSpec()
	stored := storedSpec{
		Category:  defaults.Category,
		Urgency:   defaults.Urgency,
		Status:    defaults.Status,
		DateRange: defaults.DateRange,
		View:      defaults.View,
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return defaults, fmt.Errorf("failed to decode saved filters: %w", err)
	}
	return postfilter.NormalizeSpec(postfilter.FilterSpec{
		Search:    stored.Search,
		Category:  stored.Category,
		Urgency:   stored.Urgency,
		Status:    stored.Status,
		StartDate: stored.StartDate,
		EndDate:   stored.EndDate,
		DateRange: stored.DateRange,
		Sort:      stored.Sort,
		View:      stored.View,
	}), nil
}
