package models

import "io.winapps.foodshare/internal/postfilter"

type FiltersResponse struct {
	Role             string                `json:"role"`
	Filters          postfilter.FilterSpec `json:"filters"`
	Saved            bool                  `json:"saved"`
	HasActiveFilters bool                  `json:"hasActiveFilters"`
	Deferred         bool                  `json:"deferred,omitempty"`
}
