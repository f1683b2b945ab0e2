package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	filtermodels "io.winapps.foodshare/internal/models/filter_prefs"
	"io.winapps.foodshare/internal/postfilter"
)

// GetFilters returns the dashboard's saved filters, or the defaults when none are saved.
func (h *DashboardHandler) GetFilters(c *gin.Context) {
	role, ok := roleFromContext(c)
	if !ok {
		return
	}

	spec, saved, err := h.persister.Load(c.Request.Context(), role)
	if err != nil {
		h.logError(c, err, "Failed to load saved filters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved filters"})
		return
	}

	c.JSON(http.StatusOK, filtermodels.FiltersResponse{
		Role:             role.String(),
		Filters:          spec,
		Saved:            saved,
		HasActiveFilters: spec.HasActiveFilters(),
	})
}

// UpdateFilters saves the dashboard's full filter state. Fields left out of the body take
// their defaults, and the page always resets to the first one.
func (h *DashboardHandler) UpdateFilters(c *gin.Context) {
	role, ok := roleFromContext(c)
	if !ok {
		return
	}

	spec := postfilter.DefaultSpec()
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	spec = postfilter.NormalizeSpec(spec)
	spec.Page = 0

	deferred, err := h.persister.Save(c.Request.Context(), role, spec)
	if err != nil {
		h.logError(c, err, "Failed to save filters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save filters"})
		return
	}

	c.JSON(http.StatusOK, filtermodels.FiltersResponse{
		Role:             role.String(),
		Filters:          spec,
		Saved:            true,
		HasActiveFilters: spec.HasActiveFilters(),
		Deferred:         deferred,
	})
}

// ClearFilters resets every constraint. The chosen view survives the reset.
func (h *DashboardHandler) ClearFilters(c *gin.Context) {
	role, ok := roleFromContext(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	current, _, err := h.persister.Load(ctx, role)
	if err != nil {
		logWithContext(h.logger, c, "warn", "Could not read view before clearing filters", "error", err)
		current = postfilter.DefaultSpec()
	}

	if err := h.persister.Clear(ctx, role); err != nil {
		h.logError(c, err, "Failed to clear filters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear filters"})
		return
	}

	cleared := postfilter.DefaultSpec()
	cleared.View = current.View
	saved := false
	if cleared.View != postfilter.ViewGrid {
		if _, err := h.persister.Save(ctx, role, cleared); err != nil {
			h.logError(c, err, "Failed to keep view after clearing filters")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear filters"})
			return
		}
		saved = true
	}

	c.JSON(http.StatusOK, filtermodels.FiltersResponse{
		Role:    role.String(),
		Filters: cleared,
		Saved:   saved,
	})
}
