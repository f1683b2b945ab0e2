package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"io.winapps.foodshare/internal/metrics"
	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
	listmodels "io.winapps.foodshare/internal/models/list_posts"
	"io.winapps.foodshare/internal/postfilter"
	"io.winapps.foodshare/internal/posts"
)

// ListPosts returns one page of the dashboard's posts. Filters come from the query string;
// when none are given the dashboard's saved filters are used.
func (h *DashboardHandler) ListPosts(c *gin.Context) {
	role, ok := roleFromContext(c)
	if !ok {
		return
	}

	spec := postfilter.DefaultSpec()
	if hasFilterParams(c) {
		if err := c.ShouldBindQuery(&spec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
			return
		}
	} else {
		saved, _, err := h.persister.Load(c.Request.Context(), role)
		if err != nil {
			logWithContext(h.logger, c, "warn", "Falling back to default filters", "error", err)
			saved = postfilter.DefaultSpec()
		}
		spec = saved

		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
				return
			}
			spec.Page = page
		}
	}

	h.respondWithPosts(c, role, "list", spec)
}

func hasFilterParams(c *gin.Context) bool {
	query := c.Request.URL.Query()
	for _, key := range listmodels.FilterQueryKeys {
		if _, ok := query[key]; ok {
			return true
		}
	}
	return false
}

func (h *DashboardHandler) respondWithPosts(c *gin.Context, role dashboardmodels.Role, endpoint string, spec postfilter.FilterSpec) {
	all, err := h.snapshot.Posts()
	if err != nil {
		if errors.Is(err, posts.ErrNotLoaded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Posts are not available yet"})
			return
		}
		h.logError(c, err, "Failed to read post snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	start := time.Now()
	result := h.engine.Apply(all, spec)
	metrics.PostQueryDuration.WithLabelValues(role.String()).Observe(time.Since(start).Seconds())
	metrics.PostQueryMatches.WithLabelValues(role.String()).Observe(float64(result.Page.TotalCount))
	metrics.PostQueries.WithLabelValues(role.String(), endpoint).Inc()

	logWithContext(h.logger, c, "debug", "Filtered posts",
		"total", result.Page.TotalCount,
		"page", result.Page.CurrentPage,
		"total_pages", result.Page.TotalPages,
	)

	c.JSON(http.StatusOK, listmodels.NewListPostsResponse(result))
}
