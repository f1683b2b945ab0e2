package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"io.winapps.foodshare/internal/metrics"
	recentmodels "io.winapps.foodshare/internal/models/recent_posts"
	"io.winapps.foodshare/internal/postfilter"
	"io.winapps.foodshare/internal/posts"
)

const maxRecentLimit = 50

// RecentPosts returns the newest posts for the sidebar, ignoring any saved filters.
func (h *DashboardHandler) RecentPosts(c *gin.Context) {
	role, ok := roleFromContext(c)
	if !ok {
		return
	}

	limit := h.recentLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > maxRecentLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
			return
		}
		limit = parsed
	}

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

	recent := postfilter.RecentPosts(all, limit)
	metrics.PostQueries.WithLabelValues(role.String(), "recent").Inc()

	c.JSON(http.StatusOK, recentmodels.RecentPostsResponse{
		Posts: recent,
		Count: len(recent),
	})
}
