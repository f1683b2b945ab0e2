package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	searchmodels "io.winapps.foodshare/internal/models/search_posts"
)

// SearchPosts is ListPosts with the filters in a JSON body. An empty body lists everything.
func (h *DashboardHandler) SearchPosts(c *gin.Context) {
	role, ok := roleFromContext(c)
	if !ok {
		return
	}

	var req searchmodels.SearchPostsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.respondWithPosts(c, role, "search", req.Spec())
}
