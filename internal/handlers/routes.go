package handlers

import (
	"github.com/gin-gonic/gin"

	"io.winapps.foodshare/internal/middleware"
)

// RegisterDashboardRoutes mounts the dashboard endpoints under group/dashboards/:role.
func RegisterDashboardRoutes(group *gin.RouterGroup, h *DashboardHandler) {
	dashboards := group.Group("/dashboards/:role")
	dashboards.Use(middleware.RoleMiddleware())
	{
		dashboards.GET("/posts", h.ListPosts)
		dashboards.POST("/posts/search", h.SearchPosts)
		dashboards.GET("/posts/recent", h.RecentPosts)
		dashboards.GET("/filters", h.GetFilters)
		dashboards.PUT("/filters", h.UpdateFilters)
		dashboards.DELETE("/filters", h.ClearFilters)
	}
}
