package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
)

// RoleKey is the gin context key holding the dashboard role of a request.
const RoleKey = "role"

// RoleMiddleware validates the :role path parameter and sets it in the request context
func RoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := dashboardmodels.ParseRole(c.Param("role"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown dashboard role, expected donor or recipient"})
			c.Abort()
			return
		}

		c.Set(RoleKey, role)
		c.Next()
	}
}
