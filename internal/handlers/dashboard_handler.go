package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.foodshare/internal/middleware"
	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
	postmodels "io.winapps.foodshare/internal/models/post"
	"io.winapps.foodshare/internal/postfilter"
)

// PostSnapshot is the read side of posts.Snapshot.
type PostSnapshot interface {
	Posts() ([]postmodels.FoodPost, error)
}

// FilterPersister is the subset of filterstore.Persister the handlers use.
type FilterPersister interface {
	Load(ctx context.Context, role dashboardmodels.Role) (postfilter.FilterSpec, bool, error)
	Save(ctx context.Context, role dashboardmodels.Role, spec postfilter.FilterSpec) (bool, error)
	Clear(ctx context.Context, role dashboardmodels.Role) error
}

type DashboardHandler struct {
	snapshot    PostSnapshot
	persister   FilterPersister
	engine      *postfilter.Engine
	recentLimit int
	logger      *zap.SugaredLogger
}

func NewDashboardHandler(snapshot PostSnapshot, persister FilterPersister, engine *postfilter.Engine, recentLimit int, logger *zap.SugaredLogger) *DashboardHandler {
	if recentLimit <= 0 {
		recentLimit = postfilter.DefaultRecentLimit
	}
	return &DashboardHandler{
		snapshot:    snapshot,
		persister:   persister,
		engine:      engine,
		recentLimit: recentLimit,
		logger:      logger,
	}
}

// roleFromContext reads the role set by middleware.RoleMiddleware. It writes the error
// response itself when the role is missing.
func roleFromContext(c *gin.Context) (dashboardmodels.Role, bool) {
	val, exists := c.Get(middleware.RoleKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid dashboard context"})
		return "", false
	}
	role, ok := val.(dashboardmodels.Role)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid dashboard context"})
		return "", false
	}
	return role, true
}
