package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"io.winapps.foodshare/internal/config"
	"io.winapps.foodshare/internal/db"
	"io.winapps.foodshare/internal/filterstore"
	"io.winapps.foodshare/internal/handlers"
	"io.winapps.foodshare/internal/logger"
	"io.winapps.foodshare/internal/middleware"
	"io.winapps.foodshare/internal/postfilter"
	"io.winapps.foodshare/internal/posts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sugar, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		sugar.Fatalw("Invalid dashboard timezone", "error", err)
	}

	// Initialize post source
	var source posts.Source
	var postgresDB *pgxpool.Pool
	switch cfg.Dashboard.PostsSource {
	case config.PostsSourcePostgres:
		postgresDB, err = db.InitPostgres(cfg.Database)
		if err != nil {
			sugar.Fatalw("Failed to initialize PostgreSQL", "error", err)
		}
		defer postgresDB.Close()
		source = posts.NewPostgresSource(postgresDB)
	default:
		sugar.Infow("Serving seeded demo posts from memory")
		source = posts.NewMemorySource(posts.SeedPosts(time.Now()))
	}

	snapshot := posts.NewSnapshot(source, sugar)
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := snapshot.Refresh(initCtx); err != nil {
		// Requests get 503 until the scheduled refresh succeeds
		sugar.Errorw("Initial post snapshot failed", "error", err)
	}
	initCancel()

	refresher, err := snapshot.StartRefresher(cfg.Dashboard.RefreshSchedule)
	if err != nil {
		sugar.Fatalw("Failed to schedule snapshot refresh", "error", err)
	}

	// Initialize filter store
	var store filterstore.Store
	var redisClient *redis.Client
	switch cfg.Dashboard.FilterStore {
	case config.FilterStoreRedis:
		redisClient, err = db.InitRedis(cfg.Redis)
		if err != nil {
			sugar.Fatalw("Failed to initialize Redis", "error", err)
		}
		defer redisClient.Close()
		store = filterstore.NewRedisStore(redisClient, cfg.Dashboard.FilterTTL)
	default:
		store = filterstore.NewMemoryStore()
	}
	persister := filterstore.NewPersister(store, cfg.Dashboard.SearchDebounce, sugar)

	engine := postfilter.NewEngine(loc, cfg.Dashboard.PageSize)
	dashboardHandler := handlers.NewDashboardHandler(snapshot, persister, engine, cfg.Dashboard.RecentLimit, sugar)

	// Initialize Gin router
	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RequestLoggingMiddleware(sugar),
		middleware.RecoveryMiddleware(sugar),
	)

	// Add CORS middleware for the dashboards
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := router.Group("/api/v1")
	handlers.RegisterDashboardRoutes(v1, dashboardHandler)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "postsRefreshedAt": snapshot.RefreshedAt()}
		if _, err := snapshot.Posts(); err != nil {
			status["status"] = "degraded"
		}
		c.JSON(http.StatusOK, status)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.App.Port, "posts_source", cfg.Dashboard.PostsSource, "filter_store", cfg.Dashboard.FilterStore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Infow("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Server forced to shutdown", "error", err)
	}

	<-refresher.Stop().Done()
	persister.Close()
	sugar.Infow("Server exited")
}
