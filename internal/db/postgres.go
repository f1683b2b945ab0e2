package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"io.winapps.foodshare/internal/config"
)

// InitPostgres initializes and returns a PostgreSQL connection pool
func InitPostgres(cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30
	poolConfig.HealthCheckPeriod = time.Minute * 5

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pool, nil
}

// createTables creates the food_posts table and its indexes if they don't exist
func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	foodPostsTable := `
		CREATE TABLE IF NOT EXISTS food_posts (
			id VARCHAR(64) PRIMARY KEY,
			title VARCHAR(500) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category VARCHAR(32) NOT NULL CHECK (category IN ('prepared-food', 'fresh-produce', 'packaged-goods', 'dairy', 'bakery', 'beverages')),
			urgency VARCHAR(16) NOT NULL CHECK (urgency IN ('high', 'medium', 'low')),
			status VARCHAR(16) NOT NULL CHECK (status IN ('active', 'matched', 'claimed', 'picked_up', 'expired', 'collected')),
			location VARCHAR(255) NOT NULL DEFAULT '',
			quantity VARCHAR(100) NOT NULL DEFAULT '',
			posted_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			expiry_time TIMESTAMP WITH TIME ZONE,
			donor_name VARCHAR(255),
			image_url TEXT,
			distance_km DOUBLE PRECISION,
			priority_score INTEGER,
			match_count INTEGER,
			match_score INTEGER,
			recipient VARCHAR(255)
		);
	`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_food_posts_posted_at ON food_posts(posted_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_food_posts_status ON food_posts(status);`,
		`CREATE INDEX IF NOT EXISTS idx_food_posts_category ON food_posts(category);`,
	}

	if _, err := pool.Exec(ctx, foodPostsTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for _, index := range indexes {
		if _, err := pool.Exec(ctx, index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
