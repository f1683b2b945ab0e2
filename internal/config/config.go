package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	PostsSourceMemory   = "memory"
	PostsSourcePostgres = "postgres"

	FilterStoreMemory = "memory"
	FilterStoreRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Dashboard DashboardConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
}

// AppConfig holds HTTP server settings
type AppConfig struct {
	Port            string
	Env             string
	ShutdownTimeout time.Duration
}

// DashboardConfig holds filtering, pagination and persistence settings
type DashboardConfig struct {
	PageSize        int
	RecentLimit     int
	SearchDebounce  time.Duration
	RefreshSchedule string
	FilterTTL       time.Duration
	Timezone        string
	PostsSource     string // memory, postgres
	FilterStore     string // memory, redis
}

// DatabaseConfig holds PostgreSQL settings. URL wins over the individual fields.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// Load reads configuration from, in order of precedence: environment variables, a .env
// file, an optional config.yaml, and built-in defaults.
func Load() (*Config, error) {
	// Missing .env is fine outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Port:            v.GetString("port"),
			Env:             v.GetString("app_env"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Dashboard: DashboardConfig{
			PageSize:        v.GetInt("page_size"),
			RecentLimit:     v.GetInt("recent_limit"),
			SearchDebounce:  v.GetDuration("search_debounce"),
			RefreshSchedule: v.GetString("snapshot_refresh_schedule"),
			FilterTTL:       v.GetDuration("filter_ttl"),
			Timezone:        v.GetString("timezone"),
			PostsSource:     strings.ToLower(v.GetString("posts_source")),
			FilterStore:     strings.ToLower(v.GetString("filter_store")),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("database_url"),
			Host:     v.GetString("postgres_host"),
			Port:     v.GetString("postgres_port"),
			User:     v.GetString("postgres_user"),
			Password: v.GetString("postgres_password"),
			DBName:   v.GetString("postgres_db"),
			SSLMode:  v.GetString("postgres_sslmode"),
			MaxConns: v.GetInt32("postgres_max_conns"),
			MinConns: v.GetInt32("postgres_min_conns"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis_host"),
			Port:     v.GetString("redis_port"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "9091")
	v.SetDefault("app_env", "development")
	v.SetDefault("shutdown_timeout", 5*time.Second)

	v.SetDefault("page_size", 12)
	v.SetDefault("recent_limit", 5)
	v.SetDefault("search_debounce", 300*time.Millisecond)
	v.SetDefault("snapshot_refresh_schedule", "@every 1m")
	v.SetDefault("filter_ttl", 0)
	v.SetDefault("timezone", "Local")
	v.SetDefault("posts_source", PostsSourcePostgres)
	v.SetDefault("filter_store", FilterStoreRedis)

	v.SetDefault("database_url", "")
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", "5432")
	v.SetDefault("postgres_user", "postgres")
	v.SetDefault("postgres_password", "")
	v.SetDefault("postgres_db", "foodshare")
	v.SetDefault("postgres_sslmode", "disable")
	v.SetDefault("postgres_max_conns", 25)
	v.SetDefault("postgres_min_conns", 5)

	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return errors.New("port is required")
	}
	if c.Dashboard.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.Dashboard.PageSize)
	}
	if c.Dashboard.RecentLimit <= 0 {
		return fmt.Errorf("recent limit must be positive, got %d", c.Dashboard.RecentLimit)
	}
	if c.Dashboard.SearchDebounce < 0 {
		return fmt.Errorf("search debounce must not be negative, got %s", c.Dashboard.SearchDebounce)
	}
	if c.Dashboard.FilterTTL < 0 {
		return fmt.Errorf("filter ttl must not be negative, got %s", c.Dashboard.FilterTTL)
	}
	if _, err := c.Dashboard.Location(); err != nil {
		return err
	}
	switch c.Dashboard.PostsSource {
	case PostsSourceMemory, PostsSourcePostgres:
	default:
		return fmt.Errorf("unknown posts source %q", c.Dashboard.PostsSource)
	}
	switch c.Dashboard.FilterStore {
	case FilterStoreMemory, FilterStoreRedis:
	default:
		return fmt.Errorf("unknown filter store %q", c.Dashboard.FilterStore)
	}
	return nil
}

// Location resolves the time zone calendar dates are interpreted in.
func (d DashboardConfig) Location() (*time.Location, error) {
	if d.Timezone == "" || strings.EqualFold(d.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", d.Timezone, err)
	}
	return loc, nil
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Addr returns host:port for the Redis client.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
