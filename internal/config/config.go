// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/export.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/albapepper/nhl-stats-export/internal/export"
	"github.com/albapepper/nhl-stats-export/internal/provider/nhl"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string `validate:"required"`
	APIPort     int    `validate:"min=1,max=65535"`
	Environment string `validate:"oneof=development staging production"`
	LogLevel    string `validate:"oneof=debug info warn error"`

	// CORS
	CORSAllowOrigins []string

	// Inbound rate limiting. Idle clients are evicted every RateLimitSweep
	// (0 disables eviction).
	RateLimitEnabled  bool
	RateLimitRequests int           `validate:"min=1"`
	RateLimitWindow   time.Duration `validate:"min=1s"`
	RateLimitSweep    time.Duration `validate:"min=0"`
	RateLimitIdleTTL  time.Duration `validate:"min=1s"`

	// NHL APIs
	NHLStatsBaseURL      string        `validate:"required,url"`
	NHLWebBaseURL        string        `validate:"required,url"`
	NHLRequestsPerMinute int           `validate:"min=1"`
	NHLHTTPTimeout       time.Duration `validate:"min=1s"`

	// Export pipeline
	DefaultDuration  int           `validate:"min=1"`
	MaxDuration      int           `validate:"min=1,gtefield=DefaultDuration"`
	DefaultThreshold float64       `validate:"gte=0"`
	SkaterLimit      int           `validate:"min=0"`
	GoalieLimit      int           `validate:"min=0"`
	BatchSize        int           `validate:"min=1"`
	BatchDelay       time.Duration `validate:"min=0"`
	SeasonDelay      time.Duration `validate:"min=0"`
}

var validate = validator.New()

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	defaults := export.DefaultConfig()

	cfg := &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		LogLevel:    strings.ToLower(envOr("LOG_LEVEL", "info")),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 30),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
		RateLimitSweep:    envDuration("RATE_LIMIT_SWEEP_INTERVAL", 10*time.Minute),
		RateLimitIdleTTL:  envDuration("RATE_LIMIT_IDLE_TTL", 30*time.Minute),

		NHLStatsBaseURL:      envOr("NHL_STATS_BASE_URL", nhl.DefaultStatsBaseURL),
		NHLWebBaseURL:        envOr("NHL_WEB_BASE_URL", nhl.DefaultWebBaseURL),
		NHLRequestsPerMinute: envInt("NHL_REQUESTS_PER_MINUTE", 600),
		NHLHTTPTimeout:       envDuration("NHL_HTTP_TIMEOUT", 30*time.Second),

		DefaultDuration:  envInt("EXPORT_DEFAULT_DURATION", 7),
		MaxDuration:      envInt("EXPORT_MAX_DURATION", 10),
		DefaultThreshold: envFloat("EXPORT_DEFAULT_THRESHOLD", 0.5),
		SkaterLimit:      envInt("EXPORT_SKATER_LIMIT", defaults.SkaterLimit),
		GoalieLimit:      envInt("EXPORT_GOALIE_LIMIT", defaults.GoalieLimit),
		BatchSize:        envInt("EXPORT_BATCH_SIZE", defaults.BatchSize),
		BatchDelay:       envDuration("EXPORT_BATCH_DELAY", defaults.BatchDelay),
		SeasonDelay:      envDuration("EXPORT_SEASON_DELAY", defaults.SeasonDelay),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ClientOptions returns the NHL client settings.
func (c *Config) ClientOptions() nhl.Options {
	return nhl.Options{
		StatsBaseURL:      c.NHLStatsBaseURL,
		WebBaseURL:        c.NHLWebBaseURL,
		RequestsPerMinute: c.NHLRequestsPerMinute,
		Timeout:           c.NHLHTTPTimeout,
	}
}

// ExportConfig returns the pipeline settings.
func (c *Config) ExportConfig() export.Config {
	cfg := export.DefaultConfig()
	cfg.SkaterLimit = c.SkaterLimit
	cfg.GoalieLimit = c.GoalieLimit
	cfg.BatchSize = c.BatchSize
	cfg.BatchDelay = c.BatchDelay
	cfg.SeasonDelay = c.SeasonDelay
	return cfg
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
