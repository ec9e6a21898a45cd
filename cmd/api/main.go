// Command api is the NHL stats export API server.
//
// Usage:
//
//	nhl-export-api
//	API_PORT=8080 nhl-export-api

// @title NHL Stats Export API
// @version 1.0.0
// @description Builds a multi-season NHL player spreadsheet with rolling recent-form metrics from the public NHL APIs.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Scoracle
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/nhl-stats-export/internal/api"
	"github.com/albapepper/nhl-stats-export/internal/api/handler"
	"github.com/albapepper/nhl-stats-export/internal/config"
	"github.com/albapepper/nhl-stats-export/internal/export"
	"github.com/albapepper/nhl-stats-export/internal/maintenance"
	"github.com/albapepper/nhl-stats-export/internal/provider/nhl"

	_ "github.com/albapepper/nhl-stats-export/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// JSON lines in production for the log collector, text locally
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		logHandler = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := nhl.NewClient(cfg.ClientOptions(), logger)
	exporter := export.New(client, cfg.ExportConfig(), logger)
	logger.Info("Export pipeline ready",
		"skater_limit", cfg.SkaterLimit,
		"goalie_limit", cfg.GoalieLimit,
		"batch_size", cfg.BatchSize,
		"nhl_rpm", cfg.NHLRequestsPerMinute)

	var limiter *api.IPLimiter
	if cfg.RateLimitEnabled {
		limiter = api.NewIPLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		go maintenance.Start(ctx, logger, maintenance.Task{
			Name:     "rate-limit-sweep",
			Interval: cfg.RateLimitSweep,
			Run: func(context.Context) {
				if n := limiter.Sweep(cfg.RateLimitIdleTTL); n > 0 {
					logger.Info("Evicted idle rate limit clients", "count", n, "remaining", limiter.Len())
				}
			},
		})
	}

	router := api.NewRouter(handler.New(exporter, cfg, logger), cfg, limiter, logger)

	// A ten-season export makes several hundred upstream calls.
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting NHL Stats Export API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
