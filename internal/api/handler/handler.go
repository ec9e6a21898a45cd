// Package handler provides HTTP handlers for all API endpoints.
// Handlers parse the request, call the export pipeline and hand the rows to
// the spreadsheet writer; there is no storage behind them.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/nhl-stats-export/internal/api/respond"
	"github.com/albapepper/nhl-stats-export/internal/config"
	"github.com/albapepper/nhl-stats-export/internal/export"
)

// Exporter runs one export request.
type Exporter interface {
	Run(ctx context.Context, req export.Request) (*export.Result, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	exporter Exporter
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Handler with shared dependencies.
func New(exporter Exporter, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		exporter: exporter,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to place season ranges.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and the export endpoint.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "NHL Stats Export API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"export":  "/api/v1/export?duration=7&threshold=0.5",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
