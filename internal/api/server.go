package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/nhl-stats-export/internal/api/handler"
	"github.com/albapepper/nhl-stats-export/internal/config"
	"github.com/albapepper/nhl-stats-export/internal/metrics"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
// A nil limiter disables rate limiting on the export routes.
func NewRouter(h *handler.Handler, cfg *config.Config, limiter *IPLimiter, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// CORS; the download name travels in Content-Disposition
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Export-ID"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		// Unversioned path kept for the existing download button
		r.Get("/api/export", h.Export)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/export", h.Export)
			r.Get("/seasons", h.Seasons)
		})
	})

	return r
}
