package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/albapepper/nhl-stats-export/internal/api"
	"github.com/albapepper/nhl-stats-export/internal/api/handler"
	"github.com/albapepper/nhl-stats-export/internal/config"
	"github.com/albapepper/nhl-stats-export/internal/export"
)

type emptyExporter struct{}

func (emptyExporter) Run(ctx context.Context, req export.Request) (*export.Result, error) {
	return &export.Result{RunID: "empty"}, nil
}

func newRouter(cfg *config.Config) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var limiter *api.IPLimiter
	if cfg.RateLimitEnabled {
		limiter = api.NewIPLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	return api.NewRouter(handler.New(emptyExporter{}, cfg, logger), cfg, limiter, logger)
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter(t *testing.T) {
	Convey("Given a router without rate limiting", t, func() {
		cfg := &config.Config{
			DefaultDuration:  7,
			MaxDuration:      10,
			DefaultThreshold: 0.5,
			CORSAllowOrigins: []string{"http://localhost:3000"},
		}
		r := newRouter(cfg)

		Convey("Both export paths serve a workbook", func() {
			So(serve(r, "/api/export").Code, ShouldEqual, http.StatusOK)
			So(serve(r, "/api/v1/export?duration=2").Code, ShouldEqual, http.StatusOK)
		})

		Convey("Health, seasons and metrics are routed", func() {
			So(serve(r, "/health").Code, ShouldEqual, http.StatusOK)
			So(serve(r, "/api/v1/seasons").Code, ShouldEqual, http.StatusOK)

			rec := serve(r, "/metrics")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "nhl_export_duration_seconds")
		})

		Convey("Unknown paths are not found", func() {
			So(serve(r, "/api/v1/players").Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a router allowing one export per minute", t, func() {
		cfg := &config.Config{
			DefaultDuration:   7,
			MaxDuration:       10,
			DefaultThreshold:  0.5,
			RateLimitEnabled:  true,
			RateLimitRequests: 1,
			RateLimitWindow:   time.Minute,
		}
		r := newRouter(cfg)

		Convey("The second export from the same client is rejected", func() {
			So(serve(r, "/api/v1/export").Code, ShouldEqual, http.StatusOK)

			rec := serve(r, "/api/v1/export")
			So(rec.Code, ShouldEqual, http.StatusTooManyRequests)
			So(rec.Header().Get("Retry-After"), ShouldEqual, "60")
		})

		Convey("Health checks are not limited", func() {
			for i := 0; i < 5; i++ {
				So(serve(r, "/health").Code, ShouldEqual, http.StatusOK)
			}
		})
	})
}

func TestIPLimiterSweep(t *testing.T) {
	Convey("Given a limiter that has seen two clients", t, func() {
		limiter := api.NewIPLimiter(30, time.Minute)
		h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		for _, addr := range []string{"10.0.0.1:5000", "10.0.0.2:5000"} {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/export", nil)
			req.RemoteAddr = addr
			h.ServeHTTP(httptest.NewRecorder(), req)
		}
		So(limiter.Len(), ShouldEqual, 2)

		Convey("Recently seen clients survive a sweep", func() {
			So(limiter.Sweep(time.Hour), ShouldEqual, 0)
			So(limiter.Len(), ShouldEqual, 2)
		})

		Convey("Idle clients are evicted", func() {
			time.Sleep(2 * time.Millisecond)
			So(limiter.Sweep(time.Millisecond), ShouldEqual, 2)
			So(limiter.Len(), ShouldEqual, 0)
		})
	})
}
