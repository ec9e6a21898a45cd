// Package metrics holds the Prometheus collectors for remote calls and
// export runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	remoteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhl_remote_requests_total",
		Help: "Requests sent to the NHL APIs, by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	remoteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nhl_remote_request_duration_seconds",
		Help:    "Latency of requests to the NHL APIs",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	gameLogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nhl_gamelog_failures_total",
		Help: "Game log fetches absorbed as empty after a remote failure",
	})

	exportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhl_export_runs_total",
		Help: "Export runs by outcome",
	}, []string{"outcome"})

	exportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nhl_export_duration_seconds",
		Help:    "Wall time of a full export run",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})

	exportRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nhl_export_rows_total",
		Help: "Rows written to export documents",
	})
)

// ObserveRequest records one remote call.
func ObserveRequest(endpoint string, start time.Time, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	remoteRequests.WithLabelValues(endpoint, outcome).Inc()
	remoteDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// GameLogFailed counts a swallowed game log failure.
func GameLogFailed() {
	gameLogFailures.Inc()
}

// ObserveExport records a finished export run.
func ObserveExport(start time.Time, rows int, err error) {
	if err != nil {
		exportRuns.WithLabelValues(OutcomeError).Inc()
		return
	}
	exportRuns.WithLabelValues(OutcomeOK).Inc()
	exportDuration.Observe(time.Since(start).Seconds())
	exportRows.Add(float64(rows))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
