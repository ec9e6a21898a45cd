// Package nhl provides the HTTP client for the public NHL APIs.
//
// Season summaries come from the stats REST API (api.nhle.com/stats/rest),
// per-game logs from the web API (api-web.nhle.com). Neither requires auth.
// Every request is paced through a token bucket limiter.
package nhl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/nhl-stats-export/internal/metrics"
)

const (
	DefaultStatsBaseURL = "https://api.nhle.com/stats/rest/en"
	DefaultWebBaseURL   = "https://api-web.nhle.com/v1"

	// gameTypeRegular is the NHL game type id for regular-season games.
	gameTypeRegular = 2
)

// ErrUnexpectedStatus is wrapped by every non-200 response error.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	StatsBaseURL      string
	WebBaseURL        string
	RequestsPerMinute int
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// Client is the shared HTTP client for both NHL APIs.
type Client struct {
	httpClient   *http.Client
	statsBaseURL string
	webBaseURL   string
	limiter      *rate.Limiter
	logger       *slog.Logger
}

// NewClient creates an NHL HTTP client with rate limiting.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.StatsBaseURL == "" {
		opts.StatsBaseURL = DefaultStatsBaseURL
	}
	if opts.WebBaseURL == "" {
		opts.WebBaseURL = DefaultWebBaseURL
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 600
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	rps := float64(opts.RequestsPerMinute) / 60.0
	// Burst covers one summary pair or one game log batch without queuing.
	return &Client{
		httpClient:   httpClient,
		statsBaseURL: strings.TrimRight(opts.StatsBaseURL, "/"),
		webBaseURL:   strings.TrimRight(opts.WebBaseURL, "/"),
		limiter:      rate.NewLimiter(rate.Limit(rps), 3),
		logger:       logger,
	}
}

// get performs a rate-limited GET request and returns the body of a 200
// response. endpoint is the metric label for the call.
func (c *Client) get(ctx context.Context, endpoint, u string) (body []byte, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	defer func() { metrics.ObserveRequest(endpoint, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NHL %s returned %d: %s: %w", endpoint, resp.StatusCode, truncate(body, 200), ErrUnexpectedStatus)
	}

	return body, nil
}

// encodeQuery encodes params with %20 for spaces; the stats API's
// cayenneExp filter does not accept '+'.
func encodeQuery(params url.Values) string {
	return strings.ReplaceAll(params.Encode(), "+", "%20")
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
