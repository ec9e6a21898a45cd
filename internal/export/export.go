// Package export runs the multi-season aggregation pipeline: season range,
// season summaries, player selection, batched game logs, rolling metrics and
// row assembly. The resulting rows are handed to a sink by the caller.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/albapepper/nhl-stats-export/internal/metrics"
	"github.com/albapepper/nhl-stats-export/internal/provider"
	"github.com/albapepper/nhl-stats-export/internal/rolling"
	"github.com/albapepper/nhl-stats-export/internal/season"
)

// --------------------------------------------------------------------------
// Dependencies and configuration
// --------------------------------------------------------------------------

// SummaryFetcher returns the season totals for one category and season.
type SummaryFetcher interface {
	GetSummaries(ctx context.Context, cat provider.Category, id season.ID) ([]provider.PlayerSeason, error)
}

// Source is everything the pipeline reads from the remote service.
type Source interface {
	SummaryFetcher
	GameLogFetcher
}

// Config controls selection sizes and pacing.
type Config struct {
	SkaterLimit int
	GoalieLimit int
	BatchSize   int
	BatchDelay  time.Duration
	SeasonDelay time.Duration

	// Now is the clock used to place the season range. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		SkaterLimit: 60,
		GoalieLimit: 15,
		BatchSize:   DefaultBatchSize,
		BatchDelay:  DefaultBatchDelay,
		SeasonDelay: 100 * time.Millisecond,
		Now:         time.Now,
	}
}

// Request is one export invocation.
type Request struct {
	Duration  int
	Threshold float64
}

// Exporter runs export requests against a Source.
type Exporter struct {
	source Source
	cfg    Config
	logger *slog.Logger
}

// New creates an Exporter.
func New(source Source, cfg Config, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &Exporter{source: source, cfg: cfg, logger: logger}
}

// --------------------------------------------------------------------------
// Pipeline
// --------------------------------------------------------------------------

// Run executes one export. A summary fetch failure aborts the whole run;
// game log failures only degrade the affected player's row.
func (e *Exporter) Run(ctx context.Context, req Request) (res *Result, err error) {
	start := time.Now()
	defer func() {
		rows := 0
		if res != nil {
			rows = len(res.Rows)
		}
		metrics.ObserveExport(start, rows, err)
	}()

	result := &Result{
		RunID:     uuid.NewString(),
		Seasons:   season.NewRange(e.cfg.Now(), req.Duration),
		Threshold: req.Threshold,
	}
	logger := e.logger.With("run_id", result.RunID)
	logger.Info("Export started",
		"seasons", len(result.Seasons),
		"first", result.Seasons[0],
		"last", result.Seasons[len(result.Seasons)-1],
		"threshold", req.Threshold)

	// 1. Season aggregates
	agg, err := e.fetchAggregates(ctx, result.Seasons, logger)
	if err != nil {
		return nil, err
	}
	result.SkatersFetched = len(agg.skaters)
	result.GoaliesFetched = len(agg.goalies)

	// 2. Player selection, fetch order preserved
	players := agg.selectPlayers(e.cfg.SkaterLimit, e.cfg.GoalieLimit)
	logger.Info("Players selected", "count", len(players),
		"skaters_available", result.SkatersFetched,
		"goalies_available", result.GoaliesFetched)

	// 3. Per-player logs, metrics and rows, one player at a time
	result.Rows = make([]Row, 0, len(players))
	for i, p := range players {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export cancelled after %d players: %w", i, err)
		}

		batch := BatchOptions{
			Size:  e.cfg.BatchSize,
			Delay: e.cfg.BatchDelay,
			OnBatch: func(size int) {
				logger.Debug("Game log batch done", "player_id", p.PlayerID, "seasons", size)
			},
		}
		logs := CollectGameLogs(ctx, e.source, p.PlayerID, result.Seasons, batch)
		// Fetches cut short by cancellation read as empty logs.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export cancelled during player %d: %w", p.PlayerID, err)
		}
		m := rolling.Compute(p.Category, logs, req.Threshold)
		result.Rows = append(result.Rows, BuildRow(p, m))

		result.PlayersProcessed++
		result.GamesFetched += len(logs)
		if len(logs) == 0 {
			result.PlayersWithoutGames++
		}
		if (i+1)%25 == 0 {
			logger.Info("Player progress", "processed", i+1, "total", len(players))
		}
	}

	result.Duration = time.Since(start)
	logger.Info("Export complete", "summary", result.Summary())
	return result, nil
}

// aggregates is the fold of every season's summaries, in fetch order.
type aggregates struct {
	skaters []provider.PlayerSeason
	goalies []provider.PlayerSeason
}

// seasonAggregates is one season's increment.
type seasonAggregates struct {
	season  season.ID
	skaters []provider.PlayerSeason
	goalies []provider.PlayerSeason
}

// with returns a new fold with inc appended; a is not modified.
func (a aggregates) with(inc seasonAggregates) aggregates {
	next := aggregates{
		skaters: make([]provider.PlayerSeason, 0, len(a.skaters)+len(inc.skaters)),
		goalies: make([]provider.PlayerSeason, 0, len(a.goalies)+len(inc.goalies)),
	}
	next.skaters = append(append(next.skaters, a.skaters...), inc.skaters...)
	next.goalies = append(append(next.goalies, a.goalies...), inc.goalies...)
	return next
}

// selectPlayers takes the leading skaters then the leading goalies.
func (a aggregates) selectPlayers(skaterLimit, goalieLimit int) []provider.PlayerSeason {
	s := a.skaters[:min(skaterLimit, len(a.skaters))]
	g := a.goalies[:min(goalieLimit, len(a.goalies))]
	out := make([]provider.PlayerSeason, 0, len(s)+len(g))
	return append(append(out, s...), g...)
}

// fetchAggregates walks the seasons one at a time, pausing between them.
func (e *Exporter) fetchAggregates(ctx context.Context, seasons season.Range, logger *slog.Logger) (aggregates, error) {
	var agg aggregates
	for i, id := range seasons {
		if i > 0 {
			if err := pause(ctx, e.cfg.SeasonDelay); err != nil {
				return aggregates{}, fmt.Errorf("fetch aggregates: %w", err)
			}
		}
		inc, err := e.fetchSeason(ctx, id)
		if err != nil {
			return aggregates{}, err
		}
		logger.Debug("Season aggregates fetched", "season", id,
			"skaters", len(inc.skaters), "goalies", len(inc.goalies))
		agg = agg.with(inc)
	}
	return agg, nil
}

// fetchSeason fetches skaters and goalies for one season concurrently.
func (e *Exporter) fetchSeason(ctx context.Context, id season.ID) (seasonAggregates, error) {
	inc := seasonAggregates{season: id}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		players, err := e.source.GetSummaries(gctx, provider.Skater, id)
		if err != nil {
			return fmt.Errorf("skater aggregates %s: %w", id, err)
		}
		inc.skaters = players
		return nil
	})

	g.Go(func() error {
		players, err := e.source.GetSummaries(gctx, provider.Goalie, id)
		if err != nil {
			return fmt.Errorf("goalie aggregates %s: %w", id, err)
		}
		inc.goalies = players
		return nil
	})

	if err := g.Wait(); err != nil {
		return seasonAggregates{}, err
	}
	return inc, nil
}
