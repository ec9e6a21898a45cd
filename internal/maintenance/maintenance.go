// Package maintenance runs periodic background tasks as Go tickers.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// Task is one periodic job. A zero Interval disables it.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context)
}

// Start launches a ticker per enabled task. Blocks until ctx is cancelled.
// Intended to be called with `go`.
func Start(ctx context.Context, logger *slog.Logger, tasks ...Task) {
	tickers := make([]*time.Ticker, 0, len(tasks))
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	for _, task := range tasks {
		if task.Interval <= 0 || task.Run == nil {
			logger.Info("Maintenance task disabled", "task", task.Name)
			continue
		}
		t := time.NewTicker(task.Interval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, task, logger)
		logger.Info("Maintenance task started", "task", task.Name, "interval", task.Interval)
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, task Task, logger *slog.Logger) {
	for {
		select {
		case <-ch:
			start := time.Now()
			task.Run(ctx)
			logger.Debug("Maintenance task ran", "task", task.Name, "duration", time.Since(start).Round(time.Millisecond))
		case <-ctx.Done():
			return
		}
	}
}
