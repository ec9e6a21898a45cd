package export

import (
	"context"
	"sync"
	"time"

	"github.com/albapepper/nhl-stats-export/internal/provider"
	"github.com/albapepper/nhl-stats-export/internal/season"
)

// Batch defaults for game log retrieval.
const (
	DefaultBatchSize  = 3
	DefaultBatchDelay = 75 * time.Millisecond
)

// GameLogFetcher returns one player's games for one season. Implementations
// absorb their own failures and return no games instead.
type GameLogFetcher interface {
	GetGameLog(ctx context.Context, playerID int, id season.ID) []provider.GameLogEntry
}

// BatchOptions bounds game log fan-out.
type BatchOptions struct {
	Size  int
	Delay time.Duration

	// OnBatch, when set, is called with the size of every completed batch.
	OnBatch func(size int)
}

// CollectGameLogs fetches a player's game logs for every season, Size
// seasons at a time. All fetches in a batch run concurrently and the batch
// completes once every one of them has returned; Delay separates batches.
// The result order is unspecified. Cancellation stops further batches.
func CollectGameLogs(ctx context.Context, f GameLogFetcher, playerID int, seasons season.Range, opts BatchOptions) []provider.GameLogEntry {
	if opts.Size < 1 {
		opts.Size = DefaultBatchSize
	}

	var logs []provider.GameLogEntry
	for i, chunk := range seasons.Chunks(opts.Size) {
		if i > 0 {
			if err := pause(ctx, opts.Delay); err != nil {
				break
			}
		}

		results := make([][]provider.GameLogEntry, len(chunk))
		var wg sync.WaitGroup
		for j, id := range chunk {
			j, id := j, id
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[j] = f.GetGameLog(ctx, playerID, id)
			}()
		}
		wg.Wait()

		if opts.OnBatch != nil {
			opts.OnBatch(len(chunk))
		}
		for _, r := range results {
			logs = append(logs, r...)
		}
	}
	return logs
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
