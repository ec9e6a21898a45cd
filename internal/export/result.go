package export

import (
	"fmt"
	"time"

	"github.com/albapepper/nhl-stats-export/internal/season"
)

// Result tracks the rows and counts produced by one export run.
type Result struct {
	RunID     string
	Seasons   season.Range
	Threshold float64
	Rows      []Row

	SkatersFetched      int
	GoaliesFetched      int
	PlayersProcessed    int
	PlayersWithoutGames int
	GamesFetched        int
	Duration            time.Duration
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	first, last := "", ""
	if len(r.Seasons) > 0 {
		first, last = string(r.Seasons[0]), string(r.Seasons[len(r.Seasons)-1])
	}
	return fmt.Sprintf(
		"seasons=%d (%s..%s) skaters=%d goalies=%d players=%d no_games=%d games=%d rows=%d dur=%s",
		len(r.Seasons), first, last,
		r.SkatersFetched, r.GoaliesFetched,
		r.PlayersProcessed, r.PlayersWithoutGames, r.GamesFetched,
		len(r.Rows), r.Duration.Round(time.Millisecond),
	)
}
