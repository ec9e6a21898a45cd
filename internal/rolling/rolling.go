// Package rolling derives recent-form statistics from a player's combined
// game log: last-5 and last-10 averages, hit rate against a threshold, and
// the most recent game.
package rolling

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/albapepper/nhl-stats-export/internal/provider"
)

// Window sizes for the short-form averages.
const (
	ShortWindow = 5
	LongWindow  = 10
)

// Placeholder is shown for last-game fields when there are no games.
const Placeholder = "N/A"

const dateLayout = "2006-01-02"

// Metrics is the rolling bundle for one player. The zero value describes a
// player with no logged games.
type Metrics struct {
	Games    int
	Hits     int
	LastFive float64
	LastTen  float64
	HitRate  float64 // percentage, rounded to one decimal
	LastGame provider.GameLogEntry
}

// Display holds the formatted fields written to the export.
type Display struct {
	LastFive     string
	LastTen      string
	HitRate      string
	LastOpponent string
	LastDate     string
	LastTOI      string
}

// Compute folds entries into Metrics. entries is not modified.
func Compute(cat provider.Category, entries []provider.GameLogEntry, threshold float64) Metrics {
	if len(entries) == 0 {
		return Metrics{}
	}

	games := SortRecentFirst(entries)

	hits := 0
	for _, g := range games {
		if g.Value(cat) >= threshold {
			hits++
		}
	}
	rate := decimal.NewFromInt(int64(hits)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(games)))).
		Round(1)

	return Metrics{
		Games:    len(games),
		Hits:     hits,
		LastFive: mean(cat, head(games, ShortWindow)),
		LastTen:  mean(cat, head(games, LongWindow)),
		HitRate:  rate.InexactFloat64(),
		LastGame: games[0],
	}
}

// SortRecentFirst returns a copy of entries ordered by game date, most
// recent first. Equal dates keep their input order; unparseable dates go last.
func SortRecentFirst(entries []provider.GameLogEntry) []provider.GameLogEntry {
	out := make([]provider.GameLogEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return gameTime(out[i]).After(gameTime(out[j]))
	})
	return out
}

func gameTime(g provider.GameLogEntry) time.Time {
	t, err := time.Parse(dateLayout, g.GameDate)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, g.GameDate); err != nil {
			return time.Time{}
		}
	}
	return t
}

func head(games []provider.GameLogEntry, n int) []provider.GameLogEntry {
	if len(games) < n {
		return games
	}
	return games[:n]
}

func mean(cat provider.Category, games []provider.GameLogEntry) float64 {
	if len(games) == 0 {
		return 0
	}
	var sum float64
	for _, g := range games {
		sum += g.Value(cat)
	}
	return sum / float64(len(games))
}

// Display formats the metrics for export.
func (m Metrics) Display() Display {
	if m.Games == 0 {
		return Display{
			LastFive:     "0.00",
			LastTen:      "0.00",
			HitRate:      "0%",
			LastOpponent: Placeholder,
			LastDate:     Placeholder,
			LastTOI:      Placeholder,
		}
	}
	return Display{
		LastFive:     Fixed2(m.LastFive),
		LastTen:      Fixed2(m.LastTen),
		HitRate:      decimal.NewFromFloat(m.HitRate).StringFixed(1) + "%",
		LastOpponent: orPlaceholder(m.LastGame.Opponent),
		LastDate:     orPlaceholder(m.LastGame.GameDate),
		LastTOI:      orPlaceholder(m.LastGame.TOI),
	}
}

// Fixed2 renders v with two decimals, rounding half away from zero.
func Fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
