package export

import (
	"github.com/albapepper/nhl-stats-export/internal/provider"
	"github.com/albapepper/nhl-stats-export/internal/rolling"
	"github.com/albapepper/nhl-stats-export/internal/season"
)

// Row is the flattened per-player record handed to the export sink.
type Row struct {
	PlayerID int
	Season   season.ID

	Name     string
	Team     string
	Position string
	Type     string
	Goals    float64
	Points   float64
	Shots    float64
	Saves    float64

	SeasonAverage string
	LastFive      string
	LastTen       string
	HitRate       string
	LastTOI       string
	LastOpponent  string
	LastDate      string
}

// BuildRow merges one season record with the player's rolling metrics.
// A record with no games played reports a season average of "0.00".
func BuildRow(p provider.PlayerSeason, m rolling.Metrics) Row {
	d := m.Display()
	return Row{
		PlayerID:      p.PlayerID,
		Season:        p.Season,
		Name:          p.Name,
		Team:          p.Team,
		Position:      p.Position,
		Type:          p.Category.String(),
		Goals:         p.Goals,
		Points:        p.Points,
		Shots:         p.Shots,
		Saves:         p.Saves,
		SeasonAverage: SeasonAverage(p),
		LastFive:      d.LastFive,
		LastTen:       d.LastTen,
		HitRate:       d.HitRate,
		LastTOI:       d.LastTOI,
		LastOpponent:  d.LastOpponent,
		LastDate:      d.LastDate,
	}
}

// SeasonAverage is the tracked season total per game played.
func SeasonAverage(p provider.PlayerSeason) string {
	if p.GamesPlayed <= 0 {
		return "0.00"
	}
	return rolling.Fixed2(p.Tracked() / p.GamesPlayed)
}
