package nhl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/albapepper/nhl-stats-export/internal/metrics"
	"github.com/albapepper/nhl-stats-export/internal/provider"
	"github.com/albapepper/nhl-stats-export/internal/season"
)

// --------------------------------------------------------------------------
// Game logs (web API)
// --------------------------------------------------------------------------

type gameLogResponse struct {
	GameLog []gameLogRaw `json:"gameLog"`
}

type gameLogRaw struct {
	GameID         int         `json:"gameId"`
	GameDate       string      `json:"gameDate"`
	OpponentAbbrev string      `json:"opponentAbbrev"`
	TOI            string      `json:"toi"`
	Goals          *float64    `json:"goals"`
	Points         *float64    `json:"points"`
	Shots          *float64    `json:"shots"`
	Saves          *float64    `json:"saves"`
	ShotsAgainst   *float64    `json:"shotsAgainst"`
	GoalsAgainst   *float64    `json:"goalsAgainst"`
	OpponentName   interface{} `json:"opponentCommonName"`
}

// GetGameLog fetches one player's regular-season games for one season.
// Any failure is absorbed and reported as no games: a missing season for one
// player must never abort an export.
func (c *Client) GetGameLog(ctx context.Context, playerID int, id season.ID) []provider.GameLogEntry {
	entries, err := c.fetchGameLog(ctx, playerID, id)
	if err != nil {
		metrics.GameLogFailed()
		c.logger.Debug("Game log unavailable", "player_id", playerID, "season", id, "error", err)
		return nil
	}
	return entries
}

func (c *Client) fetchGameLog(ctx context.Context, playerID int, id season.ID) ([]provider.GameLogEntry, error) {
	u := fmt.Sprintf("%s/player/%d/game-log/%s/%d", c.webBaseURL, playerID, id, gameTypeRegular)

	body, err := c.get(ctx, "game_log", u)
	if err != nil {
		return nil, err
	}

	var resp gameLogResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode game log: %w", err)
	}

	entries := make([]provider.GameLogEntry, len(resp.GameLog))
	for i, g := range resp.GameLog {
		entries[i] = normalizeGame(g)
	}
	return entries, nil
}

func normalizeGame(raw gameLogRaw) provider.GameLogEntry {
	opponent := raw.OpponentAbbrev
	if opponent == "" {
		opponent = provider.ExtractString(raw.OpponentName)
	}

	// Goalie logs report shots and goals against rather than saves.
	saves := value(raw.Saves)
	if raw.Saves == nil && raw.ShotsAgainst != nil {
		saves = value(raw.ShotsAgainst) - value(raw.GoalsAgainst)
	}

	return provider.GameLogEntry{
		GameID:   raw.GameID,
		GameDate: raw.GameDate,
		Opponent: opponent,
		TOI:      raw.TOI,
		Goals:    value(raw.Goals),
		Points:   value(raw.Points),
		Shots:    value(raw.Shots),
		Saves:    saves,
	}
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
