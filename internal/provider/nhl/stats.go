package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/albapepper/nhl-stats-export/internal/provider"
	"github.com/albapepper/nhl-stats-export/internal/season"
)

// --------------------------------------------------------------------------
// Season summaries (stats REST API)
// --------------------------------------------------------------------------

type summaryResponse struct {
	Data  []map[string]interface{} `json:"data"`
	Total int                      `json:"total"`
}

// GetSummaries fetches regular-season totals for every player of the
// category in one season, in the order the API sorts them. Errors are
// returned, never swallowed: callers rely on complete aggregates.
func (c *Client) GetSummaries(ctx context.Context, cat provider.Category, id season.ID) ([]provider.PlayerSeason, error) {
	params := url.Values{
		"isAggregate": {"false"},
		"isGame":      {"false"},
		"sort":        {cat.SortKey()},
		"start":       {"0"},
		"limit":       {"-1"},
		"cayenneExp":  {fmt.Sprintf("seasonId=%s and gameTypeId=%d", id, gameTypeRegular)},
	}
	u := c.statsBaseURL + "/" + cat.Endpoint() + "/summary?" + encodeQuery(params)

	body, err := c.get(ctx, cat.Endpoint()+"_summary", u)
	if err != nil {
		return nil, fmt.Errorf("fetch %s summaries %s: %w", cat.Endpoint(), id, err)
	}

	var resp summaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode %s summaries %s: %w", cat.Endpoint(), id, err)
	}

	players := make([]provider.PlayerSeason, 0, len(resp.Data))
	for _, row := range resp.Data {
		players = append(players, normalizeSummary(cat, id, row))
	}
	c.logger.Debug("Fetched summaries", "category", cat.String(), "season", id, "count", len(players))
	return players, nil
}

func normalizeSummary(cat provider.Category, id season.ID, row map[string]interface{}) provider.PlayerSeason {
	stats := provider.StatMap(row)

	name := provider.ExtractString(row[cat.NameField()])
	playerID := int(stats["playerId"])
	if name == "" {
		name = "Player " + strconv.Itoa(playerID)
	}

	// Traded players carry a comma list in teamAbbrevs.
	team := provider.ExtractString(row["teamAbbrevs"])
	if team == "" {
		team = provider.ExtractString(row["teamAbbrev"])
	}

	position := cat.FixedPosition()
	if position == "" {
		position = provider.ExtractString(row["positionCode"])
	}

	return provider.PlayerSeason{
		PlayerID:    playerID,
		Name:        name,
		Team:        team,
		Position:    position,
		Category:    cat,
		Season:      id,
		Goals:       stats["goals"],
		Points:      stats["points"],
		Shots:       stats["shots"],
		Saves:       stats["saves"],
		Wins:        stats["wins"],
		GamesPlayed: stats["gamesPlayed"],
	}
}
