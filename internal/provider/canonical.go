// Package provider defines canonical data types that the NHL client
// normalizes into. These structs are the contract between the remote client
// and the export pipeline: the client outputs these, the pipeline reads them.
package provider

import "github.com/albapepper/nhl-stats-export/internal/season"

// Category is the closed set of player kinds the export covers.
type Category int

const (
	Skater Category = iota
	Goalie
)

// fieldMap resolves every category-specific name in one place.
type fieldMap struct {
	endpoint    string // path segment on the stats REST API
	sortKey     string // summary sort parameter
	nameField   string // display name in summary rows
	trackedStat string // per-game and season stat used for averages
	seasonStat  func(PlayerSeason) float64
	gameStat    func(GameLogEntry) float64
	label       string
	position    string // fixed position, empty when taken from the record
}

var fields = map[Category]fieldMap{
	Skater: {
		endpoint:    "skater",
		sortKey:     "skaterFullName",
		nameField:   "skaterFullName",
		trackedStat: "points",
		seasonStat:  func(p PlayerSeason) float64 { return p.Points },
		gameStat:    func(e GameLogEntry) float64 { return e.Points },
		label:       "Skater",
	},
	Goalie: {
		endpoint:    "goalie",
		sortKey:     "wins",
		nameField:   "goalieFullName",
		trackedStat: "saves",
		seasonStat:  func(p PlayerSeason) float64 { return p.Saves },
		gameStat:    func(e GameLogEntry) float64 { return e.Saves },
		label:       "Goalie",
		position:    "G",
	},
}

func (c Category) Endpoint() string    { return fields[c].endpoint }
func (c Category) SortKey() string     { return fields[c].sortKey }
func (c Category) NameField() string   { return fields[c].nameField }
func (c Category) TrackedStat() string { return fields[c].trackedStat }
func (c Category) String() string      { return fields[c].label }

// FixedPosition returns the position every player of the category is listed
// under, or "" when the record carries its own.
func (c Category) FixedPosition() string { return fields[c].position }

// PlayerSeason is the canonical season-total record for one player, one
// category, one season.
type PlayerSeason struct {
	PlayerID    int
	Name        string
	Team        string
	Position    string
	Category    Category
	Season      season.ID
	Goals       float64
	Points      float64
	Shots       float64
	Saves       float64
	Wins        float64
	GamesPlayed float64
}

// Tracked returns the season total of the category's tracked statistic.
func (p PlayerSeason) Tracked() float64 {
	return fields[p.Category].seasonStat(p)
}

// GameLogEntry is one game played by a player in a season.
type GameLogEntry struct {
	GameID   int
	GameDate string // "YYYY-MM-DD"
	Opponent string
	TOI      string // "mm:ss"
	Goals    float64
	Points   float64
	Shots    float64
	Saves    float64
}

// Value returns the entry's value of the category's tracked statistic.
func (e GameLogEntry) Value(c Category) float64 {
	return fields[c].gameStat(e)
}
