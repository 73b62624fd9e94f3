package models

import "time"

// RawGame mirrors one game entry exactly as it is stored in an entity
// document. Field names follow the store's historical JSON keys, so
// decoding a legacy document never needs a migration step.
type RawGame struct {
	Matchup        string  `json:"Matchup"`
	Points         float64 `json:"Points"`
	Rebounds       float64 `json:"scoredRebounds"`
	Assists        float64 `json:"Assists"`
	FieldGoalsMade float64 `json:"FG_scored"`
	FieldGoalPct   float64 `json:"FG_pctg"`
	ThreeMade      float64 `json:"3_pts_scored"`
	ThreePct       float64 `json:"3_pts_pctg"`
	FreeThrowsMade float64 `json:"FT_made"`
	FreeThrowPct   float64 `json:"FT_pctg"`
	Steals         float64 `json:"Steals"`
	Blocks         float64 `json:"Blocks"`
	Turnovers      float64 `json:"Turnovers"`
	Team           string  `json:"Team"`
	WinLoss        string  `json:"WinLoss"`
	SeasonID       string  `json:"SEASON_ID,omitempty"`
	IsFutureGame   bool    `json:"is_future_game"`
}

// EntityDoc is the per-player or per-team document shape served by the
// document store. Games are keyed by "YYYY-MM-DD" or
// "YYYY-MM-DD_HH-MM-SS"; future_games hold synthesized records for
// games that have not been played yet.
type EntityDoc struct {
	Name        string             `json:"name"`
	Team        string             `json:"team,omitempty"`
	AbbrevName  string             `json:"abbrev_name,omitempty"`
	AvgPPG      float64            `json:"avg_ppg,omitempty"`
	Slider      float64            `json:"slider,omitempty"`
	Games       map[string]RawGame `json:"games"`
	FutureGames map[string]RawGame `json:"future_games"`
}

// GameDate is a parsed store key: the calendar date plus an optional
// time-of-day suffix. Only the date portion carries meaning; the suffix
// exists to keep multiple same-day entries distinct in the store.
type GameDate struct {
	Key string    // original store key, used for ordering
	Day time.Time // zero when the date portion failed to parse
}

// Valid reports whether the date portion of the key parsed.
func (d GameDate) Valid() bool { return !d.Day.IsZero() }

// NormalizedGame is a RawGame joined with its store key and the fields
// derived from the matchup string. Derived fields are scratch state for
// the filter stages and never serialize to clients.
type NormalizedGame struct {
	Date GameDate
	Raw  RawGame

	TeamAbbr           string
	Location           string // "home", "away" or "unknown"
	OpponentAbbr       string // canonical, empty when the matchup was malformed
	OpponentDivision   string
	OpponentConference string
	// Interconference is nil when either side's conference could not be
	// resolved, which is distinct from a known intraconference game.
	Interconference *bool
}

// GameStat is the public per-game record returned to clients. It carries
// the RawGame counting stats under their API names plus derived
// presentation fields; the normalization scratch fields are stripped.
type GameStat struct {
	Date                string  `json:"date"`
	Points              float64 `json:"points"`
	Rebounds            float64 `json:"rebounds"`
	Assists             float64 `json:"assists"`
	FieldGoalsMade      float64 `json:"fieldGoalsMade"`
	FieldGoalPercentage float64 `json:"fieldGoalPercentage"`
	ThreePointsMade     float64 `json:"threePointsMade"`
	ThreePointPct       float64 `json:"threePointPercentage"`
	FreeThrowsMade      float64 `json:"freeThrowsMade"`
	FreeThrowPct        float64 `json:"freeThrowPercentage"`
	Steals              float64 `json:"steals"`
	Blocks              float64 `json:"blocks"`
	Turnovers           float64 `json:"turnovers"`
	WinLoss             string  `json:"WinLoss"`
	Season              string  `json:"season"`
	SeasonType          string  `json:"seasonType"`
	GameLocation        string  `json:"gameLocation"`
	Opponent            string  `json:"opponent,omitempty"`
	IsFutureGame        bool    `json:"is_future_game"`
}

// SeasonAggregate is one season's rollup of a filtered game sequence.
// Attempt counts are reconstructed from made counts and per-game
// percentages, so they are floating point and approximate.
type SeasonAggregate struct {
	Season              string  `json:"season"`
	GamesPlayed         int     `json:"gamesPlayed"`
	Points              float64 `json:"points"`
	Rebounds            float64 `json:"rebounds"`
	Assists             float64 `json:"assists"`
	Steals              float64 `json:"steals"`
	Blocks              float64 `json:"blocks"`
	Turnovers           float64 `json:"turnovers"`
	FieldGoalsMade      float64 `json:"fieldGoalsMade"`
	FieldGoalsAttempted float64 `json:"fieldGoalsAttempted"`
	FieldGoalPercentage float64 `json:"fieldGoalPercentage"`
	ThreePointsMade     float64 `json:"threePointsMade"`
	ThreePointsAtt      float64 `json:"threePointsAttempted"`
	ThreePointPct       float64 `json:"threePointPercentage"`
	FreeThrowsMade      float64 `json:"freeThrowsMade"`
	FreeThrowsAtt       float64 `json:"freeThrowsAttempted"`
	FreeThrowPct        float64 `json:"freeThrowPercentage"`
}
