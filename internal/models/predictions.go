package models

import "time"

// StatPrediction is a next-game forecast for a single counting stat,
// produced by regressing over an entity's recent games.
type StatPrediction struct {
	Name        string    `json:"name"`
	EntityType  string    `json:"entity_type"` // "player" or "team"
	Stat        string    `json:"stat"`        // "points", "rebounds" or "assists"
	Predicted   float64   `json:"predicted"`
	Confidence  float64   `json:"confidence"` // R-squared of the fit, as a percentage
	GamesUsed   int       `json:"games_used"`
	LastUpdated time.Time `json:"last_updated"`
}

// ChampionPrediction names the team with the strongest scoring average.
type ChampionPrediction struct {
	TopTeam    string  `json:"top_team"`
	TopTeamPPG float64 `json:"top_team_ppg"`
}

// FeedbackReport records one prediction-versus-outcome discrepancy found
// by the feedback loop, along with the bias adjustment it applied.
type FeedbackReport struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	EntityType   string    `json:"type"`
	GameDate     string    `json:"game_date"`
	Predicted    float64   `json:"predicted"`
	Actual       float64   `json:"actual"`
	ErrorPercent float64   `json:"error_percent"`
	Slider       float64   `json:"slider_adjustment"`
	EvaluatedAt  time.Time `json:"evaluated_at"`
}
