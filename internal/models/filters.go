package models

import (
	"net/url"
	"strconv"
	"strings"
)

// Game type filter values.
const (
	GameTypeInterconference = "Interconference"
	GameTypeIntraconference = "Intraconference"
	GameTypeAll             = "All"
)

// Outcome filter values.
const (
	OutcomeWin  = "Win"
	OutcomeLoss = "Loss"
	OutcomeAll  = "All"
)

// FilterSpec is the typed set of recognized game filters. Every field is
// optional; the zero value imposes no constraint. Filters compose by
// intersection, except LastNGames which truncates the already-filtered
// sequence to the N most recent games.
type FilterSpec struct {
	DateFrom   string `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Month      int    `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Season     string `json:"season,omitempty"`
	SeasonType string `json:"season_type,omitempty" validate:"omitempty,oneof=Preseason 'Regular Season' Postseason 'Play-In Tournament' 'NBA Cup Finals'"`
	Outcome    string `json:"outcome,omitempty" validate:"omitempty,oneof=Win Loss All"`
	Division   string `json:"division,omitempty"`
	Conference string `json:"conference,omitempty"`
	GameType   string `json:"game_type,omitempty" validate:"omitempty,oneof=Interconference Intraconference All"`
	Opponents  string `json:"opponents,omitempty"`
	LastNGames int    `json:"last_n_games,omitempty" validate:"omitempty,min=1"`
}

// IsZero reports whether the spec imposes no constraints at all.
func (f FilterSpec) IsZero() bool {
	return f == FilterSpec{}
}

// OpponentNames splits the comma-separated opponents value into trimmed
// full team names. Empty entries are dropped.
func (f FilterSpec) OpponentNames() []string {
	if f.Opponents == "" {
		return nil
	}
	parts := strings.Split(f.Opponents, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FilterSpecFromQuery builds a FilterSpec from URL query parameters.
// Unrecognized keys are ignored so that new client versions can send
// extra parameters without breaking older servers. Non-numeric month or
// last_n_games values are treated as absent.
func FilterSpecFromQuery(q url.Values) FilterSpec {
	spec := FilterSpec{
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
		Season:     q.Get("season"),
		SeasonType: q.Get("season_type"),
		Outcome:    q.Get("outcome"),
		Division:   q.Get("division"),
		Conference: q.Get("conference"),
		GameType:   q.Get("game_type"),
		Opponents:  q.Get("opponents"),
	}
	if v := q.Get("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			spec.Month = m
		}
	}
	if v := q.Get("last_n_games"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			spec.LastNGames = n
		}
	}
	return spec
}
