package models

import (
	"encoding/json"
	"testing"
)

func TestRawGameUnmarshalNative(t *testing.T) {
	data := `{
		"Matchup": "BOS vs. LAL",
		"Points": 30,
		"scoredRebounds": 10,
		"Assists": 5,
		"FG_scored": 11,
		"FG_pctg": 0.524,
		"3_pts_scored": 4,
		"3_pts_pctg": 0.444,
		"FT_made": 5,
		"FT_pctg": 0.833,
		"Steals": 2,
		"Blocks": 1,
		"Turnovers": 3,
		"Team": "BOS",
		"WinLoss": "W",
		"SEASON_ID": "22024",
		"is_future_game": false
	}`

	var g RawGame
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if g.Points != 30 || g.Rebounds != 10 || g.FieldGoalPct != 0.524 {
		t.Errorf("got %+v", g)
	}
	if g.SeasonID != "22024" || g.WinLoss != "W" {
		t.Errorf("got %+v", g)
	}
}

func TestRawGameUnmarshalCoercion(t *testing.T) {
	// Historical ingest scripts wrote numerics as quoted strings and
	// SEASON_ID as a bare integer.
	data := `{
		"Matchup": "BOS @ MIA",
		"Points": "28",
		"scoredRebounds": "7.5",
		"Assists": 4,
		"SEASON_ID": 22024,
		"is_future_game": "true"
	}`

	var g RawGame
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if g.Points != 28 {
		t.Errorf("Points = %v, want 28", g.Points)
	}
	if g.Rebounds != 7.5 {
		t.Errorf("Rebounds = %v, want 7.5", g.Rebounds)
	}
	if g.Assists != 4 {
		t.Errorf("Assists = %v, want 4", g.Assists)
	}
	if g.SeasonID != "22024" {
		t.Errorf("SeasonID = %q, want 22024", g.SeasonID)
	}
	if !g.IsFutureGame {
		t.Error("IsFutureGame = false, want true")
	}
}

func TestRawGameUnmarshalPartial(t *testing.T) {
	var g RawGame
	if err := json.Unmarshal([]byte(`{"Points": "bad", "Team": "BOS"}`), &g); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	// Uncoercible values are left at the zero value, not fatal.
	if g.Points != 0 {
		t.Errorf("Points = %v, want 0", g.Points)
	}
	if g.Team != "BOS" {
		t.Errorf("Team = %q, want BOS", g.Team)
	}

	if err := json.Unmarshal([]byte(`{}`), &g); err != nil {
		t.Fatalf("Unmarshal(empty object) error = %v", err)
	}

	if err := json.Unmarshal([]byte(`[1,2,3]`), &g); err == nil {
		t.Error("Unmarshal(array) should fail")
	}
}

func TestRawGameUnmarshalUnknownKeys(t *testing.T) {
	var g RawGame
	data := `{"Points": "30", "SomeNewField": {"nested": true}}`
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if g.Points != 30 {
		t.Errorf("Points = %v, want 30", g.Points)
	}
}

func TestEntityDocUnmarshal(t *testing.T) {
	data := `{
		"name": "Test Player",
		"team": "Boston Celtics",
		"avg_ppg": 27.1,
		"slider": -0.25,
		"games": {"2024-11-05": {"Points": "30", "Matchup": "BOS vs. LAL"}},
		"future_games": {"2024-11-12": {"Points": 25.5}}
	}`

	var doc EntityDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Name != "Test Player" || doc.Slider != -0.25 {
		t.Errorf("got %+v", doc)
	}
	if doc.Games["2024-11-05"].Points != 30 {
		t.Errorf("nested coercion failed: %+v", doc.Games["2024-11-05"])
	}
	if doc.FutureGames["2024-11-12"].Points != 25.5 {
		t.Errorf("future game = %+v", doc.FutureGames["2024-11-12"])
	}
}
