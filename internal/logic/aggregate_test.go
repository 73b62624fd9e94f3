package logic

import (
	"math"
	"testing"

	"github.com/courtside/stats-api/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateSeasons(t *testing.T) {
	games := []models.NormalizedGame{
		{
			Date: ParseGameDate("2024-11-01"),
			Raw: models.RawGame{
				Points: 30, Rebounds: 10, Assists: 5, Steals: 2, Blocks: 1, Turnovers: 3,
				FieldGoalsMade: 10, FieldGoalPct: 0.5, // 20 attempts
				ThreeMade: 2, ThreePct: 0.4, // 5 attempts
				FreeThrowsMade: 8, FreeThrowPct: 0.8, // 10 attempts
			},
		},
		{
			Date: ParseGameDate("2024-12-01"),
			Raw: models.RawGame{
				Points: 20, Rebounds: 8, Assists: 7, Steals: 1, Blocks: 2, Turnovers: 1,
				FieldGoalsMade: 8, FieldGoalPct: 0.4, // 20 attempts
				ThreeMade: 3, ThreePct: 0.6, // 5 attempts
				FreeThrowsMade: 1, FreeThrowPct: 0.5, // 2 attempts
			},
		},
		{
			Date: ParseGameDate("2023-11-15"),
			Raw:  models.RawGame{Points: 12},
		},
	}

	aggs := AggregateSeasons(games)
	if len(aggs) != 2 {
		t.Fatalf("got %d seasons, want 2", len(aggs))
	}

	// Sorted ascending by label.
	if aggs[0].Season != "2023-24" || aggs[1].Season != "2024-25" {
		t.Fatalf("season order = %q, %q", aggs[0].Season, aggs[1].Season)
	}

	cur := aggs[1]
	if cur.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", cur.GamesPlayed)
	}
	if cur.Points != 50 || cur.Rebounds != 18 || cur.Assists != 12 {
		t.Errorf("counting stats = %v/%v/%v, want 50/18/12", cur.Points, cur.Rebounds, cur.Assists)
	}
	if !almostEqual(cur.FieldGoalsAttempted, 40) {
		t.Errorf("FieldGoalsAttempted = %v, want 40", cur.FieldGoalsAttempted)
	}
	if !almostEqual(cur.FieldGoalPercentage, 18.0/40) {
		t.Errorf("FieldGoalPercentage = %v, want %v", cur.FieldGoalPercentage, 18.0/40)
	}
	if !almostEqual(cur.ThreePointsAtt, 10) {
		t.Errorf("ThreePointsAttempted = %v, want 10", cur.ThreePointsAtt)
	}
	if !almostEqual(cur.ThreePointPct, 0.5) {
		t.Errorf("ThreePointPercentage = %v, want 0.5", cur.ThreePointPct)
	}
	if !almostEqual(cur.FreeThrowsAtt, 12) {
		t.Errorf("FreeThrowsAttempted = %v, want 12", cur.FreeThrowsAtt)
	}
	if !almostEqual(cur.FreeThrowPct, 9.0/12) {
		t.Errorf("FreeThrowPercentage = %v, want %v", cur.FreeThrowPct, 9.0/12)
	}

	prev := aggs[0]
	if prev.GamesPlayed != 1 || prev.Points != 12 {
		t.Errorf("2023-24 = %d games / %v points, want 1 / 12", prev.GamesPlayed, prev.Points)
	}
	if prev.FieldGoalPercentage != 0 {
		t.Errorf("no attempts should give 0 pct, got %v", prev.FieldGoalPercentage)
	}
}

func TestAggregateSeasonsZeroPct(t *testing.T) {
	// A stored 0% contributes zero attempts even when makes exist in
	// other games; the recomputed percentage only covers nonzero games.
	games := []models.NormalizedGame{
		{Date: ParseGameDate("2024-11-01"), Raw: models.RawGame{FieldGoalsMade: 10, FieldGoalPct: 0.5}},
		{Date: ParseGameDate("2024-11-03"), Raw: models.RawGame{FieldGoalsMade: 0, FieldGoalPct: 0}},
	}

	aggs := AggregateSeasons(games)
	if len(aggs) != 1 {
		t.Fatalf("got %d seasons, want 1", len(aggs))
	}
	if !almostEqual(aggs[0].FieldGoalsAttempted, 20) {
		t.Errorf("FieldGoalsAttempted = %v, want 20", aggs[0].FieldGoalsAttempted)
	}
	if !almostEqual(aggs[0].FieldGoalPercentage, 0.5) {
		t.Errorf("FieldGoalPercentage = %v, want 0.5", aggs[0].FieldGoalPercentage)
	}
}

func TestAggregateSeasonsDropsUndatedGames(t *testing.T) {
	games := []models.NormalizedGame{
		{Date: ParseGameDate("bad-key"), Raw: models.RawGame{Points: 99}},
	}
	if aggs := AggregateSeasons(games); len(aggs) != 0 {
		t.Errorf("got %d seasons for undated games, want 0", len(aggs))
	}
}

func TestAggregateSeasonsEmpty(t *testing.T) {
	if aggs := AggregateSeasons(nil); len(aggs) != 0 {
		t.Errorf("got %d seasons for nil input, want 0", len(aggs))
	}
}
