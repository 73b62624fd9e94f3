package logic

import (
	"sort"

	"github.com/courtside/stats-api/internal/models"
)

// AggregateSeasons rolls a filtered game sequence up into one aggregate
// per season. Seasons are keyed by the calendar date alone here, not by
// season_id, so records that predate the id convention still land in a
// bucket; games without a parseable date are dropped (a season can't be
// labeled without one).
//
// Shooting percentages are recomputed from reconstructed attempt counts
// rather than averaged: a game with pct > 0 contributes made/pct
// attempts. A stored percentage of exactly 0 is indistinguishable from
// "no attempts recorded" and contributes zero attempts, which undercounts
// true attempts for genuine 0% games. Historical outputs depend on this
// approximation, so it is kept as-is.
func AggregateSeasons(games []models.NormalizedGame) []models.SeasonAggregate {
	buckets := make(map[string]*models.SeasonAggregate)

	for _, g := range games {
		label := SeasonYearFromDate(g.Date.Day)
		if label == "" {
			continue
		}
		agg, ok := buckets[label]
		if !ok {
			agg = &models.SeasonAggregate{Season: label}
			buckets[label] = agg
		}

		agg.GamesPlayed++
		agg.Points += g.Raw.Points
		agg.Rebounds += g.Raw.Rebounds
		agg.Assists += g.Raw.Assists
		agg.Steals += g.Raw.Steals
		agg.Blocks += g.Raw.Blocks
		agg.Turnovers += g.Raw.Turnovers

		agg.FieldGoalsMade += g.Raw.FieldGoalsMade
		agg.FieldGoalsAttempted += reconstructAttempts(g.Raw.FieldGoalsMade, g.Raw.FieldGoalPct)
		agg.ThreePointsMade += g.Raw.ThreeMade
		agg.ThreePointsAtt += reconstructAttempts(g.Raw.ThreeMade, g.Raw.ThreePct)
		agg.FreeThrowsMade += g.Raw.FreeThrowsMade
		agg.FreeThrowsAtt += reconstructAttempts(g.Raw.FreeThrowsMade, g.Raw.FreeThrowPct)
	}

	out := make([]models.SeasonAggregate, 0, len(buckets))
	for _, agg := range buckets {
		agg.FieldGoalPercentage = safeRatio(agg.FieldGoalsMade, agg.FieldGoalsAttempted)
		agg.ThreePointPct = safeRatio(agg.ThreePointsMade, agg.ThreePointsAtt)
		agg.FreeThrowPct = safeRatio(agg.FreeThrowsMade, agg.FreeThrowsAtt)
		out = append(out, *agg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

func reconstructAttempts(made, pct float64) float64 {
	if pct <= 0 {
		return 0
	}
	return made / pct
}

func safeRatio(made, attempted float64) float64 {
	if attempted <= 0 {
		return 0
	}
	return made / attempted
}
