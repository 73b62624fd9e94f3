package logic

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/stats-api/internal/models"
)

// minGamesForPrediction is the fewest recent games a regression will fit.
const minGamesForPrediction = 5

// recentGamesWindow bounds how far back the regression looks.
const recentGamesWindow = 10

type predictionService struct {
	roster RosterService
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewPredictionService(roster RosterService, pg PgPool, logger *zap.Logger) PredictionService {
	return &predictionService{roster: roster, pg: pg, logger: logger.Sugar()}
}

// PredictNextGame fits a least-squares line through the entity's last
// ten current-season values of the requested stat and extrapolates one
// game ahead. Confidence is the R-squared of the fit as a percentage.
func (s *predictionService) PredictNextGame(ctx context.Context, entityType, name, stat string) (*models.StatPrediction, error) {
	find := s.roster.FindPlayer
	if entityType == "team" {
		find = s.roster.FindTeam
	}
	doc, err := find(ctx, name)
	if err != nil {
		return nil, err
	}

	values := recentStatValues(doc, stat)
	if len(values) < minGamesForPrediction {
		return nil, ErrNotEnoughData
	}

	predicted, r2 := extrapolateLinear(values)
	if predicted < 0 {
		predicted = 0
	}

	return &models.StatPrediction{
		Name:        doc.Name,
		EntityType:  entityType,
		Stat:        stat,
		Predicted:   math.Round(predicted*100) / 100,
		Confidence:  math.Round(r2*10000) / 100,
		GamesUsed:   len(values),
		LastUpdated: time.Now().UTC(),
	}, nil
}

// recentStatValues pulls the requested stat from the entity's observed
// games in the current season, ordered by date, capped to the window.
func recentStatValues(doc *models.EntityDoc, stat string) []float64 {
	currentSeason := SeasonYearFromDate(time.Now().UTC())

	type dated struct {
		key string
		val float64
	}
	var games []dated
	for key, raw := range doc.Games {
		date := ParseGameDate(key)
		if !date.Valid() || SeasonYearFromDate(date.Day) != currentSeason {
			continue
		}
		games = append(games, dated{key: key, val: statValue(raw, stat)})
	}
	sort.Slice(games, func(i, j int) bool { return games[i].key < games[j].key })

	if len(games) > recentGamesWindow {
		games = games[len(games)-recentGamesWindow:]
	}
	values := make([]float64, len(games))
	for i, g := range games {
		values[i] = g.val
	}
	return values
}

func statValue(g models.RawGame, stat string) float64 {
	switch stat {
	case "rebounds":
		return g.Rebounds
	case "assists":
		return g.Assists
	default:
		return g.Points
	}
}

// extrapolateLinear fits y = a + b*x over x = 0..n-1 and evaluates the
// line at x = n. The second return is the coefficient of determination.
func extrapolateLinear(values []float64) (next, r2 float64) {
	n := float64(len(values))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return values[len(values)-1], 0
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	next = intercept + slope*n

	mean := sumY / n
	var ssRes, ssTot float64
	for i, y := range values {
		fit := intercept + slope*float64(i)
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot == 0 {
		// Flat series: the line is exact.
		return next, 1
	}
	r2 = 1 - ssRes/ssTot
	if r2 < 0 {
		r2 = 0
	}
	return next, r2
}

// PredictChampion returns the team with the highest recorded scoring
// average.
func (s *predictionService) PredictChampion(ctx context.Context) (*models.ChampionPrediction, error) {
	var pred models.ChampionPrediction
	err := s.pg.QueryRow(ctx, `
		SELECT name, (doc->>'avg_ppg')::float8
		FROM teams
		WHERE doc ? 'avg_ppg'
		ORDER BY (doc->>'avg_ppg')::float8 DESC
		LIMIT 1
	`).Scan(&pred.TopTeam, &pred.TopTeamPPG)
	if err != nil {
		s.logger.Warnw("Champion lookup failed", "error", err)
		return nil, ErrNoChampionData
	}
	return &pred, nil
}
