package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/courtside/stats-api/internal/models"
)

const (
	feedbackWatermarkKey = "feedback:last_run"
	watermarkLayout      = "2006-01-02_15-04-05"
)

// Slider thresholds: prediction errors between 20% and 35% nudge the
// entity's bias by a quarter point, anything above 35% by half a point.
// The sign opposes the error so over-predictions push the bias down.
const (
	feedbackMinErrorPct  = 0.20
	feedbackHighErrorPct = 0.35
	sliderSmallStep      = 0.25
	sliderLargeStep      = 0.5
)

type feedbackService struct {
	pg     PgPool
	ch     driver.Conn
	redis  *redis.Client
	logger *zap.SugaredLogger
}

// NewFeedbackService builds the feedback loop over the document store,
// the ClickHouse report log and the Redis run watermark.
func NewFeedbackService(pg PgPool, ch driver.Conn, rdb *redis.Client, logger *zap.Logger) FeedbackService {
	return &feedbackService{pg: pg, ch: ch, redis: rdb, logger: logger.Sugar()}
}

// CollectPredictions snapshots every future-game record whose date falls
// between the previous run and now into the feedback_predictions table,
// then advances the watermark. The snapshot is what the evaluator later
// compares against actual outcomes, so predictions survive even after
// the ingest pipeline overwrites future_games with observed data.
func (s *feedbackService) CollectPredictions(ctx context.Context) (int, error) {
	lastRun := s.watermark(ctx)
	now := time.Now().UTC()

	total := 0
	for _, entityType := range []string{"player", "team"} {
		n, err := s.collectFor(ctx, entityType, lastRun, now)
		if err != nil {
			return total, err
		}
		total += n
	}

	if err := s.redis.Set(ctx, feedbackWatermarkKey, now.Format(watermarkLayout), 0).Err(); err != nil {
		s.logger.Warnw("Failed to advance feedback watermark", "error", err)
	}

	s.logger.Infow("Feedback predictions collected", "count", total, "since", lastRun, "until", now)
	return total, nil
}

func (s *feedbackService) collectFor(ctx context.Context, entityType string, lastRun, now time.Time) (int, error) {
	table := entityTable(entityType)
	rows, err := s.pg.Query(ctx,
		fmt.Sprintf("SELECT name, coalesce(doc->'future_games', '{}'::jsonb) FROM %s", table))
	if err != nil {
		return 0, fmt.Errorf("collect %s predictions: %w", entityType, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var name string
		var futureGames map[string]models.RawGame
		if err := rows.Scan(&name, &futureGames); err != nil {
			continue
		}
		for key, game := range futureGames {
			gameTime, ok := keyTime(key)
			if !ok {
				continue
			}
			if gameTime.Before(lastRun) || !gameTime.Before(now) {
				continue
			}
			raw, err := json.Marshal(game)
			if err != nil {
				continue
			}
			_, err = s.pg.Exec(ctx, `
				INSERT INTO feedback_predictions (entity_type, name, date_key, predicted)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (entity_type, name, date_key) DO UPDATE SET predicted = EXCLUDED.predicted
			`, entityType, name, key, raw)
			if err != nil {
				s.logger.Errorw("Failed to store prediction snapshot",
					"entity", name, "date", key, "error", err)
				continue
			}
			count++
		}
	}
	return count, rows.Err()
}

// EvaluateDiscrepancies compares stored prediction snapshots against the
// observed game at the same date key, adjusts the entity's bias slider
// when the points error crosses the thresholds, and appends one report
// row per discrepancy to ClickHouse. Small errors and zero actuals are
// skipped. Player and team snapshots are evaluated concurrently.
func (s *feedbackService) EvaluateDiscrepancies(ctx context.Context) ([]models.FeedbackReport, error) {
	g, ctx := errgroup.WithContext(ctx)

	results := make([][]models.FeedbackReport, 2)
	for i, entityType := range []string{"player", "team"} {
		i, entityType := i, entityType
		g.Go(func() error {
			reports, err := s.evaluateFor(ctx, entityType)
			if err != nil {
				return err
			}
			results[i] = reports
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := append(results[0], results[1]...)
	if len(reports) > 0 {
		if err := s.writeReports(ctx, reports); err != nil {
			s.logger.Errorw("Failed to persist feedback reports", "error", err)
		}
	}

	s.logger.Infow("Feedback evaluation complete", "discrepancies", len(reports))
	return reports, nil
}

func (s *feedbackService) evaluateFor(ctx context.Context, entityType string) ([]models.FeedbackReport, error) {
	table := entityTable(entityType)
	rows, err := s.pg.Query(ctx, fmt.Sprintf(`
		SELECT p.name, p.date_key, p.predicted, e.doc->'games'->p.date_key
		FROM feedback_predictions p
		JOIN %s e ON lower(e.name) = lower(p.name)
		WHERE p.entity_type = $1 AND e.doc->'games' ? p.date_key
	`, table), entityType)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s predictions: %w", entityType, err)
	}
	defer rows.Close()

	var reports []models.FeedbackReport
	for rows.Next() {
		var name, dateKey string
		var predicted, actual models.RawGame
		if err := rows.Scan(&name, &dateKey, &predicted, &actual); err != nil {
			continue
		}

		// Zero actuals would divide away; they also usually mean the
		// record is a placeholder rather than a played game.
		if actual.Points == 0 {
			continue
		}

		errVal := predicted.Points - actual.Points
		pctError := math.Abs(errVal) / math.Abs(actual.Points)
		slider := sliderFor(errVal, pctError)
		if slider == 0 {
			continue
		}

		if err := s.applySlider(ctx, table, name, slider); err != nil {
			s.logger.Errorw("Failed to apply slider", "entity", name, "error", err)
			continue
		}

		reports = append(reports, models.FeedbackReport{
			ID:           uuid.New().String(),
			Name:         name,
			EntityType:   entityType,
			GameDate:     dateKey,
			Predicted:    math.Round(predicted.Points*100) / 100,
			Actual:       math.Round(actual.Points*100) / 100,
			ErrorPercent: math.Round(pctError*10000) / 100,
			Slider:       slider,
			EvaluatedAt:  time.Now().UTC(),
		})
	}
	return reports, rows.Err()
}

func sliderFor(errVal, pctError float64) float64 {
	step := 0.0
	switch {
	case pctError > feedbackHighErrorPct:
		step = sliderLargeStep
	case pctError > feedbackMinErrorPct:
		step = sliderSmallStep
	default:
		return 0
	}
	if errVal >= 0 {
		return -step
	}
	return step
}

func (s *feedbackService) applySlider(ctx context.Context, table, name string, slider float64) error {
	_, err := s.pg.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET doc = jsonb_set(doc, '{slider}', to_jsonb($1::float8)) WHERE lower(name) = lower($2)", table),
		slider, name)
	return err
}

func (s *feedbackService) writeReports(ctx context.Context, reports []models.FeedbackReport) error {
	batch, err := s.ch.PrepareBatch(ctx, `
		INSERT INTO nba_stats.feedback_reports
		(id, name, entity_type, game_date, predicted, actual, error_percent, slider_adjustment, evaluated_at)
	`)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if err := batch.Append(r.ID, r.Name, r.EntityType, r.GameDate,
			r.Predicted, r.Actual, r.ErrorPercent, r.Slider, r.EvaluatedAt); err != nil {
			return err
		}
	}
	return batch.Send()
}

// watermark reads the last collection time; a missing or malformed key
// means "collect everything".
func (s *feedbackService) watermark(ctx context.Context) time.Time {
	val, err := s.redis.Get(ctx, feedbackWatermarkKey).Result()
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(watermarkLayout, val)
	if err != nil {
		return time.Time{}
	}
	return t
}

// keyTime parses a store key into a point in time, accepting both the
// date-only and the date_time key formats.
func keyTime(key string) (time.Time, bool) {
	if t, err := time.Parse(watermarkLayout, key); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateLayout, key); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func entityTable(entityType string) string {
	if entityType == "team" {
		return "teams"
	}
	return "players"
}
