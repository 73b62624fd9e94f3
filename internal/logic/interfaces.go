package logic

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/courtside/stats-api/internal/models"
)

// ErrNotFound is returned when the requested entity has no document in
// the store. It is the only data condition that surfaces as an error;
// malformed data inside a document degrades instead.
var ErrNotFound = errors.New("entity not found")

// ErrNotEnoughData is returned when an entity has too few games for a
// regression to mean anything.
var ErrNotEnoughData = errors.New("not enough games to predict")

// ErrNoChampionData is returned when no team document carries an
// avg_ppg value.
var ErrNoChampionData = errors.New("no team has avg_ppg recorded")

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RosterService resolves entity documents and search projections from
// the document store.
type RosterService interface {
	FindPlayer(ctx context.Context, name string) (*models.EntityDoc, error)
	FindTeam(ctx context.Context, name string) (*models.EntityDoc, error)
	SearchPlayers(ctx context.Context, name string) ([]models.SearchResult, error)
	SearchTeams(ctx context.Context, name string) ([]models.SearchResult, error)
}

// StatsService produces filtered game logs and seasonal rollups.
type StatsService interface {
	GetPlayerStats(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error)
	GetTeamStats(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error)
}

// PredictionService forecasts next-game stats and the season champion.
type PredictionService interface {
	PredictNextGame(ctx context.Context, entityType, name, stat string) (*models.StatPrediction, error)
	PredictChampion(ctx context.Context) (*models.ChampionPrediction, error)
}

// FavoritesService stores per-user favorite entities.
type FavoritesService interface {
	GetFavorites(ctx context.Context, user string) ([]string, error)
	SetFavorites(ctx context.Context, user string, favorites []string) error
}

// FeedbackService runs the prediction feedback loop: collect issued
// predictions, then compare them against observed outcomes and nudge
// per-entity bias sliders.
type FeedbackService interface {
	CollectPredictions(ctx context.Context) (int, error)
	EvaluateDiscrepancies(ctx context.Context) ([]models.FeedbackReport, error)
}
