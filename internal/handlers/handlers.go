package handlers

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/stats-api/internal/logic"
	"github.com/courtside/stats-api/internal/worker"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the game ingestion worker pool
type IngestQueue interface {
	Enqueue(job worker.Job) bool
	QueueDepth() int
}

type Config struct {
	WorkerPool IngestQueue
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
	// Services
	Roster     logic.RosterService
	Stats      logic.StatsService
	Prediction logic.PredictionService
	Favorites  logic.FavoritesService
}

type Handler struct {
	pool       IngestQueue
	pg         *pgxpool.Pool
	ch         driver.Conn
	redis      *redis.Client
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	roster     logic.RosterService
	stats      logic.StatsService
	prediction logic.PredictionService
	favorites  logic.FavoritesService
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:       cfg.WorkerPool,
		pg:         cfg.Postgres,
		ch:         cfg.ClickHouse,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		roster:     cfg.Roster,
		stats:      cfg.Stats,
		prediction: cfg.Prediction,
		favorites:  cfg.Favorites,
	}
}
