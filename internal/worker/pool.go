// Package worker implements the buffered worker pool for async game
// ingestion. It decouples HTTP request handling from storage writes:
// backpressure is handled by load shedding, ClickHouse gets efficient
// batch inserts, and shutdown flushes whatever is still queued.
package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/courtside/stats-api/internal/logic"
	"github.com/courtside/stats-api/internal/models"
)

// Prometheus metrics
var (
	gamesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_games_ingested_total",
		Help: "Total number of game updates accepted for ingestion",
	})

	gamesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_games_processed_total",
		Help: "Total number of game updates processed by workers",
	})

	gamesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_games_failed_total",
		Help: "Total number of game updates that failed processing",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nba_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nba_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to ClickHouse",
		Buckets: prometheus.DefBuckets,
	})

	gamesLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_games_load_shed_total",
		Help: "Total number of game updates dropped due to load shedding",
	})
)

// Job is one game update queued for processing.
type Job struct {
	Update    models.GameUpdate
	BatchID   string
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	ClickHouse    driver.Conn
	Postgres      logic.PgPool
	Logger        *zap.Logger
}

// Pool manages a pool of workers for async game ingestion
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the worker pool. Queued jobs are drained
// and flushed before workers exit.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	close(p.jobQueue)
	p.wg.Wait()
	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Info("Worker pool stopped")
}

// Enqueue offers a job to the queue without blocking. It returns false
// when the queue is full; the caller decides whether that is a 503 or a
// retry.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		gamesIngested.Inc()
		return true
	default:
		gamesLoadShed.Inc()
		return false
	}
}

// QueueDepth returns the number of jobs waiting in the queue
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		}
	}
}

// worker consumes jobs, updating the Postgres document per job and
// accumulating rows for batched ClickHouse inserts. The batch flushes on
// size or on the flush interval, whichever comes first.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := p.insertBatch(batch); err != nil {
			gamesFailed.Add(float64(len(batch)))
			p.logger.Errorw("Batch insert failed", "worker", id, "size", len(batch), "error", err)
		} else {
			gamesProcessed.Add(float64(len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			if err := p.applyToDocument(job); err != nil {
				gamesFailed.Inc()
				p.logger.Errorw("Document update failed",
					"worker", id, "entity", job.Update.Name, "error", err)
				continue
			}
			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// applyToDocument merges the game update into the entity's JSONB
// document, creating the document on first sight of the entity.
func (p *Pool) applyToDocument(job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u := job.Update
	table := "players"
	if u.EntityType == "team" {
		table = "teams"
	}

	_, err := p.config.Postgres.Exec(ctx,
		"INSERT INTO "+table+" (name, doc) VALUES ($1, jsonb_build_object('name', $1::text, 'games', '{}'::jsonb, 'future_games', '{}'::jsonb)) ON CONFLICT (name) DO NOTHING",
		u.Name)
	if err != nil {
		return err
	}

	path := []string{"games", u.DateKey}
	if u.Future {
		path = []string{"future_games", u.DateKey}
	}
	gameJSON, err := json.Marshal(u.Game)
	if err != nil {
		return err
	}
	_, err = p.config.Postgres.Exec(ctx,
		"UPDATE "+table+" SET doc = jsonb_set(doc, $2, $3::jsonb, true) WHERE name = $1",
		u.Name, path, gameJSON)
	return err
}

// insertBatch appends the batch to the ClickHouse game log.
func (p *Pool) insertBatch(jobs []Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	batch, err := p.config.ClickHouse.PrepareBatch(ctx, `
		INSERT INTO nba_stats.game_log
		(batch_id, entity_type, name, date_key, team, matchup, points, rebounds, assists,
		 fg_made, fg_pct, three_made, three_pct, ft_made, ft_pct,
		 steals, blocks, turnovers, win_loss, season_id, is_future, ingested_at)
	`)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		g := job.Update.Game
		if err := batch.Append(
			job.BatchID, job.Update.EntityType, job.Update.Name, job.Update.DateKey,
			g.Team, g.Matchup, g.Points, g.Rebounds, g.Assists,
			g.FieldGoalsMade, g.FieldGoalPct, g.ThreeMade, g.ThreePct,
			g.FreeThrowsMade, g.FreeThrowPct,
			g.Steals, g.Blocks, g.Turnovers, g.WinLoss, g.SeasonID,
			job.Update.Future, job.Timestamp,
		); err != nil {
			return err
		}
	}

	if err := batch.Send(); err != nil {
		return err
	}
	batchInsertDuration.Observe(time.Since(start).Seconds())
	return nil
}
