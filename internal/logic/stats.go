package logic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/stats-api/internal/models"
)

// BuildFilteredStats runs the full pipeline over one entity document:
// normalize the merged games and future_games, apply the filter spec,
// aggregate by season. Pure and deterministic; every request works on
// its own copy, so concurrent calls share nothing but the lookup tables.
func BuildFilteredStats(doc *models.EntityDoc, spec models.FilterSpec) ([]models.GameStat, []models.SeasonAggregate) {
	normalized := NormalizeAll(doc)
	filtered := FilterGames(normalized, spec)

	stats := make([]models.GameStat, 0, len(filtered))
	for _, g := range filtered {
		stats = append(stats, toGameStat(g))
	}
	return stats, AggregateSeasons(filtered)
}

// toGameStat projects a normalized game onto the public output shape,
// dropping the normalization scratch fields.
func toGameStat(g models.NormalizedGame) models.GameStat {
	return models.GameStat{
		Date:                g.Date.Key,
		Points:              g.Raw.Points,
		Rebounds:            g.Raw.Rebounds,
		Assists:             g.Raw.Assists,
		FieldGoalsMade:      g.Raw.FieldGoalsMade,
		FieldGoalPercentage: g.Raw.FieldGoalPct,
		ThreePointsMade:     g.Raw.ThreeMade,
		ThreePointPct:       g.Raw.ThreePct,
		FreeThrowsMade:      g.Raw.FreeThrowsMade,
		FreeThrowPct:        g.Raw.FreeThrowPct,
		Steals:              g.Raw.Steals,
		Blocks:              g.Raw.Blocks,
		Turnovers:           g.Raw.Turnovers,
		WinLoss:             g.Raw.WinLoss,
		Season:              SeasonYear(g.Raw.SeasonID, g.Date),
		SeasonType:          SeasonTypeFromID(g.Raw.SeasonID).String(),
		GameLocation:        g.Location,
		Opponent:            g.OpponentAbbr,
		IsFutureGame:        g.Raw.IsFutureGame,
	}
}

type statsService struct {
	roster   RosterService
	redis    RedisClient
	logger   *zap.SugaredLogger
	cacheTTL time.Duration
}

// NewStatsService wires the pipeline to the roster lookup and a Redis
// response cache. A zero cacheTTL disables caching.
func NewStatsService(roster RosterService, rdb RedisClient, logger *zap.Logger, cacheTTL time.Duration) StatsService {
	return &statsService{
		roster:   roster,
		redis:    rdb,
		logger:   logger.Sugar(),
		cacheTTL: cacheTTL,
	}
}

func (s *statsService) GetPlayerStats(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error) {
	return s.getStats(ctx, "player", name, spec, s.roster.FindPlayer)
}

func (s *statsService) GetTeamStats(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error) {
	return s.getStats(ctx, "team", name, spec, s.roster.FindTeam)
}

func (s *statsService) getStats(
	ctx context.Context,
	entityType, name string,
	spec models.FilterSpec,
	find func(context.Context, string) (*models.EntityDoc, error),
) (*models.StatsResponse, error) {
	key := cacheKey(entityType, name, spec)
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	doc, err := find(ctx, name)
	if err != nil {
		return nil, err
	}

	stats, seasonal := BuildFilteredStats(doc, spec)
	resp := &models.StatsResponse{Stats: stats, SeasonalStats: seasonal}
	s.toCache(ctx, key, resp)
	return resp, nil
}

func (s *statsService) fromCache(ctx context.Context, key string) *models.StatsResponse {
	if s.redis == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debugw("Stats cache read failed", "key", key, "error", err)
		}
		return nil
	}
	var resp models.StatsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *statsService) toCache(ctx context.Context, key string, resp *models.StatsResponse) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debugw("Stats cache write failed", "key", key, "error", err)
	}
}

// cacheKey hashes the filter spec so arbitrary filter combinations stay
// within Redis key length limits.
func cacheKey(entityType, name string, spec models.FilterSpec) string {
	raw, _ := json.Marshal(spec)
	h := sha256.Sum256(append([]byte(name+"|"), raw...))
	return "stats:" + entityType + ":" + hex.EncodeToString(h[:8])
}
