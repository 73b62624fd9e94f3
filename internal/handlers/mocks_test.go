package handlers

import (
	"context"

	"github.com/courtside/stats-api/internal/models"
	"github.com/courtside/stats-api/internal/worker"
)

// Mocks

type MockIngestQueue struct {
	EnqueueFunc func(job worker.Job) bool
	Depth       int
}

func (m *MockIngestQueue) Enqueue(job worker.Job) bool {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(job)
	}
	return true
}
func (m *MockIngestQueue) QueueDepth() int { return m.Depth }

type MockRosterService struct {
	FindPlayerFunc    func(ctx context.Context, name string) (*models.EntityDoc, error)
	FindTeamFunc      func(ctx context.Context, name string) (*models.EntityDoc, error)
	SearchPlayersFunc func(ctx context.Context, name string) ([]models.SearchResult, error)
	SearchTeamsFunc   func(ctx context.Context, name string) ([]models.SearchResult, error)
}

func (m *MockRosterService) FindPlayer(ctx context.Context, name string) (*models.EntityDoc, error) {
	return m.FindPlayerFunc(ctx, name)
}
func (m *MockRosterService) FindTeam(ctx context.Context, name string) (*models.EntityDoc, error) {
	return m.FindTeamFunc(ctx, name)
}
func (m *MockRosterService) SearchPlayers(ctx context.Context, name string) ([]models.SearchResult, error) {
	return m.SearchPlayersFunc(ctx, name)
}
func (m *MockRosterService) SearchTeams(ctx context.Context, name string) ([]models.SearchResult, error) {
	return m.SearchTeamsFunc(ctx, name)
}

type MockStatsService struct {
	GetPlayerStatsFunc func(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error)
	GetTeamStatsFunc   func(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error)
}

func (m *MockStatsService) GetPlayerStats(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error) {
	return m.GetPlayerStatsFunc(ctx, name, spec)
}
func (m *MockStatsService) GetTeamStats(ctx context.Context, name string, spec models.FilterSpec) (*models.StatsResponse, error) {
	return m.GetTeamStatsFunc(ctx, name, spec)
}

type MockPredictionService struct {
	PredictNextGameFunc func(ctx context.Context, entityType, name, stat string) (*models.StatPrediction, error)
	PredictChampionFunc func(ctx context.Context) (*models.ChampionPrediction, error)
}

func (m *MockPredictionService) PredictNextGame(ctx context.Context, entityType, name, stat string) (*models.StatPrediction, error) {
	return m.PredictNextGameFunc(ctx, entityType, name, stat)
}
func (m *MockPredictionService) PredictChampion(ctx context.Context) (*models.ChampionPrediction, error) {
	return m.PredictChampionFunc(ctx)
}

type MockFavoritesService struct {
	GetFavoritesFunc func(ctx context.Context, user string) ([]string, error)
	SetFavoritesFunc func(ctx context.Context, user string, favorites []string) error
}

func (m *MockFavoritesService) GetFavorites(ctx context.Context, user string) ([]string, error) {
	return m.GetFavoritesFunc(ctx, user)
}
func (m *MockFavoritesService) SetFavorites(ctx context.Context, user string, favorites []string) error {
	return m.SetFavoritesFunc(ctx, user, favorites)
}
