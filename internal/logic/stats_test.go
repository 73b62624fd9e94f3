package logic

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/stats-api/internal/models"
)

type MockRoster struct {
	FindPlayerFunc func(ctx context.Context, name string) (*models.EntityDoc, error)
	FindTeamFunc   func(ctx context.Context, name string) (*models.EntityDoc, error)
}

func (m *MockRoster) FindPlayer(ctx context.Context, name string) (*models.EntityDoc, error) {
	return m.FindPlayerFunc(ctx, name)
}
func (m *MockRoster) FindTeam(ctx context.Context, name string) (*models.EntityDoc, error) {
	return m.FindTeamFunc(ctx, name)
}
func (m *MockRoster) SearchPlayers(ctx context.Context, name string) ([]models.SearchResult, error) {
	return nil, nil
}
func (m *MockRoster) SearchTeams(ctx context.Context, name string) ([]models.SearchResult, error) {
	return nil, nil
}

// MockRedis records cache traffic; Get always misses.
type MockRedis struct {
	Gets int
	Sets int
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.Gets++
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.Sets++
	return redis.NewStatusResult("OK", nil)
}

func testDoc() *models.EntityDoc {
	return &models.EntityDoc{
		Name:       "Test Player",
		Team:       "Boston Celtics",
		AbbrevName: "BOS",
		Games: map[string]models.RawGame{
			"2024-11-05": {Matchup: "BOS vs. LAL", Team: "BOS", Points: 30, WinLoss: "W", SeasonID: "22024"},
			"2024-11-08": {Matchup: "BOS @ MIA", Team: "BOS", Points: 22, WinLoss: "L", SeasonID: "22024"},
		},
		FutureGames: map[string]models.RawGame{
			"2024-11-15": {Matchup: "BOS vs. NYK", Team: "BOS", Points: 25.5, SeasonID: "22024"},
		},
	}
}

func TestBuildFilteredStats(t *testing.T) {
	stats, seasonal := BuildFilteredStats(testDoc(), models.FilterSpec{})

	if len(stats) != 3 {
		t.Fatalf("got %d stats, want 3", len(stats))
	}

	first := stats[0]
	if first.Date != "2024-11-05" {
		t.Errorf("Date = %q, want 2024-11-05", first.Date)
	}
	if first.Season != "2024-25" {
		t.Errorf("Season = %q, want 2024-25", first.Season)
	}
	if first.SeasonType != "Regular Season" {
		t.Errorf("SeasonType = %q, want Regular Season", first.SeasonType)
	}
	if first.GameLocation != LocationHome || first.Opponent != "LAL" {
		t.Errorf("location/opponent = %q/%q, want home/LAL", first.GameLocation, first.Opponent)
	}
	if first.IsFutureGame {
		t.Error("observed game flagged as future")
	}
	if !stats[2].IsFutureGame {
		t.Error("future game not flagged")
	}

	if len(seasonal) != 1 {
		t.Fatalf("got %d seasons, want 1", len(seasonal))
	}
	if seasonal[0].GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", seasonal[0].GamesPlayed)
	}
	if seasonal[0].Points != 77.5 {
		t.Errorf("Points = %v, want 77.5", seasonal[0].Points)
	}
}

func TestBuildFilteredStatsFiltersApply(t *testing.T) {
	stats, seasonal := BuildFilteredStats(testDoc(), models.FilterSpec{Outcome: models.OutcomeWin})
	if len(stats) != 1 || stats[0].Date != "2024-11-05" {
		t.Fatalf("filtered stats = %v", stats)
	}
	if len(seasonal) != 1 || seasonal[0].Points != 30 {
		t.Fatalf("seasonal over filtered games = %v", seasonal)
	}
}

func TestStatsServiceCaching(t *testing.T) {
	calls := 0
	roster := &MockRoster{
		FindPlayerFunc: func(ctx context.Context, name string) (*models.EntityDoc, error) {
			calls++
			return testDoc(), nil
		},
	}
	rdb := &MockRedis{}
	svc := NewStatsService(roster, rdb, zap.NewNop(), time.Minute)

	resp, err := svc.GetPlayerStats(context.Background(), "Test Player", models.FilterSpec{})
	if err != nil {
		t.Fatalf("GetPlayerStats() error = %v", err)
	}
	if len(resp.Stats) != 3 {
		t.Errorf("got %d stats, want 3", len(resp.Stats))
	}
	if calls != 1 {
		t.Errorf("roster calls = %d, want 1", calls)
	}
	if rdb.Gets != 1 || rdb.Sets != 1 {
		t.Errorf("cache traffic = %d gets / %d sets, want 1/1", rdb.Gets, rdb.Sets)
	}
}

func TestStatsServiceZeroTTLSkipsCache(t *testing.T) {
	roster := &MockRoster{
		FindPlayerFunc: func(ctx context.Context, name string) (*models.EntityDoc, error) {
			return testDoc(), nil
		},
	}
	rdb := &MockRedis{}
	svc := NewStatsService(roster, rdb, zap.NewNop(), 0)

	if _, err := svc.GetPlayerStats(context.Background(), "Test Player", models.FilterSpec{}); err != nil {
		t.Fatalf("GetPlayerStats() error = %v", err)
	}
	if rdb.Gets != 0 || rdb.Sets != 0 {
		t.Errorf("cache traffic with zero TTL = %d gets / %d sets, want 0/0", rdb.Gets, rdb.Sets)
	}
}

func TestStatsServiceNotFound(t *testing.T) {
	roster := &MockRoster{
		FindTeamFunc: func(ctx context.Context, name string) (*models.EntityDoc, error) {
			return nil, ErrNotFound
		},
	}
	svc := NewStatsService(roster, nil, zap.NewNop(), 0)

	if _, err := svc.GetTeamStats(context.Background(), "Nobody", models.FilterSpec{}); err != ErrNotFound {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCacheKeyDistinguishesSpecs(t *testing.T) {
	a := cacheKey("player", "Test", models.FilterSpec{})
	b := cacheKey("player", "Test", models.FilterSpec{Season: "2024-25"})
	c := cacheKey("team", "Test", models.FilterSpec{})
	if a == b || a == c {
		t.Errorf("cache keys collide: %q %q %q", a, b, c)
	}
}
