package logic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/courtside/stats-api/internal/models"
)

// rosterService reads entity documents out of Postgres. Each entity is
// one JSONB document per row, mirroring the legacy document-store
// layout, so the rest of the system sees a plain lookup service.
type rosterService struct {
	pg PgPool
}

func NewRosterService(pg PgPool) RosterService {
	return &rosterService{pg: pg}
}

func (s *rosterService) FindPlayer(ctx context.Context, name string) (*models.EntityDoc, error) {
	return s.findOne(ctx, "players", name)
}

func (s *rosterService) FindTeam(ctx context.Context, name string) (*models.EntityDoc, error) {
	return s.findOne(ctx, "teams", name)
}

func (s *rosterService) SearchPlayers(ctx context.Context, name string) ([]models.SearchResult, error) {
	return s.search(ctx, "players", name)
}

func (s *rosterService) SearchTeams(ctx context.Context, name string) ([]models.SearchResult, error) {
	return s.search(ctx, "teams", name)
}

// findOne fetches a single document by case-insensitive name match.
// The table name is one of two fixed strings, never caller input.
func (s *rosterService) findOne(ctx context.Context, table, name string) (*models.EntityDoc, error) {
	var doc models.EntityDoc
	err := s.pg.QueryRow(ctx,
		fmt.Sprintf("SELECT doc FROM %s WHERE lower(name) = lower($1)", table),
		name).Scan(&doc)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", table, err)
	}
	return &doc, nil
}

// search returns lightweight projections for documents whose name
// contains the query, case-insensitively.
func (s *rosterService) search(ctx context.Context, table, name string) ([]models.SearchResult, error) {
	rows, err := s.pg.Query(ctx,
		fmt.Sprintf(`SELECT name,
			coalesce(doc->>'team', ''),
			coalesce((doc->>'avg_ppg')::float8, 0)
		FROM %s WHERE name ILIKE '%%' || $1 || '%%' ORDER BY name LIMIT 25`, table),
		name)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", table, err)
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		var r models.SearchResult
		if err := rows.Scan(&r.Name, &r.Team, &r.AvgPPG); err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
