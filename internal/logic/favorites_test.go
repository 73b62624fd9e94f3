package logic

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestGetFavorites(t *testing.T) {
	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &MockPgRows{Data: [][]any{
				{"Boston Celtics"},
				{"Jayson Tatum"},
			}}, nil
		},
	}
	svc := NewFavoritesService(pg)

	favorites, err := svc.GetFavorites(context.Background(), "alex")
	if err != nil {
		t.Fatalf("GetFavorites() error = %v", err)
	}
	if len(favorites) != 2 || favorites[0] != "Boston Celtics" {
		t.Errorf("favorites = %v", favorites)
	}
}

func TestGetFavoritesEmpty(t *testing.T) {
	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &MockPgRows{}, nil
		},
	}
	svc := NewFavoritesService(pg)

	favorites, err := svc.GetFavorites(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetFavorites() error = %v", err)
	}
	if favorites == nil {
		t.Error("favorites should be an empty slice, not nil")
	}
}

func TestSetFavoritesReplacesList(t *testing.T) {
	var execs []string
	pg := &MockPgPool{
		ExecFunc: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			execs = append(execs, sql)
			return pgconn.CommandTag{}, nil
		},
	}
	svc := NewFavoritesService(pg)

	err := svc.SetFavorites(context.Background(), "alex", []string{"Boston Celtics", "Jayson Tatum"})
	if err != nil {
		t.Fatalf("SetFavorites() error = %v", err)
	}

	if len(execs) != 3 {
		t.Fatalf("got %d statements, want 3 (delete + 2 inserts)", len(execs))
	}
	if !strings.HasPrefix(execs[0], "DELETE") {
		t.Errorf("first statement = %q, want a DELETE", execs[0])
	}
	for _, sql := range execs[1:] {
		if !strings.HasPrefix(sql, "INSERT") {
			t.Errorf("statement = %q, want an INSERT", sql)
		}
	}
}
