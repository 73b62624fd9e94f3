package logic

import (
	"context"
	"fmt"
)

// favoritesService persists per-user favorite entity names. There is no
// account system in front of this; the user key is whatever identifier
// the caller trusts.
type favoritesService struct {
	pg PgPool
}

func NewFavoritesService(pg PgPool) FavoritesService {
	return &favoritesService{pg: pg}
}

func (s *favoritesService) GetFavorites(ctx context.Context, user string) ([]string, error) {
	rows, err := s.pg.Query(ctx,
		"SELECT entity_name FROM favorites WHERE user_name = $1 ORDER BY entity_name", user)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		favorites = append(favorites, name)
	}
	return favorites, rows.Err()
}

// SetFavorites replaces the user's list wholesale; the API semantics are
// "save what the client shows", not incremental edits.
func (s *favoritesService) SetFavorites(ctx context.Context, user string, favorites []string) error {
	if _, err := s.pg.Exec(ctx, "DELETE FROM favorites WHERE user_name = $1", user); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	for _, name := range favorites {
		_, err := s.pg.Exec(ctx,
			"INSERT INTO favorites (user_name, entity_name) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			user, name)
		if err != nil {
			return fmt.Errorf("save favorite: %w", err)
		}
	}
	return nil
}
