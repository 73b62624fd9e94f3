package models

// SearchResult is a lightweight projection of an entity document used by
// the search endpoints.
type SearchResult struct {
	Name   string  `json:"name"`
	Team   string  `json:"team,omitempty"`
	AvgPPG float64 `json:"avg_ppg,omitempty"`
}

// StatsResponse is the body of the player/team stats endpoints.
type StatsResponse struct {
	Stats         []GameStat        `json:"stats"`
	SeasonalStats []SeasonAggregate `json:"seasonal_stats"`
}

// FavoritesRequest is the body of PUT /users/{user}/favorites.
type FavoritesRequest struct {
	Favorites []string `json:"favorites" validate:"required,dive,required"`
}

// FavoritesResponse lists a user's saved entities.
type FavoritesResponse struct {
	User      string   `json:"user"`
	Favorites []string `json:"favorites"`
}
