package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/stats-api/internal/models"
)

// GetFavorites lists a user's saved players and teams
// @Summary Get Favorites
// @Tags Users
// @Produce json
// @Param user path string true "User identifier"
// @Success 200 {object} models.FavoritesResponse
// @Router /users/{user}/favorites [get]
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")

	favorites, err := h.favorites.GetFavorites(r.Context(), user)
	if err != nil {
		h.logger.Errorw("Failed to load favorites", "user", user, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}

	h.jsonResponse(w, http.StatusOK, models.FavoritesResponse{User: user, Favorites: favorites})
}

// SetFavorites replaces a user's favorites list
// @Summary Set Favorites
// @Tags Users
// @Accept json
// @Produce json
// @Param user path string true "User identifier"
// @Success 200 {object} models.FavoritesResponse
// @Failure 400 {object} map[string]string "Bad request"
// @Router /users/{user}/favorites [put]
func (h *Handler) SetFavorites(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")

	var req models.FavoritesRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Favorites list is required")
		return
	}

	if err := h.favorites.SetFavorites(r.Context(), user, req.Favorites); err != nil {
		h.logger.Errorw("Failed to save favorites", "user", user, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to save favorites")
		return
	}

	h.jsonResponse(w, http.StatusOK, models.FavoritesResponse{User: user, Favorites: req.Favorites})
}
