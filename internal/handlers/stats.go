package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/stats-api/internal/logic"
	"github.com/courtside/stats-api/internal/models"
)

// GetPlayerStats returns a player's filtered game log and seasonal rollups
// @Summary Get Player Stats
// @Description Fetch a player's game log and seasonal aggregates, filtered by query parameters
// @Tags Stats
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} models.StatsResponse "Filtered stats"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /stats/player/{name} [get]
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	h.entityStats(w, r, "player")
}

// GetTeamStats returns a team's filtered game log and seasonal rollups
// @Summary Get Team Stats
// @Tags Stats
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} models.StatsResponse "Filtered stats"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /stats/team/{name} [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	h.entityStats(w, r, "team")
}

func (h *Handler) entityStats(w http.ResponseWriter, r *http.Request, entityType string) {
	name := chi.URLParam(r, "name")
	ctx := r.Context()

	spec := models.FilterSpecFromQuery(r.URL.Query())
	if err := h.validator.Struct(spec); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	get := h.stats.GetPlayerStats
	notFound := "Player not found"
	if entityType == "team" {
		get = h.stats.GetTeamStats
		notFound = "Team not found"
	}

	resp, err := get(ctx, name, spec)
	if err != nil {
		if errors.Is(err, logic.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, notFound)
			return
		}
		h.logger.Errorw("Failed to build filtered stats",
			"entity_type", entityType, "name", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	h.jsonResponse(w, http.StatusOK, resp)
}
