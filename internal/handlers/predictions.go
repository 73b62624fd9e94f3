package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/stats-api/internal/logic"
)

// GetPlayerPrediction forecasts a player's next-game stat
// @Summary Predict a player's next game
// @Tags Predictions
// @Produce json
// @Param name path string true "Player name"
// @Param stat query string false "points, rebounds or assists" default(points)
// @Success 200 {object} models.StatPrediction
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 422 {object} map[string]string "Not enough data"
// @Router /predictions/player/{name} [get]
func (h *Handler) GetPlayerPrediction(w http.ResponseWriter, r *http.Request) {
	h.entityPrediction(w, r, "player")
}

// GetTeamPrediction forecasts a team's next-game stat
// @Summary Predict a team's next game
// @Tags Predictions
// @Produce json
// @Param name path string true "Team name"
// @Param stat query string false "points, rebounds or assists" default(points)
// @Success 200 {object} models.StatPrediction
// @Router /predictions/team/{name} [get]
func (h *Handler) GetTeamPrediction(w http.ResponseWriter, r *http.Request) {
	h.entityPrediction(w, r, "team")
}

func (h *Handler) entityPrediction(w http.ResponseWriter, r *http.Request, entityType string) {
	name := chi.URLParam(r, "name")
	stat := r.URL.Query().Get("stat")
	switch stat {
	case "", "points":
		stat = "points"
	case "rebounds", "assists":
	default:
		h.errorResponse(w, http.StatusBadRequest, "Unsupported stat")
		return
	}

	pred, err := h.prediction.PredictNextGame(r.Context(), entityType, name, stat)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrNotFound):
			notFound := "Player not found"
			if entityType == "team" {
				notFound = "Team not found"
			}
			h.errorResponse(w, http.StatusNotFound, notFound)
		case errors.Is(err, logic.ErrNotEnoughData):
			h.errorResponse(w, http.StatusUnprocessableEntity, "Not enough games to predict")
		default:
			h.logger.Errorw("Prediction failed", "entity_type", entityType, "name", name, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Prediction failed")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, pred)
}

// PredictChampion names the team with the best scoring average
// @Summary Predict the season champion
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.ChampionPrediction
// @Failure 500 {object} map[string]string "No data"
// @Router /predictions/champion [get]
func (h *Handler) PredictChampion(w http.ResponseWriter, r *http.Request) {
	pred, err := h.prediction.PredictChampion(r.Context())
	if err != nil {
		h.errorResponse(w, http.StatusInternalServerError, "No team has avg_ppg recorded")
		return
	}
	h.jsonResponse(w, http.StatusOK, pred)
}
