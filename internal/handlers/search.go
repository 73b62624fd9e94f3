package handlers

import (
	"net/http"
)

// SearchPlayers finds players by partial name
// @Summary Search Players
// @Tags Search
// @Produce json
// @Param name query string true "Partial player name"
// @Success 200 {object} map[string][]models.SearchResult
// @Failure 400 {object} map[string]string "Missing name"
// @Router /search/players [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "players")
}

// SearchTeams finds teams by partial name
// @Summary Search Teams
// @Tags Search
// @Produce json
// @Param name query string true "Partial team name"
// @Success 200 {object} map[string][]models.SearchResult
// @Failure 400 {object} map[string]string "Missing name"
// @Router /search/teams [get]
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "teams")
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, kind string) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.errorResponse(w, http.StatusBadRequest, "Name parameter is required")
		return
	}

	search := h.roster.SearchPlayers
	if kind == "teams" {
		search = h.roster.SearchTeams
	}

	results, err := search(r.Context(), name)
	if err != nil {
		h.logger.Errorw("Search failed", "kind", kind, "name", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Search failed")
		return
	}
	if len(results) == 0 {
		noneMsg := "No players found"
		if kind == "teams" {
			noneMsg = "No teams found"
		}
		h.messageResponse(w, http.StatusNotFound, noneMsg)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{kind: results})
}
