package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/stats-api/internal/models"
	"github.com/courtside/stats-api/internal/worker"
)

// IngestGames accepts a batch of game updates for async processing
// @Summary Ingest game records
// @Description Queue game updates for the worker pool; documents and the game log are written asynchronously
// @Tags Ingest
// @Accept json
// @Produce json
// @Success 202 {object} models.IngestResponse "Accepted"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 503 {object} map[string]string "Queue full"
// @Router /ingest/games [post]
func (h *Handler) IngestGames(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game updates")
		return
	}

	batchID := uuid.New().String()
	now := time.Now().UTC()

	accepted, dropped := 0, 0
	for _, update := range req.Updates {
		ok := h.pool.Enqueue(worker.Job{
			Update:    update,
			BatchID:   batchID,
			Timestamp: now,
		})
		if ok {
			accepted++
		} else {
			dropped++
		}
	}

	if accepted == 0 {
		h.errorResponse(w, http.StatusServiceUnavailable, "Ingest queue is full")
		return
	}

	h.jsonResponse(w, http.StatusAccepted, models.IngestResponse{
		BatchID:  batchID,
		Accepted: accepted,
		Dropped:  dropped,
	})
}
