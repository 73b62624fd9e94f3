package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/stats-api/internal/models"
	"github.com/courtside/stats-api/internal/worker"
)

const validUpdate = `{
	"updates": [
		{
			"entity_type": "player",
			"name": "Jayson Tatum",
			"date_key": "2024-11-05",
			"game": {"Matchup": "BOS vs. LAL", "Points": 30, "Team": "BOS", "WinLoss": "W"}
		}
	]
}`

func TestIngestGames(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		enqueue        func(job worker.Job) bool
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           validUpdate,
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Invalid JSON",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty updates",
			body:           `{"updates": []}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad entity type",
			body:           strings.Replace(validUpdate, `"player"`, `"franchise"`, 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Queue full",
			body:           validUpdate,
			enqueue:        func(job worker.Job) bool { return false },
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.pool = &MockIngestQueue{EnqueueFunc: tt.enqueue}

			req := httptest.NewRequest("POST", "/ingest/games", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.IngestGames(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestIngestGamesPartialShed(t *testing.T) {
	calls := 0
	h := newTestHandler()
	h.pool = &MockIngestQueue{
		EnqueueFunc: func(job worker.Job) bool {
			calls++
			return calls == 1 // first fits, second is shed
		},
	}

	body := `{
		"updates": [
			{"entity_type": "player", "name": "A", "date_key": "2024-11-05", "game": {"Points": 10}},
			{"entity_type": "player", "name": "B", "date_key": "2024-11-05", "game": {"Points": 12}}
		]
	}`
	req := httptest.NewRequest("POST", "/ingest/games", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.IngestGames(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %v, want 202", w.Code)
	}
	var resp models.IngestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Accepted != 1 || resp.Dropped != 1 {
		t.Errorf("accepted/dropped = %d/%d, want 1/1", resp.Accepted, resp.Dropped)
	}
	if resp.BatchID == "" {
		t.Error("missing batch id")
	}
}

func TestIngestGamesSharedBatchID(t *testing.T) {
	var ids []string
	h := newTestHandler()
	h.pool = &MockIngestQueue{
		EnqueueFunc: func(job worker.Job) bool {
			ids = append(ids, job.BatchID)
			return true
		},
	}

	body := `{
		"updates": [
			{"entity_type": "player", "name": "A", "date_key": "2024-11-05", "game": {"Points": 10}},
			{"entity_type": "team", "name": "B", "date_key": "2024-11-05", "game": {"Points": 110}}
		]
	}`
	req := httptest.NewRequest("POST", "/ingest/games", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.IngestGames(w, req)

	if len(ids) != 2 || ids[0] != ids[1] {
		t.Errorf("batch ids = %v, want two identical", ids)
	}
}
