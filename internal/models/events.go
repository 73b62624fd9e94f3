package models

// GameUpdate is one ingested game record destined for an entity document.
// The ingest endpoint accepts a batch of these and hands them to the
// worker pool; DateKey follows the store's key format ("YYYY-MM-DD" or
// "YYYY-MM-DD_HH-MM-SS").
type GameUpdate struct {
	EntityType string  `json:"entity_type" validate:"required,oneof=player team"`
	Name       string  `json:"name" validate:"required"`
	DateKey    string  `json:"date_key" validate:"required"`
	Future     bool    `json:"future"`
	Game       RawGame `json:"game"`
}

// IngestRequest is the body of POST /api/v1/ingest/games.
type IngestRequest struct {
	Updates []GameUpdate `json:"updates" validate:"required,min=1,dive"`
}

// IngestResponse acknowledges an accepted ingest batch.
type IngestResponse struct {
	BatchID  string `json:"batch_id"`
	Accepted int    `json:"accepted"`
	Dropped  int    `json:"dropped"`
}
