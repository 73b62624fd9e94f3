package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const defaultURL = "http://localhost:8080/api/v1/ingest/games"

// Update mirrors models.GameUpdate; the seeder stays standalone so it
// can run against any environment without the service's config.
type Update struct {
	EntityType string `json:"entity_type"`
	Name       string `json:"name"`
	DateKey    string `json:"date_key"`
	Future     bool   `json:"future"`
	Game       Game   `json:"game"`
}

type Game struct {
	Matchup        string  `json:"Matchup"`
	Points         float64 `json:"Points"`
	Rebounds       float64 `json:"scoredRebounds"`
	Assists        float64 `json:"Assists"`
	FieldGoalsMade float64 `json:"FG_scored"`
	FieldGoalPct   float64 `json:"FG_pctg"`
	ThreeMade      float64 `json:"3_pts_scored"`
	ThreePct       float64 `json:"3_pts_pctg"`
	FreeThrowsMade float64 `json:"FT_made"`
	FreeThrowPct   float64 `json:"FT_pctg"`
	Steals         float64 `json:"Steals"`
	Blocks         float64 `json:"Blocks"`
	Turnovers      float64 `json:"Turnovers"`
	Team           string  `json:"Team"`
	WinLoss        string  `json:"WinLoss"`
	SeasonID       string  `json:"SEASON_ID,omitempty"`
}

func main() {
	url := defaultURL
	if v := os.Getenv("INGEST_URL"); v != "" {
		url = v
	}

	today := time.Now().Format("2006-01-02")
	payload := map[string]any{
		"updates": []Update{
			{
				EntityType: "player",
				Name:       "Test Player",
				DateKey:    today,
				Game: Game{
					Matchup:        "BOS vs. LAL",
					Points:         31,
					Rebounds:       7,
					Assists:        5,
					FieldGoalsMade: 11,
					FieldGoalPct:   0.524,
					ThreeMade:      4,
					ThreePct:       0.444,
					FreeThrowsMade: 5,
					FreeThrowPct:   0.833,
					Steals:         2,
					Blocks:         1,
					Turnovers:      3,
					Team:           "BOS",
					WinLoss:        "W",
					SeasonID:       "22025",
				},
			},
			{
				EntityType: "team",
				Name:       "Boston Celtics",
				DateKey:    today,
				Game: Game{
					Matchup:  "BOS vs. LAL",
					Points:   118,
					Team:     "BOS",
					WinLoss:  "W",
					SeasonID: "22025",
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Response: %s\n", string(respBody))

	if resp.StatusCode != http.StatusAccepted {
		os.Exit(1)
	}
}
