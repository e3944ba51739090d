package leaderboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Reporter is the game-side sync client. It posts the ship's totals on
// a cadence decided by the caller; every failure is returned, never
// retried, so a dead server cannot stall the tick loop.
type Reporter struct {
	baseURL    string
	playerID   string
	playerName string
	httpClient *http.Client
}

// NewReporter creates a reporter for the given sync service.
func NewReporter(baseURL, playerID, playerName string) *Reporter {
	return &Reporter{
		baseURL:    baseURL,
		playerID:   playerID,
		playerName: playerName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Report posts the current totals and returns the server's top ten.
func (r *Reporter) Report(distance, darkMatter float64, events []string) ([]Entry, error) {
	payload, err := json.Marshal(Report{
		PlayerID:   r.playerID,
		PlayerName: r.playerName,
		Distance:   distance,
		DarkMatter: darkMatter,
		Events:     events,
	})
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	resp, err := r.httpClient.Post(r.baseURL+"/api/sync", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("post report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sync rejected: %s", resp.Status)
	}
	var out syncResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode sync response: %w", err)
	}
	return out.Leaderboard, nil
}
