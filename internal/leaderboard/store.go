// Package leaderboard implements the optional sync service: ships
// report their totals, the service keeps a ranked stats file and pushes
// updates to connected displays. The game never depends on it; a failed
// sync costs nothing but a log line.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const leaderboardSize = 100

// Report is one ship's sync payload.
type Report struct {
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name"`
	Distance   float64  `json:"distance"`
	DarkMatter float64  `json:"dark_matter"`
	Events     []string `json:"events,omitempty"` // titles of notable resolved events
}

// PlayerStats is the stored record for one player.
type PlayerStats struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Distance          float64   `json:"distance"`
	DarkMatter        float64   `json:"dark_matter"`
	LastSync          time.Time `json:"last_sync"`
	SignificantEvents []string  `json:"significant_events,omitempty"`
}

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank     int     `json:"rank"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// Stats is the whole persisted stats document.
type Stats struct {
	Players     []PlayerStats `json:"players"`
	Leaderboard []Entry       `json:"leaderboard"`
	LastUpdated time.Time     `json:"last_updated"`
}

// Store owns the stats file. Handlers run concurrently, so all access
// goes through the mutex; the file itself has a single writer.
type Store struct {
	mu    sync.Mutex
	path  string
	stats Stats
}

// NewStore loads the stats file, starting empty when none exists. A
// corrupt file is an error; the operator decides whether to delete it.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read stats: %w", err)
	}
	if err := json.Unmarshal(data, &s.stats); err != nil {
		return nil, fmt.Errorf("parse stats: %w", err)
	}
	return s, nil
}

// Sync upserts a player's report, reranks the leaderboard and persists
// the document. Returns the top ten for the response payload.
func (s *Store) Sync(r Report) ([]Entry, error) {
	if r.PlayerID == "" || r.PlayerName == "" {
		return nil, errors.New("player id and name are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	idx := -1
	for i := range s.stats.Players {
		if s.stats.Players[i].ID == r.PlayerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.stats.Players = append(s.stats.Players, PlayerStats{ID: r.PlayerID})
		idx = len(s.stats.Players) - 1
	}
	p := &s.stats.Players[idx]
	p.Name = r.PlayerName
	p.LastSync = now
	// Totals only move forward; a stale or reset client never erases a
	// recorded run.
	if r.Distance > p.Distance {
		p.Distance = r.Distance
	}
	p.DarkMatter = r.DarkMatter
	if len(r.Events) > 0 {
		p.SignificantEvents = r.Events
	}

	s.rerank()
	s.stats.LastUpdated = now
	if err := s.persist(); err != nil {
		return nil, err
	}
	return s.topN(10), nil
}

// Snapshot returns a copy of the current stats document.
func (s *Store) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Stats{LastUpdated: s.stats.LastUpdated}
	out.Players = append([]PlayerStats(nil), s.stats.Players...)
	out.Leaderboard = append([]Entry(nil), s.stats.Leaderboard...)
	return out
}

// Top returns a copy of the top n leaderboard rows.
func (s *Store) Top(n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topN(n)
}

func (s *Store) topN(n int) []Entry {
	if n > len(s.stats.Leaderboard) {
		n = len(s.stats.Leaderboard)
	}
	return append([]Entry(nil), s.stats.Leaderboard[:n]...)
}

// rerank rebuilds the leaderboard from player distances. Caller holds
// the lock.
func (s *Store) rerank() {
	players := append([]PlayerStats(nil), s.stats.Players...)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Distance > players[j].Distance
	})
	if len(players) > leaderboardSize {
		players = players[:leaderboardSize]
	}
	board := make([]Entry, len(players))
	for i, p := range players {
		board[i] = Entry{Rank: i + 1, ID: p.ID, Name: p.Name, Distance: p.Distance}
	}
	s.stats.Leaderboard = board
}

// persist writes the stats file atomically. Caller holds the lock.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}
	data, err := json.MarshalIndent(s.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit stats: %w", err)
	}
	return nil
}
