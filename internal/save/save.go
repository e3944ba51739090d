// Package save persists game snapshots as a JSON file on disk.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stardrift/stardrift/internal/game"
)

// ErrNoSave reports that no snapshot file exists yet.
var ErrNoSave = errors.New("no saved game")

// Store reads and writes one snapshot file.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the saved snapshot. A missing file returns ErrNoSave; a
// file that cannot be parsed returns an error and the caller decides
// whether to start fresh. Neither is fatal to startup.
func (s *Store) Load() (game.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return game.Snapshot{}, ErrNoSave
		}
		return game.Snapshot{}, fmt.Errorf("read save: %w", err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("parse save: %w", err)
	}
	return snap, nil
}

// Save writes the snapshot atomically: a temp file in the same
// directory, then a rename. A crash mid-write leaves the previous save
// intact.
func (s *Store) Save(snap game.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
