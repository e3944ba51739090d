package leaderboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "game_stats.json"))
	require.NoError(t, err)
	return s
}

func TestNewStoreMissingFile(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.Snapshot().Players)
}

func TestNewStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_stats.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err := NewStore(path)
	assert.Error(t, err)
}

func TestSyncValidation(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Sync(Report{PlayerName: "Nameless"})
	assert.Error(t, err)
	_, err = s.Sync(Report{PlayerID: "p1"})
	assert.Error(t, err)
}

func TestSyncUpsertAndRank(t *testing.T) {
	s := newTestStore(t)

	top, err := s.Sync(Report{PlayerID: "p1", PlayerName: "Ada", Distance: 100})
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 1, top[0].Rank)

	top, err = s.Sync(Report{PlayerID: "p2", PlayerName: "Bix", Distance: 500})
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p2", top[0].ID)
	assert.Equal(t, "p1", top[1].ID)
	assert.Equal(t, 2, top[1].Rank)

	// Same player again does not duplicate.
	top, err = s.Sync(Report{PlayerID: "p1", PlayerName: "Ada", Distance: 900})
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p1", top[0].ID)
	assert.Equal(t, 900.0, top[0].Distance)
}

func TestSyncDistanceOnlyMovesForward(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Sync(Report{PlayerID: "p1", PlayerName: "Ada", Distance: 1000, DarkMatter: 50})
	require.NoError(t, err)

	// A reset client reports less; the record stands.
	top, err := s.Sync(Report{PlayerID: "p1", PlayerName: "Ada", Distance: 10, DarkMatter: 99})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, top[0].Distance)

	snap := s.Snapshot()
	require.Len(t, snap.Players, 1)
	assert.Equal(t, 99.0, snap.Players[0].DarkMatter, "balance tracks the latest report")
}

func TestSyncPersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_stats.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.Sync(Report{PlayerID: "p1", PlayerName: "Ada", Distance: 777, Events: []string{"Wormhole Detected"}})
	require.NoError(t, err)

	reopened, err := NewStore(path)
	require.NoError(t, err)
	snap := reopened.Snapshot()
	require.Len(t, snap.Players, 1)
	assert.Equal(t, 777.0, snap.Players[0].Distance)
	assert.Equal(t, []string{"Wormhole Detected"}, snap.Players[0].SignificantEvents)
	require.Len(t, snap.Leaderboard, 1)
	assert.Equal(t, "Ada", snap.Leaderboard[0].Name)
}

func TestTop(t *testing.T) {
	s := newTestStore(t)
	names := []string{"a", "b", "c", "d"}
	for i, n := range names {
		_, err := s.Sync(Report{PlayerID: n, PlayerName: n, Distance: float64(i * 10)})
		require.NoError(t, err)
	}

	top := s.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "d", top[0].ID)
	assert.Equal(t, "c", top[1].ID)

	assert.Len(t, s.Top(50), 4)
}
