package leaderboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := newTestStore(t)
	hub := NewHub()
	go hub.Run()
	srv := httptest.NewServer(Router(store, hub))
	t.Cleanup(srv.Close)
	return srv
}

func TestSyncEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(Report{PlayerID: "p1", PlayerName: "Ada", Distance: 1234})
	resp, err := http.Post(srv.URL+"/api/sync", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out syncResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	require.Len(t, out.Leaderboard, 1)
	assert.Equal(t, "Ada", out.Leaderboard[0].Name)
	assert.Equal(t, 1234.0, out.Leaderboard[0].Distance)
}

func TestSyncEndpointRejectsBadPayloads(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/sync", "application/json", bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := json.Marshal(Report{Distance: 50}) // no id or name
	resp, err = http.Post(srv.URL+"/api/sync", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Error)
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(Report{PlayerID: "p1", PlayerName: "Ada", Distance: 10})
	resp, err := http.Post(srv.URL+"/api/sync", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var stats Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.Len(t, stats.Players, 1)
	assert.Equal(t, "p1", stats.Players[0].ID)
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestReporterRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	rep := NewReporter(srv.URL, "p9", "Nova")
	top, err := rep.Report(5555, 120, []string{"Space Kaiju"})
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Nova", top[0].Name)
	assert.Equal(t, 5555.0, top[0].Distance)
}

func TestReporterServerDown(t *testing.T) {
	rep := NewReporter("http://127.0.0.1:1", "p1", "Ada")
	_, err := rep.Report(1, 1, nil)
	assert.Error(t, err)
}
