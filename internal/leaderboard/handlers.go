package leaderboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// syncResponse is the POST /sync reply: acknowledgement plus the top
// ten for immediate display.
type syncResponse struct {
	Success     bool    `json:"success"`
	Leaderboard []Entry `json:"leaderboard"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Router builds the service's HTTP surface: the stats document, the
// sync endpoint and the websocket subscription. CORS is open because
// the reference client is a browser.
func Router(store *Store, hub *Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/api/stats", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, store.Snapshot())
	})

	r.Post("/api/sync", func(w http.ResponseWriter, req *http.Request) {
		var report Report
		if err := json.NewDecoder(req.Body).Decode(&report); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid sync payload"})
			return
		}
		top, err := store.Sync(report)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		hub.BroadcastPulse(top)
		writeJSON(w, http.StatusOK, syncResponse{Success: true, Leaderboard: top})
	})

	r.Get("/ws", hub.ServeWs)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("leaderboard: write response: %v", err)
	}
}
