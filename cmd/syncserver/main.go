// Command syncserver runs the leaderboard sync service: ships POST
// their totals, displays read the ranked stats or subscribe over a
// websocket for pushes.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stardrift/stardrift/internal/leaderboard"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := leaderboard.NewStore(cfg.StatsPath)
	if err != nil {
		log.Fatalf("stats store: %v", err)
	}

	hub := leaderboard.NewHub()
	go hub.Run()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: leaderboard.Router(store, hub),
	}

	go func() {
		log.Printf("sync server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
