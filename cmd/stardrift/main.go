// Command stardrift runs the idle spaceship game against a plain
// terminal. It owns presentation and input plumbing only; every rule
// lives in internal/game.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/stardrift/stardrift/internal/game"
	"github.com/stardrift/stardrift/internal/leaderboard"
	"github.com/stardrift/stardrift/internal/save"
)

// command is one parsed line of player input.
type command struct {
	action    game.ButtonAction
	hasAction bool
	upgrade   string // part id to buy a level for
	spare     string // part id to spend a spare token on
	status    bool
	quit      bool
}

func parseCommand(line string) (command, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, false
	}
	switch fields[0] {
	case "b", "boost":
		return command{action: game.ActionBoost, hasAction: true}, true
	case "r", "repair":
		return command{action: game.ActionRepair, hasAction: true}, true
	case "y", "yes":
		return command{action: game.ActionEventAccept, hasAction: true}, true
	case "n", "no":
		return command{action: game.ActionEventDecline, hasAction: true}, true
	case "u", "upgrade":
		if len(fields) == 2 {
			return command{upgrade: fields[1]}, true
		}
	case "p", "part":
		if len(fields) == 2 {
			return command{spare: fields[1]}, true
		}
	case "s", "status":
		return command{status: true}, true
	case "q", "quit":
		return command{quit: true}, true
	}
	return command{}, false
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	catalog := game.DefaultCatalog()
	if cfg.EventsPath != "" {
		data, err := os.ReadFile(cfg.EventsPath)
		if err != nil {
			log.Fatalf("load events: %v", err)
		}
		if catalog, err = game.LoadCatalog(data); err != nil {
			log.Fatalf("load events: %v", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>16|1))

	now := time.Now()
	gs := game.NewGameState(now)
	store := save.NewStore(cfg.SavePath)
	switch snap, err := store.Load(); {
	case err == nil:
		gs.Restore(snap)
		log.Printf("resumed: %s travelled", game.FormatDistance(gs.Distance))
	case errors.Is(err, save.ErrNoSave):
		log.Printf("new voyage started")
	default:
		// A broken save is a warning, not a launch failure.
		log.Printf("save unreadable, starting fresh: %v", err)
	}

	engine := game.NewEventEngine(catalog, rng)
	clock := game.NewProgressionClock(engine)
	clock.EventInterval = time.Duration(cfg.EventSeconds) * time.Second

	var reporter *leaderboard.Reporter
	if cfg.SyncURL != "" {
		reporter = leaderboard.NewReporter(cfg.SyncURL, cfg.PlayerID, cfg.PlayerName)
	}

	// Input runs on its own goroutine but every command is applied
	// synchronously inside the tick loop below.
	commands := make(chan command)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if cmd, ok := parseCommand(scanner.Text()); ok {
				commands <- cmd
			}
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.TickMillis) * time.Millisecond)
	defer ticker.Stop()

	lastTick := now
	lastSave := now
	lastSync := now
	lastStatus := now
	logged := 0

	printStatus(gs, now)
	for {
		select {
		case <-sigs:
			if err := store.Save(gs.Snapshot()); err != nil {
				log.Printf("save: %v", err)
			}
			fmt.Println("\nSafe travels.")
			return

		case cmd := <-commands:
			now = time.Now()
			switch {
			case cmd.quit:
				if err := store.Save(gs.Snapshot()); err != nil {
					log.Printf("save: %v", err)
				}
				fmt.Println("Safe travels.")
				return
			case cmd.status:
				printStatus(gs, now)
			case cmd.upgrade != "":
				res := gs.UpgradePart(cmd.upgrade)
				if res.OK {
					fmt.Printf("Upgraded %s for %d. Balance %d.\n", cmd.upgrade, res.Cost, res.Remaining)
				} else if res.Cost > 0 {
					fmt.Printf("Need %d dark matter for %s.\n", res.Cost, cmd.upgrade)
				} else {
					fmt.Printf("Can't upgrade %s.\n", cmd.upgrade)
				}
			case cmd.spare != "":
				if gs.UseSparePart(cmd.spare) {
					fmt.Printf("Fitted spare %s.\n", cmd.spare)
				} else {
					fmt.Printf("No usable spare for %s.\n", cmd.spare)
				}
			case cmd.hasAction:
				game.HandleAction(gs, engine, cmd.action, now)
			}
			logged = printNewMessages(gs, logged)

		case <-ticker.C:
			now = time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			res := clock.Tick(gs, now, dt)
			if res.NewEvent != nil {
				printEvent(res.NewEvent)
			}
			logged = printNewMessages(gs, logged)

			if now.Sub(lastStatus) >= time.Duration(cfg.StatusSecs)*time.Second {
				printStatus(gs, now)
				lastStatus = now
			}
			if now.Sub(lastSave) >= time.Duration(cfg.AutosaveSecs)*time.Second {
				if err := store.Save(gs.Snapshot()); err != nil {
					log.Printf("save: %v", err)
				}
				lastSave = now
			}
			if reporter != nil && now.Sub(lastSync) >= time.Duration(cfg.SyncSecs)*time.Second {
				lastSync = now
				// Copy everything before handing off; the goroutine
				// must not touch live state.
				titles := recentEventTitles(gs)
				go func(distance, darkMatter float64, events []string) {
					if _, err := reporter.Report(distance, darkMatter, events); err != nil {
						log.Printf("sync: %v", err)
					}
				}(gs.Distance, gs.DarkMatter, titles)
			}
		}
	}
}

// printNewMessages flushes log entries added since the last flush and
// returns the new cursor. The cursor counts every message ever added,
// so a full log keeps flushing instead of going quiet once eviction
// starts.
func printNewMessages(gs *game.GameState, seen int) int {
	for _, m := range gs.Log.Since(seen) {
		fmt.Printf("  > %s\n", m.Text)
	}
	return gs.Log.TotalAdded()
}

func printStatus(gs *game.GameState, now time.Time) {
	p := gs.Projection(now)
	boost := fmt.Sprintf("%d pts", p.BoostPoints)
	if p.BoostActive {
		boost = fmt.Sprintf("ACTIVE %s", game.FormatDuration(p.BoostRemaining.Seconds()))
	}
	fmt.Printf("[%s | DM %.0f/%d | spd %d | boost %s | repair %d]\n",
		game.FormatDistance(p.Distance), p.DarkMatter, p.Stats.Storage,
		p.Stats.Speed, boost, p.RepairPoints)
	next := game.MilestoneName(p.NextMilestone)
	fmt.Printf("  next: %s in %s\n", next,
		game.TimeToMilestone(p.Distance, p.NextMilestoneDistance, p.Stats.Speed))
	if len(p.DamagedSystems) > 0 {
		fmt.Printf("  damaged: %s\n", strings.Join(p.DamagedSystems, ", "))
	}
}

func printEvent(ev *game.Event) {
	fmt.Printf("\n=== %s [%s] ===\n%s\n", ev.Title, game.TierLabel(ev.Tier), ev.Description)
	fmt.Printf("  (y) %s — %s\n", ev.Options[0].Label, ev.Options[0].Effect)
	fmt.Printf("  (n) %s — %s\n", ev.Options[1].Label, ev.Options[1].Effect)
}

// recentEventTitles collects resolved event titles for the sync report.
func recentEventTitles(gs *game.GameState) []string {
	var titles []string
	history := gs.EventHistory
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	for _, ev := range history {
		titles = append(titles, ev.Title)
	}
	return titles
}
