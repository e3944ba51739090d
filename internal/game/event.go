package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// EventOutcome records which way a resolved event went.
type EventOutcome uint8

const (
	OutcomeNone EventOutcome = iota
	OutcomeAccepted
	OutcomeDeclined
)

// OutcomeLabel returns a display label for an event outcome.
func OutcomeLabel(o EventOutcome) string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDeclined:
		return "declined"
	default:
		return "unresolved"
	}
}

// Event is a live instance of an event template. At most one unresolved
// Event exists at a time; once resolved it moves to the history and is
// never mutated again.
type Event struct {
	ID          string
	Tier        Tier
	Title       string
	Description string
	Options     []EventOption
	CreatedAt   time.Time
	Resolved    bool
	Outcome     EventOutcome
}

// Resolution reports what resolving an event actually did. Applied is
// false for no-op calls (nothing pending, or an out-of-range choice).
// On a failed success roll Applied is true but all deltas are zero.
type Resolution struct {
	Applied         bool
	Succeeded       bool
	Outcome         EventOutcome
	DarkMatterDelta float64
	DistanceDelta   float64
	PartGranted     string
	BoostGranted    int
}

const eventHistoryCap = 100

// EventEngine samples events from the catalog and resolves player
// choices against the game state. It owns the only RNG in the core, so
// seeding it makes every draw and success roll reproducible.
type EventEngine struct {
	catalog *Catalog
	rng     *rand.Rand
	seq     int
}

// NewEventEngine creates an engine over the given catalog and RNG.
func NewEventEngine(catalog *Catalog, rng *rand.Rand) *EventEngine {
	return &EventEngine{catalog: catalog, rng: rng}
}

// Generate samples a new event and stores it as the state's active
// event. If one is already pending it is returned unchanged and the
// second return is false; two generates never both succeed without a
// resolve in between.
func (e *EventEngine) Generate(gs *GameState, now time.Time) (*Event, bool) {
	if gs.ActiveEvent != nil {
		return gs.ActiveEvent, false
	}
	tier := e.catalog.SampleTier(e.rng)
	tpl := e.catalog.TemplateFor(e.rng, tier)
	e.seq++
	ev := &Event{
		ID:          fmt.Sprintf("event-%d-%d", now.Unix(), e.seq),
		Tier:        tier,
		Title:       tpl.Title,
		Description: tpl.Description,
		Options:     append([]EventOption(nil), tpl.Options...),
		CreatedAt:   now,
	}
	gs.ActiveEvent = ev
	gs.LastEventTime = now
	return ev, true
}

// Resolve applies the player's choice (0 = accept, 1 = decline) to the
// pending event. The option's success rate gates the entire outcome:
// one roll decides whether the dark matter reward, distance effect,
// part reward and the +1 boost point are granted. Either way the event
// is resolved, archived and the active slot cleared.
func (e *EventEngine) Resolve(gs *GameState, choice int) Resolution {
	ev := gs.ActiveEvent
	if ev == nil {
		return Resolution{}
	}
	if choice < 0 || choice >= len(ev.Options) {
		return Resolution{}
	}
	opt := ev.Options[choice]

	res := Resolution{Applied: true, Outcome: OutcomeDeclined}
	if choice == 0 {
		res.Outcome = OutcomeAccepted
	}

	if e.rng.IntN(100) < opt.SuccessRate {
		res.Succeeded = true
		res.DarkMatterDelta = gs.addDarkMatter(float64(opt.DarkMatter))
		res.DistanceDelta = gs.addDistance(float64(opt.Distance))
		if opt.PartReward != "" {
			gs.SpareParts[opt.PartReward]++
			res.PartGranted = opt.PartReward
		}
		gs.BoostPoints++
		res.BoostGranted = 1
	}

	ev.Resolved = true
	ev.Outcome = res.Outcome
	gs.EventHistory = append(gs.EventHistory, ev)
	if len(gs.EventHistory) > eventHistoryCap {
		gs.EventHistory = gs.EventHistory[len(gs.EventHistory)-eventHistoryCap:]
	}
	gs.ActiveEvent = nil
	return res
}
