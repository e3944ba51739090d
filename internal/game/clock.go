package game

import (
	"fmt"
	"time"
)

// Progression tuning.
const (
	distancePerSpeed  = 0.1 // distance gained per speed unit per second
	passiveDarkMatter = 0.1 // dark matter per second, independent of speed
	boostMultiplier   = 2

	// DefaultEventInterval is the minimum gap between random events.
	// Event generation runs on an elapsed-time gate, never on a
	// per-frame probability, so it is deterministic under a mocked
	// clock.
	DefaultEventInterval = 15 * time.Second
)

// ProgressionClock advances the idle simulation. One Tick per frame
// drives all time-based mutation; there are no background timers.
type ProgressionClock struct {
	EventInterval time.Duration
	engine        *EventEngine
}

// NewProgressionClock creates a clock that spawns events through the
// given engine at the default cadence.
func NewProgressionClock(engine *EventEngine) *ProgressionClock {
	return &ProgressionClock{EventInterval: DefaultEventInterval, engine: engine}
}

// TickResult reports what a tick changed beyond the passive accrual.
type TickResult struct {
	Milestones []Milestone // newly crossed this tick, ascending
	NewEvent   *Event      // non-nil when the cadence gate fired
}

// Tick advances the simulation by dt seconds ending at now. It expires
// the boost, accrues distance and dark matter from the effective stats,
// fires every newly crossed milestone, and offers a new event when the
// cadence gate allows one.
func (c *ProgressionClock) Tick(gs *GameState, now time.Time, dt float64) TickResult {
	var res TickResult

	if gs.BoostActive && !now.Before(gs.BoostEndTime) {
		gs.BoostActive = false
		gs.Log.Add("Boost expired. Engines back to cruise.", MsgInfo)
	}

	stats := gs.EffectiveStats()
	speed := float64(stats.Speed)
	if gs.BoostActive {
		speed *= boostMultiplier
	}
	gs.addDistance(speed * dt * distancePerSpeed)
	gs.addDarkMatter(passiveDarkMatter * dt)

	res.Milestones = crossedMilestones(gs.LastMilestone, gs.Distance)
	for _, m := range res.Milestones {
		gs.LastMilestone = m
		gs.Log.Add(fmt.Sprintf("Milestone reached: %s", MilestoneName(m)), MsgDiscovery)
	}

	// Events only spawn in calm stretches: no pending event, no boost.
	if gs.ActiveEvent == nil && !gs.BoostActive && now.Sub(gs.LastEventTime) >= c.EventInterval {
		if ev, ok := c.engine.Generate(gs, now); ok {
			res.NewEvent = ev
			gs.Log.Add(fmt.Sprintf("[%s] %s", TierLabel(ev.Tier), ev.Title), MsgWarning)
		}
	}

	return res
}
