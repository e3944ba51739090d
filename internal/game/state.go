package game

import "time"

// Starting session values.
const (
	startingDarkMatter   = 100
	startingRepairPoints = 3
	startingBoostPoints  = 5
)

// GameState owns all gameplay state for one running session. There are
// no package-level globals: every component call receives the state it
// mutates, and there is exactly one writer.
type GameState struct {
	Distance   float64
	DarkMatter float64
	Ship       *ShipState

	DamagedSystems []string // part ids, most recent damage last
	RepairPoints   int
	SpareParts     map[string]int // part id -> unspent tokens

	BoostActive  bool
	BoostPoints  int
	BoostEndTime time.Time

	ActiveEvent   *Event
	EventHistory  []*Event
	LastEventTime time.Time

	LastMilestone Milestone

	Log *MessageLog
}

// NewGameState creates a fresh session.
func NewGameState(now time.Time) *GameState {
	return &GameState{
		DarkMatter:    startingDarkMatter,
		Ship:          NewShipState(),
		RepairPoints:  startingRepairPoints,
		BoostPoints:   startingBoostPoints,
		SpareParts:    make(map[string]int),
		LastEventTime: now,
		Log:           NewMessageLog(50),
	}
}

// EffectiveStats returns the ship stats with damage penalties applied.
func (gs *GameState) EffectiveStats() Stats {
	return gs.Ship.EffectiveStats(gs.DamagedSystems)
}

// addDarkMatter adjusts the dark matter total, clamped to
// [0, effective storage capacity], and returns the delta actually
// applied.
func (gs *GameState) addDarkMatter(delta float64) float64 {
	limit := float64(gs.EffectiveStats().Storage)
	next := gs.DarkMatter + delta
	if next > limit {
		next = limit
	}
	if next < 0 {
		next = 0
	}
	applied := next - gs.DarkMatter
	gs.DarkMatter = next
	return applied
}

// addDistance adjusts the travelled distance, floored at zero. Negative
// deltas come only from explicit event rewind effects.
func (gs *GameState) addDistance(delta float64) float64 {
	next := gs.Distance + delta
	if next < 0 {
		next = 0
	}
	applied := next - gs.Distance
	gs.Distance = next
	return applied
}

// UpgradePart buys a level for the given part out of the session's
// dark matter. The ship's result is the only source of truth for the
// new balance.
func (gs *GameState) UpgradePart(id string) UpgradeResult {
	res := gs.Ship.UpgradePart(id, int(gs.DarkMatter))
	if res.OK {
		// Keep the fractional remainder of passive income.
		gs.DarkMatter -= float64(res.Cost)
	}
	return res
}

// UseSparePart spends one spare-part token for a free level on that
// part. Returns false when no token is held or the part is maxed.
func (gs *GameState) UseSparePart(id string) bool {
	if gs.SpareParts[id] == 0 {
		return false
	}
	if !gs.Ship.GrantLevel(id) {
		return false
	}
	gs.SpareParts[id]--
	if gs.SpareParts[id] == 0 {
		delete(gs.SpareParts, id)
	}
	return true
}

// ActivateBoost consumes the entire boost point pool for one second of
// doubled speed per point. A no-op while a boost is running or the pool
// is empty.
func (gs *GameState) ActivateBoost(now time.Time) bool {
	if gs.BoostActive || gs.BoostPoints == 0 {
		return false
	}
	gs.BoostActive = true
	gs.BoostEndTime = now.Add(time.Duration(gs.BoostPoints) * time.Second)
	gs.BoostPoints = 0
	return true
}

// MarkDamaged flags a part as damaged. No gameplay path triggers this
// automatically yet; it exists for scripted scenarios and testing.
func (gs *GameState) MarkDamaged(id string) bool {
	if gs.Ship.Part(id) == nil {
		return false
	}
	for _, d := range gs.DamagedSystems {
		if d == id {
			return false
		}
	}
	gs.DamagedSystems = append(gs.DamagedSystems, id)
	return true
}

// ConsumeRepair spends one repair point to clear the most recently
// damaged system. Returns the repaired part id.
func (gs *GameState) ConsumeRepair() (string, bool) {
	if gs.RepairPoints == 0 || len(gs.DamagedSystems) == 0 {
		return "", false
	}
	last := gs.DamagedSystems[len(gs.DamagedSystems)-1]
	gs.DamagedSystems = gs.DamagedSystems[:len(gs.DamagedSystems)-1]
	gs.RepairPoints--
	return last, true
}

// Projection is the read-only view handed to the renderer each tick.
// The core never calls into rendering; this is the whole outbound
// surface.
type Projection struct {
	Distance   float64
	DarkMatter float64
	Stats      Stats // damage penalties applied

	BoostActive    bool
	BoostPoints    int
	BoostRemaining time.Duration

	RepairPoints   int
	DamagedSystems []string
	SpareParts     map[string]int

	ActiveEvent   *Event
	LastMilestone Milestone

	NextMilestone         Milestone
	NextMilestoneDistance float64
}

// Projection builds the current render view.
func (gs *GameState) Projection(now time.Time) Projection {
	p := Projection{
		Distance:       gs.Distance,
		DarkMatter:     gs.DarkMatter,
		Stats:          gs.EffectiveStats(),
		BoostActive:    gs.BoostActive,
		BoostPoints:    gs.BoostPoints,
		RepairPoints:   gs.RepairPoints,
		DamagedSystems: append([]string(nil), gs.DamagedSystems...),
		SpareParts:     make(map[string]int, len(gs.SpareParts)),
		ActiveEvent:    gs.ActiveEvent,
		LastMilestone:  gs.LastMilestone,
	}
	for id, n := range gs.SpareParts {
		p.SpareParts[id] = n
	}
	if gs.BoostActive && gs.BoostEndTime.After(now) {
		p.BoostRemaining = gs.BoostEndTime.Sub(now)
	}
	p.NextMilestone, p.NextMilestoneDistance = NextMilestone(gs.Distance)
	return p
}
