package game

// Snapshot is the persisted subset of GameState. An in-flight event and
// process-relative timestamps are deliberately absent: an unresolved
// event is abandoned on restart, and boost time does not survive one.
// The point pools and the balance are pointers so a field missing from
// an old or partial save keeps its default, while a value legitimately
// spent to zero round-trips as zero.
type Snapshot struct {
	Distance       float64        `json:"distance"`
	DarkMatter     *float64       `json:"dark_matter,omitempty"`
	Parts          []PartSnapshot `json:"parts"`
	DamagedSystems []string       `json:"damaged_systems"`
	RepairPoints   *int           `json:"repair_points,omitempty"`
	BoostPoints    *int           `json:"boost_points,omitempty"`
	SpareParts     map[string]int `json:"spare_parts,omitempty"`
	LastMilestone  string         `json:"last_milestone,omitempty"`
}

// PartSnapshot is the persisted state of one ship part.
type PartSnapshot struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Cost  int    `json:"cost"`
}

// Snapshot captures the persistable state.
func (gs *GameState) Snapshot() Snapshot {
	darkMatter := gs.DarkMatter
	repair := gs.RepairPoints
	boost := gs.BoostPoints
	snap := Snapshot{
		Distance:       gs.Distance,
		DarkMatter:     &darkMatter,
		DamagedSystems: append([]string{}, gs.DamagedSystems...),
		RepairPoints:   &repair,
		BoostPoints:    &boost,
		LastMilestone:  MilestoneName(gs.LastMilestone),
	}
	for _, p := range gs.Ship.Parts {
		snap.Parts = append(snap.Parts, PartSnapshot{ID: p.ID, Level: p.Level, Cost: p.Cost})
	}
	if len(gs.SpareParts) > 0 {
		snap.SpareParts = make(map[string]int, len(gs.SpareParts))
		for id, n := range gs.SpareParts {
			snap.SpareParts[id] = n
		}
	}
	return snap
}

// Restore merges a snapshot into the current state. Unknown part ids
// and milestone names are ignored and missing fields keep their
// defaults, so a partial or damaged snapshot degrades instead of
// crashing the session. Values are clamped back into their invariant
// ranges before use.
func (gs *GameState) Restore(snap Snapshot) {
	if snap.Distance > 0 {
		gs.Distance = snap.Distance
	}
	for _, ps := range snap.Parts {
		p := gs.Ship.Part(ps.ID)
		if p == nil {
			continue
		}
		if ps.Level >= 1 && ps.Level <= p.MaxLevel {
			p.Level = ps.Level
		}
		if ps.Cost >= p.Cost {
			p.Cost = ps.Cost
		}
	}
	gs.Ship.recompute()

	for _, id := range snap.DamagedSystems {
		gs.MarkDamaged(id)
	}
	if snap.RepairPoints != nil && *snap.RepairPoints >= 0 {
		gs.RepairPoints = *snap.RepairPoints
	}
	if snap.BoostPoints != nil && *snap.BoostPoints >= 0 {
		gs.BoostPoints = *snap.BoostPoints
	}
	for id, n := range snap.SpareParts {
		if gs.Ship.Part(id) != nil && n > 0 {
			gs.SpareParts[id] = n
		}
	}
	gs.LastMilestone = milestoneByName(snap.LastMilestone)

	// Dark matter last: the clamp depends on restored hull levels and
	// damage. A save without the field keeps the current balance.
	if snap.DarkMatter != nil {
		gs.DarkMatter = 0
		gs.addDarkMatter(*snap.DarkMatter)
	}
}
