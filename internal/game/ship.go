package game

// Base stats of an unupgraded ship. Every derived stat is a pure
// function of part levels over these constants.
const (
	baseSpeed      = 100  // miles per second
	baseStorage    = 1000 // dark matter units
	baseDurability = 100
	baseLuck       = 5 // percent

	costGrowth = 1.5 // upgrade price multiplier, floored to int
)

// Damage penalty factors, applied once per category no matter how many
// parts in the category are damaged.
const (
	enginePenalty = 0.8
	hullPenalty   = 0.8
	cabinPenalty  = 0.7
	weaponPenalty = 0.7
)

// Stats are the four derived ship statistics.
type Stats struct {
	Speed      int
	Storage    int
	Durability int
	Luck       int
}

// ShipState holds the ship's parts and their derived stats. Stats are
// recomputed from part levels on every mutation, never patched in place.
type ShipState struct {
	Parts []*ShipPart // fixed order: engines, hulls, cabin, weapon
	stats Stats

	byID map[string]*ShipPart
}

// NewShipState creates a ship with the default starting loadout.
func NewShipState() *ShipState {
	s := &ShipState{Parts: defaultParts()}
	s.byID = make(map[string]*ShipPart, len(s.Parts))
	for _, p := range s.Parts {
		s.byID[p.ID] = p
	}
	s.recompute()
	return s
}

// Part returns the part with the given id, or nil.
func (s *ShipState) Part(id string) *ShipPart { return s.byID[id] }

// Stats returns the current derived stats.
func (s *ShipState) Stats() Stats { return s.stats }

// recompute rebuilds all derived stats from part levels.
func (s *ShipState) recompute() {
	var engineLevels, hullLevels, cabinLevel, weaponLevel int
	for _, p := range s.Parts {
		switch p.Category {
		case CategoryEngine:
			engineLevels += p.Level
		case CategoryHull:
			hullLevels += p.Level
		case CategoryCabin:
			cabinLevel = p.Level
		case CategoryWeapon:
			weaponLevel = p.Level
		}
	}
	s.stats = Stats{
		Speed:      int(baseSpeed * (1 + 0.1*float64(engineLevels))),
		Storage:    int(baseStorage * (1 + 0.15*float64(hullLevels))),
		Durability: int(baseDurability * (1 + 0.2*float64(cabinLevel))),
		Luck:       int(baseLuck * (1 + 0.05*float64(weaponLevel))),
	}
}

// UpgradeResult reports the outcome of an upgrade attempt. Remaining is
// the authoritative new balance; callers must not deduct Cost themselves.
type UpgradeResult struct {
	OK        bool
	Cost      int // price charged on success, current price on insufficient funds
	Remaining int
}

// UpgradePart attempts to level up the part with the given id using the
// supplied dark matter balance. Unknown ids and maxed parts fail with a
// zero cost; insufficient funds fail reporting the current price. On
// success the part's price grows by costGrowth and stats are recomputed.
func (s *ShipState) UpgradePart(id string, darkMatter int) UpgradeResult {
	p := s.byID[id]
	if p == nil || p.AtMaxLevel() {
		return UpgradeResult{OK: false, Cost: 0, Remaining: darkMatter}
	}
	if darkMatter < p.Cost {
		return UpgradeResult{OK: false, Cost: p.Cost, Remaining: darkMatter}
	}
	cost := p.Cost
	p.Level++
	p.Cost = int(float64(p.Cost) * costGrowth)
	s.recompute()
	return UpgradeResult{OK: true, Cost: cost, Remaining: darkMatter - cost}
}

// GrantLevel raises a part's level by one without charging, respecting
// max level. Used when spending a spare-part token from an event reward.
// The upgrade price still advances so paid and free upgrades share one
// cost curve.
func (s *ShipState) GrantLevel(id string) bool {
	p := s.byID[id]
	if p == nil || p.AtMaxLevel() {
		return false
	}
	p.Level++
	p.Cost = int(float64(p.Cost) * costGrowth)
	s.recompute()
	return true
}

// EffectiveStats returns the stats with damage penalties applied. The
// underlying levels and stored stats are untouched; each category's
// penalty applies once even with multiple damaged parts.
func (s *ShipState) EffectiveStats(damaged []string) Stats {
	eff := s.stats
	var engineHit, hullHit, cabinHit, weaponHit bool
	for _, id := range damaged {
		p := s.byID[id]
		if p == nil {
			continue
		}
		switch p.Category {
		case CategoryEngine:
			engineHit = true
		case CategoryHull:
			hullHit = true
		case CategoryCabin:
			cabinHit = true
		case CategoryWeapon:
			weaponHit = true
		}
	}
	if engineHit {
		eff.Speed = int(float64(eff.Speed) * enginePenalty)
	}
	if hullHit {
		eff.Storage = int(float64(eff.Storage) * hullPenalty)
	}
	if cabinHit {
		eff.Durability = int(float64(eff.Durability) * cabinPenalty)
	}
	if weaponHit {
		eff.Luck = int(float64(eff.Luck) * weaponPenalty)
	}
	return eff
}
