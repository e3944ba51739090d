package game

// Milestone is a one-time distance threshold, named after the solar
// system body it corresponds to.
type Milestone uint8

const (
	MilestoneNone Milestone = iota
	MilestoneMoon
	MilestoneMars
	MilestoneJupiter
	MilestoneSaturn
	MilestoneUranus
	MilestoneNeptune
	MilestonePluto
	MilestoneInterstellar
)

// Earth-relative distances in miles. Interstellar is one light year.
const (
	distMoon         = 238_900.0
	distMars         = 140_000_000.0
	distJupiter      = 365_000_000.0
	distSaturn       = 746_000_000.0
	distUranus       = 1_600_000_000.0
	distNeptune      = 2_700_000_000.0
	distPluto        = 3_100_000_000.0
	distInterstellar = 9_461_000_000_000.0
)

// milestoneTable lists milestones in ascending distance order.
var milestoneTable = []struct {
	M        Milestone
	Distance float64
	Name     string
}{
	{MilestoneMoon, distMoon, "MOON"},
	{MilestoneMars, distMars, "MARS"},
	{MilestoneJupiter, distJupiter, "JUPITER"},
	{MilestoneSaturn, distSaturn, "SATURN"},
	{MilestoneUranus, distUranus, "URANUS"},
	{MilestoneNeptune, distNeptune, "NEPTUNE"},
	{MilestonePluto, distPluto, "PLUTO"},
	{MilestoneInterstellar, distInterstellar, "INTERSTELLAR"},
}

// MilestoneName returns the persisted/display name of a milestone.
func MilestoneName(m Milestone) string {
	for _, e := range milestoneTable {
		if e.M == m {
			return e.Name
		}
	}
	return ""
}

// milestoneByName resolves a persisted milestone name, returning
// MilestoneNone for unknown or empty names.
func milestoneByName(name string) Milestone {
	for _, e := range milestoneTable {
		if e.Name == name {
			return e.M
		}
	}
	return MilestoneNone
}

// crossedMilestones returns every milestone beyond last that distance
// has reached, in ascending order. A large tick that jumps several
// thresholds fires all of them at once.
func crossedMilestones(last Milestone, distance float64) []Milestone {
	var crossed []Milestone
	for _, e := range milestoneTable {
		if e.M > last && distance >= e.Distance {
			crossed = append(crossed, e.M)
		}
	}
	return crossed
}

// NextMilestone returns the first milestone not yet reached at the
// given distance, and its threshold. Past interstellar space it keeps
// returning the interstellar entry.
func NextMilestone(distance float64) (Milestone, float64) {
	for _, e := range milestoneTable {
		if distance < e.Distance {
			return e.M, e.Distance
		}
	}
	last := milestoneTable[len(milestoneTable)-1]
	return last.M, last.Distance
}
