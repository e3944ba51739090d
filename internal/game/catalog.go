package game

import (
	_ "embed"
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"
)

// Tier is the rarity classification of a random event.
type Tier uint8

const (
	TierEveryday Tier = iota
	TierRare
	TierCosmic
	TierEasterEgg
	tierCount // sentinel
)

// Cumulative tier weights out of 100: 70% everyday, 20% rare, 8% cosmic,
// 2% easter egg.
const (
	everydayCeiling = 70
	rareCeiling     = 90
	cosmicCeiling   = 98
)

// TierLabel returns a display label for a tier.
func TierLabel(t Tier) string {
	switch t {
	case TierEveryday:
		return "Everyday"
	case TierRare:
		return "Rare"
	case TierCosmic:
		return "Cosmic"
	case TierEasterEgg:
		return "Easter Egg"
	default:
		return "Unknown"
	}
}

// EventOption is one of the two choices offered by an event.
type EventOption struct {
	Label       string `yaml:"label"`
	Effect      string `yaml:"effect"`
	SuccessRate int    `yaml:"success_rate"` // 0-100 chance the outcome is granted
	DarkMatter  int    `yaml:"dark_matter"`
	Distance    int    `yaml:"distance"` // signed, may rewind
	PartReward  string `yaml:"part_reward,omitempty"`
}

// EventTemplate is immutable event content. Every template carries
// exactly two options: a positive and a negative choice.
type EventTemplate struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Options     []EventOption `yaml:"options"`
}

// catalogDoc is the YAML shape of the event content file.
type catalogDoc struct {
	Everyday  []EventTemplate `yaml:"everyday"`
	Rare      []EventTemplate `yaml:"rare"`
	Cosmic    []EventTemplate `yaml:"cosmic"`
	EasterEgg []EventTemplate `yaml:"easter_egg"`
}

//go:embed events.yaml
var defaultEvents []byte

// Catalog holds the static event template pools, one per tier. Loaded
// once at startup; sampling never mutates it.
type Catalog struct {
	pools [tierCount][]EventTemplate
}

// LoadCatalog parses an event content document.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse event catalog: %w", err)
	}
	c := &Catalog{}
	c.pools[TierEveryday] = doc.Everyday
	c.pools[TierRare] = doc.Rare
	c.pools[TierCosmic] = doc.Cosmic
	c.pools[TierEasterEgg] = doc.EasterEgg
	for t := TierEveryday; t < tierCount; t++ {
		if len(c.pools[t]) == 0 {
			return nil, fmt.Errorf("event catalog: empty %s pool", TierLabel(t))
		}
		for _, tpl := range c.pools[t] {
			if len(tpl.Options) != 2 {
				return nil, fmt.Errorf("event catalog: %q has %d options, want 2", tpl.Title, len(tpl.Options))
			}
			for _, opt := range tpl.Options {
				if opt.SuccessRate < 0 || opt.SuccessRate > 100 {
					return nil, fmt.Errorf("event catalog: %q option %q success rate %d out of range", tpl.Title, opt.Label, opt.SuccessRate)
				}
			}
		}
	}
	return c, nil
}

// DefaultCatalog loads the embedded event content.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultEvents)
	if err != nil {
		// The embedded content ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return c
}

// tierForRoll maps a roll in [0,100) onto a tier via the cumulative
// weights. Split out from SampleTier so the boundaries are testable.
func tierForRoll(roll int) Tier {
	switch {
	case roll < everydayCeiling:
		return TierEveryday
	case roll < rareCeiling:
		return TierRare
	case roll < cosmicCeiling:
		return TierCosmic
	default:
		return TierEasterEgg
	}
}

// SampleTier draws a tier using the fixed rarity weights.
func (c *Catalog) SampleTier(rng *rand.Rand) Tier {
	return tierForRoll(rng.IntN(100))
}

// TemplateFor returns a uniformly random template from the tier's pool.
func (c *Catalog) TemplateFor(rng *rand.Rand, t Tier) EventTemplate {
	pool := c.pools[t]
	return pool[rng.IntN(len(pool))]
}

// PoolSize returns the number of templates in a tier's pool.
func (c *Catalog) PoolSize(t Tier) int { return len(c.pools[t]) }
