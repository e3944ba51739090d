package game

// PartCategory identifies the kind of ship part.
type PartCategory uint8

const (
	CategoryEngine PartCategory = iota
	CategoryHull
	CategoryCabin
	CategoryWeapon
)

// ShipPart is a single upgradeable component of the ship.
type ShipPart struct {
	ID          string
	Name        string
	Category    PartCategory
	Level       int
	MaxLevel    int
	Cost        int // dark matter price of the next upgrade
	Description string
	Effect      string
}

// AtMaxLevel reports whether the part can no longer be upgraded.
func (p *ShipPart) AtMaxLevel() bool { return p.Level >= p.MaxLevel }

// CategoryLabel returns a display label for a part category.
func CategoryLabel(c PartCategory) string {
	switch c {
	case CategoryEngine:
		return "Engine"
	case CategoryHull:
		return "Hull"
	case CategoryCabin:
		return "Cabin"
	case CategoryWeapon:
		return "Weapon"
	default:
		return "Unknown"
	}
}

// defaultParts builds the starting loadout: two engines, two hull
// sections, a cabin and a defense system, all at level 1.
func defaultParts() []*ShipPart {
	return []*ShipPart{
		{
			ID: "engine-left", Name: "Left Engine", Category: CategoryEngine,
			Level: 1, MaxLevel: 10, Cost: 150,
			Description: "Powers the left side of your ship",
			Effect:      "Increases speed by 10% per level",
		},
		{
			ID: "engine-right", Name: "Right Engine", Category: CategoryEngine,
			Level: 1, MaxLevel: 10, Cost: 150,
			Description: "Powers the right side of your ship",
			Effect:      "Increases speed by 10% per level",
		},
		{
			ID: "hull-upper", Name: "Upper Hull", Category: CategoryHull,
			Level: 1, MaxLevel: 10, Cost: 200,
			Description: "Protects the top of your ship",
			Effect:      "Increases storage by 15% per level",
		},
		{
			ID: "hull-lower", Name: "Lower Hull", Category: CategoryHull,
			Level: 1, MaxLevel: 10, Cost: 200,
			Description: "Protects the bottom of your ship",
			Effect:      "Increases storage by 15% per level",
		},
		{
			ID: "cabin", Name: "Pilot Cabin", Category: CategoryCabin,
			Level: 1, MaxLevel: 10, Cost: 300,
			Description: "Where you live and control the ship",
			Effect:      "Increases durability by 20% per level",
		},
		{
			ID: "weapon", Name: "Defense System", Category: CategoryWeapon,
			Level: 1, MaxLevel: 10, Cost: 250,
			Description: "Your ship's defensive capabilities",
			Effect:      "Increases luck by 5% per level",
		},
	}
}
