package sim

import "math"

// MaxHubLevel is the top tier of the hub table.
const MaxHubLevel = 10

type hubTier struct {
	Name       string
	WeeklyCost float64
}

// hubTiers is the fixed ten-level hub table, indexed by level-1. Upkeep
// grows roughly geometrically; the names are decorative.
var hubTiers = [MaxHubLevel]hubTier{
	{"Permission", 50},
	{"Access", 100},
	{"Outpost", 200},
	{"Link", 500},
	{"Base", 1000},
	{"Hublet", 2000},
	{"Gateway", 5000},
	{"Anchor", 10000},
	{"Hub", 20000},
	{"Main Hub", 50000},
}

// Hub is a city-scoped facility that multiplies the passenger demand a
// player can capture there and costs weekly upkeep. At most one per city.
type Hub struct {
	City  string  // city short code
	Level int     // 1..MaxHubLevel, never decreases
	Bonus float64 // passenger-demand multiplier
}

// NewHub creates a hub at the given level. The bonus at creation is
// quadratic in the level: 1 + round(0.025*level^2, 1 decimal).
func NewHub(city string, level int) *Hub {
	return &Hub{
		City:  city,
		Level: level,
		Bonus: 1 + math.Round(0.025*float64(level)*float64(level)*10)/10,
	}
}

// Upgrade raises the hub one level and adds a flat +0.1 to the bonus.
//
// Note the asymmetry: creation derives the bonus quadratically from the
// level, upgrades only ever add 0.1. A hub upgraded from level 1 to 5 ends
// up with a smaller bonus than one created at level 5. This drift is part of
// the established game balance; do not reconcile the two formulas.
func (h *Hub) Upgrade() {
	if h.Level >= MaxHubLevel {
		return
	}
	h.Level++
	h.Bonus += 0.1
}

// TierName returns the decorative label of the hub's current level.
func (h *Hub) TierName() string {
	return hubTiers[h.Level-1].Name
}

// WeeklyCost returns the hub's upkeep, billed once per week advance.
func (h *Hub) WeeklyCost() float64 {
	return hubTiers[h.Level-1].WeeklyCost
}
