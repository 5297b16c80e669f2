package rules

import (
	"math"
	"sort"

	"github.com/pir8game/engine/game"
)

// BonusTier orders territory bonuses for display. Higher tiers sort first;
// tier has no gameplay effect.
type BonusTier int

const (
	TierBronze BonusTier = iota
	TierSilver
	TierGold
	TierLegendary
)

func (t BonusTier) String() string {
	switch t {
	case TierBronze:
		return "bronze"
	case TierSilver:
		return "silver"
	case TierGold:
		return "gold"
	case TierLegendary:
		return "legendary"
	}
	return "unknown"
}

// TerritoryBonus is one catalog entry: a set of required counts per cell
// type that, when all met, applies multiplicative modifiers to income and
// an additive flat generation bump.
type TerritoryBonus struct {
	ID       string
	Name     string
	Tier     BonusTier
	Requires map[game.TerritoryType]int

	// Multipliers default to 1 when zero.
	GoldMult     float64
	CrewMult     float64
	SuppliesMult float64

	FlatGeneration game.Resources
}

// bonusCatalog is the static bonus table, in application order.
// Multiplicative modifiers apply in this order, then all flat bumps.
var bonusCatalog = []TerritoryBonus{
	{
		ID:       "harbor_network",
		Name:     "Harbor Network",
		Tier:     TierBronze,
		Requires: map[game.TerritoryType]int{game.Port: 3},
		GoldMult: 1.25,
	},
	{
		ID:           "island_chain",
		Name:         "Island Chain",
		Tier:         TierBronze,
		Requires:     map[game.TerritoryType]int{game.Island: 3},
		SuppliesMult: 1.5,
	},
	{
		ID:             "treasure_hoard",
		Name:           "Treasure Hoard",
		Tier:           TierSilver,
		Requires:       map[game.TerritoryType]int{game.Treasure: 2},
		GoldMult:       1.25,
		FlatGeneration: game.Resources{Gold: 5},
	},
	{
		ID:       "trade_empire",
		Name:     "Trade Empire",
		Tier:     TierSilver,
		Requires: map[game.TerritoryType]int{game.Port: 5},
		GoldMult: 1.5,
		CrewMult: 1.25,
	},
	{
		ID:             "pirate_haven",
		Name:           "Pirate Haven",
		Tier:           TierGold,
		Requires:       map[game.TerritoryType]int{game.Port: 2, game.Island: 2},
		CrewMult:       1.5,
		FlatGeneration: game.Resources{Crew: 2},
	},
	{
		ID:       "golden_triangle",
		Name:     "Golden Triangle",
		Tier:     TierGold,
		Requires: map[game.TerritoryType]int{game.Treasure: 3},
		GoldMult: 2,
	},
	{
		ID:             "armada_sovereign",
		Name:           "Armada Sovereign",
		Tier:           TierLegendary,
		Requires:       map[game.TerritoryType]int{game.Port: 4, game.Island: 3, game.Treasure: 2},
		GoldMult:       1.5,
		CrewMult:       1.5,
		SuppliesMult:   1.5,
		FlatGeneration: game.Resources{Gold: 10, Crew: 2, Supplies: 5},
	},
}

// BonusCatalog returns the full catalog in application order.
func BonusCatalog() []TerritoryBonus {
	out := make([]TerritoryBonus, len(bonusCatalog))
	copy(out, bonusCatalog)
	return out
}

// ownedCellsByType counts the player's holdings per cell type, keeping only
// coordinates the map still records as owned by the player. Ownership can
// change between claim and collection, so the index alone is not trusted.
func ownedCellsByType(p *game.Player, m *game.GameMap) map[game.TerritoryType]int {
	counts := make(map[game.TerritoryType]int)
	for _, cs := range p.ControlledTerritories {
		coord, err := game.ParseCoordinate(cs)
		if err != nil {
			continue
		}
		cell := m.AtCoord(coord)
		if cell == nil || cell.Owner != p.PublicKey {
			continue
		}
		counts[cell.Type]++
	}
	return counts
}

// TurnIncome sums per-type generation over every territory the player
// still verifiably owns. Pure: no player or map mutation.
func TurnIncome(p *game.Player, m *game.GameMap) game.Resources {
	var income game.Resources
	for _, cs := range p.ControlledTerritories {
		coord, err := game.ParseCoordinate(cs)
		if err != nil {
			continue
		}
		cell := m.AtCoord(coord)
		if cell == nil || cell.Owner != p.PublicKey {
			continue
		}
		income = income.Add(cell.Generates)
	}
	return income
}

// ActiveBonuses filters the catalog against the player's verified holdings.
// The result preserves catalog order, which is also application order.
func ActiveBonuses(p *game.Player, m *game.GameMap) []TerritoryBonus {
	counts := ownedCellsByType(p, m)

	var active []TerritoryBonus
	for _, b := range bonusCatalog {
		met := true
		for t, need := range b.Requires {
			if counts[t] < need {
				met = false
				break
			}
		}
		if met {
			active = append(active, b)
		}
	}
	return active
}

// SortBonusesForDisplay orders bonuses by tier, legendary first. Display
// order only; it never affects income.
func SortBonusesForDisplay(bonuses []TerritoryBonus) {
	sort.SliceStable(bonuses, func(i, j int) bool {
		return bonuses[i].Tier > bonuses[j].Tier
	})
}

// ApplyBonuses folds active bonuses into a base income: multiplicative
// modifiers in catalog order first, then every additive flat bump.
func ApplyBonuses(base game.Resources, bonuses []TerritoryBonus) game.Resources {
	gold := float64(base.Gold)
	crew := float64(base.Crew)
	supplies := float64(base.Supplies)

	for _, b := range bonuses {
		if b.GoldMult > 0 {
			gold *= b.GoldMult
		}
		if b.CrewMult > 0 {
			crew *= b.CrewMult
		}
		if b.SuppliesMult > 0 {
			supplies *= b.SuppliesMult
		}
	}

	out := game.Resources{
		Gold:     int(math.Round(gold)),
		Crew:     int(math.Round(crew)),
		Cannons:  base.Cannons,
		Supplies: int(math.Round(supplies)),
	}
	for _, b := range bonuses {
		out = out.Add(b.FlatGeneration)
	}
	return out
}

// CollectIncome is the full per-turn income computation: base generation
// from verified holdings with all active bonuses applied.
func CollectIncome(p *game.Player, m *game.GameMap) game.Resources {
	return ApplyBonuses(TurnIncome(p, m), ActiveBonuses(p, m))
}
