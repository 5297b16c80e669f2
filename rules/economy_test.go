package rules

import (
	"reflect"
	"testing"

	"github.com/pir8game/engine/game"
)

// grantCell marks a cell as owned on the map and in the player's index.
func grantCell(t *testing.T, p *game.Player, m *game.GameMap, x, y int, cellType game.TerritoryType) {
	t.Helper()
	setCell(m, x, y, cellType)
	cell := m.At(x, y)
	cell.Owner = p.PublicKey
	p.AddTerritory(cell.Coord.String())
}

func TestTurnIncome_SumsGeneration(t *testing.T) {
	m := waterMap(10)
	p := &game.Player{PublicKey: "alice"}
	grantCell(t, p, m, 1, 1, game.Port)     // 5 gold, 2 crew
	grantCell(t, p, m, 2, 2, game.Island)   // 3 supplies
	grantCell(t, p, m, 3, 3, game.Treasure) // 10 gold

	got := TurnIncome(p, m)
	want := game.Resources{Gold: 15, Crew: 2, Supplies: 3}
	if got != want {
		t.Fatalf("income = %+v want %+v", got, want)
	}
}

func TestTurnIncome_IgnoresLostCells(t *testing.T) {
	m := waterMap(10)
	p := &game.Player{PublicKey: "alice"}
	grantCell(t, p, m, 1, 1, game.Port)

	// Bob overwrote ownership; alice's index is stale until her next claim
	// bookkeeping. Income must follow the map, not the index.
	m.At(1, 1).Owner = "bob"

	if got := TurnIncome(p, m); !got.IsZero() {
		t.Fatalf("income from lost cell = %+v want zero", got)
	}
}

func TestActiveBonuses_ThresholdsAndOrder(t *testing.T) {
	m := waterMap(10)
	p := &game.Player{PublicKey: "alice"}
	grantCell(t, p, m, 0, 0, game.Port)
	grantCell(t, p, m, 0, 1, game.Port)

	// Two ports: no bonus yet.
	if got := ActiveBonuses(p, m); len(got) != 0 {
		t.Fatalf("two ports activated %d bonuses", len(got))
	}

	grantCell(t, p, m, 0, 2, game.Port)
	grantCell(t, p, m, 1, 0, game.Island)
	grantCell(t, p, m, 1, 1, game.Island)
	grantCell(t, p, m, 1, 2, game.Island)

	// Three ports and three islands: harbor_network, island_chain, and
	// pirate_haven, in catalog order.
	got := ActiveBonuses(p, m)
	ids := make([]string, len(got))
	for i, b := range got {
		ids[i] = b.ID
	}
	want := []string{"harbor_network", "island_chain", "pirate_haven"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("active bonuses = %v want %v", ids, want)
	}
}

func TestCollectIncome_BonusStacking(t *testing.T) {
	m := waterMap(10)
	p := &game.Player{PublicKey: "alice"}
	grantCell(t, p, m, 0, 0, game.Port)
	grantCell(t, p, m, 0, 1, game.Port)
	grantCell(t, p, m, 0, 2, game.Port)
	grantCell(t, p, m, 1, 0, game.Island)
	grantCell(t, p, m, 1, 1, game.Island)
	grantCell(t, p, m, 1, 2, game.Island)

	// Base: 15 gold, 6 crew, 9 supplies.
	// harbor_network: gold 15 * 1.25 = 18.75 -> 19
	// island_chain:   supplies 9 * 1.5 = 13.5 -> 14
	// pirate_haven:   crew 6 * 1.5 = 9, then +2 flat = 11
	got := CollectIncome(p, m)
	want := game.Resources{Gold: 19, Crew: 11, Supplies: 14}
	if got != want {
		t.Fatalf("collected income = %+v want %+v", got, want)
	}
}

func TestApplyBonuses_NoBonusesIsIdentity(t *testing.T) {
	base := game.Resources{Gold: 7, Crew: 3, Cannons: 1, Supplies: 4}
	if got := ApplyBonuses(base, nil); got != base {
		t.Fatalf("ApplyBonuses(base, nil) = %+v want %+v", got, base)
	}
}

func TestSortBonusesForDisplay(t *testing.T) {
	bonuses := BonusCatalog()
	SortBonusesForDisplay(bonuses)
	for i := 1; i < len(bonuses); i++ {
		if bonuses[i].Tier > bonuses[i-1].Tier {
			t.Fatalf("display order broken at %d: %s after %s", i, bonuses[i].ID, bonuses[i-1].ID)
		}
	}
	if bonuses[0].ID != "armada_sovereign" {
		t.Fatalf("first displayed bonus = %s want armada_sovereign", bonuses[0].ID)
	}
}
