package rules

import (
	"testing"

	"github.com/pir8game/engine/game"
)

func TestClaimable(t *testing.T) {
	cases := []struct {
		cellType game.TerritoryType
		want     bool
	}{
		{game.Island, true},
		{game.Port, true},
		{game.Treasure, true},
		{game.Water, false},
		{game.Storm, false},
		{game.Reef, false},
		{game.Whirlpool, false},
	}
	for _, c := range cases {
		if got := Claimable(c.cellType); got != c.want {
			t.Errorf("Claimable(%s) = %v want %v", c.cellType, got, c.want)
		}
	}
}

func TestClaimTerritory_Unowned(t *testing.T) {
	m := waterMap(10)
	setCell(m, 3, 3, game.Island)

	res := ClaimTerritory("alice", game.Coordinate{X: 3, Y: 3}, m)
	if !res.Accepted {
		t.Fatalf("claim rejected: %q", res.Reason)
	}
	if res.PreviousOwner != "" {
		t.Fatalf("previous owner = %q want empty", res.PreviousOwner)
	}
	if m.At(3, 3).Owner != "alice" {
		t.Fatalf("cell owner = %q want alice", m.At(3, 3).Owner)
	}
}

func TestClaimTerritory_Water(t *testing.T) {
	m := waterMap(10)

	res := ClaimTerritory("alice", game.Coordinate{X: 2, Y: 2}, m)
	if res.Accepted || res.Reason != ReasonNotClaimable {
		t.Fatalf("water claim: accepted=%v reason=%q", res.Accepted, res.Reason)
	}
	if m.At(2, 2).Owner != "" {
		t.Fatal("rejected claim set an owner")
	}
}

func TestClaimTerritory_AlreadyOwnedBySelf(t *testing.T) {
	m := waterMap(10)
	setCell(m, 3, 3, game.Port)
	m.At(3, 3).Owner = "alice"

	res := ClaimTerritory("alice", game.Coordinate{X: 3, Y: 3}, m)
	if res.Accepted || res.Reason != ReasonAlreadyOwned {
		t.Fatalf("re-claim: accepted=%v reason=%q", res.Accepted, res.Reason)
	}
}

func TestClaimTerritory_OverwritesOpponent(t *testing.T) {
	m := waterMap(10)
	setCell(m, 4, 4, game.Treasure)
	m.At(4, 4).Owner = "bob"
	m.At(4, 4).Contested = true

	res := ClaimTerritory("alice", game.Coordinate{X: 4, Y: 4}, m)
	if !res.Accepted {
		t.Fatalf("overwrite claim rejected: %q", res.Reason)
	}
	if res.PreviousOwner != "bob" {
		t.Fatalf("previous owner = %q want bob", res.PreviousOwner)
	}
	cell := m.At(4, 4)
	if cell.Owner != "alice" || cell.Contested {
		t.Fatalf("cell after overwrite: owner=%q contested=%v", cell.Owner, cell.Contested)
	}
}

func TestClaimTerritory_OffBoard(t *testing.T) {
	m := waterMap(10)
	res := ClaimTerritory("alice", game.Coordinate{X: 10, Y: 0}, m)
	if res.Accepted || res.Reason != ReasonInvalidDestination {
		t.Fatalf("off-board claim: accepted=%v reason=%q", res.Accepted, res.Reason)
	}
}
