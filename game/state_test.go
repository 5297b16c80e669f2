package game

import "testing"

func TestResources_SubClampsAtZero(t *testing.T) {
	r := Resources{Gold: 5, Crew: 2}
	got := r.Sub(Resources{Gold: 10, Crew: 1, Supplies: 3})
	want := Resources{Gold: 0, Crew: 1, Cannons: 0, Supplies: 0}
	if got != want {
		t.Fatalf("Sub = %+v want %+v", got, want)
	}
}

func TestResources_Value(t *testing.T) {
	r := Resources{Gold: 100, Crew: 10, Cannons: 4, Supplies: 7}
	if got, want := r.Value(), 100+20+20+7; got != want {
		t.Fatalf("Value = %d want %d", got, want)
	}
}

func TestGameMap_AtBounds(t *testing.T) {
	m := &GameMap{Size: 3, Cells: make([]TerritoryCell, 9)}
	if m.At(-1, 0) != nil || m.At(0, -1) != nil || m.At(3, 0) != nil || m.At(0, 3) != nil {
		t.Fatal("off-board lookups must return nil")
	}
	if m.At(2, 2) == nil {
		t.Fatal("in-bounds lookup returned nil")
	}
}

func TestGameState_CloneIsDeep(t *testing.T) {
	m := &GameMap{Size: 2, Cells: make([]TerritoryCell, 4)}
	m.Cells[0] = TerritoryCell{Coord: Coordinate{0, 0}, Type: Port}

	s := &GameState{
		GameID: 7,
		Seed:   42,
		Status: StatusActive,
		Phase:  PhaseMovement,
		Map:    m,
		Players: []Player{{
			PublicKey:             "alice",
			Ships:                 []Ship{{ID: "alice-sloop-1", Type: Sloop, Health: 100, Position: Coordinate{1, 1}}},
			ControlledTerritories: []string{"0,0"},
			Resources:             Resources{Gold: 10},
			Active:                true,
		}},
		Events: []Event{{Turn: 1, Type: "joined", Player: "alice"}},
	}

	c := s.Clone()
	c.Players[0].Ships[0].Health = 1
	c.Players[0].ControlledTerritories[0] = "1,1"
	c.Map.Cells[0].Owner = "alice"
	c.Events[0].Type = "changed"

	if s.Players[0].Ships[0].Health != 100 {
		t.Error("clone shares ship storage with original")
	}
	if s.Players[0].ControlledTerritories[0] != "0,0" {
		t.Error("clone shares territory index with original")
	}
	if s.Map.Cells[0].Owner != "" {
		t.Error("clone shares map storage with original")
	}
	if s.Events[0].Type != "joined" {
		t.Error("clone shares event log with original")
	}
}

func TestGameState_ShipAtSkipsDestroyed(t *testing.T) {
	s := &GameState{Players: []Player{{
		PublicKey: "bob",
		Ships: []Ship{
			{ID: "bob-sloop-1", Health: 0, Position: Coordinate{2, 2}},
			{ID: "bob-frigate-2", Health: 50, Position: Coordinate{2, 2}},
		},
	}}}

	owner, ship := s.ShipAt(Coordinate{2, 2})
	if owner != "bob" || ship == nil || ship.ID != "bob-frigate-2" {
		t.Fatalf("ShipAt = %q, %+v; want living frigate", owner, ship)
	}
	if owner, ship := s.ShipAt(Coordinate{0, 0}); owner != "" || ship != nil {
		t.Fatal("empty cell should return no ship")
	}
}
