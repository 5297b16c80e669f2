package rules

import (
	"fmt"

	"github.com/pir8game/engine/game"
)

// shipTemplate is the fixed stat block for one ship type.
type shipTemplate struct {
	Health  int
	Attack  int
	Defense int
	Speed   int
}

// Stat and cost tables mirror the authoritative layer exactly.
var shipTemplates = map[game.ShipType]shipTemplate{
	game.Sloop:    {Health: 100, Attack: 20, Defense: 10, Speed: 3},
	game.Frigate:  {Health: 200, Attack: 40, Defense: 25, Speed: 2},
	game.Galleon:  {Health: 350, Attack: 60, Defense: 40, Speed: 1},
	game.Flagship: {Health: 500, Attack: 80, Defense: 60, Speed: 1},
}

var shipCosts = map[game.ShipType]game.Resources{
	game.Sloop:    {Gold: 500, Crew: 10, Cannons: 5, Supplies: 20},
	game.Frigate:  {Gold: 1200, Crew: 25, Cannons: 15, Supplies: 40},
	game.Galleon:  {Gold: 2500, Crew: 50, Cannons: 30, Supplies: 80},
	game.Flagship: {Gold: 5000, Crew: 100, Cannons: 60, Supplies: 150},
}

// ShipCost returns the build cost for a ship type.
func ShipCost(t game.ShipType) game.Resources {
	return shipCosts[t]
}

// KnownShipType reports whether t has a stat template.
func KnownShipType(t game.ShipType) bool {
	_, ok := shipTemplates[t]
	return ok
}

// NewShip instantiates a ship from its type template. The id is
// owner + type + a caller-supplied monotonic token, so ids are unique and
// reproducible without any clock or random source.
func NewShip(t game.ShipType, owner string, pos game.Coordinate, token int) game.Ship {
	tpl := shipTemplates[t]
	return game.Ship{
		ID:        fmt.Sprintf("%s-%s-%d", owner, t, token),
		Type:      t,
		Health:    tpl.Health,
		MaxHealth: tpl.Health,
		Attack:    tpl.Attack,
		Defense:   tpl.Defense,
		Speed:     tpl.Speed,
		Position:  pos,
	}
}

// StartingFleet seeds a player's opening ships: a sloop and a frigate at
// the first two supplied positions. Fewer than two positions yields a
// partial (or empty) fleet; that is a documented edge case, not an error.
func StartingFleet(owner string, positions []game.Coordinate) []game.Ship {
	types := []game.ShipType{game.Sloop, game.Frigate}
	var fleet []game.Ship
	for i, t := range types {
		if i >= len(positions) {
			break
		}
		fleet = append(fleet, NewShip(t, owner, positions[i], i+1))
	}
	return fleet
}

// StartingPositions returns the two corner deployment cells for a player
// slot. Slots fan out clockwise from the top-left corner.
func StartingPositions(slot, mapSize int) []game.Coordinate {
	n := mapSize - 1
	switch slot {
	case 0:
		return []game.Coordinate{{X: 1, Y: 1}, {X: 2, Y: 1}}
	case 1:
		return []game.Coordinate{{X: n - 1, Y: 1}, {X: n, Y: 1}}
	case 2:
		return []game.Coordinate{{X: 1, Y: n - 1}, {X: 1, Y: n}}
	case 3:
		return []game.Coordinate{{X: n - 1, Y: n - 1}, {X: n, Y: n - 1}}
	default:
		return nil
	}
}
