package rules

import (
	"math"

	"github.com/pir8game/engine/game"
)

// Map generation buckets every cell into one of four concentric bands by
// normalized distance from the board center, then rolls the cell type from
// the band's probability table. The roll is fully determined by the game
// seed and the cell index, so client and settlement layer generate the same
// board.
//
// Band layout (normalized distance d = dist / maxDist):
//
//	d < 0.2  center: valuable territories
//	d < 0.5  mid:    mixed islands and ports
//	d < 0.8  outer:  open water with light hazards
//	d >= 0.8 edge:   hazardous fringe
const (
	centerBand = 0.2
	midBand    = 0.5
	outerBand  = 0.8
)

// cellGeneration is the static per-type resource generation table.
var cellGeneration = map[game.TerritoryType]game.Resources{
	game.Island:   {Supplies: 3},
	game.Port:     {Gold: 5, Crew: 2},
	game.Treasure: {Gold: 10},
}

// GenerateMap builds a size x size board from the given seed. Every cell
// starts unowned and uncontested. The only inputs are the arguments; there
// are no side effects beyond the returned map.
func GenerateMap(size int, seed uint64) *game.GameMap {
	m := &game.GameMap{
		Size:  size,
		Cells: make([]game.TerritoryCell, size*size),
	}

	center := (float64(size) - 1) / 2
	maxDist := math.Sqrt(2 * center * center)

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			index := x*size + y
			dist := math.Sqrt(math.Pow(float64(x)-center, 2) + math.Pow(float64(y)-center, 2))
			norm := 0.0
			if maxDist > 0 {
				norm = dist / maxDist
			}

			roll := cellRoll(seed, index)
			t := cellTypeFor(norm, roll)

			m.Cells[index] = game.TerritoryCell{
				Coord:     game.Coordinate{X: x, Y: y},
				Type:      t,
				Generates: cellGeneration[t],
			}
		}
	}

	return m
}

func cellTypeFor(norm float64, roll uint64) game.TerritoryType {
	switch {
	case norm < centerBand:
		// Center: 40% treasure, 30% port.
		if roll < 40 {
			return game.Treasure
		} else if roll < 70 {
			return game.Port
		}
		return game.Water
	case norm < midBand:
		// Mid: 20% island, 15% port.
		if roll < 20 {
			return game.Island
		} else if roll < 35 {
			return game.Port
		}
		return game.Water
	case norm < outerBand:
		// Outer: 10% storm, 5% reef.
		if roll < 10 {
			return game.Storm
		} else if roll < 15 {
			return game.Reef
		}
		return game.Water
	default:
		// Edge: 20% whirlpool, 15% storm.
		if roll < 20 {
			return game.Whirlpool
		} else if roll < 35 {
			return game.Storm
		}
		return game.Water
	}
}

// CellGeneration returns the static per-turn generation for a cell type.
func CellGeneration(t game.TerritoryType) game.Resources {
	return cellGeneration[t]
}
