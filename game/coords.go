package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinate is a board position. (0,0) is the top-left cell; both axes
// grow toward the opposite edge and are bounded by the map size.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the canonical "x,y" form used by territory indexes.
func (c Coordinate) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// ParseCoordinate parses the canonical "x,y" form. It fails fast on
// malformed or negative input rather than defaulting; the round-trip
// ParseCoordinate(c.String()) == c holds for every valid coordinate.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	if x < 0 || y < 0 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: negative component", s)
	}
	return Coordinate{X: x, Y: y}, nil
}

// Distance is the Euclidean distance between two coordinates.
func Distance(a, b Coordinate) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// AdjacencyRange is the distance within which two cells count as adjacent.
// A diagonal step (distance sqrt(2) ~ 1.414) is intentionally treated as
// single-step adjacency, so the threshold is 1.5 rather than 1.0.
const AdjacencyRange = 1.5

// IsAdjacent reports whether a and b are within one step of each other,
// diagonals included. A coordinate is not adjacent to itself.
func IsAdjacent(a, b Coordinate) bool {
	if a == b {
		return false
	}
	return Distance(a, b) <= AdjacencyRange
}
