package rules

import "github.com/pir8game/engine/game"

// Rejection reasons returned by the resolvers. These are stable strings the
// caller can surface directly.
const (
	ReasonExceedsSpeed       = "exceeds speed"
	ReasonInvalidDestination = "invalid destination"
	ReasonShipDestroyed      = "ship destroyed"
	ReasonPositionOccupied   = "position occupied"
)

// MoveResult is the outcome of a proposed displacement. When Accepted, Ship
// carries the updated position and any hazard damage already applied.
type MoveResult struct {
	Accepted     bool
	Reason       string
	Ship         game.Ship
	HazardDamage int
}

// ResolveMove validates a proposed ship displacement against speed and
// board bounds and applies hazard-cell arrival effects.
//
// A hazard destination never blocks the move: the ship always arrives, but
// takes the cell's fixed penalty (which can sink it). The input ship is not
// mutated.
func ResolveMove(ship game.Ship, target game.Coordinate, m *game.GameMap, s Settings) MoveResult {
	s = s.sanitize()

	if ship.Destroyed() {
		return MoveResult{Reason: ReasonShipDestroyed}
	}

	cell := m.AtCoord(target)
	if cell == nil {
		return MoveResult{Reason: ReasonInvalidDestination}
	}

	if game.Distance(ship.Position, target) > float64(ship.Speed) {
		return MoveResult{Reason: ReasonExceedsSpeed}
	}

	moved := ship
	moved.Position = target

	damage := 0
	switch cell.Type {
	case game.Reef:
		damage = s.ReefDamage
	case game.Whirlpool:
		damage = s.WhirlpoolDamage
	}
	if damage > 0 {
		moved.Health -= damage
		if moved.Health < 0 {
			moved.Health = 0
		}
	}

	return MoveResult{Accepted: true, Ship: moved, HazardDamage: damage}
}
