package rules

import "github.com/pir8game/engine/game"

const (
	ReasonNotClaimable = "territory not claimable"
	ReasonAlreadyOwned = "already owned"
)

// ClaimResult is the outcome of a territory claim. PreviousOwner is set
// when the claim overwrote another player's ownership so the caller can
// keep that player's territory index consistent with the map.
type ClaimResult struct {
	Accepted      bool
	Reason        string
	PreviousOwner string
}

// Claimable reports whether a cell type can be owned. Only island, port,
// and treasure cells are claimable; water and hazard cells are not.
func Claimable(t game.TerritoryType) bool {
	switch t {
	case game.Island, game.Port, game.Treasure:
		return true
	default:
		return false
	}
}

// ClaimTerritory sets cell ownership at coord. It mutates only the map
// cell: the caller owns the player records and must mirror the change in
// ControlledTerritories (single writer per entity).
//
// Claiming a cell another player owns succeeds and overwrites ownership
// with no contest step, matching the authoritative rule.
func ClaimTerritory(playerKey string, coord game.Coordinate, m *game.GameMap) ClaimResult {
	cell := m.AtCoord(coord)
	if cell == nil {
		return ClaimResult{Reason: ReasonInvalidDestination}
	}
	if !Claimable(cell.Type) {
		return ClaimResult{Reason: ReasonNotClaimable}
	}
	if cell.Owner == playerKey {
		return ClaimResult{Reason: ReasonAlreadyOwned}
	}

	prev := cell.Owner
	cell.Owner = playerKey
	cell.Contested = false
	return ClaimResult{Accepted: true, PreviousOwner: prev}
}
