package selfplay

import (
	"github.com/pir8game/engine/game"
	"github.com/pir8game/engine/rules"
)

// ChooseAction picks the next action for the current player. The policy is
// a fixed priority list, so a whole game is a pure function of its seed:
//
//  1. an early free scan while charges remain
//  2. attack the first adjacent enemy ship
//  3. claim the cell a ship is standing on
//  4. build a sloop at an owned, free port
//  5. collect income on even turns
//  6. move the lead ship toward the nearest unowned claimable cell
//  7. collect any income at all
//  8. pass
func ChooseAction(state *game.GameState, s rules.Settings) rules.Action {
	p := state.CurrentPlayer()
	if p == nil {
		return rules.Action{Kind: rules.ActionPass}
	}
	key := p.PublicKey

	if state.PendingAction == "" && p.ScanCharges > 0 && state.TurnNumber <= 2 {
		if target, ok := firstUnscanned(p, state.Map); ok {
			return rules.Action{Kind: rules.ActionScan, Player: key, Target: target}
		}
	}

	if a, ok := adjacentAttack(state, p); ok {
		return a
	}

	for i := range p.Ships {
		ship := &p.Ships[i]
		if ship.Destroyed() {
			continue
		}
		cell := state.Map.AtCoord(ship.Position)
		if cell != nil && rules.Claimable(cell.Type) && cell.Owner != key {
			return rules.Action{Kind: rules.ActionClaim, Player: key, ShipID: ship.ID}
		}
	}

	if a, ok := portBuild(state, p, s); ok {
		return a
	}

	income := rules.TurnIncome(p, state.Map)
	if !income.IsZero() && state.TurnNumber%2 == 0 {
		return rules.Action{Kind: rules.ActionCollect, Player: key}
	}

	if a, ok := advanceMove(state, p); ok {
		return a
	}

	if !income.IsZero() {
		return rules.Action{Kind: rules.ActionCollect, Player: key}
	}
	return rules.Action{Kind: rules.ActionPass, Player: key}
}

func firstUnscanned(p *game.Player, m *game.GameMap) (game.Coordinate, bool) {
	for i := range m.Cells {
		c := m.Cells[i].Coord
		if !game.CoordinateScanned(p.ScannedCells, c.X, c.Y, m.Size) {
			return c, true
		}
	}
	return game.Coordinate{}, false
}

func adjacentAttack(state *game.GameState, p *game.Player) (rules.Action, bool) {
	for i := range p.Ships {
		attacker := &p.Ships[i]
		if attacker.Destroyed() {
			continue
		}
		for j := range state.Players {
			enemy := &state.Players[j]
			if enemy.PublicKey == p.PublicKey {
				continue
			}
			for k := range enemy.Ships {
				target := &enemy.Ships[k]
				if target.Destroyed() {
					continue
				}
				if game.IsAdjacent(attacker.Position, target.Position) {
					return rules.Action{
						Kind:         rules.ActionAttack,
						Player:       p.PublicKey,
						ShipID:       attacker.ID,
						TargetShipID: target.ID,
					}, true
				}
			}
		}
	}
	return rules.Action{}, false
}

func portBuild(state *game.GameState, p *game.Player, s rules.Settings) (rules.Action, bool) {
	if len(p.Ships) >= s.MaxShipsPerPlayer {
		return rules.Action{}, false
	}
	if !p.Resources.CanAfford(rules.ShipCost(game.Sloop)) {
		return rules.Action{}, false
	}
	for i := range state.Map.Cells {
		cell := &state.Map.Cells[i]
		if cell.Type != game.Port || cell.Owner != p.PublicKey {
			continue
		}
		if _, occupant := state.ShipAt(cell.Coord); occupant != nil {
			continue
		}
		return rules.Action{
			Kind:     rules.ActionBuild,
			Player:   p.PublicKey,
			ShipType: game.Sloop,
			Target:   cell.Coord,
		}, true
	}
	return rules.Action{}, false
}

// advanceMove steers the first living ship one legal step closer to the
// nearest unowned claimable cell. Hazard cells and occupied cells are never
// chosen as destinations.
func advanceMove(state *game.GameState, p *game.Player) (rules.Action, bool) {
	var ship *game.Ship
	for i := range p.Ships {
		if !p.Ships[i].Destroyed() {
			ship = &p.Ships[i]
			break
		}
	}
	if ship == nil {
		return rules.Action{}, false
	}

	goal, ok := nearestClaimable(state.Map, p.PublicKey, ship.Position)
	if !ok {
		return rules.Action{}, false
	}

	best := game.Coordinate{}
	bestDist := game.Distance(ship.Position, goal)
	found := false
	for i := range state.Map.Cells {
		cell := &state.Map.Cells[i]
		switch cell.Type {
		case game.Reef, game.Whirlpool:
			continue
		}
		dest := cell.Coord
		if dest == ship.Position {
			continue
		}
		if game.Distance(ship.Position, dest) > float64(ship.Speed) {
			continue
		}
		if _, occupant := state.ShipAt(dest); occupant != nil {
			continue
		}
		if d := game.Distance(dest, goal); d < bestDist {
			best = dest
			bestDist = d
			found = true
		}
	}
	if !found {
		return rules.Action{}, false
	}
	return rules.Action{
		Kind:   rules.ActionMove,
		Player: p.PublicKey,
		ShipID: ship.ID,
		Target: best,
	}, true
}

func nearestClaimable(m *game.GameMap, playerKey string, from game.Coordinate) (game.Coordinate, bool) {
	var goal game.Coordinate
	bestDist := -1.0
	for i := range m.Cells {
		cell := &m.Cells[i]
		if !rules.Claimable(cell.Type) || cell.Owner == playerKey {
			continue
		}
		d := game.Distance(from, cell.Coord)
		if bestDist < 0 || d < bestDist {
			goal = cell.Coord
			bestDist = d
		}
	}
	return goal, bestDist >= 0
}
