package rules

import "github.com/pir8game/engine/game"

// Victory type labels recorded on the completed state.
const (
	VictoryFleetWipe = "fleet_wipe"
	VictoryTerritory = "territory_control"
	VictoryEconomic  = "economic"
	VictoryTurnLimit = "turn_limit"
)

// EconomicVictoryValue is the weighted resource value at which a player
// wins outright.
const EconomicVictoryValue = 10000

// Per-cell territory values for the composite score.
var territoryValue = map[game.TerritoryType]int{
	game.Treasure: 100,
	game.Port:     50,
	game.Island:   25,
}

// ValuableCellCount counts the treasure and port cells on the map: the
// denominator of the territory-control condition.
func ValuableCellCount(m *game.GameMap) int {
	n := 0
	for i := range m.Cells {
		if m.Cells[i].Type == game.Treasure || m.Cells[i].Type == game.Port {
			n++
		}
	}
	return n
}

// valuableCellsOwned counts the treasure and port cells the map records as
// owned by the player.
func valuableCellsOwned(p *game.Player, m *game.GameMap) int {
	n := 0
	for i := range m.Cells {
		c := &m.Cells[i]
		if c.Owner == p.PublicKey && (c.Type == game.Treasure || c.Type == game.Port) {
			n++
		}
	}
	return n
}

// CompositeScore ranks a player when no outright condition fired:
// resource value + fleet value + territory value.
//
//	resource:  gold + 2*crew + 5*cannons + supplies
//	fleet:     sum over living ships of maxHealth + 5*attack
//	territory: per owned cell, treasure 100 / port 50 / island 25 / other 10
//
// Territory counts only cells the map still records as owned.
func CompositeScore(p *game.Player, m *game.GameMap) int {
	score := p.Resources.Value()

	for i := range p.Ships {
		s := &p.Ships[i]
		if s.Destroyed() {
			continue
		}
		score += s.MaxHealth + 5*s.Attack
	}

	for i := range m.Cells {
		c := &m.Cells[i]
		if c.Owner != p.PublicKey {
			continue
		}
		if v, ok := territoryValue[c.Type]; ok {
			score += v
		} else {
			score += 10
		}
	}

	return score
}

// IsGameOver reports whether a terminal condition has been reached:
//
//	(a) at most one player retains a living ship,
//	(b) one player holds a strict majority of the treasure+port cells, or
//	(c) one player's resource value reaches the economic threshold.
func IsGameOver(players []game.Player, m *game.GameMap) bool {
	over, _, _ := evaluate(players, m)
	return over
}

// DetermineWinner returns the winning player, or nil when no terminal
// condition holds. When several players remain it ranks by composite
// score; the first player to reach the maximum in evaluation order keeps
// priority (a deterministic, if arbitrary, tie-break).
func DetermineWinner(players []game.Player, m *game.GameMap) *game.Player {
	over, winner, _ := evaluate(players, m)
	if !over {
		return nil
	}
	if winner != nil {
		return winner
	}
	return RankPlayers(players, m)
}

// VictoryCondition names the condition that ended the game, or "".
func VictoryCondition(players []game.Player, m *game.GameMap) string {
	over, _, kind := evaluate(players, m)
	if !over {
		return ""
	}
	return kind
}

func evaluate(players []game.Player, m *game.GameMap) (bool, *game.Player, string) {
	// Fleet wipe: at most one player still sails.
	alive := 0
	var lastAlive *game.Player
	for i := range players {
		if players[i].LivingShips() > 0 {
			alive++
			lastAlive = &players[i]
		}
	}
	if len(players) > 0 && alive <= 1 {
		return true, lastAlive, VictoryFleetWipe
	}

	// Territory control: strict majority of valuable cells.
	valuable := ValuableCellCount(m)
	if valuable > 0 {
		for i := range players {
			if 2*valuableCellsOwned(&players[i], m) > valuable {
				return true, &players[i], VictoryTerritory
			}
		}
	}

	// Economic dominance.
	for i := range players {
		if players[i].Resources.Value() >= EconomicVictoryValue {
			return true, &players[i], VictoryEconomic
		}
	}

	return false, nil, ""
}

// RankPlayers returns the active player with the highest composite score.
// Strict comparison keeps the earliest player on ties.
func RankPlayers(players []game.Player, m *game.GameMap) *game.Player {
	var best *game.Player
	bestScore := -1
	for i := range players {
		p := &players[i]
		if !p.Active {
			continue
		}
		if s := CompositeScore(p, m); s > bestScore {
			best = p
			bestScore = s
		}
	}
	return best
}
