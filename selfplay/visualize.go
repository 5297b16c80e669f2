package selfplay

import (
	"fmt"
	"log"
	"strings"

	"github.com/pir8game/engine/game"
)

// PrintBoard dumps an ASCII view of the board for debugging self-play.
// Terrain is lowercase, owned territory uppercase, and living ships show as
// their owner's slot digit. y grows downward, matching the map layout.
func PrintBoard(state *game.GameState) {
	m := state.Map
	grid := make([][]string, m.Size)
	for y := range grid {
		grid[y] = make([]string, m.Size)
	}

	for i := range m.Cells {
		cell := &m.Cells[i]
		glyph := terrainGlyph(cell.Type)
		if cell.Owner != "" {
			glyph = strings.ToUpper(glyph)
		}
		grid[cell.Coord.Y][cell.Coord.X] = glyph
	}

	for i := range state.Players {
		p := &state.Players[i]
		for j := range p.Ships {
			ship := &p.Ships[j]
			if ship.Destroyed() {
				continue
			}
			pos := ship.Position
			if m.AtCoord(pos) == nil {
				continue
			}
			grid[pos.Y][pos.X] = fmt.Sprintf("%d", i+1)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n=== TRACE Game %d Turn %d (%s / %s) ===\n",
		state.GameID, state.TurnNumber, state.Status, state.Phase))
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			sb.WriteString(grid[y][x] + " ")
		}
		sb.WriteString("\n")
	}
	for i := range state.Players {
		p := &state.Players[i]
		sb.WriteString(fmt.Sprintf("%d=%s ships=%d territories=%d gold=%d score=%d\n",
			i+1, p.PublicKey, p.LivingShips(), len(p.ControlledTerritories), p.Resources.Gold, p.TotalScore))
	}
	log.Print(sb.String())
}

func terrainGlyph(t game.TerritoryType) string {
	switch t {
	case game.Island:
		return "i"
	case game.Port:
		return "p"
	case game.Treasure:
		return "t"
	case game.Storm:
		return "s"
	case game.Reef:
		return "r"
	case game.Whirlpool:
		return "w"
	default:
		return "."
	}
}
