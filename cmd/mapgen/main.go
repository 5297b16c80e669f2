// Command mapgen prints the map a seed generates: an ASCII grid plus the
// per-type cell counts. Handy for eyeballing balance changes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pir8game/engine/game"
	"github.com/pir8game/engine/logging"
	"github.com/pir8game/engine/rules"
)

func main() {
	seed := flag.Uint64("seed", 1, "Map seed")
	size := flag.Int("size", rules.DefaultSettings.MapSize, "Board edge length")
	flag.Parse()

	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, nil)))

	m := rules.GenerateMap(*size, *seed)

	var sb strings.Builder
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			sb.WriteString(glyph(m.At(x, y).Type) + " ")
		}
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())

	counts := map[game.TerritoryType]int{}
	for i := range m.Cells {
		counts[m.Cells[i].Type]++
	}
	slog.Info("map generated",
		"seed", *seed,
		"size", *size,
		"water", counts[game.Water],
		"island", counts[game.Island],
		"port", counts[game.Port],
		"treasure", counts[game.Treasure],
		"storm", counts[game.Storm],
		"reef", counts[game.Reef],
		"whirlpool", counts[game.Whirlpool],
		"valuable", rules.ValuableCellCount(m),
	)
}

func glyph(t game.TerritoryType) string {
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
