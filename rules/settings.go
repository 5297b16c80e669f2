package rules

import "github.com/pir8game/engine/game"

// Settings are the tunable knobs of the simulation. Defaults match the
// authoritative layer; callers can override them (e.g. from a balance YAML)
// but both sides of a game must run the same values.
//
// Note: ship stat and cost templates are fixed tables (see fleet.go), not
// settings. They are part of the rule set itself.
type Settings struct {
	// MapSize is the board edge length. 7-10 in practice.
	MapSize int `yaml:"map_size"`

	// MinPlayers must join before a game can start; MaxPlayers caps joins.
	MinPlayers int `yaml:"min_players"`
	MaxPlayers int `yaml:"max_players"`

	// MaxShipsPerPlayer caps fleet size for the build action.
	MaxShipsPerPlayer int `yaml:"max_ships_per_player"`

	// MaxTurns force-completes the game by composite score.
	MaxTurns int `yaml:"max_turns"`

	// StartingResources is each player's stock when the game starts.
	StartingResources game.Resources `yaml:"starting_resources"`

	// MinimumDamage is the combat damage floor: defense can never fully
	// negate an attack.
	MinimumDamage int `yaml:"minimum_damage"`

	// CombatVariance is the half-width v of the uniform [1-v, 1+v] damage
	// multiplier band.
	CombatVariance float64 `yaml:"combat_variance"`

	// Hazard arrival damage per cell type.
	ReefDamage      int `yaml:"reef_damage"`
	WhirlpoolDamage int `yaml:"whirlpool_damage"`

	// ScanCharges is how many unexplored cells each player may reveal.
	ScanCharges int `yaml:"scan_charges"`
}

// DefaultSettings mirror the authoritative layer's constants.
var DefaultSettings = Settings{
	MapSize:           10,
	MinPlayers:        2,
	MaxPlayers:        4,
	MaxShipsPerPlayer: 6,
	MaxTurns:          50,
	StartingResources: game.Resources{Gold: 1000, Crew: 50, Cannons: 20, Supplies: 100},
	MinimumDamage:     10,
	CombatVariance:    0.15,
	ReefDamage:        25,
	WhirlpoolDamage:   50,
	ScanCharges:       3,
}

// sanitize fills zero values with defaults so a partially specified
// Settings (e.g. from YAML) stays playable.
func (s Settings) sanitize() Settings {
	d := DefaultSettings
	if s.MapSize <= 0 {
		s.MapSize = d.MapSize
	}
	if s.MinPlayers <= 0 {
		s.MinPlayers = d.MinPlayers
	}
	if s.MaxPlayers < s.MinPlayers {
		s.MaxPlayers = d.MaxPlayers
	}
	if s.MaxShipsPerPlayer <= 0 {
		s.MaxShipsPerPlayer = d.MaxShipsPerPlayer
	}
	if s.MaxTurns <= 0 {
		s.MaxTurns = d.MaxTurns
	}
	if s.MinimumDamage <= 0 {
		s.MinimumDamage = d.MinimumDamage
	}
	if s.CombatVariance <= 0 {
		s.CombatVariance = d.CombatVariance
	}
	if s.ReefDamage <= 0 {
		s.ReefDamage = d.ReefDamage
	}
	if s.WhirlpoolDamage <= 0 {
		s.WhirlpoolDamage = d.WhirlpoolDamage
	}
	if s.ScanCharges < 0 {
		s.ScanCharges = d.ScanCharges
	}
	if s.StartingResources.IsZero() {
		s.StartingResources = d.StartingResources
	}
	return s
}
