// Package config loads the project's YAML configuration: game balance
// overrides plus the archive and self-play settings used by the binaries.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pir8game/engine/rules"
)

// Archive configures where completed games land.
type Archive struct {
	// OutDir receives the batch .parquet files.
	OutDir string `yaml:"out_dir"`
	// IndexPath is the SQLite database indexing archived games.
	IndexPath string `yaml:"index_path"`
	// LogPath is the append-only list of archived game IDs.
	LogPath string `yaml:"log_path"`
	// GamesPerFlush is how many games to buffer before a parquet flush.
	GamesPerFlush int `yaml:"games_per_flush"`
}

// Selfplay configures the self-play generator.
type Selfplay struct {
	Workers int `yaml:"workers"`
	// Games is the total number of games to generate; 0 means unbounded.
	Games int `yaml:"games"`
	// Seed is the base seed; game i plays with Seed+i.
	Seed uint64 `yaml:"seed"`
	// Players per generated game.
	Players int `yaml:"players"`
}

// Config is the full file. Every field has a usable default, so an absent
// or partial file is fine.
type Config struct {
	Balance  rules.Settings `yaml:"balance"`
	Archive  Archive        `yaml:"archive"`
	Selfplay Selfplay       `yaml:"selfplay"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Balance: rules.DefaultSettings,
		Archive: Archive{
			OutDir:        "data/games",
			IndexPath:     "data/games.db",
			LogPath:       "data/archived_games.log",
			GamesPerFlush: 50,
		},
		Selfplay: Selfplay{
			Workers: 4,
			Games:   100,
			Seed:    1,
			Players: 2,
		},
	}
}

// Load overlays the YAML file at path onto the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
