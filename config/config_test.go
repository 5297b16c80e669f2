package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Balance.MapSize != 10 || cfg.Archive.GamesPerFlush != 50 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoad_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pir8.yaml")
	body := `
balance:
  map_size: 8
  max_turns: 30
selfplay:
  workers: 2
  seed: 99
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Balance.MapSize != 8 || cfg.Balance.MaxTurns != 30 {
		t.Fatalf("balance overlay = %+v", cfg.Balance)
	}
	// Untouched fields keep their defaults.
	if cfg.Balance.MinimumDamage != 10 {
		t.Fatalf("minimum damage = %d want default 10", cfg.Balance.MinimumDamage)
	}
	if cfg.Selfplay.Workers != 2 || cfg.Selfplay.Seed != 99 {
		t.Fatalf("selfplay overlay = %+v", cfg.Selfplay)
	}
	if cfg.Archive.OutDir != "data/games" {
		t.Fatalf("archive section lost its default: %+v", cfg.Archive)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("balance: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
