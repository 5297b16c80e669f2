// Package store persists completed games: turn snapshots in zstd-compressed
// Parquet batches, a SQLite index of game outcomes, and an append-only log
// of archived game IDs for dedupe.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/pir8game/engine/game"
)

// TurnRow is one archived action: who acted, what they did, and the full
// state snapshot after the action was applied.
//
// StateJSON is a self-contained raw snapshot so downstream consumers can
// featurize it however they like without re-running the engine.
type TurnRow struct {
	GameID int64  `parquet:"game_id"`
	Seed   int64  `parquet:"seed"`
	Turn   int32  `parquet:"turn"`
	Player string `parquet:"player,dict"`
	Action string `parquet:"action,dict"`

	// Event is the log message the engine emitted for this action.
	Event string `parquet:"event"`

	StateJSON []byte `parquet:"state_json,zstd"`
}

// EncodeStateJSON serializes a state snapshot for TurnRow.StateJSON.
func EncodeStateJSON(state *game.GameState) ([]byte, error) {
	if state == nil || state.Map == nil || state.Map.Size <= 0 {
		return nil, fmt.Errorf("invalid state snapshot")
	}
	return json.Marshal(state)
}

// WriteTurnsParquet writes rows to outPath via a temp file and an atomic
// rename, so readers never observe a partial file.
func WriteTurnsParquet(outPath string, rows []TurnRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.SkipPageBounds("state_json"),
		parquet.KeyValueMetadata("schema", "turn_row_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// WriteTurnBatchAtomic writes a timestamp-named batch file into outDir,
// staging it under outDir/tmp first. Returns the final path.
func WriteTurnBatchAtomic(outDir string, rows []TurnRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("batch_%d.parquet", time.Now().UnixNano())
	finalPath := filepath.Join(outDir, name)
	tmpPath := filepath.Join(tmpDir, name+".tmp")
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.SkipPageBounds("state_json"),
		parquet.KeyValueMetadata("schema", "turn_row_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}
	return finalPath, nil
}
