// Command selfplay generates complete games with the deterministic policy
// and archives them: turn snapshots into parquet batches, outcomes into the
// SQLite index, and game IDs into the dedupe log.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pir8game/engine/config"
	"github.com/pir8game/engine/logging"
	"github.com/pir8game/engine/selfplay"
	"github.com/pir8game/engine/store"
)

func main() {
	configPath := flag.String("config", getEnvOrDefault("PIR8_CONFIG", ""), "Optional YAML config file")
	outDir := flag.String("out-dir", getEnvOrDefault("OUT_DIR", ""), "Directory for batch .parquet files (overrides config)")
	workers := flag.Int("workers", getEnvIntOrDefault("WORKERS", 0), "Number of self-play workers (overrides config)")
	games := flag.Int("games", getEnvIntOrDefault("GAMES", 0), "Total games to generate (overrides config)")
	players := flag.Int("players", getEnvIntOrDefault("PLAYERS", 0), "Players per game (overrides config)")
	seed := flag.Uint64("seed", 0, "Base seed; game i plays with seed+i (overrides config)")
	flushGames := flag.Int("games-per-flush", 0, "Games buffered per parquet flush (overrides config)")
	trace := flag.Bool("trace", false, "Print an ASCII board each turn of worker 0's games")
	flag.Parse()

	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Archive.OutDir = *outDir
	}
	if *workers > 0 {
		cfg.Selfplay.Workers = *workers
	}
	if *games > 0 {
		cfg.Selfplay.Games = *games
	}
	if *players > 0 {
		cfg.Selfplay.Players = *players
	}
	if *seed > 0 {
		cfg.Selfplay.Seed = *seed
	}
	if *flushGames > 0 {
		cfg.Archive.GamesPerFlush = *flushGames
	}

	archived, err := store.OpenArchivedLog(cfg.Archive.LogPath)
	if err != nil {
		slog.Error("open archived log", "path", cfg.Archive.LogPath, "err", err)
		os.Exit(1)
	}
	defer archived.Close()

	index, err := store.OpenIndex(cfg.Archive.IndexPath)
	if err != nil {
		slog.Error("open index", "path", cfg.Archive.IndexPath, "err", err)
		os.Exit(1)
	}
	defer index.Close()

	slog.Info("starting self-play",
		"workers", cfg.Selfplay.Workers,
		"games", cfg.Selfplay.Games,
		"players", cfg.Selfplay.Players,
		"seed", cfg.Selfplay.Seed,
		"out_dir", cfg.Archive.OutDir,
		"already_archived", archived.Count(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := make(chan selfplay.GameResult, cfg.Selfplay.Workers)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		writerLoop(cfg, archived, index, results)
	}()

	var nextGame atomic.Uint64
	var generated atomic.Int64
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < cfg.Selfplay.Workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				i := nextGame.Add(1) - 1
				if cfg.Selfplay.Games > 0 && i >= uint64(cfg.Selfplay.Games) {
					return
				}

				gameID := i + 1
				if archived.Has(gameID) {
					continue
				}

				res, err := selfplay.PlayGame(ctx, gameID, cfg.Selfplay.Seed+i, cfg.Selfplay.Players, cfg.Balance, *trace && workerID == 0)
				if err != nil {
					if ctx.Err() == nil {
						slog.Error("game failed", "worker", workerID, "game", gameID, "err", err)
					}
					continue
				}

				slog.Info("game finished",
					"worker", workerID,
					"game", gameID,
					"winner", res.Final.Winner,
					"victory", res.Final.VictoryType,
					"turns", res.Final.TurnNumber,
					"rows", len(res.Rows),
				)
				generated.Add(1)

				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(results)
	<-writerDone

	total, byVictory, err := index.Stats()
	if err != nil {
		slog.Error("index stats", "err", err)
	} else {
		slog.Info("archive stats", "games", total, "by_victory", byVictory)
	}

	slog.Info("self-play done",
		"games", generated.Load(),
		"duration", time.Since(start).Round(time.Second).String(),
	)
}

// writerLoop streams finished games into a batch writer and rotates it at
// the flush threshold, indexing each flushed game and marking it archived.
// Running it on a single goroutine keeps the batch writer free of locking.
func writerLoop(cfg config.Config, archived *store.ArchivedLog, index *store.Index, in <-chan selfplay.GameResult) {
	flushEvery := cfg.Archive.GamesPerFlush
	if flushEvery <= 0 {
		flushEvery = 50
	}

	var batch *store.BatchWriter
	var pending []selfplay.GameResult

	flush := func() {
		if batch == nil {
			return
		}
		outPath, rows, games, err := batch.Finalize()
		batch = nil
		if err != nil {
			slog.Error("parquet flush failed", "games", games, "err", err)
			pending = pending[:0]
			return
		}
		if outPath == "" {
			pending = pending[:0]
			return
		}

		records := make([]store.GameRecord, 0, len(pending))
		ids := make([]uint64, 0, len(pending))
		for _, g := range pending {
			records = append(records, selfplay.Record(g, outPath))
			ids = append(ids, g.Final.GameID)
		}
		if err := index.InsertGames(records); err != nil {
			slog.Error("index insert failed", "err", err)
		}
		if err := archived.AddMany(ids); err != nil {
			slog.Error("archived log append failed", "err", err)
		}

		slog.Info("parquet flush ok", "path", outPath, "games", games, "rows", rows)
		pending = pending[:0]
	}

	for res := range in {
		if batch == nil {
			b, err := store.NewBatchWriter(cfg.Archive.OutDir)
			if err != nil {
				slog.Error("open batch writer", "dir", cfg.Archive.OutDir, "err", err)
				continue
			}
			batch = b
		}
		if err := batch.WriteGame(res.Rows); err != nil {
			slog.Error("batch write failed", "game", res.Final.GameID, "err", err)
			continue
		}
		pending = append(pending, res)

		if batch.BufferedGames() >= flushEvery {
			flush()
		}
	}
	flush()
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
