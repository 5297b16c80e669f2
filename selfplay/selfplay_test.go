package selfplay

import (
	"context"
	"reflect"
	"testing"

	"github.com/pir8game/engine/game"
	"github.com/pir8game/engine/rules"
)

func TestPlayGame_Completes(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		res, err := PlayGame(context.Background(), seed, seed, 2, rules.DefaultSettings, false)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if res.Final.Status != game.StatusCompleted {
			t.Fatalf("seed %d: status = %s", seed, res.Final.Status)
		}
		if res.Final.VictoryType == "" {
			t.Fatalf("seed %d: no victory type recorded", seed)
		}
		if len(res.Rows) != res.Steps || res.Steps == 0 {
			t.Fatalf("seed %d: rows=%d steps=%d", seed, len(res.Rows), res.Steps)
		}
	}
}

func TestPlayGame_Deterministic(t *testing.T) {
	run := func() GameResult {
		res, err := PlayGame(context.Background(), 7, 1234, 2, rules.DefaultSettings, false)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a.Final, b.Final) {
		t.Fatal("same seed produced different final states")
	}
	if !reflect.DeepEqual(a.Rows, b.Rows) {
		t.Fatal("same seed produced different archive rows")
	}
}

func TestPlayGame_FourPlayers(t *testing.T) {
	res, err := PlayGame(context.Background(), 11, 42, 4, rules.DefaultSettings, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(res.Final.Players); got != 4 {
		t.Fatalf("players = %d want 4", got)
	}
	if res.Final.Status != game.StatusCompleted {
		t.Fatalf("status = %s", res.Final.Status)
	}
}

func TestPlayGame_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := PlayGame(ctx, 1, 1, 2, rules.DefaultSettings, false); err == nil {
		t.Fatal("cancelled context must abort the game")
	}
}

func TestRecord(t *testing.T) {
	res, err := PlayGame(context.Background(), 21, 99, 2, rules.DefaultSettings, false)
	if err != nil {
		t.Fatal(err)
	}
	rec := Record(res, "data/games/batch_1.parquet")
	if rec.GameID != 21 || rec.Seed != 99 || rec.Players != 2 {
		t.Fatalf("record = %+v", rec)
	}
	if rec.VictoryType != res.Final.VictoryType || rec.Turns != res.Final.TurnNumber {
		t.Fatalf("record outcome mismatch: %+v", rec)
	}
	if rec.BatchFile != "data/games/batch_1.parquet" {
		t.Fatalf("batch file = %q", rec.BatchFile)
	}
}
