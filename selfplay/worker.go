// Package selfplay plays complete games against the rules engine with a
// deterministic heuristic policy and turns them into archive rows.
package selfplay

import (
	"context"
	"fmt"

	"github.com/pir8game/engine/game"
	"github.com/pir8game/engine/rules"
	"github.com/pir8game/engine/store"
)

// GameResult is one finished self-play game.
type GameResult struct {
	Final *game.GameState
	Rows  []store.TurnRow
	Steps int
}

// PlayGame runs one game to completion and snapshots every applied action.
// The same (gameID, seed, players, settings) always produces the same game.
// ctx cancellation abandons the game between actions.
func PlayGame(ctx context.Context, gameID, seed uint64, players int, s rules.Settings, trace bool) (GameResult, error) {
	if players < 2 {
		players = 2
	}

	state := rules.NewGame(gameID, seed, s)
	for i := 0; i < players; i++ {
		var res rules.Result
		state, res = rules.Join(state, fmt.Sprintf("bot-%d", i+1), s)
		if !res.Accepted {
			return GameResult{}, fmt.Errorf("join bot-%d: %s", i+1, res.Reason)
		}
	}
	var res rules.Result
	state, res = rules.Start(state, s)
	if !res.Accepted {
		return GameResult{}, fmt.Errorf("start: %s", res.Reason)
	}

	result := GameResult{}
	// Hard cap in case a policy change ever stops making progress. Free
	// scans are bounded by charges, so this is generous.
	maxSteps := s.MaxTurns * players * 4

	for state.Status == game.StatusActive && result.Steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		action := ChooseAction(state, s)
		next, res := rules.Apply(state, action, s)
		if !res.Accepted {
			// The policy mirrors the validators, so this is unexpected;
			// pass rather than spin.
			action = rules.Action{Kind: rules.ActionPass, Player: action.Player}
			next, res = rules.Apply(state, action, s)
			if !res.Accepted {
				return GameResult{}, fmt.Errorf("pass rejected: %s", res.Reason)
			}
		}

		row, err := snapshotRow(gameID, seed, next, action)
		if err != nil {
			return GameResult{}, err
		}
		result.Rows = append(result.Rows, row)
		result.Steps++

		if trace && next.CurrentPlayerIndex == 0 && next.TurnNumber != state.TurnNumber {
			PrintBoard(next)
		}
		state = next
	}

	if state.Status != game.StatusCompleted {
		return GameResult{}, fmt.Errorf("game %d did not complete within %d steps", gameID, maxSteps)
	}
	result.Final = state
	return result, nil
}

func snapshotRow(gameID, seed uint64, state *game.GameState, action rules.Action) (store.TurnRow, error) {
	blob, err := store.EncodeStateJSON(state)
	if err != nil {
		return store.TurnRow{}, fmt.Errorf("encode snapshot: %w", err)
	}

	event := ""
	if n := len(state.Events); n > 0 {
		event = state.Events[n-1].Message
	}

	return store.TurnRow{
		GameID:    int64(gameID),
		Seed:      int64(seed),
		Turn:      int32(state.TurnNumber),
		Player:    action.Player,
		Action:    string(action.Kind),
		Event:     event,
		StateJSON: blob,
	}, nil
}

// Record converts a finished game into its index entry.
func Record(result GameResult, batchFile string) store.GameRecord {
	final := result.Final
	return store.GameRecord{
		GameID:      final.GameID,
		Seed:        final.Seed,
		Players:     len(final.Players),
		Winner:      final.Winner,
		VictoryType: final.VictoryType,
		Turns:       final.TurnNumber,
		BatchFile:   batchFile,
	}
}
