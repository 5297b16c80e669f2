package rules

import (
	"fmt"

	"github.com/pir8game/engine/game"
)

// Turn-layer rejection reasons.
const (
	ReasonGameNotActive    = "game not active"
	ReasonGameNotJoinable  = "game not joinable"
	ReasonGameFull         = "game full"
	ReasonAlreadyJoined    = "already joined"
	ReasonNotEnoughPlayers = "not enough players"
	ReasonNotYourTurn      = "not your turn"
	ReasonShipNotFound     = "ship not found"
	ReasonTargetNotFound   = "target ship not found"
	ReasonTargetDestroyed  = "target ship already destroyed"
	ReasonOwnShip          = "cannot attack own ship"
	ReasonNotInRange       = "ships not in range"
	ReasonInsufficient     = "insufficient resources"
	ReasonFleetLimit       = "fleet size limit reached"
	ReasonNotOwnedPort     = "not an owned port"
	ReasonNoScansRemaining = "no scan charges remaining"
	ReasonAlreadyScanned   = "coordinate already scanned"
	ReasonUnknownAction    = "unknown action"
	ReasonUnknownShipType  = "unknown ship type"
)

// Result reports whether an action was applied. Every rejection is
// recoverable: the input state is returned unchanged alongside the reason.
type Result struct {
	Accepted bool
	Reason   string
}

func reject(reason string) Result { return Result{Reason: reason} }

var phaseCycle = []game.GamePhase{
	game.PhaseDeployment,
	game.PhaseMovement,
	game.PhaseCombat,
	game.PhaseCollection,
}

// NewGame creates a fresh game in waiting status with a generated map and
// no players. The seed is retained on the state so every later randomized
// computation replays identically.
func NewGame(gameID, seed uint64, s Settings) *game.GameState {
	s = s.sanitize()
	return &game.GameState{
		GameID: gameID,
		Seed:   seed,
		Map:    GenerateMap(s.MapSize, seed),
		Status: game.StatusWaiting,
		Phase:  game.PhaseDeployment,
	}
}

// Join adds a player to a waiting game. The input state is never mutated;
// on success the returned state carries the new roster.
func Join(state *game.GameState, playerKey string, s Settings) (*game.GameState, Result) {
	s = s.sanitize()

	if state.Status != game.StatusWaiting {
		return state, reject(ReasonGameNotJoinable)
	}
	if len(state.Players) >= s.MaxPlayers {
		return state, reject(ReasonGameFull)
	}
	if state.PlayerByKey(playerKey) != nil {
		return state, reject(ReasonAlreadyJoined)
	}

	next := state.Clone()
	next.Players = append(next.Players, game.Player{
		PublicKey: playerKey,
		Active:    true,
	})
	next.Events = append(next.Events, game.Event{
		Turn:    next.TurnNumber,
		Type:    "player_joined",
		Player:  playerKey,
		Message: fmt.Sprintf("%s joined (%d players)", playerKey, len(next.Players)),
	})
	return next, Result{Accepted: true}
}

// Start transitions waiting -> active once enough players have joined:
// each slot gets its starting resources, scan charges, and a corner fleet.
func Start(state *game.GameState, s Settings) (*game.GameState, Result) {
	s = s.sanitize()

	if state.Status != game.StatusWaiting {
		return state, reject(ReasonGameNotJoinable)
	}
	if len(state.Players) < s.MinPlayers {
		return state, reject(ReasonNotEnoughPlayers)
	}

	next := state.Clone()
	for i := range next.Players {
		p := &next.Players[i]
		p.Resources = s.StartingResources
		p.ScanCharges = s.ScanCharges
		p.Ships = StartingFleet(p.PublicKey, StartingPositions(i, next.Map.Size))
	}
	next.Status = game.StatusActive
	next.Phase = game.PhaseDeployment
	next.CurrentPlayerIndex = 0
	next.TurnNumber = 1
	next.Events = append(next.Events, game.Event{
		Turn:    next.TurnNumber,
		Type:    "game_started",
		Message: fmt.Sprintf("game started with %d players", len(next.Players)),
	})
	return next, Result{Accepted: true}
}

// Apply validates and applies one action, returning the next state.
//
// This is the single mutating entry point of the engine. The input state is
// never modified: rejections hand it back untouched with a reason, and
// acceptance returns a deep-copied successor. After every applied action
// the victory evaluator runs; the first terminal condition freezes the
// state and sets the winner exactly once.
func Apply(state *game.GameState, action Action, s Settings) (*game.GameState, Result) {
	s = s.sanitize()

	if state.Status != game.StatusActive {
		return state, reject(ReasonGameNotActive)
	}
	cur := state.CurrentPlayer()
	if cur == nil || cur.PublicKey != action.Player {
		return state, reject(ReasonNotYourTurn)
	}

	next := state.Clone()
	var res Result
	consumesTurn := true

	switch action.Kind {
	case ActionMove:
		res = applyMove(next, action, s)
	case ActionAttack:
		res = applyAttack(next, action, s)
	case ActionClaim:
		res = applyClaim(next, action)
	case ActionCollect:
		res = applyCollect(next, action)
	case ActionBuild:
		res = applyBuild(next, action, s)
	case ActionScan:
		res = applyScan(next, action)
		consumesTurn = false
	case ActionPass:
		res = Result{Accepted: true}
	default:
		res = reject(ReasonUnknownAction)
	}

	if !res.Accepted {
		return state, res
	}

	if p := next.PlayerByKey(action.Player); p != nil {
		p.TotalScore = CompositeScore(p, next.Map)
	}

	if IsGameOver(next.Players, next.Map) {
		complete(next, DetermineWinner(next.Players, next.Map), VictoryCondition(next.Players, next.Map))
		return next, res
	}
	if next.TurnNumber >= s.MaxTurns {
		complete(next, RankPlayers(next.Players, next.Map), VictoryTurnLimit)
		return next, res
	}

	if consumesTurn {
		advanceTurn(next)
	} else {
		next.PendingAction = string(action.Kind)
	}
	return next, res
}

// advanceTurn moves to the next active player, clearing any pending-action
// hold. When the rotation wraps back to slot 0 the turn number increments
// and the advisory phase cycles.
func advanceTurn(state *game.GameState) {
	state.PendingAction = ""
	if len(state.Players) == 0 {
		return
	}

	next := (state.CurrentPlayerIndex + 1) % len(state.Players)
	for attempts := 0; !state.Players[next].Active && attempts < len(state.Players); attempts++ {
		next = (next + 1) % len(state.Players)
	}
	state.CurrentPlayerIndex = next

	if next == 0 {
		state.TurnNumber++
		state.Phase = nextPhase(state.Phase)
	}
}

func nextPhase(p game.GamePhase) game.GamePhase {
	for i, ph := range phaseCycle {
		if ph == p {
			return phaseCycle[(i+1)%len(phaseCycle)]
		}
	}
	return game.PhaseMovement
}

// complete freezes the state. Winner is only ever written here.
func complete(state *game.GameState, winner *game.Player, victoryType string) {
	state.Status = game.StatusCompleted
	state.PendingAction = ""
	state.VictoryType = victoryType
	msg := "game completed with no winner"
	if winner != nil {
		state.Winner = winner.PublicKey
		msg = fmt.Sprintf("game completed: %s wins by %s", winner.PublicKey, victoryType)
	}
	state.Events = append(state.Events, game.Event{
		Turn:    state.TurnNumber,
		Type:    "game_completed",
		Player:  state.Winner,
		Message: msg,
	})
}

func applyMove(state *game.GameState, action Action, s Settings) Result {
	p := state.PlayerByKey(action.Player)
	ship := p.Ship(action.ShipID)
	if ship == nil {
		return reject(ReasonShipNotFound)
	}

	if _, occupant := state.ShipAt(action.Target); occupant != nil && occupant.ID != ship.ID {
		return reject(ReasonPositionOccupied)
	}

	mv := ResolveMove(*ship, action.Target, state.Map, s)
	if !mv.Accepted {
		return reject(mv.Reason)
	}

	*ship = mv.Ship
	ship.LastActionTurn = state.TurnNumber

	msg := fmt.Sprintf("%s moved to %s", ship.ID, action.Target)
	if mv.HazardDamage > 0 {
		msg = fmt.Sprintf("%s moved to %s taking %d hazard damage", ship.ID, action.Target, mv.HazardDamage)
		if ship.Destroyed() {
			msg += " and sank"
		}
	}
	state.Events = append(state.Events, game.Event{
		Turn: state.TurnNumber, Type: "ship_moved", Player: action.Player, Message: msg,
	})
	return Result{Accepted: true}
}

func applyAttack(state *game.GameState, action Action, s Settings) Result {
	p := state.PlayerByKey(action.Player)
	attacker := p.Ship(action.ShipID)
	if attacker == nil || attacker.Destroyed() {
		return reject(ReasonShipNotFound)
	}

	var target *game.Ship
	for i := range state.Players {
		owner := &state.Players[i]
		if t := owner.Ship(action.TargetShipID); t != nil {
			if owner.PublicKey == action.Player {
				return reject(ReasonOwnShip)
			}
			target = t
			break
		}
	}
	if target == nil {
		return reject(ReasonTargetNotFound)
	}
	if target.Destroyed() {
		return reject(ReasonTargetDestroyed)
	}
	if !game.IsAdjacent(attacker.Position, target.Position) {
		return reject(ReasonNotInRange)
	}

	seed := actionSeed(state.Seed, state.TurnNumber, state.CurrentPlayerIndex, saltCombat)
	outcome := ResolveCombat(*attacker, *target, seed, s)
	*target = outcome.Defender
	attacker.LastActionTurn = state.TurnNumber

	state.Events = append(state.Events, game.Event{
		Turn: state.TurnNumber, Type: "ship_attacked", Player: action.Player, Message: outcome.Message,
	})
	return Result{Accepted: true}
}

func applyClaim(state *game.GameState, action Action) Result {
	p := state.PlayerByKey(action.Player)
	ship := p.Ship(action.ShipID)
	if ship == nil || ship.Destroyed() {
		return reject(ReasonShipNotFound)
	}

	coord := ship.Position
	claim := ClaimTerritory(action.Player, coord, state.Map)
	if !claim.Accepted {
		return reject(claim.Reason)
	}

	// Keep the per-player indexes consistent with the map: the controller
	// only writes the cell, the turn layer owns the player records.
	if claim.PreviousOwner != "" {
		if prev := state.PlayerByKey(claim.PreviousOwner); prev != nil {
			prev.RemoveTerritory(coord.String())
		}
	}
	p.AddTerritory(coord.String())
	ship.LastActionTurn = state.TurnNumber

	state.Events = append(state.Events, game.Event{
		Turn: state.TurnNumber, Type: "territory_claimed", Player: action.Player,
		Message: fmt.Sprintf("%s claimed %s", action.Player, coord),
	})
	return Result{Accepted: true}
}

func applyCollect(state *game.GameState, action Action) Result {
	p := state.PlayerByKey(action.Player)
	income := CollectIncome(p, state.Map)
	p.Resources = p.Resources.Add(income)

	state.Events = append(state.Events, game.Event{
		Turn: state.TurnNumber, Type: "resources_collected", Player: action.Player,
		Message: fmt.Sprintf("%s collected %d gold, %d crew, %d supplies", action.Player, income.Gold, income.Crew, income.Supplies),
	})
	return Result{Accepted: true}
}

func applyBuild(state *game.GameState, action Action, s Settings) Result {
	if !KnownShipType(action.ShipType) {
		return reject(ReasonUnknownShipType)
	}

	cell := state.Map.AtCoord(action.Target)
	if cell == nil || cell.Type != game.Port || cell.Owner != action.Player {
		return reject(ReasonNotOwnedPort)
	}
	if _, occupant := state.ShipAt(action.Target); occupant != nil {
		return reject(ReasonPositionOccupied)
	}

	p := state.PlayerByKey(action.Player)
	if len(p.Ships) >= s.MaxShipsPerPlayer {
		return reject(ReasonFleetLimit)
	}
	cost := ShipCost(action.ShipType)
	if !p.Resources.CanAfford(cost) {
		return reject(ReasonInsufficient)
	}

	p.Resources = p.Resources.Sub(cost)
	ship := NewShip(action.ShipType, action.Player, action.Target, len(p.Ships)+1)
	ship.LastActionTurn = state.TurnNumber
	p.Ships = append(p.Ships, ship)

	state.Events = append(state.Events, game.Event{
		Turn: state.TurnNumber, Type: "ship_built", Player: action.Player,
		Message: fmt.Sprintf("%s built a %s at %s", action.Player, action.ShipType, action.Target),
	})
	return Result{Accepted: true}
}

// applyScan reveals a cell type to the player. Scanning is a free action:
// it does not consume the turn, so the caller sees PendingAction set and
// the same player acts again.
func applyScan(state *game.GameState, action Action) Result {
	cell := state.Map.AtCoord(action.Target)
	if cell == nil {
		return reject(ReasonInvalidDestination)
	}

	p := state.PlayerByKey(action.Player)
	if p.ScanCharges <= 0 {
		return reject(ReasonNoScansRemaining)
	}
	if game.CoordinateScanned(p.ScannedCells, action.Target.X, action.Target.Y, state.Map.Size) {
		return reject(ReasonAlreadyScanned)
	}

	p.ScannedCells = game.MarkCoordinateScanned(p.ScannedCells, action.Target.X, action.Target.Y, state.Map.Size)
	p.ScanCharges--

	state.Events = append(state.Events, game.Event{
		Turn: state.TurnNumber, Type: "coordinate_scanned", Player: action.Player,
		Message: fmt.Sprintf("%s scanned %s: %s (%d charges left)", action.Player, action.Target, cell.Type, p.ScanCharges),
	})
	return Result{Accepted: true}
}
