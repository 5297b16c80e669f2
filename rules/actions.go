package rules

import "github.com/pir8game/engine/game"

// ActionKind discriminates the action descriptors the submission layer can
// send. Phases do not hard-gate which kinds are legal; see turns.go.
type ActionKind string

const (
	ActionMove    ActionKind = "move"
	ActionAttack  ActionKind = "attack"
	ActionClaim   ActionKind = "claim"
	ActionCollect ActionKind = "collect"
	ActionBuild   ActionKind = "build"
	ActionScan    ActionKind = "scan"
	ActionPass    ActionKind = "pass"
)

// Action is one proposed step: plain data in, so the same descriptor can be
// replayed against the authoritative layer byte-for-byte.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Player string     `json:"player"`

	// ShipID selects the acting ship for move, attack, and claim.
	ShipID string `json:"ship_id,omitempty"`

	// TargetShipID selects the defender for attack.
	TargetShipID string `json:"target_ship_id,omitempty"`

	// Target is the destination for move, the build site for build, and
	// the revealed cell for scan.
	Target game.Coordinate `json:"target,omitempty"`

	// ShipType selects the hull for build.
	ShipType game.ShipType `json:"ship_type,omitempty"`
}

// saltCombat keeps the combat stream independent of any other per-action
// randomness added later.
const saltCombat = 0x434f4d424154 // "COMBAT"
