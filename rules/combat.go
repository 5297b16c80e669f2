package rules

import (
	"fmt"
	"math"

	"github.com/pir8game/engine/game"
)

// CombatResult is the outcome of one directed exchange: attacker fires,
// defender takes damage. The attacker takes none here; counter-fire is a
// second call with the roles swapped and the defender's post-damage health
// as its health input (health scales damage output, so a wounded ship hits
// softer on the counter).
type CombatResult struct {
	Damage    int
	Defender  game.Ship
	Destroyed bool
	Message   string
}

// ResolveCombat computes the damage one ship deals another.
//
// Canonical formula (the single rule used on both sides of the simulation):
//
//	damage = max(MinimumDamage, round((attack - defense) * health/100 * variance))
//
// where health/100 scales output by the attacker's remaining health and
// variance is drawn uniformly from [1-v, 1+v] off the supplied seed. The
// floor is applied last so defense can never fully negate an attack.
// Defender health clamps at zero; Destroyed is true iff it lands exactly
// on zero. Neither input ship is mutated.
func ResolveCombat(attacker, defender game.Ship, seed uint64, s Settings) CombatResult {
	s = s.sanitize()

	base := attacker.Attack - defender.Defense
	if base < 0 {
		base = 0
	}

	healthScale := float64(attacker.Health) / 100
	variance := varianceFactor(seed, s.CombatVariance)

	damage := int(math.Round(float64(base) * healthScale * variance))
	if damage < s.MinimumDamage {
		damage = s.MinimumDamage
	}

	hit := defender
	hit.Health -= damage
	if hit.Health < 0 {
		hit.Health = 0
	}

	res := CombatResult{
		Damage:    damage,
		Defender:  hit,
		Destroyed: hit.Health == 0,
	}
	if res.Destroyed {
		res.Message = fmt.Sprintf("%s dealt %d damage and sank %s", attacker.ID, damage, defender.ID)
	} else {
		res.Message = fmt.Sprintf("%s dealt %d damage to %s (%d health left)", attacker.ID, damage, defender.ID, hit.Health)
	}
	return res
}
