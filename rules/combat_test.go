package rules

import (
	"testing"

	"github.com/pir8game/engine/game"
)

func TestResolveCombat_MinimumDamageFloor(t *testing.T) {
	// Sloop (attack 20) against flagship (defense 60): base damage is
	// negative, so the floor must carry the whole hit.
	attacker := NewShip(game.Sloop, "alice", game.Coordinate{X: 0, Y: 0}, 1)
	defender := NewShip(game.Flagship, "bob", game.Coordinate{X: 1, Y: 0}, 1)

	for seed := uint64(0); seed < 20; seed++ {
		res := ResolveCombat(attacker, defender, seed, DefaultSettings)
		if res.Damage != DefaultSettings.MinimumDamage {
			t.Fatalf("seed %d: damage = %d want floor %d", seed, res.Damage, DefaultSettings.MinimumDamage)
		}
		if res.Defender.Health != defender.MaxHealth-res.Damage {
			t.Fatalf("seed %d: defender health = %d", seed, res.Defender.Health)
		}
		if res.Destroyed {
			t.Fatalf("seed %d: flagship sunk by a floor hit", seed)
		}
	}
}

func TestResolveCombat_VarianceBounds(t *testing.T) {
	// Full-health flagship (attack 80) against sloop (defense 10): base 70,
	// so damage must land in [round(70*0.85), round(70*1.15)] = [60, 81].
	attacker := NewShip(game.Flagship, "alice", game.Coordinate{X: 0, Y: 0}, 1)
	defender := NewShip(game.Sloop, "bob", game.Coordinate{X: 1, Y: 0}, 1)

	for seed := uint64(0); seed < 200; seed++ {
		res := ResolveCombat(attacker, defender, seed, DefaultSettings)
		if res.Damage < 60 || res.Damage > 81 {
			t.Fatalf("seed %d: damage %d outside variance bounds [60, 81]", seed, res.Damage)
		}
	}
}

func TestResolveCombat_HealthScalesDamage(t *testing.T) {
	attacker := NewShip(game.Flagship, "alice", game.Coordinate{X: 0, Y: 0}, 1)
	defender := NewShip(game.Sloop, "bob", game.Coordinate{X: 1, Y: 0}, 1)

	wounded := attacker
	wounded.Health = attacker.MaxHealth / 2

	full := ResolveCombat(attacker, defender, 7, DefaultSettings)
	half := ResolveCombat(wounded, defender, 7, DefaultSettings)
	if half.Damage >= full.Damage {
		t.Fatalf("wounded attacker dealt %d, full-health dealt %d", half.Damage, full.Damage)
	}
}

func TestResolveCombat_Deterministic(t *testing.T) {
	attacker := NewShip(game.Frigate, "alice", game.Coordinate{X: 0, Y: 0}, 1)
	defender := NewShip(game.Sloop, "bob", game.Coordinate{X: 1, Y: 0}, 1)

	a := ResolveCombat(attacker, defender, 1234, DefaultSettings)
	b := ResolveCombat(attacker, defender, 1234, DefaultSettings)
	if a.Damage != b.Damage || a.Defender != b.Defender {
		t.Fatal("same seed must produce identical combat results")
	}
}

func TestResolveCombat_DestroyedOnZero(t *testing.T) {
	attacker := NewShip(game.Flagship, "alice", game.Coordinate{X: 0, Y: 0}, 1)
	defender := NewShip(game.Sloop, "bob", game.Coordinate{X: 1, Y: 0}, 1)
	defender.Health = 5

	res := ResolveCombat(attacker, defender, 3, DefaultSettings)
	if res.Defender.Health != 0 {
		t.Fatalf("health = %d want 0 (clamped)", res.Defender.Health)
	}
	if !res.Destroyed {
		t.Fatal("defender at zero health must report destroyed")
	}
}

func TestResolveCombat_DoesNotMutateInputs(t *testing.T) {
	attacker := NewShip(game.Frigate, "alice", game.Coordinate{X: 0, Y: 0}, 1)
	defender := NewShip(game.Sloop, "bob", game.Coordinate{X: 1, Y: 0}, 1)

	_ = ResolveCombat(attacker, defender, 9, DefaultSettings)
	if defender.Health != defender.MaxHealth {
		t.Fatal("ResolveCombat mutated the defender input")
	}
	if attacker.Health != attacker.MaxHealth {
		t.Fatal("ResolveCombat mutated the attacker input")
	}
}
