package entities

import (
	"testing"

	"github.com/gonewx/bladefury/pkg/types"
)

func TestNewDefenseUsesStatTemplate(t *testing.T) {
	tuning := newTestTuning()

	for _, kind := range types.DefenseKinds {
		t.Run(kind.String(), func(t *testing.T) {
			stats, _ := tuning.DefenseStatsFor(kind)
			d := newTestDefense(tuning, kind, 200, 200)

			if d.Kind != kind {
				t.Errorf("Expected kind %v, got %v", kind, d.Kind)
			}
			if d.Health != stats.Health || d.MaxHealth != stats.Health {
				t.Errorf("Expected health %d, got %d/%d", stats.Health, d.Health, d.MaxHealth)
			}
			if d.Damage != stats.Damage || d.AttackRange != stats.AttackRange || d.FireRate != stats.FireRateMs {
				t.Errorf("Combat stats mismatch: %+v vs %+v", d, stats)
			}
		})
	}
}

func TestDefenseShouldAttack(t *testing.T) {
	tuning := newTestTuning()
	player := NewPlayer(tuning, 200, 400)

	d := newTestDefense(tuning, types.DefenseArcherTower, 200, 200) // 距离 200，箭塔射程 300

	if !d.ShouldAttack(0, player) {
		t.Fatal("Fresh defense with player in range should fire")
	}
	if d.LastAttackTime != 0 {
		t.Errorf("Expected cooldown stamped at 0, got %d", d.LastAttackTime)
	}
	if d.ShouldAttack(d.FireRate-1, player) {
		t.Error("Defense should not fire before its fire rate elapses")
	}
	if !d.ShouldAttack(d.FireRate, player) {
		t.Error("Defense should fire once the fire rate has elapsed")
	}
}

func TestDefenseShouldAttackOutOfRange(t *testing.T) {
	tuning := newTestTuning()
	player := NewPlayer(tuning, 700, 500)
	d := newTestDefense(tuning, types.DefenseCannon, 100, 100)
	before := d.LastAttackTime

	if d.ShouldAttack(5000, player) {
		t.Error("Defense should not fire at a player outside its range")
	}
	if d.LastAttackTime != before {
		t.Error("Out-of-range check must not stamp the cooldown")
	}
}
