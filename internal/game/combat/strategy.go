package combat

import (
	"fmt"
	"strings"
)

const (
	// RangedBonusRange is the minimum range at which RangedStrategy applies its bonus.
	RangedBonusRange = 20
)

// Strategy computes an attacker's base damage for one attack.
//
// Implementations must be pure: no side effects and no notifications.
type Strategy interface {
	// Attack returns the base damage dealt by a at range rng.
	//
	// Precondition: a is non-nil; rng >= 0.
	// Postcondition: Returns >= 0.
	Attack(a Attacker, rng int) int
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(a Attacker, rng int) int

// Attack calls f.
func (f StrategyFunc) Attack(a Attacker, rng int) int { return f(a, rng) }

// MeleeStrategy hits harder when the attacker is badly hurt. Range is ignored.
type MeleeStrategy struct{}

// Attack returns BaseDamage(a), multiplied by 1.5 when HP is below half of MaxHP
// (integer division on the threshold).
func (MeleeStrategy) Attack(a Attacker, _ int) int {
	dmg := BaseDamage(a)
	if a.HP() < a.MaxHP()/2 {
		dmg = bonus(dmg)
	}
	return dmg
}

// String returns "melee".
func (MeleeStrategy) String() string { return "melee" }

// RangedStrategy hits harder at long range. Attacker HP is ignored.
type RangedStrategy struct{}

// Attack returns BaseDamage(a), multiplied by 1.5 when rng >= RangedBonusRange.
func (RangedStrategy) Attack(a Attacker, rng int) int {
	dmg := BaseDamage(a)
	if rng >= RangedBonusRange {
		dmg = bonus(dmg)
	}
	return dmg
}

// String returns "ranged".
func (RangedStrategy) String() string { return "ranged" }

// StrategyByName resolves a content-file strategy name.
//
// Postcondition: Returns the strategy for "melee" or "ranged" (case-insensitive), or an error.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "melee":
		return MeleeStrategy{}, nil
	case "ranged":
		return RangedStrategy{}, nil
	default:
		return nil, fmt.Errorf("combat: unknown strategy %q", name)
	}
}
