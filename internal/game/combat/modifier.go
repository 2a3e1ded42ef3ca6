package combat

import (
	"fmt"
	"strings"
)

const (
	// WarriorBonus is the flat damage added by WarriorModifier.
	WarriorBonus = 10
	// WarriorThreshold is the absolute HP below which WarriorModifier applies.
	WarriorThreshold = 50
	// MageBonus is the flat damage added by MageModifier.
	MageBonus = 10
	// MageThreshold is the absolute HP above which MageModifier applies.
	MageThreshold = 80
)

// Modifier adjusts a strategy's base damage for the attacking archetype.
// It runs after the strategy and before the damage-done notification.
type Modifier func(a Attacker, base int) int

// NoModifier returns base unchanged.
func NoModifier(_ Attacker, base int) int { return base }

// WarriorModifier adds WarriorBonus while the attacker has fewer than
// WarriorThreshold hit points. The threshold is absolute, not a share of MaxHP.
func WarriorModifier(a Attacker, base int) int {
	if a.HP() < WarriorThreshold {
		return base + WarriorBonus
	}
	return base
}

// MageModifier adds MageBonus while the attacker has more than MageThreshold
// hit points. The threshold is absolute, not a share of MaxHP.
func MageModifier(a Attacker, base int) int {
	if a.HP() > MageThreshold {
		return base + MageBonus
	}
	return base
}

// ModifierByName resolves a built-in modifier name: "none" (or empty), "warrior", "mage".
func ModifierByName(name string) (Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoModifier, nil
	case "warrior":
		return WarriorModifier, nil
	case "mage":
		return MageModifier, nil
	default:
		return nil, fmt.Errorf("combat: unknown modifier %q", name)
	}
}
