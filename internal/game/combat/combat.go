// Package combat implements the damage algorithms used when one creature
// attacks another: swappable attack strategies and per-archetype modifiers.
// Everything here is a pure function of attacker state; notification and HP
// mutation belong to the creature.
package combat

import "github.com/cory-johannsen/skirmish/internal/game/inventory"

// Attacker is the read-only view of a creature that strategies and modifiers need.
type Attacker interface {
	HP() int
	MaxHP() int
	UnarmedDamage() int
	// Weapon returns the equipped weapon, or nil when unarmed.
	Weapon() inventory.Weapon
}

// BaseDamage returns the damage a has before any strategy bonus: the equipped
// weapon's damage, or the unarmed damage when nothing is equipped.
//
// Postcondition: Returns >= 0.
func BaseDamage(a Attacker) int {
	dmg := a.UnarmedDamage()
	if w := a.Weapon(); w != nil {
		dmg = w.Damage()
	}
	if dmg < 0 {
		return 0
	}
	return dmg
}

// bonus applies the shared x1.5 multiplier, truncating toward zero.
func bonus(dmg int) int {
	return dmg * 3 / 2
}
