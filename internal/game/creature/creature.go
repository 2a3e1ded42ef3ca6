// Package creature implements the combat entity: its health state machine,
// equipment, attack protocol and observer fan-out.
//
// A Creature is not safe for concurrent use. Hosts that attack the same
// creature from several goroutines must serialize those calls themselves.
package creature

import (
	"fmt"
	"sync/atomic"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

const (
	// DefaultMaxHP replaces a non-positive max HP at construction.
	DefaultMaxHP = 100
	// DefaultUnarmedDamage is the base damage of a creature with no weapon.
	DefaultUnarmedDamage = 16
	// UnknownName replaces an empty creature name.
	UnknownName = "Unknown"
	// ActionAttack is the action label reported for a regular attack.
	ActionAttack = "Attack"
)

var nextID atomic.Int64

// Attackable is anything that can be targeted by an attack. Creatures are the
// only implementation in this module; other world objects may implement it.
type Attackable interface {
	Name() string
	IsAlive() bool
	TakeDamage(damage int)
}

// Creature is a combat participant.
//
// Invariant: 0 <= HP() <= MaxHP(); MaxHP() never changes after construction;
// EquippedArmor() is never nil.
type Creature struct {
	id        int
	name      string
	hp        int
	maxHP     int
	unarmed   int
	weapon    inventory.Weapon
	armor     *inventory.ArmorSet
	archetype Archetype
	strategy  combat.Strategy
	modifier  combat.Modifier
	observers []Observer

	// X and Y are the creature's position; the world container keeps them in bounds.
	X int
	Y int
}

// New creates a creature at full health with no weapon, no armor, no observers
// and no attack strategy. Without a strategy the creature cannot attack.
//
// Postcondition: ID() is unique for the process lifetime; an empty name becomes
// UnknownName; maxHP <= 0 becomes DefaultMaxHP; HP() == MaxHP().
func New(name string, maxHP int) *Creature {
	if name == "" {
		name = UnknownName
	}
	if maxHP <= 0 {
		maxHP = DefaultMaxHP
	}
	return &Creature{
		id:        int(nextID.Add(1)),
		name:      name,
		hp:        maxHP,
		maxHP:     maxHP,
		unarmed:   DefaultUnarmedDamage,
		armor:     inventory.NewArmorSet(inventory.DefaultArmorSetName),
		archetype: Archetype{Kind: KindNone, Name: KindNone.String(), MaxHP: maxHP},
		modifier:  combat.NoModifier,
	}
}

// ID returns the creature's process-unique identifier.
func (c *Creature) ID() int { return c.id }

// Name returns the display name.
func (c *Creature) Name() string { return c.name }

// SetName renames the creature; an empty name becomes UnknownName.
func (c *Creature) SetName(name string) {
	if name == "" {
		name = UnknownName
	}
	c.name = name
}

// HP returns current hit points.
func (c *Creature) HP() int { return c.hp }

// MaxHP returns the fixed hit point ceiling.
func (c *Creature) MaxHP() int { return c.maxHP }

// IsAlive reports whether HP() > 0.
func (c *Creature) IsAlive() bool { return c.hp > 0 }

// UnarmedDamage returns the base damage used when no weapon is equipped.
func (c *Creature) UnarmedDamage() int { return c.unarmed }

// Weapon returns the equipped weapon, or nil when unarmed.
func (c *Creature) Weapon() inventory.Weapon { return c.weapon }

// EquippedArmor returns the creature's armor aggregate.
func (c *Creature) EquippedArmor() *inventory.ArmorSet { return c.armor }

// Archetype returns the variant the creature was built from. Creatures built by
// New report KindNone.
func (c *Creature) Archetype() Archetype { return c.archetype }

// Strategy returns the active attack strategy, or nil.
func (c *Creature) Strategy() combat.Strategy { return c.strategy }

// SetHP is the health setter. The value is clamped into [0, MaxHP()]. When the
// creature goes from positive HP to zero, observers receive OnDied exactly once.
//
// Postcondition: 0 <= HP() <= MaxHP().
func (c *Creature) SetHP(hp int) {
	old := c.hp
	if hp > c.maxHP {
		hp = c.maxHP
	}
	if hp < 0 {
		hp = 0
	}
	c.hp = hp
	if old > 0 && c.hp <= 0 {
		c.notifyDied()
	}
}

// EquipWeapon replaces the equipped weapon.
//
// Postcondition: returns false and changes nothing when w is nil or a nil
// pointer; otherwise
// Weapon() == w and returns true.
func (c *Creature) EquipWeapon(w inventory.Weapon) bool {
	if inventory.IsNil(w) {
		return false
	}
	c.weapon = w
	return true
}

// UnequipWeapon removes and returns the equipped weapon, or nil when unarmed.
func (c *Creature) UnequipWeapon() inventory.Weapon {
	w := c.weapon
	c.weapon = nil
	return w
}

// SetStrategy swaps the attack strategy. A nil strategy is ignored.
func (c *Creature) SetStrategy(s combat.Strategy) {
	if s == nil {
		return
	}
	c.strategy = s
}

// PerformAttack runs the attack protocol against target at range rng:
// strategy base damage, archetype modifier, OnDamageDone on this creature's
// observers, then target.TakeDamage.
//
// It does nothing when this creature is dead or has no strategy, or when the
// target is nil or dead. A negative rng is treated as 0.
func (c *Creature) PerformAttack(target Attackable, rng int) {
	if !c.IsAlive() || c.strategy == nil || isNilTarget(target) || !target.IsAlive() {
		return
	}
	if rng < 0 {
		rng = 0
	}

	dmg := c.strategy.Attack(c, rng)
	dmg = c.modifier(c, dmg)
	if dmg < 0 {
		dmg = 0
	}

	c.notifyDamageDone(ActionAttack, target, dmg)
	target.TakeDamage(dmg)
}

// TakeDamage applies incoming damage after armor mitigation. Observers receive
// OnHit before HP changes; OnDied follows if the hit is lethal.
//
// Postcondition: mitigated == min(damage, defense); taken == max(damage-defense, 0);
// HP() decreased by taken, floored at 0.
func (c *Creature) TakeDamage(damage int) {
	if damage < 0 {
		damage = 0
	}
	defense := c.armor.TotalValue()
	mitigated := damage
	if defense < damage {
		mitigated = defense
	}
	taken := damage - defense
	if taken < 0 {
		taken = 0
	}

	c.notifyHit(ActionAttack, taken, mitigated)
	c.SetHP(c.hp - taken)
}

// String renders a one-line status summary.
func (c *Creature) String() string {
	weapon := "Unarmed"
	if c.weapon != nil {
		weapon = c.weapon.Name()
		if weapon == "" {
			weapon = "Unnamed Weapon"
		}
	}
	status := "Alive"
	if !c.IsAlive() {
		status = "Dead"
	}
	return fmt.Sprintf("[Creature: %s] ID: %d - HP: %d/%d - Status: %s - Weapon: %s - Armor: %d pieces (%d defense) - Position: (%d, %d)",
		c.name, c.id, c.hp, c.maxHP, status, weapon,
		c.armor.ItemCount(), c.armor.TotalValue(), c.X, c.Y)
}

// isNilTarget catches both a nil interface and a nil pointer wrapped in one.
func isNilTarget(t Attackable) bool {
	return inventory.IsNil(t)
}
