package creature

import (
	"reflect"

	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

// Observer receives combat notifications from the creatures it is attached to.
// Callbacks run synchronously inside PerformAttack/TakeDamage, in attachment order.
//
// Observers are compared by identity, so implementations should be pointer types.
// Observers whose dynamic value is not comparable are never considered equal.
type Observer interface {
	// OnDamageDone fires on the attacker's observers once final damage is known,
	// before the target takes it.
	OnDamageDone(attacker *Creature, action string, target Attackable, damage int)
	// OnHit fires on the target's observers after mitigation and before HP changes.
	OnHit(c *Creature, action string, taken, mitigated int)
	// OnDied fires on the target's observers when HP goes from positive to zero.
	OnDied(c *Creature)
}

// Attach registers o. A nil observer (including a nil pointer in a non-nil
// interface) or an already-attached observer is ignored.
func (c *Creature) Attach(o Observer) {
	if inventory.IsNil(o) {
		return
	}
	for _, existing := range c.observers {
		if sameObserver(existing, o) {
			return
		}
	}
	c.observers = append(c.observers, o)
}

// Detach removes o. Detaching an observer that is not attached is a no-op.
func (c *Creature) Detach(o Observer) {
	for i, existing := range c.observers {
		if sameObserver(existing, o) {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// Observers returns a copy of the attached observers in attachment order.
func (c *Creature) Observers() []Observer {
	out := make([]Observer, len(c.observers))
	copy(out, c.observers)
	return out
}

// snapshot returns the current observer list, so callbacks that attach or
// detach do not disturb an in-flight fan-out.
func (c *Creature) snapshot() []Observer {
	if len(c.observers) == 0 {
		return nil
	}
	return c.Observers()
}

func (c *Creature) notifyDamageDone(action string, target Attackable, damage int) {
	for _, o := range c.snapshot() {
		o.OnDamageDone(c, action, target, damage)
	}
}

func (c *Creature) notifyHit(action string, taken, mitigated int) {
	for _, o := range c.snapshot() {
		o.OnHit(c, action, taken, mitigated)
	}
}

func (c *Creature) notifyDied() {
	for _, o := range c.snapshot() {
		o.OnDied(c)
	}
}

func sameObserver(a, b Observer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
