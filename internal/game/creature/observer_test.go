package creature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/observer"
)

func TestAttach_Idempotent(t *testing.T) {
	c := creature.New("x", 100)
	rec := observer.NewRecorder()
	c.Attach(rec)
	c.Attach(rec)
	c.Attach(nil)
	assert.Len(t, c.Observers(), 1)

	c.TakeDamage(1)
	assert.Equal(t, 1, rec.Count(observer.EventHit))
}

func TestAttach_IgnoresNilPointer(t *testing.T) {
	c := creature.New("x", 100)
	var rec *observer.Recorder
	c.Attach(rec)
	assert.Empty(t, c.Observers())

	assert.NotPanics(t, func() { c.TakeDamage(10) })
	assert.Equal(t, 90, c.HP())
}

// tally is an Observer whose value is not comparable.
type tally struct {
	seen []string
}

func (tally) OnDamageDone(*creature.Creature, string, creature.Attackable, int) {}
func (tally) OnHit(*creature.Creature, string, int, int)                        {}
func (tally) OnDied(*creature.Creature)                                         {}

func TestAttach_NonComparableObserver(t *testing.T) {
	c := creature.New("x", 100)
	o := tally{seen: []string{"a"}}

	assert.NotPanics(t, func() {
		c.Attach(o)
		c.Attach(o)
		c.Detach(o)
		c.TakeDamage(1)
	})
	assert.Len(t, c.Observers(), 2)
}

func TestDetach(t *testing.T) {
	c := creature.New("x", 100)
	a, b := observer.NewRecorder(), observer.NewRecorder()
	c.Attach(a)
	c.Attach(b)
	c.Detach(a)
	c.Detach(a)

	c.TakeDamage(5)
	assert.Zero(t, a.Count(observer.EventHit))
	assert.Equal(t, 1, b.Count(observer.EventHit))
	assert.Equal(t, []creature.Observer{b}, c.Observers())
}

// detachingObserver removes itself from its creature on the first hit.
type detachingObserver struct {
	observer.Recorder
}

func (d *detachingObserver) OnHit(c *creature.Creature, action string, taken, mitigated int) {
	d.Recorder.OnHit(c, action, taken, mitigated)
	c.Detach(d)
}

func TestNotify_SnapshotTolerantOfDetach(t *testing.T) {
	c := creature.New("x", 100)
	first := &detachingObserver{}
	second := observer.NewRecorder()
	c.Attach(first)
	c.Attach(second)

	c.TakeDamage(10)
	assert.Equal(t, 1, first.Count(observer.EventHit))
	assert.Equal(t, 1, second.Count(observer.EventHit), "fan-out completes after a mid-loop detach")

	c.TakeDamage(10)
	assert.Equal(t, 1, first.Count(observer.EventHit))
	assert.Equal(t, 2, second.Count(observer.EventHit))
}

func TestNotify_AttachmentOrder(t *testing.T) {
	c := creature.New("x", 100)
	var order []string
	c.Attach(&orderObserver{name: "a", order: &order})
	c.Attach(&orderObserver{name: "b", order: &order})
	c.TakeDamage(1)
	assert.Equal(t, []string{"a", "b"}, order)
}

type orderObserver struct {
	name  string
	order *[]string
}

func (o *orderObserver) OnDamageDone(*creature.Creature, string, creature.Attackable, int) {}
func (o *orderObserver) OnHit(*creature.Creature, string, int, int)                       { *o.order = append(*o.order, o.name) }
func (o *orderObserver) OnDied(*creature.Creature)                                        {}
