package observer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/observer"
)

func duel(t *testing.T, o creature.Observer) (attacker, target *creature.Creature) {
	t.Helper()
	attacker = creature.NewHunter("legolas")
	attacker.EquipWeapon(inventory.NewAttackItem("Bow", inventory.CategoryBow, 80, 30))
	target = creature.New("orc", 100)
	target.EquippedArmor().Add(inventory.NewArmor("Hide", inventory.SlotChest, inventory.MaterialLeather, 5))
	attacker.Attach(o)
	target.Attach(o)
	attacker.PerformAttack(target, 30)
	return attacker, target
}

func TestCombatLogger(t *testing.T) {
	core, logs := zapobserver.New(zapcore.InfoLevel)
	attacker, target := duel(t, observer.NewCombatLogger(zap.New(core)))

	entries := logs.All()
	require.Len(t, entries, 3)

	done := entries[0]
	assert.Equal(t, "damage done", done.Message)
	assert.Equal(t, "legolas", done.ContextMap()["attacker"])
	assert.Equal(t, int64(attacker.ID()), done.ContextMap()["attacker_id"])
	assert.Equal(t, "orc", done.ContextMap()["target"])
	assert.Equal(t, creature.ActionAttack, done.ContextMap()["action"])
	assert.Equal(t, int64(120), done.ContextMap()["damage"])

	hit := entries[1]
	assert.Equal(t, "damage taken", hit.Message)
	assert.Equal(t, int64(115), hit.ContextMap()["damage"])
	assert.Equal(t, int64(5), hit.ContextMap()["mitigated"])
	assert.Equal(t, int64(100), hit.ContextMap()["hp_before"])

	died := entries[2]
	assert.Equal(t, "creature died", died.Message)
	assert.Equal(t, int64(target.ID()), died.ContextMap()["creature_id"])
}

func TestCombatLogger_Labels(t *testing.T) {
	core, logs := zapobserver.New(zapcore.InfoLevel)
	l := observer.NewCombatLogger(zap.New(core))
	c := creature.New("x", 10)

	l.OnDamageDone(c, "", nil, 3)
	entry := logs.All()[0]
	assert.Equal(t, "Unknown", entry.ContextMap()["action"])
	assert.Equal(t, "Unknown", entry.ContextMap()["target"])
}

func TestConsoleObserver(t *testing.T) {
	var out bytes.Buffer
	duel(t, observer.NewConsoleObserver(&out, false))

	assert.Equal(t,
		"Legolas attacks Orc for 120 damage\n"+
			"Orc takes 115 damage (blocked 5)\n"+
			"Orc has died!\n",
		out.String())
}

func TestConsoleObserver_NoMitigationAndColor(t *testing.T) {
	var out bytes.Buffer
	o := observer.NewConsoleObserver(&out, true)
	c := creature.New("bob", 10)

	o.OnHit(c, creature.ActionAttack, 4, 0)
	o.OnDied(c)
	assert.Equal(t, "Bob takes 4 damage\n\033[31mBob has died!\033[0m\n", out.String())
}

func TestRecorder(t *testing.T) {
	rec := observer.NewRecorder()
	attacker, target := duel(t, rec)

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, observer.EventDamageDone, events[0].Type)
	assert.Same(t, attacker, events[0].Creature)
	assert.Equal(t, observer.EventHit, events[1].Type)
	assert.Same(t, target, events[1].Creature)
	assert.Equal(t, 5, events[1].Mitigated)
	assert.Equal(t, observer.EventDied, events[2].Type)
	assert.Equal(t, "died", events[2].Type.String())

	rec.Reset()
	assert.Empty(t, rec.Events())
	assert.Zero(t, rec.Count(observer.EventHit))
}
