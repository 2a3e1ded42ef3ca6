package simulation_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/factory"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/world"
	"github.com/cory-johannsen/skirmish/internal/observer"
	"github.com/cory-johannsen/skirmish/internal/scripting"
	"github.com/cory-johannsen/skirmish/internal/simulation"
)

func runDemo(t *testing.T) (simulation.Result, *observer.Recorder, *bytes.Buffer, *zapobserver.ObservedLogs) {
	t.Helper()
	core, logs := zapobserver.New(zapcore.InfoLevel)
	logger := zap.New(core)
	var out bytes.Buffer
	rec := observer.NewRecorder()
	w := world.New(100, 100, "Fantasy Realm", logger)
	r := simulation.NewRunner(&out, w, factory.NewCreatureFactory(logger), logger,
		rec, observer.NewConsoleObserver(&out, false), observer.NewCombatLogger(logger))
	return r.Run(), rec, &out, logs
}

func TestRun_FinalHitPoints(t *testing.T) {
	res, _, _, _ := runDemo(t)

	// 90 sword vs 60 defense.
	assert.Equal(t, 770, res.Mage.HP())
	// 76 staff at range 25 gets the ranged bonus (114) plus the healthy-mage +10; 124-60.
	assert.Equal(t, 836, res.Hunter.HP())
	// 60 rifle at range 15 is fully absorbed.
	assert.Equal(t, 1000, res.Warrior.HP())

	assert.Equal(t, simulation.UpgradedSwordDamage, res.Warrior.Weapon().Damage())
}

func TestRun_NotifiesObservers(t *testing.T) {
	_, rec, _, logs := runDemo(t)

	assert.Equal(t, 3, rec.Count(observer.EventDamageDone))
	assert.Equal(t, 3, rec.Count(observer.EventHit))
	assert.Zero(t, rec.Count(observer.EventDied))

	assert.Equal(t, 3, logs.FilterMessage("damage done").Len())
	assert.Equal(t, 3, logs.FilterMessage("creature added").Len())
	assert.Equal(t, 1, logs.FilterMessage("skirmish finished").Len())
}

func TestRun_Display(t *testing.T) {
	_, _, out, _ := runDemo(t)
	text := out.String()

	require.Contains(t, text, "World 'Fantasy Realm' created (100x100)")
	assert.Contains(t, text, "Thorin attacks Gandalf for 90 damage")
	assert.Contains(t, text, "Gandalf takes 30 damage (blocked 60)")
	assert.Contains(t, text, "Gandalf (Mage): HP 770/800 | Weapon: Staff of Magic | Defense: 60")
	assert.Contains(t, text, "Legolas takes 64 damage (blocked 60)")
	assert.Contains(t, text, "Thorin takes 0 damage (blocked 60)")
	assert.Contains(t, text, "Upgrading Great Sword: 90 -> 40 damage")
	assert.Contains(t, text, "--- Final State ---")
	assert.Contains(t, text, "Demo completed!")
}

func TestRun_NoChallengersWithoutContent(t *testing.T) {
	res, _, out, _ := runDemo(t)
	assert.Empty(t, res.Challengers)
	assert.NotContains(t, out.String(), "--- Challengers ---")
}

// repoRoot walks up from the test's working directory to find the module root.
func repoRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	root := wd
	for {
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
			return root
		}
		parent := filepath.Dir(root)
		if parent == root {
			t.Fatalf("could not find repo root from %s", wd)
		}
		root = parent
	}
}

// contentFactory wires the repo's content directory into a CreatureFactory the
// same way cmd/skirmish does.
func contentFactory(t *testing.T, logger *zap.Logger) *factory.CreatureFactory {
	t.Helper()
	content := filepath.Join(repoRoot(t), "content")

	reg, err := inventory.LoadRegistry(filepath.Join(content, "weapons"), filepath.Join(content, "armor"))
	require.NoError(t, err)

	scripts := scripting.NewManager(logger, 0)
	t.Cleanup(scripts.Close)
	require.NoError(t, scripts.LoadDir(filepath.Join(content, "scripts")))

	defs, err := creature.LoadArchetypeDefs(filepath.Join(content, "archetypes"))
	require.NoError(t, err)

	f := factory.NewCreatureFactory(logger).WithRegistry(reg)
	require.NoError(t, f.RegisterArchetypes(defs, scripts.Resolve))
	return f
}

func TestRun_ContentChallengers(t *testing.T) {
	core, logs := zapobserver.New(zapcore.InfoLevel)
	logger := zap.New(core)
	var out bytes.Buffer
	rec := observer.NewRecorder()
	w := world.New(100, 100, "Fantasy Realm", logger)
	r := simulation.NewRunner(&out, w, contentFactory(t, logger), logger,
		rec, observer.NewConsoleObserver(&out, false))

	res := r.Run()

	require.Len(t, res.Challengers, 3)
	berserker, paladin, ranger := res.Challengers[0], res.Challengers[1], res.Challengers[2]
	assert.Equal(t, "Great Sword", berserker.Weapon().Name())
	assert.Equal(t, "War Axe", paladin.Weapon().Name())
	assert.Equal(t, "Long Bow", ranger.Weapon().Name())

	// Each challenger takes the upgraded sword unarmored.
	assert.Equal(t, 900-simulation.UpgradedSwordDamage, berserker.HP())
	assert.Equal(t, 1100-simulation.UpgradedSwordDamage, paladin.HP())
	assert.Equal(t, 950-simulation.UpgradedSwordDamage, ranger.HP())

	// Berserker 90 unenraged (30 through), paladin 70+10 mage bonus (20 through),
	// ranger 60 bow at range 25 is 90, and steady_aim at full health makes it 135 (75 through).
	assert.Equal(t, 1000-30-20-75, res.Warrior.HP())

	text := out.String()
	assert.Contains(t, text, "--- Challengers ---")
	assert.Contains(t, text, "Berserker attacks Thorin for 90 damage")
	assert.Contains(t, text, "Paladin attacks Thorin for 80 damage")
	assert.Contains(t, text, "Ranger attacks Thorin for 135 damage")
	assert.Contains(t, text, "Thorin takes 75 damage (blocked 60)")
	assert.Contains(t, text, "Ranger (Ranger): HP 910/950 | Weapon: Long Bow | Defense: 0")

	assert.Equal(t, 9, rec.Count(observer.EventDamageDone))
	assert.Len(t, w.Creatures(), 6)
	assert.Equal(t, 3, logs.FilterMessage("archetype registered").Len())
}
