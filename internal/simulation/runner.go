// Package simulation runs the scripted three-creature skirmish and renders its
// progress to a writer.
package simulation

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/factory"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/world"
)

// UpgradedSwordDamage is the damage the warrior's weapon is set to after the combat rounds.
const UpgradedSwordDamage = 40

// Ranges used in the challenger rounds.
const (
	MeleeRange     = 1
	ChallengeRange = 25
)

// Runner drives one demo skirmish.
type Runner struct {
	out       io.Writer
	world     *world.World
	creatures *factory.CreatureFactory
	observers []creature.Observer
	logger    *zap.Logger
}

// NewRunner creates a Runner that writes its display to out and attaches
// observers to every creature it builds.
//
// Precondition: out, w, f and logger must be non-nil.
// Postcondition: Returns a non-nil Runner.
func NewRunner(out io.Writer, w *world.World, f *factory.CreatureFactory, logger *zap.Logger, observers ...creature.Observer) *Runner {
	return &Runner{out: out, world: w, creatures: f, observers: observers, logger: logger}
}

// Result captures the combatants after a run.
type Result struct {
	Warrior *creature.Creature
	Mage    *creature.Creature
	Hunter  *creature.Creature
	// Challengers holds one creature per registered custom archetype, in ID order.
	Challengers []*creature.Creature
}

// Run executes the skirmish:
//  1. build Thorin (Warrior), Gandalf (Mage) and Legolas (Hunter), armor them
//     and attach the observers;
//  2. Thorin attacks Gandalf at range 1, Gandalf attacks Legolas at range 25,
//     Legolas attacks Thorin at range 15;
//  3. Thorin's weapon damage is set to UpgradedSwordDamage;
//  4. one challenger per custom archetype registered with the factory is
//     spawned with its content weapon, attacks Thorin (from ChallengeRange when
//     ranged, MeleeRange otherwise) and takes Thorin's reply at MeleeRange;
//  5. the final state is displayed.
//
// Postcondition: every combatant is in the world and the returned Result refers to them.
func (r *Runner) Run() Result {
	r.header("2D Game Framework Demo")
	maxX, maxY := r.world.Bounds()
	r.printf("World '%s' created (%dx%d)\n", r.world.Name(), maxX, maxY)
	r.separator()

	res := Result{
		Warrior: r.creatures.Create(creature.KindWarrior, "Thorin"),
		Mage:    r.creatures.Create(creature.KindMage, "Gandalf"),
		Hunter:  r.creatures.Create(creature.KindHunter, "Legolas"),
	}
	all := []*creature.Creature{res.Warrior, res.Mage, res.Hunter}
	for _, c := range all {
		factory.EquipStandardArmor(c)
		r.join(c)
	}

	r.header("Creatures")
	r.creaturesInfo(all...)

	r.header("Combat")
	r.attack(res.Warrior, res.Mage, 1)
	r.attack(res.Mage, res.Hunter, 25)
	r.attack(res.Hunter, res.Warrior, 15)

	if sword, ok := res.Warrior.Weapon().(*inventory.AttackItem); ok {
		r.printf("Upgrading %s: %d -> %d damage\n", sword.Name(), sword.Damage(), UpgradedSwordDamage)
		sword.SetDamage(UpgradedSwordDamage)
	}
	r.separator()

	res.Challengers = r.challenge(res.Warrior)

	r.header("Final State")
	r.creaturesInfo(append(all, res.Challengers...)...)
	r.printf("Demo completed! Check logs for details.\n")

	r.logger.Info("skirmish finished",
		zap.Int("living", len(r.world.Living())),
		zap.Int("creatures", len(r.world.Creatures())),
	)
	return res
}

// challenge runs one exchange between champion and a creature of every custom archetype.
func (r *Runner) challenge(champion *creature.Creature) []*creature.Creature {
	ids := r.creatures.ArchetypeIDs()
	if len(ids) == 0 {
		return nil
	}
	r.header("Challengers")
	var out []*creature.Creature
	for _, id := range ids {
		arch, _ := r.creatures.Archetype(id)
		c, err := r.creatures.Spawn(id, arch.Name)
		if err != nil {
			r.logger.Warn("skipping challenger", zap.String("archetype", id), zap.Error(err))
			continue
		}
		r.join(c)
		r.creatureInfo(c)
		r.attack(c, champion, attackRange(c))
		r.attack(champion, c, MeleeRange)
		out = append(out, c)
	}
	return out
}

func attackRange(c *creature.Creature) int {
	if _, ok := c.Strategy().(combat.RangedStrategy); ok {
		return ChallengeRange
	}
	return MeleeRange
}

// join attaches the runner's observers to c and adds it to the world.
func (r *Runner) join(c *creature.Creature) {
	for _, o := range r.observers {
		c.Attach(o)
	}
	r.world.AddCreature(c)
}

func (r *Runner) attack(attacker, target *creature.Creature, rng int) {
	attacker.PerformAttack(target, rng)
	r.creatureInfo(target)
	r.separator()
}

func (r *Runner) creaturesInfo(cs ...*creature.Creature) {
	for _, c := range cs {
		r.creatureInfo(c)
	}
}

// creatureInfo prints "<name> (<Archetype>): HP <hp>/<max> | Weapon: <w> | Defense: <d>".
func (r *Runner) creatureInfo(c *creature.Creature) {
	weapon := "Unarmed"
	if w := c.Weapon(); w != nil {
		weapon = w.Name()
	}
	r.printf("%s (%s): HP %d/%d | Weapon: %s | Defense: %d\n",
		c.Name(), cases.Title(language.English).String(c.Archetype().Name),
		c.HP(), c.MaxHP(), weapon, c.EquippedArmor().TotalValue())
}

func (r *Runner) header(title string) {
	r.printf("\n--- %s ---\n", title)
}

func (r *Runner) separator() {
	r.printf("\n")
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
