package factory

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

// Standard armor loadout equipped by EquipStandardArmor.
const (
	StandardHelmetDefense = 10
	StandardChestDefense  = 20
	StandardLegDefense    = 30
)

// CreatureFactory builds creatures with their starting weapon, and custom
// archetypes loaded from content.
type CreatureFactory struct {
	logger     *zap.Logger
	archetypes map[string]creature.Archetype
	// loadouts maps a custom archetype ID to its default weapon ID.
	loadouts map[string]string
	weapons  *inventory.Registry
}

// NewCreatureFactory creates a factory with no custom archetypes.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a non-nil CreatureFactory.
func NewCreatureFactory(logger *zap.Logger) *CreatureFactory {
	if logger == nil {
		panic("factory.NewCreatureFactory: logger must not be nil")
	}
	return &CreatureFactory{
		logger:     logger,
		archetypes: make(map[string]creature.Archetype),
		loadouts:   make(map[string]string),
	}
}

// WithRegistry sets the content registry consulted by CreateCustom for weapons.
func (f *CreatureFactory) WithRegistry(reg *inventory.Registry) *CreatureFactory {
	f.weapons = reg
	return f
}

// Create builds a creature of a built-in kind named name, armed with the kind's
// default weapon. Unknown kinds fall back to a Warrior.
//
// Postcondition: Returns a non-nil, living creature with a weapon equipped.
func (f *CreatureFactory) Create(kind creature.Kind, name string) *creature.Creature {
	arch, ok := creature.BuiltinArchetype(kind)
	if !ok {
		f.logger.Warn("unknown archetype kind, defaulting to warrior",
			zap.Stringer("kind", kind),
			zap.String("name", name),
		)
		kind, arch = creature.KindWarrior, creature.Warrior
	}
	items, _ := ForKind(kind)

	c := creature.NewFromArchetype(arch, name)
	c.EquipWeapon(items.Weapon(""))
	f.logger.Debug("creature created",
		zap.String("name", c.Name()),
		zap.Int("id", c.ID()),
		zap.String("archetype", arch.Name),
		zap.String("weapon", items.WeaponName),
	)
	return c
}

// RegisterArchetypes resolves defs with resolve and makes them available to
// CreateCustom and Spawn under their IDs.
//
// Postcondition: returns an error on the first def that fails to resolve, whose
// ID is already registered, or whose default weapon is not in the registry;
// earlier defs stay registered.
func (f *CreatureFactory) RegisterArchetypes(defs []*creature.ArchetypeDef, resolve creature.ModifierResolver) error {
	for _, d := range defs {
		if _, exists := f.archetypes[d.ID]; exists {
			return fmt.Errorf("factory: duplicate archetype ID %q", d.ID)
		}
		arch, err := d.Archetype(resolve)
		if err != nil {
			return fmt.Errorf("factory: %w", err)
		}
		if d.Weapon != "" && (f.weapons == nil || f.weapons.Weapon(d.Weapon) == nil) {
			return fmt.Errorf("factory: archetype %q: unknown weapon %q", d.ID, d.Weapon)
		}
		f.archetypes[d.ID] = arch
		f.loadouts[d.ID] = d.Weapon
		f.logger.Info("archetype registered",
			zap.String("id", d.ID),
			zap.String("name", d.Name),
			zap.Int("max_hp", d.MaxHP),
			zap.String("strategy", d.Strategy),
			zap.String("modifier", d.Modifier),
			zap.String("weapon", d.Weapon),
		)
	}
	return nil
}

// Archetype returns the custom archetype registered under id.
func (f *CreatureFactory) Archetype(id string) (creature.Archetype, bool) {
	a, ok := f.archetypes[id]
	return a, ok
}

// ArchetypeIDs returns the IDs of every registered custom archetype, sorted.
func (f *CreatureFactory) ArchetypeIDs() []string {
	ids := make([]string, 0, len(f.archetypes))
	for id := range f.archetypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Spawn builds a creature of the custom archetype id armed with the
// archetype's default weapon.
//
// Postcondition: Returns a non-nil creature or the CreateCustom error.
func (f *CreatureFactory) Spawn(id, name string) (*creature.Creature, error) {
	c, err := f.CreateCustom(id, name, f.loadouts[id])
	if err != nil {
		return nil, err
	}
	f.logger.Debug("creature spawned",
		zap.String("name", c.Name()),
		zap.Int("id", c.ID()),
		zap.String("archetype", id),
	)
	return c, nil
}

// CreateCustom builds a creature from a registered custom archetype. When
// weaponID is non-empty the weapon is taken from the content registry.
//
// Postcondition: Returns a non-nil creature or an error naming the missing archetype or weapon.
func (f *CreatureFactory) CreateCustom(archetypeID, name, weaponID string) (*creature.Creature, error) {
	arch, ok := f.archetypes[archetypeID]
	if !ok {
		return nil, fmt.Errorf("factory: unknown archetype %q", archetypeID)
	}
	c := creature.NewFromArchetype(arch, name)
	if weaponID == "" {
		return c, nil
	}
	if f.weapons == nil {
		return nil, fmt.Errorf("factory: weapon %q requested but no registry is configured", weaponID)
	}
	def := f.weapons.Weapon(weaponID)
	if def == nil {
		return nil, fmt.Errorf("factory: unknown weapon %q", weaponID)
	}
	c.EquipWeapon(def.New())
	return c, nil
}

// EquipStandardArmor adds the standard three-piece loadout to c: a helmet,
// chest piece and leg piece with 10, 20 and 30 defense, in c's archetype material.
//
// Postcondition: returns false and changes nothing when c has no built-in
// archetype; otherwise TotalValue() grows by 60 and ItemCount() by 3.
func EquipStandardArmor(c *creature.Creature) bool {
	items, ok := ForKind(c.Archetype().Kind)
	if !ok {
		return false
	}
	set := c.EquippedArmor()
	set.Add(items.ArmorWith(inventory.SlotHead, "Helmet", StandardHelmetDefense))
	set.Add(items.ArmorWith(inventory.SlotChest, "Chest Armor", StandardChestDefense))
	set.Add(items.ArmorWith(inventory.SlotLegs, "Leg Armor", StandardLegDefense))
	return true
}
