package creature

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// Kind tags the archetype variant a creature was built from.
type Kind int

const (
	// KindNone marks a creature built with New and no archetype.
	KindNone Kind = iota
	KindWarrior
	KindMage
	KindHunter
	// KindCustom marks an archetype loaded from content.
	KindCustom
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindWarrior:
		return "warrior"
	case KindMage:
		return "mage"
	case KindHunter:
		return "hunter"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseKind resolves one of the built-in archetype names, case-insensitively.
//
// Postcondition: Returns KindWarrior, KindMage or KindHunter, or an error.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warrior":
		return KindWarrior, nil
	case "mage":
		return KindMage, nil
	case "hunter":
		return KindHunter, nil
	default:
		return KindNone, fmt.Errorf("creature: unknown archetype %q", s)
	}
}

// Archetype fixes a creature's max HP, starting strategy and damage modifier.
// The modifier cannot be changed after construction; the strategy can, via
// Creature.SetStrategy.
type Archetype struct {
	Kind     Kind
	Name     string
	MaxHP    int
	Strategy combat.Strategy
	Modifier combat.Modifier
}

var (
	// Warrior is a melee fighter that hits harder when nearly dead.
	Warrior = Archetype{Kind: KindWarrior, Name: "Warrior", MaxHP: 1000, Strategy: combat.MeleeStrategy{}, Modifier: combat.WarriorModifier}
	// Mage is a ranged caster that hits harder while healthy.
	Mage = Archetype{Kind: KindMage, Name: "Mage", MaxHP: 800, Strategy: combat.RangedStrategy{}, Modifier: combat.MageModifier}
	// Hunter is a ranged fighter with no modifier.
	Hunter = Archetype{Kind: KindHunter, Name: "Hunter", MaxHP: 900, Strategy: combat.RangedStrategy{}, Modifier: combat.NoModifier}
)

// BuiltinArchetype returns the archetype for a built-in kind.
//
// Postcondition: ok is false for KindNone, KindCustom and unknown kinds.
func BuiltinArchetype(k Kind) (Archetype, bool) {
	switch k {
	case KindWarrior:
		return Warrior, true
	case KindMage:
		return Mage, true
	case KindHunter:
		return Hunter, true
	default:
		return Archetype{}, false
	}
}

// NewFromArchetype creates a creature with the archetype's max HP, strategy and modifier.
//
// Postcondition: a nil arch.Modifier behaves as combat.NoModifier; a nil
// arch.Strategy leaves the creature unable to attack until SetStrategy.
func NewFromArchetype(arch Archetype, name string) *Creature {
	c := New(name, arch.MaxHP)
	if arch.Modifier == nil {
		arch.Modifier = combat.NoModifier
	}
	arch.MaxHP = c.maxHP
	c.archetype = arch
	c.modifier = arch.Modifier
	c.SetStrategy(arch.Strategy)
	return c
}

// NewWarrior creates a Warrior named name.
func NewWarrior(name string) *Creature { return NewFromArchetype(Warrior, name) }

// NewMage creates a Mage named name.
func NewMage(name string) *Creature { return NewFromArchetype(Mage, name) }

// NewHunter creates a Hunter named name.
func NewHunter(name string) *Creature { return NewFromArchetype(Hunter, name) }

// ModifierResolver turns a content-file modifier name into a Modifier.
// combat.ModifierByName is the default resolver.
type ModifierResolver func(name string) (combat.Modifier, error)

// ArchetypeDef defines a custom archetype loaded from YAML.
type ArchetypeDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	MaxHP    int    `yaml:"max_hp"`
	Strategy string `yaml:"strategy"`
	Modifier string `yaml:"modifier"`
	// Weapon is the registry ID of the weapon creatures of this archetype spawn with.
	// Empty means unarmed.
	Weapon string `yaml:"weapon"`
}

// Validate checks that the ArchetypeDef satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (d *ArchetypeDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.MaxHP <= 0 {
		errs = append(errs, errors.New("max_hp must be > 0"))
	}
	if _, err := combat.StrategyByName(d.Strategy); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("archetype validation failed: %v", errs)
	}
	return nil
}

// Archetype resolves the def into an Archetype using resolve for the modifier.
// A nil resolve uses combat.ModifierByName.
//
// Precondition: d passes Validate.
// Postcondition: Returns an Archetype of KindCustom or the resolution error.
func (d *ArchetypeDef) Archetype(resolve ModifierResolver) (Archetype, error) {
	if resolve == nil {
		resolve = combat.ModifierByName
	}
	strategy, err := combat.StrategyByName(d.Strategy)
	if err != nil {
		return Archetype{}, fmt.Errorf("archetype %q: %w", d.ID, err)
	}
	mod, err := resolve(d.Modifier)
	if err != nil {
		return Archetype{}, fmt.Errorf("archetype %q: %w", d.ID, err)
	}
	return Archetype{Kind: KindCustom, Name: d.Name, MaxHP: d.MaxHP, Strategy: strategy, Modifier: mod}, nil
}

// LoadArchetypeDefs reads every .yaml file in dir as an ArchetypeDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed and validated defs (may be empty) or a non-nil error.
func LoadArchetypeDefs(dir string) ([]*ArchetypeDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadArchetypeDefs: cannot read directory %q: %w", dir, err)
	}
	defs := []*ArchetypeDef{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var d ArchetypeDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing archetype file %s: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid archetype in %s: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}
