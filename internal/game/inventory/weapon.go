package inventory

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weapon is the capability a creature needs from whatever it wields.
type Weapon interface {
	Name() string
	Damage() int
	Range() int
}

// AttackItem is the concrete weapon type.
//
// Invariant: Damage(), Range() and Value() are always >= 0.
type AttackItem struct {
	name      string
	category  WeaponCategory
	damage    int
	rng       int
	value     int
	Removable bool
}

// NewAttackItem creates a weapon.
//
// Postcondition: an empty name becomes "Unknown Weapon"; negative damage and range are stored as 0.
func NewAttackItem(name string, category WeaponCategory, damage, rng int) *AttackItem {
	if name == "" {
		name = "Unknown Weapon"
	}
	w := &AttackItem{name: name, category: category}
	w.SetDamage(damage)
	w.SetRange(rng)
	return w
}

// Name returns the weapon's display name.
func (w *AttackItem) Name() string { return w.name }

// Category returns the weapon family tag.
func (w *AttackItem) Category() WeaponCategory { return w.category }

// Damage returns the damage rating.
func (w *AttackItem) Damage() int { return w.damage }

// Range returns the range rating.
func (w *AttackItem) Range() int { return w.rng }

// Value returns the trade value.
func (w *AttackItem) Value() int { return w.value }

// SetDamage assigns the damage rating, flooring at zero.
func (w *AttackItem) SetDamage(d int) { w.damage = clampZero(d) }

// SetRange assigns the range rating, flooring at zero.
func (w *AttackItem) SetRange(r int) { w.rng = clampZero(r) }

// SetValue assigns the trade value, flooring at zero.
func (w *AttackItem) SetValue(v int) { w.value = clampZero(v) }

// String renders the weapon for display.
func (w *AttackItem) String() string {
	return fmt.Sprintf("[Weapon: %s] Damage: %d - Range: %d", w.name, w.damage, w.rng)
}

// Combine merges two weapons for dual wielding.
//
// Postcondition: both nil yields a fresh unarmed "Empty Hands" 0/0; one nil
// yields the other unchanged; otherwise the result is a new weapon named
// "<left> & <right>" with the left category, summed damage and value, the
// longer range, and Removable set if either input is removable.
func Combine(left, right *AttackItem) *AttackItem {
	switch {
	case left == nil && right == nil:
		return NewAttackItem("Empty Hands", CategoryUnarmed, 0, 0)
	case left == nil:
		return right
	case right == nil:
		return left
	}
	rng := left.rng
	if right.rng > rng {
		rng = right.rng
	}
	combined := NewAttackItem(left.name+" & "+right.name, left.category, left.damage+right.damage, rng)
	combined.SetValue(left.value + right.value)
	combined.Removable = left.Removable || right.Removable
	return combined
}

// WeaponDef defines the static properties of a weapon loaded from YAML.
type WeaponDef struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Category WeaponCategory `yaml:"category"`
	Damage   int            `yaml:"damage"`
	Range    int            `yaml:"range"`
	Value    int            `yaml:"value"`
}

// IsMelee reports whether the weapon only reaches adjacent targets (Range <= 2).
func (w *WeaponDef) IsMelee() bool {
	return w.Range <= 2
}

// Validate checks that the WeaponDef satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponDef) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if _, ok := validCategories[w.Category]; !ok {
		errs = append(errs, fmt.Errorf("Category %q is not a valid weapon category", w.Category))
	}
	if w.Damage < 0 {
		errs = append(errs, errors.New("Damage must be >= 0"))
	}
	if w.Range < 0 {
		errs = append(errs, errors.New("Range must be >= 0"))
	}
	if w.Value < 0 {
		errs = append(errs, errors.New("Value must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// New builds a fresh AttackItem from the definition.
func (w *WeaponDef) New() *AttackItem {
	item := NewAttackItem(w.Name, w.Category, w.Damage, w.Range)
	item.SetValue(w.Value)
	return item
}

// LoadWeapons reads all *.yaml files from dir, parses each as a WeaponDef,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid WeaponDefs or the first encountered error.
func LoadWeapons(dir string) ([]*WeaponDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadWeapons: %w", err)
	}

	weapons := []*WeaponDef{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot read file %q: %w", path, err)
		}
		var w WeaponDef
		if err := yaml.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot parse file %q: %w", path, err)
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("LoadWeapons: invalid weapon in %q: %w", path, err)
		}
		weapons = append(weapons, &w)
	}
	return weapons, nil
}
