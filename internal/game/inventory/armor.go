// Package inventory provides the weapons and armor carried by creatures: armor
// pieces, defense decorators, the equipped-armor aggregate, and the YAML content
// definitions they are built from.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefenseItem is the narrow view of anything that presents a defense rating.
// Decorators wrap and implement this view only.
type DefenseItem interface {
	Name() string
	Defense() int
}

// Item is the view held by an ArmorSet. Leaves contribute their own defense and
// a count of one; nested sets contribute their recursive totals.
type Item interface {
	Name() string
	TotalValue() int
	ItemCount() int
}

// Armor is a single wearable armor piece.
//
// Invariant: Defense() >= 0; Slot and Material never change after construction.
type Armor struct {
	name     string
	slot     ArmorSlot
	material Material
	defense  int
}

// NewArmor creates an armor piece.
//
// Postcondition: an empty name becomes "Unknown Armor"; a negative defense is stored as 0.
func NewArmor(name string, slot ArmorSlot, material Material, defense int) *Armor {
	if name == "" {
		name = "Unknown Armor"
	}
	a := &Armor{name: name, slot: slot, material: material}
	a.SetDefense(defense)
	return a
}

// Name returns the display name of the piece.
func (a *Armor) Name() string { return a.name }

// SetName renames the piece. An empty name is ignored.
func (a *Armor) SetName(name string) {
	if name != "" {
		a.name = name
	}
}

// Slot returns the body slot the piece occupies.
func (a *Armor) Slot() ArmorSlot { return a.slot }

// Material returns what the piece is made of.
func (a *Armor) Material() Material { return a.material }

// Defense returns the piece's defense rating.
func (a *Armor) Defense() int { return a.defense }

// SetDefense assigns the defense rating, flooring at zero.
//
// Postcondition: Defense() == max(d, 0).
func (a *Armor) SetDefense(d int) {
	if d < 0 {
		d = 0
	}
	a.defense = d
}

// TotalValue returns the piece's defense; a leaf contributes only itself.
func (a *Armor) TotalValue() int { return a.defense }

// ItemCount returns 1.
func (a *Armor) ItemCount() int { return 1 }

// String renders the piece for display.
func (a *Armor) String() string {
	return fmt.Sprintf("[Armor: %s] Slot: %s - Material: %s - Defense: %d",
		a.name, SlotDisplayName(a.slot), a.material, a.defense)
}

// ArmorDef defines the static properties of an armor piece loaded from YAML.
type ArmorDef struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Slot     ArmorSlot `yaml:"slot"`
	Material Material  `yaml:"material"`
	Defense  int       `yaml:"defense"`
}

// Validate reports an error if the ArmorDef is missing required fields or contains illegal values.
// Precondition: def is non-nil.
// Postcondition: Returns nil iff the def is well-formed.
func (a *ArmorDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if _, ok := validArmorSlots[a.Slot]; !ok {
		errs = append(errs, fmt.Errorf("slot %q is not a valid armor slot", a.Slot))
	}
	if _, ok := validMaterials[a.Material]; !ok {
		errs = append(errs, fmt.Errorf("material %q is not a valid armor material", a.Material))
	}
	if a.Defense < 0 {
		errs = append(errs, errors.New("defense must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}

// New builds a fresh Armor instance from the definition. Every call returns a
// distinct piece, so two pieces built from one def can both sit in a set.
func (a *ArmorDef) New() *Armor {
	return NewArmor(a.Name, a.Slot, a.Material, a.Defense)
}

// LoadArmors reads all .yaml files in dir and returns parsed ArmorDef slice.
// Precondition: dir must be a readable directory.
// Postcondition: Returns non-nil slice and nil error on success; all returned defs pass Validate.
func LoadArmors(dir string) ([]*ArmorDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadArmors: %w", err)
	}

	armors := []*ArmorDef{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadArmors: cannot read file %q: %w", path, err)
		}
		var a ArmorDef
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("LoadArmors: cannot parse file %q: %w", path, err)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("LoadArmors: invalid armor in %q: %w", path, err)
		}
		armors = append(armors, &a)
	}
	return armors, nil
}

// yamlFiles lists the .yaml and .yml files directly inside dir in directory order.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", dir, err)
	}
	var out []string
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		out = append(out, filepath.Join(dir, entry.Name()))
	}
	return out, nil
}
