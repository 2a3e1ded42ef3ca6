// Package factory builds ready-to-fight creatures and the per-archetype
// equipment families they start with.
package factory

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

// ItemFactory produces one archetype's family of equipment: a weapon of one
// category and armor of one material, with per-slot default defense values.
type ItemFactory struct {
	// Kind is the archetype this family belongs to.
	Kind creature.Kind
	// Material is used for every armor piece.
	Material inventory.Material
	// Category, WeaponName, Damage and Range describe the default weapon.
	Category   inventory.WeaponCategory
	WeaponName string
	Damage     int
	Range      int
	// Defense holds the default defense per armor slot.
	Defense map[inventory.ArmorSlot]int
}

var (
	// WarriorItems makes plate armor and swords.
	WarriorItems = ItemFactory{
		Kind:       creature.KindWarrior,
		Material:   inventory.MaterialPlate,
		Category:   inventory.CategorySword,
		WeaponName: "Great Sword",
		Damage:     90,
		Range:      2,
		Defense: map[inventory.ArmorSlot]int{
			inventory.SlotHead: 10, inventory.SlotShoulders: 8, inventory.SlotChest: 20,
			inventory.SlotHands: 6, inventory.SlotLegs: 12, inventory.SlotFeet: 7,
		},
	}
	// MageItems makes cloth armor and staves.
	MageItems = ItemFactory{
		Kind:       creature.KindMage,
		Material:   inventory.MaterialCloth,
		Category:   inventory.CategoryStaff,
		WeaponName: "Staff of Magic",
		Damage:     76,
		Range:      30,
		Defense: map[inventory.ArmorSlot]int{
			inventory.SlotHead: 5, inventory.SlotShoulders: 4, inventory.SlotChest: 12,
			inventory.SlotHands: 3, inventory.SlotLegs: 8, inventory.SlotFeet: 4,
		},
	}
	// HunterItems makes leather armor and guns.
	HunterItems = ItemFactory{
		Kind:       creature.KindHunter,
		Material:   inventory.MaterialLeather,
		Category:   inventory.CategoryGun,
		WeaponName: "Hunting Rifle",
		Damage:     60,
		Range:      30,
		Defense: map[inventory.ArmorSlot]int{
			inventory.SlotHead: 7, inventory.SlotShoulders: 6, inventory.SlotChest: 15,
			inventory.SlotHands: 5, inventory.SlotLegs: 10, inventory.SlotFeet: 6,
		},
	}
)

// ForKind returns the item family for a built-in archetype kind.
//
// Postcondition: ok is false for KindNone, KindCustom and unknown kinds.
func ForKind(k creature.Kind) (ItemFactory, bool) {
	switch k {
	case creature.KindWarrior:
		return WarriorItems, true
	case creature.KindMage:
		return MageItems, true
	case creature.KindHunter:
		return HunterItems, true
	default:
		return ItemFactory{}, false
	}
}

// Weapon creates the family's default weapon. An empty name uses WeaponName.
func (f ItemFactory) Weapon(name string) *inventory.AttackItem {
	return f.WeaponWith(name, f.Damage, f.Range)
}

// WeaponWith creates a weapon of the family's category with explicit stats.
func (f ItemFactory) WeaponWith(name string, damage, rng int) *inventory.AttackItem {
	if name == "" {
		name = f.WeaponName
	}
	w := inventory.NewAttackItem(name, f.Category, damage, rng)
	w.Removable = true
	return w
}

// Armor creates an armor piece for slot with the family's default defense.
// An empty name becomes "<Material> <Slot>", e.g. "Plate Head".
func (f ItemFactory) Armor(slot inventory.ArmorSlot, name string) *inventory.Armor {
	return f.ArmorWith(slot, name, f.Defense[slot])
}

// ArmorWith creates an armor piece for slot with an explicit defense value.
func (f ItemFactory) ArmorWith(slot inventory.ArmorSlot, name string, defense int) *inventory.Armor {
	if name == "" {
		name = fmt.Sprintf("%s %s", cases.Title(language.English).String(string(f.Material)), inventory.SlotDisplayName(slot))
	}
	return inventory.NewArmor(name, slot, f.Material, defense)
}

// Helmet creates a head piece with the family's default defense.
func (f ItemFactory) Helmet(name string) *inventory.Armor { return f.Armor(inventory.SlotHead, name) }

// Shoulders creates a shoulder piece with the family's default defense.
func (f ItemFactory) Shoulders(name string) *inventory.Armor {
	return f.Armor(inventory.SlotShoulders, name)
}

// Chest creates a chest piece with the family's default defense.
func (f ItemFactory) Chest(name string) *inventory.Armor { return f.Armor(inventory.SlotChest, name) }

// Hands creates a hand piece with the family's default defense.
func (f ItemFactory) Hands(name string) *inventory.Armor { return f.Armor(inventory.SlotHands, name) }

// Legs creates a leg piece with the family's default defense.
func (f ItemFactory) Legs(name string) *inventory.Armor { return f.Armor(inventory.SlotLegs, name) }

// Feet creates a foot piece with the family's default defense.
func (f ItemFactory) Feet(name string) *inventory.Armor { return f.Armor(inventory.SlotFeet, name) }

// FullSet returns one default piece for every slot, in slot order head to feet.
func (f ItemFactory) FullSet() []*inventory.Armor {
	slots := []inventory.ArmorSlot{
		inventory.SlotHead, inventory.SlotShoulders, inventory.SlotChest,
		inventory.SlotHands, inventory.SlotLegs, inventory.SlotFeet,
	}
	set := make([]*inventory.Armor, 0, len(slots))
	for _, s := range slots {
		set = append(set, f.Armor(s, ""))
	}
	return set
}
