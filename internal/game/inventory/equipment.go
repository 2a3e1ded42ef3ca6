package inventory

// ArmorSlot identifies the body location an armor piece is worn on.
type ArmorSlot string

const (
	// SlotHead is the head armor slot.
	SlotHead ArmorSlot = "head"
	// SlotShoulders is the shoulders armor slot.
	SlotShoulders ArmorSlot = "shoulders"
	// SlotChest is the chest armor slot.
	SlotChest ArmorSlot = "chest"
	// SlotHands is the hands armor slot (covers both hands).
	SlotHands ArmorSlot = "hands"
	// SlotLegs is the legs armor slot.
	SlotLegs ArmorSlot = "legs"
	// SlotFeet is the feet armor slot.
	SlotFeet ArmorSlot = "feet"
)

// Material identifies what an armor piece is made of.
type Material string

const (
	MaterialLeather Material = "leather"
	MaterialPlate   Material = "plate"
	MaterialCloth   Material = "cloth"
)

// WeaponCategory tags a weapon by family.
type WeaponCategory string

const (
	CategorySword   WeaponCategory = "sword"
	CategoryAxe     WeaponCategory = "axe"
	CategoryMace    WeaponCategory = "mace"
	CategoryStaff   WeaponCategory = "staff"
	CategoryWand    WeaponCategory = "wand"
	CategoryBow     WeaponCategory = "bow"
	CategoryGun     WeaponCategory = "gun"
	CategoryDagger  WeaponCategory = "dagger"
	CategoryUnarmed WeaponCategory = "unarmed"
)

// validArmorSlots is the set of all legal ArmorSlot values.
var validArmorSlots = map[ArmorSlot]struct{}{
	SlotHead:      {},
	SlotShoulders: {},
	SlotChest:     {},
	SlotHands:     {},
	SlotLegs:      {},
	SlotFeet:      {},
}

// ValidArmorSlots returns the set of all legal ArmorSlot values.
// Postcondition: Returns a non-nil map containing all 6 valid slot constants.
func ValidArmorSlots() map[ArmorSlot]struct{} { return validArmorSlots }

var validMaterials = map[Material]struct{}{
	MaterialLeather: {},
	MaterialPlate:   {},
	MaterialCloth:   {},
}

var validCategories = map[WeaponCategory]struct{}{
	CategorySword:   {},
	CategoryAxe:     {},
	CategoryMace:    {},
	CategoryStaff:   {},
	CategoryWand:    {},
	CategoryBow:     {},
	CategoryGun:     {},
	CategoryDagger:  {},
	CategoryUnarmed: {},
}

// slotDisplayNames maps every slot identifier to its human-readable label.
var slotDisplayNames = map[ArmorSlot]string{
	SlotHead:      "Head",
	SlotShoulders: "Shoulders",
	SlotChest:     "Chest",
	SlotHands:     "Hands",
	SlotLegs:      "Legs",
	SlotFeet:      "Feet",
}

// SlotDisplayName returns the human-readable label for a slot identifier.
//
// Postcondition: returns the registered label, or the raw slot string if not found.
func SlotDisplayName(slot ArmorSlot) string {
	if label, ok := slotDisplayNames[slot]; ok {
		return label
	}
	return string(slot)
}
