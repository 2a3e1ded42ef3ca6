package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

func TestValidArmorSlots_ContainsAllSix(t *testing.T) {
	slots := inventory.ValidArmorSlots()
	assert.Len(t, slots, 6)
	for _, s := range []inventory.ArmorSlot{
		inventory.SlotHead, inventory.SlotShoulders, inventory.SlotChest,
		inventory.SlotHands, inventory.SlotLegs, inventory.SlotFeet,
	} {
		assert.Contains(t, slots, s)
	}
}

func TestSlotDisplayName(t *testing.T) {
	assert.Equal(t, "Shoulders", inventory.SlotDisplayName(inventory.SlotShoulders))
	assert.Equal(t, "tail", inventory.SlotDisplayName(inventory.ArmorSlot("tail")))
}
