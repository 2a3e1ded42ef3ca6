package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

func TestNewArmorSet_DefaultName(t *testing.T) {
	s := inventory.NewArmorSet("")
	assert.Equal(t, inventory.DefaultArmorSetName, s.Name())
	assert.Equal(t, 0, s.TotalValue())
	assert.Equal(t, 0, s.ItemCount())
	s.SetName("")
	assert.Equal(t, inventory.DefaultArmorSetName, s.Name())
}

func TestArmorSet_Totals(t *testing.T) {
	s := inventory.NewArmorSet("Equipped Armor")
	s.Add(inventory.NewArmor("Helmet", inventory.SlotHead, inventory.MaterialPlate, 10))
	s.Add(inventory.NewArmor("Chest", inventory.SlotChest, inventory.MaterialPlate, 20))
	s.Add(inventory.NewArmor("Legs", inventory.SlotLegs, inventory.MaterialPlate, 30))

	assert.Equal(t, 60, s.TotalValue())
	assert.Equal(t, 3, s.ItemCount())
	assert.Equal(t, 3, s.Len())
}

func TestArmorSet_Nested(t *testing.T) {
	inner := inventory.NewArmorSet("Gauntlets")
	inner.Add(inventory.NewArmor("Left", inventory.SlotHands, inventory.MaterialPlate, 3))
	inner.Add(inventory.NewArmor("Right", inventory.SlotHands, inventory.MaterialPlate, 4))

	outer := inventory.NewArmorSet("")
	outer.Add(inventory.NewArmor("Helmet", inventory.SlotHead, inventory.MaterialPlate, 10))
	outer.Add(inner)

	assert.Equal(t, 17, outer.TotalValue())
	assert.Equal(t, 3, outer.ItemCount())
	assert.Equal(t, 2, outer.Len())
}

func TestArmorSet_AddRejectsNilAndDuplicates(t *testing.T) {
	s := inventory.NewArmorSet("")
	h := inventory.NewArmor("Helmet", inventory.SlotHead, inventory.MaterialPlate, 10)

	assert.False(t, s.Add(nil))
	assert.True(t, s.Add(h))
	assert.False(t, s.Add(h))
	assert.Equal(t, 10, s.TotalValue())
	assert.Equal(t, 1, s.ItemCount())
}

func TestArmorSet_AddRejectsNilPointers(t *testing.T) {
	s := inventory.NewArmorSet("")
	var piece *inventory.Armor
	var nested *inventory.ArmorSet

	assert.False(t, s.Add(piece))
	assert.False(t, s.Add(nested))
	assert.False(t, s.Add(inventory.AsItem(nil)))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.TotalValue())
	assert.Equal(t, 0, s.ItemCount())
}

func TestArmorSet_AddRejectsItself(t *testing.T) {
	s := inventory.NewArmorSet("")
	s.Add(inventory.NewArmor("Helmet", inventory.SlotHead, inventory.MaterialPlate, 10))

	assert.False(t, s.Add(s))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 10, s.TotalValue())
}

// pouch is an Item whose value is not comparable.
type pouch struct {
	contents []string
}

func (p pouch) Name() string    { return "Pouch" }
func (p pouch) TotalValue() int { return len(p.contents) }
func (p pouch) ItemCount() int  { return 1 }

func TestArmorSet_NonComparableItems(t *testing.T) {
	s := inventory.NewArmorSet("")
	p := pouch{contents: []string{"stone"}}

	assert.NotPanics(t, func() {
		assert.True(t, s.Add(p))
		assert.True(t, s.Add(p))
		assert.False(t, s.Contains(p))
		assert.False(t, s.Remove(p))
	})
	assert.Equal(t, 2, s.ItemCount())
}

func TestIsNil(t *testing.T) {
	var piece *inventory.Armor
	var item inventory.Item = piece

	assert.True(t, inventory.IsNil(nil))
	assert.True(t, inventory.IsNil(piece))
	assert.True(t, inventory.IsNil(item))
	assert.False(t, inventory.IsNil(inventory.NewArmor("A", inventory.SlotHead, inventory.MaterialCloth, 1)))
	assert.False(t, inventory.IsNil(pouch{}))
}

func TestArmorSet_Remove(t *testing.T) {
	s := inventory.NewArmorSet("")
	a := inventory.NewArmor("A", inventory.SlotHead, inventory.MaterialCloth, 1)
	b := inventory.NewArmor("B", inventory.SlotChest, inventory.MaterialCloth, 2)
	c := inventory.NewArmor("C", inventory.SlotFeet, inventory.MaterialCloth, 3)
	s.Add(a)
	s.Add(b)
	s.Add(c)

	assert.True(t, s.Remove(b))
	assert.False(t, s.Remove(b))
	assert.False(t, s.Contains(b))
	assert.Equal(t, []inventory.Item{a, c}, s.Items())
	assert.Equal(t, 4, s.TotalValue())
}

func TestArmorSet_ItemsIsCopy(t *testing.T) {
	s := inventory.NewArmorSet("")
	s.Add(inventory.NewArmor("A", inventory.SlotHead, inventory.MaterialCloth, 1))
	items := s.Items()
	items[0] = nil
	assert.NotNil(t, s.Items()[0])
}

func TestArmorSet_Property_TotalIsSumOfLeaves(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		defenses := rapid.SliceOfN(rapid.IntRange(0, 100), 0, 12).Draw(rt, "defenses")
		split := rapid.IntRange(0, len(defenses)).Draw(rt, "split")

		outer := inventory.NewArmorSet("")
		inner := inventory.NewArmorSet("inner")
		want := 0
		for i, d := range defenses {
			piece := inventory.NewArmor("p", inventory.SlotChest, inventory.MaterialLeather, d)
			if i < split {
				outer.Add(piece)
			} else {
				inner.Add(piece)
			}
			want += d
		}
		outer.Add(inner)

		if outer.TotalValue() != want {
			rt.Fatalf("TotalValue %d, want %d", outer.TotalValue(), want)
		}
		if outer.ItemCount() != len(defenses) {
			rt.Fatalf("ItemCount %d, want %d", outer.ItemCount(), len(defenses))
		}
	})
}
