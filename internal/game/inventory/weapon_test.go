package inventory_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

func TestNewAttackItem(t *testing.T) {
	w := inventory.NewAttackItem("", inventory.CategorySword, -5, -1)
	assert.Equal(t, "Unknown Weapon", w.Name())
	assert.Equal(t, 0, w.Damage())
	assert.Equal(t, 0, w.Range())
	assert.Equal(t, inventory.CategorySword, w.Category())
}

func TestAttackItem_Setters(t *testing.T) {
	w := inventory.NewAttackItem("Great Sword", inventory.CategorySword, 90, 2)
	w.SetDamage(40)
	w.SetRange(-3)
	w.SetValue(-1)
	assert.Equal(t, 40, w.Damage())
	assert.Equal(t, 0, w.Range())
	assert.Equal(t, 0, w.Value())
	assert.Equal(t, "[Weapon: Great Sword] Damage: 40 - Range: 0", w.String())
}

func TestCombine(t *testing.T) {
	left := inventory.NewAttackItem("Axe", inventory.CategoryAxe, 30, 1)
	left.SetValue(10)
	right := inventory.NewAttackItem("Dagger", inventory.CategoryDagger, 12, 3)
	right.SetValue(4)
	right.Removable = true

	dual := inventory.Combine(left, right)
	assert.Equal(t, "Axe & Dagger", dual.Name())
	assert.Equal(t, inventory.CategoryAxe, dual.Category())
	assert.Equal(t, 42, dual.Damage())
	assert.Equal(t, 3, dual.Range())
	assert.Equal(t, 14, dual.Value())
	assert.True(t, dual.Removable)
}

func TestCombine_Nil(t *testing.T) {
	empty := inventory.Combine(nil, nil)
	assert.Equal(t, "Empty Hands", empty.Name())
	assert.Equal(t, inventory.CategoryUnarmed, empty.Category())
	assert.Equal(t, 0, empty.Damage())
	assert.Equal(t, 0, empty.Range())

	w := inventory.NewAttackItem("Bow", inventory.CategoryBow, 20, 25)
	assert.Same(t, w, inventory.Combine(nil, w))
	assert.Same(t, w, inventory.Combine(w, nil))
}

func TestCombine_Property_DamageSums(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := inventory.NewAttackItem("a", inventory.CategoryMace, rapid.IntRange(0, 500).Draw(rt, "ad"), rapid.IntRange(0, 50).Draw(rt, "ar"))
		b := inventory.NewAttackItem("b", inventory.CategoryWand, rapid.IntRange(0, 500).Draw(rt, "bd"), rapid.IntRange(0, 50).Draw(rt, "br"))
		c := inventory.Combine(a, b)
		if c.Damage() != a.Damage()+b.Damage() {
			rt.Fatalf("damage %d != %d + %d", c.Damage(), a.Damage(), b.Damage())
		}
		if c.Range() < a.Range() || c.Range() < b.Range() {
			rt.Fatalf("range %d shorter than an input", c.Range())
		}
	})
}

func TestWeaponDef_Validate(t *testing.T) {
	valid := &inventory.WeaponDef{ID: "sword", Name: "Sword", Category: inventory.CategorySword, Damage: 10, Range: 1}
	assert.NoError(t, valid.Validate())
	assert.True(t, valid.IsMelee())

	bad := &inventory.WeaponDef{Category: "laser", Damage: -1, Range: -1, Value: -1}
	err := bad.Validate()
	require.Error(t, err)
	for _, want := range []string{"ID", "Name", "Category", "Damage", "Range", "Value"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestWeaponDef_New(t *testing.T) {
	def := &inventory.WeaponDef{ID: "rifle", Name: "Hunting Rifle", Category: inventory.CategoryGun, Damage: 60, Range: 30, Value: 25}
	w := def.New()
	assert.Equal(t, "Hunting Rifle", w.Name())
	assert.Equal(t, 60, w.Damage())
	assert.Equal(t, 30, w.Range())
	assert.Equal(t, 25, w.Value())
	assert.False(t, def.IsMelee())
}

func TestLoadWeapons(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sword.yaml", "id: sword\nname: Great Sword\ncategory: sword\ndamage: 90\nrange: 2\n")
	writeFile(t, dir, "staff.yaml", "id: staff\nname: Staff of Magic\ncategory: staff\ndamage: 76\nrange: 30\nvalue: 12\n")

	defs, err := inventory.LoadWeapons(dir)
	require.NoError(t, err)
	assert.Len(t, defs, 2)
}

func TestLoadWeapons_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "id: [unterminated\n")
	_, err := inventory.LoadWeapons(dir)
	assert.ErrorContains(t, err, "cannot parse")
}

func TestLoadWeapons_MissingDir(t *testing.T) {
	_, err := inventory.LoadWeapons(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
