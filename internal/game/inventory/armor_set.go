package inventory

import "reflect"

// DefaultArmorSetName is the name given to a creature's equipped armor set.
const DefaultArmorSetName = "Equipped Armor"

// ArmorSet is an ordered aggregate of defense-contributing items. It is itself
// an Item, so sets nest.
//
// Invariant: no item appears twice (identity comparison); nil is never stored.
// A set never contains itself, and must not be added to one of its own descendants.
//
// Items are compared by identity, so implementations should be pointer types.
// Items whose dynamic value is not comparable are never considered equal.
type ArmorSet struct {
	name  string
	items []Item
}

// NewArmorSet returns an empty set.
//
// Postcondition: an empty name becomes DefaultArmorSetName; ItemCount() == 0.
func NewArmorSet(name string) *ArmorSet {
	if name == "" {
		name = DefaultArmorSetName
	}
	return &ArmorSet{name: name}
}

// Name returns the set's name.
func (s *ArmorSet) Name() string { return s.name }

// SetName renames the set. An empty name is ignored.
func (s *ArmorSet) SetName(name string) {
	if name != "" {
		s.name = name
	}
}

// Add appends item to the set.
//
// Postcondition: returns false, leaving the set unchanged, when item is nil
// (including a nil pointer in a non-nil interface), is s itself, or is already
// present; otherwise item is last in Items() and Add returns true.
func (s *ArmorSet) Add(item Item) bool {
	if IsNil(item) || sameItem(item, s) || s.Contains(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Remove deletes item from the set.
//
// Postcondition: returns true iff item was present; relative order of the
// remaining items is preserved.
func (s *ArmorSet) Remove(item Item) bool {
	for i, it := range s.items {
		if sameItem(it, item) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether item is a direct child of the set.
func (s *ArmorSet) Contains(item Item) bool {
	for _, it := range s.items {
		if sameItem(it, item) {
			return true
		}
	}
	return false
}

// Items returns a copy of the direct children in insertion order.
func (s *ArmorSet) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of direct children.
func (s *ArmorSet) Len() int { return len(s.items) }

// TotalValue returns the sum of every child's TotalValue, recursing through nested sets.
func (s *ArmorSet) TotalValue() int {
	total := 0
	for _, it := range s.items {
		total += it.TotalValue()
	}
	return total
}

// ItemCount returns the number of leaf items reachable from the set.
func (s *ArmorSet) ItemCount() int {
	count := 0
	for _, it := range s.items {
		count += it.ItemCount()
	}
	return count
}

// IsNil reports whether v is nil or an interface holding a nil pointer, map,
// slice, func, or channel.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sameItem compares a and b by identity without panicking on non-comparable
// dynamic values.
func sameItem(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
