package inventory

const (
	// BoostAmount is the defense added by a BoostDecorator.
	BoostAmount = 5
	// WeakenAmount is the defense removed by a WeakenDecorator.
	WeakenAmount = 3
)

// BoostDecorator presents a wrapped item with +BoostAmount defense.
// The wrapped item is read on every call and never modified.
type BoostDecorator struct {
	inner DefenseItem
}

// Boost wraps item in a BoostDecorator.
//
// Precondition: item must be non-nil.
func Boost(item DefenseItem) *BoostDecorator {
	return &BoostDecorator{inner: item}
}

// Name returns the wrapped name with a " (Boosted)" qualifier.
func (b *BoostDecorator) Name() string { return b.inner.Name() + " (Boosted)" }

// Defense returns the wrapped defense plus BoostAmount.
//
// Postcondition: Defense() >= BoostAmount when the wrapped defense is non-negative.
func (b *BoostDecorator) Defense() int { return clampZero(b.inner.Defense() + BoostAmount) }

// Unwrap returns the decorated item.
func (b *BoostDecorator) Unwrap() DefenseItem { return b.inner }

// WeakenDecorator presents a wrapped item with WeakenAmount less defense, floored at zero.
type WeakenDecorator struct {
	inner DefenseItem
}

// Weaken wraps item in a WeakenDecorator.
//
// Precondition: item must be non-nil.
func Weaken(item DefenseItem) *WeakenDecorator {
	return &WeakenDecorator{inner: item}
}

// Name returns the wrapped name with a " (Weakened)" qualifier.
func (w *WeakenDecorator) Name() string { return w.inner.Name() + " (Weakened)" }

// Defense returns the wrapped defense minus WeakenAmount.
//
// Postcondition: Defense() >= 0.
func (w *WeakenDecorator) Defense() int { return clampZero(w.inner.Defense() - WeakenAmount) }

// Unwrap returns the decorated item.
func (w *WeakenDecorator) Unwrap() DefenseItem { return w.inner }

// bridgedItem adapts a DefenseItem to the Item view.
type bridgedItem struct {
	DefenseItem
}

func (b bridgedItem) TotalValue() int { return b.Defense() }
func (b bridgedItem) ItemCount() int  { return 1 }

// AsItem bridges a DefenseItem, typically a decorator chain, into an Item that
// an ArmorSet will accept. The bridge reads through to item on every call.
//
// Postcondition: returns nil when item is nil; a value already implementing Item
// is returned unchanged.
func AsItem(item DefenseItem) Item {
	if IsNil(item) {
		return nil
	}
	if it, ok := item.(Item); ok {
		return it
	}
	return &bridgedItem{DefenseItem: item}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
