// Package world provides the bounded 2D container that tracks which objects and
// creatures exist in a simulation.
package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Object is a non-creature thing placed in the world, such as dropped gear or scenery.
type Object struct {
	// UID is a random instance identifier assigned by NewObject.
	UID string
	// Name is the display name.
	Name string
	X    int
	Y    int
	// Removable marks objects that RemoveObject may take out of the world.
	Removable bool
	// Payload optionally carries the item this object represents.
	Payload any
}

// NewObject creates an object at the origin with a fresh UID.
//
// Postcondition: UID is non-empty and unique; an empty name becomes "Unnamed".
func NewObject(name string, removable bool) *Object {
	if name == "" {
		name = "Unnamed"
	}
	return &Object{UID: uuid.New().String(), Name: name, Removable: removable}
}

// String renders the object for display.
func (o *Object) String() string {
	removable := "No"
	if o.Removable {
		removable = "Yes"
	}
	return fmt.Sprintf("[Object: %s] UID: %s - Position: (%d, %d) - Removable: %s", o.Name, o.UID, o.X, o.Y, removable)
}

// Point is a grid coordinate.
type Point struct {
	X int
	Y int
}

// clampAxis limits v to [0, max].
func clampAxis(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
