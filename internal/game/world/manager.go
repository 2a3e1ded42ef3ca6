package world

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
)

// DefaultName is used when a world is created with an empty name.
const DefaultName = "Basic World"

// World is a bounded grid holding objects and creatures. Coordinates run from
// 0 to MaxX/MaxY inclusive.
//
// World's own bookkeeping is safe for concurrent use. The creatures it holds are not;
// see package creature.
type World struct {
	mu        sync.RWMutex
	name      string
	maxX      int
	maxY      int
	objects   []*Object
	creatures []*creature.Creature
	logger    *zap.Logger
}

// New creates an empty world.
//
// Precondition: logger must be non-nil (use zap.NewNop() to silence).
// Postcondition: negative bounds are stored as 0; an empty name becomes DefaultName.
func New(maxX, maxY int, name string, logger *zap.Logger) *World {
	if name == "" {
		name = DefaultName
	}
	w := &World{
		name:   name,
		maxX:   max(maxX, 0),
		maxY:   max(maxY, 0),
		logger: logger,
	}
	w.logger.Info("world created",
		zap.String("world", w.name),
		zap.Int("max_x", w.maxX),
		zap.Int("max_y", w.maxY),
	)
	return w
}

// Name returns the world's name.
func (w *World) Name() string { return w.name }

// Bounds returns the inclusive upper bounds of the grid.
func (w *World) Bounds() (maxX, maxY int) { return w.maxX, w.maxY }

// Clamp returns p moved to the nearest in-bounds coordinate.
func (w *World) Clamp(p Point) Point {
	return Point{X: clampAxis(p.X, w.maxX), Y: clampAxis(p.Y, w.maxY)}
}

// AddObject places o in the world, clamping its position into bounds.
// A nil object is ignored.
func (w *World) AddObject(o *Object) {
	if o == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	o.X, o.Y = clampAxis(o.X, w.maxX), clampAxis(o.Y, w.maxY)
	w.objects = append(w.objects, o)
	w.logger.Info("object added",
		zap.String("world", w.name),
		zap.String("object", o.Name),
		zap.String("uid", o.UID),
	)
}

// RemoveObject takes o out of the world if it is present and Removable.
//
// Postcondition: returns true iff o was removed.
func (w *World) RemoveObject(o *Object) bool {
	if o == nil || !o.Removable {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.objects {
		if existing == o {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			w.logger.Info("object removed",
				zap.String("world", w.name),
				zap.String("object", o.Name),
				zap.String("uid", o.UID),
			)
			return true
		}
	}
	return false
}

// Objects returns a snapshot of the objects in insertion order.
func (w *World) Objects() []*Object {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Object, len(w.objects))
	copy(out, w.objects)
	return out
}

// AddCreature places c in the world, clamping its position into bounds.
// A nil creature is ignored.
func (w *World) AddCreature(c *creature.Creature) {
	if c == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	c.X, c.Y = clampAxis(c.X, w.maxX), clampAxis(c.Y, w.maxY)
	w.creatures = append(w.creatures, c)
	w.logger.Info("creature added",
		zap.String("world", w.name),
		zap.String("creature", c.Name()),
		zap.Int("creature_id", c.ID()),
		zap.String("archetype", c.Archetype().Name),
	)
}

// RemoveCreature takes c out of the world.
//
// Postcondition: returns true iff c was present.
func (w *World) RemoveCreature(c *creature.Creature) bool {
	if c == nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.creatures {
		if existing == c {
			w.creatures = append(w.creatures[:i], w.creatures[i+1:]...)
			w.logger.Info("creature removed",
				zap.String("world", w.name),
				zap.String("creature", c.Name()),
				zap.Int("creature_id", c.ID()),
			)
			return true
		}
	}
	return false
}

// Creatures returns a snapshot of the creatures in insertion order.
func (w *World) Creatures() []*creature.Creature {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*creature.Creature, len(w.creatures))
	copy(out, w.creatures)
	return out
}

// Living returns the creatures that are still alive.
func (w *World) Living() []*creature.Creature {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var alive []*creature.Creature
	for _, c := range w.creatures {
		if c.IsAlive() {
			alive = append(alive, c)
		}
	}
	return alive
}

// Place moves c to (x, y), clamped into bounds.
//
// Postcondition: returns an error if c is not in this world.
func (w *World) Place(c *creature.Creature, x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, existing := range w.creatures {
		if existing == c {
			c.X, c.Y = clampAxis(x, w.maxX), clampAxis(y, w.maxY)
			return nil
		}
	}
	return fmt.Errorf("world %q: creature is not in this world", w.name)
}

// Distance returns the Chebyshev distance between a and b, the number of grid
// steps separating them when diagonal moves are allowed.
func Distance(a, b *creature.Creature) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// String renders the world summary.
func (w *World) String() string {
	return fmt.Sprintf("{Name=%s, MaxX = %d, MaxY = %d}", w.name, w.maxX, w.maxY)
}
