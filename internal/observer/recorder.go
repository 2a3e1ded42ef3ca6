package observer

import "github.com/cory-johannsen/skirmish/internal/game/creature"

// EventType identifies which callback produced an Event.
type EventType int

const (
	EventDamageDone EventType = iota
	EventHit
	EventDied
)

// String returns a human-readable event label.
func (t EventType) String() string {
	switch t {
	case EventDamageDone:
		return "damage_done"
	case EventHit:
		return "hit"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// Event is one recorded notification. Fields that do not apply to Type are zero.
type Event struct {
	Type      EventType
	Creature  *creature.Creature
	Action    string
	Target    creature.Attackable
	Damage    int
	Mitigated int
	// HP is the creature's HP at the moment the callback ran.
	HP int
}

// Recorder keeps every notification it receives, in order.
type Recorder struct {
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// OnDamageDone records an EventDamageDone.
func (r *Recorder) OnDamageDone(attacker *creature.Creature, action string, target creature.Attackable, damage int) {
	r.events = append(r.events, Event{Type: EventDamageDone, Creature: attacker, Action: action, Target: target, Damage: damage, HP: attacker.HP()})
}

// OnHit records an EventHit.
func (r *Recorder) OnHit(c *creature.Creature, action string, taken, mitigated int) {
	r.events = append(r.events, Event{Type: EventHit, Creature: c, Action: action, Damage: taken, Mitigated: mitigated, HP: c.HP()})
}

// OnDied records an EventDied.
func (r *Recorder) OnDied(c *creature.Creature) {
	r.events = append(r.events, Event{Type: EventDied, Creature: c, HP: c.HP()})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of type t were recorded.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Reset discards all recorded events.
func (r *Recorder) Reset() { r.events = nil }
