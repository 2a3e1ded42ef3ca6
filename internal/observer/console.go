package observer

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// ConsoleObserver narrates combat as plain sentences on w.
type ConsoleObserver struct {
	w     io.Writer
	title cases.Caser
	color bool
}

// NewConsoleObserver creates a narrator writing to w. When color is true,
// deaths are highlighted with ANSI red.
//
// Precondition: w must be non-nil.
func NewConsoleObserver(w io.Writer, color bool) *ConsoleObserver {
	return &ConsoleObserver{w: w, title: cases.Title(language.English), color: color}
}

// OnDamageDone prints "<attacker> attacks <target> for <n> damage".
func (o *ConsoleObserver) OnDamageDone(attacker *creature.Creature, _ string, target creature.Attackable, damage int) {
	fmt.Fprintf(o.w, "%s attacks %s for %d damage\n", o.title.String(attacker.Name()), o.title.String(targetName(target)), damage)
}

// OnHit prints damage taken, and the blocked amount when armor absorbed any.
func (o *ConsoleObserver) OnHit(c *creature.Creature, _ string, taken, mitigated int) {
	if mitigated > 0 {
		fmt.Fprintf(o.w, "%s takes %d damage (blocked %d)\n", o.title.String(c.Name()), taken, mitigated)
		return
	}
	fmt.Fprintf(o.w, "%s takes %d damage\n", o.title.String(c.Name()), taken)
}

// OnDied prints the death notice.
func (o *ConsoleObserver) OnDied(c *creature.Creature) {
	msg := fmt.Sprintf("%s has died!", o.title.String(c.Name()))
	if o.color {
		msg = ansiRed + msg + ansiReset
	}
	fmt.Fprintln(o.w, msg)
}
