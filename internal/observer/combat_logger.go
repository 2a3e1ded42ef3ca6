// Package observer provides creature.Observer implementations: a structured
// combat log, a console narrator, and an in-memory recorder.
package observer

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/creature"
)

// CombatLogger writes every combat notification to a zap logger at Info level.
// It holds no global state; attach one instance to as many creatures as needed.
type CombatLogger struct {
	logger *zap.Logger
}

// NewCombatLogger creates a CombatLogger writing to logger.
//
// Precondition: logger must be non-nil.
func NewCombatLogger(logger *zap.Logger) *CombatLogger {
	return &CombatLogger{logger: logger}
}

// OnDamageDone logs the attacker, target and final damage.
func (l *CombatLogger) OnDamageDone(attacker *creature.Creature, action string, target creature.Attackable, damage int) {
	l.logger.Info("damage done",
		zap.String("attacker", attacker.Name()),
		zap.Int("attacker_id", attacker.ID()),
		zap.String("action", labelOr(action)),
		zap.String("target", targetName(target)),
		zap.Int("damage", damage),
	)
}

// OnHit logs damage taken and mitigated.
func (l *CombatLogger) OnHit(c *creature.Creature, action string, taken, mitigated int) {
	l.logger.Info("damage taken",
		zap.String("creature", c.Name()),
		zap.Int("creature_id", c.ID()),
		zap.String("action", labelOr(action)),
		zap.Int("damage", taken),
		zap.Int("mitigated", mitigated),
		zap.Int("hp_before", c.HP()),
	)
}

// OnDied logs the death.
func (l *CombatLogger) OnDied(c *creature.Creature) {
	l.logger.Info("creature died",
		zap.String("creature", c.Name()),
		zap.Int("creature_id", c.ID()),
	)
}

func labelOr(action string) string {
	if action == "" {
		return "Unknown"
	}
	return action
}

func targetName(t creature.Attackable) string {
	if t == nil {
		return "Unknown"
	}
	if n := t.Name(); n != "" {
		return n
	}
	return "Unknown"
}
