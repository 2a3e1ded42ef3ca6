package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// RegisterModules installs the skirmish.* Lua table into L:
//
//	skirmish.log.debug/info/warn/error(msg)  write to the manager's logger
//	skirmish.bonus(n)                        the shared x1.5 multiplier, truncated
//	skirmish.RANGED_BONUS_RANGE, WARRIOR_THRESHOLD, WARRIOR_BONUS,
//	MAGE_THRESHOLD, MAGE_BONUS               the built-in combat constants
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: skirmish global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	mod := L.NewTable()

	logTbl := L.NewTable()
	for name, fn := range map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	} {
		L.SetField(logTbl, name, L.NewFunction(luaLogFunc(fn)))
	}
	L.SetField(mod, "log", logTbl)

	L.SetField(mod, "bonus", L.NewFunction(func(L *lua.LState) int {
		n := L.CheckInt(1)
		L.Push(lua.LNumber(n * 3 / 2))
		return 1
	}))

	for name, v := range map[string]int{
		"RANGED_BONUS_RANGE": combat.RangedBonusRange,
		"WARRIOR_THRESHOLD":  combat.WarriorThreshold,
		"WARRIOR_BONUS":      combat.WarriorBonus,
		"MAGE_THRESHOLD":     combat.MageThreshold,
		"MAGE_BONUS":         combat.MageBonus,
	} {
		L.SetField(mod, name, lua.LNumber(v))
	}

	L.SetGlobal("skirmish", mod)
}

func luaLogFunc(fn func(string, ...zap.Field)) lua.LGFunction {
	return func(L *lua.LState) int {
		fn(L.CheckString(1), zap.String("source", "lua"))
		return 0
	}
}
