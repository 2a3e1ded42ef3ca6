package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// ScriptPrefix marks a content-file modifier name that refers to a Lua function,
// e.g. "script:berserker".
const ScriptPrefix = "script:"

// Manager owns one sandboxed LState holding every loaded modifier script.
//
// Manager is safe for concurrent use; calls into the VM are serialized.
type Manager struct {
	mu        sync.Mutex
	state     *lua.LState
	instLimit int
	logger    *zap.Logger
}

// NewManager creates a Manager whose VM holds only the skirmish module.
//
// Precondition: logger must be non-nil; instLimit <= 0 uses DefaultInstructionLimit.
// Postcondition: Returns a non-nil Manager.
func NewManager(logger *zap.Logger, instLimit int) *Manager {
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	if instLimit <= 0 {
		instLimit = DefaultInstructionLimit
	}
	m := &Manager{
		state:     NewSandboxedState(),
		instLimit: instLimit,
		logger:    logger,
	}
	m.RegisterModules(m.state)
	return m
}

// LoadDir executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: functions defined by the scripts are callable; returns an error on
// the first file that fails to load or exceeds the instruction limit.
func (m *Manager) LoadDir(scriptDir string) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return fmt.Errorf("scripting: manager is closed")
	}
	for _, path := range luaFiles {
		if err := limitedRun(m.state, m.instLimit, func() error { return m.state.DoFile(path) }); err != nil {
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}
	m.logger.Debug("scripting: loaded modifier scripts",
		zap.String("dir", scriptDir),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// LoadString executes src as a single chunk. Intended for tests and embedded defaults.
func (m *Manager) LoadString(src string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return fmt.Errorf("scripting: manager is closed")
	}
	if err := limitedRun(m.state, m.instLimit, func() error { return m.state.DoString(src) }); err != nil {
		return fmt.Errorf("scripting: loading chunk: %w", err)
	}
	return nil
}

// HasFunction reports whether a global Lua function named fn is defined.
func (m *Manager) HasFunction(fn string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return false
	}
	_, ok := m.state.GetGlobal(fn).(*lua.LFunction)
	return ok
}

// CallHook calls the named Lua global function. Returns (LNil, nil) if the hook
// is not defined or the manager is closed. Lua runtime errors are logged at
// Warn level and never propagated.
//
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return lua.LNil, nil
	}

	L := m.state
	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	err := limitedRun(L, m.instLimit, func() error {
		return L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...)
	})
	if err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// Modifier returns a combat.Modifier that calls the Lua function fn as
// fn(hp, max_hp, base) and uses its numeric result, truncated to an int.
// When fn is missing, errors, or returns a non-number, base is returned.
func (m *Manager) Modifier(fn string) combat.Modifier {
	return func(a combat.Attacker, base int) int {
		ret, _ := m.CallHook(fn, lua.LNumber(a.HP()), lua.LNumber(a.MaxHP()), lua.LNumber(base))
		n, ok := ret.(lua.LNumber)
		if !ok {
			if ret != lua.LNil {
				m.logger.Warn("scripting: modifier returned non-number",
					zap.String("hook", fn),
					zap.String("type", ret.Type().String()),
				)
			}
			return base
		}
		return int(n)
	}
}

// Resolve turns a content-file modifier name into a combat.Modifier.
// Names prefixed with ScriptPrefix bind to a loaded Lua function; everything
// else is delegated to combat.ModifierByName.
//
// Postcondition: returns an error when a script function is not defined.
func (m *Manager) Resolve(name string) (combat.Modifier, error) {
	fn, ok := strings.CutPrefix(strings.TrimSpace(name), ScriptPrefix)
	if !ok {
		return combat.ModifierByName(name)
	}
	if fn == "" || !m.HasFunction(fn) {
		return nil, fmt.Errorf("scripting: modifier function %q is not defined", fn)
	}
	return m.Modifier(fn), nil
}

// Close releases the VM. Subsequent calls are no-ops returning LNil.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.state.Close()
		m.state = nil
	}
}
