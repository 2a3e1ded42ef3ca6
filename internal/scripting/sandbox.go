// Package scripting provides a sandboxed GopherLua execution environment for
// content-defined archetype modifiers. It depends on the combat package only
// for the Attacker view and Modifier type.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the maximum number of Lua opcodes allowed per
// modifier call or chunk load when no override is configured.
const DefaultInstructionLimit = 100_000

// removedGlobals are base-library functions that reach the filesystem or the
// collector and are cleared from every sandboxed state.
var removedGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require"}

// opBudget is a context.Context that cancels itself once Done has been polled
// more than its budget allows. The VM polls Done once per opcode.
type opBudget struct {
	context.Context
	cancel context.CancelFunc
	left   atomic.Int64
}

func newOpBudget(limit int) *opBudget {
	ctx, cancel := context.WithCancel(context.Background())
	b := &opBudget{Context: ctx, cancel: cancel}
	b.left.Store(int64(limit))
	return b
}

// Done spends one opcode and returns the cancellation channel.
func (b *opBudget) Done() <-chan struct{} {
	if b.left.Add(-1) <= 0 {
		b.cancel()
	}
	return b.Context.Done()
}

// NewSandboxedState creates a GopherLua LState with only the base, table,
// string and math libraries, and with removedGlobals cleared.
//
// Postcondition: Returns a non-nil LState. The caller owns it and must call L.Close().
func NewSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath} {
		open(L)
	}
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// limitedRun executes fn with at most limit opcodes available to L.
//
// Precondition: limit > 0; L is not shared with another goroutine during the call.
// Postcondition: L has no context attached when limitedRun returns.
func limitedRun(L *lua.LState, limit int, fn func() error) error {
	budget := newOpBudget(limit)
	defer budget.cancel()
	L.SetContext(budget)
	defer L.RemoveContext()
	return fn()
}
