package eval

import "github.com/mint-lang/mint/binder"

// Environment maps variable symbols to their current values. Unlike a
// source-level scope chain, lookup keys on the symbol's pointer identity,
// not its name: the bound tree already resolved every name reference to a
// *binder.VariableSymbol, so there is no shadowing ambiguity left to
// resolve at runtime, and no need to carry separate read-only/type tables
// here (the binder already enforced those statically).
//
// A function call's environment is parented directly at the global
// environment, never at the caller's locals: mint has no closures, so a
// function body can only ever see its own parameters/locals and globals.
type Environment struct {
	values map[*binder.VariableSymbol]Value
	parent *Environment
}

// NewEnvironment creates an environment chained to parent. Pass nil for the
// global environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[*binder.VariableSymbol]Value), parent: parent}
}

// Define binds sym to val in this environment, overwriting any existing
// binding for sym in this environment (never in a parent).
func (e *Environment) Define(sym *binder.VariableSymbol, val Value) {
	e.values[sym] = val
}

// Get looks up sym, walking up the parent chain. The binder guarantees
// every BoundVariableExpression/BoundAssignmentExpression's symbol was
// declared somewhere reachable, so a missing symbol here is an evaluator
// bug, not a user-facing error.
func (e *Environment) Get(sym *binder.VariableSymbol) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[sym]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Assign updates sym's value in whichever environment in the chain already
// binds it.
func (e *Environment) Assign(sym *binder.VariableSymbol, val Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[sym]; ok {
			env.values[sym] = val
			return true
		}
	}
	return false
}
