package binder

import "github.com/mint-lang/mint/parser"

// Symbol is any named, resolvable entity: a variable, a function, or a
// lowering-only label.
type Symbol interface {
	SymbolName() string
}

// VariableKind distinguishes the three places a variable binding can come
// from; all three share the same VariableSymbol shape.
type VariableKind int

const (
	Local VariableKind = iota
	Global
	Parameter
)

// VariableSymbol describes a single variable, parameter, or for-loop
// induction variable binding.
type VariableSymbol struct {
	Name     string
	Type     Type
	ReadOnly bool
	Kind     VariableKind
}

func (v *VariableSymbol) SymbolName() string { return v.Name }

// FunctionSymbol describes a function's signature. Built-in functions
// (print, input) have a nil Decl; user-defined functions point back at the
// AST node that declared them.
type FunctionSymbol struct {
	Name       string
	Params     []*VariableSymbol
	ReturnType Type
	Decl       *parser.FunctionDecl
}

func (f *FunctionSymbol) SymbolName() string { return f.Name }

// LabelSymbol names a lowering-only jump target. Label names are generated
// by the binder (loop break/continue labels) and by the lowerer, and are
// unique within the function body (or top-level block) they belong to.
type LabelSymbol struct {
	Name string
}

func (l LabelSymbol) SymbolName() string { return l.Name }
