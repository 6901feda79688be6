// Package eval executes a lowered, flattened bound program: a label-indexed
// instruction pointer walks each BoundBlockStatement's statement list,
// following Goto/ConditionalGoto jumps instead of recursing into structured
// control flow (structured if/while/for never reach this package; the
// lowerer has already rewritten them away).
package eval

import (
	"fmt"

	"github.com/mint-lang/mint/binder"
)

// Value is a runtime value: a tagged union over mint's three value-bearing
// types. A call to a void function produces voidValue, which is tagged
// TypeVoid but carries no usable payload.
type Value struct {
	Typ     binder.Type
	IntVal  int32
	BoolVal bool
	StrVal  string
}

// Type reports the value's runtime type.
func (v Value) Type() binder.Type { return v.Typ }

func IntValue(n int32) Value    { return Value{Typ: binder.TypeInt, IntVal: n} }
func BoolValue(b bool) Value    { return Value{Typ: binder.TypeBool, BoolVal: b} }
func StringValue(s string) Value { return Value{Typ: binder.TypeString, StrVal: s} }

// voidValue is returned by expressions of type void (calls to void
// functions). It carries no usable payload; nothing should ever inspect it.
var voidValue = Value{Typ: binder.TypeVoid}

// String renders v in mint's canonical textual form: this is exactly what
// the string() conversion and print() see, and what the REPL echoes back.
func (v Value) String() string {
	switch v.Typ {
	case binder.TypeInt:
		return fmt.Sprintf("%d", v.IntVal)
	case binder.TypeBool:
		return fmt.Sprintf("%t", v.BoolVal)
	case binder.TypeString:
		return v.StrVal
	default:
		return ""
	}
}
