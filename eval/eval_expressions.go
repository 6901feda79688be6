package eval

import (
	"strconv"

	"github.com/mint-lang/mint/binder"
)

// evalExpression evaluates expr against f's environment.
func (e *Evaluator) evalExpression(f *frame, expr binder.BoundExpression) (Value, error) {
	switch ex := expr.(type) {
	case *binder.BoundLiteralExpression:
		switch ex.Typ {
		case binder.TypeInt:
			return IntValue(ex.IntVal), nil
		case binder.TypeBool:
			return BoolValue(ex.BoolVal), nil
		case binder.TypeString:
			return StringValue(ex.StrVal), nil
		default:
			return Value{}, newRuntimeError("eval: literal of type %s", ex.Typ)
		}

	case *binder.BoundVariableExpression:
		val, ok := f.env.Get(ex.Symbol)
		if !ok {
			return Value{}, newRuntimeError("eval: unbound variable %q", ex.Symbol.Name)
		}
		return val, nil

	case *binder.BoundAssignmentExpression:
		val, err := e.evalExpression(f, ex.Value)
		if err != nil {
			return Value{}, err
		}
		if !f.env.Assign(ex.Symbol, val) {
			return Value{}, newRuntimeError("eval: assignment to unbound variable %q", ex.Symbol.Name)
		}
		return val, nil

	case *binder.BoundUnaryExpression:
		return e.evalUnary(f, ex)

	case *binder.BoundBinaryExpression:
		return e.evalBinary(f, ex)

	case *binder.BoundCallExpression:
		return e.evalCall(f, ex)

	case *binder.BoundConversionExpression:
		return e.evalConversion(f, ex)

	case *binder.BoundErrorExpression:
		return Value{}, newRuntimeError("reached an unresolved expression")

	default:
		return Value{}, newRuntimeError("eval: unhandled expression %T", expr)
	}
}

func (e *Evaluator) evalUnary(f *frame, ex *binder.BoundUnaryExpression) (Value, error) {
	operand, err := e.evalExpression(f, ex.Operand)
	if err != nil {
		return Value{}, err
	}
	switch ex.Op.Kind {
	case binder.LogicalNegation:
		return BoolValue(!operand.BoolVal), nil
	case binder.Identity:
		return IntValue(operand.IntVal), nil
	case binder.Negation:
		return IntValue(-operand.IntVal), nil
	default:
		return Value{}, newRuntimeError("eval: unhandled unary operator")
	}
}

// evalBinary evaluates a binary expression. && and || short-circuit: the
// right operand is not evaluated at all when the left already decides the
// result, matching every C-family language mint's syntax is modeled on.
func (e *Evaluator) evalBinary(f *frame, ex *binder.BoundBinaryExpression) (Value, error) {
	if ex.Op.Kind == binder.LogicalAnd {
		left, err := e.evalExpression(f, ex.Left)
		if err != nil {
			return Value{}, err
		}
		if !left.BoolVal {
			return BoolValue(false), nil
		}
		return e.evalExpression(f, ex.Right)
	}
	if ex.Op.Kind == binder.LogicalOr {
		left, err := e.evalExpression(f, ex.Left)
		if err != nil {
			return Value{}, err
		}
		if left.BoolVal {
			return BoolValue(true), nil
		}
		return e.evalExpression(f, ex.Right)
	}

	left, err := e.evalExpression(f, ex.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := e.evalExpression(f, ex.Right)
	if err != nil {
		return Value{}, err
	}

	switch ex.Op.Kind {
	case binder.Addition:
		return IntValue(left.IntVal + right.IntVal), nil
	case binder.Subtraction:
		return IntValue(left.IntVal - right.IntVal), nil
	case binder.Multiplication:
		return IntValue(left.IntVal * right.IntVal), nil
	case binder.Division:
		if right.IntVal == 0 {
			return Value{}, newRuntimeError("division by zero")
		}
		return IntValue(left.IntVal / right.IntVal), nil
	case binder.Less:
		return BoolValue(left.IntVal < right.IntVal), nil
	case binder.LessOrEquals:
		return BoolValue(left.IntVal <= right.IntVal), nil
	case binder.Greater:
		return BoolValue(left.IntVal > right.IntVal), nil
	case binder.GreaterOrEquals:
		return BoolValue(left.IntVal >= right.IntVal), nil
	case binder.Equality:
		return BoolValue(valuesEqual(left, right)), nil
	case binder.Inequality:
		return BoolValue(!valuesEqual(left, right)), nil
	case binder.StringConcatenation:
		return StringValue(left.StrVal + right.StrVal), nil
	default:
		return Value{}, newRuntimeError("eval: unhandled binary operator")
	}
}

// valuesEqual compares two values of the same bound-checked type by value;
// strings compare by content, never by identity.
func valuesEqual(left, right Value) bool {
	switch left.Typ {
	case binder.TypeInt:
		return left.IntVal == right.IntVal
	case binder.TypeBool:
		return left.BoolVal == right.BoolVal
	case binder.TypeString:
		return left.StrVal == right.StrVal
	default:
		return false
	}
}

func (e *Evaluator) evalCall(f *frame, ex *binder.BoundCallExpression) (Value, error) {
	args := make([]Value, len(ex.Args))
	for i, a := range ex.Args {
		val, err := e.evalExpression(f, a)
		if err != nil {
			return Value{}, err
		}
		args[i] = val
	}

	if ex.Function.Decl == nil {
		return e.invokeBuiltin(ex.Function.Name, args)
	}
	return e.callFunction(ex.Function.Name, args)
}

// evalConversion implements the three explicit call-syntax conversions;
// int(), bool() and string() are the only ones the binder ever produces a
// BoundConversionExpression for (see binder.Classify).
func (e *Evaluator) evalConversion(f *frame, ex *binder.BoundConversionExpression) (Value, error) {
	inner, err := e.evalExpression(f, ex.Expression)
	if err != nil {
		return Value{}, err
	}

	switch ex.To {
	case binder.TypeString:
		return StringValue(inner.String()), nil

	case binder.TypeBool:
		switch inner.Typ {
		case binder.TypeString:
			return BoolValue(inner.StrVal != ""), nil
		default:
			return Value{}, newRuntimeError("eval: bool() conversion from %s", inner.Typ)
		}

	case binder.TypeInt:
		if inner.Typ != binder.TypeString {
			return Value{}, newRuntimeError("eval: int() conversion from %s", inner.Typ)
		}
		n, err := strconv.ParseInt(inner.StrVal, 10, 32)
		if err != nil {
			return Value{}, newRuntimeError("int(%q): not a valid integer", inner.StrVal)
		}
		return IntValue(int32(n)), nil

	default:
		return Value{}, newRuntimeError("eval: unsupported conversion target %s", ex.To)
	}
}
