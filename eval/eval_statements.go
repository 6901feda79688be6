package eval

import "github.com/mint-lang/mint/binder"

// execStatement runs one statement of f's flattened body. It returns the
// next instruction index to jump to, or -1 to mean "advance to f.ip+1 as
// usual". Every lowering-only form (Label, Goto, ConditionalGoto) is
// handled here; none of the structured forms (If, While, For) ever reach
// this function, since the lowerer rewrote them away before the evaluator
// ever sees the program.
func (e *Evaluator) execStatement(f *frame, stmt binder.BoundStatement) (int, error) {
	switch s := stmt.(type) {
	case *binder.BoundLabelStatement:
		return -1, nil

	case *binder.BoundGotoStatement:
		return f.jumpTo(s.Label), nil

	case *binder.BoundConditionalGotoStatement:
		cond, err := e.evalExpression(f, s.Condition)
		if err != nil {
			return 0, err
		}
		if cond.BoolVal == !s.JumpIfFalse {
			return f.jumpTo(s.Label), nil
		}
		return -1, nil

	case *binder.BoundVariableDeclaration:
		val, err := e.evalExpression(f, s.Init)
		if err != nil {
			return 0, err
		}
		f.env.Define(s.Symbol, val)
		return -1, nil

	case *binder.BoundExpressionStatement:
		val, err := e.evalExpression(f, s.Expression)
		if err != nil {
			return 0, err
		}
		if f.topLevel {
			e.LastValue = val
		}
		return -1, nil

	case *binder.BoundReturnStatement:
		if s.Value != nil {
			val, err := e.evalExpression(f, s.Value)
			if err != nil {
				return 0, err
			}
			f.result = val
		} else {
			f.result = voidValue
		}
		f.returned = true
		return -1, nil

	case *binder.BoundErrorStatement:
		return 0, newRuntimeError("reached an unresolved statement")

	default:
		return 0, newRuntimeError("eval: unhandled statement %T", stmt)
	}
}
