package binder

// BoundNode is the base of every node in the typed bound tree.
type BoundNode interface {
	boundNode()
}

// BoundExpression is a bound node that produces a value of a known Type.
type BoundExpression interface {
	BoundNode
	Type() Type
}

// BoundStatement is a bound node with no value of its own.
type BoundStatement interface {
	BoundNode
}

type boundExprBase struct{}

func (boundExprBase) boundNode() {}

type boundStmtBase struct{}

func (boundStmtBase) boundNode() {}

// BoundLiteralExpression carries a constant int/bool/string value directly
// in the bound tree; literal kind dictates its type (spec.md §4.4).
type BoundLiteralExpression struct {
	boundExprBase
	Typ      Type
	IntVal   int32
	BoolVal  bool
	StrVal   string
}

func (b *BoundLiteralExpression) Type() Type { return b.Typ }

// BoundVariableExpression resolves a name to its declared symbol.
type BoundVariableExpression struct {
	boundExprBase
	Symbol *VariableSymbol
}

func (b *BoundVariableExpression) Type() Type { return b.Symbol.Type }

// BoundAssignmentExpression is `name = value`. Its type is the target
// variable's type (assignment is an expression).
type BoundAssignmentExpression struct {
	boundExprBase
	Symbol *VariableSymbol
	Value  BoundExpression
}

func (b *BoundAssignmentExpression) Type() Type { return b.Symbol.Type }

// BoundUnaryExpression applies a resolved UnaryOperator.
type BoundUnaryExpression struct {
	boundExprBase
	Op      *UnaryOperator
	Operand BoundExpression
}

func (b *BoundUnaryExpression) Type() Type { return b.Op.ResultType }

// BoundBinaryExpression applies a resolved BinaryOperator.
type BoundBinaryExpression struct {
	boundExprBase
	Op    *BinaryOperator
	Left  BoundExpression
	Right BoundExpression
}

func (b *BoundBinaryExpression) Type() Type { return b.Op.ResultType }

// BoundCallExpression invokes a user-defined or built-in function.
type BoundCallExpression struct {
	boundExprBase
	Function *FunctionSymbol
	Args     []BoundExpression
}

func (b *BoundCallExpression) Type() Type { return b.Function.ReturnType }

// BoundConversionExpression is the only node that changes a value's type
// in the bound tree; it is inserted by the binder, never written directly
// by the parser.
type BoundConversionExpression struct {
	boundExprBase
	To         Type
	Expression BoundExpression
}

func (b *BoundConversionExpression) Type() Type { return b.To }

// BoundErrorExpression stands in for an expression the binder could not
// resolve, so that binding can continue without cascading diagnostics.
type BoundErrorExpression struct {
	boundExprBase
}

func (b *BoundErrorExpression) Type() Type { return TypeError }

// BoundBlockStatement is a sequence of statements sharing one lexical
// scope. The lowerer flattens every BoundBlockStatement it finds into its
// parent's statement list.
type BoundBlockStatement struct {
	boundStmtBase
	Statements []BoundStatement
}

// BoundExpressionStatement evaluates an expression and discards its value
// (the evaluator remembers it as the "last value" only at top level).
type BoundExpressionStatement struct {
	boundStmtBase
	Expression BoundExpression
}

// BoundVariableDeclaration declares and initializes a new variable in the
// current scope.
type BoundVariableDeclaration struct {
	boundStmtBase
	Symbol *VariableSymbol
	Init   BoundExpression
}

// BoundIfStatement is a structured if/else; the lowerer rewrites it into
// ConditionalGoto/Label form and it does not survive lowering.
type BoundIfStatement struct {
	boundStmtBase
	Condition BoundExpression
	Then      BoundStatement
	Else      BoundStatement // nil when there is no else clause
}

// LoopLabels is the (break, continue) pair every loop construct carries so
// break/continue can be bound to a Goto before the loop itself is lowered.
type LoopLabels struct {
	Break    LabelSymbol
	Continue LabelSymbol
}

// BoundWhileStatement is a structured while loop; rewritten by the lowerer
// and does not survive lowering.
type BoundWhileStatement struct {
	boundStmtBase
	Condition BoundExpression
	Body      BoundStatement
	Labels    LoopLabels
}

// BoundForStatement is a structured for-to loop; rewritten by the lowerer
// into a var declaration plus a while loop, and does not survive lowering.
type BoundForStatement struct {
	boundStmtBase
	Variable      *VariableSymbol
	Lower         BoundExpression
	Upper         BoundExpression
	UpperVariable *VariableSymbol // fresh hidden int local holding Upper
	Body          BoundStatement
	Labels        LoopLabels
}

// BoundLabelStatement is a lowering-only landing pad.
type BoundLabelStatement struct {
	boundStmtBase
	Label LabelSymbol
}

// BoundGotoStatement is a lowering-only unconditional jump.
type BoundGotoStatement struct {
	boundStmtBase
	Label LabelSymbol
}

// BoundConditionalGotoStatement is a lowering-only conditional jump: it
// jumps to Label when Condition evaluates to !JumpIfFalse.
type BoundConditionalGotoStatement struct {
	boundStmtBase
	Label       LabelSymbol
	Condition   BoundExpression
	JumpIfFalse bool
}

// BoundReturnStatement unwinds the current function call, yielding Value
// to the caller.
type BoundReturnStatement struct {
	boundStmtBase
	Value BoundExpression
}

// BoundErrorStatement stands in for a statement the binder rejected (e.g.
// break/continue outside a loop), letting binding continue.
type BoundErrorStatement struct {
	boundStmtBase
}
