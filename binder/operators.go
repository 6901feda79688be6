package binder

import "github.com/mint-lang/mint/lexer"

// UnaryOperatorKind names the bound-tree operation a resolved unary
// operator performs, independent of the syntax that spelled it.
type UnaryOperatorKind int

const (
	LogicalNegation UnaryOperatorKind = iota
	Identity
	Negation
)

// UnaryOperator is one exhaustive row of the unary operator table: a
// (syntax, operand type) pair resolves to exactly one of these, or to
// nothing at all.
type UnaryOperator struct {
	SyntaxKind  lexer.Kind
	Kind        UnaryOperatorKind
	OperandType Type
	ResultType  Type
}

var unaryOperators = []UnaryOperator{
	{lexer.Bang, LogicalNegation, TypeBool, TypeBool},
	{lexer.Plus, Identity, TypeInt, TypeInt},
	{lexer.Minus, Negation, TypeInt, TypeInt},
}

// BindUnaryOperator looks up the unary operator table by the exact pair
// (syntaxKind, operandType). There is no implicit widening: an unmatched
// pair is simply not a legal operator application.
func BindUnaryOperator(syntaxKind lexer.Kind, operandType Type) (*UnaryOperator, bool) {
	for i := range unaryOperators {
		op := &unaryOperators[i]
		if op.SyntaxKind == syntaxKind && op.OperandType == operandType {
			return op, true
		}
	}
	return nil, false
}

// BinaryOperatorKind names the bound-tree operation a resolved binary
// operator performs.
type BinaryOperatorKind int

const (
	Addition BinaryOperatorKind = iota
	Subtraction
	Multiplication
	Division
	LogicalAnd
	LogicalOr
	Equality
	Inequality
	Less
	LessOrEquals
	Greater
	GreaterOrEquals
	StringConcatenation
)

// BinaryOperator is one exhaustive row of the binary operator table,
// keyed by the triple (syntax, left type, right type).
type BinaryOperator struct {
	SyntaxKind lexer.Kind
	Kind       BinaryOperatorKind
	LeftType   Type
	RightType  Type
	ResultType Type
}

var binaryOperators = []BinaryOperator{
	{lexer.Plus, Addition, TypeInt, TypeInt, TypeInt},
	{lexer.Minus, Subtraction, TypeInt, TypeInt, TypeInt},
	{lexer.Star, Multiplication, TypeInt, TypeInt, TypeInt},
	{lexer.Slash, Division, TypeInt, TypeInt, TypeInt},

	{lexer.Less, Less, TypeInt, TypeInt, TypeBool},
	{lexer.LessEquals, LessOrEquals, TypeInt, TypeInt, TypeBool},
	{lexer.Greater, Greater, TypeInt, TypeInt, TypeBool},
	{lexer.GreaterEquals, GreaterOrEquals, TypeInt, TypeInt, TypeBool},

	{lexer.EqualsEquals, Equality, TypeInt, TypeInt, TypeBool},
	{lexer.EqualsEquals, Equality, TypeBool, TypeBool, TypeBool},
	{lexer.EqualsEquals, Equality, TypeString, TypeString, TypeBool},
	{lexer.BangEquals, Inequality, TypeInt, TypeInt, TypeBool},
	{lexer.BangEquals, Inequality, TypeBool, TypeBool, TypeBool},
	{lexer.BangEquals, Inequality, TypeString, TypeString, TypeBool},

	{lexer.AmpAmp, LogicalAnd, TypeBool, TypeBool, TypeBool},
	{lexer.PipePipe, LogicalOr, TypeBool, TypeBool, TypeBool},

	{lexer.Plus, StringConcatenation, TypeString, TypeString, TypeString},
}

// BindBinaryOperator looks up the binary operator table by the exact
// triple (syntaxKind, leftType, rightType).
func BindBinaryOperator(syntaxKind lexer.Kind, leftType, rightType Type) (*BinaryOperator, bool) {
	for i := range binaryOperators {
		op := &binaryOperators[i]
		if op.SyntaxKind == syntaxKind && op.LeftType == leftType && op.RightType == rightType {
			return op, true
		}
	}
	return nil, false
}
