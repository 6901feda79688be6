// Package parser turns a mint token stream into a compilation-unit AST,
// following the grammar laid out in the language's specification. AST
// nodes are untyped and faithful to source syntax; the binder package
// resolves them into a typed bound tree.
package parser

import (
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
)

// Node is the base interface implemented by every AST node; it exposes
// the node's starting source position for diagnostics.
type Node interface {
	Pos() diag.Position
}

// Decl is a top-level declaration: either a FunctionDecl or any Stmt.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement node. Every Stmt is also a Decl, since the grammar
// allows a bare statement at the top level of a compilation unit.
type Stmt interface {
	Decl
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// CompilationUnit is the root AST node: the whole parsed source file.
type CompilationUnit struct {
	Decls []Decl
	EOF   lexer.Token
}

func (c *CompilationUnit) Pos() diag.Position {
	if len(c.Decls) > 0 {
		return c.Decls[0].Pos()
	}
	return c.EOF.Pos
}

// TypeClause is the optional `: IDENT` suffix on a parameter or a var/let
// declaration.
type TypeClause struct {
	Colon lexer.Token
	Name  lexer.Token
}

func (t TypeClause) Pos() diag.Position { return t.Colon.Pos }

// Param is a single function parameter: `IDENT TypeClause`.
type Param struct {
	Name lexer.Token
	Type TypeClause
}

func (p Param) Pos() diag.Position { return p.Name.Pos }

// FunctionDecl is `function IDENT ( ParamList? ) TypeClause? Block`.
type FunctionDecl struct {
	Keyword    lexer.Token
	Name       lexer.Token
	Params     []Param
	ReturnType *TypeClause // nil means an implicit void return type
	Body       *Block
}

func (f *FunctionDecl) Pos() diag.Position { return f.Keyword.Pos }
func (f *FunctionDecl) declNode()          {}

// Block is `{ Statement* }`.
type Block struct {
	LBrace lexer.Token
	Stmts  []Stmt
	RBrace lexer.Token
}

func (b *Block) Pos() diag.Position { return b.LBrace.Pos }
func (b *Block) declNode()          {}
func (b *Block) stmtNode()          {}

// VarDecl is `('var'|'let') IDENT TypeClause? '=' Expression ';'`.
type VarDecl struct {
	Keyword  lexer.Token // Var or Let
	Name     lexer.Token
	Type     *TypeClause // nil when the type is inferred from the initializer
	Equals   lexer.Token
	Init     Expr
	Semi     lexer.Token
}

func (v *VarDecl) Pos() diag.Position { return v.Keyword.Pos }
func (v *VarDecl) declNode()          {}
func (v *VarDecl) stmtNode()          {}

// IsReadOnly reports whether this declaration used `let`.
func (v *VarDecl) IsReadOnly() bool { return v.Keyword.Kind == lexer.Let }

// IfStmt is `if '(' Expression ')' Statement ('else' Statement)?`.
type IfStmt struct {
	Keyword    lexer.Token
	Condition  Expr
	Then       Stmt
	ElseKeyword *lexer.Token
	Else       Stmt // nil when there is no else clause
}

func (i *IfStmt) Pos() diag.Position { return i.Keyword.Pos }
func (i *IfStmt) declNode()          {}
func (i *IfStmt) stmtNode()          {}

// WhileStmt is `while '(' Expression ')' Statement`.
type WhileStmt struct {
	Keyword   lexer.Token
	Condition Expr
	Body      Stmt
}

func (w *WhileStmt) Pos() diag.Position { return w.Keyword.Pos }
func (w *WhileStmt) declNode()          {}
func (w *WhileStmt) stmtNode()          {}

// ForStmt is `for IDENT '=' Expression 'to' Expression Statement`.
type ForStmt struct {
	Keyword lexer.Token
	Ident   lexer.Token
	Equals  lexer.Token
	Lower   Expr
	ToKw    lexer.Token
	Upper   Expr
	Body    Stmt
}

func (f *ForStmt) Pos() diag.Position { return f.Keyword.Pos }
func (f *ForStmt) declNode()          {}
func (f *ForStmt) stmtNode()          {}

// BreakStmt is `'break' ';'`.
type BreakStmt struct {
	Keyword lexer.Token
	Semi    lexer.Token
}

func (b *BreakStmt) Pos() diag.Position { return b.Keyword.Pos }
func (b *BreakStmt) declNode()          {}
func (b *BreakStmt) stmtNode()          {}

// ContinueStmt is `'continue' ';'`.
type ContinueStmt struct {
	Keyword lexer.Token
	Semi    lexer.Token
}

func (c *ContinueStmt) Pos() diag.Position { return c.Keyword.Pos }
func (c *ContinueStmt) declNode()          {}
func (c *ContinueStmt) stmtNode()          {}

// ReturnStmt is `'return' Expression ';'`.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
	Semi    lexer.Token
}

func (r *ReturnStmt) Pos() diag.Position { return r.Keyword.Pos }
func (r *ReturnStmt) declNode()          {}
func (r *ReturnStmt) stmtNode()          {}

// ExpressionStmt is `Expression ';'`.
type ExpressionStmt struct {
	Expression Expr
	Semi       lexer.Token
}

func (e *ExpressionStmt) Pos() diag.Position { return e.Expression.Pos() }
func (e *ExpressionStmt) declNode()          {}
func (e *ExpressionStmt) stmtNode()          {}

// BadStmt is produced in place of a statement the parser could not parse,
// after recovery has discarded tokens up to and including the next `;`.
type BadStmt struct {
	At lexer.Token
}

func (b *BadStmt) Pos() diag.Position { return b.At.Pos }
func (b *BadStmt) declNode()          {}
func (b *BadStmt) stmtNode()          {}

// LiteralExpr is a NUMBER, STRING, `true`, or `false` literal.
type LiteralExpr struct {
	Token lexer.Token
}

func (l *LiteralExpr) Pos() diag.Position { return l.Token.Pos }
func (l *LiteralExpr) exprNode()          {}

// NameExpr is a bare identifier used as an expression.
type NameExpr struct {
	Token lexer.Token
}

func (n *NameExpr) Pos() diag.Position { return n.Token.Pos }
func (n *NameExpr) exprNode()          {}

// ParenthesizedExpr is `'(' Expression ')'`.
type ParenthesizedExpr struct {
	LParen lexer.Token
	Inner  Expr
	RParen lexer.Token
}

func (p *ParenthesizedExpr) Pos() diag.Position { return p.LParen.Pos }
func (p *ParenthesizedExpr) exprNode()          {}

// UnaryExpr is `('!'|'+'|'-') Unary`.
type UnaryExpr struct {
	Op      lexer.Token
	Operand Expr
}

func (u *UnaryExpr) Pos() diag.Position { return u.Op.Pos }
func (u *UnaryExpr) exprNode()          {}

// BinaryExpr is any of the left-associative binary productions.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (b *BinaryExpr) Pos() diag.Position { return b.Left.Pos() }
func (b *BinaryExpr) exprNode()          {}

// AssignmentExpr is `IDENT '=' Assignment`.
type AssignmentExpr struct {
	Name   lexer.Token
	Equals lexer.Token
	Value  Expr
}

func (a *AssignmentExpr) Pos() diag.Position { return a.Name.Pos }
func (a *AssignmentExpr) exprNode()          {}

// CallExpr is `IDENT '(' (Expression (',' Expression)*)? ')'`. This also
// covers explicit conversions (`int(x)`, `bool(x)`, `string(x)`), which the
// binder distinguishes from ordinary calls by resolving the callee name
// against the built-in type names first.
type CallExpr struct {
	Name   lexer.Token
	LParen lexer.Token
	Args   []Expr
	RParen lexer.Token
}

func (c *CallExpr) Pos() diag.Position { return c.Name.Pos }
func (c *CallExpr) exprNode()          {}

// BadExpr is produced in place of an expression the parser could not parse.
type BadExpr struct {
	At lexer.Token
}

func (b *BadExpr) Pos() diag.Position { return b.At.Pos }
func (b *BadExpr) exprNode()          {}
