package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInputProducesNoDecls(t *testing.T) {
	p := NewParser("")
	unit := p.Parse()
	assert.False(t, p.Diags.HasErrors())
	assert.Empty(t, unit.Decls)
}

func TestParse_VarDecl(t *testing.T) {
	p := NewParser(`var x: int = 1 + 2;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	require.Len(t, unit.Decls, 1)
	v, ok := unit.Decls[0].(*VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.False(t, v.IsReadOnly())
	assert.NotNil(t, v.Type)
	assert.Equal(t, "int", v.Type.Name.Lexeme)
}

func TestParse_LetDeclIsReadOnly(t *testing.T) {
	p := NewParser(`let x = 1;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	v := unit.Decls[0].(*VarDecl)
	assert.True(t, v.IsReadOnly())
	assert.Nil(t, v.Type)
}

func TestParse_FunctionDecl(t *testing.T) {
	src := `function add(a: int, b: int): int { return a + b; }`
	p := NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	fn, ok := unit.Decls[0].(*FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name.Lexeme)
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, "int", fn.ReturnType.Name.Lexeme)
}

func TestParse_FunctionBodyMustEndInReturn(t *testing.T) {
	src := `function f(): int { var x = 1; }`
	p := NewParser(src)
	p.Parse()
	assert.True(t, p.Diags.HasErrors())
}

func TestParse_IfElse(t *testing.T) {
	src := `if (x < 1) { return 1; } else { return 2; }`
	p := NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	ifStmt, ok := unit.Decls[0].(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_WhileAndFor(t *testing.T) {
	src := `while (true) { break; } for i = 1 to 10 { continue; }`
	p := NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	require.Len(t, unit.Decls, 2)
	_, whileOk := unit.Decls[0].(*WhileStmt)
	_, forOk := unit.Decls[1].(*ForStmt)
	assert.True(t, whileOk)
	assert.True(t, forOk)
}

func TestParse_MultiplicationBindsTighterThanAddition(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3): the outermost node is '+'.
	p := NewParser(`x = 1 + 2 * 3;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	stmt := unit.Decls[0].(*ExpressionStmt)
	assign := stmt.Expression.(*AssignmentExpr)
	bin := assign.Value.(*BinaryExpr)
	assert.Equal(t, "+", bin.Op.Lexeme)
	_, rightIsMul := bin.Right.(*BinaryExpr)
	assert.True(t, rightIsMul)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	p := NewParser(`x = y = 1;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	stmt := unit.Decls[0].(*ExpressionStmt)
	outer := stmt.Expression.(*AssignmentExpr)
	assert.Equal(t, "x", outer.Name.Lexeme)
	inner, ok := outer.Value.(*AssignmentExpr)
	require.True(t, ok)
	assert.Equal(t, "y", inner.Name.Lexeme)
}

func TestParse_CallExpression(t *testing.T) {
	p := NewParser(`print("hi");`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	stmt := unit.Decls[0].(*ExpressionStmt)
	call := stmt.Expression.(*CallExpr)
	assert.Equal(t, "print", call.Name.Lexeme)
	assert.Len(t, call.Args, 1)
}

// TestParse_RecoveryIsStatementBounded verifies that a single malformed
// top-level statement does not prevent the statements around it from
// parsing successfully.
func TestParse_RecoveryIsStatementBounded(t *testing.T) {
	src := `var x = 1; var y = ; var z = 3;`
	p := NewParser(src)
	unit := p.Parse()
	assert.True(t, p.Diags.HasErrors())
	assert.Equal(t, 1, p.Diags.Len())
	require.Len(t, unit.Decls, 3)
	assert.IsType(t, &VarDecl{}, unit.Decls[0])
	assert.IsType(t, &BadStmt{}, unit.Decls[1])
	assert.IsType(t, &VarDecl{}, unit.Decls[2])
}
