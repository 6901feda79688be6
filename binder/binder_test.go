package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-lang/mint/parser"
)

func bind(t *testing.T, src string) (*BoundProgram, *Binder) {
	t.Helper()
	p := parser.NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors(), "parse errors: %s", p.Diags.String())
	program, diags := BindProgram(unit)
	b := &Binder{Diags: *diags}
	return program, b
}

func TestBindProgram_VarDeclInfersTypeFromInitializer(t *testing.T) {
	program, b := bind(t, `var x = 1 + 2;`)
	require.False(t, b.Diags.HasErrors())
	require.Len(t, program.TopLevel.Statements, 1)
	decl := program.TopLevel.Statements[0].(*BoundVariableDeclaration)
	assert.Equal(t, TypeInt, decl.Symbol.Type)
	assert.False(t, decl.Symbol.ReadOnly)
}

func TestBindProgram_LetIsReadOnlyAndRejectsReassignment(t *testing.T) {
	p := parser.NewParser(`let x = 1; x = 2;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_MismatchedDeclaredTypeIsError(t *testing.T) {
	p := parser.NewParser(`var x: bool = 1;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_ExplicitConversionIsAccepted(t *testing.T) {
	p := parser.NewParser(`var s = string(1);`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := BindProgram(unit)
	require.False(t, diags.HasErrors())
	decl := program.TopLevel.Statements[0].(*BoundVariableDeclaration)
	assert.Equal(t, TypeString, decl.Symbol.Type)
	_, ok := decl.Init.(*BoundConversionExpression)
	assert.True(t, ok)
}

func TestBindProgram_ImplicitStringToIntIsRejected(t *testing.T) {
	p := parser.NewParser(`var x: int = "1";`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_UndeclaredNameIsError(t *testing.T) {
	p := parser.NewParser(`var x = y;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_FunctionSignatureVisibleBeforeBody(t *testing.T) {
	src := `
		function isEven(n: int): bool {
			return n == 0 || isOdd(n - 1);
		}
		function isOdd(n: int): bool {
			return n != 0 && isEven(n - 1);
		}
	`
	p := parser.NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := BindProgram(unit)
	require.False(t, diags.HasErrors(), diags.String())
	assert.Len(t, program.Functions, 2)
}

func TestBindProgram_ReturnTypeMismatchIsError(t *testing.T) {
	p := parser.NewParser(`function f(): int { return true; }`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_BreakOutsideLoopIsError(t *testing.T) {
	p := parser.NewParser(`break;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_WhileBindsBreakAndContinueToLoopLabels(t *testing.T) {
	p := parser.NewParser(`while (true) { break; continue; }`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := BindProgram(unit)
	require.False(t, diags.HasErrors())
	whileStmt := program.TopLevel.Statements[0].(*BoundWhileStatement)
	body := whileStmt.Body.(*BoundBlockStatement)
	brk := body.Statements[0].(*BoundGotoStatement)
	cont := body.Statements[1].(*BoundGotoStatement)
	assert.Equal(t, whileStmt.Labels.Break, brk.Label)
	assert.Equal(t, whileStmt.Labels.Continue, cont.Label)
}

func TestBindProgram_ForLoopVariableIsReadOnlyInt(t *testing.T) {
	p := parser.NewParser(`for i = 1 to 10 { var x = i + 1; }`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := BindProgram(unit)
	require.False(t, diags.HasErrors(), diags.String())
	forStmt := program.TopLevel.Statements[0].(*BoundForStatement)
	assert.Equal(t, TypeInt, forStmt.Variable.Type)
	assert.True(t, forStmt.Variable.ReadOnly)
}

func TestBindProgram_CallArgumentCountMismatchIsError(t *testing.T) {
	src := `
		function add(a: int, b: int): int { return a + b; }
		var x = add(1);
	`
	p := parser.NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_UndefinedBinaryOperatorIsError(t *testing.T) {
	p := parser.NewParser(`var x = 1 + true;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.True(t, diags.HasErrors())
}

func TestBindProgram_StringConcatenation(t *testing.T) {
	p := parser.NewParser(`var x = "a" + "b";`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := BindProgram(unit)
	require.False(t, diags.HasErrors())
	decl := program.TopLevel.Statements[0].(*BoundVariableDeclaration)
	assert.Equal(t, TypeString, decl.Symbol.Type)
}

func TestBindProgram_BuiltinPrintAndInputAreAlwaysAvailable(t *testing.T) {
	p := parser.NewParser(`print(input());`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	_, diags := BindProgram(unit)
	assert.False(t, diags.HasErrors(), diags.String())
}
