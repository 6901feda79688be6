package lowerer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-lang/mint/binder"
	"github.com/mint-lang/mint/parser"
)

func lower(t *testing.T, src string) *binder.BoundProgram {
	t.Helper()
	p := parser.NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors(), p.Diags.String())
	program, diags := binder.BindProgram(unit)
	require.False(t, diags.HasErrors(), diags.String())
	return LowerProgram(program)
}

// kindsOf collapses a flattened block down to the statement Go types it
// contains, for order-sensitive assertions without hand-building nodes.
func kindsOf(block *binder.BoundBlockStatement) []string {
	var kinds []string
	for _, s := range block.Statements {
		switch s.(type) {
		case *binder.BoundLabelStatement:
			kinds = append(kinds, "label")
		case *binder.BoundGotoStatement:
			kinds = append(kinds, "goto")
		case *binder.BoundConditionalGotoStatement:
			kinds = append(kinds, "cgoto")
		case *binder.BoundVariableDeclaration:
			kinds = append(kinds, "decl")
		case *binder.BoundExpressionStatement:
			kinds = append(kinds, "expr")
		case *binder.BoundReturnStatement:
			kinds = append(kinds, "return")
		default:
			kinds = append(kinds, "other")
		}
	}
	return kinds
}

func TestLowerProgram_OutputIsFullyFlat(t *testing.T) {
	program := lower(t, `
		if (true) { var x = 1; } else { var y = 2; }
		while (true) { break; }
		for i = 1 to 10 { continue; }
	`)
	for _, s := range program.TopLevel.Statements {
		_, isBlock := s.(*binder.BoundBlockStatement)
		assert.False(t, isBlock, "lowered output must contain no nested blocks")
	}
}

func TestLowerProgram_IfWithoutElse(t *testing.T) {
	program := lower(t, `if (true) { var x = 1; }`)
	kinds := kindsOf(program.TopLevel)
	assert.Contains(t, kinds, "cgoto")
	assert.Contains(t, kinds, "decl")
}

func TestLowerProgram_IfWithElseHasGotoPastElseBranch(t *testing.T) {
	program := lower(t, `if (true) { var x = 1; } else { var y = 2; }`)
	kinds := kindsOf(program.TopLevel)
	gotoCount := 0
	for _, k := range kinds {
		if k == "goto" {
			gotoCount++
		}
	}
	assert.Equal(t, 1, gotoCount, "if/else lowers to exactly one unconditional goto (past the else branch)")
}

func TestLowerProgram_WhileLoopStructure(t *testing.T) {
	program := lower(t, `while (true) { break; continue; }`)
	kinds := kindsOf(program.TopLevel)
	gotoCount, labelCount, cgotoCount := 0, 0, 0
	for _, k := range kinds {
		switch k {
		case "goto":
			gotoCount++
		case "label":
			labelCount++
		case "cgoto":
			cgotoCount++
		}
	}
	// at least: goto(check), the break/continue gotos themselves, and the
	// loop's own trailing conditional jump back to continue.
	assert.GreaterOrEqual(t, gotoCount, 3)
	assert.GreaterOrEqual(t, labelCount, 3)
	assert.Equal(t, 1, cgotoCount)
}

func TestLowerProgram_ForLoopDeclaresVariableAndBound(t *testing.T) {
	program := lower(t, `for i = 1 to 10 { var x = i; }`)
	declCount := 0
	for _, k := range kindsOf(program.TopLevel) {
		if k == "decl" {
			declCount++
		}
	}
	// var i = 1, let $upper = 10, var x = i
	assert.Equal(t, 3, declCount)
}

func TestLowerProgram_ContinueInForLandsBeforeIncrement(t *testing.T) {
	program := lower(t, `for i = 1 to 10 { continue; }`)
	foundContinueLabel := false
	for idx, s := range program.TopLevel.Statements {
		if lbl, ok := s.(*binder.BoundLabelStatement); ok {
			// the increment (an expression statement assigning i) should
			// immediately follow the user-visible continue label.
			if idx+1 < len(program.TopLevel.Statements) {
				if _, isExpr := program.TopLevel.Statements[idx+1].(*binder.BoundExpressionStatement); isExpr {
					foundContinueLabel = true
					_ = lbl
				}
			}
		}
	}
	assert.True(t, foundContinueLabel, "continue label should be immediately followed by the increment statement")
}

func TestLowerProgram_FunctionBodyIsAlsoFlattened(t *testing.T) {
	src := `
		function abs(n: int): int {
			if (n < 0) {
				return 0 - n;
			}
			return n;
		}
	`
	program := lower(t, src)
	require.Contains(t, program.Functions, "abs")
	fn := program.Functions["abs"]
	for _, s := range fn.Body.Statements {
		_, isBlock := s.(*binder.BoundBlockStatement)
		assert.False(t, isBlock)
	}
	kinds := kindsOf(fn.Body)
	assert.Contains(t, kinds, "return")
}
