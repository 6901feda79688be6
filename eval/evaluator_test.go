package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-lang/mint/binder"
	"github.com/mint-lang/mint/lowerer"
	"github.com/mint-lang/mint/parser"
)

// run parses, binds, lowers and evaluates src, returning whatever print()
// wrote to stdout.
func run(t *testing.T, src string) string {
	t.Helper()
	p := parser.NewParser(src)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors(), p.Diags.String())

	program, diags := binder.BindProgram(unit)
	require.False(t, diags.HasErrors(), diags.String())

	lowered := lowerer.LowerProgram(program)

	var out bytes.Buffer
	ev := NewEvaluator(lowered)
	ev.SetWriter(&out)
	_, err := ev.Run()
	require.NoError(t, err)
	return out.String()
}

func TestEvaluator_OperatorPrecedence(t *testing.T) {
	out := run(t, `function main():int { return 1+2*3; } print(string(main()));`)
	assert.Equal(t, "7", out)
}

func TestEvaluator_ForLoopSum(t *testing.T) {
	out := run(t, `var x:int = 10; var s:int = 0; for i = 1 to x { s = s + i; } print(string(s));`)
	assert.Equal(t, "55", out)
}

func TestEvaluator_WhileLoopFactorial(t *testing.T) {
	out := run(t, `var n:int = 5; var f:int = 1; while (n > 1) { f = f * n; n = n - 1; } print(string(f));`)
	assert.Equal(t, "120", out)
}

func TestEvaluator_RecursiveFibonacci(t *testing.T) {
	out := run(t, `function fib(n:int):int { if (n < 2) { return n; } return fib(n-1)+fib(n-2); } print(string(fib(10)));`)
	assert.Equal(t, "55", out)
}

func TestEvaluator_StringConcatenation(t *testing.T) {
	out := run(t, `let a:string = "hi "; let b:string = "there"; print(a + b);`)
	assert.Equal(t, "hi there", out)
}

func TestEvaluator_BreakStopsLoop(t *testing.T) {
	out := run(t, `var x:int = 0; while (true) { if (x == 3) { break; } x = x + 1; } print(string(x));`)
	assert.Equal(t, "3", out)
}

func TestEvaluator_ContinueInForLoopStillRunsIncrement(t *testing.T) {
	// Sum 1..5 but skip adding 3, using continue; the for-loop's own
	// increment must still run after continue lands on its label.
	out := run(t, `
		var s:int = 0;
		for i = 1 to 5 {
			if (i == 3) { continue; }
			s = s + i;
		}
		print(string(s));
	`)
	assert.Equal(t, "12", out)
}

func TestEvaluator_DivisionByZeroIsRuntimeError(t *testing.T) {
	p := parser.NewParser(`var x:int = 1 / 0;`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := binder.BindProgram(unit)
	require.False(t, diags.HasErrors())
	lowered := lowerer.LowerProgram(program)

	ev := NewEvaluator(lowered)
	ev.SetWriter(&bytes.Buffer{})
	_, err := ev.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestEvaluator_BadIntParseIsRuntimeErrorNotNegativeOne(t *testing.T) {
	p := parser.NewParser(`var x:int = int("abc");`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := binder.BindProgram(unit)
	require.False(t, diags.HasErrors())
	lowered := lowerer.LowerProgram(program)

	ev := NewEvaluator(lowered)
	ev.SetWriter(&bytes.Buffer{})
	_, err := ev.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid integer")
}

func TestEvaluator_LogicalAndShortCircuits(t *testing.T) {
	// the right operand calls a function with a side effect (print); if
	// short-circuiting is broken, it would run even though the left
	// operand is false.
	out := run(t, `
		function sideEffect():bool { print("called"); return true; }
		var r:bool = false && sideEffect();
		print(string(r));
	`)
	assert.Equal(t, "false", out)
	assert.False(t, strings.Contains(out, "called"))
}

func TestEvaluator_InputFeedsPrint(t *testing.T) {
	p := parser.NewParser(`print(input());`)
	unit := p.Parse()
	require.False(t, p.Diags.HasErrors())
	program, diags := binder.BindProgram(unit)
	require.False(t, diags.HasErrors())
	lowered := lowerer.LowerProgram(program)

	var out bytes.Buffer
	ev := NewEvaluator(lowered)
	ev.SetWriter(&out)
	ev.SetReader(strings.NewReader("hello\n"))
	_, err := ev.Run()
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}
