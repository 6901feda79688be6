package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mint-lang/mint/binder"
)

// RuntimeError is the evaluator's only error type: division by zero, a
// failed int() parse, and builtin I/O failures are all runtime errors per
// spec. Unlike binder/parser diagnostics there is no source position to
// attach, since the bound tree does not carry one past lowering.
type RuntimeError struct {
	msg string
}

func (e *RuntimeError) Error() string { return e.msg }

func newRuntimeError(format string, args ...any) *RuntimeError {
	return &RuntimeError{msg: fmt.Sprintf(format, args...)}
}

// compiled pairs a flattened block with a pre-built index from label name
// to statement position, so Goto/ConditionalGoto are O(1) jumps rather than
// a linear scan of the statement list on every branch.
type compiled struct {
	body   *binder.BoundBlockStatement
	labels map[string]int
}

func compile(block *binder.BoundBlockStatement) *compiled {
	labels := make(map[string]int)
	for i, s := range block.Statements {
		if lbl, ok := s.(*binder.BoundLabelStatement); ok {
			labels[lbl.Label.Name] = i
		}
	}
	return &compiled{body: block, labels: labels}
}

// Evaluator executes a lowered program. It holds the global environment,
// the compiled form of every function body and the top-level statement
// list, and the I/O streams its two built-in functions read and write.
type Evaluator struct {
	program   *binder.BoundProgram
	functions map[string]*compiled
	topLevel  *compiled
	globals   *Environment

	Writer io.Writer
	Reader *bufio.Reader

	// LastValue is the value of the most recently evaluated top-level
	// expression statement, exposed for the REPL to echo back.
	LastValue Value
}

// NewEvaluator compiles program (which must already be lowered) and wires
// up default stdio streams; call SetWriter/SetReader before Run to redirect
// them, e.g. in tests. This is file mode: the whole program is known up
// front.
func NewEvaluator(program *binder.BoundProgram) *Evaluator {
	functions := make(map[string]*compiled, len(program.Functions))
	for name, fn := range program.Functions {
		functions[name] = compile(fn.Body)
	}
	return &Evaluator{
		program:   program,
		functions: functions,
		topLevel:  compile(program.TopLevel),
		globals:   NewEnvironment(nil),
		Writer:    os.Stdout,
		Reader:    bufio.NewReader(os.Stdin),
	}
}

// NewREPLEvaluator creates an Evaluator with an empty, growable program: the
// REPL calls DefineFunction and RunBlock once per line instead of Run once
// for a whole file, so the global environment and function table persist
// across an entire session.
func NewREPLEvaluator() *Evaluator {
	return &Evaluator{
		program: &binder.BoundProgram{
			Globals:   make(map[string]*binder.VariableSymbol),
			Functions: make(map[string]*binder.BoundFunction),
		},
		functions: make(map[string]*compiled),
		globals:   NewEnvironment(nil),
		Writer:    os.Stdout,
		Reader:    bufio.NewReader(os.Stdin),
	}
}

// DefineFunction adds or replaces a function in a REPL evaluator's table,
// so a later line can call a function declared on an earlier one.
func (e *Evaluator) DefineFunction(fn *binder.BoundFunction) {
	e.program.Functions[fn.Symbol.Name] = fn
	e.functions[fn.Symbol.Name] = compile(fn.Body)
}

// RunBlock executes one already-lowered top-level statement list (one
// REPL line's worth) against the persistent global environment and
// returns its last expression statement's value, mirroring Run but for a
// single incremental chunk rather than a whole program.
func (e *Evaluator) RunBlock(block *binder.BoundBlockStatement) (Value, error) {
	e.LastValue = Value{}
	f := &frame{env: e.globals, compiled: compile(block), topLevel: true}
	if err := e.runFrame(f); err != nil {
		return Value{}, err
	}
	return e.LastValue, nil
}

// Global reports sym's current value in the global environment, and
// whether it is defined there, for the REPL's /scope command. The caller
// supplies the *binder.VariableSymbol from the binder's own global scope
// and formats the value itself.
func (e *Evaluator) Global(sym *binder.VariableSymbol) (Value, bool) {
	return e.globals.Get(sym)
}

// SetWriter redirects print()'s output.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects input()'s source.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Run executes the program's top-level statements in the global
// environment and returns the last top-level expression statement's value
// (Value{} if none was ever evaluated), or the runtime error that halted
// execution.
func (e *Evaluator) Run() (Value, error) {
	frame := &frame{env: e.globals, compiled: e.topLevel, topLevel: true}
	if err := e.runFrame(frame); err != nil {
		return Value{}, err
	}
	return e.LastValue, nil
}

// frame is one activation of a flattened statement list: either the
// top-level block (env rooted at globals) or a single function call's body
// (env freshly parented at globals, never at a caller's locals, since mint
// has no closures).
type frame struct {
	env      *Environment
	compiled *compiled
	ip       int
	returned bool
	result   Value
	topLevel bool
}

// runFrame drives f's instruction pointer to the end of its statement list
// or until a Return statement sets f.returned.
func (e *Evaluator) runFrame(f *frame) error {
	for f.ip < len(f.compiled.body.Statements) {
		stmt := f.compiled.body.Statements[f.ip]
		jump, err := e.execStatement(f, stmt)
		if err != nil {
			return err
		}
		if f.returned {
			return nil
		}
		if jump >= 0 {
			f.ip = jump
			continue
		}
		f.ip++
	}
	return nil
}

// jumpTo resolves a label to its statement index within f's compiled body.
// The lowerer only ever targets labels it generated itself, so an unknown
// label here is an evaluator bug, not a user-facing error.
func (f *frame) jumpTo(label binder.LabelSymbol) int {
	idx, ok := f.compiled.labels[label.Name]
	if !ok {
		panic(fmt.Sprintf("eval: unresolved label %q", label.Name))
	}
	return idx
}

// callFunction pushes a fresh frame for name, binds args positionally, runs
// it to completion, and returns its Return value (or the zero Value for a
// function that falls off the end without returning).
func (e *Evaluator) callFunction(name string, args []Value) (Value, error) {
	fn, ok := e.program.Functions[name]
	if !ok {
		return Value{}, newRuntimeError("call to undefined function %q", name)
	}
	env := NewEnvironment(e.globals)
	for i, param := range fn.Symbol.Params {
		env.Define(param, args[i])
	}
	f := &frame{env: env, compiled: e.functions[name]}
	if err := e.runFrame(f); err != nil {
		return Value{}, err
	}
	return f.result, nil
}
