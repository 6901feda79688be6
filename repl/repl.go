// Package repl implements mint's interactive Read-Eval-Print Loop.
//
// Each line the user enters runs the full front end (lex, parse, bind,
// lower) and then the evaluator, exactly as file mode does for a whole
// source file — except the binder and the evaluator are not recreated
// between lines. A single *binder.Binder keeps the global scope (and the
// *binder.VariableSymbol identities the evaluator's environment is keyed
// by) alive across the session, and a single *eval.Evaluator keeps the
// global environment and every function defined so far. This lets one
// line declare `var total:int = 0;` and a later line read and update it.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mint-lang/mint/binder"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/eval"
	"github.com/mint-lang/mint/lowerer"
	"github.com/mint-lang/mint/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session: the
// banner, version/author strings, and the prompt readline displays.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl with the given banner/version/author/separator/prompt.
func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions to w.
func (r *Repl) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "Version: %s | Author: %s\n", r.Version, r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type mint statements and press enter.")
	cyanColor.Fprintln(w, "/scope  shows the global environment")
	cyanColor.Fprintln(w, "/exit   quits the session")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop until /exit or EOF (Ctrl+D).
func (r *Repl) Start(stdin io.Reader, w io.Writer) {
	r.PrintBannerInfo(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	b := binder.NewBinder()
	ev := eval.NewREPLEvaluator()
	ev.SetWriter(w)
	ev.SetReader(stdin)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		switch line {
		case "/exit":
			return
		case "/scope":
			r.printScope(w, b, ev)
			continue
		}

		r.evalLine(w, line, b, ev)
	}
}

// evalLine runs the lex/parse/bind/lower/evaluate pipeline for one REPL
// submission against the session's persistent binder and evaluator.
func (r *Repl) evalLine(w io.Writer, line string, b *binder.Binder, ev *eval.Evaluator) {
	p := parser.NewParser(line)
	unit := p.Parse()
	if p.Diags.HasErrors() {
		redColor.Fprint(w, p.Diags.String())
		return
	}

	topLevel, functions := b.BindLine(unit)
	if b.Diags.HasErrors() {
		redColor.Fprint(w, b.Diags.String())
		b.Diags = diag.Bag{}
		return
	}

	program := &binder.BoundProgram{
		Globals:   b.GlobalSymbols(),
		Functions: functions,
		TopLevel:  &binder.BoundBlockStatement{Statements: topLevel},
	}
	lowered := lowerer.LowerProgram(program)

	for name, fn := range lowered.Functions {
		ev.DefineFunction(fn)
		greenColor.Fprintf(w, "function %s defined\n", name)
	}

	if len(lowered.TopLevel.Statements) == 0 {
		return
	}
	val, err := ev.RunBlock(lowered.TopLevel)
	if err != nil {
		redColor.Fprintf(w, "runtime error: %s\n", err)
		return
	}
	switch val.Type() {
	case binder.TypeInt, binder.TypeBool, binder.TypeString:
		yellowColor.Fprintf(w, "%s\n", val.String())
	}
}

// printScope lists every global variable, its type, and its current value,
// for the /scope introspection command.
func (r *Repl) printScope(w io.Writer, b *binder.Binder, ev *eval.Evaluator) {
	symbols := b.GlobalSymbols()
	if len(symbols) == 0 {
		cyanColor.Fprintln(w, "(no globals declared yet)")
		return
	}
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	for _, name := range names {
		sym := symbols[name]
		val, ok := ev.Global(sym)
		if !ok {
			cyanColor.Fprintf(w, "%s: %s = <uninitialized>\n", name, sym.Type)
			continue
		}
		cyanColor.Fprintf(w, "%s: %s = %s\n", name, sym.Type, val.String())
	}
}
