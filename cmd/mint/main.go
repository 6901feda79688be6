// Command mint is the entry point for the mint interpreter. It has two
// modes:
//
//	mint                 start an interactive REPL
//	mint <path>          run a source file
//
// and two informational flags, --help/-h and --version/-v.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mint-lang/mint/binder"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/eval"
	"github.com/mint-lang/mint/lowerer"
	"github.com/mint-lang/mint/parser"
	"github.com/mint-lang/mint/repl"
)

const (
	version = "v0.1.0"
	author  = "mint-lang"
	prompt  = "mint >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   _ __ ___ (_)_ __ | |_
  | '_ ' _ \| | '_ \| __|
  | | | | | | | | | | |_
  |_| |_| |_|_|_| |_|\__|
`
)

var (
	redColor = color.New(color.FgRed)
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		repl.NewRepl(banner, version, author, line, prompt).Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return
	case "--version", "-v":
		showVersion()
		return
	}

	printBound := false
	path := args[0]
	if args[0] == "-print-bound" {
		printBound = true
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "usage: mint -print-bound <path>")
			os.Exit(1)
		}
		path = args[1]
	}

	if err := runFile(path, printBound); err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("mint - a small statically-typed imperative language")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  mint                   start the interactive REPL")
	fmt.Println("  mint <path>            run a source file")
	fmt.Println("  mint -print-bound <path>  run a file, printing its bound tree to stderr first")
	fmt.Println("  mint --help            show this message")
	fmt.Println("  mint --version         show version information")
	fmt.Println()
	fmt.Println("REPL COMMANDS:")
	fmt.Println("  /scope                 show the global environment")
	fmt.Println("  /exit                  quit the session")
}

func showVersion() {
	fmt.Printf("mint %s\n", version)
}

// runFile runs the full pipeline (lex, parse, bind, lower, evaluate) over
// the file at path. Any phase that reports a diagnostic halts the pipeline
// before the next one runs, per the toolchain's halt-on-diagnostic policy.
func runFile(path string, printBound bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", path, err)
	}

	p := parser.NewParser(string(source))
	unit := p.Parse()
	if p.Diags.HasErrors() {
		printDiags(path, &p.Diags)
		return fmt.Errorf("%s: compilation failed", path)
	}

	program, diags := binder.BindProgram(unit)
	if diags.HasErrors() {
		printDiags(path, diags)
		return fmt.Errorf("%s: compilation failed", path)
	}

	lowered := lowerer.LowerProgram(program)
	if printBound {
		binder.PrintProgram(os.Stderr, lowered)
	}

	ev := eval.NewEvaluator(lowered)
	if _, err := ev.Run(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// printDiags renders every diagnostic in bag as
// "<path>:<line>:<col>: <severity>: <message>", one per line, colored red
// when stderr is a terminal.
func printDiags(path string, bag *diag.Bag) {
	for _, d := range bag.Sorted() {
		redColor.Fprintf(os.Stderr, "%s:%s: %s: %s\n", path, d.Pos, d.Severity, d.Message)
	}
}
