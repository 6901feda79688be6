// Package diag implements diagnostic collection shared by the compile-time
// phases of the mint toolchain (lexer, parser, binder). Each of these owns
// its own Bag, appends to it as it walks its input, and the driver halts
// the pipeline before invoking the next phase whenever a Bag is non-empty.
// The evaluator does not use a Bag; it reports eval.RuntimeError values.
package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Position locates a diagnostic (or a token/node) in the original source.
type Position struct {
	Line   int // 1-indexed
	Column int // 1-indexed
	Offset int // 0-indexed byte offset into the source
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Severity classifies a Diagnostic. mint only ever produces Error
// diagnostics today; Warning exists so a future phase (e.g. an unreachable
// post-return-statement check) has somewhere to put non-fatal findings
// without widening the Bag's contract.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single reported problem, tied to a source position.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Bag accumulates diagnostics in the order they are reported. Reporting
// order matches source order within a single phase (§5 ordering guarantee).
type Bag struct {
	items []Diagnostic
}

// Report appends a new error-severity diagnostic at pos.
func (b *Bag) Report(pos Position, format string, args ...any) {
	b.add(Error, pos, format, args...)
}

// Warn appends a new warning-severity diagnostic at pos.
func (b *Bag) Warn(pos Position, format string, args ...any) {
	b.add(Warning, pos, format, args...)
}

func (b *Bag) add(sev Severity, pos Position, format string, args ...any) {
	b.items = append(b.items, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

// Merge appends another Bag's diagnostics onto this one, preserving order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics recorded, regardless of severity.
func (b *Bag) Len() int {
	return len(b.items)
}

// All returns the recorded diagnostics in report order.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// Sorted returns the recorded diagnostics ordered by source position, with
// report order as a tiebreaker for diagnostics at the same position.
func (b *Bag) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Pos, out[j].Pos
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})
	return out
}

// String renders every diagnostic, one per line.
func (b *Bag) String() string {
	var sb strings.Builder
	for _, d := range b.Sorted() {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
