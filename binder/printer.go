package binder

import (
	"fmt"
	"io"
	"strings"
)

// PrintProgram writes an indented, human-readable dump of a bound program
// to w. It exists for debugging (cmd/mint's -print-bound flag), never for
// anything the evaluator depends on.
func PrintProgram(w io.Writer, program *BoundProgram) {
	names := make([]string, 0, len(program.Functions))
	for name := range program.Functions {
		names = append(names, name)
	}
	sortStrings(names)

	for _, name := range names {
		fn := program.Functions[name]
		fmt.Fprintf(w, "function %s(", fn.Symbol.Name)
		for i, p := range fn.Symbol.Params {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%s: %s", p.Name, p.Type)
		}
		fmt.Fprintf(w, "): %s\n", fn.Symbol.ReturnType)
		printStatement(w, fn.Body, 1)
	}

	if program.TopLevel != nil && len(program.TopLevel.Statements) > 0 {
		fmt.Fprintln(w, "<top-level>")
		printStatement(w, program.TopLevel, 1)
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func indent(w io.Writer, level int) {
	fmt.Fprint(w, strings.Repeat("    ", level))
}

func printStatement(w io.Writer, stmt BoundStatement, level int) {
	switch s := stmt.(type) {
	case *BoundBlockStatement:
		for _, inner := range s.Statements {
			printStatement(w, inner, level)
		}
	case *BoundVariableDeclaration:
		indent(w, level)
		kw := "var"
		if s.Symbol.ReadOnly {
			kw = "let"
		}
		fmt.Fprintf(w, "%s %s: %s = %s\n", kw, s.Symbol.Name, s.Symbol.Type, exprString(s.Init))
	case *BoundExpressionStatement:
		indent(w, level)
		fmt.Fprintf(w, "%s\n", exprString(s.Expression))
	case *BoundIfStatement:
		indent(w, level)
		fmt.Fprintf(w, "if %s\n", exprString(s.Condition))
		printStatement(w, s.Then, level+1)
		if s.Else != nil {
			indent(w, level)
			fmt.Fprintln(w, "else")
			printStatement(w, s.Else, level+1)
		}
	case *BoundWhileStatement:
		indent(w, level)
		fmt.Fprintf(w, "while %s\n", exprString(s.Condition))
		printStatement(w, s.Body, level+1)
	case *BoundForStatement:
		indent(w, level)
		fmt.Fprintf(w, "for %s = %s to %s\n", s.Variable.Name, exprString(s.Lower), exprString(s.Upper))
		printStatement(w, s.Body, level+1)
	case *BoundLabelStatement:
		fmt.Fprintf(w, "%s:\n", s.Label.Name)
	case *BoundGotoStatement:
		indent(w, level)
		fmt.Fprintf(w, "goto %s\n", s.Label.Name)
	case *BoundConditionalGotoStatement:
		indent(w, level)
		verb := "gotoTrue"
		if s.JumpIfFalse {
			verb = "gotoFalse"
		}
		fmt.Fprintf(w, "%s %s %s\n", verb, s.Label.Name, exprString(s.Condition))
	case *BoundReturnStatement:
		indent(w, level)
		if s.Value != nil {
			fmt.Fprintf(w, "return %s\n", exprString(s.Value))
		} else {
			fmt.Fprintln(w, "return")
		}
	case *BoundErrorStatement:
		indent(w, level)
		fmt.Fprintln(w, "<error>")
	default:
		indent(w, level)
		fmt.Fprintf(w, "<unknown statement %T>\n", stmt)
	}
}

func exprString(expr BoundExpression) string {
	switch e := expr.(type) {
	case *BoundLiteralExpression:
		switch e.Typ {
		case TypeInt:
			return fmt.Sprintf("%d", e.IntVal)
		case TypeBool:
			return fmt.Sprintf("%t", e.BoolVal)
		case TypeString:
			return fmt.Sprintf("%q", e.StrVal)
		default:
			return "<literal>"
		}
	case *BoundVariableExpression:
		return e.Symbol.Name
	case *BoundAssignmentExpression:
		return fmt.Sprintf("(%s = %s)", e.Symbol.Name, exprString(e.Value))
	case *BoundUnaryExpression:
		return fmt.Sprintf("(%s%s)", unarySymbol(e.Op.Kind), exprString(e.Operand))
	case *BoundBinaryExpression:
		return fmt.Sprintf("(%s %s %s)", exprString(e.Left), binarySymbol(e.Op.Kind), exprString(e.Right))
	case *BoundCallExpression:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = exprString(a)
		}
		return fmt.Sprintf("%s(%s)", e.Function.Name, strings.Join(parts, ", "))
	case *BoundConversionExpression:
		return fmt.Sprintf("%s(%s)", e.To, exprString(e.Expression))
	case *BoundErrorExpression:
		return "<error>"
	default:
		return fmt.Sprintf("<unknown expression %T>", expr)
	}
}

func unarySymbol(k UnaryOperatorKind) string {
	switch k {
	case LogicalNegation:
		return "!"
	case Identity:
		return "+"
	case Negation:
		return "-"
	default:
		return "?"
	}
}

func binarySymbol(k BinaryOperatorKind) string {
	switch k {
	case Addition, StringConcatenation:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "*"
	case Division:
		return "/"
	case LogicalAnd:
		return "&&"
	case LogicalOr:
		return "||"
	case Equality:
		return "=="
	case Inequality:
		return "!="
	case Less:
		return "<"
	case LessOrEquals:
		return "<="
	case Greater:
		return ">"
	case GreaterOrEquals:
		return ">="
	default:
		return "?"
	}
}
