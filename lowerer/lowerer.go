// Package lowerer rewrites a bound tree's structured control flow
// (if/while/for) into the flat Label/Goto/ConditionalGoto form the
// evaluator executes, then flattens every nested block into one
// statement list so the evaluator never has to recurse into a block to
// find the next statement.
package lowerer

import (
	"fmt"

	"github.com/mint-lang/mint/binder"
	"github.com/mint-lang/mint/lexer"
)

// Lowerer carries the label counter used to synthesize the extra labels
// an if/while/for rewrite needs beyond the break/continue pair the
// binder already assigned.
type Lowerer struct {
	labelCount int
}

func newLowerer() *Lowerer {
	return &Lowerer{}
}

func (l *Lowerer) generateLabel(prefix string) binder.LabelSymbol {
	l.labelCount++
	return binder.LabelSymbol{Name: fmt.Sprintf("%s{%d}", prefix, l.labelCount)}
}

// LowerProgram returns a new BoundProgram in which every function body and
// the top-level statement list have been rewritten to flat goto form and
// flattened. The input program is not mutated.
func LowerProgram(program *binder.BoundProgram) *binder.BoundProgram {
	functions := make(map[string]*binder.BoundFunction, len(program.Functions))
	for name, fn := range program.Functions {
		functions[name] = &binder.BoundFunction{
			Symbol: fn.Symbol,
			Body:   lowerAndFlatten(fn.Body),
		}
	}

	return &binder.BoundProgram{
		Globals:   program.Globals,
		Functions: functions,
		TopLevel:  lowerAndFlatten(program.TopLevel),
	}
}

// lowerAndFlatten rewrites a single block statement and flattens the
// result, mirroring the reference lowerer's RewriteAndFlatten entry point.
func lowerAndFlatten(block *binder.BoundBlockStatement) *binder.BoundBlockStatement {
	l := newLowerer()
	rewritten := l.rewriteStatement(block)
	return flatten(rewritten)
}

// flatten walks a (possibly deeply nested) BoundBlockStatement tree with
// an explicit stack, rather than recursion, so that a pathologically deep
// chain of nested blocks cannot overflow the Go call stack. Each child is
// pushed in reverse order so it pops back out in source order.
func flatten(stmt binder.BoundStatement) *binder.BoundBlockStatement {
	var result []binder.BoundStatement
	stack := []binder.BoundStatement{stmt}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if block, ok := current.(*binder.BoundBlockStatement); ok {
			for i := len(block.Statements) - 1; i >= 0; i-- {
				stack = append(stack, block.Statements[i])
			}
			continue
		}
		result = append(result, current)
	}

	return &binder.BoundBlockStatement{Statements: result}
}

func (l *Lowerer) rewriteStatement(stmt binder.BoundStatement) binder.BoundStatement {
	if stmt == nil {
		return nil
	}
	switch s := stmt.(type) {
	case *binder.BoundBlockStatement:
		return l.rewriteBlock(s)
	case *binder.BoundIfStatement:
		return l.rewriteIf(s)
	case *binder.BoundWhileStatement:
		return l.rewriteWhile(s)
	case *binder.BoundForStatement:
		return l.rewriteFor(s)
	case *binder.BoundVariableDeclaration,
		*binder.BoundLabelStatement,
		*binder.BoundGotoStatement,
		*binder.BoundConditionalGotoStatement,
		*binder.BoundReturnStatement,
		*binder.BoundExpressionStatement,
		*binder.BoundErrorStatement:
		return s
	default:
		panic(fmt.Sprintf("lowerer: unhandled statement %T", stmt))
	}
}

func (l *Lowerer) rewriteBlock(block *binder.BoundBlockStatement) binder.BoundStatement {
	start := l.generateLabel("blockStart")
	end := l.generateLabel("blockEnd")

	statements := make([]binder.BoundStatement, 0, len(block.Statements)+2)
	statements = append(statements, &binder.BoundLabelStatement{Label: start})
	for _, s := range block.Statements {
		statements = append(statements, l.rewriteStatement(s))
	}
	statements = append(statements, &binder.BoundLabelStatement{Label: end})

	return &binder.BoundBlockStatement{Statements: statements}
}

// rewriteIf turns:
//
//	if (cond) then                  gotoIfFalse cond end
//	                          -->    then
//	                                 end:
//
//	if (cond) then else else'       gotoIfFalse cond elseLabel
//	                          -->    then
//	                                 goto end
//	                                 elseLabel:
//	                                 else'
//	                                 end:
func (l *Lowerer) rewriteIf(stmt *binder.BoundIfStatement) binder.BoundStatement {
	if stmt.Else == nil {
		end := l.generateLabel("ifEnd")
		result := &binder.BoundBlockStatement{Statements: []binder.BoundStatement{
			&binder.BoundConditionalGotoStatement{Label: end, Condition: stmt.Condition, JumpIfFalse: true},
			stmt.Then,
			&binder.BoundLabelStatement{Label: end},
		}}
		return l.rewriteStatement(result)
	}

	elseLabel := l.generateLabel("ifElse")
	end := l.generateLabel("ifEnd")
	result := &binder.BoundBlockStatement{Statements: []binder.BoundStatement{
		&binder.BoundConditionalGotoStatement{Label: elseLabel, Condition: stmt.Condition, JumpIfFalse: true},
		stmt.Then,
		&binder.BoundGotoStatement{Label: end},
		&binder.BoundLabelStatement{Label: elseLabel},
		stmt.Else,
		&binder.BoundLabelStatement{Label: end},
	}}
	return l.rewriteStatement(result)
}

// rewriteWhile turns:
//
//	while (cond)             goto check
//	    body            -->  continue:
//	                          body
//	                          check:
//	                          gotoIfTrue cond continue
//	                          break:
func (l *Lowerer) rewriteWhile(stmt *binder.BoundWhileStatement) binder.BoundStatement {
	check := l.generateLabel("whileCheck")

	statements := []binder.BoundStatement{
		&binder.BoundGotoStatement{Label: check},
		&binder.BoundLabelStatement{Label: stmt.Labels.Continue},
	}
	statements = append(statements, bodyStatements(stmt.Body)...)
	statements = append(statements,
		&binder.BoundLabelStatement{Label: check},
		&binder.BoundConditionalGotoStatement{Label: stmt.Labels.Continue, Condition: stmt.Condition, JumpIfFalse: false},
		&binder.BoundLabelStatement{Label: stmt.Labels.Break},
	)

	result := &binder.BoundBlockStatement{Statements: statements}
	return l.rewriteStatement(result)
}

// rewriteFor turns:
//
//	for v = lower to upper        {
//	    body                          var v = lower
//	                           -->    let $upper = upper
//	                                  while (v <= $upper) {
//	                                      body
//	                                      continue:
//	                                      v = v + 1
//	                                  }
//	                              }
//
// The loop's user-visible continue label becomes the landing pad right
// before the increment (so `continue;` runs the increment before
// re-checking the bound); the while wrapper gets its own, fresh continue
// label for its internal check-then-jump-back plumbing.
func (l *Lowerer) rewriteFor(stmt *binder.BoundForStatement) binder.BoundStatement {
	varDecl := &binder.BoundVariableDeclaration{Symbol: stmt.Variable, Init: stmt.Lower}
	upperDecl := &binder.BoundVariableDeclaration{Symbol: stmt.UpperVariable, Init: stmt.Upper}

	lessOrEquals, _ := binder.BindBinaryOperator(lexer.LessEquals, binder.TypeInt, binder.TypeInt)
	addition, _ := binder.BindBinaryOperator(lexer.Plus, binder.TypeInt, binder.TypeInt)

	condition := &binder.BoundBinaryExpression{
		Op:    lessOrEquals,
		Left:  &binder.BoundVariableExpression{Symbol: stmt.Variable},
		Right: &binder.BoundVariableExpression{Symbol: stmt.UpperVariable},
	}

	increment := &binder.BoundExpressionStatement{
		Expression: &binder.BoundAssignmentExpression{
			Symbol: stmt.Variable,
			Value: &binder.BoundBinaryExpression{
				Op:    addition,
				Left:  &binder.BoundVariableExpression{Symbol: stmt.Variable},
				Right: &binder.BoundLiteralExpression{Typ: binder.TypeInt, IntVal: 1},
			},
		},
	}

	whileBodyStatements := append(bodyStatements(stmt.Body),
		&binder.BoundLabelStatement{Label: stmt.Labels.Continue},
		increment,
	)
	whileBody := &binder.BoundBlockStatement{Statements: whileBodyStatements}

	innerLabels := binder.LoopLabels{Break: stmt.Labels.Break, Continue: l.generateLabel("forContinue")}
	whileStmt := &binder.BoundWhileStatement{Condition: condition, Body: whileBody, Labels: innerLabels}

	result := &binder.BoundBlockStatement{Statements: []binder.BoundStatement{varDecl, upperDecl, whileStmt}}
	return l.rewriteStatement(result)
}

// bodyStatements returns stmt's statements if it is already a block, or a
// single-element slice otherwise, so callers can splice a loop body into a
// larger statement list without leaving a stray nested block behind.
func bodyStatements(stmt binder.BoundStatement) []binder.BoundStatement {
	if block, ok := stmt.(*binder.BoundBlockStatement); ok {
		return append([]binder.BoundStatement(nil), block.Statements...)
	}
	return []binder.BoundStatement{stmt}
}
