package binder

import (
	"fmt"

	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/parser"
)

// Binder walks an AST and produces a typed bound tree, resolving names
// against a scope chain and checking types against the operator and
// conversion tables as it goes.
type Binder struct {
	Diags diag.Bag

	globalScope     *Scope
	scope           *Scope
	currentFunction *FunctionSymbol
	loopStack       []LoopLabels
	labelCount      int
}

// NewBinder creates a Binder with a fresh global scope seeded with mint's
// two built-in functions, mirroring the reference binder's constructor.
// BindProgram uses this for a whole file; a REPL session keeps a single
// Binder alive across lines instead, so that variables and functions
// declared on one line stay visible (and keep their original
// *VariableSymbol identity, which the evaluator's environment keys on) on
// the next.
func NewBinder() *Binder {
	global := NewScope(nil)
	b := &Binder{globalScope: global, scope: global}
	b.declareBuiltin("print", []Type{TypeString}, TypeVoid)
	b.declareBuiltin("input", nil, TypeString)
	return b
}

func (b *Binder) declareBuiltin(name string, paramTypes []Type, returnType Type) {
	var params []*VariableSymbol
	for i, t := range paramTypes {
		params = append(params, &VariableSymbol{Name: fmt.Sprintf("arg%d", i), Type: t, Kind: Parameter, ReadOnly: true})
	}
	b.globalScope.Declare(&FunctionSymbol{Name: name, Params: params, ReturnType: returnType})
}

// BindProgram runs the full two-pass binding scheme over a parsed
// compilation unit and returns the resulting bound program together with
// every diagnostic reported along the way.
func BindProgram(unit *parser.CompilationUnit) (*BoundProgram, *diag.Bag) {
	b := NewBinder()

	type pendingFunction struct {
		symbol *FunctionSymbol
		decl   *parser.FunctionDecl
	}
	var pending []pendingFunction
	var topLevel []BoundStatement

	// Pass A: declare every function signature and bind every top-level
	// statement, in source order. A function's body is not visited yet,
	// so top-level statements can only see functions/globals declared
	// earlier in the file, while function bodies (bound in pass B, once
	// the whole file's signatures exist) can see every sibling function.
	for _, decl := range unit.Decls {
		switch d := decl.(type) {
		case *parser.FunctionDecl:
			sym := b.bindFunctionSignature(d)
			pending = append(pending, pendingFunction{symbol: sym, decl: d})
		default:
			stmt, ok := decl.(parser.Stmt)
			if !ok {
				continue
			}
			topLevel = append(topLevel, b.bindStatement(stmt))
		}
	}

	functions := make(map[string]*BoundFunction)

	// Pass B: bind every function body against a fresh scope parented at
	// the now-complete global scope.
	for _, pf := range pending {
		if pf.decl == nil {
			continue
		}
		b.scope = NewScope(b.globalScope)
		b.currentFunction = pf.symbol
		b.labelCount = 0
		for _, p := range pf.symbol.Params {
			b.scope.Declare(p)
		}
		body := b.bindBlock(pf.decl.Body)
		b.currentFunction = nil
		functions[pf.symbol.Name] = &BoundFunction{Symbol: pf.symbol, Body: body}
	}

	globals := make(map[string]*VariableSymbol)
	for name, sym := range b.globalScope.symbols {
		if v, ok := sym.(*VariableSymbol); ok {
			globals[name] = v
		}
	}

	program := &BoundProgram{
		Globals:   globals,
		Functions: functions,
		TopLevel:  &BoundBlockStatement{Statements: topLevel},
	}
	return program, &b.Diags
}

// BindLine binds one REPL-entered compilation unit against b's existing
// global scope, immediately (not in the two-pass scheme BindProgram uses):
// a function declared on this line can call anything declared on an
// earlier line, but not a function declared later in the same line or a
// sibling declared after it (mutual recursion across a single REPL
// submission is not supported; splitting mutually recursive functions
// across lines is the file-mode use case). b.Diags accumulates diagnostics
// the way BindProgram's Binder does; callers should check HasErrors after
// every call and reset it (or start a new Binder) before continuing.
func (b *Binder) BindLine(unit *parser.CompilationUnit) ([]BoundStatement, map[string]*BoundFunction) {
	var topLevel []BoundStatement
	functions := make(map[string]*BoundFunction)

	for _, decl := range unit.Decls {
		switch d := decl.(type) {
		case *parser.FunctionDecl:
			sym := b.bindFunctionSignature(d)
			b.scope = NewScope(b.globalScope)
			b.currentFunction = sym
			savedLabelCount := b.labelCount
			b.labelCount = 0
			for _, p := range sym.Params {
				b.scope.Declare(p)
			}
			body := b.bindBlock(d.Body)
			b.currentFunction = nil
			b.scope = b.globalScope
			b.labelCount = savedLabelCount
			functions[sym.Name] = &BoundFunction{Symbol: sym, Body: body}
		default:
			stmt, ok := decl.(parser.Stmt)
			if !ok {
				continue
			}
			topLevel = append(topLevel, b.bindStatement(stmt))
		}
	}
	return topLevel, functions
}

// GlobalSymbols returns every variable currently declared in b's global
// scope, for the REPL's /scope introspection command.
func (b *Binder) GlobalSymbols() map[string]*VariableSymbol {
	globals := make(map[string]*VariableSymbol)
	for name, sym := range b.globalScope.symbols {
		if v, ok := sym.(*VariableSymbol); ok {
			globals[name] = v
		}
	}
	return globals
}

func (b *Binder) bindFunctionSignature(decl *parser.FunctionDecl) *FunctionSymbol {
	var params []*VariableSymbol
	seen := make(map[string]bool)
	for _, p := range decl.Params {
		typ, ok := LookupType(p.Type.Name.Lexeme)
		if !ok {
			b.Diags.Report(p.Type.Name.Pos, "unknown type %q", p.Type.Name.Lexeme)
			typ = TypeError
		}
		if seen[p.Name.Lexeme] {
			b.Diags.Report(p.Name.Pos, "duplicate parameter %q", p.Name.Lexeme)
			continue
		}
		seen[p.Name.Lexeme] = true
		params = append(params, &VariableSymbol{Name: p.Name.Lexeme, Type: typ, Kind: Parameter, ReadOnly: true})
	}

	returnType := TypeVoid
	if decl.ReturnType != nil {
		if t, ok := LookupType(decl.ReturnType.Name.Lexeme); ok {
			returnType = t
		} else {
			b.Diags.Report(decl.ReturnType.Name.Pos, "unknown type %q", decl.ReturnType.Name.Lexeme)
			returnType = TypeError
		}
	}

	sym := &FunctionSymbol{Name: decl.Name.Lexeme, Params: params, ReturnType: returnType, Decl: decl}
	if !b.globalScope.Declare(sym) {
		b.Diags.Report(decl.Name.Pos, "function %q is already declared", decl.Name.Lexeme)
	}
	return sym
}

func (b *Binder) generateLabel(prefix string) LabelSymbol {
	b.labelCount++
	return LabelSymbol{Name: fmt.Sprintf("%s%d", prefix, b.labelCount)}
}

// ---- statements ----

func (b *Binder) bindStatement(stmt parser.Stmt) BoundStatement {
	switch s := stmt.(type) {
	case *parser.Block:
		return b.bindBlock(s)
	case *parser.VarDecl:
		return b.bindVarDecl(s)
	case *parser.IfStmt:
		return b.bindIf(s)
	case *parser.WhileStmt:
		return b.bindWhile(s)
	case *parser.ForStmt:
		return b.bindFor(s)
	case *parser.BreakStmt:
		return b.bindBreak(s)
	case *parser.ContinueStmt:
		return b.bindContinue(s)
	case *parser.ReturnStmt:
		return b.bindReturn(s)
	case *parser.ExpressionStmt:
		return &BoundExpressionStatement{Expression: b.bindExpression(s.Expression)}
	case *parser.BadStmt:
		return &BoundErrorStatement{}
	default:
		panic(fmt.Sprintf("binder: unhandled statement %T", stmt))
	}
}

func (b *Binder) bindBlock(block *parser.Block) *BoundBlockStatement {
	saved := b.scope
	b.scope = NewScope(saved)
	stmts := make([]BoundStatement, 0, len(block.Stmts))
	for _, s := range block.Stmts {
		stmts = append(stmts, b.bindStatement(s))
	}
	b.scope = saved
	return &BoundBlockStatement{Statements: stmts}
}

func (b *Binder) bindVarDecl(decl *parser.VarDecl) BoundStatement {
	init := b.bindExpression(decl.Init)

	declaredType := init.Type()
	if decl.Type != nil {
		if t, ok := LookupType(decl.Type.Name.Lexeme); ok {
			declaredType = t
		} else {
			b.Diags.Report(decl.Type.Name.Pos, "unknown type %q", decl.Type.Name.Lexeme)
			declaredType = TypeError
		}
	}

	if declaredType != TypeError {
		init = b.bindConversion(decl.Init.Pos(), declaredType, init, false)
	}

	kind := Local
	if b.currentFunction == nil {
		kind = Global
	}
	sym := &VariableSymbol{Name: decl.Name.Lexeme, Type: declaredType, ReadOnly: decl.IsReadOnly(), Kind: kind}
	if !b.scope.Declare(sym) {
		b.Diags.Report(decl.Name.Pos, "variable %q is already declared in this scope", decl.Name.Lexeme)
	}
	return &BoundVariableDeclaration{Symbol: sym, Init: init}
}

func (b *Binder) bindIf(stmt *parser.IfStmt) BoundStatement {
	cond := b.bindExpressionConverted(stmt.Condition, TypeBool)
	then := b.bindStatement(stmt.Then)
	var elseStmt BoundStatement
	if stmt.Else != nil {
		elseStmt = b.bindStatement(stmt.Else)
	}
	return &BoundIfStatement{Condition: cond, Then: then, Else: elseStmt}
}

func (b *Binder) bindWhile(stmt *parser.WhileStmt) BoundStatement {
	cond := b.bindExpressionConverted(stmt.Condition, TypeBool)
	labels := LoopLabels{Break: b.generateLabel("break"), Continue: b.generateLabel("continue")}
	b.loopStack = append(b.loopStack, labels)
	body := b.bindStatement(stmt.Body)
	b.loopStack = b.loopStack[:len(b.loopStack)-1]
	return &BoundWhileStatement{Condition: cond, Body: body, Labels: labels}
}

func (b *Binder) bindFor(stmt *parser.ForStmt) BoundStatement {
	lower := b.bindExpressionConverted(stmt.Lower, TypeInt)
	upper := b.bindExpressionConverted(stmt.Upper, TypeInt)

	saved := b.scope
	b.scope = NewScope(saved)

	iter := &VariableSymbol{Name: stmt.Ident.Lexeme, Type: TypeInt, ReadOnly: true, Kind: Local}
	if !b.scope.Declare(iter) {
		b.Diags.Report(stmt.Ident.Pos, "variable %q is already declared in this scope", stmt.Ident.Lexeme)
	}
	upperVar := &VariableSymbol{Name: "$upper", Type: TypeInt, ReadOnly: true, Kind: Local}
	b.scope.Declare(upperVar)

	labels := LoopLabels{Break: b.generateLabel("break"), Continue: b.generateLabel("continue")}
	b.loopStack = append(b.loopStack, labels)
	body := b.bindStatement(stmt.Body)
	b.loopStack = b.loopStack[:len(b.loopStack)-1]

	b.scope = saved

	return &BoundForStatement{
		Variable:      iter,
		Lower:         lower,
		Upper:         upper,
		UpperVariable: upperVar,
		Body:          body,
		Labels:        labels,
	}
}

func (b *Binder) bindBreak(stmt *parser.BreakStmt) BoundStatement {
	if len(b.loopStack) == 0 {
		b.Diags.Report(stmt.Keyword.Pos, "break is only valid inside a loop")
		return &BoundErrorStatement{}
	}
	top := b.loopStack[len(b.loopStack)-1]
	return &BoundGotoStatement{Label: top.Break}
}

func (b *Binder) bindContinue(stmt *parser.ContinueStmt) BoundStatement {
	if len(b.loopStack) == 0 {
		b.Diags.Report(stmt.Keyword.Pos, "continue is only valid inside a loop")
		return &BoundErrorStatement{}
	}
	top := b.loopStack[len(b.loopStack)-1]
	return &BoundGotoStatement{Label: top.Continue}
}

func (b *Binder) bindReturn(stmt *parser.ReturnStmt) BoundStatement {
	if b.currentFunction == nil {
		b.Diags.Report(stmt.Keyword.Pos, "return is only valid inside a function body")
		b.bindExpression(stmt.Value)
		return &BoundErrorStatement{}
	}
	value := b.bindExpressionConverted(stmt.Value, b.currentFunction.ReturnType)
	return &BoundReturnStatement{Value: value}
}

// ---- expressions ----

func (b *Binder) bindExpression(expr parser.Expr) BoundExpression {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return b.bindLiteral(e)
	case *parser.NameExpr:
		return b.bindName(e)
	case *parser.ParenthesizedExpr:
		return b.bindExpression(e.Inner)
	case *parser.UnaryExpr:
		return b.bindUnary(e)
	case *parser.BinaryExpr:
		return b.bindBinary(e)
	case *parser.AssignmentExpr:
		return b.bindAssignment(e)
	case *parser.CallExpr:
		return b.bindCall(e)
	case *parser.BadExpr:
		return &BoundErrorExpression{}
	default:
		panic(fmt.Sprintf("binder: unhandled expression %T", expr))
	}
}

// bindExpressionConverted binds expr and converts it to target via
// bindConversion, the pattern used for if/while conditions and for-loop
// bounds (target is always bool or int, never an explicit-only cast).
func (b *Binder) bindExpressionConverted(expr parser.Expr, target Type) BoundExpression {
	bound := b.bindExpression(expr)
	return b.bindConversion(expr.Pos(), target, bound, false)
}

func (b *Binder) bindLiteral(lit *parser.LiteralExpr) BoundExpression {
	tok := lit.Token
	switch tok.Kind {
	case lexer.Number:
		return &BoundLiteralExpression{Typ: TypeInt, IntVal: tok.Literal.Int}
	case lexer.String:
		return &BoundLiteralExpression{Typ: TypeString, StrVal: tok.Literal.Str}
	case lexer.True, lexer.False:
		return &BoundLiteralExpression{Typ: TypeBool, BoolVal: tok.Literal.Bool}
	default:
		panic(fmt.Sprintf("binder: unhandled literal kind %v", tok.Kind))
	}
}

func (b *Binder) bindName(name *parser.NameExpr) BoundExpression {
	sym, ok := b.scope.Lookup(name.Token.Lexeme)
	if !ok {
		b.Diags.Report(name.Token.Pos, "undeclared name %q", name.Token.Lexeme)
		return &BoundErrorExpression{}
	}
	v, ok := sym.(*VariableSymbol)
	if !ok {
		b.Diags.Report(name.Token.Pos, "%q is not a variable", name.Token.Lexeme)
		return &BoundErrorExpression{}
	}
	return &BoundVariableExpression{Symbol: v}
}

func (b *Binder) bindUnary(expr *parser.UnaryExpr) BoundExpression {
	operand := b.bindExpression(expr.Operand)
	if operand.Type() == TypeError {
		return &BoundErrorExpression{}
	}
	op, ok := BindUnaryOperator(expr.Op.Kind, operand.Type())
	if !ok {
		b.Diags.Report(expr.Op.Pos, "unary operator %q is not defined for type %s", expr.Op.Lexeme, operand.Type())
		return &BoundErrorExpression{}
	}
	return &BoundUnaryExpression{Op: op, Operand: operand}
}

func (b *Binder) bindBinary(expr *parser.BinaryExpr) BoundExpression {
	left := b.bindExpression(expr.Left)
	right := b.bindExpression(expr.Right)
	if left.Type() == TypeError || right.Type() == TypeError {
		return &BoundErrorExpression{}
	}
	op, ok := BindBinaryOperator(expr.Op.Kind, left.Type(), right.Type())
	if !ok {
		b.Diags.Report(expr.Op.Pos, "binary operator %q is not defined for types %s and %s", expr.Op.Lexeme, left.Type(), right.Type())
		return &BoundErrorExpression{}
	}
	return &BoundBinaryExpression{Op: op, Left: left, Right: right}
}

func (b *Binder) bindAssignment(expr *parser.AssignmentExpr) BoundExpression {
	sym, ok := b.scope.Lookup(expr.Name.Lexeme)
	if !ok {
		b.Diags.Report(expr.Name.Pos, "undeclared name %q", expr.Name.Lexeme)
		b.bindExpression(expr.Value)
		return &BoundErrorExpression{}
	}
	v, ok := sym.(*VariableSymbol)
	if !ok {
		b.Diags.Report(expr.Name.Pos, "%q is not a variable", expr.Name.Lexeme)
		b.bindExpression(expr.Value)
		return &BoundErrorExpression{}
	}
	if v.ReadOnly {
		b.Diags.Report(expr.Name.Pos, "%q is read-only and cannot be assigned to", expr.Name.Lexeme)
	}
	value := b.bindExpression(expr.Value)
	if v.Type != TypeError {
		value = b.bindConversion(expr.Value.Pos(), v.Type, value, false)
	}
	return &BoundAssignmentExpression{Symbol: v, Value: value}
}

func (b *Binder) bindCall(expr *parser.CallExpr) BoundExpression {
	if targetType, ok := LookupType(expr.Name.Lexeme); ok {
		if len(expr.Args) != 1 {
			b.Diags.Report(expr.Pos(), "conversion to %s takes exactly one argument", expr.Name.Lexeme)
			for _, a := range expr.Args {
				b.bindExpression(a)
			}
			return &BoundErrorExpression{}
		}
		arg := b.bindExpression(expr.Args[0])
		return b.bindConversion(expr.Args[0].Pos(), targetType, arg, true)
	}

	sym, ok := b.scope.Lookup(expr.Name.Lexeme)
	if !ok {
		b.Diags.Report(expr.Name.Pos, "undeclared function %q", expr.Name.Lexeme)
		for _, a := range expr.Args {
			b.bindExpression(a)
		}
		return &BoundErrorExpression{}
	}
	fn, ok := sym.(*FunctionSymbol)
	if !ok {
		b.Diags.Report(expr.Name.Pos, "%q is not a function", expr.Name.Lexeme)
		for _, a := range expr.Args {
			b.bindExpression(a)
		}
		return &BoundErrorExpression{}
	}
	if len(expr.Args) != len(fn.Params) {
		b.Diags.Report(expr.Pos(), "function %q takes %d argument(s) but %d were given", fn.Name, len(fn.Params), len(expr.Args))
	}
	args := make([]BoundExpression, 0, len(expr.Args))
	for i, a := range expr.Args {
		bound := b.bindExpression(a)
		if i < len(fn.Params) {
			param := fn.Params[i]
			if bound.Type() != param.Type && bound.Type() != TypeError && param.Type != TypeError {
				b.Diags.Report(a.Pos(), "argument %d to %q should be %s but is %s", i+1, fn.Name, param.Type, bound.Type())
			}
		}
		args = append(args, bound)
	}
	return &BoundCallExpression{Function: fn, Args: args}
}

// bindConversion is the single place a value's declared type can change.
// It reports "no conversion" when the pair is not classifiable, reports a
// missing-cast diagnostic for an Explicit conversion that was not spelled
// as one, and otherwise wraps expr in a Conversion node (or returns it
// unchanged for the Identity case). Errors on either side are silently
// absorbed: the root cause was already reported when expr's type became
// TypeError.
//
// allowExplicit is true only when the caller is binding an explicit
// int()/bool()/string() conversion call; everywhere else (var/let type
// annotations, if/while conditions, for-loop bounds, assignments, return
// values) an Explicit conversion is rejected with a diagnostic asking for
// the call syntax instead. Call arguments do not pass through here:
// bindCall requires each argument's type to equal its parameter's type.
func (b *Binder) bindConversion(pos diag.Position, target Type, expr BoundExpression, allowExplicit bool) BoundExpression {
	from := expr.Type()
	if from == TypeError || target == TypeError {
		return &BoundErrorExpression{}
	}

	switch Classify(from, target) {
	case ConversionIdentity:
		return expr
	case ConversionExplicit:
		if !allowExplicit {
			b.Diags.Report(pos, "cannot convert %s to %s implicitly; use %s(...)", from, target, target)
			return &BoundErrorExpression{}
		}
		return &BoundConversionExpression{To: target, Expression: expr}
	default:
		b.Diags.Report(pos, "cannot convert %s to %s", from, target)
		return &BoundErrorExpression{}
	}
}
