package parser

import "github.com/mint-lang/mint/lexer"

// parseExpression is the grammar's Expression entry point.
func (p *Parser) parseExpression() Expr {
	return p.parseAssignment()
}

// parseLogicalOr parses left-associative `||` chains over parseLogicalAnd.
func (p *Parser) parseLogicalOr() Expr {
	left := p.parseLogicalAnd()
	for p.check(lexer.PipePipe) {
		op := p.advance()
		right := p.parseLogicalAnd()
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

// parseLogicalAnd parses left-associative `&&` chains over parseEquality.
func (p *Parser) parseLogicalAnd() Expr {
	left := p.parseEquality()
	for p.check(lexer.AmpAmp) {
		op := p.advance()
		right := p.parseEquality()
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

// parseEquality parses left-associative `==`/`!=` chains over parseComparison.
func (p *Parser) parseEquality() Expr {
	left := p.parseComparison()
	for p.check(lexer.EqualsEquals) || p.check(lexer.BangEquals) {
		op := p.advance()
		right := p.parseComparison()
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

// parseComparison parses left-associative `< <= > >=` chains over parseTerm.
func (p *Parser) parseComparison() Expr {
	left := p.parseTerm()
	for p.check(lexer.Less) || p.check(lexer.LessEquals) || p.check(lexer.Greater) || p.check(lexer.GreaterEquals) {
		op := p.advance()
		right := p.parseTerm()
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

// parseTerm parses left-associative `+ -` chains over parseFactor.
func (p *Parser) parseTerm() Expr {
	left := p.parseFactor()
	for p.check(lexer.Plus) || p.check(lexer.Minus) {
		op := p.advance()
		right := p.parseFactor()
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

// parseFactor parses left-associative `* /` chains over parseUnary.
func (p *Parser) parseFactor() Expr {
	left := p.parseUnary()
	for p.check(lexer.Star) || p.check(lexer.Slash) {
		op := p.advance()
		right := p.parseUnary()
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

// parseUnary parses right-associative `! + -` prefixes, bottoming out at
// parsePrimary.
func (p *Parser) parseUnary() Expr {
	if p.check(lexer.Bang) || p.check(lexer.Plus) || p.check(lexer.Minus) {
		op := p.advance()
		operand := p.parseUnary()
		return &UnaryExpr{Op: op, Operand: operand}
	}
	return p.parsePrimary()
}
