package parser

import "github.com/mint-lang/mint/lexer"

// parseAssignment parses `IDENT '=' Assignment | LogicalOr`. Assignment is
// right-associative and requires two tokens of lookahead to distinguish
// from an ordinary name expression feeding into LogicalOr.
func (p *Parser) parseAssignment() Expr {
	if p.check(lexer.Identifier) && p.peekAt(1).Kind == lexer.Equals {
		name := p.advance()
		equals := p.advance()
		value := p.parseAssignment()
		return &AssignmentExpr{Name: name, Equals: equals, Value: value}
	}
	return p.parseLogicalOr()
}
