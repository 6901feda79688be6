package parser

import "github.com/mint-lang/mint/lexer"

// parseWhile parses `'while' '(' Expression ')' Statement`.
func (p *Parser) parseWhile() Stmt {
	keyword := p.consume(lexer.While)
	p.consume(lexer.LParen)
	cond := p.parseExpression()
	p.consume(lexer.RParen)
	body := p.parseStatement()
	return &WhileStmt{Keyword: keyword, Condition: cond, Body: body}
}

// parseFor parses `'for' IDENT '=' Expression 'to' Expression Statement`.
func (p *Parser) parseFor() Stmt {
	keyword := p.consume(lexer.For)
	ident := p.consume(lexer.Identifier)
	equals := p.consume(lexer.Equals)
	lower := p.parseExpression()
	toKw := p.consume(lexer.To)
	upper := p.parseExpression()
	body := p.parseStatement()
	return &ForStmt{Keyword: keyword, Ident: ident, Equals: equals, Lower: lower, ToKw: toKw, Upper: upper, Body: body}
}
