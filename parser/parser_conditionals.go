package parser

import "github.com/mint-lang/mint/lexer"

// parseIf parses `'if' '(' Expression ')' Statement ('else' Statement)?`.
func (p *Parser) parseIf() Stmt {
	keyword := p.consume(lexer.If)
	p.consume(lexer.LParen)
	cond := p.parseExpression()
	p.consume(lexer.RParen)
	then := p.parseStatement()

	stmt := &IfStmt{Keyword: keyword, Condition: cond, Then: then}
	if elseKw, ok := p.match(lexer.Else); ok {
		stmt.ElseKeyword = &elseKw
		stmt.Else = p.parseStatement()
	}
	return stmt
}
