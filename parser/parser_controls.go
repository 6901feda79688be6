package parser

import "github.com/mint-lang/mint/lexer"

func (p *Parser) parseBreak() Stmt {
	keyword := p.consume(lexer.Break)
	semi := p.consume(lexer.Semicolon)
	return &BreakStmt{Keyword: keyword, Semi: semi}
}

func (p *Parser) parseContinue() Stmt {
	keyword := p.consume(lexer.Continue)
	semi := p.consume(lexer.Semicolon)
	return &ContinueStmt{Keyword: keyword, Semi: semi}
}

func (p *Parser) parseReturn() Stmt {
	keyword := p.consume(lexer.Return)
	value := p.parseExpression()
	semi := p.consume(lexer.Semicolon)
	return &ReturnStmt{Keyword: keyword, Value: value, Semi: semi}
}
