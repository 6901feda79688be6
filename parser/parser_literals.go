package parser

import "github.com/mint-lang/mint/lexer"

// parsePrimary parses `'(' Expression ')' | Call | Name | Literal`.
func (p *Parser) parsePrimary() Expr {
	switch p.current().Kind {
	case lexer.LParen:
		lparen := p.advance()
		inner := p.parseExpression()
		rparen := p.consume(lexer.RParen)
		return &ParenthesizedExpr{LParen: lparen, Inner: inner, RParen: rparen}
	case lexer.Number, lexer.String, lexer.True, lexer.False:
		return &LiteralExpr{Token: p.advance()}
	case lexer.Identifier:
		if p.peekAt(1).Kind == lexer.LParen {
			return p.parseCall()
		}
		return &NameExpr{Token: p.advance()}
	default:
		at := p.current()
		p.Diags.Report(at.Pos, "unexpected token %s in expression", at.Kind)
		panic(recoverySignal{})
	}
}

// parseCall parses `IDENT '(' (Expression (',' Expression)*)? ')'`.
func (p *Parser) parseCall() Expr {
	name := p.consume(lexer.Identifier)
	lparen := p.consume(lexer.LParen)
	var args []Expr
	if !p.check(lexer.RParen) {
		args = append(args, p.parseExpression())
		for {
			if _, ok := p.match(lexer.Comma); !ok {
				break
			}
			args = append(args, p.parseExpression())
		}
	}
	rparen := p.consume(lexer.RParen)
	return &CallExpr{Name: name, LParen: lparen, Args: args, RParen: rparen}
}
