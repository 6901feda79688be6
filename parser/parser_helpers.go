package parser

import "github.com/mint-lang/mint/lexer"

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.current().Kind == kind
}

// match consumes and returns the current token if it has the given kind.
func (p *Parser) match(kind lexer.Kind) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

// consume requires the current token to have the given kind, reporting a
// diagnostic and unwinding via recoverySignal if it does not.
func (p *Parser) consume(kind lexer.Kind) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.Diags.Report(p.current().Pos, "expected %s but found %s", kind, p.current().Kind)
	panic(recoverySignal{})
}
