package parser

import (
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
)

// Parser holds the token stream and accumulated diagnostics for a single
// parse. Construct one with NewParser and call Parse once.
type Parser struct {
	tokens []lexer.Token
	pos    int

	Diags diag.Bag
}

// NewParser tokenizes src and returns a Parser ready to produce a
// CompilationUnit. Lexer diagnostics are folded into the parser's own Bag
// so callers only need to check one place for phase-1 failures.
func NewParser(src string) *Parser {
	tokens, lexDiags := lexer.Tokenize(src)
	p := &Parser{tokens: tokens}
	p.Diags.Merge(lexDiags)
	return p
}

// recoverySignal unwinds the call stack back to the Declaration loop when
// Consume fails to find an expected token. It carries no data; the
// diagnostic has already been recorded by the time it is thrown.
type recoverySignal struct{}

// Parse consumes the whole token stream and returns the resulting
// compilation unit. A syntax error in one top-level declaration discards
// tokens up to and including the next `;` and resumes with the next
// declaration — no single error aborts the whole parse.
func (p *Parser) Parse() *CompilationUnit {
	unit := &CompilationUnit{}
	for !p.check(lexer.EOF) {
		decl := p.parseDeclarationRecovering()
		if decl != nil {
			unit.Decls = append(unit.Decls, decl)
		}
	}
	unit.EOF = p.current()
	return unit
}

// parseDeclarationRecovering wraps parseDeclaration with the statement-
// bounded recovery discipline described in the grammar: any recoverySignal
// raised while parsing one declaration is caught here, and the driver
// discards tokens through the next `;` before resuming.
func (p *Parser) parseDeclarationRecovering() (decl Decl) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(recoverySignal); !ok {
				panic(r)
			}
			at := p.current()
			p.discardToNextSemicolon()
			decl = &BadStmt{At: at}
		}
	}()
	return p.parseDeclaration()
}

func (p *Parser) discardToNextSemicolon() {
	for !p.check(lexer.EOF) {
		if p.check(lexer.Semicolon) {
			p.advance()
			return
		}
		p.advance()
	}
}

func (p *Parser) parseDeclaration() Decl {
	if p.check(lexer.Function) {
		return p.parseFunctionDecl()
	}
	return p.parseStatement()
}
