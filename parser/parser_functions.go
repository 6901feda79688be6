package parser

import "github.com/mint-lang/mint/lexer"

// parseFunctionDecl parses `'function' IDENT '(' ParamList? ')' TypeClause? Block`.
//
// The grammar also requires the last statement of a function body to be a
// return; that rule is syntactic, not structural, so it is checked here
// once the body block has been fully parsed, rather than being encoded in
// the grammar itself.
func (p *Parser) parseFunctionDecl() Decl {
	keyword := p.consume(lexer.Function)
	name := p.consume(lexer.Identifier)
	p.consume(lexer.LParen)

	var params []Param
	if !p.check(lexer.RParen) {
		params = append(params, p.parseParam())
		for {
			if _, ok := p.match(lexer.Comma); !ok {
				break
			}
			params = append(params, p.parseParam())
		}
	}
	p.consume(lexer.RParen)

	var returnType *TypeClause
	if p.check(lexer.Colon) {
		tc := p.parseTypeClause()
		returnType = &tc
	}

	body := p.parseBlock()
	p.requireTrailingReturn(body)

	return &FunctionDecl{
		Keyword:    keyword,
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

func (p *Parser) parseParam() Param {
	name := p.consume(lexer.Identifier)
	typ := p.parseTypeClause()
	return Param{Name: name, Type: typ}
}

func (p *Parser) parseTypeClause() TypeClause {
	colon := p.consume(lexer.Colon)
	name := p.consume(lexer.Identifier)
	return TypeClause{Colon: colon, Name: name}
}

// requireTrailingReturn enforces that a function body's last statement is
// a return statement, emitting a diagnostic at the closing brace otherwise.
// Branches that return on only some paths are not analyzed — see the
// corresponding open question.
func (p *Parser) requireTrailingReturn(body *Block) {
	if len(body.Stmts) == 0 {
		p.Diags.Report(body.RBrace.Pos, "function body must end with a return statement")
		return
	}
	last := body.Stmts[len(body.Stmts)-1]
	if _, ok := last.(*ReturnStmt); !ok {
		p.Diags.Report(body.RBrace.Pos, "function body must end with a return statement")
	}
}
