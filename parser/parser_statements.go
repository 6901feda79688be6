package parser

import "github.com/mint-lang/mint/lexer"

// parseStatement parses any production of the Statement rule.
func (p *Parser) parseStatement() Stmt {
	switch p.current().Kind {
	case lexer.LBrace:
		return p.parseBlock()
	case lexer.If:
		return p.parseIf()
	case lexer.While:
		return p.parseWhile()
	case lexer.For:
		return p.parseFor()
	case lexer.Break:
		return p.parseBreak()
	case lexer.Continue:
		return p.parseContinue()
	case lexer.Return:
		return p.parseReturn()
	case lexer.Var, lexer.Let:
		return p.parseVarDecl()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseBlock() *Block {
	lbrace := p.consume(lexer.LBrace)
	var stmts []Stmt
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		stmt := p.parseStatementRecovering()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	rbrace := p.consume(lexer.RBrace)
	return &Block{LBrace: lbrace, Stmts: stmts, RBrace: rbrace}
}

// parseStatementRecovering mirrors parseDeclarationRecovering for
// statements nested inside a block: one bad statement is discarded up to
// its terminating `;`, and parsing resumes with the next statement.
func (p *Parser) parseStatementRecovering() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(recoverySignal); !ok {
				panic(r)
			}
			at := p.current()
			p.discardToNextSemicolon()
			stmt = &BadStmt{At: at}
		}
	}()
	return p.parseStatement()
}

func (p *Parser) parseVarDecl() Stmt {
	keyword := p.advance() // Var or Let
	name := p.consume(lexer.Identifier)

	var typ *TypeClause
	if p.check(lexer.Colon) {
		tc := p.parseTypeClause()
		typ = &tc
	}

	equals := p.consume(lexer.Equals)
	init := p.parseExpression()
	semi := p.consume(lexer.Semicolon)

	return &VarDecl{Keyword: keyword, Name: name, Type: typ, Equals: equals, Init: init, Semi: semi}
}

func (p *Parser) parseExpressionStmt() Stmt {
	expr := p.parseExpression()
	semi := p.consume(lexer.Semicolon)
	return &ExpressionStmt{Expression: expr, Semi: semi}
}
