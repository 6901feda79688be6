package lexer

import (
	"strconv"

	"github.com/mint-lang/mint/diag"
)

// Lexer performs lexical analysis of mint source code. It scans the input
// byte by byte with a single character of lookahead, tracking line and
// column for diagnostics as it goes.
type Lexer struct {
	src       string
	current   byte
	position  int
	srcLength int
	line      int
	column    int

	Diags diag.Bag
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	var current byte
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		src:       src,
		current:   current,
		position:  0,
		srcLength: len(src),
		line:      1,
		column:    1,
	}
}

// Tokenize scans the whole source and returns its token sequence, always
// ending with a single EOF token. Whitespace is consumed internally and
// never surfaces as a token, satisfying the lexer totality invariant: every
// byte of input is accounted for by the positions of the surrounding
// tokens even though whitespace itself produces none.
func Tokenize(src string) ([]Token, *diag.Bag) {
	lex := New(src)
	var tokens []Token
	for {
		tok := lex.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens, &lex.Diags
}

func (l *Lexer) pos() diag.Position {
	return diag.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) advance() {
	if l.current == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
	if l.position >= l.srcLength {
		l.current = 0
	} else {
		l.current = l.src[l.position]
	}
}

func (l *Lexer) peek() byte {
	if l.position+1 >= l.srcLength {
		return 0
	}
	return l.src[l.position+1]
}

func (l *Lexer) atEnd() bool {
	return l.position >= l.srcLength
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && (l.current == ' ' || l.current == '\t' || l.current == '\r' || l.current == '\n') {
		l.advance()
	}
}

// NextToken returns the next token in the stream, or an EOF token once the
// input is exhausted. Bad characters are reported and skipped one at a
// time so a single unexpected byte never aborts the whole scan.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos()

	if l.atEnd() {
		return newToken(EOF, "", start)
	}

	c := l.current

	switch {
	case isDigit(c):
		return l.scanNumber(start)
	case isLetter(c):
		return l.scanIdentifier(start)
	case c == '"':
		return l.scanString(start)
	}

	// Two-char operators (longest match first), falling back to the
	// single-char punctuator/operator table.
	switch c {
	case '=':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return newToken(EqualsEquals, "==", start)
		}
		l.advance()
		return newToken(Equals, "=", start)
	case '!':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return newToken(BangEquals, "!=", start)
		}
		l.advance()
		return newToken(Bang, "!", start)
	case '<':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return newToken(LessEquals, "<=", start)
		}
		l.advance()
		return newToken(Less, "<", start)
	case '>':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return newToken(GreaterEquals, ">=", start)
		}
		l.advance()
		return newToken(Greater, ">", start)
	case '&':
		if l.peek() == '&' {
			l.advance()
			l.advance()
			return newToken(AmpAmp, "&&", start)
		}
	case '|':
		if l.peek() == '|' {
			l.advance()
			l.advance()
			return newToken(PipePipe, "||", start)
		}
	}

	single := map[byte]Kind{
		'+': Plus, '-': Minus, '*': Star, '/': Slash,
		'(': LParen, ')': RParen, '{': LBrace, '}': RBrace,
		':': Colon, ',': Comma, ';': Semicolon,
	}
	if kind, ok := single[c]; ok {
		l.advance()
		return newToken(kind, string(c), start)
	}

	l.Diags.Report(start, "unexpected character %q", c)
	l.advance()
	return newToken(Bad, string(c), start)
}

func (l *Lexer) scanNumber(start diag.Position) Token {
	begin := l.position
	for !l.atEnd() && isDigit(l.current) {
		l.advance()
	}
	text := l.src[begin:l.position]
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		l.Diags.Report(start, "number %q is out of range for a 32-bit integer", text)
	}
	tok := newToken(Number, text, start)
	tok.Literal = Literal{Int: int32(n), IsInt: true}
	return tok
}

func (l *Lexer) scanIdentifier(start diag.Position) Token {
	begin := l.position
	for !l.atEnd() && (isLetter(l.current) || isDigit(l.current)) {
		l.advance()
	}
	text := l.src[begin:l.position]
	if kind, ok := LookupKeyword(text); ok {
		tok := newToken(kind, text, start)
		if kind == True || kind == False {
			tok.Literal = Literal{Bool: kind == True, IsBool: true}
		}
		return tok
	}
	return newToken(Identifier, text, start)
}

func (l *Lexer) scanString(start diag.Position) Token {
	l.advance() // consume opening quote
	var value []byte
	for {
		if l.atEnd() {
			l.Diags.Report(start, "unterminated string literal")
			break
		}
		if l.current == '\n' {
			l.Diags.Report(start, "unterminated string literal")
			break
		}
		if l.current == '"' {
			if l.peek() == '"' {
				// Escaped quote: "" inside a string literal means a
				// literal ".
				value = append(value, '"')
				l.advance()
				l.advance()
				continue
			}
			l.advance() // consume closing quote
			break
		}
		value = append(value, l.current)
		l.advance()
	}
	lexeme := l.src[start.Offset:l.position]
	tok := newToken(String, lexeme, start)
	tok.Literal = Literal{Str: string(value), IsStr: true}
	return tok
}
