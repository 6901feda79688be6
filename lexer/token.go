// Package lexer implements the single-pass scanner that turns mint source
// text into a flat token stream for the parser.
package lexer

import "github.com/mint-lang/mint/diag"

// Kind identifies the lexical category of a Token. Kind is a closed
// enumeration: every production in the parser's grammar is driven off one
// of these constants, never off a raw lexeme string.
type Kind int

const (
	// Special
	EOF Kind = iota
	Bad

	// Literals
	Number
	String
	Identifier

	// Keywords
	True
	False
	Var
	Let
	If
	Else
	While
	For
	To
	Function
	Break
	Continue
	Return

	// Punctuators
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
	LBrace
	RBrace
	Colon
	Comma
	Semicolon
	Equals

	// Comparison and logical operators (one- and two-char)
	EqualsEquals
	BangEquals
	Less
	LessEquals
	Greater
	GreaterEquals
	AmpAmp
	PipePipe
	Bang
)

var keywords = map[string]Kind{
	"true":     True,
	"false":    False,
	"var":      Var,
	"let":      Let,
	"if":       If,
	"else":     Else,
	"while":    While,
	"for":      For,
	"to":       To,
	"function": Function,
	"break":    Break,
	"continue": Continue,
	"return":   Return,
}

var kindNames = map[Kind]string{
	EOF: "EOF", Bad: "<bad>",
	Number: "number", String: "string", Identifier: "identifier",
	True: "true", False: "false", Var: "var", Let: "let",
	If: "if", Else: "else", While: "while", For: "for", To: "to",
	Function: "function", Break: "break", Continue: "continue", Return: "return",
	Plus: "+", Minus: "-", Star: "*", Slash: "/",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	Colon: ":", Comma: ",", Semicolon: ";", Equals: "=",
	EqualsEquals: "==", BangEquals: "!=", Less: "<", LessEquals: "<=",
	Greater: ">", GreaterEquals: ">=", AmpAmp: "&&", PipePipe: "||", Bang: "!",
}

// String renders a Kind using its canonical lexeme (or a symbolic name for
// kinds that have no fixed lexeme, like Number or EOF).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "<unknown>"
}

// LookupKeyword reports whether ident names a keyword, and if so, which one.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Literal is the decoded value carried by Number, String, True and False
// tokens. Every other kind carries the zero Literal.
type Literal struct {
	Int    int32
	Str    string
	Bool   bool
	IsInt  bool
	IsStr  bool
	IsBool bool
}

// Token is a single lexical unit: a kind, its source text, source position,
// and (for literals) its decoded value.
type Token struct {
	Kind    Kind
	Lexeme  string
	Pos     diag.Position
	Literal Literal
}

func newToken(kind Kind, lexeme string, pos diag.Position) Token {
	return Token{Kind: kind, Lexeme: lexeme, Pos: pos}
}
