package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	input    string
	expected []Kind
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []tokenCase{
		{
			input:    ` 123 + 2   31 - 12 `,
			expected: []Kind{Number, Plus, Number, Number, Minus, Number, EOF},
		},
		{
			input:    `( ) { } : , ;`,
			expected: []Kind{LParen, RParen, LBrace, RBrace, Colon, Comma, Semicolon, EOF},
		},
		{
			input:    `== != < <= > >= && || !`,
			expected: []Kind{EqualsEquals, BangEquals, Less, LessEquals, Greater, GreaterEquals, AmpAmp, PipePipe, Bang, EOF},
		},
		{
			input:    `var x let y function if else while for to break continue return true false`,
			expected: []Kind{Var, Identifier, Let, Identifier, Function, If, Else, While, For, To, Break, Continue, Return, True, False, EOF},
		},
	}

	for _, tc := range tests {
		tokens, diags := Tokenize(tc.input)
		assert.False(t, diags.HasErrors(), "input %q", tc.input)
		kinds := make([]Kind, len(tokens))
		for i, tok := range tokens {
			kinds[i] = tok.Kind
		}
		assert.Equal(t, tc.expected, kinds, "input %q", tc.input)
	}
}

func TestTokenize_EndsWithSingleEOF(t *testing.T) {
	for _, input := range []string{"", "   ", "x", "1 + 2 * (3 - 4)"} {
		tokens, _ := Tokenize(input)
		assert.NotEmpty(t, tokens)
		assert.Equal(t, EOF, tokens[len(tokens)-1].Kind, "input %q", input)
		for _, tok := range tokens[:len(tokens)-1] {
			assert.NotEqual(t, EOF, tok.Kind)
		}
	}
}

func TestTokenize_NumberLiteral(t *testing.T) {
	tokens, diags := Tokenize("42")
	assert.False(t, diags.HasErrors())
	assert.Equal(t, int32(42), tokens[0].Literal.Int)
}

func TestTokenize_MinMaxInt32RoundTrip(t *testing.T) {
	for _, text := range []string{"2147483647", "0"} {
		tokens, diags := Tokenize(text)
		assert.False(t, diags.HasErrors())
		assert.Equal(t, text, tokens[0].Lexeme)
	}
}

func TestTokenize_NumberOverflow(t *testing.T) {
	_, diags := Tokenize("99999999999999999999")
	assert.True(t, diags.HasErrors())
}

func TestTokenize_StringLiteral(t *testing.T) {
	tokens, diags := Tokenize(`"hello ""world"""`)
	assert.False(t, diags.HasErrors())
	assert.Equal(t, `hello "world"`, tokens[0].Literal.Str)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, diags := Tokenize("\"abc\ndef")
	assert.True(t, diags.HasErrors())
}

func TestTokenize_BadCharacterContinuesScanning(t *testing.T) {
	tokens, diags := Tokenize("1 @ 2")
	assert.Equal(t, 1, diags.Len())
	assert.Equal(t, []Kind{Number, Bad, Number, EOF}, []Kind{tokens[0].Kind, tokens[1].Kind, tokens[2].Kind, tokens[3].Kind})
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens, diags := Tokenize("")
	assert.False(t, diags.HasErrors())
	assert.Len(t, tokens, 1)
	assert.Equal(t, EOF, tokens[0].Kind)
}
