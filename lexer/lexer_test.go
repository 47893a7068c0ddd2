package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	tt := make([]TokenType, 0, len(tokens))
	for i := range tokens {
		tt = append(tt, tokens[i].Type())
	}
	return tt
}

func TestScan(t *testing.T) {
	testCases := []string{
		`1`,

		`(+ 1 2 3)`,

		`(- 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a b
			c-d-e-f
			"g
			hi"
		)`,

		`(set foo (+ 3 3))`,

		`'(1 2 3)`,

		`(list 1, 2, 3)`,

		`; just a comment`,

		`(
			"hello world!" "brave new " world
		)`,
	}

	for i := range testCases {
		tokens, err := Scan(testCases[i])
		t.Logf("tokens: %v", tokens)

		require.NoError(t, err)
		require.NotEmpty(t, tokens)

		eofs := 0
		for _, tok := range tokens {
			if tok.Is(TokenEOF) {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs)
		assert.True(t, tokens[len(tokens)-1].Is(TokenEOF))
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`1`,
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`(+ 1 2.5)`,
			[]TokenType{
				TokenOpenParen,
				TokenSymbol,
				TokenNumber,
				TokenNumber,
				TokenCloseParen,
				TokenEOF,
			},
		},
		{
			`'(a , b)`,
			[]TokenType{
				TokenQuote,
				TokenOpenParen,
				TokenSymbol,
				TokenComma,
				TokenSymbol,
				TokenCloseParen,
				TokenEOF,
			},
		},
		{
			`"abc" def`,
			[]TokenType{
				TokenString,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			"; comment until newline\n42",
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			`; comment until EOF`,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			"-1",
			[]TokenType{
				// a leading sign starts a symbol, not a number
				TokenSymbol,
				TokenEOF,
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, tokenTypes(tokens))
	}
}

func TestScanRoundTrip(t *testing.T) {
	tokens, err := Scan(`(+ 1 2.5)`)
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	assert.True(t, tokens[0].Is(TokenOpenParen))

	assert.True(t, tokens[1].Is(TokenSymbol))
	assert.Equal(t, "+", tokens[1].Text())

	assert.True(t, tokens[2].Is(TokenNumber))
	assert.Equal(t, float64(1), tokens[2].Float64())

	assert.True(t, tokens[3].Is(TokenNumber))
	assert.Equal(t, 2.5, tokens[3].Float64())

	assert.True(t, tokens[4].Is(TokenCloseParen))
	assert.True(t, tokens[5].Is(TokenEOF))
}

func TestScanNumbers(t *testing.T) {
	testCases := []struct {
		In    string
		Types []TokenType
		Value float64
	}{
		{`3.14`, []TokenType{TokenNumber, TokenEOF}, 3.14},

		// a bare trailing dot is not part of the number
		{`3.`, []TokenType{TokenNumber, TokenSymbol, TokenEOF}, 3},

		{`3.x`, []TokenType{TokenNumber, TokenSymbol, TokenEOF}, 3},

		// exponents are not numeric lexemes
		{`1e9`, []TokenType{TokenNumber, TokenSymbol, TokenEOF}, 1},

		{`0.5`, []TokenType{TokenNumber, TokenEOF}, 0.5},
	}

	for i := range testCases {
		tokens, err := Scan(testCases[i].In)

		require.NoError(t, err, "in: %q", testCases[i].In)
		require.Equal(t, testCases[i].Types, tokenTypes(tokens), "in: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Value, tokens[0].Float64())
	}
}

func TestScanNumberOverflow(t *testing.T) {
	in := "1" + strings.Repeat("0", 400)

	tokens, err := Scan(in)
	assert.Nil(t, tokens)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedNumber)
}

func TestScanStrings(t *testing.T) {
	tokens, err := Scan(`"abc def"`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	// the lexeme keeps its surrounding quotes
	assert.Equal(t, `"abc def"`, tokens[0].Text())
}

func TestScanUnterminatedString(t *testing.T) {
	testCases := []struct {
		In   string
		Line int
	}{
		{`"abc`, 1},
		{"\n\n\"abc", 3},
		{"(foo \"bar\nbaz", 2},
	}

	for i := range testCases {
		tokens, err := Scan(testCases[i].In)
		assert.Nil(t, tokens)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnterminatedString)

		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, testCases[i].Line, lerr.Line)
	}
}

func TestScanSymbols(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`foo`, `foo`},
		{`+`, `+`},
		{`c-d-e-f`, `c-d-e-f`},

		// a digit, quote or comma mid-symbol stays part of the symbol
		{`a1b`, `a1b`},
		{`x"y`, `x"y`},
		{`a,b`, `a,b`},

		// tab is not a symbol delimiter
		{"a\tb", "a\tb"},
	}

	for i := range testCases {
		tokens, err := Scan(testCases[i].In)

		require.NoError(t, err, "in: %q", testCases[i].In)
		require.Len(t, tokens, 2)

		assert.True(t, tokens[0].Is(TokenSymbol))
		assert.Equal(t, testCases[i].Out, tokens[0].Text())
	}
}

func TestScanLineCount(t *testing.T) {
	testCases := []struct {
		In    string
		Lines []int
	}{
		{
			"a\nb\nc",
			[]int{1, 2, 3, 3},
		},
		{
			"; one\n; two\nfoo",
			[]int{3, 3},
		},
		{
			"\"a\nb\" c",
			// strings report the line they end on
			[]int{2, 2, 2},
		},
	}

	for i := range testCases {
		tokens, err := Scan(testCases[i].In)
		require.NoError(t, err)

		lines := make([]int, 0, len(tokens))
		for _, tok := range tokens {
			lines = append(lines, tok.Line())
		}
		assert.Equal(t, testCases[i].Lines, lines)
	}
}

func TestScanBalancedNeverFails(t *testing.T) {
	testCases := []string{
		`()`,
		`(()())`,
		`(a (b (c (d))))`,
		"(1 2 3\n 4 5 6)",
		`(foo 1 (bar 2) baz)`,
	}

	for i := range testCases {
		tokens, err := Scan(testCases[i])
		require.NoError(t, err)
		assert.True(t, tokens[len(tokens)-1].Is(TokenEOF))
	}
}

func TestTokenString(t *testing.T) {
	tokens, err := Scan(`(x "y" 2)`)
	require.NoError(t, err)

	assert.Equal(t, `(:open_paren [1])`, tokens[0].String())
	assert.Equal(t, `(:symbol "x" [1])`, tokens[1].String())
	assert.Equal(t, `(:string "\"y\"" [1])`, tokens[2].String())
	assert.Equal(t, `(:number 2 [1])`, tokens[3].String())
	assert.Equal(t, `(:EOF [1])`, tokens[5].String())
}
