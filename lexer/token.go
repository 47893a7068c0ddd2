package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit). Tokens are
// immutable and own their textual payload; they hold no references back into
// the source buffer.
type Token struct {
	tt   TokenType
	text string
	n    float64

	line int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string, line int) Token {
	return Token{
		tt:   tt,
		text: text,
		line: line,
	}
}

// NewNumberToken creates a lexical unit holding a numeric value
func NewNumberToken(n float64, text string, line int) Token {
	return Token{
		tt:   TokenNumber,
		text: text,
		n:    n,
		line: line,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit. For string literals this
// includes the surrounding double quotes.
func (t Token) Text() string {
	return t.text
}

// Float64 returns the numeric value of a number token
func (t Token) Float64() float64 {
	return t.n
}

// Line returns the source line the lexical unit starts on
func (t Token) Line() int {
	return t.line
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	switch t.tt {
	case TokenNumber:
		return fmt.Sprintf("(:%v %v [%d])", tokenNames[t.tt], t.n, t.line)
	case TokenSymbol, TokenString:
		return fmt.Sprintf("(:%v %q [%d])", tokenNames[t.tt], t.text, t.line)
	}
	return fmt.Sprintf("(:%v [%d])", tokenNames[t.tt], t.line)
}
