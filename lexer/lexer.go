package lexer

import (
	"strconv"
)

// Lexer is a lexical scanner for Lisp source text. It makes a single
// left-to-right pass over the input and never backtracks past an emitted
// token. Indexing is by rune, so multi-byte code points are never split.
type Lexer struct {
	source []rune
	tokens []Token

	start   int // first rune of the lexeme being scanned
	current int // rune about to be consumed
	line    int // 1-based, for diagnostics
}

// New initializes a Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		tokens: []Token{},
		line:   1,
	}
}

// Scan consumes the entire source and returns the token sequence, terminated
// by exactly one EOF token. On failure the already-scanned prefix is
// discarded and only the error is returned.
func (lx *Lexer) Scan() ([]Token, error) {
	for !lx.isEnd() {
		lx.start = lx.current
		if err := lx.scanToken(); err != nil {
			return nil, err
		}
	}
	lx.tokens = append(lx.tokens, NewToken(TokenEOF, "", lx.line))
	return lx.tokens, nil
}

// scanToken consumes one character and dispatches on it, emitting at most
// one token per round.
func (lx *Lexer) scanToken() error {
	c, ok := lx.advance()
	if !ok {
		return newError(ErrNoInput, lx.line)
	}

	switch c {
	case '(':
		lx.emit(TokenOpenParen)
	case ')':
		lx.emit(TokenCloseParen)
	case '\'':
		lx.emit(TokenQuote)
	case ',':
		lx.emit(TokenComma)
	case '"':
		return lx.scanString()
	case ';':
		lx.skipComment()
	case ' ', '\t', '\r':
		// whitespace, nothing to emit
	case '\n':
		lx.line++
	default:
		if isDigit(c) {
			return lx.scanNumber()
		}
		lx.scanSymbol()
	}

	return nil
}

// scanString consumes up to and including the next double quote. There is no
// escape processing, so embedded quotes are not supported. The emitted
// lexeme keeps its surrounding quotes.
func (lx *Lexer) scanString() error {
	for lx.peek() != '"' && !lx.isEnd() {
		if lx.peek() == '\n' {
			lx.line++
		}
		lx.current++
	}

	if lx.isEnd() {
		return newError(ErrUnterminatedString, lx.line)
	}

	// closing quote
	lx.current++
	lx.emit(TokenString)
	return nil
}

// scanNumber consumes one or more digits, optionally followed by a dot and
// one or more digits. A trailing dot with no digit after it is left for the
// next round. Signs and exponents are not part of numeric lexemes.
func (lx *Lexer) scanNumber() error {
	for isDigit(lx.peek()) {
		lx.current++
	}

	if lx.peek() == '.' && isDigit(lx.peekNext()) {
		lx.current++
		for isDigit(lx.peek()) {
			lx.current++
		}
	}

	text := lx.lexeme()
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return newError(ErrMalformedNumber, lx.line)
	}

	lx.tokens = append(lx.tokens, NewNumberToken(n, text, lx.line))
	return nil
}

// scanSymbol greedily consumes everything up to the next symbol delimiter or
// end of input. A digit, quote or comma seen mid-symbol stays part of the
// symbol.
func (lx *Lexer) scanSymbol() {
	for !lx.isEnd() && !isSymbolDelimiter(lx.peek()) {
		if lx.peek() == '\n' {
			lx.line++
		}
		lx.current++
	}
	lx.emit(TokenSymbol)
}

// skipComment consumes up to, but not including, the next newline. The
// newline is left for the main dispatch so the line count advances exactly
// once per newline.
func (lx *Lexer) skipComment() {
	for lx.peek() != '\n' && !lx.isEnd() {
		lx.current++
	}
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, NewToken(tt, lx.lexeme(), lx.line))
}

// lexeme returns the source span of the current scanning round.
func (lx *Lexer) lexeme() string {
	return string(lx.source[lx.start:lx.current])
}

func (lx *Lexer) isEnd() bool {
	return lx.current >= len(lx.source)
}

// advance consumes and returns the rune at the cursor.
func (lx *Lexer) advance() (rune, bool) {
	if lx.isEnd() {
		lx.current++
		return 0, false
	}
	c := lx.source[lx.current]
	lx.current++
	return c, true
}

// peek returns the rune at the cursor without consuming it.
func (lx *Lexer) peek() rune {
	if lx.current >= len(lx.source) {
		return rune(0)
	}
	return lx.source[lx.current]
}

// peekNext returns the rune one past the cursor without consuming it.
func (lx *Lexer) peekNext() rune {
	if lx.current+1 >= len(lx.source) {
		return rune(0)
	}
	return lx.source[lx.current+1]
}

// Scan tokenizes a complete source string in one pass.
func Scan(source string) ([]Token, error) {
	return New(source).Scan()
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if a token can't be identified. The input is assumed to be UTF-8.
func Tokenize(in []byte) ([]Token, error) {
	return Scan(string(in))
}
