package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenQuote                // Quote mark: "'"
	TokenComma                // Comma: ","
	TokenSymbol               // Any run of non-delimiter characters
	TokenString               // Double-quoted literal, quotes included
	TokenNumber               // Floating point literal
	TokenEOF                  // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenQuote:      "quote",
	TokenComma:      "comma",
	TokenSymbol:     "symbol",
	TokenString:     "string",
	TokenNumber:     "number",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSymbolDelimiter reports whether r terminates a symbol lexeme. Note that
// tab is not a delimiter here: a tab glued between two symbol characters
// becomes part of the symbol.
func isSymbolDelimiter(r rune) bool {
	return r == ' ' || r == '(' || r == ')' || r == '\n'
}
