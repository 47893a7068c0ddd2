package parser

import (
	"errors"
	"fmt"

	"github.com/lispkit/sexp/lexer"
)

var (
	// ErrUnmatchedCloseParen means a closing parenthesis appeared with no
	// opening one before it.
	ErrUnmatchedCloseParen = errors.New("closing parenthesis without opening one")

	// ErrUnexpectedToken means a structural token appeared where an atom
	// was expected.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error is a parse failure annotated with the offending token.
type Error struct {
	Token lexer.Token

	err error
}

func newError(err error, tok lexer.Token) *Error {
	return &Error{Token: tok, err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v: %v", e.Token.Line(), e.err, e.Token)
}

func (e *Error) Unwrap() error {
	return e.err
}
