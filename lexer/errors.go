package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedString means the input ended inside a string literal.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrMalformedNumber means a numeric lexeme did not parse as a float.
	ErrMalformedNumber = errors.New("malformed number literal")

	// ErrNoInput means the scanner advanced past the end of the source,
	// which the outer loop's end check should make unreachable.
	ErrNoInput = errors.New("no character available")
)

// Error is a scan failure annotated with the source line it happened on.
type Error struct {
	Line int

	err error
}

func newError(err error, line int) *Error {
	return &Error{Line: line, err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}
