// Package sexp implements the reader front end for a small Lisp-like
// language: a one-pass lexical scanner over source text and a
// recursive-descent parser that builds a symbolic-expression tree.
// Evaluation is left to a later stage; the reader attaches no meaning to
// symbols.
package sexp

import (
	"github.com/lispkit/sexp/ast"
	"github.com/lispkit/sexp/lexer"
	"github.com/lispkit/sexp/parser"
)

// Version of the reader.
const Version = "0.1.0"

// Parse scans a complete source buffer and parses its first expression,
// returning the root of the expression tree.
func Parse(in []byte) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// ParseString is Parse on a string.
func ParseString(source string) (*ast.Node, error) {
	return Parse([]byte(source))
}

// ParseAll scans a complete source buffer and parses every top-level
// expression in it.
func ParseAll(in []byte) ([]*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return parser.New(tokens).ParseAll()
}
