package parser

import (
	"github.com/lispkit/sexp/ast"
	"github.com/lispkit/sexp/lexer"
)

var tokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0)

// Parser walks a scanned token sequence by recursive descent. Its only state
// is a forward-moving cursor; a consumed token is never re-interpreted under
// a different grammar rule.
//
// Grammar:
//
//	expression := atom | "(" list-body ")"
//	list-body  := expression*
//	atom       := NUMBER | STRING | SYMBOL
type Parser struct {
	tokens []lexer.Token
	cursor int
}

// New initializes a Parser over a token sequence produced by lexer.Scan.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes a token sequence and returns its root expression.
func Parse(tokens []lexer.Token) (*ast.Node, error) {
	return New(tokens).Parse()
}

// Parse returns the next expression in the sequence.
func (p *Parser) Parse() (*ast.Node, error) {
	return p.parseExpression()
}

// ParseAll parses every top-level expression up to the EOF sentinel.
func (p *Parser) ParseAll() ([]*ast.Node, error) {
	var nodes []*ast.Node
	for !p.curr().Is(lexer.TokenEOF) {
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// curr returns the token at the cursor, or the EOF sentinel once the cursor
// has moved past the end of the sequence.
func (p *Parser) curr() lexer.Token {
	if p.cursor >= len(p.tokens) {
		return tokenEOF
	}
	return p.tokens[p.cursor]
}

// parseExpression dispatches on the token at the cursor, then advances the
// cursor exactly once. That single trailing advance consumes the
// expression's final token: the atom itself, or the closing paren that
// parseList stopped at without consuming.
func (p *Parser) parseExpression() (*ast.Node, error) {
	var node *ast.Node
	var err error

	switch tok := p.curr(); {
	case tok.Is(lexer.TokenOpenParen):
		node, err = p.parseList()
	case tok.Is(lexer.TokenCloseParen):
		err = newError(ErrUnmatchedCloseParen, tok)
	default:
		node, err = p.parseAtom()
	}

	p.cursor++

	if err != nil {
		return nil, err
	}
	return node, nil
}

// parseList consumes the opening paren and accumulates expressions until the
// cursor lands on a closing paren or on the EOF sentinel. Reaching EOF
// closes the list implicitly, so unbalanced input like "(foo" still yields a
// tree; see TestImplicitCloseOnEOF.
func (p *Parser) parseList() (*ast.Node, error) {
	// opening paren
	p.cursor++

	list := ast.NewList()
	for {
		if tok := p.curr(); tok.Is(lexer.TokenCloseParen) || tok.Is(lexer.TokenEOF) {
			return list, nil
		}

		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := list.Push(node); err != nil {
			return nil, err
		}
	}
}

// parseAtom maps the token at the cursor to a value node. Any structural
// token here is a malformed atom.
func (p *Parser) parseAtom() (*ast.Node, error) {
	tok := p.curr()

	switch tok.Type() {
	case lexer.TokenNumber:
		return ast.NewNumber(tok.Float64()), nil
	case lexer.TokenString:
		return ast.NewString(tok.Text()), nil
	case lexer.TokenSymbol:
		return ast.NewSymbol(tok.Text()), nil
	}

	return nil, newError(ErrUnexpectedToken, tok)
}
