/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors
*/

package expr

// Parser parses tokens into an AST
type Parser struct {
	input *Stream[Token]
	errs  *ErrorLog
}

// NewParser creates a new parser
func NewParser(tokens []Token, errs *ErrorLog) *Parser {
	return &Parser{
		input: NewStream(tokens, EOFToken()),
		errs:  errs,
	}
}

// Parse parses tokens into an AST, recording diagnostics in errs.
// On failure the returned node is ErrorNode.
func Parse(tokens []Token, errs *ErrorLog) Node {
	return NewParser(tokens, errs).Parse()
}

// Parse parses the input and returns the AST.
//
//	expr := number (('&'|'|') number)*
//
// Both operators share one precedence level and fold to the left,
// so "1 & 2 | 4" is ((1 & 2) | 4).
func (p *Parser) Parse() Node {
	root := p.parseNumber()
	if p.errs.HasErrors() {
		return ErrorNode
	}

	for !p.input.IsEOF() {
		op := p.input.Read()
		switch op.Type {
		case TOKEN_AND:
			right := p.parseNumber()
			if p.errs.HasErrors() {
				return ErrorNode
			}
			root = &And{Left: root, Right: right}
		case TOKEN_OR:
			right := p.parseNumber()
			if p.errs.HasErrors() {
				return ErrorNode
			}
			root = &Or{Left: root, Right: right}
		default:
			p.errs.Addf("Expected OP but got %s", op)
			return ErrorNode
		}
	}
	return root
}

func (p *Parser) parseNumber() Node {
	tok := p.input.Read()
	if tok.Type != TOKEN_NUMBER {
		p.errs.Addf("Expected number but got %s", tok)
		return ErrorNode
	}
	return &Number{Value: tok.Value}
}
