/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors
*/

package expr

import "strconv"

// TokenType represents the type of a token
type TokenType int

const (
	TOKEN_NUMBER TokenType = iota
	TOKEN_AND              // &
	TOKEN_OR               // |
	TOKEN_EOF
)

// String returns the token type name used in diagnostics
func (t TokenType) String() string {
	switch t {
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_AND:
		return "AND"
	case TOKEN_OR:
		return "OR"
	case TOKEN_EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token. Value is only set for TOKEN_NUMBER.
type Token struct {
	Type  TokenType
	Value int64
}

// NumberToken creates a number token
func NumberToken(v int64) Token {
	return Token{Type: TOKEN_NUMBER, Value: v}
}

// AndToken creates an '&' token
func AndToken() Token {
	return Token{Type: TOKEN_AND}
}

// OrToken creates a '|' token
func OrToken() Token {
	return Token{Type: TOKEN_OR}
}

// EOFToken is the sentinel returned by token streams past the end
func EOFToken() Token {
	return Token{Type: TOKEN_EOF}
}

// String renders the token as NUMBER(42), AND, OR or EOF
func (t Token) String() string {
	if t.Type == TOKEN_NUMBER {
		return t.Type.String() + "(" + strconv.FormatInt(t.Value, 10) + ")"
	}
	return t.Type.String()
}
