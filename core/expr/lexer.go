/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors
*/

package expr

import (
	"strings"
	"unicode/utf8"
)

// Lexer tokenizes an expression string.
// It stops at the first diagnostic recorded in its error log.
type Lexer struct {
	source string
	input  *Stream[byte]
	errs   *ErrorLog
	tokens []Token
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string, errs *ErrorLog) *Lexer {
	return &Lexer{
		source: input,
		input:  NewStream([]byte(input), 0),
		errs:   errs,
	}
}

// Lex tokenizes source, recording diagnostics in errs.
// The tokens read before a failure are still returned.
func Lex(source string, errs *ErrorLog) []Token {
	return NewLexer(source, errs).Tokenize()
}

// Tokenize reads the whole input and returns the tokens
func (l *Lexer) Tokenize() []Token {
	for !l.input.IsEOF() && !l.errs.HasErrors() {
		l.skipWhitespace()
		if l.input.IsEOF() {
			break
		}

		ch := l.input.Peek(0)
		switch {
		case isDigit(ch):
			n := l.readNumber()
			if !l.errs.HasErrors() {
				l.tokens = append(l.tokens, NumberToken(n))
			}
		case ch == '&':
			l.input.Read()
			l.tokens = append(l.tokens, AndToken())
		case ch == '|':
			l.input.Read()
			l.tokens = append(l.tokens, OrToken())
		default:
			r, size := utf8.DecodeRuneInString(l.source[l.input.Pos():])
			if r == utf8.RuneError && size <= 1 {
				// not valid UTF-8, show the raw byte
				l.errs.Addf("Invalid character: \\x%02x", ch)
			} else {
				l.errs.Addf("Invalid character: %c", r)
			}
			return l.tokens
		}
	}
	return l.tokens
}

func (l *Lexer) skipWhitespace() {
	for !l.input.IsEOF() && isSpace(l.input.Peek(0)) {
		l.input.Read()
	}
}

// readNumber reads one literal starting at a decimal digit.
// The character after the first digit selects the radix: x/X hex, b/B binary,
// another digit decimal, anything else ends a single-digit literal.
func (l *Lexer) readNumber() int64 {
	first := l.input.Peek(0)
	if !isDigit(first) {
		l.errs.Addf("Numbers must start with a number, but started with '%s' (%d)", charString(first), first)
		return 0
	}
	l.input.Read()

	second := l.input.Peek(0)
	switch {
	case second == 'x' || second == 'X':
		l.input.Read()
		digits := l.readWhile(isHexDigit)
		if digits == "" {
			l.errs.Addf("Numbers started with 0x must contain atleast one hexa character but was continued with %s", charString(l.input.Peek(0)))
			return 0
		}
		return parseRadix(digits, 16)

	case second == 'b' || second == 'B':
		l.input.Read()
		var sb strings.Builder
		for !l.input.IsEOF() && isDigit(l.input.Peek(0)) {
			if !isBinaryDigit(l.input.Peek(0)) {
				l.errs.Addf("binary numbers can't contain other than 0 or 1, read: %s", charString(l.input.Peek(0)))
				return 0
			}
			sb.WriteByte(l.input.Read())
		}
		if sb.Len() == 0 {
			l.errs.Addf("Numbers started with 0b must contain atleast one binary character but was continued with %s", charString(l.input.Peek(0)))
			return 0
		}
		return parseRadix(sb.String(), 2)

	case isDigit(second):
		return parseRadix(string(first)+l.readWhile(isDigit), 10)

	default:
		// single digit literal
		return int64(first - '0')
	}
}

func (l *Lexer) readWhile(accept func(byte) bool) string {
	var sb strings.Builder
	for !l.input.IsEOF() && accept(l.input.Peek(0)) {
		sb.WriteByte(l.input.Read())
	}
	return sb.String()
}

// parseRadix folds already validated digits most-significant first.
// Overflow wraps around like any other int64 arithmetic.
func parseRadix(digits string, base uint64) int64 {
	var n uint64
	for i := 0; i < len(digits); i++ {
		n = n*base + uint64(digitValue(digits[i]))
	}
	return int64(n)
}

func digitValue(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	}
	return 0
}

// charString renders a character for a diagnostic. The NUL end-of-input sentinel renders empty.
func charString(ch byte) string {
	if ch == 0 {
		return ""
	}
	return string(ch)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isBinaryDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
