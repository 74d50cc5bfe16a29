/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors

Package expr compiles bitwise expressions into integer values.
It supports:
  - Decimal literals: 42
  - Hexadecimal literals: 0x2a, 0X2A
  - Binary literals: 0b101010, 0B101010
  - Bitwise operators: & and |, evaluated left to right with equal precedence

Each stage (Lex, Parse) records diagnostics in an ErrorLog and stops at the first one.
*/
package expr

import (
	"errors"
	"fmt"
	"strings"
)

// Stage names the pipeline stage that produced a diagnostic
type Stage string

const (
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
)

// ErrEmpty is returned when the source contains no tokens
var ErrEmpty = errors.New("empty statement")

// CompileError carries the diagnostics of the stage that failed
type CompileError struct {
	Stage Stage
	Log   *ErrorLog
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, strings.Join(e.Log.Messages(), "; "))
}

// Expression represents a compiled expression
type Expression struct {
	source string
	tokens []Token
	root   Node
}

// Compile lexes and parses source.
// The error is a *CompileError for lex or parse failures and ErrEmpty for blank input.
func Compile(source string) (*Expression, error) {
	errs := &ErrorLog{}
	tokens := Lex(source, errs)
	if errs.HasErrors() {
		return nil, &CompileError{Stage: StageLex, Log: errs}
	}
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	root := Parse(tokens, errs)
	if errs.HasErrors() {
		return nil, &CompileError{Stage: StageParse, Log: errs}
	}

	return &Expression{
		source: source,
		tokens: tokens,
		root:   root,
	}, nil
}

// Source returns the original expression source
func (e *Expression) Source() string {
	return e.source
}

// Tokens returns the token sequence the expression was parsed from
func (e *Expression) Tokens() []Token {
	return append([]Token(nil), e.tokens...)
}

// Root returns the AST root
func (e *Expression) Root() Node {
	return e.root
}

// Value evaluates the expression
func (e *Expression) Value() int64 {
	return Calculate(e.root)
}
