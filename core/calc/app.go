/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package calc runs the expression pipeline over command line style arguments
// and reports results and diagnostics through a Reporter.
package calc

import (
	"errors"

	"github.com/google/bitcalc/core/expr"
	"github.com/google/bitcalc/core/radix"
	"go.uber.org/zap"
)

// Status is the outcome of a run. It doubles as the process exit code.
type Status int

const (
	StatusOK              Status = 0
	StatusUsage           Status = 0
	StatusInvalidArgument Status = -1
	StatusLexError        Status = -2
	StatusEmptyStatement  Status = -3
	StatusParseError      Status = -4
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusLexError:
		return "lex error"
	case StatusEmptyStatement:
		return "empty statement"
	case StatusParseError:
		return "parse error"
	default:
		return "unknown"
	}
}

// Failed reports whether the status ends a run
func (s Status) Failed() bool {
	return s != StatusOK
}

// Usage lines printed after the program name when there is nothing to evaluate
var Usage = []string{
	" - print truth table of expressions",
	" - convert between binary and hexadecimal values",
	" - evaluate boolean expressions",
}

// IsCommandLine reports whether arg looks like a flag (/x, -x or \x)
func IsCommandLine(arg string) bool {
	if arg == "" {
		return false
	}
	switch arg[0] {
	case '/', '-', '\\':
		return true
	}
	return false
}

// Run evaluates every argument in order and reports the results.
// The first failing argument stops the run and its status is returned.
// With no arguments the usage banner is reported.
func Run(appName string, args []string, r Reporter) Status {
	for _, arg := range args {
		if status := Evaluate(arg, r); status.Failed() {
			return status
		}
	}

	if len(args) == 0 {
		r.ReportInfo(appName)
		for _, line := range Usage {
			r.ReportInfo(line)
		}
		return StatusUsage
	}

	return StatusOK
}

// Evaluate runs one argument through the lexer, parser and evaluator
func Evaluate(arg string, r Reporter) Status {
	logger := zap.L().With(zap.String("expression", arg))

	if IsCommandLine(arg) {
		logger.Debug("rejected flag argument")
		r.ReportError("Invalid commandline argument " + arg)
		return StatusInvalidArgument
	}

	compiled, err := expr.Compile(arg)
	if errors.Is(err, expr.ErrEmpty) {
		logger.Debug("no tokens")
		r.ReportError("Empty statement")
		return StatusEmptyStatement
	}
	var cerr *expr.CompileError
	if errors.As(err, &cerr) {
		logger.Debug("compilation failed", zap.String("stage", string(cerr.Stage)), zap.Strings("diagnostics", cerr.Log.Messages()))
		reportErrors(cerr.Log, r)
		if cerr.Stage == expr.StageLex {
			return StatusLexError
		}
		return StatusParseError
	}

	value := compiled.Value()
	logger.Debug("evaluated",
		zap.Int("tokens", len(compiled.Tokens())),
		zap.Stringer("ast", compiled.Root()),
		zap.Int64("value", value))
	for _, line := range radix.NumberLines(value) {
		r.ReportInfo(line)
	}
	return StatusOK
}

func reportErrors(errs *expr.ErrorLog, r Reporter) {
	for _, line := range errs.Lines() {
		r.ReportError(line)
	}
}
