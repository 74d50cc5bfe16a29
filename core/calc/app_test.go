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

package calc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/bitcalc/core/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inf(s string) Line { return Line{Text: s} }
func errLine(s string) Line { return Line{Error: true, Text: s} }

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		status   Status
		expected []Line
	}{
		{
			name:   "usage",
			args:   nil,
			status: StatusUsage,
			expected: []Line{
				inf("calcapp"),
				inf(" - print truth table of expressions"),
				inf(" - convert between binary and hexadecimal values"),
				inf(" - evaluate boolean expressions"),
			},
		},
		{
			name:     "decimal",
			args:     []string{"42"},
			status:   StatusOK,
			expected: []Line{inf("dec: 42"), inf("hex: 0x2a"), inf("bin: 10 1010")},
		},
		{
			name:     "hex",
			args:     []string{"0x42"},
			status:   StatusOK,
			expected: []Line{inf("dec: 66"), inf("hex: 0x42"), inf("bin: 100 0010")},
		},
		{
			name:     "binary",
			args:     []string{"0b1010"},
			status:   StatusOK,
			expected: []Line{inf("dec: 10"), inf("hex: 0xa"), inf("bin: 1010")},
		},
		{
			name:     "and",
			args:     []string{"0b0101 & 0b1100"},
			status:   StatusOK,
			expected: []Line{inf("dec: 4"), inf("hex: 0x4"), inf("bin: 100")},
		},
		{
			name:     "zero",
			args:     []string{"0"},
			status:   StatusOK,
			expected: []Line{inf("dec: 0"), inf("hex: 0x0"), inf("bin: 0")},
		},
		{
			name:     "flag",
			args:     []string{"-dog"},
			status:   StatusInvalidArgument,
			expected: []Line{errLine("Invalid commandline argument -dog")},
		},
		{
			name:     "slash flag",
			args:     []string{"/h"},
			status:   StatusInvalidArgument,
			expected: []Line{errLine("Invalid commandline argument /h")},
		},
		{
			name:     "backslash flag",
			args:     []string{`\?`},
			status:   StatusInvalidArgument,
			expected: []Line{errLine(`Invalid commandline argument \?`)},
		},
		{
			name:     "lex error",
			args:     []string{"dog"},
			status:   StatusLexError,
			expected: []Line{errLine("Error while parsing:"), errLine(" - Invalid character: d")},
		},
		{
			name:     "empty",
			args:     []string{""},
			status:   StatusEmptyStatement,
			expected: []Line{errLine("Empty statement")},
		},
		{
			name:     "whitespace only",
			args:     []string{" \t "},
			status:   StatusEmptyStatement,
			expected: []Line{errLine("Empty statement")},
		},
		{
			name:     "parse error",
			args:     []string{"1 &"},
			status:   StatusParseError,
			expected: []Line{errLine("Error while parsing:"), errLine(" - Expected number but got EOF")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript := &Transcript{}
			status := Run("calcapp", tt.args, transcript)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.expected, transcript.Lines)
		})
	}
}

func TestRunMultipleArguments(t *testing.T) {
	transcript := &Transcript{}
	status := Run("calcapp", []string{"1", "2"}, transcript)

	assert.Equal(t, StatusOK, status)
	assert.Equal(t, []string{
		"dec: 1", "hex: 0x1", "bin: 1",
		"dec: 2", "hex: 0x2", "bin: 10",
	}, transcript.Texts())
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	transcript := &Transcript{}
	status := Run("calcapp", []string{"3", "1 2", "4", "-x"}, transcript)

	assert.Equal(t, StatusParseError, status)
	assert.Equal(t, []Line{
		inf("dec: 3"), inf("hex: 0x3"), inf("bin: 11"),
		errLine("Error while parsing:"),
		errLine(" - Expected OP but got NUMBER(2)"),
	}, transcript.Lines)
}

func TestEvaluateReportsCompileErrors(t *testing.T) {
	tests := []struct {
		source string
		status Status
	}{
		{"1 & 0x", StatusLexError},
		{"1 + 2", StatusLexError},
		{"  ", StatusEmptyStatement},
		{"1 2", StatusParseError},
		{"&", StatusParseError},
		{"0b101 | 0x10", StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			_, err := expr.Compile(tt.source)
			transcript := &Transcript{}
			status := Evaluate(tt.source, transcript)
			assert.Equal(t, tt.status, status)

			var cerr *expr.CompileError
			switch {
			case errors.Is(err, expr.ErrEmpty):
				assert.Equal(t, []Line{errLine("Empty statement")}, transcript.Lines)
			case errors.As(err, &cerr):
				require.NotEmpty(t, transcript.Lines)
				assert.Equal(t, cerr.Log.Lines(), transcript.Texts())
			default:
				require.NoError(t, err)
				assert.Len(t, transcript.Lines, 3)
			}
		})
	}
}

func TestIsCommandLine(t *testing.T) {
	assert.True(t, IsCommandLine("-h"))
	assert.True(t, IsCommandLine("/"))
	assert.True(t, IsCommandLine(`\x`))
	assert.False(t, IsCommandLine(""))
	assert.False(t, IsCommandLine("1 & -1"))
	assert.False(t, IsCommandLine("dog"))
}

func TestConsoleReporter(t *testing.T) {
	var out, errOut bytes.Buffer
	status := Run("bitcalc", []string{"0x42", "dog"}, NewConsoleReporter(&out, &errOut))

	assert.Equal(t, StatusLexError, status)
	assert.Equal(t, "dec: 66\nhex: 0x42\nbin: 100 0010\n", out.String())
	assert.Equal(t, "Error while parsing:\n - Invalid character: d\n", errOut.String())
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "INF dec: 1", inf("dec: 1").String())
	assert.Equal(t, "ERR Empty statement", errLine("Empty statement").String())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, 0, int(StatusOK))
	assert.Equal(t, -1, int(StatusInvalidArgument))
	assert.Equal(t, -2, int(StatusLexError))
	assert.Equal(t, -3, int(StatusEmptyStatement))
	assert.Equal(t, -4, int(StatusParseError))
	assert.Equal(t, "parse error", StatusParseError.String())
	assert.False(t, StatusUsage.Failed())
	assert.True(t, StatusEmptyStatement.Failed())
}
