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
	"fmt"
	"io"
)

// Reporter receives the lines produced by a run.
// Informational lines carry results and usage; error lines carry diagnostics.
type Reporter interface {
	ReportInfo(line string)
	ReportError(line string)
}

// ConsoleReporter writes info lines to Out and error lines to Err, one per line
type ConsoleReporter struct {
	Out io.Writer
	Err io.Writer
}

// NewConsoleReporter creates a reporter writing to the given streams
func NewConsoleReporter(out, err io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out, Err: err}
}

// ReportInfo writes line to Out
func (c *ConsoleReporter) ReportInfo(line string) {
	fmt.Fprintln(c.Out, line)
}

// ReportError writes line to Err
func (c *ConsoleReporter) ReportError(line string) {
	fmt.Fprintln(c.Err, line)
}

// Line is one reported line
type Line struct {
	Error bool   `json:"error"`
	Text  string `json:"text"`
}

func (l Line) String() string {
	if l.Error {
		return "ERR " + l.Text
	}
	return "INF " + l.Text
}

// Transcript records reported lines in order
type Transcript struct {
	Lines []Line
}

// ReportInfo records an informational line
func (t *Transcript) ReportInfo(line string) {
	t.Lines = append(t.Lines, Line{Text: line})
}

// ReportError records an error line
func (t *Transcript) ReportError(line string) {
	t.Lines = append(t.Lines, Line{Error: true, Text: line})
}

// Texts returns the text of every recorded line
func (t *Transcript) Texts() []string {
	texts := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		texts[i] = l.Text
	}
	return texts
}
