/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors
*/

package expr

import (
	"fmt"

	"github.com/samber/lo"
)

// ErrorLogHeader is the first line printed before the diagnostics of a failed stage
const ErrorLogHeader = "Error while parsing:"

// ErrorLog collects the diagnostics of one compilation stage in reporting order.
// A stage has failed once the log is non-empty.
type ErrorLog struct {
	messages []string
}

// Add records a diagnostic
func (e *ErrorLog) Add(msg string) {
	e.messages = append(e.messages, msg)
}

// Addf records a formatted diagnostic
func (e *ErrorLog) Addf(format string, args ...any) {
	e.Add(fmt.Sprintf(format, args...))
}

// HasErrors reports whether any diagnostic was recorded
func (e *ErrorLog) HasErrors() bool {
	return len(e.messages) > 0
}

// Len returns the number of diagnostics
func (e *ErrorLog) Len() int {
	return len(e.messages)
}

// Messages returns a copy of the recorded diagnostics
func (e *ErrorLog) Messages() []string {
	return append([]string(nil), e.messages...)
}

// Lines renders the log for display: the header followed by one " - " line per diagnostic
func (e *ErrorLog) Lines() []string {
	return append([]string{ErrorLogHeader}, lo.Map(e.messages, func(msg string, _ int) string {
		return " - " + msg
	})...)
}
