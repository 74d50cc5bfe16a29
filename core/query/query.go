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

package query

import (
	"net/url"
	"strings"

	"github.com/google/safehtml"
	"github.com/samber/lo"
)

// ExprParam is the repeatable URL parameter carrying one expression each
const ExprParam = "expr"

// Query represents the parsed state of an evaluation page URL
type Query struct {
	// Base path (e.g., "/")
	Path string

	// Expressions in evaluation order
	Expressions []string
}

// NewQuery creates a Query from a URL
func NewQuery(u *url.URL) *Query {
	// Blank parameters come from submitting an empty form field and carry no expression
	exprs := lo.Filter(u.Query()[ExprParam], func(e string, _ int) bool {
		return strings.TrimSpace(e) != ""
	})

	return &Query{
		Path:        u.Path,
		Expressions: exprs,
	}
}

// Clone creates a deep copy of the Query
func (s *Query) Clone() *Query {
	clone := &Query{
		Path:        s.Path,
		Expressions: make([]string, len(s.Expressions)),
	}
	copy(clone.Expressions, s.Expressions)
	return clone
}

// HasExpressions reports whether anything should be evaluated
func (s *Query) HasExpressions() bool {
	return len(s.Expressions) > 0
}

// WithoutExpression returns a URL with the expression at index removed
func (s *Query) WithoutExpression(index int) safehtml.URL {
	if index < 0 || index >= len(s.Expressions) {
		return s.ToSafeURL()
	}
	newState := s.Clone()
	newState.Expressions = append(newState.Expressions[:index], newState.Expressions[index+1:]...)
	return newState.ToSafeURL()
}

// WithOnly returns a URL evaluating just the given expression
func (s *Query) WithOnly(expr string) safehtml.URL {
	newState := s.Clone()
	newState.Expressions = []string{expr}
	return newState.ToSafeURL()
}

// ToURL converts the Query back to a URL string
func (s *Query) ToURL() string {
	u := url.URL{Path: s.Path}
	if u.Path == "" {
		u.Path = "/"
	}

	q := url.Values{}
	for _, e := range s.Expressions {
		q.Add(ExprParam, e)
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	// URLSanitized sanitizes the input string and returns a URL
	return safehtml.URLSanitized(s.ToURL())
}
