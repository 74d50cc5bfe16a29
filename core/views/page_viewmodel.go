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

package views

import (
	"github.com/google/bitcalc/core/calc"
	"github.com/google/bitcalc/core/query"
	"github.com/google/safehtml"
)

// PageViewModel contains the evaluation results formatted for template consumption
type PageViewModel struct {
	Title      string
	Usage      []string          // Banner shown when nothing was submitted
	Results    []ResultViewModel // One entry per evaluated expression, up to the first failure
	Skipped    []string          // Expressions not evaluated because an earlier one failed
	Status     calc.Status
	StatusName string
	CurrentURL safehtml.URL
}

// ResultViewModel is the outcome of a single expression
type ResultViewModel struct {
	Expression   string
	Lines        []string
	Failed       bool
	PermalinkURL safehtml.URL // URL evaluating only this expression
	RemoveURL    safehtml.URL // URL with this expression dropped
}

// BuildPageViewModel evaluates the expressions of q in order.
// Evaluation stops at the first failing expression, like a command line run.
func BuildPageViewModel(appName string, q *query.Query) PageViewModel {
	vm := PageViewModel{
		Title:      appName,
		Status:     calc.StatusOK,
		CurrentURL: q.ToSafeURL(),
	}

	if !q.HasExpressions() {
		vm.Usage = append([]string{appName}, calc.Usage...)
		vm.StatusName = calc.StatusUsage.String()
		return vm
	}

	for i, e := range q.Expressions {
		transcript := &calc.Transcript{}
		status := calc.Evaluate(e, transcript)

		vm.Results = append(vm.Results, ResultViewModel{
			Expression:   e,
			Lines:        transcript.Texts(),
			Failed:       status.Failed(),
			PermalinkURL: q.WithOnly(e),
			RemoveURL:    q.WithoutExpression(i),
		})

		if status.Failed() {
			vm.Status = status
			vm.Skipped = q.Expressions[i+1:]
			break
		}
	}

	vm.StatusName = vm.Status.String()
	return vm
}
