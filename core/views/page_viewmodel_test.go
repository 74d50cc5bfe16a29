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
	"net/url"
	"testing"

	"github.com/google/bitcalc/core/calc"
	"github.com/google/bitcalc/core/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPageViewModelUsage(t *testing.T) {
	vm := BuildPageViewModel("bitcalc", &query.Query{Path: "/"})

	assert.Equal(t, calc.StatusOK, vm.Status)
	assert.Equal(t, "bitcalc", vm.Usage[0])
	assert.Len(t, vm.Usage, 4)
	assert.Empty(t, vm.Results)
}

func TestBuildPageViewModelResults(t *testing.T) {
	q := &query.Query{Path: "/", Expressions: []string{"42", "0b0101 & 0b1100"}}
	vm := BuildPageViewModel("bitcalc", q)

	assert.Equal(t, calc.StatusOK, vm.Status)
	assert.Equal(t, "ok", vm.StatusName)
	require.Len(t, vm.Results, 2)
	assert.Equal(t, []string{"dec: 42", "hex: 0x2a", "bin: 10 1010"}, vm.Results[0].Lines)
	assert.Equal(t, []string{"dec: 4", "hex: 0x4", "bin: 100"}, vm.Results[1].Lines)
	assert.False(t, vm.Results[1].Failed)

	permalink, err := url.Parse(vm.Results[1].PermalinkURL.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"0b0101 & 0b1100"}, query.NewQuery(permalink).Expressions)
}

func TestBuildPageViewModelStopsAtFirstFailure(t *testing.T) {
	q := &query.Query{Path: "/", Expressions: []string{"1", "dog", "2", "3"}}
	vm := BuildPageViewModel("bitcalc", q)

	assert.Equal(t, calc.StatusLexError, vm.Status)
	assert.Equal(t, "lex error", vm.StatusName)
	require.Len(t, vm.Results, 2)
	assert.True(t, vm.Results[1].Failed)
	assert.Equal(t, []string{"Error while parsing:", " - Invalid character: d"}, vm.Results[1].Lines)
	assert.Equal(t, []string{"2", "3"}, vm.Skipped)
}
