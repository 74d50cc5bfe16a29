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

package main

import (
	"os"

	"github.com/google/bitcalc/core/calc"
	"go.uber.org/zap"
)

func main() {
	// Pipeline stages log at debug level; they are silent unless BITCALC_DEBUG is set
	logger := zap.NewNop()
	if os.Getenv("BITCALC_DEBUG") != "" {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	undo := zap.ReplaceGlobals(logger)

	status := calc.Run(os.Args[0], os.Args[1:], calc.NewConsoleReporter(os.Stdout, os.Stderr))

	_ = logger.Sync()
	undo()
	os.Exit(int(status))
}
