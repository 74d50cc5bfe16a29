/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors
*/

package expr

import "fmt"

// Calculate reduces an AST to its integer value
func Calculate(n Node) int64 {
	switch n := n.(type) {
	case *Number:
		return n.Value
	case *And:
		return Calculate(n.Left) & Calculate(n.Right)
	case *Or:
		return Calculate(n.Left) | Calculate(n.Right)
	case errorNode:
		return 0
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}
}
