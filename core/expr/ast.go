/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors
*/

package expr

import (
	"fmt"
	"strconv"
)

// Node is the interface for all AST nodes.
// The set of nodes is closed: Number, And, Or and ErrorNode.
type Node interface {
	node()
	fmt.Stringer
}

// Number represents a numeric literal
type Number struct {
	Value int64
}

func (n *Number) node() {}

func (n *Number) String() string { return strconv.FormatInt(n.Value, 10) }

// And represents a bitwise AND of two operands
type And struct {
	Left  Node
	Right Node
}

func (n *And) node() {}

func (n *And) String() string { return "(" + n.Left.String() + " & " + n.Right.String() + ")" }

// Or represents a bitwise OR of two operands
type Or struct {
	Left  Node
	Right Node
}

func (n *Or) node() {}

func (n *Or) String() string { return "(" + n.Left.String() + " | " + n.Right.String() + ")" }

type errorNode struct{}

func (errorNode) node() {}

func (errorNode) String() string { return "<error>" }

// ErrorNode is returned by a failed parse. It evaluates to 0.
var ErrorNode Node = errorNode{}
