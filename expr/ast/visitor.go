// File: visitor.go
// Title: Tree Traversal
// Description: Depth-first traversal helpers for expression trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// Visitor is called for each node encountered by Walk. If the returned
// visitor w is not nil, Walk visits each child of the node with w.
type Visitor interface {
	Visit(node Node[Expression]) (w Visitor)
}

// Walk traverses a tree in depth-first pre-order
func Walk(v Visitor, node Node[Expression]) {
	if v = v.Visit(node); v == nil || node.Value == nil {
		return
	}
	for _, child := range node.Value.Children() {
		Walk(v, child)
	}
}

type inspector func(Node[Expression]) bool

func (f inspector) Visit(node Node[Expression]) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first pre-order, calling f for each
// node. Children are skipped when f returns false.
func Inspect(node Node[Expression], f func(Node[Expression]) bool) {
	Walk(inspector(f), node)
}

// Metrics summarizes the shape of a tree
type Metrics struct {
	Nodes int // Total number of expression nodes
	Depth int // Length of the longest root-to-leaf path
}

// Measure counts the nodes of a tree and its depth
func Measure(node Node[Expression]) Metrics {
	var m Metrics
	measure(node, 1, &m)
	return m
}

func measure(node Node[Expression], depth int, m *Metrics) {
	if node.Value == nil {
		return
	}
	m.Nodes++
	m.Depth = max(m.Depth, depth)
	for _, child := range node.Value.Children() {
		measure(child, depth+1, m)
	}
}
