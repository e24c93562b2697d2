// File: nodes.go
// Title: Expression Node Definitions
// Description: Defines the sealed Expression interface and its unary, binary
//              and primary variants.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node definitions

package ast

// Expression is the sealed interface implemented by every expression variant
type Expression interface {
	// Children returns the direct sub-expressions in source order
	Children() []Node[Expression]

	expressionNode() // marker method
}

// PrimaryExpression is the sealed sub-interface of atomic expressions
type PrimaryExpression interface {
	Expression
	primaryNode() // marker method
}

// UnaryExpression applies an operator to one operand. Op is nil for a bare
// wrapper without an operator; the parser never produces one.
type UnaryExpression struct {
	Op      *Node[UnaryOperator]
	Operand Node[Expression]
	Prefix  bool // true for -x, false for x++
}

// BinaryExpression is a resolved infix operation
type BinaryExpression struct {
	Left  Node[Expression]
	Op    Node[BinaryOperator]
	Right Node[Expression]
}

// Number is a signed 64-bit integer literal
type Number struct {
	Value int64
}

// Identifier is a bare name
type Identifier struct {
	Name string
}

// Array is a bracketed, non-empty list of expressions
type Array struct {
	Elements []Node[Expression]
}

// FunctionCall is a name immediately followed by a parenthesized argument list
type FunctionCall struct {
	Name      Node[string]
	Arguments []Node[Expression]
}

// GroupedExpression is a parenthesized sub-expression
type GroupedExpression struct {
	Inner Node[Expression]
}

func (*UnaryExpression) expressionNode()   {}
func (*BinaryExpression) expressionNode()  {}
func (*Number) expressionNode()            {}
func (*Identifier) expressionNode()        {}
func (*Array) expressionNode()             {}
func (*FunctionCall) expressionNode()      {}
func (*GroupedExpression) expressionNode() {}

func (*Number) primaryNode()            {}
func (*Identifier) primaryNode()        {}
func (*Array) primaryNode()             {}
func (*FunctionCall) primaryNode()      {}
func (*GroupedExpression) primaryNode() {}

func (e *UnaryExpression) Children() []Node[Expression] {
	return []Node[Expression]{e.Operand}
}

func (e *BinaryExpression) Children() []Node[Expression] {
	return []Node[Expression]{e.Left, e.Right}
}

func (*Number) Children() []Node[Expression]     { return nil }
func (*Identifier) Children() []Node[Expression] { return nil }

func (e *Array) Children() []Node[Expression] {
	return e.Elements
}

func (e *FunctionCall) Children() []Node[Expression] {
	return e.Arguments
}

func (e *GroupedExpression) Children() []Node[Expression] {
	return []Node[Expression]{e.Inner}
}

// NewUnary builds a unary expression node whose span covers operator and operand
func NewUnary(op Node[UnaryOperator], operand Node[Expression], prefix bool) Node[Expression] {
	return NewNode[Expression](op.Span.Cover(operand.Span), &UnaryExpression{
		Op:      &op,
		Operand: operand,
		Prefix:  prefix,
	})
}

// NewBinary builds a binary expression node spanning both operands
func NewBinary(left Node[Expression], op Node[BinaryOperator], right Node[Expression]) Node[Expression] {
	return NewNode[Expression](left.Span.Cover(right.Span), &BinaryExpression{
		Left:  left,
		Op:    op,
		Right: right,
	})
}
