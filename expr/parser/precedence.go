// File: precedence.go
// Title: Binary Operator Precedence Resolution
// Description: Resolves a flat sequence of operands and binary operators
//              into a nested tree with an operand stack and an operator
//              stack.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	mdwast "github.com/msto63/mdwexpr/expr/ast"
)

// Precedence returns the binding strength of op, 1 (loosest) to 6 (tightest)
func Precedence(op mdwast.BinaryOperator) int {
	switch op {
	case mdwast.Or:
		return 1
	case mdwast.And:
		return 2
	case mdwast.Eq, mdwast.Ne:
		return 3
	case mdwast.Lt, mdwast.Gt, mdwast.Le, mdwast.Ge:
		return 4
	case mdwast.Add, mdwast.Sub:
		return 5
	case mdwast.Mul, mdwast.Div, mdwast.Pow:
		return 6
	default:
		return 0
	}
}

// operation is one (operator, right operand) pair following the first operand
type operation struct {
	op      mdwast.Node[mdwast.BinaryOperator]
	operand mdwast.Node[mdwast.Expression]
}

// resolve folds first and rest into a binary tree. An operator on the stack
// is reduced while its precedence is greater than or equal to the incoming
// one, which makes every operator left-associative, ^ included.
func resolve(first mdwast.Node[mdwast.Expression], rest []operation) mdwast.Node[mdwast.Expression] {
	operands := make([]mdwast.Node[mdwast.Expression], 0, len(rest)+1)
	operators := make([]mdwast.Node[mdwast.BinaryOperator], 0, len(rest))
	operands = append(operands, first)

	reduce := func() {
		right := operands[len(operands)-1]
		left := operands[len(operands)-2]
		op := operators[len(operators)-1]
		operands = operands[:len(operands)-2]
		operators = operators[:len(operators)-1]
		operands = append(operands, mdwast.NewBinary(left, op, right))
	}

	for _, next := range rest {
		for len(operators) > 0 && Precedence(operators[len(operators)-1].Value) >= Precedence(next.op.Value) {
			reduce()
		}
		operands = append(operands, next.operand)
		operators = append(operators, next.op)
	}
	for len(operators) > 0 {
		reduce()
	}

	return operands[0]
}
