// File: operators.go
// Title: Unary and Binary Operators
// Description: Defines the operator enumerations with their variant names
//              and source symbols.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// UnaryOperator is an operator applied to a single operand
type UnaryOperator int

const (
	Neg UnaryOperator = iota // -x
	Not                      // !x
	Inc                      // ++x, x++
	Dec                      // --x, x--
)

var unaryNames = [...]string{Neg: "Neg", Not: "Not", Inc: "Inc", Dec: "Dec"}
var unarySymbols = [...]string{Neg: "-", Not: "!", Inc: "++", Dec: "--"}

// String returns the variant name of the operator
func (op UnaryOperator) String() string {
	if op < 0 || int(op) >= len(unaryNames) {
		return "UnaryOperator(?)"
	}
	return unaryNames[op]
}

// Symbol returns the operator as written in source
func (op UnaryOperator) Symbol() string {
	if op < 0 || int(op) >= len(unarySymbols) {
		return "?"
	}
	return unarySymbols[op]
}

// BinaryOperator is an infix operator combining two operands
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Pow
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	And
	Or
)

var binaryNames = [...]string{
	Add: "Add", Sub: "Sub", Mul: "Mul", Div: "Div", Pow: "Pow",
	Eq: "Eq", Ne: "Ne", Lt: "Lt", Gt: "Gt", Le: "Le", Ge: "Ge",
	And: "And", Or: "Or",
}

var binarySymbols = [...]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Pow: "^",
	Eq: "==", Ne: "!=", Lt: "<", Gt: ">", Le: "<=", Ge: ">=",
	And: "&&", Or: "||",
}

// String returns the variant name of the operator
func (op BinaryOperator) String() string {
	if op < 0 || int(op) >= len(binaryNames) {
		return "BinaryOperator(?)"
	}
	return binaryNames[op]
}

// Symbol returns the operator as written in source
func (op BinaryOperator) Symbol() string {
	if op < 0 || int(op) >= len(binarySymbols) {
		return "?"
	}
	return binarySymbols[op]
}

// BinaryOperators returns all binary operators in declaration order
func BinaryOperators() []BinaryOperator {
	ops := make([]BinaryOperator, len(binaryNames))
	for i := range ops {
		ops[i] = BinaryOperator(i)
	}
	return ops
}
