// File: doc.go
// Title: Expression AST Package Documentation
// Description: Documents the syntax tree produced by the expression parser:
//              spans, positioned nodes, expression variants and operators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST implementation

/*
Package ast defines the abstract syntax tree for arithmetic, comparison,
logical, array and function-call expressions.

Every syntactic element is wrapped in a Node that pairs the payload with the
half-open byte Span it was parsed from. Spans are provenance only: Equal
compares payloads and ignores them.

The Expression interface is sealed. Its variants are:
  • UnaryExpression: prefix or postfix operator applied to an operand
  • BinaryExpression: fully resolved left operand, operator, right operand
  • PrimaryExpression: Number, Identifier, Array, FunctionCall, GroupedExpression

Trees are built once by the parser and never mutated afterwards. Compact and
Pretty render a tree for tests and diagnostics; Walk and Inspect traverse it.
*/
package ast
