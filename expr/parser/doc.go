// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Documents the recursive descent parser that turns expression
//              text into a span-annotated syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser package

/*
Package parser turns expression text into an ast tree.

The parser is hand-written recursive descent over a single byte cursor.
Every grammar rule that fails restores the cursor to where it started, so a
caller can try another alternative from the same position. Binary operators
are collected as a flat list and resolved afterwards with an operand stack
and an operator stack.

	p := parser.New("max(a, 2) * -b")
	tree, err := p.Expression()
	if err != nil {
		var pe *parser.ParseError
		errors.As(err, &pe) // pe.Pos, pe.Line, pe.Column, pe.Kind
	}
	rest := p.Source()[p.Pos():] // Expression does not require end of input

Precedence from loosest to tightest:

	1  ||
	2  &&
	3  ==  !=
	4  <  >  <=  >=
	5  +  -
	6  *  /  ^

All binary operators are left-associative, so 2 ^ 3 ^ 2 is (2 ^ 3) ^ 2.

A Parser is not safe for concurrent use. Nesting is limited by
Options.MaxDepth; deeper input fails with NestingTooDeep.
*/
package parser
