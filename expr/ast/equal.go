// File: equal.go
// Title: Structural Equality
// Description: Compares expression trees by payload, ignoring spans.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import "reflect"

// ExpressionsEqual reports whether two expressions have the same structure
// and payloads. Spans are not compared. Nil nodes, typed or untyped, equal
// only a nil node of the same variant.
func ExpressionsEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *UnaryExpression:
		y, ok := b.(*UnaryExpression)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if x.Prefix != y.Prefix {
			return false
		}
		if (x.Op == nil) != (y.Op == nil) {
			return false
		}
		if x.Op != nil && x.Op.Value != y.Op.Value {
			return false
		}
		return ExpressionsEqual(x.Operand.Value, y.Operand.Value)

	case *BinaryExpression:
		y, ok := b.(*BinaryExpression)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return x.Op.Value == y.Op.Value &&
			ExpressionsEqual(x.Left.Value, y.Left.Value) &&
			ExpressionsEqual(x.Right.Value, y.Right.Value)

	case *Number:
		y, ok := b.(*Number)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return x.Value == y.Value

	case *Identifier:
		y, ok := b.(*Identifier)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return x.Name == y.Name

	case *Array:
		y, ok := b.(*Array)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return listsEqual(x.Elements, y.Elements)

	case *FunctionCall:
		y, ok := b.(*FunctionCall)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return x.Name.Value == y.Name.Value && listsEqual(x.Arguments, y.Arguments)

	case *GroupedExpression:
		y, ok := b.(*GroupedExpression)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return ExpressionsEqual(x.Inner.Value, y.Inner.Value)
	}

	return false
}

func listsEqual(a, b []Node[Expression]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ExpressionsEqual(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

func payloadEqual(a, b any) bool {
	ea, aIsExpr := a.(Expression)
	eb, bIsExpr := b.(Expression)
	if aIsExpr || bIsExpr {
		return aIsExpr && bIsExpr && ExpressionsEqual(ea, eb)
	}
	return reflect.DeepEqual(a, b)
}
