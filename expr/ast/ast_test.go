// File: ast_test.go
// Title: Expression AST Tests
// Description: Tests spans, payload equality, rendering and traversal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package ast

import (
	"testing"
)

func num(start int, v int64, width int) Node[Expression] {
	return NewNode[Expression](NewSpan(start, start+width), &Number{Value: v})
}

func ident(start int, name string) Node[Expression] {
	return NewNode[Expression](NewSpan(start, start+len(name)), &Identifier{Name: name})
}

func binop(start int, op BinaryOperator) Node[BinaryOperator] {
	return NewNode(NewSpan(start, start+len(op.Symbol())), op)
}

// sample builds the tree for "1 + 2 * 3"
func sample() Node[Expression] {
	mul := NewBinary(num(4, 2, 1), binop(6, Mul), num(8, 3, 1))
	return NewBinary(num(0, 1, 1), binop(2, Add), mul)
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name       string
		span       Span
		wantLen    int
		wantString string
	}{
		{"regular", NewSpan(2, 5), 3, "2..5"},
		{"empty", NewSpan(4, 4), 0, "4..4"},
		{"reversed collapses", NewSpan(7, 3), 0, "7..7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.span.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", tt.span.Len(), tt.wantLen)
			}
			if tt.span.String() != tt.wantString {
				t.Errorf("String() = %q, want %q", tt.span.String(), tt.wantString)
			}
			if tt.span.Start > tt.span.End {
				t.Errorf("Start %d > End %d", tt.span.Start, tt.span.End)
			}
		})
	}
}

func TestSpanContainsCoverText(t *testing.T) {
	outer := NewSpan(0, 9)
	inner := NewSpan(4, 9)

	if !outer.Contains(inner) || inner.Contains(outer) {
		t.Error("Contains() mismatch")
	}
	if !outer.Contains(outer) {
		t.Error("a span must contain itself")
	}
	if got := NewSpan(4, 5).Cover(NewSpan(0, 1)); got != NewSpan(0, 5) {
		t.Errorf("Cover() = %v, want 0..5", got)
	}
	if got := NewSpan(4, 9).Text("1 + 2 * 3"); got != "2 * 3" {
		t.Errorf("Text() = %q", got)
	}
	if got := NewSpan(4, 40).Text("1 + 2"); got != "2" {
		t.Errorf("Text() beyond source = %q, want clamped", got)
	}
}

func TestNodeEqualIgnoresSpans(t *testing.T) {
	a := sample()
	b := NewBinary(num(10, 1, 1), binop(11, Add),
		NewBinary(num(12, 2, 1), binop(13, Mul), num(14, 3, 1)))

	if !a.Equal(b) {
		t.Error("trees with equal payloads and different spans must be equal")
	}

	c := NewBinary(num(0, 1, 1), binop(2, Sub),
		NewBinary(num(4, 2, 1), binop(6, Mul), num(8, 3, 1)))
	if a.Equal(c) {
		t.Error("trees with different operators must differ")
	}

	if !NewNode(NewSpan(0, 1), "f").Equal(NewNode(NewSpan(5, 6), "f")) {
		t.Error("string nodes with equal values must be equal")
	}
	if NewNode(NewSpan(0, 1), Neg).Equal(NewNode(NewSpan(0, 1), Not)) {
		t.Error("different operators must differ")
	}
}

func TestExpressionsEqualVariants(t *testing.T) {
	neg := NewNode(NewSpan(0, 1), Neg)
	inc := NewNode(NewSpan(1, 3), Inc)

	tests := []struct {
		name string
		a, b Expression
		want bool
	}{
		{"identifiers", &Identifier{Name: "x"}, &Identifier{Name: "x"}, true},
		{"different identifiers", &Identifier{Name: "x"}, &Identifier{Name: "y"}, false},
		{"number vs identifier", &Number{Value: 1}, &Identifier{Name: "x"}, false},
		{
			"prefix vs postfix",
			NewUnary(neg, ident(1, "x"), true).Value,
			NewUnary(neg, ident(1, "x"), false).Value,
			false,
		},
		{
			"postfix inc",
			NewUnary(inc, ident(0, "x"), false).Value,
			NewUnary(inc, ident(0, "x"), false).Value,
			true,
		},
		{
			"bare wrapper vs operator",
			&UnaryExpression{Operand: ident(0, "x")},
			NewUnary(neg, ident(1, "x"), true).Value,
			false,
		},
		{
			"arrays of different length",
			&Array{Elements: []Node[Expression]{num(1, 1, 1)}},
			&Array{Elements: []Node[Expression]{num(1, 1, 1), num(3, 2, 1)}},
			false,
		},
		{
			"calls",
			&FunctionCall{Name: NewNode(NewSpan(0, 1), "f"), Arguments: []Node[Expression]{num(2, 1, 1)}},
			&FunctionCall{Name: NewNode(NewSpan(4, 5), "f"), Arguments: []Node[Expression]{num(9, 1, 1)}},
			true,
		},
		{
			"grouped vs inner",
			&GroupedExpression{Inner: num(1, 1, 1)},
			&Number{Value: 1},
			false,
		},
		{"nil vs nil", nil, nil, true},
		{"nil vs number", nil, &Number{Value: 1}, false},
		{"typed nil number vs number", (*Number)(nil), &Number{Value: 1}, false},
		{"number vs typed nil number", &Number{Value: 1}, (*Number)(nil), false},
		{"typed nil numbers", (*Number)(nil), (*Number)(nil), true},
		{"typed nil unary vs unary", (*UnaryExpression)(nil), NewUnary(neg, ident(1, "x"), true).Value, false},
		{"typed nil binary vs binary", (*BinaryExpression)(nil), &BinaryExpression{}, false},
		{"typed nil identifier vs identifier", &Identifier{Name: "x"}, (*Identifier)(nil), false},
		{"typed nil array vs array", (*Array)(nil), &Array{}, false},
		{"typed nil call vs call", &FunctionCall{}, (*FunctionCall)(nil), false},
		{"typed nil grouped vs grouped", (*GroupedExpression)(nil), &GroupedExpression{}, false},
		{"typed nil number vs typed nil identifier", (*Number)(nil), (*Identifier)(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpressionsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ExpressionsEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperatorNames(t *testing.T) {
	if Le.String() != "Le" || Le.Symbol() != "<=" {
		t.Errorf("Le = %s %s", Le.String(), Le.Symbol())
	}
	if Dec.String() != "Dec" || Dec.Symbol() != "--" {
		t.Errorf("Dec = %s %s", Dec.String(), Dec.Symbol())
	}
	if BinaryOperator(99).String() != "BinaryOperator(?)" {
		t.Errorf("out of range operator = %s", BinaryOperator(99).String())
	}
	if len(BinaryOperators()) != 13 {
		t.Errorf("len(BinaryOperators()) = %d, want 13", len(BinaryOperators()))
	}
}

func TestCompact(t *testing.T) {
	call := NewNode[Expression](NewSpan(0, 9), &FunctionCall{
		Name: NewNode(NewSpan(0, 1), "f"),
		Arguments: []Node[Expression]{
			NewUnary(NewNode(NewSpan(2, 3), Neg), ident(3, "x"), true),
			NewNode[Expression](NewSpan(6, 8), &Array{Elements: []Node[Expression]{num(6, 1, 1)}}),
		},
	})
	empty := NewNode[Expression](NewSpan(0, 3), &FunctionCall{Name: NewNode(NewSpan(0, 1), "g")})
	grouped := NewNode[Expression](NewSpan(0, 5), &GroupedExpression{
		Inner: NewUnary(NewNode(NewSpan(2, 4), Inc), ident(1, "y"), false),
	})

	tests := []struct {
		name string
		node Node[Expression]
		want string
	}{
		{"precedence", sample(), "Binary(Add, Number(1), Binary(Mul, Number(2), Number(3)))"},
		{"call", call, "Call(f, Unary(Neg, prefix, Identifier(x)), Array[Number(1)])"},
		{"empty call", empty, "Call(g)"},
		{"grouped postfix", grouped, "Grouped(Unary(Inc, postfix, Identifier(y)))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.node); got != tt.want {
				t.Errorf("Compact() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyAndSpans(t *testing.T) {
	want := "Binary Add\n" +
		"  Number 1\n" +
		"  Binary Mul\n" +
		"    Number 2\n" +
		"    Number 3\n"
	if got := Pretty(sample()); got != want {
		t.Errorf("Pretty() =\n%s\nwant\n%s", got, want)
	}

	wantSpans := "Binary(Add, Number(1) @0..1, Binary(Mul, Number(2) @4..5, Number(3) @8..9) @4..9) @0..9"
	if got := Format(sample(), FormatOptions{Spans: true}); got != wantSpans {
		t.Errorf("Format(Spans) = %q, want %q", got, wantSpans)
	}
}

func TestInspectAndMeasure(t *testing.T) {
	var order []string
	Inspect(sample(), func(n Node[Expression]) bool {
		switch e := n.Value.(type) {
		case *BinaryExpression:
			order = append(order, e.Op.Value.String())
		case *Number:
			order = append(order, Compact(n))
		}
		return true
	})

	want := []string{"Add", "Number(1)", "Mul", "Number(2)", "Number(3)"}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, order[i], want[i])
		}
	}

	visited := 0
	Inspect(sample(), func(Node[Expression]) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("returning false must prune children, visited %d", visited)
	}

	if m := Measure(sample()); m.Nodes != 5 || m.Depth != 3 {
		t.Errorf("Measure() = %+v, want {Nodes:5 Depth:3}", m)
	}
}
