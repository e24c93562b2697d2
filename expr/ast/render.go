// File: render.go
// Title: Debug Rendering
// Description: Renders expression trees as compact single-line text or as an
//              indented multi-line outline, optionally annotated with spans.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"strconv"
	"strings"
)

// FormatOptions controls tree rendering
type FormatOptions struct {
	Pretty bool // One node per line, indented by two spaces per level
	Spans  bool // Annotate each node with its span
}

// Compact renders a tree on a single line, e.g.
// Binary(Add, Number(1), Binary(Mul, Number(2), Number(3)))
func Compact(node Node[Expression]) string {
	return Format(node, FormatOptions{})
}

// Pretty renders a tree as an indented outline with one node per line
func Pretty(node Node[Expression]) string {
	return Format(node, FormatOptions{Pretty: true})
}

// Format renders a tree with the given options
func Format(node Node[Expression], opts FormatOptions) string {
	p := &printer{opts: opts}
	if opts.Pretty {
		p.outline(node)
	} else {
		p.inline(node)
	}
	return p.buffer.String()
}

// printer accumulates rendered output
type printer struct {
	opts   FormatOptions
	buffer strings.Builder
	indent int
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buffer.WriteString("  ")
	}
}

func (p *printer) writeSpan(span Span) {
	if p.opts.Spans {
		p.buffer.WriteString(" @")
		p.buffer.WriteString(span.String())
	}
}

func (p *printer) inline(node Node[Expression]) {
	switch e := node.Value.(type) {
	case *Number:
		p.buffer.WriteString("Number(" + strconv.FormatInt(e.Value, 10) + ")")
	case *Identifier:
		p.buffer.WriteString("Identifier(" + e.Name + ")")
	case *UnaryExpression:
		p.buffer.WriteString("Unary(")
		if e.Op != nil {
			p.buffer.WriteString(e.Op.Value.String() + ", " + placement(e.Prefix) + ", ")
		}
		p.inline(e.Operand)
		p.buffer.WriteString(")")
	case *BinaryExpression:
		p.buffer.WriteString("Binary(" + e.Op.Value.String() + ", ")
		p.inline(e.Left)
		p.buffer.WriteString(", ")
		p.inline(e.Right)
		p.buffer.WriteString(")")
	case *Array:
		p.buffer.WriteString("Array[")
		p.inlineList(e.Elements)
		p.buffer.WriteString("]")
	case *FunctionCall:
		p.buffer.WriteString("Call(" + e.Name.Value)
		if len(e.Arguments) > 0 {
			p.buffer.WriteString(", ")
			p.inlineList(e.Arguments)
		}
		p.buffer.WriteString(")")
	case *GroupedExpression:
		p.buffer.WriteString("Grouped(")
		p.inline(e.Inner)
		p.buffer.WriteString(")")
	default:
		p.buffer.WriteString("<nil>")
	}
	p.writeSpan(node.Span)
}

func (p *printer) inlineList(nodes []Node[Expression]) {
	for i, n := range nodes {
		if i > 0 {
			p.buffer.WriteString(", ")
		}
		p.inline(n)
	}
}

func (p *printer) outline(node Node[Expression]) {
	p.writeIndent()

	switch e := node.Value.(type) {
	case *Number:
		p.buffer.WriteString("Number " + strconv.FormatInt(e.Value, 10))
	case *Identifier:
		p.buffer.WriteString("Identifier " + e.Name)
	case *UnaryExpression:
		p.buffer.WriteString("Unary")
		if e.Op != nil {
			p.buffer.WriteString(" " + e.Op.Value.String() + " (" + placement(e.Prefix) + ")")
		}
	case *BinaryExpression:
		p.buffer.WriteString("Binary " + e.Op.Value.String())
	case *Array:
		p.buffer.WriteString("Array")
	case *FunctionCall:
		p.buffer.WriteString("Call " + e.Name.Value)
	case *GroupedExpression:
		p.buffer.WriteString("Grouped")
	default:
		p.buffer.WriteString("<nil>")
	}
	p.writeSpan(node.Span)
	p.buffer.WriteString("\n")

	if node.Value == nil {
		return
	}
	p.indent++
	for _, child := range node.Value.Children() {
		p.outline(child)
	}
	p.indent--
}

func placement(prefix bool) string {
	if prefix {
		return "prefix"
	}
	return "postfix"
}
