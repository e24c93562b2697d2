// File: parser.go
// Title: Expression Recursive Descent Parser
// Description: Implements the grammar rules for numbers, identifiers,
//              arrays, function calls, grouped, unary and binary
//              expressions over a single mutable scan cursor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"errors"
	"fmt"
	"strconv"

	mdwlog "github.com/msto63/mdwexpr/core/log"
	mdwast "github.com/msto63/mdwexpr/expr/ast"
)

// DefaultMaxDepth bounds expression nesting when Options.MaxDepth is zero
const DefaultMaxDepth = 256

// Parser implements recursive descent parsing over one source string.
// A Parser owns its cursor and must not be shared between goroutines.
type Parser struct {
	source string
	pos    int
	depth  int
	logger *mdwlog.Logger
	opts   Options
}

// Options configures parser behavior
type Options struct {
	Logger   *mdwlog.Logger // Receives trace output for rolled-back trials
	MaxDepth int            // Maximum expression nesting (default: DefaultMaxDepth)
}

// New creates a parser over source with default options
func New(source string) *Parser {
	return NewWithOptions(source, Options{})
}

// NewWithOptions creates a parser over source
func NewWithOptions(source string, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		source: source,
		logger: opts.Logger.WithField("component", "expr-parser"),
		opts:   opts,
	}
}

// Parse parses one expression from the start of source and returns the tree
// together with the offset just past it. Trailing input is not an error.
func Parse(source string) (mdwast.Node[mdwast.Expression], int, error) {
	p := New(source)
	node, err := p.Expression()
	return node, p.Pos(), err
}

// Pos returns the cursor offset
func (p *Parser) Pos() int {
	return p.pos
}

// Source returns the text being parsed
func (p *Parser) Source() string {
	return p.source
}

// AtEnd reports whether the cursor has reached the end of the input
func (p *Parser) AtEnd() bool {
	return p.pos >= len(p.source)
}

// Expression parses one complete expression at the cursor: a unary
// expression followed by any number of (binary operator, unary expression)
// pairs, resolved by precedence. Whitespace after the expression is consumed.
func (p *Parser) Expression() (mdwast.Node[mdwast.Expression], error) {
	return attempt(p, "expression", p.expression)
}

func (p *Parser) expression() (mdwast.Node[mdwast.Expression], error) {
	if p.depth >= p.opts.MaxDepth {
		return mdwast.Node[mdwast.Expression]{}, p.newError(NestingTooDeep, p.pos,
			fmt.Sprintf("expression nesting exceeds %d levels", p.opts.MaxDepth), "", "")
	}
	p.depth++
	defer func() { p.depth-- }()

	first, err := p.UnaryExpression()
	if err != nil {
		return mdwast.Node[mdwast.Expression]{}, err
	}

	var rest []operation
	p.multispace0()
	for {
		op, err := p.BinaryOperator()
		if err != nil {
			break
		}
		p.multispace0()
		operand, err := p.UnaryExpression()
		if err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}
		rest = append(rest, operation{op: op, operand: operand})
		p.multispace0()
	}

	return resolve(first, rest), nil
}

// UnaryExpression parses a prefix operator followed by a primary
// expression, or a primary expression with an optional postfix ++ or --.
// Without an operator the primary expression is returned unwrapped.
func (p *Parser) UnaryExpression() (mdwast.Node[mdwast.Expression], error) {
	return attempt(p, "unary_expression", func() (mdwast.Node[mdwast.Expression], error) {
		p.multispace0()

		if op, err := p.UnaryOperator(); err == nil {
			operand, err := p.PrimaryExpression()
			if err != nil {
				return mdwast.Node[mdwast.Expression]{}, err
			}
			return mdwast.NewUnary(op, operand, true), nil
		}

		primary, err := p.PrimaryExpression()
		if err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}
		if op, ok := p.postfixOperator(); ok {
			return mdwast.NewUnary(op, primary, false), nil
		}
		return primary, nil
	})
}

// unaryOperators lists prefix operators, longest symbols first
var unaryOperators = []mdwast.UnaryOperator{mdwast.Inc, mdwast.Dec, mdwast.Not, mdwast.Neg}

// UnaryOperator parses one of ++ -- ! -
func (p *Parser) UnaryOperator() (mdwast.Node[mdwast.UnaryOperator], error) {
	start := p.pos
	for _, op := range unaryOperators {
		if _, err := p.tag(op.Symbol()); err == nil {
			return mdwast.NewNode(mdwast.NewSpan(start, p.pos), op), nil
		}
	}
	return mdwast.Node[mdwast.UnaryOperator]{}, p.unexpected("unary operator")
}

// postfixOperator matches ++ or -- directly after an operand
func (p *Parser) postfixOperator() (mdwast.Node[mdwast.UnaryOperator], bool) {
	start := p.pos
	for _, op := range []mdwast.UnaryOperator{mdwast.Inc, mdwast.Dec} {
		if _, err := p.tag(op.Symbol()); err == nil {
			return mdwast.NewNode(mdwast.NewSpan(start, p.pos), op), true
		}
	}
	return mdwast.Node[mdwast.UnaryOperator]{}, false
}

// binaryOperators lists infix operators with two-character symbols ahead of
// their one-character prefixes
var binaryOperators = []mdwast.BinaryOperator{
	mdwast.Eq, mdwast.Ne, mdwast.Le, mdwast.Ge, mdwast.And, mdwast.Or,
	mdwast.Add, mdwast.Sub, mdwast.Mul, mdwast.Div, mdwast.Pow,
	mdwast.Lt, mdwast.Gt,
}

// BinaryOperator parses one infix operator at the cursor
func (p *Parser) BinaryOperator() (mdwast.Node[mdwast.BinaryOperator], error) {
	start := p.pos
	for _, op := range binaryOperators {
		if _, err := p.tag(op.Symbol()); err == nil {
			return mdwast.NewNode(mdwast.NewSpan(start, p.pos), op), nil
		}
	}
	return mdwast.Node[mdwast.BinaryOperator]{}, p.unexpected("binary operator")
}

// PrimaryExpression parses, in order: a grouped expression, an array, a
// function call, a number or an identifier
func (p *Parser) PrimaryExpression() (mdwast.Node[mdwast.Expression], error) {
	return attempt(p, "primary_expression", p.primary)
}

func (p *Parser) primary() (mdwast.Node[mdwast.Expression], error) {
	p.multispace0()
	start := p.pos

	switch {
	case p.startsWith("("):
		return p.grouped(start)
	case p.startsWith("["):
		return p.Array()
	case p.callAhead():
		return p.FunctionCall()
	}

	number, err := p.Number()
	if err == nil {
		return number, nil
	}
	if IsKind(err, NumberOverflow) {
		return mdwast.Node[mdwast.Expression]{}, err
	}

	if name, err := p.Identifier(); err == nil {
		return mdwast.NewNode[mdwast.Expression](name.Span, &mdwast.Identifier{Name: name.Value}), nil
	}

	return mdwast.Node[mdwast.Expression]{}, p.unexpected("expression")
}

func (p *Parser) grouped(start int) (mdwast.Node[mdwast.Expression], error) {
	if _, err := p.tag("("); err != nil {
		return mdwast.Node[mdwast.Expression]{}, err
	}
	p.multispace0()

	inner, err := p.expression()
	if err != nil {
		return mdwast.Node[mdwast.Expression]{}, err
	}

	p.multispace0()
	if _, err := p.tag(")"); err != nil {
		return mdwast.Node[mdwast.Expression]{}, err
	}

	return mdwast.NewNode[mdwast.Expression](mdwast.NewSpan(start, p.pos),
		&mdwast.GroupedExpression{Inner: inner}), nil
}

// callAhead reports whether an identifier immediately followed by "(" starts
// at the cursor. The cursor is always restored.
func (p *Parser) callAhead() bool {
	start := p.pos
	defer func() { p.pos = start }()

	if _, err := p.Identifier(); err != nil {
		return false
	}
	_, err := p.tag("(")
	return err == nil
}

// Array parses "[" expression ("," expression)* "]". Empty arrays and
// trailing commas are rejected.
func (p *Parser) Array() (mdwast.Node[mdwast.Expression], error) {
	return attempt(p, "array", func() (mdwast.Node[mdwast.Expression], error) {
		start := p.pos
		if _, err := p.tag("["); err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}

		elements, err := p.expressionList()
		if err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}

		if _, err := p.tag("]"); err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}

		return mdwast.NewNode[mdwast.Expression](mdwast.NewSpan(start, p.pos),
			&mdwast.Array{Elements: elements}), nil
	})
}

// FunctionCall parses an identifier immediately followed by a parenthesized,
// possibly empty, comma-separated argument list
func (p *Parser) FunctionCall() (mdwast.Node[mdwast.Expression], error) {
	return attempt(p, "function_call", func() (mdwast.Node[mdwast.Expression], error) {
		start := p.pos
		name, err := p.Identifier()
		if err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}
		if _, err := p.tag("("); err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}
		p.multispace0()

		var arguments []mdwast.Node[mdwast.Expression]
		if !p.startsWith(")") {
			arguments, err = p.expressionList()
			if err != nil {
				return mdwast.Node[mdwast.Expression]{}, err
			}
		}

		if _, err := p.tag(")"); err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}

		return mdwast.NewNode[mdwast.Expression](mdwast.NewSpan(start, p.pos),
			&mdwast.FunctionCall{Name: name, Arguments: arguments}), nil
	})
}

// expressionList parses one or more comma-separated expressions
func (p *Parser) expressionList() ([]mdwast.Node[mdwast.Expression], error) {
	var list []mdwast.Node[mdwast.Expression]
	for {
		element, err := p.expression()
		if err != nil {
			return nil, err
		}
		list = append(list, element)

		p.multispace0()
		if !p.startsWith(",") {
			return list, nil
		}
		p.pos++
	}
}

// Number parses an optional "-" followed by ASCII digits as a signed 64-bit
// integer
func (p *Parser) Number() (mdwast.Node[mdwast.Expression], error) {
	return attempt(p, "number", func() (mdwast.Node[mdwast.Expression], error) {
		start := p.pos
		if p.startsWith("-") {
			p.pos++
		}

		digits := p.pos
		for !p.AtEnd() && isDigit(p.source[p.pos]) {
			p.pos++
		}
		if p.pos == digits {
			return mdwast.Node[mdwast.Expression]{}, p.unexpected("digit")
		}

		text, err := p.slice(start, p.pos)
		if err != nil {
			return mdwast.Node[mdwast.Expression]{}, err
		}

		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return mdwast.Node[mdwast.Expression]{}, p.newError(NumberOverflow, start,
					fmt.Sprintf("number %s does not fit in 64 bits", text), "64-bit integer", text)
			}
			return mdwast.Node[mdwast.Expression]{}, p.newError(UnexpectedToken, start,
				fmt.Sprintf("invalid number %s", text), "integer", text)
		}

		return mdwast.NewNode[mdwast.Expression](mdwast.NewSpan(start, p.pos),
			&mdwast.Number{Value: value}), nil
	})
}

// Identifier parses an ASCII letter followed by letters, digits or "_"
func (p *Parser) Identifier() (mdwast.Node[string], error) {
	return attempt(p, "identifier", func() (mdwast.Node[string], error) {
		start := p.pos
		c, err := p.cur("identifier")
		if err != nil {
			return mdwast.Node[string]{}, err
		}
		if !isLetter(c) {
			return mdwast.Node[string]{}, p.unexpected("identifier")
		}

		p.pos++
		for !p.AtEnd() && isIdentifierPart(p.source[p.pos]) {
			p.pos++
		}

		name, err := p.slice(start, p.pos)
		if err != nil {
			return mdwast.Node[string]{}, err
		}
		return mdwast.NewNode(mdwast.NewSpan(start, p.pos), name), nil
	})
}
