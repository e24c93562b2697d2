// File: expr.go
// Title: Expression Engine
// Description: Provides the Engine that parses expressions with input
//              limits, full-consumption checks, correlation-tagged logging
//              and coded errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package expr

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/mdwexpr/core/error"
	mdwlog "github.com/msto63/mdwexpr/core/log"
	mdwast "github.com/msto63/mdwexpr/expr/ast"
	mdwparser "github.com/msto63/mdwexpr/expr/parser"
)

// DefaultMaxInputLength bounds the source size when Options.MaxInputLength is zero
const DefaultMaxInputLength = 65536

// Engine parses expressions. It holds no per-parse state.
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger           *mdwlog.Logger
	MaxInputLength   int  // Maximum source length in bytes (default: DefaultMaxInputLength)
	MaxDepth         int  // Maximum expression nesting (default: parser.DefaultMaxDepth)
	RequireFullInput bool // Reject input left over after the expression
}

// Result is a successfully parsed expression
type Result struct {
	ID     string                         // Correlation ID of the parse
	Source string                         // Parsed text
	Tree   mdwast.Node[mdwast.Expression] // Root of the syntax tree
	End    int                            // Offset just past the expression
}

// Complete reports whether the expression consumed the whole source
func (r *Result) Complete() bool {
	return r.End >= len(r.Source)
}

// Remaining returns the source text after the expression
func (r *Result) Remaining() string {
	return r.Source[r.End:]
}

// Render formats the tree of the result
func (r *Result) Render(opts mdwast.FormatOptions) string {
	return mdwast.Format(r.Tree, opts)
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.Newf("max input length must not be negative: %d", opts.MaxInputLength).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("expr.New")
	}
	if opts.MaxDepth < 0 {
		return nil, mdwerror.Newf("max depth must not be negative: %d", opts.MaxDepth).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("expr.New")
	}

	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = mdwparser.DefaultMaxDepth
	}

	logger := opts.Logger.WithField("component", "expr-engine")
	logger.Debug("Expression engine initialized", mdwlog.Fields{
		"maxInputLength":   opts.MaxInputLength,
		"maxDepth":         opts.MaxDepth,
		"requireFullInput": opts.RequireFullInput,
	})

	return &Engine{logger: logger, options: opts}, nil
}

// Options returns the effective options of the engine
func (e *Engine) Options() Options {
	return e.options
}

// Parse parses one expression from source. Input after the expression is
// an error only when Options.RequireFullInput is set.
func (e *Engine) Parse(source string) (*Result, error) {
	return e.parse(source, e.options.RequireFullInput)
}

// ParseAll parses source and rejects any input left after the expression
func (e *Engine) ParseAll(source string) (*Result, error) {
	return e.parse(source, true)
}

// Validate checks that source is exactly one well-formed expression
func (e *Engine) Validate(source string) error {
	_, err := e.ParseAll(source)
	return err
}

func (e *Engine) parse(source string, full bool) (*Result, error) {
	id := uuid.New().String()
	logger := e.logger.WithCorrelationID(id).WithFields(mdwlog.Fields{
		"input_length": len(source),
		"full_input":   full,
	})

	if len(source) > e.options.MaxInputLength {
		err := mdwerror.Newf("input exceeds maximum length: %d > %d", len(source), e.options.MaxInputLength).
			WithCode(mdwerror.CodeExprInputTooLong).
			WithOperation("expr.Parse").
			WithDetail("length", len(source)).
			WithDetail("max_length", e.options.MaxInputLength)
		logger.LogError(err)
		return nil, err
	}

	timer := logger.StartTimer("parse")
	defer timer.Stop()

	logger.Debug("Starting expression parsing")

	p := mdwparser.NewWithOptions(source, mdwparser.Options{
		Logger:   logger,
		MaxDepth: e.options.MaxDepth,
	})

	tree, err := p.Expression()
	if err != nil {
		wrapped := wrapParseError(err)
		logger.LogError(wrapped)
		return nil, wrapped
	}

	result := &Result{ID: id, Source: source, Tree: tree, End: p.Pos()}

	if full && strings.TrimSpace(result.Remaining()) != "" {
		err := trailingInputError(source, result.End)
		logger.LogError(err)
		return nil, err
	}

	metrics := mdwast.Measure(tree)
	logger.Debug("Expression parsing completed", mdwlog.Fields{
		"nodes": metrics.Nodes,
		"depth": metrics.Depth,
		"end":   result.End,
	})

	return result, nil
}

// wrapParseError converts a parser error into a coded error carrying the
// failure position as details
func wrapParseError(err error) *mdwerror.Error {
	pe, ok := mdwparser.AsParseError(err)
	if !ok {
		return mdwerror.Wrap(err, "failed to parse expression").
			WithCode(mdwerror.CodeInternal).
			WithOperation("expr.Parse")
	}

	wrapped := mdwerror.Wrap(pe, "failed to parse expression").
		WithCode(codeForKind(pe.Kind)).
		WithOperation("expr.Parse").
		WithDetail("position", pe.Pos).
		WithDetail("line", pe.Line).
		WithDetail("column", pe.Column).
		WithDetail("kind", pe.Kind.String())
	if pe.Expected != "" {
		wrapped.WithDetail("expected", pe.Expected)
	}
	if pe.Found != "" {
		wrapped.WithDetail("found", pe.Found)
	}
	return wrapped
}

func codeForKind(kind mdwparser.ErrorKind) mdwerror.Code {
	switch kind {
	case mdwparser.UnexpectedEndOfInput:
		return mdwerror.CodeExprUnexpectedEOF
	case mdwparser.NumberOverflow:
		return mdwerror.CodeExprNumberOverflow
	case mdwparser.NestingTooDeep:
		return mdwerror.CodeExprNestingDepth
	case mdwparser.OutOfBoundsSlice:
		return mdwerror.CodeInternal
	default:
		return mdwerror.CodeExprSyntax
	}
}

func trailingInputError(source string, end int) *mdwerror.Error {
	offset := end + len(source[end:]) - len(strings.TrimLeft(source[end:], " \t\r\n"))
	line, column := mdwparser.Location(source, offset)
	r, _ := utf8.DecodeRuneInString(source[offset:])

	return mdwerror.Newf("unexpected trailing input at line %d, column %d (offset %d)", line, column, offset).
		WithCode(mdwerror.CodeExprTrailingInput).
		WithOperation("expr.Parse").
		WithDetail("position", offset).
		WithDetail("line", line).
		WithDetail("column", column).
		WithDetail("found", fmt.Sprintf("%q", r))
}

// Position extracts the failure offset, line and column from an error
// returned by the engine
func Position(err error) (pos, line, column int, ok bool) {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		p, okPos := mdwErr.Detail("position")
		l, okLine := mdwErr.Detail("line")
		c, okCol := mdwErr.Detail("column")
		if okPos && okLine && okCol {
			pos, _ = p.(int)
			line, _ = l.(int)
			column, _ = c.(int)
			return pos, line, column, true
		}
	}

	if pe, isParse := mdwparser.AsParseError(err); isParse {
		return pe.Pos, pe.Line, pe.Column, true
	}
	return 0, 0, 0, false
}
