// File: boundary.go
// Title: Byte Boundary
// Description: Parses raw input bytes into a rendered tree for callers that
//              exchange plain buffers instead of Go values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package expr

import (
	"unicode/utf8"

	mdwerror "github.com/msto63/mdwexpr/core/error"
	mdwast "github.com/msto63/mdwexpr/expr/ast"
)

// ParseBytes validates input as UTF-8, parses it as exactly one expression
// and returns the rendered tree
func (e *Engine) ParseBytes(input []byte, pretty bool) (string, error) {
	if !utf8.Valid(input) {
		err := mdwerror.New("input is not valid UTF-8").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("expr.ParseBytes").
			WithDetail("length", len(input))
		e.logger.LogError(err)
		return "", err
	}

	result, err := e.ParseAll(string(input))
	if err != nil {
		return "", err
	}
	return result.Render(mdwast.FormatOptions{Pretty: pretty}), nil
}

// ParseBytes parses input with a default engine
func ParseBytes(input []byte, pretty bool) (string, error) {
	engine, err := New(Options{})
	if err != nil {
		return "", err
	}
	return engine.ParseBytes(input, pretty)
}
