// File: errors.go
// Title: Parse Errors
// Description: Defines the positional error returned by every failing
//              grammar rule together with its error kinds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	// UnexpectedToken means the input at the position matches no grammar alternative
	UnexpectedToken ErrorKind = iota

	// UnexpectedEndOfInput means the input ended while more was required
	UnexpectedEndOfInput

	// OutOfBoundsSlice means a byte range beyond the input was requested
	OutOfBoundsSlice

	// NumberOverflow means a digit sequence does not fit in 64 bits
	NumberOverflow

	// NestingTooDeep means the expression nests deeper than Options.MaxDepth
	NestingTooDeep
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case OutOfBoundsSlice:
		return "OutOfBoundsSlice"
	case NumberOverflow:
		return "NumberOverflow"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind     ErrorKind
	Pos      int    // Byte offset of the failure (0-based)
	Line     int    // Line number (1-based)
	Column   int    // Column in characters (1-based)
	Message  string // Human-readable description
	Expected string // What the grammar expected, if known
	Found    string // What was found instead, if known
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d (offset %d): %s",
		pe.Line, pe.Column, pe.Pos, pe.Message)
}

// AsParseError extracts a *ParseError from an error chain
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsKind reports whether err carries a *ParseError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	pe, ok := AsParseError(err)
	return ok && pe.Kind == kind
}

// Location converts a byte offset into a 1-based line and character column
func Location(source string, pos int) (line, column int) {
	pos = min(max(pos, 0), len(source))
	before := source[:pos]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	column = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, column
}

// newError builds an error at pos for the parser's source
func (p *Parser) newError(kind ErrorKind, pos int, message, expected, found string) *ParseError {
	line, column := Location(p.source, pos)
	return &ParseError{
		Kind:     kind,
		Pos:      pos,
		Line:     line,
		Column:   column,
		Message:  message,
		Expected: expected,
		Found:    found,
	}
}

// unexpected reports what was found at the cursor instead of expected.
// At the end of the input the error is UnexpectedEndOfInput.
func (p *Parser) unexpected(expected string) *ParseError {
	return p.unexpectedWidth(expected, 0)
}

// unexpectedWidth is unexpected for a literal of width bytes: the found text
// covers as much input as the literal would have, and at least one character
func (p *Parser) unexpectedWidth(expected string, width int) *ParseError {
	found := p.describeCurrent(width)
	kind := UnexpectedToken
	if p.AtEnd() {
		kind = UnexpectedEndOfInput
	}
	return p.newError(kind, p.pos, fmt.Sprintf("expected %s but found %s", expected, found), expected, found)
}

// describeCurrent quotes the input at the cursor, or returns "end of input".
// A single character is quoted as a rune, longer text as a string.
func (p *Parser) describeCurrent(width int) string {
	if p.AtEnd() {
		return "end of input"
	}
	rest := p.source[p.pos:]
	r, size := utf8.DecodeRuneInString(rest)
	end := min(max(width, size), len(rest))
	for end < len(rest) && !utf8.RuneStart(rest[end]) {
		end++
	}
	if end == size {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("%q", rest[:end])
}
