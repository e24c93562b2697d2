// File: scanner.go
// Title: Scanning Primitives
// Description: Byte-level primitives over the parser's cursor: literal
//              matching, whitespace skipping, bounded slicing and the
//              save/restore combinator used for backtracking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"

	mdwlog "github.com/msto63/mdwexpr/core/log"
)

// startsWith reports whether the input at the cursor begins with literal
func (p *Parser) startsWith(literal string) bool {
	return strings.HasPrefix(p.source[p.pos:], literal)
}

// tag consumes literal. On mismatch the cursor is left untouched and the
// error reports the input of the literal's length found instead.
func (p *Parser) tag(literal string) (string, error) {
	if p.startsWith(literal) {
		p.pos += len(literal)
		return literal, nil
	}
	return "", p.unexpectedWidth(fmt.Sprintf("%q", literal), len(literal))
}

// multispace0 skips spaces, tabs, newlines and carriage returns
func (p *Parser) multispace0() {
	for p.pos < len(p.source) {
		switch p.source[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// cur returns the byte at the cursor without consuming it
func (p *Parser) cur(expected string) (byte, error) {
	if p.AtEnd() {
		return 0, p.unexpected(expected)
	}
	return p.source[p.pos], nil
}

// slice returns source[start:end], failing instead of panicking when the
// range leaves the input
func (p *Parser) slice(start, end int) (string, error) {
	if start < 0 || end > len(p.source) || start > end {
		return "", p.newError(OutOfBoundsSlice, p.pos,
			fmt.Sprintf("slice %d..%d is out of bounds for input of length %d", start, end, len(p.source)),
			"", "")
	}
	return p.source[start:end], nil
}

// attempt runs rule and restores the cursor if it fails. The error is
// passed through unchanged.
func attempt[T any](p *Parser, rule string, fn func() (T, error)) (T, error) {
	start := p.pos
	value, err := fn()
	if err != nil {
		p.rollback(rule, start, err)
	}
	return value, err
}

// rollback resets the cursor after a failed trial
func (p *Parser) rollback(rule string, to int, cause error) {
	if p.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		p.logger.Trace("Rolling back rule", mdwlog.Fields{
			"rule":  rule,
			"from":  p.pos,
			"to":    to,
			"cause": cause.Error(),
		})
	}
	p.pos = to
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentifierPart(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
