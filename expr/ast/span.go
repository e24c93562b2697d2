// File: span.go
// Title: Source Spans and Positioned Nodes
// Description: Defines the half-open byte range attached to every node and
//              the generic Node wrapper pairing a payload with its span.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import "fmt"

// Span is a half-open byte range [Start, End) into the source text
type Span struct {
	Start int // First byte of the range (0-based)
	End   int // One past the last byte of the range
}

// NewSpan creates a span. A reversed pair collapses to an empty span at start.
func NewSpan(start, end int) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether other lies within s (equal spans contain each other)
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Cover returns the smallest span enclosing both s and other
func (s Span) Cover(other Span) Span {
	return NewSpan(min(s.Start, other.Start), max(s.End, other.End))
}

// Text returns the part of source covered by the span, clamped to its bounds
func (s Span) Text(source string) string {
	start := min(max(s.Start, 0), len(source))
	end := min(max(s.End, start), len(source))
	return source[start:end]
}

// String returns the span as "start..end"
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Node pairs a syntactic payload with the span it was parsed from
type Node[T any] struct {
	Value T
	Span  Span
}

// NewNode creates a positioned node
func NewNode[T any](span Span, value T) Node[T] {
	return Node[T]{Value: value, Span: span}
}

// Equal compares the payloads of two nodes, ignoring their spans
func (n Node[T]) Equal(other Node[T]) bool {
	return payloadEqual(any(n.Value), any(other.Value))
}
