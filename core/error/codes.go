// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              expression engine, its configuration layer and the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set for expression parsing

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Expression parsing
	CodeExprSyntax         Code = "EXPR_SYNTAX"
	CodeExprUnexpectedEOF  Code = "EXPR_UNEXPECTED_EOF"
	CodeExprNumberOverflow Code = "EXPR_NUMBER_OVERFLOW"
	CodeExprNestingDepth   Code = "EXPR_NESTING_DEPTH"
	CodeExprTrailingInput  Code = "EXPR_TRAILING_INPUT"
	CodeExprInputTooLong   Code = "EXPR_INPUT_TOO_LONG"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeExprSyntax, CodeExprUnexpectedEOF, CodeExprNumberOverflow,
		CodeExprNestingDepth, CodeExprTrailingInput, CodeExprInputTooLong,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeExprSyntax, CodeExprUnexpectedEOF, CodeExprNumberOverflow,
		CodeExprNestingDepth, CodeExprTrailingInput, CodeExprInputTooLong:
		return "expression"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "expression":
		return 1
	case "configuration":
		return 3
	default:
		if c == CodeInvalidInput || c == CodeNotFound {
			return 2
		}
		return 4
	}
}
