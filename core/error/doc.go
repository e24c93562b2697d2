// File: doc.go
// Title: Core Error Package Documentation
// Description: Documents the structured error type used across mdwexpr.
//              Errors carry a code, a severity, free-form details and an
//              optional cause so that callers can classify parse failures
//              without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error package for the expression parser

/*
Package error provides structured errors with codes, severities and details.

Basic usage:

	err := mdwerror.New("unexpected trailing input").
		WithCode(mdwerror.CodeExprTrailingInput).
		WithOperation("expr.ParseAll").
		WithDetail("position", 7)

Wrapping keeps the original error reachable through errors.As / errors.Is:

	return mdwerror.Wrap(parseErr, "failed to parse expression").
		WithCode(mdwerror.CodeExprSyntax)

The severity is derived from the code unless it was set explicitly, which
lets the logger pick an appropriate level in LogError.
*/
package error
