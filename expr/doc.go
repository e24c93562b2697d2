// File: doc.go
// Title: Expression Engine Package Documentation
// Description: Documents the high-level entry point for parsing expressions
//              with input limits, logging and coded errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine package

/*
Package expr is the high-level interface to the expression parser.

An Engine applies input limits, creates a fresh parser per call, tags the log
lines of each parse with a correlation ID and converts parser failures into
coded errors from the core error package.

	engine, err := expr.New(expr.Options{RequireFullInput: true})
	if err != nil {
		return err
	}
	result, err := engine.Parse("price * (1 + rate) >= limit")
	if err != nil {
		// mdwerror.GetCode(err) is one of the EXPR_* codes
		return err
	}
	fmt.Println(mdwast.Pretty(result.Tree))

An Engine is safe for concurrent use.
*/
package expr
