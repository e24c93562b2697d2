// File: doc.go
// Title: Structured Logging Package Documentation
// Description: Documents the leveled, field-based logger used by the
//              expression engine and the mdwexpr command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial logging package

/*
Package log provides structured, leveled logging with key-value fields.

Loggers are immutable: every With* call returns a derived logger, so a
component can attach its own context without affecting the caller.

	logger := mdwlog.New().WithLevel(mdwlog.LevelDebug).WithFormat(mdwlog.FormatText)
	logger = logger.WithField("component", "expr-engine")
	logger.Debug("Starting expression parsing", mdwlog.Fields{"length": 9})

Supported output formats are JSON (default), text and console (colored text).

Timers measure an operation and log its duration when stopped:

	timer := logger.StartTimer("parse")
	defer timer.Stop()
*/
package log
