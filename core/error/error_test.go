// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity derivation
//              and JSON output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type positionError struct {
	pos int
}

func (p *positionError) Error() string { return "bad token" }

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("input exceeds maximum length: %d > %d", 12, 8).WithCode(CodeExprInputTooLong)

	if err.Error() != "input exceeds maximum length: 12 > 8" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != CodeExprInputTooLong {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeExprInputTooLong)
	}
	if frames := err.StackTrace(); len(frames) == 0 || !strings.Contains(frames[0].Function, "TestNewf") {
		t.Errorf("StackTrace() should start at the caller, got %v", frames)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("unexpected end of input").WithCode(CodeExprUnexpectedEOF),
			message:  "failed to parse expression",
			wantMsg:  "failed to parse expression: unexpected end of input",
			wantCode: CodeExprUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
		})
	}
}

func TestWrapKeepsCauseReachable(t *testing.T) {
	cause := &positionError{pos: 4}
	err := Wrap(cause, "failed to parse expression").WithCode(CodeExprSyntax)

	var target *positionError
	if !errors.As(err, &target) {
		t.Fatal("errors.As() could not find the wrapped cause")
	}
	if target.pos != 4 {
		t.Errorf("pos = %d, want 4", target.pos)
	}
	if err.RootCause() != cause {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), cause)
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeExprSyntax, SeverityLow},
		{CodeExprNumberOverflow, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestExplicitSeverityIsKept(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeExprSyntax)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestDetails(t *testing.T) {
	err := New("x").WithDetail("position", 3).WithDetails(map[string]interface{}{
		"line":   1,
		"column": 4,
	})

	details := err.Details()
	if len(details) != 3 {
		t.Fatalf("len(Details()) = %d, want 3", len(details))
	}

	details["position"] = 99
	if v, _ := err.Detail("position"); v != 3 {
		t.Errorf("Details() must return a copy, got position=%v", v)
	}

	if !strings.Contains(err.String(), "Details: {column=4, line=1, position=3}") {
		t.Errorf("String() = %q, want sorted details", err.String())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("overflow").WithCode(CodeExprNumberOverflow)
	outer := Wrap(inner, "failed to parse expression").WithCode(CodeExprSyntax)

	if !HasCode(outer, CodeExprNumberOverflow) {
		t.Error("HasCode() should find the inner code")
	}
	if !HasCode(outer, CodeExprSyntax) {
		t.Error("HasCode() should find the outer code")
	}
	if HasCode(errors.New("plain"), CodeExprSyntax) {
		t.Error("HasCode() on a plain error should be false")
	}
	if GetCode(outer) != CodeExprSyntax {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeExprSyntax)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Errorf("GetCode() on plain error = %v, want %v", GetCode(errors.New("plain")), CodeUnknown)
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on plain error should be medium")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "failed").
		WithCode(CodeExprSyntax).
		WithOperation("expr.Parse").
		WithDetail("position", 2)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", unmarshalErr)
	}

	if decoded["code"] != "EXPR_SYNTAX" {
		t.Errorf("code = %v, want EXPR_SYNTAX", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
	if decoded["operation"] != "expr.Parse" {
		t.Errorf("operation = %v, want expr.Parse", decoded["operation"])
	}
	if decoded["cause"] != "root" {
		t.Errorf("cause = %v, want root", decoded["cause"])
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeExprSyntax, "expression", 1},
		{CodeExprTrailingInput, "expression", 1},
		{CodeInvalidConfig, "configuration", 3},
		{CodeInvalidInput, "generic", 2},
		{CodeInternal, "generic", 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %s", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid() should be false for unknown codes")
	}
}
