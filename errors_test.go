// errors_test.go: unit tests for coded error constructors and helpers
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	goerrors "errors"
	"testing"

	"github.com/agilira/go-errors"
)

func TestErrorConstructors_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
	}{
		{"geometry", NewErrInvalidGeometry(0, 8), ErrCodeInvalidGeometry},
		{"table size", NewErrInvalidTableSize(-1), ErrCodeInvalidTableSize},
		{"policy", NewErrInvalidPolicy(99), ErrCodeInvalidPolicy},
		{"gate", NewErrInvalidGateThreshold(-1), ErrCodeInvalidGateThreshold},
		{"alpha", NewErrInvalidAlpha(2.0), ErrCodeInvalidAlpha},
		{"interval", NewErrInvalidResizeInterval(-1), ErrCodeInvalidResizeInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("constructor returned nil")
			}
			if GetErrorCode(tt.err) != tt.code {
				t.Errorf("code = %s, want %s", GetErrorCode(tt.err), tt.code)
			}
			if !IsConfigError(tt.err) {
				t.Errorf("IsConfigError(%s) = false, want true", tt.code)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestErrorContext(t *testing.T) {
	err := NewErrInvalidGeometry(0, 16)

	ctx := GetErrorContext(err)
	if ctx == nil {
		t.Fatal("no context attached")
	}
	if ctx["provided_sets"] != 0 {
		t.Errorf("provided_sets = %v, want 0", ctx["provided_sets"])
	}
	if ctx["provided_ways"] != 16 {
		t.Errorf("provided_ways = %v, want 16", ctx["provided_ways"])
	}
}

func TestErrorHelpers_NilAndForeignErrors(t *testing.T) {
	if IsConfigError(nil) {
		t.Error("IsConfigError(nil) = true")
	}
	if GetErrorCode(nil) != "" {
		t.Error("GetErrorCode(nil) non-empty")
	}
	if GetErrorContext(nil) != nil {
		t.Error("GetErrorContext(nil) non-nil")
	}

	plain := goerrors.New("plain error")
	if IsConfigError(plain) {
		t.Error("IsConfigError(plain) = true")
	}
	if GetErrorCode(plain) != "" {
		t.Error("GetErrorCode(plain) non-empty")
	}
}
