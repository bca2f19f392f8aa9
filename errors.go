// errors.go: structured error handling for xanthos configuration
//
// This file provides coded error types using the go-errors library.
// Errors only arise at construction and hot-reload time: the prediction
// and training hot paths have no recoverable-error model, and contract
// breaches there abort via panic instead of returning errors.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"
	"strconv"

	"github.com/agilira/go-errors"
)

// Error codes for Xanthos configuration
const (
	ErrCodeInvalidGeometry       errors.ErrorCode = "XANTHOS_INVALID_GEOMETRY"
	ErrCodeInvalidTableSize      errors.ErrorCode = "XANTHOS_INVALID_TABLE_SIZE"
	ErrCodeInvalidPolicy         errors.ErrorCode = "XANTHOS_INVALID_POLICY"
	ErrCodeInvalidGateThreshold  errors.ErrorCode = "XANTHOS_INVALID_GATE_THRESHOLD"
	ErrCodeInvalidAlpha          errors.ErrorCode = "XANTHOS_INVALID_ALPHA"
	ErrCodeInvalidResizeInterval errors.ErrorCode = "XANTHOS_INVALID_RESIZE_INTERVAL"
)

// Common error messages
const (
	msgInvalidGeometry       = "invalid cache geometry: sets and ways must be greater than 0"
	msgInvalidTableSize      = "invalid table size: must be greater than 0"
	msgInvalidPolicy         = "invalid policy: must be PolicyGated or PolicyPureMin"
	msgInvalidGateThreshold  = "invalid gate threshold: must be non-negative"
	msgInvalidAlpha          = "invalid alpha: must be in (0, 1)"
	msgInvalidResizeInterval = "invalid resize check interval: must be greater than 0"
)

// NewErrInvalidGeometry creates an error for invalid cache geometry
func NewErrInvalidGeometry(sets, ways int) error {
	return errors.NewWithContext(ErrCodeInvalidGeometry, msgInvalidGeometry, map[string]interface{}{
		"provided_sets": sets,
		"provided_ways": ways,
	})
}

// NewErrInvalidTableSize creates an error for an invalid weight table size
func NewErrInvalidTableSize(size int) error {
	return errors.NewWithContext(ErrCodeInvalidTableSize, msgInvalidTableSize, map[string]interface{}{
		"provided_size":    size,
		"minimum_required": 1,
	})
}

// NewErrInvalidPolicy creates an error for an unknown eviction policy
func NewErrInvalidPolicy(policy int) error {
	return errors.NewWithField(ErrCodeInvalidPolicy, msgInvalidPolicy, "provided_policy", strconv.Itoa(policy))
}

// NewErrInvalidGateThreshold creates an error for a negative gate threshold
func NewErrInvalidGateThreshold(gate int) error {
	return errors.NewWithField(ErrCodeInvalidGateThreshold, msgInvalidGateThreshold, "provided_gate", strconv.Itoa(gate))
}

// NewErrInvalidAlpha creates an error for an out-of-range leak factor
func NewErrInvalidAlpha(alpha float64) error {
	return errors.NewWithContext(ErrCodeInvalidAlpha, msgInvalidAlpha, map[string]interface{}{
		"provided_alpha": alpha,
		"valid_range":    "0.0 < alpha < 1.0",
	})
}

// NewErrInvalidResizeInterval creates an error for an invalid check interval
func NewErrInvalidResizeInterval(interval int) error {
	return errors.NewWithField(ErrCodeInvalidResizeInterval, msgInvalidResizeInterval, "provided_interval", strconv.Itoa(interval))
}

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidGeometry || code == ErrCodeInvalidTableSize ||
			code == ErrCodeInvalidPolicy || code == ErrCodeInvalidGateThreshold ||
			code == ErrCodeInvalidAlpha || code == ErrCodeInvalidResizeInterval
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var xerr *errors.Error
	if goerrors.As(err, &xerr) {
		return xerr.Context
	}
	return nil
}
