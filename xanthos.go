// xanthos.go: version and tuning defaults
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

const (
	// Version of the Xanthos replacement predictor library
	Version = "v0.1.0-dev"

	// DefaultTableSize is the default (and minimum) capacity of each
	// per-feature weight table. Tables grow and shrink at runtime but
	// never drop below their initial capacity.
	DefaultTableSize = 256

	// DefaultGateThreshold is the confidence gate for PolicyGated: the
	// lowest candidate score must fall below this value for the model's
	// choice to be trusted, otherwise the recency fallback decides.
	DefaultGateThreshold = 10

	// DefaultAlpha is the leak factor applied to non-positive score sums.
	DefaultAlpha = 0.01

	// DefaultResizeCheckInterval is how many update calls pass between
	// two evaluations of the table resize controller.
	DefaultResizeCheckInterval = 8192
)
