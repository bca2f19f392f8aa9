// config.go: configuration for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"github.com/agilira/go-timecache"
)

// Policy selects the eviction rule applied by FindVictim.
// The policy is fixed at construction and never changes mid-run.
type Policy int

const (
	// PolicyGated trusts the model's lowest-scoring candidate only when
	// that score falls below the confidence gate; otherwise the oldest
	// candidate by last-access cycle is evicted instead.
	PolicyGated Policy = iota

	// PolicyPureMin always evicts the lowest-scoring candidate, ties
	// broken by lowest way index.
	PolicyPureMin
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyGated:
		return "gated"
	case PolicyPureMin:
		return "pure-min"
	default:
		return "unknown"
	}
}

// Config holds tuning parameters for the replacement predictor.
// Cache geometry (sets, ways) is passed to New directly.
type Config struct {
	// TableSize is the initial capacity of each per-feature weight
	// table, and the floor below which shrinking never goes.
	// Must be > 0. Default: DefaultTableSize.
	TableSize int

	// Policy is the eviction rule. Default: PolicyGated.
	Policy Policy

	// GateThreshold is the confidence gate for PolicyGated.
	// Ignored by PolicyPureMin. Default: DefaultGateThreshold.
	GateThreshold int

	// Alpha is the leak factor applied to non-positive score sums.
	// Must be in (0, 1). Default: DefaultAlpha.
	Alpha float64

	// ResizeCheckInterval is how many update calls pass between two
	// evaluations of the table resize controller.
	// Must be > 0. Default: DefaultResizeCheckInterval.
	ResizeCheckInterval int

	// RandomWeightInit initializes newly created table slots to a small
	// random weight in [-2, 2] instead of zero. The random stream is
	// seeded by Seed, so one run is fully reproducible.
	RandomWeightInit bool

	// Seed seeds the weight initialization stream when RandomWeightInit
	// is set. Ignored otherwise.
	Seed int64

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides wall time for latency metrics.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics.
	// If nil, NoOpMetricsCollector is used (zero overhead).
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies defaults for unset
// fields. Out-of-range values that cannot be defaulted (a set but invalid
// Alpha, an unknown Policy, a negative GateThreshold) are reported as coded
// errors.
//
// This method is automatically called by New, so you typically don't need
// to call it manually.
func (c *Config) Validate() error {
	if c.TableSize < 0 {
		return NewErrInvalidTableSize(c.TableSize)
	}
	if c.TableSize == 0 {
		c.TableSize = DefaultTableSize
	}

	if c.Policy != PolicyGated && c.Policy != PolicyPureMin {
		return NewErrInvalidPolicy(int(c.Policy))
	}

	if c.GateThreshold < 0 {
		return NewErrInvalidGateThreshold(c.GateThreshold)
	}
	if c.GateThreshold == 0 {
		c.GateThreshold = DefaultGateThreshold
	}

	if c.Alpha < 0 || c.Alpha >= 1 {
		return NewErrInvalidAlpha(c.Alpha)
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}

	if c.ResizeCheckInterval < 0 {
		return NewErrInvalidResizeInterval(c.ResizeCheckInterval)
	}
	if c.ResizeCheckInterval == 0 {
		c.ResizeCheckInterval = DefaultResizeCheckInterval
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TableSize:           DefaultTableSize,
		Policy:              PolicyGated,
		GateThreshold:       DefaultGateThreshold,
		Alpha:               DefaultAlpha,
		ResizeCheckInterval: DefaultResizeCheckInterval,
		Logger:              NoOpLogger{},
		TimeProvider:        &systemTimeProvider{},
		MetricsCollector:    NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides much faster time access compared to time.Now() with zero
// allocations, which matters when latency metrics wrap every simulated access.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
