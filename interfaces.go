// interfaces.go: public interfaces for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current wall time with caching for performance.
// It is used only to measure operation latencies for metrics; the model
// itself runs on the host's logical cycle counter from AccessContext.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector defines an interface for collecting predictor metrics.
// Implementations can send metrics to Prometheus, DataDog, StatsD, or other
// monitoring systems. All methods must be fast, allocation-free and safe to
// call from the host's simulation thread.
type MetricsCollector interface {
	// RecordPrediction records one FindVictim call with its latency.
	// fallback reports whether the recency fallback decided instead of
	// the model (PolicyGated only).
	RecordPrediction(latencyNs int64, fallback bool)

	// RecordTraining records one weight-training event with its latency.
	RecordTraining(latencyNs int64)

	// RecordResize records a weight table resize.
	// feature names the table; grew reports growth vs. shrink.
	RecordResize(feature string, grew bool)
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
type NoOpMetricsCollector struct{}

// RecordPrediction does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordPrediction(latencyNs int64, fallback bool) {}

// RecordTraining does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordTraining(latencyNs int64) {}

// RecordResize does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordResize(feature string, grew bool) {}

// ReplacerStats provides counters about predictor activity.
type ReplacerStats struct {
	// Predictions is the number of FindVictim calls.
	Predictions uint64

	// Fallbacks is the number of predictions decided by the recency
	// fallback instead of the model (PolicyGated only).
	Fallbacks uint64

	// Trainings is the number of weight-training events.
	Trainings uint64

	// SuppressedWriteHits is the number of write hits excluded from
	// training.
	SuppressedWriteHits uint64

	// TableGrows and TableShrinks count weight table resizes.
	TableGrows   uint64
	TableShrinks uint64

	// TableCapacities maps feature name to current table capacity.
	TableCapacities map[string]int
}

// FallbackRatio returns the share of predictions decided by the recency
// fallback, as a percentage (0-100). Returns 0.0 before any prediction.
func (s ReplacerStats) FallbackRatio() float64 {
	if s.Predictions == 0 {
		return 0
	}
	return float64(s.Fallbacks) / float64(s.Predictions) * 100
}
