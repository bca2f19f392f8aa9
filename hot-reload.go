// hot-reload.go: dynamic predictor tuning with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotTuning is the set of predictor parameters that can change mid-run
// without rebuilding the Replacer. Geometry, policy and table floors are
// fixed at construction and are not hot-reloadable.
type HotTuning struct {
	// GateThreshold is the confidence gate for PolicyGated.
	GateThreshold int

	// Alpha is the leak factor applied to non-positive score sums.
	Alpha float64

	// ResizeCheckInterval is the resize controller's evaluation period.
	ResizeCheckInterval int
}

// HotConfig provides dynamic tuning reload capabilities using Argus.
// It watches a configuration file and installs updated parameters on the
// Replacer when changes are detected.
type HotConfig struct {
	replacer *Replacer
	watcher  *argus.Watcher
	mu       sync.RWMutex
	tuning   HotTuning
	logger   Logger

	// OnReload is called after tuning is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldTuning, newTuning HotTuning)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after tuning is successfully reloaded.
	OnReload func(oldTuning, newTuning HotTuning)

	// Logger for hot reload operations.
	// If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotConfig creates a hot-reloadable tuning watcher for a Replacer.
//
// Example configuration file (YAML):
//
//	predictor:
//	  gate_threshold: 10
//	  alpha: 0.01
//	  resize_check_interval: 8192
//
// Supported configuration keys:
//   - predictor.gate_threshold (int): confidence gate, >= 0
//   - predictor.alpha (float): leak factor, 0.0 < alpha < 1.0
//   - predictor.resize_check_interval (int): evaluation period, > 0
//
// Keys that are absent or out of range keep their current values.
func NewHotConfig(replacer *Replacer, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		replacer: replacer,
		tuning:   replacer.currentTuning(),
		logger:   opts.Logger,
		OnReload: opts.OnReload,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil // Already started
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetTuning returns the current tuning (thread-safe).
func (hc *HotConfig) GetTuning() HotTuning {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.tuning
}

// handleConfigChange is called by Argus when the configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldTuning := hc.tuning
	newTuning := hc.parseTuning(configData, oldTuning)
	hc.tuning = newTuning
	hc.mu.Unlock()

	hc.replacer.applyTuning(newTuning)
	hc.logger.Info("predictor tuning reloaded",
		"gate_threshold", newTuning.GateThreshold,
		"alpha", newTuning.Alpha,
		"resize_check_interval", newTuning.ResizeCheckInterval,
	)

	if hc.OnReload != nil {
		hc.OnReload(oldTuning, newTuning)
	}
}

// parseNonNegativeInt extracts a non-negative integer from interface{} value.
// Supports both int and float64 types (YAML/JSON may vary).
func parseNonNegativeInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v >= 0 {
			return v, true
		}
	case float64:
		if v >= 0 {
			return int(v), true
		}
	}
	return 0, false
}

// parsePositiveInt extracts a positive integer from interface{} value.
func parsePositiveInt(value interface{}) (int, bool) {
	if v, ok := parseNonNegativeInt(value); ok && v > 0 {
		return v, true
	}
	return 0, false
}

// parseFloatInRange extracts a float64 within the open range (min, max).
func parseFloatInRange(value interface{}, min, max float64) (float64, bool) {
	if v, ok := value.(float64); ok {
		if v > min && v < max {
			return v, true
		}
	}
	return 0, false
}

// parseTuning extracts predictor tuning from Argus config data, keeping
// current values for keys that are absent or out of range.
func (hc *HotConfig) parseTuning(data map[string]interface{}, current HotTuning) HotTuning {
	tuning := current

	// Extract predictor section - Argus might nest it or provide it directly
	section, ok := data["predictor"].(map[string]interface{})
	if !ok {
		if _, hasGate := data["gate_threshold"]; hasGate {
			section = data
		} else {
			return tuning
		}
	}

	if gate, ok := parseNonNegativeInt(section["gate_threshold"]); ok {
		tuning.GateThreshold = gate
	}

	if alpha, ok := parseFloatInRange(section["alpha"], 0, 1); ok {
		tuning.Alpha = alpha
	}

	if interval, ok := parsePositiveInt(section["resize_check_interval"]); ok {
		tuning.ResizeCheckInterval = interval
	}

	return tuning
}
