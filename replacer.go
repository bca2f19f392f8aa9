// replacer.go: host-facing replacement predictor
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
)

// Candidate is the host-visible state of one way during victim selection.
// A candidate whose Valid bit is clear is evicted before any scoring.
type Candidate struct {
	Valid bool
	Tag   uint64
}

// Replacer is a learned replacement predictor for one cache instance.
// It owns all slot metadata and model state; nothing is shared between
// instances. All methods except the tuning setters used by HotConfig must
// be called from the host's single simulation thread.
type Replacer struct {
	numSets int
	numWays int

	// meta holds exactly one record per (set, way), indexed
	// set*numWays+way, for the lifetime of the instance.
	meta []SlotMetadata

	pred   *predictor
	policy Policy

	// live-tunable parameters, accessed atomically
	gate      int32
	alphaBits uint64

	logger       Logger
	timeProvider TimeProvider
	metrics      MetricsCollector

	// counters; host thread only
	predictions         uint64
	fallbacks           uint64
	trainings           uint64
	suppressedWriteHits uint64
	tableGrows          uint64
	tableShrinks        uint64
}

// New creates a Replacer for a cache with the given geometry. It must be
// called once per cache instance before any access; all per-instance state
// is allocated and cleared here.
func New(numSets, numWays int, config Config) (*Replacer, error) {
	if numSets <= 0 || numWays <= 0 {
		return nil, NewErrInvalidGeometry(numSets, numWays)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if config.RandomWeightInit {
		rng = rand.New(rand.NewSource(config.Seed))
	}

	r := &Replacer{
		numSets:      numSets,
		numWays:      numWays,
		meta:         make([]SlotMetadata, numSets*numWays),
		pred:         newPredictor(config.TableSize, config.ResizeCheckInterval, rng),
		policy:       config.Policy,
		logger:       config.Logger,
		timeProvider: config.TimeProvider,
		metrics:      config.MetricsCollector,
	}
	atomic.StoreInt32(&r.gate, int32(config.GateThreshold))
	atomic.StoreUint64(&r.alphaBits, math.Float64bits(config.Alpha))

	r.logger.Debug("replacer initialized",
		"sets", numSets,
		"ways", numWays,
		"policy", config.Policy.String(),
		"table_size", config.TableSize,
		"gate_threshold", config.GateThreshold,
		"alpha", config.Alpha,
		"random_weight_init", config.RandomWeightInit,
	)
	return r, nil
}

// FindVictim returns the way to evict from the given set. No model state
// changes here: selection and training are strictly separated, so the host
// may abort or redo the eviction without any weight having moved.
//
// The candidate list must be exactly numWays long and setIndex must be in
// range; a violation is a programming-contract breach and panics.
func (r *Replacer) FindVictim(setIndex int, candidates []Candidate, ctx AccessContext) int {
	r.checkSet(setIndex)
	if len(candidates) != r.numWays {
		panic(fmt.Sprintf("xanthos: candidate list has %d entries, want %d", len(candidates), r.numWays))
	}
	start := r.timeProvider.Now()

	// Free slots never cost a prediction.
	for way, c := range candidates {
		if !c.Valid {
			r.predictions++
			r.metrics.RecordPrediction(r.timeProvider.Now()-start, false)
			return way
		}
	}

	alpha := r.alpha()
	base := setIndex * r.numWays

	bestWay := 0
	bestScore := int32(math.MaxInt32)
	oldestWay := 0
	oldestCycle := uint64(math.MaxUint64)

	for way := 0; way < r.numWays; way++ {
		m := &r.meta[base+way]
		fs := extractFeatures(m, setIndex, ctx)
		if s := r.pred.score(fs, ctx.PC, alpha); s < bestScore {
			bestScore = s
			bestWay = way
		}
		if m.LastAccessCycle < oldestCycle {
			oldestCycle = m.LastAccessCycle
			oldestWay = way
		}
	}

	victim := bestWay
	fallback := false
	if r.policy == PolicyGated && bestScore >= r.gateThreshold() {
		// Model unconfident: no candidate cleared the gate, let the
		// recency rule decide.
		victim = oldestWay
		fallback = true
		r.fallbacks++
	}
	if victim < 0 || victim >= r.numWays {
		panic(fmt.Sprintf("xanthos: victim way %d out of range [0, %d)", victim, r.numWays))
	}

	r.predictions++
	r.metrics.RecordPrediction(r.timeProvider.Now()-start, fallback)
	return victim
}

// UpdateState lets the predictor learn from a resolved access (hit or fill).
// The slot's metadata is rewritten unconditionally; weight training is
// derived from hit, except for write hits, whose recency is too weak a reuse
// signal to train on. Every call finishes by running the resize controller.
func (r *Replacer) UpdateState(setIndex, wayIndex int, ctx AccessContext, hit bool) {
	r.checkSet(setIndex)
	r.checkWay(wayIndex)
	start := r.timeProvider.Now()

	m := &r.meta[setIndex*r.numWays+wayIndex]
	if hit {
		m.RefCount++
	} else {
		// Fill: the slot is reused for a new line.
		m.CreationCycle = ctx.Cycle
		m.RefCount = 1
		m.Tag = ctx.Address >> offsetBits
	}
	m.LastAccessCycle = ctx.Cycle
	m.LastPC = ctx.PC
	m.Write = ctx.Type == AccessWrite
	m.Offset = ctx.Address & offsetMask

	if hit && ctx.Type == AccessWrite {
		r.suppressedWriteHits++
	} else {
		fs := extractFeatures(m, setIndex, ctx)
		r.pred.trainOne(fs, ctx.PC, hit)
		r.trainings++
		r.metrics.RecordTraining(r.timeProvider.Now() - start)
	}

	for _, ev := range r.pred.maybeResize() {
		if ev.grew {
			r.tableGrows++
		} else {
			r.tableShrinks++
		}
		r.metrics.RecordResize(ev.feature.String(), ev.grew)
		r.logger.Debug("weight table resized",
			"feature", ev.feature.String(),
			"capacity", ev.capacity,
			"grew", ev.grew,
		)
	}
}

// Slot returns a copy of the metadata record for one (set, way). Intended
// for host-side diagnostics.
func (r *Replacer) Slot(setIndex, wayIndex int) SlotMetadata {
	r.checkSet(setIndex)
	r.checkWay(wayIndex)
	return r.meta[setIndex*r.numWays+wayIndex]
}

// Stats returns predictor activity counters.
func (r *Replacer) Stats() ReplacerStats {
	caps := make(map[string]int, int(numFeatures))
	for f := Feature(0); f < numFeatures; f++ {
		caps[f.String()] = r.pred.tables[f].capacity()
	}
	return ReplacerStats{
		Predictions:         r.predictions,
		Fallbacks:           r.fallbacks,
		Trainings:           r.trainings,
		SuppressedWriteHits: r.suppressedWriteHits,
		TableGrows:          r.tableGrows,
		TableShrinks:        r.tableShrinks,
		TableCapacities:     caps,
	}
}

// Finalize emits a diagnostics summary at run end. The model is not
// persisted; a reinitialized cache starts from scratch.
func (r *Replacer) Finalize() error {
	s := r.Stats()
	r.logger.Info("replacer finalized",
		"predictions", s.Predictions,
		"fallbacks", s.Fallbacks,
		"fallback_ratio", s.FallbackRatio(),
		"trainings", s.Trainings,
		"suppressed_write_hits", s.SuppressedWriteHits,
		"table_grows", s.TableGrows,
		"table_shrinks", s.TableShrinks,
	)
	return nil
}

// gateThreshold returns the live confidence gate.
func (r *Replacer) gateThreshold() int32 {
	return atomic.LoadInt32(&r.gate)
}

// alpha returns the live leak factor.
func (r *Replacer) alpha() float64 {
	return math.Float64frombits(atomic.LoadUint64(&r.alphaBits))
}

// applyTuning installs live-tunable parameters; used by HotConfig.
func (r *Replacer) applyTuning(t HotTuning) {
	atomic.StoreInt32(&r.gate, int32(t.GateThreshold))
	atomic.StoreUint64(&r.alphaBits, math.Float64bits(t.Alpha))
	atomic.StoreUint64(&r.pred.checkInterval, uint64(t.ResizeCheckInterval))
}

// currentTuning snapshots the live-tunable parameters.
func (r *Replacer) currentTuning() HotTuning {
	return HotTuning{
		GateThreshold:       int(r.gateThreshold()),
		Alpha:               r.alpha(),
		ResizeCheckInterval: int(atomic.LoadUint64(&r.pred.checkInterval)),
	}
}

func (r *Replacer) checkSet(setIndex int) {
	if setIndex < 0 || setIndex >= r.numSets {
		panic(fmt.Sprintf("xanthos: set index %d out of range [0, %d)", setIndex, r.numSets))
	}
}

func (r *Replacer) checkWay(wayIndex int) {
	if wayIndex < 0 || wayIndex >= r.numWays {
		panic(fmt.Sprintf("xanthos: way index %d out of range [0, %d)", wayIndex, r.numWays))
	}
}
