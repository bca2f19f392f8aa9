// Package xanthos provides a learned cache-line replacement predictor
// built on an online perceptron.
//
// # Overview
//
// Xanthos replaces a fixed replacement policy (LRU, PseudoLRU) with a model
// trained incrementally from observed hits and fills. At eviction time the
// host cache hands Xanthos the candidate ways of one set; the predictor
// scores each candidate from hashed features of the access (last instruction
// pointer, set index, read/write type, recency, age, block offset) and
// returns the way least likely to be reused. After every resolved access the
// host reports the outcome and the model adjusts its weights.
//
// The predictor is a pure in-process component: no cache storage, no
// coherence, no timing simulation. It owns only the per-slot metadata it
// learns from and the per-feature weight tables, and it interacts with the
// host through four calls: New, FindVictim, UpdateState, Finalize.
//
// # Quick Start
//
//	import "github.com/agilira/xanthos"
//
//	func main() {
//	    r, err := xanthos.New(2048, 16, xanthos.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // On eviction: pick a victim way. No model state changes here,
//	    // so the host may abort or redo the eviction freely.
//	    way := r.FindVictim(set, candidates, ctx)
//
//	    // On every resolved access (hit or fill): learn.
//	    r.UpdateState(set, way, ctx, hit)
//
//	    // At run end: emit diagnostics.
//	    _ = r.Finalize()
//	}
//
// ctx is an AccessContext carrying the instruction pointer, memory address,
// access type and the host's logical cycle counter.
//
// # Model
//
// One saturating weight table exists per feature. A table slot is selected by
// hashing the feature value together with the access's instruction pointer
// and reducing modulo the table capacity; collisions are an accepted
// memory/accuracy trade-off. Weights saturate at [MinWeight, MaxWeight] and
// never wrap. A candidate's score is the sum of its feature weights passed
// through a leaky rectification: positive sums pass unchanged, non-positive
// sums are scaled by a small alpha so that confident-keep outliers stay
// separated without dominating the ranking.
//
// Training is hit-derived: a hit drives the slot's feature weights toward
// MinWeight (keep), a fill drives them toward MaxWeight (evict). Write hits
// update slot metadata but are excluded from training; write-hit recency is
// a weak reuse signal.
//
// Each table is resized by an amortized controller: heavily trained features
// get larger tables (less aliasing), sparsely trained ones shrink back toward
// the configured floor.
//
// # Eviction Policies
//
// Two policies are available, fixed at construction:
//
//   - PolicyGated (default): the lowest-scoring candidate is evicted only if
//     its score clears the confidence gate; otherwise the oldest candidate by
//     last-access cycle is chosen instead.
//   - PolicyPureMin: the lowest-scoring candidate is always evicted, ties
//     broken by lowest way index.
//
// # Concurrency
//
// A Replacer is single-threaded by contract: the host invokes FindVictim and
// UpdateState as direct calls on its own thread, one (set, way) at a time.
// Each cache instance owns an independent Replacer; nothing is shared. The
// only cross-goroutine surface is live tuning via HotConfig, which touches a
// small set of atomically updated parameters.
//
// # Observability
//
// Structured logging (Logger), operation metrics (MetricsCollector) and
// counters (Stats) follow the same interfaces and defaults as the other
// libraries in this series; all observers default to no-ops.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos
