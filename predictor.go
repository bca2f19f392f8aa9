// predictor.go: perceptron scoring, training and table resizing
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"math/rand"
	"sync/atomic"
)

// predictor owns one weight table and one usage counter per feature.
// It is the aggregate model state of a single Replacer instance and is
// rebuilt from scratch on reinitialization; nothing persists across runs.
type predictor struct {
	tables [numFeatures]*weightTable

	// usage counts training events per feature since the last resize
	// evaluation.
	usage [numFeatures]uint64

	// sinceCheck counts maybeResize calls since the last evaluation.
	sinceCheck uint64

	// checkInterval is read atomically; HotConfig may retune it from
	// another goroutine.
	checkInterval uint64
}

func newPredictor(tableSize, checkInterval int, rng *rand.Rand) *predictor {
	p := &predictor{}
	atomic.StoreUint64(&p.checkInterval, uint64(checkInterval))
	for f := range p.tables {
		p.tables[f] = newWeightTable(tableSize, rng)
	}
	return p
}

// score sums the hashed weight of every feature and applies a leaky
// rectification: a positive sum passes unchanged, a zero or negative sum is
// scaled by alpha and truncated toward zero. Confident-keep candidates stay
// mutually ranked at reduced magnitude instead of dominating the selection.
func (p *predictor) score(fs FeatureSet, pc uint64, alpha float64) int32 {
	var sum int32
	for f := Feature(0); f < numFeatures; f++ {
		sum += int32(p.tables[f].lookup(fs[f], pc))
	}
	if sum > 0 {
		return sum
	}
	return int32(float64(sum) * alpha)
}

// trainOne adjusts every feature's weight by -1 when the prediction was
// correct (the line was reused) and +1 when it was not, and counts the
// training event against each feature's usage.
func (p *predictor) trainOne(fs FeatureSet, pc uint64, correct bool) {
	delta := int8(1)
	if correct {
		delta = -1
	}
	for f := Feature(0); f < numFeatures; f++ {
		p.tables[f].adjust(fs[f], pc, delta)
		p.usage[f]++
	}
}

// resizeEvent reports one table resize out of maybeResize.
type resizeEvent struct {
	feature  Feature
	capacity int
	grew     bool
}

// maybeResize runs the amortized resize controller. It is called once per
// update; every checkInterval calls it evaluates each feature table, doubling
// tables trained more than 10x their capacity and halving tables trained less
// than a tenth of it (never below the floor). Usage counters reset to zero
// after every evaluation regardless of the branch taken.
//
// The evaluation clock advances on every update call while usage advances
// only on training events, so phases dominated by suppressed write hits
// genuinely shrink tables.
func (p *predictor) maybeResize() []resizeEvent {
	p.sinceCheck++
	if p.sinceCheck < atomic.LoadUint64(&p.checkInterval) {
		return nil
	}
	p.sinceCheck = 0

	var events []resizeEvent
	for f := Feature(0); f < numFeatures; f++ {
		t := p.tables[f]
		c := t.capacity()
		switch {
		case p.usage[f] > uint64(10*c):
			t.resize(2 * c)
			events = append(events, resizeEvent{feature: f, capacity: 2 * c, grew: true})
		case p.usage[f] < uint64(c/10) && c > t.floor:
			t.resize(c / 2)
			events = append(events, resizeEvent{feature: f, capacity: c / 2, grew: false})
		}
		p.usage[f] = 0
	}
	return events
}
