// table.go: hashed saturating weight table
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"encoding/binary"
	"math/rand"

	"github.com/spaolacci/murmur3"
)

const (
	// MinWeight and MaxWeight bound every table weight, matching a 6-bit
	// saturating counter. Updates clamp into this range and never wrap.
	MinWeight = -32
	MaxWeight = 31

	// pcHashMask selects the instruction pointer bits mixed into the
	// table index.
	pcHashMask = 0xFFFF

	// minTableSize is the hard floor for any table capacity.
	minTableSize = 16
)

// weightTable is a fixed-capacity, hashed table of saturating weights for
// one feature dimension. A slot is selected by hashing the feature value
// together with the access's instruction pointer and reducing modulo the
// capacity; distinct feature values may alias the same slot, which is an
// accepted memory/accuracy trade-off.
type weightTable struct {
	weights []int8
	floor   int

	// rng seeds newly created slots; nil means zero initialization.
	rng *rand.Rand
}

// newWeightTable creates a table with the given initial capacity, which
// also becomes the shrink floor. Capacities below minTableSize are clamped.
func newWeightTable(size int, rng *rand.Rand) *weightTable {
	if size < minTableSize {
		size = minTableSize
	}
	t := &weightTable{
		weights: make([]int8, size),
		floor:   size,
		rng:     rng,
	}
	for i := range t.weights {
		t.weights[i] = t.freshWeight()
	}
	return t
}

func (t *weightTable) capacity() int {
	return len(t.weights)
}

// index reduces (featureValue, pc) into the table.
func (t *weightTable) index(value, pc uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value^(pc&pcHashMask))
	return murmur3.Sum64(buf[:]) % uint64(len(t.weights))
}

// lookup returns the weight selected by (featureValue, pc).
func (t *weightTable) lookup(value, pc uint64) int8 {
	return t.weights[t.index(value, pc)]
}

// adjust applies delta to the weight selected by (featureValue, pc),
// saturating at [MinWeight, MaxWeight].
func (t *weightTable) adjust(value, pc uint64, delta int8) {
	i := t.index(value, pc)
	w := int(t.weights[i]) + int(delta)
	if w > MaxWeight {
		w = MaxWeight
	} else if w < MinWeight {
		w = MinWeight
	}
	t.weights[i] = int8(w)
}

// resize replaces the capacity, remapping every existing weight to
// oldIndex mod newCapacity. The remap is lossy: colliding entries resolve
// last-write-wins in iteration order. Slots created by growth are
// initialized fresh (zero, or seeded random in [-2, 2]).
func (t *weightTable) resize(newCapacity int) {
	if newCapacity <= 0 {
		panic("xanthos: weight table capacity must be positive")
	}
	next := make([]int8, newCapacity)
	for i := len(t.weights); i < newCapacity; i++ {
		next[i] = t.freshWeight()
	}
	for i, w := range t.weights {
		next[uint64(i)%uint64(newCapacity)] = w
	}
	t.weights = next
}

// freshWeight returns the initial value for a newly created slot.
func (t *weightTable) freshWeight() int8 {
	if t.rng == nil {
		return 0
	}
	return int8(t.rng.Intn(5) - 2)
}
