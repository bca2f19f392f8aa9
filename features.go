// features.go: access context, slot metadata and feature extraction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// AccessType classifies the memory access that triggered a call.
type AccessType int

const (
	// AccessLoad is a demand read.
	AccessLoad AccessType = iota

	// AccessWrite is a store or writeback.
	AccessWrite

	// AccessPrefetch is a hardware or software prefetch.
	AccessPrefetch
)

// String returns the access type name.
func (t AccessType) String() string {
	switch t {
	case AccessLoad:
		return "load"
	case AccessWrite:
		return "write"
	case AccessPrefetch:
		return "prefetch"
	default:
		return "unknown"
	}
}

// AccessContext bundles the host-provided facts about one memory access.
// Cycle is the host's logical cycle counter and must be monotonic per
// Replacer instance.
type AccessContext struct {
	PC      uint64
	Address uint64
	Type    AccessType
	Cycle   uint64
}

// SlotMetadata is the per-(set, way) record owned by the replacement
// subsystem. One record exists per slot for the lifetime of the Replacer;
// it is overwritten in place when the slot is refilled, never destroyed.
type SlotMetadata struct {
	// LastAccessCycle is the cycle of the most recent access to this slot.
	LastAccessCycle uint64

	// CreationCycle is the cycle the current line was filled into the slot.
	CreationCycle uint64

	// RefCount counts accesses to the current line since its fill.
	RefCount uint64

	// LastPC is the instruction pointer of the most recent access.
	LastPC uint64

	// Write records whether the most recent access was a write.
	Write bool

	// Offset is the block offset of the most recent access.
	Offset uint64

	// Tag is the line tag, set at fill time.
	Tag uint64
}

const (
	// 64-byte cache lines
	offsetBits = 6
	offsetMask = (1 << offsetBits) - 1
)

// Feature identifies one predictor input signal. The enumeration is closed;
// FeatureSet and the weight table array are sized by it, so extending the
// model means adding a constant here, not touching the hot path.
type Feature int

const (
	// FeaturePC is the instruction pointer that last touched the slot.
	FeaturePC Feature = iota

	// FeatureSetIndex is the cache set being accessed.
	FeatureSetIndex

	// FeatureWrite is 1 if the slot's last access was a write.
	FeatureWrite

	// FeatureRecency is the cycle delta since the slot's last access.
	FeatureRecency

	// FeatureAge is the cycle delta since the slot's line was filled.
	FeatureAge

	// FeatureOffset is the block offset of the slot's last access.
	FeatureOffset

	numFeatures
)

// String returns the feature name.
func (f Feature) String() string {
	switch f {
	case FeaturePC:
		return "pc"
	case FeatureSetIndex:
		return "set_index"
	case FeatureWrite:
		return "is_write"
	case FeatureRecency:
		return "recency"
	case FeatureAge:
		return "age"
	case FeatureOffset:
		return "offset"
	default:
		return "unknown"
	}
}

// FeatureSet holds one value per feature, indexed by Feature ordinal.
// It is built fresh per prediction or training call and consumed immediately.
type FeatureSet [numFeatures]uint64

// extractFeatures derives the feature set for one slot under the current
// access. It never mutates the slot, so it is safe to call for every
// candidate of a set during victim selection.
func extractFeatures(m *SlotMetadata, set int, ctx AccessContext) FeatureSet {
	var fs FeatureSet
	fs[FeaturePC] = m.LastPC
	fs[FeatureSetIndex] = uint64(set)
	if m.Write {
		fs[FeatureWrite] = 1
	}
	fs[FeatureRecency] = ctx.Cycle - m.LastAccessCycle
	fs[FeatureAge] = ctx.Cycle - m.CreationCycle
	fs[FeatureOffset] = m.Offset
	return fs
}
