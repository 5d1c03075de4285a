package aggregate

import (
	"iter"
	"slices"
)

// CommonNeighborEntry pairs a key with its accumulated record.
type CommonNeighborEntry struct {
	Key    PairKey
	Record CommonNeighborRecord
}

// CommonNeighborTable is the immutable, sorted result of CommonNeighbors.
// It contains exactly the pairs with cn ≥ 1 and is safe for concurrent readers.
type CommonNeighborTable struct {
	entries []CommonNeighborEntry
}

// Len returns the number of pairs with at least one shared neighbor.
func (t *CommonNeighborTable) Len() int { return len(t.entries) }

// At returns the i-th entry in (X, Y) order. Panics if i is out of range.
func (t *CommonNeighborTable) At(i int) CommonNeighborEntry { return t.entries[i] }

// Get looks up the record of {a,b} in either orientation.
// ok is false when the pair shares no neighbor (or a == b).
//
// Complexity: O(log P).
func (t *CommonNeighborTable) Get(a, b int) (CommonNeighborRecord, bool) {
	i, ok := t.index(a, b)
	if !ok {
		return CommonNeighborRecord{}, false
	}

	return t.entries[i].Record, true
}

// index finds the position of {a,b}.
func (t *CommonNeighborTable) index(a, b int) (int, bool) {
	if a == b {
		return 0, false
	}
	k := canonical(a, b)

	return slices.BinarySearchFunc(t.entries, k, func(e CommonNeighborEntry, k PairKey) int {
		return e.Key.Compare(k)
	})
}

// All yields every entry in (X, Y) order.
func (t *CommonNeighborTable) All() iter.Seq2[PairKey, CommonNeighborRecord] {
	return func(yield func(PairKey, CommonNeighborRecord) bool) {
		for _, e := range t.entries {
			if !yield(e.Key, e.Record) {
				return
			}
		}
	}
}

// InteractionTable holds cni values aligned with the CommonNeighborTable
// it was computed from: the i-th value belongs to the i-th pair there.
type InteractionTable struct {
	cn     *CommonNeighborTable
	values []float64
}

// Len returns the number of pairs, equal to the source table's Len.
func (t *InteractionTable) Len() int { return len(t.values) }

// At returns the i-th pair and its cni value. Panics if i is out of range.
func (t *InteractionTable) At(i int) (PairKey, float64) {
	return t.cn.entries[i].Key, t.values[i]
}

// Get looks up cni for {a,b} in either orientation.
// ok is false for pairs outside the common-neighbor domain.
func (t *InteractionTable) Get(a, b int) (float64, bool) {
	i, ok := t.cn.index(a, b)
	if !ok {
		return 0, false
	}

	return t.values[i], true
}

// Source returns the CommonNeighborTable the values are aligned with.
func (t *InteractionTable) Source() *CommonNeighborTable { return t.cn }
