package ordmap

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// SortBy reorders the entries by cmp, stably: entries that compare equal
// keep their current relative order. The whole store is permuted first and
// every slot rebuilt in a single pass afterwards, which is cheaper than
// repairing during the sort.
func (m *Map[K, V]) SortBy(cmp func(ak K, av V, bk K, bv V) int) {
	slices.SortStableFunc(m.entries, func(a, b Pair[K, V]) int {
		return cmp(a.Key, a.Value, b.Key, b.Value)
	})
	m.rebuildIndex()
}

// SortUnstableBy is SortBy without the stability guarantee, which can be
// faster and allocates nothing for the permutation.
func (m *Map[K, V]) SortUnstableBy(cmp func(ak K, av V, bk K, bv V) int) {
	slices.SortFunc(m.entries, func(a, b Pair[K, V]) int {
		return cmp(a.Key, a.Value, b.Key, b.Value)
	})
	m.rebuildIndex()
}

// Reverse reverses the order of the entries in place.
func (m *Map[K, V]) Reverse() {
	slices.Reverse(m.entries)
	m.rebuildIndex()
}

// Sort reorders m by its keys in ascending natural order. Keys are unique,
// so stability is irrelevant here and the unstable sort is used.
func Sort[K constraints.Ordered, V any](m *Map[K, V]) {
	m.SortUnstableBy(func(ak K, _ V, bk K, _ V) int {
		switch {
		case ak < bk:
			return -1
		case ak > bk:
			return 1
		}
		return 0
	})
}

// IsSorted reports whether the entries of m are in ascending key order.
func IsSorted[K constraints.Ordered, V any](m *Map[K, V]) bool {
	return slices.IsSortedFunc(m.entries, func(a, b Pair[K, V]) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
}
