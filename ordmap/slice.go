package ordmap

import (
	"iter"
	"slices"
	"sort"
)

// Slice is a window over the contiguous range of positions [i, j) of a Map.
// It supports the positional operations scoped to the window, but no
// key-based lookup: the slot index is not range-scoped. Positions within a
// slice are relative, 0..Len().
//
// A slice stays valid while the parent map is only read or has values
// overwritten in place; any structural mutation of the parent (insert,
// remove, reorder outside the slice's own SortBy) invalidates it.
//
// Positional violations on a slice panic, as slice indexing does; there are
// no keys here for a "not found" result to be confused with.
type Slice[K comparable, V any] struct {
	m    *Map[K, V]
	i, j int
}

// Slice returns the window over positions [i, j). Panics if the range is
// invalid, with the same contract as s[i:j] on a Go slice.
func (m *Map[K, V]) Slice(i, j int) Slice[K, V] {
	if i < 0 || j < i || j > len(m.entries) {
		panicRange("Slice", i, j, len(m.entries))
	}
	return Slice[K, V]{m: m, i: i, j: j}
}

// AsSlice returns the whole map as a window, positions [0, Len()).
func (m *Map[K, V]) AsSlice() Slice[K, V] {
	return Slice[K, V]{m: m, i: 0, j: len(m.entries)}
}

// Len returns the number of entries in the window.
func (s Slice[K, V]) Len() int {
	return s.j - s.i
}

// Get returns the entry at relative position i. Panics if i is out of the
// window's range.
func (s Slice[K, V]) Get(i int) (K, V) {
	e := s.m.entries[s.abs(i, "Get")]
	return e.Key, e.Value
}

// Key returns the key at relative position i.
func (s Slice[K, V]) Key(i int) K {
	return s.m.entries[s.abs(i, "Key")].Key
}

// Value returns the value at relative position i.
func (s Slice[K, V]) Value(i int) V {
	return s.m.entries[s.abs(i, "Value")].Value
}

// SetValue overwrites the value at relative position i in place. The entry
// keeps its key and position, so no slot repair is needed.
func (s Slice[K, V]) SetValue(i int, value V) {
	s.m.entries[s.abs(i, "SetValue")].Value = value
}

// Slice re-slices the window to its relative range [i, j). Panics if the
// range is invalid.
func (s Slice[K, V]) Slice(i, j int) Slice[K, V] {
	if i < 0 || j < i || j > s.Len() {
		panicRange("Slice", i, j, s.Len())
	}
	return Slice[K, V]{m: s.m, i: s.i + i, j: s.i + j}
}

// All returns the window's entries in order.
func (s Slice[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := s.i; p < s.j; p++ {
			e := s.m.entries[p]
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Backward returns the window's entries in reverse order.
func (s Slice[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := s.j - 1; p >= s.i; p-- {
			e := s.m.entries[p]
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns the window's keys in order.
func (s Slice[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := s.i; p < s.j; p++ {
			if !yield(s.m.entries[p].Key) {
				return
			}
		}
	}
}

// Values returns the window's values in order.
func (s Slice[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := s.i; p < s.j; p++ {
			if !yield(s.m.entries[p].Value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the window's entries.
func (s Slice[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], s.Len())
	copy(out, s.m.entries[s.i:s.j])
	return out
}

// Iter returns a double-ended cursor over the window.
func (s Slice[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{entries: s.m.entries[s.i:s.j], front: 0, back: s.Len()}
}

// SortBy stably reorders the entries inside the window by cmp. Entries
// outside the window keep their positions, so only the window's slots are
// rebuilt afterwards.
func (s Slice[K, V]) SortBy(cmp func(ak K, av V, bk K, bv V) int) {
	slices.SortStableFunc(s.m.entries[s.i:s.j], func(a, b Pair[K, V]) int {
		return cmp(a.Key, a.Value, b.Key, b.Value)
	})
	s.m.repair(s.i, s.j)
}

// BinarySearchBy locates the first relative position whose entry compares
// greater than or equal per f, where f reports the entry's ordering against
// the target (negative: entry before target, zero: equal, positive: after).
// The window must already be sorted consistently with f. The bool reports
// whether an equal entry was found at the returned position.
func (s Slice[K, V]) BinarySearchBy(f func(key K, value V) int) (int, bool) {
	n := s.Len()
	i := sort.Search(n, func(p int) bool {
		e := s.m.entries[s.i+p]
		return f(e.Key, e.Value) >= 0
	})
	if i < n {
		e := s.m.entries[s.i+i]
		if f(e.Key, e.Value) == 0 {
			return i, true
		}
	}
	return i, false
}

func (s Slice[K, V]) abs(i int, op string) int {
	if i < 0 || i >= s.Len() {
		panicIndex(op, i, s.Len())
	}
	return s.i + i
}
