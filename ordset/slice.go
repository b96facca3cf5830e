package ordset

import (
	"iter"

	"github.com/indexmap-rs/ordermap/ordmap"
)

// Slice is a read-only window over the contiguous range of positions [i, j)
// of a Set. Positions within a slice are relative, 0..Len(). Like its map
// counterpart it offers no membership lookup, and positional violations
// panic.
//
// A slice is invalidated by any structural mutation of the parent set.
type Slice[T comparable] struct {
	inner ordmap.Slice[T, struct{}]
}

// Slice returns the window over positions [i, j). Panics if the range is
// invalid.
func (s *Set[T]) Slice(i, j int) Slice[T] {
	return Slice[T]{inner: s.m.Slice(i, j)}
}

// AsSlice returns the whole set as a window.
func (s *Set[T]) AsSlice() Slice[T] {
	return Slice[T]{inner: s.m.AsSlice()}
}

// Len returns the number of members in the window.
func (sl Slice[T]) Len() int {
	return sl.inner.Len()
}

// Get returns the member at relative position i. Panics if i is out of the
// window's range.
func (sl Slice[T]) Get(i int) T {
	k, _ := sl.inner.Get(i)
	return k
}

// Slice re-slices the window to its relative range [i, j).
func (sl Slice[T]) Slice(i, j int) Slice[T] {
	return Slice[T]{inner: sl.inner.Slice(i, j)}
}

// All returns the window's members in order.
func (sl Slice[T]) All() iter.Seq[T] {
	return sl.inner.Keys()
}

// Backward returns the window's members in reverse order.
func (sl Slice[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range sl.inner.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Members returns a copy of the window's members.
func (sl Slice[T]) Members() []T {
	out := make([]T, 0, sl.Len())
	for k := range sl.inner.Keys() {
		out = append(out, k)
	}
	return out
}

// BinarySearchBy locates the first relative position whose member compares
// greater than or equal per f. The window must already be sorted
// consistently with f.
func (sl Slice[T]) BinarySearchBy(f func(v T) int) (int, bool) {
	return sl.inner.BinarySearchBy(func(k T, _ struct{}) int { return f(k) })
}
