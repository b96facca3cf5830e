package ordset

import (
	"iter"

	"github.com/indexmap-rs/ordermap/ordmap"
)

// All returns the members in order. The set must not be structurally
// mutated while the returned sequence runs.
func (s *Set[T]) All() iter.Seq[T] {
	return s.m.Keys()
}

// Backward returns the members in reverse order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.m.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Members returns a copy of the members in order. The copy stays valid
// across later mutations.
func (s *Set[T]) Members() []T {
	out := make([]T, 0, s.m.Len())
	for k := range s.m.Keys() {
		out = append(out, k)
	}
	return out
}

// Iter is a double-ended cursor over the members; the two ends consume
// independently and meet in the middle.
type Iter[T comparable] struct {
	inner *ordmap.Iter[T, struct{}]
}

// Iter returns a double-ended cursor positioned at both ends.
func (s *Set[T]) Iter() *Iter[T] {
	return &Iter[T]{inner: s.m.Iter()}
}

// Len returns the number of members not yet consumed from either end.
func (it *Iter[T]) Len() int {
	return it.inner.Len()
}

// Next consumes and returns the next member from the front.
func (it *Iter[T]) Next() (T, bool) {
	k, _, ok := it.inner.Next()
	return k, ok
}

// NextBack consumes and returns the next member from the back.
func (it *Iter[T]) NextBack() (T, bool) {
	k, _, ok := it.inner.NextBack()
	return k, ok
}
