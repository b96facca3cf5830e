package ordmap

import "iter"

// All returns the entries in order. The map must not be structurally mutated
// while the returned sequence runs.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Backward returns the entries in reverse order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.entries) - 1; i >= 0; i-- {
			e := m.entries[i]
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values returns the values in order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the entries in order. The copy does not alias the
// store and stays valid across later mutations.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.entries))
	copy(out, m.entries)
	return out
}

// Iter is a double-ended cursor over the entries. The two ends consume
// independently and meet in the middle; once they cross, both report
// exhaustion. The cursor reads the live store, so the map must not be
// mutated while the cursor is in use.
type Iter[K comparable, V any] struct {
	entries []Pair[K, V]
	front   int
	back    int
}

// Iter returns a double-ended cursor positioned at both ends.
func (m *Map[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{entries: m.entries, front: 0, back: len(m.entries)}
}

// Len returns the number of entries not yet consumed from either end.
func (it *Iter[K, V]) Len() int {
	return it.back - it.front
}

// Next consumes and returns the next entry from the front.
func (it *Iter[K, V]) Next() (K, V, bool) {
	if it.front >= it.back {
		var k K
		var v V
		return k, v, false
	}
	e := it.entries[it.front]
	it.front++
	return e.Key, e.Value, true
}

// NextBack consumes and returns the next entry from the back.
func (it *Iter[K, V]) NextBack() (K, V, bool) {
	if it.front >= it.back {
		var k K
		var v V
		return k, v, false
	}
	it.back--
	e := it.entries[it.back]
	return e.Key, e.Value, true
}
