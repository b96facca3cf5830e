package ordmap

import (
	"github.com/cockroachdb/swiss"
)

// Map is a hash map whose entries are additionally addressable by contiguous
// numeric position, 0..Len(). Iteration order is first-insertion order and is
// preserved by value overwrites and the order-preserving mutations.
//
// The zero value is an empty map ready to use.
//
// Internally a Map is two structures kept mutually consistent: a dense slice
// of Pair entries holding the data in order, and a swisstable mapping each
// key to the position its entry currently occupies. See the package
// documentation for the consistency and complexity contracts.
type Map[K comparable, V any] struct {
	entries []Pair[K, V]
	index   *swiss.Map[K, int]
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// NewWithCapacity returns an empty Map with room for n entries before the
// dense store reallocates. The slot index is created with the same capacity,
// so it never becomes the limiting factor for growth.
func NewWithCapacity[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		entries: make([]Pair[K, V], 0, n),
		index:   swiss.New[K, int](n),
	}
}

// FromPairs builds a Map from pairs in order. For duplicate keys the last
// occurrence wins the value while the entry keeps the position of the first
// occurrence, matching the bulk deserialization contract.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) *Map[K, V] {
	m := NewWithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// lazyIndex returns the slot index, creating it on first use so that the
// zero Map value is usable.
func (m *Map[K, V]) lazyIndex() *swiss.Map[K, int] {
	if m.index == nil {
		m.index = swiss.New[K, int](0)
	}
	return m.index
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.lookup(key); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// GetFull returns the current position, stored key, and value for key.
func (m *Map[K, V]) GetFull(key K) (i int, k K, v V, ok bool) {
	if i, ok = m.lookup(key); ok {
		e := m.entries[i]
		return i, e.Key, e.Value, true
	}
	return 0, k, v, false
}

// GetIndexOf returns the current position of key.
func (m *Map[K, V]) GetIndexOf(key K) (int, bool) {
	return m.lookup(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

// GetIndex returns the entry at position i, or ok=false when i is out of
// range. This is the bounds-checked positional read; the panicking form
// lives on Slice.
func (m *Map[K, V]) GetIndex(i int) (K, V, bool) {
	if i < 0 || i >= len(m.entries) {
		var k K
		var v V
		return k, v, false
	}
	e := m.entries[i]
	return e.Key, e.Value, true
}

// First returns the entry at position 0.
func (m *Map[K, V]) First() (K, V, bool) {
	return m.GetIndex(0)
}

// Last returns the entry at position Len()-1.
func (m *Map[K, V]) Last() (K, V, bool) {
	return m.GetIndex(len(m.entries) - 1)
}

// Clear removes all entries. The dense store keeps its capacity for reuse.
func (m *Map[K, V]) Clear() {
	if m.index != nil {
		for _, e := range m.entries {
			m.index.Delete(e.Key)
		}
	}
	clear(m.entries)
	m.entries = m.entries[:0]
}

// Reserve grows the dense store so that at least n further entries can be
// appended without reallocation. Sizing of the slot index is delegated to
// its own growth policy.
func (m *Map[K, V]) Reserve(n int) {
	if free := cap(m.entries) - len(m.entries); free < n {
		grown := make([]Pair[K, V], len(m.entries), len(m.entries)+n)
		copy(grown, m.entries)
		m.entries = grown
	}
}

// lookup resolves key to its current position via the slot index.
func (m *Map[K, V]) lookup(key K) (int, bool) {
	if m.index == nil {
		return 0, false
	}
	return m.index.Get(key)
}

// repair re-points the slot of every entry in positions [i:j) at its current
// position. Every mutation that shifts part of the dense store funnels
// through here so the two structures cannot evolve independently.
func (m *Map[K, V]) repair(i, j int) {
	idx := m.lazyIndex()
	for p := i; p < j; p++ {
		idx.Put(m.entries[p].Key, p)
	}
}

// rebuildIndex re-points every slot after a whole-store permutation (sort,
// reverse). A single pass afterwards is cheaper than repairing incrementally
// while the permutation is in flight.
func (m *Map[K, V]) rebuildIndex() {
	m.repair(0, len(m.entries))
}
