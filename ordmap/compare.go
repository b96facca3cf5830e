package ordmap

import (
	"encoding/binary"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Equality, comparison and hashing treat a Map as a sequence of entries,
// not as an unordered mapping: two maps holding the same pairs in different
// orders are unequal and hash differently. This is what makes a Map usable
// as a key inside other ordered or hashed containers. Callers wanting
// set-semantics equality can Sort both sides first.

// Equal reports whether a and b hold equal entries in the same order.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i, e := range a.entries {
		if b.entries[i] != e {
			return false
		}
	}
	return true
}

// EqualFunc reports whether m and other hold the same keys in the same
// order, with values equal per eq.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for i, e := range m.entries {
		o := other.entries[i]
		if e.Key != o.Key || !eq(e.Value, o.Value) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their entry sequences,
// comparing each position's key first and value second, with a shorter
// prefix ordering before a longer one.
func Compare[K, V constraints.Ordered](a, b *Map[K, V]) int {
	return CompareFunc(a, b, func(ak K, av V, bk K, bv V) int {
		switch {
		case ak < bk:
			return -1
		case ak > bk:
			return 1
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	})
}

// CompareFunc orders a and b lexicographically over their entry sequences
// using cmp at each position, with a shorter prefix ordering before a
// longer one.
func CompareFunc[K comparable, V any](a, b *Map[K, V], cmp func(ak K, av V, bk K, bv V) int) int {
	n := min(len(a.entries), len(b.entries))
	for i := 0; i < n; i++ {
		ae, be := a.entries[i], b.entries[i]
		if c := cmp(ae.Key, ae.Value, be.Key, be.Value); c != 0 {
			return c
		}
	}
	switch {
	case len(a.entries) < len(b.entries):
		return -1
	case len(a.entries) > len(b.entries):
		return 1
	}
	return 0
}

// Hash returns an order-sensitive hash of m's entry sequence under seed.
// Maps that are Equal hash identically; maps holding the same pairs in
// different orders almost certainly do not.
func Hash[K, V comparable](seed maphash.Seed, m *Map[K, V]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var buf [8]byte
	for _, e := range m.entries {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, e))
		h.Write(buf[:])
	}
	return h.Sum64()
}
