package ordset

import (
	"hash/maphash"

	"golang.org/x/exp/constraints"

	"github.com/indexmap-rs/ordermap/ordmap"
)

// Equal reports whether a and b hold the same members in the same order.
// For set-semantics equality regardless of order, use IsSubset in both
// directions or sort both sides first.
func Equal[T comparable](a, b *Set[T]) bool {
	return ordmap.Equal(&a.m, &b.m)
}

// Compare orders a and b lexicographically over their member sequences,
// with a shorter prefix ordering before a longer one.
func Compare[T constraints.Ordered](a, b *Set[T]) int {
	return ordmap.CompareFunc(&a.m, &b.m, func(av T, _ struct{}, bv T, _ struct{}) int {
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	})
}

// CompareFunc orders a and b lexicographically over their member sequences
// using cmp at each position.
func CompareFunc[T comparable](a, b *Set[T], cmp func(av, bv T) int) int {
	return ordmap.CompareFunc(&a.m, &b.m, func(av T, _ struct{}, bv T, _ struct{}) int {
		return cmp(av, bv)
	})
}

// Hash returns an order-sensitive hash of s's member sequence under seed.
func Hash[T comparable](seed maphash.Seed, s *Set[T]) uint64 {
	return ordmap.Hash(seed, &s.m)
}

// Sort reorders s by its members in ascending natural order.
func Sort[T constraints.Ordered](s *Set[T]) {
	s.SortBy(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
}

// IsSorted reports whether the members of s are in ascending natural order.
func IsSorted[T constraints.Ordered](s *Set[T]) bool {
	return ordmap.IsSorted(&s.m)
}
