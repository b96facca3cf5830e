package ordset

import (
	"iter"
	"sort"

	"github.com/indexmap-rs/ordermap/ordmap"
)

// Set is a hash set whose members are addressable by contiguous numeric
// position, 0..Len(), in first-insertion order.
//
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	m ordmap.Map[T, struct{}]
}

// New returns an empty Set.
func New[T comparable]() *Set[T] {
	return &Set[T]{}
}

// NewWithCapacity returns an empty Set with room for n members before the
// underlying store reallocates.
func NewWithCapacity[T comparable](n int) *Set[T] {
	return &Set[T]{m: *ordmap.NewWithCapacity[T, struct{}](n)}
}

// FromSlice builds a Set from members in order. Duplicates collapse to the
// position of their first occurrence.
func FromSlice[T comparable](members []T) *Set[T] {
	s := NewWithCapacity[T](len(members))
	for _, v := range members {
		s.Insert(v)
	}
	return s
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	return s.m.Contains(v)
}

// Get returns the stored member equal to v. The distinction from Contains
// matters only to callers that treat the first-inserted member as
// canonical.
func (s *Set[T]) Get(v T) (T, bool) {
	_, k, _, ok := s.m.GetFull(v)
	return k, ok
}

// GetFull returns the current position and stored member for v.
func (s *Set[T]) GetFull(v T) (i int, member T, ok bool) {
	i, member, _, ok = s.m.GetFull(v)
	return i, member, ok
}

// GetIndexOf returns the current position of v.
func (s *Set[T]) GetIndexOf(v T) (int, bool) {
	return s.m.GetIndexOf(v)
}

// GetIndex returns the member at position i, or ok=false when i is out of
// range.
func (s *Set[T]) GetIndex(i int) (T, bool) {
	k, _, ok := s.m.GetIndex(i)
	return k, ok
}

// First returns the member at position 0.
func (s *Set[T]) First() (T, bool) {
	k, _, ok := s.m.First()
	return k, ok
}

// Last returns the member at position Len()-1.
func (s *Set[T]) Last() (T, bool) {
	k, _, ok := s.m.Last()
	return k, ok
}

// Insert adds v at position Len() and reports whether it was newly added. A
// member already present keeps its position and the set is unchanged.
func (s *Set[T]) Insert(v T) bool {
	_, added := s.InsertFull(v)
	return added
}

// InsertFull is Insert, additionally returning the member's position.
func (s *Set[T]) InsertFull(v T) (i int, added bool) {
	i, _, had := s.m.InsertFull(v, struct{}{})
	return i, !had
}

// InsertSorted adds v at its ordered position among the members, found by
// binary search with cmp. The result is only guaranteed sorted if the set
// was already sorted by cmp.
func (s *Set[T]) InsertSorted(cmp func(a, b T) int, v T) (i int, added bool) {
	i, _, had := s.m.InsertSorted(cmp, v, struct{}{})
	return i, !had
}

// ShiftInsert inserts v at exactly position i, shifting later members up; a
// member already present is moved to i. Panics on the same range contract
// as ordmap.Map.ShiftInsert.
func (s *Set[T]) ShiftInsert(i int, v T) bool {
	_, had := s.m.ShiftInsert(i, v, struct{}{})
	return !had
}

// InsertBefore inserts v before position i, with the position arithmetic of
// ordmap.Map.InsertBefore when v is already a member. Returns the position
// v ended up at.
func (s *Set[T]) InsertBefore(i int, v T) (at int, added bool) {
	at, _, had := s.m.InsertBefore(i, v, struct{}{})
	return at, !had
}

// ShiftRemove removes v, preserving the order of the remaining members.
// O(n).
func (s *Set[T]) ShiftRemove(v T) bool {
	_, ok := s.m.ShiftRemove(v)
	return ok
}

// ShiftTake removes v order-preservingly and returns the stored member.
func (s *Set[T]) ShiftTake(v T) (T, bool) {
	_, k, _, ok := s.m.ShiftRemoveFull(v)
	return k, ok
}

// SwapRemove removes v in O(1), moving the last member into its position.
func (s *Set[T]) SwapRemove(v T) bool {
	_, ok := s.m.SwapRemove(v)
	return ok
}

// SwapTake removes v order-breakingly and returns the stored member.
func (s *Set[T]) SwapTake(v T) (T, bool) {
	_, k, _, ok := s.m.SwapRemoveFull(v)
	return k, ok
}

// ShiftRemoveIndex removes the member at position i, preserving order, or
// returns ok=false when i is out of range.
func (s *Set[T]) ShiftRemoveIndex(i int) (T, bool) {
	k, _, ok := s.m.ShiftRemoveIndex(i)
	return k, ok
}

// SwapRemoveIndex removes the member at position i by moving the last
// member into its place, or returns ok=false when i is out of range.
func (s *Set[T]) SwapRemoveIndex(i int) (T, bool) {
	k, _, ok := s.m.SwapRemoveIndex(i)
	return k, ok
}

// Pop removes and returns the last member.
func (s *Set[T]) Pop() (T, bool) {
	k, _, ok := s.m.Pop()
	return k, ok
}

// Retain removes every member for which keep returns false, preserving the
// order of the survivors.
func (s *Set[T]) Retain(keep func(v T) bool) {
	s.m.Retain(func(k T, _ struct{}) bool { return keep(k) })
}

// Truncate keeps the first n members and removes the rest.
func (s *Set[T]) Truncate(n int) {
	s.m.Truncate(n)
}

// SplitOff removes the members at positions at..Len() and returns them as a
// new Set in the same order. Panics if at is out of range.
func (s *Set[T]) SplitOff(at int) *Set[T] {
	return &Set[T]{m: *s.m.SplitOff(at)}
}

// Append moves every member of other into s, after s's existing members;
// members already present keep their position in s. other is left empty
// with its capacity retained.
func (s *Set[T]) Append(other *Set[T]) {
	s.m.Append(&other.m)
}

// Extend inserts members in order, ignoring those already present.
func (s *Set[T]) Extend(members []T) {
	for _, v := range members {
		s.Insert(v)
	}
}

// Clear removes all members, keeping capacity.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// Reserve grows the store for at least n further insertions.
func (s *Set[T]) Reserve(n int) {
	s.m.Reserve(n)
}

// MoveIndex moves the member at position from to position to, shifting the
// members between. Panics if either position is out of range.
func (s *Set[T]) MoveIndex(from, to int) {
	s.m.MoveIndex(from, to)
}

// SwapIndices exchanges the members at positions a and b. Panics if either
// position is out of range.
func (s *Set[T]) SwapIndices(a, b int) {
	s.m.SwapIndices(a, b)
}

// Reverse reverses the member order in place.
func (s *Set[T]) Reverse() {
	s.m.Reverse()
}

// SortBy reorders the members by cmp. Members are unique so the unstable
// sort is used.
func (s *Set[T]) SortBy(cmp func(a, b T) int) {
	s.m.SortUnstableBy(func(ak T, _ struct{}, bk T, _ struct{}) int {
		return cmp(ak, bk)
	})
}

// BinarySearchBy locates the first position whose member compares greater
// than or equal per f. The set must already be sorted consistently with f.
func (s *Set[T]) BinarySearchBy(f func(v T) int) (int, bool) {
	n := s.m.Len()
	i := sort.Search(n, func(p int) bool {
		k, _, _ := s.m.GetIndex(p)
		return f(k) >= 0
	})
	if i < n {
		if k, _, _ := s.m.GetIndex(i); f(k) == 0 {
			return i, true
		}
	}
	return i, false
}

// ExtractIf returns a single-use iterator that removes and yields, in
// order, every member for which pred returns true, with the early-exit
// contract of ordmap.Map.ExtractIf.
func (s *Set[T]) ExtractIf(pred func(v T) bool) iter.Seq[T] {
	inner := s.m.ExtractIf(func(k T, _ struct{}) bool { return pred(k) })
	return func(yield func(T) bool) {
		inner(func(k T, _ struct{}) bool { return yield(k) })
	}
}
