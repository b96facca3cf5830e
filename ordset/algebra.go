package ordset

// The set algebra produces new sets with a deterministic order derived from
// the operand orders, so that algebra over sets built deterministically is
// itself deterministic. The operands are never mutated.

// Union returns the members of s followed by the members of other not in s,
// each part in its operand's order.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := NewWithCapacity[T](s.Len() + other.Len())
	for v := range s.All() {
		out.Insert(v)
	}
	for v := range other.All() {
		out.Insert(v)
	}
	return out
}

// Intersection returns the members present in both s and other, in s's
// order.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := New[T]()
	for v := range s.All() {
		if other.Contains(v) {
			out.Insert(v)
		}
	}
	return out
}

// Difference returns the members of s not in other, in s's order.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	out := New[T]()
	for v := range s.All() {
		if !other.Contains(v) {
			out.Insert(v)
		}
	}
	return out
}

// SymmetricDifference returns the members in exactly one of s and other:
// first s's members not in other, in s's order, then other's members not in
// s, in other's order.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	out := New[T]()
	for v := range s.All() {
		if !other.Contains(v) {
			out.Insert(v)
		}
	}
	for v := range other.All() {
		if !s.Contains(v) {
			out.Insert(v)
		}
	}
	return out
}

// IsSubset reports whether every member of s is in other.
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for v := range s.All() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of other is in s.
func (s *Set[T]) IsSuperset(other *Set[T]) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other share no members.
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for v := range small.All() {
		if large.Contains(v) {
			return false
		}
	}
	return true
}
