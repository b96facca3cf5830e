package ordset

/*

# An insertion-ordered set with positional access

Package ordset provides Set, a hash set whose members are additionally
addressable by contiguous numeric position. It is a thin specialization of
ordmap.Map with a zero-size value: all index and order maintenance lives in
ordmap, and every operation here carries the same ordering and complexity
contract as its map counterpart (ShiftRemove preserves order in O(n),
SwapRemove breaks it in O(1), sorts and Retain rebuild the affected slots
in one pass, and so on).

On top of the map contract the package adds the set algebra: Union,
Intersection, Difference and SymmetricDifference produce new sets with a
documented, deterministic order derived from the operand orders, and
IsSubset, IsSuperset and IsDisjoint test containment without allocating.

Equality, comparison and hashing are order-sensitive, exactly as for
ordmap: two sets holding the same members in different insertion orders
are not Equal. Sort both, or compare via IsSubset in both directions, for
set-semantics equality.
*/
