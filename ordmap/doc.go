package ordmap

/*

# An insertion-ordered map with positional access

Package ordmap provides Map, a hash map that additionally exposes its
entries by contiguous numeric position. Iteration order is the order in
which keys were first inserted, and stays deterministic across lookups,
value overwrites, and (for the order-preserving operations) removals.

A standard Go map gives O(1) lookup but a randomized iteration order. A
slice of pairs gives a stable order but O(n) lookup. Map keeps both:

  - a dense entry store: a plain slice of (key, value) pairs, holding all
    entry data contiguously in order, and
  - a slot index: a swisstable (github.com/cockroachdb/swiss) mapping each
    key to its current position in the store.

Every mutation maintains both sides together. The externally observable
position of an entry is its index in the dense store, so positional reads
are a single slice access, and key lookups are a single probe of the slot
index. The cost shows up in the mutations that change positions:

  - ShiftRemove keeps order by shifting the tail of the store down one
    position and re-pointing the slot of every shifted entry. O(n).
  - SwapRemove gives up order: the last entry moves into the hole and only
    that one slot is repaired. O(1) amortized.
  - Sort, Retain, Reverse and friends permute or compact the whole store
    and then rebuild the affected slots in a single pass, which is cheaper
    than repairing incrementally while the permutation is in flight.

# Positions are not stable

A position names "the entry currently at index i", nothing more. Any
removal, positional insert, or reorder may change the positions of other
entries. Code that needs "the slot for this key, resolved once" should use
Entry, which carries the resolved position across a lookup-then-mutate
sequence without a second probe.

# Order-sensitive container semantics

Equal, Compare and Hash treat the map as a sequence: two maps holding the
same pairs in different orders are not equal, and comparison and hashing
are lexicographic over the entry sequence. This makes a Map usable as a
key in other ordered or hashed containers, at the price that callers who
want set-semantics equality must sort first.

# Concurrency

None. Map is a single-owner structure with no internal locking. Concurrent
readers are safe only while no writer runs; callers who share a Map across
goroutines must bring their own synchronization.

# Errors and panics

Key absence is never an error: lookups and removals return an ok bool.
Positional violations (index out of range, invalid slice bounds) panic,
exactly as slice indexing does, because they are contract violations
rather than expected absence. The two conditions are never conflated: no
key-based operation panics on a missing key, and no position-based
operation reports absence for an in-range position.
*/
