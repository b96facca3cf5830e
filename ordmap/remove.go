package ordmap

// ShiftRemove removes key, preserving the relative order of the remaining
// entries: every entry after the removed one shifts down a position and has
// its slot repaired. O(n) in the number of entries after the removed one.
func (m *Map[K, V]) ShiftRemove(key K) (V, bool) {
	_, _, v, ok := m.ShiftRemoveFull(key)
	return v, ok
}

// ShiftRemoveFull is ShiftRemove, additionally returning the position the
// entry held and the stored key.
func (m *Map[K, V]) ShiftRemoveFull(key K) (i int, k K, v V, ok bool) {
	if i, ok = m.lookup(key); !ok {
		return 0, k, v, false
	}
	k, v = m.shiftRemoveAt(i)
	return i, k, v, true
}

// ShiftRemoveIndex removes the entry at position i, preserving the order of
// the rest, or returns ok=false when i is out of range.
func (m *Map[K, V]) ShiftRemoveIndex(i int) (K, V, bool) {
	if i < 0 || i >= len(m.entries) {
		var k K
		var v V
		return k, v, false
	}
	k, v := m.shiftRemoveAt(i)
	return k, v, true
}

// SwapRemove removes key in O(1) amortized time by moving the last entry
// into the vacated position; only that entry's slot needs repair. Order is
// not preserved: the last entry takes over the removed entry's position.
func (m *Map[K, V]) SwapRemove(key K) (V, bool) {
	_, _, v, ok := m.SwapRemoveFull(key)
	return v, ok
}

// SwapRemoveFull is SwapRemove, additionally returning the position the
// entry held and the stored key.
func (m *Map[K, V]) SwapRemoveFull(key K) (i int, k K, v V, ok bool) {
	if i, ok = m.lookup(key); !ok {
		return 0, k, v, false
	}
	k, v = m.swapRemoveAt(i)
	return i, k, v, true
}

// SwapRemoveIndex removes the entry at position i by moving the last entry
// into its place, or returns ok=false when i is out of range.
func (m *Map[K, V]) SwapRemoveIndex(i int) (K, V, bool) {
	if i < 0 || i >= len(m.entries) {
		var k K
		var v V
		return k, v, false
	}
	k, v := m.swapRemoveAt(i)
	return k, v, true
}

// Pop removes and returns the last entry. Popping never moves any other
// entry, so it is safe to pop in a loop while holding positions of earlier
// entries.
func (m *Map[K, V]) Pop() (K, V, bool) {
	n := len(m.entries)
	if n == 0 {
		var k K
		var v V
		return k, v, false
	}
	e := m.entries[n-1]
	m.lazyIndex().Delete(e.Key)
	clear(m.entries[n-1:])
	m.entries = m.entries[:n-1]
	return e.Key, e.Value, true
}

// Truncate keeps the first n entries and removes the rest. No surviving
// entry moves, so no slot repair is needed. A Truncate to Len() or beyond is
// a no-op; a negative n clears the map.
func (m *Map[K, V]) Truncate(n int) {
	if n >= len(m.entries) {
		return
	}
	if n < 0 {
		n = 0
	}
	idx := m.lazyIndex()
	for _, e := range m.entries[n:] {
		idx.Delete(e.Key)
	}
	clear(m.entries[n:])
	m.entries = m.entries[:n]
}

// SplitOff removes the entries at positions at..Len() and returns them as a
// new Map in the same order. Panics if at is out of range (0..Len()
// inclusive).
func (m *Map[K, V]) SplitOff(at int) *Map[K, V] {
	n := len(m.entries)
	if at < 0 || at > n {
		panicIndex("SplitOff", at, n)
	}
	tail := NewWithCapacity[K, V](n - at)
	idx := m.lazyIndex()
	for p := at; p < n; p++ {
		e := m.entries[p]
		idx.Delete(e.Key)
		tail.entries = append(tail.entries, e)
		tail.index.Put(e.Key, p-at)
	}
	clear(m.entries[at:])
	m.entries = m.entries[:at]
	return tail
}

// Retain removes every entry for which keep returns false, preserving the
// relative order of the survivors. The store is compacted in a single pass
// and each moved survivor has its slot repaired as it lands.
func (m *Map[K, V]) Retain(keep func(key K, value V) bool) {
	idx := m.lazyIndex()
	dst := 0
	for src := 0; src < len(m.entries); src++ {
		e := m.entries[src]
		if !keep(e.Key, e.Value) {
			idx.Delete(e.Key)
			continue
		}
		if dst != src {
			m.entries[dst] = e
			idx.Put(e.Key, dst)
		}
		dst++
	}
	clear(m.entries[dst:])
	m.entries = m.entries[:dst]
}

// shiftRemoveAt removes position i, shifting the tail down and repairing the
// shifted slots.
func (m *Map[K, V]) shiftRemoveAt(i int) (K, V) {
	e := m.entries[i]
	m.lazyIndex().Delete(e.Key)
	copy(m.entries[i:], m.entries[i+1:])
	n := len(m.entries) - 1
	clear(m.entries[n:])
	m.entries = m.entries[:n]
	m.repair(i, n)
	return e.Key, e.Value
}

// swapRemoveAt removes position i by moving the last entry into it. Only the
// moved entry's slot is repaired.
func (m *Map[K, V]) swapRemoveAt(i int) (K, V) {
	e := m.entries[i]
	idx := m.lazyIndex()
	idx.Delete(e.Key)
	n := len(m.entries) - 1
	if i != n {
		m.entries[i] = m.entries[n]
		idx.Put(m.entries[i].Key, i)
	}
	clear(m.entries[n:])
	m.entries = m.entries[:n]
	return e.Key, e.Value
}
