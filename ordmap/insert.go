package ordmap

import "sort"

// Insert stores value for key. If key is already present its value is
// overwritten in place and the previous value returned with ok=true; the
// entry keeps its position and no other entry moves. If key is absent a new
// entry is appended at position Len(). O(1) amortized.
func (m *Map[K, V]) Insert(key K, value V) (prev V, ok bool) {
	_, prev, ok = m.InsertFull(key, value)
	return prev, ok
}

// InsertFull is Insert, additionally returning the position the entry ended
// up at (the existing position on overwrite, Len()-1 on append).
func (m *Map[K, V]) InsertFull(key K, value V) (i int, prev V, ok bool) {
	idx := m.lazyIndex()
	if i, ok = idx.Get(key); ok {
		prev = m.entries[i].Value
		m.entries[i].Value = value
		return i, prev, true
	}
	i = len(m.entries)
	m.entries = append(m.entries, Pair[K, V]{Key: key, Value: value})
	idx.Put(key, i)
	return i, prev, false
}

// InsertSorted places key at its ordered position among the keys, found by
// binary search with cmp, shifting later entries to make room. The result is
// only guaranteed sorted if the map was already sorted by cmp; on an
// unsorted map the entry still lands at the binary search position, wherever
// that is. An existing equal key has its value overwritten.
func (m *Map[K, V]) InsertSorted(cmp func(a, b K) int, key K, value V) (i int, prev V, ok bool) {
	n := len(m.entries)
	i = sort.Search(n, func(j int) bool { return cmp(m.entries[j].Key, key) >= 0 })
	if i < n && cmp(m.entries[i].Key, key) == 0 && m.entries[i].Key == key {
		prev = m.entries[i].Value
		m.entries[i].Value = value
		return i, prev, true
	}
	return m.InsertBefore(i, key, value)
}

// ShiftInsert inserts key at exactly position i, shifting the entries at
// i and beyond up one position. If key is already present its value is
// overwritten and its entry moved to position i, preserving the relative
// order of all other entries.
//
// Panics if i is out of range: the valid range is 0..Len() inclusive for a
// new key, and 0..Len() exclusive when key is already present (there is no
// position Len() to move to).
func (m *Map[K, V]) ShiftInsert(i int, key K, value V) (prev V, ok bool) {
	n := len(m.entries)
	if cur, exists := m.lookup(key); exists {
		if i < 0 || i >= n {
			panicIndex("ShiftInsert", i, n)
		}
		prev = m.entries[cur].Value
		m.entries[cur].Value = value
		m.MoveIndex(cur, i)
		return prev, true
	}
	if i < 0 || i > n {
		panicIndex("ShiftInsert", i, n)
	}
	m.shiftInsertNew(i, key, value)
	return prev, false
}

// InsertBefore inserts key before the entry currently at position i, or at
// the end when i == Len(). If key is already present its value is
// overwritten and its entry moved; when its old position was below i the
// implicit removal shifts the target down, so the entry lands at i-1 rather
// than i. The position the entry ended up at is returned.
//
// Unlike ShiftInsert, every i in 0..Len() inclusive is valid whether or not
// the key exists.
//
// Panics if i is out of range.
func (m *Map[K, V]) InsertBefore(i int, key K, value V) (at int, prev V, ok bool) {
	n := len(m.entries)
	if i < 0 || i > n {
		panicIndex("InsertBefore", i, n)
	}
	if cur, exists := m.lookup(key); exists {
		if cur < i {
			// The move out of cur shifts everything above it down one, the
			// requested boundary included.
			i--
		}
		prev = m.entries[cur].Value
		m.entries[cur].Value = value
		m.MoveIndex(cur, i)
		return i, prev, true
	}
	m.shiftInsertNew(i, key, value)
	return i, prev, false
}

// MoveIndex moves the entry at position from to position to, shifting every
// entry between them one position toward from. The relative order of all
// other entries is preserved. Panics if either position is out of range.
func (m *Map[K, V]) MoveIndex(from, to int) {
	n := len(m.entries)
	if from < 0 || from >= n {
		panicIndex("MoveIndex", from, n)
	}
	if to < 0 || to >= n {
		panicIndex("MoveIndex", to, n)
	}
	if from == to {
		return
	}
	e := m.entries[from]
	if from < to {
		copy(m.entries[from:to], m.entries[from+1:to+1])
	} else {
		copy(m.entries[to+1:from+1], m.entries[to:from])
	}
	m.entries[to] = e
	if from < to {
		m.repair(from, to+1)
	} else {
		m.repair(to, from+1)
	}
}

// SwapIndices exchanges the entries at positions a and b, repairing exactly
// the two affected slots. Panics if either position is out of range.
func (m *Map[K, V]) SwapIndices(a, b int) {
	n := len(m.entries)
	if a < 0 || a >= n {
		panicIndex("SwapIndices", a, n)
	}
	if b < 0 || b >= n {
		panicIndex("SwapIndices", b, n)
	}
	if a == b {
		return
	}
	m.entries[a], m.entries[b] = m.entries[b], m.entries[a]
	idx := m.lazyIndex()
	idx.Put(m.entries[a].Key, a)
	idx.Put(m.entries[b].Key, b)
}

// shiftInsertNew inserts a key known to be absent at position i, 0 <= i <=
// len, shifting the tail up and repairing the shifted slots.
func (m *Map[K, V]) shiftInsertNew(i int, key K, value V) {
	m.entries = append(m.entries, Pair[K, V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Pair[K, V]{Key: key, Value: value}
	m.repair(i, len(m.entries))
}
