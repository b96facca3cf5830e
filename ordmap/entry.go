package ordmap

// Entry is a short-lived handle for a key's slot, resolved with a single
// probe of the slot index. It is either occupied (the key is present and the
// handle knows its position) or vacant (the key is absent), and it lets a
// lookup-then-mutate sequence avoid probing twice.
//
// A handle is invalidated by any other mutation of the same map, including
// mutations through a second handle. Resolve, use, discard.
type Entry[K comparable, V any] struct {
	m        *Map[K, V]
	key      K
	index    int
	occupied bool
}

// Entry resolves key to a handle in the occupied or vacant state.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	e := Entry[K, V]{m: m, key: key}
	e.index, e.occupied = m.lookup(key)
	return e
}

// Occupied reports whether the key was present when the handle was resolved.
func (e *Entry[K, V]) Occupied() bool {
	return e.occupied
}

// Key returns the key the handle was resolved for.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Index returns the position an occupied entry holds, or the position a
// vacant entry would be appended at (the current length).
func (e *Entry[K, V]) Index() int {
	if e.occupied {
		return e.index
	}
	return e.m.Len()
}

// Value returns the stored value of an occupied entry.
func (e *Entry[K, V]) Value() (V, bool) {
	if !e.occupied {
		var zero V
		return zero, false
	}
	return e.m.entries[e.index].Value, true
}

// OrInsert appends def when the handle is vacant, transitioning it to
// occupied. Either way it returns a pointer to the value in the store, valid
// until the next mutation of the map.
func (e *Entry[K, V]) OrInsert(def V) *V {
	if !e.occupied {
		e.insertVacant(def)
	}
	return &e.m.entries[e.index].Value
}

// OrInsertWith is OrInsert with a lazily constructed default; f runs only
// when the handle is vacant.
func (e *Entry[K, V]) OrInsertWith(f func() V) *V {
	if !e.occupied {
		e.insertVacant(f())
	}
	return &e.m.entries[e.index].Value
}

// AndModify applies f to the stored value when the handle is occupied, and
// does nothing otherwise. It returns the handle for chaining with OrInsert.
func (e *Entry[K, V]) AndModify(f func(v *V)) *Entry[K, V] {
	if e.occupied {
		f(&e.m.entries[e.index].Value)
	}
	return e
}

// Set stores value through the handle: an occupied entry has its value
// overwritten in place and the previous value is returned, a vacant entry is
// appended and the handle transitions to occupied.
func (e *Entry[K, V]) Set(value V) (prev V, ok bool) {
	if e.occupied {
		prev = e.m.entries[e.index].Value
		e.m.entries[e.index].Value = value
		return prev, true
	}
	e.insertVacant(value)
	return prev, false
}

// ShiftRemove removes an occupied entry preserving order, consuming the
// handle. A vacant handle returns ok=false.
func (e *Entry[K, V]) ShiftRemove() (V, bool) {
	if !e.occupied {
		var zero V
		return zero, false
	}
	_, v := e.m.shiftRemoveAt(e.index)
	e.occupied = false
	return v, true
}

// SwapRemove removes an occupied entry in O(1), moving the last entry into
// its position, consuming the handle. A vacant handle returns ok=false.
func (e *Entry[K, V]) SwapRemove() (V, bool) {
	if !e.occupied {
		var zero V
		return zero, false
	}
	_, v := e.m.swapRemoveAt(e.index)
	e.occupied = false
	return v, true
}

func (e *Entry[K, V]) insertVacant(value V) {
	m := e.m
	e.index = len(m.entries)
	m.entries = append(m.entries, Pair[K, V]{Key: e.key, Value: value})
	m.lazyIndex().Put(e.key, e.index)
	e.occupied = true
}
