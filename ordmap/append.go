package ordmap

// Append moves every entry of other into m, keeping m's existing entries
// and order and adding other's entries after them in other's order. A key
// present in both keeps its position in m and takes other's value, the same
// last-wins contract as bulk construction. other is left empty but keeps
// its capacity for reuse.
//
// Appending a map to itself is a no-op.
func (m *Map[K, V]) Append(other *Map[K, V]) {
	if m == other {
		return
	}
	m.Reserve(len(other.entries))
	for _, e := range other.entries {
		m.Insert(e.Key, e.Value)
	}
	other.Clear()
}

// Extend inserts pairs in order, overwriting the values of keys already
// present in place.
func (m *Map[K, V]) Extend(pairs []Pair[K, V]) {
	m.Reserve(len(pairs))
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
}
