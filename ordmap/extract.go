package ordmap

import "iter"

// ExtractIf returns a single-use iterator that removes and yields, in order,
// every entry for which pred returns true. Entries are removed as the
// iterator is consumed; surviving entries keep their relative order.
//
// The iterator is single-pass and not restartable. If the caller stops
// early, the entries not yet visited are kept, and the store is compacted
// and every slot repaired before control returns: no half-shifted state is
// ever observable once the range statement exits. An iterator that is never
// consumed at all removes nothing.
//
// pred must not mutate the map, and no other mutation may interleave with
// the iteration.
func (m *Map[K, V]) ExtractIf(pred func(key K, value V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		idx := m.lazyIndex()
		stopped := false
		dst := 0
		for src := 0; src < len(m.entries); src++ {
			e := m.entries[src]
			if !stopped && pred(e.Key, e.Value) {
				idx.Delete(e.Key)
				if !yield(e.Key, e.Value) {
					stopped = true
				}
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
}
