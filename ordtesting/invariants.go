package ordtesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indexmap-rs/ordermap/ordmap"
)

// RequireInvariants checks, through the public API alone, the consistency
// contract between a Map's dense store and its slot index:
//
//   - every position in 0..Len() holds exactly one entry, readable both
//     positionally and by key
//   - every key resolves back to the position it is stored at (the
//     position<->key bijection)
//   - no key appears at two positions
//   - iteration visits exactly the positional sequence
//   - positions outside 0..Len() report absence, not entries
func RequireInvariants[K comparable, V any](t *testing.T, m *ordmap.Map[K, V]) {
	t.Helper()

	n := m.Len()
	seen := make(map[K]struct{}, n)
	i := 0
	for k, v := range m.All() {
		pk, pv, ok := m.GetIndex(i)
		require.True(t, ok, "position %d readable during iteration", i)
		require.Equal(t, k, pk, "iteration and positional key agree at %d", i)
		require.Equal(t, v, pv, "iteration and positional value agree at %d", i)

		pos, ok := m.GetIndexOf(k)
		require.True(t, ok, "key at position %d resolves", i)
		require.Equal(t, i, pos, "slot for key at position %d points back", i)

		got, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, v, got)

		_, dup := seen[k]
		require.False(t, dup, "key appears at two positions")
		seen[k] = struct{}{}
		i++
	}
	require.Equal(t, n, i, "iteration count equals Len")

	_, _, ok := m.GetIndex(n)
	require.False(t, ok, "position Len() is out of range")
	_, _, ok = m.GetIndex(-1)
	require.False(t, ok, "negative positions are out of range")
}
