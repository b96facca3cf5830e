package ordmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRemovePreservesOrder(t *testing.T) {
	tests := []struct {
		name      string
		remove    string
		wantOrder string
	}{
		{"first", "a", "b,c,d,e"},
		{"middle", "c", "a,b,d,e"},
		{"last", "e", "a,b,c,d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}})
			_, ok := m.ShiftRemove(tt.remove)
			require.True(t, ok)
			assert.Equal(t, tt.wantOrder, strings.Join(keysOf(m), ","))

			// The shifted tail's slots were repaired.
			for i := 0; i < m.Len(); i++ {
				k, _, _ := m.GetIndex(i)
				pos, ok := m.GetIndexOf(k)
				require.True(t, ok)
				require.Equal(t, i, pos)
			}
		})
	}
}

func TestShiftRemoveAbsentKey(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}})
	_, ok := m.ShiftRemove("zebra")
	require.False(t, ok, "absence is an ok=false result, never a panic")
	require.Equal(t, 1, m.Len())
}

func TestShiftRemoveFull(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}})
	i, k, v, ok := m.ShiftRemoveFull("b")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)
}

func TestSwapRemoveMovesOnlyTheLastEntry(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}})

	v, ok := m.SwapRemove("b")
	require.True(t, ok)
	require.Equal(t, 2, v)

	// Only e moved, into b's former position; everything else stayed put.
	require.Equal(t, []string{"a", "e", "c", "d"}, keysOf(m))

	i, _ := m.GetIndexOf("e")
	require.Equal(t, 1, i)
}

func TestSwapRemoveLastEntry(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}})
	v, ok := m.SwapRemove("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, []string{"a"}, keysOf(m))
}

func TestRemoveIndexVariants(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}})

	k, v, ok := m.ShiftRemoveIndex(1)
	require.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"a", "c", "d"}, keysOf(m))

	k, v, ok = m.SwapRemoveIndex(0)
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"d", "c"}, keysOf(m))

	_, _, ok = m.ShiftRemoveIndex(5)
	assert.False(t, ok)
	_, _, ok = m.SwapRemoveIndex(-1)
	assert.False(t, ok)
}

func TestPop(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}})

	k, v, ok := m.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)

	k, v, ok = m.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)

	_, _, ok = m.Pop()
	require.False(t, ok)
}

func TestTruncate(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}})

	m.Truncate(10) // beyond len is a no-op
	require.Equal(t, 4, m.Len())

	m.Truncate(2)
	require.Equal(t, []string{"a", "b"}, keysOf(m))
	require.False(t, m.Contains("c"))
	require.False(t, m.Contains("d"))

	// Truncated keys can come back, at the end.
	m.Insert("c", 30)
	require.Equal(t, []string{"a", "b", "c"}, keysOf(m))

	m.Truncate(0)
	require.Equal(t, 0, m.Len())
}

func TestSplitOff(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}})

	tail := m.SplitOff(1)
	require.Equal(t, []string{"a"}, keysOf(m))
	require.Equal(t, []string{"b", "c", "d"}, keysOf(tail))

	v, ok := tail.Get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
	i, ok := tail.GetIndexOf("d")
	require.True(t, ok)
	require.Equal(t, 2, i, "tail positions renumbered from zero")

	require.False(t, m.Contains("b"))

	require.Panics(t, func() { m.SplitOff(2) })
	require.NotPanics(t, func() { m.SplitOff(1) }, "at == Len() splits an empty tail")
}

func TestRetain(t *testing.T) {
	m := FromPairs([]Pair[string, int]{
		{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}, {"f", 6},
	})

	m.Retain(func(_ string, v int) bool { return v%2 == 0 })
	require.Equal(t, []string{"b", "d", "f"}, keysOf(m),
		"survivors keep their relative order")

	// The compaction repaired every surviving slot.
	for i := 0; i < m.Len(); i++ {
		k, _, _ := m.GetIndex(i)
		pos, ok := m.GetIndexOf(k)
		require.True(t, ok)
		require.Equal(t, i, pos)
	}
	require.False(t, m.Contains("a"))

	m.Retain(func(string, int) bool { return false })
	require.Equal(t, 0, m.Len())
}
