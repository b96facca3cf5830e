package ordset

import (
	"encoding/json"
	"hash/maphash"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func membersOf[T comparable](s *Set[T]) []T {
	return s.Members()
}

func TestInsertAndOrder(t *testing.T) {
	s := New[string]()
	require.True(t, s.Insert("a"))
	require.True(t, s.Insert("b"))
	require.False(t, s.Insert("a"), "re-inserting an existing member is a no-op")

	require.Equal(t, 2, s.Len())
	require.Equal(t, []string{"a", "b"}, membersOf(s))

	i, added := s.InsertFull("c")
	require.True(t, added)
	require.Equal(t, 2, i)

	i, added = s.InsertFull("a")
	require.False(t, added)
	require.Equal(t, 0, i, "the existing member keeps its position")
}

func TestZeroValueSetUsable(t *testing.T) {
	var s Set[int]
	require.False(t, s.Contains(1))
	require.True(t, s.Insert(1))
	require.Equal(t, 1, s.Len())
}

func TestFromSliceCollapsesDuplicates(t *testing.T) {
	s := FromSlice([]string{"b", "a", "b", "c", "a"})
	require.Equal(t, []string{"b", "a", "c"}, membersOf(s),
		"duplicates keep the position of their first occurrence")
}

func TestPositionalAccess(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})

	v, ok := s.GetIndex(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = s.GetIndex(3)
	assert.False(t, ok)

	i, ok := s.GetIndexOf("c")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, "a", first)
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, "c", last)
}

func TestShiftRemoveVsSwapRemove(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c", "d"})
	require.True(t, s.ShiftRemove("b"))
	require.Equal(t, []string{"a", "c", "d"}, membersOf(s))

	require.True(t, s.SwapRemove("a"))
	require.Equal(t, []string{"d", "c"}, membersOf(s),
		"the last member moved into the vacated position")

	require.False(t, s.ShiftRemove("zebra"))
}

func TestTakeVariantsReturnTheStoredMember(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})

	v, ok := s.ShiftTake("b")
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = s.ShiftTake("b")
	require.False(t, ok)

	v, ok = s.SwapTake("a")
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, []string{"c"}, membersOf(s))
}

func TestSetPositionalInsertion(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})

	require.True(t, s.ShiftInsert(0, "x"))
	require.Equal(t, []string{"x", "a", "b", "c"}, membersOf(s))

	// Moving an existing member down shifts the target like the map does.
	at, added := s.InsertBefore(4, "x")
	require.False(t, added)
	require.Equal(t, 3, at)
	require.Equal(t, []string{"a", "b", "c", "x"}, membersOf(s))
}

func TestSetPopRetainTruncate(t *testing.T) {
	s := FromSlice([]string{"a", "bb", "c", "dd", "e"})

	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, "e", v)

	s.Retain(func(v string) bool { return len(v) == 1 })
	require.Equal(t, []string{"a", "c"}, membersOf(s))

	s.Truncate(1)
	require.Equal(t, []string{"a"}, membersOf(s))
}

func TestSetSplitOffAndAppend(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c", "d"})
	tail := s.SplitOff(2)

	require.Equal(t, []string{"a", "b"}, membersOf(s))
	require.Equal(t, []string{"c", "d"}, membersOf(tail))

	s.Append(tail)
	require.Equal(t, []string{"a", "b", "c", "d"}, membersOf(s))
	require.Equal(t, 0, tail.Len())
}

func TestSetSortAndSearch(t *testing.T) {
	s := FromSlice([]string{"d", "a", "c", "b"})
	require.False(t, IsSorted(s))

	Sort(s)
	require.Equal(t, []string{"a", "b", "c", "d"}, membersOf(s))
	require.True(t, IsSorted(s))

	i, found := s.BinarySearchBy(func(v string) int { return strings.Compare(v, "c") })
	require.True(t, found)
	require.Equal(t, 2, i)

	i, found = s.BinarySearchBy(func(v string) int { return strings.Compare(v, "bb") })
	require.False(t, found)
	require.Equal(t, 2, i)

	// Lookups still resolve after the reorder.
	for want := 0; want < s.Len(); want++ {
		v, _ := s.GetIndex(want)
		got, ok := s.GetIndexOf(v)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestSetReverseMoveSwap(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c", "d"})

	s.Reverse()
	require.Equal(t, []string{"d", "c", "b", "a"}, membersOf(s))

	s.MoveIndex(0, 3)
	require.Equal(t, []string{"c", "b", "a", "d"}, membersOf(s))

	s.SwapIndices(0, 1)
	require.Equal(t, []string{"b", "c", "a", "d"}, membersOf(s))
}

func TestSetExtractIf(t *testing.T) {
	s := FromSlice([]string{"a", "bb", "c", "dd"})

	var got []string
	for v := range s.ExtractIf(func(v string) bool { return len(v) == 2 }) {
		got = append(got, v)
	}
	require.Equal(t, []string{"bb", "dd"}, got)
	require.Equal(t, []string{"a", "c"}, membersOf(s))
}

func TestSetIterDoubleEnded(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})
	it := s.Iter()

	v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "a", v)
	v, ok = it.NextBack()
	require.True(t, ok)
	require.Equal(t, "c", v)
	require.Equal(t, 1, it.Len())
	v, ok = it.NextBack()
	require.True(t, ok)
	require.Equal(t, "b", v)
	_, ok = it.Next()
	require.False(t, ok)
}

func TestSetSliceView(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c", "d", "e"})
	sl := s.Slice(1, 4)

	require.Equal(t, 3, sl.Len())
	require.Equal(t, "b", sl.Get(0))
	require.Equal(t, []string{"b", "c", "d"}, sl.Members())

	var back []string
	for v := range sl.Backward() {
		back = append(back, v)
	}
	require.Equal(t, []string{"d", "c", "b"}, back)

	require.Panics(t, func() { s.Slice(0, 6) })
	require.Panics(t, func() { sl.Get(3) })
}

func TestSetJSONRoundTrip(t *testing.T) {
	s := FromSlice([]string{"c", "a", "b"})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["c","a","b"]`, string(data))

	var back Set[string]
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, Equal(s, &back))

	var dup Set[string]
	require.NoError(t, json.Unmarshal([]byte(`["b","a","b"]`), &dup))
	require.Equal(t, []string{"b", "a"}, membersOf(&dup))
}

func TestSetEqualCompareHash(t *testing.T) {
	a := FromSlice([]string{"x", "y"})
	b := FromSlice([]string{"y", "x"})

	require.False(t, Equal(a, b), "same members, different order: not equal")
	b.MoveIndex(1, 0)
	require.True(t, Equal(a, b))

	require.Equal(t, 0, Compare(a, b))
	require.Equal(t, -1, Compare(FromSlice([]string{"a"}), FromSlice([]string{"b"})))
	require.Equal(t, -1, Compare(FromSlice([]string{"a"}), FromSlice([]string{"a", "b"})))

	seed := maphash.MakeSeed()
	require.Equal(t, Hash(seed, a), Hash(seed, b))
	b.Reverse()
	require.NotEqual(t, Hash(seed, a), Hash(seed, b))
}
