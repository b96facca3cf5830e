package ordmap

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func testSliceFixture() *Map[string, int] {
	return FromPairs([]Pair[string, int]{
		{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5},
	})
}

func TestSliceWindow(t *testing.T) {
	m := testSliceFixture()
	s := m.Slice(1, 4)

	assert.Equal(t, 3, s.Len())

	k, v := s.Get(0)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)
	assert.Equal(t, "d", s.Key(2))
	assert.Equal(t, 4, s.Value(2))

	var keys []string
	for k := range s.Keys() {
		keys = append(keys, k)
	}
	assert.DeepEqual(t, []string{"b", "c", "d"}, keys)

	keys = keys[:0]
	for k := range s.Backward() {
		keys = append(keys, k)
	}
	assert.DeepEqual(t, []string{"d", "c", "b"}, keys)

	assert.DeepEqual(t, []Pair[string, int]{{"b", 2}, {"c", 3}, {"d", 4}}, s.Pairs())
}

func TestSliceReslice(t *testing.T) {
	m := testSliceFixture()
	s := m.Slice(1, 5).Slice(1, 3)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "c", s.Key(0))
	assert.Equal(t, "d", s.Key(1))
}

func TestSliceBoundsPanic(t *testing.T) {
	m := testSliceFixture()

	mustPanic := func(name string, f func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			f()
		})
	}

	mustPanic("range end beyond len", func() { m.Slice(0, 6) })
	mustPanic("inverted range", func() { m.Slice(3, 1) })
	mustPanic("negative start", func() { m.Slice(-1, 2) })
	mustPanic("relative get out of window", func() { m.Slice(1, 3).Get(2) })
	mustPanic("negative relative get", func() { m.Slice(1, 3).Get(-1) })
}

func TestSliceSetValue(t *testing.T) {
	m := testSliceFixture()
	s := m.Slice(2, 4)
	s.SetValue(0, 30)

	v, ok := m.Get("c")
	assert.Assert(t, ok)
	assert.Equal(t, 30, v)

	i, ok := m.GetIndexOf("c")
	assert.Assert(t, ok)
	assert.Equal(t, 2, i, "in-place value writes move nothing")
}

func TestSliceSortRepairsOnlyTheWindow(t *testing.T) {
	m := FromPairs([]Pair[string, int]{
		{"z", 0}, {"d", 4}, {"b", 2}, {"c", 3}, {"a", 1},
	})
	s := m.Slice(1, 4)
	s.SortBy(func(ak string, _ int, bk string, _ int) int {
		return strings.Compare(ak, bk)
	})

	assert.DeepEqual(t, []string{"z", "b", "c", "d", "a"}, keysOf(m))

	// Inside and outside the window, every key resolves to its position.
	for i := 0; i < m.Len(); i++ {
		k, _, _ := m.GetIndex(i)
		pos, ok := m.GetIndexOf(k)
		assert.Assert(t, ok)
		assert.Equal(t, i, pos)
	}
}

func TestSliceBinarySearch(t *testing.T) {
	m := FromPairs([]Pair[string, int]{
		{"a", 1}, {"b", 2}, {"d", 4}, {"f", 6},
	})
	s := m.AsSlice()

	i, found := s.BinarySearchBy(func(k string, _ int) int { return strings.Compare(k, "d") })
	assert.Assert(t, found)
	assert.Equal(t, 2, i)

	i, found = s.BinarySearchBy(func(k string, _ int) int { return strings.Compare(k, "c") })
	assert.Assert(t, !found)
	assert.Equal(t, 2, i, "insertion point for an absent target")

	i, found = s.BinarySearchBy(func(k string, _ int) int { return strings.Compare(k, "zzz") })
	assert.Assert(t, !found)
	assert.Equal(t, 4, i)
}

func TestSliceIter(t *testing.T) {
	m := testSliceFixture()
	it := m.Slice(1, 4).Iter()

	k, _, ok := it.Next()
	assert.Assert(t, ok)
	assert.Equal(t, "b", k)
	k, _, ok = it.NextBack()
	assert.Assert(t, ok)
	assert.Equal(t, "d", k)
	k, _, ok = it.Next()
	assert.Assert(t, ok)
	assert.Equal(t, "c", k)
	_, _, ok = it.Next()
	assert.Assert(t, !ok)
}
