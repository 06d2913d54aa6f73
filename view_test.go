// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveKeys() *Map[int, string] {
	m := New[int, string]()
	for i, s := range []string{"A", "B", "C", "D", "E"} {
		m.Put(i+1, s)
	}
	return m
}

func keysOf[K, V any](v Navigable[K, V]) []K {
	return slices.Collect(v.Keys())
}

func TestSubMapContents(t *testing.T) {
	m := fiveKeys()
	sm := m.SubMap(2, true, 4, false)
	assert.Equal(t, []int{2, 3}, keysOf[int, string](sm))
	assert.Equal(t, 2, sm.Len())
	k, err := sm.FirstKey()
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	k, err = sm.LastKey()
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	require.True(t, sm.KeySet().Remove(2))
	assert.False(t, m.ContainsKey(2))
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 1, sm.Len())
	assert.Equal(t, []int{3}, keysOf[int, string](sm))

	_, _, err = sm.Put(2, "B")
	require.NoError(t, err)
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, []int{2, 3}, keysOf[int, string](sm))

	_, ok := sm.Remove(4)
	assert.False(t, ok, "4 is outside the view")
	assert.True(t, m.ContainsKey(4))
}

func TestSubMapContents2(t *testing.T) {
	m := fiveKeys()
	sm := m.SubMap(2, true, 3, false)
	assert.Equal(t, []int{2}, keysOf[int, string](sm))
	_, ok := sm.CeilingKey(3)
	assert.False(t, ok)
	k, _ := sm.FloorKey(5)
	assert.Equal(t, 2, k)

	sm.PollFirstEntry()
	assert.True(t, sm.IsEmpty())
	assert.Equal(t, 4, m.Len())
	_, err := sm.FirstKey()
	assert.ErrorIs(t, err, ErrNoSuchElement)

	_, _, err = sm.Put(3, "C")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHeadMapContents(t *testing.T) {
	m := fiveKeys()
	hm := m.HeadMap(4, false)
	assert.Equal(t, []int{1, 2, 3}, keysOf[int, string](hm))
	assert.True(t, hm.ContainsKey(3))
	assert.False(t, hm.ContainsKey(4))
	hm.Clear()
	assert.True(t, hm.IsEmpty())
	assert.Equal(t, []int{4, 5}, keysOf[int, string](m))

	assert.Equal(t, []int{4, 5}, keysOf[int, string](m.HeadMap(5, true)))
}

func TestTailMapContents(t *testing.T) {
	m := fiveKeys()
	tm := m.TailMap(2, false)
	assert.Equal(t, []int{3, 4, 5}, keysOf[int, string](tm))
	assert.Equal(t, []int{2, 3, 4, 5}, keysOf[int, string](m.TailMap(2, true)))

	e, ok := tm.PollLastEntry()
	require.True(t, ok)
	assert.Equal(t, 5, e.Key())
	tm.Clear()
	assert.Equal(t, []int{1, 2}, keysOf[int, string](m))
}

func TestDescendingContents(t *testing.T) {
	m := fiveKeys()
	d := m.Descending()
	assert.Equal(t, []int{5, 4, 3, 2, 1}, keysOf[int, string](d))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, keysOf[int, string](d.Descending()))

	k, _ := d.FirstKey()
	assert.Equal(t, 5, k)
	k, _ = d.LastKey()
	assert.Equal(t, 1, k)

	// Navigation reads "lower" as "earlier in the view".
	k, _ = d.LowerKey(3)
	assert.Equal(t, 4, k)
	k, _ = d.HigherKey(3)
	assert.Equal(t, 2, k)
	k, _ = d.CeilingKey(6)
	assert.Equal(t, 5, k, "6 comes before every key of the descending view")
	_, ok := d.FloorKey(6)
	assert.False(t, ok)
	k, _ = d.FloorKey(0)
	assert.Equal(t, 1, k)

	// Bounds are read in the view's direction.
	assert.Equal(t, []int{4, 3}, keysOf[int, string](d.SubMap(4, true, 2, false)))
	assert.Equal(t, []int{5, 4}, keysOf[int, string](d.HeadMap(3, false)))
	assert.Equal(t, []int{3, 2, 1}, keysOf[int, string](d.TailMap(3, true)))

	assert.Positive(t, d.Comparator()(1, 2))

	e, _ := d.PollFirstEntry()
	assert.Equal(t, 5, e.Key())
	e, _ = d.PollLastEntry()
	assert.Equal(t, 1, e.Key())
	assert.Equal(t, []int{2, 3, 4}, keysOf[int, string](m))
}

func TestEmptyAndInvertedRanges(t *testing.T) {
	m := fiveKeys()
	for _, v := range []View[int, string]{
		m.SubMap(4, true, 2, true),
		m.SubMap(3, false, 3, false),
		m.SubMap(3, true, 3, false),
		m.HeadMap(1, false),
		m.TailMap(5, false),
	} {
		assert.True(t, v.IsEmpty(), "%s", v.Range())
		assert.Equal(t, 0, v.Len())
		_, ok := v.FirstEntry()
		assert.False(t, ok)
		_, ok = v.PollLastEntry()
		assert.False(t, ok)
		_, ok = v.CeilingKey(0)
		assert.False(t, ok)
		_, ok = v.FloorKey(10)
		assert.False(t, ok)
	}
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, []int{3}, keysOf[int, string](m.SubMap(3, true, 3, true)))
}

func TestViewPutOutOfRange(t *testing.T) {
	m := fiveKeys()
	v := m.SubMap(2, true, 4, true)
	for _, k := range []int{0, 1, 5, 6} {
		_, _, err := v.Put(k, "X")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange), "Put(%d): %v", k, err)
	}
	assert.Equal(t, 5, m.Len())
	_, ok := m.Get(0)
	assert.False(t, ok)

	old, replaced, err := v.Put(3, "c")
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, "C", old)
	got, _ := m.Get(3)
	assert.Equal(t, "c", got)
}

func TestViewPutAllIsAllOrNothing(t *testing.T) {
	m := New[int, string]()
	v := m.SubMap(0, true, 10, false)

	src := New[int, string]()
	src.Put(1, "a")
	src.Put(11, "k")
	err := v.PutAll(src)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, m.IsEmpty())

	src.Remove(11)
	src.Put(9, "i")
	require.NoError(t, v.PutAll(src))
	assert.Equal(t, []int{1, 9}, keysOf[int, string](m))
}

func TestNestedViewsClamp(t *testing.T) {
	m := New[int, int]()
	for i := range 20 {
		m.Put(i, i)
	}
	v := m.SubMap(5, true, 15, false)

	// Arguments beyond the parent's bounds are clamped, not widened.
	assert.Equal(t, keysOf[int, int](v), keysOf[int, int](v.SubMap(0, true, 100, true)))
	assert.Equal(t, keysOf[int, int](v), keysOf[int, int](v.HeadMap(100, false)))
	assert.Equal(t, keysOf[int, int](v), keysOf[int, int](v.TailMap(-100, true)))

	w := v.SubMap(7, false, 12, true)
	assert.Equal(t, []int{8, 9, 10, 11, 12}, keysOf[int, int](w))
	x := w.TailMap(10, true).HeadMap(12, false)
	assert.Equal(t, []int{10, 11}, keysOf[int, int](x))
	_, _, err := x.Put(12, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	d := w.Descending()
	assert.Equal(t, []int{12, 11, 10, 9, 8}, keysOf[int, int](d))
	assert.Equal(t, []int{12, 11, 10, 9, 8}, keysOf[int, int](d.SubMap(100, true, 0, true)))
	assert.Equal(t, []int{11, 10}, keysOf[int, int](d.SubMap(11, true, 9, false)))
	assert.Equal(t, []int{9, 8}, keysOf[int, int](d.TailMap(9, true)))
	assert.Equal(t, []int{12, 11, 10}, keysOf[int, int](d.HeadMap(9, false)))

	// Changes through the innermost view are seen everywhere.
	x.Clear()
	assert.Equal(t, []int{8, 9, 12}, keysOf[int, int](w))
	assert.Equal(t, 18, m.Len())
	assert.Equal(t, 8, v.Len())
}

// Direction-aware navigation on every view over a small map must agree
// with the reference functions restricted to the view's keys.
func TestViewNavigation(t *testing.T) {
	const N = 7
	m := New[int, int]()
	all := []int{1, 2, 4, 5}
	for _, k := range all {
		m.Put(k, k)
	}
	for lo, hi := range bounds(N) {
		r := newRange(lo, hi)
		var keys []int
		for _, k := range all {
			if r.Contains(m.cmp, k) {
				keys = append(keys, k)
			}
		}
		for _, desc := range []bool{false, true} {
			v := NewView(m, r)
			if desc {
				v = v.Descending()
			}
			for k := -1; k <= N; k++ {
				lower, floor := refLower(keys, k), refFloor(keys, k)
				ceiling, higher := refCeiling(keys, k), refHigher(keys, k)
				if desc {
					lower, floor, ceiling, higher = higher, ceiling, floor, lower
				}
				for _, test := range []struct {
					name string
					f    func(int) (int, bool)
					want int
				}{
					{"LowerKey", v.LowerKey, lower},
					{"FloorKey", v.FloorKey, floor},
					{"CeilingKey", v.CeilingKey, ceiling},
					{"HigherKey", v.HigherKey, higher},
				} {
					got, ok := test.f(k)
					if !ok {
						got = -1
					}
					assert.Equal(t, test.want, got, "%s %s(%d)", v.Range(), test.name, k)
				}
			}
		}
	}
}

func TestViewComparatorMatchesIteration(t *testing.T) {
	m := fiveKeys()
	for _, v := range []View[int, string]{m.full(), m.Descending(), m.SubMap(1, true, 4, true).Descending()} {
		keys := keysOf[int, string](v)
		assert.True(t, slices.IsSortedFunc(keys, v.Comparator()), "%s", v.Range())
	}
}

func TestViewString(t *testing.T) {
	m := fiveKeys()
	assert.Equal(t, "map[2:B 3:C]", m.SubMap(2, true, 4, false).String())
	assert.Equal(t, "map[3:C 2:B]", m.SubMap(2, true, 4, false).Descending().String())
	assert.Equal(t, "map[]", m.SubMap(9, true, 10, false).String())
}
