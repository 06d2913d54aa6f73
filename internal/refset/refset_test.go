// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDelete(t *testing.T) {
	s := New(130)
	assert.Equal(t, 130, s.Cap())
	assert.True(t, s.Add(0))
	assert.False(t, s.Add(0))
	assert.True(t, s.Add(64))
	assert.True(t, s.Add(129))
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(64))
	assert.False(t, s.Has(63))
	assert.False(t, s.Has(-1))
	assert.False(t, s.Has(130))

	assert.True(t, s.Delete(64))
	assert.False(t, s.Delete(64))
	assert.False(t, s.Delete(500))
	assert.Equal(t, 2, s.Len())

	assert.Panics(t, func() { s.Add(130) })
}

func TestNextPrev(t *testing.T) {
	s := New(200)
	for _, i := range []int{3, 63, 64, 150} {
		s.Add(i)
	}
	for _, test := range []struct {
		i, next, prev int
	}{
		{-5, 3, -1},
		{0, 3, -1},
		{3, 3, 3},
		{4, 63, 3},
		{63, 63, 63},
		{64, 64, 64},
		{65, 150, 64},
		{150, 150, 150},
		{151, -1, 150},
		{199, -1, 150},
		{1000, -1, 150},
	} {
		assert.Equal(t, test.next, s.Next(test.i), "Next(%d)", test.i)
		assert.Equal(t, test.prev, s.Prev(test.i), "Prev(%d)", test.i)
	}

	empty := New(0)
	assert.Equal(t, -1, empty.Next(0))
	assert.Equal(t, -1, empty.Prev(5))
}

// The window navigation must match a linear scan.
func TestWindow(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	const n = 100
	s := New(n)
	for range 40 {
		s.Add(r.IntN(n))
	}
	scan := func(w Window, k int, pred func(x, k int) bool, fromTop bool) int {
		best := -1
		for x := w.Min; x <= w.Max; x++ {
			if s.Has(x) && pred(x, k) {
				if best < 0 || fromTop {
					best = x
				}
			}
		}
		return best
	}
	lt := func(x, k int) bool { return x < k }
	le := func(x, k int) bool { return x <= k }
	ge := func(x, k int) bool { return x >= k }
	gt := func(x, k int) bool { return x > k }

	for range 50 {
		lo, hi := r.IntN(n), r.IntN(n)
		if lo > hi {
			lo, hi = hi, lo
		}
		asc := Window{Set: s, Min: lo, Max: hi, Ascending: true}
		desc := asc
		desc.Ascending = false
		for k := lo - 2; k <= hi+2; k++ {
			require.Equal(t, scan(asc, k, lt, true), asc.Lower(k), "Lower(%d) in [%d, %d]", k, lo, hi)
			require.Equal(t, scan(asc, k, le, true), asc.Floor(k))
			require.Equal(t, scan(asc, k, ge, false), asc.Ceiling(k))
			require.Equal(t, scan(asc, k, gt, false), asc.Higher(k))

			require.Equal(t, asc.Higher(k), desc.Lower(k))
			require.Equal(t, asc.Ceiling(k), desc.Floor(k))
			require.Equal(t, asc.Floor(k), desc.Ceiling(k))
			require.Equal(t, asc.Lower(k), desc.Higher(k))
		}
		assert.Equal(t, asc.First(), desc.Last())
		assert.Equal(t, asc.Last(), desc.First())
	}

	empty := Window{Set: s, Min: 10, Max: 9, Ascending: true}
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, -1, empty.First())
	assert.Equal(t, -1, empty.Last())
}
