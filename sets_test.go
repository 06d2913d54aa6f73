// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySet(t *testing.T) {
	m := fiveKeys()
	ks := m.SubMap(2, true, 5, false).KeySet()
	assert.Equal(t, 3, ks.Len())
	assert.Equal(t, []int{2, 3, 4}, ks.Slice())
	assert.Equal(t, []int{4, 3, 2}, ks.Descending().Slice())
	assert.Equal(t, "[2 3 4]", ks.String())
	assert.True(t, ks.Contains(3))
	assert.False(t, ks.Contains(5), "5 is in the map but not the view")

	k, err := ks.First()
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	k, err = ks.Descending().First()
	require.NoError(t, err)
	assert.Equal(t, 4, k)

	assert.False(t, ks.Remove(5))
	assert.True(t, ks.Remove(3))
	assert.Equal(t, []int{1, 2, 4, 5}, m.KeySet().Slice())

	// The set is live.
	m.Put(3, "C")
	assert.Equal(t, []int{2, 3, 4}, ks.Slice())

	c := ks.Cursor()
	for c.Next() {
		if c.Key() != 3 {
			require.NoError(t, c.Remove())
		}
	}
	assert.Equal(t, []int{1, 3, 5}, m.KeySet().Slice())

	ks.Clear()
	assert.True(t, ks.IsEmpty())
	assert.Equal(t, []int{1, 5}, m.KeySet().Slice())
	_, err = ks.Last()
	assert.ErrorIs(t, err, ErrNoSuchElement)
	assert.Nil(t, ks.Slice())
	assert.Equal(t, "[]", ks.String())
}

func TestEntrySet(t *testing.T) {
	m := fiveKeys()
	es := m.HeadMap(3, true).EntrySet()
	assert.Equal(t, 3, es.Len())
	assert.Equal(t, "[1:A 2:B 3:C]", es.String())
	assert.Equal(t, "[3:C 2:B 1:A]", es.Descending().String())

	eq := func(a, b string) bool { return a == b }
	e, _ := m.LastEntry()
	assert.False(t, es.Contains(e, eq), "5 is outside the view")
	assert.False(t, es.Remove(e, eq))
	assert.True(t, m.ContainsKey(5))

	e, _ = m.FirstEntry()
	m.Put(1, "a")
	assert.False(t, es.Contains(e, eq), "value no longer matches")
	assert.False(t, es.Remove(e, eq))
	m.Put(1, "A")
	assert.True(t, es.Remove(e, eq))
	assert.Equal(t, 2, es.Len())

	for _, e := range es.Slice() {
		_, err := e.SetValue(e.Value() + e.Value())
		require.NoError(t, err)
	}
	assert.Equal(t, "map[2:BB 3:CC 4:D 5:E]", m.String())

	es.Clear()
	assert.True(t, es.IsEmpty())
	assert.Equal(t, 2, m.Len())
}

func TestValues(t *testing.T) {
	m := fiveKeys()
	vs := m.TailMap(3, false).Values()
	assert.Equal(t, 2, vs.Len())
	assert.Equal(t, []string{"D", "E"}, vs.Slice())
	assert.Equal(t, "[D E]", vs.String())
	assert.True(t, vs.ContainsFunc(func(v string) bool { return v == "E" }))
	assert.False(t, vs.ContainsFunc(func(v string) bool { return v == "A" }))

	c := vs.Cursor()
	for c.Next() {
		if c.Value() == "D" {
			require.NoError(t, c.Remove())
		}
	}
	require.NoError(t, c.Err())
	assert.Equal(t, []string{"A", "B", "C", "E"}, m.Values().Slice())

	vs.Clear()
	assert.True(t, vs.IsEmpty())
	assert.Equal(t, 3, m.Len())
}
