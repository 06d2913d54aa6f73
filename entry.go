// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// An Entry is a key/value pair of a map.
//
// Entries returned by navigation methods (FirstEntry, CeilingEntry, ...)
// and by the Poll methods are detached snapshots: they never reach back
// into the map, and SetValue fails with [ErrDetachedEntry].
// Entries produced by an [EntrySet] or by [Cursor.Entry] are live:
// SetValue writes through to the map for as long as the entry's
// node remains in it.
type Entry[K, V any] struct {
	key K
	val V

	m   *Map[K, V] // nil if detached
	idx nodeIndex
	gen uint64
}

func (m *Map[K, V]) detachedEntry(x nodeIndex) *Entry[K, V] {
	n := m.a.at(x)
	return &Entry[K, V]{key: n.key, val: n.val}
}

func (m *Map[K, V]) liveEntry(x nodeIndex) *Entry[K, V] {
	n := m.a.at(x)
	return &Entry[K, V]{key: n.key, val: n.val, m: m, idx: x, gen: n.gen}
}

// node returns the entry's node, or nil if the entry is detached
// or its node has left the map.
func (e *Entry[K, V]) node() *node[K, V] {
	if e.m == nil || !e.m.a.live(e.idx, e.gen) {
		return nil
	}
	// Deleting a node with two children moves its successor's
	// data into its slot.
	n := e.m.a.at(e.idx)
	if e.m.cmp(n.key, e.key) != 0 {
		return nil
	}
	return n
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value.
// For a live entry this is the value currently in the map;
// once detached, it is the last value seen.
func (e *Entry[K, V]) Value() V {
	if n := e.node(); n != nil {
		e.val = n.val
	}
	return e.val
}

// SetValue replaces the entry's value in the map and returns the former value.
func (e *Entry[K, V]) SetValue(val V) (V, error) {
	n := e.node()
	if n == nil {
		var zero V
		return zero, errors.Wrapf(ErrDetachedEntry, "set value of key %v", e.key)
	}
	old := n.val
	n.val = val
	e.val = val
	return old, nil
}

// IsDetached reports whether writes through e would fail.
func (e *Entry[K, V]) IsDetached() bool { return e.node() == nil }

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.key, e.Value())
}
