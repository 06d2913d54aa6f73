// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemap implements in-memory ordered maps with navigation
// queries and live range views.
//
// A [Map] is a red-black tree ordered by a comparison function.
// Besides the usual lookups it answers predecessor/successor queries
// (LowerKey, FloorKey, CeilingKey, HigherKey), removes its extremes
// (PollFirstEntry, PollLastEntry) and hands out [View]s: bounded,
// ascending or descending windows onto a key range that read and write
// the same tree. Views of views narrow, never widen.
//
// Cursors are fail-fast: a [Cursor] stops with [ErrConcurrentModification]
// once the map is structurally changed by anything but the cursor itself.
//
// A Map is not safe for concurrent use. Views, key sets and cursors refer
// to their map without owning it; they must not be used once the map is
// no longer in use by its owner.
package treemap

import (
	"cmp"
	"iter"
	"slices"

	"github.com/jba/treemap/rng"
)

// A Map is a map[K]V ordered according to a comparison function.
// The zero value of a Map is not meaningful since it has no comparison function.
// Use [New] or [NewFunc] to create a Map.
type Map[K, V any] struct {
	a        arena[K, V]
	root     nodeIndex
	size     int
	cmp      func(K, K) int
	modCount uint64
}

// New returns an empty Map[K, V] ordered according to K's standard Go ordering.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty Map[K, V] ordered according to cmp.
// cmp must be a strict weak ordering; keys it reports equal are the same key.
func NewFunc[K, V any](cmp func(K, K) int) *Map[K, V] {
	m := &Map[K, V]{cmp: cmp}
	m.a.init()
	return m
}

// NewFrom returns a new Map holding the entries of src,
// ordered the way src is ordered.
func NewFrom[K, V any](src Navigable[K, V]) *Map[K, V] {
	if sm, ok := src.(*Map[K, V]); ok {
		return sm.Clone()
	}
	m := NewFunc[K, V](src.Comparator())
	m.PutAll(src)
	return m
}

// full is the view of all of m.
func (m *Map[K, V]) full() View[K, V] {
	return View[K, V]{m: m, r: rng.Full[K]()}
}

// Comparator returns the comparison function that orders m.
func (m *Map[K, V]) Comparator() func(K, K) int { return m.cmp }

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty reports whether m has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if x := m.getNode(key); x != nilIndex {
		return m.a.at(x).val, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether m[key] exists.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.getNode(key) != nilIndex
}

// ContainsValueFunc reports whether some value in m satisfies match.
func (m *Map[K, V]) ContainsValueFunc(match func(V) bool) bool {
	for x := m.firstNode(); x != nilIndex; x = m.successor(x) {
		if match(m.a.at(x).val) {
			return true
		}
	}
	return false
}

// Put sets m[key] = val.
// If the entry was present, Put returns the former value and true.
// Otherwise it returns the zero value and false.
func (m *Map[K, V]) Put(key K, val V) (old V, replaced bool) {
	return m.insert(key, val)
}

// PutAll copies every entry of src into m.
func (m *Map[K, V]) PutAll(src Navigable[K, V]) {
	for k, v := range src.All() {
		m.insert(k, v)
	}
}

// Remove deletes m[key] if it exists, returning the former value and true.
// Removing a missing key changes nothing.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	x := m.getNode(key)
	if x == nilIndex {
		var zero V
		return zero, false
	}
	old := m.a.at(x).val
	m.deleteNode(x)
	return old, true
}

// Clear deletes every entry of m.
func (m *Map[K, V]) Clear() {
	m.a.reset()
	m.root = nilIndex
	m.size = 0
	m.modCount++
}

// FirstKey returns the smallest key in m.
// If m is empty, it returns [ErrNoSuchElement].
func (m *Map[K, V]) FirstKey() (K, error) {
	return keyOrErr(m, m.firstNode())
}

// LastKey returns the largest key in m.
// If m is empty, it returns [ErrNoSuchElement].
func (m *Map[K, V]) LastKey() (K, error) {
	return keyOrErr(m, m.lastNode())
}

func keyOrErr[K, V any](m *Map[K, V], x nodeIndex) (K, error) {
	if x == nilIndex {
		var zero K
		return zero, ErrNoSuchElement
	}
	return m.a.at(x).key, nil
}

// keyAt returns the key of x and whether x is a node.
func (m *Map[K, V]) keyAt(x nodeIndex) (K, bool) {
	if x == nilIndex {
		var zero K
		return zero, false
	}
	return m.a.at(x).key, true
}

// entryAt returns a detached entry for x and whether x is a node.
func (m *Map[K, V]) entryAt(x nodeIndex) (*Entry[K, V], bool) {
	if x == nilIndex {
		return nil, false
	}
	return m.detachedEntry(x), true
}

// FirstEntry returns the entry with the smallest key in m.
func (m *Map[K, V]) FirstEntry() (*Entry[K, V], bool) { return m.entryAt(m.firstNode()) }

// LastEntry returns the entry with the largest key in m.
func (m *Map[K, V]) LastEntry() (*Entry[K, V], bool) { return m.entryAt(m.lastNode()) }

// LowerKey returns the greatest key in m strictly less than key.
func (m *Map[K, V]) LowerKey(key K) (K, bool) { return m.keyAt(m.lowerNode(key)) }

// FloorKey returns the greatest key in m less than or equal to key.
func (m *Map[K, V]) FloorKey(key K) (K, bool) { return m.keyAt(m.floorNode(key)) }

// CeilingKey returns the least key in m greater than or equal to key.
func (m *Map[K, V]) CeilingKey(key K) (K, bool) { return m.keyAt(m.ceilingNode(key)) }

// HigherKey returns the least key in m strictly greater than key.
func (m *Map[K, V]) HigherKey(key K) (K, bool) { return m.keyAt(m.higherNode(key)) }

func (m *Map[K, V]) LowerEntry(key K) (*Entry[K, V], bool)   { return m.entryAt(m.lowerNode(key)) }
func (m *Map[K, V]) FloorEntry(key K) (*Entry[K, V], bool)   { return m.entryAt(m.floorNode(key)) }
func (m *Map[K, V]) CeilingEntry(key K) (*Entry[K, V], bool) { return m.entryAt(m.ceilingNode(key)) }
func (m *Map[K, V]) HigherEntry(key K) (*Entry[K, V], bool)  { return m.entryAt(m.higherNode(key)) }

// PollFirstEntry removes the entry with the smallest key and returns it.
// The returned entry is detached from m.
func (m *Map[K, V]) PollFirstEntry() (*Entry[K, V], bool) {
	return m.poll(m.firstNode())
}

// PollLastEntry removes the entry with the largest key and returns it.
// The returned entry is detached from m.
func (m *Map[K, V]) PollLastEntry() (*Entry[K, V], bool) {
	return m.poll(m.lastNode())
}

func (m *Map[K, V]) poll(x nodeIndex) (*Entry[K, V], bool) {
	if x == nilIndex {
		return nil, false
	}
	e := m.detachedEntry(x)
	m.deleteNode(x)
	return e, true
}

// SubMap returns a view of the keys of m from from to to,
// each end included as requested.
// If from is greater than to the view is empty.
func (m *Map[K, V]) SubMap(from K, fromInclusive bool, to K, toInclusive bool) View[K, V] {
	return View[K, V]{m: m, r: rng.Between(from, fromInclusive, to, toInclusive)}
}

// HeadMap returns a view of the keys of m less than to
// (or equal to it, if inclusive).
func (m *Map[K, V]) HeadMap(to K, inclusive bool) View[K, V] {
	r := rng.Below(to)
	if inclusive {
		r = rng.To(to)
	}
	return View[K, V]{m: m, r: r}
}

// TailMap returns a view of the keys of m greater than from
// (or equal to it, if inclusive).
func (m *Map[K, V]) TailMap(from K, inclusive bool) View[K, V] {
	r := rng.Above(from)
	if inclusive {
		r = rng.From(from)
	}
	return View[K, V]{m: m, r: r}
}

// Descending returns a view of m in descending key order.
func (m *Map[K, V]) Descending() View[K, V] {
	return View[K, V]{m: m, r: rng.Full[K]().Backwards()}
}

// DescendingKeySet returns the keys of m in descending order.
func (m *Map[K, V]) DescendingKeySet() KeySet[K, V] { return m.Descending().KeySet() }

// KeySet returns the keys of m.
func (m *Map[K, V]) KeySet() KeySet[K, V] { return m.full().KeySet() }

// EntrySet returns the entries of m.
func (m *Map[K, V]) EntrySet() EntrySet[K, V] { return m.full().EntrySet() }

// Values returns the values of m, in key order.
func (m *Map[K, V]) Values() Values[K, V] { return m.full().Values() }

// Cursor returns a cursor over m from smallest to largest key.
func (m *Map[K, V]) Cursor() *Cursor[K, V] { return newCursor(m.full()) }

// All returns an iterator over the map m from smallest to largest key.
// It panics with [ErrConcurrentModification] if m is structurally modified
// during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.full().All() }

// Backward returns an iterator over the map m from largest to smallest key.
// It panics with [ErrConcurrentModification] if m is structurally modified
// during the iteration.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] { return m.full().Backward() }

// Keys returns an iterator over the keys of m from smallest to largest.
func (m *Map[K, V]) Keys() iter.Seq[K] { return m.full().Keys() }

// String formats m like a Go map, in ascending key order.
func (m *Map[K, V]) String() string { return m.full().String() }

// Clone returns a copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m2 := &Map[K, V]{root: m.root, size: m.size, cmp: m.cmp}
	m2.a.nodes = slices.Clone(m.a.nodes)
	m2.a.free = slices.Clone(m.a.free)
	m2.a.nextGen = m.a.nextGen
	if len(m2.a.nodes) == 0 {
		m2.a.init()
	}
	return m2
}
