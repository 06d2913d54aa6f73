// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"fmt"
	"iter"
	"strings"
)

// A KeySet is the set of keys of a map or view, in the view's direction.
// It is live: it reflects later changes to the map, and removing a key
// from it removes the entry from the map.
type KeySet[K, V any] struct {
	v View[K, V]
}

func (s KeySet[K, V]) Len() int          { return s.v.Len() }
func (s KeySet[K, V]) IsEmpty() bool     { return s.v.IsEmpty() }
func (s KeySet[K, V]) Contains(k K) bool { return s.v.ContainsKey(k) }
func (s KeySet[K, V]) First() (K, error) { return s.v.FirstKey() }
func (s KeySet[K, V]) Last() (K, error)  { return s.v.LastKey() }
func (s KeySet[K, V]) Clear()            { s.v.Clear() }

// Remove removes k and its value from the map, reporting whether k was present.
func (s KeySet[K, V]) Remove(k K) bool {
	_, ok := s.v.Remove(k)
	return ok
}

// Descending returns the same keys in the opposite order.
func (s KeySet[K, V]) Descending() KeySet[K, V] { return KeySet[K, V]{v: s.v.Descending()} }

// Cursor returns a cursor over the set. Its Remove removes from the map.
func (s KeySet[K, V]) Cursor() *Cursor[K, V] { return newCursor(s.v) }

func (s KeySet[K, V]) All() iter.Seq[K] { return s.v.Keys() }

// Slice returns the keys in order in a new slice.
func (s KeySet[K, V]) Slice() []K {
	var keys []K
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

func (s KeySet[K, V]) String() string { return formatSeq(s.All()) }

// An EntrySet is the set of entries of a map or view, in the view's direction.
// The entries it yields are live.
type EntrySet[K, V any] struct {
	v View[K, V]
}

func (s EntrySet[K, V]) Len() int      { return s.v.Len() }
func (s EntrySet[K, V]) IsEmpty() bool { return s.v.IsEmpty() }
func (s EntrySet[K, V]) Clear()        { s.v.Clear() }

// Contains reports whether the set holds an entry with e's key whose
// value is equal to e's value according to eq.
func (s EntrySet[K, V]) Contains(e *Entry[K, V], eq func(V, V) bool) bool {
	v, ok := s.v.Get(e.Key())
	return ok && eq(v, e.Value())
}

// Remove removes the entry matching e, as determined by Contains,
// from the map and reports whether there was one.
func (s EntrySet[K, V]) Remove(e *Entry[K, V], eq func(V, V) bool) bool {
	if !s.Contains(e, eq) {
		return false
	}
	_, ok := s.v.Remove(e.Key())
	return ok
}

func (s EntrySet[K, V]) Descending() EntrySet[K, V] { return EntrySet[K, V]{v: s.v.Descending()} }

// Cursor returns a cursor over the set. Its Remove removes from the map.
func (s EntrySet[K, V]) Cursor() *Cursor[K, V] { return newCursor(s.v) }

// All returns an iterator over the live entries of the set.
// It panics with [ErrConcurrentModification] if the map is structurally
// modified during the iteration.
func (s EntrySet[K, V]) All() iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		c := newCursor(s.v)
		for c.Next() {
			if !yield(c.Entry()) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}

// Slice returns the live entries in order in a new slice.
func (s EntrySet[K, V]) Slice() []*Entry[K, V] {
	var es []*Entry[K, V]
	for e := range s.All() {
		es = append(es, e)
	}
	return es
}

func (s EntrySet[K, V]) String() string { return formatSeq(s.All()) }

// Values is the collection of the values of a map or view,
// in the key order of the view.
type Values[K, V any] struct {
	v View[K, V]
}

func (s Values[K, V]) Len() int      { return s.v.Len() }
func (s Values[K, V]) IsEmpty() bool { return s.v.IsEmpty() }
func (s Values[K, V]) Clear()        { s.v.Clear() }

// ContainsFunc reports whether some value satisfies match.
func (s Values[K, V]) ContainsFunc(match func(V) bool) bool {
	return s.v.ContainsValueFunc(match)
}

// Cursor returns a cursor over the values. Its Remove removes from the map.
func (s Values[K, V]) Cursor() *Cursor[K, V] { return newCursor(s.v) }

func (s Values[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.v.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the values in key order in a new slice.
func (s Values[K, V]) Slice() []V {
	var vals []V
	for v := range s.All() {
		vals = append(vals, v)
	}
	return vals
}

func (s Values[K, V]) String() string { return formatSeq(s.All()) }

func formatSeq[T any](seq iter.Seq[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	sep := ""
	for x := range seq {
		fmt.Fprintf(&b, "%s%v", sep, x)
		sep = " "
	}
	b.WriteByte(']')
	return b.String()
}
