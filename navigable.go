// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "iter"

// Navigable is the ordered-map contract shared by *[Map] and [View].
//
// Put is not part of it: a Map accepts any key, while a View may refuse
// keys outside its bounds and so reports an error.
type Navigable[K, V any] interface {
	Comparator() func(K, K) int
	Len() int
	IsEmpty() bool
	Get(key K) (V, bool)
	ContainsKey(key K) bool
	ContainsValueFunc(match func(V) bool) bool
	Remove(key K) (V, bool)
	Clear()

	FirstKey() (K, error)
	LastKey() (K, error)
	FirstEntry() (*Entry[K, V], bool)
	LastEntry() (*Entry[K, V], bool)
	LowerKey(key K) (K, bool)
	FloorKey(key K) (K, bool)
	CeilingKey(key K) (K, bool)
	HigherKey(key K) (K, bool)
	LowerEntry(key K) (*Entry[K, V], bool)
	FloorEntry(key K) (*Entry[K, V], bool)
	CeilingEntry(key K) (*Entry[K, V], bool)
	HigherEntry(key K) (*Entry[K, V], bool)
	PollFirstEntry() (*Entry[K, V], bool)
	PollLastEntry() (*Entry[K, V], bool)

	SubMap(from K, fromInclusive bool, to K, toInclusive bool) View[K, V]
	HeadMap(to K, inclusive bool) View[K, V]
	TailMap(from K, inclusive bool) View[K, V]
	Descending() View[K, V]
	DescendingKeySet() KeySet[K, V]
	KeySet() KeySet[K, V]
	EntrySet() EntrySet[K, V]
	Values() Values[K, V]

	Cursor() *Cursor[K, V]
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	String() string
}

var (
	_ Navigable[int, int] = (*Map[int, int])(nil)
	_ Navigable[int, int] = View[int, int]{}
)

// Equal reports whether a and b hold the same key/value pairs,
// regardless of how either is ordered or built.
// Keys are looked up in b with b's ordering.
func Equal[K any, V comparable](a, b Navigable[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K, V1, V2 any](a Navigable[K, V1], b Navigable[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v1 := range a.All() {
		v2, ok := b.Get(k)
		if !ok || !eq(v1, v2) {
			return false
		}
	}
	return true
}

// ContainsValue reports whether some value in m equals v.
func ContainsValue[K any, V comparable](m Navigable[K, V], v V) bool {
	return m.ContainsValueFunc(func(x V) bool { return x == v })
}
