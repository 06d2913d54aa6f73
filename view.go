// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jba/treemap/rng"
)

// A View is a live window onto the keys of a [Map] that lie in a range.
// It reads and writes the map itself: changes made through a view are
// visible in the map and in every other view of it, and vice versa.
//
// A backwards range gives a descending view, whose "first" key is the
// largest key in range and whose "lower" keys are the larger ones.
// SubMap, HeadMap and TailMap arguments are likewise read in the view's
// direction.
type View[K, V any] struct {
	m *Map[K, V]
	r rng.Range[K]
}

// NewView returns the view of m over r.
func NewView[K, V any](m *Map[K, V], r rng.Range[K]) View[K, V] {
	return View[K, V]{m: m, r: r}
}

// Range returns the bounds and direction of v.
func (v View[K, V]) Range() rng.Range[K] { return v.r }

// Map returns the map that v looks into.
func (v View[K, V]) Map() *Map[K, V] { return v.m }

func (v View[K, V]) desc() bool { return v.r.IsBackwards() }

func (v View[K, V]) inRange(key K) bool { return v.r.Contains(v.m.cmp, key) }
func (v View[K, V]) tooLow(key K) bool  { return v.r.TooLow(v.m.cmp, key) }
func (v View[K, V]) tooHigh(key K) bool { return v.r.TooHigh(v.m.cmp, key) }
func (v View[K, V]) unbounded() bool {
	_, infLo, _ := v.r.Low()
	_, infHi, _ := v.r.High()
	return infLo && infHi
}

// The abs methods answer in ascending key order, ignoring direction.

func (v View[K, V]) absLowest() nodeIndex {
	var x nodeIndex
	switch lo, inf, incl := v.r.Low(); {
	case inf:
		x = v.m.firstNode()
	case incl:
		x = v.m.ceilingNode(lo)
	default:
		x = v.m.higherNode(lo)
	}
	if x == nilIndex || v.tooHigh(v.m.a.at(x).key) {
		return nilIndex
	}
	return x
}

func (v View[K, V]) absHighest() nodeIndex {
	var x nodeIndex
	switch hi, inf, incl := v.r.High(); {
	case inf:
		x = v.m.lastNode()
	case incl:
		x = v.m.floorNode(hi)
	default:
		x = v.m.lowerNode(hi)
	}
	if x == nilIndex || v.tooLow(v.m.a.at(x).key) {
		return nilIndex
	}
	return x
}

func (v View[K, V]) absCeiling(key K) nodeIndex {
	if v.tooLow(key) {
		return v.absLowest()
	}
	return v.capHigh(v.m.ceilingNode(key))
}

func (v View[K, V]) absHigher(key K) nodeIndex {
	if v.tooLow(key) {
		return v.absLowest()
	}
	return v.capHigh(v.m.higherNode(key))
}

func (v View[K, V]) absFloor(key K) nodeIndex {
	if v.tooHigh(key) {
		return v.absHighest()
	}
	return v.capLow(v.m.floorNode(key))
}

func (v View[K, V]) absLower(key K) nodeIndex {
	if v.tooHigh(key) {
		return v.absHighest()
	}
	return v.capLow(v.m.lowerNode(key))
}

func (v View[K, V]) capHigh(x nodeIndex) nodeIndex {
	if x == nilIndex || v.tooHigh(v.m.a.at(x).key) {
		return nilIndex
	}
	return x
}

func (v View[K, V]) capLow(x nodeIndex) nodeIndex {
	if x == nilIndex || v.tooLow(v.m.a.at(x).key) {
		return nilIndex
	}
	return x
}

// The dir methods answer in the view's direction.

func (v View[K, V]) first() nodeIndex {
	if v.desc() {
		return v.absHighest()
	}
	return v.absLowest()
}

func (v View[K, V]) last() nodeIndex {
	if v.desc() {
		return v.absLowest()
	}
	return v.absHighest()
}

// step returns the node after x in the view's direction, or nilIndex
// if there is none in range.
func (v View[K, V]) step(x nodeIndex) nodeIndex {
	if v.desc() {
		return v.capLow(v.m.predecessor(x))
	}
	return v.capHigh(v.m.successor(x))
}

func (v View[K, V]) lowerNode(key K) nodeIndex {
	if v.desc() {
		return v.absHigher(key)
	}
	return v.absLower(key)
}

func (v View[K, V]) floorNode(key K) nodeIndex {
	if v.desc() {
		return v.absCeiling(key)
	}
	return v.absFloor(key)
}

func (v View[K, V]) ceilingNode(key K) nodeIndex {
	if v.desc() {
		return v.absFloor(key)
	}
	return v.absCeiling(key)
}

func (v View[K, V]) higherNode(key K) nodeIndex {
	if v.desc() {
		return v.absLower(key)
	}
	return v.absHigher(key)
}

// Comparator returns the comparison function that orders v,
// reversed for a descending view.
func (v View[K, V]) Comparator() func(K, K) int {
	if v.desc() {
		cmp := v.m.cmp
		return func(a, b K) int { return cmp(b, a) }
	}
	return v.m.cmp
}

// Len returns the number of entries in v.
// Unless v is unbounded, this takes time proportional to Len.
func (v View[K, V]) Len() int {
	if v.unbounded() {
		return v.m.size
	}
	n := 0
	for x := v.absLowest(); x != nilIndex; x = v.capHigh(v.m.successor(x)) {
		n++
	}
	return n
}

// IsEmpty reports whether v has no entries.
func (v View[K, V]) IsEmpty() bool { return v.absLowest() == nilIndex }

// Get returns the value of v[key] and reports whether it exists.
// Keys outside v are absent.
func (v View[K, V]) Get(key K) (V, bool) {
	if !v.inRange(key) {
		var zero V
		return zero, false
	}
	return v.m.Get(key)
}

// ContainsKey reports whether v[key] exists.
func (v View[K, V]) ContainsKey(key K) bool {
	return v.inRange(key) && v.m.ContainsKey(key)
}

// ContainsValueFunc reports whether some value in v satisfies match.
func (v View[K, V]) ContainsValueFunc(match func(V) bool) bool {
	for x := v.absLowest(); x != nilIndex; x = v.capHigh(v.m.successor(x)) {
		if match(v.m.a.at(x).val) {
			return true
		}
	}
	return false
}

// Put sets v[key] = val, which sets it in the underlying map.
// If key lies outside v, Put changes nothing and returns [ErrOutOfRange].
func (v View[K, V]) Put(key K, val V) (old V, replaced bool, err error) {
	if !v.inRange(key) {
		return old, false, errors.Wrapf(ErrOutOfRange, "put %v into %s", key, v.r)
	}
	old, replaced = v.m.insert(key, val)
	return old, replaced, nil
}

// PutAll copies every entry of src into v.
// If any key of src lies outside v, PutAll changes nothing
// and returns [ErrOutOfRange].
func (v View[K, V]) PutAll(src Navigable[K, V]) error {
	for k := range src.Keys() {
		if !v.inRange(k) {
			return errors.Wrapf(ErrOutOfRange, "put %v into %s", k, v.r)
		}
	}
	for k, val := range src.All() {
		v.m.insert(k, val)
	}
	return nil
}

// Remove deletes v[key] if it exists, returning the former value and true.
// Keys outside v are absent.
func (v View[K, V]) Remove(key K) (V, bool) {
	if !v.inRange(key) {
		var zero V
		return zero, false
	}
	return v.m.Remove(key)
}

// Clear deletes every entry of v from the underlying map.
func (v View[K, V]) Clear() {
	if v.unbounded() {
		v.m.Clear()
		return
	}
	c := newCursor(v)
	for c.Next() {
		c.Remove()
	}
}

// FirstKey returns the first key of v in v's direction.
// If v is empty, it returns [ErrNoSuchElement].
func (v View[K, V]) FirstKey() (K, error) {
	return v.keyOrErr(v.first())
}

// LastKey returns the last key of v in v's direction.
// If v is empty, it returns [ErrNoSuchElement].
func (v View[K, V]) LastKey() (K, error) {
	return v.keyOrErr(v.last())
}

func (v View[K, V]) keyOrErr(x nodeIndex) (K, error) {
	if x == nilIndex {
		var zero K
		return zero, errors.Wrapf(ErrNoSuchElement, "view %s", v.r)
	}
	return v.m.a.at(x).key, nil
}

func (v View[K, V]) FirstEntry() (*Entry[K, V], bool) { return v.m.entryAt(v.first()) }
func (v View[K, V]) LastEntry() (*Entry[K, V], bool)  { return v.m.entryAt(v.last()) }

// LowerKey returns the key of v that comes just before key in v's direction.
func (v View[K, V]) LowerKey(key K) (K, bool) { return v.m.keyAt(v.lowerNode(key)) }

// FloorKey returns key, if present in v, or else the key just before it.
func (v View[K, V]) FloorKey(key K) (K, bool) { return v.m.keyAt(v.floorNode(key)) }

// CeilingKey returns key, if present in v, or else the key just after it.
func (v View[K, V]) CeilingKey(key K) (K, bool) { return v.m.keyAt(v.ceilingNode(key)) }

// HigherKey returns the key of v that comes just after key in v's direction.
func (v View[K, V]) HigherKey(key K) (K, bool) { return v.m.keyAt(v.higherNode(key)) }

func (v View[K, V]) LowerEntry(key K) (*Entry[K, V], bool)   { return v.m.entryAt(v.lowerNode(key)) }
func (v View[K, V]) FloorEntry(key K) (*Entry[K, V], bool)   { return v.m.entryAt(v.floorNode(key)) }
func (v View[K, V]) CeilingEntry(key K) (*Entry[K, V], bool) { return v.m.entryAt(v.ceilingNode(key)) }
func (v View[K, V]) HigherEntry(key K) (*Entry[K, V], bool)  { return v.m.entryAt(v.higherNode(key)) }

// PollFirstEntry removes the first entry of v and returns it, detached.
func (v View[K, V]) PollFirstEntry() (*Entry[K, V], bool) { return v.m.poll(v.first()) }

// PollLastEntry removes the last entry of v and returns it, detached.
func (v View[K, V]) PollLastEntry() (*Entry[K, V], bool) { return v.m.poll(v.last()) }

// narrow returns the view of the keys of v that also lie in r.
// r is in ascending terms; the result keeps v's direction.
func (v View[K, V]) narrow(r rng.Range[K]) View[K, V] {
	return View[K, V]{m: v.m, r: v.r.Intersect(v.m.cmp, r)}
}

// SubMap returns the view of the keys of v from from to to in v's
// direction, each end included as requested. Ends that lie outside v
// are clamped to v's own bounds.
func (v View[K, V]) SubMap(from K, fromInclusive bool, to K, toInclusive bool) View[K, V] {
	if v.desc() {
		return v.narrow(rng.Between(to, toInclusive, from, fromInclusive))
	}
	return v.narrow(rng.Between(from, fromInclusive, to, toInclusive))
}

// HeadMap returns the view of the keys of v that come before to
// in v's direction (or equal it, if inclusive).
func (v View[K, V]) HeadMap(to K, inclusive bool) View[K, V] {
	var r rng.Range[K]
	switch {
	case v.desc() && inclusive:
		r = rng.From(to)
	case v.desc():
		r = rng.Above(to)
	case inclusive:
		r = rng.To(to)
	default:
		r = rng.Below(to)
	}
	return v.narrow(r)
}

// TailMap returns the view of the keys of v that come after from
// in v's direction (or equal it, if inclusive).
func (v View[K, V]) TailMap(from K, inclusive bool) View[K, V] {
	var r rng.Range[K]
	switch {
	case v.desc() && inclusive:
		r = rng.To(from)
	case v.desc():
		r = rng.Below(from)
	case inclusive:
		r = rng.From(from)
	default:
		r = rng.Above(from)
	}
	return v.narrow(r)
}

// Descending returns v with its direction reversed.
func (v View[K, V]) Descending() View[K, V] {
	return View[K, V]{m: v.m, r: v.r.Reverse()}
}

// DescendingKeySet returns the keys of v in the opposite direction.
func (v View[K, V]) DescendingKeySet() KeySet[K, V] { return v.Descending().KeySet() }

func (v View[K, V]) KeySet() KeySet[K, V]     { return KeySet[K, V]{v: v} }
func (v View[K, V]) EntrySet() EntrySet[K, V] { return EntrySet[K, V]{v: v} }
func (v View[K, V]) Values() Values[K, V]     { return Values[K, V]{v: v} }

// Cursor returns a cursor over v in v's direction.
func (v View[K, V]) Cursor() *Cursor[K, V] { return newCursor(v) }

// All returns an iterator over v in v's direction.
// It panics with [ErrConcurrentModification] if the map is structurally
// modified during the iteration.
func (v View[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := newCursor(v)
		for c.Next() {
			if !yield(c.Key(), c.Value()) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}

// Backward returns an iterator over v against v's direction.
func (v View[K, V]) Backward() iter.Seq2[K, V] { return v.Descending().All() }

// Keys returns an iterator over the keys of v in v's direction.
func (v View[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range v.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// String formats v like a Go map, in v's direction.
func (v View[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	sep := ""
	for k, val := range v.All() {
		fmt.Fprintf(&b, "%s%v:%v", sep, k, val)
		sep = " "
	}
	b.WriteByte(']')
	return b.String()
}
