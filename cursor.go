// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "github.com/cockroachdb/errors"

type cursorState uint8

const (
	beforeFirst cursorState = iota
	positioned
	removed // positioned, but the current entry has been removed
	afterLast
	invalid
)

// A Cursor walks the entries of a map or view in the view's direction.
//
// A Cursor is fail-fast: if the map is structurally modified (an entry
// added or removed) by anything other than the cursor's own Remove,
// the next call to Next or Remove fails with [ErrConcurrentModification]
// and the cursor is unusable from then on. Replacing a value is not
// a structural modification.
//
// The usual loop is
//
//	c := m.Cursor()
//	for c.Next() {
//		... c.Key(), c.Value() ...
//	}
//	if err := c.Err(); err != nil {
//		...
//	}
type Cursor[K, V any] struct {
	v        View[K, V]
	state    cursorState
	cur      nodeIndex // valid when state == positioned
	next     nodeIndex // node to visit on the next call to Next
	expected uint64    // v.m.modCount as of the last check
	err      error
}

func newCursor[K, V any](v View[K, V]) *Cursor[K, V] {
	return &Cursor[K, V]{
		v:        v,
		next:     v.first(),
		expected: v.m.modCount,
	}
}

func (c *Cursor[K, V]) check() bool {
	if c.v.m.modCount == c.expected {
		return true
	}
	c.state = invalid
	c.cur = nilIndex
	c.err = errors.Wrapf(ErrConcurrentModification, "cursor over %s", c.v.r)
	return false
}

// Next advances c to the next entry and reports whether there is one.
// It returns false at the end of the entries or if the map was modified
// behind c's back; Err distinguishes the two.
func (c *Cursor[K, V]) Next() bool {
	switch c.state {
	case afterLast, invalid:
		return false
	}
	if !c.check() {
		return false
	}
	if c.next == nilIndex {
		c.state = afterLast
		c.cur = nilIndex
		return false
	}
	c.cur = c.next
	c.next = c.v.step(c.cur)
	c.state = positioned
	return true
}

// Key returns the key of the current entry.
// It returns the zero value if c is not positioned on an entry.
func (c *Cursor[K, V]) Key() K {
	if c.state != positioned {
		var zero K
		return zero
	}
	return c.v.m.a.at(c.cur).key
}

// Value returns the value of the current entry.
// It returns the zero value if c is not positioned on an entry.
func (c *Cursor[K, V]) Value() V {
	if c.state != positioned {
		var zero V
		return zero
	}
	return c.v.m.a.at(c.cur).val
}

// Entry returns the current entry, live, or nil if c is not
// positioned on an entry.
func (c *Cursor[K, V]) Entry() *Entry[K, V] {
	if c.state != positioned {
		return nil
	}
	return c.v.m.liveEntry(c.cur)
}

// Remove deletes the current entry from the map.
// It fails with [ErrNoCurrent] unless the last call to Next returned true
// and the entry has not been removed yet.
// Removing through the cursor does not invalidate it.
func (c *Cursor[K, V]) Remove() error {
	switch c.state {
	case invalid:
		return c.err
	case positioned:
	default:
		return ErrNoCurrent
	}
	if !c.check() {
		return c.err
	}

	m := c.v.m
	x := c.cur
	n := m.a.at(x)
	twoChildren := n.left != nilIndex && n.right != nilIndex
	m.deleteNode(x)
	// With two children, the successor's entry has moved into x's slot.
	if twoChildren && !c.v.desc() && c.next != nilIndex {
		c.next = x
	}

	c.expected = m.modCount
	c.cur = nilIndex
	c.state = removed
	return nil
}

// Err returns the error, if any, that stopped c.
func (c *Cursor[K, V]) Err() error { return c.err }
