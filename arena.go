// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

// A nodeIndex addresses a node in an arena.
// Index 0 is the black sentinel that stands for every missing child
// and for the parent of the root.
type nodeIndex int32

const nilIndex nodeIndex = 0

type color uint8

const (
	red color = iota
	black
)

// A node is a node in the red-black tree.
// Links are arena indexes, not pointers, so the tree never holds
// an ownership cycle between a parent and its children.
type node[K, V any] struct {
	key    K
	val    V
	parent nodeIndex
	left   nodeIndex
	right  nodeIndex
	color  color
	// gen identifies the occupant of the slot. It changes when
	// the slot is freed, so stale references can be detected.
	gen uint64
}

// An arena owns the nodes of one tree.
type arena[K, V any] struct {
	nodes   []node[K, V]
	free    []nodeIndex
	nextGen uint64
}

func (a *arena[K, V]) init() {
	// Slot 0 is the sentinel.
	a.nodes = append(a.nodes[:0], node[K, V]{color: black})
	a.free = a.free[:0]
}

// alloc returns a red node holding key and val, with sentinel links.
func (a *arena[K, V]) alloc(key K, val V, parent nodeIndex) nodeIndex {
	a.nextGen++
	n := node[K, V]{key: key, val: val, parent: parent, color: red, gen: a.nextGen}
	if k := len(a.free); k > 0 {
		x := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[x] = n
		return x
	}
	a.nodes = append(a.nodes, n)
	return nodeIndex(len(a.nodes) - 1)
}

// release returns x's slot to the free list.
// The key and value are cleared so the arena does not keep them alive.
func (a *arena[K, V]) release(x nodeIndex) {
	a.nodes[x] = node[K, V]{}
	a.free = append(a.free, x)
}

// at returns the node in slot x. The pointer is valid only until the
// next alloc, which may grow the slice.
func (a *arena[K, V]) at(x nodeIndex) *node[K, V] {
	return &a.nodes[x]
}

// live reports whether slot x still holds the node stamped gen.
func (a *arena[K, V]) live(x nodeIndex, gen uint64) bool {
	return x != nilIndex && int(x) < len(a.nodes) && a.nodes[x].gen == gen
}

// reset drops every node. Generations keep increasing across resets.
func (a *arena[K, V]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.init()
}

// inUse reports the number of occupied slots, the sentinel excluded.
func (a *arena[K, V]) inUse() int {
	if len(a.nodes) == 0 {
		return 0
	}
	return len(a.nodes) - 1 - len(a.free)
}
