// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

// The tree is a classic red-black tree with a shared black sentinel
// (slot 0 of the arena) standing in for every missing child.
// See Cormen et al., Introduction to Algorithms, chapter 13.
//
// All walks are iterative; nothing here recurses on tree height.

// getNode returns the node holding key, or nilIndex.
func (m *Map[K, V]) getNode(key K) nodeIndex {
	ns := m.a.nodes
	x := m.root
	for x != nilIndex {
		c := m.cmp(key, ns[x].key)
		switch {
		case c < 0:
			x = ns[x].left
		case c > 0:
			x = ns[x].right
		default:
			return x
		}
	}
	return nilIndex
}

// minNode returns the node in x's subtree with the smallest key.
func (m *Map[K, V]) minNode(x nodeIndex) nodeIndex {
	if x == nilIndex {
		return nilIndex
	}
	ns := m.a.nodes
	for ns[x].left != nilIndex {
		x = ns[x].left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest key.
func (m *Map[K, V]) maxNode(x nodeIndex) nodeIndex {
	if x == nilIndex {
		return nilIndex
	}
	ns := m.a.nodes
	for ns[x].right != nilIndex {
		x = ns[x].right
	}
	return x
}

func (m *Map[K, V]) firstNode() nodeIndex { return m.minNode(m.root) }
func (m *Map[K, V]) lastNode() nodeIndex  { return m.maxNode(m.root) }

// successor returns the in-order successor of x, or nilIndex.
func (m *Map[K, V]) successor(x nodeIndex) nodeIndex {
	ns := m.a.nodes
	if ns[x].right != nilIndex {
		return m.minNode(ns[x].right)
	}
	p := ns[x].parent
	for p != nilIndex && x == ns[p].right {
		x = p
		p = ns[p].parent
	}
	return p
}

// predecessor returns the in-order predecessor of x, or nilIndex.
func (m *Map[K, V]) predecessor(x nodeIndex) nodeIndex {
	ns := m.a.nodes
	if ns[x].left != nilIndex {
		return m.maxNode(ns[x].left)
	}
	p := ns[x].parent
	for p != nilIndex && x == ns[p].left {
		x = p
		p = ns[p].parent
	}
	return p
}

// ceilingNode returns the node with the least key ≥ key.
func (m *Map[K, V]) ceilingNode(key K) nodeIndex {
	ns := m.a.nodes
	best := nilIndex
	for x := m.root; x != nilIndex; {
		c := m.cmp(key, ns[x].key)
		switch {
		case c < 0:
			best = x
			x = ns[x].left
		case c > 0:
			x = ns[x].right
		default:
			return x
		}
	}
	return best
}

// higherNode returns the node with the least key > key.
func (m *Map[K, V]) higherNode(key K) nodeIndex {
	ns := m.a.nodes
	best := nilIndex
	for x := m.root; x != nilIndex; {
		if m.cmp(key, ns[x].key) < 0 {
			best = x
			x = ns[x].left
		} else {
			x = ns[x].right
		}
	}
	return best
}

// floorNode returns the node with the greatest key ≤ key.
func (m *Map[K, V]) floorNode(key K) nodeIndex {
	ns := m.a.nodes
	best := nilIndex
	for x := m.root; x != nilIndex; {
		c := m.cmp(key, ns[x].key)
		switch {
		case c > 0:
			best = x
			x = ns[x].right
		case c < 0:
			x = ns[x].left
		default:
			return x
		}
	}
	return best
}

// lowerNode returns the node with the greatest key < key.
func (m *Map[K, V]) lowerNode(key K) nodeIndex {
	ns := m.a.nodes
	best := nilIndex
	for x := m.root; x != nilIndex; {
		if m.cmp(key, ns[x].key) > 0 {
			best = x
			x = ns[x].right
		} else {
			x = ns[x].left
		}
	}
	return best
}

// insert sets m[key] = val.
// If key was present only the value changes: the shape, size and
// modification count of the tree stay as they were.
func (m *Map[K, V]) insert(key K, val V) (old V, replaced bool) {
	if len(m.a.nodes) == 0 {
		m.a.init()
	}
	ns := m.a.nodes
	y := nilIndex
	c := 0
	for x := m.root; x != nilIndex; {
		y = x
		c = m.cmp(key, ns[x].key)
		switch {
		case c < 0:
			x = ns[x].left
		case c > 0:
			x = ns[x].right
		default:
			old = ns[x].val
			ns[x].val = val
			return old, true
		}
	}

	z := m.a.alloc(key, val, y)
	ns = m.a.nodes
	switch {
	case y == nilIndex:
		m.root = z
	case c < 0:
		ns[y].left = z
	default:
		ns[y].right = z
	}
	m.size++
	m.modCount++
	m.insertFixup(z)
	return old, false
}

// deleteNode unlinks x from the tree and frees its slot.
//
// If x has two children, x takes over the key and value of its
// successor and the successor's slot is the one that is freed.
// Callers holding the successor's index must account for that.
func (m *Map[K, V]) deleteNode(x nodeIndex) {
	ns := m.a.nodes
	m.size--
	m.modCount++

	if ns[x].left != nilIndex && ns[x].right != nilIndex {
		s := m.successor(x)
		ns[x].key, ns[x].val = ns[s].key, ns[s].val
		x = s
	}

	// x now has at most one child.
	child := ns[x].left
	if child == nilIndex {
		child = ns[x].right
	}
	m.transplant(x, child)
	if ns[x].color == black {
		m.deleteFixup(child)
	}
	// The sentinel's parent may have been borrowed by the fixup.
	ns[nilIndex].parent = nilIndex
	m.a.release(x)
}

// transplant replaces the subtree rooted at u with the one rooted at v.
// v may be the sentinel, whose parent is then set for deleteFixup.
func (m *Map[K, V]) transplant(u, v nodeIndex) {
	ns := m.a.nodes
	p := ns[u].parent
	switch {
	case p == nilIndex:
		m.root = v
	case ns[p].left == u:
		ns[p].left = v
	case ns[p].right == u:
		ns[p].right = v
	default:
		panic("corrupt tree")
	}
	ns[v].parent = p
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (m *Map[K, V]) rotateLeft(x nodeIndex) {
	ns := m.a.nodes
	y := ns[x].right
	b := ns[y].left

	ns[x].right = b
	if b != nilIndex {
		ns[b].parent = x
	}
	p := ns[x].parent
	ns[y].parent = p
	switch {
	case p == nilIndex:
		m.root = y
	case ns[p].left == x:
		ns[p].left = y
	default:
		ns[p].right = y
	}
	ns[y].left = x
	ns[x].parent = y
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (m *Map[K, V]) rotateRight(y nodeIndex) {
	ns := m.a.nodes
	x := ns[y].left
	b := ns[x].right

	ns[y].left = b
	if b != nilIndex {
		ns[b].parent = y
	}
	p := ns[y].parent
	ns[x].parent = p
	switch {
	case p == nilIndex:
		m.root = x
	case ns[p].right == y:
		ns[p].right = x
	default:
		ns[p].left = x
	}
	ns[x].right = y
	ns[y].parent = x
}

func (m *Map[K, V]) insertFixup(z nodeIndex) {
	ns := m.a.nodes
	for ns[ns[z].parent].color == red {
		p := ns[z].parent
		g := ns[p].parent
		if p == ns[g].left {
			u := ns[g].right // uncle
			if ns[u].color == red {
				ns[p].color = black
				ns[u].color = black
				ns[g].color = red
				z = g
				continue
			}
			if z == ns[p].right {
				z = p
				m.rotateLeft(z)
				p = ns[z].parent
			}
			ns[p].color = black
			ns[g].color = red
			m.rotateRight(g)
		} else {
			u := ns[g].left
			if ns[u].color == red {
				ns[p].color = black
				ns[u].color = black
				ns[g].color = red
				z = g
				continue
			}
			if z == ns[p].left {
				z = p
				m.rotateRight(z)
				p = ns[z].parent
			}
			ns[p].color = black
			ns[g].color = red
			m.rotateLeft(g)
		}
	}
	ns[m.root].color = black
}

func (m *Map[K, V]) deleteFixup(x nodeIndex) {
	ns := m.a.nodes
	for x != m.root && ns[x].color == black {
		p := ns[x].parent
		if x == ns[p].left {
			w := ns[p].right
			if ns[w].color == red {
				ns[w].color = black
				ns[p].color = red
				m.rotateLeft(p)
				w = ns[p].right
			}
			if ns[ns[w].left].color == black && ns[ns[w].right].color == black {
				ns[w].color = red
				x = p
				continue
			}
			if ns[ns[w].right].color == black {
				ns[ns[w].left].color = black
				ns[w].color = red
				m.rotateRight(w)
				w = ns[p].right
			}
			ns[w].color = ns[p].color
			ns[p].color = black
			ns[ns[w].right].color = black
			m.rotateLeft(p)
			x = m.root
		} else {
			w := ns[p].left
			if ns[w].color == red {
				ns[w].color = black
				ns[p].color = red
				m.rotateRight(p)
				w = ns[p].left
			}
			if ns[ns[w].right].color == black && ns[ns[w].left].color == black {
				ns[w].color = red
				x = p
				continue
			}
			if ns[ns[w].left].color == black {
				ns[ns[w].right].color = black
				ns[w].color = red
				m.rotateLeft(w)
				w = ns[p].left
			}
			ns[w].color = ns[p].color
			ns[p].color = black
			ns[ns[w].left].color = black
			m.rotateRight(p)
			x = m.root
		}
	}
	ns[x].color = black
}
