// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refset provides a set of small non-negative ints backed by a
// bitset, with ordered navigation. It is slow to navigate but obviously
// correct, which makes it a reference for testing ordered maps.
package refset

import "math/bits"

// A Set holds ints in [0, n).
type Set struct {
	words []uint64
	n     int
}

// New returns an empty Set that can hold 0 through n-1.
func New(n int) *Set {
	return &Set{words: make([]uint64, (n+63)/64), n: n}
}

// Cap returns the bound n passed to New.
func (s *Set) Cap() int { return s.n }

// Add adds i to s and reports whether it was absent.
// It panics if i is out of bounds.
func (s *Set) Add(i int) bool {
	w, b := s.pos(i)
	had := s.words[w]&b != 0
	s.words[w] |= b
	return !had
}

// Delete removes i from s and reports whether it was present.
// Ints out of bounds are never present.
func (s *Set) Delete(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	w, b := s.pos(i)
	had := s.words[w]&b != 0
	s.words[w] &^= b
	return had
}

// Has reports whether i is in s.
func (s *Set) Has(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	w, b := s.pos(i)
	return s.words[w]&b != 0
}

func (s *Set) pos(i int) (int, uint64) {
	if i < 0 || i >= s.n {
		panic("refset: index out of range")
	}
	return i / 64, 1 << (uint(i) % 64)
}

// Len returns the number of ints in s.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Next returns the smallest member of s that is >= i, or -1.
func (s *Set) Next(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= s.n {
		return -1
	}
	w := i / 64
	word := s.words[w] >> (uint(i) % 64)
	if word != 0 {
		return i + bits.TrailingZeros64(word)
	}
	for w++; w < len(s.words); w++ {
		if s.words[w] != 0 {
			return w*64 + bits.TrailingZeros64(s.words[w])
		}
	}
	return -1
}

// Prev returns the largest member of s that is <= i, or -1.
func (s *Set) Prev(i int) int {
	if i >= s.n {
		i = s.n - 1
	}
	if i < 0 {
		return -1
	}
	w := i / 64
	word := s.words[w] << (63 - uint(i)%64)
	if word != 0 {
		return i - bits.LeadingZeros64(word)
	}
	for w--; w >= 0; w-- {
		if s.words[w] != 0 {
			return w*64 + 63 - bits.LeadingZeros64(s.words[w])
		}
	}
	return -1
}

// A Window is the part of a Set between Min and Max inclusive, read in
// ascending or descending order. If Max < Min the window is empty.
// Its methods mirror the navigation methods of an ordered map over the
// same keys and return -1 where the map would report no key.
type Window struct {
	Set       *Set
	Min, Max  int
	Ascending bool
}

func (w Window) floorAsc(k int) int {
	if k < w.Min {
		return -1
	}
	if r := w.Set.Prev(min(k, w.Max)); r >= w.Min {
		return r
	}
	return -1
}

func (w Window) ceilingAsc(k int) int {
	if k > w.Max {
		return -1
	}
	if r := w.Set.Next(max(k, w.Min)); r >= 0 && r <= w.Max {
		return r
	}
	return -1
}

func (w Window) Lower(k int) int {
	if w.Ascending {
		return w.floorAsc(k - 1)
	}
	return w.ceilingAsc(k + 1)
}

func (w Window) Floor(k int) int {
	if w.Ascending {
		return w.floorAsc(k)
	}
	return w.ceilingAsc(k)
}

func (w Window) Ceiling(k int) int {
	if w.Ascending {
		return w.ceilingAsc(k)
	}
	return w.floorAsc(k)
}

func (w Window) Higher(k int) int {
	if w.Ascending {
		return w.ceilingAsc(k + 1)
	}
	return w.floorAsc(k - 1)
}

func (w Window) First() int {
	if w.Ascending {
		return w.ceilingAsc(w.Min)
	}
	return w.floorAsc(w.Max)
}

func (w Window) Last() int {
	if w.Ascending {
		return w.floorAsc(w.Max)
	}
	return w.ceilingAsc(w.Min)
}

// Len returns the number of members of the window.
func (w Window) Len() int {
	n := 0
	for k := w.ceilingAsc(w.Min); k >= 0; k = w.ceilingAsc(k + 1) {
		n++
	}
	return n
}
