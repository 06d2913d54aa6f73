// Package rng provides ranges: representations of sequences of ordered values.
package rng

import (
	"fmt"
	"strings"
)

// Range is a range of values of type K.
// K need not be ordered; that is, it is not constrained by [cmp.Ordered].
// It is up to the user to assign an ordering; Range simply represents
// the bounds of the range. Methods that need the ordering take
// a comparison function.
//
// The zero Range is an empty range.
type Range[T any] struct {
	lo, hi         T
	inclLo, inclHi bool
	infLo, infHi   bool
	rev            bool
}

func (r Range[T]) String() string {
	var b strings.Builder
	if r.infLo {
		b.WriteString("(-∞")
	} else {
		if r.inclLo {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprint(&b, r.lo)
	}
	b.WriteString(", ")
	if r.infHi {
		b.WriteString("∞)")
	} else {
		fmt.Fprint(&b, r.hi)
		if r.inclHi {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	}
	if r.rev {
		b.WriteString(" backwards")
	}
	return b.String()
}

func (r Range[T]) IsBackwards() bool { return r.rev }

func (r Range[T]) Low() (v T, infinite, includes bool) {
	return r.lo, r.infLo, r.inclLo
}

func (r Range[T]) High() (v T, infinite, includes bool) {
	return r.hi, r.infHi, r.inclHi
}

// (-inf, inf)
func Full[T any]() Range[T] {
	return Range[T]{infLo: true, infHi: true}
}

// [t, inf)
func From[T any](t T) Range[T] {
	return Range[T]{lo: t, inclLo: true, infHi: true}
}

// (t, inf)
func Above[T any](t T) Range[T] {
	return Range[T]{lo: t, inclLo: false, infHi: true}
}

// (-inf, t)
func Below[T any](t T) Range[T] {
	return Range[T]{infLo: true, hi: t}
}

// (-inf, t]
func To[T any](t T) Range[T] {
	return Range[T]{infLo: true, hi: t, inclHi: true}
}

// Between returns the range from lo to hi, with each end
// included or excluded as requested.
func Between[T any](lo T, inclLo bool, hi T, inclHi bool) Range[T] {
	return Range[T]{lo: lo, inclLo: inclLo, hi: hi, inclHi: inclHi}
}

// ..., t)
func (r Range[T]) Below(t T) Range[T] {
	if !r.infHi {
		panic("uninitialized Range")
	}
	r.hi = t
	r.infHi = false
	r.inclHi = false
	return r
}

// ..., t]
func (r Range[T]) To(t T) Range[T] {
	if !r.infHi {
		panic("uninitialized Range")
	}
	r.hi = t
	r.infHi = false
	r.inclHi = true
	return r
}

func (r Range[T]) Backwards() Range[T] {
	r.rev = true
	return r
}

// Reverse returns r with its direction flipped.
func (r Range[T]) Reverse() Range[T] {
	r.rev = !r.rev
	return r
}

// TooLow reports whether t lies below the low end of r.
func (r Range[T]) TooLow(cmp func(T, T) int, t T) bool {
	if r.infLo {
		return false
	}
	c := cmp(t, r.lo)
	return c < 0 || c == 0 && !r.inclLo
}

// TooHigh reports whether t lies above the high end of r.
func (r Range[T]) TooHigh(cmp func(T, T) int, t T) bool {
	if r.infHi {
		return false
	}
	c := cmp(t, r.hi)
	return c > 0 || c == 0 && !r.inclHi
}

// Contains reports whether t lies within r.
func (r Range[T]) Contains(cmp func(T, T) int, t T) bool {
	return !r.TooLow(cmp, t) && !r.TooHigh(cmp, t)
}

// IsEmpty reports whether no value can lie within r.
func (r Range[T]) IsEmpty(cmp func(T, T) int) bool {
	if r.infLo || r.infHi {
		return false
	}
	c := cmp(r.lo, r.hi)
	return c > 0 || c == 0 && !(r.inclLo && r.inclHi)
}

// Intersect returns the values that lie in both r and o.
// The result has r's direction.
// A bound of o that lies outside r is replaced by r's bound,
// so the result never holds a value that r does not.
func (r Range[T]) Intersect(cmp func(T, T) int, o Range[T]) Range[T] {
	res := Range[T]{rev: r.rev}

	switch {
	case o.infLo:
		res.lo, res.inclLo, res.infLo = r.lo, r.inclLo, r.infLo
	case r.infLo:
		res.lo, res.inclLo = o.lo, o.inclLo
	default:
		switch c := cmp(r.lo, o.lo); {
		case c > 0:
			res.lo, res.inclLo = r.lo, r.inclLo
		case c < 0:
			res.lo, res.inclLo = o.lo, o.inclLo
		default:
			res.lo, res.inclLo = r.lo, r.inclLo && o.inclLo
		}
	}

	switch {
	case o.infHi:
		res.hi, res.inclHi, res.infHi = r.hi, r.inclHi, r.infHi
	case r.infHi:
		res.hi, res.inclHi = o.hi, o.inclHi
	default:
		switch c := cmp(r.hi, o.hi); {
		case c < 0:
			res.hi, res.inclHi = r.hi, r.inclHi
		case c > 0:
			res.hi, res.inclHi = o.hi, o.inclHi
		default:
			res.hi, res.inclHi = r.hi, r.inclHi && o.inclHi
		}
	}
	return res
}
