// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stress exercises a treemap.Map through randomly nested views.
//
// Run fills a map with random int keys, mirrors them in a refset.Set,
// and then repeatedly mutates views of views (ascending and descending,
// with random bound inclusion), checking after every mutation that each
// view's contents, length, navigation and extremes agree with the
// reference set.
package stress

import (
	"context"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/jba/treemap"
	"github.com/jba/treemap/internal/refset"
	"github.com/jba/treemap/rng"
)

// Config controls a stress run.
type Config struct {
	// Size bounds the keys: they lie in [0, Size).
	Size int

	// Seed seeds the random source. Runs with equal configs are identical.
	Seed uint64

	// MaxDepth limits view nesting. Zero means nest until views are
	// too small to split.
	MaxDepth int

	Logger *zap.Logger
}

// DefaultConfig returns the configuration used by the tests.
func DefaultConfig() Config {
	return Config{
		Size:     1000,
		Seed:     666,
		MaxDepth: 0,
		Logger:   zap.NewNop(),
	}
}

// A Report summarizes a successful run.
type Report struct {
	Views    int // views bashed
	Checks   int // view checks passed
	Depth    int // deepest nesting reached
	Puts     int // puts that added a key
	Removes  int // removals that found a key
	Rejected int // puts refused as out of range
}

// ErrMismatch is returned when the map disagrees with the reference set.
var ErrMismatch = errors.New("map disagrees with reference set")

type runner struct {
	ctx context.Context
	cfg Config
	log *zap.Logger
	r   *rand.Rand
	m   *treemap.Map[int, int]
	bs  *refset.Set
	rep Report
}

// Run performs one stress run. It stops at the first disagreement,
// returning an error that wraps [ErrMismatch], or when ctx is done.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Size <= 0 {
		return Report{}, errors.Newf("stress: size must be positive, got %d", cfg.Size)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &runner{
		ctx: ctx,
		cfg: cfg,
		log: cfg.Logger.With(zap.Uint64("seed", cfg.Seed), zap.Int("size", cfg.Size)),
		r:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		m:   treemap.New[int, int](),
		bs:  refset.New(cfg.Size),
	}
	err := s.run()
	if err != nil {
		s.log.Error("stress run failed", zap.Error(err))
		return s.rep, err
	}
	s.log.Info("stress run complete",
		zap.Int("views", s.rep.Views),
		zap.Int("checks", s.rep.Checks),
		zap.Int("depth", s.rep.Depth),
		zap.Int("puts", s.rep.Puts),
		zap.Int("removes", s.rep.Removes),
		zap.Int("rejected", s.rep.Rejected),
		zap.Int("final_len", s.m.Len()),
	)
	return s.rep, nil
}

func (s *runner) run() error {
	n := s.cfg.Size
	for range 2 * n / 3 {
		s.put(s.r.IntN(n))
	}
	full := treemap.NewView(s.m, rng.Full[int]())
	if err := s.checkBoth(full, 0, n-1, true); err != nil {
		return err
	}
	if err := s.mutate(full, 0, n-1, false); err != nil {
		return err
	}
	if err := s.checkBoth(full, 0, n-1, true); err != nil {
		return err
	}
	return s.bash(s.m.SubMap(0, true, n, false), 0, n-1, true, 1)
}

func (s *runner) put(k int) {
	if _, replaced := s.m.Put(k, 2*k); !replaced {
		s.bs.Add(k)
		s.rep.Puts++
	}
}

// putView puts k through v, which must refuse keys outside [lo, hi].
// It reports whether a key was added.
func (s *runner) putView(v treemap.View[int, int], k, lo, hi int) (bool, error) {
	_, replaced, err := v.Put(k, 2*k)
	inside := k >= lo && k <= hi
	switch {
	case inside && err != nil:
		return false, errors.Wrapf(err, "put %d into %s", k, v.Range())
	case !inside && !errors.Is(err, treemap.ErrOutOfRange):
		return false, errors.Wrapf(ErrMismatch, "put %d into %s: got error %v, want out of range", k, v.Range(), err)
	case !inside:
		s.rep.Rejected++
		return false, nil
	}
	if replaced {
		return false, nil
	}
	s.bs.Add(k)
	s.rep.Puts++
	return true, nil
}

func (s *runner) remove(v treemap.View[int, int], k int) bool {
	if _, ok := v.Remove(k); ok {
		s.bs.Delete(k)
		s.rep.Removes++
		return true
	}
	return false
}

// mutate removes about half of the keys of v, some directly and some
// through a cursor, then adds random keys until v is back to its
// former size. Keys lie in [lo, hi]. If sub is set, puts are also
// attempted just outside the range and must be refused.
func (s *runner) mutate(v treemap.View[int, int], lo, hi int, sub bool) error {
	size := v.Len()
	width := hi - lo + 1

	for range max(width/2, 0) {
		s.remove(v, lo-5+s.r.IntN(width+10))
	}

	c := v.KeySet().Cursor()
	for c.Next() {
		if s.r.IntN(2) == 0 {
			k := c.Key()
			if err := c.Remove(); err != nil {
				return errors.Wrapf(err, "cursor remove %d from %s", k, v.Range())
			}
			s.bs.Delete(k)
			s.rep.Removes++
		}
	}
	if err := c.Err(); err != nil {
		return err
	}

	n := v.Len()
	for n < size {
		var k int
		if sub {
			k = lo - 5 + s.r.IntN(width+10)
		} else {
			k = lo + s.r.IntN(width)
		}
		added, err := s.putView(v, k, lo, hi)
		if err != nil {
			return err
		}
		if added {
			n++
		}
	}
	return nil
}

// bash checks and mutates v, whose keys lie in [lo, hi], then recurses
// into a random head, tail and sub view of it.
func (s *runner) bash(v treemap.View[int, int], lo, hi int, asc bool, depth int) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	s.rep.Views++
	s.rep.Depth = max(s.rep.Depth, depth)
	s.log.Debug("bash view",
		zap.Stringer("range", v.Range()),
		zap.Int("lo", lo),
		zap.Int("hi", hi),
		zap.Bool("ascending", asc),
		zap.Int("depth", depth),
	)

	if err := s.checkBoth(v, lo, hi, asc); err != nil {
		return err
	}
	if err := s.mutate(v, lo, hi, true); err != nil {
		return err
	}
	if err := s.checkBoth(v, lo, hi, asc); err != nil {
		return err
	}

	if hi-lo < 2 || (s.cfg.MaxDepth > 0 && depth >= s.cfg.MaxDepth) {
		return nil
	}
	mid := (lo + hi) / 2
	adj := func(incl bool) int {
		if incl {
			return 0
		}
		return 1
	}
	// pick bashes w or its reverse, at random.
	pick := func(w treemap.View[int, int], lo, hi int, asc bool) error {
		if s.r.IntN(2) == 0 {
			return s.bash(w, lo, hi, asc, depth+1)
		}
		return s.bash(w.Descending(), lo, hi, !asc, depth+1)
	}

	incl := s.r.IntN(2) == 0
	hm := v.HeadMap(mid, incl)
	var err error
	if asc {
		err = pick(hm, lo, mid-adj(incl), true)
	} else {
		err = pick(hm, mid+adj(incl), hi, false)
	}
	if err != nil {
		return err
	}

	incl = s.r.IntN(2) == 0
	tm := v.TailMap(mid, incl)
	if asc {
		err = pick(tm, mid+adj(incl), hi, true)
	} else {
		err = pick(tm, lo, mid-adj(incl), false)
	}
	if err != nil {
		return err
	}

	width := hi - lo + 1
	e0, e1 := lo+s.r.IntN(width), lo+s.r.IntN(width)
	if e0 > e1 {
		e0, e1 = e1, e0
	}
	lowIncl, highIncl := s.r.IntN(2) == 0, s.r.IntN(2) == 0
	var sm treemap.View[int, int]
	if asc {
		sm = v.SubMap(e0, lowIncl, e1, highIncl)
	} else {
		sm = v.SubMap(e1, highIncl, e0, lowIncl)
	}
	return pick(sm, e0+adj(lowIncl), e1-adj(highIncl), asc)
}

func (s *runner) checkBoth(v treemap.View[int, int], lo, hi int, asc bool) error {
	if err := s.check(v, lo, hi, asc); err != nil {
		return err
	}
	return s.check(v.Descending(), lo, hi, !asc)
}

// check compares v, whose keys lie in [lo, hi], against the reference set.
func (s *runner) check(v treemap.View[int, int], lo, hi int, asc bool) error {
	ref := refset.Window{Set: s.bs, Min: lo, Max: hi, Ascending: asc}
	mismatch := func(format string, args ...any) error {
		return errors.Wrapf(ErrMismatch, "view %s [%d, %d]: "+format,
			append([]any{v.Range(), lo, hi}, args...)...)
	}

	size := 0
	for i := lo; i <= hi; i++ {
		has := s.bs.Has(i)
		if v.ContainsKey(i) != has {
			return mismatch("ContainsKey(%d) = %t", i, !has)
		}
		if has {
			size++
		}
	}
	if got := v.Len(); got != size {
		return mismatch("Len() = %d, want %d", got, size)
	}

	n, prev := 0, -1
	c := v.KeySet().Cursor()
	for c.Next() {
		k := c.Key()
		if !s.bs.Has(k) {
			return mismatch("cursor yielded absent key %d", k)
		}
		if prev >= 0 && (asc && k <= prev || !asc && k >= prev) {
			return mismatch("cursor yielded %d after %d", k, prev)
		}
		prev = k
		n++
	}
	if err := c.Err(); err != nil {
		return err
	}
	if n != size {
		return mismatch("cursor yielded %d keys, want %d", n, size)
	}

	for k := lo - 1; k <= hi+1; k++ {
		for _, nav := range []struct {
			name string
			got  func(int) (int, bool)
			want func(int) int
		}{
			{"LowerKey", v.LowerKey, ref.Lower},
			{"FloorKey", v.FloorKey, ref.Floor},
			{"CeilingKey", v.CeilingKey, ref.Ceiling},
			{"HigherKey", v.HigherKey, ref.Higher},
		} {
			got, ok := nav.got(k)
			if !ok {
				got = -1
			}
			if want := nav.want(k); got != want {
				return mismatch("%s(%d) = %d, want %d", nav.name, k, got, want)
			}
		}
	}

	first, ferr := v.FirstKey()
	last, lerr := v.LastKey()
	if size == 0 {
		if !errors.Is(ferr, treemap.ErrNoSuchElement) || !errors.Is(lerr, treemap.ErrNoSuchElement) {
			return mismatch("empty view: FirstKey, LastKey errors = %v, %v", ferr, lerr)
		}
	} else {
		if ferr != nil || first != ref.First() {
			return mismatch("FirstKey() = %d, %v, want %d", first, ferr, ref.First())
		}
		if lerr != nil || last != ref.Last() {
			return mismatch("LastKey() = %d, %v, want %d", last, lerr, ref.Last())
		}
	}
	s.rep.Checks++
	return nil
}
