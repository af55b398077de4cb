// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shades.
//
// go-shades is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package shades

import (
	"fmt"
	"sort"
	"time"

	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/jeremyhahn/go-shades/pkg/metrics"
)

// Pair is one participant's two shares at a public abscissa.
type Pair struct {
	X int
	F gf251.Element
	G gf251.Element
}

// String implements fmt.Stringer.
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %s, %s)", p.X, p.F, p.G)
}

type values struct {
	f gf251.Element
	g gf251.Element
}

// Store maps abscissas to their (f, g) shares. It is not modified after
// construction, so it may be read by several sessions concurrently.
type Store struct {
	values map[int]values
}

// Distribute evaluates the block's polynomials at 1..n.
func Distribute(block *Block, n int) (*Store, error) {
	if block == nil {
		return nil, fmt.Errorf("block cannot be nil")
	}
	k := block.Threshold()
	if n < k || n >= gf251.Modulus {
		return nil, fmt.Errorf("%w: n=%d, must be in [%d, %d]", ErrInvalidShareCount, n, k, gf251.Modulus-1)
	}

	start := time.Now()
	s := &Store{values: make(map[int]values, n)}
	for i := 1; i <= n; i++ {
		s.values[i] = values{f: block.F.Evaluate(i), g: block.G.Evaluate(i)}
	}
	metrics.RecordOperation(metrics.OpDistribute, metrics.StatusSuccess, time.Since(start).Seconds())
	metrics.RecordShares(metrics.OpDistribute, n)
	return s, nil
}

// NewStore zips abscissas, f-shares and g-shares positionally. A repeated
// abscissa overwrites the earlier entry; callers are responsible for
// supplying distinct abscissas.
func NewStore(xs, fs, gs []int) (*Store, error) {
	if len(xs) != len(fs) || len(xs) != len(gs) {
		return nil, fmt.Errorf("%w: x=%d f=%d g=%d", ErrLengthMismatch, len(xs), len(fs), len(gs))
	}

	s := &Store{values: make(map[int]values, len(xs))}
	for i, x := range xs {
		s.values[x] = values{f: gf251.Normalize(fs[i]), g: gf251.Normalize(gs[i])}
	}
	return s, nil
}

// NewStoreFromPairs builds a store from pairs, with the same overwrite
// semantics as NewStore.
func NewStoreFromPairs(pairs []Pair) *Store {
	s := &Store{values: make(map[int]values, len(pairs))}
	for _, p := range pairs {
		s.values[p.X] = values{f: p.F, g: p.G}
	}
	return s
}

// Pair returns the shares stored under abscissa x.
func (s *Store) Pair(x int) (Pair, bool) {
	v, ok := s.values[x]
	if !ok {
		return Pair{}, false
	}
	return Pair{X: x, F: v.f, G: v.g}, true
}

// Len returns the number of stored share pairs.
func (s *Store) Len() int {
	return len(s.values)
}

// Abscissas returns the stored abscissas in ascending order.
func (s *Store) Abscissas() []int {
	xs := make([]int, 0, len(s.values))
	for x := range s.values {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	return xs
}

// Pairs returns every share pair ordered by abscissa.
func (s *Store) Pairs() []Pair {
	xs := s.Abscissas()
	pairs := make([]Pair, len(xs))
	for i, x := range xs {
		v := s.values[x]
		pairs[i] = Pair{X: x, F: v.f, G: v.g}
	}
	return pairs
}

// Subset returns a new store holding only the listed abscissas.
// Abscissas that are not present are ignored.
func (s *Store) Subset(xs []int) *Store {
	sub := &Store{values: make(map[int]values, len(xs))}
	for _, x := range xs {
		if v, ok := s.values[x]; ok {
			sub.values[x] = v
		}
	}
	return sub
}

// channels splits the store into the f- and g-channel point lists, both in
// ascending abscissa order.
func (s *Store) channels() (fPoints, gPoints []Point) {
	pairs := s.Pairs()
	fPoints = make([]Point, len(pairs))
	gPoints = make([]Point, len(pairs))
	for i, p := range pairs {
		x := gf251.Normalize(p.X)
		fPoints[i] = Point{X: x, Y: p.F}
		gPoints[i] = Point{X: x, Y: p.G}
	}
	return fPoints, gPoints
}
