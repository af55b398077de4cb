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

	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/jeremyhahn/go-shades/pkg/polynomial"
)

// Point is a single (x, y) evaluation used by one interpolation channel.
type Point struct {
	X gf251.Element
	Y gf251.Element
}

// Interpolate recovers the degree k-1 polynomial through the first k points
// and checks that every remaining point lies on it.
//
// Coefficients are extracted lowest degree first. Each round takes the value
// at zero of the polynomial through the working set, which is the current
// constant term a, then drops one point and deflates the others onto
// (P(x) - a) / x.
func Interpolate(points []Point, k int) (*polynomial.Polynomial, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, len(points))
	}

	// working set is scratch state; the caller's points are left untouched
	working := make([]Point, k)
	copy(working, points[:k])
	surplus := points[k:]

	coefficients := make([]gf251.Element, 0, k)
	for len(working) > 0 {
		a, err := constantTerm(working)
		if err != nil {
			return nil, err
		}
		coefficients = append(coefficients, a)

		working = working[:len(working)-1]
		if err := deflate(working, a); err != nil {
			return nil, err
		}
	}

	p := polynomial.New(coefficients)
	for _, pt := range surplus {
		if got := p.Evaluate(int(pt.X)); got != pt.Y {
			return nil, fmt.Errorf("%w: share at x=%d has %s, polynomial gives %s",
				ErrInterpolationMismatch, pt.X, pt.Y, got)
		}
	}
	return p, nil
}

// constantTerm returns sum(L_p(0) * y_p) over the working set.
func constantTerm(working []Point) (gf251.Element, error) {
	var sum gf251.Element
	for i := range working {
		weight, err := basisAtZero(working, i)
		if err != nil {
			return 0, err
		}
		sum = gf251.Add(sum, gf251.Mul(weight, working[i].Y))
	}
	return sum, nil
}

// basisAtZero computes L_i(0) = prod_{j != i} (-x_j) / (x_i - x_j).
// Points are compared by position so a repeated abscissa yields a zero
// denominator instead of being skipped.
func basisAtZero(working []Point, i int) (gf251.Element, error) {
	result := gf251.Element(1)
	xi := working[i].X
	for j := range working {
		if j == i {
			continue
		}
		xj := working[j].X
		inv, err := gf251.Inverse(gf251.Sub(xi, xj))
		if err != nil {
			return 0, fmt.Errorf("abscissas %s and %s coincide: %w", xi, xj, err)
		}
		result = gf251.Mul(result, gf251.Mul(gf251.Neg(xj), inv))
	}
	return result, nil
}

// deflate replaces every y with (y - a) / x.
func deflate(working []Point, a gf251.Element) error {
	for i := range working {
		inv, err := gf251.Inverse(working[i].X)
		if err != nil {
			return fmt.Errorf("cannot deflate at abscissa %s: %w", working[i].X, err)
		}
		working[i].Y = gf251.Mul(gf251.Sub(working[i].Y, a), inv)
	}
	return nil
}
