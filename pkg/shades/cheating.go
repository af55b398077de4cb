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

// CheatingRatios returns r_i = -g_i / f_i for the constant and linear terms.
// An honest distribution gives r0 == r1 == R, the block's ratio.
func CheatingRatios(f, g *polynomial.Polynomial) (r0, r1 gf251.Element, err error) {
	if r0, err = ratio(f, g, 0); err != nil {
		return 0, 0, err
	}
	if r1, err = ratio(f, g, 1); err != nil {
		return 0, 0, err
	}
	return r0, r1, nil
}

// DetectCheating returns ErrCheatingDetected when the degree 0 and degree 1
// ratios differ. Higher degree coefficients are not compared.
func DetectCheating(f, g *polynomial.Polynomial) error {
	r0, r1, err := CheatingRatios(f, g)
	if err != nil {
		return err
	}
	if r0 != r1 {
		return fmt.Errorf("%w: r0=%s r1=%s", ErrCheatingDetected, r0, r1)
	}
	return nil
}

func ratio(f, g *polynomial.Polynomial, i int) (gf251.Element, error) {
	fi, err := f.Coefficient(i)
	if err != nil {
		return 0, err
	}
	gi, err := g.Coefficient(i)
	if err != nil {
		return 0, err
	}
	inv, err := gf251.Inverse(fi)
	if err != nil {
		return 0, fmt.Errorf("f coefficient %d is zero: %w", i, err)
	}
	return gf251.Neg(gf251.Mul(gi, inv)), nil
}
