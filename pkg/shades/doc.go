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

// Package shades implements a two-polynomial threshold secret sharing
// scheme over GF(251) with cheating detection.
//
// # Scheme
//
// A secret of k coefficients a0..a(k-1) becomes the polynomial F. A random
// nonzero ratio R yields a second polynomial G = -R*F. Participant i
// receives the pair (F(i), G(i)) for i = 1..n:
//
//	block, err := shades.NewRandomBlock([]int{3, 5})
//	store, err := shades.Distribute(block, 4)
//
// # Reconstruction
//
// Any k pairs rebuild F and G independently. Interpolation extracts the
// coefficients lowest degree first: the value at zero of the polynomial
// through the working set is the constant term a, after which every point
// is deflated to (y - a) / x and one point is dropped. Shares beyond the
// first k must lie on the recovered polynomials, otherwise reconstruction
// fails with ErrInterpolationMismatch.
//
//	session, err := shades.NewSession(store)
//	f, g, err := session.Reconstruct(2)
//
// # Cheating detection
//
// For honest shares -g0/f0 == -g1/f1 == R. A forged share inside the working
// set perturbs the coefficients of F and G unevenly and the ratios diverge,
// which is reported as ErrCheatingDetected. Only degrees 0 and 1 are
// compared; tampering that only moves higher degree terms is caught solely
// through surplus shares.
//
// # Errors
//
// Every failure is terminal for the call and no partial result is returned.
// Use errors.Is with ErrInsufficientShares, ErrInterpolationMismatch,
// ErrCheatingDetected, ErrDivisionByZero or ErrIndexOutOfRange.
package shades
