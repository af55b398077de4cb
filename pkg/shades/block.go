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
	"crypto/rand"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/jeremyhahn/go-shades/pkg/polynomial"
)

// Block is one unit of distribution: F carries the secret coefficients and
// G = -R*F, which is what lets reconstruction detect forged shares.
type Block struct {
	F *polynomial.Polynomial
	G *polynomial.Polynomial
	R gf251.Element
}

// NewBlock builds a block from k secret coefficients and the ratio r.
// The first two coefficients must be nonzero mod 251.
func NewBlock(secret []int, r int) (*Block, error) {
	if len(secret) < 2 {
		return nil, fmt.Errorf("%w: a block needs at least 2 coefficients, got %d", ErrInvalidThreshold, len(secret))
	}
	if len(secret) >= gf251.Modulus {
		return nil, fmt.Errorf("%w: %d coefficients exceed the field size", ErrInvalidThreshold, len(secret))
	}
	ratio := gf251.Normalize(r)
	if ratio == 0 {
		return nil, fmt.Errorf("%w: r=%d", ErrInvalidRatio, r)
	}

	f := polynomial.FromInts(secret)
	for i := 0; i < 2; i++ {
		if c, _ := f.Coefficient(i); c == 0 {
			return nil, fmt.Errorf("%w: coefficient %d is zero", ErrDegenerateBlock, i)
		}
	}

	return &Block{
		F: f,
		G: f.Scale(gf251.Neg(ratio)),
		R: ratio,
	}, nil
}

// NewRandomBlock builds a block with a ratio drawn from crypto/rand.
func NewRandomBlock(secret []int) (*Block, error) {
	r, err := RandomRatio(rand.Reader)
	if err != nil {
		return nil, err
	}
	return NewBlock(secret, int(r))
}

// Threshold returns k, the number of shares needed to reconstruct the block.
func (b *Block) Threshold() int {
	return b.F.Degree() + 1
}

// RandomRatio draws a uniformly distributed nonzero field element.
func RandomRatio(reader io.Reader) (gf251.Element, error) {
	buf := make([]byte, 1)
	for {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return 0, fmt.Errorf("failed to read random ratio: %w", err)
		}
		// reject 0 and 251..255 to keep the draw uniform over [1, 250]
		if buf[0] != 0 && int(buf[0]) < gf251.Modulus {
			return gf251.Element(buf[0]), nil
		}
	}
}
