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
	"testing"

	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/jeremyhahn/go-shades/pkg/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheatingRatios(t *testing.T) {
	f := polynomial.FromInts([]int{3, 5})
	g := polynomial.FromInts([]int{245, 241})

	r0, r1, err := CheatingRatios(f, g)
	require.NoError(t, err)
	assert.Equal(t, gf251.Element(2), r0)
	assert.Equal(t, gf251.Element(2), r1)
	assert.NoError(t, DetectCheating(f, g))
}

func TestDetectCheating(t *testing.T) {
	tests := []struct {
		name    string
		f, g    []int
		wantErr error
	}{
		{name: "honest", f: []int{7, 11, 13}, g: []int{216, 196, 186}},
		{name: "forged f share", f: []int{10, 134, 139}, g: []int{216, 196, 186}, wantErr: ErrCheatingDetected},
		{name: "forged g share", f: []int{7, 11, 13}, g: []int{195, 224, 179}, wantErr: ErrCheatingDetected},
		{name: "higher degree not compared", f: []int{7, 11, 13}, g: []int{216, 196, 1}},
		{name: "zero constant term", f: []int{0, 11}, g: []int{0, 196}, wantErr: ErrDivisionByZero},
		{name: "zero linear term", f: []int{7, 0}, g: []int{216, 0}, wantErr: ErrDivisionByZero},
		{name: "constant polynomials", f: []int{7}, g: []int{216}, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DetectCheating(polynomial.FromInts(tt.f), polynomial.FromInts(tt.g))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
