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

package gf251

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want Element
	}{
		{name: "zero", in: 0, want: 0},
		{name: "in range", in: 17, want: 17},
		{name: "upper bound", in: 250, want: 250},
		{name: "modulus", in: 251, want: 0},
		{name: "above modulus", in: 486, want: 235},
		{name: "negative one", in: -1, want: 250},
		{name: "negative multiple", in: -502, want: 0},
		{name: "large negative", in: -1000, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestInverse(t *testing.T) {
	for v := 1; v < Modulus; v++ {
		inv, err := Inverse(Element(v))
		require.NoError(t, err)
		assert.Equal(t, Element(1), Mul(Element(v), inv), "inverse of %d", v)
	}
}

func TestInverseOfZero(t *testing.T) {
	inv, err := Inverse(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
	assert.Equal(t, Element(0), inv)
}

func TestKnownInverses(t *testing.T) {
	tests := []struct {
		v, want Element
	}{
		{1, 1},
		{2, 126},
		{3, 84},
		{250, 250},
	}
	for _, tt := range tests {
		inv, err := Inverse(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, inv, "inverse of %d", tt.v)
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, Element(0), Add(250, 1))
	assert.Equal(t, Element(249), Add(250, 250))
	assert.Equal(t, Element(250), Sub(0, 1))
	assert.Equal(t, Element(5), Sub(10, 5))
	assert.Equal(t, Element(245), Neg(6))
	assert.Equal(t, Element(0), Neg(0))
	assert.Equal(t, Element(1), Mul(250, 250))
	assert.Equal(t, Element(235), Mul(5, 47))
}

func TestArithmeticMatchesIntegers(t *testing.T) {
	for a := 0; a < Modulus; a += 7 {
		for b := 0; b < Modulus; b += 11 {
			ea, eb := Element(a), Element(b)
			assert.Equal(t, Normalize(a+b), Add(ea, eb))
			assert.Equal(t, Normalize(a-b), Sub(ea, eb))
			assert.Equal(t, Normalize(a*b), Mul(ea, eb))
		}
	}
}

func TestDiv(t *testing.T) {
	q, err := Div(10, 4)
	require.NoError(t, err)
	assert.Equal(t, Element(10), Mul(q, 4))

	_, err = Div(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestElementString(t *testing.T) {
	assert.Equal(t, "235", Element(235).String())
	assert.Equal(t, 42, Element(42).Int())
}
