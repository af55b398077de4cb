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

// Package gf251 implements arithmetic in the prime field GF(251).
//
// Every operation returns an Element in the canonical range [0, 250].
// Values coming from outside the field (share values, abscissas, secret
// coefficients) must pass through Normalize before they are compared or
// inverted.
package gf251

import (
	"errors"
	"strconv"
)

// Modulus is the field characteristic.
const Modulus = 251

// ErrDivisionByZero is returned when the inverse of zero is requested.
var ErrDivisionByZero = errors.New("gf251: division by zero")

// Element is a canonical field element in [0, Modulus-1].
type Element uint8

// inverseTable[v] holds the multiplicative inverse of v. Entry 0 is unused.
var inverseTable [Modulus]Element

func init() {
	// Fermat: v^(p-2) is the inverse of v for nonzero v
	for v := 1; v < Modulus; v++ {
		inverseTable[v] = pow(Element(v), Modulus-2)
	}
}

// Normalize maps any integer, including negative values and values >= Modulus,
// to its canonical representative.
func Normalize(v int) Element {
	r := v % Modulus
	if r < 0 {
		r += Modulus
	}
	return Element(r)
}

// Inverse returns w such that v*w = 1 (mod 251).
// Returns ErrDivisionByZero for v = 0.
func Inverse(v Element) (Element, error) {
	v = reduce(v)
	if v == 0 {
		return 0, ErrDivisionByZero
	}
	return inverseTable[v], nil
}

// Add returns a + b.
func Add(a, b Element) Element {
	return Element((uint16(a) + uint16(b)) % Modulus)
}

// Sub returns a - b.
func Sub(a, b Element) Element {
	return Element((uint16(reduce(a)) + Modulus - uint16(reduce(b))) % Modulus)
}

// Mul returns a * b.
func Mul(a, b Element) Element {
	return Element((uint32(a) * uint32(b)) % Modulus)
}

// Neg returns the additive inverse of a.
func Neg(a Element) Element {
	return Sub(0, a)
}

// Div returns a * inverse(b), propagating ErrDivisionByZero.
func Div(a, b Element) (Element, error) {
	inv, err := Inverse(b)
	if err != nil {
		return 0, err
	}
	return Mul(a, inv), nil
}

// Int returns the element as an int.
func (e Element) Int() int {
	return int(e)
}

// String implements fmt.Stringer.
func (e Element) String() string {
	return strconv.Itoa(int(e))
}

// reduce guards against Element values built by conversion rather than
// Normalize (uint8 can hold 251..255).
func reduce(v Element) Element {
	return v % Modulus
}

func pow(base Element, exp int) Element {
	result := Element(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		exp >>= 1
	}
	return result
}
