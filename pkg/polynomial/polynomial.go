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

// Package polynomial provides immutable polynomials over GF(251).
//
// Coefficients are stored in ascending degree order: index 0 holds the
// constant term.
package polynomial

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeremyhahn/go-shades/pkg/gf251"
)

// ErrIndexOutOfRange is returned when a coefficient beyond the degree is requested.
var ErrIndexOutOfRange = errors.New("polynomial: coefficient index out of range")

// Polynomial is an ordered coefficient sequence over GF(251).
type Polynomial struct {
	coefficients []gf251.Element
}

// New creates a polynomial from coefficients in ascending degree order.
// The slice is copied.
func New(coefficients []gf251.Element) *Polynomial {
	c := make([]gf251.Element, len(coefficients))
	copy(c, coefficients)
	return &Polynomial{coefficients: c}
}

// FromInts creates a polynomial from integer coefficients, normalizing each
// into the field.
func FromInts(coefficients []int) *Polynomial {
	c := make([]gf251.Element, len(coefficients))
	for i, v := range coefficients {
		c[i] = gf251.Normalize(v)
	}
	return &Polynomial{coefficients: c}
}

// Evaluate computes p(x) using Horner's method.
func (p *Polynomial) Evaluate(x int) gf251.Element {
	if len(p.coefficients) == 0 {
		return 0
	}

	xe := gf251.Normalize(x)
	result := p.coefficients[len(p.coefficients)-1]
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = gf251.Add(gf251.Mul(result, xe), p.coefficients[i])
	}
	return result
}

// Coefficient returns the coefficient of the x^i term.
func (p *Polynomial) Coefficient(i int) (gf251.Element, error) {
	if i < 0 || i >= len(p.coefficients) {
		return 0, fmt.Errorf("%w: index %d, degree %d", ErrIndexOutOfRange, i, p.Degree())
	}
	return p.coefficients[i], nil
}

// Degree returns the number of coefficients minus one. The empty polynomial
// has degree -1.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Coefficients returns a copy of the coefficient sequence.
func (p *Polynomial) Coefficients() []gf251.Element {
	c := make([]gf251.Element, len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// Ints returns the coefficients as plain integers.
func (p *Polynomial) Ints() []int {
	out := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = int(c)
	}
	return out
}

// Scale returns a new polynomial with every coefficient multiplied by c.
func (p *Polynomial) Scale(c gf251.Element) *Polynomial {
	scaled := make([]gf251.Element, len(p.coefficients))
	for i, v := range p.coefficients {
		scaled[i] = gf251.Mul(v, c)
	}
	return &Polynomial{coefficients: scaled}
}

// Equal reports whether both polynomials have identical coefficient sequences.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil || len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if p.coefficients[i] != other.coefficients[i] {
			return false
		}
	}
	return true
}

// String renders the polynomial as "c0 + c1x + c2x^2".
func (p *Polynomial) String() string {
	if len(p.coefficients) == 0 {
		return "0"
	}
	terms := make([]string, len(p.coefficients))
	for i, c := range p.coefficients {
		switch i {
		case 0:
			terms[i] = c.String()
		case 1:
			terms[i] = c.String() + "x"
		default:
			terms[i] = fmt.Sprintf("%sx^%d", c, i)
		}
	}
	return strings.Join(terms, " + ")
}
