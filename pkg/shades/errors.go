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
	"errors"

	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/jeremyhahn/go-shades/pkg/polynomial"
)

var (
	// ErrInsufficientShares is returned when fewer shares than the threshold are available.
	ErrInsufficientShares = errors.New("shades: insufficient shares")

	// ErrInterpolationMismatch is returned when a surplus share does not lie on the
	// interpolated polynomial. Either k is wrong or a surplus share was forged.
	ErrInterpolationMismatch = errors.New("shades: interpolation mismatch")

	// ErrCheatingDetected is returned when the coefficient ratios of the two
	// recovered polynomials disagree.
	ErrCheatingDetected = errors.New("shades: cheating detected")

	// ErrInvalidThreshold is returned for a threshold below 1.
	ErrInvalidThreshold = errors.New("shades: invalid threshold")

	// ErrLengthMismatch is returned when recovery-mode sequences differ in length.
	ErrLengthMismatch = errors.New("shades: abscissa and share sequences differ in length")

	// ErrInvalidShareCount is returned when n cannot be issued as distinct nonzero abscissas.
	ErrInvalidShareCount = errors.New("shades: invalid share count")

	// ErrInvalidRatio is returned when the distribution ratio is zero.
	ErrInvalidRatio = errors.New("shades: invalid ratio")

	// ErrDegenerateBlock is returned when a secret's first two coefficients
	// cannot be inverted by the cheating check.
	ErrDegenerateBlock = errors.New("shades: degenerate block")

	// ErrDivisionByZero is the field error surfaced by reconstruction.
	ErrDivisionByZero = gf251.ErrDivisionByZero

	// ErrIndexOutOfRange is the polynomial error surfaced by the cheating check.
	ErrIndexOutOfRange = polynomial.ErrIndexOutOfRange
)

// ErrorType returns a stable short name for err, used as a metrics label.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientShares):
		return "insufficient_shares"
	case errors.Is(err, ErrInterpolationMismatch):
		return "interpolation_mismatch"
	case errors.Is(err, ErrCheatingDetected):
		return "cheating_detected"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, ErrInvalidThreshold):
		return "invalid_threshold"
	default:
		return "unknown"
	}
}
