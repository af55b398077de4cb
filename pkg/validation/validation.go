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

// Package validation checks user supplied identifiers before they reach
// storage or logs.
package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxIDLength bounds share set identifiers.
const MaxIDLength = 128

// ErrInvalidID is returned for share set IDs that are not safe to use as a
// storage key component.
var ErrInvalidID = errors.New("invalid share set ID")

// idPattern matches generated UUIDs as well as hand-picked names
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

// ValidateShareSetID validates a share set identifier.
// Prevents path traversal and injection by:
// - Rejecting empty strings
// - Rejecting null bytes and control characters
// - Rejecting absolute paths and parent directory references
// - Allowing only safe characters
// - Enforcing length limits
func ValidateShareSetID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: cannot be empty", ErrInvalidID)
	}

	if strings.Contains(id, "\x00") {
		return fmt.Errorf("%w: contains null byte", ErrInvalidID)
	}

	// Check length before the pattern match
	if len(id) > MaxIDLength {
		return fmt.Errorf("%w: too long (max %d characters)", ErrInvalidID, MaxIDLength)
	}

	if filepath.IsAbs(id) {
		return fmt.Errorf("%w: cannot be an absolute path", ErrInvalidID)
	}

	cleaned := filepath.Clean(id)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return fmt.Errorf("%w: contains path traversal attempt", ErrInvalidID)
	}

	for _, r := range id {
		if r < 32 || r == 127 {
			return fmt.Errorf("%w: contains control characters", ErrInvalidID)
		}
	}

	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: contains invalid characters (allowed: a-z, A-Z, 0-9, -, _, .)", ErrInvalidID)
	}

	return nil
}

// SanitizeForLog strips control characters and truncates s so it can be
// logged without forging log lines.
func SanitizeForLog(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)

	if len(s) > 256 {
		s = s[:256] + "...[truncated]"
	}

	return s
}
