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

package storage

import (
	"fmt"
	"path"
	"strings"
)

const (
	shareSetPrefix = "sharesets/"
	shareSetSuffix = ".yaml"
)

// ShareSetPath returns the storage key for a share set: sharesets/{id}.yaml
func ShareSetPath(id string) string {
	return shareSetPrefix + id + shareSetSuffix
}

// ListShareSets returns the IDs of every stored share set.
func ListShareSets(backend Backend) ([]string, error) {
	keys, err := backend.List(shareSetPrefix)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		if !strings.HasSuffix(k, shareSetSuffix) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(k, shareSetPrefix), shareSetSuffix)
		if id != "" && !strings.Contains(id, "/") {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ValidateKey rejects empty keys, absolute keys, null bytes and traversal.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	if strings.Contains(key, "\x00") {
		return fmt.Errorf("%w: key contains null byte", ErrInvalidKey)
	}
	if strings.HasPrefix(key, "/") || strings.HasPrefix(key, "\\") {
		return fmt.Errorf("%w: key cannot be an absolute path", ErrInvalidKey)
	}
	cleaned := path.Clean(strings.ReplaceAll(key, "\\", "/"))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: key contains path traversal", ErrInvalidKey)
	}
	return nil
}
