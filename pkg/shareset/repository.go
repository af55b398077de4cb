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

package shareset

import (
	"fmt"
	"time"

	"github.com/jeremyhahn/go-shades/pkg/metrics"
	"github.com/jeremyhahn/go-shades/pkg/storage"
	"github.com/jeremyhahn/go-shades/pkg/validation"
)

// Repository stores share sets in a storage backend under sharesets/{id}.yaml.
type Repository struct {
	backend storage.Backend
}

// NewRepository wraps backend.
func NewRepository(backend storage.Backend) *Repository {
	return &Repository{backend: backend}
}

// Save validates and writes s.
func (r *Repository) Save(s *ShareSet) (err error) {
	start := time.Now()
	defer func() { observe(metrics.OpSave, start, err) }()

	if err := validation.ValidateShareSetID(s.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShareSet, err)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode share set %s: %w", s.ID, err)
	}
	if err := r.backend.Put(storage.ShareSetPath(s.ID), data); err != nil {
		return fmt.Errorf("failed to store share set %s: %w", s.ID, err)
	}
	return nil
}

// Load reads the share set with the given ID. Missing sets return
// storage.ErrNotFound.
func (r *Repository) Load(id string) (s *ShareSet, err error) {
	start := time.Now()
	defer func() { observe(metrics.OpLoad, start, err) }()

	if err := validation.ValidateShareSetID(id); err != nil {
		return nil, err
	}
	data, err := r.backend.Get(storage.ShareSetPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to load share set %s: %w", id, err)
	}
	return Unmarshal(data)
}

// List returns the IDs of all stored share sets.
func (r *Repository) List() ([]string, error) {
	return storage.ListShareSets(r.backend)
}

// Delete removes the share set with the given ID.
func (r *Repository) Delete(id string) error {
	if err := validation.ValidateShareSetID(id); err != nil {
		return err
	}
	if err := r.backend.Delete(storage.ShareSetPath(id)); err != nil {
		return fmt.Errorf("failed to delete share set %s: %w", id, err)
	}
	return nil
}

func observe(op string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	metrics.RecordOperation(op, status, time.Since(start).Seconds())
}
