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

// Package shareset serializes the shares of one distribution so they can be
// handed out, stored and later fed back into reconstruction.
package shareset

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/jeremyhahn/go-shades/pkg/shades"
	"gopkg.in/yaml.v3"
)

// ErrInvalidShareSet is returned by Validate and Unmarshal.
var ErrInvalidShareSet = errors.New("shareset: invalid share set")

// Share is one participant's entry.
type Share struct {
	X int `yaml:"x" json:"x"`
	F int `yaml:"f" json:"f"`
	G int `yaml:"g" json:"g"`
}

// ShareSet is the serializable form of a share store.
type ShareSet struct {
	ID        string    `yaml:"id" json:"id"`
	Threshold int       `yaml:"threshold" json:"threshold"`
	Total     int       `yaml:"total" json:"total"`
	Modulus   int       `yaml:"modulus" json:"modulus"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	Shares    []Share   `yaml:"shares" json:"shares"`
}

// New captures every pair of store together with the threshold needed to
// reconstruct it.
func New(store *shades.Store, threshold int) *ShareSet {
	pairs := store.Pairs()
	shares := make([]Share, len(pairs))
	for i, p := range pairs {
		shares[i] = Share{X: p.X, F: p.F.Int(), G: p.G.Int()}
	}
	return &ShareSet{
		ID:        uuid.New().String(),
		Threshold: threshold,
		Total:     len(shares),
		Modulus:   gf251.Modulus,
		CreatedAt: time.Now().UTC(),
		Shares:    shares,
	}
}

// Validate checks that the set can be fed to reconstruction. The header
// total must match the shares held, which must reach the threshold. Field
// values must be in range and abscissas nonzero and distinct.
func (s *ShareSet) Validate() error {
	if s.Modulus != gf251.Modulus {
		return fmt.Errorf("%w: modulus %d, expected %d", ErrInvalidShareSet, s.Modulus, gf251.Modulus)
	}
	if s.Threshold < 2 {
		return fmt.Errorf("%w: threshold %d must be at least 2", ErrInvalidShareSet, s.Threshold)
	}
	if s.Total != len(s.Shares) {
		return fmt.Errorf("%w: total %d does not match %d shares", ErrInvalidShareSet, s.Total, len(s.Shares))
	}
	if len(s.Shares) < s.Threshold {
		return fmt.Errorf("%w: %d shares are below threshold %d", ErrInvalidShareSet, len(s.Shares), s.Threshold)
	}

	seen := make(map[int]bool, len(s.Shares))
	for i, share := range s.Shares {
		if share.X < 1 || share.X >= gf251.Modulus {
			return fmt.Errorf("%w: share %d has abscissa %d outside [1, %d]", ErrInvalidShareSet, i, share.X, gf251.Modulus-1)
		}
		if seen[share.X] {
			return fmt.Errorf("%w: abscissa %d appears more than once", ErrInvalidShareSet, share.X)
		}
		seen[share.X] = true
		if !inField(share.F) || !inField(share.G) {
			return fmt.Errorf("%w: share %d has a value outside [0, %d]", ErrInvalidShareSet, i, gf251.Modulus-1)
		}
	}
	return nil
}

// Store rebuilds a share store in recovery mode.
func (s *ShareSet) Store() (*shades.Store, error) {
	xs := make([]int, len(s.Shares))
	fs := make([]int, len(s.Shares))
	gs := make([]int, len(s.Shares))
	for i, share := range s.Shares {
		xs[i], fs[i], gs[i] = share.X, share.F, share.G
	}
	return shades.NewStore(xs, fs, gs)
}

// Subset returns a copy keeping only the shares at the given abscissas.
// Total follows the kept shares; the result may fall below the threshold.
func (s *ShareSet) Subset(xs []int) (*ShareSet, error) {
	want := make(map[int]bool, len(xs))
	for _, x := range xs {
		want[x] = true
	}

	sub := *s
	sub.Shares = make([]Share, 0, len(xs))
	for _, share := range s.Shares {
		if want[share.X] {
			sub.Shares = append(sub.Shares, share)
			delete(want, share.X)
		}
	}
	if len(want) > 0 {
		missing := make([]int, 0, len(want))
		for x := range want {
			missing = append(missing, x)
		}
		sort.Ints(missing)
		return nil, fmt.Errorf("%w: no share at abscissas %v", ErrInvalidShareSet, missing)
	}
	sub.Total = len(sub.Shares)
	return &sub, nil
}

// Marshal encodes the set as YAML.
func (s *ShareSet) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Unmarshal decodes and validates a YAML share set.
func Unmarshal(data []byte) (*ShareSet, error) {
	var s ShareSet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareSet, err)
	}
	if s.Total == 0 {
		s.Total = len(s.Shares)
	}
	if s.Modulus == 0 {
		s.Modulus = gf251.Modulus
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile loads a share set from a YAML file.
func ReadFile(path string) (*ShareSet, error) {
	// #nosec G304 - share file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read share set: %w", err)
	}
	return Unmarshal(data)
}

// WriteFile stores the set as YAML with owner-only permissions.
func (s *ShareSet) WriteFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode share set: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write share set: %w", err)
	}
	return nil
}

func inField(v int) bool {
	return v >= 0 && v < gf251.Modulus
}
