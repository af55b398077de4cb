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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeremyhahn/go-shades/pkg/logging"
	"github.com/jeremyhahn/go-shades/pkg/metrics"
	"github.com/jeremyhahn/go-shades/pkg/polynomial"
)

// Session reconstructs the two polynomials held by one share store.
// A session performs no locking; the store it wraps must not change while
// Reconstruct runs, which Store guarantees by being immutable.
type Session struct {
	id     string
	store  *Store
	logger *logging.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSession creates a reconstruction session over store.
func NewSession(store *Store, opts ...Option) (*Session, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	s := &Session{
		id:     uuid.New().String(),
		store:  store,
		logger: logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// SharePair looks up the shares stored at abscissa x.
func (s *Session) SharePair(x int) (Pair, bool) {
	return s.store.Pair(x)
}

// Reconstruct recovers F and G from the store using threshold k.
//
// The first k shares in ascending abscissa order are interpolated; every
// other share must agree with the result. F and G must then pass the ratio
// check. Nothing is returned unless every step succeeds.
func (s *Session) Reconstruct(k int) (f, g *polynomial.Polynomial, err error) {
	start := time.Now()
	defer func() {
		s.record(k, err, time.Since(start))
	}()

	if k < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, k)
	}
	if s.store.Len() < k {
		return nil, nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, s.store.Len())
	}

	fPoints, gPoints := s.store.channels()
	s.logger.Debug("interpolating", "session", s.id, "threshold", k, "shares", len(fPoints))

	f, err = Interpolate(fPoints, k)
	if err != nil {
		return nil, nil, fmt.Errorf("f channel: %w", err)
	}
	g, err = Interpolate(gPoints, k)
	if err != nil {
		return nil, nil, fmt.Errorf("g channel: %w", err)
	}

	if err = DetectCheating(f, g); err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

func (s *Session) record(k int, err error, elapsed time.Duration) {
	metrics.RecordShares(metrics.OpReconstruct, s.store.Len())
	if err != nil {
		metrics.RecordOperation(metrics.OpReconstruct, metrics.StatusError, elapsed.Seconds())
		metrics.RecordError(metrics.OpReconstruct, ErrorType(err))
		s.logger.Warn("reconstruction failed",
			"session", s.id,
			"threshold", k,
			"shares", s.store.Len(),
			"error_type", ErrorType(err),
			"error", err)
		return
	}
	metrics.RecordOperation(metrics.OpReconstruct, metrics.StatusSuccess, elapsed.Seconds())
	s.logger.Debug("reconstructed", "session", s.id, "threshold", k, "elapsed", elapsed)
}

// Reconstruct is a convenience wrapper that runs a single session over store.
func Reconstruct(store *Store, k int) (f, g *polynomial.Polynomial, err error) {
	session, err := NewSession(store)
	if err != nil {
		return nil, nil, err
	}
	return session.Reconstruct(k)
}
