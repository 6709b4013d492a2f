// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • scale   = 1.0
//   • origin  = (0,0,0)
//   • rng     = nil          (pure/deterministic unless seeded)
//   • jitter  = 0.0          (exact canonical positions)
//   • logger  = slog.Default()

package builder

import (
	"log/slog"
	"math/rand" // RNG for jittered positions

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// Uniform scale applied to canonical coordinates (>0).
	scale float64
	// Translation applied after scaling.
	origin r3.Vec
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Standard deviation of per-axis Gaussian jitter (>=0).
	jitter float64
	// Logger handed to mesh.New by BuildMesh.
	logger *slog.Logger
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultScale  = 1.0 // canonical unit coordinates
	defaultJitter = 0.0 // exact positions
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale:  defaultScale,
		rng:    nil,
		jitter: defaultJitter,
		logger: slog.Default(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a canonical coordinate to its final position: scale, translate,
// then jitter. It fails only when jitter is requested without an RNG.
func (cfg *builderConfig) place(method string, p r3.Vec) (r3.Vec, error) {
	q := r3.Add(cfg.origin, r3.Scale(cfg.scale, p))
	if cfg.jitter == 0 {
		return q, nil
	}
	if cfg.rng == nil {
		return r3.Vec{}, builderErrorf(method, ErrNeedRandSource, "jitter %g without WithSeed/WithRand", cfg.jitter)
	}
	q.X += cfg.rng.NormFloat64() * cfg.jitter
	q.Y += cfg.rng.NormFloat64() * cfg.jitter
	q.Z += cfg.rng.NormFloat64() * cfg.jitter

	return q, nil
}

// emit places every canonical coordinate and appends the vertices to s,
// returning the id of the first one.
func (cfg *builderConfig) emit(method string, s *Soup, coords []r3.Vec) (int, error) {
	base := len(s.Positions)
	for _, p := range coords {
		q, err := cfg.place(method, p)
		if err != nil {
			// Roll back so a failed constructor leaves no partial component.
			s.Positions = s.Positions[:base]
			return 0, err
		}
		s.addVertex(q)
	}

	return base, nil
}
