// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"log/slog"
	"math"
	"math/rand" // RNG source for jittered builders

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithScale multiplies every canonical coordinate by s.
// Panics if s is not a positive finite number.
// Complexity: O(1) time, O(1) space.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOrigin translates every component so that its canonical origin lands on o.
// Complexity: O(1) time, O(1) space.
func WithOrigin(o r3.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithRand provides an explicit RNG for jittered builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter perturbs every position by Gaussian noise of standard deviation
// sigma per axis. Topology is unaffected. Requires WithSeed or WithRand.
// Panics if sigma < 0.
// Complexity: O(1) time, O(1) space.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

// WithLogger sets the logger BuildMesh passes to mesh.New. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
