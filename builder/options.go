// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/jbeda/geom"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
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
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible shuffles/draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCenter moves the center of circular layouts to (x, y).
func WithCenter(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.center = geom.Coord{X: x, Y: y}
	}
}

// WithRadius sets the circumradius of circular layouts. Panics if r <= 0.
func WithRadius(r float64) BuilderOption {
	if r <= 0 {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithSpacing sets the grid step. Panics if s <= 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}
