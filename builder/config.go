// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil          (pure/deterministic unless seeded)
//   • center  = (200, 200)   (polygon and wheel placement)
//   • radius  = 100
//   • spacing = 1            (grid step)

package builder

import (
	"math/rand"

	"github.com/jbeda/geom"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Placement of circular layouts.
	center geom.Coord
	radius float64

	// Distance between neighbouring grid vertices.
	spacing float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultCenterX = 200.0
	defaultCenterY = 200.0
	defaultRadius  = 100.0
	defaultSpacing = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		center:  geom.Coord{X: defaultCenterX, Y: defaultCenterY},
		radius:  defaultRadius,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
