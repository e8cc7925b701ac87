// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete, e.g. a
// nil constructor or a rejected edge.
var ErrConstructFailed = errors.New("builder: construction failed")
