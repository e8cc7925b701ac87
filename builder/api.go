// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors append to g: vertex indices start at g.VertexCount(), so
//     several constructors compose into one drawing.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/mangara/graphcore/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Append vertices after the existing ones and never touch earlier edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new graph.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []graph.GraphOption, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	// Create the target graph.
	g := graph.New(gopts...)

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is BuildGraph with default graph options and a single constructor.
func Build(con Constructor, opts ...BuilderOption) (*graph.Graph, error) {
	return BuildGraph(nil, opts, con)
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Grid builds a size×size lattice with vertex (i, j) at (i·spacing, j·spacing).
// Complexity: O(size²).
//func Grid(size int) Constructor

// ConvexPolygon builds n points on a circle joined as a cycle (n ≥ 3).
// Complexity: O(n).
//func ConvexPolygon(n int) Constructor

// TriangulatedPolygon builds ConvexPolygon(n) plus the fan of chords from its first vertex.
// Complexity: O(n).
//func TriangulatedPolygon(n int) Constructor

// Wheel builds a ConvexPolygon(n-1) rim plus a hub at the center (n ≥ 4).
// Complexity: O(n).
//func Wheel(n int) Constructor

// RandomTriangulation builds a maximal plane graph on n random points.
// Requires cfg.rng. Complexity: O(n³).
//func RandomTriangulation(n int, triangularOuterFace bool) Constructor
