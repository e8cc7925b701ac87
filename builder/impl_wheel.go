// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e. a convex (n-1)-gon rim plus a hub at the center.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
// Contract:
//   • Rim vertices first (indices base..base+n-2, as in ConvexPolygon), the
//     hub last (index base+n-1).
//   • Rim edges first, then spokes hub–rim in increasing rim index.
// Complexity: O(n) vertices and 2(n-1) edges.

package builder

import (
	"fmt"

	"github.com/mangara/graphcore/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // because the rim has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := n - 1
		base := addCircle(g, rim, cfg.center, cfg.radius)
		if err := addCycle(g, methodWheel, base, rim); err != nil {
			return err
		}

		hub := g.AddVertexAt(cfg.center, true)
		for i := 0; i < rim; i++ {
			if err := addEdge(g, methodWheel, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
