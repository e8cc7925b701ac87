// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_polygon.go — ConvexPolygon(n) and TriangulatedPolygon(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertex i sits at center + radius·(cos(2πi/n), sin(2πi/n)); indices
//     run counter-clockwise from angle 0.
//   • Edges i–(i+1 mod n) in increasing i; TriangulatedPolygon then adds
//     the chords 0–i for i = 2..n-2, giving n-2 triangles.
// Complexity: O(n).

package builder

import (
	"github.com/mangara/graphcore/graph"
)

const (
	methodConvexPolygon       = "ConvexPolygon"
	methodTriangulatedPolygon = "TriangulatedPolygon"
	minPolygonNodes           = 3
)

// ConvexPolygon returns a Constructor that builds a convex n-gon as a cycle.
func ConvexPolygon(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(methodConvexPolygon, "n", n, minPolygonNodes); err != nil {
			return err
		}
		base := addCircle(g, n, cfg.center, cfg.radius)

		return addCycle(g, methodConvexPolygon, base, n)
	}
}

// TriangulatedPolygon returns a Constructor that builds a convex n-gon
// triangulated by a fan of chords from its first vertex.
func TriangulatedPolygon(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(methodTriangulatedPolygon, "n", n, minPolygonNodes); err != nil {
			return err
		}
		base := addCircle(g, n, cfg.center, cfg.radius)
		if err := addCycle(g, methodTriangulatedPolygon, base, n); err != nil {
			return err
		}
		for i := 2; i < n-1; i++ {
			if err := addEdge(g, methodTriangulatedPolygon, base, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
