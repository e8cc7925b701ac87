// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_triangulation.go — implementation of RandomTriangulation(n, triangularOuterFace).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); cfg.rng != nil (else ErrNeedRandSource).
//   • Points are uniform in [0,100)². With triangularOuterFace the first three
//     are fixed at (-100,-25), (50,200), (200,-25), a triangle enclosing the
//     box, and only n-3 points are random.
//   • All pairs (i<j) are shuffled with cfg.rng; a pair becomes an edge iff its
//     segment meets no earlier accepted edge that shares none of its endpoints.
//     The result is a maximal plane graph: a triangulation of the point set.
// Complexity: O(n²) pairs, each checked against at most 3n−6 accepted edges ⇒ O(n³).
// Determinism: identical for equal n, flag and seed.

package builder

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/mangara/graphcore/graph"
)

const (
	methodRandomTriangulation = "RandomTriangulation"
	minTriangulationNodes     = 3
	triangulationBox          = 100.0
)

// enclosingTriangle holds the fixed outer vertices of a triangular outer face.
var enclosingTriangle = [3]geom.Coord{
	{X: -100, Y: -25},
	{X: 50, Y: 200},
	{X: 200, Y: -25},
}

// RandomTriangulation returns a Constructor that triangulates n random points.
func RandomTriangulation(n int, triangularOuterFace bool) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomTriangulation, "n", n, minTriangulationNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTriangulation, ErrNeedRandSource)
		}

		// 1) Place the points.
		base := g.VertexCount()
		pts := make([]geom.Coord, 0, n)
		if triangularOuterFace {
			pts = append(pts, enclosingTriangle[:]...)
		}
		for len(pts) < n {
			pts = append(pts, geom.Coord{
				X: triangulationBox * cfg.rng.Float64(),
				Y: triangulationBox * cfg.rng.Float64(),
			})
		}
		for _, p := range pts {
			g.AddVertexAt(p, true)
		}

		// 2) Enumerate and shuffle all pairs.
		pairs := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
		cfg.rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })

		// 3) Greedily accept pairs that cross no accepted edge.
		var accepted [][2]int
		for _, p := range pairs {
			if crossesAny(pts, p, accepted) {
				continue
			}
			accepted = append(accepted, p)
			if err := addEdge(g, methodRandomTriangulation, base+p[0], base+p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// crossesAny reports whether segment p meets any accepted segment that
// shares no endpoint with it.
func crossesAny(pts []geom.Coord, p [2]int, accepted [][2]int) bool {
	for _, q := range accepted {
		if p[0] == q[0] || p[0] == q[1] || p[1] == q[0] || p[1] == q[1] {
			continue
		}
		if graph.SegmentsIntersect(pts[p[0]], pts[p[1]], pts[q[0]], pts[q[1]]) {
			return true
		}
	}

	return false
}
