// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// impl_grid.go — implementation of Grid(size) constructor.
//
// Contract:
//   • size ≥ 1 (else ErrTooFewVertices). A 1×1 grid has no edges.
//   • Vertex (i, j) sits at (i·spacing, j·spacing) and has index base + i·size + j.
//   • For each (i, j) in that order, emit the edge to the left neighbour
//     (i-1, j) then to the lower neighbour (i, j-1) where they exist.
// Complexity: O(size²) vertices and 2·size·(size-1) edges.

package builder

import (
	"github.com/mangara/graphcore/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a size×size orthogonal lattice.
func Grid(size int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "size", size, minGridDim); err != nil {
			return err
		}

		base := g.VertexCount()
		index := func(i, j int) int { return base + i*size + j }
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				g.AddVertex(float64(i)*cfg.spacing, float64(j)*cfg.spacing)

				// Left neighbour was added one row earlier.
				if i > 0 {
					if err := addEdge(g, methodGrid, index(i, j), index(i-1, j)); err != nil {
						return err
					}
				}
				// Lower neighbour was added on the previous step.
				if j > 0 {
					if err := addEdge(g, methodGrid, index(i, j), index(i, j-1)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
