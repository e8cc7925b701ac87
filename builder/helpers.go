// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// helpers.go — shared emission helpers for constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/mangara/graphcore/graph"
)

// validateMin returns ErrTooFewVertices with method context when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// addEdge adds u–v and prefixes any failure with the method name.
func addEdge(g *graph.Graph, method string, u, v int) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// addCircle appends n vertices evenly spaced counter-clockwise on the circle
// (center, radius), the first one at angle 0, and returns the first index.
func addCircle(g *graph.Graph, n int, center geom.Coord, radius float64) int {
	base := g.VertexCount()
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		offset := geom.Coord{X: math.Cos(float64(i) * step), Y: math.Sin(float64(i) * step)}
		g.AddVertexAt(center.Plus(offset.Times(radius)), true)
	}

	return base
}

// addCycle joins base, base+1, ..., base+n-1 and back to base.
func addCycle(g *graph.Graph, method string, base, n int) error {
	for i := 0; i < n; i++ {
		if err := addEdge(g, method, base+i, base+(i+1)%n); err != nil {
			return err
		}
	}

	return nil
}
