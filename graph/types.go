// SPDX-License-Identifier: MIT
// Package: graphcore/graph
//
// types.go — Vertex, Edge, EdgeKey, Graph, GraphOption and sentinel errors.
//
// Identity policy:
//   - Vertices and edges are addressed by dense integer indices into the
//     graph's catalogs. Coordinates are payload, never identity: two vertices
//     at the same point are still two vertices.
//   - Coordinate equality is reserved for explicit spatial lookups
//     (VertexAt, EdgeAt) and for ordering endpoints inside EdgeKey.

package graph

import (
	"errors"

	"github.com/jbeda/geom"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex index outside the catalog.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge index outside the catalog.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Vertex is a point of the plane, optionally hidden from drawings.
type Vertex struct {
	// Pos holds the vertex coordinates.
	Pos geom.Coord

	// Visible is a drawing hint carried through conversions; algorithms ignore it.
	Visible bool
}

// X returns the x-coordinate of v.
func (v Vertex) X() float64 { return v.Pos.X }

// Y returns the y-coordinate of v.
func (v Vertex) Y() float64 { return v.Pos.Y }

// Edge joins the vertices at indices From and To.
// A directed edge points From→To; an undirected edge has no orientation.
type Edge struct {
	From, To int
	Directed bool
	Visible  bool
}

// EdgeKey identifies an edge by its endpoints, independent of storage order.
//
// For undirected edges the endpoints are ordered lexicographically by their
// coordinates (x, then y, then index), so a-b and b-a produce the same key.
// Directed edges keep From→To as U→V.
type EdgeKey struct {
	U, V     int
	Directed bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// Dual graphs need this: a bridge separates a face from itself.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the plain vertex-list / edge-list container exchanged between
// the embedding, orientation, generator and file-format packages.
//
// It is not safe for concurrent mutation.
type Graph struct {
	allowLoops bool

	vertices []Vertex
	edges    []Edge

	// incident[v] lists the indices of edges touching v, in insertion order.
	incident [][]int
}

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	VertexCount     int
	EdgeCount       int
	DirectedEdges   int
	UndirectedEdges int
	AllowsLoops     bool
}
