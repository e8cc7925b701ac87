// SPDX-License-Identifier: MIT
// Package: graphcore/dcel
//
// faces.go — face queries, polygon measures, dual graph and conversions.

package dcel

import (
	"github.com/jbeda/geom"

	"github.com/mangara/graphcore/graph"
)

// VertexCount returns the number of embedded vertices.
func (em *Embedding) VertexCount() int { return len(em.vertices) }

// DartCount returns the number of darts, twice the edge count.
func (em *Embedding) DartCount() int { return len(em.darts) }

// EdgeCount returns the number of edges.
func (em *Embedding) EdgeCount() int { return len(em.darts) / 2 }

// FaceCount returns the number of faces.
func (em *Embedding) FaceCount() int { return len(em.faces) }

// Source returns a copy of the graph the embedding was built from.
func (em *Embedding) Source() *graph.Graph { return em.src.Clone() }

// FaceDart returns the representative boundary dart of f.
func (em *Embedding) FaceDart(f FaceID) DartID { return em.faces[f].dart }

// IsOuter reports whether f is marked as an outer face.
func (em *Embedding) IsOuter(f FaceID) bool { return em.faces[f].outer }

// OuterFaces returns every marked outer face in handle order.
func (em *Embedding) OuterFaces() []FaceID {
	var out []FaceID
	for i, f := range em.faces {
		if f.outer {
			out = append(out, FaceID(i))
		}
	}

	return out
}

// OuterFace returns the first marked outer face. ok is false for an
// embedding without edges.
func (em *Embedding) OuterFace() (f FaceID, ok bool) {
	for i, fc := range em.faces {
		if fc.outer {
			return FaceID(i), true
		}
	}

	return NoFace, false
}

// FaceDarts returns the boundary darts of f in next order, starting at FaceDart(f).
func (em *Embedding) FaceDarts(f FaceID) []DartID {
	start := em.faces[f].dart
	if start == NoDart {
		return nil
	}
	var out []DartID
	for d := start; len(out) <= len(em.darts); {
		out = append(out, d)
		d = em.darts[d].next
		if d == start {
			break
		}
	}

	return out
}

// FaceSize returns the number of darts on the boundary of f.
func (em *Embedding) FaceSize(f FaceID) int { return len(em.FaceDarts(f)) }

// FaceVertices returns the origins of f's boundary darts. A vertex that the
// boundary passes several times is listed each time.
func (em *Embedding) FaceVertices(f FaceID) []VertexID {
	darts := em.FaceDarts(f)
	out := make([]VertexID, len(darts))
	for i, d := range darts {
		out[i] = em.darts[d].origin
	}

	return out
}

// SignedArea returns the shoelace area of f's boundary polygon.
// Bounded faces are positive (counter-clockwise), the outer face negative.
// Edges with f on both sides contribute nothing, so a tree face has area 0.
func (em *Embedding) SignedArea(f FaceID) float64 {
	var sum float64
	em.eachBoundarySegment(f, func(p, q geom.Coord) {
		sum += p.X*q.Y - q.X*p.Y
	})

	return sum / 2
}

// Centroid returns the area centroid of f's boundary polygon.
// It is (0, 0) when the polygon encloses no area.
func (em *Embedding) Centroid(f FaceID) geom.Coord {
	var area, cx, cy float64
	em.eachBoundarySegment(f, func(p, q geom.Coord) {
		cross := p.X*q.Y - q.X*p.Y
		area += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	})
	if area == 0 {
		return geom.Coord{}
	}
	// area holds twice the signed area, so 6A = 3·area.
	return geom.Coord{X: cx / (3 * area), Y: cy / (3 * area)}
}

// eachBoundarySegment calls fn with the endpoints of every dart of f whose
// twin lies on another face. Both darts of an edge inside f would cancel in
// exact arithmetic but leave rounding residue in floating point.
func (em *Embedding) eachBoundarySegment(f FaceID, fn func(p, q geom.Coord)) {
	for _, d := range em.FaceDarts(f) {
		if em.darts[em.darts[d].twin].face == f {
			continue
		}
		fn(em.vertices[em.Origin(d)].pos, em.vertices[em.Destination(d)].pos)
	}
}

// DualGraph returns the dual: one vertex per face placed at its centroid and
// one edge per dart joining Face(d) and Face(Twin(d)). Parallel edges and
// self-loops are kept, so the result allows loops. The returned slice maps
// each FaceID to its dual vertex index.
// Complexity: O(n + m).
func (em *Embedding) DualGraph() (*graph.Graph, []int) {
	dual := graph.New(graph.WithLoops())
	index := make([]int, len(em.faces))
	for i := range em.faces {
		index[i] = dual.AddVertexAt(em.Centroid(FaceID(i)), true)
	}
	for i := range em.darts {
		d := DartID(i)
		// Endpoints are dual vertices created above, so AddEdge cannot fail.
		_, _ = dual.AddEdge(index[em.Face(d)], index[em.Face(em.Twin(d))])
	}

	return dual, index
}

// ToGraph returns a plain graph with the embedding's vertices and one
// undirected edge per twin pair, in edge order.
func (em *Embedding) ToGraph() *graph.Graph {
	g := graph.New()
	for _, v := range em.src.Vertices() {
		g.AddVertexAt(v.Pos, v.Visible)
	}
	for i := 0; i < len(em.darts); i += 2 {
		_, _ = g.AddEdge(int(em.darts[i].origin), int(em.darts[i+1].origin))
	}

	return g
}
