// SPDX-License-Identifier: MIT
// Package: graphcore/dcel
//
// navigate.go — O(1) dart navigation and degree-linear vertex queries.
//
// Handles must come from this Embedding; an out-of-range handle panics
// like any slice index. Vertex queries walk twin→next from the
// representative dart and return empty results for isolated vertices.

package dcel

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Origin returns the vertex d leaves.
func (em *Embedding) Origin(d DartID) VertexID { return em.darts[d].origin }

// Destination returns the vertex d points to.
func (em *Embedding) Destination(d DartID) VertexID { return em.darts[em.darts[d].twin].origin }

// Twin returns the opposite half of d's edge.
func (em *Embedding) Twin(d DartID) DartID { return em.darts[d].twin }

// Next returns the dart following d on the boundary of d's face.
func (em *Embedding) Next(d DartID) DartID { return em.darts[d].next }

// Prev returns the dart preceding d on the boundary of d's face.
func (em *Embedding) Prev(d DartID) DartID { return em.darts[d].prev }

// Face returns the face to the left of d.
func (em *Embedding) Face(d DartID) FaceID { return em.darts[d].face }

// Edge returns the index of the source-graph edge d belongs to.
func (em *Embedding) Edge(d DartID) int { return int(d) / 2 }

// EdgeDart returns the dart of edge e that leaves the edge's From vertex.
func (em *Embedding) EdgeDart(e int) DartID { return DartID(2 * e) }

// DartLength returns the Euclidean length of d's edge.
func (em *Embedding) DartLength(d DartID) float64 {
	return em.vertices[em.Origin(d)].pos.DistanceFrom(em.vertices[em.Destination(d)].pos)
}

// Position returns the coordinates of v.
func (em *Embedding) Position(v VertexID) geom.Coord { return em.vertices[v].pos }

// VertexDart returns v's first outgoing dart in clockwise order, or NoDart.
func (em *Embedding) VertexDart(v VertexID) DartID { return em.vertices[v].dart }

// Degree returns the number of darts leaving v.
func (em *Embedding) Degree(v VertexID) int {
	start := em.vertices[v].dart
	if start == NoDart {
		return 0
	}
	n := 0
	for d := start; ; {
		n++
		d = em.darts[em.darts[d].twin].next
		if d == start || n > len(em.darts) {
			break
		}
	}

	return n
}

// OutgoingDarts returns the darts leaving v in clockwise order, starting
// with VertexDart(v).
func (em *Embedding) OutgoingDarts(v VertexID) []DartID {
	return em.rotation(em.vertices[v].dart)
}

// OutgoingDartsFrom returns the darts leaving v in clockwise order, starting at from.
// Returns ErrDartNotAtVertex when from does not leave v.
func (em *Embedding) OutgoingDartsFrom(v VertexID, from DartID) ([]DartID, error) {
	if from < 0 || int(from) >= len(em.darts) || em.darts[from].origin != v {
		return nil, fmt.Errorf("OutgoingDartsFrom(%d, %d): %w", v, from, ErrDartNotAtVertex)
	}

	return em.rotation(from), nil
}

// Neighbours returns the destinations of v's outgoing darts in clockwise order.
func (em *Embedding) Neighbours(v VertexID) []VertexID {
	darts := em.OutgoingDarts(v)
	out := make([]VertexID, len(darts))
	for i, d := range darts {
		out[i] = em.Destination(d)
	}

	return out
}

// IncidentFaces returns the face left of each outgoing dart of v, in
// clockwise order. A face touching v several times is listed each time.
func (em *Embedding) IncidentFaces(v VertexID) []FaceID {
	darts := em.OutgoingDarts(v)
	out := make([]FaceID, len(darts))
	for i, d := range darts {
		out[i] = em.darts[d].face
	}

	return out
}

// IsAdjacent reports whether an edge joins a and b. Linear in deg(a).
func (em *Embedding) IsAdjacent(a, b VertexID) bool {
	for _, d := range em.OutgoingDarts(a) {
		if em.Destination(d) == b {
			return true
		}
	}

	return false
}

// rotation walks twin→next from start until it recurs.
// The walk is capped at the dart count so corrupted links cannot loop forever.
func (em *Embedding) rotation(start DartID) []DartID {
	if start == NoDart {
		return nil
	}
	var out []DartID
	for d := start; len(out) <= len(em.darts); {
		out = append(out, d)
		d = em.darts[em.darts[d].twin].next
		if d == start {
			break
		}
	}

	return out
}
