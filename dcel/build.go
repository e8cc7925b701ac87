// SPDX-License-Identifier: MIT
// Package: graphcore/dcel
//
// build.go — construction of the half-edge structure.
//
// Steps:
//  1. one vertex record per graph vertex, two twin darts per graph edge;
//  2. per vertex, stable sort of outgoing darts by graph.ClockwiseAngle and
//     linking next(twin(d_i)) = d_{i+1 mod k};
//  3. face extraction by following next from every unassigned dart;
//  4. outer-face marking at the leftmost (then lowest) vertex.
//
// Complexity: O(m log Δ + n + m) time, O(n + m) memory.

package dcel

import (
	"fmt"
	"sort"

	"github.com/mangara/graphcore/bfs"
	"github.com/mangara/graphcore/graph"
)

// Build embeds g. Edge directions are ignored: every edge yields two darts.
// The input must be a crossing-free straight-line drawing; otherwise the
// result is undefined unless WithCrossingCheck is given.
func Build(g *graph.Graph, opts ...Option) (*Embedding, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	edges := g.Edges()
	for i, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("Build: edge %d at vertex %d: %w", i, e.From, ErrLoopEdge)
		}
	}
	if o.CheckCrossings {
		if c := g.Crossings(); len(c) > 0 {
			return nil, fmt.Errorf("Build: edges %d and %d: %w", c[0][0], c[0][1], ErrCrossingEdges)
		}
	}

	em := &Embedding{
		src:      g.Clone(),
		darts:    make([]dart, 2*len(edges)),
		vertices: make([]vertex, g.VertexCount()),
		logger:   o.Logger,
	}
	for i, v := range g.Vertices() {
		em.vertices[i] = vertex{pos: v.Pos, dart: NoDart}
	}
	for i, e := range edges {
		a, b := DartID(2*i), DartID(2*i+1)
		em.darts[a] = dart{origin: VertexID(e.From), twin: b, next: NoDart, prev: NoDart, face: NoFace}
		em.darts[b] = dart{origin: VertexID(e.To), twin: a, next: NoDart, prev: NoDart, face: NoFace}
	}

	em.linkRotations()
	em.extractFaces()
	if o.ComponentOuterFaces {
		em.markComponentOuterFaces()
	} else if v, ok := em.extremeVertex(); ok {
		em.faces[em.darts[em.vertices[v].dart].face].outer = true
	}

	em.logger.Debug("dcel: built embedding",
		"vertices", len(em.vertices),
		"darts", len(em.darts),
		"faces", len(em.faces),
		"outer", len(em.OuterFaces()))

	return em, nil
}

// linkRotations sorts the outgoing darts of every vertex clockwise and sets
// next/prev so that face walks turn to the following edge at each vertex.
func (em *Embedding) linkRotations() {
	type slot struct {
		d     DartID
		angle float64
	}
	out := make([][]slot, len(em.vertices))
	for i := range em.darts {
		d := DartID(i)
		o := em.darts[d].origin
		angle := graph.ClockwiseAngle(em.vertices[o].pos, em.vertices[em.Destination(d)].pos)
		out[o] = append(out[o], slot{d: d, angle: angle})
	}

	for v, list := range out {
		k := len(list)
		if k == 0 {
			continue
		}
		// Equal angles keep dart-handle order.
		sort.SliceStable(list, func(i, j int) bool { return list[i].angle < list[j].angle })
		em.vertices[v].dart = list[0].d
		for i := range list {
			in := em.darts[list[i].d].twin
			succ := list[(i+1)%k].d
			em.darts[in].next = succ
			em.darts[succ].prev = in
		}
	}
}

// extractFaces assigns every dart to the cycle of next it lies on.
func (em *Embedding) extractFaces() {
	for i := range em.darts {
		start := DartID(i)
		if em.darts[start].face != NoFace {
			continue
		}
		f := FaceID(len(em.faces))
		em.faces = append(em.faces, face{dart: start})
		d := start
		for steps := 0; steps <= len(em.darts); steps++ {
			em.darts[d].face = f
			d = em.darts[d].next
			if d == start {
				break
			}
		}
	}
}

// extremeVertex returns the vertex with the smallest x, ties broken by the
// smallest y, among vertices with at least one dart.
func (em *Embedding) extremeVertex() (VertexID, bool) {
	best, found := VertexID(-1), false
	for i, v := range em.vertices {
		if v.dart == NoDart {
			continue
		}
		if !found || graph.CompareXY(v.pos, em.vertices[best].pos) < 0 {
			best, found = VertexID(i), true
		}
	}

	return best, found
}

// markComponentOuterFaces marks, for every connected component, the face
// left of the first clockwise dart at the component's extreme vertex.
func (em *Embedding) markComponentOuterFaces() {
	// src is never nil here, so Components cannot fail.
	comps, _ := bfs.Components(em.src)
	for _, comp := range comps {
		best := VertexID(comp[0])
		if em.vertices[best].dart == NoDart {
			// isolated vertex
			continue
		}
		for _, v := range comp[1:] {
			if graph.CompareXY(em.vertices[v].pos, em.vertices[best].pos) < 0 {
				best = VertexID(v)
			}
		}
		em.faces[em.darts[em.vertices[best].dart].face].outer = true
	}
}
