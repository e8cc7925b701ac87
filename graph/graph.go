// SPDX-License-Identifier: MIT
// Package: graphcore/graph
//
// graph.go — construction, queries and mutation of the plain Graph.
//
// Complexity summary:
//   - AddVertex / AddEdge: O(1) amortized.
//   - IncidentEdges / Neighbours / Degree: O(deg(v)).
//   - HasEdge / EdgeBetween: O(min(deg(a), deg(b))).
//   - RemoveEdge / RemoveVertex: O(V+E) (indices are compacted).

package graph

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// New creates an empty Graph. By default self-loops are rejected.
// Complexity: O(len(opts)).
func New(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex appends a visible vertex at (x, y) and returns its index.
func (g *Graph) AddVertex(x, y float64) int {
	return g.AddVertexAt(geom.Coord{X: x, Y: y}, true)
}

// AddVertexAt appends a vertex at p and returns its index.
func (g *Graph) AddVertexAt(p geom.Coord, visible bool) int {
	g.vertices = append(g.vertices, Vertex{Pos: p, Visible: visible})
	g.incident = append(g.incident, nil)

	return len(g.vertices) - 1
}

// AddEdge appends an undirected edge between a and b and returns its index.
// Returns ErrVertexNotFound for unknown endpoints and ErrLoopNotAllowed when
// a == b on a graph built without WithLoops.
func (g *Graph) AddEdge(a, b int) (int, error) {
	return g.addEdge(a, b, false)
}

// AddDirectedEdge appends an edge directed a→b and returns its index.
func (g *Graph) AddDirectedEdge(a, b int) (int, error) {
	return g.addEdge(a, b, true)
}

func (g *Graph) addEdge(a, b int, directed bool) (int, error) {
	if !g.validVertex(a) || !g.validVertex(b) {
		return -1, fmt.Errorf("AddEdge(%d, %d): %w", a, b, ErrVertexNotFound)
	}
	if a == b && !g.allowLoops {
		return -1, fmt.Errorf("AddEdge(%d, %d): %w", a, b, ErrLoopNotAllowed)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{From: a, To: b, Directed: directed, Visible: true})
	g.incident[a] = append(g.incident[a], id)
	// A loop is listed once in its vertex's incidence list.
	if a != b {
		g.incident[b] = append(g.incident[b], id)
	}

	return id, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AllowsLoops reports whether self-loops are permitted.
func (g *Graph) AllowsLoops() bool { return g.allowLoops }

// Vertex returns the vertex at index v.
func (g *Graph) Vertex(v int) (Vertex, error) {
	if !g.validVertex(v) {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", v, ErrVertexNotFound)
	}

	return g.vertices[v], nil
}

// Edge returns the edge at index e.
func (g *Graph) Edge(e int) (Edge, error) {
	if !g.validEdge(e) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", e, ErrEdgeNotFound)
	}

	return g.edges[e], nil
}

// Vertices returns a copy of the vertex catalog in index order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the edge catalog in index order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// IncidentEdges returns the indices of the edges touching v, in insertion order.
func (g *Graph) IncidentEdges(v int) ([]int, error) {
	if !g.validVertex(v) {
		return nil, fmt.Errorf("IncidentEdges(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, len(g.incident[v]))
	copy(out, g.incident[v])

	return out, nil
}

// Degree returns the number of edges touching v, irrespective of direction.
func (g *Graph) Degree(v int) (int, error) {
	if !g.validVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(g.incident[v]), nil
}

// Neighbours returns the opposite endpoint of every edge touching v,
// irrespective of direction. Parallel edges yield repeated neighbours.
func (g *Graph) Neighbours(v int) ([]int, error) {
	if !g.validVertex(v) {
		return nil, fmt.Errorf("Neighbours(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, 0, len(g.incident[v]))
	for _, e := range g.incident[v] {
		out = append(out, g.Other(e, v))
	}

	return out, nil
}

// Other returns the endpoint of edge e opposite to v.
// For a loop, or when v is not an endpoint, it returns From.
func (g *Graph) Other(e, v int) int {
	edge := g.edges[e]
	if edge.From == v {
		return edge.To
	}

	return edge.From
}

// HasEdge reports whether some edge joins a and b, irrespective of direction.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.EdgeBetween(a, b)

	return ok
}

// EdgeBetween returns the first edge joining a and b, irrespective of direction.
// It scans the incidence list of the endpoint with the smaller degree.
func (g *Graph) EdgeBetween(a, b int) (int, bool) {
	if !g.validVertex(a) || !g.validVertex(b) {
		return -1, false
	}
	from, to := a, b
	if len(g.incident[b]) < len(g.incident[a]) {
		from, to = b, a
	}
	for _, e := range g.incident[from] {
		if g.Other(e, from) == to {
			return e, true
		}
	}

	return -1, false
}

// Key returns the order-independent key of edge e (see EdgeKey).
func (g *Graph) Key(e int) EdgeKey {
	edge := g.edges[e]
	if edge.Directed {
		return EdgeKey{U: edge.From, V: edge.To, Directed: true}
	}
	u, v := edge.From, edge.To
	if c := CompareXY(g.vertices[u].Pos, g.vertices[v].Pos); c > 0 || (c == 0 && u > v) {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// Length returns the Euclidean length of edge e.
func (g *Graph) Length(e int) float64 {
	edge := g.edges[e]

	return g.vertices[edge.From].Pos.DistanceFrom(g.vertices[edge.To].Pos)
}

// VertexAt returns the first vertex within precision of (x, y).
// Complexity: O(V).
func (g *Graph) VertexAt(x, y, precision float64) (int, bool) {
	for i, v := range g.vertices {
		dx, dy := x-v.Pos.X, y-v.Pos.Y
		if dx*dx+dy*dy <= precision*precision {
			return i, true
		}
	}

	return -1, false
}

// EdgeAt returns the first edge passing within precision of (x, y),
// measured perpendicular to the segment and only between its endpoints.
// Complexity: O(E).
func (g *Graph) EdgeAt(x, y, precision float64) (int, bool) {
	for i, e := range g.edges {
		if nearSegment(g.vertices[e.From].Pos, g.vertices[e.To].Pos, geom.Coord{X: x, Y: y}, precision) {
			return i, true
		}
	}

	return -1, false
}

// Bounds returns the smallest axis-aligned rectangle containing every vertex.
// The zero Rect is returned for an empty graph.
func (g *Graph) Bounds() geom.Rect {
	if len(g.vertices) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: g.vertices[0].Pos, Max: g.vertices[0].Pos}
	for _, v := range g.vertices[1:] {
		r.ExpandToContainCoord(v.Pos)
	}

	return r
}

// Stats returns a snapshot of catalog sizes. Complexity: O(E).
func (g *Graph) Stats() Stats {
	s := Stats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		AllowsLoops: g.allowLoops,
	}
	for _, e := range g.edges {
		if e.Directed {
			s.DirectedEdges++
		} else {
			s.UndirectedEdges++
		}
	}

	return s
}

// RemoveEdge deletes edge e. Edges with a larger index shift down by one.
// Complexity: O(V+E).
func (g *Graph) RemoveEdge(e int) error {
	if !g.validEdge(e) {
		return fmt.Errorf("RemoveEdge(%d): %w", e, ErrEdgeNotFound)
	}
	g.edges = append(g.edges[:e], g.edges[e+1:]...)
	g.rebuildIncidence()

	return nil
}

// RemoveVertex deletes v and every edge touching it. Vertices and edges with
// a larger index shift down so that indices stay dense.
// Complexity: O(V+E).
func (g *Graph) RemoveVertex(v int) error {
	if !g.validVertex(v) {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrVertexNotFound)
	}
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == v || e.To == v {
			continue
		}
		if e.From > v {
			e.From--
		}
		if e.To > v {
			e.To--
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.vertices = append(g.vertices[:v], g.vertices[v+1:]...)
	g.rebuildIncidence()

	return nil
}

// ClearEdges removes all edges and keeps the vertices.
func (g *Graph) ClearEdges() {
	g.edges = nil
	for i := range g.incident {
		g.incident[i] = nil
	}
}

// Clear removes all vertices and edges; options are preserved.
func (g *Graph) Clear() {
	g.vertices = nil
	g.edges = nil
	g.incident = nil
}

// Clone returns a deep copy sharing no storage with g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		allowLoops: g.allowLoops,
		vertices:   g.Vertices(),
		edges:      g.Edges(),
		incident:   make([][]int, len(g.incident)),
	}
	for i, inc := range g.incident {
		c.incident[i] = append([]int(nil), inc...)
	}

	return c
}

// Crossings returns every pair of edges whose segments cross. Edges sharing
// an endpoint are never reported. A graph without crossings is a straight-line
// plane embedding. Complexity: O(E²).
func (g *Graph) Crossings() [][2]int {
	var out [][2]int
	for i := 0; i < len(g.edges); i++ {
		a := g.edges[i]
		for j := i + 1; j < len(g.edges); j++ {
			b := g.edges[j]
			if a.From == b.From || a.From == b.To || a.To == b.From || a.To == b.To {
				continue
			}
			if SegmentsIntersect(g.vertices[a.From].Pos, g.vertices[a.To].Pos,
				g.vertices[b.From].Pos, g.vertices[b.To].Pos) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

func (g *Graph) rebuildIncidence() {
	g.incident = make([][]int, len(g.vertices))
	for i, e := range g.edges {
		g.incident[e.From] = append(g.incident[e.From], i)
		if e.From != e.To {
			g.incident[e.To] = append(g.incident[e.To], i)
		}
	}
}

func (g *Graph) validVertex(v int) bool { return v >= 0 && v < len(g.vertices) }

func (g *Graph) validEdge(e int) bool { return e >= 0 && e < len(g.edges) }

// nearSegment reports whether p lies within precision of segment ab.
func nearSegment(a, b, p geom.Coord, precision float64) bool {
	vec := b.Minus(a)
	length := vec.Magnitude()
	if length == 0 {
		return p.DistanceFrom(a) <= precision
	}
	ux, uy := vec.X/length, vec.Y/length
	ox, oy := p.X-a.X, p.Y-a.Y
	along := ox*ux + oy*uy
	if along < 0 || along > length {
		return false
	}

	return math.Abs(ox*-uy+oy*ux) <= precision
}
