// SPDX-License-Identifier: MIT
// Package: graphcore/adjlist
//
// adjlist.go — construction, queries and the O(deg) detach operation.
//
// Complexity summary:
//   - AddVertex / AddEdge / AddDirectedEdge: O(1) amortized (entries are prepended).
//   - Degree / Position: O(1).
//   - Neighbours / IsAdjacentTo / DirectEdgesOutward: O(deg(v)).
//   - FromGraph / ToGraph: O(n + m).

package adjlist

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jbeda/geom"

	"github.com/mangara/graphcore/graph"
)

// New creates an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{logger: log.Default()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromGraph converts a plain graph. Every plain edge becomes an undirected
// edge regardless of its Directed flag. The returned slice maps plain vertex
// indices to handles.
func FromGraph(src *graph.Graph, opts ...Option) (*Graph, []VertexID, error) {
	g := New(opts...)
	ids, err := g.AddGraph(src)
	if err != nil {
		return nil, nil, err
	}

	return g, ids, nil
}

// AddGraph appends every vertex and edge of src and returns the handles
// assigned to src's vertices, by plain index. g is unchanged on error.
func (g *Graph) AddGraph(src *graph.Graph) ([]VertexID, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	edges := src.Edges()
	for i, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("AddGraph: edge %d: %w", i, ErrLoopNotAllowed)
		}
	}
	ids := make([]VertexID, src.VertexCount())
	for i, v := range src.Vertices() {
		ids[i] = g.AddVertex(v.Pos)
	}
	for _, e := range edges {
		// Endpoints are fresh and distinct, so AddEdge cannot fail.
		_ = g.AddEdge(ids[e.From], ids[e.To])
	}

	return ids, nil
}

// AddVertex appends an isolated vertex at p.
func (g *Graph) AddVertex(p geom.Coord) VertexID {
	g.vertices = append(g.vertices, vertex{pos: p, head: noEntry})
	g.live++

	return VertexID(len(g.vertices) - 1)
}

// AddEdge inserts an undirected edge as two twinned entries.
func (g *Graph) AddEdge(a, b VertexID) error {
	if err := g.checkEndpoints(a, b); err != nil {
		return fmt.Errorf("AddEdge(%d, %d): %w", a, b, err)
	}
	ea := g.prepend(a, b)
	eb := g.prepend(b, a)
	g.entries[ea].twin = eb
	g.entries[eb].twin = ea

	return nil
}

// AddDirectedEdge inserts an edge directed a→b as a single entry in a's list.
func (g *Graph) AddDirectedEdge(a, b VertexID) error {
	if err := g.checkEndpoints(a, b); err != nil {
		return fmt.Errorf("AddDirectedEdge(%d, %d): %w", a, b, err)
	}
	g.prepend(a, b)

	return nil
}

// HasVertex reports whether v is a live vertex.
func (g *Graph) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.vertices) && !g.vertices[v].removed
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return g.live }

// Vertices returns the live vertex handles in increasing order.
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, 0, g.live)
	for i, v := range g.vertices {
		if !v.removed {
			out = append(out, VertexID(i))
		}
	}

	return out
}

// Degree returns the number of entries in v's list: undirected edges plus
// edges directed away from v. Unknown vertices have degree 0.
func (g *Graph) Degree(v VertexID) int {
	if !g.HasVertex(v) {
		return 0
	}

	return g.vertices[v].degree
}

// OutDegree returns the number of edges directed away from v.
func (g *Graph) OutDegree(v VertexID) int {
	n := 0
	g.each(v, func(e *entry) {
		if e.twin == noEntry {
			n++
		}
	})

	return n
}

// Position returns the coordinates of v.
func (g *Graph) Position(v VertexID) geom.Coord {
	if !g.HasVertex(v) {
		return geom.Coord{}
	}

	return g.vertices[v].pos
}

// Neighbours returns the neighbour of every entry in v's list, most recently
// inserted first.
func (g *Graph) Neighbours(v VertexID) []VertexID {
	out := make([]VertexID, 0, g.Degree(v))
	g.each(v, func(e *entry) { out = append(out, e.neighbour) })

	return out
}

// UndirectedNeighbours returns the neighbours joined to v by a still
// undirected edge.
func (g *Graph) UndirectedNeighbours(v VertexID) []VertexID {
	var out []VertexID
	g.each(v, func(e *entry) {
		if e.twin != noEntry {
			out = append(out, e.neighbour)
		}
	})

	return out
}

// IsAdjacentTo reports whether v's list holds an entry for w, i.e. an
// undirected edge vw or an edge directed v→w.
func (g *Graph) IsAdjacentTo(v, w VertexID) bool {
	found := false
	g.each(v, func(e *entry) {
		if e.neighbour == w {
			found = true
		}
	})

	return found
}

// ContainsEdge reports whether a and b are joined in either direction.
func (g *Graph) ContainsEdge(a, b VertexID) bool {
	return g.IsAdjacentTo(a, b) || g.IsAdjacentTo(b, a)
}

// IntegrityFaults returns how many twin-less entries DirectEdgesOutward has
// met so far.
func (g *Graph) IntegrityFaults() int { return g.faults }

// DirectEdgesOutward turns every undirected edge of v into an edge directed
// away from v and returns how many edges changed. For each twinned entry the
// twin is unlinked from the neighbour's list in O(1) and the neighbour's
// degree drops by one. v's own list and degree stay as they are.
//
// A twin-less entry in v's list is an integrity fault: it is logged, counted
// and skipped. Calling this twice on v reports every entry the second time.
// Complexity: O(deg(v)).
func (g *Graph) DirectEdgesOutward(v VertexID) int {
	if !g.HasVertex(v) {
		return 0
	}
	changed := 0
	for id := g.vertices[v].head; id != noEntry; id = g.entries[id].next {
		e := &g.entries[id]
		if e.twin == noEntry {
			g.faults++
			g.logger.Warn("adjlist: entry without twin", "vertex", v, "neighbour", e.neighbour)
			continue
		}
		g.dropTwin(e)
		changed++
	}

	return changed
}

// RemoveVertex detaches v and drops it. Edges directed into v that other
// vertices already hold stay in their lists; ToGraph omits them.
func (g *Graph) RemoveVertex(v VertexID) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrVertexNotFound)
	}
	for id := g.vertices[v].head; id != noEntry; id = g.entries[id].next {
		if e := &g.entries[id]; e.twin != noEntry {
			g.dropTwin(e)
		}
	}
	g.vertices[v] = vertex{pos: g.vertices[v].pos, head: noEntry, removed: true}
	g.live--

	return nil
}

// ToGraph returns the plain graph of the live vertices, renumbered densely in
// handle order. Undirected edges are emitted once, from the first endpoint
// visited; twin-less entries are emitted as directed edges.
func (g *Graph) ToGraph() *graph.Graph {
	out := graph.New()
	index := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		index[i] = -1
		if !v.removed {
			index[i] = out.AddVertexAt(v.pos, true)
		}
	}

	processed := make([]bool, len(g.vertices))
	for i, v := range g.vertices {
		if v.removed {
			continue
		}
		from := index[i]
		g.each(VertexID(i), func(e *entry) {
			to := index[e.neighbour]
			switch {
			case to < 0:
				// Edge into a removed vertex.
			case e.twin == noEntry:
				_, _ = out.AddDirectedEdge(from, to)
			case !processed[e.neighbour]:
				_, _ = out.AddEdge(from, to)
			}
		})
		processed[i] = true
	}

	return out
}

func (g *Graph) checkEndpoints(a, b VertexID) error {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return ErrVertexNotFound
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	return nil
}

// prepend inserts an entry owner→neighbour at the head of owner's list.
func (g *Graph) prepend(owner, neighbour VertexID) entryID {
	id := entryID(len(g.entries))
	head := g.vertices[owner].head
	g.entries = append(g.entries, entry{
		owner:     owner,
		neighbour: neighbour,
		twin:      noEntry,
		prev:      noEntry,
		next:      head,
	})
	if head != noEntry {
		g.entries[head].prev = id
	}
	g.vertices[owner].head = id
	g.vertices[owner].degree++

	return id
}

// dropTwin unlinks e's twin from the neighbour's list, decrements the
// neighbour's degree and clears both twin links.
func (g *Graph) dropTwin(e *entry) {
	t := e.twin
	g.unlink(t)
	g.vertices[g.entries[t].owner].degree--
	g.entries[t].twin = noEntry
	e.twin = noEntry
}

// unlink removes entry id from its owner's list. The entry's own links are
// left untouched so that a walk positioned on it can continue.
func (g *Graph) unlink(id entryID) {
	e := g.entries[id]
	if e.prev == noEntry {
		g.vertices[e.owner].head = e.next
	} else {
		g.entries[e.prev].next = e.next
	}
	if e.next != noEntry {
		g.entries[e.next].prev = e.prev
	}
}

// each calls fn for every entry in v's list, head first.
func (g *Graph) each(v VertexID, fn func(e *entry)) {
	if !g.HasVertex(v) {
		return
	}
	for id := g.vertices[v].head; id != noEntry; id = g.entries[id].next {
		fn(&g.entries[id])
	}
}
