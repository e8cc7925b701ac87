// Package bfs provides breadth-first search over a graph.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// Edges are followed in both directions regardless of their Directed flag:
// the searches here answer questions about the drawing's connectivity.
package bfs

import (
	"context"
	"fmt"

	"github.com/mangara/graphcore/graph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *graph.Graph
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context's error on cancellation, or any OnVisit error.
func BFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, Unreached)
	return w.res, w.loop()
}

// Components returns the vertex sets of g's connected components, each in
// BFS order from its smallest index, ordered by that index. Isolated
// vertices form singleton components. Complexity: O(V + E).
func Components(g *graph.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, DefaultOptions())
	var comps [][]int
	for v := 0; v < g.VertexCount(); v++ {
		if w.res.Depth[v] != Unreached {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(v, 0, Unreached)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order[from:len(w.res.Order):len(w.res.Order)])
	}

	return comps, nil
}

func newWalker(g *graph.Graph, o Options) *walker {
	n := g.VertexCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = Unreached
		res.Parent[i] = Unreached
	}

	return &walker{graph: g, opts: o, ctx: o.Ctx, queue: make([]int, 0, n), res: res}
}

// enqueue marks v seen at depth d, records its parent and calls OnEnqueue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)
		d := w.res.Depth[v]
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		// v is valid, so IncidentEdges cannot fail.
		edges, _ := w.graph.IncidentEdges(v)
		for _, e := range edges {
			u := w.graph.Other(e, v)
			if w.res.Depth[u] != Unreached || !w.opts.FilterEdge(v, u, e) {
				continue
			}
			w.enqueue(u, d+1, v)
		}
	}

	return nil
}
