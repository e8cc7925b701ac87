// Package orient directs every edge of a k-degenerate graph so that no vertex
// has more than k outgoing edges (k = 5 for planar graphs).
//
// The algorithm peels vertices of small degree with a FIFO queue. Only two
// events queue a vertex: having degree <= k at the start, or having degree
// exactly k+1 while a neighbour is about to be detached. Degrees never grow,
// so each vertex is queued at most once and the run is O(n + m).
package orient

import (
	"fmt"

	"github.com/mangara/graphcore/adjlist"
	"github.com/mangara/graphcore/graph"
)

// orienter encapsulates mutable queue state.
type orienter struct {
	g     *adjlist.Graph
	opts  Options
	queue  []adjlist.VertexID
	queued map[adjlist.VertexID]bool
	res    *Result
}

// Orient directs all undirected edges of g in place and returns the detach
// order. Returns ErrGraphNil, ErrOptionViolation, or ErrNotDegenerate
// together with the partial Result when some vertices were never queued.
//
// Multigraph input is outside the planar guarantee: a parallel edge lists the
// same neighbour twice, and a vertex met at degree k+1 through it is still
// queued only once.
func Orient(g *adjlist.Graph, opts ...Option) (*Result, error) {
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
	w := &orienter{
		g:      g,
		opts:   o,
		queue:  make([]adjlist.VertexID, 0, n),
		queued: make(map[adjlist.VertexID]bool, n),
		res:    &Result{Order: make([]adjlist.VertexID, 0, n)},
	}
	for _, v := range g.Vertices() {
		if d := g.Degree(v); d <= o.Degeneracy {
			w.enqueue(v, d)
		}
	}
	w.loop()

	o.Logger.Debug("orient: done",
		"processed", len(w.res.Order),
		"enqueued", w.res.Enqueued,
		"maxOut", w.res.MaxOutDegree)

	if len(w.res.Order) < n {
		return w.res, fmt.Errorf("Orient: %d of %d vertices unprocessed: %w",
			n-len(w.res.Order), n, ErrNotDegenerate)
	}

	return w.res, nil
}

// OrientGraph converts g, orients it and converts it back. Every edge of the
// result is directed. Vertex indices are preserved.
func OrientGraph(g *graph.Graph, opts ...Option) (*graph.Graph, *Result, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	al, _, err := adjlist.FromGraph(g, adjlist.WithLogger(o.Logger))
	if err != nil {
		return nil, nil, fmt.Errorf("OrientGraph: %w", err)
	}
	res, err := Orient(al, opts...)
	if err != nil {
		return nil, res, err
	}

	return al.ToGraph(), res, nil
}

// OutDegrees counts the directed edges leaving each vertex of g.
func OutDegrees(g *graph.Graph) []int {
	out := make([]int, g.VertexCount())
	for _, e := range g.Edges() {
		if e.Directed {
			out[e.From]++
		}
	}

	return out
}

// enqueue queues v and calls OnEnqueue.
func (w *orienter) enqueue(v adjlist.VertexID, degree int) {
	w.queued[v] = true
	w.res.Enqueued++
	w.opts.OnEnqueue(v, degree)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty.
func (w *orienter) loop() {
	trigger := w.opts.Degeneracy + 1
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]

		// Detaching v lowers each undirected neighbour's degree by one, so
		// exactly the neighbours now at k+1 drop to k.
		for _, u := range w.g.UndirectedNeighbours(v) {
			if w.g.Degree(u) == trigger && !w.queued[u] {
				w.enqueue(u, trigger)
			}
		}
		directed := w.g.DirectEdgesOutward(v)
		w.opts.OnDetach(v, directed)

		w.res.Order = append(w.res.Order, v)
		if out := w.g.OutDegree(v); out > w.res.MaxOutDegree {
			w.res.MaxOutDegree = out
		}
	}
}
