// Package bfs provides tunable options and error definitions
// for breadth-first search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is outside the catalog.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached marks Depth and Parent entries of vertices the search never saw.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, with its depth.
	OnEnqueue func(v, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge can skip an edge by returning false. Called with the
	// current vertex, the neighbour and the edge index.
	FilterEdge func(curr, neighbour, edge int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEnqueue:  func(int, int) {},
		OnVisit:    func(int, int) error { return nil },
		FilterEdge: func(int, int, int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(curr, neighbour, edge int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance in edges from the start, Unreached if never seen.
//   - Parent: predecessor in the BFS tree, Unreached for the start and unseen vertices.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was seen by the search.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
