// Package dfs defines states, options and errors for depth-first traversal
// of the directed edges of a graph.Graph.
package dfs

import (
	"context"
	"errors"
)

// Vertex states during traversal.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates a directed cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
