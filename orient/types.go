// Package orient provides options, results and error definitions for the
// degree-bounded orientation of an adjlist.Graph.
package orient

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mangara/graphcore/adjlist"
)

// DefaultDegeneracy is the out-degree bound guaranteed for planar graphs.
const DefaultDegeneracy = 5

// Sentinel errors for orientation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("orient: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("orient: invalid option supplied")

	// ErrNotDegenerate is returned when the queue runs dry before every
	// vertex was processed: the input is not k-degenerate.
	ErrNotDegenerate = errors.New("orient: graph is not degenerate enough")
)

// Option configures orientation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Orient.
type Options struct {
	// Degeneracy is the bound k: vertices of degree <= k seed the queue and a
	// neighbour is queued when its degree is exactly k+1.
	Degeneracy int

	// OnEnqueue is called when v is queued, with its degree at that moment.
	OnEnqueue func(v adjlist.VertexID, degree int)

	// OnDetach is called after v's undirected edges were directed away from
	// it, with the number of edges that changed.
	OnDetach func(v adjlist.VertexID, directed int)

	// Logger receives a debug summary and integrity-fault warnings.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with k = 5, no-op hooks and log.Default().
func DefaultOptions() Options {
	return Options{
		Degeneracy: DefaultDegeneracy,
		OnEnqueue:  func(adjlist.VertexID, int) {},
		OnDetach:   func(adjlist.VertexID, int) {},
		Logger:     log.Default(),
	}
}

// WithDegeneracy sets the bound k.
//
//	k >= 0: every vertex ends with out-degree <= k on k-degenerate input
//	k < 0:  invalid option → ErrOptionViolation
func WithDegeneracy(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: degeneracy cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Degeneracy = k
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v adjlist.VertexID, degree int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDetach registers a callback to run after each detach.
func WithOnDetach(fn func(v adjlist.VertexID, directed int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDetach = fn
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of an orientation:
//   - Order: vertices in the order they were detached.
//   - Enqueued: how many times a vertex was queued.
//   - MaxOutDegree: the largest out-degree among processed vertices.
type Result struct {
	Order        []adjlist.VertexID
	Enqueued     int
	MaxOutDegree int
}
