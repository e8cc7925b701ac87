// Package adjlist defines the mutable adjacency-list Graph used by the
// orientation algorithm: per-vertex doubly linked entry lists with twin
// cross-links for undirected edges.
//
// This file declares handles, arena records, options and sentinel errors.
//
// Errors:
//
//	ErrGraphNil        - nil *graph.Graph passed to FromGraph / AddGraph.
//	ErrVertexNotFound  - handle outside the arena or of a removed vertex.
//	ErrLoopNotAllowed  - edge from a vertex to itself.
package adjlist

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/jbeda/geom"
)

// Sentinel errors for adjacency-list operations.
var (
	// ErrGraphNil indicates a nil plain graph.
	ErrGraphNil = errors.New("adjlist: graph is nil")

	// ErrVertexNotFound indicates an operation referenced an unknown or removed vertex.
	ErrVertexNotFound = errors.New("adjlist: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("adjlist: self-loop not allowed")
)

// VertexID is a dense handle into the vertex arena. Handles stay valid
// after RemoveVertex; the slot is marked removed, never reused.
type VertexID int

// entryID addresses an adjacency entry; noEntry terminates lists.
type entryID int

const noEntry entryID = -1

// vertex is the single authoritative store for a vertex's degree.
type vertex struct {
	pos     geom.Coord
	head    entryID // first entry of the adjacency list
	degree  int     // number of entries in the list
	removed bool
}

// entry is one endpoint's view of an edge. twin is set iff the edge is
// still undirected; a twin-less entry is an edge directed owner→neighbour.
type entry struct {
	owner     VertexID
	neighbour VertexID
	twin      entryID
	prev      entryID
	next      entryID
}

// Graph is an arena of vertices and adjacency entries.
// It is not safe for concurrent use.
type Graph struct {
	vertices []vertex
	entries  []entry
	live     int
	faults   int
	logger   *log.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger routes integrity-fault reports to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("adjlist: WithLogger(nil)")
	}
	return func(g *Graph) {
		g.logger = l
	}
}
