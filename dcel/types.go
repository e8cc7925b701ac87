// SPDX-License-Identifier: MIT
// Package: graphcore/dcel
//
// types.go — handles, arena records, options and sentinel errors.
//
// Every entity of the embedding lives in a slice owned by Embedding and is
// addressed by a dense integer handle. Records store handles, never pointers,
// so the structure has no reference cycles and copies cheaply.

package dcel

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jbeda/geom"

	"github.com/mangara/graphcore/graph"
)

// DartID addresses one half-edge. Edge e of the source graph owns darts 2e and 2e+1.
type DartID int

// VertexID addresses an embedded vertex. It equals the source graph's vertex index.
type VertexID int

// FaceID addresses a face, numbered in order of discovery.
type FaceID int

const (
	// NoDart marks a missing dart link, e.g. the representative dart of an isolated vertex.
	NoDart DartID = -1
	// NoFace marks a dart that has not been assigned to a face yet.
	NoFace FaceID = -1
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when Build receives a nil graph.
	ErrGraphNil = errors.New("dcel: graph is nil")

	// ErrCrossingEdges is returned by Build under WithCrossingCheck when two edges cross.
	ErrCrossingEdges = errors.New("dcel: edges cross")

	// ErrLoopEdge is returned by Build when the graph contains a self-loop.
	ErrLoopEdge = errors.New("dcel: self-loop cannot be embedded")

	// ErrDartNotAtVertex is returned when a dart does not leave the given vertex.
	ErrDartNotAtVertex = errors.New("dcel: dart does not leave vertex")

	// ErrInvariant is wrapped by every *InvariantError returned from Verify.
	ErrInvariant = errors.New("dcel: invariant violated")
)

// InvariantKind names the structural rule an InvariantError reports.
type InvariantKind string

// Invariant kinds checked by Verify, in checking order.
const (
	KindHandleRange  InvariantKind = "handle out of range"
	KindTwinSelf     InvariantKind = "twin(d) = d"
	KindTwinInvolute InvariantKind = "twin(twin(d)) != d"
	KindNextSelf     InvariantKind = "next(d) = d"
	KindPrevSelf     InvariantKind = "prev(d) = d"
	KindNextPrev     InvariantKind = "next(prev(d)) != d"
	KindPrevNext     InvariantKind = "prev(next(d)) != d"
	KindNextOrigin   InvariantKind = "origin(next(d)) != origin(twin(d))"
	KindFaceCycle    InvariantKind = "face boundary does not close"
	KindFaceOwner    InvariantKind = "dart on boundary belongs to another face"
	KindFaceCover    InvariantKind = "dart not on its face's boundary"
	KindVertexDart   InvariantKind = "representative dart has another origin"
	KindVertexCycle  InvariantKind = "incident-dart cycle does not close"
	KindVertexCover  InvariantKind = "dart missing from its origin's cycle"
)

// InvariantError describes the first violation found by Verify.
// Handles that do not apply to the violation are NoDart, -1 or NoFace.
type InvariantError struct {
	Kind   InvariantKind
	Dart   DartID
	Vertex VertexID
	Face   FaceID
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("dcel: invariant violated: %s (dart %d, vertex %d, face %d)",
		e.Kind, e.Dart, e.Vertex, e.Face)
}

// Unwrap lets callers match with errors.Is(err, ErrInvariant).
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// dart is one half-edge record.
type dart struct {
	origin VertexID
	twin   DartID
	next   DartID
	prev   DartID
	face   FaceID
}

// vertex stores coordinates and the first outgoing dart in clockwise order.
type vertex struct {
	pos  geom.Coord
	dart DartID
}

// face stores one boundary dart and the outer flag.
type face struct {
	dart  DartID
	outer bool
}

// Embedding is a half-edge structure built once from a plain graph.
// It is read-only after Build and not safe for concurrent mutation.
type Embedding struct {
	src      *graph.Graph
	darts    []dart
	vertices []vertex
	faces    []face
	logger   *log.Logger
}

// Options configures Build.
type Options struct {
	// Logger receives build statistics at debug level.
	Logger *log.Logger

	// CheckCrossings runs an O(m²) crossing test before building.
	CheckCrossings bool

	// ComponentOuterFaces marks one outer face per connected component
	// instead of a single global one.
	ComponentOuterFaces bool
}

// Option configures Build via functional arguments.
type Option func(*Options)

// DefaultOptions returns the options used when Build gets none.
func DefaultOptions() Options {
	return Options{Logger: log.Default()}
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("dcel: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCrossingCheck makes Build fail with ErrCrossingEdges on non-plane input.
func WithCrossingCheck() Option {
	return func(o *Options) {
		o.CheckCrossings = true
	}
}

// WithComponentOuterFaces marks an outer face in every connected component.
func WithComponentOuterFaces() Option {
	return func(o *Options) {
		o.ComponentOuterFaces = true
	}
}
