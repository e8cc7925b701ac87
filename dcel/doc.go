// Package dcel builds and navigates a half-edge (doubly-connected edge list)
// representation of a straight-line plane graph.
//
// What:
//
//   - Build turns a *graph.Graph into an Embedding: two twin darts per edge,
//     next/prev links tracing face boundaries, one face per next-cycle.
//   - Every dart has the face on its left. Bounded faces run counter-clockwise
//     (positive SignedArea); the outer face runs clockwise.
//   - The outer face is the face left of the first clockwise dart at the
//     vertex with the smallest x (ties: smallest y).
//   - Queries: dart navigation, vertex rotations, face boundaries, centroids,
//     DualGraph, ToGraph, and the Verify self-check.
//
// Handles:
//
//   - DartID, VertexID and FaceID are dense integer handles into arenas owned
//     by the Embedding. VertexID i is vertex i of the source graph; darts 2e
//     and 2e+1 belong to edge e.
//
// Options:
//
//   - WithLogger(l): debug build statistics go to l (default log.Default()).
//   - WithCrossingCheck(): reject crossing edges with ErrCrossingEdges.
//   - WithComponentOuterFaces(): mark one outer face per connected component.
//     Without it only the component holding the extreme vertex gets one.
//
// Errors:
//
//   - ErrGraphNil, ErrLoopEdge, ErrCrossingEdges from Build.
//   - ErrDartNotAtVertex from OutgoingDartsFrom.
//   - *InvariantError (errors.Is ErrInvariant) from Verify.
//
// Complexity:
//
//   - Build: O(m log Δ + n + m). Navigation: O(1). Vertex and face queries:
//     linear in degree or boundary length. DualGraph, ToGraph, Verify: O(n + m).
package dcel
