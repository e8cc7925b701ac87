// Package graph provides the plain vertex-list / edge-list model shared by
// every other graphcore package.
//
// What:
//
//   - Vertices are points of the plane (github.com/jbeda/geom Coord) with a
//     visibility hint for drawings.
//   - Edges are index pairs with a Directed flag; undirected and directed
//     edges coexist in one graph.
//   - Geometry helpers: ClockwiseAngle, CompareXY, SegmentsIntersect.
//
// Why:
//
//   - The half-edge embedding (package dcel), the adjacency-list orienter
//     (packages adjlist, orient), the generators (builder) and the file
//     formats (graphio, render) all consume or produce this one model.
//
// Identity:
//
//   - Vertices and edges are identified by index. Two vertices at the same
//     coordinates are distinct. Spatial lookup (VertexAt, EdgeAt) is the only
//     place coordinates are compared for equality.
//
// Options:
//
//   - WithLoops(): allow self-loops (rejected with ErrLoopNotAllowed otherwise).
//
// Errors:
//
//   - ErrVertexNotFound: vertex index outside the catalog.
//   - ErrEdgeNotFound: edge index outside the catalog.
//   - ErrLoopNotAllowed: self-loop on a graph built without WithLoops.
//
// The Graph is single-goroutine: no method takes a lock.
package graph
