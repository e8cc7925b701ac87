// Package graphcore works with planar straight-line graphs: graphs whose
// vertices are points of the plane and whose edges are segments that meet
// only at shared endpoints.
//
// What is in the box?
//
//	graph/   — plain vertex-list / edge-list model, geometry helpers
//	dcel/    — half-edge embedding: faces, rotations, duals, invariant checks
//	adjlist/ — linked adjacency lists with O(deg) vertex detachment
//	orient/  — orientation with out-degree ≤ 5 for planar input
//	bfs/     — breadth-first search and connected components
//	dfs/     — topological sort over directed edges
//	builder/ — grids, convex polygons, wheels, random triangulations
//	graphio/ — count-prefixed text format
//	render/  — DOT / SVG export at the drawing's own coordinates
//
// Quick ASCII example:
//
//	3───2
//	│   │
//	0───1
//
// is a unit square: 4 vertices, 4 edges, 8 darts and 2 faces, one bounded
// (area 1) and one outer.
//
// The graphcore command in cmd/graphcore drives all of the above from the
// shell.
package graphcore
