// Package graphio reads and writes graph.Graph values in a small
// count-prefixed text format:
//
//	Vertices
//	3
//	0 0
//	1 0
//	0 1
//
//	Edges
//	3
//	0 1
//	1 2
//	2 0 d
//
// Lines before the "Vertices" header and between the vertex block and the
// "Edges" header are ignored. Blank lines inside a block are skipped. A
// trailing "d" marks an edge directed from the first to the second index.
// Coordinates are written with the shortest representation that parses back
// to the same float64, so Write followed by Read is lossless.
//
// Errors:
//
//	ErrMissingSection - no "Vertices" or "Edges" header.
//	ErrBadCount       - a count line is not a non-negative integer.
//	ErrBadVertex      - a vertex line is not two floats.
//	ErrBadEdge        - an edge line has bad indices, a bad flag or is a loop.
//	ErrTruncated      - the input ends before the announced number of lines.
package graphio
