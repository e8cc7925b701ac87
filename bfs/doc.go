// Package bfs provides breadth-first search over a graph.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     vertex and returns a Result with:
//   - Order: visit sequence
//   - Depth: hop distance per vertex index (Unreached if unseen)
//   - Parent: predecessor in the BFS tree
//   - Components splits a graph into connected components; the embedding
//     package uses it to find one outer face per component.
//   - Hooks: OnEnqueue, and OnVisit which may abort with an error.
//   - WithFilterEdge skips individual edges; WithMaxDepth bounds the search.
//
// Direction
//
//	Every edge is followed both ways. The searches answer questions about
//	the drawing's connectivity, which edge orientation does not change.
//
// Determinism
//
//	Neighbours are taken in incident-edge insertion order, so the visit
//	sequence is reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ctx.Err() or an OnVisit error
//	}
//	path, _ := res.PathTo(7)
package bfs
