// Package dfs offers depth-first algorithms over the directed edges of a
// graph.Graph.
//
// What
//
//   - TopologicalSort: order vertices so every directed edge points forward;
//     ErrCycleDetected when the directed edges close a cycle.
//
// Orientations produced by the orient package are acyclic: each edge points
// from a vertex detached earlier to one detached later. TopologicalSort is
// the independent check of that property.
//
// Options
//
//   - WithCancelContext(ctx): abort between vertex visits.
//
// Errors
//
//   - ErrGraphNil, ErrCycleDetected, or ctx.Err() on cancellation.
package dfs
