// Package dfs provides depth-first algorithms on the directed edges of a
// graph.Graph, currently topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for every
// directed edge u→v, u appears before v. Undirected edges are ignored. If the
// directed edges contain a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/mangara/graphcore/graph"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *graph.Graph
	opts  topoOptions
	state []int
	order []int // post-order
}

// TopologicalSort orders all vertices of g along its directed edges.
func TopologicalSort(g *graph.Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	n := g.VertexCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit explores the directed edges leaving v.
func (t *topoSorter) visit(v int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[v] {
	case Gray:
		return fmt.Errorf("%w: back edge into %d", ErrCycleDetected, v)
	case Black:
		return nil
	}
	t.state[v] = Gray

	// v is valid, so IncidentEdges cannot fail.
	edges, _ := t.graph.IncidentEdges(v)
	for _, id := range edges {
		e, _ := t.graph.Edge(id)
		if !e.Directed || e.From != v {
			continue
		}
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
