package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangara/graphcore/dfs"
	"github.com/mangara/graphcore/graph"
)

// chain returns n vertices with directed edges i→i+1 plus any extra pairs.
func chain(t *testing.T, n int, extra ...[2]int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddVertex(float64(i), 0)
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.AddDirectedEdge(i, i+1)
		require.NoError(t, err)
	}
	for _, p := range extra {
		_, err := g.AddDirectedEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

// position maps each vertex to its index in order.
func position(order []int) map[int]int {
	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}

	return pos
}

func TestTopologicalSort_Chain(t *testing.T) {
	order, err := dfs.TopologicalSort(chain(t, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestTopologicalSort_RespectsEdges(t *testing.T) {
	g := graph.New()
	for i := 0; i < 6; i++ {
		g.AddVertex(float64(i), 0)
	}
	for _, p := range [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}} {
		_, _ = g.AddDirectedEdge(p[0], p[1])
	}
	_, _ = g.AddEdge(1, 5) // undirected: ignored

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)
	pos := position(order)
	for _, e := range g.Edges() {
		if e.Directed {
			assert.Less(t, pos[e.From], pos[e.To], "%d→%d", e.From, e.To)
		}
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	_, err := dfs.TopologicalSort(chain(t, 4, [2]int{3, 1}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(chain(t, 3), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := dfs.TopologicalSort(graph.New())
	require.NoError(t, err)
	assert.Empty(t, order)
}
