package adjlist_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangara/graphcore/adjlist"
	"github.com/mangara/graphcore/graph"
)

// triangle returns handles 0, 1, 2 joined by edges 01, 12, 20 in that order.
func triangle(t *testing.T, opts ...adjlist.Option) *adjlist.Graph {
	t.Helper()
	g := adjlist.New(opts...)
	a := g.AddVertex(geom.Coord{X: 0, Y: 0})
	b := g.AddVertex(geom.Coord{X: 1, Y: 0})
	c := g.AddVertex(geom.Coord{X: 0, Y: 1})
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))
	require.NoError(t, g.AddEdge(c, a))

	return g
}

func pairSet(g *graph.Graph) map[[2]int]int {
	out := make(map[[2]int]int)
	for _, e := range g.Edges() {
		a, b := e.From, e.To
		if a > b {
			a, b = b, a
		}
		out[[2]int{a, b}]++
	}

	return out
}

func TestAddEdge(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []adjlist.VertexID{0, 1, 2}, g.Vertices())
	for _, v := range g.Vertices() {
		assert.Equal(t, 2, g.Degree(v))
		assert.Equal(t, 0, g.OutDegree(v))
	}
	assert.Equal(t, []adjlist.VertexID{2, 1}, g.Neighbours(0), "entries are prepended")
	assert.True(t, g.IsAdjacentTo(0, 1))
	assert.True(t, g.IsAdjacentTo(1, 0))
	assert.Equal(t, geom.Coord{X: 1, Y: 0}, g.Position(1))
}

func TestAddEdge_Errors(t *testing.T) {
	g := triangle(t)

	assert.ErrorIs(t, g.AddEdge(0, 9), adjlist.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddDirectedEdge(-1, 0), adjlist.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(1, 1), adjlist.ErrLoopNotAllowed)
	assert.Equal(t, 2, g.Degree(1), "failed inserts leave degrees alone")
}

func TestAddDirectedEdge(t *testing.T) {
	g := adjlist.New()
	a := g.AddVertex(geom.Coord{})
	b := g.AddVertex(geom.Coord{X: 1})
	require.NoError(t, g.AddDirectedEdge(a, b))

	assert.Equal(t, 1, g.Degree(a))
	assert.Equal(t, 0, g.Degree(b))
	assert.Equal(t, 1, g.OutDegree(a))
	assert.True(t, g.IsAdjacentTo(a, b))
	assert.False(t, g.IsAdjacentTo(b, a))
	assert.True(t, g.ContainsEdge(b, a))
	assert.Empty(t, g.UndirectedNeighbours(a))

	out := g.ToGraph()
	require.Equal(t, 1, out.EdgeCount())
	e, _ := out.Edge(0)
	assert.Equal(t, graph.Edge{From: 0, To: 1, Directed: true, Visible: true}, e)
}

func TestDirectEdgesOutward(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, 2, g.DirectEdgesOutward(0))
	assert.Equal(t, 2, g.Degree(0), "the detached vertex keeps its entries")
	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 1, g.Degree(2))

	assert.False(t, g.IsAdjacentTo(1, 0))
	assert.True(t, g.ContainsEdge(1, 0))
	assert.Equal(t, []adjlist.VertexID{2}, g.UndirectedNeighbours(1))
	assert.Equal(t, []adjlist.VertexID{1}, g.UndirectedNeighbours(2))
	assert.Zero(t, g.IntegrityFaults())

	out := g.ToGraph()
	s := out.Stats()
	assert.Equal(t, 3, s.EdgeCount)
	assert.Equal(t, 2, s.DirectedEdges)
	assert.Equal(t, 1, s.UndirectedEdges)
	assert.Equal(t, []int{2, 0, 0}, outDegrees(out))
}

func TestDirectEdgesOutward_RepeatReportsFaults(t *testing.T) {
	var buf bytes.Buffer
	g := triangle(t, adjlist.WithLogger(log.New(&buf)))

	require.Equal(t, 2, g.DirectEdgesOutward(0))
	assert.Zero(t, g.IntegrityFaults())
	assert.Empty(t, buf.String())

	assert.Equal(t, 0, g.DirectEdgesOutward(0))
	assert.Equal(t, 2, g.IntegrityFaults(), "one fault per twin-less entry")
	assert.Contains(t, buf.String(), "entry without twin")
	assert.Equal(t, 1, g.Degree(1), "structure is unchanged by the repeat")

	assert.Equal(t, 0, g.DirectEdgesOutward(42))
}

func TestRemoveVertex(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.RemoveVertex(0))

	assert.Equal(t, 2, g.VertexCount())
	assert.False(t, g.HasVertex(0))
	assert.Equal(t, []adjlist.VertexID{1, 2}, g.Vertices())
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 0, g.Degree(0))
	assert.False(t, g.ContainsEdge(1, 0))

	out := g.ToGraph()
	assert.Equal(t, 2, out.VertexCount())
	assert.Equal(t, 1, out.EdgeCount())
	assert.True(t, out.HasEdge(0, 1), "vertices are renumbered densely")

	assert.ErrorIs(t, g.RemoveVertex(0), adjlist.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(0, 1), adjlist.ErrVertexNotFound)
}

func TestRemoveVertex_DropsIncomingDirected(t *testing.T) {
	g := adjlist.New()
	a := g.AddVertex(geom.Coord{})
	b := g.AddVertex(geom.Coord{X: 1})
	require.NoError(t, g.AddDirectedEdge(b, a))
	require.NoError(t, g.RemoveVertex(a))

	out := g.ToGraph()
	assert.Equal(t, 1, out.VertexCount())
	assert.Equal(t, 0, out.EdgeCount())
}

func TestFromGraph_Errors(t *testing.T) {
	_, _, err := adjlist.FromGraph(nil)
	assert.ErrorIs(t, err, adjlist.ErrGraphNil)

	loops := graph.New(graph.WithLoops())
	loops.AddVertex(0, 0)
	_, _ = loops.AddEdge(0, 0)
	_, _, err = adjlist.FromGraph(loops)
	assert.ErrorIs(t, err, adjlist.ErrLoopNotAllowed)
}

func TestRoundTrip(t *testing.T) {
	src := graph.New()
	n := 9
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		src.AddVertex(math.Cos(a), math.Sin(a))
	}
	for i := 0; i < n; i++ {
		_, _ = src.AddEdge(i, (i+1)%n)
	}
	for i := 2; i < n-1; i++ {
		_, _ = src.AddEdge(0, i)
	}

	g, ids, err := adjlist.FromGraph(src)
	require.NoError(t, err)
	require.Len(t, ids, n)
	for i, id := range ids {
		p, _ := src.Vertex(i)
		assert.Equal(t, p.Pos, g.Position(id))
	}

	back := g.ToGraph()
	assert.Equal(t, src.VertexCount(), back.VertexCount())
	assert.Equal(t, src.EdgeCount(), back.EdgeCount())
	assert.Equal(t, pairSet(src), pairSet(back))
	assert.Zero(t, back.Stats().DirectedEdges)
}

func TestAddGraph_Appends(t *testing.T) {
	g := triangle(t)
	src := graph.New()
	src.AddVertex(5, 5)
	src.AddVertex(6, 5)
	_, _ = src.AddEdge(0, 1)

	ids, err := g.AddGraph(src)
	require.NoError(t, err)
	assert.Equal(t, []adjlist.VertexID{3, 4}, ids)
	assert.True(t, g.ContainsEdge(3, 4))
	assert.Equal(t, 5, g.VertexCount())
}

// outDegrees counts directed out-edges per plain vertex.
func outDegrees(g *graph.Graph) []int {
	out := make([]int, g.VertexCount())
	for _, e := range g.Edges() {
		if e.Directed {
			out[e.From]++
		}
	}

	return out
}
