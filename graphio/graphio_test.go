package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangara/graphcore/builder"
	"github.com/mangara/graphcore/graph"
	"github.com/mangara/graphcore/graphio"
)

const triangleText = `# produced by hand
Vertices
3
0 0

1.5 0
0 -2.25

Edges
3
0 1
1 2
2 0 d
`

func TestRead(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(triangleText))
	require.NoError(t, err)

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	v, _ := g.Vertex(2)
	assert.Equal(t, -2.25, v.Y())
	assert.True(t, v.Visible)

	e, _ := g.Edge(2)
	assert.Equal(t, graph.Edge{From: 2, To: 0, Directed: true, Visible: true}, e)
	e, _ = g.Edge(0)
	assert.False(t, e.Directed)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"Empty", "", graphio.ErrMissingSection},
		{"NoEdges", "Vertices\n1\n0 0\n", graphio.ErrMissingSection},
		{"CountNaN", "Vertices\nthree\n", graphio.ErrBadCount},
		{"CountNegative", "Vertices\n-1\n", graphio.ErrBadCount},
		{"CountMissing", "Vertices\n", graphio.ErrTruncated},
		{"VertexOneField", "Vertices\n1\n0\n", graphio.ErrBadVertex},
		{"VertexNotFloat", "Vertices\n1\n0 y\n", graphio.ErrBadVertex},
		{"VerticesShort", "Vertices\n2\n0 0\n", graphio.ErrTruncated},
		{"EdgesShort", "Vertices\n2\n0 0\n1 1\nEdges\n2\n0 1\n", graphio.ErrTruncated},
		{"EdgeBadIndex", "Vertices\n2\n0 0\n1 1\nEdges\n1\n0 x\n", graphio.ErrBadEdge},
		{"EdgeOutOfRange", "Vertices\n2\n0 0\n1 1\nEdges\n1\n0 5\n", graphio.ErrBadEdge},
		{"EdgeLoop", "Vertices\n2\n0 0\n1 1\nEdges\n1\n1 1\n", graphio.ErrBadEdge},
		{"EdgeBadFlag", "Vertices\n2\n0 0\n1 1\nEdges\n1\n0 1 x\n", graphio.ErrBadEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_LoopWrapsGraphError(t *testing.T) {
	_, err := graphio.Read(strings.NewReader("Vertices\n1\n0 0\nEdges\n1\n0 0\n"))
	assert.ErrorIs(t, err, graphio.ErrBadEdge)
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

func TestWrite(t *testing.T) {
	g := graph.New()
	g.AddVertex(0, 0)
	g.AddVertex(0.1, 3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddDirectedEdge(1, 0)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))
	assert.Equal(t, "Vertices\n2\n0 0\n0.1 3\n\nEdges\n2\n0 1\n1 0 d\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	src, err := builder.Build(builder.RandomTriangulation(25, false), builder.WithSeed(11))
	require.NoError(t, err)
	_, _ = src.AddDirectedEdge(0, 1)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, src))
	back, err := graphio.Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, src.Vertices(), back.Vertices(), "coordinates survive exactly")
	assert.Equal(t, src.Edges(), back.Edges())
}

func TestFiles(t *testing.T) {
	src, err := builder.Build(builder.Wheel(6))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wheel.graph")
	require.NoError(t, graphio.WriteFile(path, src))
	back, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.Edges(), back.Edges())

	_, err = graphio.ReadFile(filepath.Join(t.TempDir(), "missing.graph"))
	assert.Error(t, err)
}
