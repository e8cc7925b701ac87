package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangara/graphcore/dcel"
	"github.com/mangara/graphcore/graphio"
	"github.com/mangara/graphcore/orient"
)

// run executes the root command with args and captures both streams.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoggerContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))

	l.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := writeFile(t, "graphcore.toml", `
seed = 7
radius = 50.5
log_level = "debug"

[layout]
scale = 4
labels = true
`)
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50.5, cfg.Radius)
	assert.Equal(t, orient.DefaultDegeneracy, cfg.Degeneracy, "unset keys keep defaults")
	assert.Equal(t, LayoutConfig{Scale: 4, Labels: true}, cfg.Layout)

	lvl, err := cfg.level(false)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key": "colour = \"red\"\n",
		"bad radius":  "radius = -1\n",
		"bad k":       "degeneracy = -2\n",
		"bad toml":    "seed = \n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, "c.toml", content))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Config{LogLevel: "loud"}.level(false)
	assert.Error(t, err)
}

func TestGenerate_Stdout(t *testing.T) {
	stdout, stderr, err := run(t, "", "generate", "polygon", "-n", "6")
	require.NoError(t, err)

	g, err := graphio.Read(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Contains(t, stderr, "Generated polygon")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "hexagon")
	assert.Error(t, err)

	_, _, err = run(t, "", "generate", "wheel", "-n", "3")
	assert.Error(t, err)

	_, _, err = run(t, "", "generate", "wheel", "--radius=-1")
	assert.Error(t, err)
}

func TestGenerate_ConfigAndFlags(t *testing.T) {
	cfgPath := writeFile(t, "graphcore.toml", "radius = 10\nlog_level = \"debug\"\n")
	dir := t.TempDir()

	out := filepath.Join(dir, "p.graph")
	stdout, stderr, err := run(t, "", "--config", cfgPath, "generate", "polygon", "-n", "4", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)
	assert.Contains(t, stderr, "generated", "debug level from the config file")

	g, err := graphio.ReadFile(out)
	require.NoError(t, err)
	v, _ := g.Vertex(0)
	assert.InDelta(t, 210, v.X(), 1e-9, "radius from the config file")

	_, _, err = run(t, "", "--config", cfgPath, "generate", "polygon", "-n", "4", "--radius", "30", "-o", out)
	require.NoError(t, err)
	g, err = graphio.ReadFile(out)
	require.NoError(t, err)
	v, _ = g.Vertex(0)
	assert.InDelta(t, 230, v.X(), 1e-9, "flag beats config")
}

func TestGenerate_RandomSeed(t *testing.T) {
	a, _, err := run(t, "", "generate", "random", "-n", "12", "--seed", "5")
	require.NoError(t, err)
	b, _, err := run(t, "", "generate", "random", "-n", "12", "--seed", "5")
	require.NoError(t, err)
	c, _, err := run(t, "", "generate", "random", "-n", "12", "--seed", "6")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestPipeline(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wheel.graph")
	_, _, err := run(t, "", "generate", "wheel", "-n", "7", "-o", in)
	require.NoError(t, err)

	t.Run("orient", func(t *testing.T) {
		out := filepath.Join(dir, "oriented.graph")
		stdout, _, err := run(t, "", "orient", in, "-o", out)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Oriented 12 edges")

		g, err := graphio.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, 12, g.Stats().DirectedEdges)
		for _, d := range orient.OutDegrees(g) {
			assert.LessOrEqual(t, d, 5)
		}
	})

	t.Run("faces", func(t *testing.T) {
		stdout, _, err := run(t, "", "faces", in)
		require.NoError(t, err)
		assert.Contains(t, stdout, "7 vertices · 12 edges · 7 faces")
		assert.Equal(t, 1, strings.Count(stdout, "outer"))
		assert.Equal(t, 6, strings.Count(stdout, "inner size=3"))
	})

	t.Run("dual", func(t *testing.T) {
		out := filepath.Join(dir, "dual.graph")
		_, _, err := run(t, "", "dual", in, "-o", out)
		require.NoError(t, err)
		g, err := graphio.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, 7, g.VertexCount())
		assert.Equal(t, 12, g.EdgeCount())
	})

	t.Run("verify", func(t *testing.T) {
		stdout, _, err := run(t, "", "verify", in)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Embedding is consistent")
	})

	t.Run("render dot", func(t *testing.T) {
		stdout, stderr, err := run(t, "", "render", in, "--dot", "--labels")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "digraph G {"))
		assert.Contains(t, stdout, `label="6"`)
		assert.Contains(t, stderr, "Rendered DOT")
	})

	t.Run("stdin", func(t *testing.T) {
		data, err := os.ReadFile(in)
		require.NoError(t, err)
		stdout, _, err := run(t, string(data), "verify", "-")
		require.NoError(t, err)
		assert.Contains(t, stdout, "consistent")
	})
}

func TestVerify_RejectsCrossings(t *testing.T) {
	path := writeFile(t, "x.graph", "Vertices\n4\n0 0\n1 0\n1 1\n0 1\nEdges\n2\n0 2\n1 3\n")
	_, _, err := run(t, "", "verify", path)
	assert.ErrorIs(t, err, dcel.ErrCrossingEdges)

	_, _, err = run(t, "", "verify", path, "--check-crossings=false")
	assert.NoError(t, err, "the structure itself is still consistent")
}

func TestOrient_NotDegenerate(t *testing.T) {
	tri := "Vertices\n3\n0 0\n1 0\n0 1\nEdges\n3\n0 1\n1 2\n2 0\n"
	_, stderr, err := run(t, tri, "orient", "-", "-k", "1")
	assert.ErrorIs(t, err, orient.ErrNotDegenerate)
	assert.Contains(t, stderr, "Only 0 of 3 vertices")
}

func TestReadGraph_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "faces", filepath.Join(t.TempDir(), "none.graph"))
	assert.Error(t, err)
}
