// SPDX-License-Identifier: MIT
// Package: graphcore/render
//
// render.go — DOT export with pinned positions and SVG rendering.

package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/jbeda/geom"

	"github.com/mangara/graphcore/graph"
)

// Options configures DOT output.
type Options struct {
	// Scale multiplies coordinates; one unit becomes Scale points.
	// Values <= 0 mean 1.
	Scale float64

	// Labels draws vertex indices inside small circles instead of dots.
	Labels bool
}

// Bounds returns the extent of the drawing ToDOT produces: the graph's
// bounding box translated to the origin and scaled.
func Bounds(g *graph.Graph, opts Options) geom.Rect {
	b := g.Bounds()
	s := scale(opts)

	return geom.Rect{Max: geom.Coord{X: b.Width() * s, Y: b.Height() * s}}
}

// ToDOT converts g to Graphviz DOT for the neato engine.
func ToDOT(g *graph.Graph, opts Options) string {
	s := scale(opts)
	origin := g.Bounds().Min

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Labels {
		buf.WriteString("  node [shape=circle, fixedsize=true, width=0.3, fontsize=10];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.06];\n")
	}
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	for i, v := range g.Vertices() {
		p := v.Pos.Minus(origin).Times(s)
		attrs := []string{fmt.Sprintf("pos=\"%s,%s!\"", num(p.X), num(p.Y))}
		if opts.Labels {
			attrs = append(attrs, fmt.Sprintf("label=\"%d\"", i))
		}
		if !v.Visible {
			attrs = append(attrs, "style=invis")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		var attrs []string
		if !e.Directed {
			attrs = append(attrs, "dir=none")
		}
		if !e.Visible {
			attrs = append(attrs, "style=invis")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT produced by ToDOT to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func scale(opts Options) float64 {
	if opts.Scale <= 0 {
		return 1
	}
	return opts.Scale
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
