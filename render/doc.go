// Package render exports a graph.Graph as a vector drawing.
//
// ToDOT writes Graphviz DOT for the neato engine with every vertex pinned at
// its own coordinates (pos="x,y!"), so Graphviz draws the embedding as given
// and performs no layout of its own. RenderSVG turns that DOT into SVG with
// the in-process go-graphviz runtime.
//
// Undirected edges are drawn without arrowheads, directed edges with one.
// Hidden vertices and edges are emitted with style=invis so that indices in
// labels stay stable.
package render
