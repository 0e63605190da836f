// Package render draws graphs under linear arrangements as arc diagrams.
//
// # Overview
//
// An arc diagram places the vertices on a horizontal line in arrangement
// order and draws every edge as an arc above it. Two arcs intersect exactly
// when their edges cross in the arrangement, which makes the diagram the
// natural way to inspect a solver result.
//
// # Usage
//
// Convert a graph and arrangement to DOT format, then render to SVG:
//
//	dot := render.ToDOT(g, arr, render.Options{})
//	svg, err := render.SVG(dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools (dot, neato) when in-process rendering is not wanted.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; producing DOT alone has no native dependencies.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
)

// Options configures arc diagram generation.
type Options struct {
	// Labels maps vertices to display labels. Vertices beyond the slice
	// (or with an empty entry) fall back to their numeric ID.
	Labels []string

	// ShowCrossings adds the crossing count as a diagram caption.
	ShowCrossings bool
}

// ToDOT converts a graph and arrangement to Graphviz DOT format. Vertices
// are pinned to a horizontal spine in arrangement order by an invisible
// high-weight chain; the real edges are drawn as curved arcs that do not
// constrain the layout.
func ToDOT(g graph.Graph, arr *linarr.Arrangement, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  splines=curved;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [dir=none];\n\n")

	n := g.NumVertices()
	for p := 0; p < n; p++ {
		v := arr.VertexAt(p)
		fmt.Fprintf(&buf, "  v%d [label=%q];\n", v, label(opts.Labels, v))
	}

	// invisible spine pins the left-to-right order
	if n > 1 {
		buf.WriteString("\n ")
		for p := 0; p < n; p++ {
			if p > 0 {
				buf.WriteString(" ->")
			}
			fmt.Fprintf(&buf, " v%d", arr.VertexAt(p))
		}
		buf.WriteString(" [style=invis, weight=100];\n\n")
	}

	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if arr.PositionOf(u) > arr.PositionOf(v) {
			u, v = v, u
		}
		fmt.Fprintf(&buf, "  v%d -> v%d [constraint=false];\n", u, v)
	}

	if opts.ShowCrossings {
		c := linarr.Count(g, arr)
		fmt.Fprintf(&buf, "\n  label=\"%d crossings\";\n  labelloc=b;\n", c)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(labels []string, v int) string {
	if v < len(labels) && labels[v] != "" {
		return labels[v]
	}
	return fmt.Sprintf("%d", v)
}

// SVG renders a DOT graph to SVG using Graphviz.
//
// It requires the Graphviz library (github.com/goccy/go-graphviz) to
// initialize; errors are returned if initialization fails, the DOT is
// malformed, or rendering fails. All errors are wrapped with context using
// fmt.Errorf with %w.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
