// Package render turns synthesized graphs into Graphviz DOT and SVG for
// eyeballing generated corpora. Rendering is a debugging aid: it never
// participates in generation or validation, so the corpus stays a pure
// function of its seed.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/caseforge/pkg/graph"
)

// Options configures DOT output.
type Options struct {
	// Weighted labels edges with their weights.
	Weighted bool
	// Highlight marks this vertex (e.g., the shortest-path source or the
	// DAG start vertex). Negative means no highlight.
	Highlight int
}

// ToDOT converts a graph to Graphviz DOT format.
// The resulting string can be rendered with [SVG].
func ToDOT(g graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for v := 0; v < g.N; v++ {
		if v == opts.Highlight {
			fmt.Fprintf(&buf, "  %d [fillcolor=lightblue];\n", v)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", v)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if opts.Weighted {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%d\"];\n", e.From, e.To, e.Weight)
		} else {
			fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

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
