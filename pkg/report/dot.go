package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/specband/specband/pkg/graph"
)

// frequencyPalette maps color indices to fill colors in DOT output.
// Assignments beyond the palette wrap around; interference graphs at the
// scales the generators produce rarely need more than a dozen frequencies.
var frequencyPalette = []string{
	"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854",
	"#ffd92f", "#e5c494", "#b3b3b3", "#80b1d3", "#fb8072",
	"#bebada", "#fdb462",
}

// ToDOT converts a colored interference graph to Graphviz DOT format.
// Nodes are filled by assigned frequency and labeled "id / fN"; uncolored
// nodes stay white. Node order follows insertion order, so output is
// deterministic for a fixed graph.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph interference {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		if n.Color == graph.Uncolored {
			fmt.Fprintf(&buf, "  %d [label=\"%d\", fillcolor=white];\n", n.ID, n.ID)
			continue
		}
		fill := frequencyPalette[n.Color%len(frequencyPalette)]
		fmt.Fprintf(&buf, "  %d [label=\"%d / f%d\", fillcolor=%q];\n", n.ID, n.ID, n.Color, fill)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
