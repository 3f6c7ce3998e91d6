package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/schemakit/schemakit/pkg/schema"
	"github.com/schemakit/schemakit/pkg/tree"
)

// Options configures DOT generation.
type Options struct {
	// Detailed adds structural counts to node labels (child counts for
	// trees, outgoing-edge counts for graphs). When false, only the label
	// text is shown.
	Detailed bool
}

// TreeDOT converts a tree to Graphviz DOT format, one edge per parent→child
// pair. Labels may repeat within a tree, so nodes get synthetic breadth-first
// identifiers and the label goes into the label attribute.
func TreeDOT(t *tree.Tree[string], opts Options) string {
	var buf bytes.Buffer
	writeHeader(&buf)

	ids := make(map[*tree.Tree[string]]string)
	next := 0
	for s := range tree.Walk(t).All() {
		id := fmt.Sprintf("n%d", next)
		next++
		ids[s.Tree()] = id

		label := s.Value()
		if opts.Detailed {
			label = fmt.Sprintf("%s\n%d children", label, len(s.Tree().Children))
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, label)
	}

	buf.WriteString("\n")
	for s := range tree.Walk(t).All() {
		for _, child := range s.Tree().Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", ids[s.Tree()], ids[child])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphDOT converts a relationship graph to Graphviz DOT format, one edge per
// flattened link, labelled with the relationship symbol. Targets pointing at
// undeclared types become nodes implicitly, exactly as Graphviz treats any
// endpoint it has not seen declared.
func GraphDOT(g *schema.Graph[string], opts Options) string {
	var buf bytes.Buffer
	writeHeader(&buf)

	for i := range g.Nodes {
		n := &g.Nodes[i]
		label := n.Type
		if opts.Detailed {
			label = fmt.Sprintf("%s\n%d targets", n.Type, len(n.Targets))
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.Type, label)
	}

	buf.WriteString("\n")
	for _, l := range schema.Links(g) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", *l.From, *l.To, l.Rel.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeHeader(buf *bytes.Buffer) {
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")
}

// SVG renders a DOT graph to SVG using Graphviz in-process.
func SVG(dot string) ([]byte, error) {
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
