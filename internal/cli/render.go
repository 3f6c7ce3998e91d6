package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/pkg/document"
	"github.com/schemakit/schemakit/pkg/render"
	"github.com/schemakit/schemakit/pkg/schema"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderCommand creates the render command for diagram generation.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [doc.(json|toml)]",
		Short: "Render a tree or graph document as a DOT or SVG diagram",
		Long: `Render a tree or graph document as a DOT or SVG diagram.

The document shape is detected automatically: a top-level "nodes" key is a
relationship graph, a top-level "value" key is a hierarchy tree. DOT output
goes to stdout unless --output is given; SVG output defaults to the input
path with an .svg extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("invalid format %q (want dot or svg)", format)
			}
			return c.runRender(cmd, args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.svg for svg)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include structural counts in node labels")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input, output, format string, detailed bool) error {
	doc, err := document.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	opts := render.Options{Detailed: detailed}
	var (
		dot       string
		nodeCount int
		linkCount int
	)
	switch {
	case doc.Graph != nil:
		dot = render.GraphDOT(doc.Graph, opts)
		nodeCount = schema.NodeCount(doc.Graph)
		linkCount = schema.TargetCount(doc.Graph)
	default:
		dot = render.TreeDOT(doc.Tree, opts)
		nodeCount = doc.Tree.Size()
	}

	if format == formatDOT {
		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Wrote DOT diagram")
		printFile(output)
		printStats(nodeCount, linkCount)
		return nil
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".json")
		output = strings.TrimSuffix(output, ".toml") + ".svg"
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	spinner := newSpinnerWithContext(cmd.Context(), "Rendering diagram...")
	spinner.Start()

	svg, err := render.SVG(dot)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render svg: %w", err)
	}
	spinner.Stop()

	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	prog.done(fmt.Sprintf("Rendered %d nodes", nodeCount))
	printSuccess("Wrote SVG diagram")
	printFile(output)
	printStats(nodeCount, linkCount)
	return nil
}
