package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/pkg/document"
	"github.com/schemakit/schemakit/pkg/schema"
)

// linksCommand creates the links command for graph flattening.
func (c *CLI) linksCommand() *cobra.Command {
	var (
		invert bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "links [graph.(json|toml)]",
		Short: "Flatten a graph document into directed relationship links",
		Long: `Flatten a graph document into directed relationship links.

Links are listed in node order, then target order. With --invert each link
is printed backward: endpoints swapped and the cardinality inverted
(one_to_many becomes many_to_one and vice versa). Targets pointing at types
no node declares are listed like any other; documents carry no referential
integrity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLinks(cmd, args[0], invert, asJSON)
		},
	}

	cmd.Flags().BoolVar(&invert, "invert", false, "print each link traversed backward")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a text table")

	return cmd
}

func (c *CLI) runLinks(cmd *cobra.Command, input string, invert, asJSON bool) error {
	logger := loggerFromContext(cmd.Context())

	g, err := document.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debugf("loaded %s: %d nodes, %d targets", input, schema.NodeCount(g), schema.TargetCount(g))

	rows := document.EncodeLinks(schema.Links(g))
	if invert {
		for i, l := range schema.Links(g) {
			rows[i] = document.LinkDoc{
				From: *l.To,
				To:   *l.From,
				Rel:  l.Rel.Invert().String(),
			}
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, r := range rows {
		fmt.Fprintf(out, "%s %s %s (%s)\n", r.From, iconArrow, r.To, r.Rel)
	}
	return nil
}
