package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/pkg/document"
	"github.com/schemakit/schemakit/pkg/tree"
)

// walkCommand creates the walk command for breadth-first tree listing.
func (c *CLI) walkCommand() *cobra.Command {
	var skip []string

	cmd := &cobra.Command{
		Use:   "walk [tree.(json|toml)]",
		Short: "List a tree document's nodes in breadth-first order",
		Long: `List a tree document's nodes in breadth-first order.

Each visited node is printed with its ancestor path back to the root.
Labels given via --skip act as barriers: a skipped node is not listed and
nothing beneath it is visited, even nodes that are not themselves skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWalk(cmd, args[0], skip)
		},
	}

	cmd.Flags().StringArrayVar(&skip, "skip", nil, "label to prune, repeatable (hides the label's whole subtree)")

	return cmd
}

func (c *CLI) runWalk(cmd *cobra.Command, input string, skip []string) error {
	logger := loggerFromContext(cmd.Context())

	t, err := document.ReadTreeFile(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}
	logger.Debugf("loaded %s: %d nodes, depth %d", input, t.Size(), t.Depth())

	hidden := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		hidden[s] = struct{}{}
	}

	out := cmd.OutOrStdout()
	visited := 0
	w := tree.WalkWhere(t, func(v string) bool {
		_, skipIt := hidden[v]
		return !skipIt
	})
	for s := range w.All() {
		visited++
		path := s.PathToRoot()
		if len(path) == 0 {
			fmt.Fprintln(out, s.Value())
			continue
		}
		names := make([]string, len(path))
		for i, anc := range path {
			names[i] = anc.Value
		}
		fmt.Fprintf(out, "%s\t%s\n", s.Value(), strings.Join(names, " < "))
	}

	logger.Debugf("visited %d of %d nodes", visited, t.Size())
	if pruned := t.Size() - visited; pruned > 0 {
		printDetail("%d nodes pruned", pruned)
	}
	return nil
}
