package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/pkg/document"
	"github.com/schemakit/schemakit/pkg/tree"
)

// matchCommand creates the match command for structural prefix testing.
func (c *CLI) matchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [candidate.(json|toml)] [pattern.(json|toml)]",
		Short: "Test whether a pattern tree occurs as a prefix of a candidate tree",
		Long: `Test whether a pattern tree occurs as a prefix of a candidate tree.

The match is existential: root values must be equal, a childless pattern
matches any remaining structure, and at each level one matching pair of
children suffices. The command prints the verdict and exits 0 either way;
use --quiet to suppress output and signal "no match" with exit code 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			return c.runMatch(cmd, args[0], args[1], quiet)
		},
	}

	cmd.Flags().BoolP("quiet", "q", false, "no output, report the verdict via exit code")

	return cmd
}

func (c *CLI) runMatch(cmd *cobra.Command, candidatePath, patternPath string, quiet bool) error {
	candidate, err := document.ReadTreeFile(candidatePath)
	if err != nil {
		return fmt.Errorf("load candidate %s: %w", candidatePath, err)
	}
	pattern, err := document.ReadTreeFile(patternPath)
	if err != nil {
		return fmt.Errorf("load pattern %s: %w", patternPath, err)
	}

	matched := tree.HasPrefix(candidate, pattern)

	if quiet {
		if !matched {
			// SilenceErrors is left off so cobra reports nothing here; the
			// non-nil error only drives the exit code.
			cmd.SilenceErrors = true
			return fmt.Errorf("no match")
		}
		return nil
	}

	if matched {
		fmt.Fprintln(cmd.OutOrStdout(), "match")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "no match")
	}
	return nil
}
