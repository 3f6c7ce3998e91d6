// Package cli implements the schemakit command-line interface.
//
// This package provides commands for inspecting schema documents: walking
// hierarchy trees breadth-first with barrier pruning, matching structural
// prefixes, flattening relationship graphs into links, and rendering
// documents as DOT or SVG diagrams. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - walk: List the nodes of a tree document in breadth-first order
//   - match: Test whether a pattern tree occurs as a prefix of a candidate
//   - links: Flatten a graph document into (from, to, relationship) links
//   - render: Generate DOT or SVG diagrams from tree or graph documents
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/schemakit/schemakit/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "schemakit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Schemakit inspects schema hierarchies and relationship graphs",
		Long:         `Schemakit is a CLI tool for inspecting schema documents: breadth-first walks over hierarchy trees, structural prefix matching, relationship-link extraction, and DOT/SVG rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.matchCommand())
	root.AddCommand(c.linksCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}
