// Package cli implements the erd command line interface.
package cli

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/syssam/erd/internal/version"
)

// Run loads the environment and executes the root command. It is the
// single entry point used by main.
func Run(ctx context.Context, getenv func(string) string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	return NewRootCmd(getenv).ExecuteContext(ctx)
}

// NewRootCmd creates the root command and registers all subcommands.
// Diagram settings are resolved per invocation from three layers, in
// ascending precedence: config file, ERD_* environment variables and
// command line flags.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "erd",
		Short: "Render entity-relationship diagrams from table schema documents",
		Long: `erd converts JSON table schema documents into entity-relationship
diagrams. The schema document describes tables, columns, keys, indexes
and foreign keys; erd turns it into a Graphviz graph and renders it to
SVG, PNG, PDF or DOT.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	registerRenderCmd(cmd, getenv)
	registerWatchCmd(cmd, getenv)
	registerVersionCmd(cmd)

	return cmd
}
