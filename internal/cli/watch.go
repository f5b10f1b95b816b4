package cli

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/erd/render/graphviz"
)

// watchDebounce coalesces the bursts of filesystem events editors
// fire on save into a single render.
const watchDebounce = 100 * time.Millisecond

func registerWatchCmd(parent *cobra.Command, getenv func(string) string) {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "watch <schema.json>",
		Short: "Re-render a schema document whenever it changes",
		Long: `Watch renders the schema document once, then keeps watching it and
re-renders on every change until interrupted. Render failures are
logged rather than fatal, so a broken document can be fixed in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, getenv, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "settings file (default erd.yaml if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "T", "", "output format: svg, png, pdf or dot (default svg)")
	cmd.Flags().StringVar(&opts.program, "program", "dot", "Graphviz layout program")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "layout program timeout")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "graph direction, LR or RL")
	cmd.Flags().BoolVar(&opts.displayColumns, "display-columns", true, "show column rows in table nodes")
	cmd.Flags().BoolVar(&opts.displayIndexes, "display-indexes", true, "show extra index rows in table nodes")
	cmd.Flags().BoolVar(&opts.displayCrowfoots, "display-crowfoots", true, "show cardinality arrowheads")
	cmd.Flags().BoolVar(&opts.omitIsolated, "omit-isolated-tables", false, "hide tables without foreign key edges")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "extra setting as key=value, may repeat")

	parent.AddCommand(cmd)
}

func runWatch(cmd *cobra.Command, getenv func(string) string, opts *renderOptions, input string) error {
	diagOpts, err := collectOptions(cmd, getenv, opts)
	if err != nil {
		return err
	}
	format, err := resolveFormat(opts.format, opts.output, []string{input})
	if err != nil {
		return err
	}
	output := resolveOutput(opts.output, input, format)

	renderer := graphviz.NewRenderer(
		graphviz.WithProgram(opts.program),
		graphviz.WithTimeout(opts.timeout),
	)

	ctx := cmd.Context()
	if err := renderFile(ctx, renderer, input, output, format, diagOpts); err != nil {
		slog.Error("render failed", "err", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watching the directory rather than the file survives the
	// rename-and-replace dance editors do on save.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return err
	}
	slog.Info("watching", "input", input, "output", output)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(input) {
				continue
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			pending = time.After(watchDebounce)
		case <-pending:
			pending = nil
			if err := renderFile(ctx, renderer, input, output, format, diagOpts); err != nil {
				slog.Error("render failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}
