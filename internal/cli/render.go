package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/erd/diagram"
	"github.com/syssam/erd/jts"
	"github.com/syssam/erd/render/graphviz"
)

// defaultConfigFile is picked up from the working directory when
// --config is not given.
const defaultConfigFile = "erd.yaml"

type renderOptions struct {
	configFile       string
	output           string
	format           string
	program          string
	timeout          time.Duration
	rankdir          string
	displayColumns   bool
	displayIndexes   bool
	displayCrowfoots bool
	omitIsolated     bool
	set              []string
}

func registerRenderCmd(parent *cobra.Command, getenv func(string) string) {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <schema.json> [schema.json ...]",
		Short: "Render schema documents to diagram files",
		Long: `Render converts one or more JSON table schema documents into diagram
files. With a single input the output file is derived from the input
name unless --output names a file. With multiple inputs --output names
the target directory and the inputs render concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, getenv, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "settings file (default erd.yaml if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or directory for multiple inputs")
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

func runRender(cmd *cobra.Command, getenv func(string) string, opts *renderOptions, inputs []string) error {
	diagOpts, err := collectOptions(cmd, getenv, opts)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.format, opts.output, inputs)
	if err != nil {
		return err
	}

	renderer := graphviz.NewRenderer(
		graphviz.WithProgram(opts.program),
		graphviz.WithTimeout(opts.timeout),
	)

	if len(inputs) == 1 {
		output := resolveOutput(opts.output, inputs[0], format)
		return renderFile(cmd.Context(), renderer, inputs[0], output, format, diagOpts)
	}

	// Multiple inputs render into a directory.
	dir := opts.output
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, input := range inputs {
		g.Go(func() error {
			output := filepath.Join(dir, outputName(input, format))
			return renderFile(ctx, renderer, input, output, format, diagOpts)
		})
	}
	return g.Wait()
}

// collectOptions layers diagram settings from the config file, the
// environment and command line flags, in that order of precedence.
func collectOptions(cmd *cobra.Command, getenv func(string) string, opts *renderOptions) ([]diagram.Option, error) {
	var out []diagram.Option

	path := opts.configFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		fileOpts, err := optionsFromFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, fileOpts...)
		slog.Debug("loaded settings", "config", path)
	}

	envOpts, err := optionsFromEnv(getenv)
	if err != nil {
		return nil, err
	}
	out = append(out, envOpts...)

	flagOpts, err := flagOptions(cmd, opts)
	if err != nil {
		return nil, err
	}
	return append(out, flagOpts...), nil
}

// flagOptions translates flags the user actually set, so flag defaults
// do not override config file or environment settings.
func flagOptions(cmd *cobra.Command, opts *renderOptions) ([]diagram.Option, error) {
	var out []diagram.Option
	if cmd.Flags().Changed("rankdir") {
		out = append(out, diagram.WithRankDir(diagram.RankDir(opts.rankdir)))
	}
	if cmd.Flags().Changed("display-columns") {
		out = append(out, diagram.WithDisplayColumns(opts.displayColumns))
	}
	if cmd.Flags().Changed("display-indexes") {
		out = append(out, diagram.WithDisplayIndexes(opts.displayIndexes))
	}
	if cmd.Flags().Changed("display-crowfoots") {
		out = append(out, diagram.WithDisplayCrowfoots(opts.displayCrowfoots))
	}
	if cmd.Flags().Changed("omit-isolated-tables") {
		out = append(out, diagram.WithOmitIsolatedTables(opts.omitIsolated))
	}
	for _, kv := range opts.set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, diagram.NewConfigError("set", kv, "expected key=value")
		}
		opt, err := settingOption(strings.TrimSpace(key), value)
		if err != nil {
			return nil, err
		}
		out = append(out, opt)
	}
	return out, nil
}

// resolveFormat decides the output format: the -T flag wins, then a
// recognized extension on an explicit single file output, then svg.
func resolveFormat(flag, output string, inputs []string) (graphviz.Format, error) {
	name := strings.ToLower(strings.TrimSpace(flag))
	if name == "" && output != "" && len(inputs) == 1 {
		switch ext := strings.TrimPrefix(filepath.Ext(output), "."); ext {
		case "svg", "png", "pdf", "dot":
			name = ext
		}
	}
	if name == "" {
		return graphviz.FormatSVG, nil
	}
	switch f := graphviz.Format(name); f {
	case graphviz.FormatSVG, graphviz.FormatPNG, graphviz.FormatPDF, graphviz.FormatDOT:
		return f, nil
	default:
		return "", diagram.NewConfigError("format", name, "expected svg, png, pdf or dot")
	}
}

// resolveOutput picks the output path for a single input. An existing
// directory receives the derived file name.
func resolveOutput(output, input string, format graphviz.Format) string {
	if output == "" {
		return outputName(input, format)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, outputName(input, format))
	}
	return output
}

// outputName derives a file name from the input, swapping the
// extension for the format.
func outputName(input string, format graphviz.Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + string(format)
}

// renderFile renders one schema document to one output file.
func renderFile(ctx context.Context, renderer *graphviz.Renderer, input, output string, format graphviz.Format, opts []diagram.Option) error {
	start := time.Now()

	db, err := jts.ParseFile(input)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	g, err := diagram.Build(db, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	out, err := renderer.Render(ctx, g, format)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}

	slog.Info("rendered", "input", input, "output", output, "format", format, "duration", time.Since(start))
	return nil
}
