// Package graphviz renders entity relationship graphs through the
// Graphviz layout programs. Marshal produces DOT source; Renderer
// pipes it through a layout program such as dot to produce SVG, PNG
// or PDF output.
package graphviz

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/syssam/erd/diagram"
)

// Format is an output format accepted by the layout programs.
type Format string

// Output formats. FormatDOT skips the layout program and returns the
// DOT source itself.
const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Renderer lays out graphs by running a Graphviz program.
type Renderer struct {
	program string
	timeout time.Duration
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithProgram selects the layout program. Any Graphviz filter works,
// for example dot, neato, fdp or circo.
func WithProgram(program string) RendererOption {
	return func(r *Renderer) {
		if program != "" {
			r.program = program
		}
	}
}

// WithTimeout bounds a single layout run. Zero leaves the run bounded
// only by the caller's context.
func WithTimeout(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// NewRenderer creates a Renderer using the dot program.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{program: "dot"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Program returns the configured layout program.
func (r *Renderer) Program() string {
	return r.program
}

// Render lays out the graph and returns the bytes of the requested
// format.
func (r *Renderer) Render(ctx context.Context, g *diagram.Graph, format Format) ([]byte, error) {
	source := Marshal(g)
	if format == FormatDOT {
		return source, nil
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, r.program, "-T"+string(format))
	cmd.Stdin = bytes.NewReader(source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, NewRenderError(r.program, string(format), stderr.String(), err)
	}
	return stdout.Bytes(), nil
}
