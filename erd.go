package erd

import (
	"context"
	"os"

	"github.com/syssam/erd/diagram"
	"github.com/syssam/erd/jts"
	"github.com/syssam/erd/render/graphviz"
)

// Graph decodes a schema document and assembles its entity
// relationship graph.
func Graph(data []byte, opts ...diagram.Option) (*diagram.Graph, error) {
	db, err := jts.Parse(data)
	if err != nil {
		return nil, err
	}
	return diagram.Build(db, opts...)
}

// DOT decodes a schema document and returns its DOT source.
func DOT(data []byte, opts ...diagram.Option) ([]byte, error) {
	g, err := Graph(data, opts...)
	if err != nil {
		return nil, err
	}
	return graphviz.Marshal(g), nil
}

// Render decodes a schema document and renders it to the requested
// format with the default renderer.
func Render(ctx context.Context, data []byte, format graphviz.Format, opts ...diagram.Option) ([]byte, error) {
	g, err := Graph(data, opts...)
	if err != nil {
		return nil, err
	}
	return graphviz.NewRenderer().Render(ctx, g, format)
}

// SVG decodes a schema document and renders it to SVG.
func SVG(ctx context.Context, data []byte, opts ...diagram.Option) ([]byte, error) {
	return Render(ctx, data, graphviz.FormatSVG, opts...)
}

// SaveSVG renders a schema document to an SVG file.
func SaveSVG(ctx context.Context, data []byte, path string, opts ...diagram.Option) error {
	out, err := SVG(ctx, data, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
