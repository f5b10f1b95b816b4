// Package erd turns extended JSON table schema documents into entity
// relationship diagrams.
//
// A schema document, as produced by pg_jts and compatible tools,
// describes a database: namespaces, tables, columns, keys, indexes
// and foreign keys. This package decodes such a document, assembles a
// declarative graph and renders it through the Graphviz layout
// programs.
//
// # Architecture
//
// The pipeline follows this flow:
//
//	JSON schema document
//	        ↓
//	   jts (decode + validate)
//	        ↓
//	   diagram (assemble the declarative graph)
//	        ↓
//	   render/graphviz (DOT source, layout program)
//	        ↓
//	   SVG / PNG / PDF / DOT bytes
//
// # Usage
//
// The root package offers one-call helpers for the common cases:
//
//	data, _ := os.ReadFile("schema.json")
//	svg, err := erd.SVG(ctx, data)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("schema.svg", svg, 0o644)
//
// Diagram options tune colors, fonts, layout direction and what is
// displayed:
//
//	svg, err := erd.SVG(ctx, data,
//	    diagram.WithRankDir(diagram.RightToLeft),
//	    diagram.WithOmitIsolatedTables(true),
//	)
//
// For full control use the packages directly:
//
//	db, err := jts.Parse(data)
//	g, err := diagram.Build(db, opts...)
//	out, err := graphviz.NewRenderer(graphviz.WithProgram("fdp")).
//	    Render(ctx, g, graphviz.FormatPNG)
//
// # Error Handling
//
// Each stage reports structured errors:
//
//   - jts.SchemaError: malformed or inconsistent schema documents
//   - diagram.ConfigError: invalid option values
//   - graphviz.RenderError: layout program failures
//
// All three match their package sentinel through errors.Is and their
// concrete type through the IsXError helpers.
package erd
