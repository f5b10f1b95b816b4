// Package diagram assembles entity relationship graphs from database
// schema documents.
//
// The package turns a decoded jts.Database into a declarative Graph:
// one record-shaped node per table, one edge per foreign key, and an
// aggregation junction per side of a composite key. The Graph carries
// no layout geometry; positioning is left to a layout engine such as
// Graphviz, fed by the render packages.
//
// # Architecture
//
// Graph assembly follows this flow:
//
//	jts.Database (decoded schema document)
//	        ↓
//	   Validate (every schema error surfaces here)
//	        ↓
//	   Inventory (namespace, table) → *Table
//	        ↓
//	   Table nodes (HTML-like label markup, port numbering)
//	        ↓
//	   Foreign key edges (junctions, connectors, crowfoots)
//	        ↓
//	   Graph (declarative, deterministic)
//
// # Key Types
//
// The package provides several key types:
//
//   - Graph: Nodes, junctions and edges in document order
//   - Node: A table with HTML-like label markup
//   - Junction: Aggregation point of a composite foreign key side
//   - Edge: A relationship, connector or collapsed table edge
//   - Config: Immutable build configuration
//
// # Port Numbering
//
// Every column row carries two ports, i<row> on the left cell and
// f<row> on the right cell. Row 0 is the title row; primary key
// columns occupy rows 1..len(pk) in key order and the remaining
// columns follow in declaration order. PortOf exposes the numbering;
// edges attach to the port facing the referenced table.
//
// # Error Handling
//
// Build validates its inputs up front and never fails afterwards:
//
//	g, err := diagram.Build(db, diagram.WithRankDir(diagram.RightToLeft))
//	if err != nil {
//	    if diagram.IsConfigError(err) {
//	        // Handle bad option values
//	    }
//	    return err
//	}
//
// Schema violations are reported by the jts package as SchemaError.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	g, err := diagram.Build(db,
//	    diagram.WithHighlightColor("#33cc99"),
//	    diagram.WithOmitIsolatedTables(true),
//	)
//
// Unrecognized graph-level styling hints are forwarded verbatim:
//
//	g, err := diagram.Build(db, diagram.WithGraphAttr("bgcolor", "white"))
//
// # Code Organization
//
// The package is organized into several files:
//
//   - config.go: Config type and defaults
//   - option.go: Functional option pattern for configuration
//   - errors.go: Structured error types
//   - graph.go: Graph model and the Build entry point
//   - table.go: Table node and label construction
//   - edge.go: Foreign key edge and junction construction
//   - markup.go: HTML-like label serialization
//   - port.go: Column port numbering
//   - crowfoot.go: Cardinality arrowhead resolution
package diagram
