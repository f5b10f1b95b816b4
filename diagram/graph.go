package diagram

import (
	"fmt"
	"strconv"

	"github.com/syssam/erd/jts"
)

// Graph is a declarative entity relationship graph. It carries no
// layout geometry; rendering is left to a layout engine.
type Graph struct {
	// Name identifies the graph, derived from the database name and
	// generation time.
	Name string

	// Attrs are graph level attributes, including styling hints
	// forwarded verbatim.
	Attrs map[string]string

	// Nodes are the table nodes in document order.
	Nodes []Node

	// Junctions are the aggregation points of composite foreign keys,
	// one per distinct relationship side.
	Junctions []Junction

	// Edges are relationship edges, junction connectors, and the
	// collapsed table level edges of degraded column display, in build
	// order.
	Edges []Edge
}

// Node is a single table node. The label holds HTML-like table markup.
type Node struct {
	ID    string
	Label string
	Attrs map[string]string
}

// Junction is an invisible aggregation point joining the columns of a
// composite foreign key side.
type Junction struct {
	ID    string
	Attrs map[string]string
}

// Edge connects two nodes or a node and a junction. Zero-valued fields
// are omitted when the edge is serialized.
type Edge struct {
	Tail         string
	Head         string
	TailPort     string
	HeadPort     string
	PenWidth     float64
	Color        string
	Label        string
	FontName     string
	FontSize     int
	FontColor    string
	ArrowTail    Arrow
	ArrowHead    Arrow
	Tooltip      string
	LabelTooltip string
	Dir          string
}

// Build validates the database and assembles its entity relationship
// graph. All schema errors surface here, before any rendering.
func Build(db *jts.Database, opts ...Option) (*Graph, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := db.Validate(); err != nil {
		return nil, err
	}

	inventory := db.Inventory()

	// Tables participating in at least one foreign key, on either end.
	linked := make(map[jts.TableKey]bool)
	for _, ns := range db.Namespaces {
		for _, t := range ns.Tables {
			for _, fk := range t.ForeignKeys {
				linked[jts.TableKey{Namespace: ns.Name, Table: t.Name}] = true
				linked[jts.TableKey{Namespace: fk.Reference.Namespace, Table: fk.Reference.Table}] = true
			}
		}
	}

	g := &Graph{
		Name: fmt.Sprintf("Postgres database %s (as of %s)", db.Name, db.GenerationBeginTime),
		Attrs: map[string]string{
			"rankdir":  string(cfg.RankDir),
			"fontname": cfg.FontName,
			"fontsize": strconv.Itoa(cfg.FontSize),
			"splines":  "true",
			"overlap":  "scale",
		},
	}
	for k, v := range cfg.GraphAttrs {
		g.Attrs[k] = v
	}

	for _, ns := range db.Namespaces {
		for _, t := range ns.Tables {
			if cfg.OmitIsolatedTables && !linked[jts.TableKey{Namespace: ns.Name, Table: t.Name}] {
				continue
			}
			g.Nodes = append(g.Nodes, buildTableNode(cfg, ns.Name, t))
		}
	}

	b := newEdgeBuilder(cfg, inventory, g)
	for _, ns := range db.Namespaces {
		for _, t := range ns.Tables {
			for _, fk := range t.ForeignKeys {
				b.addForeignKey(ns.Name, t, fk)
			}
		}
	}
	return g, nil
}
