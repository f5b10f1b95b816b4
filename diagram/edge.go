package diagram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/erd/jts"
)

// edgeBuilder assembles relationship edges. Junctions are deduplicated
// by identity; the collapsed edges of degraded column display are
// deduplicated per ordered table pair across the whole document.
type edgeBuilder struct {
	cfg       *Config
	inventory map[jts.TableKey]*jts.Table
	graph     *Graph
	junctions map[string]bool
	plain     map[[2]string]bool
}

func newEdgeBuilder(cfg *Config, inventory map[jts.TableKey]*jts.Table, g *Graph) *edgeBuilder {
	return &edgeBuilder{
		cfg:       cfg,
		inventory: inventory,
		graph:     g,
		junctions: make(map[string]bool),
		plain:     make(map[[2]string]bool),
	}
}

// addForeignKey adds the edges of one foreign key from its owning
// (tail) table to the referenced (head) table.
func (b *edgeBuilder) addForeignKey(namespace string, t *jts.Table, fk *jts.ForeignKey) {
	ref := fk.Reference
	tailID := b.cfg.nodeID(namespace, t.Name)
	headID := b.cfg.nodeID(ref.Namespace, ref.Table)

	if !b.cfg.DisplayColumns {
		pair := [2]string{tailID, headID}
		if b.plain[pair] {
			return
		}
		b.plain[pair] = true
		b.graph.Edges = append(b.graph.Edges, Edge{Tail: tailID, Head: headID, Color: "black"})
		return
	}

	headTable := b.inventory[jts.TableKey{Namespace: ref.Namespace, Table: ref.Table}]
	color := "black"
	if !fk.IsEnforced() {
		color = "blue"
	}

	var label string
	if ref.CardinalitySelf != "" || ref.CardinalityRef != "" {
		if b.cfg.RankDir == RightToLeft {
			label = ref.CardinalityRef + " ↔ " + ref.CardinalitySelf
		} else {
			label = ref.CardinalitySelf + " ↔ " + ref.CardinalityRef
		}
	}
	tailSide := fmt.Sprintf("%s(%s)", t.Name, strings.Join(fk.Fields, ", "))
	headSide := fmt.Sprintf("%s(%s)", ref.Table, strings.Join(ref.Fields, ", "))
	var tooltip string
	if b.cfg.RankDir == RightToLeft {
		tooltip = fmt.Sprintf("%s     %s ↔ %s", label, headSide, tailSide)
	} else {
		tooltip = fmt.Sprintf("%s     %s ↔ %s", label, tailSide, headSide)
	}
	switch {
	case ref.Label != "":
		label += "\n" + ref.Label
		tooltip += "     " + ref.Label
	case ref.Name != "":
		label += "   " + ref.Name
		tooltip += "     " + ref.Name
	}
	label = strings.TrimSpace(label)
	tooltip = strings.TrimSpace(tooltip)

	// Ports attach on the side facing the other table, so the
	// relationship reads across the layout direction.
	portL, portR := "i", "f"
	if b.cfg.RankDir == RightToLeft {
		portL, portR = "f", "i"
	}

	tailNode, tailPort := tailID, portR+strconv.Itoa(PortOf(t, fk.Fields[0]))
	if len(fk.Fields) > 1 {
		junction := fmt.Sprintf("tail agg %s%v->%s", tailID, fk.Fields, headID)
		if !b.junctions[junction] {
			b.junctions[junction] = true
			b.graph.Junctions = append(b.graph.Junctions, Junction{
				ID:    junction,
				Attrs: junctionAttrs(tailID),
			})
			for _, column := range fk.Fields {
				b.graph.Edges = append(b.graph.Edges, Edge{
					Tail:     tailID,
					Head:     junction,
					TailPort: portR + strconv.Itoa(PortOf(t, column)),
					PenWidth: b.cfg.EdgeThickness,
					Color:    color,
					Dir:      "none",
				})
			}
		}
		tailNode, tailPort = junction, ""
	}

	headNode, headPort := headID, portL+strconv.Itoa(PortOf(headTable, ref.Fields[0]))
	if len(ref.Fields) > 1 {
		junction := fmt.Sprintf("head agg %s->%s%v", tailID, headID, fk.Fields)
		if !b.junctions[junction] {
			b.junctions[junction] = true
			b.graph.Junctions = append(b.graph.Junctions, Junction{
				ID:    junction,
				Attrs: junctionAttrs(headID),
			})
			for _, column := range ref.Fields {
				b.graph.Edges = append(b.graph.Edges, Edge{
					Tail:     junction,
					Head:     headID,
					HeadPort: portL + strconv.Itoa(PortOf(headTable, column)),
					PenWidth: b.cfg.EdgeThickness,
					Color:    color,
					Dir:      "none",
				})
			}
		}
		headNode, headPort = junction, ""
	}

	b.graph.Edges = append(b.graph.Edges, Edge{
		Tail:         tailNode,
		Head:         headNode,
		TailPort:     tailPort,
		HeadPort:     headPort,
		PenWidth:     b.cfg.EdgeThickness,
		Color:        color,
		Label:        label,
		FontName:     b.cfg.FontName,
		FontSize:     b.cfg.LabelFontSize,
		FontColor:    color,
		ArrowTail:    Crowfoot(ref.CardinalitySelf, b.cfg.DisplayCrowfoots),
		ArrowHead:    Crowfoot(ref.CardinalityRef, b.cfg.DisplayCrowfoots),
		Tooltip:      tooltip,
		LabelTooltip: tooltip,
		Dir:          "both",
	})
}

func junctionAttrs(owner string) map[string]string {
	return map[string]string{
		"id":    owner,
		"label": "",
		"style": "filled",
		"color": "red",
		"shape": "point",
	}
}
