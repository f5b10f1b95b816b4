package graphviz

import (
	"strconv"

	"github.com/emicklei/dot"

	"github.com/syssam/erd/diagram"
)

// Marshal serializes a graph to DOT source for the Graphviz layout
// programs. The output is deterministic: nodes, edges and attributes
// are emitted in sorted order.
func Marshal(g *diagram.Graph) []byte {
	dg := dot.NewGraph(dot.Directed)
	if g.Name != "" {
		// The graph id is written verbatim, so quote it here.
		dg.ID(strconv.Quote(g.Name))
	}
	for k, v := range g.Attrs {
		dg.Attr(k, v)
	}
	for _, n := range g.Nodes {
		node := dg.Node(n.ID)
		node.Attr("label", dot.HTML("\n"+n.Label+"\n"))
		for k, v := range n.Attrs {
			node.Attr(k, v)
		}
	}
	for _, j := range g.Junctions {
		node := dg.Node(j.ID)
		for k, v := range j.Attrs {
			node.Attr(k, v)
		}
	}
	for _, e := range g.Edges {
		marshalEdge(dg, e)
	}
	return []byte(dg.String())
}

func marshalEdge(dg *dot.Graph, e diagram.Edge) {
	edge := dg.Edge(dg.Node(e.Tail), dg.Node(e.Head))
	if e.TailPort != "" {
		edge.Attr("tailport", e.TailPort)
	}
	if e.HeadPort != "" {
		edge.Attr("headport", e.HeadPort)
	}
	if e.PenWidth > 0 {
		edge.Attr("penwidth", strconv.FormatFloat(e.PenWidth, 'g', -1, 64))
	}
	if e.Color != "" {
		edge.Attr("color", e.Color)
	}
	if e.Label != "" {
		edge.Attr("label", e.Label)
	}
	if e.FontName != "" {
		edge.Attr("fontname", e.FontName)
	}
	if e.FontSize > 0 {
		edge.Attr("fontsize", strconv.Itoa(e.FontSize))
	}
	if e.FontColor != "" {
		edge.Attr("fontcolor", e.FontColor)
	}
	if e.ArrowTail != "" {
		edge.Attr("arrowtail", string(e.ArrowTail))
	}
	if e.ArrowHead != "" {
		edge.Attr("arrowhead", string(e.ArrowHead))
	}
	if e.Tooltip != "" {
		edge.Attr("tooltip", e.Tooltip)
	}
	if e.LabelTooltip != "" {
		edge.Attr("labeltooltip", e.LabelTooltip)
	}
	if e.Dir != "" {
		edge.Attr("dir", e.Dir)
	}
}
