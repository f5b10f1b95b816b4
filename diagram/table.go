package diagram

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/syssam/erd/jts"
)

// combinedWrapWidth is the soft wrap width of the combined column
// annotation.
const combinedWrapWidth = 50

// buildTableNode renders one table into a node. The label holds the
// title row, one row per column in port order when column display is
// enabled, and a trailing row listing non-unique indexes when index
// display is enabled.
func buildTableNode(cfg *Config, namespace string, t *jts.Table) Node {
	id := cfg.nodeID(namespace, t.Name)
	label := &labelTable{ID: escapeText.Replace(id)}
	label.Rows = append(label.Rows, titleRow(cfg, id, t.Description))
	if cfg.DisplayColumns {
		row := 0
		for _, col := range t.PrimaryKeyColumns() {
			row++
			label.Rows = append(label.Rows, columnRow(cfg, t, col, row, true))
		}
		for _, col := range t.NonKeyColumns() {
			row++
			label.Rows = append(label.Rows, columnRow(cfg, t, col, row, false))
		}
	}
	if cfg.DisplayIndexes {
		if r := indexRow(cfg, t); r != nil {
			label.Rows = append(label.Rows, r)
		}
	}
	tooltip := t.Description
	if tooltip == "" {
		tooltip = "Table " + t.Name
	}
	return Node{
		ID:    id,
		Label: label.String(),
		Attrs: map[string]string{
			"id":       id,
			"style":    "filled",
			"color":    "white",
			"fontname": cfg.FontName,
			"fontsize": strconv.Itoa(cfg.FontSize),
			"shape":    "plaintext",
			"tooltip":  tooltip,
		},
	}
}

// titleRow spans all column cells and carries the table title with the
// description underneath.
func titleRow(cfg *Config, title, description string) *labelRow {
	text := `<FONT POINT-SIZE="` + strconv.Itoa(cfg.TitleFontSize) + `"><b>` +
		escapeText.Replace(title) + `</b></FONT><FONT POINT-SIZE="` +
		strconv.Itoa(cfg.FontSize) + `"><BR/>` + escapeText.Replace(description) + `</FONT>`
	return &labelRow{Cells: []*labelCell{{
		Text:    text,
		Color:   "black",
		BGColor: "lightgrey",
		ColSpan: len(cfg.ColumnAttrs),
	}}}
}

// columnRow renders one column. The leftmost cell carries the i-port
// and the rightmost the f-port; a single cell keeps only the f-port.
func columnRow(cfg *Config, t *jts.Table, col *jts.Column, port int, highlight bool) *labelRow {
	background := cfg.DefaultColor
	if highlight {
		background = cfg.HighlightColor
	}
	row := &labelRow{}
	for i, attr := range cfg.ColumnAttrs {
		cell := &labelCell{
			Text:    formatColumnAttr(t, col, attr),
			BGColor: background,
			Align:   "LEFT",
			BAlign:  "LEFT",
		}
		if i == 0 {
			cell.Port = "i" + strconv.Itoa(port)
		}
		if i == len(cfg.ColumnAttrs)-1 {
			cell.Port = "f" + strconv.Itoa(port)
		}
		row.Cells = append(row.Cells, cell)
	}
	return row
}

func formatColumnAttr(t *jts.Table, col *jts.Column, attr ColumnAttr) string {
	switch attr {
	case AttrName:
		return "<b>" + escapeText.Replace(col.Name) + "</b>"
	case AttrType:
		return escapeText.Replace(col.Type)
	case AttrCombined:
		return combinedAnnotation(t, col)
	default:
		return ""
	}
}

// combinedAnnotation condenses nullability, uniqueness, default value,
// and description into one soft-wrapped string. The NULL marker
// denotes that null is allowed: it appears only when the required
// constraint is present and false.
func combinedAnnotation(t *jts.Table, col *jts.Column) string {
	var vals []string
	if col.Constraints != nil && col.Constraints.Required != nil && !*col.Constraints.Required {
		vals = append(vals, "<s>NULL</s>")
	}
	var uniques []string
	for i, group := range t.Unique {
		pos := slices.Index(group.Fields, col.Name)
		if pos < 0 {
			continue
		}
		if len(group.Fields) == 1 {
			uniques = append(uniques, "UNIQ")
		} else {
			uniques = append(uniques, "UNIQ"+strconv.Itoa(i+1)+":"+strconv.Itoa(pos+1))
		}
	}
	if col.Constraints != nil && col.Constraints.Unique && !slices.Contains(uniques, "UNIQ") {
		uniques = append(uniques, "UNIQ")
	}
	if len(uniques) > 0 {
		vals = append(vals, strings.Join(uniques, "; "))
	}
	if col.DefaultValue != nil {
		vals = append(vals, "DEFAULT="+formatDefault(*col.DefaultValue))
	}
	if col.Description != "" {
		vals = append(vals, escapeText.Replace(col.Description))
	}
	text := strings.ReplaceAll(strings.Join(vals, "; "), "\n", "; ")
	wrapped := wordwrap.WrapString(text, combinedWrapWidth)
	return strings.ReplaceAll(wrapped, "\n", "<BR/>\n")
}

// formatDefault renders a default expression, collapsing
// sequence-backed defaults to a fixed marker.
func formatDefault(value string) string {
	if isSequenceDefault(value) {
		return "[sequence]"
	}
	return escapeText.Replace(value)
}

func isSequenceDefault(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return strings.HasPrefix(lower, "nextval(") || strings.HasSuffix(lower, "_seq()")
}

// indexRow lists non-unique indexes sorted by definition text, or nil
// when the table has none. Unique and primary indexes are suppressed
// because the column rows already imply them.
func indexRow(cfg *Config, t *jts.Table) *labelRow {
	var defs []string
	for _, idx := range t.Indexes {
		if idx.Unique {
			continue
		}
		defs = append(defs, `<FONT POINT-SIZE="`+strconv.Itoa(cfg.FontSize)+`">`+
			escapeText.Replace(idx.Definition)+`</FONT>`)
	}
	if len(defs) == 0 {
		return nil
	}
	sort.Strings(defs)
	span := len(cfg.ColumnAttrs) - 1
	if span < 1 {
		span = 1
	}
	return &labelRow{Cells: []*labelCell{
		{
			Text:    "Extra indexes:",
			Color:   "black",
			BGColor: cfg.IndexesBackground,
			Align:   "LEFT",
			ColSpan: span,
		},
		{
			Text:    strings.Join(defs, "<BR/>"),
			Color:   "black",
			BGColor: cfg.IndexesBackground,
			Align:   "LEFT",
			BAlign:  "LEFT",
		},
	}}
}
