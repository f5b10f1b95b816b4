package diagram

import (
	"strconv"
	"strings"
)

// escapeText guards names, types, and description texts destined for
// label markup. Variable text is escaped before it is composed with
// fixed markup fragments.
var escapeText = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// labelCell is a single <TD> of a node label.
type labelCell struct {
	Text    string
	Color   string
	BGColor string
	Align   string
	BAlign  string
	ColSpan int
	Port    string
}

func (c *labelCell) writeTo(b *strings.Builder) {
	b.WriteString("<TD")
	if c.Color != "" {
		b.WriteString(` COLOR="`)
		b.WriteString(c.Color)
		b.WriteString(`"`)
	}
	if c.BGColor != "" {
		b.WriteString(` BGCOLOR="`)
		b.WriteString(c.BGColor)
		b.WriteString(`"`)
	}
	if c.Align != "" {
		b.WriteString(` ALIGN="`)
		b.WriteString(c.Align)
		b.WriteString(`"`)
	}
	if c.BAlign != "" {
		b.WriteString(` BALIGN="`)
		b.WriteString(c.BAlign)
		b.WriteString(`"`)
	}
	if c.ColSpan > 0 {
		b.WriteString(` COLSPAN="`)
		b.WriteString(strconv.Itoa(c.ColSpan))
		b.WriteString(`"`)
	}
	if c.Port != "" {
		b.WriteString(` PORT="`)
		b.WriteString(c.Port)
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(c.Text)
	b.WriteString("</TD>")
}

// labelRow is a single <TR> of a node label.
type labelRow struct {
	Cells []*labelCell
}

func (r *labelRow) writeTo(b *strings.Builder) {
	b.WriteString("<TR>\n")
	for _, c := range r.Cells {
		b.WriteString("    ")
		c.writeTo(b)
		b.WriteString("\n")
	}
	b.WriteString("</TR>\n")
}

// labelTable is the HTML-like markup of a table node. All label markup
// in the package is serialized by its String method.
type labelTable struct {
	ID   string
	Rows []*labelRow
}

func (t *labelTable) String() string {
	var b strings.Builder
	b.WriteString(`<TABLE ID="table__`)
	b.WriteString(t.ID)
	b.WriteString(`" ALIGN="LEFT" BORDER="0" CELLBORDER="0" CELLSPACING="0" BGCOLOR="black">`)
	b.WriteString("\n")
	for _, r := range t.Rows {
		r.writeTo(&b)
	}
	b.WriteString("</TABLE>")
	return b.String()
}
