package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCell(t *testing.T) {
	tests := []struct {
		name     string
		cell     labelCell
		expected string
	}{
		{
			"title cell",
			labelCell{Text: "<b>person</b>", Color: "black", BGColor: "lightgrey", ColSpan: 3},
			`<TD COLOR="black" BGCOLOR="lightgrey" COLSPAN="3"><b>person</b></TD>`,
		},
		{
			"column cell with port",
			labelCell{Text: "id", BGColor: "#33cc99", Align: "LEFT", BAlign: "LEFT", Port: "i1"},
			`<TD BGCOLOR="#33cc99" ALIGN="LEFT" BALIGN="LEFT" PORT="i1">id</TD>`,
		},
		{
			"index label cell",
			labelCell{Text: "Extra indexes:", Color: "black", BGColor: "#ccccff", Align: "LEFT", ColSpan: 2},
			`<TD COLOR="black" BGCOLOR="#ccccff" ALIGN="LEFT" COLSPAN="2">Extra indexes:</TD>`,
		},
		{
			"bare cell",
			labelCell{Text: "text"},
			`<TD>text</TD>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			tt.cell.writeTo(&b)
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

func TestLabelRow(t *testing.T) {
	row := labelRow{Cells: []*labelCell{
		{Text: "a", Port: "i1"},
		{Text: "b", Port: "f1"},
	}}

	var b strings.Builder
	row.writeTo(&b)
	assert.Equal(t, "<TR>\n    <TD PORT=\"i1\">a</TD>\n    <TD PORT=\"f1\">b</TD>\n</TR>\n", b.String())
}

func TestLabelTable(t *testing.T) {
	table := labelTable{
		ID: "person",
		Rows: []*labelRow{
			{Cells: []*labelCell{{Text: "title", ColSpan: 2}}},
			{Cells: []*labelCell{{Text: "a"}, {Text: "b"}}},
		},
	}

	got := table.String()
	assert.True(t, strings.HasPrefix(got,
		`<TABLE ID="table__person" ALIGN="LEFT" BORDER="0" CELLBORDER="0" CELLSPACING="0" BGCOLOR="black">`))
	assert.True(t, strings.HasSuffix(got, "</TABLE>"))
	assert.Contains(t, got, `<TD COLSPAN="2">title</TD>`)
	assert.Equal(t, 2, strings.Count(got, "<TR>"))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "a &lt;&gt; b &amp; c", escapeText.Replace("a <> b & c"))
	assert.Equal(t, "plain", escapeText.Replace("plain"))
}
