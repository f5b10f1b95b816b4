package diagram

import "github.com/syssam/erd/jts"

// PortOf returns the 1-based row number of a column inside a table
// node. Primary key columns occupy the first rows in key order; the
// remaining columns follow in declaration order. Unknown columns
// return 0.
func PortOf(t *jts.Table, column string) int {
	for i, name := range t.PrimaryKey {
		if name == column {
			return i + 1
		}
	}
	row := len(t.PrimaryKey)
	for _, col := range t.NonKeyColumns() {
		row++
		if col.Name == column {
			return row
		}
	}
	return 0
}
