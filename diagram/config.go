package diagram

// RankDir is the reading direction of the diagram: whether dependent
// tables appear on the right or the left hand side.
type RankDir string

// Supported layout directions.
const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
)

// ColumnAttr names one displayable column attribute.
type ColumnAttr string

// Displayable column attributes, in their default order.
const (
	// AttrName is the column name, rendered bold.
	AttrName ColumnAttr = "name"
	// AttrType is the column type, rendered verbatim.
	AttrType ColumnAttr = "type"
	// AttrCombined joins nullability, uniqueness tags, default value
	// and description into one annotation cell.
	AttrCombined ColumnAttr = "combined"
)

// Config carries all rendering options. It is immutable once built;
// Build copies the defaults and applies options, so concurrent builds
// never share configuration state.
type Config struct {
	// DefaultColor is the background of ordinary column rows.
	DefaultColor string
	// HighlightColor is the background of primary key rows.
	HighlightColor string
	// FontName is the font family for all text.
	FontName string
	// FontSize is the base font size.
	FontSize int
	// TitleFontSize is the font size of table titles.
	TitleFontSize int
	// LabelFontSize is the font size of edge labels.
	LabelFontSize int
	// IndexesBackground is the background of the extra indexes row.
	IndexesBackground string
	// RankDir is the layout direction, LR or RL.
	RankDir RankDir
	// EdgeThickness is the pen width of relationship edges.
	EdgeThickness float64
	// DisplayColumns renders one row and one port per column. When
	// disabled, relationships degrade to plain table-to-table edges.
	DisplayColumns bool
	// DisplayIndexes renders the extra indexes row.
	DisplayIndexes bool
	// DisplayCrowfoots renders cardinality arrow ends.
	DisplayCrowfoots bool
	// OmitIsolatedTables drops tables without any foreign key, in
	// either direction.
	OmitIsolatedTables bool
	// DefaultNamespace is the namespace elided from table titles and
	// node identifiers.
	DefaultNamespace string
	// ColumnAttrs is the displayed subset of column attributes.
	ColumnAttrs []ColumnAttr
	// GraphAttrs are styling hints forwarded to the layout engine
	// without interpretation.
	GraphAttrs map[string]string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultColor:       "#ccff99",
		HighlightColor:     "#33cc99",
		FontName:           "Helvetica",
		FontSize:           8,
		TitleFontSize:      10,
		LabelFontSize:      6,
		IndexesBackground:  "#ccccff",
		RankDir:            LeftToRight,
		EdgeThickness:      1.0,
		DisplayColumns:     true,
		DisplayIndexes:     true,
		DisplayCrowfoots:   true,
		OmitIsolatedTables: false,
		DefaultNamespace:   "public",
		ColumnAttrs:        []ColumnAttr{AttrName, AttrType, AttrCombined},
	}
}

// nodeID returns the graph identity of a table. Tables outside the
// default namespace are qualified so that equally named tables in
// different namespaces stay distinct nodes.
func (c *Config) nodeID(namespace, table string) string {
	if namespace != c.DefaultNamespace {
		return namespace + "." + table
	}
	return table
}
