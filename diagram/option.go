package diagram

import "errors"

// Option configures diagram building.
type Option func(*Config) error

// WithDefaultColor sets the background color of ordinary column rows.
func WithDefaultColor(color string) Option {
	return func(c *Config) error {
		if color == "" {
			return NewConfigError("DefaultColor", nil, "color cannot be empty")
		}
		c.DefaultColor = color
		return nil
	}
}

// WithHighlightColor sets the background color of primary key rows.
func WithHighlightColor(color string) Option {
	return func(c *Config) error {
		if color == "" {
			return NewConfigError("HighlightColor", nil, "color cannot be empty")
		}
		c.HighlightColor = color
		return nil
	}
}

// WithFontName sets the font family for all text.
func WithFontName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("FontName", nil, "font name cannot be empty")
		}
		c.FontName = name
		return nil
	}
}

// WithFontSize sets the base font size.
func WithFontSize(size int) Option {
	return func(c *Config) error {
		if size <= 0 {
			return NewConfigError("FontSize", size, "font size must be positive")
		}
		c.FontSize = size
		return nil
	}
}

// WithTitleFontSize sets the font size of table titles.
func WithTitleFontSize(size int) Option {
	return func(c *Config) error {
		if size <= 0 {
			return NewConfigError("TitleFontSize", size, "font size must be positive")
		}
		c.TitleFontSize = size
		return nil
	}
}

// WithLabelFontSize sets the font size of edge labels.
func WithLabelFontSize(size int) Option {
	return func(c *Config) error {
		if size <= 0 {
			return NewConfigError("LabelFontSize", size, "font size must be positive")
		}
		c.LabelFontSize = size
		return nil
	}
}

// WithIndexesBackground sets the background color of the extra
// indexes row.
func WithIndexesBackground(color string) Option {
	return func(c *Config) error {
		if color == "" {
			return NewConfigError("IndexesBackground", nil, "color cannot be empty")
		}
		c.IndexesBackground = color
		return nil
	}
}

// WithRankDir sets the layout direction.
// Supported directions: LR (dependent tables on the right) and RL.
func WithRankDir(dir RankDir) Option {
	return func(c *Config) error {
		switch dir {
		case LeftToRight, RightToLeft:
			c.RankDir = dir
			return nil
		default:
			return NewConfigError("RankDir", string(dir), "unsupported direction; use LR or RL")
		}
	}
}

// WithEdgeThickness sets the pen width of relationship edges.
func WithEdgeThickness(width float64) Option {
	return func(c *Config) error {
		if width <= 0 {
			return NewConfigError("EdgeThickness", width, "thickness must be positive")
		}
		c.EdgeThickness = width
		return nil
	}
}

// WithDisplayColumns toggles per-column rows and ports. Disabling
// collapses relationships to plain table-to-table edges.
func WithDisplayColumns(display bool) Option {
	return func(c *Config) error {
		c.DisplayColumns = display
		return nil
	}
}

// WithDisplayIndexes toggles the extra indexes row.
func WithDisplayIndexes(display bool) Option {
	return func(c *Config) error {
		c.DisplayIndexes = display
		return nil
	}
}

// WithDisplayCrowfoots toggles cardinality arrow ends.
func WithDisplayCrowfoots(display bool) Option {
	return func(c *Config) error {
		c.DisplayCrowfoots = display
		return nil
	}
}

// WithOmitIsolatedTables toggles dropping tables that participate in
// no foreign key.
func WithOmitIsolatedTables(omit bool) Option {
	return func(c *Config) error {
		c.OmitIsolatedTables = omit
		return nil
	}
}

// WithDefaultNamespace sets the namespace elided from table titles
// and node identifiers.
func WithDefaultNamespace(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("DefaultNamespace", nil, "namespace cannot be empty")
		}
		c.DefaultNamespace = name
		return nil
	}
}

// WithColumnAttrs sets the displayed subset of column attributes.
// Supported attributes: name, type, combined.
func WithColumnAttrs(attrs ...ColumnAttr) Option {
	return func(c *Config) error {
		if len(attrs) == 0 {
			return NewConfigError("ColumnAttrs", nil, "at least one attribute is required")
		}
		for _, a := range attrs {
			switch a {
			case AttrName, AttrType, AttrCombined:
			default:
				return NewConfigError("ColumnAttrs", string(a), "unsupported attribute; use name, type, or combined")
			}
		}
		c.ColumnAttrs = attrs
		return nil
	}
}

// WithGraphAttr forwards a graph-level styling hint to the layout
// engine. Unrecognized hints are accepted but never interpreted.
func WithGraphAttr(key, value string) Option {
	return func(c *Config) error {
		if key == "" {
			return NewConfigError("GraphAttrs", nil, "attribute key cannot be empty")
		}
		if c.GraphAttrs == nil {
			c.GraphAttrs = make(map[string]string)
		}
		c.GraphAttrs[key] = value
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
