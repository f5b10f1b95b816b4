package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/erd/diagram"
)

// settingNames lists the recognized diagram settings in the order the
// environment is scanned. Names match the keys accepted in config
// files and, uppercased with an ERD_ prefix, the environment.
var settingNames = []string{
	"html_color_default",
	"html_color_highlight",
	"fontname",
	"fontsize",
	"fontsize_title",
	"fontsize_label",
	"bgcolor_indexes",
	"rankdir",
	"edge_thickness",
	"display_columns",
	"display_indexes",
	"display_crowfoots",
	"omit_isolated_tables",
	"default_namespace",
	"column_attributes",
}

// settingOption translates a single named setting into a diagram
// option. Unrecognized names pass through as graph level styling
// hints. Values may arrive as YAML scalars or as raw strings from the
// environment, so each setting accepts both forms.
func settingOption(name string, value any) (diagram.Option, error) {
	switch name {
	case "html_color_default":
		return diagram.WithDefaultColor(asString(value)), nil
	case "html_color_highlight":
		return diagram.WithHighlightColor(asString(value)), nil
	case "fontname":
		return diagram.WithFontName(asString(value)), nil
	case "fontsize":
		n, err := asInt(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithFontSize(n), nil
	case "fontsize_title":
		n, err := asInt(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithTitleFontSize(n), nil
	case "fontsize_label":
		n, err := asInt(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithLabelFontSize(n), nil
	case "bgcolor_indexes":
		return diagram.WithIndexesBackground(asString(value)), nil
	case "rankdir":
		return diagram.WithRankDir(diagram.RankDir(asString(value))), nil
	case "edge_thickness":
		f, err := asFloat(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithEdgeThickness(f), nil
	case "display_columns":
		b, err := asBool(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithDisplayColumns(b), nil
	case "display_indexes":
		b, err := asBool(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithDisplayIndexes(b), nil
	case "display_crowfoots":
		b, err := asBool(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithDisplayCrowfoots(b), nil
	case "omit_isolated_tables":
		b, err := asBool(name, value)
		if err != nil {
			return nil, err
		}
		return diagram.WithOmitIsolatedTables(b), nil
	case "default_namespace":
		return diagram.WithDefaultNamespace(asString(value)), nil
	case "column_attributes":
		attrs, err := asColumnAttrs(value)
		if err != nil {
			return nil, err
		}
		return diagram.WithColumnAttrs(attrs...), nil
	default:
		return diagram.WithGraphAttr(name, asString(value)), nil
	}
}

// optionsFromFile reads diagram settings from a YAML file holding a
// flat mapping of setting names to values.
func optionsFromFile(path string) ([]diagram.Option, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	settings := map[string]any{}
	if err := yaml.NewDecoder(f).Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return optionsFromMap(settings)
}

// optionsFromEnv reads diagram settings from ERD_* environment
// variables, e.g. ERD_RANKDIR=RL or ERD_DISPLAY_COLUMNS=false.
func optionsFromEnv(getenv func(string) string) ([]diagram.Option, error) {
	var opts []diagram.Option
	for _, name := range settingNames {
		raw := getenv("ERD_" + strings.ToUpper(name))
		if raw == "" {
			continue
		}
		opt, err := settingOption(name, raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// optionsFromMap translates a settings mapping in a deterministic
// key order.
func optionsFromMap(settings map[string]any) ([]diagram.Option, error) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := make([]diagram.Option, 0, len(keys))
	for _, k := range keys {
		opt, err := settingOption(k, settings[k])
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func asInt(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, diagram.NewConfigError(name, value, "expected an integer")
		}
		return n, nil
	default:
		return 0, diagram.NewConfigError(name, value, "expected an integer")
	}
}

func asFloat(name string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, diagram.NewConfigError(name, value, "expected a number")
		}
		return f, nil
	default:
		return 0, diagram.NewConfigError(name, value, "expected a number")
	}
}

func asBool(name string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, diagram.NewConfigError(name, value, "expected a boolean")
		}
		return b, nil
	default:
		return false, diagram.NewConfigError(name, value, "expected a boolean")
	}
}

// asColumnAttrs accepts either a YAML sequence or a comma separated
// string. Attribute validation happens in the diagram option itself.
func asColumnAttrs(value any) ([]diagram.ColumnAttr, error) {
	var parts []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			parts = append(parts, asString(item))
		}
	case []string:
		parts = v
	case string:
		parts = strings.Split(v, ",")
	default:
		return nil, diagram.NewConfigError("column_attributes", value, "expected a list of attribute names")
	}

	attrs := make([]diagram.ColumnAttr, 0, len(parts))
	for _, p := range parts {
		attrs = append(attrs, diagram.ColumnAttr(strings.TrimSpace(p)))
	}
	return attrs, nil
}
