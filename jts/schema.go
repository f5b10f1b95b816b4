package jts

import (
	"encoding/json"
	"io"
	"os"
)

// Database is the root of an extended JSON table schema document,
// compatible with what pg_jts produces.
type Database struct {
	Name                string       `json:"database_name"`
	Description         string       `json:"database_description,omitempty"`
	GenerationBeginTime string       `json:"generation_begin_time"`
	GenerationEndTime   string       `json:"generation_end_time,omitempty"`
	Source              string       `json:"source,omitempty"`
	SourceVersion       string       `json:"source_version,omitempty"`
	Namespaces          []*Namespace `json:"datapackages"`
}

// Namespace is a named grouping of tables (a database schema).
type Namespace struct {
	Name   string   `json:"datapackage"`
	Tables []*Table `json:"resources"`
}

// Table describes one relation: its columns, keys, indexes and
// outgoing foreign keys. Tables are immutable after decoding.
type Table struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Fields      []*Column      `json:"fields"`
	PrimaryKey  []string       `json:"primaryKey,omitempty"`
	Unique      []*UniqueGroup `json:"unique,omitempty"`
	Indexes     []*Index       `json:"indexes,omitempty"`
	ForeignKeys []*ForeignKey  `json:"foreignKeys,omitempty"`
}

// Column describes one table column. DefaultValue and
// Constraints.Required are pointers because their absence is
// significant: a column without a required constraint renders
// differently from one that is explicitly optional.
type Column struct {
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Constraints  *Constraints `json:"constraints,omitempty"`
	DefaultValue *string      `json:"default_value,omitempty"`
	Description  string       `json:"description,omitempty"`
}

// Constraints holds column-level constraint flags.
type Constraints struct {
	Required *bool `json:"required,omitempty"`
	Unique   bool  `json:"unique,omitempty"`
}

// UniqueGroup is a table-level unique constraint over one or more columns.
type UniqueGroup struct {
	Name   string   `json:"name,omitempty"`
	Fields []string `json:"fields"`
}

// Index describes a database index. Only non-unique indexes appear in
// the rendered output; primary and unique indexes are implied by the
// key rows.
type Index struct {
	Name       string   `json:"name,omitempty"`
	Definition string   `json:"definition,omitempty"`
	Fields     []string `json:"fields,omitempty"`
	Creation   string   `json:"creation,omitempty"`
	Primary    bool     `json:"primary,omitempty"`
	Unique     bool     `json:"unique,omitempty"`
}

// ForeignKey ties columns of its owning (tail) table to columns of a
// referenced (head) table.
type ForeignKey struct {
	Fields    FieldList  `json:"fields"`
	Reference *Reference `json:"reference"`
	Enforced  *bool      `json:"enforced,omitempty"`
}

// IsEnforced reports whether the foreign key is enforced by the
// database. Keys without an explicit flag count as enforced.
func (fk *ForeignKey) IsEnforced() bool {
	return fk.Enforced == nil || *fk.Enforced
}

// Reference is the head side of a foreign key.
type Reference struct {
	Namespace       string   `json:"datapackage"`
	Table           string   `json:"resource"`
	Fields          []string `json:"fields"`
	Name            string   `json:"name,omitempty"`
	Label           string   `json:"label,omitempty"`
	CardinalitySelf string   `json:"cardinalitySelf,omitempty"`
	CardinalityRef  string   `json:"cardinalityRef,omitempty"`
}

// FieldList is a list of column names that also accepts a bare JSON
// string, which decodes as a one-element list. Single-column foreign
// keys are written both ways in the wild.
type FieldList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *FieldList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = FieldList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = FieldList(many)
	return nil
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Fields {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// PrimaryKeyColumns returns the primary key columns in key order.
// Names without a matching column are skipped; validation rejects them.
func (t *Table) PrimaryKeyColumns() []*Column {
	cols := make([]*Column, 0, len(t.PrimaryKey))
	for _, name := range t.PrimaryKey {
		if c := t.Column(name); c != nil {
			cols = append(cols, c)
		}
	}
	return cols
}

// inPrimaryKey reports whether the named column is part of the primary key.
func (t *Table) inPrimaryKey(name string) bool {
	for _, pk := range t.PrimaryKey {
		if pk == name {
			return true
		}
	}
	return false
}

// NonKeyColumns returns the columns that are not part of the primary
// key, in field order.
func (t *Table) NonKeyColumns() []*Column {
	cols := make([]*Column, 0, len(t.Fields))
	for _, c := range t.Fields {
		if !t.inPrimaryKey(c.Name) {
			cols = append(cols, c)
		}
	}
	return cols
}

// TableKey identifies a table within a document.
type TableKey struct {
	Namespace string
	Table     string
}

// Inventory maps every (namespace, table) pair to its table. On
// duplicate identities the first occurrence wins; Validate rejects
// such documents.
func (d *Database) Inventory() map[TableKey]*Table {
	inv := make(map[TableKey]*Table)
	for _, ns := range d.Namespaces {
		for _, t := range ns.Tables {
			key := TableKey{Namespace: ns.Name, Table: t.Name}
			if _, ok := inv[key]; !ok {
				inv[key] = t
			}
		}
	}
	return inv
}

// Parse decodes and validates a schema document.
func Parse(data []byte) (*Database, error) {
	d := &Database{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, NewSchemaError("", "", "decoding document", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode reads and validates a schema document from r.
func Decode(r io.Reader) (*Database, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseFile reads and validates a schema document from a file.
func ParseFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
