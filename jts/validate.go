package jts

import "fmt"

// Validate checks the document against the invariants the diagram
// builder relies on. It returns the first problem found as a
// SchemaError. All schema defects surface here, before any rendering
// work begins; a document that validates cannot fail later in the
// pipeline.
func (d *Database) Validate() error {
	if d.Name == "" {
		return NewSchemaError("", "database_name", "missing required field", nil)
	}
	if d.GenerationBeginTime == "" {
		return NewSchemaError("", "generation_begin_time", "missing required field", nil)
	}
	if d.Namespaces == nil {
		return NewSchemaError("", "datapackages", "missing required field", nil)
	}

	inv := make(map[TableKey]*Table)
	for _, ns := range d.Namespaces {
		if ns.Name == "" {
			return NewSchemaError("", "datapackage", "namespace without a name", nil)
		}
		for _, t := range ns.Tables {
			if t.Name == "" {
				return NewSchemaError("", "", fmt.Sprintf("unnamed table in namespace %s", ns.Name), nil)
			}
			key := TableKey{Namespace: ns.Name, Table: t.Name}
			if _, ok := inv[key]; ok {
				return NewSchemaError(qualify(ns.Name, t.Name), "", "duplicate table identity", nil)
			}
			inv[key] = t
			if err := t.validate(ns.Name); err != nil {
				return err
			}
		}
	}

	for _, ns := range d.Namespaces {
		for _, t := range ns.Tables {
			for _, fk := range t.ForeignKeys {
				if err := fk.validate(ns.Name, t, inv); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// validate checks table-local invariants: column name uniqueness and
// primary key columns resolving to actual columns.
func (t *Table) validate(namespace string) error {
	seen := make(map[string]bool, len(t.Fields))
	for _, c := range t.Fields {
		if c.Name == "" {
			return NewSchemaError(qualify(namespace, t.Name), "", "unnamed column", nil)
		}
		if seen[c.Name] {
			return NewSchemaError(qualify(namespace, t.Name), c.Name, "duplicate column name", nil)
		}
		seen[c.Name] = true
	}
	for _, pk := range t.PrimaryKey {
		if t.Column(pk) == nil {
			return NewSchemaError(qualify(namespace, t.Name), pk, "primary key names a column that does not exist", nil)
		}
	}
	return nil
}

// validate checks one foreign key: the reference must be present, the
// tail and reference field lists must have the same arity, every named
// column must exist, and the referenced table must be in the inventory.
func (fk *ForeignKey) validate(namespace string, tail *Table, inv map[TableKey]*Table) error {
	table := qualify(namespace, tail.Name)
	if fk.Reference == nil {
		return NewSchemaError(table, "", "foreign key without a reference", nil)
	}
	ref := fk.Reference
	if len(fk.Fields) == 0 {
		return NewSchemaError(table, "", "foreign key without fields", nil)
	}
	if len(fk.Fields) != len(ref.Fields) {
		return NewSchemaError(table, "",
			fmt.Sprintf("foreign key arity mismatch: %d tail fields, %d reference fields",
				len(fk.Fields), len(ref.Fields)), nil)
	}
	for _, name := range fk.Fields {
		if tail.Column(name) == nil {
			return NewSchemaError(table, name, "foreign key names a column that does not exist", nil)
		}
	}
	head, ok := inv[TableKey{Namespace: ref.Namespace, Table: ref.Table}]
	if !ok {
		return NewSchemaError(table, "",
			fmt.Sprintf("foreign key references unknown table %s", qualify(ref.Namespace, ref.Table)), nil)
	}
	for _, name := range ref.Fields {
		if head.Column(name) == nil {
			return NewSchemaError(qualify(ref.Namespace, ref.Table), name,
				"foreign key reference names a column that does not exist", nil)
		}
	}
	return nil
}

func qualify(namespace, table string) string {
	return namespace + "." + table
}
