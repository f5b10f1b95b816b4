// Package jts models extended JSON table schema documents.
//
// JSON table schema is a simple format for describing tabular data.
// Extended with keys, indexes and foreign keys (the dialect pg_jts
// extracts from PostgreSQL), it carries a complete relational schema:
// a database holds namespaces, namespaces hold tables, tables hold
// columns, unique groups, indexes and foreign keys.
//
// # Decoding
//
// Documents are decoded with Parse, Decode or ParseFile:
//
//	db, err := jts.ParseFile("schema.json")
//	if err != nil {
//	    if jts.IsSchemaError(err) {
//	        // malformed document
//	    }
//	    return err
//	}
//
// Unrecognized fields in the document are ignored. Decoding is
// followed by a validation pass; a *Database returned by this package
// always satisfies the invariants below.
//
// # Invariants
//
// Validate enforces, in order:
//
//   - database_name, generation_begin_time and datapackages are present
//   - (namespace, table) identities are unique across the document
//   - column names are unique within their table
//   - primary keys name existing columns
//   - every foreign key has matching tail/reference arity, names
//     existing columns on both sides, and references a table present
//     in the document
//
// All defects are reported as *SchemaError before any consumer sees
// the document; there is no partial result.
package jts
