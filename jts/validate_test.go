package jts_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/erd/jts"
)

// minimalDatabase returns a valid two-table document that tests mutate
// into invalid shapes.
func minimalDatabase() *jts.Database {
	return &jts.Database{
		Name:                "mydb",
		GenerationBeginTime: "2015-01-01 00:00:00",
		Namespaces: []*jts.Namespace{
			{
				Name: "public",
				Tables: []*jts.Table{
					{
						Name: "channel",
						Fields: []*jts.Column{
							{Name: "id", Type: "integer"},
						},
						PrimaryKey: []string{"id"},
					},
					{
						Name: "person",
						Fields: []*jts.Column{
							{Name: "id", Type: "integer"},
							{Name: "channel_id", Type: "integer"},
						},
						PrimaryKey: []string{"id"},
						ForeignKeys: []*jts.ForeignKey{
							{
								Fields: jts.FieldList{"channel_id"},
								Reference: &jts.Reference{
									Namespace: "public",
									Table:     "channel",
									Fields:    []string{"id"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, minimalDatabase().Validate())
	})

	t.Run("EmptyDatapackages", func(t *testing.T) {
		db := &jts.Database{
			Name:                "mydb",
			GenerationBeginTime: "2015-01-01 00:00:00",
			Namespaces:          []*jts.Namespace{},
		}
		assert.NoError(t, db.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(db *jts.Database)
		message string
	}{
		{
			name:    "missing database_name",
			mutate:  func(db *jts.Database) { db.Name = "" },
			message: "database_name",
		},
		{
			name:    "missing generation_begin_time",
			mutate:  func(db *jts.Database) { db.GenerationBeginTime = "" },
			message: "generation_begin_time",
		},
		{
			name:    "missing datapackages",
			mutate:  func(db *jts.Database) { db.Namespaces = nil },
			message: "datapackages",
		},
		{
			name: "duplicate table identity",
			mutate: func(db *jts.Database) {
				tables := db.Namespaces[0].Tables
				db.Namespaces[0].Tables = append(tables, &jts.Table{Name: "channel"})
			},
			message: "duplicate table identity",
		},
		{
			name: "duplicate column name",
			mutate: func(db *jts.Database) {
				ch := db.Namespaces[0].Tables[0]
				ch.Fields = append(ch.Fields, &jts.Column{Name: "id", Type: "text"})
			},
			message: "duplicate column name",
		},
		{
			name: "primary key names unknown column",
			mutate: func(db *jts.Database) {
				db.Namespaces[0].Tables[0].PrimaryKey = []string{"nope"}
			},
			message: "primary key",
		},
		{
			name: "foreign key without reference",
			mutate: func(db *jts.Database) {
				db.Namespaces[0].Tables[1].ForeignKeys[0].Reference = nil
			},
			message: "without a reference",
		},
		{
			name: "foreign key arity mismatch",
			mutate: func(db *jts.Database) {
				fk := db.Namespaces[0].Tables[1].ForeignKeys[0]
				fk.Reference.Fields = []string{"id", "id2"}
			},
			message: "arity mismatch",
		},
		{
			name: "dangling reference",
			mutate: func(db *jts.Database) {
				fk := db.Namespaces[0].Tables[1].ForeignKeys[0]
				fk.Reference.Table = "missing"
			},
			message: "references unknown table",
		},
		{
			name: "foreign key tail column missing",
			mutate: func(db *jts.Database) {
				fk := db.Namespaces[0].Tables[1].ForeignKeys[0]
				fk.Fields = jts.FieldList{"nope"}
			},
			message: "names a column that does not exist",
		},
		{
			name: "foreign key head column missing",
			mutate: func(db *jts.Database) {
				fk := db.Namespaces[0].Tables[1].ForeignKeys[0]
				fk.Reference.Fields = []string{"nope"}
			},
			message: "does not exist",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := minimalDatabase()
			tt.mutate(db)
			err := db.Validate()
			require.Error(t, err)
			assert.True(t, jts.IsSchemaError(err))
			assert.True(t, errors.Is(err, jts.ErrInvalidSchema))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSchemaError(t *testing.T) {
	t.Parallel()

	t.Run("Error", func(t *testing.T) {
		err := jts.NewSchemaError("public.person", "channel_id", "broken", nil)
		assert.Equal(t, "erd: schema error on table public.person field channel_id: broken", err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := errors.New("underlying")
		err := jts.NewSchemaError("", "", "decoding document", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsSchemaError", func(t *testing.T) {
		err := jts.NewSchemaError("t", "", "bad", nil)
		assert.True(t, jts.IsSchemaError(err))
		assert.False(t, jts.IsSchemaError(errors.New("other error")))
		assert.False(t, jts.IsSchemaError(nil))
	})
}
