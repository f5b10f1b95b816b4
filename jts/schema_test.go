package jts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/erd/jts"
)

const sampleDocument = `{
  "database_name": "mydb",
  "database_description": "example database",
  "generation_begin_time": "2015-09-22 15:14:02.828037+02:00",
  "generation_end_time": "2015-09-22 15:14:02.878593+02:00",
  "source": "pg_jts",
  "source_version": "0.1",
  "datapackages": [
    {
      "datapackage": "public",
      "resources": [
        {
          "name": "channel",
          "description": "A communication channel",
          "fields": [
            {
              "name": "id",
              "type": "integer",
              "constraints": {"required": true},
              "default_value": "channel_id_seq()"
            },
            {
              "name": "name",
              "type": "text",
              "constraints": {"required": false},
              "description": "channel name"
            }
          ],
          "primaryKey": ["id"],
          "unique": [{"name": "channel_name_key", "fields": ["name"]}],
          "indexes": [
            {
              "name": "channel_pkey",
              "definition": "CREATE UNIQUE INDEX channel_pkey ON channel USING btree (id)",
              "fields": ["id"],
              "primary": true,
              "unique": true
            }
          ]
        },
        {
          "name": "person",
          "fields": [
            {"name": "id", "type": "integer", "constraints": {"required": true}},
            {"name": "channel_id", "type": "integer"},
            {"name": "nick", "type": "text", "constraints": {"required": false}}
          ],
          "primaryKey": ["id"],
          "foreignKeys": [
            {
              "fields": "channel_id",
              "reference": {
                "datapackage": "public",
                "resource": "channel",
                "fields": ["id"],
                "name": "person_channel_id_fkey",
                "cardinalitySelf": "0..N",
                "cardinalityRef": "1"
              }
            }
          ]
        }
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	t.Parallel()

	db, err := jts.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	t.Run("Document", func(t *testing.T) {
		assert.Equal(t, "mydb", db.Name)
		assert.Equal(t, "2015-09-22 15:14:02.828037+02:00", db.GenerationBeginTime)
		assert.Equal(t, "pg_jts", db.Source)
		require.Len(t, db.Namespaces, 1)
		assert.Equal(t, "public", db.Namespaces[0].Name)
		require.Len(t, db.Namespaces[0].Tables, 2)
	})

	t.Run("Columns", func(t *testing.T) {
		channel := db.Namespaces[0].Tables[0]
		assert.Equal(t, "channel", channel.Name)
		assert.Equal(t, "A communication channel", channel.Description)

		id := channel.Column("id")
		require.NotNil(t, id)
		assert.Equal(t, "integer", id.Type)
		require.NotNil(t, id.Constraints)
		require.NotNil(t, id.Constraints.Required)
		assert.True(t, *id.Constraints.Required)
		require.NotNil(t, id.DefaultValue)
		assert.Equal(t, "channel_id_seq()", *id.DefaultValue)

		name := channel.Column("name")
		require.NotNil(t, name)
		require.NotNil(t, name.Constraints.Required)
		assert.False(t, *name.Constraints.Required)

		assert.Nil(t, channel.Column("missing"))
	})

	t.Run("ForeignKeyFieldsAsString", func(t *testing.T) {
		// A bare string in the fields position decodes as a
		// one-element list.
		person := db.Namespaces[0].Tables[1]
		require.Len(t, person.ForeignKeys, 1)
		fk := person.ForeignKeys[0]
		assert.Equal(t, jts.FieldList{"channel_id"}, fk.Fields)
		assert.Equal(t, "channel", fk.Reference.Table)
		assert.Equal(t, "0..N", fk.Reference.CardinalitySelf)
	})

	t.Run("TriStateRequired", func(t *testing.T) {
		person := db.Namespaces[0].Tables[1]
		// channel_id carries no constraints at all.
		assert.Nil(t, person.Column("channel_id").Constraints)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := jts.Parse([]byte("{not json"))
		require.Error(t, err)
		assert.True(t, jts.IsSchemaError(err))
	})

	t.Run("UnknownFieldsIgnored", func(t *testing.T) {
		doc := strings.Replace(sampleDocument,
			`"database_name": "mydb",`,
			`"database_name": "mydb", "future_field": {"a": 1},`, 1)
		_, err := jts.Parse([]byte(doc))
		assert.NoError(t, err)
	})
}

func TestForeignKeyIsEnforced(t *testing.T) {
	t.Parallel()

	f := false
	tr := true
	tests := []struct {
		name string
		fk   *jts.ForeignKey
		want bool
	}{
		{name: "default", fk: &jts.ForeignKey{}, want: true},
		{name: "explicit true", fk: &jts.ForeignKey{Enforced: &tr}, want: true},
		{name: "explicit false", fk: &jts.ForeignKey{Enforced: &f}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fk.IsEnforced())
		})
	}
}

func TestTableColumnPartitions(t *testing.T) {
	t.Parallel()

	table := &jts.Table{
		Name: "t",
		Fields: []*jts.Column{
			{Name: "a", Type: "integer"},
			{Name: "b", Type: "integer"},
			{Name: "c", Type: "text"},
		},
		PrimaryKey: []string{"b", "a"},
	}

	t.Run("PrimaryKeyColumns", func(t *testing.T) {
		pk := table.PrimaryKeyColumns()
		require.Len(t, pk, 2)
		// Key order, not field order.
		assert.Equal(t, "b", pk[0].Name)
		assert.Equal(t, "a", pk[1].Name)
	})

	t.Run("NonKeyColumns", func(t *testing.T) {
		rest := table.NonKeyColumns()
		require.Len(t, rest, 1)
		assert.Equal(t, "c", rest[0].Name)
	})
}

func TestInventory(t *testing.T) {
	t.Parallel()

	db, err := jts.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	inv := db.Inventory()
	require.Len(t, inv, 2)
	assert.Contains(t, inv, jts.TableKey{Namespace: "public", Table: "channel"})
	assert.Contains(t, inv, jts.TableKey{Namespace: "public", Table: "person"})
	assert.Equal(t, "person", inv[jts.TableKey{Namespace: "public", Table: "person"}].Name)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	db, err := jts.Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, "mydb", db.Name)
}
