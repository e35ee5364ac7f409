package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/utils"
)

type SourceFile struct {
	ent.Schema
}

func (SourceFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_file"},
	}
}

func (SourceFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("vendor").NotEmpty().
			Validate(utils.EnumValidator(constants.VendorNames()...)),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		// path inside the archive root, set once the file is stored
		field.String("archive_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (SourceFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY jobs
		edge.To("jobs", ImportJob.Type),
	}
}

func (SourceFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor", "content_hash").Unique(),
		index.Fields("vendor", "uploaded_at"),
	}
}
