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

type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_job"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("file_id", uuid.UUID{}),
		field.String("vendor").NotEmpty().
			Validate(utils.EnumValidator(constants.VendorNames()...)),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileFormats...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.JobStatuses()...)),
		field.String("error_message").Optional().Nillable(),
		// effective price date resolved for this run
		field.Time("price_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Int("rows_extracted").Default(0).NonNegative(),
		field.Int("rows_loaded").Default(0).NonNegative(),
		field.Int("rows_unrecognized").Default(0).NonNegative(),
	}
}

func (ImportJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", SourceFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.To("records", PriceRecord.Type),
	}
}

func (ImportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor", "status", "started_at"),
		index.Fields("file_id"),
	}
}
