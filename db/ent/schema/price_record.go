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

type PriceRecord struct{ ent.Schema }

func (PriceRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "price_record"},
	}
}

func (PriceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// identity key: "<provider_code>_<YYYY-MM-DD>", unique per vendor
		field.String("key_date").NotEmpty(),
		field.String("vendor").NotEmpty().
			Validate(utils.EnumValidator(constants.VendorNames()...)),
		field.String("provider_code").NotEmpty(),
		field.Time("price_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// last job that touched the row
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("product").NotEmpty(),
		field.String("category").Optional().Nillable(),
		field.Float("price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("size_grade").Optional().Nillable(),
		field.String("quality").Optional().Nillable(),
		field.String("catch_method").Optional().Nillable(),
		field.String("cut").Optional().Nillable(),
		field.String("state").Optional().Nillable(),
		field.String("origin").Optional().Nillable(),
		field.String("production_type").Optional().Nillable(),
		field.String("slaughter_technique").Optional().Nillable(),
		field.String("color").Optional().Nillable(),
		field.String("conservation").Optional().Nillable(),
		field.String("label").Optional().Nillable(),
		field.String("trim_code").Optional().Nillable(),
		field.String("raw_info").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PriceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY records -> ONE job (last job that touched the row)
		edge.From("job", ImportJob.Type).
			Ref("records").
			Field("job_id").
			Unique(),
	}
}

func (PriceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor", "key_date").Unique(),
		index.Fields("vendor", "price_date"),
		index.Fields("category"),
	}
}
