package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/db/ent/schema/utils"

	"github.com/google/uuid"
)

// InvalidGroup is one connector key classified as a group-level mismatch.
type InvalidGroup struct{ ent.Schema }

func (InvalidGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invalid_groups"},
	}
}

func (InvalidGroup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("run_id", uuid.UUID{}),
		field.String("connector").NotEmpty(),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.MismatchCategories...)),
		field.String("error_text").NotEmpty(),
		field.Float("uploaded_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("source_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		// signed: uploaded_total - source_total
		field.Float("discrepancy_value").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
	}
}

func (InvalidGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", ValidationRun.Type).
			Ref("invalid_groups").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (InvalidGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "category"),
		index.Fields("run_id", "connector"),
	}
}
