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

// InvalidRow is the per-row projection of an InvalidGroup, for drill-down.
type InvalidRow struct{ ent.Schema }

func (InvalidRow) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invalid_rows"},
	}
}

func (InvalidRow) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("run_id", uuid.UUID{}),
		field.String("connector").NotEmpty(),
		field.Int("row_index"),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.MismatchCategories...)),
		field.String("error_text").NotEmpty(),
		field.Float("uploaded_value").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
	}
}

func (InvalidRow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", ValidationRun.Type).
			Ref("invalid_rows").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (InvalidRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "connector"),
	}
}
