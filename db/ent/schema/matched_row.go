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

// MatchedRow is the per-row projection of a MatchedGroup, for drill-down.
// uploaded_value is the single row's sum; source_total is the group's.
type MatchedRow struct{ ent.Schema }

func (MatchedRow) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "matched_rows"},
	}
}

func (MatchedRow) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("run_id", uuid.UUID{}),
		field.String("connector").NotEmpty(),
		field.Int("row_index"),
		field.String("note").NotEmpty().
			Validate(utils.EnumValidator(constants.MatchNotes...)),
		field.Float("uploaded_value").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("source_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
	}
}

func (MatchedRow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", ValidationRun.Type).
			Ref("matched_rows").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (MatchedRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "connector"),
		index.Fields("run_id", "note"),
	}
}
