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

// MatchedGroup is one connector key whose uploaded and source totals agree
// within tolerance.
type MatchedGroup struct{ ent.Schema }

func (MatchedGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "matched_groups"},
	}
}

func (MatchedGroup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("run_id", uuid.UUID{}),
		field.String("connector").NotEmpty(),
		field.String("note").NotEmpty().
			Validate(utils.EnumValidator(constants.MatchNotes...)),
		field.Float("uploaded_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("source_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("difference").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
	}
}

func (MatchedGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", ValidationRun.Type).
			Ref("matched_groups").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (MatchedGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "connector"),
	}
}
