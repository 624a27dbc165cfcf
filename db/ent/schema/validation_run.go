package schema

import (
	"encoding/json"
	"time"

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

// ValidationRun is one execution of the reconciliation pipeline. Child result
// tables are owned by the run and cascade-deleted with it; the run row itself
// is updated in place on re-runs so its id and creation time survive.
type ValidationRun struct{ ent.Schema }

func (ValidationRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "validation_runs"},
	}
}

func (ValidationRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("filename").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("document_category").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentCategories...)),
		field.String("user_id").NotEmpty(),
		field.String("status").
			Default(string(constants.RunStatusProcessing)).
			Validate(utils.EnumValidator(constants.RunStatuses...)),
		field.Float("score").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Int("total_records").Default(0),
		field.Int("matched_records").Default(0),
		field.Int("mismatched_records").Default(0),
		field.JSON("processing_details", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ValidationRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invalid_groups", InvalidGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("matched_groups", MatchedGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("invalid_rows", InvalidRow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("matched_rows", MatchedRow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ValidationRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("filename", "document_type", "document_category"),
	}
}
