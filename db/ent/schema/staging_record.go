package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/db/ent/schema/utils"

	"github.com/google/uuid"
)

// StagingRecord is one successfully mapped uploaded row. Records are owned by
// the (filename, document_type, document_category) triple and are replaced
// wholesale when the same upload is mapped again.
type StagingRecord struct{ ent.Schema }

func (StagingRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "staging_records"},
	}
}

func (StagingRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("filename").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("document_category").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentCategories...)),
		field.Int("header_row").Default(1),
		field.String("user_id").NotEmpty(),
		// connector joins the uploaded row to the source-of-truth row; stored trimmed
		field.String("connector").NotEmpty(),
		field.Float("sum_value").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.String("branch_code").Optional().Nillable(),
		field.String("branch_name").Optional().Nillable(),
		field.String("outlet_code").Optional().Nillable(),
		field.String("outlet_name").Optional().Nillable(),
		field.Time("doc_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// original position in the uploaded sheet, for drill-down
		field.Int("row_index"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (StagingRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("filename", "document_type", "document_category"),
		index.Fields("filename", "document_type", "document_category", "connector"),
	}
}
