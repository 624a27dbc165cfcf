// Code generated by ent, DO NOT EDIT.

package invalidrow

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldRunID, v))
}

// Connector applies equality check predicate on the "connector" field. It's identical to ConnectorEQ.
func Connector(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldConnector, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldRowIndex, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldCategory, v))
}

// ErrorText applies equality check predicate on the "error_text" field. It's identical to ErrorTextEQ.
func ErrorText(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldErrorText, v))
}

// UploadedValue applies equality check predicate on the "uploaded_value" field. It's identical to UploadedValueEQ.
func UploadedValue(v float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldUploadedValue, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNotIn(FieldRunID, vs...))
}

// ConnectorEQ applies the EQ predicate on the "connector" field.
func ConnectorEQ(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldConnector, v))
}

// ConnectorNEQ applies the NEQ predicate on the "connector" field.
func ConnectorNEQ(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNEQ(FieldConnector, v))
}

// ConnectorIn applies the In predicate on the "connector" field.
func ConnectorIn(vs ...string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldIn(FieldConnector, vs...))
}

// ConnectorNotIn applies the NotIn predicate on the "connector" field.
func ConnectorNotIn(vs ...string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNotIn(FieldConnector, vs...))
}

// ConnectorGT applies the GT predicate on the "connector" field.
func ConnectorGT(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGT(FieldConnector, v))
}

// ConnectorGTE applies the GTE predicate on the "connector" field.
func ConnectorGTE(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGTE(FieldConnector, v))
}

// ConnectorLT applies the LT predicate on the "connector" field.
func ConnectorLT(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLT(FieldConnector, v))
}

// ConnectorLTE applies the LTE predicate on the "connector" field.
func ConnectorLTE(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLTE(FieldConnector, v))
}

// ConnectorContains applies the Contains predicate on the "connector" field.
func ConnectorContains(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldContains(FieldConnector, v))
}

// ConnectorHasPrefix applies the HasPrefix predicate on the "connector" field.
func ConnectorHasPrefix(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldHasPrefix(FieldConnector, v))
}

// ConnectorHasSuffix applies the HasSuffix predicate on the "connector" field.
func ConnectorHasSuffix(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldHasSuffix(FieldConnector, v))
}

// ConnectorEqualFold applies the EqualFold predicate on the "connector" field.
func ConnectorEqualFold(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEqualFold(FieldConnector, v))
}

// ConnectorContainsFold applies the ContainsFold predicate on the "connector" field.
func ConnectorContainsFold(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldContainsFold(FieldConnector, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLTE(FieldRowIndex, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldContainsFold(FieldCategory, v))
}

// ErrorTextEQ applies the EQ predicate on the "error_text" field.
func ErrorTextEQ(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldErrorText, v))
}

// ErrorTextNEQ applies the NEQ predicate on the "error_text" field.
func ErrorTextNEQ(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNEQ(FieldErrorText, v))
}

// ErrorTextIn applies the In predicate on the "error_text" field.
func ErrorTextIn(vs ...string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldIn(FieldErrorText, vs...))
}

// ErrorTextNotIn applies the NotIn predicate on the "error_text" field.
func ErrorTextNotIn(vs ...string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNotIn(FieldErrorText, vs...))
}

// ErrorTextGT applies the GT predicate on the "error_text" field.
func ErrorTextGT(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGT(FieldErrorText, v))
}

// ErrorTextGTE applies the GTE predicate on the "error_text" field.
func ErrorTextGTE(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGTE(FieldErrorText, v))
}

// ErrorTextLT applies the LT predicate on the "error_text" field.
func ErrorTextLT(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLT(FieldErrorText, v))
}

// ErrorTextLTE applies the LTE predicate on the "error_text" field.
func ErrorTextLTE(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLTE(FieldErrorText, v))
}

// ErrorTextContains applies the Contains predicate on the "error_text" field.
func ErrorTextContains(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldContains(FieldErrorText, v))
}

// ErrorTextHasPrefix applies the HasPrefix predicate on the "error_text" field.
func ErrorTextHasPrefix(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldHasPrefix(FieldErrorText, v))
}

// ErrorTextHasSuffix applies the HasSuffix predicate on the "error_text" field.
func ErrorTextHasSuffix(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldHasSuffix(FieldErrorText, v))
}

// ErrorTextEqualFold applies the EqualFold predicate on the "error_text" field.
func ErrorTextEqualFold(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEqualFold(FieldErrorText, v))
}

// ErrorTextContainsFold applies the ContainsFold predicate on the "error_text" field.
func ErrorTextContainsFold(v string) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldContainsFold(FieldErrorText, v))
}

// UploadedValueEQ applies the EQ predicate on the "uploaded_value" field.
func UploadedValueEQ(v float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldEQ(FieldUploadedValue, v))
}

// UploadedValueNEQ applies the NEQ predicate on the "uploaded_value" field.
func UploadedValueNEQ(v float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNEQ(FieldUploadedValue, v))
}

// UploadedValueIn applies the In predicate on the "uploaded_value" field.
func UploadedValueIn(vs ...float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldIn(FieldUploadedValue, vs...))
}

// UploadedValueNotIn applies the NotIn predicate on the "uploaded_value" field.
func UploadedValueNotIn(vs ...float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldNotIn(FieldUploadedValue, vs...))
}

// UploadedValueGT applies the GT predicate on the "uploaded_value" field.
func UploadedValueGT(v float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGT(FieldUploadedValue, v))
}

// UploadedValueGTE applies the GTE predicate on the "uploaded_value" field.
func UploadedValueGTE(v float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldGTE(FieldUploadedValue, v))
}

// UploadedValueLT applies the LT predicate on the "uploaded_value" field.
func UploadedValueLT(v float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLT(FieldUploadedValue, v))
}

// UploadedValueLTE applies the LTE predicate on the "uploaded_value" field.
func UploadedValueLTE(v float64) predicate.InvalidRow {
	return predicate.InvalidRow(sql.FieldLTE(FieldUploadedValue, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.InvalidRow {
	return predicate.InvalidRow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.ValidationRun) predicate.InvalidRow {
	return predicate.InvalidRow(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvalidRow) predicate.InvalidRow {
	return predicate.InvalidRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvalidRow) predicate.InvalidRow {
	return predicate.InvalidRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvalidRow) predicate.InvalidRow {
	return predicate.InvalidRow(sql.NotPredicates(p))
}
