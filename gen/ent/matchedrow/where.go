// Code generated by ent, DO NOT EDIT.

package matchedrow

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldRunID, v))
}

// Connector applies equality check predicate on the "connector" field. It's identical to ConnectorEQ.
func Connector(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldConnector, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldRowIndex, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldNote, v))
}

// UploadedValue applies equality check predicate on the "uploaded_value" field. It's identical to UploadedValueEQ.
func UploadedValue(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldUploadedValue, v))
}

// SourceTotal applies equality check predicate on the "source_total" field. It's identical to SourceTotalEQ.
func SourceTotal(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldSourceTotal, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNotIn(FieldRunID, vs...))
}

// ConnectorEQ applies the EQ predicate on the "connector" field.
func ConnectorEQ(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldConnector, v))
}

// ConnectorNEQ applies the NEQ predicate on the "connector" field.
func ConnectorNEQ(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNEQ(FieldConnector, v))
}

// ConnectorIn applies the In predicate on the "connector" field.
func ConnectorIn(vs ...string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldIn(FieldConnector, vs...))
}

// ConnectorNotIn applies the NotIn predicate on the "connector" field.
func ConnectorNotIn(vs ...string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNotIn(FieldConnector, vs...))
}

// ConnectorGT applies the GT predicate on the "connector" field.
func ConnectorGT(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGT(FieldConnector, v))
}

// ConnectorGTE applies the GTE predicate on the "connector" field.
func ConnectorGTE(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGTE(FieldConnector, v))
}

// ConnectorLT applies the LT predicate on the "connector" field.
func ConnectorLT(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLT(FieldConnector, v))
}

// ConnectorLTE applies the LTE predicate on the "connector" field.
func ConnectorLTE(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLTE(FieldConnector, v))
}

// ConnectorContains applies the Contains predicate on the "connector" field.
func ConnectorContains(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldContains(FieldConnector, v))
}

// ConnectorHasPrefix applies the HasPrefix predicate on the "connector" field.
func ConnectorHasPrefix(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldHasPrefix(FieldConnector, v))
}

// ConnectorHasSuffix applies the HasSuffix predicate on the "connector" field.
func ConnectorHasSuffix(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldHasSuffix(FieldConnector, v))
}

// ConnectorEqualFold applies the EqualFold predicate on the "connector" field.
func ConnectorEqualFold(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEqualFold(FieldConnector, v))
}

// ConnectorContainsFold applies the ContainsFold predicate on the "connector" field.
func ConnectorContainsFold(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldContainsFold(FieldConnector, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLTE(FieldRowIndex, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldContainsFold(FieldNote, v))
}

// UploadedValueEQ applies the EQ predicate on the "uploaded_value" field.
func UploadedValueEQ(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldUploadedValue, v))
}

// UploadedValueNEQ applies the NEQ predicate on the "uploaded_value" field.
func UploadedValueNEQ(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNEQ(FieldUploadedValue, v))
}

// UploadedValueIn applies the In predicate on the "uploaded_value" field.
func UploadedValueIn(vs ...float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldIn(FieldUploadedValue, vs...))
}

// UploadedValueNotIn applies the NotIn predicate on the "uploaded_value" field.
func UploadedValueNotIn(vs ...float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNotIn(FieldUploadedValue, vs...))
}

// UploadedValueGT applies the GT predicate on the "uploaded_value" field.
func UploadedValueGT(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGT(FieldUploadedValue, v))
}

// UploadedValueGTE applies the GTE predicate on the "uploaded_value" field.
func UploadedValueGTE(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGTE(FieldUploadedValue, v))
}

// UploadedValueLT applies the LT predicate on the "uploaded_value" field.
func UploadedValueLT(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLT(FieldUploadedValue, v))
}

// UploadedValueLTE applies the LTE predicate on the "uploaded_value" field.
func UploadedValueLTE(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLTE(FieldUploadedValue, v))
}

// SourceTotalEQ applies the EQ predicate on the "source_total" field.
func SourceTotalEQ(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldEQ(FieldSourceTotal, v))
}

// SourceTotalNEQ applies the NEQ predicate on the "source_total" field.
func SourceTotalNEQ(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNEQ(FieldSourceTotal, v))
}

// SourceTotalIn applies the In predicate on the "source_total" field.
func SourceTotalIn(vs ...float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldIn(FieldSourceTotal, vs...))
}

// SourceTotalNotIn applies the NotIn predicate on the "source_total" field.
func SourceTotalNotIn(vs ...float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldNotIn(FieldSourceTotal, vs...))
}

// SourceTotalGT applies the GT predicate on the "source_total" field.
func SourceTotalGT(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGT(FieldSourceTotal, v))
}

// SourceTotalGTE applies the GTE predicate on the "source_total" field.
func SourceTotalGTE(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldGTE(FieldSourceTotal, v))
}

// SourceTotalLT applies the LT predicate on the "source_total" field.
func SourceTotalLT(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLT(FieldSourceTotal, v))
}

// SourceTotalLTE applies the LTE predicate on the "source_total" field.
func SourceTotalLTE(v float64) predicate.MatchedRow {
	return predicate.MatchedRow(sql.FieldLTE(FieldSourceTotal, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.MatchedRow {
	return predicate.MatchedRow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.ValidationRun) predicate.MatchedRow {
	return predicate.MatchedRow(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchedRow) predicate.MatchedRow {
	return predicate.MatchedRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchedRow) predicate.MatchedRow {
	return predicate.MatchedRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchedRow) predicate.MatchedRow {
	return predicate.MatchedRow(sql.NotPredicates(p))
}
