// Code generated by ent, DO NOT EDIT.

package matchedgroup

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldRunID, v))
}

// Connector applies equality check predicate on the "connector" field. It's identical to ConnectorEQ.
func Connector(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldConnector, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldNote, v))
}

// UploadedTotal applies equality check predicate on the "uploaded_total" field. It's identical to UploadedTotalEQ.
func UploadedTotal(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldUploadedTotal, v))
}

// SourceTotal applies equality check predicate on the "source_total" field. It's identical to SourceTotalEQ.
func SourceTotal(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldSourceTotal, v))
}

// Difference applies equality check predicate on the "difference" field. It's identical to DifferenceEQ.
func Difference(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldDifference, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNotIn(FieldRunID, vs...))
}

// ConnectorEQ applies the EQ predicate on the "connector" field.
func ConnectorEQ(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldConnector, v))
}

// ConnectorNEQ applies the NEQ predicate on the "connector" field.
func ConnectorNEQ(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNEQ(FieldConnector, v))
}

// ConnectorIn applies the In predicate on the "connector" field.
func ConnectorIn(vs ...string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldIn(FieldConnector, vs...))
}

// ConnectorNotIn applies the NotIn predicate on the "connector" field.
func ConnectorNotIn(vs ...string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNotIn(FieldConnector, vs...))
}

// ConnectorGT applies the GT predicate on the "connector" field.
func ConnectorGT(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGT(FieldConnector, v))
}

// ConnectorGTE applies the GTE predicate on the "connector" field.
func ConnectorGTE(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGTE(FieldConnector, v))
}

// ConnectorLT applies the LT predicate on the "connector" field.
func ConnectorLT(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLT(FieldConnector, v))
}

// ConnectorLTE applies the LTE predicate on the "connector" field.
func ConnectorLTE(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLTE(FieldConnector, v))
}

// ConnectorContains applies the Contains predicate on the "connector" field.
func ConnectorContains(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldContains(FieldConnector, v))
}

// ConnectorHasPrefix applies the HasPrefix predicate on the "connector" field.
func ConnectorHasPrefix(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldHasPrefix(FieldConnector, v))
}

// ConnectorHasSuffix applies the HasSuffix predicate on the "connector" field.
func ConnectorHasSuffix(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldHasSuffix(FieldConnector, v))
}

// ConnectorEqualFold applies the EqualFold predicate on the "connector" field.
func ConnectorEqualFold(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEqualFold(FieldConnector, v))
}

// ConnectorContainsFold applies the ContainsFold predicate on the "connector" field.
func ConnectorContainsFold(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldContainsFold(FieldConnector, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldContainsFold(FieldNote, v))
}

// UploadedTotalEQ applies the EQ predicate on the "uploaded_total" field.
func UploadedTotalEQ(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldUploadedTotal, v))
}

// UploadedTotalNEQ applies the NEQ predicate on the "uploaded_total" field.
func UploadedTotalNEQ(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNEQ(FieldUploadedTotal, v))
}

// UploadedTotalIn applies the In predicate on the "uploaded_total" field.
func UploadedTotalIn(vs ...float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldIn(FieldUploadedTotal, vs...))
}

// UploadedTotalNotIn applies the NotIn predicate on the "uploaded_total" field.
func UploadedTotalNotIn(vs ...float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNotIn(FieldUploadedTotal, vs...))
}

// UploadedTotalGT applies the GT predicate on the "uploaded_total" field.
func UploadedTotalGT(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGT(FieldUploadedTotal, v))
}

// UploadedTotalGTE applies the GTE predicate on the "uploaded_total" field.
func UploadedTotalGTE(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGTE(FieldUploadedTotal, v))
}

// UploadedTotalLT applies the LT predicate on the "uploaded_total" field.
func UploadedTotalLT(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLT(FieldUploadedTotal, v))
}

// UploadedTotalLTE applies the LTE predicate on the "uploaded_total" field.
func UploadedTotalLTE(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLTE(FieldUploadedTotal, v))
}

// SourceTotalEQ applies the EQ predicate on the "source_total" field.
func SourceTotalEQ(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldSourceTotal, v))
}

// SourceTotalNEQ applies the NEQ predicate on the "source_total" field.
func SourceTotalNEQ(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNEQ(FieldSourceTotal, v))
}

// SourceTotalIn applies the In predicate on the "source_total" field.
func SourceTotalIn(vs ...float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldIn(FieldSourceTotal, vs...))
}

// SourceTotalNotIn applies the NotIn predicate on the "source_total" field.
func SourceTotalNotIn(vs ...float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNotIn(FieldSourceTotal, vs...))
}

// SourceTotalGT applies the GT predicate on the "source_total" field.
func SourceTotalGT(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGT(FieldSourceTotal, v))
}

// SourceTotalGTE applies the GTE predicate on the "source_total" field.
func SourceTotalGTE(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGTE(FieldSourceTotal, v))
}

// SourceTotalLT applies the LT predicate on the "source_total" field.
func SourceTotalLT(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLT(FieldSourceTotal, v))
}

// SourceTotalLTE applies the LTE predicate on the "source_total" field.
func SourceTotalLTE(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLTE(FieldSourceTotal, v))
}

// DifferenceEQ applies the EQ predicate on the "difference" field.
func DifferenceEQ(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldEQ(FieldDifference, v))
}

// DifferenceNEQ applies the NEQ predicate on the "difference" field.
func DifferenceNEQ(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNEQ(FieldDifference, v))
}

// DifferenceIn applies the In predicate on the "difference" field.
func DifferenceIn(vs ...float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldIn(FieldDifference, vs...))
}

// DifferenceNotIn applies the NotIn predicate on the "difference" field.
func DifferenceNotIn(vs ...float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldNotIn(FieldDifference, vs...))
}

// DifferenceGT applies the GT predicate on the "difference" field.
func DifferenceGT(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGT(FieldDifference, v))
}

// DifferenceGTE applies the GTE predicate on the "difference" field.
func DifferenceGTE(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldGTE(FieldDifference, v))
}

// DifferenceLT applies the LT predicate on the "difference" field.
func DifferenceLT(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLT(FieldDifference, v))
}

// DifferenceLTE applies the LTE predicate on the "difference" field.
func DifferenceLTE(v float64) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.FieldLTE(FieldDifference, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.MatchedGroup {
	return predicate.MatchedGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.ValidationRun) predicate.MatchedGroup {
	return predicate.MatchedGroup(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchedGroup) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchedGroup) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchedGroup) predicate.MatchedGroup {
	return predicate.MatchedGroup(sql.NotPredicates(p))
}
