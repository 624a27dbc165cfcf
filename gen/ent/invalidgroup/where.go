// Code generated by ent, DO NOT EDIT.

package invalidgroup

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldRunID, v))
}

// Connector applies equality check predicate on the "connector" field. It's identical to ConnectorEQ.
func Connector(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldConnector, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldCategory, v))
}

// ErrorText applies equality check predicate on the "error_text" field. It's identical to ErrorTextEQ.
func ErrorText(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldErrorText, v))
}

// UploadedTotal applies equality check predicate on the "uploaded_total" field. It's identical to UploadedTotalEQ.
func UploadedTotal(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldUploadedTotal, v))
}

// SourceTotal applies equality check predicate on the "source_total" field. It's identical to SourceTotalEQ.
func SourceTotal(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldSourceTotal, v))
}

// DiscrepancyValue applies equality check predicate on the "discrepancy_value" field. It's identical to DiscrepancyValueEQ.
func DiscrepancyValue(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldDiscrepancyValue, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldRunID, vs...))
}

// ConnectorEQ applies the EQ predicate on the "connector" field.
func ConnectorEQ(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldConnector, v))
}

// ConnectorNEQ applies the NEQ predicate on the "connector" field.
func ConnectorNEQ(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldConnector, v))
}

// ConnectorIn applies the In predicate on the "connector" field.
func ConnectorIn(vs ...string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldConnector, vs...))
}

// ConnectorNotIn applies the NotIn predicate on the "connector" field.
func ConnectorNotIn(vs ...string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldConnector, vs...))
}

// ConnectorGT applies the GT predicate on the "connector" field.
func ConnectorGT(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGT(FieldConnector, v))
}

// ConnectorGTE applies the GTE predicate on the "connector" field.
func ConnectorGTE(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGTE(FieldConnector, v))
}

// ConnectorLT applies the LT predicate on the "connector" field.
func ConnectorLT(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLT(FieldConnector, v))
}

// ConnectorLTE applies the LTE predicate on the "connector" field.
func ConnectorLTE(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLTE(FieldConnector, v))
}

// ConnectorContains applies the Contains predicate on the "connector" field.
func ConnectorContains(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldContains(FieldConnector, v))
}

// ConnectorHasPrefix applies the HasPrefix predicate on the "connector" field.
func ConnectorHasPrefix(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldHasPrefix(FieldConnector, v))
}

// ConnectorHasSuffix applies the HasSuffix predicate on the "connector" field.
func ConnectorHasSuffix(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldHasSuffix(FieldConnector, v))
}

// ConnectorEqualFold applies the EqualFold predicate on the "connector" field.
func ConnectorEqualFold(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEqualFold(FieldConnector, v))
}

// ConnectorContainsFold applies the ContainsFold predicate on the "connector" field.
func ConnectorContainsFold(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldContainsFold(FieldConnector, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldContainsFold(FieldCategory, v))
}

// ErrorTextEQ applies the EQ predicate on the "error_text" field.
func ErrorTextEQ(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldErrorText, v))
}

// ErrorTextNEQ applies the NEQ predicate on the "error_text" field.
func ErrorTextNEQ(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldErrorText, v))
}

// ErrorTextIn applies the In predicate on the "error_text" field.
func ErrorTextIn(vs ...string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldErrorText, vs...))
}

// ErrorTextNotIn applies the NotIn predicate on the "error_text" field.
func ErrorTextNotIn(vs ...string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldErrorText, vs...))
}

// ErrorTextGT applies the GT predicate on the "error_text" field.
func ErrorTextGT(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGT(FieldErrorText, v))
}

// ErrorTextGTE applies the GTE predicate on the "error_text" field.
func ErrorTextGTE(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGTE(FieldErrorText, v))
}

// ErrorTextLT applies the LT predicate on the "error_text" field.
func ErrorTextLT(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLT(FieldErrorText, v))
}

// ErrorTextLTE applies the LTE predicate on the "error_text" field.
func ErrorTextLTE(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLTE(FieldErrorText, v))
}

// ErrorTextContains applies the Contains predicate on the "error_text" field.
func ErrorTextContains(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldContains(FieldErrorText, v))
}

// ErrorTextHasPrefix applies the HasPrefix predicate on the "error_text" field.
func ErrorTextHasPrefix(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldHasPrefix(FieldErrorText, v))
}

// ErrorTextHasSuffix applies the HasSuffix predicate on the "error_text" field.
func ErrorTextHasSuffix(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldHasSuffix(FieldErrorText, v))
}

// ErrorTextEqualFold applies the EqualFold predicate on the "error_text" field.
func ErrorTextEqualFold(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEqualFold(FieldErrorText, v))
}

// ErrorTextContainsFold applies the ContainsFold predicate on the "error_text" field.
func ErrorTextContainsFold(v string) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldContainsFold(FieldErrorText, v))
}

// UploadedTotalEQ applies the EQ predicate on the "uploaded_total" field.
func UploadedTotalEQ(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldUploadedTotal, v))
}

// UploadedTotalNEQ applies the NEQ predicate on the "uploaded_total" field.
func UploadedTotalNEQ(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldUploadedTotal, v))
}

// UploadedTotalIn applies the In predicate on the "uploaded_total" field.
func UploadedTotalIn(vs ...float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldUploadedTotal, vs...))
}

// UploadedTotalNotIn applies the NotIn predicate on the "uploaded_total" field.
func UploadedTotalNotIn(vs ...float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldUploadedTotal, vs...))
}

// UploadedTotalGT applies the GT predicate on the "uploaded_total" field.
func UploadedTotalGT(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGT(FieldUploadedTotal, v))
}

// UploadedTotalGTE applies the GTE predicate on the "uploaded_total" field.
func UploadedTotalGTE(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGTE(FieldUploadedTotal, v))
}

// UploadedTotalLT applies the LT predicate on the "uploaded_total" field.
func UploadedTotalLT(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLT(FieldUploadedTotal, v))
}

// UploadedTotalLTE applies the LTE predicate on the "uploaded_total" field.
func UploadedTotalLTE(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLTE(FieldUploadedTotal, v))
}

// SourceTotalEQ applies the EQ predicate on the "source_total" field.
func SourceTotalEQ(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldSourceTotal, v))
}

// SourceTotalNEQ applies the NEQ predicate on the "source_total" field.
func SourceTotalNEQ(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldSourceTotal, v))
}

// SourceTotalIn applies the In predicate on the "source_total" field.
func SourceTotalIn(vs ...float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldSourceTotal, vs...))
}

// SourceTotalNotIn applies the NotIn predicate on the "source_total" field.
func SourceTotalNotIn(vs ...float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldSourceTotal, vs...))
}

// SourceTotalGT applies the GT predicate on the "source_total" field.
func SourceTotalGT(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGT(FieldSourceTotal, v))
}

// SourceTotalGTE applies the GTE predicate on the "source_total" field.
func SourceTotalGTE(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGTE(FieldSourceTotal, v))
}

// SourceTotalLT applies the LT predicate on the "source_total" field.
func SourceTotalLT(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLT(FieldSourceTotal, v))
}

// SourceTotalLTE applies the LTE predicate on the "source_total" field.
func SourceTotalLTE(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLTE(FieldSourceTotal, v))
}

// DiscrepancyValueEQ applies the EQ predicate on the "discrepancy_value" field.
func DiscrepancyValueEQ(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldEQ(FieldDiscrepancyValue, v))
}

// DiscrepancyValueNEQ applies the NEQ predicate on the "discrepancy_value" field.
func DiscrepancyValueNEQ(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNEQ(FieldDiscrepancyValue, v))
}

// DiscrepancyValueIn applies the In predicate on the "discrepancy_value" field.
func DiscrepancyValueIn(vs ...float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldIn(FieldDiscrepancyValue, vs...))
}

// DiscrepancyValueNotIn applies the NotIn predicate on the "discrepancy_value" field.
func DiscrepancyValueNotIn(vs ...float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldNotIn(FieldDiscrepancyValue, vs...))
}

// DiscrepancyValueGT applies the GT predicate on the "discrepancy_value" field.
func DiscrepancyValueGT(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGT(FieldDiscrepancyValue, v))
}

// DiscrepancyValueGTE applies the GTE predicate on the "discrepancy_value" field.
func DiscrepancyValueGTE(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldGTE(FieldDiscrepancyValue, v))
}

// DiscrepancyValueLT applies the LT predicate on the "discrepancy_value" field.
func DiscrepancyValueLT(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLT(FieldDiscrepancyValue, v))
}

// DiscrepancyValueLTE applies the LTE predicate on the "discrepancy_value" field.
func DiscrepancyValueLTE(v float64) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.FieldLTE(FieldDiscrepancyValue, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.InvalidGroup {
	return predicate.InvalidGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.ValidationRun) predicate.InvalidGroup {
	return predicate.InvalidGroup(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvalidGroup) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvalidGroup) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvalidGroup) predicate.InvalidGroup {
	return predicate.InvalidGroup(sql.NotPredicates(p))
}
