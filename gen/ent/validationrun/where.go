// Code generated by ent, DO NOT EDIT.

package validationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldFilename, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentCategory applies equality check predicate on the "document_category" field. It's identical to DocumentCategoryEQ.
func DocumentCategory(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldDocumentCategory, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldStatus, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldScore, v))
}

// TotalRecords applies equality check predicate on the "total_records" field. It's identical to TotalRecordsEQ.
func TotalRecords(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldTotalRecords, v))
}

// MatchedRecords applies equality check predicate on the "matched_records" field. It's identical to MatchedRecordsEQ.
func MatchedRecords(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldMatchedRecords, v))
}

// MismatchedRecords applies equality check predicate on the "mismatched_records" field. It's identical to MismatchedRecordsEQ.
func MismatchedRecords(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldMismatchedRecords, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldFilename, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldDocumentType, v))
}

// DocumentCategoryEQ applies the EQ predicate on the "document_category" field.
func DocumentCategoryEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldDocumentCategory, v))
}

// DocumentCategoryNEQ applies the NEQ predicate on the "document_category" field.
func DocumentCategoryNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldDocumentCategory, v))
}

// DocumentCategoryIn applies the In predicate on the "document_category" field.
func DocumentCategoryIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldDocumentCategory, vs...))
}

// DocumentCategoryNotIn applies the NotIn predicate on the "document_category" field.
func DocumentCategoryNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldDocumentCategory, vs...))
}

// DocumentCategoryGT applies the GT predicate on the "document_category" field.
func DocumentCategoryGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldDocumentCategory, v))
}

// DocumentCategoryGTE applies the GTE predicate on the "document_category" field.
func DocumentCategoryGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldDocumentCategory, v))
}

// DocumentCategoryLT applies the LT predicate on the "document_category" field.
func DocumentCategoryLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldDocumentCategory, v))
}

// DocumentCategoryLTE applies the LTE predicate on the "document_category" field.
func DocumentCategoryLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldDocumentCategory, v))
}

// DocumentCategoryContains applies the Contains predicate on the "document_category" field.
func DocumentCategoryContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldDocumentCategory, v))
}

// DocumentCategoryHasPrefix applies the HasPrefix predicate on the "document_category" field.
func DocumentCategoryHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldDocumentCategory, v))
}

// DocumentCategoryHasSuffix applies the HasSuffix predicate on the "document_category" field.
func DocumentCategoryHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldDocumentCategory, v))
}

// DocumentCategoryEqualFold applies the EqualFold predicate on the "document_category" field.
func DocumentCategoryEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldDocumentCategory, v))
}

// DocumentCategoryContainsFold applies the ContainsFold predicate on the "document_category" field.
func DocumentCategoryContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldDocumentCategory, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldStatus, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldScore, v))
}

// TotalRecordsEQ applies the EQ predicate on the "total_records" field.
func TotalRecordsEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldTotalRecords, v))
}

// TotalRecordsNEQ applies the NEQ predicate on the "total_records" field.
func TotalRecordsNEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldTotalRecords, v))
}

// TotalRecordsIn applies the In predicate on the "total_records" field.
func TotalRecordsIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldTotalRecords, vs...))
}

// TotalRecordsNotIn applies the NotIn predicate on the "total_records" field.
func TotalRecordsNotIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldTotalRecords, vs...))
}

// TotalRecordsGT applies the GT predicate on the "total_records" field.
func TotalRecordsGT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldTotalRecords, v))
}

// TotalRecordsGTE applies the GTE predicate on the "total_records" field.
func TotalRecordsGTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldTotalRecords, v))
}

// TotalRecordsLT applies the LT predicate on the "total_records" field.
func TotalRecordsLT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldTotalRecords, v))
}

// TotalRecordsLTE applies the LTE predicate on the "total_records" field.
func TotalRecordsLTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldTotalRecords, v))
}

// MatchedRecordsEQ applies the EQ predicate on the "matched_records" field.
func MatchedRecordsEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldMatchedRecords, v))
}

// MatchedRecordsNEQ applies the NEQ predicate on the "matched_records" field.
func MatchedRecordsNEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldMatchedRecords, v))
}

// MatchedRecordsIn applies the In predicate on the "matched_records" field.
func MatchedRecordsIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldMatchedRecords, vs...))
}

// MatchedRecordsNotIn applies the NotIn predicate on the "matched_records" field.
func MatchedRecordsNotIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldMatchedRecords, vs...))
}

// MatchedRecordsGT applies the GT predicate on the "matched_records" field.
func MatchedRecordsGT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldMatchedRecords, v))
}

// MatchedRecordsGTE applies the GTE predicate on the "matched_records" field.
func MatchedRecordsGTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldMatchedRecords, v))
}

// MatchedRecordsLT applies the LT predicate on the "matched_records" field.
func MatchedRecordsLT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldMatchedRecords, v))
}

// MatchedRecordsLTE applies the LTE predicate on the "matched_records" field.
func MatchedRecordsLTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldMatchedRecords, v))
}

// MismatchedRecordsEQ applies the EQ predicate on the "mismatched_records" field.
func MismatchedRecordsEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldMismatchedRecords, v))
}

// MismatchedRecordsNEQ applies the NEQ predicate on the "mismatched_records" field.
func MismatchedRecordsNEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldMismatchedRecords, v))
}

// MismatchedRecordsIn applies the In predicate on the "mismatched_records" field.
func MismatchedRecordsIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldMismatchedRecords, vs...))
}

// MismatchedRecordsNotIn applies the NotIn predicate on the "mismatched_records" field.
func MismatchedRecordsNotIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldMismatchedRecords, vs...))
}

// MismatchedRecordsGT applies the GT predicate on the "mismatched_records" field.
func MismatchedRecordsGT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldMismatchedRecords, v))
}

// MismatchedRecordsGTE applies the GTE predicate on the "mismatched_records" field.
func MismatchedRecordsGTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldMismatchedRecords, v))
}

// MismatchedRecordsLT applies the LT predicate on the "mismatched_records" field.
func MismatchedRecordsLT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldMismatchedRecords, v))
}

// MismatchedRecordsLTE applies the LTE predicate on the "mismatched_records" field.
func MismatchedRecordsLTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldMismatchedRecords, v))
}

// ProcessingDetailsIsNil applies the IsNil predicate on the "processing_details" field.
func ProcessingDetailsIsNil() predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIsNull(FieldProcessingDetails))
}

// ProcessingDetailsNotNil applies the NotNil predicate on the "processing_details" field.
func ProcessingDetailsNotNil() predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotNull(FieldProcessingDetails))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInvalidGroups applies the HasEdge predicate on the "invalid_groups" edge.
func HasInvalidGroups() predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvalidGroupsTable, InvalidGroupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvalidGroupsWith applies the HasEdge predicate on the "invalid_groups" edge with a given conditions (other predicates).
func HasInvalidGroupsWith(preds ...predicate.InvalidGroup) predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := newInvalidGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatchedGroups applies the HasEdge predicate on the "matched_groups" edge.
func HasMatchedGroups() predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchedGroupsTable, MatchedGroupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchedGroupsWith applies the HasEdge predicate on the "matched_groups" edge with a given conditions (other predicates).
func HasMatchedGroupsWith(preds ...predicate.MatchedGroup) predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := newMatchedGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvalidRows applies the HasEdge predicate on the "invalid_rows" edge.
func HasInvalidRows() predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvalidRowsTable, InvalidRowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvalidRowsWith applies the HasEdge predicate on the "invalid_rows" edge with a given conditions (other predicates).
func HasInvalidRowsWith(preds ...predicate.InvalidRow) predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := newInvalidRowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatchedRows applies the HasEdge predicate on the "matched_rows" edge.
func HasMatchedRows() predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchedRowsTable, MatchedRowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchedRowsWith applies the HasEdge predicate on the "matched_rows" edge with a given conditions (other predicates).
func HasMatchedRowsWith(preds ...predicate.MatchedRow) predicate.ValidationRun {
	return predicate.ValidationRun(func(s *sql.Selector) {
		step := newMatchedRowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationRun) predicate.ValidationRun {
	return predicate.ValidationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationRun) predicate.ValidationRun {
	return predicate.ValidationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationRun) predicate.ValidationRun {
	return predicate.ValidationRun(sql.NotPredicates(p))
}
