// Code generated by ent, DO NOT EDIT.

package stagingrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldFilename, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentCategory applies equality check predicate on the "document_category" field. It's identical to DocumentCategoryEQ.
func DocumentCategory(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocumentCategory, v))
}

// HeaderRow applies equality check predicate on the "header_row" field. It's identical to HeaderRowEQ.
func HeaderRow(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldHeaderRow, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldUserID, v))
}

// Connector applies equality check predicate on the "connector" field. It's identical to ConnectorEQ.
func Connector(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldConnector, v))
}

// SumValue applies equality check predicate on the "sum_value" field. It's identical to SumValueEQ.
func SumValue(v float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldSumValue, v))
}

// BranchCode applies equality check predicate on the "branch_code" field. It's identical to BranchCodeEQ.
func BranchCode(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldBranchCode, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldBranchName, v))
}

// OutletCode applies equality check predicate on the "outlet_code" field. It's identical to OutletCodeEQ.
func OutletCode(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldOutletCode, v))
}

// OutletName applies equality check predicate on the "outlet_name" field. It's identical to OutletNameEQ.
func OutletName(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldOutletName, v))
}

// DocDate applies equality check predicate on the "doc_date" field. It's identical to DocDateEQ.
func DocDate(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocDate, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldRowIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldFilename, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldDocumentType, v))
}

// DocumentCategoryEQ applies the EQ predicate on the "document_category" field.
func DocumentCategoryEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocumentCategory, v))
}

// DocumentCategoryNEQ applies the NEQ predicate on the "document_category" field.
func DocumentCategoryNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldDocumentCategory, v))
}

// DocumentCategoryIn applies the In predicate on the "document_category" field.
func DocumentCategoryIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldDocumentCategory, vs...))
}

// DocumentCategoryNotIn applies the NotIn predicate on the "document_category" field.
func DocumentCategoryNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldDocumentCategory, vs...))
}

// DocumentCategoryGT applies the GT predicate on the "document_category" field.
func DocumentCategoryGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldDocumentCategory, v))
}

// DocumentCategoryGTE applies the GTE predicate on the "document_category" field.
func DocumentCategoryGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldDocumentCategory, v))
}

// DocumentCategoryLT applies the LT predicate on the "document_category" field.
func DocumentCategoryLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldDocumentCategory, v))
}

// DocumentCategoryLTE applies the LTE predicate on the "document_category" field.
func DocumentCategoryLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldDocumentCategory, v))
}

// DocumentCategoryContains applies the Contains predicate on the "document_category" field.
func DocumentCategoryContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldDocumentCategory, v))
}

// DocumentCategoryHasPrefix applies the HasPrefix predicate on the "document_category" field.
func DocumentCategoryHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldDocumentCategory, v))
}

// DocumentCategoryHasSuffix applies the HasSuffix predicate on the "document_category" field.
func DocumentCategoryHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldDocumentCategory, v))
}

// DocumentCategoryEqualFold applies the EqualFold predicate on the "document_category" field.
func DocumentCategoryEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldDocumentCategory, v))
}

// DocumentCategoryContainsFold applies the ContainsFold predicate on the "document_category" field.
func DocumentCategoryContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldDocumentCategory, v))
}

// HeaderRowEQ applies the EQ predicate on the "header_row" field.
func HeaderRowEQ(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldHeaderRow, v))
}

// HeaderRowNEQ applies the NEQ predicate on the "header_row" field.
func HeaderRowNEQ(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldHeaderRow, v))
}

// HeaderRowIn applies the In predicate on the "header_row" field.
func HeaderRowIn(vs ...int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldHeaderRow, vs...))
}

// HeaderRowNotIn applies the NotIn predicate on the "header_row" field.
func HeaderRowNotIn(vs ...int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldHeaderRow, vs...))
}

// HeaderRowGT applies the GT predicate on the "header_row" field.
func HeaderRowGT(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldHeaderRow, v))
}

// HeaderRowGTE applies the GTE predicate on the "header_row" field.
func HeaderRowGTE(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldHeaderRow, v))
}

// HeaderRowLT applies the LT predicate on the "header_row" field.
func HeaderRowLT(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldHeaderRow, v))
}

// HeaderRowLTE applies the LTE predicate on the "header_row" field.
func HeaderRowLTE(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldHeaderRow, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldUserID, v))
}

// ConnectorEQ applies the EQ predicate on the "connector" field.
func ConnectorEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldConnector, v))
}

// ConnectorNEQ applies the NEQ predicate on the "connector" field.
func ConnectorNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldConnector, v))
}

// ConnectorIn applies the In predicate on the "connector" field.
func ConnectorIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldConnector, vs...))
}

// ConnectorNotIn applies the NotIn predicate on the "connector" field.
func ConnectorNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldConnector, vs...))
}

// ConnectorGT applies the GT predicate on the "connector" field.
func ConnectorGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldConnector, v))
}

// ConnectorGTE applies the GTE predicate on the "connector" field.
func ConnectorGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldConnector, v))
}

// ConnectorLT applies the LT predicate on the "connector" field.
func ConnectorLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldConnector, v))
}

// ConnectorLTE applies the LTE predicate on the "connector" field.
func ConnectorLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldConnector, v))
}

// ConnectorContains applies the Contains predicate on the "connector" field.
func ConnectorContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldConnector, v))
}

// ConnectorHasPrefix applies the HasPrefix predicate on the "connector" field.
func ConnectorHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldConnector, v))
}

// ConnectorHasSuffix applies the HasSuffix predicate on the "connector" field.
func ConnectorHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldConnector, v))
}

// ConnectorEqualFold applies the EqualFold predicate on the "connector" field.
func ConnectorEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldConnector, v))
}

// ConnectorContainsFold applies the ContainsFold predicate on the "connector" field.
func ConnectorContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldConnector, v))
}

// SumValueEQ applies the EQ predicate on the "sum_value" field.
func SumValueEQ(v float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldSumValue, v))
}

// SumValueNEQ applies the NEQ predicate on the "sum_value" field.
func SumValueNEQ(v float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldSumValue, v))
}

// SumValueIn applies the In predicate on the "sum_value" field.
func SumValueIn(vs ...float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldSumValue, vs...))
}

// SumValueNotIn applies the NotIn predicate on the "sum_value" field.
func SumValueNotIn(vs ...float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldSumValue, vs...))
}

// SumValueGT applies the GT predicate on the "sum_value" field.
func SumValueGT(v float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldSumValue, v))
}

// SumValueGTE applies the GTE predicate on the "sum_value" field.
func SumValueGTE(v float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldSumValue, v))
}

// SumValueLT applies the LT predicate on the "sum_value" field.
func SumValueLT(v float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldSumValue, v))
}

// SumValueLTE applies the LTE predicate on the "sum_value" field.
func SumValueLTE(v float64) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldSumValue, v))
}

// BranchCodeEQ applies the EQ predicate on the "branch_code" field.
func BranchCodeEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldBranchCode, v))
}

// BranchCodeNEQ applies the NEQ predicate on the "branch_code" field.
func BranchCodeNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldBranchCode, v))
}

// BranchCodeIn applies the In predicate on the "branch_code" field.
func BranchCodeIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldBranchCode, vs...))
}

// BranchCodeNotIn applies the NotIn predicate on the "branch_code" field.
func BranchCodeNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldBranchCode, vs...))
}

// BranchCodeGT applies the GT predicate on the "branch_code" field.
func BranchCodeGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldBranchCode, v))
}

// BranchCodeGTE applies the GTE predicate on the "branch_code" field.
func BranchCodeGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldBranchCode, v))
}

// BranchCodeLT applies the LT predicate on the "branch_code" field.
func BranchCodeLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldBranchCode, v))
}

// BranchCodeLTE applies the LTE predicate on the "branch_code" field.
func BranchCodeLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldBranchCode, v))
}

// BranchCodeContains applies the Contains predicate on the "branch_code" field.
func BranchCodeContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldBranchCode, v))
}

// BranchCodeHasPrefix applies the HasPrefix predicate on the "branch_code" field.
func BranchCodeHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldBranchCode, v))
}

// BranchCodeHasSuffix applies the HasSuffix predicate on the "branch_code" field.
func BranchCodeHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldBranchCode, v))
}

// BranchCodeIsNil applies the IsNil predicate on the "branch_code" field.
func BranchCodeIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldBranchCode))
}

// BranchCodeNotNil applies the NotNil predicate on the "branch_code" field.
func BranchCodeNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldBranchCode))
}

// BranchCodeEqualFold applies the EqualFold predicate on the "branch_code" field.
func BranchCodeEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldBranchCode, v))
}

// BranchCodeContainsFold applies the ContainsFold predicate on the "branch_code" field.
func BranchCodeContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldBranchCode, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldBranchName, v))
}

// OutletCodeEQ applies the EQ predicate on the "outlet_code" field.
func OutletCodeEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldOutletCode, v))
}

// OutletCodeNEQ applies the NEQ predicate on the "outlet_code" field.
func OutletCodeNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldOutletCode, v))
}

// OutletCodeIn applies the In predicate on the "outlet_code" field.
func OutletCodeIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldOutletCode, vs...))
}

// OutletCodeNotIn applies the NotIn predicate on the "outlet_code" field.
func OutletCodeNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldOutletCode, vs...))
}

// OutletCodeGT applies the GT predicate on the "outlet_code" field.
func OutletCodeGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldOutletCode, v))
}

// OutletCodeGTE applies the GTE predicate on the "outlet_code" field.
func OutletCodeGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldOutletCode, v))
}

// OutletCodeLT applies the LT predicate on the "outlet_code" field.
func OutletCodeLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldOutletCode, v))
}

// OutletCodeLTE applies the LTE predicate on the "outlet_code" field.
func OutletCodeLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldOutletCode, v))
}

// OutletCodeContains applies the Contains predicate on the "outlet_code" field.
func OutletCodeContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldOutletCode, v))
}

// OutletCodeHasPrefix applies the HasPrefix predicate on the "outlet_code" field.
func OutletCodeHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldOutletCode, v))
}

// OutletCodeHasSuffix applies the HasSuffix predicate on the "outlet_code" field.
func OutletCodeHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldOutletCode, v))
}

// OutletCodeIsNil applies the IsNil predicate on the "outlet_code" field.
func OutletCodeIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldOutletCode))
}

// OutletCodeNotNil applies the NotNil predicate on the "outlet_code" field.
func OutletCodeNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldOutletCode))
}

// OutletCodeEqualFold applies the EqualFold predicate on the "outlet_code" field.
func OutletCodeEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldOutletCode, v))
}

// OutletCodeContainsFold applies the ContainsFold predicate on the "outlet_code" field.
func OutletCodeContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldOutletCode, v))
}

// OutletNameEQ applies the EQ predicate on the "outlet_name" field.
func OutletNameEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldOutletName, v))
}

// OutletNameNEQ applies the NEQ predicate on the "outlet_name" field.
func OutletNameNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldOutletName, v))
}

// OutletNameIn applies the In predicate on the "outlet_name" field.
func OutletNameIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldOutletName, vs...))
}

// OutletNameNotIn applies the NotIn predicate on the "outlet_name" field.
func OutletNameNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldOutletName, vs...))
}

// OutletNameGT applies the GT predicate on the "outlet_name" field.
func OutletNameGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldOutletName, v))
}

// OutletNameGTE applies the GTE predicate on the "outlet_name" field.
func OutletNameGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldOutletName, v))
}

// OutletNameLT applies the LT predicate on the "outlet_name" field.
func OutletNameLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldOutletName, v))
}

// OutletNameLTE applies the LTE predicate on the "outlet_name" field.
func OutletNameLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldOutletName, v))
}

// OutletNameContains applies the Contains predicate on the "outlet_name" field.
func OutletNameContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldOutletName, v))
}

// OutletNameHasPrefix applies the HasPrefix predicate on the "outlet_name" field.
func OutletNameHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldOutletName, v))
}

// OutletNameHasSuffix applies the HasSuffix predicate on the "outlet_name" field.
func OutletNameHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldOutletName, v))
}

// OutletNameIsNil applies the IsNil predicate on the "outlet_name" field.
func OutletNameIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldOutletName))
}

// OutletNameNotNil applies the NotNil predicate on the "outlet_name" field.
func OutletNameNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldOutletName))
}

// OutletNameEqualFold applies the EqualFold predicate on the "outlet_name" field.
func OutletNameEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldOutletName, v))
}

// OutletNameContainsFold applies the ContainsFold predicate on the "outlet_name" field.
func OutletNameContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldOutletName, v))
}

// DocDateEQ applies the EQ predicate on the "doc_date" field.
func DocDateEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocDate, v))
}

// DocDateNEQ applies the NEQ predicate on the "doc_date" field.
func DocDateNEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldDocDate, v))
}

// DocDateIn applies the In predicate on the "doc_date" field.
func DocDateIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldDocDate, vs...))
}

// DocDateNotIn applies the NotIn predicate on the "doc_date" field.
func DocDateNotIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldDocDate, vs...))
}

// DocDateGT applies the GT predicate on the "doc_date" field.
func DocDateGT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldDocDate, v))
}

// DocDateGTE applies the GTE predicate on the "doc_date" field.
func DocDateGTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldDocDate, v))
}

// DocDateLT applies the LT predicate on the "doc_date" field.
func DocDateLT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldDocDate, v))
}

// DocDateLTE applies the LTE predicate on the "doc_date" field.
func DocDateLTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldDocDate, v))
}

// DocDateIsNil applies the IsNil predicate on the "doc_date" field.
func DocDateIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldDocDate))
}

// DocDateNotNil applies the NotNil predicate on the "doc_date" field.
func DocDateNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldDocDate))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldRowIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StagingRecord) predicate.StagingRecord {
	return predicate.StagingRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StagingRecord) predicate.StagingRecord {
	return predicate.StagingRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StagingRecord) predicate.StagingRecord {
	return predicate.StagingRecord(sql.NotPredicates(p))
}
