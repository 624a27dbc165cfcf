// Code generated by ent, DO NOT EDIT.

package stagingrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the stagingrecord type in the database.
	Label = "staging_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldDocumentCategory holds the string denoting the document_category field in the database.
	FieldDocumentCategory = "document_category"
	// FieldHeaderRow holds the string denoting the header_row field in the database.
	FieldHeaderRow = "header_row"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConnector holds the string denoting the connector field in the database.
	FieldConnector = "connector"
	// FieldSumValue holds the string denoting the sum_value field in the database.
	FieldSumValue = "sum_value"
	// FieldBranchCode holds the string denoting the branch_code field in the database.
	FieldBranchCode = "branch_code"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldOutletCode holds the string denoting the outlet_code field in the database.
	FieldOutletCode = "outlet_code"
	// FieldOutletName holds the string denoting the outlet_name field in the database.
	FieldOutletName = "outlet_name"
	// FieldDocDate holds the string denoting the doc_date field in the database.
	FieldDocDate = "doc_date"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the stagingrecord in the database.
	Table = "staging_records"
)

// Columns holds all SQL columns for stagingrecord fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldDocumentType,
	FieldDocumentCategory,
	FieldHeaderRow,
	FieldUserID,
	FieldConnector,
	FieldSumValue,
	FieldBranchCode,
	FieldBranchName,
	FieldOutletCode,
	FieldOutletName,
	FieldDocDate,
	FieldRowIndex,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// DocumentCategoryValidator is a validator for the "document_category" field. It is called by the builders before save.
	DocumentCategoryValidator func(string) error
	// DefaultHeaderRow holds the default value on creation for the "header_row" field.
	DefaultHeaderRow int
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ConnectorValidator is a validator for the "connector" field. It is called by the builders before save.
	ConnectorValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StagingRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByDocumentCategory orders the results by the document_category field.
func ByDocumentCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentCategory, opts...).ToFunc()
}

// ByHeaderRow orders the results by the header_row field.
func ByHeaderRow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeaderRow, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConnector orders the results by the connector field.
func ByConnector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnector, opts...).ToFunc()
}

// BySumValue orders the results by the sum_value field.
func BySumValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSumValue, opts...).ToFunc()
}

// ByBranchCode orders the results by the branch_code field.
func ByBranchCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchCode, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByOutletCode orders the results by the outlet_code field.
func ByOutletCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutletCode, opts...).ToFunc()
}

// ByOutletName orders the results by the outlet_name field.
func ByOutletName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutletName, opts...).ToFunc()
}

// ByDocDate orders the results by the doc_date field.
func ByDocDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocDate, opts...).ToFunc()
}

// ByRowIndex orders the results by the row_index field.
func ByRowIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
