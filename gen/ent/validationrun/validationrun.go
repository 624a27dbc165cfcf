// Code generated by ent, DO NOT EDIT.

package validationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the validationrun type in the database.
	Label = "validation_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldDocumentCategory holds the string denoting the document_category field in the database.
	FieldDocumentCategory = "document_category"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotalRecords holds the string denoting the total_records field in the database.
	FieldTotalRecords = "total_records"
	// FieldMatchedRecords holds the string denoting the matched_records field in the database.
	FieldMatchedRecords = "matched_records"
	// FieldMismatchedRecords holds the string denoting the mismatched_records field in the database.
	FieldMismatchedRecords = "mismatched_records"
	// FieldProcessingDetails holds the string denoting the processing_details field in the database.
	FieldProcessingDetails = "processing_details"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInvalidGroups holds the string denoting the invalid_groups edge name in mutations.
	EdgeInvalidGroups = "invalid_groups"
	// EdgeMatchedGroups holds the string denoting the matched_groups edge name in mutations.
	EdgeMatchedGroups = "matched_groups"
	// EdgeInvalidRows holds the string denoting the invalid_rows edge name in mutations.
	EdgeInvalidRows = "invalid_rows"
	// EdgeMatchedRows holds the string denoting the matched_rows edge name in mutations.
	EdgeMatchedRows = "matched_rows"
	// Table holds the table name of the validationrun in the database.
	Table = "validation_runs"
	// InvalidGroupsTable is the table that holds the invalid_groups relation/edge.
	InvalidGroupsTable = "invalid_groups"
	// InvalidGroupsInverseTable is the table name for the InvalidGroup entity.
	// It exists in this package in order to avoid circular dependency with the "invalidgroup" package.
	InvalidGroupsInverseTable = "invalid_groups"
	// InvalidGroupsColumn is the table column denoting the invalid_groups relation/edge.
	InvalidGroupsColumn = "run_id"
	// MatchedGroupsTable is the table that holds the matched_groups relation/edge.
	MatchedGroupsTable = "matched_groups"
	// MatchedGroupsInverseTable is the table name for the MatchedGroup entity.
	// It exists in this package in order to avoid circular dependency with the "matchedgroup" package.
	MatchedGroupsInverseTable = "matched_groups"
	// MatchedGroupsColumn is the table column denoting the matched_groups relation/edge.
	MatchedGroupsColumn = "run_id"
	// InvalidRowsTable is the table that holds the invalid_rows relation/edge.
	InvalidRowsTable = "invalid_rows"
	// InvalidRowsInverseTable is the table name for the InvalidRow entity.
	// It exists in this package in order to avoid circular dependency with the "invalidrow" package.
	InvalidRowsInverseTable = "invalid_rows"
	// InvalidRowsColumn is the table column denoting the invalid_rows relation/edge.
	InvalidRowsColumn = "run_id"
	// MatchedRowsTable is the table that holds the matched_rows relation/edge.
	MatchedRowsTable = "matched_rows"
	// MatchedRowsInverseTable is the table name for the MatchedRow entity.
	// It exists in this package in order to avoid circular dependency with the "matchedrow" package.
	MatchedRowsInverseTable = "matched_rows"
	// MatchedRowsColumn is the table column denoting the matched_rows relation/edge.
	MatchedRowsColumn = "run_id"
)

// Columns holds all SQL columns for validationrun fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldDocumentType,
	FieldDocumentCategory,
	FieldUserID,
	FieldStatus,
	FieldScore,
	FieldTotalRecords,
	FieldMatchedRecords,
	FieldMismatchedRecords,
	FieldProcessingDetails,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultTotalRecords holds the default value on creation for the "total_records" field.
	DefaultTotalRecords int
	// DefaultMatchedRecords holds the default value on creation for the "matched_records" field.
	DefaultMatchedRecords int
	// DefaultMismatchedRecords holds the default value on creation for the "mismatched_records" field.
	DefaultMismatchedRecords int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ValidationRun queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotalRecords orders the results by the total_records field.
func ByTotalRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRecords, opts...).ToFunc()
}

// ByMatchedRecords orders the results by the matched_records field.
func ByMatchedRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedRecords, opts...).ToFunc()
}

// ByMismatchedRecords orders the results by the mismatched_records field.
func ByMismatchedRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMismatchedRecords, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInvalidGroupsCount orders the results by invalid_groups count.
func ByInvalidGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvalidGroupsStep(), opts...)
	}
}

// ByInvalidGroups orders the results by invalid_groups terms.
func ByInvalidGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvalidGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMatchedGroupsCount orders the results by matched_groups count.
func ByMatchedGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMatchedGroupsStep(), opts...)
	}
}

// ByMatchedGroups orders the results by matched_groups terms.
func ByMatchedGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchedGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInvalidRowsCount orders the results by invalid_rows count.
func ByInvalidRowsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvalidRowsStep(), opts...)
	}
}

// ByInvalidRows orders the results by invalid_rows terms.
func ByInvalidRows(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvalidRowsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMatchedRowsCount orders the results by matched_rows count.
func ByMatchedRowsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMatchedRowsStep(), opts...)
	}
}

// ByMatchedRows orders the results by matched_rows terms.
func ByMatchedRows(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchedRowsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInvalidGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvalidGroupsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvalidGroupsTable, InvalidGroupsColumn),
	)
}
func newMatchedGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchedGroupsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchedGroupsTable, MatchedGroupsColumn),
	)
}
func newInvalidRowsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvalidRowsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvalidRowsTable, InvalidRowsColumn),
	)
}
func newMatchedRowsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchedRowsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchedRowsTable, MatchedRowsColumn),
	)
}
