// Code generated by ent, DO NOT EDIT.

package invalidrow

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the invalidrow type in the database.
	Label = "invalid_row"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldConnector holds the string denoting the connector field in the database.
	FieldConnector = "connector"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldErrorText holds the string denoting the error_text field in the database.
	FieldErrorText = "error_text"
	// FieldUploadedValue holds the string denoting the uploaded_value field in the database.
	FieldUploadedValue = "uploaded_value"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// Table holds the table name of the invalidrow in the database.
	Table = "invalid_rows"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "invalid_rows"
	// RunInverseTable is the table name for the ValidationRun entity.
	// It exists in this package in order to avoid circular dependency with the "validationrun" package.
	RunInverseTable = "validation_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for invalidrow fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldConnector,
	FieldRowIndex,
	FieldCategory,
	FieldErrorText,
	FieldUploadedValue,
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
	// ConnectorValidator is a validator for the "connector" field. It is called by the builders before save.
	ConnectorValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// ErrorTextValidator is a validator for the "error_text" field. It is called by the builders before save.
	ErrorTextValidator func(string) error
)

// OrderOption defines the ordering options for the InvalidRow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByConnector orders the results by the connector field.
func ByConnector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnector, opts...).ToFunc()
}

// ByRowIndex orders the results by the row_index field.
func ByRowIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowIndex, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByErrorText orders the results by the error_text field.
func ByErrorText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorText, opts...).ToFunc()
}

// ByUploadedValue orders the results by the uploaded_value field.
func ByUploadedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedValue, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
