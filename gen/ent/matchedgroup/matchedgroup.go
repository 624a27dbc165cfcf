// Code generated by ent, DO NOT EDIT.

package matchedgroup

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the matchedgroup type in the database.
	Label = "matched_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldConnector holds the string denoting the connector field in the database.
	FieldConnector = "connector"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldUploadedTotal holds the string denoting the uploaded_total field in the database.
	FieldUploadedTotal = "uploaded_total"
	// FieldSourceTotal holds the string denoting the source_total field in the database.
	FieldSourceTotal = "source_total"
	// FieldDifference holds the string denoting the difference field in the database.
	FieldDifference = "difference"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// Table holds the table name of the matchedgroup in the database.
	Table = "matched_groups"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "matched_groups"
	// RunInverseTable is the table name for the ValidationRun entity.
	// It exists in this package in order to avoid circular dependency with the "validationrun" package.
	RunInverseTable = "validation_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for matchedgroup fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldConnector,
	FieldNote,
	FieldUploadedTotal,
	FieldSourceTotal,
	FieldDifference,
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
	// NoteValidator is a validator for the "note" field. It is called by the builders before save.
	NoteValidator func(string) error
)

// OrderOption defines the ordering options for the MatchedGroup queries.
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

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByUploadedTotal orders the results by the uploaded_total field.
func ByUploadedTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedTotal, opts...).ToFunc()
}

// BySourceTotal orders the results by the source_total field.
func BySourceTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTotal, opts...).ToFunc()
}

// ByDifference orders the results by the difference field.
func ByDifference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifference, opts...).ToFunc()
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
