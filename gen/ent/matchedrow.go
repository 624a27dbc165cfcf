// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// MatchedRow is the model entity for the MatchedRow schema.
type MatchedRow struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Connector holds the value of the "connector" field.
	Connector string `json:"connector,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// UploadedValue holds the value of the "uploaded_value" field.
	UploadedValue float64 `json:"uploaded_value,omitempty"`
	// SourceTotal holds the value of the "source_total" field.
	SourceTotal float64 `json:"source_total,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatchedRowQuery when eager-loading is set.
	Edges        MatchedRowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatchedRowEdges holds the relations/edges for other nodes in the graph.
type MatchedRowEdges struct {
	// Run holds the value of the run edge.
	Run *ValidationRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchedRowEdges) RunOrErr() (*ValidationRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: validationrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatchedRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matchedrow.FieldUploadedValue, matchedrow.FieldSourceTotal:
			values[i] = new(sql.NullFloat64)
		case matchedrow.FieldID, matchedrow.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case matchedrow.FieldConnector, matchedrow.FieldNote:
			values[i] = new(sql.NullString)
		case matchedrow.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatchedRow fields.
func (_m *MatchedRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matchedrow.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case matchedrow.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case matchedrow.FieldConnector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector", values[i])
			} else if value.Valid {
				_m.Connector = value.String
			}
		case matchedrow.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case matchedrow.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case matchedrow.FieldUploadedValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_value", values[i])
			} else if value.Valid {
				_m.UploadedValue = value.Float64
			}
		case matchedrow.FieldSourceTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field source_total", values[i])
			} else if value.Valid {
				_m.SourceTotal = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatchedRow.
// This includes values selected through modifiers, order, etc.
func (_m *MatchedRow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the MatchedRow entity.
func (_m *MatchedRow) QueryRun() *ValidationRunQuery {
	return NewMatchedRowClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this MatchedRow.
// Note that you need to call MatchedRow.Unwrap() before calling this method if this MatchedRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatchedRow) Update() *MatchedRowUpdateOne {
	return NewMatchedRowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatchedRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatchedRow) Unwrap() *MatchedRow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatchedRow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatchedRow) String() string {
	var builder strings.Builder
	builder.WriteString("MatchedRow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("connector=")
	builder.WriteString(_m.Connector)
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("uploaded_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadedValue))
	builder.WriteString(", ")
	builder.WriteString("source_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTotal))
	builder.WriteByte(')')
	return builder.String()
}

// MatchedRows is a parsable slice of MatchedRow.
type MatchedRows []*MatchedRow
