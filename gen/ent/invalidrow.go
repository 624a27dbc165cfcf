// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// InvalidRow is the model entity for the InvalidRow schema.
type InvalidRow struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Connector holds the value of the "connector" field.
	Connector string `json:"connector,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// ErrorText holds the value of the "error_text" field.
	ErrorText string `json:"error_text,omitempty"`
	// UploadedValue holds the value of the "uploaded_value" field.
	UploadedValue float64 `json:"uploaded_value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvalidRowQuery when eager-loading is set.
	Edges        InvalidRowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvalidRowEdges holds the relations/edges for other nodes in the graph.
type InvalidRowEdges struct {
	// Run holds the value of the run edge.
	Run *ValidationRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvalidRowEdges) RunOrErr() (*ValidationRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: validationrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvalidRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invalidrow.FieldUploadedValue:
			values[i] = new(sql.NullFloat64)
		case invalidrow.FieldID, invalidrow.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case invalidrow.FieldConnector, invalidrow.FieldCategory, invalidrow.FieldErrorText:
			values[i] = new(sql.NullString)
		case invalidrow.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvalidRow fields.
func (_m *InvalidRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invalidrow.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case invalidrow.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case invalidrow.FieldConnector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector", values[i])
			} else if value.Valid {
				_m.Connector = value.String
			}
		case invalidrow.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case invalidrow.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case invalidrow.FieldErrorText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_text", values[i])
			} else if value.Valid {
				_m.ErrorText = value.String
			}
		case invalidrow.FieldUploadedValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_value", values[i])
			} else if value.Valid {
				_m.UploadedValue = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvalidRow.
// This includes values selected through modifiers, order, etc.
func (_m *InvalidRow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the InvalidRow entity.
func (_m *InvalidRow) QueryRun() *ValidationRunQuery {
	return NewInvalidRowClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this InvalidRow.
// Note that you need to call InvalidRow.Unwrap() before calling this method if this InvalidRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvalidRow) Update() *InvalidRowUpdateOne {
	return NewInvalidRowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvalidRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvalidRow) Unwrap() *InvalidRow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvalidRow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvalidRow) String() string {
	var builder strings.Builder
	builder.WriteString("InvalidRow(")
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
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("error_text=")
	builder.WriteString(_m.ErrorText)
	builder.WriteString(", ")
	builder.WriteString("uploaded_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadedValue))
	builder.WriteByte(')')
	return builder.String()
}

// InvalidRows is a parsable slice of InvalidRow.
type InvalidRows []*InvalidRow
