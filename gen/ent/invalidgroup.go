// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// InvalidGroup is the model entity for the InvalidGroup schema.
type InvalidGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Connector holds the value of the "connector" field.
	Connector string `json:"connector,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// ErrorText holds the value of the "error_text" field.
	ErrorText string `json:"error_text,omitempty"`
	// UploadedTotal holds the value of the "uploaded_total" field.
	UploadedTotal float64 `json:"uploaded_total,omitempty"`
	// SourceTotal holds the value of the "source_total" field.
	SourceTotal float64 `json:"source_total,omitempty"`
	// DiscrepancyValue holds the value of the "discrepancy_value" field.
	DiscrepancyValue float64 `json:"discrepancy_value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvalidGroupQuery when eager-loading is set.
	Edges        InvalidGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvalidGroupEdges holds the relations/edges for other nodes in the graph.
type InvalidGroupEdges struct {
	// Run holds the value of the run edge.
	Run *ValidationRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvalidGroupEdges) RunOrErr() (*ValidationRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: validationrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvalidGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invalidgroup.FieldUploadedTotal, invalidgroup.FieldSourceTotal, invalidgroup.FieldDiscrepancyValue:
			values[i] = new(sql.NullFloat64)
		case invalidgroup.FieldID:
			values[i] = new(sql.NullInt64)
		case invalidgroup.FieldConnector, invalidgroup.FieldCategory, invalidgroup.FieldErrorText:
			values[i] = new(sql.NullString)
		case invalidgroup.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvalidGroup fields.
func (_m *InvalidGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invalidgroup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case invalidgroup.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case invalidgroup.FieldConnector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector", values[i])
			} else if value.Valid {
				_m.Connector = value.String
			}
		case invalidgroup.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case invalidgroup.FieldErrorText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_text", values[i])
			} else if value.Valid {
				_m.ErrorText = value.String
			}
		case invalidgroup.FieldUploadedTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_total", values[i])
			} else if value.Valid {
				_m.UploadedTotal = value.Float64
			}
		case invalidgroup.FieldSourceTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field source_total", values[i])
			} else if value.Valid {
				_m.SourceTotal = value.Float64
			}
		case invalidgroup.FieldDiscrepancyValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discrepancy_value", values[i])
			} else if value.Valid {
				_m.DiscrepancyValue = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvalidGroup.
// This includes values selected through modifiers, order, etc.
func (_m *InvalidGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the InvalidGroup entity.
func (_m *InvalidGroup) QueryRun() *ValidationRunQuery {
	return NewInvalidGroupClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this InvalidGroup.
// Note that you need to call InvalidGroup.Unwrap() before calling this method if this InvalidGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvalidGroup) Update() *InvalidGroupUpdateOne {
	return NewInvalidGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvalidGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvalidGroup) Unwrap() *InvalidGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvalidGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvalidGroup) String() string {
	var builder strings.Builder
	builder.WriteString("InvalidGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("connector=")
	builder.WriteString(_m.Connector)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("error_text=")
	builder.WriteString(_m.ErrorText)
	builder.WriteString(", ")
	builder.WriteString("uploaded_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadedTotal))
	builder.WriteString(", ")
	builder.WriteString("source_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTotal))
	builder.WriteString(", ")
	builder.WriteString("discrepancy_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscrepancyValue))
	builder.WriteByte(')')
	return builder.String()
}

// InvalidGroups is a parsable slice of InvalidGroup.
type InvalidGroups []*InvalidGroup
