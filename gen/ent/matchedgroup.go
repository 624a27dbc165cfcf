// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// MatchedGroup is the model entity for the MatchedGroup schema.
type MatchedGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Connector holds the value of the "connector" field.
	Connector string `json:"connector,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// UploadedTotal holds the value of the "uploaded_total" field.
	UploadedTotal float64 `json:"uploaded_total,omitempty"`
	// SourceTotal holds the value of the "source_total" field.
	SourceTotal float64 `json:"source_total,omitempty"`
	// Difference holds the value of the "difference" field.
	Difference float64 `json:"difference,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatchedGroupQuery when eager-loading is set.
	Edges        MatchedGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatchedGroupEdges holds the relations/edges for other nodes in the graph.
type MatchedGroupEdges struct {
	// Run holds the value of the run edge.
	Run *ValidationRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchedGroupEdges) RunOrErr() (*ValidationRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: validationrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatchedGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matchedgroup.FieldUploadedTotal, matchedgroup.FieldSourceTotal, matchedgroup.FieldDifference:
			values[i] = new(sql.NullFloat64)
		case matchedgroup.FieldID:
			values[i] = new(sql.NullInt64)
		case matchedgroup.FieldConnector, matchedgroup.FieldNote:
			values[i] = new(sql.NullString)
		case matchedgroup.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatchedGroup fields.
func (_m *MatchedGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matchedgroup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case matchedgroup.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case matchedgroup.FieldConnector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector", values[i])
			} else if value.Valid {
				_m.Connector = value.String
			}
		case matchedgroup.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case matchedgroup.FieldUploadedTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_total", values[i])
			} else if value.Valid {
				_m.UploadedTotal = value.Float64
			}
		case matchedgroup.FieldSourceTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field source_total", values[i])
			} else if value.Valid {
				_m.SourceTotal = value.Float64
			}
		case matchedgroup.FieldDifference:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difference", values[i])
			} else if value.Valid {
				_m.Difference = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatchedGroup.
// This includes values selected through modifiers, order, etc.
func (_m *MatchedGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the MatchedGroup entity.
func (_m *MatchedGroup) QueryRun() *ValidationRunQuery {
	return NewMatchedGroupClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this MatchedGroup.
// Note that you need to call MatchedGroup.Unwrap() before calling this method if this MatchedGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatchedGroup) Update() *MatchedGroupUpdateOne {
	return NewMatchedGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatchedGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatchedGroup) Unwrap() *MatchedGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatchedGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatchedGroup) String() string {
	var builder strings.Builder
	builder.WriteString("MatchedGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("connector=")
	builder.WriteString(_m.Connector)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("uploaded_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadedTotal))
	builder.WriteString(", ")
	builder.WriteString("source_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTotal))
	builder.WriteString(", ")
	builder.WriteString("difference=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difference))
	builder.WriteByte(')')
	return builder.String()
}

// MatchedGroups is a parsable slice of MatchedGroup.
type MatchedGroups []*MatchedGroup
