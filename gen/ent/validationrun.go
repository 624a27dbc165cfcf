// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// ValidationRun is the model entity for the ValidationRun schema.
type ValidationRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// DocumentCategory holds the value of the "document_category" field.
	DocumentCategory string `json:"document_category,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// TotalRecords holds the value of the "total_records" field.
	TotalRecords int `json:"total_records,omitempty"`
	// MatchedRecords holds the value of the "matched_records" field.
	MatchedRecords int `json:"matched_records,omitempty"`
	// MismatchedRecords holds the value of the "mismatched_records" field.
	MismatchedRecords int `json:"mismatched_records,omitempty"`
	// ProcessingDetails holds the value of the "processing_details" field.
	ProcessingDetails json.RawMessage `json:"processing_details,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationRunQuery when eager-loading is set.
	Edges        ValidationRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationRunEdges holds the relations/edges for other nodes in the graph.
type ValidationRunEdges struct {
	// InvalidGroups holds the value of the invalid_groups edge.
	InvalidGroups []*InvalidGroup `json:"invalid_groups,omitempty"`
	// MatchedGroups holds the value of the matched_groups edge.
	MatchedGroups []*MatchedGroup `json:"matched_groups,omitempty"`
	// InvalidRows holds the value of the invalid_rows edge.
	InvalidRows []*InvalidRow `json:"invalid_rows,omitempty"`
	// MatchedRows holds the value of the matched_rows edge.
	MatchedRows []*MatchedRow `json:"matched_rows,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// InvalidGroupsOrErr returns the InvalidGroups value or an error if the edge
// was not loaded in eager-loading.
func (e ValidationRunEdges) InvalidGroupsOrErr() ([]*InvalidGroup, error) {
	if e.loadedTypes[0] {
		return e.InvalidGroups, nil
	}
	return nil, &NotLoadedError{edge: "invalid_groups"}
}

// MatchedGroupsOrErr returns the MatchedGroups value or an error if the edge
// was not loaded in eager-loading.
func (e ValidationRunEdges) MatchedGroupsOrErr() ([]*MatchedGroup, error) {
	if e.loadedTypes[1] {
		return e.MatchedGroups, nil
	}
	return nil, &NotLoadedError{edge: "matched_groups"}
}

// InvalidRowsOrErr returns the InvalidRows value or an error if the edge
// was not loaded in eager-loading.
func (e ValidationRunEdges) InvalidRowsOrErr() ([]*InvalidRow, error) {
	if e.loadedTypes[2] {
		return e.InvalidRows, nil
	}
	return nil, &NotLoadedError{edge: "invalid_rows"}
}

// MatchedRowsOrErr returns the MatchedRows value or an error if the edge
// was not loaded in eager-loading.
func (e ValidationRunEdges) MatchedRowsOrErr() ([]*MatchedRow, error) {
	if e.loadedTypes[3] {
		return e.MatchedRows, nil
	}
	return nil, &NotLoadedError{edge: "matched_rows"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationrun.FieldProcessingDetails:
			values[i] = new([]byte)
		case validationrun.FieldScore:
			values[i] = new(sql.NullFloat64)
		case validationrun.FieldTotalRecords, validationrun.FieldMatchedRecords, validationrun.FieldMismatchedRecords:
			values[i] = new(sql.NullInt64)
		case validationrun.FieldFilename, validationrun.FieldDocumentType, validationrun.FieldDocumentCategory, validationrun.FieldUserID, validationrun.FieldStatus, validationrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case validationrun.FieldCreatedAt, validationrun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case validationrun.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationRun fields.
func (_m *ValidationRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case validationrun.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case validationrun.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case validationrun.FieldDocumentCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_category", values[i])
			} else if value.Valid {
				_m.DocumentCategory = value.String
			}
		case validationrun.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case validationrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case validationrun.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case validationrun.FieldTotalRecords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_records", values[i])
			} else if value.Valid {
				_m.TotalRecords = int(value.Int64)
			}
		case validationrun.FieldMatchedRecords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field matched_records", values[i])
			} else if value.Valid {
				_m.MatchedRecords = int(value.Int64)
			}
		case validationrun.FieldMismatchedRecords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mismatched_records", values[i])
			} else if value.Valid {
				_m.MismatchedRecords = int(value.Int64)
			}
		case validationrun.FieldProcessingDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processing_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessingDetails); err != nil {
					return fmt.Errorf("unmarshal field processing_details: %w", err)
				}
			}
		case validationrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case validationrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case validationrun.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationRun.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvalidGroups queries the "invalid_groups" edge of the ValidationRun entity.
func (_m *ValidationRun) QueryInvalidGroups() *InvalidGroupQuery {
	return NewValidationRunClient(_m.config).QueryInvalidGroups(_m)
}

// QueryMatchedGroups queries the "matched_groups" edge of the ValidationRun entity.
func (_m *ValidationRun) QueryMatchedGroups() *MatchedGroupQuery {
	return NewValidationRunClient(_m.config).QueryMatchedGroups(_m)
}

// QueryInvalidRows queries the "invalid_rows" edge of the ValidationRun entity.
func (_m *ValidationRun) QueryInvalidRows() *InvalidRowQuery {
	return NewValidationRunClient(_m.config).QueryInvalidRows(_m)
}

// QueryMatchedRows queries the "matched_rows" edge of the ValidationRun entity.
func (_m *ValidationRun) QueryMatchedRows() *MatchedRowQuery {
	return NewValidationRunClient(_m.config).QueryMatchedRows(_m)
}

// Update returns a builder for updating this ValidationRun.
// Note that you need to call ValidationRun.Unwrap() before calling this method if this ValidationRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationRun) Update() *ValidationRunUpdateOne {
	return NewValidationRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationRun) Unwrap() *ValidationRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationRun) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("document_category=")
	builder.WriteString(_m.DocumentCategory)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total_records=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRecords))
	builder.WriteString(", ")
	builder.WriteString("matched_records=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchedRecords))
	builder.WriteString(", ")
	builder.WriteString("mismatched_records=")
	builder.WriteString(fmt.Sprintf("%v", _m.MismatchedRecords))
	builder.WriteString(", ")
	builder.WriteString("processing_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingDetails))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationRuns is a parsable slice of ValidationRun.
type ValidationRuns []*ValidationRun
