// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/stagingrecord"
	"github.com/google/uuid"
)

// StagingRecord is the model entity for the StagingRecord schema.
type StagingRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// DocumentCategory holds the value of the "document_category" field.
	DocumentCategory string `json:"document_category,omitempty"`
	// HeaderRow holds the value of the "header_row" field.
	HeaderRow int `json:"header_row,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Connector holds the value of the "connector" field.
	Connector string `json:"connector,omitempty"`
	// SumValue holds the value of the "sum_value" field.
	SumValue float64 `json:"sum_value,omitempty"`
	// BranchCode holds the value of the "branch_code" field.
	BranchCode *string `json:"branch_code,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// OutletCode holds the value of the "outlet_code" field.
	OutletCode *string `json:"outlet_code,omitempty"`
	// OutletName holds the value of the "outlet_name" field.
	OutletName *string `json:"outlet_name,omitempty"`
	// DocDate holds the value of the "doc_date" field.
	DocDate *time.Time `json:"doc_date,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StagingRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagingrecord.FieldSumValue:
			values[i] = new(sql.NullFloat64)
		case stagingrecord.FieldHeaderRow, stagingrecord.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case stagingrecord.FieldFilename, stagingrecord.FieldDocumentType, stagingrecord.FieldDocumentCategory, stagingrecord.FieldUserID, stagingrecord.FieldConnector, stagingrecord.FieldBranchCode, stagingrecord.FieldBranchName, stagingrecord.FieldOutletCode, stagingrecord.FieldOutletName:
			values[i] = new(sql.NullString)
		case stagingrecord.FieldDocDate, stagingrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case stagingrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StagingRecord fields.
func (_m *StagingRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagingrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stagingrecord.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case stagingrecord.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case stagingrecord.FieldDocumentCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_category", values[i])
			} else if value.Valid {
				_m.DocumentCategory = value.String
			}
		case stagingrecord.FieldHeaderRow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field header_row", values[i])
			} else if value.Valid {
				_m.HeaderRow = int(value.Int64)
			}
		case stagingrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case stagingrecord.FieldConnector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector", values[i])
			} else if value.Valid {
				_m.Connector = value.String
			}
		case stagingrecord.FieldSumValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sum_value", values[i])
			} else if value.Valid {
				_m.SumValue = value.Float64
			}
		case stagingrecord.FieldBranchCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_code", values[i])
			} else if value.Valid {
				_m.BranchCode = new(string)
				*_m.BranchCode = value.String
			}
		case stagingrecord.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case stagingrecord.FieldOutletCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outlet_code", values[i])
			} else if value.Valid {
				_m.OutletCode = new(string)
				*_m.OutletCode = value.String
			}
		case stagingrecord.FieldOutletName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outlet_name", values[i])
			} else if value.Valid {
				_m.OutletName = new(string)
				*_m.OutletName = value.String
			}
		case stagingrecord.FieldDocDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field doc_date", values[i])
			} else if value.Valid {
				_m.DocDate = new(time.Time)
				*_m.DocDate = value.Time
			}
		case stagingrecord.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case stagingrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StagingRecord.
// This includes values selected through modifiers, order, etc.
func (_m *StagingRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StagingRecord.
// Note that you need to call StagingRecord.Unwrap() before calling this method if this StagingRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StagingRecord) Update() *StagingRecordUpdateOne {
	return NewStagingRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StagingRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StagingRecord) Unwrap() *StagingRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StagingRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StagingRecord) String() string {
	var builder strings.Builder
	builder.WriteString("StagingRecord(")
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
	builder.WriteString("header_row=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeaderRow))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("connector=")
	builder.WriteString(_m.Connector)
	builder.WriteString(", ")
	builder.WriteString("sum_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.SumValue))
	builder.WriteString(", ")
	if v := _m.BranchCode; v != nil {
		builder.WriteString("branch_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OutletCode; v != nil {
		builder.WriteString("outlet_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OutletName; v != nil {
		builder.WriteString("outlet_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocDate; v != nil {
		builder.WriteString("doc_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StagingRecords is a parsable slice of StagingRecord.
type StagingRecords []*StagingRecord
