// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/stagingrecord"
)

// StagingRecordUpdate is the builder for updating StagingRecord entities.
type StagingRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StagingRecordMutation
}

// Where appends a list predicates to the StagingRecordUpdate builder.
func (_u *StagingRecordUpdate) Where(ps ...predicate.StagingRecord) *StagingRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *StagingRecordUpdate) SetFilename(v string) *StagingRecordUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableFilename(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *StagingRecordUpdate) SetDocumentType(v string) *StagingRecordUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableDocumentType(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetDocumentCategory sets the "document_category" field.
func (_u *StagingRecordUpdate) SetDocumentCategory(v string) *StagingRecordUpdate {
	_u.mutation.SetDocumentCategory(v)
	return _u
}

// SetNillableDocumentCategory sets the "document_category" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableDocumentCategory(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetDocumentCategory(*v)
	}
	return _u
}

// SetHeaderRow sets the "header_row" field.
func (_u *StagingRecordUpdate) SetHeaderRow(v int) *StagingRecordUpdate {
	_u.mutation.ResetHeaderRow()
	_u.mutation.SetHeaderRow(v)
	return _u
}

// SetNillableHeaderRow sets the "header_row" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableHeaderRow(v *int) *StagingRecordUpdate {
	if v != nil {
		_u.SetHeaderRow(*v)
	}
	return _u
}

// AddHeaderRow adds value to the "header_row" field.
func (_u *StagingRecordUpdate) AddHeaderRow(v int) *StagingRecordUpdate {
	_u.mutation.AddHeaderRow(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StagingRecordUpdate) SetUserID(v string) *StagingRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableUserID(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *StagingRecordUpdate) SetConnector(v string) *StagingRecordUpdate {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableConnector(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetSumValue sets the "sum_value" field.
func (_u *StagingRecordUpdate) SetSumValue(v float64) *StagingRecordUpdate {
	_u.mutation.ResetSumValue()
	_u.mutation.SetSumValue(v)
	return _u
}

// SetNillableSumValue sets the "sum_value" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableSumValue(v *float64) *StagingRecordUpdate {
	if v != nil {
		_u.SetSumValue(*v)
	}
	return _u
}

// AddSumValue adds value to the "sum_value" field.
func (_u *StagingRecordUpdate) AddSumValue(v float64) *StagingRecordUpdate {
	_u.mutation.AddSumValue(v)
	return _u
}

// SetBranchCode sets the "branch_code" field.
func (_u *StagingRecordUpdate) SetBranchCode(v string) *StagingRecordUpdate {
	_u.mutation.SetBranchCode(v)
	return _u
}

// SetNillableBranchCode sets the "branch_code" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableBranchCode(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetBranchCode(*v)
	}
	return _u
}

// ClearBranchCode clears the value of the "branch_code" field.
func (_u *StagingRecordUpdate) ClearBranchCode() *StagingRecordUpdate {
	_u.mutation.ClearBranchCode()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *StagingRecordUpdate) SetBranchName(v string) *StagingRecordUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableBranchName(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *StagingRecordUpdate) ClearBranchName() *StagingRecordUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetOutletCode sets the "outlet_code" field.
func (_u *StagingRecordUpdate) SetOutletCode(v string) *StagingRecordUpdate {
	_u.mutation.SetOutletCode(v)
	return _u
}

// SetNillableOutletCode sets the "outlet_code" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableOutletCode(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetOutletCode(*v)
	}
	return _u
}

// ClearOutletCode clears the value of the "outlet_code" field.
func (_u *StagingRecordUpdate) ClearOutletCode() *StagingRecordUpdate {
	_u.mutation.ClearOutletCode()
	return _u
}

// SetOutletName sets the "outlet_name" field.
func (_u *StagingRecordUpdate) SetOutletName(v string) *StagingRecordUpdate {
	_u.mutation.SetOutletName(v)
	return _u
}

// SetNillableOutletName sets the "outlet_name" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableOutletName(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetOutletName(*v)
	}
	return _u
}

// ClearOutletName clears the value of the "outlet_name" field.
func (_u *StagingRecordUpdate) ClearOutletName() *StagingRecordUpdate {
	_u.mutation.ClearOutletName()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *StagingRecordUpdate) SetDocDate(v time.Time) *StagingRecordUpdate {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableDocDate(v *time.Time) *StagingRecordUpdate {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// ClearDocDate clears the value of the "doc_date" field.
func (_u *StagingRecordUpdate) ClearDocDate() *StagingRecordUpdate {
	_u.mutation.ClearDocDate()
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *StagingRecordUpdate) SetRowIndex(v int) *StagingRecordUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableRowIndex(v *int) *StagingRecordUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *StagingRecordUpdate) AddRowIndex(v int) *StagingRecordUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// Mutation returns the StagingRecordMutation object of the builder.
func (_u *StagingRecordUpdate) Mutation() *StagingRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingRecordUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := stagingrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := stagingrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCategory(); ok {
		if err := stagingrecord.DocumentCategoryValidator(v); err != nil {
			return &ValidationError{Name: "document_category", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := stagingrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Connector(); ok {
		if err := stagingrecord.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.connector": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingrecord.Table, stagingrecord.Columns, sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(stagingrecord.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(stagingrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentCategory(); ok {
		_spec.SetField(stagingrecord.FieldDocumentCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeaderRow(); ok {
		_spec.SetField(stagingrecord.FieldHeaderRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeaderRow(); ok {
		_spec.AddField(stagingrecord.FieldHeaderRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(stagingrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(stagingrecord.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.SumValue(); ok {
		_spec.SetField(stagingrecord.FieldSumValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSumValue(); ok {
		_spec.AddField(stagingrecord.FieldSumValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BranchCode(); ok {
		_spec.SetField(stagingrecord.FieldBranchCode, field.TypeString, value)
	}
	if _u.mutation.BranchCodeCleared() {
		_spec.ClearField(stagingrecord.FieldBranchCode, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(stagingrecord.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(stagingrecord.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.OutletCode(); ok {
		_spec.SetField(stagingrecord.FieldOutletCode, field.TypeString, value)
	}
	if _u.mutation.OutletCodeCleared() {
		_spec.ClearField(stagingrecord.FieldOutletCode, field.TypeString)
	}
	if value, ok := _u.mutation.OutletName(); ok {
		_spec.SetField(stagingrecord.FieldOutletName, field.TypeString, value)
	}
	if _u.mutation.OutletNameCleared() {
		_spec.ClearField(stagingrecord.FieldOutletName, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(stagingrecord.FieldDocDate, field.TypeTime, value)
	}
	if _u.mutation.DocDateCleared() {
		_spec.ClearField(stagingrecord.FieldDocDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(stagingrecord.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(stagingrecord.FieldRowIndex, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingRecordUpdateOne is the builder for updating a single StagingRecord entity.
type StagingRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingRecordMutation
}

// SetFilename sets the "filename" field.
func (_u *StagingRecordUpdateOne) SetFilename(v string) *StagingRecordUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableFilename(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *StagingRecordUpdateOne) SetDocumentType(v string) *StagingRecordUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableDocumentType(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetDocumentCategory sets the "document_category" field.
func (_u *StagingRecordUpdateOne) SetDocumentCategory(v string) *StagingRecordUpdateOne {
	_u.mutation.SetDocumentCategory(v)
	return _u
}

// SetNillableDocumentCategory sets the "document_category" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableDocumentCategory(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetDocumentCategory(*v)
	}
	return _u
}

// SetHeaderRow sets the "header_row" field.
func (_u *StagingRecordUpdateOne) SetHeaderRow(v int) *StagingRecordUpdateOne {
	_u.mutation.ResetHeaderRow()
	_u.mutation.SetHeaderRow(v)
	return _u
}

// SetNillableHeaderRow sets the "header_row" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableHeaderRow(v *int) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetHeaderRow(*v)
	}
	return _u
}

// AddHeaderRow adds value to the "header_row" field.
func (_u *StagingRecordUpdateOne) AddHeaderRow(v int) *StagingRecordUpdateOne {
	_u.mutation.AddHeaderRow(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StagingRecordUpdateOne) SetUserID(v string) *StagingRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableUserID(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *StagingRecordUpdateOne) SetConnector(v string) *StagingRecordUpdateOne {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableConnector(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetSumValue sets the "sum_value" field.
func (_u *StagingRecordUpdateOne) SetSumValue(v float64) *StagingRecordUpdateOne {
	_u.mutation.ResetSumValue()
	_u.mutation.SetSumValue(v)
	return _u
}

// SetNillableSumValue sets the "sum_value" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableSumValue(v *float64) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetSumValue(*v)
	}
	return _u
}

// AddSumValue adds value to the "sum_value" field.
func (_u *StagingRecordUpdateOne) AddSumValue(v float64) *StagingRecordUpdateOne {
	_u.mutation.AddSumValue(v)
	return _u
}

// SetBranchCode sets the "branch_code" field.
func (_u *StagingRecordUpdateOne) SetBranchCode(v string) *StagingRecordUpdateOne {
	_u.mutation.SetBranchCode(v)
	return _u
}

// SetNillableBranchCode sets the "branch_code" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableBranchCode(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetBranchCode(*v)
	}
	return _u
}

// ClearBranchCode clears the value of the "branch_code" field.
func (_u *StagingRecordUpdateOne) ClearBranchCode() *StagingRecordUpdateOne {
	_u.mutation.ClearBranchCode()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *StagingRecordUpdateOne) SetBranchName(v string) *StagingRecordUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableBranchName(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *StagingRecordUpdateOne) ClearBranchName() *StagingRecordUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetOutletCode sets the "outlet_code" field.
func (_u *StagingRecordUpdateOne) SetOutletCode(v string) *StagingRecordUpdateOne {
	_u.mutation.SetOutletCode(v)
	return _u
}

// SetNillableOutletCode sets the "outlet_code" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableOutletCode(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetOutletCode(*v)
	}
	return _u
}

// ClearOutletCode clears the value of the "outlet_code" field.
func (_u *StagingRecordUpdateOne) ClearOutletCode() *StagingRecordUpdateOne {
	_u.mutation.ClearOutletCode()
	return _u
}

// SetOutletName sets the "outlet_name" field.
func (_u *StagingRecordUpdateOne) SetOutletName(v string) *StagingRecordUpdateOne {
	_u.mutation.SetOutletName(v)
	return _u
}

// SetNillableOutletName sets the "outlet_name" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableOutletName(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetOutletName(*v)
	}
	return _u
}

// ClearOutletName clears the value of the "outlet_name" field.
func (_u *StagingRecordUpdateOne) ClearOutletName() *StagingRecordUpdateOne {
	_u.mutation.ClearOutletName()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *StagingRecordUpdateOne) SetDocDate(v time.Time) *StagingRecordUpdateOne {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableDocDate(v *time.Time) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// ClearDocDate clears the value of the "doc_date" field.
func (_u *StagingRecordUpdateOne) ClearDocDate() *StagingRecordUpdateOne {
	_u.mutation.ClearDocDate()
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *StagingRecordUpdateOne) SetRowIndex(v int) *StagingRecordUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableRowIndex(v *int) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *StagingRecordUpdateOne) AddRowIndex(v int) *StagingRecordUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// Mutation returns the StagingRecordMutation object of the builder.
func (_u *StagingRecordUpdateOne) Mutation() *StagingRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingRecordUpdate builder.
func (_u *StagingRecordUpdateOne) Where(ps ...predicate.StagingRecord) *StagingRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingRecordUpdateOne) Select(field string, fields ...string) *StagingRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingRecord entity.
func (_u *StagingRecordUpdateOne) Save(ctx context.Context) (*StagingRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingRecordUpdateOne) SaveX(ctx context.Context) *StagingRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := stagingrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := stagingrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCategory(); ok {
		if err := stagingrecord.DocumentCategoryValidator(v); err != nil {
			return &ValidationError{Name: "document_category", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := stagingrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Connector(); ok {
		if err := stagingrecord.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.connector": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingRecordUpdateOne) sqlSave(ctx context.Context) (_node *StagingRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingrecord.Table, stagingrecord.Columns, sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingrecord.FieldID)
		for _, f := range fields {
			if !stagingrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(stagingrecord.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(stagingrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentCategory(); ok {
		_spec.SetField(stagingrecord.FieldDocumentCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeaderRow(); ok {
		_spec.SetField(stagingrecord.FieldHeaderRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeaderRow(); ok {
		_spec.AddField(stagingrecord.FieldHeaderRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(stagingrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(stagingrecord.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.SumValue(); ok {
		_spec.SetField(stagingrecord.FieldSumValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSumValue(); ok {
		_spec.AddField(stagingrecord.FieldSumValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BranchCode(); ok {
		_spec.SetField(stagingrecord.FieldBranchCode, field.TypeString, value)
	}
	if _u.mutation.BranchCodeCleared() {
		_spec.ClearField(stagingrecord.FieldBranchCode, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(stagingrecord.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(stagingrecord.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.OutletCode(); ok {
		_spec.SetField(stagingrecord.FieldOutletCode, field.TypeString, value)
	}
	if _u.mutation.OutletCodeCleared() {
		_spec.ClearField(stagingrecord.FieldOutletCode, field.TypeString)
	}
	if value, ok := _u.mutation.OutletName(); ok {
		_spec.SetField(stagingrecord.FieldOutletName, field.TypeString, value)
	}
	if _u.mutation.OutletNameCleared() {
		_spec.ClearField(stagingrecord.FieldOutletName, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(stagingrecord.FieldDocDate, field.TypeTime, value)
	}
	if _u.mutation.DocDateCleared() {
		_spec.ClearField(stagingrecord.FieldDocDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(stagingrecord.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(stagingrecord.FieldRowIndex, field.TypeInt, value)
	}
	_node = &StagingRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
