// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
)

// ValidationRunUpdate is the builder for updating ValidationRun entities.
type ValidationRunUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationRunMutation
}

// Where appends a list predicates to the ValidationRunUpdate builder.
func (_u *ValidationRunUpdate) Where(ps ...predicate.ValidationRun) *ValidationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ValidationRunUpdate) SetFilename(v string) *ValidationRunUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableFilename(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ValidationRunUpdate) SetDocumentType(v string) *ValidationRunUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableDocumentType(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetDocumentCategory sets the "document_category" field.
func (_u *ValidationRunUpdate) SetDocumentCategory(v string) *ValidationRunUpdate {
	_u.mutation.SetDocumentCategory(v)
	return _u
}

// SetNillableDocumentCategory sets the "document_category" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableDocumentCategory(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetDocumentCategory(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ValidationRunUpdate) SetUserID(v string) *ValidationRunUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableUserID(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationRunUpdate) SetStatus(v string) *ValidationRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableStatus(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ValidationRunUpdate) SetScore(v float64) *ValidationRunUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableScore(v *float64) *ValidationRunUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ValidationRunUpdate) AddScore(v float64) *ValidationRunUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *ValidationRunUpdate) SetTotalRecords(v int) *ValidationRunUpdate {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableTotalRecords(v *int) *ValidationRunUpdate {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *ValidationRunUpdate) AddTotalRecords(v int) *ValidationRunUpdate {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// SetMatchedRecords sets the "matched_records" field.
func (_u *ValidationRunUpdate) SetMatchedRecords(v int) *ValidationRunUpdate {
	_u.mutation.ResetMatchedRecords()
	_u.mutation.SetMatchedRecords(v)
	return _u
}

// SetNillableMatchedRecords sets the "matched_records" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableMatchedRecords(v *int) *ValidationRunUpdate {
	if v != nil {
		_u.SetMatchedRecords(*v)
	}
	return _u
}

// AddMatchedRecords adds value to the "matched_records" field.
func (_u *ValidationRunUpdate) AddMatchedRecords(v int) *ValidationRunUpdate {
	_u.mutation.AddMatchedRecords(v)
	return _u
}

// SetMismatchedRecords sets the "mismatched_records" field.
func (_u *ValidationRunUpdate) SetMismatchedRecords(v int) *ValidationRunUpdate {
	_u.mutation.ResetMismatchedRecords()
	_u.mutation.SetMismatchedRecords(v)
	return _u
}

// SetNillableMismatchedRecords sets the "mismatched_records" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableMismatchedRecords(v *int) *ValidationRunUpdate {
	if v != nil {
		_u.SetMismatchedRecords(*v)
	}
	return _u
}

// AddMismatchedRecords adds value to the "mismatched_records" field.
func (_u *ValidationRunUpdate) AddMismatchedRecords(v int) *ValidationRunUpdate {
	_u.mutation.AddMismatchedRecords(v)
	return _u
}

// SetProcessingDetails sets the "processing_details" field.
func (_u *ValidationRunUpdate) SetProcessingDetails(v json.RawMessage) *ValidationRunUpdate {
	_u.mutation.SetProcessingDetails(v)
	return _u
}

// AppendProcessingDetails appends value to the "processing_details" field.
func (_u *ValidationRunUpdate) AppendProcessingDetails(v json.RawMessage) *ValidationRunUpdate {
	_u.mutation.AppendProcessingDetails(v)
	return _u
}

// ClearProcessingDetails clears the value of the "processing_details" field.
func (_u *ValidationRunUpdate) ClearProcessingDetails() *ValidationRunUpdate {
	_u.mutation.ClearProcessingDetails()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ValidationRunUpdate) SetErrorMessage(v string) *ValidationRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableErrorMessage(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ValidationRunUpdate) ClearErrorMessage() *ValidationRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ValidationRunUpdate) SetUpdatedAt(v time.Time) *ValidationRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvalidGroupIDs adds the "invalid_groups" edge to the InvalidGroup entity by IDs.
func (_u *ValidationRunUpdate) AddInvalidGroupIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.AddInvalidGroupIDs(ids...)
	return _u
}

// AddInvalidGroups adds the "invalid_groups" edges to the InvalidGroup entity.
func (_u *ValidationRunUpdate) AddInvalidGroups(v ...*InvalidGroup) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvalidGroupIDs(ids...)
}

// AddMatchedGroupIDs adds the "matched_groups" edge to the MatchedGroup entity by IDs.
func (_u *ValidationRunUpdate) AddMatchedGroupIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.AddMatchedGroupIDs(ids...)
	return _u
}

// AddMatchedGroups adds the "matched_groups" edges to the MatchedGroup entity.
func (_u *ValidationRunUpdate) AddMatchedGroups(v ...*MatchedGroup) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchedGroupIDs(ids...)
}

// AddInvalidRowIDs adds the "invalid_rows" edge to the InvalidRow entity by IDs.
func (_u *ValidationRunUpdate) AddInvalidRowIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.AddInvalidRowIDs(ids...)
	return _u
}

// AddInvalidRows adds the "invalid_rows" edges to the InvalidRow entity.
func (_u *ValidationRunUpdate) AddInvalidRows(v ...*InvalidRow) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvalidRowIDs(ids...)
}

// AddMatchedRowIDs adds the "matched_rows" edge to the MatchedRow entity by IDs.
func (_u *ValidationRunUpdate) AddMatchedRowIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.AddMatchedRowIDs(ids...)
	return _u
}

// AddMatchedRows adds the "matched_rows" edges to the MatchedRow entity.
func (_u *ValidationRunUpdate) AddMatchedRows(v ...*MatchedRow) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchedRowIDs(ids...)
}

// Mutation returns the ValidationRunMutation object of the builder.
func (_u *ValidationRunUpdate) Mutation() *ValidationRunMutation {
	return _u.mutation
}

// ClearInvalidGroups clears all "invalid_groups" edges to the InvalidGroup entity.
func (_u *ValidationRunUpdate) ClearInvalidGroups() *ValidationRunUpdate {
	_u.mutation.ClearInvalidGroups()
	return _u
}

// RemoveInvalidGroupIDs removes the "invalid_groups" edge to InvalidGroup entities by IDs.
func (_u *ValidationRunUpdate) RemoveInvalidGroupIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.RemoveInvalidGroupIDs(ids...)
	return _u
}

// RemoveInvalidGroups removes "invalid_groups" edges to InvalidGroup entities.
func (_u *ValidationRunUpdate) RemoveInvalidGroups(v ...*InvalidGroup) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvalidGroupIDs(ids...)
}

// ClearMatchedGroups clears all "matched_groups" edges to the MatchedGroup entity.
func (_u *ValidationRunUpdate) ClearMatchedGroups() *ValidationRunUpdate {
	_u.mutation.ClearMatchedGroups()
	return _u
}

// RemoveMatchedGroupIDs removes the "matched_groups" edge to MatchedGroup entities by IDs.
func (_u *ValidationRunUpdate) RemoveMatchedGroupIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.RemoveMatchedGroupIDs(ids...)
	return _u
}

// RemoveMatchedGroups removes "matched_groups" edges to MatchedGroup entities.
func (_u *ValidationRunUpdate) RemoveMatchedGroups(v ...*MatchedGroup) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchedGroupIDs(ids...)
}

// ClearInvalidRows clears all "invalid_rows" edges to the InvalidRow entity.
func (_u *ValidationRunUpdate) ClearInvalidRows() *ValidationRunUpdate {
	_u.mutation.ClearInvalidRows()
	return _u
}

// RemoveInvalidRowIDs removes the "invalid_rows" edge to InvalidRow entities by IDs.
func (_u *ValidationRunUpdate) RemoveInvalidRowIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.RemoveInvalidRowIDs(ids...)
	return _u
}

// RemoveInvalidRows removes "invalid_rows" edges to InvalidRow entities.
func (_u *ValidationRunUpdate) RemoveInvalidRows(v ...*InvalidRow) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvalidRowIDs(ids...)
}

// ClearMatchedRows clears all "matched_rows" edges to the MatchedRow entity.
func (_u *ValidationRunUpdate) ClearMatchedRows() *ValidationRunUpdate {
	_u.mutation.ClearMatchedRows()
	return _u
}

// RemoveMatchedRowIDs removes the "matched_rows" edge to MatchedRow entities by IDs.
func (_u *ValidationRunUpdate) RemoveMatchedRowIDs(ids ...int) *ValidationRunUpdate {
	_u.mutation.RemoveMatchedRowIDs(ids...)
	return _u
}

// RemoveMatchedRows removes "matched_rows" edges to MatchedRow entities.
func (_u *ValidationRunUpdate) RemoveMatchedRows(v ...*MatchedRow) *ValidationRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchedRowIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ValidationRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := validationrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRunUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := validationrun.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := validationrun.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCategory(); ok {
		if err := validationrun.DocumentCategoryValidator(v); err != nil {
			return &ValidationError{Name: "document_category", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.document_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := validationrun.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := validationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrun.Table, validationrun.Columns, sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(validationrun.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(validationrun.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentCategory(); ok {
		_spec.SetField(validationrun.FieldDocumentCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(validationrun.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(validationrun.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(validationrun.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(validationrun.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(validationrun.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchedRecords(); ok {
		_spec.SetField(validationrun.FieldMatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchedRecords(); ok {
		_spec.AddField(validationrun.FieldMatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MismatchedRecords(); ok {
		_spec.SetField(validationrun.FieldMismatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMismatchedRecords(); ok {
		_spec.AddField(validationrun.FieldMismatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingDetails(); ok {
		_spec.SetField(validationrun.FieldProcessingDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationrun.FieldProcessingDetails, value)
		})
	}
	if _u.mutation.ProcessingDetailsCleared() {
		_spec.ClearField(validationrun.FieldProcessingDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(validationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(validationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(validationrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvalidGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidGroupsTable,
			Columns: []string{validationrun.InvalidGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvalidGroupsIDs(); len(nodes) > 0 && !_u.mutation.InvalidGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidGroupsTable,
			Columns: []string{validationrun.InvalidGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvalidGroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidGroupsTable,
			Columns: []string{validationrun.InvalidGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchedGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedGroupsTable,
			Columns: []string{validationrun.MatchedGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchedGroupsIDs(); len(nodes) > 0 && !_u.mutation.MatchedGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedGroupsTable,
			Columns: []string{validationrun.MatchedGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchedGroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedGroupsTable,
			Columns: []string{validationrun.MatchedGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvalidRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidRowsTable,
			Columns: []string{validationrun.InvalidRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvalidRowsIDs(); len(nodes) > 0 && !_u.mutation.InvalidRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidRowsTable,
			Columns: []string{validationrun.InvalidRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvalidRowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidRowsTable,
			Columns: []string{validationrun.InvalidRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchedRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedRowsTable,
			Columns: []string{validationrun.MatchedRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchedRowsIDs(); len(nodes) > 0 && !_u.mutation.MatchedRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedRowsTable,
			Columns: []string{validationrun.MatchedRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchedRowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedRowsTable,
			Columns: []string{validationrun.MatchedRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationRunUpdateOne is the builder for updating a single ValidationRun entity.
type ValidationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationRunMutation
}

// SetFilename sets the "filename" field.
func (_u *ValidationRunUpdateOne) SetFilename(v string) *ValidationRunUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableFilename(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ValidationRunUpdateOne) SetDocumentType(v string) *ValidationRunUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableDocumentType(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetDocumentCategory sets the "document_category" field.
func (_u *ValidationRunUpdateOne) SetDocumentCategory(v string) *ValidationRunUpdateOne {
	_u.mutation.SetDocumentCategory(v)
	return _u
}

// SetNillableDocumentCategory sets the "document_category" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableDocumentCategory(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetDocumentCategory(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ValidationRunUpdateOne) SetUserID(v string) *ValidationRunUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableUserID(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationRunUpdateOne) SetStatus(v string) *ValidationRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableStatus(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ValidationRunUpdateOne) SetScore(v float64) *ValidationRunUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableScore(v *float64) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ValidationRunUpdateOne) AddScore(v float64) *ValidationRunUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *ValidationRunUpdateOne) SetTotalRecords(v int) *ValidationRunUpdateOne {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableTotalRecords(v *int) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *ValidationRunUpdateOne) AddTotalRecords(v int) *ValidationRunUpdateOne {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// SetMatchedRecords sets the "matched_records" field.
func (_u *ValidationRunUpdateOne) SetMatchedRecords(v int) *ValidationRunUpdateOne {
	_u.mutation.ResetMatchedRecords()
	_u.mutation.SetMatchedRecords(v)
	return _u
}

// SetNillableMatchedRecords sets the "matched_records" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableMatchedRecords(v *int) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetMatchedRecords(*v)
	}
	return _u
}

// AddMatchedRecords adds value to the "matched_records" field.
func (_u *ValidationRunUpdateOne) AddMatchedRecords(v int) *ValidationRunUpdateOne {
	_u.mutation.AddMatchedRecords(v)
	return _u
}

// SetMismatchedRecords sets the "mismatched_records" field.
func (_u *ValidationRunUpdateOne) SetMismatchedRecords(v int) *ValidationRunUpdateOne {
	_u.mutation.ResetMismatchedRecords()
	_u.mutation.SetMismatchedRecords(v)
	return _u
}

// SetNillableMismatchedRecords sets the "mismatched_records" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableMismatchedRecords(v *int) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetMismatchedRecords(*v)
	}
	return _u
}

// AddMismatchedRecords adds value to the "mismatched_records" field.
func (_u *ValidationRunUpdateOne) AddMismatchedRecords(v int) *ValidationRunUpdateOne {
	_u.mutation.AddMismatchedRecords(v)
	return _u
}

// SetProcessingDetails sets the "processing_details" field.
func (_u *ValidationRunUpdateOne) SetProcessingDetails(v json.RawMessage) *ValidationRunUpdateOne {
	_u.mutation.SetProcessingDetails(v)
	return _u
}

// AppendProcessingDetails appends value to the "processing_details" field.
func (_u *ValidationRunUpdateOne) AppendProcessingDetails(v json.RawMessage) *ValidationRunUpdateOne {
	_u.mutation.AppendProcessingDetails(v)
	return _u
}

// ClearProcessingDetails clears the value of the "processing_details" field.
func (_u *ValidationRunUpdateOne) ClearProcessingDetails() *ValidationRunUpdateOne {
	_u.mutation.ClearProcessingDetails()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ValidationRunUpdateOne) SetErrorMessage(v string) *ValidationRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableErrorMessage(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ValidationRunUpdateOne) ClearErrorMessage() *ValidationRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ValidationRunUpdateOne) SetUpdatedAt(v time.Time) *ValidationRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvalidGroupIDs adds the "invalid_groups" edge to the InvalidGroup entity by IDs.
func (_u *ValidationRunUpdateOne) AddInvalidGroupIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.AddInvalidGroupIDs(ids...)
	return _u
}

// AddInvalidGroups adds the "invalid_groups" edges to the InvalidGroup entity.
func (_u *ValidationRunUpdateOne) AddInvalidGroups(v ...*InvalidGroup) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvalidGroupIDs(ids...)
}

// AddMatchedGroupIDs adds the "matched_groups" edge to the MatchedGroup entity by IDs.
func (_u *ValidationRunUpdateOne) AddMatchedGroupIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.AddMatchedGroupIDs(ids...)
	return _u
}

// AddMatchedGroups adds the "matched_groups" edges to the MatchedGroup entity.
func (_u *ValidationRunUpdateOne) AddMatchedGroups(v ...*MatchedGroup) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchedGroupIDs(ids...)
}

// AddInvalidRowIDs adds the "invalid_rows" edge to the InvalidRow entity by IDs.
func (_u *ValidationRunUpdateOne) AddInvalidRowIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.AddInvalidRowIDs(ids...)
	return _u
}

// AddInvalidRows adds the "invalid_rows" edges to the InvalidRow entity.
func (_u *ValidationRunUpdateOne) AddInvalidRows(v ...*InvalidRow) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvalidRowIDs(ids...)
}

// AddMatchedRowIDs adds the "matched_rows" edge to the MatchedRow entity by IDs.
func (_u *ValidationRunUpdateOne) AddMatchedRowIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.AddMatchedRowIDs(ids...)
	return _u
}

// AddMatchedRows adds the "matched_rows" edges to the MatchedRow entity.
func (_u *ValidationRunUpdateOne) AddMatchedRows(v ...*MatchedRow) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchedRowIDs(ids...)
}

// Mutation returns the ValidationRunMutation object of the builder.
func (_u *ValidationRunUpdateOne) Mutation() *ValidationRunMutation {
	return _u.mutation
}

// ClearInvalidGroups clears all "invalid_groups" edges to the InvalidGroup entity.
func (_u *ValidationRunUpdateOne) ClearInvalidGroups() *ValidationRunUpdateOne {
	_u.mutation.ClearInvalidGroups()
	return _u
}

// RemoveInvalidGroupIDs removes the "invalid_groups" edge to InvalidGroup entities by IDs.
func (_u *ValidationRunUpdateOne) RemoveInvalidGroupIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.RemoveInvalidGroupIDs(ids...)
	return _u
}

// RemoveInvalidGroups removes "invalid_groups" edges to InvalidGroup entities.
func (_u *ValidationRunUpdateOne) RemoveInvalidGroups(v ...*InvalidGroup) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvalidGroupIDs(ids...)
}

// ClearMatchedGroups clears all "matched_groups" edges to the MatchedGroup entity.
func (_u *ValidationRunUpdateOne) ClearMatchedGroups() *ValidationRunUpdateOne {
	_u.mutation.ClearMatchedGroups()
	return _u
}

// RemoveMatchedGroupIDs removes the "matched_groups" edge to MatchedGroup entities by IDs.
func (_u *ValidationRunUpdateOne) RemoveMatchedGroupIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.RemoveMatchedGroupIDs(ids...)
	return _u
}

// RemoveMatchedGroups removes "matched_groups" edges to MatchedGroup entities.
func (_u *ValidationRunUpdateOne) RemoveMatchedGroups(v ...*MatchedGroup) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchedGroupIDs(ids...)
}

// ClearInvalidRows clears all "invalid_rows" edges to the InvalidRow entity.
func (_u *ValidationRunUpdateOne) ClearInvalidRows() *ValidationRunUpdateOne {
	_u.mutation.ClearInvalidRows()
	return _u
}

// RemoveInvalidRowIDs removes the "invalid_rows" edge to InvalidRow entities by IDs.
func (_u *ValidationRunUpdateOne) RemoveInvalidRowIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.RemoveInvalidRowIDs(ids...)
	return _u
}

// RemoveInvalidRows removes "invalid_rows" edges to InvalidRow entities.
func (_u *ValidationRunUpdateOne) RemoveInvalidRows(v ...*InvalidRow) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvalidRowIDs(ids...)
}

// ClearMatchedRows clears all "matched_rows" edges to the MatchedRow entity.
func (_u *ValidationRunUpdateOne) ClearMatchedRows() *ValidationRunUpdateOne {
	_u.mutation.ClearMatchedRows()
	return _u
}

// RemoveMatchedRowIDs removes the "matched_rows" edge to MatchedRow entities by IDs.
func (_u *ValidationRunUpdateOne) RemoveMatchedRowIDs(ids ...int) *ValidationRunUpdateOne {
	_u.mutation.RemoveMatchedRowIDs(ids...)
	return _u
}

// RemoveMatchedRows removes "matched_rows" edges to MatchedRow entities.
func (_u *ValidationRunUpdateOne) RemoveMatchedRows(v ...*MatchedRow) *ValidationRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchedRowIDs(ids...)
}

// Where appends a list predicates to the ValidationRunUpdate builder.
func (_u *ValidationRunUpdateOne) Where(ps ...predicate.ValidationRun) *ValidationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationRunUpdateOne) Select(field string, fields ...string) *ValidationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationRun entity.
func (_u *ValidationRunUpdateOne) Save(ctx context.Context) (*ValidationRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRunUpdateOne) SaveX(ctx context.Context) *ValidationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ValidationRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := validationrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRunUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := validationrun.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := validationrun.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCategory(); ok {
		if err := validationrun.DocumentCategoryValidator(v); err != nil {
			return &ValidationError{Name: "document_category", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.document_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := validationrun.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := validationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationRunUpdateOne) sqlSave(ctx context.Context) (_node *ValidationRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrun.Table, validationrun.Columns, sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationrun.FieldID)
		for _, f := range fields {
			if !validationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationrun.FieldID {
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
		_spec.SetField(validationrun.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(validationrun.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentCategory(); ok {
		_spec.SetField(validationrun.FieldDocumentCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(validationrun.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(validationrun.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(validationrun.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(validationrun.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(validationrun.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchedRecords(); ok {
		_spec.SetField(validationrun.FieldMatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchedRecords(); ok {
		_spec.AddField(validationrun.FieldMatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MismatchedRecords(); ok {
		_spec.SetField(validationrun.FieldMismatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMismatchedRecords(); ok {
		_spec.AddField(validationrun.FieldMismatchedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingDetails(); ok {
		_spec.SetField(validationrun.FieldProcessingDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationrun.FieldProcessingDetails, value)
		})
	}
	if _u.mutation.ProcessingDetailsCleared() {
		_spec.ClearField(validationrun.FieldProcessingDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(validationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(validationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(validationrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvalidGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidGroupsTable,
			Columns: []string{validationrun.InvalidGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvalidGroupsIDs(); len(nodes) > 0 && !_u.mutation.InvalidGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidGroupsTable,
			Columns: []string{validationrun.InvalidGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvalidGroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidGroupsTable,
			Columns: []string{validationrun.InvalidGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchedGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedGroupsTable,
			Columns: []string{validationrun.MatchedGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchedGroupsIDs(); len(nodes) > 0 && !_u.mutation.MatchedGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedGroupsTable,
			Columns: []string{validationrun.MatchedGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchedGroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedGroupsTable,
			Columns: []string{validationrun.MatchedGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvalidRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidRowsTable,
			Columns: []string{validationrun.InvalidRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvalidRowsIDs(); len(nodes) > 0 && !_u.mutation.InvalidRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidRowsTable,
			Columns: []string{validationrun.InvalidRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvalidRowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.InvalidRowsTable,
			Columns: []string{validationrun.InvalidRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchedRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedRowsTable,
			Columns: []string{validationrun.MatchedRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchedRowsIDs(); len(nodes) > 0 && !_u.mutation.MatchedRowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedRowsTable,
			Columns: []string{validationrun.MatchedRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchedRowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   validationrun.MatchedRowsTable,
			Columns: []string{validationrun.MatchedRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ValidationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
