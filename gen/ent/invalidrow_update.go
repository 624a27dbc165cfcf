// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// InvalidRowUpdate is the builder for updating InvalidRow entities.
type InvalidRowUpdate struct {
	config
	hooks    []Hook
	mutation *InvalidRowMutation
}

// Where appends a list predicates to the InvalidRowUpdate builder.
func (_u *InvalidRowUpdate) Where(ps ...predicate.InvalidRow) *InvalidRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *InvalidRowUpdate) SetRunID(v uuid.UUID) *InvalidRowUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *InvalidRowUpdate) SetNillableRunID(v *uuid.UUID) *InvalidRowUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *InvalidRowUpdate) SetConnector(v string) *InvalidRowUpdate {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *InvalidRowUpdate) SetNillableConnector(v *string) *InvalidRowUpdate {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *InvalidRowUpdate) SetRowIndex(v int) *InvalidRowUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *InvalidRowUpdate) SetNillableRowIndex(v *int) *InvalidRowUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *InvalidRowUpdate) AddRowIndex(v int) *InvalidRowUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvalidRowUpdate) SetCategory(v string) *InvalidRowUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvalidRowUpdate) SetNillableCategory(v *string) *InvalidRowUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *InvalidRowUpdate) SetErrorText(v string) *InvalidRowUpdate {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *InvalidRowUpdate) SetNillableErrorText(v *string) *InvalidRowUpdate {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// SetUploadedValue sets the "uploaded_value" field.
func (_u *InvalidRowUpdate) SetUploadedValue(v float64) *InvalidRowUpdate {
	_u.mutation.ResetUploadedValue()
	_u.mutation.SetUploadedValue(v)
	return _u
}

// SetNillableUploadedValue sets the "uploaded_value" field if the given value is not nil.
func (_u *InvalidRowUpdate) SetNillableUploadedValue(v *float64) *InvalidRowUpdate {
	if v != nil {
		_u.SetUploadedValue(*v)
	}
	return _u
}

// AddUploadedValue adds value to the "uploaded_value" field.
func (_u *InvalidRowUpdate) AddUploadedValue(v float64) *InvalidRowUpdate {
	_u.mutation.AddUploadedValue(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *InvalidRowUpdate) SetRun(v *ValidationRun) *InvalidRowUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the InvalidRowMutation object of the builder.
func (_u *InvalidRowUpdate) Mutation() *InvalidRowMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *InvalidRowUpdate) ClearRun() *InvalidRowUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvalidRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvalidRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvalidRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvalidRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvalidRowUpdate) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := invalidrow.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := invalidrow.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorText(); ok {
		if err := invalidrow.ErrorTextValidator(v); err != nil {
			return &ValidationError{Name: "error_text", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.error_text": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvalidRow.run"`)
	}
	return nil
}

func (_u *InvalidRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invalidrow.Table, invalidrow.Columns, sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(invalidrow.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(invalidrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(invalidrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invalidrow.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(invalidrow.FieldErrorText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedValue(); ok {
		_spec.SetField(invalidrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedValue(); ok {
		_spec.AddField(invalidrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invalidrow.RunTable,
			Columns: []string{invalidrow.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invalidrow.RunTable,
			Columns: []string{invalidrow.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invalidrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvalidRowUpdateOne is the builder for updating a single InvalidRow entity.
type InvalidRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvalidRowMutation
}

// SetRunID sets the "run_id" field.
func (_u *InvalidRowUpdateOne) SetRunID(v uuid.UUID) *InvalidRowUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *InvalidRowUpdateOne) SetNillableRunID(v *uuid.UUID) *InvalidRowUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *InvalidRowUpdateOne) SetConnector(v string) *InvalidRowUpdateOne {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *InvalidRowUpdateOne) SetNillableConnector(v *string) *InvalidRowUpdateOne {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *InvalidRowUpdateOne) SetRowIndex(v int) *InvalidRowUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *InvalidRowUpdateOne) SetNillableRowIndex(v *int) *InvalidRowUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *InvalidRowUpdateOne) AddRowIndex(v int) *InvalidRowUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvalidRowUpdateOne) SetCategory(v string) *InvalidRowUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvalidRowUpdateOne) SetNillableCategory(v *string) *InvalidRowUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *InvalidRowUpdateOne) SetErrorText(v string) *InvalidRowUpdateOne {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *InvalidRowUpdateOne) SetNillableErrorText(v *string) *InvalidRowUpdateOne {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// SetUploadedValue sets the "uploaded_value" field.
func (_u *InvalidRowUpdateOne) SetUploadedValue(v float64) *InvalidRowUpdateOne {
	_u.mutation.ResetUploadedValue()
	_u.mutation.SetUploadedValue(v)
	return _u
}

// SetNillableUploadedValue sets the "uploaded_value" field if the given value is not nil.
func (_u *InvalidRowUpdateOne) SetNillableUploadedValue(v *float64) *InvalidRowUpdateOne {
	if v != nil {
		_u.SetUploadedValue(*v)
	}
	return _u
}

// AddUploadedValue adds value to the "uploaded_value" field.
func (_u *InvalidRowUpdateOne) AddUploadedValue(v float64) *InvalidRowUpdateOne {
	_u.mutation.AddUploadedValue(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *InvalidRowUpdateOne) SetRun(v *ValidationRun) *InvalidRowUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the InvalidRowMutation object of the builder.
func (_u *InvalidRowUpdateOne) Mutation() *InvalidRowMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *InvalidRowUpdateOne) ClearRun() *InvalidRowUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the InvalidRowUpdate builder.
func (_u *InvalidRowUpdateOne) Where(ps ...predicate.InvalidRow) *InvalidRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvalidRowUpdateOne) Select(field string, fields ...string) *InvalidRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvalidRow entity.
func (_u *InvalidRowUpdateOne) Save(ctx context.Context) (*InvalidRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvalidRowUpdateOne) SaveX(ctx context.Context) *InvalidRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvalidRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvalidRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvalidRowUpdateOne) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := invalidrow.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := invalidrow.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorText(); ok {
		if err := invalidrow.ErrorTextValidator(v); err != nil {
			return &ValidationError{Name: "error_text", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.error_text": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvalidRow.run"`)
	}
	return nil
}

func (_u *InvalidRowUpdateOne) sqlSave(ctx context.Context) (_node *InvalidRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invalidrow.Table, invalidrow.Columns, sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvalidRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invalidrow.FieldID)
		for _, f := range fields {
			if !invalidrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invalidrow.FieldID {
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
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(invalidrow.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(invalidrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(invalidrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invalidrow.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(invalidrow.FieldErrorText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedValue(); ok {
		_spec.SetField(invalidrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedValue(); ok {
		_spec.AddField(invalidrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invalidrow.RunTable,
			Columns: []string{invalidrow.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invalidrow.RunTable,
			Columns: []string{invalidrow.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvalidRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invalidrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
