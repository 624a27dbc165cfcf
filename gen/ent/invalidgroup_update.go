// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// InvalidGroupUpdate is the builder for updating InvalidGroup entities.
type InvalidGroupUpdate struct {
	config
	hooks    []Hook
	mutation *InvalidGroupMutation
}

// Where appends a list predicates to the InvalidGroupUpdate builder.
func (_u *InvalidGroupUpdate) Where(ps ...predicate.InvalidGroup) *InvalidGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *InvalidGroupUpdate) SetRunID(v uuid.UUID) *InvalidGroupUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *InvalidGroupUpdate) SetNillableRunID(v *uuid.UUID) *InvalidGroupUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *InvalidGroupUpdate) SetConnector(v string) *InvalidGroupUpdate {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *InvalidGroupUpdate) SetNillableConnector(v *string) *InvalidGroupUpdate {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvalidGroupUpdate) SetCategory(v string) *InvalidGroupUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvalidGroupUpdate) SetNillableCategory(v *string) *InvalidGroupUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *InvalidGroupUpdate) SetErrorText(v string) *InvalidGroupUpdate {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *InvalidGroupUpdate) SetNillableErrorText(v *string) *InvalidGroupUpdate {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// SetUploadedTotal sets the "uploaded_total" field.
func (_u *InvalidGroupUpdate) SetUploadedTotal(v float64) *InvalidGroupUpdate {
	_u.mutation.ResetUploadedTotal()
	_u.mutation.SetUploadedTotal(v)
	return _u
}

// SetNillableUploadedTotal sets the "uploaded_total" field if the given value is not nil.
func (_u *InvalidGroupUpdate) SetNillableUploadedTotal(v *float64) *InvalidGroupUpdate {
	if v != nil {
		_u.SetUploadedTotal(*v)
	}
	return _u
}

// AddUploadedTotal adds value to the "uploaded_total" field.
func (_u *InvalidGroupUpdate) AddUploadedTotal(v float64) *InvalidGroupUpdate {
	_u.mutation.AddUploadedTotal(v)
	return _u
}

// SetSourceTotal sets the "source_total" field.
func (_u *InvalidGroupUpdate) SetSourceTotal(v float64) *InvalidGroupUpdate {
	_u.mutation.ResetSourceTotal()
	_u.mutation.SetSourceTotal(v)
	return _u
}

// SetNillableSourceTotal sets the "source_total" field if the given value is not nil.
func (_u *InvalidGroupUpdate) SetNillableSourceTotal(v *float64) *InvalidGroupUpdate {
	if v != nil {
		_u.SetSourceTotal(*v)
	}
	return _u
}

// AddSourceTotal adds value to the "source_total" field.
func (_u *InvalidGroupUpdate) AddSourceTotal(v float64) *InvalidGroupUpdate {
	_u.mutation.AddSourceTotal(v)
	return _u
}

// SetDiscrepancyValue sets the "discrepancy_value" field.
func (_u *InvalidGroupUpdate) SetDiscrepancyValue(v float64) *InvalidGroupUpdate {
	_u.mutation.ResetDiscrepancyValue()
	_u.mutation.SetDiscrepancyValue(v)
	return _u
}

// SetNillableDiscrepancyValue sets the "discrepancy_value" field if the given value is not nil.
func (_u *InvalidGroupUpdate) SetNillableDiscrepancyValue(v *float64) *InvalidGroupUpdate {
	if v != nil {
		_u.SetDiscrepancyValue(*v)
	}
	return _u
}

// AddDiscrepancyValue adds value to the "discrepancy_value" field.
func (_u *InvalidGroupUpdate) AddDiscrepancyValue(v float64) *InvalidGroupUpdate {
	_u.mutation.AddDiscrepancyValue(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *InvalidGroupUpdate) SetRun(v *ValidationRun) *InvalidGroupUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the InvalidGroupMutation object of the builder.
func (_u *InvalidGroupUpdate) Mutation() *InvalidGroupMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *InvalidGroupUpdate) ClearRun() *InvalidGroupUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvalidGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvalidGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvalidGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvalidGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvalidGroupUpdate) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := invalidgroup.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := invalidgroup.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorText(); ok {
		if err := invalidgroup.ErrorTextValidator(v); err != nil {
			return &ValidationError{Name: "error_text", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.error_text": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvalidGroup.run"`)
	}
	return nil
}

func (_u *InvalidGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invalidgroup.Table, invalidgroup.Columns, sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(invalidgroup.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invalidgroup.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(invalidgroup.FieldErrorText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedTotal(); ok {
		_spec.SetField(invalidgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedTotal(); ok {
		_spec.AddField(invalidgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTotal(); ok {
		_spec.SetField(invalidgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSourceTotal(); ok {
		_spec.AddField(invalidgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscrepancyValue(); ok {
		_spec.SetField(invalidgroup.FieldDiscrepancyValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrepancyValue(); ok {
		_spec.AddField(invalidgroup.FieldDiscrepancyValue, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invalidgroup.RunTable,
			Columns: []string{invalidgroup.RunColumn},
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
			Table:   invalidgroup.RunTable,
			Columns: []string{invalidgroup.RunColumn},
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
			err = &NotFoundError{invalidgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvalidGroupUpdateOne is the builder for updating a single InvalidGroup entity.
type InvalidGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvalidGroupMutation
}

// SetRunID sets the "run_id" field.
func (_u *InvalidGroupUpdateOne) SetRunID(v uuid.UUID) *InvalidGroupUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *InvalidGroupUpdateOne) SetNillableRunID(v *uuid.UUID) *InvalidGroupUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *InvalidGroupUpdateOne) SetConnector(v string) *InvalidGroupUpdateOne {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *InvalidGroupUpdateOne) SetNillableConnector(v *string) *InvalidGroupUpdateOne {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvalidGroupUpdateOne) SetCategory(v string) *InvalidGroupUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvalidGroupUpdateOne) SetNillableCategory(v *string) *InvalidGroupUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *InvalidGroupUpdateOne) SetErrorText(v string) *InvalidGroupUpdateOne {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *InvalidGroupUpdateOne) SetNillableErrorText(v *string) *InvalidGroupUpdateOne {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// SetUploadedTotal sets the "uploaded_total" field.
func (_u *InvalidGroupUpdateOne) SetUploadedTotal(v float64) *InvalidGroupUpdateOne {
	_u.mutation.ResetUploadedTotal()
	_u.mutation.SetUploadedTotal(v)
	return _u
}

// SetNillableUploadedTotal sets the "uploaded_total" field if the given value is not nil.
func (_u *InvalidGroupUpdateOne) SetNillableUploadedTotal(v *float64) *InvalidGroupUpdateOne {
	if v != nil {
		_u.SetUploadedTotal(*v)
	}
	return _u
}

// AddUploadedTotal adds value to the "uploaded_total" field.
func (_u *InvalidGroupUpdateOne) AddUploadedTotal(v float64) *InvalidGroupUpdateOne {
	_u.mutation.AddUploadedTotal(v)
	return _u
}

// SetSourceTotal sets the "source_total" field.
func (_u *InvalidGroupUpdateOne) SetSourceTotal(v float64) *InvalidGroupUpdateOne {
	_u.mutation.ResetSourceTotal()
	_u.mutation.SetSourceTotal(v)
	return _u
}

// SetNillableSourceTotal sets the "source_total" field if the given value is not nil.
func (_u *InvalidGroupUpdateOne) SetNillableSourceTotal(v *float64) *InvalidGroupUpdateOne {
	if v != nil {
		_u.SetSourceTotal(*v)
	}
	return _u
}

// AddSourceTotal adds value to the "source_total" field.
func (_u *InvalidGroupUpdateOne) AddSourceTotal(v float64) *InvalidGroupUpdateOne {
	_u.mutation.AddSourceTotal(v)
	return _u
}

// SetDiscrepancyValue sets the "discrepancy_value" field.
func (_u *InvalidGroupUpdateOne) SetDiscrepancyValue(v float64) *InvalidGroupUpdateOne {
	_u.mutation.ResetDiscrepancyValue()
	_u.mutation.SetDiscrepancyValue(v)
	return _u
}

// SetNillableDiscrepancyValue sets the "discrepancy_value" field if the given value is not nil.
func (_u *InvalidGroupUpdateOne) SetNillableDiscrepancyValue(v *float64) *InvalidGroupUpdateOne {
	if v != nil {
		_u.SetDiscrepancyValue(*v)
	}
	return _u
}

// AddDiscrepancyValue adds value to the "discrepancy_value" field.
func (_u *InvalidGroupUpdateOne) AddDiscrepancyValue(v float64) *InvalidGroupUpdateOne {
	_u.mutation.AddDiscrepancyValue(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *InvalidGroupUpdateOne) SetRun(v *ValidationRun) *InvalidGroupUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the InvalidGroupMutation object of the builder.
func (_u *InvalidGroupUpdateOne) Mutation() *InvalidGroupMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *InvalidGroupUpdateOne) ClearRun() *InvalidGroupUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the InvalidGroupUpdate builder.
func (_u *InvalidGroupUpdateOne) Where(ps ...predicate.InvalidGroup) *InvalidGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvalidGroupUpdateOne) Select(field string, fields ...string) *InvalidGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvalidGroup entity.
func (_u *InvalidGroupUpdateOne) Save(ctx context.Context) (*InvalidGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvalidGroupUpdateOne) SaveX(ctx context.Context) *InvalidGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvalidGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvalidGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvalidGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := invalidgroup.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := invalidgroup.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorText(); ok {
		if err := invalidgroup.ErrorTextValidator(v); err != nil {
			return &ValidationError{Name: "error_text", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.error_text": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvalidGroup.run"`)
	}
	return nil
}

func (_u *InvalidGroupUpdateOne) sqlSave(ctx context.Context) (_node *InvalidGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invalidgroup.Table, invalidgroup.Columns, sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvalidGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invalidgroup.FieldID)
		for _, f := range fields {
			if !invalidgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invalidgroup.FieldID {
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
		_spec.SetField(invalidgroup.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invalidgroup.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(invalidgroup.FieldErrorText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedTotal(); ok {
		_spec.SetField(invalidgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedTotal(); ok {
		_spec.AddField(invalidgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTotal(); ok {
		_spec.SetField(invalidgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSourceTotal(); ok {
		_spec.AddField(invalidgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscrepancyValue(); ok {
		_spec.SetField(invalidgroup.FieldDiscrepancyValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrepancyValue(); ok {
		_spec.AddField(invalidgroup.FieldDiscrepancyValue, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invalidgroup.RunTable,
			Columns: []string{invalidgroup.RunColumn},
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
			Table:   invalidgroup.RunTable,
			Columns: []string{invalidgroup.RunColumn},
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
	_node = &InvalidGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invalidgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
