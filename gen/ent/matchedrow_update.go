// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// MatchedRowUpdate is the builder for updating MatchedRow entities.
type MatchedRowUpdate struct {
	config
	hooks    []Hook
	mutation *MatchedRowMutation
}

// Where appends a list predicates to the MatchedRowUpdate builder.
func (_u *MatchedRowUpdate) Where(ps ...predicate.MatchedRow) *MatchedRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *MatchedRowUpdate) SetRunID(v uuid.UUID) *MatchedRowUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MatchedRowUpdate) SetNillableRunID(v *uuid.UUID) *MatchedRowUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *MatchedRowUpdate) SetConnector(v string) *MatchedRowUpdate {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *MatchedRowUpdate) SetNillableConnector(v *string) *MatchedRowUpdate {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *MatchedRowUpdate) SetRowIndex(v int) *MatchedRowUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *MatchedRowUpdate) SetNillableRowIndex(v *int) *MatchedRowUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *MatchedRowUpdate) AddRowIndex(v int) *MatchedRowUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *MatchedRowUpdate) SetNote(v string) *MatchedRowUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MatchedRowUpdate) SetNillableNote(v *string) *MatchedRowUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetUploadedValue sets the "uploaded_value" field.
func (_u *MatchedRowUpdate) SetUploadedValue(v float64) *MatchedRowUpdate {
	_u.mutation.ResetUploadedValue()
	_u.mutation.SetUploadedValue(v)
	return _u
}

// SetNillableUploadedValue sets the "uploaded_value" field if the given value is not nil.
func (_u *MatchedRowUpdate) SetNillableUploadedValue(v *float64) *MatchedRowUpdate {
	if v != nil {
		_u.SetUploadedValue(*v)
	}
	return _u
}

// AddUploadedValue adds value to the "uploaded_value" field.
func (_u *MatchedRowUpdate) AddUploadedValue(v float64) *MatchedRowUpdate {
	_u.mutation.AddUploadedValue(v)
	return _u
}

// SetSourceTotal sets the "source_total" field.
func (_u *MatchedRowUpdate) SetSourceTotal(v float64) *MatchedRowUpdate {
	_u.mutation.ResetSourceTotal()
	_u.mutation.SetSourceTotal(v)
	return _u
}

// SetNillableSourceTotal sets the "source_total" field if the given value is not nil.
func (_u *MatchedRowUpdate) SetNillableSourceTotal(v *float64) *MatchedRowUpdate {
	if v != nil {
		_u.SetSourceTotal(*v)
	}
	return _u
}

// AddSourceTotal adds value to the "source_total" field.
func (_u *MatchedRowUpdate) AddSourceTotal(v float64) *MatchedRowUpdate {
	_u.mutation.AddSourceTotal(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *MatchedRowUpdate) SetRun(v *ValidationRun) *MatchedRowUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the MatchedRowMutation object of the builder.
func (_u *MatchedRowUpdate) Mutation() *MatchedRowMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *MatchedRowUpdate) ClearRun() *MatchedRowUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchedRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchedRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchedRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchedRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchedRowUpdate) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := matchedrow.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "MatchedRow.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := matchedrow.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "MatchedRow.note": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchedRow.run"`)
	}
	return nil
}

func (_u *MatchedRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchedrow.Table, matchedrow.Columns, sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(matchedrow.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(matchedrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(matchedrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(matchedrow.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedValue(); ok {
		_spec.SetField(matchedrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedValue(); ok {
		_spec.AddField(matchedrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTotal(); ok {
		_spec.SetField(matchedrow.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSourceTotal(); ok {
		_spec.AddField(matchedrow.FieldSourceTotal, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchedrow.RunTable,
			Columns: []string{matchedrow.RunColumn},
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
			Table:   matchedrow.RunTable,
			Columns: []string{matchedrow.RunColumn},
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
			err = &NotFoundError{matchedrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchedRowUpdateOne is the builder for updating a single MatchedRow entity.
type MatchedRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchedRowMutation
}

// SetRunID sets the "run_id" field.
func (_u *MatchedRowUpdateOne) SetRunID(v uuid.UUID) *MatchedRowUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MatchedRowUpdateOne) SetNillableRunID(v *uuid.UUID) *MatchedRowUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *MatchedRowUpdateOne) SetConnector(v string) *MatchedRowUpdateOne {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *MatchedRowUpdateOne) SetNillableConnector(v *string) *MatchedRowUpdateOne {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *MatchedRowUpdateOne) SetRowIndex(v int) *MatchedRowUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *MatchedRowUpdateOne) SetNillableRowIndex(v *int) *MatchedRowUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *MatchedRowUpdateOne) AddRowIndex(v int) *MatchedRowUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *MatchedRowUpdateOne) SetNote(v string) *MatchedRowUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MatchedRowUpdateOne) SetNillableNote(v *string) *MatchedRowUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetUploadedValue sets the "uploaded_value" field.
func (_u *MatchedRowUpdateOne) SetUploadedValue(v float64) *MatchedRowUpdateOne {
	_u.mutation.ResetUploadedValue()
	_u.mutation.SetUploadedValue(v)
	return _u
}

// SetNillableUploadedValue sets the "uploaded_value" field if the given value is not nil.
func (_u *MatchedRowUpdateOne) SetNillableUploadedValue(v *float64) *MatchedRowUpdateOne {
	if v != nil {
		_u.SetUploadedValue(*v)
	}
	return _u
}

// AddUploadedValue adds value to the "uploaded_value" field.
func (_u *MatchedRowUpdateOne) AddUploadedValue(v float64) *MatchedRowUpdateOne {
	_u.mutation.AddUploadedValue(v)
	return _u
}

// SetSourceTotal sets the "source_total" field.
func (_u *MatchedRowUpdateOne) SetSourceTotal(v float64) *MatchedRowUpdateOne {
	_u.mutation.ResetSourceTotal()
	_u.mutation.SetSourceTotal(v)
	return _u
}

// SetNillableSourceTotal sets the "source_total" field if the given value is not nil.
func (_u *MatchedRowUpdateOne) SetNillableSourceTotal(v *float64) *MatchedRowUpdateOne {
	if v != nil {
		_u.SetSourceTotal(*v)
	}
	return _u
}

// AddSourceTotal adds value to the "source_total" field.
func (_u *MatchedRowUpdateOne) AddSourceTotal(v float64) *MatchedRowUpdateOne {
	_u.mutation.AddSourceTotal(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *MatchedRowUpdateOne) SetRun(v *ValidationRun) *MatchedRowUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the MatchedRowMutation object of the builder.
func (_u *MatchedRowUpdateOne) Mutation() *MatchedRowMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *MatchedRowUpdateOne) ClearRun() *MatchedRowUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the MatchedRowUpdate builder.
func (_u *MatchedRowUpdateOne) Where(ps ...predicate.MatchedRow) *MatchedRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchedRowUpdateOne) Select(field string, fields ...string) *MatchedRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatchedRow entity.
func (_u *MatchedRowUpdateOne) Save(ctx context.Context) (*MatchedRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchedRowUpdateOne) SaveX(ctx context.Context) *MatchedRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchedRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchedRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchedRowUpdateOne) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := matchedrow.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "MatchedRow.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := matchedrow.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "MatchedRow.note": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchedRow.run"`)
	}
	return nil
}

func (_u *MatchedRowUpdateOne) sqlSave(ctx context.Context) (_node *MatchedRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchedrow.Table, matchedrow.Columns, sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatchedRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matchedrow.FieldID)
		for _, f := range fields {
			if !matchedrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matchedrow.FieldID {
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
		_spec.SetField(matchedrow.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(matchedrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(matchedrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(matchedrow.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedValue(); ok {
		_spec.SetField(matchedrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedValue(); ok {
		_spec.AddField(matchedrow.FieldUploadedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTotal(); ok {
		_spec.SetField(matchedrow.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSourceTotal(); ok {
		_spec.AddField(matchedrow.FieldSourceTotal, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchedrow.RunTable,
			Columns: []string{matchedrow.RunColumn},
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
			Table:   matchedrow.RunTable,
			Columns: []string{matchedrow.RunColumn},
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
	_node = &MatchedRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchedrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
