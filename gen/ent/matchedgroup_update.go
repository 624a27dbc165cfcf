// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// MatchedGroupUpdate is the builder for updating MatchedGroup entities.
type MatchedGroupUpdate struct {
	config
	hooks    []Hook
	mutation *MatchedGroupMutation
}

// Where appends a list predicates to the MatchedGroupUpdate builder.
func (_u *MatchedGroupUpdate) Where(ps ...predicate.MatchedGroup) *MatchedGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *MatchedGroupUpdate) SetRunID(v uuid.UUID) *MatchedGroupUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MatchedGroupUpdate) SetNillableRunID(v *uuid.UUID) *MatchedGroupUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *MatchedGroupUpdate) SetConnector(v string) *MatchedGroupUpdate {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *MatchedGroupUpdate) SetNillableConnector(v *string) *MatchedGroupUpdate {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *MatchedGroupUpdate) SetNote(v string) *MatchedGroupUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MatchedGroupUpdate) SetNillableNote(v *string) *MatchedGroupUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetUploadedTotal sets the "uploaded_total" field.
func (_u *MatchedGroupUpdate) SetUploadedTotal(v float64) *MatchedGroupUpdate {
	_u.mutation.ResetUploadedTotal()
	_u.mutation.SetUploadedTotal(v)
	return _u
}

// SetNillableUploadedTotal sets the "uploaded_total" field if the given value is not nil.
func (_u *MatchedGroupUpdate) SetNillableUploadedTotal(v *float64) *MatchedGroupUpdate {
	if v != nil {
		_u.SetUploadedTotal(*v)
	}
	return _u
}

// AddUploadedTotal adds value to the "uploaded_total" field.
func (_u *MatchedGroupUpdate) AddUploadedTotal(v float64) *MatchedGroupUpdate {
	_u.mutation.AddUploadedTotal(v)
	return _u
}

// SetSourceTotal sets the "source_total" field.
func (_u *MatchedGroupUpdate) SetSourceTotal(v float64) *MatchedGroupUpdate {
	_u.mutation.ResetSourceTotal()
	_u.mutation.SetSourceTotal(v)
	return _u
}

// SetNillableSourceTotal sets the "source_total" field if the given value is not nil.
func (_u *MatchedGroupUpdate) SetNillableSourceTotal(v *float64) *MatchedGroupUpdate {
	if v != nil {
		_u.SetSourceTotal(*v)
	}
	return _u
}

// AddSourceTotal adds value to the "source_total" field.
func (_u *MatchedGroupUpdate) AddSourceTotal(v float64) *MatchedGroupUpdate {
	_u.mutation.AddSourceTotal(v)
	return _u
}

// SetDifference sets the "difference" field.
func (_u *MatchedGroupUpdate) SetDifference(v float64) *MatchedGroupUpdate {
	_u.mutation.ResetDifference()
	_u.mutation.SetDifference(v)
	return _u
}

// SetNillableDifference sets the "difference" field if the given value is not nil.
func (_u *MatchedGroupUpdate) SetNillableDifference(v *float64) *MatchedGroupUpdate {
	if v != nil {
		_u.SetDifference(*v)
	}
	return _u
}

// AddDifference adds value to the "difference" field.
func (_u *MatchedGroupUpdate) AddDifference(v float64) *MatchedGroupUpdate {
	_u.mutation.AddDifference(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *MatchedGroupUpdate) SetRun(v *ValidationRun) *MatchedGroupUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the MatchedGroupMutation object of the builder.
func (_u *MatchedGroupUpdate) Mutation() *MatchedGroupMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *MatchedGroupUpdate) ClearRun() *MatchedGroupUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchedGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchedGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchedGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchedGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchedGroupUpdate) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := matchedgroup.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "MatchedGroup.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := matchedgroup.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "MatchedGroup.note": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchedGroup.run"`)
	}
	return nil
}

func (_u *MatchedGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchedgroup.Table, matchedgroup.Columns, sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(matchedgroup.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(matchedgroup.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedTotal(); ok {
		_spec.SetField(matchedgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedTotal(); ok {
		_spec.AddField(matchedgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTotal(); ok {
		_spec.SetField(matchedgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSourceTotal(); ok {
		_spec.AddField(matchedgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difference(); ok {
		_spec.SetField(matchedgroup.FieldDifference, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifference(); ok {
		_spec.AddField(matchedgroup.FieldDifference, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchedgroup.RunTable,
			Columns: []string{matchedgroup.RunColumn},
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
			Table:   matchedgroup.RunTable,
			Columns: []string{matchedgroup.RunColumn},
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
			err = &NotFoundError{matchedgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchedGroupUpdateOne is the builder for updating a single MatchedGroup entity.
type MatchedGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchedGroupMutation
}

// SetRunID sets the "run_id" field.
func (_u *MatchedGroupUpdateOne) SetRunID(v uuid.UUID) *MatchedGroupUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MatchedGroupUpdateOne) SetNillableRunID(v *uuid.UUID) *MatchedGroupUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *MatchedGroupUpdateOne) SetConnector(v string) *MatchedGroupUpdateOne {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *MatchedGroupUpdateOne) SetNillableConnector(v *string) *MatchedGroupUpdateOne {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *MatchedGroupUpdateOne) SetNote(v string) *MatchedGroupUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MatchedGroupUpdateOne) SetNillableNote(v *string) *MatchedGroupUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetUploadedTotal sets the "uploaded_total" field.
func (_u *MatchedGroupUpdateOne) SetUploadedTotal(v float64) *MatchedGroupUpdateOne {
	_u.mutation.ResetUploadedTotal()
	_u.mutation.SetUploadedTotal(v)
	return _u
}

// SetNillableUploadedTotal sets the "uploaded_total" field if the given value is not nil.
func (_u *MatchedGroupUpdateOne) SetNillableUploadedTotal(v *float64) *MatchedGroupUpdateOne {
	if v != nil {
		_u.SetUploadedTotal(*v)
	}
	return _u
}

// AddUploadedTotal adds value to the "uploaded_total" field.
func (_u *MatchedGroupUpdateOne) AddUploadedTotal(v float64) *MatchedGroupUpdateOne {
	_u.mutation.AddUploadedTotal(v)
	return _u
}

// SetSourceTotal sets the "source_total" field.
func (_u *MatchedGroupUpdateOne) SetSourceTotal(v float64) *MatchedGroupUpdateOne {
	_u.mutation.ResetSourceTotal()
	_u.mutation.SetSourceTotal(v)
	return _u
}

// SetNillableSourceTotal sets the "source_total" field if the given value is not nil.
func (_u *MatchedGroupUpdateOne) SetNillableSourceTotal(v *float64) *MatchedGroupUpdateOne {
	if v != nil {
		_u.SetSourceTotal(*v)
	}
	return _u
}

// AddSourceTotal adds value to the "source_total" field.
func (_u *MatchedGroupUpdateOne) AddSourceTotal(v float64) *MatchedGroupUpdateOne {
	_u.mutation.AddSourceTotal(v)
	return _u
}

// SetDifference sets the "difference" field.
func (_u *MatchedGroupUpdateOne) SetDifference(v float64) *MatchedGroupUpdateOne {
	_u.mutation.ResetDifference()
	_u.mutation.SetDifference(v)
	return _u
}

// SetNillableDifference sets the "difference" field if the given value is not nil.
func (_u *MatchedGroupUpdateOne) SetNillableDifference(v *float64) *MatchedGroupUpdateOne {
	if v != nil {
		_u.SetDifference(*v)
	}
	return _u
}

// AddDifference adds value to the "difference" field.
func (_u *MatchedGroupUpdateOne) AddDifference(v float64) *MatchedGroupUpdateOne {
	_u.mutation.AddDifference(v)
	return _u
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_u *MatchedGroupUpdateOne) SetRun(v *ValidationRun) *MatchedGroupUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the MatchedGroupMutation object of the builder.
func (_u *MatchedGroupUpdateOne) Mutation() *MatchedGroupMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (_u *MatchedGroupUpdateOne) ClearRun() *MatchedGroupUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the MatchedGroupUpdate builder.
func (_u *MatchedGroupUpdateOne) Where(ps ...predicate.MatchedGroup) *MatchedGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchedGroupUpdateOne) Select(field string, fields ...string) *MatchedGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatchedGroup entity.
func (_u *MatchedGroupUpdateOne) Save(ctx context.Context) (*MatchedGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchedGroupUpdateOne) SaveX(ctx context.Context) *MatchedGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchedGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchedGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchedGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Connector(); ok {
		if err := matchedgroup.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "MatchedGroup.connector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := matchedgroup.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "MatchedGroup.note": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchedGroup.run"`)
	}
	return nil
}

func (_u *MatchedGroupUpdateOne) sqlSave(ctx context.Context) (_node *MatchedGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchedgroup.Table, matchedgroup.Columns, sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatchedGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matchedgroup.FieldID)
		for _, f := range fields {
			if !matchedgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matchedgroup.FieldID {
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
		_spec.SetField(matchedgroup.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(matchedgroup.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedTotal(); ok {
		_spec.SetField(matchedgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUploadedTotal(); ok {
		_spec.AddField(matchedgroup.FieldUploadedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTotal(); ok {
		_spec.SetField(matchedgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSourceTotal(); ok {
		_spec.AddField(matchedgroup.FieldSourceTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difference(); ok {
		_spec.SetField(matchedgroup.FieldDifference, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifference(); ok {
		_spec.AddField(matchedgroup.FieldDifference, field.TypeFloat64, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchedgroup.RunTable,
			Columns: []string{matchedgroup.RunColumn},
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
			Table:   matchedgroup.RunTable,
			Columns: []string{matchedgroup.RunColumn},
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
	_node = &MatchedGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchedgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
