// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// MatchedRowCreate is the builder for creating a MatchedRow entity.
type MatchedRowCreate struct {
	config
	mutation *MatchedRowMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *MatchedRowCreate) SetRunID(v uuid.UUID) *MatchedRowCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetConnector sets the "connector" field.
func (_c *MatchedRowCreate) SetConnector(v string) *MatchedRowCreate {
	_c.mutation.SetConnector(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *MatchedRowCreate) SetRowIndex(v int) *MatchedRowCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *MatchedRowCreate) SetNote(v string) *MatchedRowCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetUploadedValue sets the "uploaded_value" field.
func (_c *MatchedRowCreate) SetUploadedValue(v float64) *MatchedRowCreate {
	_c.mutation.SetUploadedValue(v)
	return _c
}

// SetSourceTotal sets the "source_total" field.
func (_c *MatchedRowCreate) SetSourceTotal(v float64) *MatchedRowCreate {
	_c.mutation.SetSourceTotal(v)
	return _c
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_c *MatchedRowCreate) SetRun(v *ValidationRun) *MatchedRowCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the MatchedRowMutation object of the builder.
func (_c *MatchedRowCreate) Mutation() *MatchedRowMutation {
	return _c.mutation
}

// Save creates the MatchedRow in the database.
func (_c *MatchedRowCreate) Save(ctx context.Context) (*MatchedRow, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchedRowCreate) SaveX(ctx context.Context) *MatchedRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchedRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchedRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchedRowCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "MatchedRow.run_id"`)}
	}
	if _, ok := _c.mutation.Connector(); !ok {
		return &ValidationError{Name: "connector", err: errors.New(`ent: missing required field "MatchedRow.connector"`)}
	}
	if v, ok := _c.mutation.Connector(); ok {
		if err := matchedrow.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "MatchedRow.connector": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "MatchedRow.row_index"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "MatchedRow.note"`)}
	}
	if v, ok := _c.mutation.Note(); ok {
		if err := matchedrow.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "MatchedRow.note": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedValue(); !ok {
		return &ValidationError{Name: "uploaded_value", err: errors.New(`ent: missing required field "MatchedRow.uploaded_value"`)}
	}
	if _, ok := _c.mutation.SourceTotal(); !ok {
		return &ValidationError{Name: "source_total", err: errors.New(`ent: missing required field "MatchedRow.source_total"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "MatchedRow.run"`)}
	}
	return nil
}

func (_c *MatchedRowCreate) sqlSave(ctx context.Context) (*MatchedRow, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatchedRowCreate) createSpec() (*MatchedRow, *sqlgraph.CreateSpec) {
	var (
		_node = &MatchedRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matchedrow.Table, sqlgraph.NewFieldSpec(matchedrow.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Connector(); ok {
		_spec.SetField(matchedrow.FieldConnector, field.TypeString, value)
		_node.Connector = value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(matchedrow.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(matchedrow.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.UploadedValue(); ok {
		_spec.SetField(matchedrow.FieldUploadedValue, field.TypeFloat64, value)
		_node.UploadedValue = value
	}
	if value, ok := _c.mutation.SourceTotal(); ok {
		_spec.SetField(matchedrow.FieldSourceTotal, field.TypeFloat64, value)
		_node.SourceTotal = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MatchedRowCreateBulk is the builder for creating many MatchedRow entities in bulk.
type MatchedRowCreateBulk struct {
	config
	err      error
	builders []*MatchedRowCreate
}

// Save creates the MatchedRow entities in the database.
func (_c *MatchedRowCreateBulk) Save(ctx context.Context) ([]*MatchedRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatchedRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchedRowMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MatchedRowCreateBulk) SaveX(ctx context.Context) []*MatchedRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchedRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchedRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
