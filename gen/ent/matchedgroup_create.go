// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// MatchedGroupCreate is the builder for creating a MatchedGroup entity.
type MatchedGroupCreate struct {
	config
	mutation *MatchedGroupMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *MatchedGroupCreate) SetRunID(v uuid.UUID) *MatchedGroupCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetConnector sets the "connector" field.
func (_c *MatchedGroupCreate) SetConnector(v string) *MatchedGroupCreate {
	_c.mutation.SetConnector(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *MatchedGroupCreate) SetNote(v string) *MatchedGroupCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetUploadedTotal sets the "uploaded_total" field.
func (_c *MatchedGroupCreate) SetUploadedTotal(v float64) *MatchedGroupCreate {
	_c.mutation.SetUploadedTotal(v)
	return _c
}

// SetSourceTotal sets the "source_total" field.
func (_c *MatchedGroupCreate) SetSourceTotal(v float64) *MatchedGroupCreate {
	_c.mutation.SetSourceTotal(v)
	return _c
}

// SetDifference sets the "difference" field.
func (_c *MatchedGroupCreate) SetDifference(v float64) *MatchedGroupCreate {
	_c.mutation.SetDifference(v)
	return _c
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_c *MatchedGroupCreate) SetRun(v *ValidationRun) *MatchedGroupCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the MatchedGroupMutation object of the builder.
func (_c *MatchedGroupCreate) Mutation() *MatchedGroupMutation {
	return _c.mutation
}

// Save creates the MatchedGroup in the database.
func (_c *MatchedGroupCreate) Save(ctx context.Context) (*MatchedGroup, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchedGroupCreate) SaveX(ctx context.Context) *MatchedGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchedGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchedGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchedGroupCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "MatchedGroup.run_id"`)}
	}
	if _, ok := _c.mutation.Connector(); !ok {
		return &ValidationError{Name: "connector", err: errors.New(`ent: missing required field "MatchedGroup.connector"`)}
	}
	if v, ok := _c.mutation.Connector(); ok {
		if err := matchedgroup.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "MatchedGroup.connector": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "MatchedGroup.note"`)}
	}
	if v, ok := _c.mutation.Note(); ok {
		if err := matchedgroup.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "MatchedGroup.note": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedTotal(); !ok {
		return &ValidationError{Name: "uploaded_total", err: errors.New(`ent: missing required field "MatchedGroup.uploaded_total"`)}
	}
	if _, ok := _c.mutation.SourceTotal(); !ok {
		return &ValidationError{Name: "source_total", err: errors.New(`ent: missing required field "MatchedGroup.source_total"`)}
	}
	if _, ok := _c.mutation.Difference(); !ok {
		return &ValidationError{Name: "difference", err: errors.New(`ent: missing required field "MatchedGroup.difference"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "MatchedGroup.run"`)}
	}
	return nil
}

func (_c *MatchedGroupCreate) sqlSave(ctx context.Context) (*MatchedGroup, error) {
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

func (_c *MatchedGroupCreate) createSpec() (*MatchedGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &MatchedGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matchedgroup.Table, sqlgraph.NewFieldSpec(matchedgroup.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Connector(); ok {
		_spec.SetField(matchedgroup.FieldConnector, field.TypeString, value)
		_node.Connector = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(matchedgroup.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.UploadedTotal(); ok {
		_spec.SetField(matchedgroup.FieldUploadedTotal, field.TypeFloat64, value)
		_node.UploadedTotal = value
	}
	if value, ok := _c.mutation.SourceTotal(); ok {
		_spec.SetField(matchedgroup.FieldSourceTotal, field.TypeFloat64, value)
		_node.SourceTotal = value
	}
	if value, ok := _c.mutation.Difference(); ok {
		_spec.SetField(matchedgroup.FieldDifference, field.TypeFloat64, value)
		_node.Difference = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MatchedGroupCreateBulk is the builder for creating many MatchedGroup entities in bulk.
type MatchedGroupCreateBulk struct {
	config
	err      error
	builders []*MatchedGroupCreate
}

// Save creates the MatchedGroup entities in the database.
func (_c *MatchedGroupCreateBulk) Save(ctx context.Context) ([]*MatchedGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatchedGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchedGroupMutation)
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
func (_c *MatchedGroupCreateBulk) SaveX(ctx context.Context) []*MatchedGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchedGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchedGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
