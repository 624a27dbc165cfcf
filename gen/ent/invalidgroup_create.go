// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// InvalidGroupCreate is the builder for creating a InvalidGroup entity.
type InvalidGroupCreate struct {
	config
	mutation *InvalidGroupMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *InvalidGroupCreate) SetRunID(v uuid.UUID) *InvalidGroupCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetConnector sets the "connector" field.
func (_c *InvalidGroupCreate) SetConnector(v string) *InvalidGroupCreate {
	_c.mutation.SetConnector(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InvalidGroupCreate) SetCategory(v string) *InvalidGroupCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetErrorText sets the "error_text" field.
func (_c *InvalidGroupCreate) SetErrorText(v string) *InvalidGroupCreate {
	_c.mutation.SetErrorText(v)
	return _c
}

// SetUploadedTotal sets the "uploaded_total" field.
func (_c *InvalidGroupCreate) SetUploadedTotal(v float64) *InvalidGroupCreate {
	_c.mutation.SetUploadedTotal(v)
	return _c
}

// SetSourceTotal sets the "source_total" field.
func (_c *InvalidGroupCreate) SetSourceTotal(v float64) *InvalidGroupCreate {
	_c.mutation.SetSourceTotal(v)
	return _c
}

// SetDiscrepancyValue sets the "discrepancy_value" field.
func (_c *InvalidGroupCreate) SetDiscrepancyValue(v float64) *InvalidGroupCreate {
	_c.mutation.SetDiscrepancyValue(v)
	return _c
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_c *InvalidGroupCreate) SetRun(v *ValidationRun) *InvalidGroupCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the InvalidGroupMutation object of the builder.
func (_c *InvalidGroupCreate) Mutation() *InvalidGroupMutation {
	return _c.mutation
}

// Save creates the InvalidGroup in the database.
func (_c *InvalidGroupCreate) Save(ctx context.Context) (*InvalidGroup, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvalidGroupCreate) SaveX(ctx context.Context) *InvalidGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvalidGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvalidGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvalidGroupCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "InvalidGroup.run_id"`)}
	}
	if _, ok := _c.mutation.Connector(); !ok {
		return &ValidationError{Name: "connector", err: errors.New(`ent: missing required field "InvalidGroup.connector"`)}
	}
	if v, ok := _c.mutation.Connector(); ok {
		if err := invalidgroup.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.connector": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "InvalidGroup.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := invalidgroup.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorText(); !ok {
		return &ValidationError{Name: "error_text", err: errors.New(`ent: missing required field "InvalidGroup.error_text"`)}
	}
	if v, ok := _c.mutation.ErrorText(); ok {
		if err := invalidgroup.ErrorTextValidator(v); err != nil {
			return &ValidationError{Name: "error_text", err: fmt.Errorf(`ent: validator failed for field "InvalidGroup.error_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedTotal(); !ok {
		return &ValidationError{Name: "uploaded_total", err: errors.New(`ent: missing required field "InvalidGroup.uploaded_total"`)}
	}
	if _, ok := _c.mutation.SourceTotal(); !ok {
		return &ValidationError{Name: "source_total", err: errors.New(`ent: missing required field "InvalidGroup.source_total"`)}
	}
	if _, ok := _c.mutation.DiscrepancyValue(); !ok {
		return &ValidationError{Name: "discrepancy_value", err: errors.New(`ent: missing required field "InvalidGroup.discrepancy_value"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "InvalidGroup.run"`)}
	}
	return nil
}

func (_c *InvalidGroupCreate) sqlSave(ctx context.Context) (*InvalidGroup, error) {
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

func (_c *InvalidGroupCreate) createSpec() (*InvalidGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &InvalidGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invalidgroup.Table, sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Connector(); ok {
		_spec.SetField(invalidgroup.FieldConnector, field.TypeString, value)
		_node.Connector = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(invalidgroup.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ErrorText(); ok {
		_spec.SetField(invalidgroup.FieldErrorText, field.TypeString, value)
		_node.ErrorText = value
	}
	if value, ok := _c.mutation.UploadedTotal(); ok {
		_spec.SetField(invalidgroup.FieldUploadedTotal, field.TypeFloat64, value)
		_node.UploadedTotal = value
	}
	if value, ok := _c.mutation.SourceTotal(); ok {
		_spec.SetField(invalidgroup.FieldSourceTotal, field.TypeFloat64, value)
		_node.SourceTotal = value
	}
	if value, ok := _c.mutation.DiscrepancyValue(); ok {
		_spec.SetField(invalidgroup.FieldDiscrepancyValue, field.TypeFloat64, value)
		_node.DiscrepancyValue = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvalidGroupCreateBulk is the builder for creating many InvalidGroup entities in bulk.
type InvalidGroupCreateBulk struct {
	config
	err      error
	builders []*InvalidGroupCreate
}

// Save creates the InvalidGroup entities in the database.
func (_c *InvalidGroupCreateBulk) Save(ctx context.Context) ([]*InvalidGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvalidGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvalidGroupMutation)
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
func (_c *InvalidGroupCreateBulk) SaveX(ctx context.Context) []*InvalidGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvalidGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvalidGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
