// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// InvalidRowCreate is the builder for creating a InvalidRow entity.
type InvalidRowCreate struct {
	config
	mutation *InvalidRowMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *InvalidRowCreate) SetRunID(v uuid.UUID) *InvalidRowCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetConnector sets the "connector" field.
func (_c *InvalidRowCreate) SetConnector(v string) *InvalidRowCreate {
	_c.mutation.SetConnector(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *InvalidRowCreate) SetRowIndex(v int) *InvalidRowCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InvalidRowCreate) SetCategory(v string) *InvalidRowCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetErrorText sets the "error_text" field.
func (_c *InvalidRowCreate) SetErrorText(v string) *InvalidRowCreate {
	_c.mutation.SetErrorText(v)
	return _c
}

// SetUploadedValue sets the "uploaded_value" field.
func (_c *InvalidRowCreate) SetUploadedValue(v float64) *InvalidRowCreate {
	_c.mutation.SetUploadedValue(v)
	return _c
}

// SetRun sets the "run" edge to the ValidationRun entity.
func (_c *InvalidRowCreate) SetRun(v *ValidationRun) *InvalidRowCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the InvalidRowMutation object of the builder.
func (_c *InvalidRowCreate) Mutation() *InvalidRowMutation {
	return _c.mutation
}

// Save creates the InvalidRow in the database.
func (_c *InvalidRowCreate) Save(ctx context.Context) (*InvalidRow, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvalidRowCreate) SaveX(ctx context.Context) *InvalidRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvalidRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvalidRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvalidRowCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "InvalidRow.run_id"`)}
	}
	if _, ok := _c.mutation.Connector(); !ok {
		return &ValidationError{Name: "connector", err: errors.New(`ent: missing required field "InvalidRow.connector"`)}
	}
	if v, ok := _c.mutation.Connector(); ok {
		if err := invalidrow.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.connector": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "InvalidRow.row_index"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "InvalidRow.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := invalidrow.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorText(); !ok {
		return &ValidationError{Name: "error_text", err: errors.New(`ent: missing required field "InvalidRow.error_text"`)}
	}
	if v, ok := _c.mutation.ErrorText(); ok {
		if err := invalidrow.ErrorTextValidator(v); err != nil {
			return &ValidationError{Name: "error_text", err: fmt.Errorf(`ent: validator failed for field "InvalidRow.error_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedValue(); !ok {
		return &ValidationError{Name: "uploaded_value", err: errors.New(`ent: missing required field "InvalidRow.uploaded_value"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "InvalidRow.run"`)}
	}
	return nil
}

func (_c *InvalidRowCreate) sqlSave(ctx context.Context) (*InvalidRow, error) {
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

func (_c *InvalidRowCreate) createSpec() (*InvalidRow, *sqlgraph.CreateSpec) {
	var (
		_node = &InvalidRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invalidrow.Table, sqlgraph.NewFieldSpec(invalidrow.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Connector(); ok {
		_spec.SetField(invalidrow.FieldConnector, field.TypeString, value)
		_node.Connector = value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(invalidrow.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(invalidrow.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ErrorText(); ok {
		_spec.SetField(invalidrow.FieldErrorText, field.TypeString, value)
		_node.ErrorText = value
	}
	if value, ok := _c.mutation.UploadedValue(); ok {
		_spec.SetField(invalidrow.FieldUploadedValue, field.TypeFloat64, value)
		_node.UploadedValue = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvalidRowCreateBulk is the builder for creating many InvalidRow entities in bulk.
type InvalidRowCreateBulk struct {
	config
	err      error
	builders []*InvalidRowCreate
}

// Save creates the InvalidRow entities in the database.
func (_c *InvalidRowCreateBulk) Save(ctx context.Context) ([]*InvalidRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvalidRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvalidRowMutation)
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
func (_c *InvalidRowCreateBulk) SaveX(ctx context.Context) []*InvalidRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvalidRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvalidRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
