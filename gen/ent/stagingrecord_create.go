// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/stagingrecord"
	"github.com/google/uuid"
)

// StagingRecordCreate is the builder for creating a StagingRecord entity.
type StagingRecordCreate struct {
	config
	mutation *StagingRecordMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *StagingRecordCreate) SetFilename(v string) *StagingRecordCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *StagingRecordCreate) SetDocumentType(v string) *StagingRecordCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetDocumentCategory sets the "document_category" field.
func (_c *StagingRecordCreate) SetDocumentCategory(v string) *StagingRecordCreate {
	_c.mutation.SetDocumentCategory(v)
	return _c
}

// SetHeaderRow sets the "header_row" field.
func (_c *StagingRecordCreate) SetHeaderRow(v int) *StagingRecordCreate {
	_c.mutation.SetHeaderRow(v)
	return _c
}

// SetNillableHeaderRow sets the "header_row" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableHeaderRow(v *int) *StagingRecordCreate {
	if v != nil {
		_c.SetHeaderRow(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *StagingRecordCreate) SetUserID(v string) *StagingRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConnector sets the "connector" field.
func (_c *StagingRecordCreate) SetConnector(v string) *StagingRecordCreate {
	_c.mutation.SetConnector(v)
	return _c
}

// SetSumValue sets the "sum_value" field.
func (_c *StagingRecordCreate) SetSumValue(v float64) *StagingRecordCreate {
	_c.mutation.SetSumValue(v)
	return _c
}

// SetBranchCode sets the "branch_code" field.
func (_c *StagingRecordCreate) SetBranchCode(v string) *StagingRecordCreate {
	_c.mutation.SetBranchCode(v)
	return _c
}

// SetNillableBranchCode sets the "branch_code" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableBranchCode(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetBranchCode(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *StagingRecordCreate) SetBranchName(v string) *StagingRecordCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableBranchName(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetOutletCode sets the "outlet_code" field.
func (_c *StagingRecordCreate) SetOutletCode(v string) *StagingRecordCreate {
	_c.mutation.SetOutletCode(v)
	return _c
}

// SetNillableOutletCode sets the "outlet_code" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableOutletCode(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetOutletCode(*v)
	}
	return _c
}

// SetOutletName sets the "outlet_name" field.
func (_c *StagingRecordCreate) SetOutletName(v string) *StagingRecordCreate {
	_c.mutation.SetOutletName(v)
	return _c
}

// SetNillableOutletName sets the "outlet_name" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableOutletName(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetOutletName(*v)
	}
	return _c
}

// SetDocDate sets the "doc_date" field.
func (_c *StagingRecordCreate) SetDocDate(v time.Time) *StagingRecordCreate {
	_c.mutation.SetDocDate(v)
	return _c
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableDocDate(v *time.Time) *StagingRecordCreate {
	if v != nil {
		_c.SetDocDate(*v)
	}
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *StagingRecordCreate) SetRowIndex(v int) *StagingRecordCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingRecordCreate) SetCreatedAt(v time.Time) *StagingRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableCreatedAt(v *time.Time) *StagingRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StagingRecordCreate) SetID(v uuid.UUID) *StagingRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableID(v *uuid.UUID) *StagingRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StagingRecordMutation object of the builder.
func (_c *StagingRecordCreate) Mutation() *StagingRecordMutation {
	return _c.mutation
}

// Save creates the StagingRecord in the database.
func (_c *StagingRecordCreate) Save(ctx context.Context) (*StagingRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingRecordCreate) SaveX(ctx context.Context) *StagingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingRecordCreate) defaults() {
	if _, ok := _c.mutation.HeaderRow(); !ok {
		v := stagingrecord.DefaultHeaderRow
		_c.mutation.SetHeaderRow(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stagingrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingRecordCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "StagingRecord.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := stagingrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "StagingRecord.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := stagingrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentCategory(); !ok {
		return &ValidationError{Name: "document_category", err: errors.New(`ent: missing required field "StagingRecord.document_category"`)}
	}
	if v, ok := _c.mutation.DocumentCategory(); ok {
		if err := stagingrecord.DocumentCategoryValidator(v); err != nil {
			return &ValidationError{Name: "document_category", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HeaderRow(); !ok {
		return &ValidationError{Name: "header_row", err: errors.New(`ent: missing required field "StagingRecord.header_row"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StagingRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := stagingrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Connector(); !ok {
		return &ValidationError{Name: "connector", err: errors.New(`ent: missing required field "StagingRecord.connector"`)}
	}
	if v, ok := _c.mutation.Connector(); ok {
		if err := stagingrecord.ConnectorValidator(v); err != nil {
			return &ValidationError{Name: "connector", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.connector": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SumValue(); !ok {
		return &ValidationError{Name: "sum_value", err: errors.New(`ent: missing required field "StagingRecord.sum_value"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "StagingRecord.row_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingRecord.created_at"`)}
	}
	return nil
}

func (_c *StagingRecordCreate) sqlSave(ctx context.Context) (*StagingRecord, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StagingRecordCreate) createSpec() (*StagingRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingrecord.Table, sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(stagingrecord.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(stagingrecord.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.DocumentCategory(); ok {
		_spec.SetField(stagingrecord.FieldDocumentCategory, field.TypeString, value)
		_node.DocumentCategory = value
	}
	if value, ok := _c.mutation.HeaderRow(); ok {
		_spec.SetField(stagingrecord.FieldHeaderRow, field.TypeInt, value)
		_node.HeaderRow = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(stagingrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Connector(); ok {
		_spec.SetField(stagingrecord.FieldConnector, field.TypeString, value)
		_node.Connector = value
	}
	if value, ok := _c.mutation.SumValue(); ok {
		_spec.SetField(stagingrecord.FieldSumValue, field.TypeFloat64, value)
		_node.SumValue = value
	}
	if value, ok := _c.mutation.BranchCode(); ok {
		_spec.SetField(stagingrecord.FieldBranchCode, field.TypeString, value)
		_node.BranchCode = &value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(stagingrecord.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.OutletCode(); ok {
		_spec.SetField(stagingrecord.FieldOutletCode, field.TypeString, value)
		_node.OutletCode = &value
	}
	if value, ok := _c.mutation.OutletName(); ok {
		_spec.SetField(stagingrecord.FieldOutletName, field.TypeString, value)
		_node.OutletName = &value
	}
	if value, ok := _c.mutation.DocDate(); ok {
		_spec.SetField(stagingrecord.FieldDocDate, field.TypeTime, value)
		_node.DocDate = &value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(stagingrecord.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StagingRecordCreateBulk is the builder for creating many StagingRecord entities in bulk.
type StagingRecordCreateBulk struct {
	config
	err      error
	builders []*StagingRecordCreate
}

// Save creates the StagingRecord entities in the database.
func (_c *StagingRecordCreateBulk) Save(ctx context.Context) ([]*StagingRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingRecordMutation)
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
func (_c *StagingRecordCreateBulk) SaveX(ctx context.Context) []*StagingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
