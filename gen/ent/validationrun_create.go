// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// ValidationRunCreate is the builder for creating a ValidationRun entity.
type ValidationRunCreate struct {
	config
	mutation *ValidationRunMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ValidationRunCreate) SetFilename(v string) *ValidationRunCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *ValidationRunCreate) SetDocumentType(v string) *ValidationRunCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetDocumentCategory sets the "document_category" field.
func (_c *ValidationRunCreate) SetDocumentCategory(v string) *ValidationRunCreate {
	_c.mutation.SetDocumentCategory(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ValidationRunCreate) SetUserID(v string) *ValidationRunCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ValidationRunCreate) SetStatus(v string) *ValidationRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableStatus(v *string) *ValidationRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ValidationRunCreate) SetScore(v float64) *ValidationRunCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableScore(v *float64) *ValidationRunCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTotalRecords sets the "total_records" field.
func (_c *ValidationRunCreate) SetTotalRecords(v int) *ValidationRunCreate {
	_c.mutation.SetTotalRecords(v)
	return _c
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableTotalRecords(v *int) *ValidationRunCreate {
	if v != nil {
		_c.SetTotalRecords(*v)
	}
	return _c
}

// SetMatchedRecords sets the "matched_records" field.
func (_c *ValidationRunCreate) SetMatchedRecords(v int) *ValidationRunCreate {
	_c.mutation.SetMatchedRecords(v)
	return _c
}

// SetNillableMatchedRecords sets the "matched_records" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableMatchedRecords(v *int) *ValidationRunCreate {
	if v != nil {
		_c.SetMatchedRecords(*v)
	}
	return _c
}

// SetMismatchedRecords sets the "mismatched_records" field.
func (_c *ValidationRunCreate) SetMismatchedRecords(v int) *ValidationRunCreate {
	_c.mutation.SetMismatchedRecords(v)
	return _c
}

// SetNillableMismatchedRecords sets the "mismatched_records" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableMismatchedRecords(v *int) *ValidationRunCreate {
	if v != nil {
		_c.SetMismatchedRecords(*v)
	}
	return _c
}

// SetProcessingDetails sets the "processing_details" field.
func (_c *ValidationRunCreate) SetProcessingDetails(v json.RawMessage) *ValidationRunCreate {
	_c.mutation.SetProcessingDetails(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ValidationRunCreate) SetErrorMessage(v string) *ValidationRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableErrorMessage(v *string) *ValidationRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationRunCreate) SetCreatedAt(v time.Time) *ValidationRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableCreatedAt(v *time.Time) *ValidationRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ValidationRunCreate) SetUpdatedAt(v time.Time) *ValidationRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableUpdatedAt(v *time.Time) *ValidationRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationRunCreate) SetID(v uuid.UUID) *ValidationRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableID(v *uuid.UUID) *ValidationRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInvalidGroupIDs adds the "invalid_groups" edge to the InvalidGroup entity by IDs.
func (_c *ValidationRunCreate) AddInvalidGroupIDs(ids ...int) *ValidationRunCreate {
	_c.mutation.AddInvalidGroupIDs(ids...)
	return _c
}

// AddInvalidGroups adds the "invalid_groups" edges to the InvalidGroup entity.
func (_c *ValidationRunCreate) AddInvalidGroups(v ...*InvalidGroup) *ValidationRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvalidGroupIDs(ids...)
}

// AddMatchedGroupIDs adds the "matched_groups" edge to the MatchedGroup entity by IDs.
func (_c *ValidationRunCreate) AddMatchedGroupIDs(ids ...int) *ValidationRunCreate {
	_c.mutation.AddMatchedGroupIDs(ids...)
	return _c
}

// AddMatchedGroups adds the "matched_groups" edges to the MatchedGroup entity.
func (_c *ValidationRunCreate) AddMatchedGroups(v ...*MatchedGroup) *ValidationRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchedGroupIDs(ids...)
}

// AddInvalidRowIDs adds the "invalid_rows" edge to the InvalidRow entity by IDs.
func (_c *ValidationRunCreate) AddInvalidRowIDs(ids ...int) *ValidationRunCreate {
	_c.mutation.AddInvalidRowIDs(ids...)
	return _c
}

// AddInvalidRows adds the "invalid_rows" edges to the InvalidRow entity.
func (_c *ValidationRunCreate) AddInvalidRows(v ...*InvalidRow) *ValidationRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvalidRowIDs(ids...)
}

// AddMatchedRowIDs adds the "matched_rows" edge to the MatchedRow entity by IDs.
func (_c *ValidationRunCreate) AddMatchedRowIDs(ids ...int) *ValidationRunCreate {
	_c.mutation.AddMatchedRowIDs(ids...)
	return _c
}

// AddMatchedRows adds the "matched_rows" edges to the MatchedRow entity.
func (_c *ValidationRunCreate) AddMatchedRows(v ...*MatchedRow) *ValidationRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchedRowIDs(ids...)
}

// Mutation returns the ValidationRunMutation object of the builder.
func (_c *ValidationRunCreate) Mutation() *ValidationRunMutation {
	return _c.mutation
}

// Save creates the ValidationRun in the database.
func (_c *ValidationRunCreate) Save(ctx context.Context) (*ValidationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationRunCreate) SaveX(ctx context.Context) *ValidationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := validationrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := validationrun.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.TotalRecords(); !ok {
		v := validationrun.DefaultTotalRecords
		_c.mutation.SetTotalRecords(v)
	}
	if _, ok := _c.mutation.MatchedRecords(); !ok {
		v := validationrun.DefaultMatchedRecords
		_c.mutation.SetMatchedRecords(v)
	}
	if _, ok := _c.mutation.MismatchedRecords(); !ok {
		v := validationrun.DefaultMismatchedRecords
		_c.mutation.SetMismatchedRecords(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := validationrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := validationrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationRunCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ValidationRun.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := validationrun.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "ValidationRun.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := validationrun.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentCategory(); !ok {
		return &ValidationError{Name: "document_category", err: errors.New(`ent: missing required field "ValidationRun.document_category"`)}
	}
	if v, ok := _c.mutation.DocumentCategory(); ok {
		if err := validationrun.DocumentCategoryValidator(v); err != nil {
			return &ValidationError{Name: "document_category", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.document_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ValidationRun.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := validationrun.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ValidationRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := validationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ValidationRun.score"`)}
	}
	if _, ok := _c.mutation.TotalRecords(); !ok {
		return &ValidationError{Name: "total_records", err: errors.New(`ent: missing required field "ValidationRun.total_records"`)}
	}
	if _, ok := _c.mutation.MatchedRecords(); !ok {
		return &ValidationError{Name: "matched_records", err: errors.New(`ent: missing required field "ValidationRun.matched_records"`)}
	}
	if _, ok := _c.mutation.MismatchedRecords(); !ok {
		return &ValidationError{Name: "mismatched_records", err: errors.New(`ent: missing required field "ValidationRun.mismatched_records"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ValidationRun.updated_at"`)}
	}
	return nil
}

func (_c *ValidationRunCreate) sqlSave(ctx context.Context) (*ValidationRun, error) {
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

func (_c *ValidationRunCreate) createSpec() (*ValidationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationrun.Table, sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(validationrun.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(validationrun.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.DocumentCategory(); ok {
		_spec.SetField(validationrun.FieldDocumentCategory, field.TypeString, value)
		_node.DocumentCategory = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(validationrun.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(validationrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(validationrun.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalRecords(); ok {
		_spec.SetField(validationrun.FieldTotalRecords, field.TypeInt, value)
		_node.TotalRecords = value
	}
	if value, ok := _c.mutation.MatchedRecords(); ok {
		_spec.SetField(validationrun.FieldMatchedRecords, field.TypeInt, value)
		_node.MatchedRecords = value
	}
	if value, ok := _c.mutation.MismatchedRecords(); ok {
		_spec.SetField(validationrun.FieldMismatchedRecords, field.TypeInt, value)
		_node.MismatchedRecords = value
	}
	if value, ok := _c.mutation.ProcessingDetails(); ok {
		_spec.SetField(validationrun.FieldProcessingDetails, field.TypeJSON, value)
		_node.ProcessingDetails = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(validationrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(validationrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvalidGroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchedGroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InvalidRowsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchedRowsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationRunCreateBulk is the builder for creating many ValidationRun entities in bulk.
type ValidationRunCreateBulk struct {
	config
	err      error
	builders []*ValidationRunCreate
}

// Save creates the ValidationRun entities in the database.
func (_c *ValidationRunCreateBulk) Save(ctx context.Context) ([]*ValidationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationRunMutation)
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
func (_c *ValidationRunCreateBulk) SaveX(ctx context.Context) []*ValidationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
