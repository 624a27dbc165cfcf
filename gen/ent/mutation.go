// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/stagingrecord"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvalidGroup  = "InvalidGroup"
	TypeInvalidRow    = "InvalidRow"
	TypeMatchedGroup  = "MatchedGroup"
	TypeMatchedRow    = "MatchedRow"
	TypeStagingRecord = "StagingRecord"
	TypeValidationRun = "ValidationRun"
)

// InvalidGroupMutation represents an operation that mutates the InvalidGroup nodes in the graph.
type InvalidGroupMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	connector            *string
	category             *string
	error_text           *string
	uploaded_total       *float64
	adduploaded_total    *float64
	source_total         *float64
	addsource_total      *float64
	discrepancy_value    *float64
	adddiscrepancy_value *float64
	clearedFields        map[string]struct{}
	run                  *uuid.UUID
	clearedrun           bool
	done                 bool
	oldValue             func(context.Context) (*InvalidGroup, error)
	predicates           []predicate.InvalidGroup
}

var _ ent.Mutation = (*InvalidGroupMutation)(nil)

// invalidgroupOption allows management of the mutation configuration using functional options.
type invalidgroupOption func(*InvalidGroupMutation)

// newInvalidGroupMutation creates new mutation for the InvalidGroup entity.
func newInvalidGroupMutation(c config, op Op, opts ...invalidgroupOption) *InvalidGroupMutation {
	m := &InvalidGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeInvalidGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvalidGroupID sets the ID field of the mutation.
func withInvalidGroupID(id int) invalidgroupOption {
	return func(m *InvalidGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *InvalidGroup
		)
		m.oldValue = func(ctx context.Context) (*InvalidGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvalidGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvalidGroup sets the old InvalidGroup of the mutation.
func withInvalidGroup(node *InvalidGroup) invalidgroupOption {
	return func(m *InvalidGroupMutation) {
		m.oldValue = func(context.Context) (*InvalidGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvalidGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvalidGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvalidGroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvalidGroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvalidGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *InvalidGroupMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *InvalidGroupMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the InvalidGroup entity.
// If the InvalidGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidGroupMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *InvalidGroupMutation) ResetRunID() {
	m.run = nil
}

// SetConnector sets the "connector" field.
func (m *InvalidGroupMutation) SetConnector(s string) {
	m.connector = &s
}

// Connector returns the value of the "connector" field in the mutation.
func (m *InvalidGroupMutation) Connector() (r string, exists bool) {
	v := m.connector
	if v == nil {
		return
	}
	return *v, true
}

// OldConnector returns the old "connector" field's value of the InvalidGroup entity.
// If the InvalidGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidGroupMutation) OldConnector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnector: %w", err)
	}
	return oldValue.Connector, nil
}

// ResetConnector resets all changes to the "connector" field.
func (m *InvalidGroupMutation) ResetConnector() {
	m.connector = nil
}

// SetCategory sets the "category" field.
func (m *InvalidGroupMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InvalidGroupMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the InvalidGroup entity.
// If the InvalidGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidGroupMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *InvalidGroupMutation) ResetCategory() {
	m.category = nil
}

// SetErrorText sets the "error_text" field.
func (m *InvalidGroupMutation) SetErrorText(s string) {
	m.error_text = &s
}

// ErrorText returns the value of the "error_text" field in the mutation.
func (m *InvalidGroupMutation) ErrorText() (r string, exists bool) {
	v := m.error_text
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorText returns the old "error_text" field's value of the InvalidGroup entity.
// If the InvalidGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidGroupMutation) OldErrorText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorText: %w", err)
	}
	return oldValue.ErrorText, nil
}

// ResetErrorText resets all changes to the "error_text" field.
func (m *InvalidGroupMutation) ResetErrorText() {
	m.error_text = nil
}

// SetUploadedTotal sets the "uploaded_total" field.
func (m *InvalidGroupMutation) SetUploadedTotal(f float64) {
	m.uploaded_total = &f
	m.adduploaded_total = nil
}

// UploadedTotal returns the value of the "uploaded_total" field in the mutation.
func (m *InvalidGroupMutation) UploadedTotal() (r float64, exists bool) {
	v := m.uploaded_total
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedTotal returns the old "uploaded_total" field's value of the InvalidGroup entity.
// If the InvalidGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidGroupMutation) OldUploadedTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedTotal: %w", err)
	}
	return oldValue.UploadedTotal, nil
}

// AddUploadedTotal adds f to the "uploaded_total" field.
func (m *InvalidGroupMutation) AddUploadedTotal(f float64) {
	if m.adduploaded_total != nil {
		*m.adduploaded_total += f
	} else {
		m.adduploaded_total = &f
	}
}

// AddedUploadedTotal returns the value that was added to the "uploaded_total" field in this mutation.
func (m *InvalidGroupMutation) AddedUploadedTotal() (r float64, exists bool) {
	v := m.adduploaded_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetUploadedTotal resets all changes to the "uploaded_total" field.
func (m *InvalidGroupMutation) ResetUploadedTotal() {
	m.uploaded_total = nil
	m.adduploaded_total = nil
}

// SetSourceTotal sets the "source_total" field.
func (m *InvalidGroupMutation) SetSourceTotal(f float64) {
	m.source_total = &f
	m.addsource_total = nil
}

// SourceTotal returns the value of the "source_total" field in the mutation.
func (m *InvalidGroupMutation) SourceTotal() (r float64, exists bool) {
	v := m.source_total
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTotal returns the old "source_total" field's value of the InvalidGroup entity.
// If the InvalidGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidGroupMutation) OldSourceTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTotal: %w", err)
	}
	return oldValue.SourceTotal, nil
}

// AddSourceTotal adds f to the "source_total" field.
func (m *InvalidGroupMutation) AddSourceTotal(f float64) {
	if m.addsource_total != nil {
		*m.addsource_total += f
	} else {
		m.addsource_total = &f
	}
}

// AddedSourceTotal returns the value that was added to the "source_total" field in this mutation.
func (m *InvalidGroupMutation) AddedSourceTotal() (r float64, exists bool) {
	v := m.addsource_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceTotal resets all changes to the "source_total" field.
func (m *InvalidGroupMutation) ResetSourceTotal() {
	m.source_total = nil
	m.addsource_total = nil
}

// SetDiscrepancyValue sets the "discrepancy_value" field.
func (m *InvalidGroupMutation) SetDiscrepancyValue(f float64) {
	m.discrepancy_value = &f
	m.adddiscrepancy_value = nil
}

// DiscrepancyValue returns the value of the "discrepancy_value" field in the mutation.
func (m *InvalidGroupMutation) DiscrepancyValue() (r float64, exists bool) {
	v := m.discrepancy_value
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscrepancyValue returns the old "discrepancy_value" field's value of the InvalidGroup entity.
// If the InvalidGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidGroupMutation) OldDiscrepancyValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscrepancyValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscrepancyValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscrepancyValue: %w", err)
	}
	return oldValue.DiscrepancyValue, nil
}

// AddDiscrepancyValue adds f to the "discrepancy_value" field.
func (m *InvalidGroupMutation) AddDiscrepancyValue(f float64) {
	if m.adddiscrepancy_value != nil {
		*m.adddiscrepancy_value += f
	} else {
		m.adddiscrepancy_value = &f
	}
}

// AddedDiscrepancyValue returns the value that was added to the "discrepancy_value" field in this mutation.
func (m *InvalidGroupMutation) AddedDiscrepancyValue() (r float64, exists bool) {
	v := m.adddiscrepancy_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiscrepancyValue resets all changes to the "discrepancy_value" field.
func (m *InvalidGroupMutation) ResetDiscrepancyValue() {
	m.discrepancy_value = nil
	m.adddiscrepancy_value = nil
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (m *InvalidGroupMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[invalidgroup.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the ValidationRun entity was cleared.
func (m *InvalidGroupMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *InvalidGroupMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *InvalidGroupMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the InvalidGroupMutation builder.
func (m *InvalidGroupMutation) Where(ps ...predicate.InvalidGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvalidGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvalidGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvalidGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvalidGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvalidGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvalidGroup).
func (m *InvalidGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvalidGroupMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, invalidgroup.FieldRunID)
	}
	if m.connector != nil {
		fields = append(fields, invalidgroup.FieldConnector)
	}
	if m.category != nil {
		fields = append(fields, invalidgroup.FieldCategory)
	}
	if m.error_text != nil {
		fields = append(fields, invalidgroup.FieldErrorText)
	}
	if m.uploaded_total != nil {
		fields = append(fields, invalidgroup.FieldUploadedTotal)
	}
	if m.source_total != nil {
		fields = append(fields, invalidgroup.FieldSourceTotal)
	}
	if m.discrepancy_value != nil {
		fields = append(fields, invalidgroup.FieldDiscrepancyValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvalidGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invalidgroup.FieldRunID:
		return m.RunID()
	case invalidgroup.FieldConnector:
		return m.Connector()
	case invalidgroup.FieldCategory:
		return m.Category()
	case invalidgroup.FieldErrorText:
		return m.ErrorText()
	case invalidgroup.FieldUploadedTotal:
		return m.UploadedTotal()
	case invalidgroup.FieldSourceTotal:
		return m.SourceTotal()
	case invalidgroup.FieldDiscrepancyValue:
		return m.DiscrepancyValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvalidGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invalidgroup.FieldRunID:
		return m.OldRunID(ctx)
	case invalidgroup.FieldConnector:
		return m.OldConnector(ctx)
	case invalidgroup.FieldCategory:
		return m.OldCategory(ctx)
	case invalidgroup.FieldErrorText:
		return m.OldErrorText(ctx)
	case invalidgroup.FieldUploadedTotal:
		return m.OldUploadedTotal(ctx)
	case invalidgroup.FieldSourceTotal:
		return m.OldSourceTotal(ctx)
	case invalidgroup.FieldDiscrepancyValue:
		return m.OldDiscrepancyValue(ctx)
	}
	return nil, fmt.Errorf("unknown InvalidGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvalidGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invalidgroup.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case invalidgroup.FieldConnector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnector(v)
		return nil
	case invalidgroup.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case invalidgroup.FieldErrorText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorText(v)
		return nil
	case invalidgroup.FieldUploadedTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedTotal(v)
		return nil
	case invalidgroup.FieldSourceTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTotal(v)
		return nil
	case invalidgroup.FieldDiscrepancyValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscrepancyValue(v)
		return nil
	}
	return fmt.Errorf("unknown InvalidGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvalidGroupMutation) AddedFields() []string {
	var fields []string
	if m.adduploaded_total != nil {
		fields = append(fields, invalidgroup.FieldUploadedTotal)
	}
	if m.addsource_total != nil {
		fields = append(fields, invalidgroup.FieldSourceTotal)
	}
	if m.adddiscrepancy_value != nil {
		fields = append(fields, invalidgroup.FieldDiscrepancyValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvalidGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invalidgroup.FieldUploadedTotal:
		return m.AddedUploadedTotal()
	case invalidgroup.FieldSourceTotal:
		return m.AddedSourceTotal()
	case invalidgroup.FieldDiscrepancyValue:
		return m.AddedDiscrepancyValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvalidGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invalidgroup.FieldUploadedTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUploadedTotal(v)
		return nil
	case invalidgroup.FieldSourceTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceTotal(v)
		return nil
	case invalidgroup.FieldDiscrepancyValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscrepancyValue(v)
		return nil
	}
	return fmt.Errorf("unknown InvalidGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvalidGroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvalidGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvalidGroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InvalidGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvalidGroupMutation) ResetField(name string) error {
	switch name {
	case invalidgroup.FieldRunID:
		m.ResetRunID()
		return nil
	case invalidgroup.FieldConnector:
		m.ResetConnector()
		return nil
	case invalidgroup.FieldCategory:
		m.ResetCategory()
		return nil
	case invalidgroup.FieldErrorText:
		m.ResetErrorText()
		return nil
	case invalidgroup.FieldUploadedTotal:
		m.ResetUploadedTotal()
		return nil
	case invalidgroup.FieldSourceTotal:
		m.ResetSourceTotal()
		return nil
	case invalidgroup.FieldDiscrepancyValue:
		m.ResetDiscrepancyValue()
		return nil
	}
	return fmt.Errorf("unknown InvalidGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvalidGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, invalidgroup.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvalidGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invalidgroup.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvalidGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvalidGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvalidGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, invalidgroup.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvalidGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case invalidgroup.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvalidGroupMutation) ClearEdge(name string) error {
	switch name {
	case invalidgroup.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown InvalidGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvalidGroupMutation) ResetEdge(name string) error {
	switch name {
	case invalidgroup.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown InvalidGroup edge %s", name)
}

// InvalidRowMutation represents an operation that mutates the InvalidRow nodes in the graph.
type InvalidRowMutation struct {
	config
	op                Op
	typ               string
	id                *int
	connector         *string
	row_index         *int
	addrow_index      *int
	category          *string
	error_text        *string
	uploaded_value    *float64
	adduploaded_value *float64
	clearedFields     map[string]struct{}
	run               *uuid.UUID
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*InvalidRow, error)
	predicates        []predicate.InvalidRow
}

var _ ent.Mutation = (*InvalidRowMutation)(nil)

// invalidrowOption allows management of the mutation configuration using functional options.
type invalidrowOption func(*InvalidRowMutation)

// newInvalidRowMutation creates new mutation for the InvalidRow entity.
func newInvalidRowMutation(c config, op Op, opts ...invalidrowOption) *InvalidRowMutation {
	m := &InvalidRowMutation{
		config:        c,
		op:            op,
		typ:           TypeInvalidRow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvalidRowID sets the ID field of the mutation.
func withInvalidRowID(id int) invalidrowOption {
	return func(m *InvalidRowMutation) {
		var (
			err   error
			once  sync.Once
			value *InvalidRow
		)
		m.oldValue = func(ctx context.Context) (*InvalidRow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvalidRow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvalidRow sets the old InvalidRow of the mutation.
func withInvalidRow(node *InvalidRow) invalidrowOption {
	return func(m *InvalidRowMutation) {
		m.oldValue = func(context.Context) (*InvalidRow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvalidRowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvalidRowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvalidRowMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvalidRowMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvalidRow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *InvalidRowMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *InvalidRowMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the InvalidRow entity.
// If the InvalidRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidRowMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *InvalidRowMutation) ResetRunID() {
	m.run = nil
}

// SetConnector sets the "connector" field.
func (m *InvalidRowMutation) SetConnector(s string) {
	m.connector = &s
}

// Connector returns the value of the "connector" field in the mutation.
func (m *InvalidRowMutation) Connector() (r string, exists bool) {
	v := m.connector
	if v == nil {
		return
	}
	return *v, true
}

// OldConnector returns the old "connector" field's value of the InvalidRow entity.
// If the InvalidRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidRowMutation) OldConnector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnector: %w", err)
	}
	return oldValue.Connector, nil
}

// ResetConnector resets all changes to the "connector" field.
func (m *InvalidRowMutation) ResetConnector() {
	m.connector = nil
}

// SetRowIndex sets the "row_index" field.
func (m *InvalidRowMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *InvalidRowMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the InvalidRow entity.
// If the InvalidRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidRowMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *InvalidRowMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *InvalidRowMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *InvalidRowMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetCategory sets the "category" field.
func (m *InvalidRowMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InvalidRowMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the InvalidRow entity.
// If the InvalidRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidRowMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *InvalidRowMutation) ResetCategory() {
	m.category = nil
}

// SetErrorText sets the "error_text" field.
func (m *InvalidRowMutation) SetErrorText(s string) {
	m.error_text = &s
}

// ErrorText returns the value of the "error_text" field in the mutation.
func (m *InvalidRowMutation) ErrorText() (r string, exists bool) {
	v := m.error_text
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorText returns the old "error_text" field's value of the InvalidRow entity.
// If the InvalidRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidRowMutation) OldErrorText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorText: %w", err)
	}
	return oldValue.ErrorText, nil
}

// ResetErrorText resets all changes to the "error_text" field.
func (m *InvalidRowMutation) ResetErrorText() {
	m.error_text = nil
}

// SetUploadedValue sets the "uploaded_value" field.
func (m *InvalidRowMutation) SetUploadedValue(f float64) {
	m.uploaded_value = &f
	m.adduploaded_value = nil
}

// UploadedValue returns the value of the "uploaded_value" field in the mutation.
func (m *InvalidRowMutation) UploadedValue() (r float64, exists bool) {
	v := m.uploaded_value
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedValue returns the old "uploaded_value" field's value of the InvalidRow entity.
// If the InvalidRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvalidRowMutation) OldUploadedValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedValue: %w", err)
	}
	return oldValue.UploadedValue, nil
}

// AddUploadedValue adds f to the "uploaded_value" field.
func (m *InvalidRowMutation) AddUploadedValue(f float64) {
	if m.adduploaded_value != nil {
		*m.adduploaded_value += f
	} else {
		m.adduploaded_value = &f
	}
}

// AddedUploadedValue returns the value that was added to the "uploaded_value" field in this mutation.
func (m *InvalidRowMutation) AddedUploadedValue() (r float64, exists bool) {
	v := m.adduploaded_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetUploadedValue resets all changes to the "uploaded_value" field.
func (m *InvalidRowMutation) ResetUploadedValue() {
	m.uploaded_value = nil
	m.adduploaded_value = nil
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (m *InvalidRowMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[invalidrow.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the ValidationRun entity was cleared.
func (m *InvalidRowMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *InvalidRowMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *InvalidRowMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the InvalidRowMutation builder.
func (m *InvalidRowMutation) Where(ps ...predicate.InvalidRow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvalidRowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvalidRowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvalidRow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvalidRowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvalidRowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvalidRow).
func (m *InvalidRowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvalidRowMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, invalidrow.FieldRunID)
	}
	if m.connector != nil {
		fields = append(fields, invalidrow.FieldConnector)
	}
	if m.row_index != nil {
		fields = append(fields, invalidrow.FieldRowIndex)
	}
	if m.category != nil {
		fields = append(fields, invalidrow.FieldCategory)
	}
	if m.error_text != nil {
		fields = append(fields, invalidrow.FieldErrorText)
	}
	if m.uploaded_value != nil {
		fields = append(fields, invalidrow.FieldUploadedValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvalidRowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invalidrow.FieldRunID:
		return m.RunID()
	case invalidrow.FieldConnector:
		return m.Connector()
	case invalidrow.FieldRowIndex:
		return m.RowIndex()
	case invalidrow.FieldCategory:
		return m.Category()
	case invalidrow.FieldErrorText:
		return m.ErrorText()
	case invalidrow.FieldUploadedValue:
		return m.UploadedValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvalidRowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invalidrow.FieldRunID:
		return m.OldRunID(ctx)
	case invalidrow.FieldConnector:
		return m.OldConnector(ctx)
	case invalidrow.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case invalidrow.FieldCategory:
		return m.OldCategory(ctx)
	case invalidrow.FieldErrorText:
		return m.OldErrorText(ctx)
	case invalidrow.FieldUploadedValue:
		return m.OldUploadedValue(ctx)
	}
	return nil, fmt.Errorf("unknown InvalidRow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvalidRowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invalidrow.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case invalidrow.FieldConnector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnector(v)
		return nil
	case invalidrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case invalidrow.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case invalidrow.FieldErrorText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorText(v)
		return nil
	case invalidrow.FieldUploadedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedValue(v)
		return nil
	}
	return fmt.Errorf("unknown InvalidRow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvalidRowMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, invalidrow.FieldRowIndex)
	}
	if m.adduploaded_value != nil {
		fields = append(fields, invalidrow.FieldUploadedValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvalidRowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invalidrow.FieldRowIndex:
		return m.AddedRowIndex()
	case invalidrow.FieldUploadedValue:
		return m.AddedUploadedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvalidRowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invalidrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	case invalidrow.FieldUploadedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUploadedValue(v)
		return nil
	}
	return fmt.Errorf("unknown InvalidRow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvalidRowMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvalidRowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvalidRowMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InvalidRow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvalidRowMutation) ResetField(name string) error {
	switch name {
	case invalidrow.FieldRunID:
		m.ResetRunID()
		return nil
	case invalidrow.FieldConnector:
		m.ResetConnector()
		return nil
	case invalidrow.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case invalidrow.FieldCategory:
		m.ResetCategory()
		return nil
	case invalidrow.FieldErrorText:
		m.ResetErrorText()
		return nil
	case invalidrow.FieldUploadedValue:
		m.ResetUploadedValue()
		return nil
	}
	return fmt.Errorf("unknown InvalidRow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvalidRowMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, invalidrow.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvalidRowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invalidrow.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvalidRowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvalidRowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvalidRowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, invalidrow.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvalidRowMutation) EdgeCleared(name string) bool {
	switch name {
	case invalidrow.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvalidRowMutation) ClearEdge(name string) error {
	switch name {
	case invalidrow.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown InvalidRow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvalidRowMutation) ResetEdge(name string) error {
	switch name {
	case invalidrow.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown InvalidRow edge %s", name)
}

// MatchedGroupMutation represents an operation that mutates the MatchedGroup nodes in the graph.
type MatchedGroupMutation struct {
	config
	op                Op
	typ               string
	id                *int
	connector         *string
	note              *string
	uploaded_total    *float64
	adduploaded_total *float64
	source_total      *float64
	addsource_total   *float64
	difference        *float64
	adddifference     *float64
	clearedFields     map[string]struct{}
	run               *uuid.UUID
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*MatchedGroup, error)
	predicates        []predicate.MatchedGroup
}

var _ ent.Mutation = (*MatchedGroupMutation)(nil)

// matchedgroupOption allows management of the mutation configuration using functional options.
type matchedgroupOption func(*MatchedGroupMutation)

// newMatchedGroupMutation creates new mutation for the MatchedGroup entity.
func newMatchedGroupMutation(c config, op Op, opts ...matchedgroupOption) *MatchedGroupMutation {
	m := &MatchedGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeMatchedGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchedGroupID sets the ID field of the mutation.
func withMatchedGroupID(id int) matchedgroupOption {
	return func(m *MatchedGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *MatchedGroup
		)
		m.oldValue = func(ctx context.Context) (*MatchedGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatchedGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatchedGroup sets the old MatchedGroup of the mutation.
func withMatchedGroup(node *MatchedGroup) matchedgroupOption {
	return func(m *MatchedGroupMutation) {
		m.oldValue = func(context.Context) (*MatchedGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchedGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchedGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchedGroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchedGroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatchedGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *MatchedGroupMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *MatchedGroupMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the MatchedGroup entity.
// If the MatchedGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedGroupMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *MatchedGroupMutation) ResetRunID() {
	m.run = nil
}

// SetConnector sets the "connector" field.
func (m *MatchedGroupMutation) SetConnector(s string) {
	m.connector = &s
}

// Connector returns the value of the "connector" field in the mutation.
func (m *MatchedGroupMutation) Connector() (r string, exists bool) {
	v := m.connector
	if v == nil {
		return
	}
	return *v, true
}

// OldConnector returns the old "connector" field's value of the MatchedGroup entity.
// If the MatchedGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedGroupMutation) OldConnector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnector: %w", err)
	}
	return oldValue.Connector, nil
}

// ResetConnector resets all changes to the "connector" field.
func (m *MatchedGroupMutation) ResetConnector() {
	m.connector = nil
}

// SetNote sets the "note" field.
func (m *MatchedGroupMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *MatchedGroupMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the MatchedGroup entity.
// If the MatchedGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedGroupMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *MatchedGroupMutation) ResetNote() {
	m.note = nil
}

// SetUploadedTotal sets the "uploaded_total" field.
func (m *MatchedGroupMutation) SetUploadedTotal(f float64) {
	m.uploaded_total = &f
	m.adduploaded_total = nil
}

// UploadedTotal returns the value of the "uploaded_total" field in the mutation.
func (m *MatchedGroupMutation) UploadedTotal() (r float64, exists bool) {
	v := m.uploaded_total
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedTotal returns the old "uploaded_total" field's value of the MatchedGroup entity.
// If the MatchedGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedGroupMutation) OldUploadedTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedTotal: %w", err)
	}
	return oldValue.UploadedTotal, nil
}

// AddUploadedTotal adds f to the "uploaded_total" field.
func (m *MatchedGroupMutation) AddUploadedTotal(f float64) {
	if m.adduploaded_total != nil {
		*m.adduploaded_total += f
	} else {
		m.adduploaded_total = &f
	}
}

// AddedUploadedTotal returns the value that was added to the "uploaded_total" field in this mutation.
func (m *MatchedGroupMutation) AddedUploadedTotal() (r float64, exists bool) {
	v := m.adduploaded_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetUploadedTotal resets all changes to the "uploaded_total" field.
func (m *MatchedGroupMutation) ResetUploadedTotal() {
	m.uploaded_total = nil
	m.adduploaded_total = nil
}

// SetSourceTotal sets the "source_total" field.
func (m *MatchedGroupMutation) SetSourceTotal(f float64) {
	m.source_total = &f
	m.addsource_total = nil
}

// SourceTotal returns the value of the "source_total" field in the mutation.
func (m *MatchedGroupMutation) SourceTotal() (r float64, exists bool) {
	v := m.source_total
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTotal returns the old "source_total" field's value of the MatchedGroup entity.
// If the MatchedGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedGroupMutation) OldSourceTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTotal: %w", err)
	}
	return oldValue.SourceTotal, nil
}

// AddSourceTotal adds f to the "source_total" field.
func (m *MatchedGroupMutation) AddSourceTotal(f float64) {
	if m.addsource_total != nil {
		*m.addsource_total += f
	} else {
		m.addsource_total = &f
	}
}

// AddedSourceTotal returns the value that was added to the "source_total" field in this mutation.
func (m *MatchedGroupMutation) AddedSourceTotal() (r float64, exists bool) {
	v := m.addsource_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceTotal resets all changes to the "source_total" field.
func (m *MatchedGroupMutation) ResetSourceTotal() {
	m.source_total = nil
	m.addsource_total = nil
}

// SetDifference sets the "difference" field.
func (m *MatchedGroupMutation) SetDifference(f float64) {
	m.difference = &f
	m.adddifference = nil
}

// Difference returns the value of the "difference" field in the mutation.
func (m *MatchedGroupMutation) Difference() (r float64, exists bool) {
	v := m.difference
	if v == nil {
		return
	}
	return *v, true
}

// OldDifference returns the old "difference" field's value of the MatchedGroup entity.
// If the MatchedGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedGroupMutation) OldDifference(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifference: %w", err)
	}
	return oldValue.Difference, nil
}

// AddDifference adds f to the "difference" field.
func (m *MatchedGroupMutation) AddDifference(f float64) {
	if m.adddifference != nil {
		*m.adddifference += f
	} else {
		m.adddifference = &f
	}
}

// AddedDifference returns the value that was added to the "difference" field in this mutation.
func (m *MatchedGroupMutation) AddedDifference() (r float64, exists bool) {
	v := m.adddifference
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifference resets all changes to the "difference" field.
func (m *MatchedGroupMutation) ResetDifference() {
	m.difference = nil
	m.adddifference = nil
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (m *MatchedGroupMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[matchedgroup.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the ValidationRun entity was cleared.
func (m *MatchedGroupMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *MatchedGroupMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *MatchedGroupMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the MatchedGroupMutation builder.
func (m *MatchedGroupMutation) Where(ps ...predicate.MatchedGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchedGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchedGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatchedGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchedGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchedGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatchedGroup).
func (m *MatchedGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchedGroupMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, matchedgroup.FieldRunID)
	}
	if m.connector != nil {
		fields = append(fields, matchedgroup.FieldConnector)
	}
	if m.note != nil {
		fields = append(fields, matchedgroup.FieldNote)
	}
	if m.uploaded_total != nil {
		fields = append(fields, matchedgroup.FieldUploadedTotal)
	}
	if m.source_total != nil {
		fields = append(fields, matchedgroup.FieldSourceTotal)
	}
	if m.difference != nil {
		fields = append(fields, matchedgroup.FieldDifference)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchedGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matchedgroup.FieldRunID:
		return m.RunID()
	case matchedgroup.FieldConnector:
		return m.Connector()
	case matchedgroup.FieldNote:
		return m.Note()
	case matchedgroup.FieldUploadedTotal:
		return m.UploadedTotal()
	case matchedgroup.FieldSourceTotal:
		return m.SourceTotal()
	case matchedgroup.FieldDifference:
		return m.Difference()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchedGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matchedgroup.FieldRunID:
		return m.OldRunID(ctx)
	case matchedgroup.FieldConnector:
		return m.OldConnector(ctx)
	case matchedgroup.FieldNote:
		return m.OldNote(ctx)
	case matchedgroup.FieldUploadedTotal:
		return m.OldUploadedTotal(ctx)
	case matchedgroup.FieldSourceTotal:
		return m.OldSourceTotal(ctx)
	case matchedgroup.FieldDifference:
		return m.OldDifference(ctx)
	}
	return nil, fmt.Errorf("unknown MatchedGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchedGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matchedgroup.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case matchedgroup.FieldConnector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnector(v)
		return nil
	case matchedgroup.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case matchedgroup.FieldUploadedTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedTotal(v)
		return nil
	case matchedgroup.FieldSourceTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTotal(v)
		return nil
	case matchedgroup.FieldDifference:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifference(v)
		return nil
	}
	return fmt.Errorf("unknown MatchedGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchedGroupMutation) AddedFields() []string {
	var fields []string
	if m.adduploaded_total != nil {
		fields = append(fields, matchedgroup.FieldUploadedTotal)
	}
	if m.addsource_total != nil {
		fields = append(fields, matchedgroup.FieldSourceTotal)
	}
	if m.adddifference != nil {
		fields = append(fields, matchedgroup.FieldDifference)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchedGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case matchedgroup.FieldUploadedTotal:
		return m.AddedUploadedTotal()
	case matchedgroup.FieldSourceTotal:
		return m.AddedSourceTotal()
	case matchedgroup.FieldDifference:
		return m.AddedDifference()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchedGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case matchedgroup.FieldUploadedTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUploadedTotal(v)
		return nil
	case matchedgroup.FieldSourceTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceTotal(v)
		return nil
	case matchedgroup.FieldDifference:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifference(v)
		return nil
	}
	return fmt.Errorf("unknown MatchedGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchedGroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchedGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchedGroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MatchedGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchedGroupMutation) ResetField(name string) error {
	switch name {
	case matchedgroup.FieldRunID:
		m.ResetRunID()
		return nil
	case matchedgroup.FieldConnector:
		m.ResetConnector()
		return nil
	case matchedgroup.FieldNote:
		m.ResetNote()
		return nil
	case matchedgroup.FieldUploadedTotal:
		m.ResetUploadedTotal()
		return nil
	case matchedgroup.FieldSourceTotal:
		m.ResetSourceTotal()
		return nil
	case matchedgroup.FieldDifference:
		m.ResetDifference()
		return nil
	}
	return fmt.Errorf("unknown MatchedGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchedGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, matchedgroup.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchedGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case matchedgroup.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchedGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchedGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchedGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, matchedgroup.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchedGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case matchedgroup.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchedGroupMutation) ClearEdge(name string) error {
	switch name {
	case matchedgroup.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown MatchedGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchedGroupMutation) ResetEdge(name string) error {
	switch name {
	case matchedgroup.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown MatchedGroup edge %s", name)
}

// MatchedRowMutation represents an operation that mutates the MatchedRow nodes in the graph.
type MatchedRowMutation struct {
	config
	op                Op
	typ               string
	id                *int
	connector         *string
	row_index         *int
	addrow_index      *int
	note              *string
	uploaded_value    *float64
	adduploaded_value *float64
	source_total      *float64
	addsource_total   *float64
	clearedFields     map[string]struct{}
	run               *uuid.UUID
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*MatchedRow, error)
	predicates        []predicate.MatchedRow
}

var _ ent.Mutation = (*MatchedRowMutation)(nil)

// matchedrowOption allows management of the mutation configuration using functional options.
type matchedrowOption func(*MatchedRowMutation)

// newMatchedRowMutation creates new mutation for the MatchedRow entity.
func newMatchedRowMutation(c config, op Op, opts ...matchedrowOption) *MatchedRowMutation {
	m := &MatchedRowMutation{
		config:        c,
		op:            op,
		typ:           TypeMatchedRow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchedRowID sets the ID field of the mutation.
func withMatchedRowID(id int) matchedrowOption {
	return func(m *MatchedRowMutation) {
		var (
			err   error
			once  sync.Once
			value *MatchedRow
		)
		m.oldValue = func(ctx context.Context) (*MatchedRow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatchedRow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatchedRow sets the old MatchedRow of the mutation.
func withMatchedRow(node *MatchedRow) matchedrowOption {
	return func(m *MatchedRowMutation) {
		m.oldValue = func(context.Context) (*MatchedRow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchedRowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchedRowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchedRowMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchedRowMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatchedRow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *MatchedRowMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *MatchedRowMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the MatchedRow entity.
// If the MatchedRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedRowMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *MatchedRowMutation) ResetRunID() {
	m.run = nil
}

// SetConnector sets the "connector" field.
func (m *MatchedRowMutation) SetConnector(s string) {
	m.connector = &s
}

// Connector returns the value of the "connector" field in the mutation.
func (m *MatchedRowMutation) Connector() (r string, exists bool) {
	v := m.connector
	if v == nil {
		return
	}
	return *v, true
}

// OldConnector returns the old "connector" field's value of the MatchedRow entity.
// If the MatchedRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedRowMutation) OldConnector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnector: %w", err)
	}
	return oldValue.Connector, nil
}

// ResetConnector resets all changes to the "connector" field.
func (m *MatchedRowMutation) ResetConnector() {
	m.connector = nil
}

// SetRowIndex sets the "row_index" field.
func (m *MatchedRowMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *MatchedRowMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the MatchedRow entity.
// If the MatchedRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedRowMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *MatchedRowMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *MatchedRowMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *MatchedRowMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetNote sets the "note" field.
func (m *MatchedRowMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *MatchedRowMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the MatchedRow entity.
// If the MatchedRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedRowMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *MatchedRowMutation) ResetNote() {
	m.note = nil
}

// SetUploadedValue sets the "uploaded_value" field.
func (m *MatchedRowMutation) SetUploadedValue(f float64) {
	m.uploaded_value = &f
	m.adduploaded_value = nil
}

// UploadedValue returns the value of the "uploaded_value" field in the mutation.
func (m *MatchedRowMutation) UploadedValue() (r float64, exists bool) {
	v := m.uploaded_value
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedValue returns the old "uploaded_value" field's value of the MatchedRow entity.
// If the MatchedRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedRowMutation) OldUploadedValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedValue: %w", err)
	}
	return oldValue.UploadedValue, nil
}

// AddUploadedValue adds f to the "uploaded_value" field.
func (m *MatchedRowMutation) AddUploadedValue(f float64) {
	if m.adduploaded_value != nil {
		*m.adduploaded_value += f
	} else {
		m.adduploaded_value = &f
	}
}

// AddedUploadedValue returns the value that was added to the "uploaded_value" field in this mutation.
func (m *MatchedRowMutation) AddedUploadedValue() (r float64, exists bool) {
	v := m.adduploaded_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetUploadedValue resets all changes to the "uploaded_value" field.
func (m *MatchedRowMutation) ResetUploadedValue() {
	m.uploaded_value = nil
	m.adduploaded_value = nil
}

// SetSourceTotal sets the "source_total" field.
func (m *MatchedRowMutation) SetSourceTotal(f float64) {
	m.source_total = &f
	m.addsource_total = nil
}

// SourceTotal returns the value of the "source_total" field in the mutation.
func (m *MatchedRowMutation) SourceTotal() (r float64, exists bool) {
	v := m.source_total
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTotal returns the old "source_total" field's value of the MatchedRow entity.
// If the MatchedRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchedRowMutation) OldSourceTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTotal: %w", err)
	}
	return oldValue.SourceTotal, nil
}

// AddSourceTotal adds f to the "source_total" field.
func (m *MatchedRowMutation) AddSourceTotal(f float64) {
	if m.addsource_total != nil {
		*m.addsource_total += f
	} else {
		m.addsource_total = &f
	}
}

// AddedSourceTotal returns the value that was added to the "source_total" field in this mutation.
func (m *MatchedRowMutation) AddedSourceTotal() (r float64, exists bool) {
	v := m.addsource_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceTotal resets all changes to the "source_total" field.
func (m *MatchedRowMutation) ResetSourceTotal() {
	m.source_total = nil
	m.addsource_total = nil
}

// ClearRun clears the "run" edge to the ValidationRun entity.
func (m *MatchedRowMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[matchedrow.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the ValidationRun entity was cleared.
func (m *MatchedRowMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *MatchedRowMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *MatchedRowMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the MatchedRowMutation builder.
func (m *MatchedRowMutation) Where(ps ...predicate.MatchedRow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchedRowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchedRowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatchedRow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchedRowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchedRowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatchedRow).
func (m *MatchedRowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchedRowMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, matchedrow.FieldRunID)
	}
	if m.connector != nil {
		fields = append(fields, matchedrow.FieldConnector)
	}
	if m.row_index != nil {
		fields = append(fields, matchedrow.FieldRowIndex)
	}
	if m.note != nil {
		fields = append(fields, matchedrow.FieldNote)
	}
	if m.uploaded_value != nil {
		fields = append(fields, matchedrow.FieldUploadedValue)
	}
	if m.source_total != nil {
		fields = append(fields, matchedrow.FieldSourceTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchedRowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matchedrow.FieldRunID:
		return m.RunID()
	case matchedrow.FieldConnector:
		return m.Connector()
	case matchedrow.FieldRowIndex:
		return m.RowIndex()
	case matchedrow.FieldNote:
		return m.Note()
	case matchedrow.FieldUploadedValue:
		return m.UploadedValue()
	case matchedrow.FieldSourceTotal:
		return m.SourceTotal()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchedRowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matchedrow.FieldRunID:
		return m.OldRunID(ctx)
	case matchedrow.FieldConnector:
		return m.OldConnector(ctx)
	case matchedrow.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case matchedrow.FieldNote:
		return m.OldNote(ctx)
	case matchedrow.FieldUploadedValue:
		return m.OldUploadedValue(ctx)
	case matchedrow.FieldSourceTotal:
		return m.OldSourceTotal(ctx)
	}
	return nil, fmt.Errorf("unknown MatchedRow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchedRowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matchedrow.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case matchedrow.FieldConnector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnector(v)
		return nil
	case matchedrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case matchedrow.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case matchedrow.FieldUploadedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedValue(v)
		return nil
	case matchedrow.FieldSourceTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTotal(v)
		return nil
	}
	return fmt.Errorf("unknown MatchedRow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchedRowMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, matchedrow.FieldRowIndex)
	}
	if m.adduploaded_value != nil {
		fields = append(fields, matchedrow.FieldUploadedValue)
	}
	if m.addsource_total != nil {
		fields = append(fields, matchedrow.FieldSourceTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchedRowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case matchedrow.FieldRowIndex:
		return m.AddedRowIndex()
	case matchedrow.FieldUploadedValue:
		return m.AddedUploadedValue()
	case matchedrow.FieldSourceTotal:
		return m.AddedSourceTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchedRowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case matchedrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	case matchedrow.FieldUploadedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUploadedValue(v)
		return nil
	case matchedrow.FieldSourceTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceTotal(v)
		return nil
	}
	return fmt.Errorf("unknown MatchedRow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchedRowMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchedRowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchedRowMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MatchedRow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchedRowMutation) ResetField(name string) error {
	switch name {
	case matchedrow.FieldRunID:
		m.ResetRunID()
		return nil
	case matchedrow.FieldConnector:
		m.ResetConnector()
		return nil
	case matchedrow.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case matchedrow.FieldNote:
		m.ResetNote()
		return nil
	case matchedrow.FieldUploadedValue:
		m.ResetUploadedValue()
		return nil
	case matchedrow.FieldSourceTotal:
		m.ResetSourceTotal()
		return nil
	}
	return fmt.Errorf("unknown MatchedRow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchedRowMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, matchedrow.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchedRowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case matchedrow.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchedRowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchedRowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchedRowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, matchedrow.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchedRowMutation) EdgeCleared(name string) bool {
	switch name {
	case matchedrow.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchedRowMutation) ClearEdge(name string) error {
	switch name {
	case matchedrow.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown MatchedRow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchedRowMutation) ResetEdge(name string) error {
	switch name {
	case matchedrow.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown MatchedRow edge %s", name)
}

// StagingRecordMutation represents an operation that mutates the StagingRecord nodes in the graph.
type StagingRecordMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	filename          *string
	document_type     *string
	document_category *string
	header_row        *int
	addheader_row     *int
	user_id           *string
	connector         *string
	sum_value         *float64
	addsum_value      *float64
	branch_code       *string
	branch_name       *string
	outlet_code       *string
	outlet_name       *string
	doc_date          *time.Time
	row_index         *int
	addrow_index      *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*StagingRecord, error)
	predicates        []predicate.StagingRecord
}

var _ ent.Mutation = (*StagingRecordMutation)(nil)

// stagingrecordOption allows management of the mutation configuration using functional options.
type stagingrecordOption func(*StagingRecordMutation)

// newStagingRecordMutation creates new mutation for the StagingRecord entity.
func newStagingRecordMutation(c config, op Op, opts ...stagingrecordOption) *StagingRecordMutation {
	m := &StagingRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingRecordID sets the ID field of the mutation.
func withStagingRecordID(id uuid.UUID) stagingrecordOption {
	return func(m *StagingRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingRecord
		)
		m.oldValue = func(ctx context.Context) (*StagingRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingRecord sets the old StagingRecord of the mutation.
func withStagingRecord(node *StagingRecord) stagingrecordOption {
	return func(m *StagingRecordMutation) {
		m.oldValue = func(context.Context) (*StagingRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingRecord entities.
func (m *StagingRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *StagingRecordMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *StagingRecordMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *StagingRecordMutation) ResetFilename() {
	m.filename = nil
}

// SetDocumentType sets the "document_type" field.
func (m *StagingRecordMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *StagingRecordMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *StagingRecordMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetDocumentCategory sets the "document_category" field.
func (m *StagingRecordMutation) SetDocumentCategory(s string) {
	m.document_category = &s
}

// DocumentCategory returns the value of the "document_category" field in the mutation.
func (m *StagingRecordMutation) DocumentCategory() (r string, exists bool) {
	v := m.document_category
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentCategory returns the old "document_category" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldDocumentCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentCategory: %w", err)
	}
	return oldValue.DocumentCategory, nil
}

// ResetDocumentCategory resets all changes to the "document_category" field.
func (m *StagingRecordMutation) ResetDocumentCategory() {
	m.document_category = nil
}

// SetHeaderRow sets the "header_row" field.
func (m *StagingRecordMutation) SetHeaderRow(i int) {
	m.header_row = &i
	m.addheader_row = nil
}

// HeaderRow returns the value of the "header_row" field in the mutation.
func (m *StagingRecordMutation) HeaderRow() (r int, exists bool) {
	v := m.header_row
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaderRow returns the old "header_row" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldHeaderRow(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaderRow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaderRow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaderRow: %w", err)
	}
	return oldValue.HeaderRow, nil
}

// AddHeaderRow adds i to the "header_row" field.
func (m *StagingRecordMutation) AddHeaderRow(i int) {
	if m.addheader_row != nil {
		*m.addheader_row += i
	} else {
		m.addheader_row = &i
	}
}

// AddedHeaderRow returns the value that was added to the "header_row" field in this mutation.
func (m *StagingRecordMutation) AddedHeaderRow() (r int, exists bool) {
	v := m.addheader_row
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeaderRow resets all changes to the "header_row" field.
func (m *StagingRecordMutation) ResetHeaderRow() {
	m.header_row = nil
	m.addheader_row = nil
}

// SetUserID sets the "user_id" field.
func (m *StagingRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StagingRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StagingRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetConnector sets the "connector" field.
func (m *StagingRecordMutation) SetConnector(s string) {
	m.connector = &s
}

// Connector returns the value of the "connector" field in the mutation.
func (m *StagingRecordMutation) Connector() (r string, exists bool) {
	v := m.connector
	if v == nil {
		return
	}
	return *v, true
}

// OldConnector returns the old "connector" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldConnector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnector: %w", err)
	}
	return oldValue.Connector, nil
}

// ResetConnector resets all changes to the "connector" field.
func (m *StagingRecordMutation) ResetConnector() {
	m.connector = nil
}

// SetSumValue sets the "sum_value" field.
func (m *StagingRecordMutation) SetSumValue(f float64) {
	m.sum_value = &f
	m.addsum_value = nil
}

// SumValue returns the value of the "sum_value" field in the mutation.
func (m *StagingRecordMutation) SumValue() (r float64, exists bool) {
	v := m.sum_value
	if v == nil {
		return
	}
	return *v, true
}

// OldSumValue returns the old "sum_value" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldSumValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSumValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSumValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSumValue: %w", err)
	}
	return oldValue.SumValue, nil
}

// AddSumValue adds f to the "sum_value" field.
func (m *StagingRecordMutation) AddSumValue(f float64) {
	if m.addsum_value != nil {
		*m.addsum_value += f
	} else {
		m.addsum_value = &f
	}
}

// AddedSumValue returns the value that was added to the "sum_value" field in this mutation.
func (m *StagingRecordMutation) AddedSumValue() (r float64, exists bool) {
	v := m.addsum_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetSumValue resets all changes to the "sum_value" field.
func (m *StagingRecordMutation) ResetSumValue() {
	m.sum_value = nil
	m.addsum_value = nil
}

// SetBranchCode sets the "branch_code" field.
func (m *StagingRecordMutation) SetBranchCode(s string) {
	m.branch_code = &s
}

// BranchCode returns the value of the "branch_code" field in the mutation.
func (m *StagingRecordMutation) BranchCode() (r string, exists bool) {
	v := m.branch_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchCode returns the old "branch_code" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldBranchCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchCode: %w", err)
	}
	return oldValue.BranchCode, nil
}

// ClearBranchCode clears the value of the "branch_code" field.
func (m *StagingRecordMutation) ClearBranchCode() {
	m.branch_code = nil
	m.clearedFields[stagingrecord.FieldBranchCode] = struct{}{}
}

// BranchCodeCleared returns if the "branch_code" field was cleared in this mutation.
func (m *StagingRecordMutation) BranchCodeCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldBranchCode]
	return ok
}

// ResetBranchCode resets all changes to the "branch_code" field.
func (m *StagingRecordMutation) ResetBranchCode() {
	m.branch_code = nil
	delete(m.clearedFields, stagingrecord.FieldBranchCode)
}

// SetBranchName sets the "branch_name" field.
func (m *StagingRecordMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *StagingRecordMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *StagingRecordMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[stagingrecord.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *StagingRecordMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *StagingRecordMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, stagingrecord.FieldBranchName)
}

// SetOutletCode sets the "outlet_code" field.
func (m *StagingRecordMutation) SetOutletCode(s string) {
	m.outlet_code = &s
}

// OutletCode returns the value of the "outlet_code" field in the mutation.
func (m *StagingRecordMutation) OutletCode() (r string, exists bool) {
	v := m.outlet_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOutletCode returns the old "outlet_code" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldOutletCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutletCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutletCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutletCode: %w", err)
	}
	return oldValue.OutletCode, nil
}

// ClearOutletCode clears the value of the "outlet_code" field.
func (m *StagingRecordMutation) ClearOutletCode() {
	m.outlet_code = nil
	m.clearedFields[stagingrecord.FieldOutletCode] = struct{}{}
}

// OutletCodeCleared returns if the "outlet_code" field was cleared in this mutation.
func (m *StagingRecordMutation) OutletCodeCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldOutletCode]
	return ok
}

// ResetOutletCode resets all changes to the "outlet_code" field.
func (m *StagingRecordMutation) ResetOutletCode() {
	m.outlet_code = nil
	delete(m.clearedFields, stagingrecord.FieldOutletCode)
}

// SetOutletName sets the "outlet_name" field.
func (m *StagingRecordMutation) SetOutletName(s string) {
	m.outlet_name = &s
}

// OutletName returns the value of the "outlet_name" field in the mutation.
func (m *StagingRecordMutation) OutletName() (r string, exists bool) {
	v := m.outlet_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOutletName returns the old "outlet_name" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldOutletName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutletName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutletName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutletName: %w", err)
	}
	return oldValue.OutletName, nil
}

// ClearOutletName clears the value of the "outlet_name" field.
func (m *StagingRecordMutation) ClearOutletName() {
	m.outlet_name = nil
	m.clearedFields[stagingrecord.FieldOutletName] = struct{}{}
}

// OutletNameCleared returns if the "outlet_name" field was cleared in this mutation.
func (m *StagingRecordMutation) OutletNameCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldOutletName]
	return ok
}

// ResetOutletName resets all changes to the "outlet_name" field.
func (m *StagingRecordMutation) ResetOutletName() {
	m.outlet_name = nil
	delete(m.clearedFields, stagingrecord.FieldOutletName)
}

// SetDocDate sets the "doc_date" field.
func (m *StagingRecordMutation) SetDocDate(t time.Time) {
	m.doc_date = &t
}

// DocDate returns the value of the "doc_date" field in the mutation.
func (m *StagingRecordMutation) DocDate() (r time.Time, exists bool) {
	v := m.doc_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocDate returns the old "doc_date" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldDocDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocDate: %w", err)
	}
	return oldValue.DocDate, nil
}

// ClearDocDate clears the value of the "doc_date" field.
func (m *StagingRecordMutation) ClearDocDate() {
	m.doc_date = nil
	m.clearedFields[stagingrecord.FieldDocDate] = struct{}{}
}

// DocDateCleared returns if the "doc_date" field was cleared in this mutation.
func (m *StagingRecordMutation) DocDateCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldDocDate]
	return ok
}

// ResetDocDate resets all changes to the "doc_date" field.
func (m *StagingRecordMutation) ResetDocDate() {
	m.doc_date = nil
	delete(m.clearedFields, stagingrecord.FieldDocDate)
}

// SetRowIndex sets the "row_index" field.
func (m *StagingRecordMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *StagingRecordMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *StagingRecordMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *StagingRecordMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *StagingRecordMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StagingRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StagingRecordMutation builder.
func (m *StagingRecordMutation) Where(ps ...predicate.StagingRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingRecord).
func (m *StagingRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.filename != nil {
		fields = append(fields, stagingrecord.FieldFilename)
	}
	if m.document_type != nil {
		fields = append(fields, stagingrecord.FieldDocumentType)
	}
	if m.document_category != nil {
		fields = append(fields, stagingrecord.FieldDocumentCategory)
	}
	if m.header_row != nil {
		fields = append(fields, stagingrecord.FieldHeaderRow)
	}
	if m.user_id != nil {
		fields = append(fields, stagingrecord.FieldUserID)
	}
	if m.connector != nil {
		fields = append(fields, stagingrecord.FieldConnector)
	}
	if m.sum_value != nil {
		fields = append(fields, stagingrecord.FieldSumValue)
	}
	if m.branch_code != nil {
		fields = append(fields, stagingrecord.FieldBranchCode)
	}
	if m.branch_name != nil {
		fields = append(fields, stagingrecord.FieldBranchName)
	}
	if m.outlet_code != nil {
		fields = append(fields, stagingrecord.FieldOutletCode)
	}
	if m.outlet_name != nil {
		fields = append(fields, stagingrecord.FieldOutletName)
	}
	if m.doc_date != nil {
		fields = append(fields, stagingrecord.FieldDocDate)
	}
	if m.row_index != nil {
		fields = append(fields, stagingrecord.FieldRowIndex)
	}
	if m.created_at != nil {
		fields = append(fields, stagingrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingrecord.FieldFilename:
		return m.Filename()
	case stagingrecord.FieldDocumentType:
		return m.DocumentType()
	case stagingrecord.FieldDocumentCategory:
		return m.DocumentCategory()
	case stagingrecord.FieldHeaderRow:
		return m.HeaderRow()
	case stagingrecord.FieldUserID:
		return m.UserID()
	case stagingrecord.FieldConnector:
		return m.Connector()
	case stagingrecord.FieldSumValue:
		return m.SumValue()
	case stagingrecord.FieldBranchCode:
		return m.BranchCode()
	case stagingrecord.FieldBranchName:
		return m.BranchName()
	case stagingrecord.FieldOutletCode:
		return m.OutletCode()
	case stagingrecord.FieldOutletName:
		return m.OutletName()
	case stagingrecord.FieldDocDate:
		return m.DocDate()
	case stagingrecord.FieldRowIndex:
		return m.RowIndex()
	case stagingrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingrecord.FieldFilename:
		return m.OldFilename(ctx)
	case stagingrecord.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case stagingrecord.FieldDocumentCategory:
		return m.OldDocumentCategory(ctx)
	case stagingrecord.FieldHeaderRow:
		return m.OldHeaderRow(ctx)
	case stagingrecord.FieldUserID:
		return m.OldUserID(ctx)
	case stagingrecord.FieldConnector:
		return m.OldConnector(ctx)
	case stagingrecord.FieldSumValue:
		return m.OldSumValue(ctx)
	case stagingrecord.FieldBranchCode:
		return m.OldBranchCode(ctx)
	case stagingrecord.FieldBranchName:
		return m.OldBranchName(ctx)
	case stagingrecord.FieldOutletCode:
		return m.OldOutletCode(ctx)
	case stagingrecord.FieldOutletName:
		return m.OldOutletName(ctx)
	case stagingrecord.FieldDocDate:
		return m.OldDocDate(ctx)
	case stagingrecord.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case stagingrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StagingRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingrecord.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case stagingrecord.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case stagingrecord.FieldDocumentCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentCategory(v)
		return nil
	case stagingrecord.FieldHeaderRow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaderRow(v)
		return nil
	case stagingrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case stagingrecord.FieldConnector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnector(v)
		return nil
	case stagingrecord.FieldSumValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSumValue(v)
		return nil
	case stagingrecord.FieldBranchCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchCode(v)
		return nil
	case stagingrecord.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case stagingrecord.FieldOutletCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutletCode(v)
		return nil
	case stagingrecord.FieldOutletName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutletName(v)
		return nil
	case stagingrecord.FieldDocDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocDate(v)
		return nil
	case stagingrecord.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case stagingrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StagingRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingRecordMutation) AddedFields() []string {
	var fields []string
	if m.addheader_row != nil {
		fields = append(fields, stagingrecord.FieldHeaderRow)
	}
	if m.addsum_value != nil {
		fields = append(fields, stagingrecord.FieldSumValue)
	}
	if m.addrow_index != nil {
		fields = append(fields, stagingrecord.FieldRowIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stagingrecord.FieldHeaderRow:
		return m.AddedHeaderRow()
	case stagingrecord.FieldSumValue:
		return m.AddedSumValue()
	case stagingrecord.FieldRowIndex:
		return m.AddedRowIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stagingrecord.FieldHeaderRow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeaderRow(v)
		return nil
	case stagingrecord.FieldSumValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSumValue(v)
		return nil
	case stagingrecord.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	}
	return fmt.Errorf("unknown StagingRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingrecord.FieldBranchCode) {
		fields = append(fields, stagingrecord.FieldBranchCode)
	}
	if m.FieldCleared(stagingrecord.FieldBranchName) {
		fields = append(fields, stagingrecord.FieldBranchName)
	}
	if m.FieldCleared(stagingrecord.FieldOutletCode) {
		fields = append(fields, stagingrecord.FieldOutletCode)
	}
	if m.FieldCleared(stagingrecord.FieldOutletName) {
		fields = append(fields, stagingrecord.FieldOutletName)
	}
	if m.FieldCleared(stagingrecord.FieldDocDate) {
		fields = append(fields, stagingrecord.FieldDocDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingRecordMutation) ClearField(name string) error {
	switch name {
	case stagingrecord.FieldBranchCode:
		m.ClearBranchCode()
		return nil
	case stagingrecord.FieldBranchName:
		m.ClearBranchName()
		return nil
	case stagingrecord.FieldOutletCode:
		m.ClearOutletCode()
		return nil
	case stagingrecord.FieldOutletName:
		m.ClearOutletName()
		return nil
	case stagingrecord.FieldDocDate:
		m.ClearDocDate()
		return nil
	}
	return fmt.Errorf("unknown StagingRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingRecordMutation) ResetField(name string) error {
	switch name {
	case stagingrecord.FieldFilename:
		m.ResetFilename()
		return nil
	case stagingrecord.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case stagingrecord.FieldDocumentCategory:
		m.ResetDocumentCategory()
		return nil
	case stagingrecord.FieldHeaderRow:
		m.ResetHeaderRow()
		return nil
	case stagingrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case stagingrecord.FieldConnector:
		m.ResetConnector()
		return nil
	case stagingrecord.FieldSumValue:
		m.ResetSumValue()
		return nil
	case stagingrecord.FieldBranchCode:
		m.ResetBranchCode()
		return nil
	case stagingrecord.FieldBranchName:
		m.ResetBranchName()
		return nil
	case stagingrecord.FieldOutletCode:
		m.ResetOutletCode()
		return nil
	case stagingrecord.FieldOutletName:
		m.ResetOutletName()
		return nil
	case stagingrecord.FieldDocDate:
		m.ResetDocDate()
		return nil
	case stagingrecord.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case stagingrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StagingRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StagingRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StagingRecord edge %s", name)
}

// ValidationRunMutation represents an operation that mutates the ValidationRun nodes in the graph.
type ValidationRunMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	filename                 *string
	document_type            *string
	document_category        *string
	user_id                  *string
	status                   *string
	score                    *float64
	addscore                 *float64
	total_records            *int
	addtotal_records         *int
	matched_records          *int
	addmatched_records       *int
	mismatched_records       *int
	addmismatched_records    *int
	processing_details       *json.RawMessage
	appendprocessing_details json.RawMessage
	error_message            *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	invalid_groups           map[int]struct{}
	removedinvalid_groups    map[int]struct{}
	clearedinvalid_groups    bool
	matched_groups           map[int]struct{}
	removedmatched_groups    map[int]struct{}
	clearedmatched_groups    bool
	invalid_rows             map[int]struct{}
	removedinvalid_rows      map[int]struct{}
	clearedinvalid_rows      bool
	matched_rows             map[int]struct{}
	removedmatched_rows      map[int]struct{}
	clearedmatched_rows      bool
	done                     bool
	oldValue                 func(context.Context) (*ValidationRun, error)
	predicates               []predicate.ValidationRun
}

var _ ent.Mutation = (*ValidationRunMutation)(nil)

// validationrunOption allows management of the mutation configuration using functional options.
type validationrunOption func(*ValidationRunMutation)

// newValidationRunMutation creates new mutation for the ValidationRun entity.
func newValidationRunMutation(c config, op Op, opts ...validationrunOption) *ValidationRunMutation {
	m := &ValidationRunMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationRunID sets the ID field of the mutation.
func withValidationRunID(id uuid.UUID) validationrunOption {
	return func(m *ValidationRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationRun
		)
		m.oldValue = func(ctx context.Context) (*ValidationRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationRun sets the old ValidationRun of the mutation.
func withValidationRun(node *ValidationRun) validationrunOption {
	return func(m *ValidationRunMutation) {
		m.oldValue = func(context.Context) (*ValidationRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationRun entities.
func (m *ValidationRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ValidationRunMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ValidationRunMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ValidationRunMutation) ResetFilename() {
	m.filename = nil
}

// SetDocumentType sets the "document_type" field.
func (m *ValidationRunMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *ValidationRunMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *ValidationRunMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetDocumentCategory sets the "document_category" field.
func (m *ValidationRunMutation) SetDocumentCategory(s string) {
	m.document_category = &s
}

// DocumentCategory returns the value of the "document_category" field in the mutation.
func (m *ValidationRunMutation) DocumentCategory() (r string, exists bool) {
	v := m.document_category
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentCategory returns the old "document_category" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldDocumentCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentCategory: %w", err)
	}
	return oldValue.DocumentCategory, nil
}

// ResetDocumentCategory resets all changes to the "document_category" field.
func (m *ValidationRunMutation) ResetDocumentCategory() {
	m.document_category = nil
}

// SetUserID sets the "user_id" field.
func (m *ValidationRunMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ValidationRunMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ValidationRunMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *ValidationRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ValidationRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ValidationRunMutation) ResetStatus() {
	m.status = nil
}

// SetScore sets the "score" field.
func (m *ValidationRunMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ValidationRunMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ValidationRunMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ValidationRunMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ValidationRunMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalRecords sets the "total_records" field.
func (m *ValidationRunMutation) SetTotalRecords(i int) {
	m.total_records = &i
	m.addtotal_records = nil
}

// TotalRecords returns the value of the "total_records" field in the mutation.
func (m *ValidationRunMutation) TotalRecords() (r int, exists bool) {
	v := m.total_records
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRecords returns the old "total_records" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldTotalRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRecords: %w", err)
	}
	return oldValue.TotalRecords, nil
}

// AddTotalRecords adds i to the "total_records" field.
func (m *ValidationRunMutation) AddTotalRecords(i int) {
	if m.addtotal_records != nil {
		*m.addtotal_records += i
	} else {
		m.addtotal_records = &i
	}
}

// AddedTotalRecords returns the value that was added to the "total_records" field in this mutation.
func (m *ValidationRunMutation) AddedTotalRecords() (r int, exists bool) {
	v := m.addtotal_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRecords resets all changes to the "total_records" field.
func (m *ValidationRunMutation) ResetTotalRecords() {
	m.total_records = nil
	m.addtotal_records = nil
}

// SetMatchedRecords sets the "matched_records" field.
func (m *ValidationRunMutation) SetMatchedRecords(i int) {
	m.matched_records = &i
	m.addmatched_records = nil
}

// MatchedRecords returns the value of the "matched_records" field in the mutation.
func (m *ValidationRunMutation) MatchedRecords() (r int, exists bool) {
	v := m.matched_records
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedRecords returns the old "matched_records" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldMatchedRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedRecords: %w", err)
	}
	return oldValue.MatchedRecords, nil
}

// AddMatchedRecords adds i to the "matched_records" field.
func (m *ValidationRunMutation) AddMatchedRecords(i int) {
	if m.addmatched_records != nil {
		*m.addmatched_records += i
	} else {
		m.addmatched_records = &i
	}
}

// AddedMatchedRecords returns the value that was added to the "matched_records" field in this mutation.
func (m *ValidationRunMutation) AddedMatchedRecords() (r int, exists bool) {
	v := m.addmatched_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchedRecords resets all changes to the "matched_records" field.
func (m *ValidationRunMutation) ResetMatchedRecords() {
	m.matched_records = nil
	m.addmatched_records = nil
}

// SetMismatchedRecords sets the "mismatched_records" field.
func (m *ValidationRunMutation) SetMismatchedRecords(i int) {
	m.mismatched_records = &i
	m.addmismatched_records = nil
}

// MismatchedRecords returns the value of the "mismatched_records" field in the mutation.
func (m *ValidationRunMutation) MismatchedRecords() (r int, exists bool) {
	v := m.mismatched_records
	if v == nil {
		return
	}
	return *v, true
}

// OldMismatchedRecords returns the old "mismatched_records" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldMismatchedRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMismatchedRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMismatchedRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMismatchedRecords: %w", err)
	}
	return oldValue.MismatchedRecords, nil
}

// AddMismatchedRecords adds i to the "mismatched_records" field.
func (m *ValidationRunMutation) AddMismatchedRecords(i int) {
	if m.addmismatched_records != nil {
		*m.addmismatched_records += i
	} else {
		m.addmismatched_records = &i
	}
}

// AddedMismatchedRecords returns the value that was added to the "mismatched_records" field in this mutation.
func (m *ValidationRunMutation) AddedMismatchedRecords() (r int, exists bool) {
	v := m.addmismatched_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetMismatchedRecords resets all changes to the "mismatched_records" field.
func (m *ValidationRunMutation) ResetMismatchedRecords() {
	m.mismatched_records = nil
	m.addmismatched_records = nil
}

// SetProcessingDetails sets the "processing_details" field.
func (m *ValidationRunMutation) SetProcessingDetails(jm json.RawMessage) {
	m.processing_details = &jm
	m.appendprocessing_details = nil
}

// ProcessingDetails returns the value of the "processing_details" field in the mutation.
func (m *ValidationRunMutation) ProcessingDetails() (r json.RawMessage, exists bool) {
	v := m.processing_details
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingDetails returns the old "processing_details" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldProcessingDetails(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingDetails: %w", err)
	}
	return oldValue.ProcessingDetails, nil
}

// AppendProcessingDetails adds jm to the "processing_details" field.
func (m *ValidationRunMutation) AppendProcessingDetails(jm json.RawMessage) {
	m.appendprocessing_details = append(m.appendprocessing_details, jm...)
}

// AppendedProcessingDetails returns the list of values that were appended to the "processing_details" field in this mutation.
func (m *ValidationRunMutation) AppendedProcessingDetails() (json.RawMessage, bool) {
	if len(m.appendprocessing_details) == 0 {
		return nil, false
	}
	return m.appendprocessing_details, true
}

// ClearProcessingDetails clears the value of the "processing_details" field.
func (m *ValidationRunMutation) ClearProcessingDetails() {
	m.processing_details = nil
	m.appendprocessing_details = nil
	m.clearedFields[validationrun.FieldProcessingDetails] = struct{}{}
}

// ProcessingDetailsCleared returns if the "processing_details" field was cleared in this mutation.
func (m *ValidationRunMutation) ProcessingDetailsCleared() bool {
	_, ok := m.clearedFields[validationrun.FieldProcessingDetails]
	return ok
}

// ResetProcessingDetails resets all changes to the "processing_details" field.
func (m *ValidationRunMutation) ResetProcessingDetails() {
	m.processing_details = nil
	m.appendprocessing_details = nil
	delete(m.clearedFields, validationrun.FieldProcessingDetails)
}

// SetErrorMessage sets the "error_message" field.
func (m *ValidationRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ValidationRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ValidationRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[validationrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ValidationRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[validationrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ValidationRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, validationrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ValidationRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ValidationRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ValidationRun entity.
// If the ValidationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ValidationRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddInvalidGroupIDs adds the "invalid_groups" edge to the InvalidGroup entity by ids.
func (m *ValidationRunMutation) AddInvalidGroupIDs(ids ...int) {
	if m.invalid_groups == nil {
		m.invalid_groups = make(map[int]struct{})
	}
	for i := range ids {
		m.invalid_groups[ids[i]] = struct{}{}
	}
}

// ClearInvalidGroups clears the "invalid_groups" edge to the InvalidGroup entity.
func (m *ValidationRunMutation) ClearInvalidGroups() {
	m.clearedinvalid_groups = true
}

// InvalidGroupsCleared reports if the "invalid_groups" edge to the InvalidGroup entity was cleared.
func (m *ValidationRunMutation) InvalidGroupsCleared() bool {
	return m.clearedinvalid_groups
}

// RemoveInvalidGroupIDs removes the "invalid_groups" edge to the InvalidGroup entity by IDs.
func (m *ValidationRunMutation) RemoveInvalidGroupIDs(ids ...int) {
	if m.removedinvalid_groups == nil {
		m.removedinvalid_groups = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.invalid_groups, ids[i])
		m.removedinvalid_groups[ids[i]] = struct{}{}
	}
}

// RemovedInvalidGroups returns the removed IDs of the "invalid_groups" edge to the InvalidGroup entity.
func (m *ValidationRunMutation) RemovedInvalidGroupsIDs() (ids []int) {
	for id := range m.removedinvalid_groups {
		ids = append(ids, id)
	}
	return
}

// InvalidGroupsIDs returns the "invalid_groups" edge IDs in the mutation.
func (m *ValidationRunMutation) InvalidGroupsIDs() (ids []int) {
	for id := range m.invalid_groups {
		ids = append(ids, id)
	}
	return
}

// ResetInvalidGroups resets all changes to the "invalid_groups" edge.
func (m *ValidationRunMutation) ResetInvalidGroups() {
	m.invalid_groups = nil
	m.clearedinvalid_groups = false
	m.removedinvalid_groups = nil
}

// AddMatchedGroupIDs adds the "matched_groups" edge to the MatchedGroup entity by ids.
func (m *ValidationRunMutation) AddMatchedGroupIDs(ids ...int) {
	if m.matched_groups == nil {
		m.matched_groups = make(map[int]struct{})
	}
	for i := range ids {
		m.matched_groups[ids[i]] = struct{}{}
	}
}

// ClearMatchedGroups clears the "matched_groups" edge to the MatchedGroup entity.
func (m *ValidationRunMutation) ClearMatchedGroups() {
	m.clearedmatched_groups = true
}

// MatchedGroupsCleared reports if the "matched_groups" edge to the MatchedGroup entity was cleared.
func (m *ValidationRunMutation) MatchedGroupsCleared() bool {
	return m.clearedmatched_groups
}

// RemoveMatchedGroupIDs removes the "matched_groups" edge to the MatchedGroup entity by IDs.
func (m *ValidationRunMutation) RemoveMatchedGroupIDs(ids ...int) {
	if m.removedmatched_groups == nil {
		m.removedmatched_groups = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.matched_groups, ids[i])
		m.removedmatched_groups[ids[i]] = struct{}{}
	}
}

// RemovedMatchedGroups returns the removed IDs of the "matched_groups" edge to the MatchedGroup entity.
func (m *ValidationRunMutation) RemovedMatchedGroupsIDs() (ids []int) {
	for id := range m.removedmatched_groups {
		ids = append(ids, id)
	}
	return
}

// MatchedGroupsIDs returns the "matched_groups" edge IDs in the mutation.
func (m *ValidationRunMutation) MatchedGroupsIDs() (ids []int) {
	for id := range m.matched_groups {
		ids = append(ids, id)
	}
	return
}

// ResetMatchedGroups resets all changes to the "matched_groups" edge.
func (m *ValidationRunMutation) ResetMatchedGroups() {
	m.matched_groups = nil
	m.clearedmatched_groups = false
	m.removedmatched_groups = nil
}

// AddInvalidRowIDs adds the "invalid_rows" edge to the InvalidRow entity by ids.
func (m *ValidationRunMutation) AddInvalidRowIDs(ids ...int) {
	if m.invalid_rows == nil {
		m.invalid_rows = make(map[int]struct{})
	}
	for i := range ids {
		m.invalid_rows[ids[i]] = struct{}{}
	}
}

// ClearInvalidRows clears the "invalid_rows" edge to the InvalidRow entity.
func (m *ValidationRunMutation) ClearInvalidRows() {
	m.clearedinvalid_rows = true
}

// InvalidRowsCleared reports if the "invalid_rows" edge to the InvalidRow entity was cleared.
func (m *ValidationRunMutation) InvalidRowsCleared() bool {
	return m.clearedinvalid_rows
}

// RemoveInvalidRowIDs removes the "invalid_rows" edge to the InvalidRow entity by IDs.
func (m *ValidationRunMutation) RemoveInvalidRowIDs(ids ...int) {
	if m.removedinvalid_rows == nil {
		m.removedinvalid_rows = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.invalid_rows, ids[i])
		m.removedinvalid_rows[ids[i]] = struct{}{}
	}
}

// RemovedInvalidRows returns the removed IDs of the "invalid_rows" edge to the InvalidRow entity.
func (m *ValidationRunMutation) RemovedInvalidRowsIDs() (ids []int) {
	for id := range m.removedinvalid_rows {
		ids = append(ids, id)
	}
	return
}

// InvalidRowsIDs returns the "invalid_rows" edge IDs in the mutation.
func (m *ValidationRunMutation) InvalidRowsIDs() (ids []int) {
	for id := range m.invalid_rows {
		ids = append(ids, id)
	}
	return
}

// ResetInvalidRows resets all changes to the "invalid_rows" edge.
func (m *ValidationRunMutation) ResetInvalidRows() {
	m.invalid_rows = nil
	m.clearedinvalid_rows = false
	m.removedinvalid_rows = nil
}

// AddMatchedRowIDs adds the "matched_rows" edge to the MatchedRow entity by ids.
func (m *ValidationRunMutation) AddMatchedRowIDs(ids ...int) {
	if m.matched_rows == nil {
		m.matched_rows = make(map[int]struct{})
	}
	for i := range ids {
		m.matched_rows[ids[i]] = struct{}{}
	}
}

// ClearMatchedRows clears the "matched_rows" edge to the MatchedRow entity.
func (m *ValidationRunMutation) ClearMatchedRows() {
	m.clearedmatched_rows = true
}

// MatchedRowsCleared reports if the "matched_rows" edge to the MatchedRow entity was cleared.
func (m *ValidationRunMutation) MatchedRowsCleared() bool {
	return m.clearedmatched_rows
}

// RemoveMatchedRowIDs removes the "matched_rows" edge to the MatchedRow entity by IDs.
func (m *ValidationRunMutation) RemoveMatchedRowIDs(ids ...int) {
	if m.removedmatched_rows == nil {
		m.removedmatched_rows = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.matched_rows, ids[i])
		m.removedmatched_rows[ids[i]] = struct{}{}
	}
}

// RemovedMatchedRows returns the removed IDs of the "matched_rows" edge to the MatchedRow entity.
func (m *ValidationRunMutation) RemovedMatchedRowsIDs() (ids []int) {
	for id := range m.removedmatched_rows {
		ids = append(ids, id)
	}
	return
}

// MatchedRowsIDs returns the "matched_rows" edge IDs in the mutation.
func (m *ValidationRunMutation) MatchedRowsIDs() (ids []int) {
	for id := range m.matched_rows {
		ids = append(ids, id)
	}
	return
}

// ResetMatchedRows resets all changes to the "matched_rows" edge.
func (m *ValidationRunMutation) ResetMatchedRows() {
	m.matched_rows = nil
	m.clearedmatched_rows = false
	m.removedmatched_rows = nil
}

// Where appends a list predicates to the ValidationRunMutation builder.
func (m *ValidationRunMutation) Where(ps ...predicate.ValidationRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationRun).
func (m *ValidationRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationRunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.filename != nil {
		fields = append(fields, validationrun.FieldFilename)
	}
	if m.document_type != nil {
		fields = append(fields, validationrun.FieldDocumentType)
	}
	if m.document_category != nil {
		fields = append(fields, validationrun.FieldDocumentCategory)
	}
	if m.user_id != nil {
		fields = append(fields, validationrun.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, validationrun.FieldStatus)
	}
	if m.score != nil {
		fields = append(fields, validationrun.FieldScore)
	}
	if m.total_records != nil {
		fields = append(fields, validationrun.FieldTotalRecords)
	}
	if m.matched_records != nil {
		fields = append(fields, validationrun.FieldMatchedRecords)
	}
	if m.mismatched_records != nil {
		fields = append(fields, validationrun.FieldMismatchedRecords)
	}
	if m.processing_details != nil {
		fields = append(fields, validationrun.FieldProcessingDetails)
	}
	if m.error_message != nil {
		fields = append(fields, validationrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, validationrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, validationrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationrun.FieldFilename:
		return m.Filename()
	case validationrun.FieldDocumentType:
		return m.DocumentType()
	case validationrun.FieldDocumentCategory:
		return m.DocumentCategory()
	case validationrun.FieldUserID:
		return m.UserID()
	case validationrun.FieldStatus:
		return m.Status()
	case validationrun.FieldScore:
		return m.Score()
	case validationrun.FieldTotalRecords:
		return m.TotalRecords()
	case validationrun.FieldMatchedRecords:
		return m.MatchedRecords()
	case validationrun.FieldMismatchedRecords:
		return m.MismatchedRecords()
	case validationrun.FieldProcessingDetails:
		return m.ProcessingDetails()
	case validationrun.FieldErrorMessage:
		return m.ErrorMessage()
	case validationrun.FieldCreatedAt:
		return m.CreatedAt()
	case validationrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationrun.FieldFilename:
		return m.OldFilename(ctx)
	case validationrun.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case validationrun.FieldDocumentCategory:
		return m.OldDocumentCategory(ctx)
	case validationrun.FieldUserID:
		return m.OldUserID(ctx)
	case validationrun.FieldStatus:
		return m.OldStatus(ctx)
	case validationrun.FieldScore:
		return m.OldScore(ctx)
	case validationrun.FieldTotalRecords:
		return m.OldTotalRecords(ctx)
	case validationrun.FieldMatchedRecords:
		return m.OldMatchedRecords(ctx)
	case validationrun.FieldMismatchedRecords:
		return m.OldMismatchedRecords(ctx)
	case validationrun.FieldProcessingDetails:
		return m.OldProcessingDetails(ctx)
	case validationrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case validationrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case validationrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationrun.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case validationrun.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case validationrun.FieldDocumentCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentCategory(v)
		return nil
	case validationrun.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case validationrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case validationrun.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case validationrun.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRecords(v)
		return nil
	case validationrun.FieldMatchedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedRecords(v)
		return nil
	case validationrun.FieldMismatchedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMismatchedRecords(v)
		return nil
	case validationrun.FieldProcessingDetails:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingDetails(v)
		return nil
	case validationrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case validationrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case validationrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationRunMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, validationrun.FieldScore)
	}
	if m.addtotal_records != nil {
		fields = append(fields, validationrun.FieldTotalRecords)
	}
	if m.addmatched_records != nil {
		fields = append(fields, validationrun.FieldMatchedRecords)
	}
	if m.addmismatched_records != nil {
		fields = append(fields, validationrun.FieldMismatchedRecords)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationrun.FieldScore:
		return m.AddedScore()
	case validationrun.FieldTotalRecords:
		return m.AddedTotalRecords()
	case validationrun.FieldMatchedRecords:
		return m.AddedMatchedRecords()
	case validationrun.FieldMismatchedRecords:
		return m.AddedMismatchedRecords()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationrun.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case validationrun.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRecords(v)
		return nil
	case validationrun.FieldMatchedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchedRecords(v)
		return nil
	case validationrun.FieldMismatchedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMismatchedRecords(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationrun.FieldProcessingDetails) {
		fields = append(fields, validationrun.FieldProcessingDetails)
	}
	if m.FieldCleared(validationrun.FieldErrorMessage) {
		fields = append(fields, validationrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationRunMutation) ClearField(name string) error {
	switch name {
	case validationrun.FieldProcessingDetails:
		m.ClearProcessingDetails()
		return nil
	case validationrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ValidationRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationRunMutation) ResetField(name string) error {
	switch name {
	case validationrun.FieldFilename:
		m.ResetFilename()
		return nil
	case validationrun.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case validationrun.FieldDocumentCategory:
		m.ResetDocumentCategory()
		return nil
	case validationrun.FieldUserID:
		m.ResetUserID()
		return nil
	case validationrun.FieldStatus:
		m.ResetStatus()
		return nil
	case validationrun.FieldScore:
		m.ResetScore()
		return nil
	case validationrun.FieldTotalRecords:
		m.ResetTotalRecords()
		return nil
	case validationrun.FieldMatchedRecords:
		m.ResetMatchedRecords()
		return nil
	case validationrun.FieldMismatchedRecords:
		m.ResetMismatchedRecords()
		return nil
	case validationrun.FieldProcessingDetails:
		m.ResetProcessingDetails()
		return nil
	case validationrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case validationrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case validationrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.invalid_groups != nil {
		edges = append(edges, validationrun.EdgeInvalidGroups)
	}
	if m.matched_groups != nil {
		edges = append(edges, validationrun.EdgeMatchedGroups)
	}
	if m.invalid_rows != nil {
		edges = append(edges, validationrun.EdgeInvalidRows)
	}
	if m.matched_rows != nil {
		edges = append(edges, validationrun.EdgeMatchedRows)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationrun.EdgeInvalidGroups:
		ids := make([]ent.Value, 0, len(m.invalid_groups))
		for id := range m.invalid_groups {
			ids = append(ids, id)
		}
		return ids
	case validationrun.EdgeMatchedGroups:
		ids := make([]ent.Value, 0, len(m.matched_groups))
		for id := range m.matched_groups {
			ids = append(ids, id)
		}
		return ids
	case validationrun.EdgeInvalidRows:
		ids := make([]ent.Value, 0, len(m.invalid_rows))
		for id := range m.invalid_rows {
			ids = append(ids, id)
		}
		return ids
	case validationrun.EdgeMatchedRows:
		ids := make([]ent.Value, 0, len(m.matched_rows))
		for id := range m.matched_rows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedinvalid_groups != nil {
		edges = append(edges, validationrun.EdgeInvalidGroups)
	}
	if m.removedmatched_groups != nil {
		edges = append(edges, validationrun.EdgeMatchedGroups)
	}
	if m.removedinvalid_rows != nil {
		edges = append(edges, validationrun.EdgeInvalidRows)
	}
	if m.removedmatched_rows != nil {
		edges = append(edges, validationrun.EdgeMatchedRows)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case validationrun.EdgeInvalidGroups:
		ids := make([]ent.Value, 0, len(m.removedinvalid_groups))
		for id := range m.removedinvalid_groups {
			ids = append(ids, id)
		}
		return ids
	case validationrun.EdgeMatchedGroups:
		ids := make([]ent.Value, 0, len(m.removedmatched_groups))
		for id := range m.removedmatched_groups {
			ids = append(ids, id)
		}
		return ids
	case validationrun.EdgeInvalidRows:
		ids := make([]ent.Value, 0, len(m.removedinvalid_rows))
		for id := range m.removedinvalid_rows {
			ids = append(ids, id)
		}
		return ids
	case validationrun.EdgeMatchedRows:
		ids := make([]ent.Value, 0, len(m.removedmatched_rows))
		for id := range m.removedmatched_rows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedinvalid_groups {
		edges = append(edges, validationrun.EdgeInvalidGroups)
	}
	if m.clearedmatched_groups {
		edges = append(edges, validationrun.EdgeMatchedGroups)
	}
	if m.clearedinvalid_rows {
		edges = append(edges, validationrun.EdgeInvalidRows)
	}
	if m.clearedmatched_rows {
		edges = append(edges, validationrun.EdgeMatchedRows)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationRunMutation) EdgeCleared(name string) bool {
	switch name {
	case validationrun.EdgeInvalidGroups:
		return m.clearedinvalid_groups
	case validationrun.EdgeMatchedGroups:
		return m.clearedmatched_groups
	case validationrun.EdgeInvalidRows:
		return m.clearedinvalid_rows
	case validationrun.EdgeMatchedRows:
		return m.clearedmatched_rows
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ValidationRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationRunMutation) ResetEdge(name string) error {
	switch name {
	case validationrun.EdgeInvalidGroups:
		m.ResetInvalidGroups()
		return nil
	case validationrun.EdgeMatchedGroups:
		m.ResetMatchedGroups()
		return nil
	case validationrun.EdgeInvalidRows:
		m.ResetInvalidRows()
		return nil
	case validationrun.EdgeMatchedRows:
		m.ResetMatchedRows()
		return nil
	}
	return fmt.Errorf("unknown ValidationRun edge %s", name)
}
