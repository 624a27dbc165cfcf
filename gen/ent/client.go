// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/stagingrecord"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// InvalidGroup is the client for interacting with the InvalidGroup builders.
	InvalidGroup *InvalidGroupClient
	// InvalidRow is the client for interacting with the InvalidRow builders.
	InvalidRow *InvalidRowClient
	// MatchedGroup is the client for interacting with the MatchedGroup builders.
	MatchedGroup *MatchedGroupClient
	// MatchedRow is the client for interacting with the MatchedRow builders.
	MatchedRow *MatchedRowClient
	// StagingRecord is the client for interacting with the StagingRecord builders.
	StagingRecord *StagingRecordClient
	// ValidationRun is the client for interacting with the ValidationRun builders.
	ValidationRun *ValidationRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.InvalidGroup = NewInvalidGroupClient(c.config)
	c.InvalidRow = NewInvalidRowClient(c.config)
	c.MatchedGroup = NewMatchedGroupClient(c.config)
	c.MatchedRow = NewMatchedRowClient(c.config)
	c.StagingRecord = NewStagingRecordClient(c.config)
	c.ValidationRun = NewValidationRunClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		InvalidGroup:  NewInvalidGroupClient(cfg),
		InvalidRow:    NewInvalidRowClient(cfg),
		MatchedGroup:  NewMatchedGroupClient(cfg),
		MatchedRow:    NewMatchedRowClient(cfg),
		StagingRecord: NewStagingRecordClient(cfg),
		ValidationRun: NewValidationRunClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		InvalidGroup:  NewInvalidGroupClient(cfg),
		InvalidRow:    NewInvalidRowClient(cfg),
		MatchedGroup:  NewMatchedGroupClient(cfg),
		MatchedRow:    NewMatchedRowClient(cfg),
		StagingRecord: NewStagingRecordClient(cfg),
		ValidationRun: NewValidationRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		InvalidGroup.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.InvalidGroup, c.InvalidRow, c.MatchedGroup, c.MatchedRow, c.StagingRecord,
		c.ValidationRun,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.InvalidGroup, c.InvalidRow, c.MatchedGroup, c.MatchedRow, c.StagingRecord,
		c.ValidationRun,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InvalidGroupMutation:
		return c.InvalidGroup.mutate(ctx, m)
	case *InvalidRowMutation:
		return c.InvalidRow.mutate(ctx, m)
	case *MatchedGroupMutation:
		return c.MatchedGroup.mutate(ctx, m)
	case *MatchedRowMutation:
		return c.MatchedRow.mutate(ctx, m)
	case *StagingRecordMutation:
		return c.StagingRecord.mutate(ctx, m)
	case *ValidationRunMutation:
		return c.ValidationRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InvalidGroupClient is a client for the InvalidGroup schema.
type InvalidGroupClient struct {
	config
}

// NewInvalidGroupClient returns a client for the InvalidGroup from the given config.
func NewInvalidGroupClient(c config) *InvalidGroupClient {
	return &InvalidGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invalidgroup.Hooks(f(g(h())))`.
func (c *InvalidGroupClient) Use(hooks ...Hook) {
	c.hooks.InvalidGroup = append(c.hooks.InvalidGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invalidgroup.Intercept(f(g(h())))`.
func (c *InvalidGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvalidGroup = append(c.inters.InvalidGroup, interceptors...)
}

// Create returns a builder for creating a InvalidGroup entity.
func (c *InvalidGroupClient) Create() *InvalidGroupCreate {
	mutation := newInvalidGroupMutation(c.config, OpCreate)
	return &InvalidGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvalidGroup entities.
func (c *InvalidGroupClient) CreateBulk(builders ...*InvalidGroupCreate) *InvalidGroupCreateBulk {
	return &InvalidGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvalidGroupClient) MapCreateBulk(slice any, setFunc func(*InvalidGroupCreate, int)) *InvalidGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvalidGroupCreateBulk{err: fmt.Errorf("calling to InvalidGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvalidGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvalidGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvalidGroup.
func (c *InvalidGroupClient) Update() *InvalidGroupUpdate {
	mutation := newInvalidGroupMutation(c.config, OpUpdate)
	return &InvalidGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvalidGroupClient) UpdateOne(_m *InvalidGroup) *InvalidGroupUpdateOne {
	mutation := newInvalidGroupMutation(c.config, OpUpdateOne, withInvalidGroup(_m))
	return &InvalidGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvalidGroupClient) UpdateOneID(id int) *InvalidGroupUpdateOne {
	mutation := newInvalidGroupMutation(c.config, OpUpdateOne, withInvalidGroupID(id))
	return &InvalidGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvalidGroup.
func (c *InvalidGroupClient) Delete() *InvalidGroupDelete {
	mutation := newInvalidGroupMutation(c.config, OpDelete)
	return &InvalidGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvalidGroupClient) DeleteOne(_m *InvalidGroup) *InvalidGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvalidGroupClient) DeleteOneID(id int) *InvalidGroupDeleteOne {
	builder := c.Delete().Where(invalidgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvalidGroupDeleteOne{builder}
}

// Query returns a query builder for InvalidGroup.
func (c *InvalidGroupClient) Query() *InvalidGroupQuery {
	return &InvalidGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvalidGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a InvalidGroup entity by its id.
func (c *InvalidGroupClient) Get(ctx context.Context, id int) (*InvalidGroup, error) {
	return c.Query().Where(invalidgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvalidGroupClient) GetX(ctx context.Context, id int) *InvalidGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a InvalidGroup.
func (c *InvalidGroupClient) QueryRun(_m *InvalidGroup) *ValidationRunQuery {
	query := (&ValidationRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invalidgroup.Table, invalidgroup.FieldID, id),
			sqlgraph.To(validationrun.Table, validationrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invalidgroup.RunTable, invalidgroup.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvalidGroupClient) Hooks() []Hook {
	return c.hooks.InvalidGroup
}

// Interceptors returns the client interceptors.
func (c *InvalidGroupClient) Interceptors() []Interceptor {
	return c.inters.InvalidGroup
}

func (c *InvalidGroupClient) mutate(ctx context.Context, m *InvalidGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvalidGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvalidGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvalidGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvalidGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvalidGroup mutation op: %q", m.Op())
	}
}

// InvalidRowClient is a client for the InvalidRow schema.
type InvalidRowClient struct {
	config
}

// NewInvalidRowClient returns a client for the InvalidRow from the given config.
func NewInvalidRowClient(c config) *InvalidRowClient {
	return &InvalidRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invalidrow.Hooks(f(g(h())))`.
func (c *InvalidRowClient) Use(hooks ...Hook) {
	c.hooks.InvalidRow = append(c.hooks.InvalidRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invalidrow.Intercept(f(g(h())))`.
func (c *InvalidRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvalidRow = append(c.inters.InvalidRow, interceptors...)
}

// Create returns a builder for creating a InvalidRow entity.
func (c *InvalidRowClient) Create() *InvalidRowCreate {
	mutation := newInvalidRowMutation(c.config, OpCreate)
	return &InvalidRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvalidRow entities.
func (c *InvalidRowClient) CreateBulk(builders ...*InvalidRowCreate) *InvalidRowCreateBulk {
	return &InvalidRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvalidRowClient) MapCreateBulk(slice any, setFunc func(*InvalidRowCreate, int)) *InvalidRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvalidRowCreateBulk{err: fmt.Errorf("calling to InvalidRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvalidRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvalidRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvalidRow.
func (c *InvalidRowClient) Update() *InvalidRowUpdate {
	mutation := newInvalidRowMutation(c.config, OpUpdate)
	return &InvalidRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvalidRowClient) UpdateOne(_m *InvalidRow) *InvalidRowUpdateOne {
	mutation := newInvalidRowMutation(c.config, OpUpdateOne, withInvalidRow(_m))
	return &InvalidRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvalidRowClient) UpdateOneID(id int) *InvalidRowUpdateOne {
	mutation := newInvalidRowMutation(c.config, OpUpdateOne, withInvalidRowID(id))
	return &InvalidRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvalidRow.
func (c *InvalidRowClient) Delete() *InvalidRowDelete {
	mutation := newInvalidRowMutation(c.config, OpDelete)
	return &InvalidRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvalidRowClient) DeleteOne(_m *InvalidRow) *InvalidRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvalidRowClient) DeleteOneID(id int) *InvalidRowDeleteOne {
	builder := c.Delete().Where(invalidrow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvalidRowDeleteOne{builder}
}

// Query returns a query builder for InvalidRow.
func (c *InvalidRowClient) Query() *InvalidRowQuery {
	return &InvalidRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvalidRow},
		inters: c.Interceptors(),
	}
}

// Get returns a InvalidRow entity by its id.
func (c *InvalidRowClient) Get(ctx context.Context, id int) (*InvalidRow, error) {
	return c.Query().Where(invalidrow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvalidRowClient) GetX(ctx context.Context, id int) *InvalidRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a InvalidRow.
func (c *InvalidRowClient) QueryRun(_m *InvalidRow) *ValidationRunQuery {
	query := (&ValidationRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invalidrow.Table, invalidrow.FieldID, id),
			sqlgraph.To(validationrun.Table, validationrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invalidrow.RunTable, invalidrow.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvalidRowClient) Hooks() []Hook {
	return c.hooks.InvalidRow
}

// Interceptors returns the client interceptors.
func (c *InvalidRowClient) Interceptors() []Interceptor {
	return c.inters.InvalidRow
}

func (c *InvalidRowClient) mutate(ctx context.Context, m *InvalidRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvalidRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvalidRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvalidRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvalidRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvalidRow mutation op: %q", m.Op())
	}
}

// MatchedGroupClient is a client for the MatchedGroup schema.
type MatchedGroupClient struct {
	config
}

// NewMatchedGroupClient returns a client for the MatchedGroup from the given config.
func NewMatchedGroupClient(c config) *MatchedGroupClient {
	return &MatchedGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matchedgroup.Hooks(f(g(h())))`.
func (c *MatchedGroupClient) Use(hooks ...Hook) {
	c.hooks.MatchedGroup = append(c.hooks.MatchedGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matchedgroup.Intercept(f(g(h())))`.
func (c *MatchedGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatchedGroup = append(c.inters.MatchedGroup, interceptors...)
}

// Create returns a builder for creating a MatchedGroup entity.
func (c *MatchedGroupClient) Create() *MatchedGroupCreate {
	mutation := newMatchedGroupMutation(c.config, OpCreate)
	return &MatchedGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatchedGroup entities.
func (c *MatchedGroupClient) CreateBulk(builders ...*MatchedGroupCreate) *MatchedGroupCreateBulk {
	return &MatchedGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchedGroupClient) MapCreateBulk(slice any, setFunc func(*MatchedGroupCreate, int)) *MatchedGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchedGroupCreateBulk{err: fmt.Errorf("calling to MatchedGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchedGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchedGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatchedGroup.
func (c *MatchedGroupClient) Update() *MatchedGroupUpdate {
	mutation := newMatchedGroupMutation(c.config, OpUpdate)
	return &MatchedGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchedGroupClient) UpdateOne(_m *MatchedGroup) *MatchedGroupUpdateOne {
	mutation := newMatchedGroupMutation(c.config, OpUpdateOne, withMatchedGroup(_m))
	return &MatchedGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchedGroupClient) UpdateOneID(id int) *MatchedGroupUpdateOne {
	mutation := newMatchedGroupMutation(c.config, OpUpdateOne, withMatchedGroupID(id))
	return &MatchedGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatchedGroup.
func (c *MatchedGroupClient) Delete() *MatchedGroupDelete {
	mutation := newMatchedGroupMutation(c.config, OpDelete)
	return &MatchedGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchedGroupClient) DeleteOne(_m *MatchedGroup) *MatchedGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchedGroupClient) DeleteOneID(id int) *MatchedGroupDeleteOne {
	builder := c.Delete().Where(matchedgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchedGroupDeleteOne{builder}
}

// Query returns a query builder for MatchedGroup.
func (c *MatchedGroupClient) Query() *MatchedGroupQuery {
	return &MatchedGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatchedGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a MatchedGroup entity by its id.
func (c *MatchedGroupClient) Get(ctx context.Context, id int) (*MatchedGroup, error) {
	return c.Query().Where(matchedgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchedGroupClient) GetX(ctx context.Context, id int) *MatchedGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a MatchedGroup.
func (c *MatchedGroupClient) QueryRun(_m *MatchedGroup) *ValidationRunQuery {
	query := (&ValidationRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matchedgroup.Table, matchedgroup.FieldID, id),
			sqlgraph.To(validationrun.Table, validationrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matchedgroup.RunTable, matchedgroup.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatchedGroupClient) Hooks() []Hook {
	return c.hooks.MatchedGroup
}

// Interceptors returns the client interceptors.
func (c *MatchedGroupClient) Interceptors() []Interceptor {
	return c.inters.MatchedGroup
}

func (c *MatchedGroupClient) mutate(ctx context.Context, m *MatchedGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchedGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchedGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchedGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchedGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MatchedGroup mutation op: %q", m.Op())
	}
}

// MatchedRowClient is a client for the MatchedRow schema.
type MatchedRowClient struct {
	config
}

// NewMatchedRowClient returns a client for the MatchedRow from the given config.
func NewMatchedRowClient(c config) *MatchedRowClient {
	return &MatchedRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matchedrow.Hooks(f(g(h())))`.
func (c *MatchedRowClient) Use(hooks ...Hook) {
	c.hooks.MatchedRow = append(c.hooks.MatchedRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matchedrow.Intercept(f(g(h())))`.
func (c *MatchedRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatchedRow = append(c.inters.MatchedRow, interceptors...)
}

// Create returns a builder for creating a MatchedRow entity.
func (c *MatchedRowClient) Create() *MatchedRowCreate {
	mutation := newMatchedRowMutation(c.config, OpCreate)
	return &MatchedRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatchedRow entities.
func (c *MatchedRowClient) CreateBulk(builders ...*MatchedRowCreate) *MatchedRowCreateBulk {
	return &MatchedRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchedRowClient) MapCreateBulk(slice any, setFunc func(*MatchedRowCreate, int)) *MatchedRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchedRowCreateBulk{err: fmt.Errorf("calling to MatchedRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchedRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchedRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatchedRow.
func (c *MatchedRowClient) Update() *MatchedRowUpdate {
	mutation := newMatchedRowMutation(c.config, OpUpdate)
	return &MatchedRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchedRowClient) UpdateOne(_m *MatchedRow) *MatchedRowUpdateOne {
	mutation := newMatchedRowMutation(c.config, OpUpdateOne, withMatchedRow(_m))
	return &MatchedRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchedRowClient) UpdateOneID(id int) *MatchedRowUpdateOne {
	mutation := newMatchedRowMutation(c.config, OpUpdateOne, withMatchedRowID(id))
	return &MatchedRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatchedRow.
func (c *MatchedRowClient) Delete() *MatchedRowDelete {
	mutation := newMatchedRowMutation(c.config, OpDelete)
	return &MatchedRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchedRowClient) DeleteOne(_m *MatchedRow) *MatchedRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchedRowClient) DeleteOneID(id int) *MatchedRowDeleteOne {
	builder := c.Delete().Where(matchedrow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchedRowDeleteOne{builder}
}

// Query returns a query builder for MatchedRow.
func (c *MatchedRowClient) Query() *MatchedRowQuery {
	return &MatchedRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatchedRow},
		inters: c.Interceptors(),
	}
}

// Get returns a MatchedRow entity by its id.
func (c *MatchedRowClient) Get(ctx context.Context, id int) (*MatchedRow, error) {
	return c.Query().Where(matchedrow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchedRowClient) GetX(ctx context.Context, id int) *MatchedRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a MatchedRow.
func (c *MatchedRowClient) QueryRun(_m *MatchedRow) *ValidationRunQuery {
	query := (&ValidationRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matchedrow.Table, matchedrow.FieldID, id),
			sqlgraph.To(validationrun.Table, validationrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matchedrow.RunTable, matchedrow.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatchedRowClient) Hooks() []Hook {
	return c.hooks.MatchedRow
}

// Interceptors returns the client interceptors.
func (c *MatchedRowClient) Interceptors() []Interceptor {
	return c.inters.MatchedRow
}

func (c *MatchedRowClient) mutate(ctx context.Context, m *MatchedRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchedRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchedRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchedRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchedRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MatchedRow mutation op: %q", m.Op())
	}
}

// StagingRecordClient is a client for the StagingRecord schema.
type StagingRecordClient struct {
	config
}

// NewStagingRecordClient returns a client for the StagingRecord from the given config.
func NewStagingRecordClient(c config) *StagingRecordClient {
	return &StagingRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingrecord.Hooks(f(g(h())))`.
func (c *StagingRecordClient) Use(hooks ...Hook) {
	c.hooks.StagingRecord = append(c.hooks.StagingRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingrecord.Intercept(f(g(h())))`.
func (c *StagingRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingRecord = append(c.inters.StagingRecord, interceptors...)
}

// Create returns a builder for creating a StagingRecord entity.
func (c *StagingRecordClient) Create() *StagingRecordCreate {
	mutation := newStagingRecordMutation(c.config, OpCreate)
	return &StagingRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingRecord entities.
func (c *StagingRecordClient) CreateBulk(builders ...*StagingRecordCreate) *StagingRecordCreateBulk {
	return &StagingRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingRecordClient) MapCreateBulk(slice any, setFunc func(*StagingRecordCreate, int)) *StagingRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingRecordCreateBulk{err: fmt.Errorf("calling to StagingRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingRecord.
func (c *StagingRecordClient) Update() *StagingRecordUpdate {
	mutation := newStagingRecordMutation(c.config, OpUpdate)
	return &StagingRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingRecordClient) UpdateOne(_m *StagingRecord) *StagingRecordUpdateOne {
	mutation := newStagingRecordMutation(c.config, OpUpdateOne, withStagingRecord(_m))
	return &StagingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingRecordClient) UpdateOneID(id uuid.UUID) *StagingRecordUpdateOne {
	mutation := newStagingRecordMutation(c.config, OpUpdateOne, withStagingRecordID(id))
	return &StagingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingRecord.
func (c *StagingRecordClient) Delete() *StagingRecordDelete {
	mutation := newStagingRecordMutation(c.config, OpDelete)
	return &StagingRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingRecordClient) DeleteOne(_m *StagingRecord) *StagingRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingRecordClient) DeleteOneID(id uuid.UUID) *StagingRecordDeleteOne {
	builder := c.Delete().Where(stagingrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingRecordDeleteOne{builder}
}

// Query returns a query builder for StagingRecord.
func (c *StagingRecordClient) Query() *StagingRecordQuery {
	return &StagingRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingRecord entity by its id.
func (c *StagingRecordClient) Get(ctx context.Context, id uuid.UUID) (*StagingRecord, error) {
	return c.Query().Where(stagingrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingRecordClient) GetX(ctx context.Context, id uuid.UUID) *StagingRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingRecordClient) Hooks() []Hook {
	return c.hooks.StagingRecord
}

// Interceptors returns the client interceptors.
func (c *StagingRecordClient) Interceptors() []Interceptor {
	return c.inters.StagingRecord
}

func (c *StagingRecordClient) mutate(ctx context.Context, m *StagingRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingRecord mutation op: %q", m.Op())
	}
}

// ValidationRunClient is a client for the ValidationRun schema.
type ValidationRunClient struct {
	config
}

// NewValidationRunClient returns a client for the ValidationRun from the given config.
func NewValidationRunClient(c config) *ValidationRunClient {
	return &ValidationRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationrun.Hooks(f(g(h())))`.
func (c *ValidationRunClient) Use(hooks ...Hook) {
	c.hooks.ValidationRun = append(c.hooks.ValidationRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationrun.Intercept(f(g(h())))`.
func (c *ValidationRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationRun = append(c.inters.ValidationRun, interceptors...)
}

// Create returns a builder for creating a ValidationRun entity.
func (c *ValidationRunClient) Create() *ValidationRunCreate {
	mutation := newValidationRunMutation(c.config, OpCreate)
	return &ValidationRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationRun entities.
func (c *ValidationRunClient) CreateBulk(builders ...*ValidationRunCreate) *ValidationRunCreateBulk {
	return &ValidationRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationRunClient) MapCreateBulk(slice any, setFunc func(*ValidationRunCreate, int)) *ValidationRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationRunCreateBulk{err: fmt.Errorf("calling to ValidationRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationRun.
func (c *ValidationRunClient) Update() *ValidationRunUpdate {
	mutation := newValidationRunMutation(c.config, OpUpdate)
	return &ValidationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationRunClient) UpdateOne(_m *ValidationRun) *ValidationRunUpdateOne {
	mutation := newValidationRunMutation(c.config, OpUpdateOne, withValidationRun(_m))
	return &ValidationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationRunClient) UpdateOneID(id uuid.UUID) *ValidationRunUpdateOne {
	mutation := newValidationRunMutation(c.config, OpUpdateOne, withValidationRunID(id))
	return &ValidationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationRun.
func (c *ValidationRunClient) Delete() *ValidationRunDelete {
	mutation := newValidationRunMutation(c.config, OpDelete)
	return &ValidationRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationRunClient) DeleteOne(_m *ValidationRun) *ValidationRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationRunClient) DeleteOneID(id uuid.UUID) *ValidationRunDeleteOne {
	builder := c.Delete().Where(validationrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationRunDeleteOne{builder}
}

// Query returns a query builder for ValidationRun.
func (c *ValidationRunClient) Query() *ValidationRunQuery {
	return &ValidationRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationRun entity by its id.
func (c *ValidationRunClient) Get(ctx context.Context, id uuid.UUID) (*ValidationRun, error) {
	return c.Query().Where(validationrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationRunClient) GetX(ctx context.Context, id uuid.UUID) *ValidationRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvalidGroups queries the invalid_groups edge of a ValidationRun.
func (c *ValidationRunClient) QueryInvalidGroups(_m *ValidationRun) *InvalidGroupQuery {
	query := (&InvalidGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, id),
			sqlgraph.To(invalidgroup.Table, invalidgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.InvalidGroupsTable, validationrun.InvalidGroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatchedGroups queries the matched_groups edge of a ValidationRun.
func (c *ValidationRunClient) QueryMatchedGroups(_m *ValidationRun) *MatchedGroupQuery {
	query := (&MatchedGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, id),
			sqlgraph.To(matchedgroup.Table, matchedgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.MatchedGroupsTable, validationrun.MatchedGroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvalidRows queries the invalid_rows edge of a ValidationRun.
func (c *ValidationRunClient) QueryInvalidRows(_m *ValidationRun) *InvalidRowQuery {
	query := (&InvalidRowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, id),
			sqlgraph.To(invalidrow.Table, invalidrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.InvalidRowsTable, validationrun.InvalidRowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatchedRows queries the matched_rows edge of a ValidationRun.
func (c *ValidationRunClient) QueryMatchedRows(_m *ValidationRun) *MatchedRowQuery {
	query := (&MatchedRowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, id),
			sqlgraph.To(matchedrow.Table, matchedrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.MatchedRowsTable, validationrun.MatchedRowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationRunClient) Hooks() []Hook {
	return c.hooks.ValidationRun
}

// Interceptors returns the client interceptors.
func (c *ValidationRunClient) Interceptors() []Interceptor {
	return c.inters.ValidationRun
}

func (c *ValidationRunClient) mutate(ctx context.Context, m *ValidationRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		InvalidGroup, InvalidRow, MatchedGroup, MatchedRow, StagingRecord,
		ValidationRun []ent.Hook
	}
	inters struct {
		InvalidGroup, InvalidRow, MatchedGroup, MatchedRow, StagingRecord,
		ValidationRun []ent.Interceptor
	}
)
