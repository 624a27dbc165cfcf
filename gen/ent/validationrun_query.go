// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// ValidationRunQuery is the builder for querying ValidationRun entities.
type ValidationRunQuery struct {
	config
	ctx               *QueryContext
	order             []validationrun.OrderOption
	inters            []Interceptor
	predicates        []predicate.ValidationRun
	withInvalidGroups *InvalidGroupQuery
	withMatchedGroups *MatchedGroupQuery
	withInvalidRows   *InvalidRowQuery
	withMatchedRows   *MatchedRowQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ValidationRunQuery builder.
func (_q *ValidationRunQuery) Where(ps ...predicate.ValidationRun) *ValidationRunQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ValidationRunQuery) Limit(limit int) *ValidationRunQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ValidationRunQuery) Offset(offset int) *ValidationRunQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ValidationRunQuery) Unique(unique bool) *ValidationRunQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ValidationRunQuery) Order(o ...validationrun.OrderOption) *ValidationRunQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryInvalidGroups chains the current query on the "invalid_groups" edge.
func (_q *ValidationRunQuery) QueryInvalidGroups() *InvalidGroupQuery {
	query := (&InvalidGroupClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, selector),
			sqlgraph.To(invalidgroup.Table, invalidgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.InvalidGroupsTable, validationrun.InvalidGroupsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMatchedGroups chains the current query on the "matched_groups" edge.
func (_q *ValidationRunQuery) QueryMatchedGroups() *MatchedGroupQuery {
	query := (&MatchedGroupClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, selector),
			sqlgraph.To(matchedgroup.Table, matchedgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.MatchedGroupsTable, validationrun.MatchedGroupsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInvalidRows chains the current query on the "invalid_rows" edge.
func (_q *ValidationRunQuery) QueryInvalidRows() *InvalidRowQuery {
	query := (&InvalidRowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, selector),
			sqlgraph.To(invalidrow.Table, invalidrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.InvalidRowsTable, validationrun.InvalidRowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMatchedRows chains the current query on the "matched_rows" edge.
func (_q *ValidationRunQuery) QueryMatchedRows() *MatchedRowQuery {
	query := (&MatchedRowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrun.Table, validationrun.FieldID, selector),
			sqlgraph.To(matchedrow.Table, matchedrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, validationrun.MatchedRowsTable, validationrun.MatchedRowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ValidationRun entity from the query.
// Returns a *NotFoundError when no ValidationRun was found.
func (_q *ValidationRunQuery) First(ctx context.Context) (*ValidationRun, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{validationrun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ValidationRunQuery) FirstX(ctx context.Context) *ValidationRun {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ValidationRun ID from the query.
// Returns a *NotFoundError when no ValidationRun ID was found.
func (_q *ValidationRunQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{validationrun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ValidationRunQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ValidationRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ValidationRun entity is found.
// Returns a *NotFoundError when no ValidationRun entities are found.
func (_q *ValidationRunQuery) Only(ctx context.Context) (*ValidationRun, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{validationrun.Label}
	default:
		return nil, &NotSingularError{validationrun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ValidationRunQuery) OnlyX(ctx context.Context) *ValidationRun {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ValidationRun ID in the query.
// Returns a *NotSingularError when more than one ValidationRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ValidationRunQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{validationrun.Label}
	default:
		err = &NotSingularError{validationrun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ValidationRunQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ValidationRuns.
func (_q *ValidationRunQuery) All(ctx context.Context) ([]*ValidationRun, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ValidationRun, *ValidationRunQuery]()
	return withInterceptors[[]*ValidationRun](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ValidationRunQuery) AllX(ctx context.Context) []*ValidationRun {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ValidationRun IDs.
func (_q *ValidationRunQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(validationrun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ValidationRunQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ValidationRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ValidationRunQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ValidationRunQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ValidationRunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ValidationRunQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ValidationRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ValidationRunQuery) Clone() *ValidationRunQuery {
	if _q == nil {
		return nil
	}
	return &ValidationRunQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]validationrun.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.ValidationRun{}, _q.predicates...),
		withInvalidGroups: _q.withInvalidGroups.Clone(),
		withMatchedGroups: _q.withMatchedGroups.Clone(),
		withInvalidRows:   _q.withInvalidRows.Clone(),
		withMatchedRows:   _q.withMatchedRows.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithInvalidGroups tells the query-builder to eager-load the nodes that are connected to
// the "invalid_groups" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ValidationRunQuery) WithInvalidGroups(opts ...func(*InvalidGroupQuery)) *ValidationRunQuery {
	query := (&InvalidGroupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInvalidGroups = query
	return _q
}

// WithMatchedGroups tells the query-builder to eager-load the nodes that are connected to
// the "matched_groups" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ValidationRunQuery) WithMatchedGroups(opts ...func(*MatchedGroupQuery)) *ValidationRunQuery {
	query := (&MatchedGroupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatchedGroups = query
	return _q
}

// WithInvalidRows tells the query-builder to eager-load the nodes that are connected to
// the "invalid_rows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ValidationRunQuery) WithInvalidRows(opts ...func(*InvalidRowQuery)) *ValidationRunQuery {
	query := (&InvalidRowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInvalidRows = query
	return _q
}

// WithMatchedRows tells the query-builder to eager-load the nodes that are connected to
// the "matched_rows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ValidationRunQuery) WithMatchedRows(opts ...func(*MatchedRowQuery)) *ValidationRunQuery {
	query := (&MatchedRowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatchedRows = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ValidationRun.Query().
//		GroupBy(validationrun.FieldFilename).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ValidationRunQuery) GroupBy(field string, fields ...string) *ValidationRunGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ValidationRunGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = validationrun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//	}
//
//	client.ValidationRun.Query().
//		Select(validationrun.FieldFilename).
//		Scan(ctx, &v)
func (_q *ValidationRunQuery) Select(fields ...string) *ValidationRunSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ValidationRunSelect{ValidationRunQuery: _q}
	sbuild.label = validationrun.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ValidationRunSelect configured with the given aggregations.
func (_q *ValidationRunQuery) Aggregate(fns ...AggregateFunc) *ValidationRunSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ValidationRunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !validationrun.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ValidationRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ValidationRun, error) {
	var (
		nodes       = []*ValidationRun{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withInvalidGroups != nil,
			_q.withMatchedGroups != nil,
			_q.withInvalidRows != nil,
			_q.withMatchedRows != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ValidationRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ValidationRun{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withInvalidGroups; query != nil {
		if err := _q.loadInvalidGroups(ctx, query, nodes,
			func(n *ValidationRun) { n.Edges.InvalidGroups = []*InvalidGroup{} },
			func(n *ValidationRun, e *InvalidGroup) { n.Edges.InvalidGroups = append(n.Edges.InvalidGroups, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMatchedGroups; query != nil {
		if err := _q.loadMatchedGroups(ctx, query, nodes,
			func(n *ValidationRun) { n.Edges.MatchedGroups = []*MatchedGroup{} },
			func(n *ValidationRun, e *MatchedGroup) { n.Edges.MatchedGroups = append(n.Edges.MatchedGroups, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInvalidRows; query != nil {
		if err := _q.loadInvalidRows(ctx, query, nodes,
			func(n *ValidationRun) { n.Edges.InvalidRows = []*InvalidRow{} },
			func(n *ValidationRun, e *InvalidRow) { n.Edges.InvalidRows = append(n.Edges.InvalidRows, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMatchedRows; query != nil {
		if err := _q.loadMatchedRows(ctx, query, nodes,
			func(n *ValidationRun) { n.Edges.MatchedRows = []*MatchedRow{} },
			func(n *ValidationRun, e *MatchedRow) { n.Edges.MatchedRows = append(n.Edges.MatchedRows, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ValidationRunQuery) loadInvalidGroups(ctx context.Context, query *InvalidGroupQuery, nodes []*ValidationRun, init func(*ValidationRun), assign func(*ValidationRun, *InvalidGroup)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ValidationRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(invalidgroup.FieldRunID)
	}
	query.Where(predicate.InvalidGroup(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(validationrun.InvalidGroupsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ValidationRunQuery) loadMatchedGroups(ctx context.Context, query *MatchedGroupQuery, nodes []*ValidationRun, init func(*ValidationRun), assign func(*ValidationRun, *MatchedGroup)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ValidationRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(matchedgroup.FieldRunID)
	}
	query.Where(predicate.MatchedGroup(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(validationrun.MatchedGroupsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ValidationRunQuery) loadInvalidRows(ctx context.Context, query *InvalidRowQuery, nodes []*ValidationRun, init func(*ValidationRun), assign func(*ValidationRun, *InvalidRow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ValidationRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(invalidrow.FieldRunID)
	}
	query.Where(predicate.InvalidRow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(validationrun.InvalidRowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ValidationRunQuery) loadMatchedRows(ctx context.Context, query *MatchedRowQuery, nodes []*ValidationRun, init func(*ValidationRun), assign func(*ValidationRun, *MatchedRow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ValidationRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(matchedrow.FieldRunID)
	}
	query.Where(predicate.MatchedRow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(validationrun.MatchedRowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ValidationRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ValidationRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(validationrun.Table, validationrun.Columns, sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationrun.FieldID)
		for i := range fields {
			if fields[i] != validationrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ValidationRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(validationrun.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = validationrun.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ValidationRunGroupBy is the group-by builder for ValidationRun entities.
type ValidationRunGroupBy struct {
	selector
	build *ValidationRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ValidationRunGroupBy) Aggregate(fns ...AggregateFunc) *ValidationRunGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ValidationRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ValidationRunQuery, *ValidationRunGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ValidationRunGroupBy) sqlScan(ctx context.Context, root *ValidationRunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ValidationRunSelect is the builder for selecting fields of ValidationRun entities.
type ValidationRunSelect struct {
	*ValidationRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ValidationRunSelect) Aggregate(fns ...AggregateFunc) *ValidationRunSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ValidationRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ValidationRunQuery, *ValidationRunSelect](ctx, _s.ValidationRunQuery, _s, _s.inters, v)
}

func (_s *ValidationRunSelect) sqlScan(ctx context.Context, root *ValidationRunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
