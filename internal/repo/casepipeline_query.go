// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Alijeyrad/crm_backend/internal/repo/casepipeline"
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// CasePipelineQuery is the builder for querying CasePipeline entities.
type CasePipelineQuery struct {
	config
	ctx        *QueryContext
	order      []casepipeline.OrderOption
	inters     []Interceptor
	predicates []predicate.CasePipeline
	withStages *CaseStageQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CasePipelineQuery builder.
func (_q *CasePipelineQuery) Where(ps ...predicate.CasePipeline) *CasePipelineQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CasePipelineQuery) Limit(limit int) *CasePipelineQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CasePipelineQuery) Offset(offset int) *CasePipelineQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CasePipelineQuery) Unique(unique bool) *CasePipelineQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CasePipelineQuery) Order(o ...casepipeline.OrderOption) *CasePipelineQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStages chains the current query on the "stages" edge.
func (_q *CasePipelineQuery) QueryStages() *CaseStageQuery {
	query := (&CaseStageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(casepipeline.Table, casepipeline.FieldID, selector),
			sqlgraph.To(casestage.Table, casestage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, casepipeline.StagesTable, casepipeline.StagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CasePipeline entity from the query.
// Returns a *NotFoundError when no CasePipeline was found.
func (_q *CasePipelineQuery) First(ctx context.Context) (*CasePipeline, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{casepipeline.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CasePipelineQuery) FirstX(ctx context.Context) *CasePipeline {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CasePipeline ID from the query.
// Returns a *NotFoundError when no CasePipeline ID was found.
func (_q *CasePipelineQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{casepipeline.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CasePipelineQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CasePipeline entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CasePipeline entity is found.
// Returns a *NotFoundError when no CasePipeline entities are found.
func (_q *CasePipelineQuery) Only(ctx context.Context) (*CasePipeline, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{casepipeline.Label}
	default:
		return nil, &NotSingularError{casepipeline.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CasePipelineQuery) OnlyX(ctx context.Context) *CasePipeline {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CasePipeline ID in the query.
// Returns a *NotSingularError when more than one CasePipeline ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CasePipelineQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{casepipeline.Label}
	default:
		err = &NotSingularError{casepipeline.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CasePipelineQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CasePipelines.
func (_q *CasePipelineQuery) All(ctx context.Context) ([]*CasePipeline, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CasePipeline, *CasePipelineQuery]()
	return withInterceptors[[]*CasePipeline](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CasePipelineQuery) AllX(ctx context.Context) []*CasePipeline {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CasePipeline IDs.
func (_q *CasePipelineQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(casepipeline.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CasePipelineQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CasePipelineQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CasePipelineQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CasePipelineQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CasePipelineQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CasePipelineQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CasePipelineQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CasePipelineQuery) Clone() *CasePipelineQuery {
	if _q == nil {
		return nil
	}
	return &CasePipelineQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]casepipeline.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CasePipeline{}, _q.predicates...),
		withStages: _q.withStages.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStages tells the query-builder to eager-load the nodes that are connected to
// the "stages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CasePipelineQuery) WithStages(opts ...func(*CaseStageQuery)) *CasePipelineQuery {
	query := (&CaseStageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStages = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OrganizationID uuid.UUID `json:"organization_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CasePipeline.Query().
//		GroupBy(casepipeline.FieldOrganizationID).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *CasePipelineQuery) GroupBy(field string, fields ...string) *CasePipelineGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CasePipelineGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = casepipeline.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OrganizationID uuid.UUID `json:"organization_id,omitempty"`
//	}
//
//	client.CasePipeline.Query().
//		Select(casepipeline.FieldOrganizationID).
//		Scan(ctx, &v)
func (_q *CasePipelineQuery) Select(fields ...string) *CasePipelineSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CasePipelineSelect{CasePipelineQuery: _q}
	sbuild.label = casepipeline.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CasePipelineSelect configured with the given aggregations.
func (_q *CasePipelineQuery) Aggregate(fns ...AggregateFunc) *CasePipelineSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CasePipelineQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !casepipeline.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
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

func (_q *CasePipelineQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CasePipeline, error) {
	var (
		nodes       = []*CasePipeline{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withStages != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CasePipeline).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CasePipeline{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withStages; query != nil {
		if err := _q.loadStages(ctx, query, nodes,
			func(n *CasePipeline) { n.Edges.Stages = []*CaseStage{} },
			func(n *CasePipeline, e *CaseStage) { n.Edges.Stages = append(n.Edges.Stages, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CasePipelineQuery) loadStages(ctx context.Context, query *CaseStageQuery, nodes []*CasePipeline, init func(*CasePipeline), assign func(*CasePipeline, *CaseStage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*CasePipeline)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(casestage.FieldPipelineID)
	}
	query.Where(predicate.CaseStage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(casepipeline.StagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PipelineID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pipeline_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CasePipelineQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CasePipelineQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(casepipeline.Table, casepipeline.Columns, sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casepipeline.FieldID)
		for i := range fields {
			if fields[i] != casepipeline.FieldID {
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

func (_q *CasePipelineQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(casepipeline.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = casepipeline.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *CasePipelineQuery) ForUpdate(opts ...sql.LockOption) *CasePipelineQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *CasePipelineQuery) ForShare(opts ...sql.LockOption) *CasePipelineQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CasePipelineGroupBy is the group-by builder for CasePipeline entities.
type CasePipelineGroupBy struct {
	selector
	build *CasePipelineQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CasePipelineGroupBy) Aggregate(fns ...AggregateFunc) *CasePipelineGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CasePipelineGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CasePipelineQuery, *CasePipelineGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CasePipelineGroupBy) sqlScan(ctx context.Context, root *CasePipelineQuery, v any) error {
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

// CasePipelineSelect is the builder for selecting fields of CasePipeline entities.
type CasePipelineSelect struct {
	*CasePipelineQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CasePipelineSelect) Aggregate(fns ...AggregateFunc) *CasePipelineSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CasePipelineSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CasePipelineQuery, *CasePipelineSelect](ctx, _s.CasePipelineQuery, _s, _s.inters, v)
}

func (_s *CasePipelineSelect) sqlScan(ctx context.Context, root *CasePipelineQuery, v any) error {
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
