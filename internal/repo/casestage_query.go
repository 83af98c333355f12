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
	"github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/google/uuid"
)

// CaseStageQuery is the builder for querying CaseStage entities.
type CaseStageQuery struct {
	config
	ctx          *QueryContext
	order        []casestage.OrderOption
	inters       []Interceptor
	predicates   []predicate.CaseStage
	withPipeline *CasePipelineQuery
	withCases    *SupportCaseQuery
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CaseStageQuery builder.
func (_q *CaseStageQuery) Where(ps ...predicate.CaseStage) *CaseStageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CaseStageQuery) Limit(limit int) *CaseStageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CaseStageQuery) Offset(offset int) *CaseStageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CaseStageQuery) Unique(unique bool) *CaseStageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CaseStageQuery) Order(o ...casestage.OrderOption) *CaseStageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPipeline chains the current query on the "pipeline" edge.
func (_q *CaseStageQuery) QueryPipeline() *CasePipelineQuery {
	query := (&CasePipelineClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(casestage.Table, casestage.FieldID, selector),
			sqlgraph.To(casepipeline.Table, casepipeline.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, casestage.PipelineTable, casestage.PipelineColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCases chains the current query on the "cases" edge.
func (_q *CaseStageQuery) QueryCases() *SupportCaseQuery {
	query := (&SupportCaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(casestage.Table, casestage.FieldID, selector),
			sqlgraph.To(supportcase.Table, supportcase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, casestage.CasesTable, casestage.CasesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CaseStage entity from the query.
// Returns a *NotFoundError when no CaseStage was found.
func (_q *CaseStageQuery) First(ctx context.Context) (*CaseStage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{casestage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CaseStageQuery) FirstX(ctx context.Context) *CaseStage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CaseStage ID from the query.
// Returns a *NotFoundError when no CaseStage ID was found.
func (_q *CaseStageQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{casestage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CaseStageQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CaseStage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CaseStage entity is found.
// Returns a *NotFoundError when no CaseStage entities are found.
func (_q *CaseStageQuery) Only(ctx context.Context) (*CaseStage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{casestage.Label}
	default:
		return nil, &NotSingularError{casestage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CaseStageQuery) OnlyX(ctx context.Context) *CaseStage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CaseStage ID in the query.
// Returns a *NotSingularError when more than one CaseStage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CaseStageQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{casestage.Label}
	default:
		err = &NotSingularError{casestage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CaseStageQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CaseStages.
func (_q *CaseStageQuery) All(ctx context.Context) ([]*CaseStage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CaseStage, *CaseStageQuery]()
	return withInterceptors[[]*CaseStage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CaseStageQuery) AllX(ctx context.Context) []*CaseStage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CaseStage IDs.
func (_q *CaseStageQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(casestage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CaseStageQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CaseStageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CaseStageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CaseStageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CaseStageQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CaseStageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CaseStageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CaseStageQuery) Clone() *CaseStageQuery {
	if _q == nil {
		return nil
	}
	return &CaseStageQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]casestage.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.CaseStage{}, _q.predicates...),
		withPipeline: _q.withPipeline.Clone(),
		withCases:    _q.withCases.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPipeline tells the query-builder to eager-load the nodes that are connected to
// the "pipeline" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CaseStageQuery) WithPipeline(opts ...func(*CasePipelineQuery)) *CaseStageQuery {
	query := (&CasePipelineClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPipeline = query
	return _q
}

// WithCases tells the query-builder to eager-load the nodes that are connected to
// the "cases" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CaseStageQuery) WithCases(opts ...func(*SupportCaseQuery)) *CaseStageQuery {
	query := (&SupportCaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCases = query
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
//	client.CaseStage.Query().
//		GroupBy(casestage.FieldOrganizationID).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *CaseStageQuery) GroupBy(field string, fields ...string) *CaseStageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CaseStageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = casestage.Label
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
//	client.CaseStage.Query().
//		Select(casestage.FieldOrganizationID).
//		Scan(ctx, &v)
func (_q *CaseStageQuery) Select(fields ...string) *CaseStageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CaseStageSelect{CaseStageQuery: _q}
	sbuild.label = casestage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CaseStageSelect configured with the given aggregations.
func (_q *CaseStageQuery) Aggregate(fns ...AggregateFunc) *CaseStageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CaseStageQuery) prepareQuery(ctx context.Context) error {
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
		if !casestage.ValidColumn(f) {
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

func (_q *CaseStageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CaseStage, error) {
	var (
		nodes       = []*CaseStage{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPipeline != nil,
			_q.withCases != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CaseStage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CaseStage{config: _q.config}
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
	if query := _q.withPipeline; query != nil {
		if err := _q.loadPipeline(ctx, query, nodes, nil,
			func(n *CaseStage, e *CasePipeline) { n.Edges.Pipeline = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCases; query != nil {
		if err := _q.loadCases(ctx, query, nodes,
			func(n *CaseStage) { n.Edges.Cases = []*SupportCase{} },
			func(n *CaseStage, e *SupportCase) { n.Edges.Cases = append(n.Edges.Cases, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CaseStageQuery) loadPipeline(ctx context.Context, query *CasePipelineQuery, nodes []*CaseStage, init func(*CaseStage), assign func(*CaseStage, *CasePipeline)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CaseStage)
	for i := range nodes {
		fk := nodes[i].PipelineID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(casepipeline.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "pipeline_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CaseStageQuery) loadCases(ctx context.Context, query *SupportCaseQuery, nodes []*CaseStage, init func(*CaseStage), assign func(*CaseStage, *SupportCase)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*CaseStage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(supportcase.FieldStageID)
	}
	query.Where(predicate.SupportCase(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(casestage.CasesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StageID
		if fk == nil {
			return fmt.Errorf(`foreign-key "stage_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stage_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CaseStageQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *CaseStageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(casestage.Table, casestage.Columns, sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casestage.FieldID)
		for i := range fields {
			if fields[i] != casestage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPipeline != nil {
			_spec.Node.AddColumnOnce(casestage.FieldPipelineID)
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

func (_q *CaseStageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(casestage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = casestage.Columns
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
func (_q *CaseStageQuery) ForUpdate(opts ...sql.LockOption) *CaseStageQuery {
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
func (_q *CaseStageQuery) ForShare(opts ...sql.LockOption) *CaseStageQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CaseStageGroupBy is the group-by builder for CaseStage entities.
type CaseStageGroupBy struct {
	selector
	build *CaseStageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CaseStageGroupBy) Aggregate(fns ...AggregateFunc) *CaseStageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CaseStageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseStageQuery, *CaseStageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CaseStageGroupBy) sqlScan(ctx context.Context, root *CaseStageQuery, v any) error {
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

// CaseStageSelect is the builder for selecting fields of CaseStage entities.
type CaseStageSelect struct {
	*CaseStageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CaseStageSelect) Aggregate(fns ...AggregateFunc) *CaseStageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CaseStageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseStageQuery, *CaseStageSelect](ctx, _s.CaseStageQuery, _s, _s.inters, v)
}

func (_s *CaseStageSelect) sqlScan(ctx context.Context, root *CaseStageQuery, v any) error {
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
