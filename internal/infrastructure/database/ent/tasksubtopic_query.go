// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
)

// TaskSubtopicQuery is the builder for querying TaskSubtopic entities.
type TaskSubtopicQuery struct {
	config
	ctx        *QueryContext
	order      []tasksubtopic.OrderOption
	inters     []Interceptor
	predicates []predicate.TaskSubtopic
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaskSubtopicQuery builder.
func (tsq *TaskSubtopicQuery) Where(ps ...predicate.TaskSubtopic) *TaskSubtopicQuery {
	tsq.predicates = append(tsq.predicates, ps...)
	return tsq
}

// Limit the number of records to be returned by this query.
func (tsq *TaskSubtopicQuery) Limit(limit int) *TaskSubtopicQuery {
	tsq.ctx.Limit = &limit
	return tsq
}

// Offset to start from.
func (tsq *TaskSubtopicQuery) Offset(offset int) *TaskSubtopicQuery {
	tsq.ctx.Offset = &offset
	return tsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tsq *TaskSubtopicQuery) Unique(unique bool) *TaskSubtopicQuery {
	tsq.ctx.Unique = &unique
	return tsq
}

// Order specifies how the records should be ordered.
func (tsq *TaskSubtopicQuery) Order(o ...tasksubtopic.OrderOption) *TaskSubtopicQuery {
	tsq.order = append(tsq.order, o...)
	return tsq
}

// First returns the first TaskSubtopic entity from the query.
// Returns a *NotFoundError when no TaskSubtopic was found.
func (tsq *TaskSubtopicQuery) First(ctx context.Context) (*TaskSubtopic, error) {
	nodes, err := tsq.Limit(1).All(setContextOp(ctx, tsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{tasksubtopic.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) FirstX(ctx context.Context) *TaskSubtopic {
	node, err := tsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaskSubtopic ID from the query.
// Returns a *NotFoundError when no TaskSubtopic ID was found.
func (tsq *TaskSubtopicQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = tsq.Limit(1).IDs(setContextOp(ctx, tsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{tasksubtopic.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) FirstIDX(ctx context.Context) int {
	id, err := tsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaskSubtopic entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaskSubtopic entity is found.
// Returns a *NotFoundError when no TaskSubtopic entities are found.
func (tsq *TaskSubtopicQuery) Only(ctx context.Context) (*TaskSubtopic, error) {
	nodes, err := tsq.Limit(2).All(setContextOp(ctx, tsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{tasksubtopic.Label}
	default:
		return nil, &NotSingularError{tasksubtopic.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) OnlyX(ctx context.Context) *TaskSubtopic {
	node, err := tsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaskSubtopic ID in the query.
// Returns a *NotSingularError when more than one TaskSubtopic ID is found.
// Returns a *NotFoundError when no entities are found.
func (tsq *TaskSubtopicQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = tsq.Limit(2).IDs(setContextOp(ctx, tsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{tasksubtopic.Label}
	default:
		err = &NotSingularError{tasksubtopic.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) OnlyIDX(ctx context.Context) int {
	id, err := tsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaskSubtopics.
func (tsq *TaskSubtopicQuery) All(ctx context.Context) ([]*TaskSubtopic, error) {
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryAll)
	if err := tsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaskSubtopic, *TaskSubtopicQuery]()
	return withInterceptors[[]*TaskSubtopic](ctx, tsq, qr, tsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) AllX(ctx context.Context) []*TaskSubtopic {
	nodes, err := tsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaskSubtopic IDs.
func (tsq *TaskSubtopicQuery) IDs(ctx context.Context) (ids []int, err error) {
	if tsq.ctx.Unique == nil && tsq.path != nil {
		tsq.Unique(true)
	}
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryIDs)
	if err = tsq.Select(tasksubtopic.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) IDsX(ctx context.Context) []int {
	ids, err := tsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tsq *TaskSubtopicQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryCount)
	if err := tsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tsq, querierCount[*TaskSubtopicQuery](), tsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) CountX(ctx context.Context) int {
	count, err := tsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tsq *TaskSubtopicQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tsq.ctx, ent.OpQueryExist)
	switch _, err := tsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tsq *TaskSubtopicQuery) ExistX(ctx context.Context) bool {
	exist, err := tsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaskSubtopicQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tsq *TaskSubtopicQuery) Clone() *TaskSubtopicQuery {
	if tsq == nil {
		return nil
	}
	return &TaskSubtopicQuery{
		config:     tsq.config,
		ctx:        tsq.ctx.Clone(),
		order:      append([]tasksubtopic.OrderOption{}, tsq.order...),
		inters:     append([]Interceptor{}, tsq.inters...),
		predicates: append([]predicate.TaskSubtopic{}, tsq.predicates...),
		// clone intermediate query.
		sql:  tsq.sql.Clone(),
		path: tsq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TaskID int64 `json:"task_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TaskSubtopic.Query().
//		GroupBy(tasksubtopic.FieldTaskID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (tsq *TaskSubtopicQuery) GroupBy(field string, fields ...string) *TaskSubtopicGroupBy {
	tsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaskSubtopicGroupBy{build: tsq}
	grbuild.flds = &tsq.ctx.Fields
	grbuild.label = tasksubtopic.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TaskID int64 `json:"task_id,omitempty"`
//	}
//
//	client.TaskSubtopic.Query().
//		Select(tasksubtopic.FieldTaskID).
//		Scan(ctx, &v)
func (tsq *TaskSubtopicQuery) Select(fields ...string) *TaskSubtopicSelect {
	tsq.ctx.Fields = append(tsq.ctx.Fields, fields...)
	sbuild := &TaskSubtopicSelect{TaskSubtopicQuery: tsq}
	sbuild.label = tasksubtopic.Label
	sbuild.flds, sbuild.scan = &tsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaskSubtopicSelect configured with the given aggregations.
func (tsq *TaskSubtopicQuery) Aggregate(fns ...AggregateFunc) *TaskSubtopicSelect {
	return tsq.Select().Aggregate(fns...)
}

func (tsq *TaskSubtopicQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tsq); err != nil {
				return err
			}
		}
	}
	for _, f := range tsq.ctx.Fields {
		if !tasksubtopic.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if tsq.path != nil {
		prev, err := tsq.path(ctx)
		if err != nil {
			return err
		}
		tsq.sql = prev
	}
	return nil
}

func (tsq *TaskSubtopicQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaskSubtopic, error) {
	var (
		nodes = []*TaskSubtopic{}
		_spec = tsq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaskSubtopic).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaskSubtopic{config: tsq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (tsq *TaskSubtopicQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tsq.querySpec()
	_spec.Node.Columns = tsq.ctx.Fields
	if len(tsq.ctx.Fields) > 0 {
		_spec.Unique = tsq.ctx.Unique != nil && *tsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tsq.driver, _spec)
}

func (tsq *TaskSubtopicQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(tasksubtopic.Table, tasksubtopic.Columns, sqlgraph.NewFieldSpec(tasksubtopic.FieldID, field.TypeInt))
	_spec.From = tsq.sql
	if unique := tsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tsq.path != nil {
		_spec.Unique = true
	}
	if fields := tsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasksubtopic.FieldID)
		for i := range fields {
			if fields[i] != tasksubtopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := tsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tsq *TaskSubtopicQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tsq.driver.Dialect())
	t1 := builder.Table(tasksubtopic.Table)
	columns := tsq.ctx.Fields
	if len(columns) == 0 {
		columns = tasksubtopic.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tsq.sql != nil {
		selector = tsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tsq.ctx.Unique != nil && *tsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tsq.predicates {
		p(selector)
	}
	for _, p := range tsq.order {
		p(selector)
	}
	if offset := tsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TaskSubtopicGroupBy is the group-by builder for TaskSubtopic entities.
type TaskSubtopicGroupBy struct {
	selector
	build *TaskSubtopicQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tsgb *TaskSubtopicGroupBy) Aggregate(fns ...AggregateFunc) *TaskSubtopicGroupBy {
	tsgb.fns = append(tsgb.fns, fns...)
	return tsgb
}

// Scan applies the selector query and scans the result into the given value.
func (tsgb *TaskSubtopicGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tsgb.build.ctx, ent.OpQueryGroupBy)
	if err := tsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskSubtopicQuery, *TaskSubtopicGroupBy](ctx, tsgb.build, tsgb, tsgb.build.inters, v)
}

func (tsgb *TaskSubtopicGroupBy) sqlScan(ctx context.Context, root *TaskSubtopicQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tsgb.fns))
	for _, fn := range tsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tsgb.flds)+len(tsgb.fns))
		for _, f := range *tsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TaskSubtopicSelect is the builder for selecting fields of TaskSubtopic entities.
type TaskSubtopicSelect struct {
	*TaskSubtopicQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tss *TaskSubtopicSelect) Aggregate(fns ...AggregateFunc) *TaskSubtopicSelect {
	tss.fns = append(tss.fns, fns...)
	return tss
}

// Scan applies the selector query and scans the result into the given value.
func (tss *TaskSubtopicSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tss.ctx, ent.OpQuerySelect)
	if err := tss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskSubtopicQuery, *TaskSubtopicSelect](ctx, tss.TaskSubtopicQuery, tss, tss.inters, v)
}

func (tss *TaskSubtopicSelect) sqlScan(ctx context.Context, root *TaskSubtopicQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tss.fns))
	for _, fn := range tss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
