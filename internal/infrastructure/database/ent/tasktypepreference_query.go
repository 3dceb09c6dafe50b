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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
)

// TaskTypePreferenceQuery is the builder for querying TaskTypePreference entities.
type TaskTypePreferenceQuery struct {
	config
	ctx        *QueryContext
	order      []tasktypepreference.OrderOption
	inters     []Interceptor
	predicates []predicate.TaskTypePreference
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaskTypePreferenceQuery builder.
func (ttpq *TaskTypePreferenceQuery) Where(ps ...predicate.TaskTypePreference) *TaskTypePreferenceQuery {
	ttpq.predicates = append(ttpq.predicates, ps...)
	return ttpq
}

// Limit the number of records to be returned by this query.
func (ttpq *TaskTypePreferenceQuery) Limit(limit int) *TaskTypePreferenceQuery {
	ttpq.ctx.Limit = &limit
	return ttpq
}

// Offset to start from.
func (ttpq *TaskTypePreferenceQuery) Offset(offset int) *TaskTypePreferenceQuery {
	ttpq.ctx.Offset = &offset
	return ttpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ttpq *TaskTypePreferenceQuery) Unique(unique bool) *TaskTypePreferenceQuery {
	ttpq.ctx.Unique = &unique
	return ttpq
}

// Order specifies how the records should be ordered.
func (ttpq *TaskTypePreferenceQuery) Order(o ...tasktypepreference.OrderOption) *TaskTypePreferenceQuery {
	ttpq.order = append(ttpq.order, o...)
	return ttpq
}

// First returns the first TaskTypePreference entity from the query.
// Returns a *NotFoundError when no TaskTypePreference was found.
func (ttpq *TaskTypePreferenceQuery) First(ctx context.Context) (*TaskTypePreference, error) {
	nodes, err := ttpq.Limit(1).All(setContextOp(ctx, ttpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{tasktypepreference.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) FirstX(ctx context.Context) *TaskTypePreference {
	node, err := ttpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaskTypePreference ID from the query.
// Returns a *NotFoundError when no TaskTypePreference ID was found.
func (ttpq *TaskTypePreferenceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ttpq.Limit(1).IDs(setContextOp(ctx, ttpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{tasktypepreference.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) FirstIDX(ctx context.Context) int {
	id, err := ttpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaskTypePreference entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaskTypePreference entity is found.
// Returns a *NotFoundError when no TaskTypePreference entities are found.
func (ttpq *TaskTypePreferenceQuery) Only(ctx context.Context) (*TaskTypePreference, error) {
	nodes, err := ttpq.Limit(2).All(setContextOp(ctx, ttpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{tasktypepreference.Label}
	default:
		return nil, &NotSingularError{tasktypepreference.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) OnlyX(ctx context.Context) *TaskTypePreference {
	node, err := ttpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaskTypePreference ID in the query.
// Returns a *NotSingularError when more than one TaskTypePreference ID is found.
// Returns a *NotFoundError when no entities are found.
func (ttpq *TaskTypePreferenceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ttpq.Limit(2).IDs(setContextOp(ctx, ttpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{tasktypepreference.Label}
	default:
		err = &NotSingularError{tasktypepreference.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) OnlyIDX(ctx context.Context) int {
	id, err := ttpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaskTypePreferences.
func (ttpq *TaskTypePreferenceQuery) All(ctx context.Context) ([]*TaskTypePreference, error) {
	ctx = setContextOp(ctx, ttpq.ctx, ent.OpQueryAll)
	if err := ttpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaskTypePreference, *TaskTypePreferenceQuery]()
	return withInterceptors[[]*TaskTypePreference](ctx, ttpq, qr, ttpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) AllX(ctx context.Context) []*TaskTypePreference {
	nodes, err := ttpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaskTypePreference IDs.
func (ttpq *TaskTypePreferenceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ttpq.ctx.Unique == nil && ttpq.path != nil {
		ttpq.Unique(true)
	}
	ctx = setContextOp(ctx, ttpq.ctx, ent.OpQueryIDs)
	if err = ttpq.Select(tasktypepreference.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) IDsX(ctx context.Context) []int {
	ids, err := ttpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ttpq *TaskTypePreferenceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ttpq.ctx, ent.OpQueryCount)
	if err := ttpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ttpq, querierCount[*TaskTypePreferenceQuery](), ttpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) CountX(ctx context.Context) int {
	count, err := ttpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ttpq *TaskTypePreferenceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ttpq.ctx, ent.OpQueryExist)
	switch _, err := ttpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ttpq *TaskTypePreferenceQuery) ExistX(ctx context.Context) bool {
	exist, err := ttpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaskTypePreferenceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ttpq *TaskTypePreferenceQuery) Clone() *TaskTypePreferenceQuery {
	if ttpq == nil {
		return nil
	}
	return &TaskTypePreferenceQuery{
		config:     ttpq.config,
		ctx:        ttpq.ctx.Clone(),
		order:      append([]tasktypepreference.OrderOption{}, ttpq.order...),
		inters:     append([]Interceptor{}, ttpq.inters...),
		predicates: append([]predicate.TaskTypePreference{}, ttpq.predicates...),
		// clone intermediate query.
		sql:  ttpq.sql.Clone(),
		path: ttpq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID int64 `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TaskTypePreference.Query().
//		GroupBy(tasktypepreference.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ttpq *TaskTypePreferenceQuery) GroupBy(field string, fields ...string) *TaskTypePreferenceGroupBy {
	ttpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaskTypePreferenceGroupBy{build: ttpq}
	grbuild.flds = &ttpq.ctx.Fields
	grbuild.label = tasktypepreference.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID int64 `json:"user_id,omitempty"`
//	}
//
//	client.TaskTypePreference.Query().
//		Select(tasktypepreference.FieldUserID).
//		Scan(ctx, &v)
func (ttpq *TaskTypePreferenceQuery) Select(fields ...string) *TaskTypePreferenceSelect {
	ttpq.ctx.Fields = append(ttpq.ctx.Fields, fields...)
	sbuild := &TaskTypePreferenceSelect{TaskTypePreferenceQuery: ttpq}
	sbuild.label = tasktypepreference.Label
	sbuild.flds, sbuild.scan = &ttpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaskTypePreferenceSelect configured with the given aggregations.
func (ttpq *TaskTypePreferenceQuery) Aggregate(fns ...AggregateFunc) *TaskTypePreferenceSelect {
	return ttpq.Select().Aggregate(fns...)
}

func (ttpq *TaskTypePreferenceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ttpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ttpq); err != nil {
				return err
			}
		}
	}
	for _, f := range ttpq.ctx.Fields {
		if !tasktypepreference.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ttpq.path != nil {
		prev, err := ttpq.path(ctx)
		if err != nil {
			return err
		}
		ttpq.sql = prev
	}
	return nil
}

func (ttpq *TaskTypePreferenceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaskTypePreference, error) {
	var (
		nodes = []*TaskTypePreference{}
		_spec = ttpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaskTypePreference).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaskTypePreference{config: ttpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ttpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ttpq *TaskTypePreferenceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ttpq.querySpec()
	_spec.Node.Columns = ttpq.ctx.Fields
	if len(ttpq.ctx.Fields) > 0 {
		_spec.Unique = ttpq.ctx.Unique != nil && *ttpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ttpq.driver, _spec)
}

func (ttpq *TaskTypePreferenceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(tasktypepreference.Table, tasktypepreference.Columns, sqlgraph.NewFieldSpec(tasktypepreference.FieldID, field.TypeInt))
	_spec.From = ttpq.sql
	if unique := ttpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ttpq.path != nil {
		_spec.Unique = true
	}
	if fields := ttpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktypepreference.FieldID)
		for i := range fields {
			if fields[i] != tasktypepreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ttpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ttpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ttpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ttpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ttpq *TaskTypePreferenceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ttpq.driver.Dialect())
	t1 := builder.Table(tasktypepreference.Table)
	columns := ttpq.ctx.Fields
	if len(columns) == 0 {
		columns = tasktypepreference.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ttpq.sql != nil {
		selector = ttpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ttpq.ctx.Unique != nil && *ttpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ttpq.predicates {
		p(selector)
	}
	for _, p := range ttpq.order {
		p(selector)
	}
	if offset := ttpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ttpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TaskTypePreferenceGroupBy is the group-by builder for TaskTypePreference entities.
type TaskTypePreferenceGroupBy struct {
	selector
	build *TaskTypePreferenceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ttpgb *TaskTypePreferenceGroupBy) Aggregate(fns ...AggregateFunc) *TaskTypePreferenceGroupBy {
	ttpgb.fns = append(ttpgb.fns, fns...)
	return ttpgb
}

// Scan applies the selector query and scans the result into the given value.
func (ttpgb *TaskTypePreferenceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ttpgb.build.ctx, ent.OpQueryGroupBy)
	if err := ttpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskTypePreferenceQuery, *TaskTypePreferenceGroupBy](ctx, ttpgb.build, ttpgb, ttpgb.build.inters, v)
}

func (ttpgb *TaskTypePreferenceGroupBy) sqlScan(ctx context.Context, root *TaskTypePreferenceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ttpgb.fns))
	for _, fn := range ttpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ttpgb.flds)+len(ttpgb.fns))
		for _, f := range *ttpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ttpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ttpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TaskTypePreferenceSelect is the builder for selecting fields of TaskTypePreference entities.
type TaskTypePreferenceSelect struct {
	*TaskTypePreferenceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ttps *TaskTypePreferenceSelect) Aggregate(fns ...AggregateFunc) *TaskTypePreferenceSelect {
	ttps.fns = append(ttps.fns, fns...)
	return ttps
}

// Scan applies the selector query and scans the result into the given value.
func (ttps *TaskTypePreferenceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ttps.ctx, ent.OpQuerySelect)
	if err := ttps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskTypePreferenceQuery, *TaskTypePreferenceSelect](ctx, ttps.TaskTypePreferenceQuery, ttps, ttps.inters, v)
}

func (ttps *TaskTypePreferenceSelect) sqlScan(ctx context.Context, root *TaskTypePreferenceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ttps.fns))
	for _, fn := range ttps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ttps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ttps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
