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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
)

// SubtopicConfidenceQuery is the builder for querying SubtopicConfidence entities.
type SubtopicConfidenceQuery struct {
	config
	ctx        *QueryContext
	order      []subtopicconfidence.OrderOption
	inters     []Interceptor
	predicates []predicate.SubtopicConfidence
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SubtopicConfidenceQuery builder.
func (scq *SubtopicConfidenceQuery) Where(ps ...predicate.SubtopicConfidence) *SubtopicConfidenceQuery {
	scq.predicates = append(scq.predicates, ps...)
	return scq
}

// Limit the number of records to be returned by this query.
func (scq *SubtopicConfidenceQuery) Limit(limit int) *SubtopicConfidenceQuery {
	scq.ctx.Limit = &limit
	return scq
}

// Offset to start from.
func (scq *SubtopicConfidenceQuery) Offset(offset int) *SubtopicConfidenceQuery {
	scq.ctx.Offset = &offset
	return scq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (scq *SubtopicConfidenceQuery) Unique(unique bool) *SubtopicConfidenceQuery {
	scq.ctx.Unique = &unique
	return scq
}

// Order specifies how the records should be ordered.
func (scq *SubtopicConfidenceQuery) Order(o ...subtopicconfidence.OrderOption) *SubtopicConfidenceQuery {
	scq.order = append(scq.order, o...)
	return scq
}

// First returns the first SubtopicConfidence entity from the query.
// Returns a *NotFoundError when no SubtopicConfidence was found.
func (scq *SubtopicConfidenceQuery) First(ctx context.Context) (*SubtopicConfidence, error) {
	nodes, err := scq.Limit(1).All(setContextOp(ctx, scq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{subtopicconfidence.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) FirstX(ctx context.Context) *SubtopicConfidence {
	node, err := scq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SubtopicConfidence ID from the query.
// Returns a *NotFoundError when no SubtopicConfidence ID was found.
func (scq *SubtopicConfidenceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = scq.Limit(1).IDs(setContextOp(ctx, scq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{subtopicconfidence.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) FirstIDX(ctx context.Context) int {
	id, err := scq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SubtopicConfidence entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SubtopicConfidence entity is found.
// Returns a *NotFoundError when no SubtopicConfidence entities are found.
func (scq *SubtopicConfidenceQuery) Only(ctx context.Context) (*SubtopicConfidence, error) {
	nodes, err := scq.Limit(2).All(setContextOp(ctx, scq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{subtopicconfidence.Label}
	default:
		return nil, &NotSingularError{subtopicconfidence.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) OnlyX(ctx context.Context) *SubtopicConfidence {
	node, err := scq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SubtopicConfidence ID in the query.
// Returns a *NotSingularError when more than one SubtopicConfidence ID is found.
// Returns a *NotFoundError when no entities are found.
func (scq *SubtopicConfidenceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = scq.Limit(2).IDs(setContextOp(ctx, scq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{subtopicconfidence.Label}
	default:
		err = &NotSingularError{subtopicconfidence.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) OnlyIDX(ctx context.Context) int {
	id, err := scq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SubtopicConfidences.
func (scq *SubtopicConfidenceQuery) All(ctx context.Context) ([]*SubtopicConfidence, error) {
	ctx = setContextOp(ctx, scq.ctx, ent.OpQueryAll)
	if err := scq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SubtopicConfidence, *SubtopicConfidenceQuery]()
	return withInterceptors[[]*SubtopicConfidence](ctx, scq, qr, scq.inters)
}

// AllX is like All, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) AllX(ctx context.Context) []*SubtopicConfidence {
	nodes, err := scq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SubtopicConfidence IDs.
func (scq *SubtopicConfidenceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if scq.ctx.Unique == nil && scq.path != nil {
		scq.Unique(true)
	}
	ctx = setContextOp(ctx, scq.ctx, ent.OpQueryIDs)
	if err = scq.Select(subtopicconfidence.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) IDsX(ctx context.Context) []int {
	ids, err := scq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (scq *SubtopicConfidenceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, scq.ctx, ent.OpQueryCount)
	if err := scq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, scq, querierCount[*SubtopicConfidenceQuery](), scq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) CountX(ctx context.Context) int {
	count, err := scq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (scq *SubtopicConfidenceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, scq.ctx, ent.OpQueryExist)
	switch _, err := scq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (scq *SubtopicConfidenceQuery) ExistX(ctx context.Context) bool {
	exist, err := scq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SubtopicConfidenceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (scq *SubtopicConfidenceQuery) Clone() *SubtopicConfidenceQuery {
	if scq == nil {
		return nil
	}
	return &SubtopicConfidenceQuery{
		config:     scq.config,
		ctx:        scq.ctx.Clone(),
		order:      append([]subtopicconfidence.OrderOption{}, scq.order...),
		inters:     append([]Interceptor{}, scq.inters...),
		predicates: append([]predicate.SubtopicConfidence{}, scq.predicates...),
		// clone intermediate query.
		sql:  scq.sql.Clone(),
		path: scq.path,
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
//	client.SubtopicConfidence.Query().
//		GroupBy(subtopicconfidence.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (scq *SubtopicConfidenceQuery) GroupBy(field string, fields ...string) *SubtopicConfidenceGroupBy {
	scq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SubtopicConfidenceGroupBy{build: scq}
	grbuild.flds = &scq.ctx.Fields
	grbuild.label = subtopicconfidence.Label
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
//	client.SubtopicConfidence.Query().
//		Select(subtopicconfidence.FieldUserID).
//		Scan(ctx, &v)
func (scq *SubtopicConfidenceQuery) Select(fields ...string) *SubtopicConfidenceSelect {
	scq.ctx.Fields = append(scq.ctx.Fields, fields...)
	sbuild := &SubtopicConfidenceSelect{SubtopicConfidenceQuery: scq}
	sbuild.label = subtopicconfidence.Label
	sbuild.flds, sbuild.scan = &scq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SubtopicConfidenceSelect configured with the given aggregations.
func (scq *SubtopicConfidenceQuery) Aggregate(fns ...AggregateFunc) *SubtopicConfidenceSelect {
	return scq.Select().Aggregate(fns...)
}

func (scq *SubtopicConfidenceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range scq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, scq); err != nil {
				return err
			}
		}
	}
	for _, f := range scq.ctx.Fields {
		if !subtopicconfidence.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if scq.path != nil {
		prev, err := scq.path(ctx)
		if err != nil {
			return err
		}
		scq.sql = prev
	}
	return nil
}

func (scq *SubtopicConfidenceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SubtopicConfidence, error) {
	var (
		nodes = []*SubtopicConfidence{}
		_spec = scq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SubtopicConfidence).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SubtopicConfidence{config: scq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, scq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (scq *SubtopicConfidenceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := scq.querySpec()
	_spec.Node.Columns = scq.ctx.Fields
	if len(scq.ctx.Fields) > 0 {
		_spec.Unique = scq.ctx.Unique != nil && *scq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, scq.driver, _spec)
}

func (scq *SubtopicConfidenceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(subtopicconfidence.Table, subtopicconfidence.Columns, sqlgraph.NewFieldSpec(subtopicconfidence.FieldID, field.TypeInt))
	_spec.From = scq.sql
	if unique := scq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if scq.path != nil {
		_spec.Unique = true
	}
	if fields := scq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopicconfidence.FieldID)
		for i := range fields {
			if fields[i] != subtopicconfidence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := scq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := scq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := scq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := scq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (scq *SubtopicConfidenceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(scq.driver.Dialect())
	t1 := builder.Table(subtopicconfidence.Table)
	columns := scq.ctx.Fields
	if len(columns) == 0 {
		columns = subtopicconfidence.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if scq.sql != nil {
		selector = scq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if scq.ctx.Unique != nil && *scq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range scq.predicates {
		p(selector)
	}
	for _, p := range scq.order {
		p(selector)
	}
	if offset := scq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := scq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SubtopicConfidenceGroupBy is the group-by builder for SubtopicConfidence entities.
type SubtopicConfidenceGroupBy struct {
	selector
	build *SubtopicConfidenceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (scgb *SubtopicConfidenceGroupBy) Aggregate(fns ...AggregateFunc) *SubtopicConfidenceGroupBy {
	scgb.fns = append(scgb.fns, fns...)
	return scgb
}

// Scan applies the selector query and scans the result into the given value.
func (scgb *SubtopicConfidenceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, scgb.build.ctx, ent.OpQueryGroupBy)
	if err := scgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubtopicConfidenceQuery, *SubtopicConfidenceGroupBy](ctx, scgb.build, scgb, scgb.build.inters, v)
}

func (scgb *SubtopicConfidenceGroupBy) sqlScan(ctx context.Context, root *SubtopicConfidenceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(scgb.fns))
	for _, fn := range scgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*scgb.flds)+len(scgb.fns))
		for _, f := range *scgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*scgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := scgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SubtopicConfidenceSelect is the builder for selecting fields of SubtopicConfidence entities.
type SubtopicConfidenceSelect struct {
	*SubtopicConfidenceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (scs *SubtopicConfidenceSelect) Aggregate(fns ...AggregateFunc) *SubtopicConfidenceSelect {
	scs.fns = append(scs.fns, fns...)
	return scs
}

// Scan applies the selector query and scans the result into the given value.
func (scs *SubtopicConfidenceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, scs.ctx, ent.OpQuerySelect)
	if err := scs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubtopicConfidenceQuery, *SubtopicConfidenceSelect](ctx, scs.SubtopicConfidenceQuery, scs, scs.inters, v)
}

func (scs *SubtopicConfidenceSelect) sqlScan(ctx context.Context, root *SubtopicConfidenceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(scs.fns))
	for _, fn := range scs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*scs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := scs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
