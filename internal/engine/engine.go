package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/leengari/mini-colstore/internal/domain/schema"
	"github.com/leengari/mini-colstore/internal/query/operations"
	"github.com/leengari/mini-colstore/internal/query/operations/join"
	"github.com/leengari/mini-colstore/internal/storage/manager"
)

// Rows is the row-oriented materialization of a result table: column name
// to value sequence, the shape external callers consume.
type Rows map[string][]any

// Engine is the caller-facing surface of the query engine. It resolves
// table names through the registry, parses wire-format operator strings
// into the closed enums the operators accept, and emits lifecycle events
// to its observers. Derived results are returned, never auto-registered;
// registering a result under a new name is the caller's decision.
type Engine struct {
	store     *manager.Registry
	observers []Observer
}

// New creates an engine over an empty table registry.
func New() *Engine {
	return &Engine{store: manager.NewRegistry()}
}

// AddObserver subscribes an observer to operation lifecycle events.
// Observers must be registered before the engine is shared between
// goroutines.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Store exposes the underlying registry, for callers that want to register
// derived results.
func (e *Engine) Store() *manager.Registry {
	return e.store
}

func (e *Engine) notify(ev Event) {
	for _, o := range e.observers {
		o.OnEvent(ev)
	}
}

func (e *Engine) begin(op string, data any) string {
	opID := uuid.New().String()
	e.notify(Event{Type: EventOpStart, OpID: opID, Operation: op, Timestamp: time.Now(), Data: data})
	return opID
}

func (e *Engine) end(op, opID string, err error, data any) {
	if err != nil {
		data = map[string]any{"error": err.Error()}
	}
	e.notify(Event{Type: EventOpEnd, OpID: opID, Operation: op, Timestamp: time.Now(), Data: data})
}

// CreateTable constructs a table from a mapping of column name to values
// and registers it, replacing any table previously held under the name.
// Construction validates shape and types before anything is stored, so a
// failed create leaves the registry untouched.
func (e *Engine) CreateTable(name string, data map[string][]any) (*schema.Table, error) {
	opID := e.begin("create_table", map[string]any{"table": name, "columns": len(data)})

	t, err := schema.FromMap(name, data)
	if err != nil {
		e.end("create_table", opID, err, nil)
		return nil, err
	}
	e.store.Register(t)

	e.end("create_table", opID, nil, map[string]any{"table": name, "rows": t.RowCount})
	return t, nil
}

// Filter selects the rows of a table where column <op> value holds.
// op is one of: == != < <= > >=.
func (e *Engine) Filter(tableName, columnName, op string, value any) (Rows, error) {
	opID := e.begin("filter", map[string]any{"table": tableName, "column": columnName, "operator": op})

	rows, err := e.filter(tableName, columnName, op, value)
	e.end("filter", opID, err, map[string]any{"table": tableName})
	return rows, err
}

func (e *Engine) filter(tableName, columnName, op string, value any) (Rows, error) {
	t, err := e.store.Get(tableName)
	if err != nil {
		return nil, err
	}
	operator, err := operations.ParseOperator(op)
	if err != nil {
		return nil, err
	}
	result, err := operations.Filter(t, columnName, operator, value)
	if err != nil {
		return nil, err
	}
	return materialize(result), nil
}

// Aggregate reduces a column of a table to a scalar.
// fn is one of: sum, mean, min, max, count.
func (e *Engine) Aggregate(tableName, columnName, fn string) (any, error) {
	opID := e.begin("aggregate", map[string]any{"table": tableName, "column": columnName, "func": fn})

	result, err := e.aggregate(tableName, columnName, fn)
	e.end("aggregate", opID, err, map[string]any{"table": tableName})
	return result, err
}

func (e *Engine) aggregate(tableName, columnName, fn string) (any, error) {
	t, err := e.store.Get(tableName)
	if err != nil {
		return nil, err
	}
	aggFn, err := operations.ParseAggFunc(fn)
	if err != nil {
		return nil, err
	}
	return operations.Aggregate(t, columnName, aggFn)
}

// Sort returns the table's rows reordered by the key column. The sort is
// stable in both directions.
func (e *Engine) Sort(tableName, columnName string, ascending bool) (Rows, error) {
	opID := e.begin("sort", map[string]any{"table": tableName, "column": columnName, "ascending": ascending})

	rows, err := e.sort(tableName, columnName, ascending)
	e.end("sort", opID, err, map[string]any{"table": tableName})
	return rows, err
}

func (e *Engine) sort(tableName, columnName string, ascending bool) (Rows, error) {
	t, err := e.store.Get(tableName)
	if err != nil {
		return nil, err
	}
	result, err := operations.Sort(t, columnName, ascending)
	if err != nil {
		return nil, err
	}
	return materialize(result), nil
}

// GroupBy partitions a table by the group column and aggregates another
// column per partition. Output rows are ordered by each key's first
// occurrence in the source.
func (e *Engine) GroupBy(tableName, groupColumn, aggColumn, fn string) (Rows, error) {
	opID := e.begin("group_by", map[string]any{
		"table": tableName, "group_column": groupColumn, "agg_column": aggColumn, "func": fn,
	})

	rows, err := e.groupBy(tableName, groupColumn, aggColumn, fn)
	e.end("group_by", opID, err, map[string]any{"table": tableName})
	return rows, err
}

func (e *Engine) groupBy(tableName, groupColumn, aggColumn, fn string) (Rows, error) {
	t, err := e.store.Get(tableName)
	if err != nil {
		return nil, err
	}
	aggFn, err := operations.ParseAggFunc(fn)
	if err != nil {
		return nil, err
	}
	result, err := operations.GroupBy(t, groupColumn, aggColumn, aggFn)
	if err != nil {
		return nil, err
	}
	return materialize(result), nil
}

// Join hash-joins two registered tables over composite keys.
// joinType is one of: inner, left, right, full_outer.
func (e *Engine) Join(leftName, rightName string, leftKeys, rightKeys []string, joinType string) (Rows, error) {
	opID := e.begin("join", map[string]any{
		"left": leftName, "right": rightName, "join_type": joinType,
	})

	rows, err := e.join(leftName, rightName, leftKeys, rightKeys, joinType)
	e.end("join", opID, err, map[string]any{"left": leftName, "right": rightName})
	return rows, err
}

func (e *Engine) join(leftName, rightName string, leftKeys, rightKeys []string, joinType string) (Rows, error) {
	left, err := e.store.Get(leftName)
	if err != nil {
		return nil, err
	}
	right, err := e.store.Get(rightName)
	if err != nil {
		return nil, err
	}
	jt, err := join.ParseJoinType(joinType)
	if err != nil {
		return nil, err
	}
	result, err := join.ExecuteJoin(left, right, leftKeys, rightKeys, jt)
	if err != nil {
		return nil, err
	}
	return materialize(result), nil
}

// materialize converts a result table into the external Rows shape.
func materialize(t *schema.Table) Rows {
	rows := make(Rows, t.NumColumns())
	for _, col := range t.Columns() {
		rows[col.Name] = col.Values()
	}
	return rows
}
