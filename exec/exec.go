// Package exec runs compiled plans against a database and collects the
// results into an in-memory table.
//
// The compiler core never talks to a database on its own; execution is an
// explicit step taken with a connection the caller owns:
//
//	db, err := sql.Open("sqlite", "file:flights.db")
//	...
//	tbl, err := exec.Collect(ctx, db, plan, sqlite.New())
package exec

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/internal/render"
)

// Queryer is the subset of *sql.DB needed to run a compiled plan. *sql.Tx
// and *sql.Conn satisfy it too.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Table is a collected query result: a column header and rows of driver
// values in result order.
type Table struct {
	Columns []string
	Rows    [][]any
}

// NumRows returns the number of collected rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColIndex returns the position of a named column, or -1.
func (t *Table) ColIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Get returns the value at a row and named column.
func (t *Table) Get(row int, col string) (any, error) {
	i := t.ColIndex(col)
	if i < 0 {
		return nil, fmt.Errorf("exec: no column %q in result", col)
	}
	if row < 0 || row >= len(t.Rows) {
		return nil, fmt.Errorf("exec: row %d out of range (%d rows)", row, len(t.Rows))
	}
	return t.Rows[row][i], nil
}

// Collect compiles the plan for the dialect, runs it on q, and drains the
// result set. Database failures come back as ExecutionError values that
// carry the compiled SQL and unwrap to the driver error.
func Collect(ctx context.Context, q Queryer, p *lazyrel.Plan, d *lazyrel.Dialect) (*Table, error) {
	rendered, err := p.Render(d)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, rendered.SQL)
	if err != nil {
		return nil, render.ExecutionError{SQL: rendered.SQL, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, render.ExecutionError{SQL: rendered.SQL, Err: err}
	}

	tbl := &Table{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, render.ExecutionError{SQL: rendered.SQL, Err: err}
		}
		tbl.Rows = append(tbl.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, render.ExecutionError{SQL: rendered.SQL, Err: err}
	}
	return tbl, nil
}
