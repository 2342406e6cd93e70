// Package lazyrel is a lazy relational-query compiler. Callers chain
// declarative transformation steps (projection, filtering, derived
// columns, sorting, grouping, joins) onto a named remote table without
// executing anything, then render the accumulated chain into a single SQL
// statement for a chosen dialect.
//
// # Basic Usage
//
//	import "github.com/lazyrel/lazyrel/postgres"
//
//	plan := lazyrel.Table("diamonds").
//		Project(lazyrel.As(lazyrel.Div(lazyrel.C("price"), lazyrel.C("carat")), "price_per_carat"))
//
//	q, err := plan.Render(postgres.New())
//	// q.SQL: SELECT price / carat AS price_per_carat FROM diamonds
//
// Plans are immutable: every builder call returns a new Plan that shares
// structure with its predecessor, so plans can branch freely and be read
// concurrently without locking. Compilation is a pure function of the
// plan and the dialect; no I/O happens before the exec package is asked
// to run the rendered SQL.
//
// # Subquery folding
//
// Operations fold into one SELECT while their expressions reference only
// names visible from the current FROM source. A step that references a
// name introduced by the pending projection cannot share that clause set
// and is compiled on top of a nested subquery instead:
//
//	lazyrel.Table("mtcars").
//		Mutate(lazyrel.As(lazyrel.Add(lazyrel.C("cyl"), lazyrel.L(2)), "cyl2")).
//		Mutate(lazyrel.As(lazyrel.Add(lazyrel.C("cyl2"), lazyrel.L(1)), "cyl4"))
//	// SELECT *, cyl2 + 1 AS cyl4 FROM (SELECT *, cyl + 2 AS cyl2 FROM mtcars) q1
//
// # Multi-Dialect Support
//
// Dialects are plain configuration values (reserved words, function map,
// capability flags) threaded explicitly through rendering. Available
// dialects: postgres, mysql, sqlite, mssql, duckdb. Custom dialects can
// be loaded from YAML with LoadDialect.
//
// # Schema-Validated Usage
//
// A Catalog built from a DBML project gives plans a known column set, so
// unresolved and ambiguous column references surface as compile errors
// instead of reaching the database:
//
//	cat, err := lazyrel.NewCatalog(project)
//	flights := cat.Table("flights")
package lazyrel

import (
	"github.com/lazyrel/lazyrel/internal/render"
	"github.com/lazyrel/lazyrel/internal/types"
)

// Expr is a scalar or aggregate expression node.
type Expr = types.Expr

// Output is one named entry of a projection or aggregation.
type Output = types.Output

// SortKey is one ORDER BY entry.
type SortKey = types.SortKey

// Dialect describes one SQL variant.
type Dialect = types.Dialect

// RenderedQuery is the result of compiling a plan.
type RenderedQuery = types.RenderedQuery

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for the public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// JoinKind represents the type of SQL join.
type JoinKind = types.JoinKind

// Re-export join kind constants for the public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
)

// QuoteStyle selects a dialect's identifier quoting characters.
type QuoteStyle = types.QuoteStyle

// Re-export quote style constants for the public API.
const (
	QuoteDouble   = types.QuoteDouble
	QuoteBacktick = types.QuoteBacktick
	QuoteBracket  = types.QuoteBracket
)

// UnresolvedColumnError reports a column not visible in its scope.
type UnresolvedColumnError = render.UnresolvedColumnError

// AmbiguousColumnError reports an unqualified column provided by more
// than one side of a join.
type AmbiguousColumnError = render.AmbiguousColumnError

// UnsupportedExpressionError reports a function the active dialect has no
// translation for.
type UnsupportedExpressionError = render.UnsupportedExpressionError

// CapabilityError reports a feature the active dialect cannot express.
type CapabilityError = render.CapabilityError

// ExecutionError wraps an error returned by the database during
// collection.
type ExecutionError = render.ExecutionError
