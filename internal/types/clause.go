package types

// FromItem is anything that can appear in the FROM position of a
// ClauseSet: a base table, a nested ClauseSet, or a join of two items.
type FromItem interface {
	isFromItem()
}

// ClauseSet is the flattened compilation unit the planner produces: one
// renderable SELECT statement. Expressions inside a ClauseSet may
// reference only names visible from its immediate source; its own Select
// outputs are not self-visible. That rule is what forces subquery nesting.
type ClauseSet struct {
	From     FromItem
	Alias    string // assigned when the set is nested as a subquery
	Select   []Output
	Where    []Expr // conjuncts, ANDed in order
	GroupBy  []Expr
	Distinct bool
	OrderBy  []SortKey
}

// JoinClause is a join in the FROM position.
type JoinClause struct {
	Left  FromItem
	Right FromItem
	Kind  JoinKind
	On    Expr
}

func (TableRef) isFromItem()    {}
func (*ClauseSet) isFromItem()  {}
func (*JoinClause) isFromItem() {}

// RenderedQuery is the result of compiling a plan: the SQL text plus the
// base tables it references, for diagnostics.
type RenderedQuery struct {
	SQL    string
	Tables []string
}
