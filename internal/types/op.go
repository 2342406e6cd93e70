package types

// Source is the closed set of nodes a plan can be built from: a base
// table reference or one of the relational operation variants. Each
// operation holds its predecessor (two for Join), forming an immutable
// singly linked chain with structural sharing between plans.
type Source interface {
	isSource()
}

// TableRef identifies a base table. Columns carries the known column set
// when the table was resolved through a catalog; nil means the schema is
// unknown and name resolution stays open.
type TableRef struct {
	Name    string
	Alias   string
	Columns []string
}

// Output is one named entry of a projection or aggregation. An empty Name
// keeps the natural name of the expression (a bare column or wildcard).
type Output struct {
	Name string
	Expr Expr
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// SortKey is one ORDER BY entry.
type SortKey struct {
	Expr      Expr
	Direction Direction
}

// JoinKind represents the type of SQL join.
type JoinKind string

const (
	InnerJoin JoinKind = "INNER JOIN"
	LeftJoin  JoinKind = "LEFT JOIN"
	RightJoin JoinKind = "RIGHT JOIN"
	FullJoin  JoinKind = "FULL JOIN"
)

// Project replaces the visible column set with an ordered output mapping.
type Project struct {
	Input   Source
	Outputs []Output
}

// Filter keeps rows matching a predicate.
type Filter struct {
	Input Source
	Pred  Expr
}

// Sort orders the result by the given keys.
type Sort struct {
	Input Source
	Keys  []SortKey
}

// Group aggregates rows by the key expressions, producing one row per
// distinct key combination with the named aggregate outputs.
type Group struct {
	Input Source
	Keys  []Output
	Aggs  []Output
}

// Join combines two sources on a predicate.
type Join struct {
	Left  Source
	Right Source
	Kind  JoinKind
	On    Expr
}

// Distinct removes duplicate rows.
type Distinct struct {
	Input Source
}

func (TableRef) isSource() {}
func (Project) isSource()  {}
func (Filter) isSource()   {}
func (Sort) isSource()     {}
func (Group) isSource()    {}
func (Join) isSource()     {}
func (Distinct) isSource() {}

// BaseTables returns the names of every base table referenced by the
// chain rooted at s, leftmost first.
func BaseTables(s Source) []string {
	switch n := s.(type) {
	case TableRef:
		return []string{n.Name}
	case Project:
		return BaseTables(n.Input)
	case Filter:
		return BaseTables(n.Input)
	case Sort:
		return BaseTables(n.Input)
	case Group:
		return BaseTables(n.Input)
	case Join:
		return append(BaseTables(n.Left), BaseTables(n.Right)...)
	case Distinct:
		return BaseTables(n.Input)
	default:
		return nil
	}
}
