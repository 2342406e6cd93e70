// Package types holds the expression and operation AST shared by the
// root package and the dialect packages. It is exported from the internal
// tree so the base package can use it, but external users cannot import it.
package types

// Expr is the closed set of scalar and aggregate expression variants.
// Values are immutable once constructed and safe to share across plans.
type Expr interface {
	isExpr()
}

// Column is a reference to a column, optionally qualified by a table name
// or generated subquery alias.
type Column struct {
	Table string
	Name  string
}

// From returns a copy of the column qualified by a table name or alias.
func (c Column) From(table string) Column {
	c.Table = table
	return c
}

// Literal is a constant value. Value may be nil for SQL NULL.
// Float marks a numeric literal that must render with floating semantics
// even when its value is integral.
type Literal struct {
	Value any
	Float bool
}

// UnaryOp enumerates unary operators.
type UnaryOp string

const (
	OpNeg       UnaryOp = "-"
	OpNot       UnaryOp = "NOT"
	OpIsNull    UnaryOp = "IS NULL"
	OpIsNotNull UnaryOp = "IS NOT NULL"
)

// Unary applies a unary operator to an operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// BinaryOp enumerates binary operators.
type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpMod BinaryOp = "%"

	OpEQ BinaryOp = "="
	OpNE BinaryOp = "<>"
	OpLT BinaryOp = "<"
	OpLE BinaryOp = "<="
	OpGT BinaryOp = ">"
	OpGE BinaryOp = ">="

	OpAnd  BinaryOp = "AND"
	OpOr   BinaryOp = "OR"
	OpLike BinaryOp = "LIKE"
)

// Binary applies a binary operator to two operands.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Call is a scalar function call. The function name is resolved against
// the dialect's function map at translation time; unregistered names are a
// translation error, never a passthrough.
type Call struct {
	Name string
	Args []Expr
}

// When is a single WHEN...THEN branch of a Case.
type When struct {
	Cond   Expr
	Result Expr
}

// Case is a searched CASE expression with an optional ELSE.
type Case struct {
	Whens []When
	Else  Expr
}

// AggFunc enumerates aggregate functions.
type AggFunc string

const (
	AggCount AggFunc = "COUNT"
	AggSum   AggFunc = "SUM"
	AggAvg   AggFunc = "AVG"
	AggMin   AggFunc = "MIN"
	AggMax   AggFunc = "MAX"
)

// Aggregate applies an aggregate function. A nil Arg renders COUNT(*).
type Aggregate struct {
	Func     AggFunc
	Arg      Expr
	Distinct bool
}

// Star is a wildcard projection, optionally restricted to one side of a
// join (table.*).
type Star struct {
	Table string
}

func (Column) isExpr()    {}
func (Literal) isExpr()   {}
func (Unary) isExpr()     {}
func (Binary) isExpr()    {}
func (Call) isExpr()      {}
func (Case) isExpr()      {}
func (Aggregate) isExpr() {}
func (Star) isExpr()      {}

// Walk visits e and every sub-expression in construction order.
func Walk(e Expr, visit func(Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch x := e.(type) {
	case Column, Literal, Star:
	case Unary:
		Walk(x.Operand, visit)
	case Binary:
		Walk(x.Left, visit)
		Walk(x.Right, visit)
	case Call:
		for _, a := range x.Args {
			Walk(a, visit)
		}
	case Case:
		for _, w := range x.Whens {
			Walk(w.Cond, visit)
			Walk(w.Result, visit)
		}
		Walk(x.Else, visit)
	case Aggregate:
		Walk(x.Arg, visit)
	}
}

// ColumnRefs returns every column reference inside e.
func ColumnRefs(e Expr) []Column {
	var refs []Column
	Walk(e, func(sub Expr) {
		if c, ok := sub.(Column); ok {
			refs = append(refs, c)
		}
	})
	return refs
}

// HasAggregate reports whether e contains an aggregate call.
func HasAggregate(e Expr) bool {
	found := false
	Walk(e, func(sub Expr) {
		if _, ok := sub.(Aggregate); ok {
			found = true
		}
	})
	return found
}
