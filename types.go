package lazyrel

import "github.com/lazyrel/lazyrel/internal/types"

// C creates a column reference. Qualify with a table name or alias via
// C("tailnum").From("flights") when both join sides carry the name.
func C(name string) types.Column {
	return types.Column{Name: name}
}

// L creates a literal. Integer literals keep an exact integer
// representation; float64 and float32 values are marked floating so
// dialects with integer division handle them correctly. nil is SQL NULL.
func L(v any) types.Literal {
	switch v.(type) {
	case float64, float32:
		return types.Literal{Value: v, Float: true}
	default:
		return types.Literal{Value: v}
	}
}

// Null is the SQL NULL literal.
func Null() types.Literal {
	return types.Literal{}
}

// Fn creates a scalar function call. The name is resolved against the
// dialect's function map at render time.
func Fn(name string, args ...Expr) types.Call {
	return types.Call{Name: name, Args: args}
}

// Star is the wildcard projection.
func Star() types.Star {
	return types.Star{}
}

// StarOf is a wildcard restricted to one side of a join (table.*).
func StarOf(table string) types.Star {
	return types.Star{Table: table}
}

func binary(op types.BinaryOp, l, r Expr) types.Binary {
	return types.Binary{Op: op, Left: l, Right: r}
}

// Arithmetic operators.

func Add(l, r Expr) types.Binary { return binary(types.OpAdd, l, r) }
func Sub(l, r Expr) types.Binary { return binary(types.OpSub, l, r) }
func Mul(l, r Expr) types.Binary { return binary(types.OpMul, l, r) }
func Div(l, r Expr) types.Binary { return binary(types.OpDiv, l, r) }
func Mod(l, r Expr) types.Binary { return binary(types.OpMod, l, r) }

// Comparison operators. Eq and Ne against a NULL literal compile to
// IS NULL / IS NOT NULL rather than an equality test.

func Eq(l, r Expr) types.Binary   { return binary(types.OpEQ, l, r) }
func Ne(l, r Expr) types.Binary   { return binary(types.OpNE, l, r) }
func Lt(l, r Expr) types.Binary   { return binary(types.OpLT, l, r) }
func Le(l, r Expr) types.Binary   { return binary(types.OpLE, l, r) }
func Gt(l, r Expr) types.Binary   { return binary(types.OpGT, l, r) }
func Ge(l, r Expr) types.Binary   { return binary(types.OpGE, l, r) }
func Like(l, r Expr) types.Binary { return binary(types.OpLike, l, r) }

// And combines predicates with AND logic, left-associatively.
func And(conds ...Expr) Expr {
	return combine(types.OpAnd, conds)
}

// Or combines predicates with OR logic, left-associatively.
func Or(conds ...Expr) Expr {
	return combine(types.OpOr, conds)
}

func combine(op types.BinaryOp, conds []Expr) Expr {
	if len(conds) == 0 {
		return nil
	}
	e := conds[0]
	for _, c := range conds[1:] {
		e = binary(op, e, c)
	}
	return e
}

// Not negates a predicate.
func Not(e Expr) types.Unary {
	return types.Unary{Op: types.OpNot, Operand: e}
}

// Neg negates a numeric expression.
func Neg(e Expr) types.Unary {
	return types.Unary{Op: types.OpNeg, Operand: e}
}

// IsNull tests a nullable expression for NULL.
func IsNull(e Expr) types.Unary {
	return types.Unary{Op: types.OpIsNull, Operand: e}
}

// IsNotNull tests a nullable expression for NOT NULL.
func IsNotNull(e Expr) types.Unary {
	return types.Unary{Op: types.OpIsNotNull, Operand: e}
}

// When builds one CASE branch.
func When(cond, result Expr) types.When {
	return types.When{Cond: cond, Result: result}
}

// Case builds a searched CASE expression without an ELSE branch.
func Case(whens ...types.When) types.Case {
	return types.Case{Whens: whens}
}

// CaseElse builds a searched CASE expression with an ELSE branch.
func CaseElse(elseValue Expr, whens ...types.When) types.Case {
	return types.Case{Whens: whens, Else: elseValue}
}

// Aggregate constructors.

// CountAll renders COUNT(*).
func CountAll() types.Aggregate {
	return types.Aggregate{Func: types.AggCount}
}

func Count(e Expr) types.Aggregate { return types.Aggregate{Func: types.AggCount, Arg: e} }
func Sum(e Expr) types.Aggregate   { return types.Aggregate{Func: types.AggSum, Arg: e} }
func Avg(e Expr) types.Aggregate   { return types.Aggregate{Func: types.AggAvg, Arg: e} }
func Min(e Expr) types.Aggregate   { return types.Aggregate{Func: types.AggMin, Arg: e} }
func Max(e Expr) types.Aggregate   { return types.Aggregate{Func: types.AggMax, Arg: e} }

// CountDistinct renders COUNT(DISTINCT expr).
func CountDistinct(e Expr) types.Aggregate {
	return types.Aggregate{Func: types.AggCount, Arg: e, Distinct: true}
}

// As names an expression for a projection or aggregation output.
func As(e Expr, name string) Output {
	return Output{Name: name, Expr: e}
}

// Cols builds passthrough outputs for a column selection.
func Cols(names ...string) []Output {
	outs := make([]Output, len(names))
	for i, n := range names {
		outs[i] = Output{Expr: types.Column{Name: n}}
	}
	return outs
}

// Asc sorts ascending by an expression.
func Asc(e Expr) SortKey {
	return SortKey{Expr: e, Direction: types.ASC}
}

// Desc sorts descending by an expression.
func Desc(e Expr) SortKey {
	return SortKey{Expr: e, Direction: types.DESC}
}
