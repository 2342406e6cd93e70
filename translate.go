package lazyrel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lazyrel/lazyrel/internal/render"
	"github.com/lazyrel/lazyrel/internal/types"
)

// translateExpr maps one expression to a dialect-specific SQL fragment.
// It is a pure function: same expression and dialect, same text.
func translateExpr(e types.Expr, d *types.Dialect) (string, error) {
	switch x := e.(type) {
	case types.Column:
		if x.Table != "" {
			return d.QuoteIdent(x.Table) + "." + d.QuoteIdent(x.Name), nil
		}
		return d.QuoteIdent(x.Name), nil

	case types.Literal:
		return translateLiteral(x, d)

	case types.Star:
		if x.Table != "" {
			return d.QuoteIdent(x.Table) + ".*", nil
		}
		return "*", nil

	case types.Unary:
		return translateUnary(x, d)

	case types.Binary:
		return translateBinary(x, d)

	case types.Call:
		return translateCall(x, d)

	case types.Case:
		return translateCase(x, d)

	case types.Aggregate:
		return translateAggregate(x, d)

	default:
		return "", fmt.Errorf("unknown expression type: %T", e)
	}
}

func translateLiteral(l types.Literal, d *types.Dialect) (string, error) {
	switch v := l.Value.(type) {
	case nil:
		return "NULL", nil
	case string:
		return d.QuoteString(v), nil
	case bool:
		if d.BooleanLiterals {
			if v {
				return "TRUE", nil
			}
			return "FALSE", nil
		}
		if v {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return formatFloat(float64(v)), nil
	case float64:
		return formatFloat(v), nil
	case time.Time:
		return d.QuoteString(v.UTC().Format("2006-01-02 15:04:05")), nil
	default:
		return "", fmt.Errorf("unsupported literal type: %T", l.Value)
	}
}

// formatFloat keeps a decimal point so the text stays a floating literal.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func translateUnary(u types.Unary, d *types.Dialect) (string, error) {
	operand, err := translateExpr(u.Operand, d)
	if err != nil {
		return "", err
	}
	switch u.Op {
	case types.OpNot:
		return "NOT (" + operand + ")", nil
	case types.OpNeg:
		if _, ok := u.Operand.(types.Binary); ok {
			operand = "(" + operand + ")"
		}
		return "-" + operand, nil
	case types.OpIsNull:
		return operandText(u.Operand, operand) + " IS NULL", nil
	case types.OpIsNotNull:
		return operandText(u.Operand, operand) + " IS NOT NULL", nil
	default:
		return "", fmt.Errorf("unknown unary operator: %s", u.Op)
	}
}

func operandText(e types.Expr, text string) string {
	if _, ok := e.(types.Binary); ok {
		return "(" + text + ")"
	}
	return text
}

func translateBinary(b types.Binary, d *types.Dialect) (string, error) {
	// Equality against NULL compiles to the null-aware predicate; SQL's
	// three-valued logic would otherwise make `x = NULL` unknown for
	// every row.
	if isNullLiteral(b.Right) || isNullLiteral(b.Left) {
		operand := b.Left
		if isNullLiteral(b.Left) {
			operand = b.Right
		}
		switch b.Op {
		case types.OpEQ:
			return translateUnary(types.Unary{Op: types.OpIsNull, Operand: operand}, d)
		case types.OpNE:
			return translateUnary(types.Unary{Op: types.OpIsNotNull, Operand: operand}, d)
		}
	}

	if b.Op == types.OpDiv && d.IntDivisionRequiresCast && !knownFloat(b.Left) && !knownFloat(b.Right) {
		left, err := translateExpr(b.Left, d)
		if err != nil {
			return "", err
		}
		right, err := translateOperand(b.Right, precMul, true, d)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("CAST(%s AS %s) / %s", left, d.FloatCastType, right), nil
	}

	myPrec := binaryPrec(b.Op)
	left, err := translateOperand(b.Left, myPrec, false, d)
	if err != nil {
		return "", err
	}
	right, err := translateOperand(b.Right, myPrec, b.Op == types.OpSub || b.Op == types.OpDiv || b.Op == types.OpMod, d)
	if err != nil {
		return "", err
	}

	// AND/OR groups carry their own parentheses so nested boolean logic
	// always reads unambiguously.
	if b.Op == types.OpAnd || b.Op == types.OpOr {
		return fmt.Sprintf("(%s %s %s)", left, b.Op, right), nil
	}
	return fmt.Sprintf("%s %s %s", left, b.Op, right), nil
}

// Operator precedence levels used to decide parenthesization.
const (
	precCmp = 3
	precAdd = 4
	precMul = 5
)

func binaryPrec(op types.BinaryOp) int {
	switch op {
	case types.OpAdd, types.OpSub:
		return precAdd
	case types.OpMul, types.OpDiv, types.OpMod:
		return precMul
	default:
		return precCmp
	}
}

func exprPrec(e types.Expr) int {
	if b, ok := e.(types.Binary); ok {
		switch b.Op {
		case types.OpAnd, types.OpOr:
			return 7 // renders parenthesized
		default:
			return binaryPrec(b.Op)
		}
	}
	return 7
}

func translateOperand(e types.Expr, parentPrec int, strictRight bool, d *types.Dialect) (string, error) {
	text, err := translateExpr(e, d)
	if err != nil {
		return "", err
	}
	p := exprPrec(e)
	if p < parentPrec || (strictRight && p == parentPrec) {
		return "(" + text + ")", nil
	}
	return text, nil
}

func isNullLiteral(e types.Expr) bool {
	l, ok := e.(types.Literal)
	return ok && l.Value == nil
}

// knownFloat reports whether an expression is certain to carry floating
// semantics already, making the integer-division cast unnecessary.
func knownFloat(e types.Expr) bool {
	switch x := e.(type) {
	case types.Literal:
		return x.Float
	case types.Binary:
		return x.Op == types.OpDiv
	case types.Aggregate:
		return x.Func == types.AggAvg
	default:
		return false
	}
}

func translateCall(c types.Call, d *types.Dialect) (string, error) {
	tmpl, ok := d.Functions[strings.ToUpper(c.Name)]
	if !ok {
		return "", render.UnsupportedExpressionError{Function: c.Name, Dialect: d.Name}
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		s, err := translateExpr(a, d)
		if err != nil {
			return "", err
		}
		args[i] = s
	}
	if !strings.Contains(tmpl, "%s") {
		return tmpl, nil
	}
	return fmt.Sprintf(tmpl, strings.Join(args, ", ")), nil
}

func translateCase(c types.Case, d *types.Dialect) (string, error) {
	var sql strings.Builder
	sql.WriteString("CASE")
	for _, w := range c.Whens {
		cond, err := translateExpr(w.Cond, d)
		if err != nil {
			return "", err
		}
		result, err := translateExpr(w.Result, d)
		if err != nil {
			return "", err
		}
		sql.WriteString(" WHEN ")
		sql.WriteString(cond)
		sql.WriteString(" THEN ")
		sql.WriteString(result)
	}
	if c.Else != nil {
		elseVal, err := translateExpr(c.Else, d)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ELSE ")
		sql.WriteString(elseVal)
	}
	sql.WriteString(" END")
	return sql.String(), nil
}

func translateAggregate(a types.Aggregate, d *types.Dialect) (string, error) {
	if a.Arg == nil {
		return "COUNT(*)", nil
	}
	arg, err := translateExpr(a.Arg, d)
	if err != nil {
		return "", err
	}
	if a.Distinct {
		return fmt.Sprintf("%s(DISTINCT %s)", a.Func, arg), nil
	}
	return fmt.Sprintf("%s(%s)", a.Func, arg), nil
}
