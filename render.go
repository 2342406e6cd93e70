package lazyrel

import (
	"strings"

	"github.com/lazyrel/lazyrel/internal/render"
	"github.com/lazyrel/lazyrel/internal/types"
)

// renderClauseSet serializes a clause-set tree in fixed clause order:
// SELECT, FROM, WHERE, GROUP BY, ORDER BY. Authoring order and logical
// evaluation order never change the textual order. Nested sets render as
// parenthesized subqueries in the FROM position under their generated
// alias.
func renderClauseSet(cs *types.ClauseSet, d *types.Dialect) (string, error) {
	var sql strings.Builder
	if err := writeClauseSet(cs, d, &sql); err != nil {
		return "", err
	}
	return sql.String(), nil
}

func writeClauseSet(cs *types.ClauseSet, d *types.Dialect, sql *strings.Builder) error {
	sql.WriteString("SELECT ")
	if cs.Distinct {
		sql.WriteString("DISTINCT ")
	}

	if len(cs.Select) == 0 {
		list, err := defaultSelectList(cs.From, d)
		if err != nil {
			return err
		}
		sql.WriteString(list)
	} else {
		selections := make([]string, 0, len(cs.Select))
		for _, o := range cs.Select {
			s, err := renderOutput(o, d)
			if err != nil {
				return err
			}
			selections = append(selections, s)
		}
		sql.WriteString(strings.Join(selections, ", "))
	}

	sql.WriteString(" FROM ")
	if err := writeFromItem(cs.From, d, sql); err != nil {
		return err
	}

	if len(cs.Where) > 0 {
		sql.WriteString(" WHERE ")
		conjuncts := make([]string, 0, len(cs.Where))
		for _, pred := range cs.Where {
			s, err := translateExpr(pred, d)
			if err != nil {
				return err
			}
			conjuncts = append(conjuncts, s)
		}
		sql.WriteString(strings.Join(conjuncts, " AND "))
	}

	if len(cs.GroupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		keys := make([]string, 0, len(cs.GroupBy))
		for _, k := range cs.GroupBy {
			s, err := translateExpr(k, d)
			if err != nil {
				return err
			}
			keys = append(keys, s)
		}
		sql.WriteString(strings.Join(keys, ", "))
	}

	if len(cs.OrderBy) > 0 {
		sql.WriteString(" ORDER BY ")
		keys := make([]string, 0, len(cs.OrderBy))
		for _, k := range cs.OrderBy {
			s, err := translateExpr(k.Expr, d)
			if err != nil {
				return err
			}
			if k.Direction == types.DESC {
				s += " DESC"
			}
			keys = append(keys, s)
		}
		sql.WriteString(strings.Join(keys, ", "))
	}

	return nil
}

// renderOutput renders one select-list entry, appending an AS alias for
// named outputs that are not plain passthroughs.
func renderOutput(o types.Output, d *types.Dialect) (string, error) {
	s, err := translateExpr(o.Expr, d)
	if err != nil {
		return "", err
	}
	if o.Name == "" {
		return s, nil
	}
	if c, ok := o.Expr.(types.Column); ok && c.Name == o.Name && c.Table == "" {
		return s, nil
	}
	return s + " AS " + d.QuoteIdent(o.Name), nil
}

func writeFromItem(f types.FromItem, d *types.Dialect, sql *strings.Builder) error {
	switch n := f.(type) {
	case types.TableRef:
		sql.WriteString(d.QuoteIdent(n.Name))
		if n.Alias != "" {
			sql.WriteString(" ")
			sql.WriteString(d.QuoteIdent(n.Alias))
		}
		return nil

	case *types.ClauseSet:
		sql.WriteString("(")
		if err := writeClauseSet(n, d, sql); err != nil {
			return err
		}
		sql.WriteString(") ")
		sql.WriteString(d.QuoteIdent(n.Alias))
		return nil

	case *types.JoinClause:
		if n.Kind == types.FullJoin && !d.SupportsFullJoin {
			return render.CapabilityError{Dialect: d.Name, Feature: "FULL JOIN"}
		}
		if err := writeFromItem(n.Left, d, sql); err != nil {
			return err
		}
		sql.WriteString(" ")
		sql.WriteString(string(n.Kind))
		sql.WriteString(" ")
		if err := writeFromItem(n.Right, d, sql); err != nil {
			return err
		}
		on, err := translateExpr(n.On, d)
		if err != nil {
			return err
		}
		sql.WriteString(" ON ")
		// AND/OR groups already carry their own parentheses.
		if b, ok := n.On.(types.Binary); ok && (b.Op == types.OpAnd || b.Op == types.OpOr) {
			sql.WriteString(on)
		} else {
			sql.WriteString("(" + on + ")")
		}
		return nil

	default:
		return nil
	}
}

// defaultSelectList expands the implicit projection of a clause set with
// no Select of its own. For joins with known schemas the expansion lists
// every column, qualifying the ones both sides provide; otherwise it is
// the wildcard.
func defaultSelectList(f types.FromItem, d *types.Dialect) (string, error) {
	jc, ok := f.(*types.JoinClause)
	if !ok {
		return "*", nil
	}
	sc := fromScope(jc)
	if sc.open() {
		return "*", nil
	}

	seen := make(map[string]int)
	for _, src := range sc.sources {
		for _, col := range src.cols {
			seen[col]++
		}
	}
	var cols []string
	for _, src := range sc.sources {
		for _, col := range src.cols {
			if seen[col] > 1 {
				cols = append(cols, d.QuoteIdent(src.alias)+"."+d.QuoteIdent(col))
			} else {
				cols = append(cols, d.QuoteIdent(col))
			}
		}
	}
	return strings.Join(cols, ", "), nil
}
