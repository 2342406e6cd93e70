package lazyrel

import (
	"fmt"

	"github.com/lazyrel/lazyrel/internal/render"
	"github.com/lazyrel/lazyrel/internal/types"
)

// The planner walks the operation chain from the base table outward,
// folding each operation into the current clause set until a scoping
// violation forces it to wrap the set as a nested subquery and start a
// fresh one. Folding is greedy: the minimum nesting that never lets an
// expression reference an out-of-scope name.

type planner struct {
	nAlias  int
	nSort   int
	aliases map[string]bool
}

// buildClauses compiles an operation chain into a tree of clause sets.
func buildClauses(src types.Source) (*types.ClauseSet, error) {
	pl := &planner{aliases: make(map[string]bool)}
	return pl.build(src)
}

func (pl *planner) build(src types.Source) (*types.ClauseSet, error) {
	switch n := src.(type) {
	case types.TableRef:
		return &types.ClauseSet{From: n}, nil

	case types.Project:
		cs, err := pl.build(n.Input)
		if err != nil {
			return nil, err
		}
		if err := pl.checkOutputs(n.Outputs, cs); err != nil {
			return nil, err
		}
		if closed(cs) || refsIntroduced(outputExprs(n.Outputs), cs) {
			cs = pl.wrap(cs)
		}
		cs.Select = expandStars(n.Outputs, cs.Select)
		return cs, nil

	case types.Filter:
		cs, err := pl.build(n.Input)
		if err != nil {
			return nil, err
		}
		if err := checkExpr(n.Pred, visibleScope(cs)); err != nil {
			return nil, err
		}
		if closed(cs) || refsIntroduced([]types.Expr{n.Pred}, cs) {
			cs = pl.wrap(cs)
		}
		cs.Where = append(cs.Where, n.Pred)
		return cs, nil

	case types.Group:
		cs, err := pl.build(n.Input)
		if err != nil {
			return nil, err
		}
		exprs := append(outputExprs(n.Keys), outputExprs(n.Aggs)...)
		for _, e := range exprs {
			if err := checkExpr(e, visibleScope(cs)); err != nil {
				return nil, err
			}
		}
		// Ordering below an aggregation cannot survive the grain change.
		cs.OrderBy = nil
		// Aggregation changes the row grain: anything already projected
		// or grouped must be materialized underneath it.
		if closed(cs) || len(cs.Select) > 0 {
			cs = pl.wrap(cs)
		}
		cs.Select = append(append([]types.Output{}, n.Keys...), n.Aggs...)
		for _, k := range n.Keys {
			cs.GroupBy = append(cs.GroupBy, k.Expr)
		}
		return cs, nil

	case types.Sort:
		cs, err := pl.build(n.Input)
		if err != nil {
			return nil, err
		}
		sc := visibleScope(cs)
		if len(cs.GroupBy) == 0 && !cs.Distinct {
			// ORDER BY may also reach source columns that were not
			// selected, and select-list aliases.
			sc = joinScopes(sc, sourceScope(cs))
		}
		for _, k := range n.Keys {
			if err := checkExpr(k.Expr, sc); err != nil {
				return nil, err
			}
		}
		cs.OrderBy = n.Keys
		return cs, nil

	case types.Distinct:
		cs, err := pl.build(n.Input)
		if err != nil {
			return nil, err
		}
		cs.Distinct = true
		return cs, nil

	case types.Join:
		lcs, err := pl.build(n.Left)
		if err != nil {
			return nil, err
		}
		rcs, err := pl.build(n.Right)
		if err != nil {
			return nil, err
		}
		// Bare sides keep their table name; claim those names before
		// subquery sides pick aliases.
		for _, cs := range []*types.ClauseSet{lcs, rcs} {
			if t, ok := cs.From.(types.TableRef); ok && bareSet(cs) {
				pl.aliases[tableAlias(t)] = true
			}
		}
		jc := &types.JoinClause{
			Left:  pl.asFromItem(lcs),
			Right: pl.asFromItem(rcs),
			Kind:  n.Kind,
			On:    n.On,
		}
		if err := checkExpr(n.On, fromScope(jc)); err != nil {
			return nil, err
		}
		return &types.ClauseSet{From: jc}, nil

	default:
		return nil, fmt.Errorf("unknown operation type: %T", src)
	}
}

// closed reports whether the clause set can no longer absorb operations.
// Aggregation and DISTINCT both fix the row grain of the set.
func closed(cs *types.ClauseSet) bool {
	return cs.Distinct || len(cs.GroupBy) > 0
}

// wrap finalizes a clause set as a nested subquery and opens a fresh one
// above it. Any pending ordering is hoisted to the enclosing set so the
// final ordering stays on the outermost statement; ORDER BY inside a
// subquery is discarded by most engines.
func (pl *planner) wrap(cs *types.ClauseSet) *types.ClauseSet {
	pl.nAlias++
	cs.Alias = fmt.Sprintf("q%d", pl.nAlias)
	outer := &types.ClauseSet{From: cs}
	if len(cs.OrderBy) > 0 {
		outer.OrderBy = pl.hoistSortKeys(cs)
		cs.OrderBy = nil
	}
	return outer
}

// hoistSortKeys rewrites the pending sort keys of a freshly wrapped set
// for use in the enclosing set. Keys the subquery's outputs cannot
// express are added to its projection first, under their own name for
// plain columns and a generated one for expressions.
func (pl *planner) hoistSortKeys(cs *types.ClauseSet) []types.SortKey {
	keys := make([]types.SortKey, len(cs.OrderBy))
	for i, k := range cs.OrderBy {
		out := fromScope(cs)
		if checkExpr(k.Expr, out) == nil {
			keys[i] = k
			continue
		}
		if c, ok := k.Expr.(types.Column); ok {
			bare := types.Column{Name: c.Name}
			if c.Table == "" || checkExpr(bare, out) != nil {
				pl.projectOut(cs, types.Output{Expr: c})
			}
			keys[i] = types.SortKey{Expr: bare, Direction: k.Direction}
			continue
		}
		name := pl.sortKeyName(out)
		pl.projectOut(cs, types.Output{Name: name, Expr: k.Expr})
		keys[i] = types.SortKey{Expr: types.Column{Name: name}, Direction: k.Direction}
	}
	return keys
}

// projectOut appends an output to a clause set's projection, first making
// an implicit select-everything projection explicit.
func (pl *planner) projectOut(cs *types.ClauseSet, o types.Output) {
	if len(cs.Select) == 0 {
		cs.Select = append(cs.Select, types.Output{Expr: types.Star{}})
	}
	cs.Select = append(cs.Select, o)
}

func (pl *planner) sortKeyName(out scope) string {
	for {
		pl.nSort++
		name := fmt.Sprintf("o%d", pl.nSort)
		if out.open() || !out.has(name) {
			return name
		}
	}
}

// asFromItem turns a compiled side of a join into a FROM item. A bare
// table stays bare; anything else becomes an aliased subquery. The alias
// reuses the side's base table name when it is unique and free, so
// qualified references written against the table keep working.
func (pl *planner) asFromItem(cs *types.ClauseSet) types.FromItem {
	if t, ok := cs.From.(types.TableRef); ok && bareSet(cs) {
		return t
	}
	if tabs := clauseTables(cs); len(tabs) == 1 && !pl.aliases[tabs[0]] {
		cs.Alias = tabs[0]
	} else {
		pl.nAlias++
		cs.Alias = fmt.Sprintf("q%d", pl.nAlias)
	}
	pl.aliases[cs.Alias] = true
	return cs
}

// bareSet reports whether a clause set carries no clauses of its own.
func bareSet(cs *types.ClauseSet) bool {
	return len(cs.Select) == 0 && len(cs.Where) == 0 && len(cs.GroupBy) == 0 &&
		len(cs.OrderBy) == 0 && !cs.Distinct
}

func tableAlias(t types.TableRef) string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// clauseTables lists the base tables under a clause set.
func clauseTables(cs *types.ClauseSet) []string {
	switch f := cs.From.(type) {
	case types.TableRef:
		return []string{f.Name}
	case *types.ClauseSet:
		return clauseTables(f)
	case *types.JoinClause:
		var tabs []string
		for _, item := range []types.FromItem{f.Left, f.Right} {
			switch s := item.(type) {
			case types.TableRef:
				tabs = append(tabs, s.Name)
			case *types.ClauseSet:
				tabs = append(tabs, clauseTables(s)...)
			}
		}
		return tabs
	default:
		return nil
	}
}

// checkOutputs validates every expression of a projection against the
// clause set's visible schema.
func (pl *planner) checkOutputs(outs []types.Output, cs *types.ClauseSet) error {
	sc := visibleScope(cs)
	for _, o := range outs {
		if err := checkExpr(o.Expr, sc); err != nil {
			return err
		}
	}
	return nil
}

func outputExprs(outs []types.Output) []types.Expr {
	exprs := make([]types.Expr, len(outs))
	for i, o := range outs {
		exprs[i] = o.Expr
	}
	return exprs
}

// introducedNames collects output names defined by the pending Select:
// derived columns and renames, but not passthroughs of the same name.
func introducedNames(cs *types.ClauseSet) map[string]bool {
	names := make(map[string]bool)
	for _, o := range cs.Select {
		c, isCol := o.Expr.(types.Column)
		switch {
		case o.Name == "":
			// bare column or wildcard passthrough
		case isCol && c.Name == o.Name:
			// explicit passthrough
		default:
			names[o.Name] = true
		}
	}
	return names
}

// refsIntroduced reports whether any expression references a name defined
// by the clause set's own pending projection. Such a reference cannot
// share the clause set: its own outputs are not self-visible.
func refsIntroduced(exprs []types.Expr, cs *types.ClauseSet) bool {
	intro := introducedNames(cs)
	if len(intro) == 0 {
		return false
	}
	for _, e := range exprs {
		for _, c := range types.ColumnRefs(e) {
			if c.Table == "" && intro[c.Name] {
				return true
			}
		}
	}
	return false
}

// expandStars splices the current projection into wildcard outputs so a
// Mutate over a pending Select keeps its columns, then appends the rest.
func expandStars(outs []types.Output, current []types.Output) []types.Output {
	if len(current) == 0 {
		return outs
	}
	var expanded []types.Output
	for _, o := range outs {
		if s, ok := o.Expr.(types.Star); ok && s.Table == "" && o.Name == "" {
			expanded = append(expanded, current...)
			continue
		}
		expanded = append(expanded, o)
	}
	return expanded
}

// --- scope resolution ---

// scope is the set of column names visible at one point of the chain,
// per originating source. A nil column list means the source schema is
// unknown and resolution stays open for it.
type scope struct {
	sources []scopedSource
}

type scopedSource struct {
	alias string
	cols  []string // nil => unknown
}

func (s scope) open() bool {
	for _, src := range s.sources {
		if src.cols == nil {
			return true
		}
	}
	return false
}

func (s scope) has(name string) bool {
	for _, src := range s.sources {
		for _, c := range src.cols {
			if c == name {
				return true
			}
		}
	}
	return false
}

func (s scope) names() []string {
	var all []string
	for _, src := range s.sources {
		all = append(all, src.cols...)
	}
	return all
}

func joinScopes(a, b scope) scope {
	return scope{sources: append(append([]scopedSource{}, a.sources...), b.sources...)}
}

// visibleScope is the output schema of a clause set: its pending Select
// when one exists, otherwise the schema of its source.
func visibleScope(cs *types.ClauseSet) scope {
	if len(cs.Select) == 0 {
		return sourceScope(cs)
	}
	var cols []string
	known := true
	for _, o := range cs.Select {
		switch e := o.Expr.(type) {
		case types.Star:
			from := sourceScope(cs)
			if from.open() {
				known = false
				continue
			}
			if e.Table == "" {
				cols = append(cols, from.names()...)
				continue
			}
			for _, src := range from.sources {
				if src.alias == e.Table {
					cols = append(cols, src.cols...)
				}
			}
		default:
			cols = append(cols, outputName(o))
		}
	}
	if !known {
		cols = nil
	}
	return scope{sources: []scopedSource{{alias: cs.Alias, cols: cols}}}
}

func outputName(o types.Output) string {
	if o.Name != "" {
		return o.Name
	}
	if c, ok := o.Expr.(types.Column); ok {
		return c.Name
	}
	return ""
}

// sourceScope is the schema of the FROM position of a clause set.
func sourceScope(cs *types.ClauseSet) scope {
	return fromScope(cs.From)
}

func fromScope(f types.FromItem) scope {
	switch n := f.(type) {
	case types.TableRef:
		return scope{sources: []scopedSource{{alias: tableAlias(n), cols: n.Columns}}}
	case *types.ClauseSet:
		// Outside a subquery only its alias and output columns exist;
		// the tables underneath are out of scope.
		inner := visibleScope(n)
		var cols []string
		if !inner.open() {
			cols = inner.names()
		}
		return scope{sources: []scopedSource{{alias: n.Alias, cols: cols}}}
	case *types.JoinClause:
		return joinScopes(fromScope(n.Left), fromScope(n.Right))
	default:
		return scope{}
	}
}

// checkExpr resolves every column reference of an expression against a
// scope. Unqualified names provided by more than one source are
// ambiguous; names provided by none are unresolved, unless some source
// schema is unknown.
func checkExpr(e types.Expr, sc scope) error {
	for _, c := range types.ColumnRefs(e) {
		if err := resolveColumn(c, sc); err != nil {
			return err
		}
	}
	return nil
}

func resolveColumn(c types.Column, sc scope) error {
	if c.Table != "" {
		for _, src := range sc.sources {
			if src.alias != c.Table {
				continue
			}
			if src.cols == nil {
				return nil
			}
			for _, col := range src.cols {
				if col == c.Name {
					return nil
				}
			}
			return render.UnresolvedColumnError{Name: c.Table + "." + c.Name, Scope: src.cols}
		}
		// The set of visible source aliases is always known, even when
		// column sets are not; a qualifier matching none of them cannot
		// resolve.
		return render.UnresolvedColumnError{Name: c.Table + "." + c.Name, Scope: sc.names()}
	}

	var providers []string
	for _, src := range sc.sources {
		for _, col := range src.cols {
			if col == c.Name {
				providers = append(providers, src.alias)
				break
			}
		}
	}
	switch {
	case len(providers) > 1:
		return render.AmbiguousColumnError{Name: c.Name, Sources: providers}
	case len(providers) == 1:
		return nil
	case sc.open():
		return nil
	default:
		return render.UnresolvedColumnError{Name: c.Name, Scope: sc.names()}
	}
}
