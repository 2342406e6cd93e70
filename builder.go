package lazyrel

import "github.com/lazyrel/lazyrel/internal/types"

// Plan is an immutable, lazy representation of a relational query. Every
// builder method returns a new Plan whose head operation references the
// old chain as its predecessor; no node is ever edited in place, so plans
// may branch and be shared across goroutines freely.
//
// Construction never fails: scope violations, unknown columns, and
// dialect limitations are compile errors reported by Render.
type Plan struct {
	src types.Source
}

// Table starts a plan over a named base table with an unknown schema. An
// optional alias qualifies column references in self-joins. Use a Catalog
// when the column set is known so name resolution is checked at compile
// time.
func Table(name string, alias ...string) *Plan {
	t := types.TableRef{Name: name}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return &Plan{src: t}
}

// tableWithColumns starts a plan over a base table whose schema is known,
// closing name resolution over it.
func tableWithColumns(name string, cols []string) *Plan {
	return &Plan{src: types.TableRef{Name: name, Columns: cols}}
}

// Source returns the head of the operation chain.
func (p *Plan) Source() types.Source {
	return p.src
}

// Project replaces the visible columns with an ordered output mapping.
// Use As for derived columns and renames, Cols for plain selections, and
// Star to pass the current columns through.
func (p *Plan) Project(outputs ...Output) *Plan {
	return &Plan{src: types.Project{Input: p.src, Outputs: outputs}}
}

// Select keeps only the named columns, in order.
func (p *Plan) Select(names ...string) *Plan {
	return p.Project(Cols(names...)...)
}

// Mutate keeps every visible column and appends derived outputs, like a
// projection of *, expr AS name.
func (p *Plan) Mutate(outputs ...Output) *Plan {
	outs := make([]Output, 0, len(outputs)+1)
	outs = append(outs, Output{Expr: types.Star{}})
	outs = append(outs, outputs...)
	return p.Project(outs...)
}

// Rename projects a single column under a new name; every other column
// is dropped. Use Mutate to add a renamed copy alongside the existing
// columns.
func (p *Plan) Rename(from, to string) *Plan {
	return p.Project(Output{Name: to, Expr: types.Column{Name: from}})
}

// Filter keeps rows matching the predicate. Successive filters AND
// together.
func (p *Plan) Filter(pred Expr) *Plan {
	return &Plan{src: types.Filter{Input: p.src, Pred: pred}}
}

// Sort orders the result by the given keys. A later Sort replaces an
// earlier one; the final ordering always attaches to the outermost
// statement.
func (p *Plan) Sort(keys ...SortKey) *Plan {
	return &Plan{src: types.Sort{Input: p.src, Keys: keys}}
}

// GroupBy starts an aggregation over the given key outputs. The grouped
// plan is completed by Aggregate.
func (p *Plan) GroupBy(keys ...Output) *GroupedPlan {
	return &GroupedPlan{input: p.src, keys: keys}
}

// Aggregate groups the whole input into a single row of aggregate
// outputs (no keys).
func (p *Plan) Aggregate(aggs ...Output) *Plan {
	return &Plan{src: types.Group{Input: p.src, Aggs: aggs}}
}

// GroupedPlan is the intermediate state between GroupBy and Aggregate.
type GroupedPlan struct {
	input types.Source
	keys  []Output
}

// Aggregate completes the grouping with named aggregate outputs. The
// result projects the group keys followed by the aggregates.
func (g *GroupedPlan) Aggregate(aggs ...Output) *Plan {
	return &Plan{src: types.Group{Input: g.input, Keys: g.keys, Aggs: aggs}}
}

// Join combines this plan with another on a predicate.
func (p *Plan) Join(other *Plan, kind JoinKind, on Expr) *Plan {
	return &Plan{src: types.Join{Left: p.src, Right: other.src, Kind: kind, On: on}}
}

// InnerJoin combines this plan with another, keeping matching rows.
func (p *Plan) InnerJoin(other *Plan, on Expr) *Plan {
	return p.Join(other, types.InnerJoin, on)
}

// LeftJoin keeps every left row, padding right columns with NULL.
func (p *Plan) LeftJoin(other *Plan, on Expr) *Plan {
	return p.Join(other, types.LeftJoin, on)
}

// RightJoin keeps every right row, padding left columns with NULL.
func (p *Plan) RightJoin(other *Plan, on Expr) *Plan {
	return p.Join(other, types.RightJoin, on)
}

// FullJoin keeps every row from both sides. Rendering fails with a
// capability error on dialects without FULL JOIN support.
func (p *Plan) FullJoin(other *Plan, on Expr) *Plan {
	return p.Join(other, types.FullJoin, on)
}

// Distinct removes duplicate rows.
func (p *Plan) Distinct() *Plan {
	return &Plan{src: types.Distinct{Input: p.src}}
}

// Render compiles the plan for a dialect. The chain is partitioned into
// nested clause sets by the planner, scope-checked, and serialized in
// fixed clause order. All compilation errors surface here, before any
// SQL text exists.
func (p *Plan) Render(d *Dialect) (*RenderedQuery, error) {
	cs, err := buildClauses(p.src)
	if err != nil {
		return nil, err
	}
	sql, err := renderClauseSet(cs, d)
	if err != nil {
		return nil, err
	}
	return &RenderedQuery{SQL: sql, Tables: types.BaseTables(p.src)}, nil
}

// MustRender renders the plan or panics on error.
func (p *Plan) MustRender(d *Dialect) *RenderedQuery {
	q, err := p.Render(d)
	if err != nil {
		panic(err)
	}
	return q
}
