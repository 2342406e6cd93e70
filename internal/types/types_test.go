package types

import (
	"reflect"
	"testing"
)

func TestColumn_From(t *testing.T) {
	c := Column{Name: "tailnum"}
	qualified := c.From("flights")

	if qualified.Table != "flights" || qualified.Name != "tailnum" {
		t.Errorf("From() = %+v", qualified)
	}
	if c.Table != "" {
		t.Error("From must not mutate the receiver")
	}
}

func TestColumnRefs(t *testing.T) {
	expr := Binary{
		Op: OpAnd,
		Left: Binary{
			Op:    OpGT,
			Left:  Column{Name: "dep_delay"},
			Right: Literal{Value: 15},
		},
		Right: Binary{
			Op:    OpEQ,
			Left:  Column{Table: "flights", Name: "dest"},
			Right: Literal{Value: "IAH"},
		},
	}

	refs := ColumnRefs(expr)
	expected := []Column{
		{Name: "dep_delay"},
		{Table: "flights", Name: "dest"},
	}
	if !reflect.DeepEqual(refs, expected) {
		t.Errorf("ColumnRefs = %+v, want %+v", refs, expected)
	}
}

func TestHasAggregate(t *testing.T) {
	plain := Binary{Op: OpAdd, Left: Column{Name: "a"}, Right: Literal{Value: 1}}
	if HasAggregate(plain) {
		t.Error("plain arithmetic has no aggregate")
	}

	agg := Binary{
		Op:    OpDiv,
		Left:  Aggregate{Func: AggSum, Arg: Column{Name: "amount"}},
		Right: Literal{Value: 100},
	}
	if !HasAggregate(agg) {
		t.Error("expected aggregate inside division")
	}
}

func TestWalkVisitsCaseBranches(t *testing.T) {
	expr := Case{
		Whens: []When{
			{Cond: Column{Name: "a"}, Result: Literal{Value: 1}},
		},
		Else: Column{Name: "b"},
	}

	var cols []string
	Walk(expr, func(e Expr) {
		if c, ok := e.(Column); ok {
			cols = append(cols, c.Name)
		}
	})
	if !reflect.DeepEqual(cols, []string{"a", "b"}) {
		t.Errorf("visited columns = %v", cols)
	}
}

func TestBaseTables(t *testing.T) {
	src := Join{
		Left: Filter{
			Input: TableRef{Name: "flights"},
			Pred:  Binary{Op: OpGT, Left: Column{Name: "dep_delay"}, Right: Literal{Value: 0}},
		},
		Right: TableRef{Name: "planes"},
		Kind:  LeftJoin,
		On:    Binary{Op: OpEQ, Left: Column{Table: "flights", Name: "tailnum"}, Right: Column{Table: "planes", Name: "tailnum"}},
	}

	if got := BaseTables(src); !reflect.DeepEqual(got, []string{"flights", "planes"}) {
		t.Errorf("BaseTables = %v", got)
	}
}

func TestNeedsQuote(t *testing.T) {
	d := &Dialect{ReservedWords: map[string]bool{"order": true}}

	tests := []struct {
		name string
		want bool
	}{
		{"plain", false},
		{"snake_case", false},
		{"v2", false},
		{"order", true},
		{"ORDER", true},
		{"Mixed", true},
		{"9lives", true},
		{"has space", true},
		{"", true},
	}
	for _, tt := range tests {
		if got := d.NeedsQuote(tt.name); got != tt.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	all := &Dialect{QuoteAll: true}
	if !all.NeedsQuote("plain") {
		t.Error("QuoteAll must force quoting")
	}
}

func TestQuoteStringEscaping(t *testing.T) {
	d := &Dialect{}
	if got := d.QuoteString("O'Hare"); got != "'O''Hare'" {
		t.Errorf("QuoteString = %q", got)
	}
}
