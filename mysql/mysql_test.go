package mysql_test

import (
	"errors"
	"testing"

	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/mysql"
)

func TestNew(t *testing.T) {
	d := mysql.New()
	if d.Name != "mysql" {
		t.Errorf("Name = %q", d.Name)
	}
	if d.SupportsFullJoin {
		t.Error("mysql has no FULL JOIN")
	}
	if d.IntDivisionRequiresCast {
		t.Error("mysql / is already float division")
	}
}

func TestQuoting(t *testing.T) {
	d := mysql.New()
	if got := d.QuoteIdent("key"); got != "`key`" {
		t.Errorf("QuoteIdent(key) = %q", got)
	}
	if got := d.QuoteIdent("amount"); got != "amount" {
		t.Errorf("QuoteIdent(amount) = %q", got)
	}
}

func TestFullJoinRejected(t *testing.T) {
	plan := lazyrel.Table("a").FullJoin(lazyrel.Table("b"),
		lazyrel.Eq(lazyrel.C("id").From("a"), lazyrel.C("id").From("b")))

	_, err := plan.Render(mysql.New())
	var capErr lazyrel.CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapabilityError, got %T: %v", err, err)
	}
	if capErr.Dialect != "mysql" || capErr.Feature != "FULL JOIN" {
		t.Errorf("CapabilityError = %+v", capErr)
	}
}

func TestNoDivisionCast(t *testing.T) {
	plan := lazyrel.Table("orders").
		Project(lazyrel.As(lazyrel.Div(lazyrel.C("total"), lazyrel.C("items")), "avg_item"))

	q, err := plan.Render(mysql.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := "SELECT total / items AS avg_item FROM orders"
	if q.SQL != expected {
		t.Errorf("SQL = %q, want %q", q.SQL, expected)
	}
}
