package postgres_test

import (
	"testing"

	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/postgres"
)

func TestNew(t *testing.T) {
	d := postgres.New()
	if d.Name != "postgres" {
		t.Errorf("Name = %q", d.Name)
	}
	if !d.SupportsFullJoin {
		t.Error("postgres supports FULL JOIN")
	}
	if !d.IntDivisionRequiresCast || d.FloatCastType != "DOUBLE PRECISION" {
		t.Errorf("division config wrong: %+v", d)
	}
}

func TestRegistered(t *testing.T) {
	d, err := lazyrel.Lookup("postgres")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if d.Name != "postgres" {
		t.Errorf("Name = %q", d.Name)
	}
}

func TestQuoting(t *testing.T) {
	d := postgres.New()
	if got := d.QuoteIdent("user"); got != `"user"` {
		t.Errorf("QuoteIdent(user) = %q, reserved word needs quoting", got)
	}
	if got := d.QuoteIdent("username"); got != "username" {
		t.Errorf("QuoteIdent(username) = %q", got)
	}
}

func TestRender(t *testing.T) {
	plan := lazyrel.Table("users").
		Filter(lazyrel.Eq(lazyrel.C("active"), lazyrel.L(true))).
		Project(lazyrel.As(lazyrel.Fn("lower", lazyrel.C("email")), "email"))

	q, err := plan.Render(postgres.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := `SELECT LOWER(email) AS email FROM users WHERE active = TRUE`
	if q.SQL != expected {
		t.Errorf("SQL = %q, want %q", q.SQL, expected)
	}
}
