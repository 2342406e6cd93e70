package integration

import (
	"context"
	"testing"

	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/exec"
	"github.com/lazyrel/lazyrel/mysql"
)

func TestMariaDB_GroupAndHaving(t *testing.T) {
	db := getMariaDB(t)
	ctx := context.Background()

	mustExec(t, db,
		`DROP TABLE IF EXISTS my_events`,
		"CREATE TABLE my_events (city VARCHAR(32), `rank` INT)",
		"INSERT INTO my_events VALUES ('lyon', 1), ('lyon', 2), ('oslo', 3)",
	)

	// "rank" is reserved in MariaDB; the compiler must quote it.
	plan := lazyrel.Table("my_events").
		Filter(lazyrel.Le(lazyrel.C("rank"), lazyrel.L(2))).
		GroupBy(lazyrel.Cols("city")...).
		Aggregate(lazyrel.As(lazyrel.CountAll(), "n"))

	tbl, err := exec.Collect(ctx, db, plan, mysql.New())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if tbl.NumRows() != 1 {
		t.Fatalf("NumRows = %d, want 1", tbl.NumRows())
	}
	city, err := tbl.Get(0, "city")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	// go-sql-driver returns text columns as []byte.
	if string(city.([]byte)) != "lyon" {
		t.Errorf("city = %v, want lyon", city)
	}
}

func TestMariaDB_NoDivisionCast(t *testing.T) {
	db := getMariaDB(t)
	ctx := context.Background()

	mustExec(t, db,
		`DROP TABLE IF EXISTS my_diamonds`,
		`CREATE TABLE my_diamonds (price INT, carat INT)`,
		`INSERT INTO my_diamonds VALUES (5, 2)`,
	)

	plan := lazyrel.Table("my_diamonds").Project(
		lazyrel.As(lazyrel.Div(lazyrel.C("price"), lazyrel.C("carat")), "ppc"),
	)

	tbl, err := exec.Collect(ctx, db, plan, mysql.New())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	ppc, err := tbl.Get(0, "ppc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	// MariaDB / is float division already, no cast inserted.
	if string(ppc.([]byte)) != "2.5000" {
		t.Errorf("ppc = %q, want 2.5000", ppc)
	}
}
