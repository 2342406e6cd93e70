package lazyrel_test

import (
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/duckdb"
)

func TestCatalog_NilProject(t *testing.T) {
	if _, err := lazyrel.NewCatalog(nil); err == nil {
		t.Error("expected error for nil project")
	}
}

func TestCatalog_UnknownTable(t *testing.T) {
	cat := createFlightsCatalog(t)

	if _, err := cat.TryTable("weather"); err == nil {
		t.Error("expected error for unknown table")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected Table to panic for unknown table")
		}
	}()
	cat.Table("weather")
}

func TestCatalog_TablesAndColumns(t *testing.T) {
	cat := createFlightsCatalog(t)

	tables := cat.Tables()
	if len(tables) != 2 || tables[0] != "flights" || tables[1] != "planes" {
		t.Errorf("Tables() = %v", tables)
	}

	cols, err := cat.Columns("planes")
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	expected := []string{"tailnum", "year", "model", "engines"}
	if len(cols) != len(expected) {
		t.Fatalf("Columns = %v, want %v", cols, expected)
	}
	for i := range expected {
		if cols[i] != expected[i] {
			t.Errorf("Columns[%d] = %q, want %q", i, cols[i], expected[i])
		}
	}

	if _, err := cat.Columns("weather"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestCatalog_PlansResolveAtCompileTime(t *testing.T) {
	project := dbml.NewProject("shop")
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("amount", "int"))
	project.AddTable(orders)

	cat, err := lazyrel.NewCatalog(project)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	good := cat.Table("orders").Filter(lazyrel.Gt(lazyrel.C("amount"), lazyrel.L(100)))
	sql := renderSQL(t, good, duckdb.New())
	expected := `SELECT * FROM orders WHERE amount > 100`
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}

	bad := cat.Table("orders").Select("total")
	if _, err := bad.Render(duckdb.New()); err == nil {
		t.Error("expected compile error for unknown column")
	}
}
