package exec_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/exec"
	"github.com/lazyrel/lazyrel/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE people (name TEXT, age INTEGER, city TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO people VALUES
		('ada', 36, 'london'),
		('grace', 45, 'new york'),
		('alan', 29, 'london'),
		('edsger', 41, 'austin')`)
	require.NoError(t, err)
	return db
}

func TestCollect(t *testing.T) {
	db := openTestDB(t)

	plan := lazyrel.Table("people").
		Filter(lazyrel.Gt(lazyrel.C("age"), lazyrel.L(30))).
		Sort(lazyrel.Desc(lazyrel.C("age")))

	tbl, err := exec.Collect(context.Background(), db, plan, sqlite.New())
	require.NoError(t, err)

	require.Equal(t, []string{"name", "age", "city"}, tbl.Columns)
	require.Equal(t, 3, tbl.NumRows())

	name, err := tbl.Get(0, "name")
	require.NoError(t, err)
	require.Equal(t, "grace", name)

	age, err := tbl.Get(2, "age")
	require.NoError(t, err)
	require.EqualValues(t, 36, age)
}

func TestCollectAggregate(t *testing.T) {
	db := openTestDB(t)

	plan := lazyrel.Table("people").
		GroupBy(lazyrel.Cols("city")...).
		Aggregate(lazyrel.As(lazyrel.CountAll(), "n")).
		Sort(lazyrel.Desc(lazyrel.C("n")))

	tbl, err := exec.Collect(context.Background(), db, plan, sqlite.New())
	require.NoError(t, err)

	require.Equal(t, []string{"city", "n"}, tbl.Columns)
	require.Equal(t, 3, tbl.NumRows())

	city, err := tbl.Get(0, "city")
	require.NoError(t, err)
	require.Equal(t, "london", city)

	n, err := tbl.Get(0, "n")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestCollectExecutionError(t *testing.T) {
	db := openTestDB(t)

	plan := lazyrel.Table("missing")
	_, err := exec.Collect(context.Background(), db, plan, sqlite.New())
	require.Error(t, err)

	var execErr lazyrel.ExecutionError
	require.ErrorAs(t, err, &execErr)
	require.Contains(t, execErr.SQL, "missing")
	require.Error(t, execErr.Unwrap())
}

func TestCollectCompileErrorSkipsDatabase(t *testing.T) {
	db := openTestDB(t)

	// An unregistered function fails at compile time; no execution
	// error wrapper means the database was never reached.
	plan := lazyrel.Table("people").
		Project(lazyrel.As(lazyrel.Fn("MEDIAN", lazyrel.C("age")), "m"))
	_, err := exec.Collect(context.Background(), db, plan, sqlite.New())
	require.Error(t, err)

	var execErr lazyrel.ExecutionError
	require.False(t, errors.As(err, &execErr))
}

func TestTableLookups(t *testing.T) {
	tbl := &exec.Table{
		Columns: []string{"a", "b"},
		Rows:    [][]any{{int64(1), "x"}},
	}

	require.Equal(t, 0, tbl.ColIndex("a"))
	require.Equal(t, -1, tbl.ColIndex("z"))

	_, err := tbl.Get(0, "z")
	require.Error(t, err)
	_, err = tbl.Get(5, "a")
	require.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	db := openTestDB(t)

	plan := lazyrel.Table("people").
		Filter(lazyrel.Eq(lazyrel.C("city"), lazyrel.L("london"))).
		Select("name", "age").
		Sort(lazyrel.Asc(lazyrel.C("name")))

	tbl, err := exec.Collect(context.Background(), db, plan, sqlite.New())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tbl.WriteCSV(&buf))
	require.Equal(t, "name,age\nada,36\nalan,29\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	db := openTestDB(t)

	plan := lazyrel.Table("people").
		Filter(lazyrel.Gt(lazyrel.C("age"), lazyrel.L(44))).
		Select("name")

	tbl, err := exec.Collect(context.Background(), db, plan, sqlite.New())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tbl.WriteJSON(&buf))
	require.JSONEq(t, `{"name":"grace"}`, strings.TrimSpace(buf.String()))
}

func TestWriteText(t *testing.T) {
	db := openTestDB(t)

	plan := lazyrel.Table("people").Select("name", "age")
	tbl, err := exec.Collect(context.Background(), db, plan, sqlite.New())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tbl.WriteText(&buf))
	out := buf.String()
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "grace")
}
