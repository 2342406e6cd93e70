package lazyrel_test

import (
	"fmt"

	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/duckdb"
	"github.com/lazyrel/lazyrel/postgres"
)

func ExamplePlan_Render() {
	plan := lazyrel.Table("flights").
		Filter(lazyrel.Gt(lazyrel.C("dep_delay"), lazyrel.L(15))).
		Select("carrier", "dest").
		Sort(lazyrel.Desc(lazyrel.C("dep_delay")))

	q := plan.MustRender(postgres.New())
	fmt.Println(q.SQL)
	// Output: SELECT carrier, dest FROM flights WHERE dep_delay > 15 ORDER BY dep_delay DESC
}

func ExamplePlan_Mutate() {
	// Referencing a column introduced by the same pipeline forces one
	// level of nesting; everything else folds into a single statement.
	plan := lazyrel.Table("mtcars").
		Mutate(lazyrel.As(lazyrel.Add(lazyrel.C("cyl"), lazyrel.L(2)), "cyl2")).
		Mutate(lazyrel.As(lazyrel.Add(lazyrel.C("cyl2"), lazyrel.L(1)), "cyl4"))

	q := plan.MustRender(duckdb.New())
	fmt.Println(q.SQL)
	// Output: SELECT *, cyl2 + 1 AS cyl4 FROM (SELECT *, cyl + 2 AS cyl2 FROM mtcars) q1
}

func ExamplePlan_GroupBy() {
	plan := lazyrel.Table("flights").
		GroupBy(lazyrel.Cols("dest")...).
		Aggregate(lazyrel.As(lazyrel.Avg(lazyrel.C("dep_delay")), "delay"))

	q := plan.MustRender(duckdb.New())
	fmt.Println(q.SQL)
	// Output: SELECT dest, AVG(dep_delay) AS delay FROM flights GROUP BY dest
}

func ExamplePlan_LeftJoin() {
	flights := lazyrel.Table("flights")
	planes := lazyrel.Table("planes")

	plan := flights.LeftJoin(planes, lazyrel.Eq(
		lazyrel.C("tailnum").From("flights"),
		lazyrel.C("tailnum").From("planes"),
	))

	q := plan.MustRender(duckdb.New())
	fmt.Println(q.SQL)
	// Output: SELECT * FROM flights LEFT JOIN planes ON (flights.tailnum = planes.tailnum)
}
