package lazyrel

import (
	"fmt"
	"sort"

	"github.com/zoobzio/dbml"
)

// Catalog wraps a DBML project and hands out plans whose base-table
// schemas are known up front. Plans built through a catalog resolve
// column references at build time, so typos surface at the call site
// instead of at render time or in the database.
type Catalog struct {
	project *dbml.Project
	tables  map[string][]string // table -> column names, schema order
}

// NewCatalog indexes a DBML project for table lookups.
func NewCatalog(project *dbml.Project) (*Catalog, error) {
	if project == nil {
		return nil, fmt.Errorf("lazyrel: catalog project cannot be nil")
	}
	c := &Catalog{
		project: project,
		tables:  make(map[string][]string, len(project.Tables)),
	}
	for _, table := range project.Tables {
		cols := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			cols = append(cols, col.Name)
		}
		c.tables[table.Name] = cols
	}
	return c, nil
}

// Table returns a plan over a catalog table. It panics when the table is
// not in the schema; use TryTable when the name is not known statically.
func (c *Catalog) Table(name string) *Plan {
	p, err := c.TryTable(name)
	if err != nil {
		panic(err)
	}
	return p
}

// TryTable returns a plan over a catalog table, or an error naming the
// missing table.
func (c *Catalog) TryTable(name string) (*Plan, error) {
	cols, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("lazyrel: table %q not found in schema", name)
	}
	return tableWithColumns(name, cols), nil
}

// Tables returns the sorted table names of the catalog.
func (c *Catalog) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns returns the schema-order column names of a catalog table.
func (c *Catalog) Columns(table string) ([]string, error) {
	cols, ok := c.tables[table]
	if !ok {
		return nil, fmt.Errorf("lazyrel: table %q not found in schema", table)
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out, nil
}
