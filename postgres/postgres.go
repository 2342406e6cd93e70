// Package postgres provides the PostgreSQL dialect for lazyrel.
//
// Importing the package registers the dialect under the name "postgres":
//
//	import _ "github.com/lazyrel/lazyrel/postgres"
package postgres

import (
	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/internal/types"
)

func init() {
	lazyrel.RegisterDialect(New())
}

// New returns the PostgreSQL dialect. Each call returns a fresh value, so
// callers may customize function maps without affecting the registered
// dialect.
func New() *lazyrel.Dialect {
	return &types.Dialect{
		Name:       "postgres",
		QuoteStyle: types.QuoteDouble,
		ReservedWords: map[string]bool{
			"all": true, "and": true, "any": true, "as": true, "asc": true,
			"between": true, "by": true, "case": true, "cast": true,
			"check": true, "collate": true, "column": true, "constraint": true,
			"create": true, "cross": true, "current_date": true,
			"current_time": true, "current_timestamp": true, "default": true,
			"desc": true, "distinct": true, "do": true, "else": true,
			"end": true, "except": true, "exists": true, "false": true,
			"for": true, "foreign": true, "from": true, "full": true,
			"group": true, "having": true, "in": true, "inner": true,
			"intersect": true, "into": true, "is": true, "join": true,
			"left": true, "like": true, "limit": true, "not": true,
			"null": true, "offset": true, "on": true, "or": true,
			"order": true, "outer": true, "primary": true, "references": true,
			"right": true, "select": true, "table": true, "then": true,
			"to": true, "true": true, "union": true, "unique": true,
			"user": true, "using": true, "when": true, "where": true,
			"with": true,
		},
		Functions: map[string]string{
			"ABS":      "ABS(%s)",
			"CEIL":     "CEIL(%s)",
			"COALESCE": "COALESCE(%s)",
			"CONCAT":   "CONCAT(%s)",
			"EXP":      "EXP(%s)",
			"FLOOR":    "FLOOR(%s)",
			"LENGTH":   "LENGTH(%s)",
			"LN":       "LN(%s)",
			"LOG10":    "LOG(%s)",
			"LOWER":    "LOWER(%s)",
			"LTRIM":    "LTRIM(%s)",
			"NOW":      "NOW()",
			"NULLIF":   "NULLIF(%s)",
			"POWER":    "POWER(%s)",
			"ROUND":    "ROUND(%s)",
			"RTRIM":    "RTRIM(%s)",
			"SQRT":     "SQRT(%s)",
			"SUBSTR":   "SUBSTR(%s)",
			"TRIM":     "TRIM(%s)",
			"UPPER":    "UPPER(%s)",
		},
		IntDivisionRequiresCast: true,
		FloatCastType:           "DOUBLE PRECISION",
		SupportsFullJoin:        true,
		BooleanLiterals:         true,
	}
}
