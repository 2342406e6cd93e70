// Package mssql provides the SQL Server dialect for lazyrel.
//
// Importing the package registers the dialect under the name "mssql":
//
//	import _ "github.com/lazyrel/lazyrel/mssql"
package mssql

import (
	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/internal/types"
)

func init() {
	lazyrel.RegisterDialect(New())
}

// New returns the SQL Server dialect. SQL Server has no boolean literal
// keywords, so true and false render as 1 and 0.
func New() *lazyrel.Dialect {
	return &types.Dialect{
		Name:       "mssql",
		QuoteStyle: types.QuoteBracket,
		ReservedWords: map[string]bool{
			"all": true, "and": true, "any": true, "as": true, "asc": true,
			"between": true, "by": true, "case": true, "cast": true,
			"check": true, "collate": true, "column": true, "constraint": true,
			"create": true, "cross": true, "current_date": true,
			"current_time": true, "current_timestamp": true, "default": true,
			"desc": true, "distinct": true, "else": true, "end": true,
			"except": true, "exists": true, "for": true, "foreign": true,
			"from": true, "full": true, "group": true, "having": true,
			"in": true, "inner": true, "intersect": true, "into": true,
			"is": true, "join": true, "key": true, "left": true,
			"like": true, "not": true, "null": true, "on": true,
			"or": true, "order": true, "outer": true, "percent": true,
			"primary": true, "references": true, "right": true,
			"select": true, "table": true, "then": true, "to": true,
			"top": true, "union": true, "unique": true, "user": true,
			"when": true, "where": true, "with": true,
		},
		Functions: map[string]string{
			"ABS":      "ABS(%s)",
			"CEIL":     "CEILING(%s)",
			"COALESCE": "COALESCE(%s)",
			"CONCAT":   "CONCAT(%s)",
			"EXP":      "EXP(%s)",
			"FLOOR":    "FLOOR(%s)",
			"LENGTH":   "LEN(%s)",
			"LN":       "LOG(%s)",
			"LOG10":    "LOG10(%s)",
			"LOWER":    "LOWER(%s)",
			"LTRIM":    "LTRIM(%s)",
			"NOW":      "GETDATE()",
			"NULLIF":   "NULLIF(%s)",
			"POWER":    "POWER(%s)",
			"ROUND":    "ROUND(%s)",
			"RTRIM":    "RTRIM(%s)",
			"SQRT":     "SQRT(%s)",
			"SUBSTR":   "SUBSTRING(%s)",
			"TRIM":     "TRIM(%s)",
			"UPPER":    "UPPER(%s)",
		},
		IntDivisionRequiresCast: true,
		FloatCastType:           "FLOAT",
		SupportsFullJoin:        true,
		BooleanLiterals:         false,
	}
}
