// Package mysql provides the MySQL and MariaDB dialect for lazyrel.
//
// Importing the package registers the dialect under the name "mysql":
//
//	import _ "github.com/lazyrel/lazyrel/mysql"
package mysql

import (
	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/internal/types"
)

func init() {
	lazyrel.RegisterDialect(New())
}

// New returns the MySQL dialect. MySQL has no FULL JOIN; plans using one
// fail at render time with a capability error.
func New() *lazyrel.Dialect {
	return &types.Dialect{
		Name:       "mysql",
		QuoteStyle: types.QuoteBacktick,
		ReservedWords: map[string]bool{
			"all": true, "and": true, "as": true, "asc": true,
			"between": true, "by": true, "case": true, "change": true,
			"column": true, "condition": true, "create": true, "cross": true,
			"current_date": true, "current_time": true,
			"current_timestamp": true, "database": true, "default": true,
			"desc": true, "distinct": true, "div": true, "else": true,
			"exists": true, "false": true, "for": true, "foreign": true,
			"from": true, "group": true, "having": true, "in": true,
			"inner": true, "interval": true, "into": true, "is": true,
			"join": true, "key": true, "keys": true, "left": true,
			"like": true, "limit": true, "mod": true, "not": true,
			"null": true, "on": true, "or": true, "order": true,
			"outer": true, "primary": true, "rank": true, "references": true,
			"right": true, "select": true, "table": true, "then": true,
			"to": true, "true": true, "union": true, "unique": true,
			"update": true, "using": true, "when": true, "where": true,
			"with": true,
		},
		Functions: map[string]string{
			"ABS":      "ABS(%s)",
			"CEIL":     "CEILING(%s)",
			"COALESCE": "COALESCE(%s)",
			"CONCAT":   "CONCAT(%s)",
			"EXP":      "EXP(%s)",
			"FLOOR":    "FLOOR(%s)",
			"LENGTH":   "LENGTH(%s)",
			"LN":       "LN(%s)",
			"LOG10":    "LOG10(%s)",
			"LOWER":    "LOWER(%s)",
			"LTRIM":    "LTRIM(%s)",
			"NOW":      "NOW()",
			"NULLIF":   "NULLIF(%s)",
			"POWER":    "POW(%s)",
			"ROUND":    "ROUND(%s)",
			"RTRIM":    "RTRIM(%s)",
			"SQRT":     "SQRT(%s)",
			"SUBSTR":   "SUBSTR(%s)",
			"TRIM":     "TRIM(%s)",
			"UPPER":    "UPPER(%s)",
		},
		// MySQL / performs float division on integer operands already.
		IntDivisionRequiresCast: false,
		SupportsFullJoin:        false,
		BooleanLiterals:         true,
	}
}
