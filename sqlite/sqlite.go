// Package sqlite provides the SQLite dialect for lazyrel.
//
// Importing the package registers the dialect under the name "sqlite":
//
//	import _ "github.com/lazyrel/lazyrel/sqlite"
//
// FULL JOIN support requires SQLite 3.39 or later; the bundled
// modernc.org/sqlite driver is recent enough.
package sqlite

import (
	"github.com/lazyrel/lazyrel"
	"github.com/lazyrel/lazyrel/internal/types"
)

func init() {
	lazyrel.RegisterDialect(New())
}

// New returns the SQLite dialect.
func New() *lazyrel.Dialect {
	return &types.Dialect{
		Name:       "sqlite",
		QuoteStyle: types.QuoteDouble,
		ReservedWords: map[string]bool{
			"all": true, "and": true, "as": true, "asc": true,
			"between": true, "by": true, "case": true, "cast": true,
			"check": true, "collate": true, "create": true, "cross": true,
			"current_date": true, "current_time": true,
			"current_timestamp": true, "default": true, "desc": true,
			"distinct": true, "else": true, "end": true, "escape": true,
			"except": true, "exists": true, "from": true, "full": true,
			"group": true, "having": true, "in": true, "index": true,
			"inner": true, "intersect": true, "into": true, "is": true,
			"isnull": true, "join": true, "left": true, "like": true,
			"limit": true, "not": true, "notnull": true, "null": true,
			"offset": true, "on": true, "or": true, "order": true,
			"outer": true, "primary": true, "references": true, "right": true,
			"select": true, "table": true, "then": true, "to": true,
			"union": true, "unique": true, "using": true, "when": true,
			"where": true, "with": true,
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
			"LOG10":    "LOG10(%s)",
			"LOWER":    "LOWER(%s)",
			"LTRIM":    "LTRIM(%s)",
			"NOW":      "CURRENT_TIMESTAMP",
			"NULLIF":   "NULLIF(%s)",
			"POWER":    "POW(%s)",
			"ROUND":    "ROUND(%s)",
			"RTRIM":    "RTRIM(%s)",
			"SQRT":     "SQRT(%s)",
			"SUBSTR":   "SUBSTR(%s)",
			"TRIM":     "TRIM(%s)",
			"UPPER":    "UPPER(%s)",
		},
		IntDivisionRequiresCast: true,
		FloatCastType:           "REAL",
		SupportsFullJoin:        true,
		BooleanLiterals:         true,
	}
}
