package types

import "strings"

// QuoteStyle selects the identifier quoting characters of a dialect.
type QuoteStyle int

const (
	QuoteDouble   QuoteStyle = iota // "ident" (standard SQL)
	QuoteBacktick                   // `ident` (MySQL)
	QuoteBracket                    // [ident] (SQL Server)
)

// Dialect describes one SQL variant: its reserved words, quoting rules,
// scalar function registry, and capability flags. Values are threaded
// explicitly through translation and rendering, never read from ambient
// state, and must be treated as read-only after construction.
type Dialect struct {
	Name string

	// ReservedWords holds lowercased identifiers that require quoting.
	// When QuoteAll is set every identifier is quoted regardless.
	ReservedWords map[string]bool
	QuoteAll      bool
	QuoteStyle    QuoteStyle

	// Functions maps uppercased function names to render templates. A
	// template contains one %s that receives the comma-joined argument
	// list ("LN(%s)"); a template without %s renders verbatim.
	Functions map[string]string

	// IntDivisionRequiresCast marks dialects whose / operator performs
	// integer division on integer operands. The translator inserts an
	// explicit cast to FloatCastType to preserve floating semantics.
	IntDivisionRequiresCast bool
	FloatCastType           string

	SupportsFullJoin bool

	// BooleanLiterals is false for dialects without TRUE/FALSE keywords;
	// boolean literals then render as 1/0.
	BooleanLiterals bool
}

// NeedsQuote reports whether an identifier must be quoted.
func (d *Dialect) NeedsQuote(name string) bool {
	if d.QuoteAll {
		return true
	}
	if d.ReservedWords[strings.ToLower(name)] {
		return true
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		case c == '_':
		default:
			return true
		}
	}
	return len(name) == 0
}

// QuoteIdent quotes an identifier when the dialect requires it, escaping
// embedded quoting characters by doubling them.
func (d *Dialect) QuoteIdent(name string) string {
	if !d.NeedsQuote(name) {
		return name
	}
	switch d.QuoteStyle {
	case QuoteBacktick:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	case QuoteBracket:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}

// QuoteString renders a string literal with single quotes escaped.
func (d *Dialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
