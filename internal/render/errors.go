// Package render holds the error taxonomy shared by the compiler core and
// the dialect packages.
package render

import (
	"fmt"
	"strings"
)

// UnresolvedColumnError indicates a column name that is not visible in the
// scope where it was used. Compilation never drops such a reference.
type UnresolvedColumnError struct {
	Name  string
	Scope []string // visible names, when known
}

func (e UnresolvedColumnError) Error() string {
	if len(e.Scope) > 0 {
		return fmt.Sprintf("unresolved column %q (visible: %s)", e.Name, strings.Join(e.Scope, ", "))
	}
	return fmt.Sprintf("unresolved column %q", e.Name)
}

// UnsupportedExpressionError indicates a function with no registered
// translation for the active dialect.
type UnsupportedExpressionError struct {
	Function string
	Dialect  string
}

func (e UnsupportedExpressionError) Error() string {
	return fmt.Sprintf("%s: no translation for function %q", e.Dialect, e.Function)
}

// AmbiguousColumnError indicates an unqualified column name provided by
// more than one side of a join.
type AmbiguousColumnError struct {
	Name    string
	Sources []string
}

func (e AmbiguousColumnError) Error() string {
	return fmt.Sprintf("ambiguous column %q (provided by %s)", e.Name, strings.Join(e.Sources, " and "))
}

// CapabilityError indicates a feature the active dialect cannot express,
// such as FULL JOIN on a dialect without support for it. It is surfaced,
// never silently downgraded.
type CapabilityError struct {
	Dialect string
	Feature string
}

func (e CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// ExecutionError wraps an error returned by the external database
// collaborator. The compiler core never retries.
type ExecutionError struct {
	SQL string
	Err error
}

func (e ExecutionError) Error() string {
	return fmt.Sprintf("executing query: %v", e.Err)
}

func (e ExecutionError) Unwrap() error { return e.Err }
