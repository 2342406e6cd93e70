package lazyrel

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lazyrel/lazyrel/internal/types"
)

// DialectConfig is the serializable form of a dialect. It exists so a
// deployment can extend a built-in dialect, or describe a new one, from a
// YAML file instead of code.
type DialectConfig struct {
	Name          string            `yaml:"name"`
	ReservedWords []string          `yaml:"reserved_words,omitempty"`
	QuoteAll      bool              `yaml:"quote_all,omitempty"`
	QuoteStyle    string            `yaml:"quote_style,omitempty"` // double, backtick, bracket
	Functions     map[string]string `yaml:"functions,omitempty"`

	IntDivisionRequiresCast bool   `yaml:"int_division_requires_cast,omitempty"`
	FloatCastType           string `yaml:"float_cast_type,omitempty"`

	SupportsFullJoin bool `yaml:"supports_full_join"`
	BooleanLiterals  bool `yaml:"boolean_literals"`
}

// FromConfig builds a Dialect from its serializable form.
func FromConfig(cfg DialectConfig) (*Dialect, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("dialect config: name is required")
	}
	var style types.QuoteStyle
	switch cfg.QuoteStyle {
	case "", "double":
		style = types.QuoteDouble
	case "backtick":
		style = types.QuoteBacktick
	case "bracket":
		style = types.QuoteBracket
	default:
		return nil, fmt.Errorf("dialect config %q: unknown quote_style %q", cfg.Name, cfg.QuoteStyle)
	}
	for name, tmpl := range cfg.Functions {
		if err := validateTemplate(name, tmpl); err != nil {
			return nil, fmt.Errorf("dialect config %q: %w", cfg.Name, err)
		}
	}

	reserved := make(map[string]bool, len(cfg.ReservedWords))
	for _, w := range cfg.ReservedWords {
		reserved[strings.ToLower(w)] = true
	}
	functions := make(map[string]string, len(cfg.Functions))
	for name, tmpl := range cfg.Functions {
		functions[strings.ToUpper(name)] = tmpl
	}

	return &Dialect{
		Name:                    cfg.Name,
		ReservedWords:           reserved,
		QuoteAll:                cfg.QuoteAll,
		QuoteStyle:              style,
		Functions:               functions,
		IntDivisionRequiresCast: cfg.IntDivisionRequiresCast,
		FloatCastType:           cfg.FloatCastType,
		SupportsFullJoin:        cfg.SupportsFullJoin,
		BooleanLiterals:         cfg.BooleanLiterals,
	}, nil
}

// LoadDialect reads a YAML dialect description from path.
func LoadDialect(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dialect config: %w", err)
	}
	var cfg DialectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("dialect config %s: %w", path, err)
	}
	return FromConfig(cfg)
}

// validateTemplate rejects function templates with more than one verb. A
// template without %s is rendered verbatim, so zero verbs is legal.
func validateTemplate(name, tmpl string) error {
	verbs := 0
	for i := 0; i+1 < len(tmpl); i++ {
		if tmpl[i] == '%' {
			if tmpl[i+1] == '%' {
				i++
				continue
			}
			if tmpl[i+1] != 's' {
				return fmt.Errorf("function %s: template %q: only %%s verbs are allowed", name, tmpl)
			}
			verbs++
		}
	}
	if verbs > 1 {
		return fmt.Errorf("function %s: template %q: at most one %%s verb is allowed", name, tmpl)
	}
	return nil
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Dialect)
)

// RegisterDialect makes a dialect available by name to Lookup. Dialect
// packages call it from init, so a blank import is enough to enable a
// dialect:
//
//	import _ "github.com/lazyrel/lazyrel/postgres"
//
// Registering a nil dialect or the same name twice panics.
func RegisterDialect(d *Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if d == nil {
		panic("lazyrel: RegisterDialect with nil dialect")
	}
	if _, dup := registry[d.Name]; dup {
		panic("lazyrel: RegisterDialect called twice for dialect " + d.Name)
	}
	registry[d.Name] = d
}

// Lookup returns the registered dialect with the given name.
func Lookup(name string) (*Dialect, error) {
	registryMu.RLock()
	d, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("lazyrel: unknown dialect %q (forgotten import?)", name)
	}
	return d, nil
}

// Dialects returns the sorted names of all registered dialects.
func Dialects() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
