// Package query answers frontmatter predicate questions across a vault.
package query

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/ansuz/internal/blacklist"
	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/storage"
)

// Options describes one query: a frontmatter key plus at most one value
// predicate and the existence flags.
type Options struct {
	Key      string
	Value    *string // exact match against the stringified value
	Contains *string // substring match, recursing into arrays
	Exists   bool
	Missing  bool
}

// Validate rejects malformed queries before any vault traversal begins.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Key,
			validation.Required,
			validation.By(func(any) error {
				if o.Value != nil && o.Contains != nil {
					return errors.New("value and contains predicates are mutually exclusive")
				}
				return nil
			}),
		),
	)
}

// Result is one matching note: its vault-relative path, a snapshot of
// its frontmatter, and the value under the queried key when present.
type Result struct {
	Path        string
	Frontmatter map[string]any
	Value       any
	HasValue    bool
}

// Run walks the vault and returns every non-blacklisted .md note whose
// frontmatter satisfies the options. A note whose header fails to parse
// simply has no keys; it is filtered, never an error.
func Run(store storage.Provider, patterns []string, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	var results []Result
	err := store.Walk(func(abs, rel string, d fs.DirEntry) error {
		if d.IsDir() || !strings.HasSuffix(rel, ".md") {
			return nil
		}
		if blacklist.IsBlacklisted(rel, patterns) {
			return nil
		}
		data, err := store.Read(rel)
		if err != nil {
			// An unreadable note must not abort the scan.
			return nil
		}
		fm, _ := frontmatter.Parse(string(data))

		value, hasKey := fm[opts.Key]
		if opts.Missing && hasKey {
			return nil
		}
		if opts.Exists && !hasKey {
			return nil
		}
		if hasKey {
			if opts.Value != nil && !matchesValue(value, *opts.Value) {
				return nil
			}
			if opts.Contains != nil && !containsValue(value, *opts.Contains) {
				return nil
			}
		} else if !opts.Missing {
			// A value or contains predicate implies the key must exist.
			return nil
		}

		results = append(results, Result{
			Path:        rel,
			Frontmatter: fm,
			Value:       value,
			HasValue:    hasKey,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func matchesValue(v any, expected string) bool {
	return frontmatter.FormatValue(v) == expected
}

func containsValue(v any, substr string) bool {
	if arr, ok := v.([]any); ok {
		for _, item := range arr {
			if containsValue(item, substr) {
				return true
			}
		}
		return false
	}
	return strings.Contains(frontmatter.FormatValue(v), substr)
}
