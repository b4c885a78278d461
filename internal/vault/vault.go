// Package vault defines the immutable per-invocation vault configuration
// and page path resolution.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
)

// MarkerDir is the subdirectory that identifies a directory as a vault.
const MarkerDir = ".obsidian"

// Vault describes an Obsidian vault and the settings every command
// operates under. It is built once from merged CLI/env/config inputs and
// read-only for the duration of a command.
type Vault struct {
	// Path is the absolute, validated vault root.
	Path string
	// Blacklist is the ordered list of exclusion patterns.
	Blacklist []string
	// IdentKey is the frontmatter field holding a note's unique identifier.
	IdentKey string
	// Editor is the external editor command.
	Editor string
	// JournalTemplate is the path template for journal entries.
	JournalTemplate string
	// Verbose enables per-file progress output.
	Verbose bool
}

// ResolvePage resolves a page name or path to a path relative to the
// vault root. A missing extension defaults to ".md". Absolute paths are
// accepted only when they point inside the vault. The referenced file
// must exist; callers creating new files join paths themselves.
func (v *Vault) ResolvePage(pageOrPath string) (string, error) {
	p := pageOrPath
	if filepath.Ext(p) == "" {
		p += ".md"
	}

	rel := p
	if filepath.IsAbs(p) {
		r, err := filepath.Rel(v.Path, p)
		if err != nil || strings.HasPrefix(r, "..") {
			return "", fmt.Errorf("page %q is outside the vault: %w", pageOrPath, apperr.ErrNotFound)
		}
		rel = r
	}

	if _, err := os.Stat(filepath.Join(v.Path, rel)); err != nil {
		return "", fmt.Errorf("page %q not found in vault %s: %w", pageOrPath, v.Path, apperr.ErrNotFound)
	}
	return filepath.ToSlash(rel), nil
}

// Abs returns the absolute path for a vault-relative path.
func (v *Vault) Abs(rel string) string {
	return filepath.Join(v.Path, filepath.FromSlash(rel))
}
