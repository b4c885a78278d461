// Package search locates notes by filename stem or frontmatter title.
package search

import (
	"io/fs"
	"path"
	"strings"

	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/storage"
)

// FindNotes returns the vault-relative paths of .md notes matching term.
// Exact mode requires the filename stem to equal term; otherwise a
// case-insensitive substring match runs over the stem and, failing that,
// over the frontmatter title.
func FindNotes(store storage.Provider, term string, exact bool) ([]string, error) {
	lower := strings.ToLower(term)

	var matches []string
	err := store.Walk(func(abs, rel string, d fs.DirEntry) error {
		if d.IsDir() || !strings.HasSuffix(rel, ".md") {
			return nil
		}
		stem := strings.TrimSuffix(path.Base(rel), ".md")

		if exact {
			if stem == term {
				matches = append(matches, rel)
			}
			return nil
		}
		if strings.Contains(strings.ToLower(stem), lower) {
			matches = append(matches, rel)
			return nil
		}

		data, err := store.Read(rel)
		if err != nil {
			return nil
		}
		fm, _ := frontmatter.Parse(string(data))
		if title, ok := fm["title"].(string); ok {
			if strings.Contains(strings.ToLower(title), lower) {
				matches = append(matches, rel)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
