// Package links rewrites wiki links across a vault after a note rename.
package links

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/starford/ansuz/internal/blacklist"
	"github.com/starford/ansuz/internal/storage"
)

// Stats reports the outcome of a vault-wide link rewrite.
type Stats struct {
	FilesChanged int
	LinksChanged int
}

// Rewrite replaces wiki links targeting oldStem with newStem in every
// non-blacklisted .md file. Four link shapes are covered: [[old]],
// [[old|display]], [[old#section]], and [[old#section|display]]; only
// the stem is rewritten, suffixes are preserved verbatim. Files whose
// content does not change are left untouched. The optional progress
// callback receives the per-file replacement count for each rewritten
// file.
func Rewrite(store storage.Provider, patterns []string, oldStem, newStem string, progress func(rel string, links int)) (Stats, error) {
	quoted := regexp.QuoteMeta(oldStem)
	rules := []*regexp.Regexp{
		regexp.MustCompile(`\[\[` + quoted + `\]\]`),
		regexp.MustCompile(`\[\[` + quoted + `(\|[^\]]*)\]\]`),
		regexp.MustCompile(`\[\[` + quoted + `(#[^\]]*)\]\]`),
		regexp.MustCompile(`\[\[` + quoted + `(#[^\]]*\|[^\]]*)\]\]`),
	}

	var stats Stats
	err := store.Walk(func(abs, rel string, d fs.DirEntry) error {
		if d.IsDir() || !strings.HasSuffix(rel, ".md") {
			return nil
		}
		if blacklist.IsBlacklisted(rel, patterns) {
			return nil
		}
		data, err := store.Read(rel)
		if err != nil {
			return nil
		}
		original := string(data)

		updated := original
		fileLinks := 0
		for _, rule := range rules {
			n := len(rule.FindAllStringIndex(updated, -1))
			if n == 0 {
				continue
			}
			fileLinks += n
			updated = rule.ReplaceAllStringFunc(updated, func(m string) string {
				sub := rule.FindStringSubmatch(m)
				suffix := ""
				if len(sub) > 1 {
					suffix = sub[1]
				}
				return "[[" + newStem + suffix + "]]"
			})
		}

		if updated == original {
			return nil
		}
		if err := store.Write(rel, []byte(updated)); err != nil {
			return fmt.Errorf("links: rewrite %s: %w", rel, err)
		}
		stats.FilesChanged++
		stats.LinksChanged += fileLinks
		if progress != nil {
			progress(rel, fileLinks)
		}
		return nil
	})
	return stats, err
}
