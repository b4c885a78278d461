// Package vaultinfo collects whole-vault statistics for the info
// command and the MCP facade.
package vaultinfo

import (
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/starford/ansuz/internal/blacklist"
	"github.com/starford/ansuz/internal/journal"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
)

// NoExtension labels files without an extension in the type breakdown.
const NoExtension = "(no extension)"

// TypeStat aggregates files sharing one extension.
type TypeStat struct {
	Count     int
	TotalSize int64
}

// Info is a snapshot of vault statistics and effective configuration.
type Info struct {
	VaultPath        string
	TotalFiles       int
	TotalDirectories int
	UsageFiles       int64
	UsageDirectories int64
	MarkdownFiles    int
	FileTypes        map[string]TypeStat
	Blacklist        []string
	Editor           string
	JournalTemplate  string
	JournalPath      string
	Verbose          bool
	Version          string
}

// Collect walks the vault once, skipping blacklisted paths, and returns
// the aggregated statistics together with the vault's settings and the
// journal path the template resolves to today.
func Collect(v *vault.Vault, store storage.Provider, version string) (*Info, error) {
	info := &Info{
		VaultPath:       v.Path,
		FileTypes:       make(map[string]TypeStat),
		Blacklist:       v.Blacklist,
		Editor:          v.Editor,
		JournalTemplate: v.JournalTemplate,
		Verbose:         v.Verbose,
		Version:         version,
	}

	err := store.Walk(func(abs, rel string, d fs.DirEntry) error {
		if blacklist.IsBlacklisted(rel, v.Blacklist) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		if d.IsDir() {
			info.TotalDirectories++
			info.UsageDirectories += fi.Size()
			return nil
		}

		info.TotalFiles++
		info.UsageFiles += fi.Size()

		ext := strings.TrimPrefix(path.Ext(rel), ".")
		if ext == "" {
			ext = NoExtension
		}
		if ext == "md" {
			info.MarkdownFiles++
		}
		stat := info.FileTypes[ext]
		stat.Count++
		stat.TotalSize += fi.Size()
		info.FileTypes[ext] = stat
		return nil
	})
	if err != nil {
		return nil, err
	}

	journalPath, err := journal.Expand(v.JournalTemplate, time.Now())
	if err != nil {
		return nil, err
	}
	info.JournalPath = journalPath
	return info, nil
}
