// Package render formats query results and vault statistics for the
// terminal. It is purely presentational: every function consumes
// already-computed data and carries no vault logic of its own.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/query"
	"github.com/starford/ansuz/internal/vaultinfo"
)

// Style selects how query results are rendered.
type Style string

const (
	StylePath  Style = "path"
	StyleTitle Style = "title"
	StyleTable Style = "table"
	StyleJSON  Style = "json"
)

// ParseStyle maps a user-supplied style name to a Style, defaulting to
// the bare path listing.
func ParseStyle(s string) Style {
	switch strings.ToLower(s) {
	case "title":
		return StyleTitle
	case "table":
		return StyleTable
	case "json":
		return StyleJSON
	default:
		return StylePath
	}
}

// QueryResults writes the result set in the chosen style.
func QueryResults(w io.Writer, results []query.Result, style Style) error {
	switch style {
	case StyleTitle:
		for _, r := range results {
			fmt.Fprintf(w, "%s: %s\n", r.Path, resultTitle(r))
		}
	case StyleTable:
		t := newTable(3)
		t.addRow("Path", "Property", "Value")
		for _, r := range results {
			pathCell := r.Path
			for _, k := range sortedKeys(r.Frontmatter) {
				t.addRow(pathCell, k, frontmatter.FormatValue(r.Frontmatter[k]))
				pathCell = ""
			}
			if len(r.Frontmatter) > 0 {
				t.addRow("", "", "")
			}
		}
		fmt.Fprint(w, t.String())
		fmt.Fprintf(w, "Total matches: %d\n", len(results))
	case StyleJSON:
		out := make([]map[string]any, 0, len(results))
		for _, r := range results {
			obj := map[string]any{
				"path":        r.Path,
				"frontmatter": r.Frontmatter,
			}
			if r.HasValue {
				obj["value"] = r.Value
			}
			out = append(out, obj)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("render: marshal results: %w", err)
		}
		fmt.Fprintln(w, string(data))
	default:
		for _, r := range results {
			fmt.Fprintln(w, r.Path)
		}
	}
	return nil
}

// Count writes only the size of the result set.
func Count(w io.Writer, n int) {
	fmt.Fprintf(w, "Found %d matching files\n", n)
}

// Info writes the vault statistics and configuration tables.
func Info(w io.Writer, info *vaultinfo.Info) {
	fmt.Fprintln(w, "VAULT INFORMATION")
	fmt.Fprintln(w)

	summary := newTable(2)
	summary.addRow("Property", "Value")
	summary.addRow("Path", info.VaultPath)
	summary.addRow("Total Directories", fmt.Sprintf("%d", info.TotalDirectories))
	summary.addRow("Total Files", fmt.Sprintf("%d", info.TotalFiles))
	summary.addRow("Markdown Files", fmt.Sprintf("%d", info.MarkdownFiles))
	fmt.Fprint(w, summary.String())
	fmt.Fprintln(w)

	if len(info.FileTypes) > 0 {
		fmt.Fprintln(w, "File Types by Extension")
		types := newTable(4)
		types.addRow("Extension", "Count", "Size", "Percentage")
		for _, ext := range sortedTypeKeys(info.FileTypes) {
			stat := info.FileTypes[ext]
			pct := 0.0
			if info.TotalFiles > 0 {
				pct = float64(stat.Count) / float64(info.TotalFiles) * 100
			}
			types.addRow(ext,
				fmt.Sprintf("%d", stat.Count),
				humanize.Bytes(uint64(stat.TotalSize)),
				fmt.Sprintf("%.1f%%", pct))
		}
		types.addRow("TOTAL",
			fmt.Sprintf("%d", info.TotalFiles),
			humanize.Bytes(uint64(info.UsageFiles)),
			"100.0%")
		fmt.Fprint(w, types.String())
	} else {
		fmt.Fprintln(w, "No files found in vault")
	}
	fmt.Fprintln(w)

	cfg := newTable(2)
	cfg.addRow("Setting", "Value")
	cfg.addRow("Blacklist", strings.Join(info.Blacklist, ":"))
	cfg.addRow("Editor", info.Editor)
	cfg.addRow("Journal Template", fmt.Sprintf("%s => %s", info.JournalTemplate, info.JournalPath))
	cfg.addRow("Verbose", yesNo(info.Verbose))
	cfg.addRow("Version", info.Version)
	fmt.Fprint(w, cfg.String())
}

// InfoText renders the statistics as the plain multi-line summary used
// by the MCP get_vault_info tool.
func InfoText(info *vaultinfo.Info) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vault Information:\n")
	fmt.Fprintf(&sb, "- Path: %s\n", info.VaultPath)
	fmt.Fprintf(&sb, "- Total files: %d\n", info.TotalFiles)
	fmt.Fprintf(&sb, "- Usage files: %s\n", humanize.Bytes(uint64(info.UsageFiles)))
	fmt.Fprintf(&sb, "- Total directories: %d\n", info.TotalDirectories)
	if len(info.FileTypes) > 0 {
		fmt.Fprintf(&sb, "- File Types by Extension:\n")
		for _, ext := range sortedTypeKeys(info.FileTypes) {
			stat := info.FileTypes[ext]
			fmt.Fprintf(&sb, "  - %s: %d files (%s)\n", ext, stat.Count, humanize.Bytes(uint64(stat.TotalSize)))
		}
	} else {
		fmt.Fprintf(&sb, "- File Types: no files found\n")
	}
	fmt.Fprintf(&sb, "- Editor: %s\n", info.Editor)
	fmt.Fprintf(&sb, "- Blacklist: %s\n", strings.Join(info.Blacklist, ":"))
	fmt.Fprintf(&sb, "- Journal template: %s\n", info.JournalTemplate)
	fmt.Fprintf(&sb, "- Version: %s", info.Version)
	return sb.String()
}

func resultTitle(r query.Result) string {
	if title, ok := r.Frontmatter["title"].(string); ok && title != "" {
		return title
	}
	stem := strings.TrimSuffix(path.Base(r.Path), ".md")
	if stem == "" {
		return "Untitled"
	}
	return stem
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTypeKeys(m map[string]vaultinfo.TypeStat) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
