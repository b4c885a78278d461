package command

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/blacklist"
	"github.com/starford/ansuz/internal/frontmatter"
)

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List the Markdown notes in the vault",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "Show created/modified dates from frontmatter",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			type entry struct {
				rel      string
				created  string
				modified string
			}
			var notes []entry
			err = store.Walk(func(abs, rel string, d fs.DirEntry) error {
				if d.IsDir() || !strings.HasSuffix(rel, ".md") {
					return nil
				}
				if blacklist.IsBlacklisted(rel, v.Blacklist) {
					return nil
				}
				e := entry{rel: rel}
				if cmd.Bool("date") {
					e.created, e.modified = noteDates(store.Read, d, rel)
				}
				notes = append(notes, e)
				return nil
			})
			if err != nil {
				return err
			}

			sort.Slice(notes, func(i, j int) bool { return notes[i].rel < notes[j].rel })
			for _, n := range notes {
				if cmd.Bool("date") {
					fmt.Fprintf(cmd.Writer, "%s\tcreated: %s\tmodified: %s\n", n.rel, n.created, n.modified)
					continue
				}
				fmt.Fprintln(cmd.Writer, n.rel)
			}
			return nil
		},
	}
}

// noteDates pulls created/modified from frontmatter, falling back to the
// filesystem mtime when a field is absent.
func noteDates(read func(string) ([]byte, error), d fs.DirEntry, rel string) (created, modified string) {
	fallback := ""
	if fi, err := d.Info(); err == nil {
		fallback = fi.ModTime().UTC().Format(time.RFC3339)
	}
	created, modified = fallback, fallback

	data, err := read(rel)
	if err != nil {
		return created, modified
	}
	fm, _ := frontmatter.Parse(string(data))
	if v, ok := fm["created"]; ok {
		created = frontmatter.FormatValue(v)
	}
	if v, ok := fm["modified"]; ok {
		modified = frontmatter.FormatValue(v)
	}
	return created, modified
}
