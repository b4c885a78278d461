package command

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/editor"
	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/journal"
)

func journalCommand() *cli.Command {
	return &cli.Command{
		Name:  "journal",
		Usage: "Open today's journal note, creating it if needed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "Use this date instead of today (YYYY-MM-DD)",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "Print the journal path instead of opening it",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			date := time.Now()
			if raw := cmd.String("date"); raw != "" {
				date, err = time.Parse("2006-01-02", raw)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
				}
			}

			rel, err := journal.Expand(v.JournalTemplate, date)
			if err != nil {
				return err
			}
			if path.Ext(rel) == "" {
				rel += ".md"
			}

			if cmd.Bool("print") {
				fmt.Fprintln(cmd.Writer, rel)
				return nil
			}

			if _, err := os.Stat(v.Abs(rel)); err != nil {
				fm := map[string]any{}
				frontmatter.AddDefaults(fm, date.Format("2006-01-02"), v.IdentKey)
				content, err := frontmatter.Serialize(fm, "")
				if err != nil {
					return err
				}
				if err := store.Write(rel, []byte(content)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.Writer, "Created %s\n", rel)
			}

			return editor.Launch(v.Editor, v.Abs(rel))
		},
	}
}
