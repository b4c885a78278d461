package command

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/links"
)

func renameCommand() *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "Rename a note, optionally rewriting wiki links to it",
		ArgsUsage: "<page> <new-name>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "update-links",
				Aliases: []string{"l"},
				Usage:   "Rewrite [[wiki links]] pointing at the old name",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("rename expects <page> <new-name>")
			}
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			oldRel, err := v.ResolvePage(cmd.Args().First())
			if err != nil {
				return err
			}

			newName := cmd.Args().Get(1)
			if path.Ext(newName) == "" {
				newName += ".md"
			}
			// The note stays in its directory; only the name changes.
			newRel := path.Join(path.Dir(oldRel), newName)

			if err := store.Move(oldRel, newRel); err != nil {
				return err
			}
			fmt.Fprintf(cmd.Writer, "Renamed %s -> %s\n", oldRel, newRel)

			if !cmd.Bool("update-links") {
				return nil
			}

			oldStem := strings.TrimSuffix(path.Base(oldRel), ".md")
			newStem := strings.TrimSuffix(path.Base(newRel), ".md")
			var progress func(rel string, n int)
			if v.Verbose {
				progress = func(rel string, n int) {
					fmt.Fprintf(cmd.Writer, "  %s: %d link(s)\n", rel, n)
				}
			}
			stats, err := links.Rewrite(store, v.Blacklist, oldStem, newStem, progress)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.Writer, "Updated %d link(s) in %d file(s)\n", stats.LinksChanged, stats.FilesChanged)
			return nil
		},
	}
}
