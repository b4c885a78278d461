package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/editor"
	"github.com/starford/ansuz/internal/frontmatter"
)

func editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Open a note in the configured editor",
		ArgsUsage: "<page>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("edit expects exactly one page argument")
			}
			v, _, err := setup(cmd)
			if err != nil {
				return err
			}

			rel, err := v.ResolvePage(cmd.Args().First())
			if err != nil {
				return err
			}
			if err := editor.Launch(v.Editor, v.Abs(rel)); err != nil {
				return err
			}
			// Refresh the modified stamp after a completed edit session.
			return frontmatter.UpdateFile(v.Abs(rel), "modified", frontmatter.Timestamp())
		},
	}
}
