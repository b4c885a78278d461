package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/search"
)

func findCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "Find notes by name or title",
		ArgsUsage: "<term>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "exact",
				Usage: "Require the filename stem to match exactly",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("find expects exactly one term argument")
			}
			_, store, err := setup(cmd)
			if err != nil {
				return err
			}

			matches, err := search.FindNotes(store, cmd.Args().First(), cmd.Bool("exact"))
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.Writer, "No notes found")
				return nil
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.Writer, m)
			}
			return nil
		},
	}
}
