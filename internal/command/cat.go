package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/frontmatter"
)

func catCommand() *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "Print a note's body",
		ArgsUsage: "<page>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show-frontmatter",
				Usage: "Print the raw file including the frontmatter block",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("cat expects exactly one page argument")
			}
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			rel, err := v.ResolvePage(cmd.Args().First())
			if err != nil {
				return err
			}
			data, err := store.Read(rel)
			if err != nil {
				return err
			}

			if cmd.Bool("show-frontmatter") {
				fmt.Fprint(cmd.Writer, string(data))
				return nil
			}
			_, body := frontmatter.Parse(string(data))
			fmt.Fprint(cmd.Writer, body)
			return nil
		},
	}
}
