package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/frontmatter"
)

func addUIDCommand() *cli.Command {
	return &cli.Command{
		Name:      "add-uid",
		Usage:     "Assign a unique identifier to a note's frontmatter",
		ArgsUsage: "<page>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Replace an existing identifier",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("add-uid expects exactly one page argument")
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
			fm, _ := frontmatter.Parse(string(data))
			if existing, ok := fm[v.IdentKey]; ok && !cmd.Bool("force") {
				return fmt.Errorf("%s already has %s = %s (use --force to replace)",
					rel, v.IdentKey, frontmatter.FormatValue(existing))
			}

			id := uuid.NewString()
			if err := frontmatter.UpdateFile(v.Abs(rel), v.IdentKey, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.Writer, "Set %s = %s in %s\n", v.IdentKey, id, rel)
			return nil
		},
	}
}
