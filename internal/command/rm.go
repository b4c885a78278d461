package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

func rmCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a note",
		ArgsUsage: "<page>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("rm expects exactly one page argument")
			}
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			rel, err := v.ResolvePage(cmd.Args().First())
			if err != nil {
				return err
			}

			if !cmd.Bool("force") {
				fmt.Fprintf(cmd.Writer, "Delete %s? [y/N] ", rel)
				line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				answer := strings.ToLower(strings.TrimSpace(line))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.Writer, "Aborted")
					return nil
				}
			}

			if err := store.Delete(rel); err != nil {
				return err
			}
			fmt.Fprintf(cmd.Writer, "Deleted %s\n", rel)
			return nil
		},
	}
}
