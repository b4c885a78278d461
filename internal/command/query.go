package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/query"
	"github.com/starford/ansuz/internal/render"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Find notes by frontmatter predicates",
		ArgsUsage: "<key>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "value",
				Usage: "Match notes whose key equals this value exactly",
			},
			&cli.StringFlag{
				Name:  "contains",
				Usage: "Match notes whose value contains this substring",
			},
			&cli.BoolFlag{
				Name:  "exists",
				Usage: "Match notes where the key is present",
			},
			&cli.BoolFlag{
				Name:  "missing",
				Usage: "Match notes where the key is absent",
			},
			&cli.BoolFlag{
				Name:  "count",
				Usage: "Print only the number of matches",
			},
			&cli.StringFlag{
				Name:    "style",
				Aliases: []string{"s"},
				Usage:   "Output style: path, title, table, or json",
				Value:   "path",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("query expects exactly one key argument")
			}
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			opts := query.Options{
				Key:     cmd.Args().First(),
				Exists:  cmd.Bool("exists"),
				Missing: cmd.Bool("missing"),
			}
			if cmd.IsSet("value") {
				val := cmd.String("value")
				opts.Value = &val
			}
			if cmd.IsSet("contains") {
				sub := cmd.String("contains")
				opts.Contains = &sub
			}

			results, err := query.Run(store, v.Blacklist, opts)
			if err != nil {
				return err
			}

			if cmd.Bool("count") {
				render.Count(cmd.Writer, len(results))
				return nil
			}
			return render.QueryResults(cmd.Writer, results, render.ParseStyle(cmd.String("style")))
		},
	}
}
