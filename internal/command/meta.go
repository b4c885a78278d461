package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/frontmatter"
)

func metaCommand() *cli.Command {
	return &cli.Command{
		Name:      "meta",
		Usage:     "Show or update a note's frontmatter",
		ArgsUsage: "<page>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "Frontmatter key to show or set",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "New value for the key (typed: bool, number, [a, b] list, else string)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("meta expects exactly one page argument")
			}
			if cmd.IsSet("value") && !cmd.IsSet("key") {
				return fmt.Errorf("--value requires --key")
			}
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			rel, err := v.ResolvePage(cmd.Args().First())
			if err != nil {
				return err
			}

			if cmd.IsSet("value") {
				key := cmd.String("key")
				value := frontmatter.ParseValue(cmd.String("value"))
				if err := frontmatter.UpdateFile(v.Abs(rel), key, value); err != nil {
					return err
				}
				fmt.Fprintf(cmd.Writer, "Updated %s: %s = %s\n", rel, key, frontmatter.FormatValue(value))
				return nil
			}

			data, err := store.Read(rel)
			if err != nil {
				return err
			}
			fm, _ := frontmatter.Parse(string(data))

			if cmd.IsSet("key") {
				key := cmd.String("key")
				value, ok := fm[key]
				if !ok {
					return fmt.Errorf("key %q not found in %s", key, rel)
				}
				fmt.Fprintln(cmd.Writer, frontmatter.FormatValue(value))
				return nil
			}

			if len(fm) == 0 {
				fmt.Fprintf(cmd.Writer, "No frontmatter in %s\n", rel)
				return nil
			}
			keys := make([]string, 0, len(fm))
			for k := range fm {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.Writer, "%s: %s\n", k, frontmatter.FormatValue(fm[k]))
			}
			return nil
		},
	}
}
