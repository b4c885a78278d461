package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/editor"
	"github.com/starford/ansuz/internal/frontmatter"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Create a note with default frontmatter",
		ArgsUsage: "<page>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing note",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("new expects exactly one page argument")
			}
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}

			rel := path.Clean(cmd.Args().First())
			if path.Ext(rel) == "" {
				rel += ".md"
			}

			if _, err := os.Stat(v.Abs(rel)); err == nil && !cmd.Bool("force") {
				return fmt.Errorf("note %s: %w", rel, apperr.ErrAlreadyExists)
			}

			stem := strings.TrimSuffix(path.Base(rel), ".md")

			// Piped stdin becomes the body; a terminal session gets a
			// heading stub and the editor.
			interactive := stdinIsTerminal()
			body := "# " + stem + "\n"
			if !interactive {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				if len(data) > 0 {
					body = string(data)
					if !strings.HasSuffix(body, "\n") {
						body += "\n"
					}
				}
			}

			fm := map[string]any{}
			frontmatter.AddDefaults(fm, stem, v.IdentKey)
			content, err := frontmatter.Serialize(fm, body)
			if err != nil {
				return err
			}
			if err := store.Write(rel, []byte(content)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.Writer, "Created %s\n", rel)

			if interactive {
				return editor.Launch(v.Editor, v.Abs(rel))
			}
			return nil
		},
	}
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
