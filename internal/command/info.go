package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/vaultinfo"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show vault statistics and effective configuration",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}
			info, err := vaultinfo.Collect(v, store, Version)
			if err != nil {
				return err
			}
			render.Info(cmd.Writer, info)
			return nil
		},
	}
}
