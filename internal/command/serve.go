package command

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/mcpserver"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve vault tools over the Model Context Protocol on stdio",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, store, err := setup(cmd)
			if err != nil {
				return err
			}
			slog.Info("starting MCP server", slog.String("vault", v.Path))
			return mcpserver.New(v, store, Version).ServeStdio()
		},
	}
}
