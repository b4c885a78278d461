package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/starford/ansuz/internal/command"
)

func main() {
	if err := command.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
