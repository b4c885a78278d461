// Package command wires the CLI surface: flag parsing, config loading,
// and one file per subcommand.
package command

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
	pkgconfig "github.com/starford/ansuz/pkg/config"
)

// Version is the reported application version.
const Version = "0.1.0"

// New builds the root command with every subcommand registered.
func New() *cli.Command {
	return &cli.Command{
		Name:    "ansuz",
		Usage:   "Manage an Obsidian vault from the command line",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "vault",
				Usage:   "Path to the vault directory",
				Sources: cli.EnvVars("ANSUZ_VAULT"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("ANSUZ_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "blacklist",
				Aliases: []string{"b"},
				Usage:   "Colon-separated exclusion patterns, overriding the config",
				Sources: cli.EnvVars("ANSUZ_BLACKLIST"),
			},
			&cli.StringFlag{
				Name:    "editor",
				Aliases: []string{"e"},
				Usage:   "Editor command for edit/new/journal",
				Sources: cli.EnvVars("ANSUZ_EDITOR"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable per-file progress output",
				Sources: cli.EnvVars("ANSUZ_VERBOSE"),
			},
		},
		Commands: []*cli.Command{
			lsCommand(),
			catCommand(),
			metaCommand(),
			queryCommand(),
			renameCommand(),
			newCommand(),
			editCommand(),
			rmCommand(),
			addUIDCommand(),
			findCommand(),
			journalCommand(),
			infoCommand(),
			serveCommand(),
		},
	}
}

// setup loads the config, merges flag overrides, and opens the vault.
// Every subcommand action starts here.
func setup(cmd *cli.Command) (*vault.Vault, *storage.FS, error) {
	cfg := internal.NewDefaultConfig()

	configPath := cmd.String("config")
	if configPath == "" {
		configPath = pkgconfig.FindFirst(internal.DefaultConfigPaths()...)
	}
	if configPath != "" {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var blist []string
	if raw := cmd.String("blacklist"); raw != "" {
		for _, p := range strings.Split(raw, ":") {
			if p != "" {
				blist = append(blist, p)
			}
		}
	}

	v, err := cfg.BuildVault(cmd.String("vault"), cmd.String("editor"), blist, cmd.Bool("verbose"))
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelWarn
	if v.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store, err := storage.NewFS(v.Path)
	if err != nil {
		return nil, nil, err
	}
	return v, store, nil
}
