package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/ansuz/internal/vault"
)

// Config represents the application configuration.
type Config struct {
	Vault           string   `yaml:"vault"`
	Blacklist       []string `yaml:"blacklist"`
	Editor          string   `yaml:"editor"`
	IdentKey        string   `yaml:"ident_key"`
	JournalTemplate string   `yaml:"journal_template"`
	Verbose         bool     `yaml:"verbose"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.IdentKey, validation.Required),
		validation.Field(&c.JournalTemplate, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Blacklist:       []string{"Assets/", ".obsidian/", ".git/"},
		IdentKey:        "uid",
		JournalTemplate: "Calendar/{year}/{month:02d}/{year}-{month:02d}-{day:02d}",
	}
}

// DefaultConfigPaths lists the locations probed for a config file when
// none is given explicitly, in priority order.
func DefaultConfigPaths() []string {
	paths := []string{"ansuz.yaml"}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ansuz", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ansuz", "config.yaml"))
	}
	return paths
}

// BuildVault resolves the effective vault from the config merged with
// command-line overrides. Flag values win over config values. The vault
// directory must exist and contain the .obsidian marker directory.
func (c *Config) BuildVault(vaultFlag, editorFlag string, blacklistFlag []string, verboseFlag bool) (*vault.Vault, error) {
	vaultPath := c.Vault
	if vaultFlag != "" {
		vaultPath = vaultFlag
	}
	if vaultPath == "" {
		return nil, fmt.Errorf("no vault path given; set it with --vault or in the config file")
	}
	vaultPath, err := expandPath(vaultPath)
	if err != nil {
		return nil, err
	}
	vaultPath, err = filepath.Abs(vaultPath)
	if err != nil {
		return nil, fmt.Errorf("resolve vault path: %w", err)
	}
	marker := filepath.Join(vaultPath, vault.MarkerDir)
	if fi, err := os.Stat(marker); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%s is not an Obsidian vault (missing %s directory)", vaultPath, vault.MarkerDir)
	}

	blist := c.Blacklist
	if len(blacklistFlag) > 0 {
		blist = blacklistFlag
	}

	editor := editorFlag
	if editor == "" {
		editor = c.Editor
	}
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	return &vault.Vault{
		Path:            vaultPath,
		Blacklist:       blist,
		IdentKey:        c.IdentKey,
		Editor:          editor,
		JournalTemplate: c.JournalTemplate,
		Verbose:         c.Verbose || verboseFlag,
	}, nil
}

// expandPath resolves a leading ~ and any $VAR references.
func expandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return os.ExpandEnv(p), nil
}
