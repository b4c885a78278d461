// Package testutil provides shared test helpers for setting up vaults.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
)

// TestVault creates a temporary vault directory carrying the marker
// subdirectory, with a storage provider rooted at it.
func TestVault(t *testing.T) (*vault.Vault, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, vault.MarkerDir), 0o755); err != nil {
		t.Fatal(err)
	}
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	v := &vault.Vault{
		Path:            dir,
		Blacklist:       []string{"Assets/", ".obsidian/", ".git/"},
		IdentKey:        "uid",
		Editor:          "true",
		JournalTemplate: "Calendar/{year}/{month:02d}/{year}-{month:02d}-{day:02d}",
	}
	return v, store
}

// WriteNote writes a note at rel inside the vault, creating parents.
func WriteNote(t *testing.T, v *vault.Vault, rel, content string) {
	t.Helper()
	abs := v.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
