package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLaunch_EmptyCommand(t *testing.T) {
	if err := Launch("", "/tmp/x.md"); err == nil {
		t.Fatal("expected error for empty editor command")
	}
}

func TestLaunch_RunsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// "true" ignores its argument and exits zero.
	if err := Launch("true", path); err != nil {
		t.Fatalf("Launch: %v", err)
	}
}

func TestLaunch_NonZeroExit(t *testing.T) {
	if err := Launch("false", "/tmp/x.md"); err == nil {
		t.Fatal("expected error on non-zero exit")
	}
}
