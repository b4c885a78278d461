package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testCfg struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	if err := os.WriteFile(path, []byte("name: ansuz\ndir: $HOME/notes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", "/home/tester")

	var cfg testCfg
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "ansuz" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Dir != "/home/tester/notes" {
		t.Errorf("Dir = %q, want env expansion", cfg.Dir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testCfg
	if err := Load(filepath.Join(t.TempDir(), "absent.yml"), &cfg); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte(":\t:::not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg testCfg
	if err := Load(path, &cfg); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindFirst(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.yml")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := FindFirst("", filepath.Join(dir, "missing.yml"), present)
	if got != present {
		t.Errorf("FindFirst = %q, want %q", got, present)
	}
	if FindFirst(filepath.Join(dir, "nope.yml")) != "" {
		t.Error("FindFirst should return empty when nothing exists")
	}
}
