package frontmatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := "---\ntitle: Hello\ntags:\n  - go\n  - vault\n---\n# Hello\nBody text.\n"
	fm, body := Parse(input)
	if fm["title"] != "Hello" {
		t.Errorf("title = %v, want Hello", fm["title"])
	}
	tags, ok := fm["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("tags = %v, want 2-element array", fm["tags"])
	}
	if body != "# Hello\nBody text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := "# Just a heading\nSome text.\n"
	fm, body := Parse(input)
	if len(fm) != 0 {
		t.Errorf("expected empty frontmatter, got %v", fm)
	}
	if body != input {
		t.Errorf("body = %q, want original content", body)
	}
}

func TestParse_UnclosedHeader(t *testing.T) {
	input := "---\ntitle: Broken\nNo closing marker here.\n"
	fm, body := Parse(input)
	if len(fm) != 0 {
		t.Errorf("expected empty frontmatter, got %v", fm)
	}
	if body != input {
		t.Errorf("body = %q, want original content preserved", body)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	input := "---\n: invalid: yaml: {{{\n---\nBody\n"
	fm, body := Parse(input)
	if len(fm) != 0 {
		t.Errorf("expected empty frontmatter on invalid YAML, got %v", fm)
	}
	if body != input {
		t.Errorf("body = %q, want original content preserved", body)
	}
}

func TestParse_EmptyBlock(t *testing.T) {
	fm, body := Parse("---\n---\nBody only.\n")
	if len(fm) != 0 {
		t.Errorf("fm = %v, want empty", fm)
	}
	if body != "Body only.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestRoundTrip(t *testing.T) {
	fm := map[string]any{"title": "Note", "count": 3}
	body := "Line one.\n\nLine two.\n"
	out, err := Serialize(fm, body)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	gotFM, gotBody := Parse(out)
	if gotBody != body {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
	if gotFM["title"] != "Note" || gotFM["count"] != 3 {
		t.Errorf("fm = %v", gotFM)
	}
}

func TestSerialize_EmptyMapping(t *testing.T) {
	out, err := Serialize(map[string]any{}, "bare body\n")
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out != "bare body\n" {
		t.Errorf("out = %q, want bare body with no markers", out)
	}
}

func TestUpdateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("---\ntitle: Old\n---\nBody.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := UpdateFile(path, "status", "done"); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	data, _ := os.ReadFile(path)
	fm, body := Parse(string(data))
	if fm["status"] != "done" {
		t.Errorf("status = %v, want done", fm["status"])
	}
	if fm["title"] != "Old" {
		t.Errorf("title = %v, existing keys must survive", fm["title"])
	}
	if body != "Body.\n" {
		t.Errorf("body = %q", body)
	}
	mod, ok := fm["modified"].(time.Time)
	if !ok {
		// yaml may keep it as a string depending on quoting.
		s, sok := fm["modified"].(string)
		if !sok {
			t.Fatalf("modified = %T(%v), want timestamp", fm["modified"], fm["modified"])
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			t.Fatalf("modified %q is not RFC 3339: %v", s, err)
		}
		mod = parsed
	}
	if time.Since(mod) > time.Minute {
		t.Errorf("modified %v is stale", mod)
	}
}

func TestAddDefaults(t *testing.T) {
	fm := map[string]any{}
	AddDefaults(fm, "My Note", "uid")
	for _, key := range []string{"title", "created", "modified", "uid"} {
		if _, ok := fm[key]; !ok {
			t.Errorf("missing default key %q", key)
		}
	}
	if fm["title"] != "My Note" {
		t.Errorf("title = %v", fm["title"])
	}
	if fm["created"] != fm["modified"] {
		t.Errorf("created and modified should match on a fresh note")
	}
	if uid, _ := fm["uid"].(string); len(uid) != 36 || strings.Count(uid, "-") != 4 {
		t.Errorf("uid = %v, want UUID string", fm["uid"])
	}
}
