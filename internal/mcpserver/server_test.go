package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/ansuz/internal/testutil"
	"github.com/starford/ansuz/internal/vault"
)

func testServer(t *testing.T) (*Server, *vault.Vault) {
	t.Helper()
	v, store := testutil.TestVault(t)
	return New(v, store, "test"), v
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error
	switch name {
	case "create_note":
		result, err = srv.createNote(context.Background(), req)
	case "find_notes":
		result, err = srv.findNotes(context.Background(), req)
	case "get_note_content":
		result, err = srv.getNoteContent(context.Background(), req)
	case "get_vault_info":
		result, err = srv.getVaultInfo(context.Background(), req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestCreateNote(t *testing.T) {
	srv, v := testServer(t)
	res := callTool(t, srv, "create_note", map[string]any{
		"filename": "ideas/spark",
		"content":  "A first thought.",
	})
	if res.IsError {
		t.Fatalf("create_note failed: %s", textOf(t, res))
	}

	data, err := srv.store.Read("ideas/spark.md")
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		t.Errorf("missing frontmatter block: %q", content)
	}
	if !strings.Contains(content, "title: spark") {
		t.Errorf("missing default title: %q", content)
	}
	if !strings.Contains(content, v.IdentKey+":") {
		t.Errorf("missing identifier: %q", content)
	}
	if !strings.Contains(content, "A first thought.") {
		t.Errorf("missing body: %q", content)
	}
}

func TestCreateNote_Duplicate(t *testing.T) {
	srv, _ := testServer(t)
	callTool(t, srv, "create_note", map[string]any{"filename": "dup"})
	res := callTool(t, srv, "create_note", map[string]any{"filename": "dup"})
	if !res.IsError {
		t.Fatal("expected error creating an existing note")
	}
	res = callTool(t, srv, "create_note", map[string]any{"filename": "dup", "force": true})
	if res.IsError {
		t.Fatalf("force should overwrite: %s", textOf(t, res))
	}
}

func TestFindNotes(t *testing.T) {
	srv, v := testServer(t)
	testutil.WriteNote(t, v, "projects/roadmap.md", "x\n")
	testutil.WriteNote(t, v, "inbox.md", "x\n")

	res := callTool(t, srv, "find_notes", map[string]any{"term": "road"})
	if res.IsError {
		t.Fatalf("find_notes failed: %s", textOf(t, res))
	}
	if got := textOf(t, res); got != "projects/roadmap.md" {
		t.Errorf("result = %q", got)
	}

	res = callTool(t, srv, "find_notes", map[string]any{"term": "nothing-here"})
	if got := textOf(t, res); got != "no notes found" {
		t.Errorf("result = %q", got)
	}
}

func TestGetNoteContent(t *testing.T) {
	srv, v := testServer(t)
	testutil.WriteNote(t, v, "note.md", "---\ntitle: Note\n---\nBody.\n")

	res := callTool(t, srv, "get_note_content", map[string]any{"filename": "note"})
	if res.IsError {
		t.Fatalf("get_note_content failed: %s", textOf(t, res))
	}
	if got := textOf(t, res); got != "Body.\n" {
		t.Errorf("body = %q", got)
	}

	res = callTool(t, srv, "get_note_content", map[string]any{"filename": "note", "show_frontmatter": true})
	if got := textOf(t, res); got != "---\ntitle: Note\n---\nBody.\n" {
		t.Errorf("raw content = %q", got)
	}

	res = callTool(t, srv, "get_note_content", map[string]any{"filename": "missing"})
	if !res.IsError {
		t.Fatal("expected error for missing note")
	}
}

func TestGetVaultInfo(t *testing.T) {
	srv, v := testServer(t)
	testutil.WriteNote(t, v, "a.md", "x\n")

	res := callTool(t, srv, "get_vault_info", nil)
	if res.IsError {
		t.Fatalf("get_vault_info failed: %s", textOf(t, res))
	}
	out := textOf(t, res)
	if !strings.Contains(out, "Vault Information:") || !strings.Contains(out, "Total files: 1") {
		t.Errorf("info = %q", out)
	}
}
