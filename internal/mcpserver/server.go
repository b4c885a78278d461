// Package mcpserver exposes vault operations as MCP (Model Context
// Protocol) tools over stdio transport.
package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/search"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
	"github.com/starford/ansuz/internal/vaultinfo"
)

// Server wraps the MCP server with vault tools.
type Server struct {
	mcp     *server.MCPServer
	vault   *vault.Vault
	store   storage.Provider
	version string
}

// New creates a new MCP server with all vault tools registered.
func New(v *vault.Vault, store storage.Provider, version string) *Server {
	s := &Server{vault: v, store: store, version: version}

	s.mcp = server.NewMCPServer(
		"Ansuz",
		version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new Markdown note in the vault with default "+
			"frontmatter (title, created, modified, unique id) followed by the given body."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Vault-relative path for the new note (.md appended if missing)")),
		mcp.WithString("content", mcp.Description("Markdown body of the note")),
		mcp.WithBoolean("force", mcp.Description("Overwrite an existing note")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("find_notes",
		mcp.WithDescription("Find notes by filename stem or frontmatter title."),
		mcp.WithString("term", mcp.Required(), mcp.Description("Search term")),
		mcp.WithBoolean("exact", mcp.Description("Require the filename stem to match exactly")),
	), s.findNotes)

	s.mcp.AddTool(mcp.NewTool("get_note_content",
		mcp.WithDescription("Read a note's body, or the raw file when show_frontmatter is set."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Note name or vault-relative path")),
		mcp.WithBoolean("show_frontmatter", mcp.Description("Include the frontmatter block")),
	), s.getNoteContent)

	s.mcp.AddTool(mcp.NewTool("get_vault_info",
		mcp.WithDescription("Return vault statistics: file counts, sizes by extension, and settings."),
	), s.getVaultInfo)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rel, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rel = path.Clean(rel)
	if path.Ext(rel) == "" {
		rel += ".md"
	}
	if _, err := os.Stat(s.vault.Abs(rel)); err == nil && !req.GetBool("force", false) {
		return mcp.NewToolResultError(fmt.Sprintf("note already exists: %s", rel)), nil
	}

	body := req.GetString("content", "")
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	fm := map[string]any{}
	frontmatter.AddDefaults(fm, strings.TrimSuffix(path.Base(rel), ".md"), s.vault.IdentKey)
	content, err := frontmatter.Serialize(fm, body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.store.Write(rel, []byte(content)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", rel)), nil
}

func (s *Server) findNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := req.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	matches, err := search.FindNotes(s.store, term, req.GetBool("exact", false))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(matches) == 0 {
		return mcp.NewToolResultText("no notes found"), nil
	}
	return mcp.NewToolResultText(strings.Join(matches, "\n")), nil
}

func (s *Server) getNoteContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rel, err := s.vault.ResolvePage(page)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(rel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if req.GetBool("show_frontmatter", false) {
		return mcp.NewToolResultText(string(data)), nil
	}
	_, body := frontmatter.Parse(string(data))
	return mcp.NewToolResultText(body), nil
}

func (s *Server) getVaultInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := vaultinfo.Collect(s.vault, s.store, s.version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.InfoText(info)), nil
}
