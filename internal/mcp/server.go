package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hackpage/internal/domain"
	"hackpage/internal/service"
)

// Server is the MCP server for the landing-page builder. It exposes the
// editor's mutation API as tools so AI agents and automation can assemble
// a page headlessly, sharing the same store/undo semantics as the UI.
type Server struct {
	mcp     *server.MCPServer
	emitter service.EventEmitter
	editor  *service.EditorService
	gateway domain.HomepageGateway

	// lifetime context for session background actors
	ctx context.Context

	// Active editing session (set by open_homepage)
	session *service.Session
}

// Deps holds all dependencies passed from the composition root.
type Deps struct {
	Emitter service.EventEmitter
	Editor  *service.EditorService
	Gateway domain.HomepageGateway
}

// New creates and configures a new MCP server with all tools and resources.
func New(ctx context.Context, deps Deps) *Server {
	s := &Server{
		emitter: deps.Emitter,
		editor:  deps.Editor,
		gateway: deps.Gateway,
		ctx:     ctx,
	}

	s.mcp = server.NewMCPServer(
		"hackpage-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerSessionTools()
	s.registerBlockTools()
	s.registerThemeTools()
	s.registerOutputTools()
	s.registerResources()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// Close tears down the active session, if any.
func (s *Server) Close() {
	if s.session != nil {
		s.session.Close()
		s.session = nil
	}
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

// requireSession returns the active session or an instructive error.
func (s *Server) requireSession() (*service.Session, error) {
	if s.session == nil {
		return nil, fmt.Errorf("no homepage open (use open_homepage first)")
	}
	return s.session, nil
}

// requireBlock validates that the block id from tool args exists.
func (s *Server) requireBlock(args map[string]any) (string, error) {
	sess, err := s.requireSession()
	if err != nil {
		return "", err
	}
	blockID, ok := args["blockId"].(string)
	if !ok || blockID == "" {
		return "", fmt.Errorf("blockId is required")
	}
	if sess.Store().Document().BlockIndex(blockID) < 0 {
		return "", fmt.Errorf("block %s not found", blockID)
	}
	return blockID, nil
}

// emitBlocksChanged notifies the hosting editor that the document changed.
func (s *Server) emitBlocksChanged(ctx context.Context) {
	if s.session != nil {
		s.emitter.Emit(ctx, "homepage:blocks-changed", map[string]string{"hackathonId": s.session.HackathonID()})
	}
}
