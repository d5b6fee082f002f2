package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerOutputTools() {
	// ── compile_preview ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("compile_preview",
		mcp.WithDescription("Compile the current document to its public HTML/CSS without saving anything"),
	), s.handleCompilePreview)

	// ── save_draft ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("save_draft",
		mcp.WithDescription("Flush the current document to storage as the working draft"),
	), s.handleSaveDraft)

	// ── publish ────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("publish",
		mcp.WithDescription("Compile the current document and save it as the public artifact"),
	), s.handlePublish)
}

func (s *Server) handleCompilePreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	return jsonResult(sess.Preview())
}

func (s *Server) handleSaveDraft(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	if err := sess.FlushDraft(ctx); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return textResult("Draft saved"), nil
}

func (s *Server) handlePublish(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	res, err := sess.Publish(ctx)
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Published %s (%d bytes html, %d bytes css)",
		sess.HackathonID(), len(res.HTML), len(res.CSS))), nil
}
