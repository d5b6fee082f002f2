package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"hackpage/internal/domain"
)

func (s *Server) registerSessionTools() {
	// ── open_homepage ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("open_homepage",
		mcp.WithDescription("Open (or create) a hackathon's landing page for editing. Closes any previously open page."),
		mcp.WithString("hackathonId", mcp.Description("Hackathon ID"), mcp.Required()),
		mcp.WithString("title", mcp.Description("Hackathon title, used for default block content")),
		mcp.WithString("tagline", mcp.Description("Short tagline")),
		mcp.WithString("startDate", mcp.Description("Display start date, e.g. 'June 12, 2026'")),
		mcp.WithString("endDate", mcp.Description("Display end date")),
		mcp.WithString("location", mcp.Description("Venue or 'Online'")),
		mcp.WithString("email", mcp.Description("Contact email")),
		mcp.WithString("website", mcp.Description("Organizer website URL")),
	), s.handleOpenHomepage)

	// ── get_homepage ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_homepage",
		mcp.WithDescription("Return the full document being edited, plus undo/redo availability"),
	), s.handleGetHomepage)

	// ── undo / redo ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Undo the last document mutation"),
	), s.handleUndo)
	s.mcp.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Redo the last undone mutation"),
	), s.handleRedo)
}

func (s *Server) handleOpenHomepage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	hackathonID, _ := args["hackathonId"].(string)
	if hackathonID == "" {
		return nil, fmt.Errorf("hackathonId is required")
	}

	hctx := domain.HackathonContext{
		Title:     getString(args, "title"),
		Tagline:   getString(args, "tagline"),
		StartDate: getString(args, "startDate"),
		EndDate:   getString(args, "endDate"),
		Location:  getString(args, "location"),
		Email:     getString(args, "email"),
		Website:   getString(args, "website"),
	}

	if s.session != nil {
		s.session.Close()
		s.session = nil
	}
	sess, err := s.editor.Open(s.ctx, hackathonID, hctx)
	if err != nil {
		return nil, fmt.Errorf("open homepage: %w", err)
	}
	s.session = sess

	return jsonResult(sess.Store().Document())
}

func (s *Server) handleGetHomepage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	store := sess.Store()
	return jsonResult(map[string]any{
		"document":      store.Document(),
		"activeBlockId": store.ActiveBlockID(),
		"canUndo":       store.CanUndo(),
		"canRedo":       store.CanRedo(),
	})
}

func (s *Server) handleUndo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	if !sess.Store().Undo() {
		return textResult("Nothing to undo"), nil
	}
	s.emitBlocksChanged(ctx)
	return jsonResult(sess.Store().Document())
}

func (s *Server) handleRedo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	if !sess.Store().Redo() {
		return textResult("Nothing to redo"), nil
	}
	s.emitBlocksChanged(ctx)
	return jsonResult(sess.Store().Document())
}

func getString(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}
