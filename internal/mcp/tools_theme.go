package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerThemeTools() {
	// ── set_color ──────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_color",
		mcp.WithDescription("Replace one of the five theme colors"),
		mcp.WithString("key",
			mcp.Description("Color key: primary, secondary, accent, background, text"),
			mcp.Required(),
		),
		mcp.WithString("value", mcp.Description("CSS color, e.g. #6366f1"), mcp.Required()),
	), s.handleSetColor)

	// ── set_subdomain ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_subdomain",
		mcp.WithDescription("Set the public subdomain the page is served under"),
		mcp.WithString("subdomain", mcp.Description("Subdomain, e.g. 'hackthenorth'"), mcp.Required()),
	), s.handleSetSubdomain)

	// ── set_page_enabled ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_page_enabled",
		mcp.WithDescription("Toggle whether the landing page is publicly visible at all"),
		mcp.WithBoolean("enabled", mcp.Description("true to show the page"), mcp.Required()),
	), s.handleSetPageEnabled)
}

var colorKeys = map[string]bool{
	"primary": true, "secondary": true, "accent": true, "background": true, "text": true,
}

func (s *Server) handleSetColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	args := req.GetArguments()
	key, _ := args["key"].(string)
	value, _ := args["value"].(string)
	if !colorKeys[key] {
		return nil, fmt.Errorf("unknown color key %q", key)
	}
	if value == "" {
		return nil, fmt.Errorf("value is required")
	}

	sess.Store().SetColor(key, value)
	s.emitBlocksChanged(ctx)
	return jsonResult(sess.Store().Document().Colors)
}

func (s *Server) handleSetSubdomain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	args := req.GetArguments()
	subdomain, _ := args["subdomain"].(string)

	sess.Store().SetSubdomain(subdomain)
	return textResult(fmt.Sprintf("Subdomain set to %q", subdomain)), nil
}

func (s *Server) handleSetPageEnabled(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	args := req.GetArguments()
	enabled, _ := args["enabled"].(bool)

	sess.Store().SetEnabled(enabled)
	return textResult(fmt.Sprintf("Page enabled=%v", enabled)), nil
}
