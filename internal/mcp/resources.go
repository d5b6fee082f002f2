package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"hackpage/internal/catalog"
	"hackpage/internal/domain"
)

func (s *Server) registerResources() {
	// ── hackpage://block-types ─────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"hackpage://block-types",
		"Available Block Types",
		mcp.WithMIMEType("application/json"),
	), s.handleBlockTypesResource)

	// ── hackpage://viewports ───────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"hackpage://viewports",
		"Preview Viewport Widths",
		mcp.WithMIMEType("application/json"),
	), s.handleViewportsResource)

	// ── hackpage://homepage/{hackathonId} ──────────────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"hackpage://homepage/{hackathonId}",
			"Saved Landing Page Document",
		),
		s.handleHomepageResource,
	)
}

func (s *Server) handleBlockTypesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, _ := json.MarshalIndent(catalog.Types(), "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "hackpage://block-types",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleViewportsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, _ := json.MarshalIndent(domain.Viewports, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "hackpage://viewports",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleHomepageResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	hackathonID := strings.TrimPrefix(uri, "hackpage://homepage/")
	if hackathonID == "" || hackathonID == uri {
		return nil, fmt.Errorf("could not extract hackathonId from URI: %s", uri)
	}

	doc, err := s.gateway.LoadDraftOrPublished(hackathonID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("no saved page for hackathon %s", hackathonID)
	}

	data, _ := json.MarshalIndent(doc, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
