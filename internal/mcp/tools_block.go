package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"hackpage/internal/catalog"
	"hackpage/internal/domain"
)

func (s *Server) registerBlockTools() {
	// ── list_block_types ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_block_types",
		mcp.WithDescription("List the block types available in the palette, in suggested page order"),
	), s.handleListBlockTypes)

	// ── add_block ──────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_block",
		mcp.WithDescription("Append a new block seeded with catalog defaults. It becomes the active block."),
		mcp.WithString("type",
			mcp.Description("Block type: hero, about, schedule, prizes, judges, sponsors, stats, faq, contact"),
			mcp.Required(),
		),
	), s.handleAddBlock)

	// ── update_block ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_block",
		mcp.WithDescription("Shallow-merge fields into a block's data. Pass a JSON object of the fields to change."),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithString("data", mcp.Description(`JSON object of fields, e.g. {"title":"HackTheNorth"}`), mcp.Required(),
		),
	), s.handleUpdateBlock)

	// ── toggle_block ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("toggle_block",
		mcp.WithDescription("Enable or disable a block. Disabled blocks stay in the document but are not compiled."),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
	), s.handleToggleBlock)

	// ── move_block ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("move_block",
		mcp.WithDescription("Move a block one step up or down in the page order"),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithString("direction", mcp.Description("'up' or 'down'"), mcp.Required()),
	), s.handleMoveBlock)

	// ── duplicate_block ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("duplicate_block",
		mcp.WithDescription("Insert a deep copy of a block immediately after it"),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
	), s.handleDuplicateBlock)

	// ── reorder_blocks ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("reorder_blocks",
		mcp.WithDescription("Move one block to another block's position (drag-and-drop semantics)"),
		mcp.WithString("fromId", mcp.Description("Block being moved"), mcp.Required()),
		mcp.WithString("toId", mcp.Description("Block whose position it takes"), mcp.Required()),
	), s.handleReorderBlocks)

	// ── delete_block (destructive) ─────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_block",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete a block from the page (undo can restore it within this session)."),
		mcp.WithString("blockId", mcp.Description("Block ID to delete"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteBlock)
}

func boolPtr(v bool) *bool { return &v }

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleListBlockTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(catalog.Types())
}

func (s *Server) handleAddBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	args := req.GetArguments()
	blockType, _ := args["type"].(string)
	if blockType == "" {
		return nil, fmt.Errorf("type is required")
	}

	block, ok := sess.Store().AddBlock(domain.BlockType(blockType))
	if !ok {
		return nil, fmt.Errorf("unknown block type %q", blockType)
	}

	s.emitBlocksChanged(ctx)
	return jsonResult(block)
}

func (s *Server) handleUpdateBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, err := s.requireBlock(args)
	if err != nil {
		return nil, err
	}

	raw, _ := args["data"].(string)
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("data must be a JSON object: %w", err)
	}

	s.session.Store().UpdateBlock(blockID, data)
	s.emitBlocksChanged(ctx)
	return textResult(fmt.Sprintf("Block %s updated", blockID)), nil
}

func (s *Server) handleToggleBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, err := s.requireBlock(args)
	if err != nil {
		return nil, err
	}

	store := s.session.Store()
	store.ToggleBlock(blockID)
	s.emitBlocksChanged(ctx)

	doc := store.Document()
	b := doc.Blocks[doc.BlockIndex(blockID)]
	return textResult(fmt.Sprintf("Block %s enabled=%v", blockID, b.Enabled)), nil
}

func (s *Server) handleMoveBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, err := s.requireBlock(args)
	if err != nil {
		return nil, err
	}
	direction, _ := args["direction"].(string)
	if direction != "up" && direction != "down" {
		return nil, fmt.Errorf("direction must be 'up' or 'down'")
	}

	s.session.Store().MoveBlock(blockID, direction)
	s.emitBlocksChanged(ctx)
	return jsonResult(s.session.Store().Document().Blocks)
}

func (s *Server) handleDuplicateBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, err := s.requireBlock(args)
	if err != nil {
		return nil, err
	}

	dup, ok := s.session.Store().DuplicateBlock(blockID)
	if !ok {
		return nil, fmt.Errorf("block %s not found", blockID)
	}
	s.emitBlocksChanged(ctx)
	return jsonResult(dup)
}

func (s *Server) handleReorderBlocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	args := req.GetArguments()
	fromID, _ := args["fromId"].(string)
	toID, _ := args["toId"].(string)
	if fromID == "" || toID == "" {
		return nil, fmt.Errorf("fromId and toId are required")
	}
	doc := sess.Store().Document()
	if doc.BlockIndex(fromID) < 0 || doc.BlockIndex(toID) < 0 {
		return nil, fmt.Errorf("unknown block id")
	}

	sess.Store().ReorderBlocks(fromID, toID)
	s.emitBlocksChanged(ctx)
	return jsonResult(sess.Store().Document().Blocks)
}

func (s *Server) handleDeleteBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, err := s.requireBlock(args)
	if err != nil {
		return nil, err
	}

	s.session.Store().DeleteBlock(blockID)
	s.emitBlocksChanged(ctx)
	return textResult(fmt.Sprintf("Block %s deleted", blockID)), nil
}
