package editor_test

import (
	"testing"

	"hackpage/internal/domain"
	"hackpage/internal/editor"
)

func TestReducer_PaletteDropOnCanvasAddsBlock(t *testing.T) {
	store := newTestStore(t)
	r := editor.NewReducer(store)

	r.OnDragStart(editor.DragEvent{SourceID: editor.PalettePrefix + "hero"})
	if r.Dragging() == nil || r.Dragging().Kind != domain.DragNewBlock {
		t.Fatal("expected a live new-block drag context")
	}

	r.OnDragEnd(editor.DragEvent{TargetID: editor.CanvasDropZoneID})

	doc := store.Document()
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block after drop, got %d", len(doc.Blocks))
	}
	if doc.Blocks[0].Type != domain.BlockTypeHero {
		t.Errorf("expected hero block, got %s", doc.Blocks[0].Type)
	}
	if doc.Blocks[0].Order != 0 {
		t.Errorf("expected Order 0, got %d", doc.Blocks[0].Order)
	}
	if r.Dragging() != nil {
		t.Error("expected drag state cleared after drop")
	}
}

func TestReducer_PaletteDropOutsideCanvasIsNoOp(t *testing.T) {
	store := newTestStore(t)
	r := editor.NewReducer(store)

	r.OnDragStart(editor.DragEvent{SourceID: editor.PalettePrefix + "about"})
	r.OnDragEnd(editor.DragEvent{TargetID: ""})

	if len(store.Document().Blocks) != 0 {
		t.Error("expected no block added on a drop outside any target")
	}
	if r.Dragging() != nil {
		t.Error("expected drag state cleared even on a cancelled drop")
	}
}

func TestReducer_UnknownPaletteTypeIgnored(t *testing.T) {
	store := newTestStore(t)
	r := editor.NewReducer(store)

	r.OnDragStart(editor.DragEvent{SourceID: editor.PalettePrefix + "carousel"})
	if r.Dragging() != nil {
		t.Fatal("expected no drag context for an unknown palette type")
	}
}

func TestReducer_ExistingBlockReorder(t *testing.T) {
	store := newTestStore(t)
	ids := addBlocks(t, store,
		domain.BlockTypeHero, domain.BlockTypeAbout, domain.BlockTypeFAQ)
	r := editor.NewReducer(store)

	r.OnDragStart(editor.DragEvent{SourceID: ids[0]})
	drag := r.Dragging()
	if drag == nil || drag.Kind != domain.DragExistingBlock || drag.Block.ID != ids[0] {
		t.Fatal("expected existing-block drag context holding the source block")
	}

	r.OnDragOver(ids[2])
	if r.DropTargetID() != ids[2] {
		t.Errorf("expected hovered target %s, got %s", ids[2], r.DropTargetID())
	}

	r.OnDragEnd(editor.DragEvent{TargetID: ids[2]})

	got := orderOf(t, store)
	want := []string{ids[1], ids[2], ids[0]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if r.Dragging() != nil || r.DropTargetID() != "" {
		t.Error("expected drag state fully cleared after drop")
	}
}

func TestReducer_DropOnSelfIsNoOp(t *testing.T) {
	store := newTestStore(t)
	ids := addBlocks(t, store, domain.BlockTypeHero, domain.BlockTypeAbout)
	r := editor.NewReducer(store)

	before := orderOf(t, store)
	r.OnDragStart(editor.DragEvent{SourceID: ids[0]})
	r.OnDragEnd(editor.DragEvent{TargetID: ids[0]})

	after := orderOf(t, store)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("expected order unchanged on a self drop")
		}
	}
}

func TestReducer_SecondDragStartIgnored(t *testing.T) {
	store := newTestStore(t)
	ids := addBlocks(t, store, domain.BlockTypeHero)
	r := editor.NewReducer(store)

	r.OnDragStart(editor.DragEvent{SourceID: editor.PalettePrefix + "about"})
	r.OnDragStart(editor.DragEvent{SourceID: ids[0]})

	drag := r.Dragging()
	if drag == nil || drag.Kind != domain.DragNewBlock {
		t.Fatal("expected the first drag context to survive a second start")
	}
}

func TestReducer_DragOverWithoutDragIgnored(t *testing.T) {
	store := newTestStore(t)
	r := editor.NewReducer(store)

	r.OnDragOver("some-block")
	if r.DropTargetID() != "" {
		t.Error("expected no hover state without a live drag")
	}
}
