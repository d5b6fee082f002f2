package editor

import (
	"strings"

	"hackpage/internal/catalog"
	"hackpage/internal/domain"
)

// Drag source/target identifiers. Concrete drag-and-drop libraries are
// adapters: whatever they emit gets mapped into a DragEvent before it
// reaches the reducer.
const (
	// PalettePrefix marks drag sources from the "add block" palette;
	// the remainder of the id is the block type.
	PalettePrefix = "palette-"
	// CanvasDropZoneID is the drop target that accepts new blocks.
	CanvasDropZoneID = "canvas"
)

// DragEvent is the minimal internal shape of a pointer drag event.
// TargetID is empty when the drop happened outside any valid target.
type DragEvent struct {
	SourceID string
	TargetID string
}

// Reducer translates drag events into document store mutations. It owns
// the transient drag state, which never leaks into the persisted document
// and is cleared unconditionally when a drag ends.
type Reducer struct {
	store *Store

	drag   *domain.DragContext
	overID string
}

// NewReducer creates a reducer bound to a document store.
func NewReducer(store *Store) *Reducer {
	return &Reducer{store: store}
}

// Dragging returns the live drag context, or nil when idle.
func (r *Reducer) Dragging() *domain.DragContext { return r.drag }

// DropTargetID returns the id of the block currently hovered as a drop
// target, used only to render insertion affordances.
func (r *Reducer) DropTargetID() string { return r.overID }

// OnDragStart captures a drag context from the event's source identifier.
// Palette-prefixed sources start a new-block drag; anything else is
// resolved against existing block ids. Starting a drag while one is live
// is not a supported input and is ignored.
func (r *Reducer) OnDragStart(ev DragEvent) {
	if r.drag != nil {
		return
	}
	if strings.HasPrefix(ev.SourceID, PalettePrefix) {
		t := domain.BlockType(strings.TrimPrefix(ev.SourceID, PalettePrefix))
		if !catalog.Known(t) {
			return
		}
		r.drag = &domain.DragContext{Kind: domain.DragNewBlock, BlockType: t}
		return
	}
	doc := r.store.Document()
	if i := doc.BlockIndex(ev.SourceID); i >= 0 {
		b := doc.Blocks[i].Clone()
		r.drag = &domain.DragContext{Kind: domain.DragExistingBlock, Block: &b}
	}
}

// OnDragOver records which block is currently hovered while dragging.
func (r *Reducer) OnDragOver(targetID string) {
	if r.drag == nil {
		return
	}
	r.overID = targetID
}

// OnDragEnd commits the drag if it landed somewhere meaningful: a palette
// item dropped on the canvas adds a block, an existing block dropped on a
// different block reorders. Every path — commit, cancel, drop outside —
// clears the drag state so a stuck drag ghost is impossible.
func (r *Reducer) OnDragEnd(ev DragEvent) {
	drag := r.drag
	r.drag = nil
	r.overID = ""

	if drag == nil || ev.TargetID == "" {
		return
	}
	switch drag.Kind {
	case domain.DragNewBlock:
		if ev.TargetID == CanvasDropZoneID {
			r.store.AddBlock(drag.BlockType)
		}
	case domain.DragExistingBlock:
		if drag.Block != nil && ev.TargetID != drag.Block.ID {
			if r.store.Document().BlockIndex(ev.TargetID) >= 0 {
				r.store.ReorderBlocks(drag.Block.ID, ev.TargetID)
			}
		}
	}
}
