// Package editor holds the in-memory editing core for one landing page:
// the document store (intent-based mutations routed through undo history)
// and the drag interaction reducer.
package editor

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"hackpage/internal/catalog"
	"hackpage/internal/domain"
	"hackpage/internal/history"
)

// Store owns the HomepageDocument for an editing session. Every mutation
// computes a new document value and records it in the undo history; the
// store itself assumes a single logical writer (the UI event loop) and
// does no locking.
type Store struct {
	history *history.History[domain.HomepageDocument]
	ctx     domain.HackathonContext

	activeBlockID string

	// newID allocates block ids; injectable so tests get stable ids.
	newID func(domain.BlockType) string
}

// NewStore creates a store positioned at the given document.
func NewStore(doc domain.HomepageDocument, ctx domain.HackathonContext) *Store {
	return &Store{
		history: history.New(doc.Clone()),
		ctx:     ctx,
		newID: func(t domain.BlockType) string {
			return fmt.Sprintf("%s-%s", t, uuid.New().String())
		},
	}
}

// SetIDAllocator overrides block id allocation (tests).
func (s *Store) SetIDAllocator(fn func(domain.BlockType) string) { s.newID = fn }

// Document returns the current present value. Callers must treat it as
// read-only; all edits go through the intent operations below.
func (s *Store) Document() domain.HomepageDocument {
	return s.history.Present()
}

// Context returns the ambient hackathon context the session was opened with.
func (s *Store) Context() domain.HackathonContext { return s.ctx }

// ActiveBlockID returns the id of the block currently being edited, or ""
// when none is selected.
func (s *Store) ActiveBlockID() string { return s.activeBlockID }

// SetActiveBlock selects a block for editing. Unknown ids clear the selection.
func (s *Store) SetActiveBlock(id string) {
	if id != "" && s.Document().BlockIndex(id) < 0 {
		id = ""
	}
	s.activeBlockID = id
}

// ── Intent operations ──────────────────────────────────────

// AddBlock appends a catalog-seeded block of the given type and makes it
// the active block. Unknown types are rejected as a no-op rather than
// reaching the catalog's fail-fast path from user input.
func (s *Store) AddBlock(t domain.BlockType) (domain.Block, bool) {
	if !catalog.Known(t) {
		return domain.Block{}, false
	}
	doc := s.Document().Clone()
	b := domain.Block{
		ID:      s.newID(t),
		Type:    t,
		Enabled: true,
		Order:   len(doc.Blocks),
		Data:    catalog.DefaultData(t, s.ctx),
		Styles:  catalog.DefaultStyles(t),
	}
	doc.Blocks = append(doc.Blocks, b)
	restampOrders(&doc)
	s.history.Set(doc)
	s.activeBlockID = b.ID
	return b.Clone(), true
}

// UpdateBlock shallow-merges data into the target block's field bag. When
// the id does not exist the document is unchanged but a history entry is
// still recorded — callers are expected to validate existence first.
func (s *Store) UpdateBlock(id string, data map[string]any) {
	doc := s.Document().Clone()
	if i := doc.BlockIndex(id); i >= 0 {
		if doc.Blocks[i].Data == nil {
			doc.Blocks[i].Data = make(map[string]any, len(data))
		}
		for k, v := range data {
			doc.Blocks[i].Data[k] = v
		}
	}
	s.history.Set(doc)
}

// ToggleBlock flips a block's enabled flag. Order is untouched.
func (s *Store) ToggleBlock(id string) {
	doc := s.Document().Clone()
	i := doc.BlockIndex(id)
	if i < 0 {
		return
	}
	doc.Blocks[i].Enabled = !doc.Blocks[i].Enabled
	s.history.Set(doc)
}

// MoveBlock swaps a block with its neighbour in the current sort order.
// Moving the first block up or the last block down is a no-op and records
// no history entry.
func (s *Store) MoveBlock(id string, direction string) {
	doc := s.Document().Clone()
	seq := sortedIndexes(doc.Blocks)
	pos := -1
	for p, i := range seq {
		if doc.Blocks[i].ID == id {
			pos = p
			break
		}
	}
	if pos < 0 {
		return
	}
	var swap int
	switch direction {
	case "up":
		swap = pos - 1
	case "down":
		swap = pos + 1
	default:
		return
	}
	if swap < 0 || swap >= len(seq) {
		return
	}
	seq[pos], seq[swap] = seq[swap], seq[pos]
	for p, i := range seq {
		doc.Blocks[i].Order = p
	}
	restampOrders(&doc)
	s.history.Set(doc)
}

// DeleteBlock removes a block and re-stamps the remaining order sequence.
// Deleting the active block clears the selection. Unknown ids are a no-op.
func (s *Store) DeleteBlock(id string) {
	doc := s.Document().Clone()
	i := doc.BlockIndex(id)
	if i < 0 {
		return
	}
	doc.Blocks = append(doc.Blocks[:i], doc.Blocks[i+1:]...)
	restampOrders(&doc)
	s.history.Set(doc)
	if s.activeBlockID == id {
		s.activeBlockID = ""
	}
}

// DuplicateBlock inserts a deep copy immediately after the source block
// with a freshly allocated id, then re-stamps orders so the copy and its
// source never share an order value.
func (s *Store) DuplicateBlock(id string) (domain.Block, bool) {
	doc := s.Document().Clone()
	i := doc.BlockIndex(id)
	if i < 0 {
		return domain.Block{}, false
	}
	dup := doc.Blocks[i].Clone()
	dup.ID = s.newID(dup.Type)
	dup.Order = doc.Blocks[i].Order + 1
	doc.Blocks = append(doc.Blocks, domain.Block{})
	copy(doc.Blocks[i+2:], doc.Blocks[i+1:])
	doc.Blocks[i+1] = dup
	restampOrders(&doc)
	s.history.Set(doc)
	s.activeBlockID = dup.ID
	return dup.Clone(), true
}

// ReorderBlocks moves the block with fromID to the array position of the
// block with toID (array-move semantics) and re-stamps every order to its
// dense index. Dropping a block on itself changes nothing and records no
// history entry.
func (s *Store) ReorderBlocks(fromID, toID string) {
	if fromID == toID {
		return
	}
	doc := s.Document().Clone()
	from := doc.BlockIndex(fromID)
	to := doc.BlockIndex(toID)
	if from < 0 || to < 0 {
		return
	}
	moved := doc.Blocks[from]
	doc.Blocks = append(doc.Blocks[:from], doc.Blocks[from+1:]...)
	doc.Blocks = append(doc.Blocks, domain.Block{})
	copy(doc.Blocks[to+1:], doc.Blocks[to:])
	doc.Blocks[to] = moved
	// The array is already in the wanted sequence; stamp orders from the
	// array positions directly. Sorting by the stale Order values here
	// would undo the move.
	for i := range doc.Blocks {
		doc.Blocks[i].Order = i
	}
	s.history.Set(doc)
}

// SetColor replaces one of the five theme colors. Unknown keys are a no-op.
func (s *Store) SetColor(key, value string) {
	doc := s.Document().Clone()
	switch key {
	case "primary":
		doc.Colors.Primary = value
	case "secondary":
		doc.Colors.Secondary = value
	case "accent":
		doc.Colors.Accent = value
	case "background":
		doc.Colors.Background = value
	case "text":
		doc.Colors.Text = value
	default:
		return
	}
	s.history.Set(doc)
}

// SetSubdomain sets the public subdomain the page will be served under.
func (s *Store) SetSubdomain(subdomain string) {
	doc := s.Document().Clone()
	doc.Subdomain = subdomain
	s.history.Set(doc)
}

// SetEnabled toggles whether the page is publicly visible at all.
func (s *Store) SetEnabled(enabled bool) {
	doc := s.Document().Clone()
	doc.IsEnabled = enabled
	s.history.Set(doc)
}

// ── History ────────────────────────────────────────────────

func (s *Store) Undo() bool {
	ok := s.history.Undo()
	s.reconcileActive()
	return ok
}

func (s *Store) Redo() bool {
	ok := s.history.Redo()
	s.reconcileActive()
	return ok
}

func (s *Store) CanUndo() bool { return s.history.CanUndo() }
func (s *Store) CanRedo() bool { return s.history.CanRedo() }

// reconcileActive drops the active-block pointer when the block it points
// at no longer exists in the present snapshot.
func (s *Store) reconcileActive() {
	if s.activeBlockID != "" && s.Document().BlockIndex(s.activeBlockID) < 0 {
		s.activeBlockID = ""
	}
}

// ── Order maintenance ──────────────────────────────────────

// sortedIndexes returns block array indexes sorted by (Order, array
// position) — the authoritative render sequence.
func sortedIndexes(blocks []domain.Block) []int {
	seq := make([]int, len(blocks))
	for i := range seq {
		seq[i] = i
	}
	sort.SliceStable(seq, func(a, b int) bool {
		return blocks[seq[a]].Order < blocks[seq[b]].Order
	})
	return seq
}

// restampOrders rewrites the backing array into sort order and assigns
// each block its dense zero-based index. Every structural mutation runs
// this, so the document is always gap-free.
func restampOrders(doc *domain.HomepageDocument) {
	seq := sortedIndexes(doc.Blocks)
	sorted := make([]domain.Block, len(seq))
	for p, i := range seq {
		sorted[p] = doc.Blocks[i]
		sorted[p].Order = p
	}
	doc.Blocks = sorted
}
