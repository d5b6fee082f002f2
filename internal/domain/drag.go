package domain

// DragKind says where a live drag originated.
type DragKind string

const (
	DragNewBlock      DragKind = "new-block"
	DragExistingBlock DragKind = "existing-block"
)

// DragContext is the transient "what is being dragged" state. It exists
// only while a drag is live and is never persisted with the document.
type DragContext struct {
	Kind      DragKind
	BlockType BlockType // set for new-block drags
	Block     *Block    // set for existing-block drags
}
