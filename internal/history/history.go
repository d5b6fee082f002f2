package history

// History is a generic undo/redo container over document snapshots.
// The present value is always the authoritative one; past and future are
// strict stacks, and any new Set invalidates the redo history. Depth is
// unbounded — acceptable for a single editing session.
type History[T any] struct {
	past    []T
	present T
	future  []T
}

// New creates a history positioned at the given initial snapshot.
func New[T any](initial T) *History[T] {
	return &History[T]{present: initial}
}

// Present returns the current snapshot.
func (h *History[T]) Present() T {
	return h.present
}

// Set adopts a new present snapshot, pushing the old one onto the undo
// stack and discarding any redo states.
func (h *History[T]) Set(present T) {
	h.past = append(h.past, h.present)
	h.present = present
	h.future = nil
}

// Undo steps back one snapshot. Returns false (and does nothing) when
// there is nothing to undo.
func (h *History[T]) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	last := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]T{h.present}, h.future...)
	h.present = last
	return true
}

// Redo steps forward one snapshot. Returns false (and does nothing) when
// there is nothing to redo.
func (h *History[T]) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
	return true
}

func (h *History[T]) CanUndo() bool { return len(h.past) > 0 }
func (h *History[T]) CanRedo() bool { return len(h.future) > 0 }

// Clear resets the history to a single initial snapshot with empty stacks.
func (h *History[T]) Clear(initial T) {
	h.past = nil
	h.future = nil
	h.present = initial
}
