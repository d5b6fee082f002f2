package history_test

import (
	"testing"

	"hackpage/internal/history"
)

func TestHistory_InitialState(t *testing.T) {
	h := history.New("start")

	if got := h.Present(); got != "start" {
		t.Fatalf("expected present 'start', got %q", got)
	}
	if h.CanUndo() {
		t.Error("expected CanUndo false on fresh history")
	}
	if h.CanRedo() {
		t.Error("expected CanRedo false on fresh history")
	}
	if h.Undo() {
		t.Error("expected Undo to return false on fresh history")
	}
	if h.Redo() {
		t.Error("expected Redo to return false on fresh history")
	}
}

func TestHistory_UndoRedoRoundtrip(t *testing.T) {
	h := history.New(0)
	for i := 1; i <= 5; i++ {
		h.Set(i)
	}
	if got := h.Present(); got != 5 {
		t.Fatalf("expected present 5, got %d", got)
	}

	// Five undos walk all the way back to the initial snapshot.
	for want := 4; want >= 0; want-- {
		if !h.Undo() {
			t.Fatalf("expected Undo to succeed at %d", want)
		}
		if got := h.Present(); got != want {
			t.Fatalf("after undo expected %d, got %d", want, got)
		}
	}
	if h.Undo() {
		t.Fatal("expected Undo to fail at the initial snapshot")
	}

	// Five redos walk back to the latest.
	for want := 1; want <= 5; want++ {
		if !h.Redo() {
			t.Fatalf("expected Redo to succeed at %d", want)
		}
		if got := h.Present(); got != want {
			t.Fatalf("after redo expected %d, got %d", want, got)
		}
	}
	if h.Redo() {
		t.Fatal("expected Redo to fail at the latest snapshot")
	}
}

func TestHistory_SetInvalidatesRedo(t *testing.T) {
	h := history.New("a")
	h.Set("b")
	h.Set("c")

	h.Undo() // back to "b"
	if !h.CanRedo() {
		t.Fatal("expected CanRedo after undo")
	}

	h.Set("d")
	if h.CanRedo() {
		t.Error("expected redo stack to be discarded after Set")
	}
	if h.Redo() {
		t.Error("expected Redo to fail after Set")
	}
	if got := h.Present(); got != "d" {
		t.Errorf("expected present 'd', got %q", got)
	}

	// The undo path still holds the diverged lineage.
	h.Undo()
	if got := h.Present(); got != "b" {
		t.Errorf("expected present 'b' after undo, got %q", got)
	}
}

func TestHistory_Clear(t *testing.T) {
	h := history.New(1)
	h.Set(2)
	h.Set(3)
	h.Undo()

	h.Clear(10)
	if got := h.Present(); got != 10 {
		t.Fatalf("expected present 10 after clear, got %d", got)
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("expected empty stacks after clear")
	}
}
