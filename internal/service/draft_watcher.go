package service

import (
	"context"
	"sync"
	"time"
)

// DraftFingerprinter is the slice of the persistence gateway the draft
// watcher needs: a cheap change marker for the stored draft.
type DraftFingerprinter interface {
	DraftFingerprint(hackathonID string) (string, error)
}

// draftWatcher polls the stored draft for changes made by another process
// (e.g. the standalone MCP server editing the same page) and emits
// homepage:draft-changed so the hosting editor can refresh.
type draftWatcher struct {
	ctx         context.Context
	hackathonID string
	store       DraftFingerprinter
	emitter     EventEmitter

	mu     sync.Mutex
	last   string
	stopCh chan struct{}
}

func newDraftWatcher(ctx context.Context, hackathonID string, store DraftFingerprinter, emitter EventEmitter) *draftWatcher {
	return &draftWatcher{ctx: ctx, hackathonID: hackathonID, store: store, emitter: emitter}
}

// Start begins the polling loop.
func (w *draftWatcher) Start() {
	w.stopCh = make(chan struct{})
	go w.pollLoop()
}

// Stop terminates the polling loop.
func (w *draftWatcher) Stop() {
	if w.stopCh != nil {
		close(w.stopCh)
	}
}

// markClean re-baselines the fingerprint after the session's own save so
// we only report edits that came from somewhere else.
func (w *draftWatcher) markClean() {
	fp, err := w.store.DraftFingerprint(w.hackathonID)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.last = fp
	w.mu.Unlock()
}

func (w *draftWatcher) pollLoop() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check()
		case <-w.stopCh:
			return
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *draftWatcher) check() {
	fp, err := w.store.DraftFingerprint(w.hackathonID)
	if err != nil || fp == "" {
		return
	}

	w.mu.Lock()
	changed := w.last != "" && w.last != fp
	w.last = fp
	w.mu.Unlock()

	if changed {
		w.emitter.Emit(w.ctx, "homepage:draft-changed", map[string]string{"hackathonId": w.hackathonID})
	}
}
