package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// AssetWatcher watches a session's asset directory (hero backgrounds,
// sponsor logos) and emits homepage:assets-changed so the hosting preview
// re-renders when an image is replaced on disk. Best-effort: watcher
// errors are logged and never fatal.
type AssetWatcher struct {
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

// WatchAssets starts watching dir. Events are debounced so bulk copies
// produce a single emission.
func WatchAssets(ctx context.Context, dir string, emitter EventEmitter) (*AssetWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}

	w := &AssetWatcher{watcher: watcher, stopCh: make(chan struct{})}
	go func() {
		var debounce *time.Timer
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				path := ev.Name
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(300*time.Millisecond, func() {
					emitter.Emit(ctx, "homepage:assets-changed", map[string]string{"path": path})
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("assets: watcher error: %v", err)
			case <-w.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return w, nil
}

// Stop terminates the watch goroutine and releases the OS watcher.
func (w *AssetWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}
