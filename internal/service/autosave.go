package service

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// FlushFunc serializes the current document as a draft.
type FlushFunc func(ctx context.Context) error

// Autosave periodically flushes the editing session's document as a draft.
// Autosave is best-effort: failures are logged and silently retried on the
// next tick, never surfaced to the user. If a flush outlives the interval
// the overlapping tick is dropped rather than queued.
type Autosave struct {
	ctx      context.Context
	interval time.Duration
	flush    FlushFunc

	sched    *cron.Cron
	inFlight atomic.Bool
}

// NewAutosave creates a scheduler that calls flush every interval.
func NewAutosave(ctx context.Context, interval time.Duration, flush FlushFunc) *Autosave {
	return &Autosave{ctx: ctx, interval: interval, flush: flush}
}

// Start arms the periodic timer.
func (a *Autosave) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", a.interval), a.RunOnce); err != nil {
		return fmt.Errorf("autosave: schedule: %w", err)
	}
	c.Start()
	a.sched = c
	return nil
}

// RunOnce performs a single flush, dropping the call when a prior flush
// is still in flight.
func (a *Autosave) RunOnce() {
	if !a.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer a.inFlight.Store(false)

	if err := a.flush(a.ctx); err != nil {
		log.Printf("autosave: flush failed, will retry next tick: %v", err)
	}
}

// Stop tears the timer down. Safe to call on a never-started scheduler.
func (a *Autosave) Stop() {
	if a.sched != nil {
		a.sched.Stop()
		a.sched = nil
	}
}
