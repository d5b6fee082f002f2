package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"hackpage/internal/service"
)

func TestAutosave_RunOnceFlushes(t *testing.T) {
	var calls atomic.Int32
	a := service.NewAutosave(context.Background(), time.Minute, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	a.RunOnce()
	a.RunOnce()
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 flushes, got %d", got)
	}
}

// A tick that arrives while a flush is still running is dropped, not queued.
func TestAutosave_OverlappingTickDropped(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	// Only the first flush blocks; later flushes return immediately.
	a := service.NewAutosave(context.Background(), time.Minute, func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return nil
	})

	done := make(chan struct{})
	go func() {
		a.RunOnce()
		close(done)
	}()
	<-started

	a.RunOnce() // overlaps, must be dropped
	close(release)
	<-done

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected overlapping tick to be dropped, got %d flushes", got)
	}

	a.RunOnce() // in-flight flag released, flushes again
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected flush after release, got %d", got)
	}
}

// Flush failures are logged and swallowed so the next tick retries.
func TestAutosave_FlushFailureIsSilent(t *testing.T) {
	var calls atomic.Int32
	a := service.NewAutosave(context.Background(), time.Minute, func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("disk full")
	})

	a.RunOnce()
	a.RunOnce()
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected retries despite failures, got %d", got)
	}
}

func TestAutosave_StartStop(t *testing.T) {
	var calls atomic.Int32
	a := service.NewAutosave(context.Background(), 10*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected at least one scheduled flush")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	a.Stop()
	a.Stop() // idempotent
}

func TestAutosave_StopWithoutStart(t *testing.T) {
	a := service.NewAutosave(context.Background(), time.Minute, func(ctx context.Context) error { return nil })
	a.Stop() // must not panic
}
