package slotstore

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFutureResolved(t *testing.T) {
	f := Resolved(42)

	select {
	case <-f.Done():
	default:
		t.Fatal("Resolved future must be done")
	}

	got, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestFutureFailed(t *testing.T) {
	boom := errors.New("boom")
	f := Failed[int](boom)

	_, err := f.Await(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected failure, got %v", err)
	}
}

func TestFutureCompleteOnce(t *testing.T) {
	f := NewFuture[int]()
	f.Complete(1)
	f.Complete(2)
	f.Fail(errors.New("late"))

	got, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("first resolution must win, got %d", got)
	}
}

func TestFutureAwaitCanceled(t *testing.T) {
	f := NewFuture[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}

	// Late completion is still observable by other waiters.
	f.Complete(7)
	got, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestExecutorFallsBackToGoroutine(t *testing.T) {
	done := make(chan struct{})
	executor{}.run(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("continuation never ran")
	}
}
