package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestForEachProcessesAllIndexes(t *testing.T) {
	var sum int32

	err := ForEach(context.Background(), 3, 5, func(_ context.Context, i int) error {
		atomic.AddInt32(&sum, int32(i))
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}
	if sum != 10 { // 0+1+2+3+4
		t.Fatalf("expected index sum 10, got %d", sum)
	}
}

func TestForEachErrorStopsWork(t *testing.T) {
	var processed int32

	err := ForEach(context.Background(), 2, 100, func(_ context.Context, i int) error {
		if i == 3 {
			return errors.New("boom")
		}
		atomic.AddInt32(&processed, 1)
		return nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if processed == 100 {
		t.Fatal("expected processing to stop early")
	}
}

func TestForEachCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ForEach(ctx, 2, 3, func(context.Context, int) error {
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestForEachOrderedResultsByIndex(t *testing.T) {
	results := make([]int, 8)
	var mu sync.Mutex

	err := ForEach(context.Background(), 4, len(results), func(_ context.Context, i int) error {
		mu.Lock()
		defer mu.Unlock()
		results[i] = i * i
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}
	for i, v := range results {
		if v != i*i {
			t.Fatalf("slot %d holds %d, want %d", i, v, i*i)
		}
	}
}

func TestForEachZeroItems(t *testing.T) {
	called := false
	err := ForEach(context.Background(), 2, 0, func(context.Context, int) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}
	if called {
		t.Fatal("fn must not run for zero items")
	}
}
