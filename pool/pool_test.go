// ABOUTME: Tests for the worker pool
// ABOUTME: Verifies task completion, wait semantics and single-worker fallback

package pool

import (
	"sync/atomic"
	"testing"
)

// TestWorkerPoolRunsAllTasks verifies every submitted task completes
func TestWorkerPoolRunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4, 16)
	defer pool.Close()

	var count atomic.Int64

	for i := 0; i < 100; i++ {
		pool.Submit(func() {
			count.Add(1)
		})
	}

	pool.Wait()

	if got := count.Load(); got != 100 {
		t.Errorf("expected 100 completed tasks, got %d", got)
	}
}

// TestWorkerPoolMinimumWorkers verifies a non-positive worker count still works
func TestWorkerPoolMinimumWorkers(t *testing.T) {
	pool := NewWorkerPool(0, 1)
	defer pool.Close()

	done := false

	pool.Submit(func() { done = true })
	pool.Wait()

	if !done {
		t.Error("task did not run with clamped worker count")
	}
}

// TestWorkerPoolReuse verifies the pool handles multiple submit/wait rounds
func TestWorkerPoolReuse(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	defer pool.Close()

	var count atomic.Int64

	for round := 0; round < 3; round++ {
		for j := 0; j < 10; j++ {
			pool.Submit(func() { count.Add(1) })
		}

		pool.Wait()
	}

	if got := count.Load(); got != 30 {
		t.Errorf("expected 30 completed tasks, got %d", got)
	}
}
