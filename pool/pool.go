// ABOUTME: Simple worker pool for parallelizing batch tasks
// ABOUTME: Provides submit-and-wait pattern used for concurrent catalog lookups

package pool

import "sync"

// WorkerPool manages a pool of worker goroutines for parallel task execution.
// Lookups are I/O bound, so the worker count is an explicit knob rather than
// being tied to CPU count.
type WorkerPool struct {
	taskChan chan func()
	workerWg sync.WaitGroup // tracks worker goroutines lifetime
	taskWg   sync.WaitGroup // tracks submitted tasks completion
}

// NewWorkerPool creates a pool with the given number of workers.
// The bufferSize determines the task channel capacity.
func NewWorkerPool(workers, bufferSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}

	pool := &WorkerPool{
		taskChan: make(chan func(), bufferSize),
	}

	// Start worker goroutines
	for i := 0; i < workers; i++ {
		pool.workerWg.Add(1)

		go func() {
			defer pool.workerWg.Done()

			for task := range pool.taskChan {
				task()
				pool.taskWg.Done() // Mark task as complete
			}
		}()
	}

	return pool
}

// Submit adds a task to the pool
// Blocks if the task channel is full
func (p *WorkerPool) Submit(task func()) {
	p.taskWg.Add(1)
	p.taskChan <- task
}

// Wait blocks until all submitted tasks have completed
func (p *WorkerPool) Wait() {
	p.taskWg.Wait()
}

// Close shuts down the worker pool and waits for all workers to exit
func (p *WorkerPool) Close() {
	close(p.taskChan)
	p.workerWg.Wait()
}
