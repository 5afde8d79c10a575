package sprig

import "sync"

// TaskQueue hands work from other goroutines to the engine's loop. Enqueue may
// be called from any goroutine; Drain runs on the loop.
type TaskQueue struct {
	mu    sync.Mutex
	tasks []func()
	spare []func()
}

// Enqueue schedules fn to run on the next Drain.
func (q *TaskQueue) Enqueue(fn func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

// Drain runs every queued task in order. Tasks enqueued while draining run on
// the next call.
func (q *TaskQueue) Drain() {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = q.spare[:0]
	q.mu.Unlock()

	for i, fn := range tasks {
		fn()
		tasks[i] = nil
	}

	q.mu.Lock()
	q.spare = tasks[:0]
	q.mu.Unlock()
}
