/*
Package pool implements a fixed-size worker pool with future-style result
handles and a blocking drain barrier.

# Overview

A Pool owns a FIFO queue of pending tasks and a fixed set of worker
goroutines spawned at construction time. Submitters enqueue tasks and receive
a Handle immediately; workers dequeue and execute tasks one at a time, each
task running on exactly one worker exactly once. The pool supports:

  - Non-blocking submission with a typed result handle per task
  - A drain barrier (Wait) that blocks until the queue is empty and every
    worker is idle
  - Graceful shutdown: queued tasks still execute, then workers terminate
  - Panic recovery: a panicking task fails its own handle, never its worker
  - Basic statistics (idle workers, queue length, completion counters)

# Synchronization protocol

All shared state - the queue, the idle counter, and the stop flag - is guarded
by a single mutex with two condition variables: one signals "task available or
shutting down" to parked workers, the other signals "possibly drained" to
Wait callers. Task execution happens with the lock released, so a
long-running task never blocks other workers from dequeuing. Each worker
re-signals task availability after dequeuing, so a burst of submissions wakes
as many workers as there are tasks.

The drain predicate (empty queue, all live workers idle) is always re-checked
on wake: the idle count can transiently equal the worker count while a task
is mid-dispatch.

# Usage

	p, err := pool.New(&pool.Config{Workers: 4})
	if err != nil {
		log.Fatal(err)
	}
	defer p.Shutdown()

	h, err := pool.Submit(p, func() (int, error) {
		return compute(), nil
	})
	if err != nil {
		log.Fatal(err)
	}

	v, err := h.Get() // blocks until the worker has run the task

	p.Wait() // blocks until all submitted tasks have concluded

# Limitations

Once submitted, a task cannot be cancelled; Get and Wait have no timeout
variants (GetContext offers a context-aware read that abandons the wait, not
the task). The queue is unbounded: submission never applies backpressure.

If a task blocks waiting on the handle of another task submitted to the same
pool, and no free worker remains to run that other task, the pool starves
permanently. This is inherent to fixed-size pools with intra-pool
dependencies; do not create dependencies between tasks sharing a pool unless
the pool is provably large enough.
*/
package pool
