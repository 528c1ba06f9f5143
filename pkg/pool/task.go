// Package pool provides a fixed-size worker pool with future-style results
package pool

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/simonakesson/threadpool/pkg/types"
)

// taskIDCounter is the global task ID counter
var taskIDCounter int64

func nextTaskID() string {
	id := atomic.AddInt64(&taskIDCounter, 1)
	return fmt.Sprintf("task-%d", id)
}

// task is the type-erased unit of work stored in the queue. The run closure
// executes the caller's function, delivers the outcome to the task's handle,
// and returns the task error for pool-level accounting. A task is dequeued by
// exactly one worker and invoked exactly once.
type task struct {
	id  string
	run func() error
}

func (t *task) invoke() error {
	return t.run()
}

// Submit wraps fn into a task, enqueues it, wakes one worker, and returns a
// handle that the executing worker fulfills exactly once. The call never
// blocks on task execution. After Shutdown it fails with types.ErrPoolClosed.
func Submit[T any](p *Pool, fn func() (T, error)) (*Handle[T], error) {
	if fn == nil {
		return nil, types.ErrNilTask
	}

	id := nextTaskID()
	h := newHandle[T](id)

	t := &task{
		id: id,
		run: func() error {
			start := p.clock().Now()
			value, err := execute(id, fn)
			h.fulfill(value, err, p.clock().Since(start))
			return err
		},
	}

	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return h, nil
}

// SubmitFunc submits a task with no result value. The returned handle still
// conveys the task's error and completion.
func (p *Pool) SubmitFunc(fn func() error) (*Handle[struct{}], error) {
	if fn == nil {
		return nil, types.ErrNilTask
	}
	return Submit(p, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// execute runs fn with panic recovery support
func execute[T any](id string, fn func() (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			// record panic information
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)

			var cause error
			switch v := r.(type) {
			case error:
				cause = fmt.Errorf("panic: %w", v)
			case string:
				cause = fmt.Errorf("panic: %s", v)
			default:
				cause = fmt.Errorf("panic: %v", v)
			}

			err = types.NewTaskError(id, cause).
				WithContext("stack_trace", string(buf[:n]))
		}
	}()

	return fn()
}
