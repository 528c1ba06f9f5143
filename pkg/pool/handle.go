package pool

import (
	"context"
	"time"

	"github.com/simonakesson/threadpool/pkg/types"
)

// Handle is a one-shot container for a task's eventual outcome. The submitter
// receives it immediately at submission time; the single worker that executes
// the task writes it exactly once. After the write, any number of readers may
// observe the result.
type Handle[T any] struct {
	id     string
	done   chan struct{}
	result types.Result[T]
}

func newHandle[T any](id string) *Handle[T] {
	return &Handle[T]{
		id:   id,
		done: make(chan struct{}),
	}
}

// fulfill delivers the outcome. Only the executing worker calls this, and
// only once; the result fields must be set before the latch is closed.
func (h *Handle[T]) fulfill(value T, err error, duration time.Duration) {
	h.result = types.Result[T]{
		Value:    value,
		Error:    err,
		Duration: duration,
	}
	close(h.done)
}

// ID returns the task ID associated with this handle
func (h *Handle[T]) ID() string {
	return h.id
}

// Get blocks until the task has concluded, then returns its value and error
func (h *Handle[T]) Get() (T, error) {
	<-h.done
	return h.result.Value, h.result.Error
}

// GetContext behaves like Get but gives up when ctx is done, returning the
// context's error. The task itself is unaffected and still runs to completion.
func (h *Handle[T]) GetContext(ctx context.Context) (T, error) {
	select {
	case <-h.done:
		return h.result.Value, h.result.Error
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed once the outcome has been written
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Poll returns the result without blocking. It fails with
// types.ErrResultPending while the task has not concluded.
func (h *Handle[T]) Poll() (types.Result[T], error) {
	select {
	case <-h.done:
		return h.result, nil
	default:
		return types.Result[T]{}, types.ErrResultPending
	}
}

// Result blocks until the task has concluded and returns the full result,
// including the measured execution duration
func (h *Handle[T]) Result() types.Result[T] {
	<-h.done
	return h.result
}
