// Package types defines core types shared across the thread pool library
package types

import (
	"time"
)

// Result defines the outcome of an asynchronously executed task
type Result[R any] struct {
	// Value is the execution result
	Value R

	// Error is the execution error
	Error error

	// Duration is the execution time
	Duration time.Duration
}

// Failed reports whether the task concluded with an error
func (r Result[R]) Failed() bool {
	return r.Error != nil
}

// PoolStats defines basic statistics for a pool
type PoolStats struct {
	// PoolSize is the number of workers in the pool
	PoolSize int

	// IdleWorkers is the number of workers currently waiting for work
	IdleWorkers int

	// QueueLength is the current number of queued tasks
	QueueLength int

	// Submitted is the total number of tasks accepted by the pool
	Submitted int64

	// Completed is the total number of tasks that finished successfully
	Completed int64

	// Failed is the total number of tasks that finished with an error
	Failed int64
}

// Pending returns the number of tasks submitted but not yet concluded
func (s PoolStats) Pending() int64 {
	return s.Submitted - s.Completed - s.Failed
}
