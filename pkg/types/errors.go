// Package types defines error types
package types

import (
	"errors"
	"fmt"
)

// Predefined errors
var (
	// ErrPoolClosed indicates the pool has been shut down
	ErrPoolClosed = errors.New("pool is closed")

	// ErrNilTask indicates a nil task was submitted
	ErrNilTask = errors.New("task cannot be nil")

	// ErrResultPending indicates the task outcome has not been written yet
	ErrResultPending = errors.New("result not ready")
)

// TaskError represents a failure of a single submitted task
type TaskError struct {
	// TaskID is the identifier of the task that failed
	TaskID string

	// Cause is the underlying error
	Cause error

	// Context contains error context information
	Context map[string]interface{}
}

// Error implements the error interface
func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s failed: %v", e.TaskID, e.Cause)
}

// Unwrap returns the underlying error
func (e *TaskError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is a specific error
func (e *TaskError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

// NewTaskError creates a new task error
func NewTaskError(taskID string, cause error) *TaskError {
	return &TaskError{
		TaskID:  taskID,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds error context
func (e *TaskError) WithContext(key string, value interface{}) *TaskError {
	e.Context[key] = value
	return e
}

// ErrorHandler defines an error handling function invoked when a task fails.
// The handler receives the task's error; a non-nil return value is ignored by
// the pool (the failure has already been delivered to the task's handle).
type ErrorHandler func(error) error
