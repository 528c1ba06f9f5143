package testutils

import (
	"testing"
	"time"
)

// WaitClosed waits for ch to be closed within timeout, failing the test
// otherwise. Used to assert that a blocking pool operation completed.
func WaitClosed(t *testing.T, ch <-chan struct{}, timeout time.Duration, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal(msg)
	}
}

// Go runs fn in a goroutine and returns a channel closed when fn returns
func Go(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return done
}
