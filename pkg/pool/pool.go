package pool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/simonakesson/threadpool/pkg/types"
)

// Config defines configuration for the pool
type Config struct {
	// Workers is the number of worker goroutines
	Workers int

	// Clock for time operations (optional, defaults to real clock)
	Clock types.Clock

	// ErrorHandler is invoked whenever a task concludes with an error
	ErrorHandler types.ErrorHandler
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Clock:   types.NewRealClock(),
	}
}

// Pool is a fixed-size worker pool. Workers are spawned at construction time
// and live until Shutdown. All shared state (queue, idle counter, stop flag)
// is guarded by a single mutex; task execution happens with the lock released.
type Pool struct {
	config *Config

	mu       sync.Mutex
	taskCond *sync.Cond // task available, or shutdown in progress
	idleCond *sync.Cond // queue drained and every live worker idle
	queue    []*task
	idle     int // workers currently parked waiting for work
	live     int // workers that have not reached their terminal state
	stopping bool

	wg sync.WaitGroup

	// statistics
	submitted int64
	completed int64
	failed    int64
}

// New creates a pool and starts its workers. The call returns once all
// workers are spawned; they may not yet have entered their loop body.
func New(config *Config) (*Pool, error) {
	if config == nil {
		config = DefaultConfig()
	}

	// parameter validation
	if config.Workers <= 0 {
		return nil, fmt.Errorf("worker count must be positive, got %d", config.Workers)
	}

	// Ensure clock is set
	if config.Clock == nil {
		config.Clock = types.NewRealClock()
	}

	p := &Pool{
		config: config,
		live:   config.Workers,
	}
	p.taskCond = sync.NewCond(&p.mu)
	p.idleCond = sync.NewCond(&p.mu)

	p.wg.Add(config.Workers)
	for i := 0; i < config.Workers; i++ {
		go p.work()
	}

	return p, nil
}

// work is the worker loop. Each iteration parks until a task is queued or
// shutdown begins, then either exits (stopping and queue drained) or dequeues
// the head task and executes it with the lock released.
func (p *Pool) work() {
	defer p.wg.Done()

	for {
		p.mu.Lock()

		p.idle++
		if p.idle == p.live {
			// Possibly drained; waiters re-check the queue themselves.
			p.idleCond.Broadcast()
		}

		for len(p.queue) == 0 && !p.stopping {
			p.taskCond.Wait()
		}
		p.idle--

		if p.stopping && len(p.queue) == 0 {
			// Terminal state. Leaving the live set keeps the drain
			// predicate satisfiable for waiters racing a shutdown.
			p.live--
			if p.idle == p.live {
				p.idleCond.Broadcast()
			}
			p.mu.Unlock()
			return
		}

		t := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		p.mu.Unlock()

		// Re-check availability for the next idle worker; a single signal
		// at submission time is not enough when several tasks are queued.
		p.taskCond.Signal()

		p.run(t)
	}
}

// run executes a single dequeued task and updates pool statistics. The
// task's own outcome has already been delivered to its handle by the time
// invoke returns.
func (p *Pool) run(t *task) {
	if err := t.invoke(); err != nil {
		atomic.AddInt64(&p.failed, 1)
		if p.config.ErrorHandler != nil {
			_ = p.config.ErrorHandler(err)
		}
	} else {
		atomic.AddInt64(&p.completed, 1)
	}
}

// enqueue appends t to the queue and wakes one worker. Fails with
// ErrPoolClosed once shutdown has been initiated.
func (p *Pool) enqueue(t *task) error {
	p.mu.Lock()
	if p.stopping {
		p.mu.Unlock()
		return types.ErrPoolClosed
	}
	p.queue = append(p.queue, t)
	atomic.AddInt64(&p.submitted, 1)
	p.mu.Unlock()

	p.taskCond.Signal()
	return nil
}

// Wait blocks until the queue is empty and no worker is mid-execution.
// It does not stop the workers; further submissions are accepted afterwards.
// Multiple concurrent callers all unblock once the pool is drained.
func (p *Pool) Wait() {
	p.mu.Lock()
	for len(p.queue) != 0 || p.idle != p.live {
		p.idleCond.Wait()
	}
	p.mu.Unlock()
}

// Shutdown stops the pool gracefully: no further submissions are accepted,
// already queued tasks still execute, and the call returns once every worker
// has terminated. Calling Shutdown more than once is benign; each call waits
// for termination.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	p.stopping = true
	p.mu.Unlock()

	p.taskCond.Broadcast()
	p.wg.Wait()
}

// Size returns the number of workers the pool was built with
func (p *Pool) Size() int {
	return p.config.Workers
}

// QueueLength returns the current number of queued tasks
func (p *Pool) QueueLength() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// IsClosed reports whether shutdown has been initiated
func (p *Pool) IsClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopping
}

// Stats returns a snapshot of pool statistics
func (p *Pool) Stats() types.PoolStats {
	p.mu.Lock()
	idle := p.idle
	queued := len(p.queue)
	p.mu.Unlock()

	return types.PoolStats{
		PoolSize:    p.config.Workers,
		IdleWorkers: idle,
		QueueLength: queued,
		Submitted:   atomic.LoadInt64(&p.submitted),
		Completed:   atomic.LoadInt64(&p.completed),
		Failed:      atomic.LoadInt64(&p.failed),
	}
}

func (p *Pool) clock() types.Clock {
	return p.config.Clock
}
