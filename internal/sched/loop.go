package sched

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Sentinel errors for the scheduler loop.
var (
	// ErrLoopStopped is returned when posting to a loop that is not running.
	ErrLoopStopped = errors.New("scheduler loop is not running")

	// ErrAlreadyRunning is returned when Start is called on a running loop.
	ErrAlreadyRunning = errors.New("scheduler loop is already running")

	// ErrQueueFull is returned when the task queue cannot accept more work.
	ErrQueueFull = errors.New("scheduler queue is full")

	// ErrNilTask is returned when a nil task is posted.
	ErrNilTask = errors.New("task cannot be nil")
)

// PanicHandler is called when a posted task panics.
type PanicHandler func(recovered any, stack []byte)

// Loop is a serial task queue drained by a single goroutine. It stands in
// for the host's cooperative scheduler: work posted during one turn runs
// on a later turn, in post order. A single worker is what preserves the
// relative order of deferred handlers from the same emission.
type Loop struct {
	queueSize    int
	panicHandler PanicHandler

	mu      sync.RWMutex // guards queue creation/close
	queue   chan func()
	running atomic.Bool
	wg      sync.WaitGroup

	posted   atomic.Uint64
	executed atomic.Uint64
	dropped  atomic.Uint64
	panicked atomic.Uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the task queue capacity.
func WithQueueSize(size int) Option {
	return func(l *Loop) {
		if size > 0 {
			l.queueSize = size
		}
	}
}

// WithPanicHandler sets the handler invoked when a task panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(l *Loop) {
		if h != nil {
			l.panicHandler = h
		}
	}
}

// New creates a stopped Loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		queueSize:    1024,
		panicHandler: func(any, []byte) {},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start launches the worker goroutine.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running.Load() {
		return ErrAlreadyRunning
	}

	l.queue = make(chan func(), l.queueSize)
	l.running.Store(true)
	l.wg.Add(1)
	go l.worker(l.queue)
	return nil
}

// Stop closes the queue and waits for queued tasks to finish, or until
// the context is cancelled.
func (l *Loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	if !l.running.Load() {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	l.running.Store(false)
	close(l.queue)
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning reports whether the loop is accepting tasks.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Post schedules fn to run on a later turn of the loop.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return ErrNilTask
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.running.Load() {
		return ErrLoopStopped
	}

	select {
	case l.queue <- fn:
		l.posted.Add(1)
		return nil
	default:
		l.dropped.Add(1)
		return ErrQueueFull
	}
}

// Flush blocks until every task posted before the call has executed, or
// until the context is cancelled. It works by posting a barrier task and
// waiting for it to drain through the queue.
func (l *Loop) Flush(ctx context.Context) error {
	barrier := make(chan struct{})
	if err := l.Post(func() { close(barrier) }); err != nil {
		return err
	}

	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Posted:   l.posted.Load(),
		Executed: l.executed.Load(),
		Dropped:  l.dropped.Load(),
		Panicked: l.panicked.Load(),
	}
}

// Stats contains counters for a Loop.
type Stats struct {
	// Posted is the number of tasks accepted by Post.
	Posted uint64

	// Executed is the number of tasks that have run.
	Executed uint64

	// Dropped is the number of tasks rejected because the queue was full.
	Dropped uint64

	// Panicked is the number of tasks that panicked.
	Panicked uint64
}

// worker drains the queue until it is closed.
func (l *Loop) worker(queue chan func()) {
	defer l.wg.Done()
	for fn := range queue {
		l.run(fn)
	}
}

// run executes one task with panic isolation.
func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.panicked.Add(1)
			stack := debug.Stack()
			func() {
				defer func() { _ = recover() }()
				l.panicHandler(r, stack)
			}()
		}
	}()
	fn()
	l.executed.Add(1)
}
