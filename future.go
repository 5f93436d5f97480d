package iconhub

import "sync"

// Future is a one-shot promise of a value. It settles at most once,
// either by resolving with a value or by being abandoned when the thing
// it waits for can no longer happen (document destroyed, extension
// reset). Done unblocks on either outcome; Value distinguishes them.
type Future[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	value T
	ok    bool
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Done returns a channel closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Value returns the resolved value. ok is false while the future is
// pending and stays false if it was abandoned.
func (f *Future[T]) Value() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.ok
}

// resolve settles the future with v. Later settlements are no-ops.
func (f *Future[T]) resolve(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.done:
		return
	default:
	}
	f.value = v
	f.ok = true
	close(f.done)
}

// abandon settles the future without a value.
func (f *Future[T]) abandon() {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.done:
		return
	default:
	}
	close(f.done)
}
