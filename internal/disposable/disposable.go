package disposable

import "sync"

// Disposable releases a previously acquired resource or registration.
// Implementations must make Dispose safe to call more than once.
type Disposable interface {
	Dispose()
}

// disposable wraps a cleanup function so it runs at most once.
type disposable struct {
	once sync.Once
	fn   func()
}

// New returns a Disposable that invokes fn on the first Dispose call.
// Subsequent calls are no-ops. A nil fn yields a no-op Disposable.
func New(fn func()) Disposable {
	return &disposable{fn: fn}
}

// Dispose runs the wrapped cleanup function exactly once.
func (d *disposable) Dispose() {
	d.once.Do(func() {
		if d.fn != nil {
			d.fn()
		}
	})
}

// Nop returns a Disposable whose Dispose does nothing.
// Used for registrations against an already torn-down owner.
func Nop() Disposable {
	return nop{}
}

type nop struct{}

func (nop) Dispose() {}
