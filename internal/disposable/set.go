package disposable

import "sync"

// Set is a composite owner of zero or more Disposables: subscriptions,
// child sets, cleanup callbacks. Disposing the set disposes every member
// exactly once and clears the membership.
//
// A disposed set stays disposed: adding to it disposes the value
// immediately rather than retaining it.
type Set struct {
	mu       sync.Mutex
	disposed bool
	members  map[Disposable]struct{}
}

// NewSet creates a Set owning the given members.
func NewSet(members ...Disposable) *Set {
	s := &Set{members: make(map[Disposable]struct{}, len(members))}
	for _, d := range members {
		if d != nil {
			s.members[d] = struct{}{}
		}
	}
	return s
}

// Add places d under the set's ownership. Adding to an already disposed
// set disposes d immediately. Adding nil is a no-op.
func (s *Set) Add(d Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		d.Dispose()
		return
	}
	s.members[d] = struct{}{}
	s.mu.Unlock()
}

// Remove detaches d from the set without disposing it. Used to release a
// satisfied waiter's scope from its parent. Unknown members are ignored.
func (s *Set) Remove(d Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	delete(s.members, d)
	s.mu.Unlock()
}

// Len reports the current number of members.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

// Disposed reports whether the set has been disposed.
func (s *Set) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Dispose disposes every member exactly once and clears the membership.
// Members are disposed outside the set's lock so a member's cleanup may
// itself call back into the set (a waiter detaching its own scope).
func (s *Set) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	members := make([]Disposable, 0, len(s.members))
	for d := range s.members {
		members = append(members, d)
	}
	s.members = make(map[Disposable]struct{})
	s.mu.Unlock()

	for _, d := range members {
		d.Dispose()
	}
}
