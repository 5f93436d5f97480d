package event

import "sync"

// Registry holds subscriptions grouped by event type, preserving
// registration order within each type. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	subs map[Type][]*subscription
	byID map[string]*subscription
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[Type][]*subscription),
		byID: make(map[string]*subscription),
	}
}

// Add appends a subscription to its type's registration list.
func (r *Registry) Add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs[sub.typ] = append(r.subs[sub.typ], sub)
	r.byID[sub.id] = sub
}

// Remove removes a subscription by ID. Unknown IDs are ignored.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byID[id]
	if !ok {
		return false
	}

	list := r.subs[sub.typ]
	for i, s := range list {
		if s.id == id {
			r.subs[sub.typ] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(r.subs[sub.typ]) == 0 {
		delete(r.subs, sub.typ)
	}
	delete(r.byID, id)
	return true
}

// Snapshot returns a copy of the registration list for t, in
// registration order. Emit iterates the copy, so handlers registered
// mid-dispatch are not seen by the in-progress emission.
func (r *Registry) Snapshot(t Type) []*subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.subs[t]
	if len(list) == 0 {
		return nil
	}
	out := make([]*subscription, len(list))
	copy(out, list)
	return out
}

// All returns every registered subscription.
func (r *Registry) All() []*subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.byID) == 0 {
		return nil
	}
	out := make([]*subscription, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out
}

// Count returns the total number of registrations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// CountByType returns the number of registrations for t.
func (r *Registry) CountByType(t Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[t])
}

// Clear removes every registration.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = make(map[Type][]*subscription)
	r.byID = make(map[string]*subscription)
}
