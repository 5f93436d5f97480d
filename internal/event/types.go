package event

import "context"

// Type is a dot-notation event type. The full catalog is the closed set
// of constants in the events subpackage; the hub matches types exactly,
// with no wildcarding.
type Type string

// String returns the type as a string.
func (t Type) String() string {
	return string(t)
}

// Delivery specifies how a subscription's handler is invoked.
type Delivery int

const (
	// DeliveryImmediate executes the handler inline during Emit, in
	// registration order.
	DeliveryImmediate Delivery = iota

	// DeliveryDeferred posts the handler to the scheduler loop, so it
	// runs on a later turn, after the triggering Emit has returned.
	DeliveryDeferred
)

// String returns a human-readable delivery mode name.
func (d Delivery) String() string {
	switch d {
	case DeliveryImmediate:
		return "immediate"
	case DeliveryDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event. The payload is type-erased; handlers
	// type-assert against the catalog's payload structs.
	Handle(ctx context.Context, payload any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, payload any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, payload any) error {
	return f(ctx, payload)
}

// Stats contains hub counters.
type Stats struct {
	// Emitted is the total number of Emit calls on a live hub.
	Emitted uint64

	// Delivered is the total number of handler invocations.
	Delivered uint64

	// Faults is the number of handler invocations that returned an
	// error or panicked.
	Faults uint64

	// ActiveSubscriptions is the current number of live registrations.
	ActiveSubscriptions int
}
