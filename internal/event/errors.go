package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hub.
var (
	// ErrHandlerPanic marks a fault caused by a panicking handler.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a subscriber's handler with
// the context needed to log it usefully.
type HandlerError struct {
	// SubscriptionID is the ID of the subscription whose handler failed.
	SubscriptionID string

	// Type is the event type the handler was subscribed to.
	Type Type

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler error for subscription %s on %s: %v", e.SubscriptionID, e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic value recovered from a handler.
type PanicError struct {
	// SubscriptionID is the ID of the subscription whose handler panicked.
	SubscriptionID string

	// Type is the event type the handler was subscribed to.
	Type Type

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic for subscription %s on %s: %v", e.SubscriptionID, e.Type, e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
