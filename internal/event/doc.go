// Package event provides the extension's in-process publish/subscribe
// hub.
//
// The hub is a dispatch table keyed by event type. Types form a closed
// catalog (see the events subpackage); matching is exact, and handlers
// for one type run in registration order. Each subscribe call returns a
// Subscription: an idempotent disposal capability that removes exactly
// its own registration.
//
// # Delivery modes
//
// Every subscription picks its delivery mode explicitly:
//
//   - DeliveryImmediate (default): the handler runs inline during Emit,
//     before control returns to the emitter.
//   - DeliveryDeferred: the handler is posted to the scheduler loop and
//     runs on a later turn. Deferred handlers from one emission keep
//     their registration order relative to each other, but interleave
//     with whatever else the loop is running.
//
// # Teardown
//
// The host may deactivate and reactivate the extension many times per
// process. Close tears a hub down: all registrations are cancelled and
// every later Subscribe or Emit is a well-defined no-op, so stale
// references held by collaborators cannot fault or leak. The lifecycle
// controller builds a replacement hub on the next activation.
//
// # Handler faults
//
// A handler that returns an error or panics is isolated: the fault is
// logged, counted, and the emission continues with the remaining
// handlers in order.
package event
