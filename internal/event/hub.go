package event

import (
	"context"
	"runtime/debug"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mstanton/iconhub/internal/sched"
)

// Hub is the extension's publish/subscribe dispatch table. It owns no
// business data; it maps event types to ordered handler registrations
// and dispatches emissions to them.
//
// A hub can be torn down with Close, after which Subscribe hands out
// no-op handles and Emit does nothing. The lifecycle controller builds a
// fresh hub per activation; the scheduler loop is shared across all of
// them.
type Hub struct {
	registry *Registry
	loop     *sched.Loop
	log      zerolog.Logger

	closed atomic.Bool

	emitted   atomic.Uint64
	delivered atomic.Uint64
	faults    atomic.Uint64
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger used for handler faults.
func WithLogger(log zerolog.Logger) Option {
	return func(h *Hub) {
		h.log = log
	}
}

// New creates a Hub whose deferred handlers run on loop. The loop must
// be started and must outlive the hub.
func New(loop *sched.Loop, opts ...Option) *Hub {
	h := &Hub{
		registry: NewRegistry(),
		loop:     loop,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers handler for events of type t and returns the
// registration's disposal capability. On a closed hub the returned
// handle is an immediate no-op. A nil handler registers nothing.
func (h *Hub) Subscribe(t Type, handler Handler, opts ...SubscriptionOption) Subscription {
	if h.closed.Load() || handler == nil {
		return noopSubscription{typ: t}
	}

	sub := newSubscription(h, t, handler, opts...)
	h.registry.Add(sub)

	// Close may have raced the Add; a closed hub must not retain
	// registrations.
	if h.closed.Load() {
		sub.Cancel()
		return noopSubscription{typ: t}
	}
	return sub
}

// SubscribeFunc registers a plain function as a handler.
func (h *Hub) SubscribeFunc(t Type, fn HandlerFunc, opts ...SubscriptionOption) Subscription {
	if fn == nil {
		return noopSubscription{typ: t}
	}
	return h.Subscribe(t, fn, opts...)
}

// On registers a handler for the concrete payload type T. Emissions
// whose payload is not a T are skipped silently.
func On[T any](h *Hub, t Type, fn func(ctx context.Context, payload T) error, opts ...SubscriptionOption) Subscription {
	return h.SubscribeFunc(t, func(ctx context.Context, payload any) error {
		v, ok := payload.(T)
		if !ok {
			return nil
		}
		return fn(ctx, v)
	}, opts...)
}

// Emit dispatches payload to every handler registered for t at the time
// of the call. Immediate handlers run inline in registration order;
// deferred handlers are posted to the scheduler loop in that same order.
// Emitting a type with no registrations, or on a closed hub, is a no-op.
func (h *Hub) Emit(ctx context.Context, t Type, payload any) {
	if h.closed.Load() {
		return
	}
	h.emitted.Add(1)

	// Immediate handlers run inline first; deferred handlers are only
	// posted once the inline pass is complete, so nothing deferred can
	// start before the rest of this emission has run.
	var deferred []*subscription
	for _, sub := range h.registry.Snapshot(t) {
		if sub.config.Delivery == DeliveryDeferred {
			deferred = append(deferred, sub)
			continue
		}
		h.deliver(ctx, sub, payload)
	}

	for _, sub := range deferred {
		sub := sub
		if err := h.loop.Post(func() { h.deliver(ctx, sub, payload) }); err != nil {
			h.faults.Add(1)
			h.log.Warn().Err(err).Str("type", t.String()).Msg("deferred handler dropped")
		}
	}
}

// Close tears the hub down: every registration is cancelled, the table
// is cleared, and all further Subscribe/Emit calls become no-ops.
// Deferred handlers still queued on the loop observe the cancellation
// and do not run.
func (h *Hub) Close() {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}
	for _, sub := range h.registry.All() {
		sub.Cancel()
	}
	h.registry.Clear()
}

// Closed reports whether the hub has been torn down.
func (h *Hub) Closed() bool {
	return h.closed.Load()
}

// Stats returns hub counters.
func (h *Hub) Stats() Stats {
	return Stats{
		Emitted:             h.emitted.Load(),
		Delivered:           h.delivered.Load(),
		Faults:              h.faults.Load(),
		ActiveSubscriptions: h.registry.Count(),
	}
}

// deliver invokes one handler with fault isolation: a panicking or
// erroring handler is logged and the emission continues. Cancelled
// subscriptions (including everything cancelled by Close) are skipped,
// which is what makes disposal synchronous and final even for handlers
// already queued on the loop.
func (h *Hub) deliver(ctx context.Context, sub *subscription, payload any) {
	if sub.config.Once {
		if !sub.consume() {
			return
		}
	} else if !sub.IsActive() {
		return
	}

	h.delivered.Add(1)

	defer func() {
		if r := recover(); r != nil {
			h.faults.Add(1)
			perr := &PanicError{
				SubscriptionID: sub.id,
				Type:           sub.typ,
				Value:          r,
				Stack:          debug.Stack(),
			}
			h.log.Error().Err(perr).Str("type", sub.typ.String()).Msg("handler panicked")
		}
	}()

	if err := sub.handler.Handle(ctx, payload); err != nil {
		h.faults.Add(1)
		herr := &HandlerError{SubscriptionID: sub.id, Type: sub.typ, Err: err}
		h.log.Warn().Err(herr).Str("type", sub.typ.String()).Msg("handler failed")
	}
}
