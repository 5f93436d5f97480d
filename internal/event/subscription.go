package event

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription is the disposal capability returned by a subscribe call.
// Cancelling removes exactly this registration; cancelling twice, or
// cancelling a handle whose hub was already torn down, is a no-op.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Type returns the subscribed event type.
	Type() Type

	// IsActive reports whether the subscription can still receive events.
	IsActive() bool

	// Cancel permanently removes the registration.
	Cancel()

	// Dispose is an alias for Cancel, satisfying the composite disposal
	// tracking in the disposable package.
	Dispose()
}

// SubscriptionConfig contains configuration for a subscription.
type SubscriptionConfig struct {
	// Delivery selects immediate or deferred handler invocation.
	Delivery Delivery

	// Once auto-cancels the subscription after its first delivery.
	Once bool
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithDelivery sets the delivery mode.
func WithDelivery(d Delivery) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Delivery = d
	}
}

// WithOnce auto-cancels the subscription after the first delivery.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

// Subscription states.
const (
	stateActive int32 = iota
	stateCancelled
)

// subscription is the internal implementation of Subscription.
type subscription struct {
	id      string
	typ     Type
	handler Handler
	config  SubscriptionConfig
	state   atomic.Int32
	hub     *Hub
}

// newSubscription creates an active subscription bound to hub.
func newSubscription(hub *Hub, t Type, h Handler, opts ...SubscriptionOption) *subscription {
	var config SubscriptionConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &subscription{
		id:      uuid.NewString(),
		typ:     t,
		handler: h,
		config:  config,
		hub:     hub,
	}
}

// ID returns the subscription ID.
func (s *subscription) ID() string {
	return s.id
}

// Type returns the subscribed event type.
func (s *subscription) Type() Type {
	return s.typ
}

// IsActive reports whether the subscription is still registered.
func (s *subscription) IsActive() bool {
	return s.state.Load() == stateActive
}

// Cancel removes the registration. Idempotent.
func (s *subscription) Cancel() {
	if s.state.CompareAndSwap(stateActive, stateCancelled) {
		s.hub.registry.Remove(s.id)
	}
}

// Dispose implements disposable.Disposable.
func (s *subscription) Dispose() {
	s.Cancel()
}

// consume transitions active -> cancelled for a once subscription,
// returning true only for the single winning delivery.
func (s *subscription) consume() bool {
	if !s.state.CompareAndSwap(stateActive, stateCancelled) {
		return false
	}
	s.hub.registry.Remove(s.id)
	return true
}

// noopSubscription is handed out by a torn-down hub.
type noopSubscription struct {
	typ Type
}

func (n noopSubscription) ID() string     { return "" }
func (n noopSubscription) Type() Type     { return n.typ }
func (n noopSubscription) IsActive() bool { return false }
func (n noopSubscription) Cancel()        {}
func (n noopSubscription) Dispose()       {}
