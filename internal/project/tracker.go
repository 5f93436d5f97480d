package project

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mstanton/iconhub/internal/event"
	"github.com/mstanton/iconhub/internal/event/events"
)

// Publisher is the slice of the hub the tracker needs. The lifecycle
// controller implements it by delegating to whichever hub is currently
// live, so the tracker's baseline survives hub rebuilds.
type Publisher interface {
	Emit(ctx context.Context, t event.Type, payload any)
}

// Tracker coalesces host reports of the open project roots. The host
// re-reports the full sequence on every change; the tracker compares
// each report against its baseline by exact ordered equality (same
// length, same paths, same order) and only publishes when they differ.
type Tracker struct {
	mu       sync.Mutex
	pub      Publisher
	baseline []string
	log      zerolog.Logger
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the tracker's logger.
func WithLogger(log zerolog.Logger) TrackerOption {
	return func(t *Tracker) {
		t.log = log
	}
}

// NewTracker creates a Tracker with an empty baseline.
func NewTracker(pub Publisher, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		pub: pub,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetRoots records roots as the new baseline and publishes the change.
// An ordered-equal report publishes nothing. On change, exactly one of
// RootsAvailable (non-empty) or RootsEmptied (empty) is published, then
// RootsChanged carrying both sequences. Comparison and publication
// happen under the tracker's lock, as one step.
func (t *Tracker) SetRoots(ctx context.Context, roots []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if slices.Equal(t.baseline, roots) {
		return
	}

	from := t.baseline
	to := slices.Clone(roots)
	t.baseline = to

	t.log.Debug().Strs("from", from).Strs("to", to).Msg("project roots changed")

	if len(to) > 0 {
		t.pub.Emit(ctx, events.TypeRootsAvailable, events.RootsAvailable{})
	} else {
		t.pub.Emit(ctx, events.TypeRootsEmptied, events.RootsEmptied{})
	}
	t.pub.Emit(ctx, events.TypeRootsChanged, events.RootsChanged{From: from, To: to})
}

// Roots returns the current baseline sequence.
func (t *Tracker) Roots() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.baseline)
}
