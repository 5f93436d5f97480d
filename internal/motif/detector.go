package motif

import (
	"context"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/mstanton/iconhub/internal/event"
	"github.com/mstanton/iconhub/internal/event/events"
)

// Publisher is the slice of the hub the detector needs.
type Publisher interface {
	Emit(ctx context.Context, t event.Type, payload any)
}

// Sampler provides the active theme's background color as a hex string.
// ok is false when no sample is available.
type Sampler func() (color string, ok bool)

// Override forces the brightness classification instead of sampling.
type Override int

const (
	// OverrideAuto derives the flag from the theme sample.
	OverrideAuto Override = iota

	// OverrideLight forces a light classification.
	OverrideLight

	// OverrideDark forces a dark classification.
	OverrideDark
)

// Detector derives a dark/light flag from the active theme and publishes
// motif.changed on transitions only. Repeated identical readings never
// re-publish, and an unreadable sample changes nothing.
type Detector struct {
	mu       sync.Mutex
	pub      Publisher
	sampler  Sampler
	override Override
	dark     bool
	log      zerolog.Logger
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithOverride forces the classification, bypassing sampling.
func WithOverride(o Override) DetectorOption {
	return func(d *Detector) {
		d.override = o
	}
}

// WithLogger sets the detector's logger.
func WithLogger(log zerolog.Logger) DetectorOption {
	return func(d *Detector) {
		d.log = log
	}
}

// NewDetector creates a Detector. The stored flag starts light; the
// first dark reading publishes the first transition.
func NewDetector(pub Publisher, sampler Sampler, opts ...DetectorOption) *Detector {
	d := &Detector{
		pub:     pub,
		sampler: sampler,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Check re-derives the brightness flag and publishes motif.changed if it
// differs from the stored flag. A missing or unparsable sample is a
// "cannot determine" outcome: no state change, no publication.
func (d *Detector) Check(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dark, ok := d.derive()
	if !ok || dark == d.dark {
		return
	}

	d.dark = dark
	d.log.Debug().Bool("dark", dark).Msg("theme motif changed")
	d.pub.Emit(ctx, events.TypeMotifChanged, events.MotifChanged{Dark: dark})
}

// Dark returns the stored brightness flag.
func (d *Detector) Dark() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dark
}

// derive classifies the current theme. ok is false when the outcome
// cannot be determined.
func (d *Detector) derive() (dark, ok bool) {
	switch d.override {
	case OverrideLight:
		return false, true
	case OverrideDark:
		return true, true
	}

	if d.sampler == nil {
		return false, false
	}
	hex, ok := d.sampler()
	if !ok {
		return false, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return false, false
	}
	_, _, l := c.Hsl()
	return l < 0.5, true
}
