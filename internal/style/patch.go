package style

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/mstanton/iconhub/internal/disposable"
)

// Default rule targeted by FixOffset: the vertical nudge some themes
// apply to file icons, which misaligns replacement glyphs.
const (
	DefaultOffsetSelector = ".icon::before"
	DefaultOffsetProperty = "top"
)

// Patcher clears a single style declaration and remembers how to put it
// back. At most one patch is active at a time: installing a new one
// first disposes the previous handle, restoring the value it captured.
type Patcher struct {
	mu       sync.Mutex
	selector string
	property string
	active   disposable.Disposable
	log      zerolog.Logger
}

// PatcherOption configures a Patcher.
type PatcherOption func(*Patcher)

// WithRule overrides the targeted selector and property.
func WithRule(selector, property string) PatcherOption {
	return func(p *Patcher) {
		if selector != "" {
			p.selector = selector
		}
		if property != "" {
			p.property = property
		}
	}
}

// WithLogger sets the patcher's logger.
func WithLogger(log zerolog.Logger) PatcherOption {
	return func(p *Patcher) {
		p.log = log
	}
}

// NewPatcher creates a Patcher targeting the default offset rule.
func NewPatcher(opts ...PatcherOption) *Patcher {
	p := &Patcher{
		selector: DefaultOffsetSelector,
		property: DefaultOffsetProperty,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FixOffset scans the given sheets for the targeted rule. On the first
// sheet declaring a non-empty value it captures that value, clears it,
// and installs a handle that restores it on disposal. A previous patch,
// if any, is disposed first. No matching rule is a silent no-op.
func (p *Patcher) FixOffset(sheets []Sheet) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, sheet := range sheets {
		value, ok := sheet.Lookup(p.selector, p.property)
		if !ok || value == "" {
			continue
		}

		if p.active != nil {
			// Restoring the previous patch may rewrite this same rule,
			// so the value is re-read afterwards.
			p.active.Dispose()
			p.active = nil
			value, ok = sheet.Lookup(p.selector, p.property)
			if !ok || value == "" {
				continue
			}
		}

		captured := value
		target := sheet
		if err := target.Set(p.selector, p.property, ""); err != nil {
			p.log.Warn().Err(err).Str("selector", p.selector).Msg("clearing icon offset failed")
			return
		}
		p.active = disposable.New(func() {
			if err := target.Set(p.selector, p.property, captured); err != nil {
				p.log.Warn().Err(err).Str("selector", p.selector).Msg("restoring icon offset failed")
			}
		})
		p.log.Debug().Str("selector", p.selector).Str("value", captured).Msg("icon offset cleared")
		return
	}
}

// Active reports whether a patch is currently installed.
func (p *Patcher) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active != nil
}

// Dispose restores any active patch. Safe to call repeatedly.
func (p *Patcher) Dispose() {
	p.mu.Lock()
	active := p.active
	p.active = nil
	p.mu.Unlock()

	if active != nil {
		active.Dispose()
	}
}
