// Package iconhub is the composition root of the icon extension. The
// Extension owns the event hub, the scheduler loop and the per-activation
// disposal scope, and wires the host editor's signals into typed events.
package iconhub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mstanton/iconhub/internal/config"
	"github.com/mstanton/iconhub/internal/disposable"
	"github.com/mstanton/iconhub/internal/editor"
	"github.com/mstanton/iconhub/internal/event"
	"github.com/mstanton/iconhub/internal/logging"
	"github.com/mstanton/iconhub/internal/motif"
	"github.com/mstanton/iconhub/internal/project"
	"github.com/mstanton/iconhub/internal/sched"
	"github.com/mstanton/iconhub/internal/style"
)

// Extension errors.
var (
	// ErrShutDown is returned when the extension is used after Deactivate.
	ErrShutDown = errors.New("iconhub: extension shut down")

	// ErrNilHost is returned when Activate is called without a host.
	ErrNilHost = errors.New("iconhub: nil host")
)

// Extension is the extension's lifecycle controller. A fresh hub and
// disposal scope are installed on every activation and reset; the
// scheduler loop, the roots tracker, the motif detector and the style
// patcher live for the whole process so their state survives resets.
type Extension struct {
	cfg  *config.Config
	log  zerolog.Logger
	loop *sched.Loop

	tracker  *project.Tracker
	detector *motif.Detector
	patcher  *style.Patcher

	mu       sync.Mutex
	hub      *event.Hub
	scope    *disposable.Set
	host     editor.Host
	shutdown bool
}

// ExtensionOption configures an Extension.
type ExtensionOption func(*Extension)

// WithConfig supplies the settings. Defaults are used otherwise.
func WithConfig(cfg *config.Config) ExtensionOption {
	return func(e *Extension) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithLogger sets the root logger. Component loggers are derived from it.
func WithLogger(log zerolog.Logger) ExtensionOption {
	return func(e *Extension) {
		e.log = log
	}
}

// New creates an Extension and starts its scheduler loop. The extension
// is idle until Activate.
func New(opts ...ExtensionOption) (*Extension, error) {
	e := &Extension{
		cfg: config.Default(),
		log: logging.New(io.Discard, "info"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("iconhub: %w", err)
	}

	e.loop = sched.New(
		sched.WithQueueSize(e.cfg.Events.QueueSize),
		sched.WithPanicHandler(func(v any, stack []byte) {
			e.log.Error().Interface("panic", v).Bytes("stack", stack).Msg("deferred task panicked")
		}),
	)
	if err := e.loop.Start(); err != nil {
		return nil, fmt.Errorf("iconhub: start loop: %w", err)
	}

	e.tracker = project.NewTracker(e, project.WithLogger(logging.Component(e.log, "project")))
	e.detector = motif.NewDetector(e, e.sampleTheme,
		motif.WithOverride(motifOverride(e.cfg.Theme.Motif)),
		motif.WithLogger(logging.Component(e.log, "motif")),
	)
	e.patcher = style.NewPatcher(
		style.WithRule(e.cfg.Style.OffsetSelector, e.cfg.Style.OffsetProperty),
		style.WithLogger(logging.Component(e.log, "style")),
	)
	return e, nil
}

// Activate resets the extension, attaches it to host and performs the
// initial sweep: classify the already open documents, seed the roots
// tracker and derive the theme motif.
func (e *Extension) Activate(ctx context.Context, host editor.Host) error {
	if host == nil {
		return ErrNilHost
	}
	if err := e.Reset(); err != nil {
		return err
	}

	e.mu.Lock()
	e.host = host
	hub := e.hub
	scope := e.scope
	e.mu.Unlock()

	e.wireHost(host, scope)

	for _, doc := range host.Documents() {
		e.classifyDocument(ctx, doc, scope)
	}
	e.tracker.SetRoots(ctx, host.Roots())
	e.detector.Check(ctx)
	e.patcher.FixOffset(host.StyleSheets())

	e.log.Info().
		Int("documents", len(host.Documents())).
		Int("subscriptions", hub.Stats().ActiveSubscriptions).
		Msg("extension activated")
	return nil
}

// Reset tears down the current hub and disposal scope and installs a
// fresh pair. Every registration made before the reset is cancelled:
// handlers from the old generation never run for later emissions, even
// ones already queued for a deferred turn. Safe to call repeatedly and
// before the first Activate.
func (e *Extension) Reset() error {
	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return ErrShutDown
	}
	oldScope := e.scope
	oldHub := e.hub
	e.hub = event.New(e.loop, event.WithLogger(logging.Component(e.log, "event")))
	e.scope = disposable.NewSet()
	e.host = nil
	e.mu.Unlock()

	if oldScope != nil {
		oldScope.Dispose()
	}
	if oldHub != nil {
		oldHub.Close()
	}
	return nil
}

// Deactivate is the final teardown: the scope is disposed, the hub is
// closed, the style patch is restored and the scheduler loop is stopped.
// The extension cannot be reactivated afterwards.
func (e *Extension) Deactivate(ctx context.Context) error {
	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return ErrShutDown
	}
	e.shutdown = true
	scope := e.scope
	hub := e.hub
	e.scope = nil
	e.hub = nil
	e.host = nil
	e.mu.Unlock()

	if scope != nil {
		scope.Dispose()
	}
	if hub != nil {
		hub.Close()
	}
	e.patcher.Dispose()

	if err := e.loop.Stop(ctx); err != nil {
		return fmt.Errorf("iconhub: stop loop: %w", err)
	}
	e.log.Info().Msg("extension deactivated")
	return nil
}

// Emit publishes on the current hub. Between Deactivate and the next
// activation there is no hub and the emission is dropped.
func (e *Extension) Emit(ctx context.Context, t event.Type, payload any) {
	e.mu.Lock()
	hub := e.hub
	e.mu.Unlock()
	if hub == nil {
		return
	}
	hub.Emit(ctx, t, payload)
}

// Hub returns the currently installed hub, or nil after Deactivate and
// before the first Activate or Reset.
func (e *Extension) Hub() *event.Hub {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hub
}

// Flush blocks until every deferred handler posted so far has run.
func (e *Extension) Flush(ctx context.Context) error {
	return e.loop.Flush(ctx)
}

// sampleTheme reads the attached host's theme color.
func (e *Extension) sampleTheme() (string, bool) {
	e.mu.Lock()
	host := e.host
	e.mu.Unlock()
	if host == nil {
		return "", false
	}
	return host.ThemeColor()
}

// motifOverride maps the theme.motif setting to a detector override.
// Validate has already rejected anything but auto, light and dark.
func motifOverride(s string) motif.Override {
	switch s {
	case "light":
		return motif.OverrideLight
	case "dark":
		return motif.OverrideDark
	default:
		return motif.OverrideAuto
	}
}
