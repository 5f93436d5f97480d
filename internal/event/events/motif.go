package events

import "github.com/mstanton/iconhub/internal/event"

// Theme event types.
const (
	// TypeMotifChanged is published when the derived theme brightness
	// flips. Strictly edge-triggered: repeated identical readings never
	// re-publish.
	TypeMotifChanged event.Type = "motif.changed"
)

// MotifChanged carries the new brightness classification.
type MotifChanged struct {
	// Dark is true when the active theme classifies as dark.
	Dark bool
}
