package events

import "github.com/mstanton/iconhub/internal/event"

// Project event types.
const (
	// TypeProjectOpened is reserved for consumers that open a project
	// themselves; the core republishes it but never triggers it.
	TypeProjectOpened event.Type = "project.opened"

	// TypeRootsAvailable is published when the tracked root sequence
	// becomes non-empty.
	TypeRootsAvailable event.Type = "project.roots.available"

	// TypeRootsChanged is published whenever the tracked root sequence
	// differs from the previous one.
	TypeRootsChanged event.Type = "project.roots.changed"

	// TypeRootsEmptied is published when the tracked root sequence
	// becomes empty.
	TypeRootsEmptied event.Type = "project.roots.emptied"
)

// ProjectOpened reports a project root opened by a consumer.
type ProjectOpened struct {
	Path string
}

// RootsAvailable carries no data; the new sequence follows in the
// RootsChanged emission.
type RootsAvailable struct{}

// RootsChanged carries the previous and current root sequences.
type RootsChanged struct {
	From []string
	To   []string
}

// RootsEmptied carries no data.
type RootsEmptied struct{}
