package editor

import (
	"github.com/mstanton/iconhub/internal/disposable"
	"github.com/mstanton/iconhub/internal/style"
)

// PaneItem is anything the host can open in a pane: documents, archive
// browsers, settings views. Only the title is common to all of them.
type PaneItem interface {
	Title() string
}

// Document is an open text document owned by the host editor.
type Document interface {
	PaneItem

	// Path returns the document's file path. ok is false for a blank
	// document that has never been saved.
	Path() (path string, ok bool)

	// OnPathChanged observes path assignment and renames. The returned
	// handle detaches the observer.
	OnPathChanged(fn func(path string)) disposable.Disposable

	// OnDestroyed observes the document being closed for good.
	OnDestroyed(fn func()) disposable.Disposable
}

// ArchiveView is a pane item browsing the contents of an archive file.
type ArchiveView interface {
	PaneItem

	// ArchivePath returns the path of the archive being browsed.
	ArchivePath() string
}

// Host is the inbound boundary to the editor. The extension only ever
// observes; all registrations come back as disposal handles so a reload
// can detach everything.
type Host interface {
	// Documents enumerates the currently open documents.
	Documents() []Document

	// OnDocumentOpened observes newly opened documents.
	OnDocumentOpened(fn func(Document)) disposable.Disposable

	// OnPaneItemOpened observes newly opened pane items of any kind.
	OnPaneItemOpened(fn func(PaneItem)) disposable.Disposable

	// OnRootsChanged observes changes to the set of open project roots.
	// The host reports the full ordered sequence each time.
	OnRootsChanged(fn func(roots []string)) disposable.Disposable

	// OnThemeChanged observes activation of a different UI theme.
	OnThemeChanged(fn func()) disposable.Disposable

	// Roots returns the currently open project roots, in pane order.
	Roots() []string

	// ThemeColor samples the active theme's background color as a hex
	// string. ok is false when no sample is available yet.
	ThemeColor() (color string, ok bool)

	// StyleSheets enumerates the host's active stylesheet sources.
	StyleSheets() []style.Sheet
}
