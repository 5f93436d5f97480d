package events

import (
	"github.com/mstanton/iconhub/internal/editor"
	"github.com/mstanton/iconhub/internal/event"
)

// Document and pane-item event types.
const (
	// TypeEditorOpened is published for every opened document.
	TypeEditorOpened event.Type = "editor.opened"

	// TypeFileOpened is published for an opened document that has a file
	// path, and again when a blank document acquires one after saving.
	TypeFileOpened event.Type = "file.opened"

	// TypeBlankOpened is published for an opened document without a path.
	TypeBlankOpened event.Type = "blank.opened"

	// TypeFileSavedNew is published when a previously blank document is
	// saved and acquires its first path.
	TypeFileSavedNew event.Type = "file.saved.new"

	// TypeArchiveOpened is published when the host opens an archive view.
	TypeArchiveOpened event.Type = "archive.opened"
)

// EditorOpened reports a newly opened document, regardless of whether it
// is backed by a file yet.
type EditorOpened struct {
	Doc editor.Document
}

// FileOpened reports a document backed by a file on disk.
type FileOpened struct {
	Doc  editor.Document
	Path string
}

// BlankOpened reports a document that has never been saved.
type BlankOpened struct {
	Doc editor.Document
}

// FileSavedNew reports a blank document acquiring its first path.
type FileSavedNew struct {
	Doc  editor.Document
	Path string
}

// ArchiveOpened reports an archive browser pane item.
type ArchiveOpened struct {
	Item editor.ArchiveView
}
