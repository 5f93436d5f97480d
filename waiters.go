package iconhub

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/mstanton/iconhub/internal/disposable"
	"github.com/mstanton/iconhub/internal/editor"
	"github.com/mstanton/iconhub/internal/event"
	"github.com/mstanton/iconhub/internal/event/events"
)

// WaitToSave returns a future for doc's first saved path. The future
// resolves when the document acquires a non-empty path and is abandoned
// if the document is destroyed first or the extension is reset while the
// wait is pending. All observers are scoped: settlement and cleanup are
// one step, so whichever signal fires first leaves nothing attached.
func (e *Extension) WaitToSave(doc editor.Document) *Future[string] {
	fut := newFuture[string]()
	if doc == nil {
		fut.abandon()
		return fut
	}

	e.mu.Lock()
	parent := e.scope
	e.mu.Unlock()
	if parent == nil {
		fut.abandon()
		return fut
	}

	// Settlement must tolerate re-entry: disposing the child runs the
	// abandon member below, which calls settle again. A plain flag swap
	// lets the inner call fall through.
	child := disposable.NewSet()
	var settled atomic.Bool
	settle := func(fn func()) {
		if !settled.CompareAndSwap(false, true) {
			return
		}
		child.Dispose()
		parent.Remove(child)
		fn()
	}

	// Disposing the child from outside, via a reset of the parent scope,
	// abandons the wait.
	child.Add(disposable.New(func() {
		settle(fut.abandon)
	}))
	child.Add(doc.OnPathChanged(func(path string) {
		if path == "" {
			return
		}
		settle(func() { fut.resolve(path) })
	}))
	child.Add(doc.OnDestroyed(func() {
		settle(fut.abandon)
	}))

	parent.Add(child)
	return fut
}

// WaitToOpen returns a future for the next opened document named name,
// matched against the document title or the base of its path. The wait
// is scoped like WaitToSave: a reset abandons it, and a match detaches
// everything before resolving.
func (e *Extension) WaitToOpen(name string) *Future[editor.Document] {
	fut := newFuture[editor.Document]()

	e.mu.Lock()
	hub := e.hub
	parent := e.scope
	e.mu.Unlock()
	if hub == nil || parent == nil {
		fut.abandon()
		return fut
	}

	child := disposable.NewSet()
	var settled atomic.Bool
	settle := func(fn func()) {
		if !settled.CompareAndSwap(false, true) {
			return
		}
		child.Dispose()
		parent.Remove(child)
		fn()
	}

	child.Add(disposable.New(func() {
		settle(fut.abandon)
	}))
	child.Add(event.On(hub, events.TypeEditorOpened, func(_ context.Context, ev events.EditorOpened) error {
		if !documentNamed(ev.Doc, name) {
			return nil
		}
		settle(func() { fut.resolve(ev.Doc) })
		return nil
	}))

	parent.Add(child)
	return fut
}

// documentNamed reports whether doc goes by name: an exact title match
// or the base name of its file path.
func documentNamed(doc editor.Document, name string) bool {
	if doc == nil {
		return false
	}
	if doc.Title() == name {
		return true
	}
	if path, ok := doc.Path(); ok {
		return filepath.Base(path) == name
	}
	return false
}
