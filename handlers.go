package iconhub

import (
	"context"
	"sync"

	"github.com/mstanton/iconhub/internal/disposable"
	"github.com/mstanton/iconhub/internal/editor"
	"github.com/mstanton/iconhub/internal/event/events"
)

// wireHost registers the host signal observers for one activation. Every
// handle goes into scope so a reset detaches the lot at once.
func (e *Extension) wireHost(host editor.Host, scope *disposable.Set) {
	scope.Add(host.OnDocumentOpened(func(doc editor.Document) {
		e.classifyDocument(context.Background(), doc, scope)
	}))
	scope.Add(host.OnPaneItemOpened(func(item editor.PaneItem) {
		e.handlePaneItem(context.Background(), item)
	}))
	scope.Add(host.OnRootsChanged(func(roots []string) {
		e.tracker.SetRoots(context.Background(), roots)
	}))
	scope.Add(host.OnThemeChanged(func() {
		e.refreshTheme(context.Background(), host)
	}))
}

// classifyDocument publishes the typed events for an opened document:
// editor.opened always, then file.opened or blank.opened depending on
// whether the document is backed by a file. A blank document additionally
// gets a save watch so its first save is reported.
func (e *Extension) classifyDocument(ctx context.Context, doc editor.Document, scope *disposable.Set) {
	if doc == nil {
		return
	}
	e.Emit(ctx, events.TypeEditorOpened, events.EditorOpened{Doc: doc})

	if path, ok := doc.Path(); ok {
		e.Emit(ctx, events.TypeFileOpened, events.FileOpened{Doc: doc, Path: path})
		return
	}
	e.Emit(ctx, events.TypeBlankOpened, events.BlankOpened{Doc: doc})
	e.watchSavedNew(doc, scope)
}

// watchSavedNew observes a blank document until it either acquires its
// first path or is destroyed. The observers live in a child scope under
// the activation scope; the first signal disposes the child and detaches
// it from the parent, so a document that stays blank costs nothing after
// the activation ends and a saved one leaves no residue behind.
func (e *Extension) watchSavedNew(doc editor.Document, parent *disposable.Set) {
	child := disposable.NewSet()
	parent.Add(child)

	var once sync.Once
	settle := func(fn func()) {
		once.Do(func() {
			child.Dispose()
			parent.Remove(child)
			if fn != nil {
				fn()
			}
		})
	}

	child.Add(doc.OnPathChanged(func(path string) {
		if path == "" {
			return
		}
		settle(func() {
			ctx := context.Background()
			e.Emit(ctx, events.TypeFileSavedNew, events.FileSavedNew{Doc: doc, Path: path})
			e.Emit(ctx, events.TypeFileOpened, events.FileOpened{Doc: doc, Path: path})
		})
	}))
	child.Add(doc.OnDestroyed(func() {
		settle(nil)
	}))
}

// handlePaneItem republishes archive browsers as archive.opened. Other
// pane items are not the extension's business; documents arrive through
// the document-opened signal instead.
func (e *Extension) handlePaneItem(ctx context.Context, item editor.PaneItem) {
	if av, ok := item.(editor.ArchiveView); ok {
		e.Emit(ctx, events.TypeArchiveOpened, events.ArchiveOpened{Item: av})
	}
}

// refreshTheme re-derives the motif flag and re-applies the icon offset
// patch against the newly active theme's stylesheets.
func (e *Extension) refreshTheme(ctx context.Context, host editor.Host) {
	e.detector.Check(ctx)
	e.patcher.FixOffset(host.StyleSheets())
}
