// Package editortest provides in-memory fakes for the editor boundary,
// shared by the package tests that drive host signals by hand.
package editortest

import (
	"slices"
	"sync"

	"github.com/mstanton/iconhub/internal/disposable"
	"github.com/mstanton/iconhub/internal/editor"
	"github.com/mstanton/iconhub/internal/style"
)

// observers is an ordered registry of callbacks with per-callback
// detachment, mirroring how hosts hand out disposal handles.
type observers[T any] struct {
	mu   sync.Mutex
	next int
	ids  []int
	fns  map[int]T
}

func (o *observers[T]) add(fn T) disposable.Disposable {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fns == nil {
		o.fns = make(map[int]T)
	}
	id := o.next
	o.next++
	o.ids = append(o.ids, id)
	o.fns[id] = fn
	return disposable.New(func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.fns, id)
		if i := slices.Index(o.ids, id); i >= 0 {
			o.ids = append(o.ids[:i], o.ids[i+1:]...)
		}
	})
}

func (o *observers[T]) snapshot() []T {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]T, 0, len(o.ids))
	for _, id := range o.ids {
		out = append(out, o.fns[id])
	}
	return out
}

func (o *observers[T]) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.fns)
}

// Document is a fake editor.Document driven by tests.
type Document struct {
	mu        sync.Mutex
	title     string
	path      string
	hasPath   bool
	destroyed bool

	pathObs    observers[func(string)]
	destroyObs observers[func()]
}

// NewDocument creates a document backed by path. An empty path makes a
// blank document.
func NewDocument(title, path string) *Document {
	return &Document{title: title, path: path, hasPath: path != ""}
}

// Title implements editor.PaneItem.
func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// Path implements editor.Document.
func (d *Document) Path() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path, d.hasPath
}

// OnPathChanged implements editor.Document.
func (d *Document) OnPathChanged(fn func(string)) disposable.Disposable {
	return d.pathObs.add(fn)
}

// OnDestroyed implements editor.Document.
func (d *Document) OnDestroyed(fn func()) disposable.Disposable {
	return d.destroyObs.add(fn)
}

// SetPath assigns a path and fires the path-changed observers, as the
// host does on save and rename.
func (d *Document) SetPath(path string) {
	d.mu.Lock()
	d.path = path
	d.hasPath = path != ""
	d.mu.Unlock()

	for _, fn := range d.pathObs.snapshot() {
		fn(path)
	}
}

// Destroy fires the destroyed observers.
func (d *Document) Destroy() {
	d.mu.Lock()
	d.destroyed = true
	d.mu.Unlock()

	for _, fn := range d.destroyObs.snapshot() {
		fn()
	}
}

// Destroyed reports whether Destroy has been called.
func (d *Document) Destroyed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.destroyed
}

// ObserverCount reports how many observers are still attached. Tests
// use it to prove waiter scopes detach.
func (d *Document) ObserverCount() int {
	return d.pathObs.count() + d.destroyObs.count()
}

// Archive is a fake editor.ArchiveView.
type Archive struct {
	Name string
	Path string
}

// Title implements editor.PaneItem.
func (a *Archive) Title() string { return a.Name }

// ArchivePath implements editor.ArchiveView.
func (a *Archive) ArchivePath() string { return a.Path }

// Host is a fake editor.Host driven by tests.
type Host struct {
	mu         sync.Mutex
	docs       []editor.Document
	roots      []string
	themeColor string
	themeOK    bool
	sheets     []style.Sheet

	docObs   observers[func(editor.Document)]
	paneObs  observers[func(editor.PaneItem)]
	rootsObs observers[func([]string)]
	themeObs observers[func()]
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{}
}

// Documents implements editor.Host.
func (h *Host) Documents() []editor.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.docs)
}

// OnDocumentOpened implements editor.Host.
func (h *Host) OnDocumentOpened(fn func(editor.Document)) disposable.Disposable {
	return h.docObs.add(fn)
}

// OnPaneItemOpened implements editor.Host.
func (h *Host) OnPaneItemOpened(fn func(editor.PaneItem)) disposable.Disposable {
	return h.paneObs.add(fn)
}

// OnRootsChanged implements editor.Host.
func (h *Host) OnRootsChanged(fn func([]string)) disposable.Disposable {
	return h.rootsObs.add(fn)
}

// OnThemeChanged implements editor.Host.
func (h *Host) OnThemeChanged(fn func()) disposable.Disposable {
	return h.themeObs.add(fn)
}

// Roots implements editor.Host.
func (h *Host) Roots() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.roots)
}

// ThemeColor implements editor.Host.
func (h *Host) ThemeColor() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.themeColor, h.themeOK
}

// StyleSheets implements editor.Host.
func (h *Host) StyleSheets() []style.Sheet {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.sheets)
}

// AddSheet appends a stylesheet source.
func (h *Host) AddSheet(s style.Sheet) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sheets = append(h.sheets, s)
}

// OpenDocument records doc as open and fires the document observers.
func (h *Host) OpenDocument(doc editor.Document) {
	h.mu.Lock()
	h.docs = append(h.docs, doc)
	h.mu.Unlock()

	for _, fn := range h.docObs.snapshot() {
		fn(doc)
	}
}

// OpenPaneItem fires the pane-item observers.
func (h *Host) OpenPaneItem(item editor.PaneItem) {
	for _, fn := range h.paneObs.snapshot() {
		fn(item)
	}
}

// SetRoots updates the root sequence and fires the roots observers.
func (h *Host) SetRoots(roots []string) {
	h.mu.Lock()
	h.roots = slices.Clone(roots)
	h.mu.Unlock()

	for _, fn := range h.rootsObs.snapshot() {
		fn(slices.Clone(roots))
	}
}

// SetThemeColor updates the theme sample and fires the theme observers.
func (h *Host) SetThemeColor(hex string) {
	h.mu.Lock()
	h.themeColor = hex
	h.themeOK = hex != ""
	h.mu.Unlock()

	for _, fn := range h.themeObs.snapshot() {
		fn()
	}
}

// ObserverCount reports how many host observers are still attached.
func (h *Host) ObserverCount() int {
	return h.docObs.count() + h.paneObs.count() + h.rootsObs.count() + h.themeObs.count()
}
