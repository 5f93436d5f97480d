package style

import (
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Sheet is a style source the host exposes: a table of selectors, each
// holding property declarations. The extension only reads and rewrites
// individual declarations; cascade and DOM mechanics stay host-side.
type Sheet interface {
	// Lookup returns the declared value of property under selector.
	// ok is false when the rule or property does not exist.
	Lookup(selector, property string) (value string, ok bool)

	// Set rewrites the declared value of property under selector.
	Set(selector, property, value string) error
}

// JSONSheet is a Sheet backed by a JSON document of the shape
//
//	{"<selector>": {"<property>": "<value>", ...}, ...}
//
// which is how host themes serialize their style tables.
type JSONSheet struct {
	mu  sync.Mutex
	doc string
}

// NewJSONSheet creates a sheet from a serialized style table.
func NewJSONSheet(doc string) *JSONSheet {
	if doc == "" {
		doc = "{}"
	}
	return &JSONSheet{doc: doc}
}

// Lookup returns the declared value of property under selector.
func (s *JSONSheet) Lookup(selector, property string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := gjson.Get(s.doc, escapeKey(selector)+"."+escapeKey(property))
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// Set rewrites the declared value of property under selector, creating
// the rule if it does not exist.
func (s *JSONSheet) Set(selector, property, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := sjson.Set(s.doc, escapeKey(selector)+"."+escapeKey(property), value)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Source returns the current serialized style table.
func (s *JSONSheet) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// escapeKey escapes path metacharacters so CSS-ish selectors like
// ".icon::before" address a single JSON key rather than a nested path.
func escapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
