package style

import "testing"

func TestJSONSheet_Lookup(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		selector string
		property string
		want     string
		wantOK   bool
	}{
		{
			name:     "existing declaration",
			doc:      `{".icon::before": {"top": "2px"}}`,
			selector: ".icon::before",
			property: "top",
			want:     "2px",
			wantOK:   true,
		},
		{
			name:     "missing property",
			doc:      `{".icon::before": {"top": "2px"}}`,
			selector: ".icon::before",
			property: "left",
			wantOK:   false,
		},
		{
			name:     "missing selector",
			doc:      `{".icon::before": {"top": "2px"}}`,
			selector: ".status-bar",
			property: "top",
			wantOK:   false,
		},
		{
			name:     "selector with spaces and pseudo elements",
			doc:      `{".list-item .icon::before": {"top": "-1px"}}`,
			selector: ".list-item .icon::before",
			property: "top",
			want:     "-1px",
			wantOK:   true,
		},
		{
			name:     "empty document",
			doc:      "",
			selector: ".icon::before",
			property: "top",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewJSONSheet(tt.doc)
			got, ok := s.Lookup(tt.selector, tt.property)
			if ok != tt.wantOK {
				t.Fatalf("Lookup() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Lookup() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONSheet_SetRoundTrip(t *testing.T) {
	s := NewJSONSheet("{}")

	if err := s.Set(".icon::before", "top", "4px"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if got, ok := s.Lookup(".icon::before", "top"); !ok || got != "4px" {
		t.Errorf("Lookup() = %q, %v after Set, want \"4px\", true", got, ok)
	}

	// Overwrite in place.
	if err := s.Set(".icon::before", "top", ""); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if got, ok := s.Lookup(".icon::before", "top"); !ok || got != "" {
		t.Errorf("Lookup() = %q, %v after clear, want \"\", true", got, ok)
	}
}

func TestJSONSheet_SelectorIsSingleKey(t *testing.T) {
	// A selector full of dots must not be treated as a nested path.
	s := NewJSONSheet("{}")
	if err := s.Set(".a.b.c", "top", "1px"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if _, ok := NewJSONSheet(s.Source()).Lookup(".a.b.c", "top"); !ok {
		t.Errorf("selector was split into a nested path: %s", s.Source())
	}
	if _, ok := s.Lookup(".a", "b"); ok {
		t.Errorf("nested fragment resolved, selector not escaped: %s", s.Source())
	}
}
