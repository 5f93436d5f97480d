package project

import (
	"context"
	"slices"
	"testing"

	"github.com/mstanton/iconhub/internal/event"
	"github.com/mstanton/iconhub/internal/event/events"
)

// recorder captures emissions in order.
type recorder struct {
	types    []event.Type
	payloads []any
}

func (r *recorder) Emit(_ context.Context, t event.Type, payload any) {
	r.types = append(r.types, t)
	r.payloads = append(r.payloads, payload)
}

func (r *recorder) reset() {
	r.types = nil
	r.payloads = nil
}

func TestSetRoots_EqualSequenceEmitsNothing(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)
	ctx := context.Background()

	tr.SetRoots(ctx, []string{"a", "b"})
	rec.reset()

	tr.SetRoots(ctx, []string{"a", "b"})

	if len(rec.types) != 0 {
		t.Errorf("equal sequence emitted %v, want nothing", rec.types)
	}
}

func TestSetRoots_EmptyToNonEmpty(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)
	ctx := context.Background()

	tr.SetRoots(ctx, []string{"x"})

	want := []event.Type{events.TypeRootsAvailable, events.TypeRootsChanged}
	if !slices.Equal(rec.types, want) {
		t.Fatalf("emitted %v, want %v", rec.types, want)
	}

	changed, ok := rec.payloads[1].(events.RootsChanged)
	if !ok {
		t.Fatalf("changed payload is %T, want events.RootsChanged", rec.payloads[1])
	}
	if len(changed.From) != 0 {
		t.Errorf("From = %v, want empty", changed.From)
	}
	if !slices.Equal(changed.To, []string{"x"}) {
		t.Errorf("To = %v, want [x]", changed.To)
	}
}

func TestSetRoots_NonEmptyToEmpty(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)
	ctx := context.Background()

	tr.SetRoots(ctx, []string{"x"})
	rec.reset()

	tr.SetRoots(ctx, nil)

	want := []event.Type{events.TypeRootsEmptied, events.TypeRootsChanged}
	if !slices.Equal(rec.types, want) {
		t.Fatalf("emitted %v, want %v", rec.types, want)
	}

	changed := rec.payloads[1].(events.RootsChanged)
	if !slices.Equal(changed.From, []string{"x"}) {
		t.Errorf("From = %v, want [x]", changed.From)
	}
	if len(changed.To) != 0 {
		t.Errorf("To = %v, want empty", changed.To)
	}
}

func TestSetRoots_OrderMatters(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)
	ctx := context.Background()

	tr.SetRoots(ctx, []string{"a", "b"})
	rec.reset()

	// Same paths, different order: a change, not a repeat.
	tr.SetRoots(ctx, []string{"b", "a"})

	want := []event.Type{events.TypeRootsAvailable, events.TypeRootsChanged}
	if !slices.Equal(rec.types, want) {
		t.Fatalf("emitted %v, want %v", rec.types, want)
	}
}

func TestSetRoots_BaselineIsACopy(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)
	ctx := context.Background()

	roots := []string{"a"}
	tr.SetRoots(ctx, roots)
	roots[0] = "mutated"
	rec.reset()

	tr.SetRoots(ctx, []string{"a"})

	if len(rec.types) != 0 {
		t.Errorf("caller mutation leaked into baseline: emitted %v", rec.types)
	}
	if got := tr.Roots(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Roots() = %v, want [a]", got)
	}
}

func TestSetRoots_EmptyInitialReportEmitsNothing(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.SetRoots(context.Background(), nil)

	if len(rec.types) != 0 {
		t.Errorf("empty report against empty baseline emitted %v", rec.types)
	}
}
