package disposable

import "testing"

func TestNew_DisposeOnce(t *testing.T) {
	calls := 0
	d := New(func() { calls++ })

	d.Dispose()
	d.Dispose()
	d.Dispose()

	if calls != 1 {
		t.Errorf("Dispose ran %d times, want 1", calls)
	}
}

func TestNew_NilFunc(t *testing.T) {
	d := New(nil)
	d.Dispose() // must not panic
}

func TestSet_DisposeMembers(t *testing.T) {
	var a, b int
	s := NewSet(New(func() { a++ }), New(func() { b++ }))

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	s.Dispose()

	if a != 1 || b != 1 {
		t.Errorf("members disposed (a=%d, b=%d), want exactly once each", a, b)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Dispose, want 0", s.Len())
	}
	if !s.Disposed() {
		t.Error("Disposed() = false after Dispose")
	}
}

func TestSet_DisposeIdempotent(t *testing.T) {
	calls := 0
	s := NewSet(New(func() { calls++ }))

	s.Dispose()
	s.Dispose()

	if calls != 1 {
		t.Errorf("member disposed %d times, want 1", calls)
	}
}

func TestSet_RemoveDetachesWithoutDisposing(t *testing.T) {
	calls := 0
	d := New(func() { calls++ })
	s := NewSet(d)

	s.Remove(d)
	s.Dispose()

	if calls != 0 {
		t.Errorf("removed member was disposed %d times, want 0", calls)
	}
}

func TestSet_AddAfterDispose(t *testing.T) {
	s := NewSet()
	s.Dispose()

	calls := 0
	s.Add(New(func() { calls++ }))

	if calls != 1 {
		t.Errorf("late member disposed %d times, want immediate disposal", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (disposed set retains nothing)", s.Len())
	}
}

func TestSet_NestedSets(t *testing.T) {
	inner := 0
	child := NewSet(New(func() { inner++ }))
	parent := NewSet(child)

	parent.Dispose()

	if inner != 1 {
		t.Errorf("nested member disposed %d times, want 1", inner)
	}
	if !child.Disposed() {
		t.Error("child set not disposed by parent")
	}
}

func TestSet_MemberMayCallBackIntoSet(t *testing.T) {
	parent := NewSet()
	child := NewSet()
	// cleanup mirrors a waiter scope detaching itself from its parent
	child.Add(New(func() { parent.Remove(child) }))
	parent.Add(child)

	parent.Dispose() // must not deadlock
}

func TestSet_NilHandling(t *testing.T) {
	s := NewSet()
	s.Add(nil)
	s.Remove(nil)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
