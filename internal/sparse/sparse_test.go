package sparse

import "testing"

func TestSet_InsertContains(t *testing.T) {
	s := New(10)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}

	s.Insert(3)
	s.Insert(7)
	s.Insert(3) // duplicate, no-op

	if s.Size() != 2 {
		t.Errorf("Size() = %d, want 2", s.Size())
	}
	for _, v := range []uint32{3, 7} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	for _, v := range []uint32{0, 4, 9} {
		if s.Contains(v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}
}

func TestSet_ContainsOutOfRange(t *testing.T) {
	s := New(4)
	if s.Contains(100) {
		t.Error("Contains(100) on capacity-4 set = true, want false")
	}
}

func TestSet_ValuesInsertionOrder(t *testing.T) {
	s := New(16)
	for _, v := range []uint32{5, 1, 9, 1, 5, 2} {
		s.Insert(v)
	}

	want := []uint32{5, 1, 9, 2}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSet_Clear(t *testing.T) {
	s := New(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()

	if !s.IsEmpty() {
		t.Error("set not empty after Clear")
	}
	if s.Contains(1) || s.Contains(2) {
		t.Error("Contains() = true after Clear")
	}

	// Reusable after Clear.
	s.Insert(2)
	if !s.Contains(2) || s.Size() != 1 {
		t.Error("set not reusable after Clear")
	}
}

func TestSet_Grow(t *testing.T) {
	s := New(2)
	s.Insert(1)

	s.Grow(100)
	s.Insert(99)

	if !s.Contains(1) {
		t.Error("Grow lost existing element")
	}
	if !s.Contains(99) {
		t.Error("Contains(99) = false after Grow(100)")
	}

	// Shrinking is a no-op.
	s.Grow(10)
	if !s.Contains(99) {
		t.Error("Grow to smaller capacity dropped elements")
	}
}
