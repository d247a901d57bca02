package sequence

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	var s Sequence[int]
	if s.Len() != 0 || s.Cap() != 0 {
		t.Fatalf("zero sequence should be empty, has len=%d cap=%d", s.Len(), s.Cap())
	}
	if _, err := s.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	s.Append(7)
	if v, err := s.At(0); err != nil || v != 7 {
		t.Errorf("expected 7 at index 0, got %d (%v)", v, err)
	}
}

func TestAppendGrowsByDoubling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	s := New[int](0)
	caps := []int{}
	for i := 0; i < 9; i++ {
		s.Append(i)
		caps = append(caps, s.Cap())
	}
	want := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i := range want {
		if caps[i] != want[i] {
			t.Fatalf("capacity after %d appends is %d, want %d", i+1, caps[i], want[i])
		}
	}
	for i, v := range s.Values() {
		if v != i {
			t.Errorf("value at %d is %d", i, v)
		}
	}
}

func TestResetKeepsBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	s := New[string](4)
	s.Append("a")
	s.Append("b")
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("reset sequence has len %d", s.Len())
	}
	if s.Cap() != 4 {
		t.Errorf("reset should keep capacity 4, has %d", s.Cap())
	}
	s.Reserve(10)
	if s.Cap() < 10 {
		t.Errorf("reserve(10) left capacity %d", s.Cap())
	}
}

func TestSetAndMustAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	s := New[int](2)
	s.Append(1)
	if err := s.Set(0, 5); err != nil {
		t.Fatal(err)
	}
	if s.MustAt(0) != 5 {
		t.Errorf("expected 5, got %d", s.MustAt(0))
	}
	if err := s.Set(1, 5); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("set beyond length should fail, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustAt out of bounds should panic")
		}
	}()
	_ = s.MustAt(3)
}
