package answers

import (
	"errors"
	"testing"
)

func TestSetAndGet(t *testing.T) {
	s := New()
	if err := s.Set("framework", "Next.js"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get("framework")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "Next.js" {
		t.Fatalf("Get() = %q, want %q", got, "Next.js")
	}
}

func TestSetRejectsDuplicateWrite(t *testing.T) {
	s := New()
	if err := s.Set("framework", "Next.js"); err != nil {
		t.Fatalf("first Set() error = %v", err)
	}
	if err := s.Set("framework", "Vue.js"); err == nil {
		t.Fatalf("second Set() = nil, want write-once error")
	}
	// The original value must survive the rejected write.
	got, _ := s.Get("framework")
	if got != "Next.js" {
		t.Fatalf("Get() after rejected write = %q, want %q", got, "Next.js")
	}
}

func TestGetMissingWrapsErrMissing(t *testing.T) {
	s := New()
	_, err := s.Get("never_written")
	if err == nil {
		t.Fatalf("Get() = nil error, want ErrMissing")
	}
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("Get() error = %v, want errors.Is(err, ErrMissing)", err)
	}
}

func TestIDsPreserveInsertionOrder(t *testing.T) {
	s := New()
	for _, id := range []string{"c", "a", "b"} {
		if err := s.Set(id, id); err != nil {
			t.Fatalf("Set(%q) error = %v", id, err)
		}
	}
	got := s.IDs()
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFromMapSkipsAbsentIDs(t *testing.T) {
	s := FromMap(map[string]string{"a": "1"}, []string{"a", "b"})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if _, err := s.Get("b"); !errors.Is(err, ErrMissing) {
		t.Fatalf("Get(b) error = %v, want ErrMissing", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	_ = s.Set("a", "1")
	snap := s.Snapshot()
	snap["a"] = "mutated"
	got, _ := s.Get("a")
	if got != "1" {
		t.Fatalf("Get() after snapshot mutation = %q, want %q", got, "1")
	}
}
