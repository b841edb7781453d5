package tui

import (
	"sync"
	"testing"
	"time"
)

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry()
	t0 := time.Unix(1000, 0)

	a := r.Register("alice", "10.0.0.1:5000", t0.Add(time.Second))
	b := r.Register("bob", "10.0.0.2:5000", t0)
	if a == b {
		t.Fatalf("IDs should differ, both %q", a)
	}
	if r.Count() != 2 {
		t.Fatalf("Count = %d, want 2", r.Count())
	}

	list := r.List()
	if list[0].User != "bob" || list[1].User != "alice" {
		t.Errorf("List order = %s, %s; want bob, alice", list[0].User, list[1].User)
	}

	r.Unregister(b)
	r.Unregister("missing")
	if r.Count() != 1 {
		t.Errorf("Count after unregister = %d, want 1", r.Count())
	}
}

func TestSessionRegistryConcurrent(t *testing.T) {
	r := NewSessionRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := r.Register("same-user", "remote", time.Now())
			r.Count()
			r.Unregister(id)
		}()
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Errorf("Count = %d, want 0", r.Count())
	}
}
