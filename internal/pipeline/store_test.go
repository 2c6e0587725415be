package pipeline

import (
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	if _, ok := s.Get("missing"); ok {
		t.Fatal("empty store returned a result")
	}

	want := &DocumentResult{Title: "doc", ContentHash: "abc"}
	s.Set("abc", want)

	got, ok := s.Get("abc")
	if !ok || got != want {
		t.Fatalf("Get = %v, %v", got, ok)
	}
	if !s.Has("abc") {
		t.Error("Has should report the stored entry")
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)
	s.Set("abc", &DocumentResult{ContentHash: "abc"})

	time.Sleep(25 * time.Millisecond)
	if _, ok := s.Get("abc"); ok {
		t.Error("expired entry should not be returned")
	}
}

func TestMemoryStore_Cleanup(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)
	s.Set("old", &DocumentResult{})
	time.Sleep(25 * time.Millisecond)
	s.Set("fresh", &DocumentResult{})

	s.Cleanup()

	s.mu.Lock()
	_, oldThere := s.entries["old"]
	_, freshThere := s.entries["fresh"]
	s.mu.Unlock()
	if oldThere {
		t.Error("cleanup left the expired entry behind")
	}
	if !freshThere {
		t.Error("cleanup removed a live entry")
	}
}
