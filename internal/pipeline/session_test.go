package pipeline

import (
	"context"
	"testing"
)

func TestSession_ProgressNeverRegresses(t *testing.T) {
	col := &collector{}
	sess := NewSession(context.Background(), col)

	for _, p := range []int{10, 30, 20, 30, 55, 55, 120} {
		sess.Progress(p)
	}

	got := col.ofType(EventProgress)
	want := []int{10, 30, 55, 100}
	if len(got) != len(want) {
		t.Fatalf("emitted %d progress events, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Percent != want[i] {
			t.Errorf("event %d: percent %d, want %d", i, e.Percent, want[i])
		}
	}
}

func TestSession_SilentAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	col := &collector{}
	sess := NewSession(ctx, col)

	sess.Log("antes", "blue")
	cancel()
	sess.Log("después", "blue")
	sess.Progress(50)

	if !sess.Cancelled() {
		t.Fatal("session should report cancellation")
	}
	if len(col.events) != 1 {
		t.Fatalf("expected only the pre-cancel event, got %d", len(col.events))
	}
	if col.events[0].Text != "antes" {
		t.Errorf("unexpected surviving event: %+v", col.events[0])
	}
}

func TestSession_UniqueIDs(t *testing.T) {
	a := NewSession(context.Background(), &collector{})
	b := NewSession(context.Background(), &collector{})
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("session IDs must be unique and non-empty: %q vs %q", a.ID, b.ID)
	}
}
