package ai

import (
	"testing"
	"time"
)

func TestStats_EmptySnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.AvgMs != 0 {
		t.Errorf("empty snapshot should be zero-valued: %+v", snap)
	}
}

func TestStats_Aggregates(t *testing.T) {
	s := NewStats(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400} {
		s.Record(ms)
	}

	snap := s.Snapshot()
	if snap.Count != 4 {
		t.Fatalf("count = %d, want 4", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 400 {
		t.Errorf("min/max = %d/%d, want 100/400", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 250 {
		t.Errorf("avg = %.1f, want 250", snap.AvgMs)
	}
	if snap.P50Ms != 250 {
		t.Errorf("p50 = %.1f, want 250 (interpolated)", snap.P50Ms)
	}
}

func TestStats_NegativeDurationClamped(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(-50)
	if snap := s.Snapshot(); snap.MinMs != 0 {
		t.Errorf("negative duration should record as 0, got %d", snap.MinMs)
	}
}

func TestStats_WindowPrunesOldSamples(t *testing.T) {
	s := NewStats(20 * time.Millisecond)
	s.Record(100)
	time.Sleep(40 * time.Millisecond)
	s.Record(200)

	snap := s.Snapshot()
	if snap.Count != 1 || snap.MinMs != 200 {
		t.Errorf("expected only the fresh sample, got %+v", snap)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []int64{10, 20, 30, 40, 50}
	tests := []struct {
		pct  float64
		want float64
	}{
		{0, 10},
		{50, 30},
		{100, 50},
		{25, 20},
	}
	for _, tt := range tests {
		if got := percentile(sorted, tt.pct); got != tt.want {
			t.Errorf("percentile(%.0f) = %.1f, want %.1f", tt.pct, got, tt.want)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile of empty slice = %.1f, want 0", got)
	}
}
