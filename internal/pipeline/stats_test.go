package pipeline

import (
	"testing"
	"time"
)

func TestStats_SnapshotPercentiles(t *testing.T) {
	stats := NewStats(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400, 500} {
		stats.Record("html", ms)
	}

	snap := stats.Snapshot()
	tests := []struct {
		name      string
		got, want float64
	}{
		{"count", float64(snap.Count), 5},
		{"min", float64(snap.MinMs), 100},
		{"max", float64(snap.MaxMs), 500},
		{"avg", snap.AvgMs, 300},
		{"p50", snap.P50Ms, 300},
		{"p95", snap.P95Ms, 480},
		{"p99", snap.P99Ms, 496},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %s=%v, got %v", tt.name, tt.want, tt.got)
		}
	}
}

func TestStats_FailuresAndFormats(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record("html", 10)
	stats.Record("pdf", 30)
	stats.Record("pdf", 50)
	stats.Fail("pdf")

	snap := stats.Snapshot()
	if snap.Count != 3 {
		t.Errorf("expected 3 successful conversions, got %d", snap.Count)
	}
	if snap.Failed != 1 {
		t.Errorf("expected 1 failure, got %d", snap.Failed)
	}
	if snap.ByFormat["pdf"] != 2 || snap.ByFormat["html"] != 1 {
		t.Errorf("unexpected per-format counts: %v", snap.ByFormat)
	}
	// Failures carry no latency.
	if snap.MinMs != 10 {
		t.Errorf("expected min=10, got %d", snap.MinMs)
	}
}

func TestStats_PrunesExpiredSamples(t *testing.T) {
	stats := NewStats(10 * time.Millisecond)
	stats.Record("html", 100)
	stats.Fail("html")
	time.Sleep(25 * time.Millisecond)

	snap := stats.Snapshot()
	if snap.Count != 0 || snap.Failed != 0 {
		t.Fatalf("expected empty window after prune, got %+v", snap)
	}

	stats.Record("json", 200)
	snap = stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected min=max=200, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestStats_RecordClampsNegativeDuration(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record("md", -10)
	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 {
		t.Fatalf("expected clamped duration=0, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestPercentile_Edges(t *testing.T) {
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("expected 0 for no samples, got %v", got)
	}
	if got := percentile([]int64{7}, 99); got != 7 {
		t.Errorf("expected 7 for a single sample, got %v", got)
	}
}
