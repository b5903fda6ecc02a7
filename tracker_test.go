package main

import (
	"testing"
)

func TestTrackerSingleSeries(t *testing.T) {
	tracker := NewMedianTracker(0)

	for _, v := range []float64{1, 2, 3, 4, 5} {
		tracker.Observe("latency", v)
	}

	m, ok := tracker.Median("latency")
	if !ok {
		t.Fatal("expected a median for latency")
	}
	if m != 3 {
		t.Errorf("median = %v, want 3", m)
	}
	if _, ok := tracker.Median("missing"); ok {
		t.Error("unknown series reported a median")
	}
}

func TestTrackerSummaryOrder(t *testing.T) {
	tracker := NewMedianTracker(0)

	tracker.Observe("a", 1)
	tracker.Observe("b", 10)
	tracker.Observe("b", 20)
	tracker.Observe("c", 5)

	rows := tracker.Summary()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Busiest series first, ties by name.
	want := []SummaryRow{
		{Series: "b", Count: 2, Median: 15},
		{Series: "a", Count: 1, Median: 1},
		{Series: "c", Count: 1, Median: 5},
	}
	for i, row := range rows {
		if row != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, row, want[i])
		}
	}
}

func TestTrackerWindowed(t *testing.T) {
	tracker := NewMedianTracker(8)

	for i := 0; i < 100; i++ {
		tracker.Observe("s", float64(i))
	}

	rows := tracker.Summary()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Count != 8 {
		t.Errorf("count = %d, want window size 8", rows[0].Count)
	}
	if rows[0].Median != 95.5 {
		t.Errorf("median = %v, want 95.5", rows[0].Median)
	}
}

func TestTrackerEmptySummary(t *testing.T) {
	tracker := NewMedianTracker(0)
	if rows := tracker.Summary(); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
