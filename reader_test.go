package main

import (
	"context"
	"strings"
	"testing"
)

func TestReadSamplesBareValues(t *testing.T) {
	tracker := NewMedianTracker(0)
	input := "1\n2\n3\n"

	if err := readSamples(context.Background(), strings.NewReader(input), tracker); err != nil {
		t.Fatalf("readSamples: %v", err)
	}

	m, ok := tracker.Median(defaultSeries)
	if !ok || m != 2 {
		t.Errorf("default median = (%v, %v), want (2, true)", m, ok)
	}
}

func TestReadSamplesLabeled(t *testing.T) {
	tracker := NewMedianTracker(0)
	input := "api 10\napi 30\ndb 7\n"

	if err := readSamples(context.Background(), strings.NewReader(input), tracker); err != nil {
		t.Fatalf("readSamples: %v", err)
	}

	if m, _ := tracker.Median("api"); m != 20 {
		t.Errorf("api median = %v, want 20", m)
	}
	if m, _ := tracker.Median("db"); m != 7 {
		t.Errorf("db median = %v, want 7", m)
	}
}

func TestReadSamplesSkipsGarbage(t *testing.T) {
	tracker := NewMedianTracker(0)
	input := "1\n\nnot-a-number\nNaN\na b c\n3\n"

	if err := readSamples(context.Background(), strings.NewReader(input), tracker); err != nil {
		t.Fatalf("readSamples: %v", err)
	}

	rows := tracker.Summary()
	if len(rows) != 1 {
		t.Fatalf("expected 1 series, got %d", len(rows))
	}
	if rows[0].Count != 2 {
		t.Errorf("count = %d, want 2 (only the valid samples)", rows[0].Count)
	}
	if rows[0].Median != 2 {
		t.Errorf("median = %v, want 2", rows[0].Median)
	}
}

func TestReadSamplesCancelled(t *testing.T) {
	tracker := NewMedianTracker(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := readSamples(ctx, strings.NewReader("1\n2\n"), tracker)
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
