package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"medianstream/medianheap"
)

const defaultSeries = "default"

type SummaryRow struct {
	Series string
	Count  int
	Median float64
}

// MedianTracker keeps one median heap per series. The heaps themselves
// are single-owner; the tracker adds the locking needed because samples
// arrive on the reader goroutine while the printer reads summaries.
type MedianTracker struct {
	mu     sync.RWMutex
	window int // max values retained per series, 0 = unbounded
	data   map[string]*medianheap.MedianHeap[medianheap.Float64]
}

func NewMedianTracker(window int) *MedianTracker {
	return &MedianTracker{
		window: window,
		data:   make(map[string]*medianheap.MedianHeap[medianheap.Float64]),
	}
}

func (t *MedianTracker) Observe(series string, v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.data[series]
	if !ok {
		if t.window > 0 {
			h = medianheap.WithMaxSize[medianheap.Float64](t.window)
		} else {
			h = medianheap.New[medianheap.Float64]()
		}
		t.data[series] = h
	}
	h.Push(medianheap.Float64(v))
}

// Median returns the current median of a series.
func (t *MedianTracker) Median(series string) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h, ok := t.data[series]
	if !ok {
		return 0, false
	}
	m, ok := h.Median()
	return float64(m), ok
}

// Summary snapshots every series, busiest first.
func (t *MedianTracker) Summary() []SummaryRow {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]SummaryRow, 0, len(t.data))
	for series, h := range t.data {
		m, ok := h.Median()
		if !ok {
			continue
		}
		result = append(result, SummaryRow{
			Series: series,
			Count:  h.Len(),
			Median: float64(m),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Series < result[j].Series
	})

	return result
}

// Print renders the current medians as a table on stdout.
func (t *MedianTracker) Print() {
	summary := t.Summary()
	if len(summary) == 0 {
		fmt.Println("no samples")
		return
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
		Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
	})))
	table.Header([]string{"SERIES", "COUNT", "MEDIAN"})

	for _, row := range summary {
		table.Append([]string{
			row.Series,
			strconv.Itoa(row.Count),
			formatMedian(row.Median),
		})
	}
	table.Render()
}

// StartPrinter reprints the table on every tick until cancellation.
func (t *MedianTracker) StartPrinter(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if len(t.Summary()) == 0 {
				continue
			}
			fmt.Print("\033[H\033[2J")
			t.Print()
		case <-ctx.Done():
			slog.Debug("Stopping printer...")
			return
		}
	}
}
