package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// readSamples consumes the input line by line until EOF or cancellation.
// A line is either "value" (routed to the default series) or
// "series value". Malformed lines and NaN samples are logged and
// skipped so one bad record never aborts the stream.
func readSamples(ctx context.Context, r io.Reader, tracker *MedianTracker) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			slog.Warn("skipping sample", "line", line, "reason", "expected 'value' or 'series value'")
			continue
		}

		series, raw := defaultSeries, fields[0]
		if len(fields) == 2 {
			series, raw = fields[0], fields[1]
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			slog.Warn("skipping sample", "line", line, "err", err)
			continue
		}
		if math.IsNaN(v) {
			slog.Warn("skipping sample", "line", line, "reason", "NaN has no place in a total order")
			continue
		}

		tracker.Observe(series, v)
	}
	return sc.Err()
}
