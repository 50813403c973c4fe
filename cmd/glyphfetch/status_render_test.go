package main

import (
	"errors"
	"strings"
	"testing"

	"glyphfetch/internal/assets"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Symbol", "Key", "Name", "State"},
		[][]string{
			{"⚠️", "26a0", "WARNING SIGN", "present"},
			{"💰", "1f4b0"},
		},
	)
	for _, want := range []string{"Symbol", "Key", "26a0", "WARNING SIGN", "present", "1f4b0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	// Short rows are padded rather than dropped.
	if strings.Count(out, "\n") < 4 {
		t.Fatalf("expected both rows rendered:\n%s", out)
	}

	if renderTable(nil, nil) != "" {
		t.Fatal("expected empty output for empty headers")
	}
}

func TestRenderItemLine(t *testing.T) {
	line := renderItemLine(assets.ItemStatus{
		Symbol:  "⚠️",
		Key:     "26a0",
		Outcome: assets.OutcomeFetched,
	}, false)
	if !strings.Contains(line, "26a0") || !strings.Contains(line, "[OK] fetched") {
		t.Fatalf("unexpected line: %q", line)
	}

	line = renderItemLine(assets.ItemStatus{
		Symbol:  "⚡",
		Key:     "26a1",
		Outcome: assets.OutcomeFailed,
		Err:     errors.New("unexpected status 502"),
	}, false)
	if !strings.Contains(line, "[ERROR] failed: unexpected status 502") {
		t.Fatalf("unexpected failure line: %q", line)
	}

	colored := renderItemLine(assets.ItemStatus{Symbol: "✅", Key: "2705", Outcome: assets.OutcomeFetched}, true)
	if !strings.HasPrefix(colored, ansiGreen) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected colored line: %q", colored)
	}
}

func TestRenderSummaryLine(t *testing.T) {
	line := renderSummaryLine(assets.Summary{Fetched: 2, Skipped: 1}, false)
	if line != "fetched 2, skipped 1" {
		t.Fatalf("unexpected summary: %q", line)
	}
	line = renderSummaryLine(assets.Summary{Fetched: 1, Skipped: 2, Failed: 1}, false)
	if line != "fetched 1, skipped 2, failed 1" {
		t.Fatalf("unexpected summary: %q", line)
	}
	line = renderSummaryLine(assets.Summary{Skipped: 3, Pending: 2}, true)
	if line != "3 present, 2 missing" {
		t.Fatalf("unexpected dry-run summary: %q", line)
	}
}
