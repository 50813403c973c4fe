package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"glyphfetch/internal/codepoint"
)

// pngHeader is enough of a PNG body for the fetcher, which does not
// inspect content.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newAssetServer(t *testing.T, requests *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		if !strings.HasSuffix(r.URL.Path, ".png") {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pngHeader)
	}))
}

func TestFetchDownloadsAbsentAsset(t *testing.T) {
	var requests atomic.Int64
	server := newAssetServer(t, &requests)
	defer server.Close()

	dir := t.TempDir()
	fetcher := NewFetcher(server.URL, dir, server.Client(), nil)

	outcome, err := fetcher.Fetch(context.Background(), "26a0")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if outcome != OutcomeFetched {
		t.Fatalf("unexpected outcome: %v", outcome)
	}
	if requests.Load() != 1 {
		t.Fatalf("expected one request, got %d", requests.Load())
	}

	data, err := os.ReadFile(filepath.Join(dir, "26a0.png"))
	if err != nil {
		t.Fatalf("read fetched asset: %v", err)
	}
	if string(data) != string(pngHeader) {
		t.Fatalf("unexpected asset body: %v", data)
	}
}

func TestFetchSkipsPresentAssetWithoutNetwork(t *testing.T) {
	var requests atomic.Int64
	server := newAssetServer(t, &requests)
	defer server.Close()

	dir := t.TempDir()
	existing := filepath.Join(dir, "1f4b0.png")
	if err := os.WriteFile(existing, []byte("local"), 0o644); err != nil {
		t.Fatalf("seed asset: %v", err)
	}

	fetcher := NewFetcher(server.URL, dir, server.Client(), nil)
	outcome, err := fetcher.Fetch(context.Background(), "1f4b0")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if outcome != OutcomeSkipped {
		t.Fatalf("unexpected outcome: %v", outcome)
	}
	if requests.Load() != 0 {
		t.Fatalf("expected zero requests, got %d", requests.Load())
	}

	// The existing file is never overwritten.
	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("read asset: %v", err)
	}
	if string(data) != "local" {
		t.Fatalf("existing asset was overwritten: %q", data)
	}
}

func TestFetchFailsOnNon2xxWithoutWritingFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dir := t.TempDir()
	fetcher := NewFetcher(server.URL, dir, server.Client(), nil)

	outcome, err := fetcher.Fetch(context.Background(), "ffff")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if outcome != OutcomeFailed {
		t.Fatalf("unexpected outcome: %v", outcome)
	}
	if !strings.Contains(err.Error(), server.URL) {
		t.Fatalf("expected failing URL in error, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty asset dir, found %d entries", len(entries))
	}
}

func TestFetchLeavesNoTempFileBehind(t *testing.T) {
	server := newAssetServer(t, nil)
	defer server.Close()

	dir := t.TempDir()
	fetcher := NewFetcher(server.URL, dir, server.Client(), nil)

	if _, err := fetcher.Fetch(context.Background(), "2705"); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestFetchCleansUpTempPathOnWriteFailure(t *testing.T) {
	server := newAssetServer(t, nil)
	defer server.Close()

	dir := t.TempDir()
	fetcher := NewFetcher(server.URL, dir, server.Client(), nil)

	// Occupy the temp path with a directory so the write fails.
	tempPath := filepath.Join(dir, "1f525.png.tmp")
	if err := os.Mkdir(tempPath, 0o755); err != nil {
		t.Fatalf("mkdir temp path: %v", err)
	}

	outcome, err := fetcher.Fetch(context.Background(), "1f525")
	if err == nil {
		t.Fatal("expected write failure")
	}
	if outcome != OutcomeFailed {
		t.Fatalf("unexpected outcome: %v", outcome)
	}
	if _, err := os.Stat(tempPath); err == nil {
		t.Fatal("temp path left behind after failed write")
	}
	if _, err := os.Stat(filepath.Join(dir, "1f525.png")); err == nil {
		t.Fatal("asset must not exist after failed write")
	}
}

func TestFetchHonoursContextCancellation(t *testing.T) {
	server := newAssetServer(t, nil)
	defer server.Close()

	fetcher := NewFetcher(server.URL, t.TempDir(), server.Client(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := fetcher.Fetch(ctx, "26a1"); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestFetchURLAndPathComposition(t *testing.T) {
	dir := t.TempDir()
	fetcher := NewFetcher("https://assets.example.com/collection/", dir, nil, nil)

	key := codepoint.Key("1f1eb-1f1f7")
	if got := fetcher.URL(key); got != "https://assets.example.com/collection/1f1eb-1f1f7.png" {
		t.Fatalf("unexpected URL: %q", got)
	}
	if got := fetcher.Path(key); got != filepath.Join(dir, "1f1eb-1f1f7.png") {
		t.Fatalf("unexpected path: %q", got)
	}
}
