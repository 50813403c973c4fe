package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"glyphfetch/internal/codepoint"
	"glyphfetch/internal/logging"
)

// HTTPDoer describes the HTTP client used by the fetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Outcome classifies the result of processing one key.
type Outcome string

const (
	// OutcomeFetched means the asset was downloaded and written.
	OutcomeFetched Outcome = "fetched"
	// OutcomeSkipped means the asset was already present; no network call was made.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the item aborted the run.
	OutcomeFailed Outcome = "failed"
	// OutcomePending is used by dry runs for assets not yet present.
	OutcomePending Outcome = "pending"
)

// Fetcher retrieves individual assets into a local directory.
type Fetcher struct {
	baseURL string
	dir     string
	client  HTTPDoer
	logger  *slog.Logger
}

// NewFetcher constructs a fetcher for the given collection URL and
// asset directory. A nil client falls back to http.DefaultClient and a
// nil logger to a no-op logger.
func NewFetcher(baseURL, dir string, client HTTPDoer, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Fetcher{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		dir:     dir,
		client:  client,
		logger:  logger,
	}
}

// Path returns the local path an asset for key lives at.
func (f *Fetcher) Path(key codepoint.Key) string {
	return filepath.Join(f.dir, key.String()+".png")
}

// URL returns the remote location an asset for key is fetched from.
func (f *Fetcher) URL(key codepoint.Key) string {
	return f.baseURL + "/" + key.String() + ".png"
}

// Present reports whether the asset for key already exists locally.
func (f *Fetcher) Present(key codepoint.Key) (bool, error) {
	if _, err := os.Stat(f.Path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", f.Path(key), err)
	}
	return true, nil
}

// Fetch ensures the asset for key exists locally. Present assets are
// skipped without a network call; absent ones are downloaded and written
// atomically. An existing file is never overwritten.
func (f *Fetcher) Fetch(ctx context.Context, key codepoint.Key) (Outcome, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return OutcomeFailed, fmt.Errorf("create asset directory %q: %w", f.dir, err)
	}

	present, err := f.Present(key)
	if err != nil {
		return OutcomeFailed, err
	}
	if present {
		f.logger.Debug("asset already present", logging.String("key", key.String()))
		return OutcomeSkipped, nil
	}

	url := f.URL(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return OutcomeFailed, fmt.Errorf("download %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("download %s: %w", url, err)
	}
	if resp.ContentLength >= 0 && int64(len(data)) != resp.ContentLength {
		return OutcomeFailed, fmt.Errorf("download %s: partial transfer (%d of %d bytes)", url, len(data), resp.ContentLength)
	}

	target := f.Path(key)
	tempPath := target + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		os.Remove(tempPath)
		return OutcomeFailed, fmt.Errorf("write temp file for %s: %w", target, err)
	}
	if err := os.Rename(tempPath, target); err != nil {
		os.Remove(tempPath)
		return OutcomeFailed, fmt.Errorf("replace %s: %w", target, err)
	}

	f.logger.Debug("asset fetched",
		logging.String("key", key.String()),
		logging.String("url", url),
		logging.Int("bytes", len(data)),
	)
	return OutcomeFetched, nil
}
