package assets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"glyphfetch/internal/codepoint"
	"glyphfetch/internal/logging"
)

const lockFileName = ".glyphfetch.lock"

// ItemStatus reports the per-symbol outcome of a run.
type ItemStatus struct {
	Symbol  string
	Key     codepoint.Key
	Name    string
	Outcome Outcome
	Err     error
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Fetched int
	Skipped int
	Failed  int
	Pending int
}

// Summarize tallies statuses into a Summary.
func Summarize(statuses []ItemStatus) Summary {
	var s Summary
	for _, status := range statuses {
		switch status.Outcome {
		case OutcomeFetched:
			s.Fetched++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		case OutcomePending:
			s.Pending++
		}
	}
	return s
}

// Runner drives the fetch pipeline over an ordered symbol list.
type Runner struct {
	fetcher *Fetcher
	symbols []string
	logger  *slog.Logger
}

// NewRunner constructs a runner. The symbol list is processed in the
// order given; a nil logger falls back to a no-op logger.
func NewRunner(fetcher *Fetcher, symbols []string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		fetcher: fetcher,
		symbols: symbols,
		logger:  logger,
	}
}

// Run processes every configured symbol sequentially: resolve the key,
// then fetch. It halts on the first failure and returns the statuses
// accumulated so far together with the failing item's error. A file
// lock on the asset directory rejects concurrent runs.
func (r *Runner) Run(ctx context.Context) ([]ItemStatus, error) {
	if err := os.MkdirAll(r.fetcher.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset directory %q: %w", r.fetcher.dir, err)
	}

	lock := flock.New(filepath.Join(r.fetcher.dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire asset directory lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("asset directory %q is locked by another glyphfetch run", r.fetcher.dir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	start := time.Now()
	logger := r.logger.With(logging.String("run_id", uuid.NewString()))
	logger.Info("fetch run starting",
		logging.Int("symbols", len(r.symbols)),
		logging.String("asset_dir", r.fetcher.dir),
	)

	statuses := make([]ItemStatus, 0, len(r.symbols))
	for _, symbol := range r.symbols {
		if err := ctx.Err(); err != nil {
			return statuses, err
		}

		status := ItemStatus{Symbol: symbol, Name: codepoint.DisplayName(symbol)}
		key, err := codepoint.Resolve(symbol)
		if err != nil {
			status.Outcome = OutcomeFailed
			status.Err = err
			statuses = append(statuses, status)
			logger.Error("symbol resolution failed", logging.String("symbol", symbol), logging.Error(err))
			return statuses, err
		}
		status.Key = key

		outcome, err := r.fetcher.Fetch(ctx, key)
		status.Outcome = outcome
		if err != nil {
			status.Err = err
			statuses = append(statuses, status)
			logger.Error("fetch failed", logging.String("key", key.String()), logging.Error(err))
			return statuses, err
		}
		statuses = append(statuses, status)
	}

	summary := Summarize(statuses)
	logger.Info("fetch run complete",
		logging.Int("fetched", summary.Fetched),
		logging.Int("skipped", summary.Skipped),
		logging.Duration("elapsed", time.Since(start)),
	)
	return statuses, nil
}

// Plan resolves every symbol and reports local presence without any
// network traffic. Used by dry runs and the status command.
func (r *Runner) Plan() ([]ItemStatus, error) {
	statuses := make([]ItemStatus, 0, len(r.symbols))
	for _, symbol := range r.symbols {
		status := ItemStatus{Symbol: symbol, Name: codepoint.DisplayName(symbol)}
		key, err := codepoint.Resolve(symbol)
		if err != nil {
			status.Outcome = OutcomeFailed
			status.Err = err
			statuses = append(statuses, status)
			return statuses, err
		}
		status.Key = key

		present, err := r.fetcher.Present(key)
		if err != nil {
			status.Outcome = OutcomeFailed
			status.Err = err
			statuses = append(statuses, status)
			return statuses, err
		}
		if present {
			status.Outcome = OutcomeSkipped
		} else {
			status.Outcome = OutcomePending
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
