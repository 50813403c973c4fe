package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"glyphfetch/internal/codepoint"
	"glyphfetch/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckRemote probes the remote collection by requesting the first
// configured symbol's asset with a short timeout. A reachable host with
// the pinned release present passes; anything else reports the status.
func CheckRemote(ctx context.Context, cfg *config.Config) Result {
	const name = "Remote collection"

	if len(cfg.Assets.Symbols) == 0 {
		return Result{Name: name, Detail: "no symbols configured"}
	}
	key, err := codepoint.Resolve(cfg.Assets.Symbols[0])
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("resolve probe symbol: %v", err)}
	}
	url := fmt.Sprintf("%s/%s.png", cfg.AssetBaseURL(), key)

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, url, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("probe failed (%v)", err)}
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("probe failed (%v)", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("Reachable (%s %s)", cfg.Assets.Version, cfg.Assets.Size)}
	case resp.StatusCode == http.StatusNotFound:
		return Result{Name: name, Detail: fmt.Sprintf("probe returned 404; check assets.version %q", cfg.Assets.Version)}
	default:
		return Result{Name: name, Detail: fmt.Sprintf("probe returned %d", resp.StatusCode)}
	}
}

// RunAll executes all preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Asset directory", cfg.Paths.AssetDir),
		CheckRemote(ctx, cfg),
	}
}
