package testsupport

import (
	"path/filepath"
	"testing"

	"glyphfetch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AssetDir = filepath.Join(base, "assets")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithSymbols overrides the symbol list on the test config.
func WithSymbols(symbols ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Assets.Symbols = symbols
	}
}

// WithBaseURL points the test config at the given asset host.
func WithBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Assets.BaseURL = url
	}
}
