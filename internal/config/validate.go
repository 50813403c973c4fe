package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAssets(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.AssetDir) == "" {
		return errors.New("paths.asset_dir must be set")
	}
	return nil
}

func (c *Config) validateAssets() error {
	parsed, err := url.Parse(c.Assets.BaseURL)
	if err != nil {
		return fmt.Errorf("assets.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("assets.base_url must be an http(s) URL, got %q", c.Assets.BaseURL)
	}
	if c.Assets.Version == "" {
		return errors.New("assets.version must name a release tag of the remote collection")
	}
	if len(c.Assets.Symbols) == 0 {
		return errors.New("assets.symbols must list at least one symbol")
	}
	for i, symbol := range c.Assets.Symbols {
		if strings.TrimSpace(symbol) == "" {
			return fmt.Errorf("assets.symbols[%d] is blank", i)
		}
	}
	if c.Assets.RequestTimeout <= 0 {
		return errors.New("assets.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
